package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/tracker"
	"github.com/aretw0/tracker/internal/config"
	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/observability"
	"github.com/aretw0/tracker/pkg/view"
	"github.com/prometheus/client_golang/prometheus"
)

// App is a tracker wired the way the binary runs it: validation, hooks, a board attached
// to the registry and the configured seed projects.
type App struct {
	Tracker *tracker.Tracker
	Board   *view.Board
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// AppOptions selects the optional parts of the App.
type AppOptions struct {
	Debug bool
	// Registerer receives the Prometheus collectors. Nil disables metrics.
	Registerer prometheus.Registerer
}

// NewApp initializes an App from cfg.
func NewApp(ctx context.Context, cfg config.Config, logger *slog.Logger, opts AppOptions) (*App, error) {
	app := &App{Logger: logger}

	// 1. Hooks
	var hooks []domain.LifecycleHooks
	if opts.Debug {
		hooks = append(hooks, observability.NewLoggingHooks(logger))
	}
	if opts.Registerer != nil {
		m, err := observability.NewMetrics(opts.Registerer)
		if err != nil {
			return nil, fmt.Errorf("error registering metrics: %w", err)
		}
		app.Metrics = m
		hooks = append(hooks, m.Hooks())
	}

	// 2. Tracker
	trackerOpts := []tracker.Option{
		tracker.WithLogger(logger),
		tracker.WithLifecycleHooks(observability.Combine(hooks...)),
		tracker.WithIDGenerator(cfg.IDGenerator()),
		tracker.WithLimits(cfg.Validation),
	}
	if cfg.StrictIdentity {
		trackerOpts = append(trackerOpts, tracker.WithStrictIdentity())
	}
	app.Tracker = tracker.New(trackerOpts...)

	// 3. Board, attached before seeding so it sees every project
	app.Board = view.NewBoard()
	app.Board.Attach(app.Tracker)

	// 4. Seed
	for i, d := range cfg.Seed {
		if _, err := app.Tracker.AddDraft(ctx, d); err != nil {
			return nil, fmt.Errorf("seed project %d (%q): %w", i+1, d.Title, err)
		}
	}
	if len(cfg.Seed) > 0 {
		logger.Info("Seed projects added", "count", len(cfg.Seed))
	}

	return app, nil
}
