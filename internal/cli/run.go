package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/tracker/internal/config"
	"github.com/aretw0/tracker/internal/presentation/tui"
	"github.com/aretw0/tracker/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// RunOptions contains the configuration shared by the shell and demo commands.
type RunOptions struct {
	ConfigPath string
	Debug      bool
	Quiet      bool // no banner
	Metrics    bool // demo only: dump Prometheus metrics after the run
}

// setup loads the configuration and builds the App.
func setup(ctx context.Context, opts RunOptions, reg prometheus.Registerer) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger, err := CreateLogger(opts.Debug, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Debug("Config loaded", "path", opts.ConfigPath, "ids", cfg.IDs, "seed", len(cfg.Seed))

	return NewApp(ctx, cfg, logger, AppOptions{Debug: opts.Debug, Registerer: reg})
}

// RunShell starts the interactive board on in/out until quit, EOF or SIGINT.
func RunShell(opts RunOptions, in io.Reader, out io.Writer) error {
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	app, err := setup(sigCtx, opts, nil)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		tui.PrintBanner(out)
	}

	shell := NewShell(app.Tracker, app.Board,
		NewInterruptibleReader(in, sigCtx.Done()), out,
		WithRenderer(tui.RendererFor(out)),
		WithShellLogger(app.Logger),
	)

	// Reads on a terminal block until a line arrives, so a signal must not wait for it.
	done := make(chan error, 1)
	go func() { done <- shell.Run(sigCtx) }()

	select {
	case err = <-done:
	case <-sigCtx.Done():
		err = nil
	}

	if sig := sigCtx.Signal(); sig != nil {
		fmt.Fprintln(out)
		printSystemMessage(out, "Interrupted (%s).", sig)
	}
	return err
}

// RunDemo replays the board walkthrough: two projects are added and the first one is
// moved to finished. With opts.Metrics the collected Prometheus metrics are printed too.
func RunDemo(opts RunOptions, out io.Writer) error {
	ctx := context.Background()

	reg := prometheus.NewRegistry()
	app, err := setup(ctx, opts, reg)
	if err != nil {
		return err
	}
	render := tui.RendererFor(out)

	bridge, err := app.Tracker.Add(ctx, "Build bridge", "Steel truss over river", 3)
	if err != nil {
		return err
	}
	if _, err := app.Tracker.Add(ctx, "Paint fence", "White picket fence", 1); err != nil {
		return err
	}
	if err := app.Tracker.MoveStatus(ctx, bridge.ID, domain.StatusFinished); err != nil {
		return err
	}

	board, err := render(app.Board.Markdown())
	if err != nil {
		return err
	}
	fmt.Fprint(out, board)

	if !opts.Metrics {
		return nil
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(out)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
