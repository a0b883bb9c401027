package tracker

import (
	"context"
	_ "embed"
	"log/slog"
	"strings"

	"github.com/aretw0/tracker/internal/logging"
	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/ports"
	"github.com/aretw0/tracker/pkg/registry"
	"github.com/aretw0/tracker/pkg/validation"
)

//go:embed VERSION
var version string

// Version is the library version, read from the VERSION file.
var Version = strings.TrimSpace(version)

var _ ports.ProjectRegistry = (*Tracker)(nil)

// Tracker is the high-level entry point of the library.
// It validates input before it reaches the observable registry.
type Tracker struct {
	registry  *registry.Registry
	validator *validation.Validator
	logger    *slog.Logger

	limits      validation.Limits
	ids         ports.IDGenerator
	hooks       domain.LifecycleHooks
	strict      bool
	registryOps []registry.Option
}

// Option defines a functional option for configuring the Tracker.
type Option func(*Tracker)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Tracker) {
		t.hooks = hooks
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen ports.IDGenerator) Option {
	return func(t *Tracker) {
		t.ids = gen
	}
}

// WithLimits replaces the default form rules.
func WithLimits(limits validation.Limits) Option {
	return func(t *Tracker) {
		t.limits = limits
	}
}

// WithStrictIdentity makes MoveStatus report unknown IDs as domain.ErrProjectNotFound.
func WithStrictIdentity() Option {
	return func(t *Tracker) {
		t.strict = true
	}
}

// WithRegistryOptions passes low-level options (e.g. registry.WithClock) to the registry.
func WithRegistryOptions(opts ...registry.Option) Option {
	return func(t *Tracker) {
		t.registryOps = append(t.registryOps, opts...)
	}
}

// New initializes a Tracker with an empty registry.
func New(opts ...Option) *Tracker {
	t := &Tracker{limits: validation.DefaultLimits()}
	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = logging.NewNop()
	}

	regOpts := []registry.Option{
		registry.WithLogger(t.logger),
		registry.WithLifecycleHooks(t.hooks),
		registry.WithIDGenerator(t.ids),
	}
	if t.strict {
		regOpts = append(regOpts, registry.WithStrictIdentity())
	}
	regOpts = append(regOpts, t.registryOps...)

	t.registry = registry.New(regOpts...)
	t.validator = validation.New(t.limits)
	return t
}

// Add validates the input and registers a new active project.
// Invalid input returns an error matching domain.ErrInvalidInput and notifies no one.
func (t *Tracker) Add(ctx context.Context, title, description string, people int) (domain.Project, error) {
	return t.AddDraft(ctx, domain.Draft{Title: title, Description: description, People: people})
}

// AddDraft sanitizes and validates the draft, then registers it.
func (t *Tracker) AddDraft(ctx context.Context, d domain.Draft) (domain.Project, error) {
	clean, err := t.validator.Normalize(d)
	if err != nil {
		t.logger.DebugContext(ctx, "Draft rejected", "err", err)
		return domain.Project{}, err
	}
	return t.registry.Add(ctx, clean.Title, clean.Description, clean.People)
}

// MoveStatus changes the status of a project and notifies every listener.
func (t *Tracker) MoveStatus(ctx context.Context, id string, status domain.Status) error {
	return t.registry.MoveStatus(ctx, id, status)
}

// Subscribe registers a listener and returns a function that removes it.
func (t *Tracker) Subscribe(listener ports.Listener) func() {
	return t.registry.Subscribe(listener)
}

// Projects returns a snapshot of all projects in insertion order.
func (t *Tracker) Projects() []domain.Project {
	return t.registry.Projects()
}

// Get returns a copy of the project with the given id.
func (t *Tracker) Get(id string) (domain.Project, bool) {
	return t.registry.Get(id)
}

// Limits returns the form rules in use.
func (t *Tracker) Limits() validation.Limits {
	return t.limits
}

// Registry exposes the underlying registry, e.g. for direct subscription by collaborators.
func (t *Tracker) Registry() *registry.Registry {
	return t.registry
}
