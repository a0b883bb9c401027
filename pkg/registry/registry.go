package registry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/tracker/internal/logging"
	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/ports"
)

// maxIDAttempts bounds how often Add asks the generator for a fresh ID.
const maxIDAttempts = 8

var _ ports.ProjectRegistry = (*Registry)(nil)

type subscription struct {
	id       uint64
	listener ports.Listener
}

// Registry is the observable collection of projects.
//
// Every mutation runs to completion, including all listener calls, before it returns.
// Listeners are called synchronously, in registration order, each with its own copy of
// the full project list. Listeners may read the registry (Projects, Get, Len) but must
// not call Add or MoveStatus themselves: the nested mutation waits for the fan-out that is
// calling it, so that fan-out never ends and every later mutation from any goroutine hangs
// with it. A listener that needs to mutate must hand the call to another goroutine; it
// then runs once the current fan-out is done.
//
// If a listener panics, the panic reaches the caller of the mutation and the remaining
// listeners are skipped; the mutation itself stays applied.
//
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex // guards projects, index, subs, nextSub, ticket
	projects []domain.Project
	index    map[string]int
	subs     []subscription
	nextSub  uint64
	ticket   uint64

	// Fan-outs run one at a time, in ticket order.
	turnMu sync.Mutex
	turnCh *sync.Cond
	turn   uint64

	ids    ports.IDGenerator
	strict bool
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// Option configures the Registry.
type Option func(*Registry)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen ports.IDGenerator) Option {
	return func(r *Registry) {
		if gen != nil {
			r.ids = gen
		}
	}
}

// WithStrictIdentity makes MoveStatus return domain.ErrProjectNotFound for unknown IDs
// instead of ignoring them.
func WithStrictIdentity() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		index:  make(map[string]int),
		ids:    UUIDGenerator{},
		logger: logging.NewNop(),
		now:    time.Now,
	}
	r.turnCh = sync.NewCond(&r.turnMu)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe appends listener to the notification list.
// The returned function removes this registration; calling it more than once is harmless.
// Each fan-out captures its listeners when the mutation happens, so a listener removed
// while that fan-out is running (e.g. by an earlier listener) still receives its snapshot.
// Later mutations no longer reach it.
func (r *Registry) Subscribe(listener ports.Listener) func() {
	if listener == nil {
		return func() {}
	}

	r.mu.Lock()
	r.nextSub++
	id := r.nextSub
	r.subs = append(r.subs, subscription{id: id, listener: listener})
	count := len(r.subs)
	r.mu.Unlock()

	r.logger.Debug("Listener subscribed", "subscription", id, "listeners", count)

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.subs = slices.DeleteFunc(r.subs, func(s subscription) bool { return s.id == id })
		})
	}
}

// Add registers a new active project and notifies every listener.
// Inputs are not validated here. The only failure is domain.ErrIdentityCollision, which
// requires a generator that keeps returning IDs already in use.
func (r *Registry) Add(ctx context.Context, title, description string, people int) (domain.Project, error) {
	project, f, err := func() (domain.Project, fanout, error) {
		r.mu.Lock()
		defer r.mu.Unlock()

		id, err := r.freshID()
		if err != nil {
			return domain.Project{}, fanout{}, err
		}

		project := domain.NewProject(id, domain.Draft{
			Title:       title,
			Description: description,
			People:      people,
		}, r.now())

		r.index[id] = len(r.projects)
		r.projects = append(r.projects, project)
		return project, r.prepare(), nil
	}()
	if err != nil {
		r.logger.ErrorContext(ctx, "Add failed", "err", err)
		return domain.Project{}, err
	}

	r.logger.DebugContext(ctx, "Project added", "id", project.ID, "title", title, "projects", len(f.state))
	r.notify(ctx, f, func() {
		if r.hooks.OnProjectAdded != nil {
			r.hooks.OnProjectAdded(ctx, &domain.ProjectEvent{
				EventBase: domain.EventBase{Timestamp: project.CreatedAt, Type: domain.EventProjectAdded},
				Project:   project,
				From:      project.Status,
			})
		}
	})
	return project, nil
}

// MoveStatus changes the status of the project identified by id and notifies every listener.
// Moving to the status the project already has changes nothing and notifies no one.
// Unknown IDs are ignored, or reported as domain.ErrProjectNotFound in strict mode.
func (r *Registry) MoveStatus(ctx context.Context, id string, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidStatus, int(status))
	}

	var (
		from    domain.Status
		project domain.Project
		f       fanout
	)
	found, changed := func() (bool, bool) {
		r.mu.Lock()
		defer r.mu.Unlock()

		i, ok := r.index[id]
		if !ok {
			return false, false
		}
		from = r.projects[i].Status
		if from == status {
			return true, false
		}

		r.projects[i].Status = status
		r.projects[i].UpdatedAt = r.now()
		project = r.projects[i]
		f = r.prepare()
		return true, true
	}()
	if !found {
		r.logger.DebugContext(ctx, "Move ignored: unknown project", "id", id)
		if r.strict {
			return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, id)
		}
		return nil
	}
	if !changed {
		return nil
	}

	r.logger.DebugContext(ctx, "Project moved", "id", id, "from", from, "to", status)
	r.notify(ctx, f, func() {
		if r.hooks.OnProjectMoved != nil {
			r.hooks.OnProjectMoved(ctx, &domain.ProjectEvent{
				EventBase: domain.EventBase{Timestamp: project.UpdatedAt, Type: domain.EventProjectMoved},
				Project:   project,
				From:      from,
			})
		}
	})
	return nil
}

// Projects returns a snapshot of all projects in insertion order.
func (r *Registry) Projects() []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.projects)
}

// Get returns a copy of the project with the given id.
func (r *Registry) Get(id string) (domain.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return domain.Project{}, false
	}
	return r.projects[i], true
}

// Len returns the number of registered projects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects)
}

// Listeners returns the number of active subscriptions.
func (r *Registry) Listeners() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

// freshID must be called with mu held.
func (r *Registry) freshID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := r.ids.NewID()
		if id == "" {
			continue
		}
		if _, taken := r.index[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no unused id after %d attempts", domain.ErrIdentityCollision, maxIDAttempts)
}

// fanout is one pending notification: the listeners registered at mutation time and the
// state the mutation produced.
type fanout struct {
	ticket uint64
	subs   []subscription
	state  []domain.Project
}

// prepare must be called with mu held.
func (r *Registry) prepare() fanout {
	f := fanout{
		ticket: r.ticket,
		subs:   slices.Clone(r.subs),
		state:  slices.Clone(r.projects),
	}
	r.ticket++
	return f
}

// notify waits for the fan-out's turn, runs the mutation hook, then calls every listener
// with its own snapshot. mu must not be held, so listeners can read the registry.
func (r *Registry) notify(ctx context.Context, f fanout, hook func()) {
	r.turnMu.Lock()
	for r.turn != f.ticket {
		r.turnCh.Wait()
	}
	r.turnMu.Unlock()

	defer func() {
		r.turnMu.Lock()
		r.turn++
		r.turnCh.Broadcast()
		r.turnMu.Unlock()
	}()

	hook()

	start := time.Now()
	for _, s := range f.subs {
		s.listener(slices.Clone(f.state))
	}

	if r.hooks.OnNotify != nil {
		r.hooks.OnNotify(ctx, &domain.NotifyEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventNotify},
			Listeners: len(f.subs),
			Projects:  len(f.state),
			Duration:  time.Since(start),
		})
	}
}
