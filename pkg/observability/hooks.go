package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/tracker/pkg/domain"
)

// NewLoggingHooks returns hooks that log every event at debug level.
func NewLoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProjectAdded: func(ctx context.Context, e *domain.ProjectEvent) {
			logger.DebugContext(ctx, "project_added", "id", e.Project.ID, "title", e.Project.Title, "people", e.Project.People)
		},
		OnProjectMoved: func(ctx context.Context, e *domain.ProjectEvent) {
			logger.DebugContext(ctx, "project_moved", "id", e.Project.ID, "from", e.From.String(), "to", e.Project.Status.String())
		},
		OnNotify: func(ctx context.Context, e *domain.NotifyEvent) {
			logger.DebugContext(ctx, "notify", "listeners", e.Listeners, "projects", e.Projects, "duration", e.Duration)
		},
	}
}

// Combine merges hook sets; each event is delivered to every set in argument order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var added, moved []func(context.Context, *domain.ProjectEvent)
	var notified []func(context.Context, *domain.NotifyEvent)
	for _, h := range sets {
		if h.OnProjectAdded != nil {
			added = append(added, h.OnProjectAdded)
		}
		if h.OnProjectMoved != nil {
			moved = append(moved, h.OnProjectMoved)
		}
		if h.OnNotify != nil {
			notified = append(notified, h.OnNotify)
		}
	}

	var out domain.LifecycleHooks
	if len(added) > 0 {
		out.OnProjectAdded = func(ctx context.Context, e *domain.ProjectEvent) {
			for _, fn := range added {
				fn(ctx, e)
			}
		}
	}
	if len(moved) > 0 {
		out.OnProjectMoved = func(ctx context.Context, e *domain.ProjectEvent) {
			for _, fn := range moved {
				fn(ctx, e)
			}
		}
	}
	if len(notified) > 0 {
		out.OnNotify = func(ctx context.Context, e *domain.NotifyEvent) {
			for _, fn := range notified {
				fn(ctx, e)
			}
		}
	}
	return out
}
