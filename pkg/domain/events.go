package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventProjectAdded EventType = "project_added"
	EventProjectMoved EventType = "project_moved"
	EventNotify       EventType = "notify"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ProjectEvent represents an add or a status move.
// For EventProjectAdded, From equals Project.Status.
type ProjectEvent struct {
	EventBase
	Project Project `json:"project"`
	From    Status  `json:"from"`
}

// NotifyEvent describes one completed fan-out to listeners.
type NotifyEvent struct {
	EventBase
	Listeners int           `json:"listeners"`
	Projects  int           `json:"projects"`
	Duration  time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for registry observability.
// Hooks run synchronously after the mutation is applied; nil hooks are skipped.
type LifecycleHooks struct {
	OnProjectAdded func(context.Context, *ProjectEvent)
	OnProjectMoved func(context.Context, *ProjectEvent)
	OnNotify       func(context.Context, *NotifyEvent)
}
