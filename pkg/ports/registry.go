package ports

import (
	"context"

	"github.com/aretw0/tracker/pkg/domain"
)

// Listener receives a snapshot of every project after each mutation.
// The slice is freshly allocated for each call and owned by the listener.
type Listener func(projects []domain.Project)

// Subscriber is implemented by anything that fans out project snapshots.
type Subscriber interface {
	// Subscribe registers a listener and returns a function that removes it.
	Subscribe(listener Listener) (unsubscribe func())
}

// ProjectRegistry is the observable, ordered collection of projects.
type ProjectRegistry interface {
	Subscriber

	// Add registers a new active project and notifies every listener.
	Add(ctx context.Context, title, description string, people int) (domain.Project, error)

	// MoveStatus changes the status of a project and notifies every listener.
	// Moving to the current status is a no-op without notification.
	// Unknown IDs never notify; implementations return nil or domain.ErrProjectNotFound.
	MoveStatus(ctx context.Context, id string, status domain.Status) error

	// Projects returns a snapshot of all projects in insertion order.
	Projects() []domain.Project
}

// IDGenerator produces identities for new projects.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string { return f() }
