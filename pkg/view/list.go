// Package view projects registry snapshots into per-status lists.
//
// A List subscribes to a registry and keeps only the projects that match its status,
// the way the active and finished columns of a board do. A Board composes the two lists
// and renders them as markdown.
package view

import (
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/ports"
)

// List holds the projects of one status, refreshed on every registry notification.
// Safe for concurrent use.
type List struct {
	status domain.Status

	mu       sync.RWMutex
	assigned []domain.Project
	onChange func(*List)
}

// ListOption configures a List.
type ListOption func(*List)

// WithOnChange registers a callback invoked after each update, e.g. to re-render.
func WithOnChange(fn func(*List)) ListOption {
	return func(l *List) {
		l.onChange = fn
	}
}

// NewList creates an empty list for status.
func NewList(status domain.Status, opts ...ListOption) *List {
	l := &List{status: status}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Update is a ports.Listener: it replaces the assigned projects with those matching the
// list's status.
func (l *List) Update(projects []domain.Project) {
	relevant := domain.FilterByStatus(projects, l.status)

	l.mu.Lock()
	l.assigned = relevant
	l.mu.Unlock()

	if l.onChange != nil {
		l.onChange(l)
	}
}

// Attach subscribes the list to sub and returns the unsubscribe function.
func (l *List) Attach(sub ports.Subscriber) func() {
	return sub.Subscribe(l.Update)
}

// Status returns the status the list filters on.
func (l *List) Status() domain.Status {
	return l.status
}

// Title is the heading of the list, e.g. "ACTIVE PROJECTS".
func (l *List) Title() string {
	return strings.ToUpper(l.status.String()) + " PROJECTS"
}

// Projects returns a copy of the assigned projects.
func (l *List) Projects() []domain.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.assigned)
}

// Len returns the number of assigned projects.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.assigned)
}
