package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status classifies a project. The zero value is StatusActive.
type Status int

const (
	StatusActive   Status = iota // Initial status of every new project
	StatusFinished               // Project moved to the finished list
)

// Statuses lists every valid Status in display order.
var Statuses = []Status{StatusActive, StatusFinished}

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Valid reports whether s is part of the enumeration.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

// ParseStatus converts a name ("active", "finished") into a Status. Case-insensitive.
func ParseStatus(name string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
	}
}

// MarshalText encodes the status by name (used by JSON and YAML).
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Project is a tracked record.
// ID is assigned by the registry and never changes; every other field may be mutated.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	People      int       `json:"people"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject creates an active project stamped with now.
func NewProject(id string, draft Draft, now time.Time) Project {
	return Project{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		People:      draft.People,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Draft holds the user-supplied fields of a project before registration.
type Draft struct {
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	People      int    `json:"people" yaml:"people" mapstructure:"people"`
}

// FilterByStatus returns the projects whose status equals status, preserving order.
// The result is always a new slice.
func FilterByStatus(projects []Project, status Status) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
