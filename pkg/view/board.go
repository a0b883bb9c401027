package view

import (
	"fmt"
	"strings"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/ports"
	"github.com/google/uuid"
)

// shortIDLength is how many leading characters of a UUID the board prints.
const shortIDLength = 8

// Board shows one List per status, in domain.Statuses order.
type Board struct {
	lists  []*List
	detach []func()
}

// NewBoard creates a board with an Active and a Finished list.
// Options are applied to every list.
func NewBoard(opts ...ListOption) *Board {
	b := &Board{}
	for _, status := range domain.Statuses {
		b.lists = append(b.lists, NewList(status, opts...))
	}
	return b
}

// Attach subscribes every list to sub, in display order.
func (b *Board) Attach(sub ports.Subscriber) {
	for _, l := range b.lists {
		b.detach = append(b.detach, l.Attach(sub))
	}
}

// Detach removes every subscription made by Attach.
func (b *Board) Detach() {
	for _, fn := range b.detach {
		fn()
	}
	b.detach = nil
}

// Lists returns the lists in display order.
func (b *Board) Lists() []*List {
	return b.lists
}

// List returns the list for status, or nil.
func (b *Board) List(status domain.Status) *List {
	for _, l := range b.lists {
		if l.status == status {
			return l
		}
	}
	return nil
}

// Markdown renders every list.
func (b *Board) Markdown() string {
	var sb strings.Builder
	for i, l := range b.lists {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(ListMarkdown(l))
	}
	return sb.String()
}

// ListMarkdown renders one list as a markdown section.
func ListMarkdown(l *List) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", l.Title())

	projects := l.Projects()
	if len(projects) == 0 {
		sb.WriteString("_No projects._\n")
		return sb.String()
	}

	for _, p := range projects {
		fmt.Fprintf(&sb, "- **%s** `%s`\n", p.Title, ShortID(p.ID))
		fmt.Fprintf(&sb, "  - %s\n", Persons(p.People))
		fmt.Fprintf(&sb, "  - %s\n", p.Description)
	}
	return sb.String()
}

// Persons formats a team size, e.g. "1 person assigned" or "3 persons assigned".
func Persons(n int) string {
	if n == 1 {
		return "1 person assigned"
	}
	return fmt.Sprintf("%d persons assigned", n)
}

// ShortID abbreviates UUIDs to their first group of hex digits.
// Any other identity, e.g. a sequence id like "project-12", is printed whole.
func ShortID(id string) string {
	// uuid.Parse also accepts the urn and braced forms; only the canonical one is cut.
	if len(id) != 36 {
		return id
	}
	if _, err := uuid.Parse(id); err != nil {
		return id
	}
	return id[:shortIDLength]
}
