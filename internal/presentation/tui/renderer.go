package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Renderer transforms board markdown before it is written out.
type Renderer func(markdown string) (string, error)

// Plain returns the markdown untouched.
func Plain(markdown string) (string, error) {
	return markdown, nil
}

// NewRenderer returns a Renderer that renders markdown using glamour.
func NewRenderer() Renderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return Plain
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RendererFor picks glamour for terminals and Plain otherwise (pipes, files, tests).
func RendererFor(w io.Writer) Renderer {
	if IsTerminal(w) {
		return NewRenderer()
	}
	return Plain
}
