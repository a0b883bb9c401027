package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner outputs the tracker banner.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _                  _", "#818cf8"},
		{"| |_ _ _ __ _ __ __| |_____ _ _", "#a78bfa"},
		{"|  _| '_/ _` / _/ _| / / -_) '_|", "#c084fc"},
		{" \\__|_| \\__,_\\__\\__|_\\_\\___|_|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// StatusLabel colors a status name: green for active, gray for finished.
func StatusLabel(s domain.Status) string {
	p := termenv.EnvColorProfile()
	color := "#22c55e"
	if s == domain.StatusFinished {
		color = "#9ca3af"
	}
	return termenv.String(s.String()).Foreground(p.Color(color)).String()
}
