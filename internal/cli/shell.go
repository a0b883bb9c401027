package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/tracker"
	"github.com/aretw0/tracker/internal/logging"
	"github.com/aretw0/tracker/internal/presentation/tui"
	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/validation"
	"github.com/aretw0/tracker/pkg/view"
	"github.com/mitchellh/mapstructure"
)

const helpText = `Commands:
  add                          create a project (prompts for title, description, people)
  move <id> <active|finished>  move a project; <id> may be a unique prefix
  list [active|finished]       show the board, or one list
  help                         show this help
  quit                         leave the shell
`

// ErrAmbiguousID is returned when an id prefix matches more than one project.
var ErrAmbiguousID = errors.New("ambiguous project id")

// Shell is the interactive front end of the board: it reads commands line by line and
// re-renders the board after every registry notification.
type Shell struct {
	tracker *tracker.Tracker
	board   *view.Board
	in      *bufio.Scanner
	out     io.Writer
	render  tui.Renderer
	logger  *slog.Logger
	prompt  string
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithRenderer sets the renderer used for board output. Defaults to tui.Plain.
func WithRenderer(r tui.Renderer) ShellOption {
	return func(s *Shell) {
		if r != nil {
			s.render = r
		}
	}
}

// WithShellLogger sets the logger used for command failures.
func WithShellLogger(logger *slog.Logger) ShellOption {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewShell creates a shell over an App's tracker and board.
func NewShell(t *tracker.Tracker, board *view.Board, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		tracker: t,
		board:   board,
		in:      bufio.NewScanner(in),
		out:     out,
		render:  tui.Plain,
		logger:  logging.NewNop(),
		prompt:  "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes commands until quit, EOF or ctx cancellation.
// The board is subscribed after its lists, so every redraw sees the lists already updated.
func (s *Shell) Run(ctx context.Context) error {
	unsubscribe := s.tracker.Subscribe(func([]domain.Project) {
		s.printBoard()
	})
	defer unsubscribe()

	s.printBoard()

	for {
		if err := ctx.Err(); err != nil {
			return handleExecutionError(err)
		}

		line, err := s.readLine(s.prompt)
		if err != nil {
			return handleExecutionError(err)
		}

		quit, err := s.Exec(ctx, line)
		if isInterrupted(err) {
			return nil
		}
		if err != nil {
			s.logger.DebugContext(ctx, "Command failed", "line", line, "err", err)
			printSystemMessage(s.out, "Error: %v", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs one command line. It reports whether the shell should stop.
func (s *Shell) Exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return false, nil
	case "list", "ls":
		return false, s.list(args)
	case "add":
		return false, s.add(ctx)
	case "move", "mv":
		return false, s.move(ctx, args)
	default:
		return false, fmt.Errorf("unknown command %q (type 'help')", cmd)
	}
}

func (s *Shell) add(ctx context.Context) error {
	form := map[string]any{}
	for _, field := range []struct{ key, label string }{
		{"title", "Title"},
		{"description", "Description"},
		{"people", "People"},
	} {
		answer, err := s.readLine(field.label + ": ")
		if err != nil {
			return err
		}
		form[field.key] = strings.TrimSpace(answer)
	}

	var draft domain.Draft
	if err := mapstructure.WeakDecode(form, &draft); err != nil {
		s.invalid(&validation.FieldError{Field: "people", Reason: "must be a number"})
		return nil
	}

	p, err := s.tracker.AddDraft(ctx, draft)
	if errors.Is(err, domain.ErrInvalidInput) {
		s.invalid(err)
		return nil
	}
	if err != nil {
		return err
	}

	printSystemMessage(s.out, "Added %q (%s)", p.Title, view.ShortID(p.ID))
	return nil
}

func (s *Shell) invalid(err error) {
	printSystemMessage(s.out, "Invalid input, please try again")
	fields := validation.Fields(err)
	if len(fields) == 0 {
		fmt.Fprintf(s.out, "  - %v\n", err)
		return
	}
	for _, fe := range fields {
		fmt.Fprintf(s.out, "  - %s\n", fe.Error())
	}
}

func (s *Shell) move(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: move <id> <active|finished>")
	}

	status, err := domain.ParseStatus(args[1])
	if err != nil {
		return err
	}

	id, err := s.resolve(args[0])
	if err != nil {
		return err
	}

	p, _ := s.tracker.Get(id)
	if p.Status == status {
		printSystemMessage(s.out, "%q is already %s", p.Title, status)
		return nil
	}
	if err := s.tracker.MoveStatus(ctx, id, status); err != nil {
		return err
	}

	printSystemMessage(s.out, "Moved %q to %s", p.Title, tui.StatusLabel(status))
	return nil
}

// resolve maps an exact id or a unique id prefix to a project id.
func (s *Shell) resolve(ref string) (string, error) {
	if _, ok := s.tracker.Get(ref); ok {
		return ref, nil
	}

	var matches []string
	for _, p := range s.tracker.Projects() {
		if strings.HasPrefix(p.ID, ref) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", domain.ErrProjectNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d projects", ErrAmbiguousID, ref, len(matches))
	}
}

func (s *Shell) list(args []string) error {
	if len(args) == 0 {
		s.printBoard()
		return nil
	}

	status, err := domain.ParseStatus(args[0])
	if err != nil {
		return err
	}
	s.print(view.ListMarkdown(s.board.List(status)))
	return nil
}

func (s *Shell) printBoard() {
	s.print(s.board.Markdown())
}

func (s *Shell) print(markdown string) {
	out, err := s.render(markdown)
	if err != nil {
		s.logger.Warn("Render failed, falling back to plain output", "err", err)
		out = markdown
	}
	fmt.Fprint(s.out, out)
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}
