/*
Package tracker is an observable project registry with filtered subscriber projections.

A single registry owns every project. Views never keep their own copy of the truth: they
subscribe to the registry, receive a fresh snapshot of all projects after each mutation,
and filter it down to what they display. The typical board has an "active" and a
"finished" list; moving a project between them is a single MoveStatus call.

# Usage

	t := tracker.New()

	board := view.NewBoard()
	board.Attach(t)

	p, err := t.Add(ctx, "Build bridge", "Steel truss over river", 3)
	if err != nil {
		// errors.Is(err, domain.ErrInvalidInput)
	}

	_ = t.MoveStatus(ctx, p.ID, domain.StatusFinished)
	fmt.Print(board.Markdown())

# Notification model

Mutations notify synchronously. Every listener registered when the mutation happened is
called, in registration order, before Add or MoveStatus returns. Each listener receives its
own copy of the project list. Adding a project notifies once; moving a project notifies
once; moving it to the status it already has notifies no one.

# Packages

  - pkg/domain: Project, Status, Draft, events and sentinel errors.
  - pkg/registry: the observable registry and identity generators.
  - pkg/validation: form rules applied before a project is registered.
  - pkg/view: per-status lists and the markdown board.
  - pkg/observability: Prometheus metrics and logging hooks.
*/
package tracker
