package tracker_test

import (
	"context"
	"fmt"

	"github.com/aretw0/tracker"
	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/registry"
	"github.com/aretw0/tracker/pkg/view"
)

func Example() {
	ctx := context.Background()
	t := tracker.New(tracker.WithIDGenerator(registry.NewSequenceGenerator("p")))

	board := view.NewBoard()
	board.Attach(t)

	a, _ := t.Add(ctx, "Build bridge", "Steel truss over river", 3)
	_, _ = t.Add(ctx, "Paint fence", "White picket fence", 1)
	_ = t.MoveStatus(ctx, a.ID, domain.StatusFinished)

	fmt.Print(board.Markdown())
	// Output:
	// ## ACTIVE PROJECTS
	//
	// - **Paint fence** `p-2`
	//   - 1 person assigned
	//   - White picket fence
	//
	// ## FINISHED PROJECTS
	//
	// - **Build bridge** `p-1`
	//   - 3 persons assigned
	//   - Steel truss over river
}
