package ports

import (
	"context"
	"testing"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every snapshot a listener receives.
type recorder struct {
	calls [][]domain.Project
}

func (r *recorder) listen(projects []domain.Project) {
	r.calls = append(r.calls, projects)
}

func (r *recorder) last() []domain.Project {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

// RunRegistryContract runs a suite of tests to verify that a ProjectRegistry implementation
// adheres to the defined interface contract. newRegistry must return an empty registry.
func RunRegistryContract(t *testing.T, newRegistry func() ProjectRegistry) {
	ctx := context.Background()

	t.Run("Add assigns distinct identities", func(t *testing.T) {
		reg := newRegistry()
		const n = 50

		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			p, err := reg.Add(ctx, "Title", "Long enough description", 2)
			require.NoError(t, err)
			require.NotEmpty(t, p.ID)
			assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
			seen[p.ID] = true
		}

		assert.Len(t, reg.Projects(), n)
	})

	t.Run("Add notifies once with the new project last", func(t *testing.T) {
		reg := newRegistry()
		rec := &recorder{}
		reg.Subscribe(rec.listen)

		first, err := reg.Add(ctx, "Build bridge", "Cross the river", 3)
		require.NoError(t, err)
		require.Len(t, rec.calls, 1)
		require.Len(t, rec.last(), 1)
		assert.Equal(t, first.ID, rec.last()[0].ID)
		assert.Equal(t, domain.StatusActive, rec.last()[0].Status)

		second, err := reg.Add(ctx, "Paint wall", "Make it blue", 2)
		require.NoError(t, err)
		require.Len(t, rec.calls, 2)
		snapshot := rec.last()
		require.Len(t, snapshot, 2)
		assert.Equal(t, first.ID, snapshot[0].ID)
		assert.Equal(t, second.ID, snapshot[1].ID)
	})

	t.Run("Listeners run sequentially in registration order", func(t *testing.T) {
		reg := newRegistry()
		var trace []string
		reg.Subscribe(func([]domain.Project) {
			trace = append(trace, "A:start")
			trace = append(trace, "A:end")
		})
		reg.Subscribe(func([]domain.Project) {
			trace = append(trace, "B:start")
			trace = append(trace, "B:end")
		})

		_, err := reg.Add(ctx, "Title", "Long enough description", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"A:start", "A:end", "B:start", "B:end"}, trace)
	})

	t.Run("MoveStatus to a new status notifies once", func(t *testing.T) {
		reg := newRegistry()
		p, err := reg.Add(ctx, "Title", "Long enough description", 1)
		require.NoError(t, err)

		rec := &recorder{}
		reg.Subscribe(rec.listen)

		require.NoError(t, reg.MoveStatus(ctx, p.ID, domain.StatusFinished))
		require.Len(t, rec.calls, 1)
		assert.Equal(t, domain.StatusFinished, rec.last()[0].Status)
	})

	t.Run("MoveStatus to the same status does not notify", func(t *testing.T) {
		reg := newRegistry()
		p, err := reg.Add(ctx, "Title", "Long enough description", 1)
		require.NoError(t, err)

		rec := &recorder{}
		reg.Subscribe(rec.listen)

		require.NoError(t, reg.MoveStatus(ctx, p.ID, domain.StatusActive))
		assert.Empty(t, rec.calls)
	})

	t.Run("MoveStatus on an unknown id changes nothing", func(t *testing.T) {
		reg := newRegistry()
		_, err := reg.Add(ctx, "Title", "Long enough description", 1)
		require.NoError(t, err)
		before := reg.Projects()

		rec := &recorder{}
		reg.Subscribe(rec.listen)

		err = reg.MoveStatus(ctx, "nonexistent-id", domain.StatusFinished)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		}
		assert.Empty(t, rec.calls)
		assert.Equal(t, before, reg.Projects())
	})

	t.Run("Snapshots are isolated from registry state", func(t *testing.T) {
		reg := newRegistry()
		rec := &recorder{}
		reg.Subscribe(func(projects []domain.Project) {
			rec.listen(projects)
			for i := range projects {
				projects[i].Title = "tampered"
				projects[i].Status = domain.StatusFinished
			}
		})

		p, err := reg.Add(ctx, "Title", "Long enough description", 1)
		require.NoError(t, err)

		current := reg.Projects()
		require.Len(t, current, 1)
		assert.Equal(t, "Title", current[0].Title)
		assert.Equal(t, domain.StatusActive, current[0].Status)

		// The registry must still see the project as active, so the move notifies.
		require.NoError(t, reg.MoveStatus(ctx, p.ID, domain.StatusFinished))
		assert.Len(t, rec.calls, 2)

		current[0].Title = "also tampered"
		assert.Equal(t, "Title", reg.Projects()[0].Title)
	})

	t.Run("Unsubscribe stops delivery", func(t *testing.T) {
		reg := newRegistry()
		rec := &recorder{}
		unsubscribe := reg.Subscribe(rec.listen)

		_, err := reg.Add(ctx, "Title", "Long enough description", 1)
		require.NoError(t, err)
		unsubscribe()
		unsubscribe()

		_, err = reg.Add(ctx, "Title", "Long enough description", 1)
		require.NoError(t, err)
		assert.Len(t, rec.calls, 1)
	})

	t.Run("Scenario", func(t *testing.T) {
		reg := newRegistry()
		rec := &recorder{}
		reg.Subscribe(rec.listen)

		bridge, err := reg.Add(ctx, "Build bridge", "Cross the river", 3)
		require.NoError(t, err)
		require.Len(t, rec.last(), 1)

		wall, err := reg.Add(ctx, "Paint wall", "Make it blue", 2)
		require.NoError(t, err)
		require.Len(t, rec.last(), 2)

		require.NoError(t, reg.MoveStatus(ctx, bridge.ID, domain.StatusFinished))
		snapshot := rec.last()
		require.Len(t, snapshot, 2)
		assert.Equal(t, domain.StatusFinished, snapshot[0].Status)
		assert.Equal(t, wall.ID, snapshot[1].ID)
		assert.Equal(t, domain.StatusActive, snapshot[1].Status)

		calls := len(rec.calls)
		err = reg.MoveStatus(ctx, "nonexistent-id", domain.StatusFinished)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		}
		assert.Len(t, rec.calls, calls)
		assert.Equal(t, snapshot, rec.last())
	})
}
