package view_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/registry"
	"github.com/aretw0/tracker/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_FiltersByStatus(t *testing.T) {
	ctx := context.Background()
	reg := registry.New(registry.WithIDGenerator(registry.NewSequenceGenerator("")))

	var changes int
	active := view.NewList(domain.StatusActive, view.WithOnChange(func(*view.List) { changes++ }))
	finished := view.NewList(domain.StatusFinished)
	active.Attach(reg)
	finished.Attach(reg)

	bridge, err := reg.Add(ctx, "Build bridge", "Cross the river", 3)
	require.NoError(t, err)
	_, err = reg.Add(ctx, "Paint wall", "Make it blue", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, active.Len())
	assert.Zero(t, finished.Len())

	require.NoError(t, reg.MoveStatus(ctx, bridge.ID, domain.StatusFinished))

	require.Equal(t, 1, active.Len())
	assert.Equal(t, "Paint wall", active.Projects()[0].Title)
	require.Equal(t, 1, finished.Len())
	assert.Equal(t, bridge.ID, finished.Projects()[0].ID)
	assert.Equal(t, 3, changes)
}

func TestList_Title(t *testing.T) {
	assert.Equal(t, "ACTIVE PROJECTS", view.NewList(domain.StatusActive).Title())
	assert.Equal(t, "FINISHED PROJECTS", view.NewList(domain.StatusFinished).Title())
}

func TestBoard_Markdown(t *testing.T) {
	ctx := context.Background()
	reg := registry.New(registry.WithIDGenerator(registry.NewSequenceGenerator("")))
	board := view.NewBoard()
	board.Attach(reg)

	assert.Len(t, board.Lists(), 2)
	assert.Nil(t, board.List(domain.Status(9)))

	p, err := reg.Add(ctx, "Build bridge", "Cross the river", 1)
	require.NoError(t, err)
	_, err = reg.Add(ctx, "Paint wall", "Make it blue", 2)
	require.NoError(t, err)
	require.NoError(t, reg.MoveStatus(ctx, p.ID, domain.StatusFinished))

	md := board.Markdown()
	assert.Contains(t, md, "## ACTIVE PROJECTS")
	assert.Contains(t, md, "## FINISHED PROJECTS")
	assert.Contains(t, md, "- **Build bridge** `p-1`")
	assert.Contains(t, md, "1 person assigned")
	assert.Contains(t, md, "2 persons assigned")
	assert.Less(t, strings.Index(md, "Paint wall"), strings.Index(md, "FINISHED PROJECTS"))
	assert.Greater(t, strings.Index(md, "Build bridge"), strings.Index(md, "FINISHED PROJECTS"))

	board.Detach()
	_, err = reg.Add(ctx, "Late", "Added after detach", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, board.List(domain.StatusActive).Len())
	assert.Zero(t, reg.Listeners())
}

func TestBoard_EmptyLists(t *testing.T) {
	md := view.NewBoard().Markdown()
	assert.Contains(t, md, "_No projects._")
}

func TestShortID(t *testing.T) {
	tests := map[string]string{
		"p-1":                                  "p-1",
		"project-12":                           "project-12",
		"проект-1":                             "проект-1",
		"0b7e4a2c-1111-2222-3333-444455556666": "0b7e4a2c",
		"urn:uuid:0b7e4a2c-1111-2222-3333-444455556666": "urn:uuid:0b7e4a2c-1111-2222-3333-444455556666",
	}
	for in, want := range tests {
		assert.Equal(t, want, view.ShortID(in), in)
	}
}

func TestBoard_DistinctIDsWithLongSequencePrefix(t *testing.T) {
	ctx := context.Background()
	reg := registry.New(registry.WithIDGenerator(registry.NewSequenceGenerator("project")))
	board := view.NewBoard()
	board.Attach(reg)

	a, err := reg.Add(ctx, "Build bridge", "Cross the river", 3)
	require.NoError(t, err)
	b, err := reg.Add(ctx, "Paint wall", "Make it blue", 2)
	require.NoError(t, err)

	assert.NotEqual(t, view.ShortID(a.ID), view.ShortID(b.ID))

	md := board.Markdown()
	assert.Contains(t, md, "`project-1`")
	assert.Contains(t, md, "`project-2`")
}
