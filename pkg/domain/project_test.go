package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Status
		wantErr bool
	}{
		{"active", domain.StatusActive, false},
		{"Finished", domain.StatusFinished, false},
		{"  FINISHED ", domain.StatusFinished, false},
		{"archived", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, domain.StatusActive.Valid())
	assert.True(t, domain.StatusFinished.Valid())
	assert.False(t, domain.Status(7).Valid())
	assert.Equal(t, "status(7)", domain.Status(7).String())
}

func TestProject_JSONUsesStatusNames(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := domain.NewProject("p-1", domain.Draft{Title: "Build bridge", Description: "Cross the river", People: 3}, now)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"active"`)

	var decoded domain.Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","status":"finished"}`), &decoded))
	assert.Equal(t, domain.StatusFinished, decoded.Status)

	_, err = json.Marshal(domain.Project{Status: domain.Status(9)})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestNewProject(t *testing.T) {
	now := time.Now()
	p := domain.NewProject("id-1", domain.Draft{Title: "t", Description: "d", People: 2}, now)

	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, domain.StatusActive, p.Status)
	assert.Equal(t, 2, p.People)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestFilterByStatus(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", Status: domain.StatusActive},
		{ID: "b", Status: domain.StatusFinished},
		{ID: "c", Status: domain.StatusActive},
	}

	active := domain.FilterByStatus(projects, domain.StatusActive)
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)

	active[0].Title = "changed"
	assert.Empty(t, projects[0].Title, "filtered slice must not alias the input")

	assert.Empty(t, domain.FilterByStatus(nil, domain.StatusFinished))
}
