package testutils

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/stretchr/testify/require"
)

// WriteFile creates name with content inside a temporary directory and returns its
// absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)

	return path
}

// Recorder is a listener that keeps every snapshot it receives.
type Recorder struct {
	mu    sync.Mutex
	calls [][]domain.Project
}

// Listen records one notification. Pass it to Subscribe.
func (r *Recorder) Listen(projects []domain.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, projects)
}

// Calls returns how many notifications were received.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent snapshot, or nil.
func (r *Recorder) Last() []domain.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return slices.Clone(r.calls[len(r.calls)-1])
}
