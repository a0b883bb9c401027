package registry

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// UUIDGenerator produces random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator produces monotonic IDs of the form "<prefix>-<n>", starting at 1.
// Safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a sequence generator. An empty prefix defaults to "p".
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "p"
	}
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next ID in the sequence.
func (g *SequenceGenerator) NewID() string {
	return g.prefix + "-" + strconv.FormatUint(g.next.Add(1), 10)
}
