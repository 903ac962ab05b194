package catalog

import (
	"sync"
	"time"
)

// IDGenerator produces unique product ids. The store takes it as a
// dependency so tests can run with a deterministic sequence.
type IDGenerator interface {
	NextID() int64
}

// ClockIDGenerator derives ids from the wall clock in milliseconds, the
// same scheme the persisted records use. A strictly increasing floor
// keeps two calls on the same millisecond from colliding.
type ClockIDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewClockIDGenerator creates a clock-based id generator.
func NewClockIDGenerator() *ClockIDGenerator {
	return &ClockIDGenerator{}
}

// NextID returns the next unique id.
func (g *ClockIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// SequenceIDGenerator hands out consecutive ids starting from a fixed
// base. Intended for tests.
type SequenceIDGenerator struct {
	mu   sync.Mutex
	next int64
}

// NewSequenceIDGenerator creates a sequence generator starting at start.
func NewSequenceIDGenerator(start int64) *SequenceIDGenerator {
	return &SequenceIDGenerator{next: start}
}

// NextID returns the next id in the sequence.
func (g *SequenceIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.next
	g.next++
	return id
}
