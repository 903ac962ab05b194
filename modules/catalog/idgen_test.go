package catalog

import "testing"

func TestClockIDGeneratorStrictlyIncreasing(t *testing.T) {
	g := NewClockIDGenerator()
	prev := g.NextID()
	for i := 0; i < 1000; i++ {
		next := g.NextID()
		if next <= prev {
			t.Fatalf("NextID() = %d after %d, want strictly increasing", next, prev)
		}
		prev = next
	}
}

func TestSequenceIDGenerator(t *testing.T) {
	g := NewSequenceIDGenerator(42)
	if got := g.NextID(); got != 42 {
		t.Errorf("NextID() = %d, want 42", got)
	}
	if got := g.NextID(); got != 43 {
		t.Errorf("NextID() = %d, want 43", got)
	}
}
