package border

import (
	"math/rand/v2"

	"github.com/voxelsculpt/hrptree/indexset"
	"github.com/voxelsculpt/hrptree/internal/invariant"
)

// Border is the ordered set of vertices currently eligible to extend a
// subtree.State: unselected vertices with exactly one selected neighbor
// and an id greater than the subtree's root.
type Border struct {
	set *indexset.Set
}

// New creates an empty Border over a graph with numVertices vertices.
func New(numVertices int) (*Border, error) {
	set, err := indexset.New(numVertices)
	if err != nil {
		return nil, err
	}
	return &Border{set: set}, nil
}

// Contains reports whether v is currently in the border.
func (b *Border) Contains(v int) bool { return b.set.Contains(v) }

// Size returns the number of vertices currently in the border.
func (b *Border) Size() int { return b.set.Size() }

// Empty reports whether the border has no candidates.
func (b *Border) Empty() bool { return b.set.Empty() }

// Front returns the first candidate and true, or (0, false) if empty.
func (b *Border) Front() (int, bool) { return b.set.Front() }

// Next returns the candidate following v, and true, or (0, false) if v is
// the last member.
func (b *Border) Next(v int) (int, bool) { return b.set.Next(v) }

// PopFront removes and returns the first candidate.
// Precondition: !Empty().
func (b *Border) PopFront() int { return b.set.PopFront() }

// PushFront reinserts v at the front of the border.
// Precondition: v is not already a member.
func (b *Border) PushFront(v int) { b.set.PushFront(v) }

// PushBack reinserts v at the back of the border.
// Precondition: v is not already a member.
func (b *Border) PushBack(v int) { b.set.PushBack(v) }

// Remove deletes v from the border if present, reporting whether it was.
func (b *Border) Remove(v int) bool { return b.set.Remove(v) }

// Each calls fn(v) for every candidate, front to back. fn must not remove
// v itself; see indexset.Set.Each.
func (b *Border) Each(fn func(v int)) { b.set.Each(fn) }

// Clone returns an independent copy of b; mutating one does not affect
// the other.
func (b *Border) Clone() *Border {
	return &Border{set: b.set.Clone()}
}

// PopRandom removes and returns a uniformly random candidate.
// Precondition: !Empty().
//
// Complexity: O(Size()).
func (b *Border) PopRandom(rng *rand.Rand) int {
	n := b.Size()
	invariant.Check(n > 0, "PopRandom: border is empty")

	k := rng.IntN(n)
	v, _ := b.set.Front()
	for i := 0; i < k; i++ {
		v, _ = b.set.Next(v)
	}
	b.set.Remove(v)

	return v
}

// actionType tags a single History entry.
type actionType int

const (
	// actionStop marks the boundary pushed by Update before any mutation,
	// consumed (but not replayed) by a matching Restore.
	actionStop actionType = iota
	// actionAdd records that Update inserted a vertex into the border;
	// Restore undoes it by removing the vertex.
	actionAdd
	// actionRem records that Update removed a vertex from the border;
	// Restore undoes it by reinserting the vertex at the front.
	actionRem
)

type historyEntry struct {
	action actionType
	vertex int
}

// History is a LIFO stack of border mutations, delimited into frames by
// stop markers. One frame corresponds to exactly one Update call.
type History struct {
	entries []historyEntry
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of entries currently on the stack, including
// stop markers.
func (h *History) Len() int { return len(h.entries) }

// Empty reports whether the history has no entries at all.
func (h *History) Empty() bool { return len(h.entries) == 0 }

// Clone returns an independent copy of h; mutating one does not affect
// the other. Needed whenever a worker pool hands a branch of the search
// off to another goroutine, which must own its own Border/History/State
// triple from that point on.
func (h *History) Clone() *History {
	return &History{entries: append([]historyEntry(nil), h.entries...)}
}
