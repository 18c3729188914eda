package border

import (
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/subtree"
)

// Update reflects, in b, the effect of having just added id to sub (the
// caller must call sub.Add(id) before calling Update). For every neighbor
// y of id, in ascending id order:
//
//   - if y now has more than one selected neighbor, y is no longer a
//     valid extension candidate and is removed from b;
//   - else if y > sub.Root() and y is not selected, y becomes a new
//     extension candidate and is inserted at the front of b.
//
// Every mutation performed is recorded in history as one frame, delimited
// by a leading stop marker; a matching Restore call undoes exactly this
// frame.
//
// Complexity: O(degree(id)).
func Update(grid *hrpgraph.Grid, sub *subtree.State, b *Border, id int, history *History) {
	history.entries = append(history.entries, historyEntry{action: actionStop})

	for _, neighbor := range grid.Neighbors(id) {
		switch {
		case sub.Count(neighbor) > 1:
			if b.Remove(neighbor) {
				history.entries = append(history.entries, historyEntry{action: actionRem, vertex: neighbor})
			}
		case neighbor > sub.Root() && !sub.Has(neighbor):
			b.PushFront(neighbor)
			history.entries = append(history.entries, historyEntry{action: actionAdd, vertex: neighbor})
		}
	}
}

// Restore undoes the most recent Update frame recorded in history,
// popping entries in reverse until the frame's stop marker is consumed
// and applying the inverse of each: a vertex Update added to b is
// removed, and a vertex Update removed from b is reinserted at the
// front. At the end, b and history are bit-identical to their state
// immediately before the corresponding Update call.
//
// Precondition: history is non-empty and its top frame is well-formed
// (was produced by a single Update call with no entries popped since).
func Restore(b *Border, history *History) {
	for {
		n := len(history.entries) - 1
		entry := history.entries[n]
		history.entries = history.entries[:n]

		switch entry.action {
		case actionAdd:
			b.Remove(entry.vertex)
		case actionRem:
			b.PushFront(entry.vertex)
		case actionStop:
			return
		}
	}
}
