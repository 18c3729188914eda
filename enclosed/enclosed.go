package enclosed

import (
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/subtree"
)

// HasEnclosedSpace reports whether sub leaves an unselected vertex of
// grid unreachable, by unselected vertices alone, from the grid's outer
// shell.
//
// The search queues every outer-shell vertex regardless of selection
// state, and on dequeue acts only on unselected vertices it has not yet
// counted, enqueuing all of that vertex's neighbors unconditionally.
// Reprocessing an already-counted or selected vertex is a harmless no-op.
//
// Complexity: O(|V| + |E|).
func HasEnclosedSpace(grid *hrpgraph.Grid, sub *subtree.State) bool {
	numVertices := grid.NumVertices()
	reached := make([]bool, numVertices)

	queue := make([]int, 0, numVertices)
	for v := 0; v < numVertices; v++ {
		if grid.IsOnOuterShell(v) {
			queue = append(queue, v)
		}
	}

	numConnected := 0
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		if sub.Has(x) || reached[x] {
			continue
		}

		reached[x] = true
		numConnected++

		queue = append(queue, grid.Neighbors(x)...)
	}

	return sub.NSelected()+numConnected != numVertices
}
