package subtree

import "github.com/voxelsculpt/hrptree/hrpgraph"

// AddResult reports whether Add accepted or rejected an extension.
type AddResult int

const (
	// Rejected means the extension violated the physical validity rule and
	// was reverted; S is unchanged.
	Rejected AddResult = iota
	// Accepted means v is now selected.
	Accepted
)

// State tracks an induced subtree S of grid: which vertices are selected,
// and each vertex's effective degree (count of selected neighbors,
// regardless of the vertex's own selection state).
//
// Not safe for concurrent use.
type State struct {
	grid            *hrpgraph.Grid
	selected        []bool
	effectiveDegree []uint8
	root            int
	nSelected       int
}

// New creates a State over grid with only root selected. Every neighbor
// of root has its effective degree seeded to 1, mirroring the original
// engine's Subtree(r): add(r) construction.
//
// Complexity: O(|V|) time and memory.
func New(grid *hrpgraph.Grid, root int) (*State, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	s := &State{
		grid:            grid,
		selected:        make([]bool, grid.NumVertices()),
		effectiveDegree: make([]uint8, grid.NumVertices()),
		root:            root,
		nSelected:       1,
	}
	s.selected[root] = true
	for _, n := range grid.Neighbors(root) {
		s.effectiveDegree[n]++
	}

	return s, nil
}
