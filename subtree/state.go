package subtree

import (
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/internal/invariant"
)

// Root returns the vertex S was constructed from. It never changes.
func (s *State) Root() int {
	return s.root
}

// NSelected returns the number of currently selected vertices.
func (s *State) NSelected() int {
	return s.nSelected
}

// Has reports whether v is currently selected.
func (s *State) Has(v int) bool {
	return s.selected[v]
}

// Count returns v's effective degree: the number of currently selected
// neighbors of v, regardless of whether v itself is selected.
func (s *State) Count(v int) uint8 {
	return s.effectiveDegree[v]
}

// Exists reports whether v is a valid, currently-selected vertex. Mirrors
// the original engine's exists(i) = i != no_vertex && has(i), useful when
// scanning raw hrpgraph.Grid.Forward/Backward results that may be
// hrpgraph.NoVertex.
func (s *State) Exists(v int) bool {
	return v != hrpgraph.NoVertex && s.Has(v)
}

// Clone returns an independent copy of s; mutating one does not affect
// the other. The underlying grid is shared, since it is immutable.
func (s *State) Clone() *State {
	return &State{
		grid:            s.grid,
		selected:        append([]bool(nil), s.selected...),
		effectiveDegree: append([]uint8(nil), s.effectiveDegree...),
		root:            s.root,
		nSelected:       s.nSelected,
	}
}

// Add attempts to extend S with v. Precondition: v has exactly one
// selected neighbor u, and v > Root() — callers (package border /
// package enumerate) are responsible for only ever offering border
// vertices, so this precondition is enforced by invariant.Check rather
// than returned as a sentinel error.
//
// Accepted: v becomes selected, n_selected increments, and the effective
// degree of every neighbor of v is incremented by one.
// Rejected: the physical validity rule (3-D only) would be violated by
// this addition; S is left bit-identical to its state on entry.
//
// Complexity: O(degree(v)).
func (s *State) Add(v int) AddResult {
	invariant.Check(v > s.root, "Add(%d): vertex must exceed root %d", v, s.root)
	invariant.Check(!s.Has(v), "Add(%d): vertex already selected", v)

	neighbors := s.grid.Neighbors(v)
	u := -1
	selectedCount := 0
	for _, n := range neighbors {
		if s.Has(n) {
			u = n
			selectedCount++
		}
	}
	invariant.Check(selectedCount == 1, "Add(%d): must have exactly one selected neighbor, found %d", v, selectedCount)

	s.effectiveDegree[u]++
	s.selected[v] = true

	if !s.validate(u) {
		s.selected[v] = false
		s.effectiveDegree[u]--
		return Rejected
	}

	s.nSelected++
	for _, w := range neighbors {
		if w != u {
			s.effectiveDegree[w]++
		}
	}

	return Accepted
}

// CanAdd reports whether Add(v) would be Accepted, without mutating S.
// Precondition: v has exactly one selected neighbor and v > Root(),
// exactly as for Add.
//
// Complexity: O(degree(v)).
func (s *State) CanAdd(v int) bool {
	invariant.Check(v > s.root, "CanAdd(%d): vertex must exceed root %d", v, s.root)
	invariant.Check(!s.Has(v), "CanAdd(%d): vertex already selected", v)

	neighbors := s.grid.Neighbors(v)
	u := -1
	selectedCount := 0
	for _, n := range neighbors {
		if s.Has(n) {
			u = n
			selectedCount++
		}
	}
	invariant.Check(selectedCount == 1, "CanAdd(%d): must have exactly one selected neighbor, found %d", v, selectedCount)

	s.effectiveDegree[u]++
	s.selected[v] = true
	ok := s.validate(u)
	s.selected[v] = false
	s.effectiveDegree[u]--

	return ok
}

// Remove reverses an Accepted Add(v) exactly. Precondition: v is currently
// a leaf of S, i.e. Has(v) and v has exactly one selected neighbor — Add
// and Remove calls must be paired 1:1 in LIFO order.
//
// Complexity: O(degree(v)).
func (s *State) Remove(v int) {
	invariant.Check(s.Has(v), "Remove(%d): vertex not selected", v)

	neighbors := s.grid.Neighbors(v)
	u := -1
	selectedCount := 0
	for _, n := range neighbors {
		if s.Has(n) {
			u = n
			selectedCount++
		}
	}
	invariant.Check(selectedCount == 1, "Remove(%d): must have exactly one selected neighbor, found %d", v, selectedCount)

	for _, w := range neighbors {
		if w != u {
			s.effectiveDegree[w]--
		}
	}

	s.selected[v] = false
	s.nSelected--
	s.effectiveDegree[u]--
}

// validate reports whether i, having just gained a newly selected
// neighbor, still satisfies the physical validity rule. For dimensions
// other than 3, every vertex is always valid.
//
// The rule: i is valid iff at most one of its axes has both neighbors
// selected. Equivalently: effective_degree[i] <= 3, or effective_degree[i]
// == 4 with the both-selected axis being unique, which holds iff every
// axis has at least one selected neighbor (if some axis had none, the
// other two axes would have to contribute 2 each to reach 4, i.e. two
// fully-selected axes).
func (s *State) validate(i int) bool {
	if s.grid.NumDims() != 3 {
		return true
	}
	if s.Count(i) != 4 {
		return s.Count(i) < 4
	}
	for axis := 0; axis < 3; axis++ {
		if !s.Exists(s.grid.Forward(axis, i)) && !s.Exists(s.grid.Backward(axis, i)) {
			return false
		}
	}

	return true
}
