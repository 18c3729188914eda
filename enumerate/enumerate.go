package enumerate

import (
	"iter"
	"sort"

	"github.com/voxelsculpt/hrptree/border"
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/subtree"
)

// Enumerator yields the vertex set of every induced subtree of a grid,
// starting with the empty set, in reverse-search order. Not safe for
// concurrent use; the slice returned by Current is only valid until the
// next call to Next.
type Enumerator struct {
	grid *hrpgraph.Grid

	emittedEmpty bool
	nextRoot     int
	done         bool
	err          error

	sub  *subtree.State
	b    *border.Border
	hist *border.History

	// selected mirrors, in push order, the vertices currently chosen for
	// the active root: selected[0] is the root, and selected[1:] tracks
	// stack 1:1 (selected[i+1] was added when stack[i] was pushed).
	selected []int
	stack    []int

	// popped[d] holds, in pop order, the border vertices taken at depth d
	// (d = len(stack)); they are pushed back when that frame ends so the
	// parent frame sees its border as it was before the frame began.
	popped [][]int

	justEntered bool
	current     []int
}

// New creates an Enumerator over grid. grid must not be nil.
func New(grid *hrpgraph.Grid) *Enumerator {
	return &Enumerator{grid: grid, nextRoot: 0}
}

// Err returns the first error encountered, if any. Once non-nil, Next
// always returns false.
func (e *Enumerator) Err() error { return e.err }

// Current returns a copy of the vertex set yielded by the most recent
// call to Next, sorted ascending. The result is nil for the very first
// (empty) subtree.
func (e *Enumerator) Current() []int {
	out := append([]int(nil), e.current...)
	sort.Ints(out)
	return out
}

// State returns the live subtree.State backing the most recent call to
// Next, or nil for the very first (empty) subtree. The returned State is
// only valid until the next call to Next, which may mutate it in place;
// callers needing it afterward must Clone it first.
func (e *Enumerator) State() *subtree.State {
	return e.sub
}

// Next advances to the next induced subtree and reports whether one was
// produced. It returns false once every subtree has been visited or an
// error occurred; check Err to distinguish the two.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}

	if !e.emittedEmpty {
		e.emittedEmpty = true
		e.current = nil
		return true
	}

	for {
		if e.sub == nil {
			if e.nextRoot >= e.grid.NumVertices() {
				e.done = true
				return false
			}
			root := e.nextRoot
			e.nextRoot++

			sub, err := subtree.New(e.grid, root)
			if err != nil {
				e.err = err
				e.done = true
				return false
			}
			b, err := border.New(e.grid.NumVertices())
			if err != nil {
				e.err = err
				e.done = true
				return false
			}
			hist := border.NewHistory()
			border.Update(e.grid, sub, b, root, hist)

			e.sub, e.b, e.hist = sub, b, hist
			e.selected = append(e.selected[:0], root)
			e.stack = e.stack[:0]
			e.justEntered = true
		}

		if e.justEntered {
			e.justEntered = false
			e.current = e.selected
			return true
		}

		depth := len(e.stack)
		for len(e.popped) <= depth {
			e.popped = append(e.popped, nil)
		}

		if e.b.Empty() {
			for _, v := range e.popped[depth] {
				e.b.PushBack(v)
			}
			e.popped[depth] = e.popped[depth][:0]

			if depth == 0 {
				e.sub = nil
				continue
			}

			top := e.stack[len(e.stack)-1]
			e.stack = e.stack[:len(e.stack)-1]
			e.selected = e.selected[:len(e.selected)-1]

			border.Restore(e.b, e.hist)
			e.sub.Remove(top)
			continue
		}

		x := e.b.PopFront()
		e.popped[depth] = append(e.popped[depth], x)
		if e.sub.Add(x) == subtree.Accepted {
			border.Update(e.grid, e.sub, e.b, x, e.hist)
			e.stack = append(e.stack, x)
			e.selected = append(e.selected, x)
			e.justEntered = true
		}
	}
}

// All returns a Go 1.23 iterator over every induced subtree's vertex set,
// in the same order Next/Current would produce. Each yielded slice is a
// fresh copy.
func (e *Enumerator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for e.Next() {
			if !yield(e.Current()) {
				return
			}
		}
	}
}
