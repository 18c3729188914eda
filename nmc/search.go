package nmc

import (
	"math/rand/v2"

	"github.com/voxelsculpt/hrptree/border"
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/subtree"
)

// Search runs nested Monte-Carlo exploration over induced subtrees of a
// fixed grid. The zero value is not usable; construct with NewSearch.
type Search struct {
	grid   *hrpgraph.Grid
	rng    *rand.Rand
	onLeaf func(sub *subtree.State)
}

// NewSearch creates a Search over grid. onLeaf, if non-nil, is invoked
// every time a level-0 playout terminates (its border is exhausted),
// letting the caller track the largest subtree seen, check for enclosed
// space, and persist results — this is the search's only reporting
// side effect; Run's return values exist purely to let nested calls pick
// which candidate to commit to next.
func NewSearch(grid *hrpgraph.Grid, rng *rand.Rand, onLeaf func(sub *subtree.State)) *Search {
	return &Search{grid: grid, rng: rng, onLeaf: onLeaf}
}

// playout randomly extends sub (already a private clone, mutated
// destructively) until no valid extension remains, reporting the result
// to onLeaf, and returns the final size.
func (s *Search) playout(sub *subtree.State, b *border.Border) int {
	for !b.Empty() {
		x, ok := s.removeSafeRandom(sub, b)
		if !ok {
			break
		}
		sub.Add(x)
		simpleUpdate(s.grid, sub, b, x)
	}

	if s.onLeaf != nil {
		s.onLeaf(sub)
	}

	return sub.NSelected()
}

// removeSafeRandom repeatedly removes a uniformly random border candidate
// until one that is safe to add is found, or the border empties out.
func (s *Search) removeSafeRandom(sub *subtree.State, b *border.Border) (int, bool) {
	for !b.Empty() {
		x := b.PopRandom(s.rng)
		if sub.CanAdd(x) {
			return x, true
		}
	}
	return 0, false
}

// simpleUpdate updates the border after x was added, without recording
// any history — used only by playout, which never needs to backtrack.
func simpleUpdate(grid *hrpgraph.Grid, sub *subtree.State, b *border.Border, x int) {
	for _, y := range grid.Neighbors(x) {
		if sub.Count(y) > 1 {
			b.Remove(y)
		} else if y > sub.Root() && !sub.Has(y) {
			b.PushFront(y)
		}
	}
}

// Run explores from the current shared state (sub, b, hist) to a
// remaining depth of level, restoring sub and hist to exactly their entry
// state before returning, and b to the same set of candidates (their
// front-to-back order may differ).
//
// It repeatedly: sets aside any border candidate that is not currently
// safe to add, evaluates every remaining candidate by the subtree it
// would lead to (a random playout if level is 0, or a level-1 Run
// otherwise), tracks this round's largest result along with the
// candidate that led to it, then permanently commits to that candidate
// and repeats against the grown subtree — until no candidate remains.
// The committed chain is then fully unwound.
//
// Returns the largest result observed anywhere during this call's
// exploration, the candidate whose evaluation produced it (or the first
// committed candidate, when the fully committed subtree is itself the
// largest), and whether any result was observed at all (false only when
// the border was empty on entry). A Run one level up uses only the size
// and ok to rank its own candidates.
func (s *Search) Run(sub *subtree.State, b *border.Border, hist *border.History, level int) (bestResult, bestFirst int, ok bool) {
	var committed []int

	for {
		var stashed []int
		b.Each(func(v int) {
			if !sub.CanAdd(v) {
				stashed = append(stashed, v)
			}
		})
		for _, v := range stashed {
			b.Remove(v)
		}

		if b.Empty() {
			for i := len(stashed) - 1; i >= 0; i-- {
				b.PushFront(stashed[i])
			}
			break
		}

		var tried []int
		var roundBest, roundBestFirst int
		roundOK := false
		for !b.Empty() {
			x := b.PopFront()
			tried = append(tried, x)

			sub.Add(x)
			border.Update(s.grid, sub, b, x, hist)

			var size int
			if level == 0 {
				size = s.playout(sub.Clone(), b.Clone())
			} else if childResult, _, childOK := s.Run(sub, b, hist, level-1); childOK {
				size = childResult
			} else {
				size = sub.NSelected()
			}

			if !ok || size > bestResult {
				ok = true
				bestResult = size
				bestFirst = x
			}
			if !roundOK || size > roundBest {
				roundOK = true
				roundBest = size
				roundBestFirst = x
			}

			border.Restore(b, hist)
			sub.Remove(x)
		}

		for i := len(tried) - 1; i >= 0; i-- {
			b.PushFront(tried[i])
		}
		for i := len(stashed) - 1; i >= 0; i-- {
			b.PushFront(stashed[i])
		}

		// Commit to this round's own best candidate, never a stale one
		// from an earlier round: bestFirst/bestResult track the best
		// seen across the whole call for the return value, and a later
		// round's result only overwrites them on a strict improvement.
		sub.Add(roundBestFirst)
		b.Remove(roundBestFirst)
		committed = append(committed, roundBestFirst)
		border.Update(s.grid, sub, b, roundBestFirst, hist)
	}

	result := sub.NSelected()
	if !ok || result > bestResult {
		ok = true
		bestResult = result
		if len(committed) > 0 {
			bestFirst = committed[0]
		}
	}

	for i := len(committed) - 1; i >= 0; i-- {
		v := committed[i]
		sub.Remove(v)
		border.Restore(b, hist)
		b.PushBack(v)
	}

	return bestResult, bestFirst, ok
}
