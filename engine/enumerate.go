package engine

import (
	"fmt"

	"github.com/voxelsculpt/hrptree/border"
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/subtree"
	"github.com/voxelsculpt/hrptree/workerpool"
)

// RunEnumerate performs a complete reverse-search enumeration of every
// induced subtree of grid, reporting the largest one found (with and
// without enclosed space) to the configured output paths. One root-level
// task is queued per vertex, directly grounded on
// original_source/treeEnumerator_threaded.cpp's main loop
// (`for (x...) pool.push(branch,...)`); within a root, branch()
// recurses depth-first, handing a sub-frame off to an idle worker — as
// a deep clone of the current S/B/H — only when IdleWorkers() suggests
// one is free, and otherwise recursing in place.
func RunEnumerate(grid *hrpgraph.Grid, opts ...Option) (*Result, error) {
	if grid == nil {
		return nil, fmt.Errorf("engine: RunEnumerate: %w", ErrNilGrid)
	}

	cfg := newConfig(opts...)
	ctx := newContext(cfg)
	pool := workerpool.New(cfg.workers)

	for root := 0; root < grid.NumVertices(); root++ {
		sub, err := subtree.New(grid, root)
		if err != nil {
			return nil, fmt.Errorf("engine: RunEnumerate: %w", err)
		}
		b, err := border.New(grid.NumVertices())
		if err != nil {
			return nil, fmt.Errorf("engine: RunEnumerate: %w", err)
		}
		hist := border.NewHistory()
		border.Update(grid, sub, b, root, hist)

		pool.Submit(func(workerID int) {
			ctx.branch(grid, pool, workerID, sub, b, hist)
		})
	}

	pool.Close()

	return ctx.result(), nil
}

// branch explores every valid extension of sub's border depth-first. A
// leaf (empty border) is reported to checkCandidate. A non-leaf hands
// each extension off to an idle pool worker when one looks available —
// operating on a private clone from that point on — or else continues
// the recursion synchronously on the calling goroutine, mirroring
// `if (pool.n_idle() != 0) pool.push(branch,...); else branch(...);`.
func (c *Context) branch(grid *hrpgraph.Grid, pool *workerpool.Pool, workerID int, sub *subtree.State, b *border.Border, hist *border.History) {
	if b.Empty() {
		c.addLeaf(workerID)
		c.checkCandidate(grid, sub)
		return
	}

	var popped []int
	for !b.Empty() {
		x := b.PopFront()
		popped = append(popped, x)
		if sub.Add(x) != subtree.Accepted {
			continue
		}
		border.Update(grid, sub, b, x, hist)

		if pool.IdleWorkers() > 0 {
			subClone, bClone, histClone := sub.Clone(), b.Clone(), hist.Clone()
			pool.Submit(func(id int) {
				c.branch(grid, pool, id, subClone, bClone, histClone)
			})
		} else {
			c.branch(grid, pool, workerID, sub, b, hist)
		}

		border.Restore(b, hist)
		sub.Remove(x)
	}

	// Hand the caller back the border it passed in: every vertex this
	// frame popped is pushed back in its original order.
	for _, v := range popped {
		b.PushBack(v)
	}
}
