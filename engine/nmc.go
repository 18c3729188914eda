package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/voxelsculpt/hrptree/border"
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/nmc"
	"github.com/voxelsculpt/hrptree/subtree"
	"github.com/voxelsculpt/hrptree/workerpool"
)

// RunNMC runs cfg.workers independent Nested Monte-Carlo searches, each
// starting from vertex 0 with its own per-worker random source (seeded
// from cfg.seed plus the worker index, so runs are reproducible but
// distinct across workers), and reports the best subtree found across
// all of them. Grounded on original_source/monteCarloSearch.cpp's main,
// generalized from one fixed single-threaded run to several concurrent
// ones — the original's own main left a `pool.push(randomSample,0)` call
// commented out for exactly this kind of fan-out, which this expansion
// completes using the same worker pool package §4.9 already builds for
// RunEnumerate.
func RunNMC(grid *hrpgraph.Grid, opts ...Option) (*Result, error) {
	if grid == nil {
		return nil, fmt.Errorf("engine: RunNMC: %w", ErrNilGrid)
	}

	cfg := newConfig(opts...)
	ctx := newContext(cfg)
	pool := workerpool.New(cfg.workers)

	for w := 0; w < cfg.workers; w++ {
		worker := w
		pool.Submit(func(workerID int) {
			ctx.runNMCWorker(grid, worker, cfg.seed, cfg.level)
		})
	}

	pool.Close()

	return ctx.result(), nil
}

// runNMCWorker builds a fresh subtree/border/history rooted at vertex 0
// and drives one top-level nmc.Search.Run call to completion. Every
// level-0 playout it performs, anywhere in the recursion, is reported to
// checkCandidate via the onLeaf hook — not Run's own return value, which
// exists only to let nested calls pick their next branch (see
// SPEC_FULL.md §4.6).
func (c *Context) runNMCWorker(grid *hrpgraph.Grid, worker int, seed uint64, level int) {
	rng := rand.New(rand.NewPCG(seed, uint64(worker)))

	sub, err := subtree.New(grid, 0)
	if err != nil {
		c.logger.Error("nmc worker failed to start", "error", err, "worker", worker)
		return
	}
	b, err := border.New(grid.NumVertices())
	if err != nil {
		c.logger.Error("nmc worker failed to start", "error", err, "worker", worker)
		return
	}
	hist := border.NewHistory()
	border.Update(grid, sub, b, 0, hist)

	search := nmc.NewSearch(grid, rng, func(leaf *subtree.State) {
		c.addLeaf(worker)
		c.checkCandidate(grid, leaf)
	})

	search.Run(sub, b, hist, level)
}
