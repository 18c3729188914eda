package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/voxelsculpt/hrptree/enclosed"
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/output"
	"github.com/voxelsculpt/hrptree/subtree"
)

// Context is the consolidated mutable state shared across every worker
// during one search: the best sizes seen so far (lock-free fast reads,
// mutex-guarded writes matched with the file write and log line they
// trigger), the run's start time, a logger, the output paths, and a
// leaf counter per worker. A Context is built once by RunEnumerate or
// RunNMC and passed by pointer into every task; it is never a package
// variable.
type Context struct {
	mu sync.Mutex

	bestPlain    atomic.Int64
	bestEnclosed atomic.Int64

	startTime    time.Time
	logger       *slog.Logger
	outputPath   string
	enclosedPath string

	leafCount []atomic.Int64
}

func newContext(cfg *Config) *Context {
	return &Context{
		startTime:    time.Now(),
		logger:       cfg.logger,
		outputPath:   cfg.outputPath,
		enclosedPath: cfg.enclosedPath,
		leafCount:    make([]atomic.Int64, cfg.workers),
	}
}

// threadSeconds returns the number of seconds elapsed since the run
// began, the Go analogue of the original's clock()-based
// threadSeconds() (wall-clock here, since Go has no portable per-thread
// CPU clock in the standard library).
func (c *Context) threadSeconds() float64 {
	return time.Since(c.startTime).Seconds()
}

// addLeaf records that worker id completed one terminal playout or
// branch, mirroring spec.md §5's lock-free per-worker leaf_count.
func (c *Context) addLeaf(worker int) {
	if worker >= 0 && worker < len(c.leafCount) {
		c.leafCount[worker].Add(1)
	}
}

// LeafCount sums every worker's leaf counter. Safe to call at any time;
// summed read-only from outside, exactly as spec.md §5 requires.
func (c *Context) LeafCount() int64 {
	var total int64
	for i := range c.leafCount {
		total += c.leafCount[i].Load()
	}
	return total
}

// checkCandidate reports sub as a candidate result if it beats the best
// size seen so far, writing it to the configured output path and
// logging an improvement line. A candidate whose grid is 3-D and has
// enclosed space is tracked separately (bestEnclosed) and never
// overwrites the plain best, mirroring the original's
// largestTree/largestWithEnclosed split.
func (c *Context) checkCandidate(grid *hrpgraph.Grid, sub *subtree.State) {
	n := int64(sub.NSelected())
	if n <= c.bestPlain.Load() && n <= c.bestEnclosed.Load() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	hasEnclosed := grid.NumDims() == 3 && enclosed.HasEnclosedSpace(grid, sub)

	if hasEnclosed {
		if n <= c.bestEnclosed.Load() {
			return
		}
		c.bestEnclosed.Store(n)
		if c.enclosedPath != "" {
			if err := output.WriteFile(c.enclosedPath, grid, sub); err != nil {
				c.logger.Error("failed to write enclosed candidate", "error", err, "path", c.enclosedPath)
			}
		}
		c.logger.Info(fmt.Sprintf("%d vertices, found at %.3f thread-seconds with enclosed space", n, c.threadSeconds()))
		return
	}

	if n <= c.bestPlain.Load() {
		return
	}
	c.bestPlain.Store(n)
	if n > c.bestEnclosed.Load() {
		c.bestEnclosed.Store(n)
	}
	if c.outputPath != "" {
		if err := output.WriteFile(c.outputPath, grid, sub); err != nil {
			c.logger.Error("failed to write candidate", "error", err, "path", c.outputPath)
		}
	}
	c.logger.Info(fmt.Sprintf("%d vertices, found at %.3f thread-seconds", n, c.threadSeconds()))
}

// Result summarizes a completed search.
type Result struct {
	BestSize         int
	BestEnclosedSize int
	LeafCount        int64
	Elapsed          time.Duration
}

func (c *Context) result() *Result {
	return &Result{
		BestSize:         int(c.bestPlain.Load()),
		BestEnclosedSize: int(c.bestEnclosed.Load()),
		LeafCount:        c.LeafCount(),
		Elapsed:          time.Since(c.startTime),
	}
}
