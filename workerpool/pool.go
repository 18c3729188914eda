package workerpool

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool is a fixed-size pool of worker goroutines draining one shared
// task queue. Unlike a typical bounded-concurrency helper, Pool does
// not decide for the caller whether to enqueue or run inline — callers
// read IdleWorkers() themselves to make that call, mirroring
// ctpl::thread_pool::n_idle() gating a recursive branch-and-bound
// walk's own hand-off decision. The zero value is not usable;
// construct with New.
type Pool struct {
	tasks chan func(workerID int)
	idle  atomic.Int64
	group *errgroup.Group
}

// New starts a Pool with the given number of worker goroutines, managed
// internally by an errgroup.Group so a panic surfaces once from Close
// instead of silently killing one worker, and backed by a task queue
// buffered to the same size so a Submit issued from inside a worker
// never deadlocks against its own siblings. A non-positive workers is
// clamped to 1. Each worker goroutine keeps a fixed id in [0, workers),
// passed to every task it runs — the Go stand-in for the `id` parameter
// ctpl::thread_pool passes into every queued function, used upstream to
// index per-worker scratch state.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	g := &errgroup.Group{}
	p := &Pool{tasks: make(chan func(workerID int), workers), group: g}
	p.idle.Store(int64(workers))

	for i := 0; i < workers; i++ {
		id := i
		g.Go(func() error {
			for task := range p.tasks {
				p.idle.Add(-1)
				task(id)
				p.idle.Add(1)
			}
			return nil
		})
	}

	return p
}

// IdleWorkers returns the number of worker goroutines currently blocked
// waiting for a task, the Go analogue of ctpl::thread_pool::n_idle().
// As in the original, a caller that checks IdleWorkers() and then
// Submits is not atomic with respect to other callers doing the same;
// the check is a heuristic for "probably safe to hand off", not a
// guarantee.
func (p *Pool) IdleWorkers() int {
	return int(p.idle.Load())
}

// Submit enqueues task to run on a worker goroutine, which passes it its
// own fixed worker id. It blocks if every worker is busy and the queue
// is already full; callers that want a non-blocking hand-off should
// check IdleWorkers() first, exactly as the original branch() does
// before calling pool.push.
func (p *Pool) Submit(task func(workerID int)) {
	p.tasks <- task
}

// Close signals that no more tasks will be submitted and waits for
// every queued and in-flight task to finish. Close must be called
// exactly once, after the last Submit.
func (p *Pool) Close() {
	close(p.tasks)
	_ = p.group.Wait()
}
