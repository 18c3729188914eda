package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voxelsculpt/hrptree/workerpool"
)

func TestSubmit_RunsEveryTask(t *testing.T) {
	p := workerpool.New(4)
	var count atomic.Int64

	for i := 0; i < 20; i++ {
		p.Submit(func(workerID int) {
			count.Add(1)
		})
	}
	p.Close()

	assert.Equal(t, int64(20), count.Load())
}

func TestSubmit_PassesDistinctWorkerIDsInRange(t *testing.T) {
	const workers = 3
	p := workerpool.New(workers)

	var mu sync.Mutex
	seen := make(map[int]bool)

	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(workers)

	for i := 0; i < workers; i++ {
		p.Submit(func(workerID int) {
			mu.Lock()
			seen[workerID] = true
			mu.Unlock()
			started.Done()
			<-release
		})
	}

	started.Wait()
	close(release)
	p.Close()

	assert.Len(t, seen, workers)
	for id := range seen {
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, workers)
	}
}

func TestIdleWorkers_DropsWhileTasksAreRunning(t *testing.T) {
	const workers = 3
	p := workerpool.New(workers)

	assert.Equal(t, workers, p.IdleWorkers())

	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(workers)

	for i := 0; i < workers; i++ {
		p.Submit(func(workerID int) {
			started.Done()
			<-release
		})
	}

	started.Wait()
	// Give the idle counter a moment to reflect the decrement; the
	// workers have already signaled they started, and the decrement
	// happens strictly before the task body runs.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, p.IdleWorkers())

	close(release)
	p.Close()

	assert.Equal(t, workers, p.IdleWorkers())
}

func TestNew_ClampsNonPositiveWorkers(t *testing.T) {
	p := workerpool.New(0)
	var ran bool
	p.Submit(func(workerID int) { ran = true })
	p.Close()

	assert.True(t, ran)
}
