// Package workerpool provides a fixed-capacity pool for the recursive
// branch-and-bound exploration used by package engine. A branch point
// either spawns its continuation onto an idle worker or, when the pool
// is saturated, keeps running on the calling goroutine — exactly the
// ctpl::thread_pool.n_idle() fallback the original enumerator relied on
// to bound total concurrency while still making forward progress
// depth-first when no worker is free.
package workerpool
