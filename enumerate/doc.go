// Package enumerate visits every induced subtree of an hrpgraph.Grid
// exactly once via reverse search: starting from the empty selection,
// then for each vertex as a root, repeatedly extending the current
// selection with border candidates and backtracking, never revisiting
// the same vertex set twice.
//
// Enumerator is a pull-style iterator (Next/Current/Err), mirroring the
// standard library's bufio.Scanner, plus an All method returning a Go
// 1.23 iter.Seq for range-over-func callers.
package enumerate
