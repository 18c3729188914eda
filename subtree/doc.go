// Package subtree tracks an induced subtree S of an hrpgraph.Grid: which
// vertices are selected, and each vertex's "effective degree" (the number
// of selected neighbors it has, whether or not it is itself selected).
//
// For 3-dimensional grids, State additionally enforces the physical
// validity rule from the block-sculpture domain: a selected vertex may
// have both neighbors selected on at most one axis. Add reports whether an
// extension was accepted or rejected by this rule; Remove reverses an
// accepted Add exactly, and the two must be paired 1:1 in LIFO order.
package subtree
