// Package enclosed detects whether an induced subtree leaves any
// unselected space unreachable from outside the grid: a breadth-first
// flood fill from every vertex on the grid's outer shell through
// unselected vertices, checking whether every unselected vertex was
// reached.
package enclosed
