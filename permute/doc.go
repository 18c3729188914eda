// Package permute constructs the group of vertex-id permutations that
// leave a hrpgraph.Grid's structure unchanged: reversing any subset of
// its axes, and swapping any two axes of equal length. Two induced
// subtrees related by one of these permutations are structurally
// identical and differ only in orientation.
package permute
