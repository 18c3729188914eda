// Package hrptree searches hyper-rectangular-prism grid graphs for large
// induced subtrees.
//
// A grid graph (package hrpgraph) is the integer lattice inside a
// d-dimensional box, with edges between axis-adjacent points. An induced
// subtree (package subtree) is a connected, cycle-free subset of that
// lattice subject to a physical validity rule in three dimensions: no
// vertex may have both of its neighbors selected on more than one axis.
//
// Two independent search strategies find large induced subtrees:
//
//	enumerate/ — exhaustive reverse-search over every induced subtree
//	nmc/       — Nested Monte-Carlo search for large subtrees without
//	             exhaustive enumeration
//
// Package engine drives both strategies in parallel across a worker
// pool, and package output renders a found subtree to a text grid.
// Commands hrptree-enumerate and hrptree-nmc wrap the two strategies as
// standalone CLI tools.
package hrptree
