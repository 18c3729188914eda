// Package indexset implements an ordered set of indexes over a fixed
// domain [0, N): O(1) membership, O(1) insertion and removal at either end,
// and stable front-to-back iteration.
//
// It is the border/frontier container used by package border and package
// nmc. Capacity is fixed at construction; per-index state is a doubly
// linked node {member, next, prev}, with a sentinel "no link" value marking
// an index that is either unlinked or at an end of the chain.
package indexset
