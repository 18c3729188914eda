// Package engine wires hrpgraph, subtree, border, enumerate, nmc,
// workerpool, enclosed, and output into the two runnable searches: a
// complete reverse-search enumeration and a Nested Monte-Carlo heuristic
// search. It owns the only mutable global-ish state — best-size
// counters, start time, a logger, and per-worker leaf counters — consolidated
// into a single Context passed explicitly rather than held in package
// variables.
package engine
