// Package hrpgraph treats a d-dimensional hyper-rectangular-prism (HRP) as a
// graph: one vertex per integer lattice point of the box, edges between
// points that differ by exactly one in exactly one coordinate.
//
// A Grid is immutable once built. Vertices are numbered 0 .. (Πn_i - 1) in
// row-major order over the dimension vector; per-vertex neighbor lists are
// precomputed in strictly ascending vertex-id order, which downstream
// packages (border, enumerate) rely on for deterministic traversal.
package hrpgraph
