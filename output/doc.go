// Package output renders a subtree.State to the plain-text grid format
// consumed downstream for visualization: a dimensions header, then one
// blank-line-separated layer per combination of the axes beyond the first
// two (one layer per z value on a 3-D grid), each layer a
// grid of 'X' (selected) / '_' (unselected) characters, followed by the
// selected vertex count — a direct port of the original writeToFile.
package output
