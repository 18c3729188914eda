// Package border maintains B(S), the ordered set of vertices eligible to
// extend an induced subtree, alongside a History that records every
// mutation Update makes so Restore can undo it exactly.
//
// Border wraps an indexset.Set: membership is the set of candidate
// vertices, and front-to-back order is the order extensions are tried in.
// Update and Restore must always be called in matching pairs around a
// subtree.State.Add/Remove, innermost-last, so History unwinds in the
// reverse order its entries were pushed.
package border
