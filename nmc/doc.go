// Package nmc implements nested Monte-Carlo search over induced subtrees:
// a level-0 playout extends a subtree with uniformly random valid border
// choices until none remain; a level-N search evaluates every border
// extension by recursively running a level-(N-1) search from it, commits
// to whichever extension led to the largest subtree, and repeats until
// the border is exhausted.
//
// Higher levels trade search time for quality: level 0 is pure random
// sampling, and each additional level re-runs the level below it once
// per remaining border candidate at every step.
package nmc
