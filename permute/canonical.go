package permute

import "sort"

// CanonicalID maps a set of selected vertex ids to a canonical
// representative: the lexicographically smallest sorted image of
// selected across every permutation in s. Two selections that are images
// of one another under some permutation in s produce identical results.
//
// This is test-support tooling for asserting that enumeration or search
// results are free of orientation-duplicate subtrees; it is not a
// general equivalence-class utility and does not attempt to minimize
// construction cost.
func CanonicalID(s *Set, selected []int) string {
	best := applyAndSort(s.perms[0], selected)

	for i := 1; i < len(s.perms); i++ {
		candidate := applyAndSort(s.perms[i], selected)
		if lessLex(candidate, best) {
			best = candidate
		}
	}

	return encode(best)
}

func applyAndSort(perm []int, selected []int) []int {
	out := make([]int, len(selected))
	for i, v := range selected {
		out[i] = perm[v]
	}
	sort.Ints(out)
	return out
}

func lessLex(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func encode(sorted []int) string {
	buf := make([]byte, 0, len(sorted)*8)
	for i, v := range sorted {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, v)
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
