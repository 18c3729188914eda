package permute

// Set holds every structure-preserving vertex-id permutation of a fixed
// hrpgraph.Grid shape: one permutation per combination of axis reversal
// and equal-length-axis swap.
type Set struct {
	dims  []int
	perms [][]int
}

// New constructs the full permutation group for a grid with the given
// per-axis lengths. Every dims[i] must be >= 1.
//
// Complexity: O(Count(dims) * product(dims)) time and memory.
func New(dims []int) (*Set, error) {
	for _, d := range dims {
		if d < 1 {
			return nil, ErrInvalidDim
		}
	}

	perms := build(dims)

	return &Set{dims: append([]int(nil), dims...), perms: perms}, nil
}

// Len returns the number of permutations in the set.
func (s *Set) Len() int { return len(s.perms) }

// At returns the i'th permutation: a slice where result[v] is the image
// of vertex v under this permutation. The caller must not mutate the
// returned slice.
func (s *Set) At(i int) []int { return s.perms[i] }

// Count returns the number of structure-preserving permutations for a
// grid with the given per-axis lengths, without constructing them. This
// is 2^(d - z) * product(k_m!), where d is the number of axes, z is the
// number of axes of length 1, and k_m is the number of axes sharing each
// distinct length > 1.
func Count(dims []int) int {
	dimCounts := map[int]int{}
	nOnes := 0
	for _, d := range dims {
		if d == 1 {
			nOnes++
		}
		dimCounts[d]++
	}

	result := 1 << (len(dims) - nOnes)
	for n, count := range dimCounts {
		if n != 1 {
			result *= factorial(count)
		}
	}
	return result
}

func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// build recursively constructs the permutation set for dims, extending
// the permutations of dims with its last axis dropped by stacking them
// along that axis (forwards and reversed), then swapping the new axis
// against every earlier axis of equal length.
func build(dims []int) [][]int {
	if len(dims) == 0 {
		return [][]int{{0}}
	}

	dimensionPartialProducts := make([]int, len(dims))
	dimensionPartialProducts[0] = 1
	for i := 1; i < len(dims); i++ {
		dimensionPartialProducts[i] = dimensionPartialProducts[i-1] * dims[i-1]
	}

	prevNVertices := dimensionPartialProducts[len(dims)-1]
	primaryDimension := dims[len(dims)-1]

	subPerms := build(dims[:len(dims)-1])

	if primaryDimension == 1 {
		return subPerms
	}

	nVertices := prevNVertices * primaryDimension

	var result [][]int
	for _, subPerm := range subPerms {
		forwards := make([]int, nVertices)
		backwards := make([]int, nVertices)

		for height := 0; height < primaryDimension; height++ {
			for coord := 0; coord < prevNVertices; coord++ {
				index := height*prevNVertices + coord
				forwards[index] = height*prevNVertices + subPerm[coord]
				backwards[index] = (primaryDimension-height-1)*prevNVertices + subPerm[coord]
			}
		}

		result = append(result, forwards, backwards)

		for axis := 0; axis < len(dims)-1; axis++ {
			if dims[axis] != primaryDimension {
				continue
			}
			indexedDimSize := dimensionPartialProducts[axis]
			indexedDim := dims[axis]

			result = append(result, swapAxes(forwards, prevNVertices, indexedDimSize, indexedDim))
			result = append(result, swapAxes(backwards, prevNVertices, indexedDimSize, indexedDim))
		}
	}

	return result
}

// swapAxes returns a copy of basePerm with the newest (primary) axis and
// the axis at the given stride/length swapped in every entry's encoding.
func swapAxes(basePerm []int, prevNVertices, indexedDimSize, indexedDim int) []int {
	newPerm := append([]int(nil), basePerm...)
	for i, value := range newPerm {
		primaryDimValue := value / prevNVertices
		indexedDimValue := (value / indexedDimSize) % indexedDim

		value -= primaryDimValue*prevNVertices + indexedDimValue*indexedDimSize
		value += indexedDimValue*prevNVertices + primaryDimValue*indexedDimSize
		newPerm[i] = value
	}
	return newPerm
}
