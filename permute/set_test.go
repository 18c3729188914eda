package permute_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelsculpt/hrptree/permute"
)

func TestNew_InvalidDim(t *testing.T) {
	_, err := permute.New([]int{0})
	assert.ErrorIs(t, err, permute.ErrInvalidDim)
}

func TestNew_EmptyDims_SingleVertex(t *testing.T) {
	s, err := permute.New(nil)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, []int{0}, s.At(0))
}

func TestCount_MatchesLen(t *testing.T) {
	cases := [][]int{
		{1}, {2}, {3}, {2, 2}, {2, 3}, {3, 3}, {2, 2, 2}, {3, 3, 3}, {2, 3, 4},
	}
	for _, dims := range cases {
		s, err := permute.New(dims)
		require.NoError(t, err)
		assert.Equal(t, permute.Count(dims), s.Len(), "dims=%v", dims)
	}
}

func TestCount_Formula(t *testing.T) {
	assert.Equal(t, 2, permute.Count([]int{2}))
	assert.Equal(t, 1, permute.Count([]int{1}))
	assert.Equal(t, 8, permute.Count([]int{2, 2}))
	assert.Equal(t, 4, permute.Count([]int{2, 3}))
	assert.Equal(t, 48, permute.Count([]int{2, 2, 2}))
}

func TestEveryPermutation_IsABijection(t *testing.T) {
	cases := [][]int{{3}, {2, 2}, {3, 3}, {2, 3, 4}}
	for _, dims := range cases {
		s, err := permute.New(dims)
		require.NoError(t, err)

		n := 1
		for _, d := range dims {
			n *= d
		}

		for i := 0; i < s.Len(); i++ {
			perm := s.At(i)
			require.Len(t, perm, n)
			seen := make([]bool, n)
			for _, v := range perm {
				require.False(t, seen[v], "dims=%v perm=%d value %d repeated", dims, i, v)
				seen[v] = true
			}
		}
	}
}

func TestIdentityPermutation_IsPresent(t *testing.T) {
	s, err := permute.New([]int{3, 3, 3})
	require.NoError(t, err)

	found := false
	for i := 0; i < s.Len(); i++ {
		perm := s.At(i)
		isIdentity := true
		for v, image := range perm {
			if v != image {
				isIdentity = false
				break
			}
		}
		if isIdentity {
			found = true
			break
		}
	}
	assert.True(t, found, "identity permutation should be constructible from an all-forwards chain")
}

func TestCanonicalID_MatchesAcrossPermutations(t *testing.T) {
	s, err := permute.New([]int{2, 2})
	require.NoError(t, err)

	selected := []int{0, 1}
	want := permute.CanonicalID(s, selected)

	for i := 0; i < s.Len(); i++ {
		perm := s.At(i)
		image := make([]int, len(selected))
		for j, v := range selected {
			image[j] = perm[v]
		}
		sort.Ints(image)
		assert.Equal(t, want, permute.CanonicalID(s, image))
	}
}
