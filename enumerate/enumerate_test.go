package enumerate_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelsculpt/hrptree/enumerate"
	"github.com/voxelsculpt/hrptree/hrpgraph"
)

func collect(t *testing.T, g *hrpgraph.Grid) [][]int {
	t.Helper()
	e := enumerate.New(g)
	var out [][]int
	for e.Next() {
		out = append(out, e.Current())
	}
	require.NoError(t, e.Err())
	return out
}

func TestEnumerate_Line_CountsMatchContiguousSubarrayFormula(t *testing.T) {
	cases := []struct {
		n     int
		total int
	}{
		{1, 2},
		{2, 4},
		{3, 7},
		{4, 11},
	}

	for _, c := range cases {
		g, err := hrpgraph.New(c.n)
		require.NoError(t, err)
		results := collect(t, g)
		assert.Equal(t, c.total, len(results), "n=%d", c.n)
		assert.Nil(t, results[0], "first result must be the empty subtree")
	}
}

func TestEnumerate_2x2_TotalIs13(t *testing.T) {
	g, err := hrpgraph.New(2, 2)
	require.NoError(t, err)
	results := collect(t, g)
	assert.Equal(t, 13, len(results))
}

func TestEnumerate_NoDuplicates(t *testing.T) {
	g, err := hrpgraph.New(3, 3)
	require.NoError(t, err)
	results := collect(t, g)

	seen := map[string]bool{}
	for _, r := range results {
		key := keyOf(r)
		assert.False(t, seen[key], "duplicate vertex set %v", r)
		seen[key] = true
	}
}

func TestEnumerate_EveryResultIsATree(t *testing.T) {
	g, err := hrpgraph.New(3, 3)
	require.NoError(t, err)
	results := collect(t, g)

	for _, r := range results {
		if len(r) == 0 {
			continue
		}
		inSet := map[int]bool{}
		for _, v := range r {
			inSet[v] = true
		}
		edgeCount := 0
		for _, v := range r {
			for _, n := range g.Neighbors(v) {
				if n > v && inSet[n] {
					edgeCount++
				}
			}
		}
		assert.Equal(t, len(r)-1, edgeCount, "set %v should induce exactly len-1 edges (a tree)", r)
	}
}

func TestEnumerate_SingleVertexAndEdgeCounts(t *testing.T) {
	g, err := hrpgraph.New(3, 3)
	require.NoError(t, err)
	results := collect(t, g)

	singles, pairs := 0, 0
	for _, r := range results {
		switch len(r) {
		case 1:
			singles++
		case 2:
			pairs++
		}
	}

	assert.Equal(t, g.NumVertices(), singles)

	edges := 0
	for v := 0; v < g.NumVertices(); v++ {
		for _, n := range g.Neighbors(v) {
			if n > v {
				edges++
			}
		}
	}
	assert.Equal(t, edges, pairs)
}

func keyOf(r []int) string {
	sorted := append([]int(nil), r...)
	sort.Ints(sorted)
	out := make([]byte, 0, len(sorted)*4)
	for i, v := range sorted {
		if i > 0 {
			out = append(out, ',')
		}
		for _, c := range []byte(itoa(v)) {
			out = append(out, c)
		}
	}
	return string(out)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
