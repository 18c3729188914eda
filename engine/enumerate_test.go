package engine_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelsculpt/hrptree/engine"
	"github.com/voxelsculpt/hrptree/hrpgraph"
)

func TestRunEnumerate_2x2_FindsMaximalInducedTree(t *testing.T) {
	g, err := hrpgraph.New(2, 2)
	require.NoError(t, err)

	result, err := engine.RunEnumerate(g, engine.WithWorkers(2))
	require.NoError(t, err)

	// The 4-cycle itself is not a tree; the largest induced subtree is
	// one of the four L-shaped triples.
	assert.Equal(t, 3, result.BestSize)
}

func TestRunEnumerate_3x3x3_FindsKnownMaximum(t *testing.T) {
	g, err := hrpgraph.New(3, 3, 3)
	require.NoError(t, err)

	result, err := engine.RunEnumerate(g, engine.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, 18, result.BestSize)
}

func TestRunEnumerate_NilGrid(t *testing.T) {
	_, err := engine.RunEnumerate(nil)
	assert.ErrorIs(t, err, engine.ErrNilGrid)
}

func TestRunEnumerate_WritesOutputFile(t *testing.T) {
	g, err := hrpgraph.New(2, 2)
	require.NoError(t, err)

	path := t.TempDir() + "/best.txt"
	result, err := engine.RunEnumerate(g, engine.WithWorkers(2), engine.WithOutputPath(path))
	require.NoError(t, err)
	assert.Equal(t, 3, result.BestSize)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "3\n")
}
