package border_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelsculpt/hrptree/border"
	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/subtree"
)

func sliceOf(b *border.Border) []int {
	var out []int
	b.Each(func(v int) { out = append(out, v) })
	return out
}

func TestUpdate_SingleVertex(t *testing.T) {
	g, err := hrpgraph.New(1)
	require.NoError(t, err)
	b, err := border.New(g.NumVertices())
	require.NoError(t, err)
	h := border.NewHistory()

	sub, err := subtree.New(g, 0)
	require.NoError(t, err)

	border.Update(g, sub, b, 0, h)

	assert.Empty(t, sliceOf(b))
	assert.Equal(t, 1, h.Len())
}

func TestUpdate_TwoVertices_RootZero(t *testing.T) {
	g, err := hrpgraph.New(2)
	require.NoError(t, err)
	b, err := border.New(g.NumVertices())
	require.NoError(t, err)
	h := border.NewHistory()

	sub, err := subtree.New(g, 0)
	require.NoError(t, err)

	border.Update(g, sub, b, 0, h)
	assert.Equal(t, []int{1}, sliceOf(b))
	assert.Equal(t, 2, h.Len())

	require.Equal(t, 1, b.PopFront())
	assert.True(t, b.Empty())
	require.Equal(t, subtree.Accepted, sub.Add(1))
	border.Update(g, sub, b, 1, h)

	assert.True(t, b.Empty())
	assert.Equal(t, 3, h.Len())

	border.Restore(b, h)
	assert.True(t, b.Empty())
	sub.Remove(1)

	// The outer Restore undoes the frame that originally pushed 1 onto
	// the border, but 1 was already popped and consumed by this point,
	// so undoing "add 1" is a no-op: the border ends up exactly as it
	// was before the very first Update call.
	border.Restore(b, h)
	assert.True(t, b.Empty())
	assert.True(t, h.Empty())
}

func TestUpdate_TwoVertices_RootOne(t *testing.T) {
	g, err := hrpgraph.New(2)
	require.NoError(t, err)
	b, err := border.New(g.NumVertices())
	require.NoError(t, err)
	h := border.NewHistory()

	sub, err := subtree.New(g, 1)
	require.NoError(t, err)

	border.Update(g, sub, b, 1, h)
	assert.True(t, b.Empty())
	assert.Equal(t, 1, h.Len())

	border.Restore(b, h)
	assert.True(t, b.Empty())
	assert.True(t, h.Empty())
}

// TestUpdate_ThreeVertices_RootZero walks a 3-vertex line graph rooted at
// 0 through every Update/Restore frame, confirming each Restore is a true
// inverse: the border after the final Restore is bit-identical to its
// state before the very first Update (empty), matching the exhaustive
// branch-and-bound driver's restore semantics.
func TestUpdate_ThreeVertices_RootZero(t *testing.T) {
	g, err := hrpgraph.New(3)
	require.NoError(t, err)
	b, err := border.New(g.NumVertices())
	require.NoError(t, err)
	h := border.NewHistory()

	sub, err := subtree.New(g, 0)
	require.NoError(t, err)

	border.Update(g, sub, b, 0, h)
	assert.Equal(t, []int{1}, sliceOf(b))
	assert.Equal(t, 2, h.Len())

	require.Equal(t, 1, b.PopFront())
	assert.True(t, b.Empty())
	require.Equal(t, subtree.Accepted, sub.Add(1))
	border.Update(g, sub, b, 1, h)

	assert.Equal(t, []int{2}, sliceOf(b))
	assert.Equal(t, 4, h.Len())

	require.Equal(t, 2, b.PopFront())
	assert.True(t, b.Empty())
	require.Equal(t, subtree.Accepted, sub.Add(2))
	border.Update(g, sub, b, 2, h)

	assert.True(t, b.Empty())
	assert.Equal(t, 5, h.Len())

	border.Restore(b, h)
	assert.True(t, b.Empty())
	assert.Equal(t, 4, h.Len())
	sub.Remove(2)

	// Undoes the frame that pushed 2 onto the border; 2 was already
	// popped and consumed, so the inverse (remove 2) is a no-op.
	border.Restore(b, h)
	assert.True(t, b.Empty())
	assert.Equal(t, 2, h.Len())
	sub.Remove(1)

	// Same reasoning one level up, for vertex 1.
	border.Restore(b, h)
	assert.True(t, b.Empty())
	assert.True(t, h.Empty())
}

func TestBorderClone_IsIndependent(t *testing.T) {
	g, err := hrpgraph.New(3)
	require.NoError(t, err)
	b, err := border.New(g.NumVertices())
	require.NoError(t, err)
	h := border.NewHistory()

	sub, err := subtree.New(g, 0)
	require.NoError(t, err)
	border.Update(g, sub, b, 0, h)

	clone := b.Clone()
	cloneHist := h.Clone()

	b.PopFront()
	assert.True(t, b.Empty())
	assert.Equal(t, []int{1}, sliceOf(clone))

	require.Equal(t, subtree.Accepted, sub.Add(1))
	border.Update(g, sub, b, 1, h)
	assert.Equal(t, 4, h.Len())
	assert.Equal(t, 2, cloneHist.Len())
}
