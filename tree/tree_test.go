package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlab/arbor/tree"
)

func twoLevelTree() *tree.Tree {
	// feature 0 <= 2 ? (feature 1 <= 0.5 ? "a" : "b") : "c"
	left := tree.NewInternal(1, 0.5, tree.NewLeaf("a"), tree.NewLeaf("b"))
	return tree.New(tree.NewInternal(0, 2, left, tree.NewLeaf("c")), 2)
}

func TestPredictWalksToTheCorrectLeaf(t *testing.T) {
	fitted := twoLevelTree()
	for _, tc := range []struct {
		row   []float64
		label string
	}{
		{[]float64{1, 0}, "a"},
		{[]float64{2, 0.5}, "a"},
		{[]float64{2, 0.6}, "b"},
		{[]float64{2.1, 0}, "c"},
		{[]float64{100, -5}, "c"},
	} {
		label, err := fitted.Predict(tc.row)
		require.NoError(t, err)
		assert.Equal(t, tc.label, label, "row %v", tc.row)
	}
}

func TestPredictRejectsWrongRowLength(t *testing.T) {
	fitted := twoLevelTree()
	_, err := fitted.Predict([]float64{1})
	assert.Error(t, err)
	_, err = fitted.Predict([]float64{1, 2, 3})
	assert.Error(t, err)
}

func TestPredictOnEmptyTreeFails(t *testing.T) {
	var fitted *tree.Tree
	_, err := fitted.Predict([]float64{1})
	assert.ErrorIs(t, err, tree.ErrNoRoot)

	_, err = tree.New(nil, 1).Predict([]float64{1})
	assert.ErrorIs(t, err, tree.ErrNoRoot)
}

func TestTraverseVisitsEveryNodeInPreorder(t *testing.T) {
	fitted := twoLevelTree()
	var visited []string
	err := fitted.Traverse(func(n *tree.Node, depth int) error {
		if n.Leaf {
			visited = append(visited, n.Label)
		} else {
			visited = append(visited, "split")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"split", "split", "a", "b", "c"}, visited)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, tree.New(tree.NewLeaf("a"), 1).Depth())
	assert.Equal(t, 2, twoLevelTree().Depth())
}

func TestStringRendersSplitsAndLeaves(t *testing.T) {
	rendered := twoLevelTree().String()
	assert.True(t, strings.Contains(rendered, "feature 0 <= 2"))
	assert.True(t, strings.Contains(rendered, "feature 1 <= 0.5"))
	assert.True(t, strings.Contains(rendered, "{ c }"))
}
