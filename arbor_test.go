package arbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlab/arbor"
)

func TestFitWorkedExample(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}, {4}}
	labels := []string{"0", "0", "1", "1"}

	c := arbor.New()
	require.NoError(t, c.Fit(features, labels))

	fitted := c.Tree()
	require.NotNil(t, fitted)
	root := fitted.Root
	require.NotNil(t, root)
	require.False(t, root.Leaf)
	assert.Equal(t, 0, root.Feature)
	assert.Equal(t, 2.0, root.Threshold)
	require.NotNil(t, root.Left)
	require.NotNil(t, root.Right)
	assert.True(t, root.Left.Leaf)
	assert.Equal(t, "0", root.Left.Label)
	assert.True(t, root.Right.Leaf)
	assert.Equal(t, "1", root.Right.Label)

	predicted, err := c.Predict([][]float64{{1}, {4}})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, predicted)
}

func TestPredictReturnsOneLabelPerRow(t *testing.T) {
	c := arbor.New()
	require.NoError(t, c.Fit([][]float64{{1, 0}, {2, 1}, {3, 0}, {4, 1}}, []string{"a", "a", "b", "b"}))

	rows := [][]float64{{1, 1}, {4, 0}, {2, 0}, {3, 1}, {1, 0}}
	predicted, err := c.Predict(rows)
	require.NoError(t, err)
	require.Len(t, predicted, len(rows))

	// Order preserved: each row classified independently.
	for i, row := range rows {
		single, err := c.Predict([][]float64{row})
		require.NoError(t, err)
		assert.Equal(t, single[0], predicted[i], "row %d", i)
	}
}

func TestMaxDepthZeroPredictsGlobalMajority(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}, {4}, {5}}
	labels := []string{"cat", "dog", "dog", "cat", "dog"}

	c := arbor.New(arbor.MaxDepth(0))
	require.NoError(t, c.Fit(features, labels))

	root := c.Tree().Root
	require.True(t, root.Leaf)
	assert.Equal(t, "dog", root.Label)

	predicted, err := c.Predict([][]float64{{1}, {3}, {100}})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "dog", "dog"}, predicted)
}

func TestUnboundedFitReachesZeroTrainingError(t *testing.T) {
	// No duplicate feature rows across classes: every leaf can be
	// driven to purity.
	features := [][]float64{
		{5.1, 3.5}, {4.9, 3.0}, {6.2, 2.9}, {5.9, 3.2},
		{6.9, 3.1}, {4.6, 3.4}, {6.5, 2.8}, {5.0, 3.6},
	}
	labels := []string{"setosa", "setosa", "versicolor", "versicolor", "virginica", "setosa", "virginica", "setosa"}

	c := arbor.New()
	require.NoError(t, c.Fit(features, labels))

	predicted, err := c.Predict(features)
	require.NoError(t, err)
	assert.Equal(t, labels, predicted)
}

func TestTieBreakPrefersLowestFeatureIndex(t *testing.T) {
	// Feature 1 duplicates feature 0, so every candidate split on
	// feature 1 ties with the one on feature 0. The earlier feature
	// must win, reproducibly.
	features := [][]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}}
	labels := []string{"a", "a", "b", "b"}

	for i := 0; i < 25; i++ {
		c := arbor.New()
		require.NoError(t, c.Fit(features, labels))
		root := c.Tree().Root
		require.False(t, root.Leaf)
		assert.Equal(t, 0, root.Feature)
		assert.Equal(t, 2.0, root.Threshold)
	}
}

func TestConstantFeatureYieldsMajorityLeaf(t *testing.T) {
	// The only feature is constant, so no non-degenerate threshold
	// exists and the root terminates as a majority leaf instead of
	// evaluating the empty-right-partition split.
	features := [][]float64{{7}, {7}, {7}}
	labels := []string{"b", "a", "b"}

	c := arbor.New()
	require.NoError(t, c.Fit(features, labels))

	root := c.Tree().Root
	require.True(t, root.Leaf)
	assert.Equal(t, "b", root.Label)
}

func TestMajorityTieBreaksTowardsSmallestLabel(t *testing.T) {
	features := [][]float64{{7}, {7}, {7}, {7}}
	labels := []string{"b", "a", "b", "a"}

	c := arbor.New()
	require.NoError(t, c.Fit(features, labels))

	root := c.Tree().Root
	require.True(t, root.Leaf)
	assert.Equal(t, "a", root.Label)
}

func TestPredictBeforeFitReturnsErrNotFitted(t *testing.T) {
	c := arbor.New()
	_, err := c.Predict([][]float64{{1}})
	assert.ErrorIs(t, err, arbor.ErrNotFitted)
}

func TestFitRejectsInvalidInput(t *testing.T) {
	for name, input := range map[string]struct {
		features [][]float64
		labels   []string
	}{
		"empty matrix":        {nil, nil},
		"length mismatch":     {[][]float64{{1}, {2}}, []string{"a"}},
		"ragged rows":         {[][]float64{{1, 2}, {3}}, []string{"a", "b"}},
		"labels without rows": {nil, []string{"a"}},
	} {
		t.Run(name, func(t *testing.T) {
			c := arbor.New()
			assert.Error(t, c.Fit(input.features, input.labels))
		})
	}
}

func TestFailedFitKeepsPreviousTree(t *testing.T) {
	c := arbor.New()
	require.NoError(t, c.Fit([][]float64{{1}, {2}}, []string{"a", "b"}))
	fitted := c.Tree()

	require.Error(t, c.Fit(nil, nil))
	assert.Same(t, fitted, c.Tree())

	predicted, err := c.Predict([][]float64{{1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, predicted)
}

func TestRefitReplacesTree(t *testing.T) {
	c := arbor.New()
	require.NoError(t, c.Fit([][]float64{{1}, {2}}, []string{"a", "b"}))
	require.NoError(t, c.Fit([][]float64{{1}, {2}}, []string{"b", "a"}))

	predicted, err := c.Predict([][]float64{{1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, predicted)
}

func TestPredictRejectsColumnCountMismatch(t *testing.T) {
	c := arbor.New()
	require.NoError(t, c.Fit([][]float64{{1, 0}, {2, 1}}, []string{"a", "b"}))

	_, err := c.Predict([][]float64{{1}})
	assert.Error(t, err)
}
