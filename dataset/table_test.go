package dataset_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlab/arbor/dataset"
)

func TestEntropyOfPureSetIsZero(t *testing.T) {
	for _, labels := range [][]string{
		{"a"},
		{"a", "a", "a"},
		{"x", "x", "x", "x", "x", "x"},
	} {
		entropy, err := dataset.Entropy(labels)
		require.NoError(t, err)
		assert.Equal(t, 0.0, entropy)
	}
}

func TestEntropyOfEvenTwoClassSetIsOneBit(t *testing.T) {
	entropy, err := dataset.Entropy([]string{"a", "b", "a", "b"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, entropy, 1e-6)
}

func TestEntropyIsBoundedByLogOfDistinctLabels(t *testing.T) {
	for _, labels := range [][]string{
		{"a", "b"},
		{"a", "a", "b"},
		{"a", "b", "c", "c", "c"},
		{"a", "b", "c", "d"},
		{"a", "a", "a", "b", "c", "c", "d", "d", "d", "d"},
	} {
		entropy, err := dataset.Entropy(labels)
		require.NoError(t, err)
		distinct := make(map[string]bool)
		for _, l := range labels {
			distinct[l] = true
		}
		assert.GreaterOrEqual(t, entropy, 0.0)
		assert.LessOrEqual(t, entropy, math.Log2(float64(len(distinct)))+1e-9)
	}
}

func TestEntropyOfEmptySetFails(t *testing.T) {
	_, err := dataset.Entropy(nil)
	assert.ErrorIs(t, err, dataset.ErrEmptyLabelSet)
}

func TestMajority(t *testing.T) {
	label, err := dataset.Majority([]string{"b", "a", "b", "c", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", label)
}

func TestMajorityTieBreaksTowardsSmallestLabel(t *testing.T) {
	label, err := dataset.Majority([]string{"c", "b", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "b", label)

	_, err = dataset.Majority(nil)
	assert.ErrorIs(t, err, dataset.ErrEmptyLabelSet)
}

func TestNewValidatesShape(t *testing.T) {
	_, err := dataset.New(nil, nil)
	assert.Error(t, err)

	_, err = dataset.New([][]float64{{1}, {2}}, []string{"a"})
	assert.Error(t, err)

	_, err = dataset.New([][]float64{{1, 2}, {3}}, []string{"a", "b"})
	assert.Error(t, err)

	tab, err := dataset.New([][]float64{{1, 2}, {3, 4}}, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Count())
	assert.Equal(t, 2, tab.NumFeatures())
	assert.Equal(t, "b", tab.Label(1))
	assert.Equal(t, 3.0, tab.Value(1, 0))
}

func TestFeatureValuesAreDistinctAndSorted(t *testing.T) {
	tab, err := dataset.New([][]float64{{4}, {1}, {4}, {2}, {1}}, []string{"a", "b", "a", "b", "a"})
	require.NoError(t, err)

	values := tab.FeatureValues(0, []int{0, 1, 2, 3, 4})
	assert.Equal(t, []float64{1, 2, 4}, values)

	values = tab.FeatureValues(0, []int{0, 2})
	assert.Equal(t, []float64{4}, values)
}

func TestTableEntropyOverRowSubset(t *testing.T) {
	tab, err := dataset.New([][]float64{{1}, {2}, {3}, {4}}, []string{"a", "a", "b", "b"})
	require.NoError(t, err)

	entropy, err := tab.Entropy([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, entropy)

	entropy, err = tab.Entropy([]int{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, entropy, 1e-6)

	_, err = tab.Entropy(nil)
	assert.ErrorIs(t, err, dataset.ErrEmptyLabelSet)
}

func TestPartition(t *testing.T) {
	features := make([][]float64, 10)
	labels := make([]string, 10)
	for i := range features {
		features[i] = []float64{float64(i)}
		labels[i] = "a"
	}
	tab, err := dataset.New(features, labels)
	require.NoError(t, err)

	train, test, err := dataset.Partition(tab, 0.3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 7, train.Count())
	assert.Equal(t, 3, test.Count())

	// A fixed seed reproduces the same partition.
	train2, test2, err := dataset.Partition(tab, 0.3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, train.Features(), train2.Features())
	assert.Equal(t, test.Features(), test2.Features())
}

func TestPartitionRejectsDegenerateFractions(t *testing.T) {
	tab, err := dataset.New([][]float64{{1}, {2}}, []string{"a", "b"})
	require.NoError(t, err)

	for _, fraction := range []float64{-0.1, 0.0, 1.0, 1.5, 0.1} {
		_, _, err := dataset.Partition(tab, fraction, rand.New(rand.NewSource(1)))
		assert.Error(t, err, "fraction %v", fraction)
	}
}
