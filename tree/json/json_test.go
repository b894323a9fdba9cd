package json_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlab/arbor"
	"github.com/arborlab/arbor/tree"
	treejson "github.com/arborlab/arbor/tree/json"
)

func TestRoundTripPreservesPredictions(t *testing.T) {
	features := [][]float64{{5.1, 3.5}, {4.9, 3.0}, {6.2, 2.9}, {5.9, 3.2}, {6.9, 3.1}}
	labels := []string{"setosa", "setosa", "versicolor", "versicolor", "virginica"}
	c := arbor.New()
	require.NoError(t, c.Fit(features, labels))

	var buf bytes.Buffer
	require.NoError(t, treejson.WriteTree(&buf, c.Tree()))

	decoded, err := treejson.ReadTree(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Tree().NumFeatures, decoded.NumFeatures)

	for i, row := range features {
		want, err := c.Tree().Predict(row)
		require.NoError(t, err)
		got, err := decoded.Predict(row)
		require.NoError(t, err)
		assert.Equal(t, want, got, "sample %d", i)
	}
}

func TestMarshalRequiresARoot(t *testing.T) {
	_, err := treejson.Marshal(nil)
	assert.ErrorIs(t, err, tree.ErrNoRoot)

	_, err = treejson.Marshal(tree.New(nil, 1))
	assert.ErrorIs(t, err, tree.ErrNoRoot)
}

func TestUnmarshalRejectsMalformedDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"not json":             `{`,
		"no root":              `{"numFeatures":1}`,
		"no feature count":     `{"root":{"label":"a"}}`,
		"single child":         `{"numFeatures":1,"root":{"f":0,"t":1,"l":{"label":"a"}}}`,
		"missing split rule":   `{"numFeatures":1,"root":{"l":{"label":"a"},"r":{"label":"b"}}}`,
		"feature out of range": `{"numFeatures":1,"root":{"f":3,"t":1,"l":{"label":"a"},"r":{"label":"b"}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := treejson.Unmarshal([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestUnmarshalLeafOnlyTree(t *testing.T) {
	decoded, err := treejson.Unmarshal([]byte(`{"numFeatures":2,"root":{"label":"dog"}}`))
	require.NoError(t, err)

	label, err := decoded.Predict([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "dog", label)
}
