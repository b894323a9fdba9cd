package dataset

import (
	"fmt"
	"math"
	"sort"
)

// logEpsilon is added inside the logarithm when computing entropy to
// protect against taking the log of a probability that has collapsed to
// zero under floating-point perturbation. It is not added to the
// probabilities used for weighting.
const logEpsilon = 1e-9

// Error represents an error condition detected by the dataset package.
type Error string

func (e Error) Error() string {
	return string(e)
}

/*
ErrEmptyLabelSet is the error returned when the entropy or the majority
label of an empty label set is requested. Entropy is undefined on zero
samples, so reaching this error through the classifier is an invariant
violation: callers must check for emptiness before measuring.
*/
const ErrEmptyLabelSet = Error("cannot measure an empty label set")

/*
Table represents a training or evaluation dataset: a feature matrix
paired with a label vector. Every row of the matrix holds the numeric
feature values of one sample and the label at the same position holds
its class. A Table always has at least one sample and uniform row
lengths; both are enforced by New.
*/
type Table struct {
	features [][]float64
	labels   []string
}

/*
New takes a feature matrix and a label vector and returns a Table built
with them, or an error if the matrix is empty, the rows do not all have
the same length or the label vector length does not match the number of
rows.
*/
func New(features [][]float64, labels []string) (*Table, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("building table: feature matrix has no rows")
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("building table: %d samples but %d labels", len(features), len(labels))
	}
	width := len(features[0])
	for i, row := range features {
		if len(row) != width {
			return nil, fmt.Errorf("building table: row %d has %d values, expected %d", i, len(row), width)
		}
	}
	return &Table{features, labels}, nil
}

// Count returns the number of samples in the table.
func (t *Table) Count() int {
	return len(t.features)
}

// NumFeatures returns the number of feature columns in the table.
func (t *Table) NumFeatures() int {
	return len(t.features[0])
}

// Row returns the feature values of the sample at the given position.
func (t *Table) Row(i int) []float64 {
	return t.features[i]
}

// Value returns the value the sample at the given position takes for
// the given feature column.
func (t *Table) Value(i, feature int) float64 {
	return t.features[i][feature]
}

// Label returns the class label of the sample at the given position.
func (t *Table) Label(i int) string {
	return t.labels[i]
}

// Features returns the table's feature matrix.
func (t *Table) Features() [][]float64 {
	return t.features
}

// Labels returns the table's label vector.
func (t *Table) Labels() []string {
	return t.labels
}

// LabelsAt returns the labels of the samples at the given positions, in
// the given order.
func (t *Table) LabelsAt(rows []int) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = t.labels[r]
	}
	return labels
}

/*
Entropy returns the Shannon entropy in bits of the labels of the samples
at the given positions, or ErrEmptyLabelSet if rows is empty.
*/
func (t *Table) Entropy(rows []int) (float64, error) {
	return Entropy(t.LabelsAt(rows))
}

/*
FeatureValues returns the distinct values the given feature column takes
among the samples at the given positions, sorted in ascending order.
*/
func (t *Table) FeatureValues(feature int, rows []int) []float64 {
	encountered := make(map[float64]bool)
	var values []float64
	for _, r := range rows {
		v := t.features[r][feature]
		if !encountered[v] {
			encountered[v] = true
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	return values
}

/*
Entropy takes a label set and returns its Shannon entropy in bits: the
sum over the distinct labels of -p*log2(p), with p the relative
frequency of the label in the set. A set with a single distinct label
has entropy 0. Requesting the entropy of an empty label set returns
ErrEmptyLabelSet.
*/
func Entropy(labels []string) (float64, error) {
	if len(labels) == 0 {
		return 0.0, ErrEmptyLabelSet
	}
	counts := make(map[string]int)
	for _, label := range labels {
		counts[label]++
	}
	// A set with a single distinct label is exactly pure; computing it
	// through the epsilon-protected logarithm would yield a tiny
	// negative value instead of 0.
	if len(counts) == 1 {
		return 0.0, nil
	}
	total := float64(len(labels))
	var result float64
	for _, c := range counts {
		p := float64(c) / total
		result -= p * math.Log2(p+logEpsilon)
	}
	return result, nil
}

/*
Majority takes a label set and returns its most frequent label. Ties are
broken deterministically in favour of the smallest label value, so
repeated runs over the same data select the same label. Requesting the
majority label of an empty label set returns ErrEmptyLabelSet.
*/
func Majority(labels []string) (string, error) {
	if len(labels) == 0 {
		return "", ErrEmptyLabelSet
	}
	counts := make(map[string]int)
	for _, label := range labels {
		counts[label]++
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)
	majority := values[0]
	for _, v := range values[1:] {
		if counts[v] > counts[majority] {
			majority = v
		}
	}
	return majority, nil
}
