/*
Package arbor implements a binary decision-tree classifier. A classifier
is fitted to a feature matrix and a label vector by greedily selecting,
at each node, the feature and threshold split that maximizes the
information gain computed from the Shannon entropy of the labels, and
the fitted tree is then walked to classify new samples.

Splits are always binary: samples whose value for the selected feature
is less than or equal to the threshold go left, the rest go right.
Growing stops at a node when its labels are pure, when the configured
maximum depth is reached or when no feature offers a non-degenerate
split, and the node becomes a leaf predicting its majority label.
*/
package arbor

import (
	"fmt"

	"github.com/arborlab/arbor/dataset"
	"github.com/arborlab/arbor/tree"
)

// ClassifierError represents an error related with the classifier's
// fit/predict lifecycle.
type ClassifierError string

func (ce ClassifierError) Error() string {
	return string(ce)
}

/*
ErrNotFitted is the error returned by Predict when it is invoked before
Fit has produced a tree. It is recoverable by calling Fit first.
*/
const ErrNotFitted = ClassifierError("classifier has not been fitted")

/*
Classifier is a binary decision-tree classifier. The zero value is not
ready to use; classifiers are built with New, fitted with Fit and
queried with Predict. A fitted tree is immutable: concurrent Predict
calls against the same fitted classifier require no synchronization.
*/
type Classifier struct {
	maxDepth int
	tree     *tree.Tree
}

// Option configures a Classifier built with New.
type Option func(*Classifier)

/*
MaxDepth bounds the recursion depth of the fitted tree. The root is at
depth 0, so MaxDepth(0) yields a single leaf predicting the global
majority label of the training set. A negative value, the default,
grows the tree until every leaf is pure or no split improves it.
*/
func MaxDepth(depth int) Option {
	return func(c *Classifier) {
		c.maxDepth = depth
	}
}

/*
New returns a classifier configured with the given options. If no
options are passed the returned classifier grows unbounded trees.
*/
func New(opts ...Option) *Classifier {
	c := &Classifier{maxDepth: -1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

/*
Fit takes a feature matrix and a label vector and fits a tree to them,
replacing any previously fitted tree. The matrix must have at least one
row, uniform row lengths and exactly one label per row; otherwise an
error is returned and the previously fitted tree, if any, is left in
place. Fit is atomic with respect to failure: a partially built tree is
never observable.
*/
func (c *Classifier) Fit(features [][]float64, labels []string) error {
	tab, err := dataset.New(features, labels)
	if err != nil {
		return fmt.Errorf("fitting classifier: %v", err)
	}
	rows := make([]int, tab.Count())
	for i := range rows {
		rows[i] = i
	}
	root, err := c.grow(tab, rows, 0)
	if err != nil {
		return fmt.Errorf("fitting classifier: %v", err)
	}
	c.tree = tree.New(root, tab.NumFeatures())
	return nil
}

/*
Predict takes a feature matrix and returns the class label the fitted
tree assigns to each of its rows, in input order: a matrix with K rows
produces exactly K labels. An error is returned if the classifier has
not been fitted or a row's length does not match the training matrix's
number of columns.
*/
func (c *Classifier) Predict(features [][]float64) ([]string, error) {
	if c.tree == nil {
		return nil, ErrNotFitted
	}
	labels := make([]string, len(features))
	for i, row := range features {
		label, err := c.tree.Predict(row)
		if err != nil {
			return nil, fmt.Errorf("predicting sample %d: %v", i, err)
		}
		labels[i] = label
	}
	return labels, nil
}

/*
Tree returns the fitted tree, or nil if the classifier has not been
fitted. The returned tree is read-only; it is the artifact consumed by
the serialization and store layers.
*/
func (c *Classifier) Tree() *tree.Tree {
	return c.tree
}
