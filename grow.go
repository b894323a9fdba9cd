package arbor

import (
	"github.com/arborlab/arbor/dataset"
	"github.com/arborlab/arbor/tree"
)

/*
grow recursively builds the subtree for the samples at the given row
positions, with the root of the whole tree at depth 0. Stopping is
driven by three independent terminal conditions: label purity, depth
exhaustion and split exhaustion. There is no backtracking once a split
is committed.

Split search only proposes partitions with two non-empty sides, so grow
is never invoked on an empty row subset; the emptiness check on entry
enforces that invariant rather than handling a reachable state.
*/
func (c *Classifier) grow(tab *dataset.Table, rows []int, depth int) (*tree.Node, error) {
	if len(rows) == 0 {
		return nil, dataset.ErrEmptyLabelSet
	}
	labels := tab.LabelsAt(rows)
	if uniform(labels) {
		return tree.NewLeaf(labels[0]), nil
	}
	if c.maxDepth >= 0 && depth >= c.maxDepth {
		return majorityLeaf(labels)
	}
	sp, err := bestSplit(tab, rows)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return majorityLeaf(labels)
	}
	left, err := c.grow(tab, sp.left, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := c.grow(tab, sp.right, depth+1)
	if err != nil {
		return nil, err
	}
	return tree.NewInternal(sp.feature, sp.threshold, left, right), nil
}

func majorityLeaf(labels []string) (*tree.Node, error) {
	label, err := dataset.Majority(labels)
	if err != nil {
		return nil, err
	}
	return tree.NewLeaf(label), nil
}

func uniform(labels []string) bool {
	for _, label := range labels[1:] {
		if label != labels[0] {
			return false
		}
	}
	return true
}
