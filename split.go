package arbor

import (
	"github.com/arborlab/arbor/dataset"
)

/*
split represents the partition of a node's samples by a feature and a
threshold, with the information gain it achieves over the node's
entropy.
*/
type split struct {
	feature   int
	threshold float64
	left      []int
	right     []int
	gain      float64
}

/*
bestSplit takes a table and the row positions of the current node's
samples and returns the split maximizing information gain, or nil if
every feature is constant within the node and no non-degenerate
threshold exists.

Candidates are scanned with features in ascending index order and, for
each feature, its distinct values among the samples in ascending order
as thresholds. A threshold equal to a feature's maximum value would
leave the right side empty and is skipped rather than evaluated. Only a
strictly greater gain replaces the current best, so gain ties resolve
to the first candidate in scan order, reproducibly across runs.
*/
func bestSplit(tab *dataset.Table, rows []int) (*split, error) {
	parentEntropy, err := tab.Entropy(rows)
	if err != nil {
		return nil, err
	}
	total := float64(len(rows))
	var best *split
	for feature := 0; feature < tab.NumFeatures(); feature++ {
		values := tab.FeatureValues(feature, rows)
		if len(values) < 2 {
			continue
		}
		for _, threshold := range values[:len(values)-1] {
			var left, right []int
			for _, r := range rows {
				if tab.Value(r, feature) <= threshold {
					left = append(left, r)
				} else {
					right = append(right, r)
				}
			}
			leftEntropy, err := tab.Entropy(left)
			if err != nil {
				return nil, err
			}
			rightEntropy, err := tab.Entropy(right)
			if err != nil {
				return nil, err
			}
			gain := parentEntropy - leftEntropy*float64(len(left))/total - rightEntropy*float64(len(right))/total
			if best == nil || gain > best.gain {
				best = &split{feature, threshold, left, right, gain}
			}
		}
	}
	return best, nil
}
