package dataset

import (
	"fmt"
	"math/rand"
)

/*
Partition takes a table, a test fraction between 0 and 1 and a source of
randomness and splits the table's samples into a training table and a
test table. Samples are shuffled before the cut, so repeated calls with
differently-seeded sources produce different partitions while a fixed
seed reproduces the same one. An error is returned if the fraction would
leave either side without samples.
*/
func Partition(t *Table, testFraction float64, r *rand.Rand) (*Table, *Table, error) {
	if testFraction <= 0.0 || testFraction >= 1.0 {
		return nil, nil, fmt.Errorf("partitioning table: test fraction %v is not between 0 and 1", testFraction)
	}
	count := t.Count()
	testCount := int(float64(count) * testFraction)
	if testCount == 0 || testCount == count {
		return nil, nil, fmt.Errorf("partitioning table: test fraction %v leaves an empty side for %d samples", testFraction, count)
	}
	order := r.Perm(count)
	testFeatures := make([][]float64, 0, testCount)
	testLabels := make([]string, 0, testCount)
	trainFeatures := make([][]float64, 0, count-testCount)
	trainLabels := make([]string, 0, count-testCount)
	for i, row := range order {
		if i < testCount {
			testFeatures = append(testFeatures, t.Row(row))
			testLabels = append(testLabels, t.Label(row))
		} else {
			trainFeatures = append(trainFeatures, t.Row(row))
			trainLabels = append(trainLabels, t.Label(row))
		}
	}
	train, err := New(trainFeatures, trainLabels)
	if err != nil {
		return nil, nil, err
	}
	test, err := New(testFeatures, testLabels)
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}
