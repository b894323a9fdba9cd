/*
Package mongodataset provides loading of dataset.Tables from a MongoDB
collection. Every document in the collection is expected to hold a
numeric field per feature column and a field with the sample's label.
*/
package mongodataset

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arborlab/arbor/dataset"
)

/*
Read takes a context, a MongoDB collection, a slice of feature field
names and a label field name and returns a dataset.Table with every
document in the collection as a sample, or an error if the collection
cannot be iterated or a document is missing a field or holds a
non-numeric feature value.
*/
func Read(ctx context.Context, c *mongo.Collection, features []string, label string) (*dataset.Table, error) {
	cursor, err := c.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("querying samples: %v", err)
	}
	defer cursor.Close(ctx)
	var featureRows [][]float64
	var labels []string
	for cursor.Next(ctx) {
		var doc bson.M
		err = cursor.Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decoding sample %d: %v", len(labels), err)
		}
		row := make([]float64, len(features))
		for i, f := range features {
			v, ok := doc[f]
			if !ok {
				return nil, fmt.Errorf("sample %d has no value for feature %s", len(labels), f)
			}
			row[i], err = numericValue(v)
			if err != nil {
				return nil, fmt.Errorf("sample %d: feature %s: %v", len(labels), f, err)
			}
		}
		v, ok := doc[label]
		if !ok {
			return nil, fmt.Errorf("sample %d has no value for label %s", len(labels), label)
		}
		featureRows = append(featureRows, row)
		labels = append(labels, fmt.Sprintf("%v", v))
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %v", err)
	}
	return dataset.New(featureRows, labels)
}

func numericValue(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	}
	return 0.0, fmt.Errorf("expected numeric value, got %T", v)
}
