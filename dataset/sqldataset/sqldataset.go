/*
Package sqldataset provides loading of dataset.Tables from SQL
databases. Backends are plugged in through the Adapter interface;
the sqlite3adapter and pgadapter subpackages provide implementations
for SQLite3 files and PostgreSQL servers.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/arborlab/arbor/dataset"
)

/*
Adapter is an interface for access to a specific SQL backend.

Its DB method returns the database handle to query.

Its SampleQuery method takes a slice of column names and returns the
dialect-specific statement that selects those columns for every sample
in the backend.

Its Close method releases the backend's resources.
*/
type Adapter interface {
	DB() *sql.DB
	SampleQuery(columns []string) string
	Close() error
}

/*
Read takes a context, an Adapter, a slice of feature column names and a
label column name and returns a dataset.Table with every sample on the
adapter's backend or an error. Feature columns are read as float64 and
the label column as a string.
*/
func Read(ctx context.Context, a Adapter, features []string, label string) (*dataset.Table, error) {
	columns := make([]string, 0, len(features)+1)
	columns = append(columns, features...)
	columns = append(columns, label)
	for _, c := range columns {
		if strings.ContainsAny(c, `"`) {
			return nil, fmt.Errorf(`column name %s contains invalid character '"'`, c)
		}
	}
	rows, err := a.DB().QueryContext(ctx, a.SampleQuery(columns))
	if err != nil {
		return nil, fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	var featureRows [][]float64
	var labels []string
	for rows.Next() {
		row := make([]float64, len(features))
		scanned := make([]interface{}, 0, len(features)+1)
		for i := range row {
			scanned = append(scanned, &row[i])
		}
		var l string
		scanned = append(scanned, &l)
		err = rows.Scan(scanned...)
		if err != nil {
			return nil, fmt.Errorf("scanning sample %d: %v", len(labels), err)
		}
		featureRows = append(featureRows, row)
		labels = append(labels, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %v", err)
	}
	return dataset.New(featureRows, labels)
}
