package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"

	"github.com/arborlab/arbor/dataset/sqldataset"
)

const samplesTableName = "samples"

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and a limit for open connections
(0 meaning no limit) and returns an Adapter that works on the URL's
database or an error if the connection cannot be opened.
*/
func New(url string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %v", err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) SampleQuery(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = fmt.Sprintf(`"%s"`, c)
	}
	return fmt.Sprintf(`SELECT %s FROM %s`, strings.Join(quoted, ", "), samplesTableName)
}

func (a *adapter) Close() error {
	return a.db.Close()
}
