package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/arborlab/arbor/dataset/sqldataset"
)

const samplesTableName = "samples"

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a limit for open
connections (0 meaning no limit) and returns an Adapter that works on
the file's database or an error if it fails to open as an sqlite3
database.
*/
func New(path string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
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
