/*
Package csv provides reading and writing of dataset.Tables as CSV
streams. The header or first row of a stream names the feature columns
and the label column; the order of columns in the stream does not have
to match the order of the declared features.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arborlab/arbor/dataset"
)

/*
Writer is an interface for a destination to which labeled samples can
be written.
*/
type Writer interface {
	// Write attempts to write the sample with the given feature
	// values and label, returning an error if it cannot be written.
	Write(row []float64, label string) error
	// Count returns the total number of samples written so far.
	Count() int
	// Flush ensures any pending write operations finish before
	// returning. It returns an error if that cannot be ensured.
	Flush() error
}

type csvWriter struct {
	count   int
	columns int
	w       *csv.Writer
}

/*
ReadTable takes an io.Reader for a CSV stream, a slice of feature column
names and a label column name and returns a dataset.Table with the
samples parsed from the stream or an error. Every feature value must
parse as a float64.
*/
func ReadTable(reader io.Reader, features []string, label string) (*dataset.Table, error) {
	var rows [][]float64
	var labels []string
	err := ReadBySample(reader, features, label, func(_ int, row []float64, l string) (bool, error) {
		rows = append(rows, row)
		labels = append(labels, l)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(rows, labels)
}

/*
ReadBySample takes an io.Reader for a CSV stream, a slice of feature
column names, a label column name and a lambda function on a sample
index, a feature row and a label that returns a boolean value. It parses
the samples from the stream and calls the lambda function for each. If
the lambda function returns true it continues with the next sample,
otherwise it stops. An error is returned if the stream cannot be read or
a sample cannot be parsed.
*/
func ReadBySample(reader io.Reader, features []string, label string, lambda func(int, []float64, string) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	featureCols, labelColumn, err := parseHeader(header, features, label)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		row := make([]float64, len(features))
		for i, column := range featureCols {
			row[i], err = strconv.ParseFloat(record[column], 64)
			if err != nil {
				return fmt.Errorf("parsing line %d: converting %s to float64: %v", l, record[column], err)
			}
		}
		ok, err := lambda(l-2, row, record[labelColumn])
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadRows takes an io.Reader for a CSV stream and a slice of feature
column names and returns the unlabeled feature rows parsed from the
stream, in input order, or an error. The stream's header must name every
feature column; any label column present is ignored.
*/
func ReadRows(reader io.Reader, features []string) ([][]float64, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	featureCols, err := featureColumns(header, features)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		row := make([]float64, len(features))
		for i, column := range featureCols {
			row[i], err = strconv.ParseFloat(record[column], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing line %d: converting %s to float64: %v", l, record[column], err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

/*
ReadTableFromFilePath takes a filepath string, a slice of feature column
names and a label column name, opens the file the filepath points to
(os.Stdin if the filepath is "") and uses ReadTable to parse a
dataset.Table from it or return an error.
*/
func ReadTableFromFilePath(filepath string, features []string, label string) (*dataset.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading samples: %v", err)
		}
		defer f.Close()
	}
	t, err := ReadTable(f, features, label)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return t, err
}

/*
NewWriter takes an io.Writer, a slice of feature column names and a
label column name and returns a Writer that writes samples onto the
io.Writer as CSV rows, after writing a header row with the column names.
*/
func NewWriter(writer io.Writer, features []string, label string) (Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, 0, len(features)+1)
	record = append(record, features...)
	record = append(record, label)
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{columns: len(features), w: w}, nil
}

/*
WriteTable takes an io.Writer, a dataset.Table, a slice of feature
column names and a label column name and dumps the table onto the writer
in CSV format. It returns an error if something goes wrong writing the
rows.
*/
func WriteTable(writer io.Writer, t *dataset.Table, features []string, label string) error {
	cw, err := NewWriter(writer, features, label)
	if err != nil {
		return err
	}
	for i := 0; i < t.Count(); i++ {
		err = cw.Write(t.Row(i), t.Label(i))
		if err != nil {
			return err
		}
	}
	return cw.Flush()
}

func (cw *csvWriter) Write(row []float64, label string) error {
	if len(row) != cw.columns {
		return fmt.Errorf("writing CSV row for sample %d: %d values, expected %d", cw.count+1, len(row), cw.columns)
	}
	record := make([]string, 0, cw.columns+1)
	for _, v := range row {
		record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
	}
	record = append(record, label)
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for sample %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func parseHeader(header []string, features []string, label string) ([]int, int, error) {
	featureCols, err := featureColumns(header, features)
	if err != nil {
		return nil, 0, err
	}
	labelColumn := -1
	for i, name := range header {
		if name == label {
			labelColumn = i
			break
		}
	}
	if labelColumn == -1 {
		return nil, 0, fmt.Errorf("parsing header: no column for label %s", label)
	}
	return featureCols, labelColumn, nil
}

func featureColumns(header []string, features []string) ([]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		columns[name] = i
	}
	featureCols := make([]int, len(features))
	for i, name := range features {
		column, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("parsing header: no column for feature %s", name)
		}
		featureCols[i] = column
	}
	return featureCols, nil
}
