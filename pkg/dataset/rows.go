// Package dataset encodes and decodes the training-row stream the learning
// pipeline reads and writes: semicolon-delimited rows, grounded on
// utils/boardCombinations.py's save_positions_as_csv.
package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// codecVersion is stamped as a leading comment line so a future encoding
// change can be detected instead of silently misread.
const codecVersion = "connectfour-rows-v1"

// delimiter matches the source's csv.writer(file, delimiter=';').
const delimiter = ';'

// ErrBadHeader is returned when a stream's first line isn't the expected
// codec-version stamp.
var ErrBadHeader = errors.New("dataset: missing or mismatched codec version header")

// WriteRows writes rows (each a feature vector with its trailing label
// column) to w as semicolon-separated values, preceded by a version-stamp
// comment line.
func WriteRows(w io.Writer, rows [][]float64) error {
	if _, err := io.WriteString(w, "#"+codecVersion+"\n"); err != nil {
		return errors.Wrap(err, "dataset: write header")
	}

	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "dataset: write row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "dataset: flush")
}

// ReadRows reads a semicolon-delimited row stream previously written by
// WriteRows, validating the leading version-stamp comment.
func ReadRows(r io.Reader) ([][]float64, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && header == "" {
		return nil, errors.Wrap(err, "dataset: read header")
	}
	if header != "#"+codecVersion+"\n" && header != "#"+codecVersion {
		return nil, ErrBadHeader
	}

	cr := csv.NewReader(br)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: read rows")
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset: row %d field %d", i, j)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}
