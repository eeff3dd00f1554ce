// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes an aggregated publication series to CSV text
// and to a rendered PNG chart, and saves each as a file.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/pdiddy/pubtrend/pkg/types"
)

// CSVFileName is the default file name for the CSV export.
const CSVFileName = "publication_counts.csv"

// ErrNoData is returned when an export is requested for an empty series.
// Callers report it to the diagnostic log and write nothing.
var ErrNoData = errors.New("no data to export")

// WriteCSV writes the series to w as CSV: a "Year,Publications" header
// followed by one row per point in series order. An empty series returns
// ErrNoData and writes nothing.
func WriteCSV(w io.Writer, series []types.Point) error {
	if len(series) == 0 {
		return ErrNoData
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Year", "Publications"}); err != nil {
		return err
	}
	for _, p := range series {
		if err := cw.Write([]string{strconv.Itoa(p.Year), strconv.Itoa(p.Citations)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads a series previously written by WriteCSV. It is the
// inverse of WriteCSV for round-trip checks and downstream tooling.
func ParseCSV(r io.Reader) ([]types.Point, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty CSV")
	}

	series := make([]types.Point, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 2 {
			return nil, errors.New("malformed CSV row")
		}
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, err
		}
		count, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, err
		}
		series = append(series, types.Point{Year: year, Citations: count})
	}
	return series, nil
}
