// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trend

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/pubtrend/pkg/types"
)

// buildSeries converts per-year counts into a series sorted ascending by
// year. Years with no recorded counts are absent, not zero.
func buildSeries(counts map[int]int) []types.Point {
	if len(counts) == 0 {
		return nil
	}
	series := make([]types.Point, 0, len(counts))
	for year, n := range counts {
		series = append(series, types.Point{Year: year, Citations: n})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Year < series[j].Year
	})
	return series
}

// FormatTable writes the series as a human-readable table to w.
func FormatTable(res Result, w io.Writer) {
	if len(res.Series) == 0 {
		fmt.Fprintln(w, "No publications found.")
		return
	}

	fmt.Fprintf(w, "%-6s  %s\n", "Year", "Publications")
	for _, p := range res.Series {
		fmt.Fprintf(w, "%-6d  %d\n", p.Year, p.Citations)
	}
	fmt.Fprintf(w, "\n%d records processed of %d reported, %d distinct years\n",
		res.Stats.Processed, res.Stats.TotalHits, res.Stats.DistinctYears)
}

// FormatJSON writes the series as indented JSON to w.
func FormatJSON(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Series)
}
