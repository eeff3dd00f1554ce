// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trend

import (
	"bytes"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/pdiddy/pubtrend/pkg/types"
)

func TestBuildSeries(t *testing.T) {
	tests := []struct {
		name   string
		counts map[int]int
		want   []types.Point
	}{
		{
			name:   "empty",
			counts: map[int]int{},
			want:   nil,
		},
		{
			name:   "single year",
			counts: map[int]int{2020: 7},
			want:   []types.Point{{Year: 2020, Citations: 7}},
		},
		{
			name:   "sorted ascending with no gap filling",
			counts: map[int]int{2021: 1, 1999: 4, 2010: 2},
			want: []types.Point{
				{Year: 1999, Citations: 4},
				{Year: 2010, Citations: 2},
				{Year: 2021, Citations: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSeries(tt.counts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildSeries() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildSeries_StrictlyAscendingNoDuplicates(t *testing.T) {
	counts := map[int]int{1980: 1, 1981: 2, 1979: 3, 2005: 9, 1700: 1}
	series := buildSeries(counts)

	if len(series) != len(counts) {
		t.Fatalf("len(series) = %d, want %d", len(series), len(counts))
	}
	sorted := sort.SliceIsSorted(series, func(i, j int) bool {
		return series[i].Year < series[j].Year
	})
	if !sorted {
		t.Errorf("series not ascending: %+v", series)
	}
	seen := make(map[int]bool)
	for _, p := range series {
		if seen[p.Year] {
			t.Errorf("duplicate year %d", p.Year)
		}
		seen[p.Year] = true
	}
}

func TestFormatTable(t *testing.T) {
	res := Result{
		Series: []types.Point{{Year: 2019, Citations: 1}, {Year: 2021, Citations: 3}},
		Stats:  types.RunStats{TotalHits: 4, Processed: 4, DistinctYears: 2},
	}

	var buf bytes.Buffer
	FormatTable(res, &buf)
	out := buf.String()

	for _, want := range []string{"Year", "2019", "2021", "4 records processed of 4 reported"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatTable output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Result{}, &buf)
	if !strings.Contains(buf.String(), "No publications found.") {
		t.Errorf("FormatTable output = %q", buf.String())
	}
}
