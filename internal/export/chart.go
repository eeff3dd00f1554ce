// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/pdiddy/pubtrend/pkg/types"
)

// PNGFileName is the default file name for the chart export.
const PNGFileName = "citations.png"

const (
	chartWidth  = 900
	chartHeight = 500
)

// RenderPNG rasterizes the series as a PNG line chart and writes it to w.
// An empty series returns ErrNoData and writes nothing.
func RenderPNG(w io.Writer, title string, series []types.Point) error {
	if len(series) == 0 {
		return ErrNoData
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = float64(p.Year)
		ys[i] = float64(p.Citations)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Publications",
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
