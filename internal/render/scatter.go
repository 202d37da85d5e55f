package render

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

// pointStyle renders points only, no connecting line
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// outcomeTicks pins the y axis to the two outcome classes
var outcomeTicks = []chart.Tick{
	{Value: -0.25, Label: ""},
	{Value: 0, Label: "0"},
	{Value: 1, Label: "1"},
	{Value: 1.25, Label: ""},
}

// Scatter renders payload mass against landing outcome, one series per
// booster category. Axis ranges are fixed so single-point plots still render.
func (r *Renderer) Scatter(w io.Writer, plot contracts.ScatterPlot, f Format) error {
	if len(plot.Points) == 0 || plot.High <= plot.Low {
		return r.blank(w, plot.Title, f)
	}

	groups := plot.ByCategory()
	series := make([]chart.Series, 0, len(groups))
	for i, category := range plot.Categories() {
		points := groups[category]
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for j, p := range points {
			xs[j] = p.PayloadMassKg
			ys[j] = float64(p.OutcomeClass)
		}

		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(paletteColor(i)),
		})
	}

	ch := chart.Chart{
		Title:      plot.Title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           contracts.ColumnPayloadMass,
			Range:          &chart.ContinuousRange{Min: plot.Low, Max: plot.High},
			ValueFormatter: kgFormatter,
		},
		YAxis: chart.YAxis{
			Name:  contracts.ColumnOutcomeClass,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: outcomeTicks,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return write(w, f, ch.Render)
}

func kgFormatter(v interface{}) string {
	return chart.FloatValueFormatterWithFormat(v, "%.0f")
}
