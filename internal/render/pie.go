package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

// Pie renders the landing outcome pie chart.
// A summary without slices renders the blank placeholder.
func (r *Renderer) Pie(w io.Writer, summary contracts.PieSummary, f Format) error {
	if summary.Total() == 0 {
		return r.blank(w, summary.Title, f)
	}

	values := make([]chart.Value, 0, len(summary.Slices))
	for i, s := range summary.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
			Style: chart.Style{
				FillColor:   paletteColor(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	pie := chart.PieChart{
		Title:  summary.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}

	return write(w, f, pie.Render)
}
