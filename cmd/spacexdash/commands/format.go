package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/dashboard"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

// PrintHeader prints a formatted command header
func PrintHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────")
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "✅ %s\n", message)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "⚠️  %s\n", message)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// renderStats prints dataset statistics
func renderStats(w io.Writer, source string, stats contracts.DatasetStats) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Source", source})
	t.AppendRow(table.Row{"Rows", stats.Rows})
	t.AppendRow(table.Row{"Successful landings", stats.Landed})
	t.AppendRow(table.Row{"Success rate", fmt.Sprintf("%.1f%%", stats.SuccessRate()*100)})
	t.AppendRow(table.Row{"Launch sites", strings.Join(stats.Sites, ", ")})
	t.AppendRow(table.Row{"Payload range", fmt.Sprintf("%skg ~ %skg",
		dashboard.FormatKg(stats.MinPayloadKg), dashboard.FormatKg(stats.MaxPayloadKg))})
	t.Render()
}

// renderPie prints a pie summary with slice shares
func renderPie(w io.Writer, summary contracts.PieSummary) {
	fmt.Fprintln(w, summary.Title)

	if len(summary.Slices) == 0 {
		fmt.Fprintln(w, "(no slices)")
		return
	}

	total := summary.Total()
	t := newTable(w)
	t.AppendHeader(table.Row{"Label", "Count", "Share"})
	for _, s := range summary.Slices {
		t.AppendRow(table.Row{s.Label, s.Value, fmt.Sprintf("%.1f%%", float64(s.Value)/float64(total)*100)})
	}
	t.AppendFooter(table.Row{"Total", total, ""})
	t.Render()
}

// renderScatter prints scatter points grouped by booster category
func renderScatter(w io.Writer, plot contracts.ScatterPlot) {
	fmt.Fprintln(w, plot.Title)

	if len(plot.Points) == 0 {
		fmt.Fprintln(w, "(0 points)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Booster Version Category", "Payload Mass (kg)", "class"})
	groups := plot.ByCategory()
	for _, category := range plot.Categories() {
		for _, p := range groups[category] {
			t.AppendRow(table.Row{category, dashboard.FormatKg(p.PayloadMassKg), p.OutcomeClass})
		}
	}
	t.Render()
	fmt.Fprintf(w, "(%d points)\n", len(plot.Points))
}
