package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/dashboard"
	"github.com/wonny/spacexdash/backend/internal/render"
	"github.com/wonny/spacexdash/backend/pkg/logger"
	"github.com/wonny/spacexdash/backend/pkg/redis"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write chart images to files",
	Long: `Renders the pie and scatter charts for every dropdown entry
(or only --site) over the default payload range.

Files are named pie_<site>.<format> and scatter_<site>.<format>.

Example:
  go run ./cmd/spacexdash render --out-dir charts
  go run ./cmd/spacexdash render --site ALL --format svg`,
	RunE: runRender,
}

var (
	renderOutDir string
	renderFormat string
	renderSite   string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	// Flags
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "charts", "output directory")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "png or svg (default CHART_FORMAT)")
	renderCmd.Flags().StringVar(&renderSite, "site", "", "render a single site selector value")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if renderFormat == "" {
		renderFormat = cfg.Chart.Format
	}
	format, err := render.ParseFormat(renderFormat)
	if err != nil {
		return err
	}

	ctx := context.Background()
	ds, _, err := loadDataset(ctx, cfg, logger.Nop())
	if err != nil {
		return err
	}

	svc := dashboard.NewService(ds, redis.NewCache(redis.Disabled(), "cli"), cfg, logger.Nop())
	renderer := render.NewRenderer(cfg.Chart)

	sites := []string{renderSite}
	if renderSite == "" {
		sites = sites[:0]
		for _, opt := range svc.Options() {
			sites = append(sites, opt.Value)
		}
	}

	if err := os.MkdirAll(renderOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out := os.Stdout
	PrintHeader(out, "Chart rendering")

	defaults := svc.Defaults()
	for _, site := range sites {
		view := svc.View(ctx, contracts.SelectorState{Site: site, Payload: defaults.Payload})

		var buf bytes.Buffer
		if err := renderer.Pie(&buf, view.Pie, format); err != nil {
			return err
		}
		if err := writeChart(fileName("pie", site, format), buf.Bytes()); err != nil {
			return err
		}

		buf.Reset()
		if err := renderer.Scatter(&buf, view.Scatter, format); err != nil {
			return err
		}
		if err := writeChart(fileName("scatter", site, format), buf.Bytes()); err != nil {
			return err
		}

		fmt.Fprintf(out, "[render] %s: %d slices, %d points\n", site, len(view.Pie.Slices), len(view.Scatter.Points))
	}

	PrintSuccess(out, fmt.Sprintf("Wrote %d charts to %s", len(sites)*2, renderOutDir))
	return nil
}

// fileName turns "KSC LC-39A" into pie_ksc_lc-39a.png
func fileName(chart, site string, format render.Format) string {
	slug := strings.ToLower(strings.ReplaceAll(site, " ", "_"))
	return filepath.Join(renderOutDir, fmt.Sprintf("%s_%s.%s", chart, slug, format))
}

func writeChart(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
