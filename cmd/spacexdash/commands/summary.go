package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/dashboard"
	"github.com/wonny/spacexdash/backend/pkg/logger"
	"github.com/wonny/spacexdash/backend/pkg/redis"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the pie and scatter aggregates",
	Long: `Computes the dashboard aggregates for one selection and prints them as tables.

Bounds default to the dataset payload range; both bounds are exclusive.

Example:
  go run ./cmd/spacexdash summary
  go run ./cmd/spacexdash summary --site "CCAFS LC-40" --low 0 --high 5000`,
	RunE: runSummary,
}

var (
	summarySite string
	summaryLow  float64
	summaryHigh float64
)

func init() {
	rootCmd.AddCommand(summaryCmd)

	// Flags
	summaryCmd.Flags().StringVar(&summarySite, "site", contracts.AllSites, "launch site or ALL")
	summaryCmd.Flags().Float64Var(&summaryLow, "low", 0, "payload lower bound in kg (exclusive)")
	summaryCmd.Flags().Float64Var(&summaryHigh, "high", 0, "payload upper bound in kg (exclusive)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	ds, _, err := loadDataset(ctx, cfg, logger.Nop())
	if err != nil {
		return err
	}

	svc := dashboard.NewService(ds, redis.NewCache(redis.Disabled(), "cli"), cfg, logger.Nop())

	state := svc.Defaults()
	state.Site = summarySite
	if cmd.Flags().Changed("low") {
		state.Payload.Low = summaryLow
	}
	if cmd.Flags().Changed("high") {
		state.Payload.High = summaryHigh
	}

	view := svc.View(ctx, state)

	out := os.Stdout
	PrintHeader(out, "Landing outcomes")
	renderPie(out, view.Pie)
	PrintHeader(out, "Payload vs. outcome")
	renderScatter(out, view.Scatter)

	return nil
}
