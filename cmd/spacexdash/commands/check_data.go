package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/spacexdash/backend/internal/launches"
	"github.com/wonny/spacexdash/backend/pkg/logger"
)

// checkDataCmd represents the check-data command
var checkDataCmd = &cobra.Command{
	Use:   "check-data",
	Short: "Validate the launch dataset",
	Long: `Loads the configured launch dataset, validates its schema and prints statistics.

Checks:
- required columns are present
- payload mass is numeric and non-negative
- outcome class is 0 or 1
- at least one row

Example:
  go run ./cmd/spacexdash check-data
  go run ./cmd/spacexdash check-data --dataset https://example.com/spacex_launch_dash.csv`,
	RunE: runCheckData,
}

func init() {
	rootCmd.AddCommand(checkDataCmd)
}

func runCheckData(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := os.Stdout
	PrintHeader(out, "Launch dataset check")

	ds, source, err := loadDataset(context.Background(), cfg, logger.Nop())
	if err != nil {
		switch {
		case errors.Is(err, launches.ErrEmptyDataset):
			PrintWarning(out, "dataset has no rows")
		case errors.Is(err, launches.ErrInvalidSchema):
			PrintWarning(out, "dataset schema is invalid")
		}
		return err
	}

	renderStats(out, source, ds.Stats())
	PrintSuccess(out, fmt.Sprintf("%d launch records are valid", ds.Len()))
	return nil
}
