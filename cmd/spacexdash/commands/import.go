package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/spacexdash/backend/internal/launches"
	"github.com/wonny/spacexdash/backend/pkg/database"
	"github.com/wonny/spacexdash/backend/pkg/logger"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the launch CSV into PostgreSQL",
	Long: `Loads the launch CSV (DATASET_PATH or --dataset), validates it and replaces
the contents of the launch table (DATASET_TABLE) in one transaction.

Afterwards DATASET_SOURCE=postgres serves the dashboard from the table.

Example:
  DATABASE_URL=postgres://localhost/spacex go run ./cmd/spacexdash import`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	out := os.Stdout
	PrintHeader(out, "Launch dataset import")

	start := time.Now()

	source := csvSource(cfg, log)
	ds, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s: %w", source.Describe(), err)
	}

	db, err := database.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := launches.NewRepository(db.Pool, cfg.Dataset.Table)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	n, err := repo.Import(ctx, ds)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"source": source.Describe(),
		"target": repo.Describe(),
		"rows":   n,
	}).Info("Launch dataset imported")

	PrintSuccess(out, fmt.Sprintf("Imported %d rows into %s in %.2fs", n, repo.Describe(), time.Since(start).Seconds()))
	return nil
}
