package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wonny/spacexdash/backend/pkg/config"
	"github.com/wonny/spacexdash/backend/pkg/database"
	"github.com/wonny/spacexdash/backend/pkg/logger"
	"github.com/wonny/spacexdash/backend/pkg/redis"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and backing services",
	Long: `Checks everything the server needs before it starts.

Checks:
- configuration loads and validates
- launch dataset loads from the configured source
- PostgreSQL ping and pool statistics (when DATABASE_URL is set)
- Redis ping (when REDIS_ENABLED=true)

Example:
  go run ./cmd/spacexdash doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type checkResult struct {
	name   string
	ok     bool
	detail string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := os.Stdout
	PrintHeader(out, "SpaceX dashboard doctor")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results := []checkResult{
		{name: "config", ok: true, detail: fmt.Sprintf("env=%s source=%s", cfg.Env, cfg.Dataset.Source)},
		checkDataset(ctx, cfg),
		checkPostgres(ctx, cfg),
		checkRedis(ctx, cfg),
	}

	t := newTable(out)
	t.AppendHeader(table.Row{"Check", "Status", "Detail"})
	failed := 0
	for _, r := range results {
		status := "✅"
		if !r.ok {
			status = "❌"
			failed++
		}
		t.AppendRow(table.Row{r.name, status, r.detail})
	}
	t.Render()

	if failed > 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	PrintSuccess(out, "All checks passed")
	return nil
}

func checkDataset(ctx context.Context, cfg *config.Config) checkResult {
	ds, source, err := loadDataset(ctx, cfg, logger.Nop())
	if err != nil {
		return checkResult{name: "dataset", detail: err.Error()}
	}
	return checkResult{name: "dataset", ok: true, detail: fmt.Sprintf("%s, %d rows", source, ds.Len())}
}

func checkPostgres(ctx context.Context, cfg *config.Config) checkResult {
	if cfg.Database.URL == "" {
		return checkResult{name: "postgres", ok: true, detail: "not configured"}
	}

	db, err := database.New(ctx, cfg)
	if err != nil {
		return checkResult{name: "postgres", detail: err.Error()}
	}
	defer db.Close()

	status, err := db.HealthCheck(ctx)
	if err != nil {
		return checkResult{name: "postgres", detail: err.Error()}
	}

	return checkResult{name: "postgres", ok: true, detail: fmt.Sprintf("%s, %v, conns %d/%d",
		redactURL(cfg.Database.URL), status.ResponseTime.Round(time.Millisecond),
		status.Stats.TotalConns, status.Stats.MaxConns)}
}

func checkRedis(ctx context.Context, cfg *config.Config) checkResult {
	if !cfg.Redis.Enabled {
		return checkResult{name: "redis", ok: true, detail: "disabled"}
	}

	client, err := redis.New(ctx, cfg)
	if err != nil {
		return checkResult{name: "redis", detail: err.Error()}
	}
	defer client.Close()

	return checkResult{name: "redis", ok: true, detail: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port)}
}

// redactURL hides the password of a connection URL
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
