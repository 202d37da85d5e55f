package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/spacexdash/backend/internal/api"
	"github.com/wonny/spacexdash/backend/internal/api/handlers"
	"github.com/wonny/spacexdash/backend/internal/dashboard"
	"github.com/wonny/spacexdash/backend/internal/render"
	"github.com/wonny/spacexdash/backend/internal/scheduler"
	"github.com/wonny/spacexdash/backend/internal/scheduler/jobs"
	"github.com/wonny/spacexdash/backend/pkg/logger"
	"github.com/wonny/spacexdash/backend/pkg/redis"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	Long: `Loads the launch dataset and serves the dashboard.

The dataset is loaded once at startup; any load failure aborts
before the listener starts.

Endpoints:
  GET  /                          - Dashboard page
  GET  /health                    - Health check
  GET  /api/options               - Dropdown and slider settings
  GET  /api/charts/pie            - Pie aggregate (?site=)
  GET  /api/charts/scatter        - Scatter projection (?site=&low=&high=)
  GET  /charts/pie.{png,svg}      - Rendered pie chart
  GET  /charts/scatter.{png,svg}  - Rendered scatter chart
  GET  /api/jobs                  - Scheduler job stats
  GET  /ws                        - Live chart updates

Example:
  go run ./cmd/spacexdash serve
  go run ./cmd/spacexdash serve --port 8080`,
	RunE: runServe,
}

var (
	servePort string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	// Flags
	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if servePort != "" {
		cfg.Port = servePort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Load dataset (fatal on failure)
	ds, source, err := loadDataset(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("Failed to load launch dataset")
		return err
	}

	// 4. Connect to Redis (optional)
	redisClient, err := redis.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, chart cache disabled")
		redisClient = redis.Disabled()
	}
	defer redisClient.Close()

	// 5. Create services
	svc := dashboard.NewService(ds, redis.NewCache(redisClient, "spacexdash"), cfg, log)
	renderer := render.NewRenderer(cfg.Chart)

	// 6. Scheduler
	var sched *scheduler.Scheduler
	var jobReporter handlers.JobReporter
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(log)
		if err := sched.AddJob(jobs.NewCacheCleanupJob(svc, cfg.Scheduler.CacheCleanupSchedule, log)); err != nil {
			return fmt.Errorf("register cache cleanup job: %w", err)
		}
		if redisClient.Enabled() {
			if err := sched.AddJob(jobs.NewCacheWarmJob(svc, cfg.Scheduler.CacheWarmSchedule, log)); err != nil {
				return fmt.Errorf("register cache warm job: %w", err)
			}
		}
		sched.Start()
		defer sched.Stop()
		jobReporter = sched
	}

	// 7. Router and server
	var limiter *redis.RateLimiter
	if redisClient.Enabled() {
		limiter = redis.NewRateLimiter(redisClient, "spacexdash")
	}

	router := api.NewRouter(api.Handlers{
		Dashboard: handlers.NewDashboardHandler(svc, renderer, log),
		Live:      handlers.NewLiveHandler(svc, log),
		System: handlers.NewSystemHandler(source, ds.Stats(), jobReporter, map[string]handlers.Pinger{
			"redis": redisClient,
		}),
	}, cfg.RateLimit, limiter, log)

	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("\n✅ Dashboard running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal or listener failure
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
