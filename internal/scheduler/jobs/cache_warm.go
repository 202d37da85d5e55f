package jobs

import (
	"context"

	"github.com/wonny/spacexdash/backend/pkg/logger"
)

// Warmer precomputes dashboard aggregates
type Warmer interface {
	Warm(ctx context.Context) (int, error)
}

// CacheWarmJob refreshes the chart cache for every dropdown entry
type CacheWarmJob struct {
	warmer   Warmer
	schedule string
	logger   *logger.Logger
}

// NewCacheWarmJob creates a new cache warm job
func NewCacheWarmJob(warmer Warmer, schedule string, log *logger.Logger) *CacheWarmJob {
	return &CacheWarmJob{
		warmer:   warmer,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *CacheWarmJob) Name() string {
	return "chart_cache_warm"
}

// Schedule returns the cron schedule
func (j *CacheWarmJob) Schedule() string {
	return j.schedule
}

// Run executes the cache warm-up
func (j *CacheWarmJob) Run(ctx context.Context) error {
	j.logger.Debug("Starting scheduled chart cache warm-up")

	count, err := j.warmer.Warm(ctx)
	if err != nil {
		return err
	}

	j.logger.WithField("aggregates", count).Info("Chart cache warmed")
	return nil
}
