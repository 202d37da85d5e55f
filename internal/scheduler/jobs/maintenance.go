package jobs

import (
	"context"

	"github.com/wonny/spacexdash/backend/pkg/logger"
)

// Cleaner drops expired in-process aggregates
type Cleaner interface {
	CleanStale() int
}

// CacheCleanupJob evicts stale aggregates from the in-process chart cache
type CacheCleanupJob struct {
	cleaner  Cleaner
	schedule string
	logger   *logger.Logger
}

// NewCacheCleanupJob creates a new cache cleanup job
func NewCacheCleanupJob(cleaner Cleaner, schedule string, log *logger.Logger) *CacheCleanupJob {
	return &CacheCleanupJob{
		cleaner:  cleaner,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *CacheCleanupJob) Name() string {
	return "cache_cleanup"
}

// Schedule returns the cron schedule
func (j *CacheCleanupJob) Schedule() string {
	return j.schedule
}

// Run executes the cache cleanup
func (j *CacheCleanupJob) Run(ctx context.Context) error {
	j.logger.Debug("Starting scheduled cache cleanup")

	count := j.cleaner.CleanStale()

	if count > 0 {
		j.logger.WithField("removed", count).Info("Cache cleanup completed")
	}

	return nil
}
