package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/spacexdash/backend/pkg/logger"
)

type fakeWarmer struct {
	count int
	err   error
	calls int
}

func (f *fakeWarmer) Warm(ctx context.Context) (int, error) {
	f.calls++
	return f.count, f.err
}

func TestCacheWarmJob(t *testing.T) {
	w := &fakeWarmer{count: 10}
	job := NewCacheWarmJob(w, "0 */10 * * * *", logger.Nop())

	assert.Equal(t, "chart_cache_warm", job.Name())
	assert.Equal(t, "0 */10 * * * *", job.Schedule())
	assert.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1, w.calls)
}

func TestCacheWarmJob_Error(t *testing.T) {
	w := &fakeWarmer{err: errors.New("redis down")}
	job := NewCacheWarmJob(w, "@hourly", logger.Nop())

	assert.EqualError(t, job.Run(context.Background()), "redis down")
}

type fakeCleaner struct{ removed int }

func (f *fakeCleaner) CleanStale() int { return f.removed }

func TestCacheCleanupJob(t *testing.T) {
	job := NewCacheCleanupJob(&fakeCleaner{removed: 4}, "0 */5 * * * *", logger.Nop())

	assert.Equal(t, "cache_cleanup", job.Name())
	assert.Equal(t, "0 */5 * * * *", job.Schedule())
	assert.NoError(t, job.Run(context.Background()))
}
