package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/launches"
	"github.com/wonny/spacexdash/backend/pkg/config"
	"github.com/wonny/spacexdash/backend/pkg/logger"
	"github.com/wonny/spacexdash/backend/pkg/redis"
)

// Service answers dashboard queries against the immutable dataset.
// Aggregates are memoized in process and in Redis when enabled; a cache
// failure only costs a recompute.
// ⭐ SSOT: UI 이벤트 → 집계 결과 변환은 이 서비스에서만
type Service struct {
	dataset *launches.Dataset
	memo    *memo
	cache   *redis.Cache
	ttl     time.Duration
	slider  contracts.SliderConfig
	logger  *logger.Logger
}

// NewService creates a dashboard service over ds
func NewService(ds *launches.Dataset, cache *redis.Cache, cfg *config.Config, log *logger.Logger) *Service {
	return &Service{
		dataset: ds,
		memo:    newMemo(cfg.CacheTTL, defaultMemoSize),
		cache:   cache,
		ttl:     cfg.CacheTTL,
		slider:  newSlider(cfg.Payload),
		logger:  log,
	}
}

// newSlider mirrors the payload slider: marks at every quarter of the range
func newSlider(p config.PayloadConfig) contracts.SliderConfig {
	slider := contracts.SliderConfig{
		Min:  p.SliderMin,
		Max:  p.SliderMax,
		Step: p.SliderStep,
	}

	quarter := (p.SliderMax - p.SliderMin) / 4
	for i := 0; i <= 4; i++ {
		v := p.SliderMin + quarter*float64(i)
		slider.Marks = append(slider.Marks, contracts.SliderMark{
			Value: v,
			Label: fmt.Sprintf("%d", int64(v)),
		})
	}

	return slider
}

// Dataset returns the dataset the service reads from
func (s *Service) Dataset() *launches.Dataset {
	return s.dataset
}

// Slider returns the payload slider configuration
func (s *Service) Slider() contracts.SliderConfig {
	return s.slider
}

// Options returns the launch site dropdown entries, "All Sites" first
func (s *Service) Options() []contracts.SiteOption {
	sites := s.dataset.Sites()

	options := make([]contracts.SiteOption, 0, len(sites)+1)
	options = append(options, contracts.SiteOption{
		Label: contracts.SiteLabel(contracts.AllSites),
		Value: contracts.AllSites,
	})
	for _, site := range sites {
		options = append(options, contracts.SiteOption{Label: contracts.SiteLabel(site), Value: site})
	}

	return options
}

// Defaults returns the selector state shown on first load
func (s *Service) Defaults() contracts.SelectorState {
	low, high := s.dataset.PayloadBounds()
	return contracts.SelectorState{
		Site:    contracts.AllSites,
		Payload: contracts.PayloadRange{Low: low, High: high},
	}
}

// ClampRange orders (low, high) and clamps both ends to the slider range
func (s *Service) ClampRange(low, high float64) (float64, float64) {
	low, high = launches.NormalizeRange(low, high)
	clamp := func(v float64) float64 {
		return math.Max(s.slider.Min, math.Min(s.slider.Max, v))
	}
	return clamp(low), clamp(high)
}

// Pie returns the landing outcome summary for site
func (s *Service) Pie(ctx context.Context, site string) contracts.PieSummary {
	key := redis.PieKey(site)

	if v, ok := s.memo.Get(key); ok {
		if summary, ok := v.(contracts.PieSummary); ok {
			return summary
		}
	}

	var cached contracts.PieSummary
	if s.lookup(ctx, key, &cached) {
		s.memo.Set(key, cached)
		return cached
	}

	summary := PieSummary(s.dataset, site)
	s.store(ctx, key, summary)
	return summary
}

// Scatter returns the payload/outcome projection for site within (low, high)
func (s *Service) Scatter(ctx context.Context, site string, low, high float64) contracts.ScatterPlot {
	low, high = s.ClampRange(low, high)
	key := redis.ScatterKey(site, low, high)

	if v, ok := s.memo.Get(key); ok {
		if plot, ok := v.(contracts.ScatterPlot); ok {
			return plot
		}
	}

	var cached contracts.ScatterPlot
	if s.lookup(ctx, key, &cached) {
		s.memo.Set(key, cached)
		return cached
	}

	plot := ScatterPoints(s.dataset, site, low, high)
	s.store(ctx, key, plot)
	return plot
}

// View computes both charts for one selector state
func (s *Service) View(ctx context.Context, state contracts.SelectorState) contracts.DashboardView {
	if state.Site == "" {
		state.Site = contracts.AllSites
	}

	return contracts.DashboardView{
		Pie:     s.Pie(ctx, state.Site),
		Scatter: s.Scatter(ctx, state.Site, state.Payload.Low, state.Payload.High),
	}
}

// Warm precomputes the default views of every dropdown entry.
// Returns the number of aggregates written.
func (s *Service) Warm(ctx context.Context) (int, error) {
	defaults := s.Defaults()
	warmed := 0

	for _, opt := range s.Options() {
		if err := ctx.Err(); err != nil {
			return warmed, err
		}

		low, high := s.ClampRange(defaults.Payload.Low, defaults.Payload.High)

		pieKey := redis.PieKey(opt.Value)
		summary := PieSummary(s.dataset, opt.Value)
		s.memo.Set(pieKey, summary)
		if err := s.cache.Set(ctx, pieKey, summary, s.ttl); err != nil {
			return warmed, fmt.Errorf("warm pie %s: %w", opt.Value, err)
		}
		warmed++

		scatterKey := redis.ScatterKey(opt.Value, low, high)
		plot := ScatterPoints(s.dataset, opt.Value, low, high)
		s.memo.Set(scatterKey, plot)
		if err := s.cache.Set(ctx, scatterKey, plot, s.ttl); err != nil {
			return warmed, fmt.Errorf("warm scatter %s: %w", opt.Value, err)
		}
		warmed++
	}

	return warmed, nil
}

// CleanStale drops expired in-process aggregates
func (s *Service) CleanStale() int {
	return s.memo.CleanStale()
}

func (s *Service) lookup(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Chart cache read failed")
		return false
	}
	return found
}

func (s *Service) store(ctx context.Context, key string, value interface{}) {
	s.memo.Set(key, value)
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Chart cache write failed")
	}
}
