package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/scheduler"
)

// JobReporter exposes scheduler statistics
type JobReporter interface {
	GetJobStats() map[string]scheduler.JobStats
}

// Pinger checks an optional backing service
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves health and scheduler status
type SystemHandler struct {
	service string
	source  string
	stats   contracts.DatasetStats
	jobs    JobReporter
	deps    map[string]Pinger
	started time.Time
}

// NewSystemHandler creates a system handler.
// jobs may be nil when the scheduler is disabled.
func NewSystemHandler(source string, stats contracts.DatasetStats, jobs JobReporter, deps map[string]Pinger) *SystemHandler {
	return &SystemHandler{
		service: "spacexdash-api",
		source:  source,
		stats:   stats,
		jobs:    jobs,
		deps:    deps,
		started: time.Now(),
	}
}

// HealthResponse is the /health body
type HealthResponse struct {
	Status       string                 `json:"status"`
	Service      string                 `json:"service"`
	Source       string                 `json:"source"`
	Uptime       string                 `json:"uptime"`
	Dataset      contracts.DatasetStats `json:"dataset"`
	SuccessRate  float64                `json:"success_rate"`
	Dependencies map[string]string      `json:"dependencies,omitempty"`
}

// Health reports service status and dataset statistics.
// A failing dependency degrades the status but the charts stay servable.
// GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "ok",
		Service:     h.service,
		Source:      h.source,
		Uptime:      time.Since(h.started).Truncate(time.Second).String(),
		Dataset:     h.stats,
		SuccessRate: h.stats.SuccessRate(),
	}

	if len(h.deps) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp.Dependencies = make(map[string]string, len(h.deps))
		for name, dep := range h.deps {
			if err := dep.Ping(ctx); err != nil {
				resp.Dependencies[name] = err.Error()
				resp.Status = "degraded"
				continue
			}
			resp.Dependencies[name] = "ok"
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetJobs returns scheduler job statistics
// GET /api/jobs
func (h *SystemHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	if h.jobs == nil {
		respondJSON(w, http.StatusOK, map[string]scheduler.JobStats{})
		return
	}

	respondJSON(w, http.StatusOK, h.jobs.GetJobStats())
}
