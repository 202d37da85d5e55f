package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/wonny/spacexdash/backend/internal/api/handlers"
	"github.com/wonny/spacexdash/backend/pkg/config"
	"github.com/wonny/spacexdash/backend/pkg/logger"
	"github.com/wonny/spacexdash/backend/pkg/redis"
)

// chartRequestsPerMinute is the per-client budget on chart endpoints when Redis is enabled
const chartRequestsPerMinute = 600

// Handlers groups the route handlers
type Handlers struct {
	Dashboard *handlers.DashboardHandler
	Live      *handlers.LiveHandler
	System    *handlers.SystemHandler
}

// NewRouter creates and configures the HTTP router.
// limiter may be nil; it is only consulted when Redis is enabled.
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(h Handlers, cfg config.RateLimitConfig, limiter *redis.RateLimiter, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", h.System.Health).Methods("GET")

	// Dashboard page and live updates
	r.HandleFunc("/", h.Dashboard.Page).Methods("GET")
	r.HandleFunc("/ws", h.Live.Serve).Methods("GET")

	// JSON API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/options", h.Dashboard.GetOptions).Methods("GET")
	api.HandleFunc("/charts", h.Dashboard.GetView).Methods("GET")
	api.HandleFunc("/charts/pie", h.Dashboard.GetPie).Methods("GET")
	api.HandleFunc("/charts/scatter", h.Dashboard.GetScatter).Methods("GET")
	api.HandleFunc("/jobs", h.System.GetJobs).Methods("GET")

	// Rendered charts
	charts := r.PathPrefix("/charts").Subrouter()
	charts.HandleFunc("/pie.{format:png|svg}", h.Dashboard.PieImage).Methods("GET")
	charts.HandleFunc("/scatter.{format:png|svg}", h.Dashboard.ScatterImage).Methods("GET")
	if limiter != nil {
		charts.Use(clientRateLimitMiddleware(limiter, chartRequestsPerMinute, log))
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})

	// Apply middleware
	r.Use(requestIDMiddleware())
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)))

	return r
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(handlers.ErrorResponse{Error: message})
}
