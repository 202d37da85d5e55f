package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/dashboard"
	"github.com/wonny/spacexdash/backend/internal/render"
	"github.com/wonny/spacexdash/backend/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// DashboardHandler serves the dashboard page, chart data and chart images
// ⭐ SSOT: 대시보드 API 핸들러는 이 구조체에서만
type DashboardHandler struct {
	service  *dashboard.Service
	renderer *render.Renderer
	logger   *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *dashboard.Service, renderer *render.Renderer, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  svc,
		renderer: renderer,
		logger:   log,
	}
}

// OptionsResponse carries everything the page needs to build its inputs
type OptionsResponse struct {
	Sites    []contracts.SiteOption  `json:"sites"`
	Slider   contracts.SliderConfig  `json:"slider"`
	Defaults contracts.SelectorState `json:"defaults"`
}

type pageData struct {
	Title      string
	Sites      []contracts.SiteOption
	Slider     contracts.SliderConfig
	Selected   contracts.SelectorState
	PieSrc     template.URL
	ScatterSrc template.URL
}

// Page renders the dashboard layout
// GET /
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	state, err := parseSelector(r.URL.Query(), h.service.Defaults())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	state.Payload.Low, state.Payload.High = h.service.ClampRange(state.Payload.Low, state.Payload.High)

	q := url.Values{}
	q.Set("site", state.Site)
	q.Set("low", strconv.FormatFloat(state.Payload.Low, 'f', -1, 64))
	q.Set("high", strconv.FormatFloat(state.Payload.High, 'f', -1, 64))

	data := pageData{
		Title:      "SpaceX Launch Records Dashboard",
		Sites:      h.service.Options(),
		Slider:     h.service.Slider(),
		Selected:   state,
		PieSrc:     template.URL("/charts/pie.png?" + q.Encode()),
		ScatterSrc: template.URL("/charts/scatter.png?" + q.Encode()),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("Failed to render dashboard page")
		respondError(w, http.StatusInternalServerError, "Failed to render dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetOptions returns dropdown entries, slider settings and the default selection
// GET /api/options
func (h *DashboardHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, OptionsResponse{
		Sites:    h.service.Options(),
		Slider:   h.service.Slider(),
		Defaults: h.service.Defaults(),
	})
}

// GetPie returns the pie aggregate for ?site=
// GET /api/charts/pie
func (h *DashboardHandler) GetPie(w http.ResponseWriter, r *http.Request) {
	state, err := parseSelector(r.URL.Query(), h.service.Defaults())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.service.Pie(r.Context(), state.Site))
}

// GetScatter returns the scatter projection for ?site=&low=&high=
// GET /api/charts/scatter
func (h *DashboardHandler) GetScatter(w http.ResponseWriter, r *http.Request) {
	state, err := parseSelector(r.URL.Query(), h.service.Defaults())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.service.Scatter(r.Context(), state.Site, state.Payload.Low, state.Payload.High))
}

// GetView returns both aggregates for one selection
// GET /api/charts
func (h *DashboardHandler) GetView(w http.ResponseWriter, r *http.Request) {
	state, err := parseSelector(r.URL.Query(), h.service.Defaults())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.service.View(r.Context(), state))
}

// PieImage renders the pie chart
// GET /charts/pie.{format}
func (h *DashboardHandler) PieImage(w http.ResponseWriter, r *http.Request) {
	format, state, ok := h.imageRequest(w, r)
	if !ok {
		return
	}

	summary := h.service.Pie(r.Context(), state.Site)
	h.writeImage(w, r, format, func(buf *bytes.Buffer) error {
		return h.renderer.Pie(buf, summary, format)
	})
}

// ScatterImage renders the scatter chart
// GET /charts/scatter.{format}
func (h *DashboardHandler) ScatterImage(w http.ResponseWriter, r *http.Request) {
	format, state, ok := h.imageRequest(w, r)
	if !ok {
		return
	}

	plot := h.service.Scatter(r.Context(), state.Site, state.Payload.Low, state.Payload.High)
	h.writeImage(w, r, format, func(buf *bytes.Buffer) error {
		return h.renderer.Scatter(buf, plot, format)
	})
}

func (h *DashboardHandler) imageRequest(w http.ResponseWriter, r *http.Request) (render.Format, contracts.SelectorState, bool) {
	format, err := render.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", contracts.SelectorState{}, false
	}

	state, err := parseSelector(r.URL.Query(), h.service.Defaults())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", contracts.SelectorState{}, false
	}

	return format, state, true
}

func (h *DashboardHandler) writeImage(w http.ResponseWriter, r *http.Request, format render.Format, draw func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Error("Failed to render chart")
		respondError(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
