package api

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/spacexdash/backend/internal/api/handlers"
	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/dashboard"
	"github.com/wonny/spacexdash/backend/internal/launches"
	"github.com/wonny/spacexdash/backend/internal/render"
	"github.com/wonny/spacexdash/backend/internal/scheduler"
	"github.com/wonny/spacexdash/backend/pkg/config"
	"github.com/wonny/spacexdash/backend/pkg/logger"
	"github.com/wonny/spacexdash/backend/pkg/redis"
)

type fakeJobs struct{}

func (fakeJobs) GetJobStats() map[string]scheduler.JobStats {
	return map[string]scheduler.JobStats{
		"chart_cache_warm": {JobName: "chart_cache_warm", Schedule: "0 */10 * * * *", TotalRuns: 3, SuccessCount: 3, SuccessRate: 1},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Port:     "0",
		Env:      "development",
		CacheTTL: time.Minute,
		Payload:  config.PayloadConfig{SliderMin: 0, SliderMax: 10000, SliderStep: 1000},
		Chart:    config.ChartConfig{Width: 480, Height: 240, Format: "png"},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	ds, err := launches.FromRecords([]contracts.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, OutcomeClass: 1, BoosterCategory: "v1.0"},
		{FlightNumber: 2, LaunchSite: "CCAFS LC-40", PayloadMassKg: 600, OutcomeClass: 0, BoosterCategory: "v1.0"},
		{FlightNumber: 3, LaunchSite: "KSC LC-39A", PayloadMassKg: 5000, OutcomeClass: 1, BoosterCategory: "v1.1"},
	})
	require.NoError(t, err)

	log := logger.Nop()
	client := redis.Disabled()
	svc := dashboard.NewService(ds, redis.NewCache(client, "test"), cfg, log)

	router := NewRouter(Handlers{
		Dashboard: handlers.NewDashboardHandler(svc, render.NewRenderer(cfg.Chart), log),
		Live:      handlers.NewLiveHandler(svc, log),
		System: handlers.NewSystemHandler("csv:test", ds.Stats(), fakeJobs{}, map[string]handlers.Pinger{
			"redis": client,
		}),
	}, cfg.RateLimit, redis.NewRateLimiter(client, "test"), log)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, dest interface{}) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if dest != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var body handlers.HealthResponse
	resp := getJSON(t, srv.URL+"/health", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 3, body.Dataset.Rows)
	assert.Equal(t, 2, body.Dataset.Landed)
	assert.Equal(t, "ok", body.Dependencies["redis"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestOptions(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var body handlers.OptionsResponse
	getJSON(t, srv.URL+"/api/options", &body)

	require.Len(t, body.Sites, 3)
	assert.Equal(t, "ALL", body.Sites[0].Value)
	assert.Equal(t, "All Sites", body.Sites[0].Label)
	assert.Equal(t, 10000.0, body.Slider.Max)
	assert.Equal(t, 500.0, body.Defaults.Payload.Low)
	assert.Equal(t, 5000.0, body.Defaults.Payload.High)
}

func TestPieEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var all contracts.PieSummary
	getJSON(t, srv.URL+"/api/charts/pie", &all)
	assert.Equal(t, "ALL", all.Site)
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A"}, all.Labels())
	assert.Equal(t, []int{1, 1}, all.Values())

	var site contracts.PieSummary
	getJSON(t, srv.URL+"/api/charts/pie?site=CCAFS+LC-40", &site)
	assert.Equal(t, []string{"0", "1"}, site.Labels())

	var unknown contracts.PieSummary
	resp := getJSON(t, srv.URL+"/api/charts/pie?site=Vandenberg", &unknown)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, unknown.Slices)
}

func TestScatterEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var plot contracts.ScatterPlot
	getJSON(t, srv.URL+"/api/charts/scatter?low=0&high=10000", &plot)
	assert.Len(t, plot.Points, 3)
	assert.Contains(t, plot.Title, "10,000kg")

	getJSON(t, srv.URL+"/api/charts/scatter?site=KSC+LC-39A&low=0&high=1000", &plot)
	assert.Empty(t, plot.Points)

	// Clamped to the slider and swapped
	getJSON(t, srv.URL+"/api/charts/scatter?low=20000&high=-5", &plot)
	assert.Equal(t, 0.0, plot.Low)
	assert.Equal(t, 10000.0, plot.High)
	assert.Len(t, plot.Points, 3)

	// Defaults are the dataset bounds, both excluded
	getJSON(t, srv.URL+"/api/charts/scatter", &plot)
	require.Len(t, plot.Points, 1)
	assert.Equal(t, 600.0, plot.Points[0].PayloadMassKg)
}

func TestScatterEndpoint_InvalidBound(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var body handlers.ErrorResponse
	resp := getJSON(t, srv.URL+"/api/charts/scatter?low=abc", &body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body.Error, "low")
}

func TestViewEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var view contracts.DashboardView
	getJSON(t, srv.URL+"/api/charts?site=CCAFS+LC-40&low=0&high=10000", &view)

	assert.Equal(t, 2, view.Pie.Total())
	assert.Len(t, view.Scatter.Points, 2)
}

func TestChartImages(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/charts/pie.png")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	cfg, err := png.DecodeConfig(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.Width)

	resp2, err := http.Get(srv.URL + "/charts/scatter.svg?low=0&high=10000")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "image/svg+xml", resp2.Header.Get("Content-Type"))

	resp3, err := http.Get(srv.URL + "/charts/scatter.gif")
	require.NoError(t, err)
	resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestJobsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var stats map[string]scheduler.JobStats
	getJSON(t, srv.URL+"/api/jobs", &stats)

	require.Contains(t, stats, "chart_cache_warm")
	assert.Equal(t, 3, stats["chart_cache_warm"].TotalRuns)
}

func TestDashboardPage(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := http.Get(srv.URL + "/?site=KSC+LC-39A&low=1000&high=8000")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "SpaceX Launch Records Dashboard", doc.Find("h1").Text())

	var values []string
	doc.Find("#site-dropdown option").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("value")
		values = append(values, v)
	})
	assert.Equal(t, []string{"ALL", "CCAFS LC-40", "KSC LC-39A"}, values)

	selected, _ := doc.Find("#site-dropdown option[selected]").Attr("value")
	assert.Equal(t, "KSC LC-39A", selected)

	pieSrc, ok := doc.Find("#success-pie-chart img").Attr("src")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(pieSrc, "/charts/pie.png?"))
	assert.Contains(t, pieSrc, "site=KSC+LC-39A")

	low, _ := doc.Find("#payload-slider-low").Attr("value")
	high, _ := doc.Find("#payload-slider-high").Attr("value")
	assert.Equal(t, "1000", low)
	assert.Equal(t, "8000", high)

	assert.Equal(t, 1, doc.Find("#success-payload-scatter-chart img").Length())
	assert.Equal(t, 5, doc.Find("#payload-marks option").Length())
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	srv := newTestServer(t, cfg)

	resp := getJSON(t, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body handlers.ErrorResponse
	resp = getJSON(t, srv.URL+"/health", &body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Too many requests", body.Error)
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var body handlers.ErrorResponse
	resp := getJSON(t, srv.URL+"/nope", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", body.Error)
}

func TestLiveUpdates(t *testing.T) {
	srv := newTestServer(t, testConfig())

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// Default view on connect
	var initial handlers.LiveResponse
	require.NoError(t, conn.ReadJSON(&initial))
	require.NotNil(t, initial.Pie)
	assert.Equal(t, "ALL", initial.Pie.Site)

	require.NoError(t, conn.WriteJSON(handlers.LiveRequest{Site: "CCAFS LC-40", Payload: []float64{0, 10000}}))

	var update handlers.LiveResponse
	require.NoError(t, conn.ReadJSON(&update))
	require.NotNil(t, update.Pie)
	require.NotNil(t, update.Scatter)
	assert.Equal(t, []string{"0", "1"}, update.Pie.Labels())
	assert.Len(t, update.Scatter.Points, 2)

	require.NoError(t, conn.WriteJSON(handlers.LiveRequest{Site: "ALL", Payload: []float64{1}}))

	var bad handlers.LiveResponse
	require.NoError(t, conn.ReadJSON(&bad))
	assert.NotEmpty(t, bad.Error)
	assert.Nil(t, bad.Pie)
}
