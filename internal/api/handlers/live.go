package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/spacexdash/backend/internal/contracts"
	"github.com/wonny/spacexdash/backend/internal/dashboard"
	"github.com/wonny/spacexdash/backend/pkg/logger"
)

const (
	// Ping/Pong settings
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second

	maxMessageSize = 4096
)

var errInvalidPayload = errors.New("payload must be [low, high]")

// LiveRequest is one selector change sent by the browser.
// Payload is [low, high]; an omitted payload keeps the dataset bounds.
type LiveRequest struct {
	Site    string    `json:"site"`
	Payload []float64 `json:"payload"`
}

// LiveResponse answers a LiveRequest with both charts, or an error
type LiveResponse struct {
	Pie     *contracts.PieSummary  `json:"pie,omitempty"`
	Scatter *contracts.ScatterPlot `json:"scatter,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// LiveHandler pushes recomputed charts over a WebSocket on every selector change
// ⭐ SSOT: 셀렉터 변경 → 차트 갱신 실시간 채널
type LiveHandler struct {
	service  *dashboard.Service
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewLiveHandler creates a new live update handler
func NewLiveHandler(svc *dashboard.Service, log *logger.Logger) *LiveHandler {
	return &LiveHandler{
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: log,
	}
}

// Serve upgrades the connection and answers selector changes until the client leaves.
// The default view is sent right after the upgrade.
// GET /ws
func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	log := h.logger.WithContext(r.Context())
	log.Debug("Live client connected")

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go h.pingLoop(conn, done)

	ctx := r.Context()
	if err := h.write(conn, h.respond(ctx, h.service.Defaults())); err != nil {
		return
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("Live client read failed")
			}
			return
		}

		state, err := h.decode(message)
		if err != nil {
			if err := h.write(conn, LiveResponse{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := h.write(conn, h.respond(ctx, state)); err != nil {
			log.WithError(err).Warn("Live client write failed")
			return
		}
	}
}

func (h *LiveHandler) decode(message []byte) (contracts.SelectorState, error) {
	state := h.service.Defaults()

	var req LiveRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return state, err
	}

	if req.Site != "" {
		state.Site = req.Site
	}
	switch len(req.Payload) {
	case 0:
	case 2:
		state.Payload = contracts.PayloadRange{Low: req.Payload[0], High: req.Payload[1]}
	default:
		return state, errInvalidPayload
	}

	return state, nil
}

func (h *LiveHandler) respond(ctx context.Context, state contracts.SelectorState) LiveResponse {
	view := h.service.View(ctx, state)
	return LiveResponse{Pie: &view.Pie, Scatter: &view.Scatter}
}

func (h *LiveHandler) write(conn *websocket.Conn, resp LiveResponse) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(resp)
}

func (h *LiveHandler) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
