package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"trade-tracker-go/internal/models"
	"trade-tracker-go/internal/tracker"

	"go.uber.org/zap"
)

// APIHandler holds dependencies for the dashboard API endpoints. Each room
// gets its own tracker session; close flows are created per request so
// concurrent admins never share modal state.
type APIHandler struct {
	log       *zap.Logger
	trackers  map[string]*tracker.Tracker
	startTime time.Time
}

// NewAPIHandler creates an APIHandler over per-room sessions.
func NewAPIHandler(log *zap.Logger, trackers map[string]*tracker.Tracker) *APIHandler {
	return &APIHandler{
		log:       log,
		trackers:  trackers,
		startTime: time.Now(),
	}
}

// tradesResponse is the dashboard's view envelope.
type tradesResponse struct {
	Success bool              `json:"success"`
	Data    []models.Trade    `json:"data"`
	Stats   models.TradeStats `json:"stats"`
	Notice  string            `json:"notice,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *APIHandler) room(w http.ResponseWriter, r *http.Request) (*tracker.Tracker, bool) {
	slug := r.PathValue("slug")
	tr, ok := h.trackers[slug]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Unknown trading room"})
		return nil, false
	}
	return tr, true
}

// findTrade resolves a trade in the session, loading the room first when
// the session has nothing yet (e.g. a close issued right after boot).
func findTrade(r *http.Request, tr *tracker.Tracker, id int64) bool {
	if _, ok := tr.Find(id); ok {
		return true
	}
	if err := tr.Load(r.Context()); err != nil {
		return false
	}
	_, ok := tr.Find(id)
	return ok
}

// TradesHandler serves a room's trade list and stats. The list can be
// narrowed with ?status=all|active|win|loss. A failed refresh keeps the
// previously loaded collection and reports a retryable error alongside it.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.room(w, r)
	if !ok {
		return
	}

	_ = tr.Load(r.Context()) // error state is carried in the envelope

	filter := tracker.ParseStatusFilter(r.URL.Query().Get("status"))
	writeJSON(w, http.StatusOK, tradesResponse{
		Success: true,
		Data:    tr.Filtered(filter),
		Stats:   tr.Stats(),
		Notice:  tr.Notice(),
		Error:   tr.ErrMessage(),
	})
}

// StatsHandler serves a room's aggregate without reloading.
func (h *APIHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.room(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   tr.Stats(),
	})
}

// closeRequest carries the close form values as typed; validation of the
// exit price happens in the flow, before anything reaches the network.
type closeRequest struct {
	ExitPrice string `json:"exit_price"`
	ExitDate  string `json:"exit_date"`
	Notes     string `json:"notes"`
}

// CloseTradeHandler drives the admin close-trade workflow for one request:
// open the flow on the target trade, apply the form values, submit.
func (h *APIHandler) CloseTradeHandler(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.room(w, r)
	if !ok {
		return
	}

	admin, err := tr.IsAdmin(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "Failed to verify permissions. Please try again."})
		return
	}
	if !admin {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Admin access required"})
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid trade id"})
		return
	}

	var body closeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if !findTrade(r, tr, id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Trade not found"})
		return
	}

	flow := tracker.NewCloseFlow(tr, h.log)
	if err := flow.Open(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	flow.SetExitPrice(body.ExitPrice)
	if body.ExitDate != "" {
		flow.SetExitDate(body.ExitDate)
	}
	if body.Notes != "" {
		flow.SetNotes(body.Notes)
	}

	if err := flow.Submit(r.Context()); err != nil {
		var verr *tracker.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Message, Field: verr.Field})
		case errors.Is(err, tracker.ErrSubmitting):
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		default:
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, tradesResponse{
		Success: true,
		Data:    tr.Trades(),
		Stats:   tr.Stats(),
		Notice:  tr.Notice(),
	})
}

// PreviewHandler computes the advisory P&L for an exit price without
// touching the trade.
func (h *APIHandler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.room(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid trade id"})
		return
	}

	if !findTrade(r, tr, id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Trade not found"})
		return
	}

	flow := tracker.NewCloseFlow(tr, h.log)
	if err := flow.Open(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	flow.SetExitPrice(r.URL.Query().Get("exit_price"))
	profit, percent, valid := flow.Preview()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"valid":   valid,
		"profit":  profit,
		"percent": percent,
	})
}

// StatusHandler reports process identity and uptime.
func (h *APIHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	rooms := make([]string, 0, len(h.trackers))
	for slug := range h.trackers {
		rooms = append(rooms, slug)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"rooms":      rooms,
		"start_time": h.startTime.Format(time.RFC3339),
		"uptime":     time.Since(h.startTime).String(),
	})
}
