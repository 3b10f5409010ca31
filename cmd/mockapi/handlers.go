package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"trade-tracker-go/internal/fixtures"
	"trade-tracker-go/internal/platform"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler serves the platform wire contract from the fixture store.
type Handler struct {
	log   *zap.Logger
	store *fixtures.Store
}

// NewHandler creates a mockapi handler.
func NewHandler(log *zap.Logger, store *fixtures.Store) *Handler {
	return &Handler{log: log, store: store}
}

func respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]interface{}{"success": false, "error": msg})
}

// ListTrades implements GET /api/trades/{room}?limit=N.
func (h *Handler) ListTrades(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["room"]

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	res, err := h.store.FetchTrades(r.Context(), room, limit)
	if err != nil {
		h.log.Error("Failed to list trades", zap.String("room", room), zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    res.Trades,
		"stats":   res.Stats,
	})
}

// CloseTrade implements PUT /api/trades/{room}/{id}.
func (h *Handler) CloseTrade(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	room := vars["room"]
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	var body platform.CloseTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.CloseTrade(r.Context(), room, id, body); err != nil {
		h.log.Error("Failed to close trade", zap.Int64("id", id), zap.Error(err))
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Me implements GET /api/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.Me(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"user": user})
}
