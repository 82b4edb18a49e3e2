package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/fallow/internal/model"
	"github.com/dukerupert/fallow/internal/store"
	"github.com/dukerupert/fallow/internal/websocket"
)

type ActionHandler struct {
	actions *store.ActionStore
	hub     *websocket.Hub
	logger  *slog.Logger
}

func NewActionHandler(as *store.ActionStore, hub *websocket.Hub, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{actions: as, hub: hub, logger: logger}
}

func (h *ActionHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// List returns completion rows for ?date=D&day=N. Both parameters are
// required.
func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	dayStr := r.URL.Query().Get("day")
	if date == "" || dayStr == "" {
		writeError(w, http.StatusBadRequest, "date and day required")
		return
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "day must be a number")
		return
	}

	completions, err := h.actions.ListForDay(date, day)
	if err != nil {
		h.logger.Error("list actions", "date", date, "day", day, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list actions")
		return
	}
	if completions == nil {
		completions = []model.ActionCompletion{}
	}
	writeJSON(w, http.StatusOK, completions)
}

// Save upserts one action completion keyed on (date, dayNumber,
// actionIndex).
func (h *ActionHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date         string  `json:"date"`
		DayNumber    int     `json:"dayNumber"`
		ActionIndex  int     `json:"actionIndex"`
		Completed    int     `json:"completed"`
		ResponseText *string `json:"responseText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}
	if req.DayNumber < 1 || req.ActionIndex < 0 {
		writeError(w, http.StatusBadRequest, "dayNumber must be at least 1 and actionIndex non-negative")
		return
	}

	if err := h.actions.Upsert(req.Date, req.DayNumber, req.ActionIndex, req.Completed, req.ResponseText); err != nil {
		h.logger.Error("save action", "date", req.Date, "day", req.DayNumber, "action", req.ActionIndex, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save action")
		return
	}

	h.broadcast(websocket.NewMessage("action", "updated", fmt.Sprintf("%s/%d/%d", req.Date, req.DayNumber, req.ActionIndex)))

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetResponse returns the saved written response for ?day=N&action=I,
// regardless of the date it was recorded on. Both parameters are
// required; a missing response is null, not an error.
func (h *ActionHandler) GetResponse(w http.ResponseWriter, r *http.Request) {
	dayStr := r.URL.Query().Get("day")
	actionStr := r.URL.Query().Get("action")
	if dayStr == "" || actionStr == "" {
		writeError(w, http.StatusBadRequest, "day and action required")
		return
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "day must be a number")
		return
	}
	action, err := strconv.Atoi(actionStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "action must be a number")
		return
	}

	response, err := h.actions.GetResponse(day, action)
	if err != nil {
		h.logger.Error("get action response", "day", day, "action", action, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get response")
		return
	}
	writeJSON(w, http.StatusOK, map[string]*string{"response": response})
}
