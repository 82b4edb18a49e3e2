package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/fallow/internal/model"
	"github.com/dukerupert/fallow/internal/store"
	"github.com/dukerupert/fallow/internal/websocket"
)

type CheckInHandler struct {
	checkIns *store.CheckInStore
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewCheckInHandler(cs *store.CheckInStore, hub *websocket.Hub, logger *slog.Logger) *CheckInHandler {
	return &CheckInHandler{checkIns: cs, hub: hub, logger: logger}
}

func (h *CheckInHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// Get returns the check-in for ?date=D (null when the day has no record),
// or the full history ascending by date when no date is given. An absent
// record is not an error.
func (h *CheckInHandler) Get(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		checkIn, err := h.checkIns.GetByDate(date)
		if err != nil {
			h.logger.Error("get check-in", "date", date, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get check-in")
			return
		}
		writeJSON(w, http.StatusOK, checkIn)
		return
	}

	checkIns, err := h.checkIns.ListAll()
	if err != nil {
		h.logger.Error("list check-ins", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list check-ins")
		return
	}
	if checkIns == nil {
		checkIns = []model.CheckIn{}
	}
	writeJSON(w, http.StatusOK, checkIns)
}

// Save upserts the whole record for its date. Saving the same date twice
// leaves one row with the later values.
func (h *CheckInHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req model.CheckIn
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	if err := h.checkIns.Upsert(&req); err != nil {
		h.logger.Error("save check-in", "date", req.Date, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save check-in")
		return
	}

	h.broadcast(websocket.NewMessage("check_in", "updated", req.Date))

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
