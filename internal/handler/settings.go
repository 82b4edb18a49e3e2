package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/fallow/internal/program"
	"github.com/dukerupert/fallow/internal/store"
	"github.com/dukerupert/fallow/internal/websocket"
)

type SettingsHandler struct {
	settings *store.SettingsStore
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewSettingsHandler(ss *store.SettingsStore, hub *websocket.Hub, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: ss, hub: hub, logger: logger}
}

func (h *SettingsHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// Get returns the start date, the derived current program day, and the
// display name. All three are null before onboarding — a missing start
// date means "not yet onboarded", which is distinct from day 1.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	startDate, err := h.settings.StartDate()
	if err != nil {
		h.logger.Error("get start date", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	userName, err := h.settings.UserName()
	if err != nil {
		h.logger.Error("get user name", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	resp := struct {
		StartDate  *string `json:"startDate"`
		CurrentDay *int    `json:"currentDay"`
		UserName   *string `json:"userName"`
	}{}
	if userName != "" {
		resp.UserName = &userName
	}
	if startDate == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	day, err := program.CurrentDay(startDate, time.Now())
	if err != nil {
		h.logger.Error("compute current day", "start_date", startDate, "error", err)
		writeError(w, http.StatusInternalServerError, "invalid start date")
		return
	}
	resp.StartDate = &startDate
	resp.CurrentDay = &day

	writeJSON(w, http.StatusOK, resp)
}

// Update saves the provided settings; absent fields are left untouched.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate *string `json:"startDate"`
		UserName  *string `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.StartDate != nil {
		date := strings.TrimSpace(*req.StartDate)
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
			return
		}
		if err := h.settings.Set(store.KeyStartDate, date); err != nil {
			h.logger.Error("set start date", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}
	if req.UserName != nil {
		if err := h.settings.Set(store.KeyUserName, strings.TrimSpace(*req.UserName)); err != nil {
			h.logger.Error("set user name", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}

	h.broadcast(websocket.NewMessage("setting", "updated", ""))

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
