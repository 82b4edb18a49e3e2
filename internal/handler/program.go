package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dukerupert/fallow/internal/habit"
	"github.com/dukerupert/fallow/internal/plan"
	"github.com/dukerupert/fallow/internal/program"
	"github.com/dukerupert/fallow/internal/store"
)

// ProgramHandler serves the static plan catalog and the derived
// streak/catch-up views over check-in history.
type ProgramHandler struct {
	settings *store.SettingsStore
	checkIns *store.CheckInStore
	logger   *slog.Logger
}

func NewProgramHandler(ss *store.SettingsStore, cs *store.CheckInStore, logger *slog.Logger) *ProgramHandler {
	return &ProgramHandler{settings: ss, checkIns: cs, logger: logger}
}

// PlanDay returns one day's catalog content: focus, actions, input specs,
// the containing week, and the day's quote.
func (h *ProgramHandler) PlanDay(w http.ResponseWriter, r *http.Request) {
	dayNumber, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	day, week, ok := plan.DayData(dayNumber)
	if !ok {
		writeError(w, http.StatusNotFound, "no such program day")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Day    plan.Day           `json:"day"`
		Week   int                `json:"week"`
		Theme  string             `json:"theme"`
		Inputs map[int]plan.Input `json:"inputs,omitempty"`
		Quote  plan.Quote         `json:"quote"`
	}{
		Day:    day,
		Week:   week.Week,
		Theme:  week.Theme,
		Inputs: plan.InputsForDay(dayNumber),
		Quote:  plan.QuoteForDay(dayNumber),
	})
}

// Streaks returns the per-habit prior-consecutive-day counts for
// ?date=D (defaults to today). The reference date itself is excluded.
func (h *ProgramHandler) Streaks(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	history, err := h.checkIns.ListAll()
	if err != nil {
		h.logger.Error("list check-ins", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list check-ins")
		return
	}

	streaks := make(map[string]int, len(habit.All))
	for hab, n := range habit.AllStreaks(history, date) {
		streaks[string(hab)] = n
	}
	writeJSON(w, http.StatusOK, streaks)
}

// Catchup returns the current gap signal, or null when no intervention is
// warranted. The detector is pure; suppressing a signal the user has
// already acknowledged today is the client's job.
func (h *ProgramHandler) Catchup(w http.ResponseWriter, r *http.Request) {
	startDate, err := h.settings.StartDate()
	if err != nil {
		h.logger.Error("get start date", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	if startDate == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	currentDay, err := program.CurrentDay(startDate, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "invalid start date")
		return
	}

	history, err := h.checkIns.ListAll()
	if err != nil {
		h.logger.Error("list check-ins", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list check-ins")
		return
	}

	gap := program.DetectGap(history, currentDay, startDate)
	if gap == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		MissedDays    int `json:"missed_days"`
		LastActiveDay int `json:"last_active_day"`
		CurrentDay    int `json:"current_day"`
	}{gap.MissedDays, gap.LastActiveDay, currentDay})
}
