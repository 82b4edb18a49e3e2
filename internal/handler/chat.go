package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dukerupert/fallow/internal/coach"
	"github.com/dukerupert/fallow/internal/model"
	"github.com/dukerupert/fallow/internal/plan"
	"github.com/dukerupert/fallow/internal/program"
	"github.com/dukerupert/fallow/internal/store"
	"github.com/dukerupert/fallow/internal/websocket"
)

// defaultWeekTheme covers the pre-onboarding case where no start date
// exists yet and the program position defaults to day 1.
const defaultWeekTheme = "Awareness & Separation"

type ChatHandler struct {
	session  *coach.Session
	settings *store.SettingsStore
	checkIns *store.CheckInStore
	actions  *store.ActionStore
	chat     *store.ChatStore
	hub      *websocket.Hub
	logger   *slog.Logger

	// streaming guards against a second send while one stream is in
	// flight; the session is single-user.
	streaming sync.Mutex
}

func NewChatHandler(session *coach.Session, ss *store.SettingsStore, cs *store.CheckInStore, as *store.ActionStore, ms *store.ChatStore, hub *websocket.Hub, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		session:  session,
		settings: ss,
		checkIns: cs,
		actions:  as,
		chat:     ms,
		hub:      hub,
		logger:   logger,
	}
}

func (h *ChatHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// Messages returns the full transcript ascending by time.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chat.ListAll()
	if err != nil {
		h.logger.Error("list messages", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// Chat streams a coaching reply as server-sent events: data lines with
// {"text": ...} chunks, a literal [DONE] sentinel on success, or a single
// {"error": ...} event on failure. The user message is persisted before
// streaming begins (unless autoGreet); the assistant message is persisted
// only after the stream completes cleanly, so a failed stream never
// leaves a partial turn in the transcript.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.session == nil {
		writeError(w, http.StatusServiceUnavailable, "coach is not configured (missing API key)")
		return
	}

	var req struct {
		Message   string `json:"message"`
		AutoGreet bool   `json:"autoGreet"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" && !req.AutoGreet {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	if !h.streaming.TryLock() {
		writeError(w, http.StatusConflict, "a chat stream is already in progress")
		return
	}
	defer h.streaming.Unlock()

	// The coach speaks first on auto-greet; there is no user turn to keep.
	if !req.AutoGreet {
		if err := h.chat.Append("user", req.Message); err != nil {
			h.logger.Error("save user message", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save message")
			return
		}
		h.broadcast(websocket.NewMessage("chat_message", "created", "user"))
	}

	systemPrompt, err := h.buildContext()
	if err != nil {
		h.logger.Error("assemble chat context", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to assemble context")
		return
	}

	transcript, err := h.chat.ListAll()
	if err != nil {
		h.logger.Error("load transcript", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transcript")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	full, err := h.session.Stream(r.Context(), systemPrompt, transcript, req.AutoGreet, func(text string) error {
		data, err := json.Marshal(map[string]string{"text": text})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		// Streamed partial text is abandoned, not persisted.
		h.logger.Error("chat stream", "error", err)
		data, _ := json.Marshal(map[string]string{"error": "The coach is unreachable right now. Please try again."})
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
		return
	}

	if err := h.chat.Append("assistant", full); err != nil {
		h.logger.Error("save assistant message", "error", err)
		data, _ := json.Marshal(map[string]string{"error": "Failed to save the reply. Please try again."})
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
		return
	}
	h.broadcast(websocket.NewMessage("chat_message", "created", "assistant"))

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

// buildContext assembles the coach system prompt from settings, check-in
// history, and saved action responses.
func (h *ChatHandler) buildContext() (string, error) {
	startDate, err := h.settings.StartDate()
	if err != nil {
		return "", err
	}

	currentDay := 1
	if startDate != "" {
		if d, err := program.CurrentDay(startDate, time.Now()); err == nil {
			currentDay = d
		}
	}

	weekTheme := defaultWeekTheme
	if week, ok := plan.WeekForDay(currentDay); ok {
		weekTheme = week.Theme
	}

	history, err := h.checkIns.ListAll()
	if err != nil {
		return "", err
	}
	responses, err := h.actions.ListResponses()
	if err != nil {
		return "", err
	}

	return coach.SystemPrompt(currentDay, weekTheme, history, responses), nil
}
