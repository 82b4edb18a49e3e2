package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/fallow/internal/coach"
	"github.com/dukerupert/fallow/internal/handler"
	"github.com/dukerupert/fallow/internal/middleware"
	"github.com/dukerupert/fallow/internal/store"
	ws "github.com/dukerupert/fallow/internal/websocket"
)

type Server struct {
	db        *sql.DB
	hub       *ws.Hub
	settingsH *handler.SettingsHandler
	checkInH  *handler.CheckInHandler
	actionH   *handler.ActionHandler
	chatH     *handler.ChatHandler
	programH  *handler.ProgramHandler
	logger    *slog.Logger
}

// New wires stores and handlers. session may be nil when no API key is
// configured; the chat endpoint then answers 503 and everything else
// works normally.
func New(db *sql.DB, session *coach.Session, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	settingsStore := store.NewSettingsStore(db)
	checkInStore := store.NewCheckInStore(db)
	actionStore := store.NewActionStore(db)
	chatStore := store.NewChatStore(db)

	return &Server{
		db:        db,
		hub:       hub,
		settingsH: handler.NewSettingsHandler(settingsStore, hub, logger.With("component", "settings")),
		checkInH:  handler.NewCheckInHandler(checkInStore, hub, logger.With("component", "checkin")),
		actionH:   handler.NewActionHandler(actionStore, hub, logger.With("component", "action")),
		chatH:     handler.NewChatHandler(session, settingsStore, checkInStore, actionStore, chatStore, hub, logger.With("component", "chat")),
		programH:  handler.NewProgramHandler(settingsStore, checkInStore, logger.With("component", "program")),
		logger:    logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Settings
	mux.HandleFunc("GET /api/settings", s.settingsH.Get)
	mux.HandleFunc("POST /api/settings", s.settingsH.Update)

	// Check-ins
	mux.HandleFunc("GET /api/checkin", s.checkInH.Get)
	mux.HandleFunc("POST /api/checkin", s.checkInH.Save)

	// Action completions
	mux.HandleFunc("GET /api/actions", s.actionH.List)
	mux.HandleFunc("POST /api/actions", s.actionH.Save)
	mux.HandleFunc("GET /api/actions/response", s.actionH.GetResponse)

	// Coaching chat
	mux.HandleFunc("GET /api/messages", s.chatH.Messages)
	mux.HandleFunc("POST /api/chat", s.chatH.Chat)

	// Plan catalog and derived views
	mux.HandleFunc("GET /api/plan/{day}", s.programH.PlanDay)
	mux.HandleFunc("GET /api/streaks", s.programH.Streaks)
	mux.HandleFunc("GET /api/catchup", s.programH.Catchup)

	// Real-time sync
	mux.HandleFunc("GET /ws", ws.Handle(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
