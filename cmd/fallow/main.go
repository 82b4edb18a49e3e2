package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/fallow/internal/coach"
	"github.com/dukerupert/fallow/internal/database"
	"github.com/dukerupert/fallow/internal/logging"
	"github.com/dukerupert/fallow/internal/server"
)

func main() {
	logger := logging.Setup(os.Getenv("FALLOW_LOG_LEVEL"))

	port := os.Getenv("FALLOW_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("FALLOW_DB_PATH")
	if dbPath == "" {
		dbPath = "fallow.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("open database", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var session *coach.Session
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		session = coach.NewSession(apiKey, os.Getenv("FALLOW_MODEL"), logger.With("component", "coach"))
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set; coaching chat disabled")
	}

	srv := server.New(db, session, logger)

	httpServer := &http.Server{
		Addr:        ":" + port,
		Handler:     srv.Router(),
		ReadTimeout: 5 * time.Second,
		// No WriteTimeout: the chat SSE stream stays open for as long
		// as the model is producing tokens.
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		logger.Info("fallow running", "addr", "http://localhost:"+port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
