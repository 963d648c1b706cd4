package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"keepnote/internal/auth"
	"keepnote/internal/config"
	"keepnote/internal/db"
	httpx "keepnote/internal/http"
	"keepnote/internal/reminder"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "remindersvc").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}
	if cfg.ReminderRequireAuth && cfg.JWTSecret == "" {
		logger.Fatal().Msg("JWT_SECRET is required when REMINDER_REQUIRE_AUTH is set")
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect postgres")
	}
	if err := db.MigrateReminders(gdb); err != nil {
		logger.Fatal().Err(err).Msg("migrate reminders")
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	r := httpx.NewReminderRouter(cfg, &reminder.GormStore{DB: gdb}, jwtSvc, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("serve")
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
