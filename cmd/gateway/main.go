package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"keepnote/internal/config"
	"keepnote/internal/gateway"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "gateway").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	proxy, err := gateway.NewProxy(cfg.NoteServiceURL, cfg.CategoryServiceURL, cfg.ReminderServiceURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("build proxy")
	}

	pipeline := gateway.NewPipeline(
		&gateway.LogFilter{Log: logger},
		gateway.TraceFilter{},
		&gateway.CompletionFilter{Log: logger},
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           pipeline.Handler(proxy),
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
