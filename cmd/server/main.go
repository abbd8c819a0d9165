package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docvox/internal/api"
	"github.com/dgallion1/docvox/internal/config"
	"github.com/dgallion1/docvox/internal/describe"
	"github.com/dgallion1/docvox/internal/msgs"
	"github.com/dgallion1/docvox/internal/navigator"
	"github.com/dgallion1/docvox/internal/parser"
	"github.com/dgallion1/docvox/internal/session"
	"github.com/dgallion1/docvox/internal/stats"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	catalog, err := msgs.New(cfg.Language)
	if err != nil {
		log.Error("loading messages", "error", err)
		os.Exit(1)
	}
	verbosity, _ := describe.ParseVerbosity(cfg.Verbosity) // checked by Validate

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize sessions.
	settings := navigator.Settings{
		Verbosity: verbosity,
		Options:   cfg.ReadingOptions(),
		SkipClass: cfg.SkipClass,
	}
	mgr := session.NewManager(
		session.NewStore(cfg.SessionTTL),
		catalog,
		settings,
		parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
		log,
	)
	mgr.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(mgr, stats.NewLatency(cfg.StatsWindow), log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		mgr.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docvox", "port", cfg.Port, "language", catalog.Language().String())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
