package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/duelhouse/rps-server/internal/config"
	"github.com/duelhouse/rps-server/internal/core"
	"github.com/duelhouse/rps-server/internal/store"
	"github.com/duelhouse/rps-server/internal/store/sqlite"
	transporthttp "github.com/duelhouse/rps-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	matches         store.MatchStore
	log             *zerolog.Logger
}

// matchRecorder adapts the persistent match store to the hub's hook.
type matchRecorder struct {
	st store.MatchStore
}

func (r matchRecorder) RecordMatch(ctx context.Context, roomID, player1Choice, player2Choice string, outcome core.Outcome) error {
	return r.st.RecordMatch(ctx, roomID, player1Choice, player2Choice, string(outcome))
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	var matches store.MatchStore
	var recorder core.MatchRecorder

	if cfg.HistoryEnabled {
		st, err := sqlite.New(cfg.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("init match store: %w", err)
		}
		logger.Info().Str("history_path", cfg.HistoryPath).Msg("match history enabled")
		matches = st
		recorder = matchRecorder{st: st}
	}

	hub := core.NewHub(recorder, logger)
	server := transporthttp.NewServer(hub, matches, *cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		matches:         matches,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the match store and other resources.
func (a *App) cleanup() {
	if a.matches != nil {
		if err := a.matches.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close match store")
		} else {
			a.log.Info().Msg("match store closed")
		}
	}
}
