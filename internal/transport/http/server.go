package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/duelhouse/rps-server/internal/config"
	"github.com/duelhouse/rps-server/internal/core"
	"github.com/duelhouse/rps-server/internal/store"
)

// NewServer builds the HTTP server: websocket endpoint plus read-only
// diagnostics API.
func NewServer(hub *core.Hub, matches store.MatchStore, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})

	api := NewAPIHandlers(hub, matches, logger)
	router.GET("/api/rooms", api.ListRooms)
	router.GET("/api/matches", api.ListMatches)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
