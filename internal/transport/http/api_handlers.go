package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/duelhouse/rps-server/internal/core"
	"github.com/duelhouse/rps-server/internal/store"
)

// APIHandlers provides read-only diagnostics endpoints.
type APIHandlers struct {
	hub     *core.Hub
	matches store.MatchStore
	log     *zerolog.Logger
}

// NewAPIHandlers creates the diagnostics handlers. matches may be nil
// when history is disabled.
func NewAPIHandlers(hub *core.Hub, matches store.MatchStore, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		hub:     hub,
		matches: matches,
		log:     logger,
	}
}

// ErrorResponse is the JSON error body for API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RoomResponse represents a live room in API responses.
type RoomResponse struct {
	ID           string `json:"id"`
	Player1ID    string `json:"player1Id"`
	Player2ID    string `json:"player2Id"`
	Player1Ready bool   `json:"player1Ready"`
	Player2Ready bool   `json:"player2Ready"`
	Members      int    `json:"members"`
}

// MatchResponse represents a recorded round in API responses.
type MatchResponse struct {
	ID            int64  `json:"id"`
	RoomID        string `json:"roomId"`
	Player1Choice string `json:"player1Choice"`
	Player2Choice string `json:"player2Choice"`
	Outcome       string `json:"outcome"`
	CreatedAt     string `json:"created_at"`
}

// ListRooms handles listing active rooms.
// GET /api/rooms
func (h *APIHandlers) ListRooms(c *gin.Context) {
	views, err := h.hub.Rooms(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to snapshot rooms")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]RoomResponse, 0, len(views))
	for _, v := range views {
		response = append(response, RoomResponse{
			ID:           v.ID,
			Player1ID:    v.Player1ID,
			Player2ID:    v.Player2ID,
			Player1Ready: v.Player1Ready,
			Player2Ready: v.Player2Ready,
			Members:      v.Members,
		})
	}

	h.log.Debug().Int("room_count", len(response)).Msg("rooms listed")
	c.JSON(http.StatusOK, response)
}

// ListMatches handles listing recently resolved rounds.
// GET /api/matches
func (h *APIHandlers) ListMatches(c *gin.Context) {
	if h.matches == nil {
		c.JSON(http.StatusOK, []MatchResponse{})
		return
	}

	matches, err := h.matches.ListRecentMatches(c.Request.Context(), 50)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list matches")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		response = append(response, MatchResponse{
			ID:            m.ID,
			RoomID:        m.RoomID,
			Player1Choice: m.Player1Choice,
			Player2Choice: m.Player2Choice,
			Outcome:       m.Outcome,
			CreatedAt:     m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, response)
}
