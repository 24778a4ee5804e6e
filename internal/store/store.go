package store

import (
	"context"
	"time"
)

// Match is one resolved round, kept for the history API.
type Match struct {
	ID            int64
	RoomID        string
	Player1Choice string
	Player2Choice string
	Outcome       string
	CreatedAt     time.Time
}

// MatchStore persists resolved rounds. Room state itself is never
// persisted; only outcomes are.
type MatchStore interface {
	// RecordMatch appends one resolved round.
	RecordMatch(ctx context.Context, roomID, player1Choice, player2Choice, outcome string) error

	// ListRecentMatches returns up to limit matches, newest first.
	ListRecentMatches(ctx context.Context, limit int) ([]*Match, error)

	// Close closes the underlying database connection.
	Close() error
}
