package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/duelhouse/rps-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	room_id        TEXT NOT NULL,
	player1_choice TEXT NOT NULL,
	player2_choice TEXT NOT NULL,
	outcome        TEXT NOT NULL,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
`

// SQLiteStore implements store.MatchStore for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the match database at dbPath and applies the
// schema.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordMatch appends one resolved round.
func (s *SQLiteStore) RecordMatch(ctx context.Context, roomID, player1Choice, player2Choice, outcome string) error {
	query := `
		INSERT INTO matches (room_id, player1_choice, player2_choice, outcome)
		VALUES (?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, roomID, player1Choice, player2Choice, outcome); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// ListRecentMatches returns up to limit matches, newest first.
func (s *SQLiteStore) ListRecentMatches(ctx context.Context, limit int) ([]*store.Match, error) {
	query := `
		SELECT id, room_id, player1_choice, player2_choice, outcome, created_at
		FROM matches
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []*store.Match
	for rows.Next() {
		var m store.Match
		if err := rows.Scan(&m.ID, &m.RoomID, &m.Player1Choice, &m.Player2Choice, &m.Outcome, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, &m)
	}

	return matches, rows.Err()
}

// Ensure SQLiteStore implements store.MatchStore
var _ store.MatchStore = (*SQLiteStore)(nil)
