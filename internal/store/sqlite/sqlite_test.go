package sqlite

import (
	"context"
	"testing"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestRecordAndListMatches(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	if err := st.RecordMatch(ctx, "4821", "rock", "scissors", "player1"); err != nil {
		t.Fatalf("record match: %v", err)
	}
	if err := st.RecordMatch(ctx, "4821", "rock", "rock", "draw"); err != nil {
		t.Fatalf("record match: %v", err)
	}

	matches, err := st.ListRecentMatches(ctx, 10)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	// Newest first.
	if matches[0].Outcome != "draw" || matches[1].Outcome != "player1" {
		t.Fatalf("unexpected order: %+v", matches)
	}
	if matches[1].RoomID != "4821" || matches[1].Player1Choice != "rock" || matches[1].Player2Choice != "scissors" {
		t.Fatalf("unexpected match fields: %+v", matches[1])
	}
}

func TestListRecentMatchesHonorsLimit(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := st.RecordMatch(ctx, "r", "paper", "rock", "player1"); err != nil {
			t.Fatalf("record match: %v", err)
		}
	}

	matches, err := st.ListRecentMatches(ctx, 3)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
}
