package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/duelhouse/rps-server/internal/config"
	"github.com/duelhouse/rps-server/internal/core"
	"github.com/duelhouse/rps-server/internal/store"
	"github.com/duelhouse/rps-server/internal/store/sqlite"
)

func startTestServer(t *testing.T, matches store.MatchStore) *httptest.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := zerolog.Nop()
	hub := core.NewHub(nil, &logger)
	go hub.Run(ctx)

	server := NewServer(hub, matches, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t, nil)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestListRoomsEmpty(t *testing.T) {
	ts := startTestServer(t, nil)

	resp, err := ts.Client().Get(ts.URL + "/api/rooms")
	if err != nil {
		t.Fatalf("rooms request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var rooms []RoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %+v", rooms)
	}
}

func TestListMatchesFromStore(t *testing.T) {
	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := st.RecordMatch(context.Background(), "4821", "rock", "scissors", "player1"); err != nil {
		t.Fatalf("record match: %v", err)
	}

	ts := startTestServer(t, st)

	resp, err := ts.Client().Get(ts.URL + "/api/matches")
	if err != nil {
		t.Fatalf("matches request failed: %v", err)
	}
	defer resp.Body.Close()

	var matches []MatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		t.Fatalf("decode matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].RoomID != "4821" || matches[0].Outcome != "player1" {
		t.Fatalf("unexpected match: %+v", matches[0])
	}
}

func TestListMatchesWithoutStore(t *testing.T) {
	ts := startTestServer(t, nil)

	resp, err := ts.Client().Get(ts.URL + "/api/matches")
	if err != nil {
		t.Fatalf("matches request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
