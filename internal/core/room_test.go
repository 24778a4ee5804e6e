package core

import "testing"

func TestRoomStoreCreateDuplicate(t *testing.T) {
	store := NewRoomStore()

	if _, err := store.Create("4821", "a"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create("4821", "b"); err != ErrDuplicateRoom {
		t.Fatalf("expected ErrDuplicateRoom, got %v", err)
	}

	// The existing room must be untouched by the failed create.
	room, ok := store.Get("4821")
	if !ok || room.Player1ID != "a" {
		t.Fatalf("original room mutated: %+v", room)
	}
}

func TestRoomStoreJoinAssignsEmptySlot(t *testing.T) {
	store := NewRoomStore()
	_, _ = store.Create("r1", "a")

	room, err := store.Join("r1", "b", 2)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if room.Player2ID != "b" {
		t.Fatalf("slot 2 = %q, want b", room.Player2ID)
	}

	// Slot 2 already taken: join leaves it alone.
	room, err = store.Join("r1", "c", 3)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if room.Player2ID != "b" {
		t.Fatalf("slot 2 overwritten: %q", room.Player2ID)
	}
}

func TestRoomStoreJoinMissingRoom(t *testing.T) {
	store := NewRoomStore()
	if _, err := store.Join("ghost", "b", 1); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomStoreResetOnPlayerLeave(t *testing.T) {
	store := NewRoomStore()
	_, _ = store.Create("r1", "a")
	_, _ = store.Join("r1", "b", 2)
	_, _ = store.RecordChoice("r1", true, "rock")
	_, _ = store.RecordChoice("r1", false, "paper")

	store.ResetOnPlayerLeave("r1", false)

	room, _ := store.Get("r1")
	if room.Player2ID != "" {
		t.Fatalf("slot 2 not cleared: %q", room.Player2ID)
	}
	if room.Player1ID != "a" {
		t.Fatalf("slot 1 clobbered: %q", room.Player1ID)
	}
	if room.Player1Choice != "" || room.Player2Choice != "" {
		t.Fatalf("choices not cleared: %+v", room)
	}
}

func TestRoomStoreDeleteAndAll(t *testing.T) {
	store := NewRoomStore()
	_, _ = store.Create("r1", "a")
	_, _ = store.Create("r2", "b")

	if got := len(store.All()); got != 2 {
		t.Fatalf("All() = %d rooms, want 2", got)
	}

	store.Delete("r1")
	if _, ok := store.Get("r1"); ok {
		t.Fatal("r1 still present after delete")
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
}
