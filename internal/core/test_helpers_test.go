package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	time.Sleep(100 * time.Millisecond)
	select {
	case ev := <-ch:
		t.Fatalf("expected no event, got %+v", ev)
	default:
	}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

func waitForRooms(t *testing.T, snapshot func() []RoomView, want int) []RoomView {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	var views []RoomView
	for time.Now().Before(deadline) {
		views = snapshot()
		if len(views) == want {
			return views
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d rooms, got %d", want, len(views))
	return nil
}
