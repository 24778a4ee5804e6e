package core

import (
	"context"

	"github.com/rs/zerolog"
)

// OpponentLeftMessage is delivered to the remaining member when their
// opponent disconnects mid-session.
const OpponentLeftMessage = "Your opponent has left the game"

// MatchRecorder persists resolved rounds. May be backed by nothing at
// all when history is disabled.
type MatchRecorder interface {
	RecordMatch(ctx context.Context, roomID, player1Choice, player2Choice string, outcome Outcome) error
}

// RoomView is a read-only snapshot of one room plus its group size,
// served by the diagnostics API.
type RoomView struct {
	ID           string
	Player1ID    string
	Player2ID    string
	Player1Ready bool
	Player2Ready bool
	Members      int
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// Hub is the session coordinator. It owns the RoomStore and the
// BroadcastGroups and serializes every inbound event on a single
// goroutine, so no locking is needed anywhere in the core.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
	queries    chan func()

	store   *RoomStore
	groups  *BroadcastGroups
	clients map[string]*Client

	// deferred holds notifications scheduled to run at the end of the
	// current dispatch cycle, once every state transition of the
	// triggering event is guaranteed applied.
	deferred []func()

	history MatchRecorder
	log     zerolog.Logger
}

// NewHub creates a hub. history may be nil; logger may be nil.
func NewHub(history MatchRecorder, logger *zerolog.Logger) *Hub {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand),
		queries:    make(chan func()),
		store:      NewRoomStore(),
		groups:     NewBroadcastGroups(),
		clients:    make(map[string]*Client),
		history:    history,
		log:        l,
	}
}

// RegisterClient hands a new connection to the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient removes a connection and runs the disconnect
// protocol. The caller must have stopped writing to c.Commands.
func (h *Hub) UnregisterClient(c *Client) {
	close(c.Commands)
	h.unregister <- c
}

// Run processes events until ctx is cancelled. Each inbound event is
// handled to completion before the next begins; deferred notifications
// fire between events.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.handleRegister(ctx, c)
		case c := <-h.unregister:
			h.handleUnregister(ctx, c)
		case cc := <-h.commands:
			h.dispatch(ctx, cc.client, cc.cmd)
		case q := <-h.queries:
			q()
		}
		h.flushDeferred()
	}
}

// Rooms returns a snapshot of every active room, answered on the hub
// goroutine so the read is consistent.
func (h *Hub) Rooms(ctx context.Context) ([]RoomView, error) {
	reply := make(chan []RoomView, 1)
	query := func() {
		rooms := h.store.All()
		views := make([]RoomView, 0, len(rooms))
		for _, room := range rooms {
			views = append(views, RoomView{
				ID:           room.ID,
				Player1ID:    room.Player1ID,
				Player2ID:    room.Player2ID,
				Player1Ready: room.Player1Choice != "",
				Player2Ready: room.Player2Choice != "",
				Members:      h.groups.Size(room.ID),
			})
		}
		reply <- views
	}

	select {
	case h.queries <- query:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case views := <-reply:
		return views, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) handleRegister(ctx context.Context, c *Client) {
	h.clients[c.ID] = c

	// Pump the client's commands into the hub's serialized stream.
	// Ends when the transport closes c.Commands on unregister.
	go func() {
		for cmd := range c.Commands {
			select {
			case h.commands <- clientCommand{client: c, cmd: cmd}:
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) handleUnregister(ctx context.Context, c *Client) {
	delete(h.clients, c.ID)
	// The transport-level leave comes first so membership counts below
	// reflect the departed connection.
	h.groups.LeaveAll(c)
	h.handleDisconnect(ctx, c)
}

func (h *Hub) dispatch(ctx context.Context, c *Client, cmd *Command) {
	// A command can still be in flight when its connection unregisters;
	// it must not mutate state on behalf of a departed client.
	if h.clients[c.ID] != c {
		return
	}

	switch cmd.Kind {
	case CommandCreateRoom:
		h.handleCreateRoom(c, cmd.Room)
	case CommandJoinRoom:
		h.handleJoinRoom(c, cmd.Room)
	case CommandSubmitChoice:
		h.handleSubmitChoice(ctx, c, cmd.Room, cmd.Choice)
	case CommandPlayAgain:
		h.handlePlayAgain(c, cmd.Room)
	case CommandExitGame:
		h.handleExitGame(c, cmd.Room)
	}
}

func (h *Hub) handleCreateRoom(c *Client, roomID string) {
	if _, err := h.store.Create(roomID, c.ID); err != nil {
		h.notify(c, &Event{
			Kind:  EventError,
			Room:  roomID,
			Error: coreError(ErrCodeDuplicateRoom, "room already exists"),
		})
		return
	}
	// The creator is deliberately not added to the broadcast group yet.
	// An early join would make the membership count ambiguous between
	// "creator waiting alone" and "creator plus a stale participant".
	h.log.Info().Str("room", roomID).Str("client_id", c.ID).Msg("room created")
}

// handleJoinRoom is the race-sensitive path: the creator's group join
// must land before the joiner's, and both before any size read.
func (h *Hub) handleJoinRoom(c *Client, roomID string) {
	room, ok := h.store.Get(roomID)
	if !ok {
		h.notify(c, &Event{Kind: EventNotValidToken, Room: roomID})
		return
	}

	// The creator must not self-join; they stay on the join page.
	if room.Player1ID == c.ID {
		return
	}

	creator, connected := h.clients[room.Player1ID]
	if !connected {
		h.notify(c, &Event{Kind: EventNotValidToken, Room: roomID})
		return
	}

	// Make sure the creator is in the group before the joiner.
	// Idempotent check against their memberships, not a counter.
	if !creator.InGroup(roomID) {
		h.groups.Join(roomID, creator)
	}
	h.groups.Join(roomID, c)

	size := h.groups.Size(roomID)
	if size > 2 {
		h.groups.Leave(roomID, c)
		h.notify(c, &Event{Kind: EventRoomFull, Room: roomID})
		h.log.Info().Str("room", roomID).Str("client_id", c.ID).Int("size", size).Msg("room full")
		return
	}

	if _, err := h.store.Join(roomID, c.ID, size); err != nil {
		h.notify(c, &Event{Kind: EventNotValidToken, Room: roomID})
		return
	}

	// Re-read after the store update. The notification is deferred to
	// the end of this dispatch cycle so a concurrently arriving join is
	// certainly applied before either side hears playersConnected.
	if h.groups.Size(roomID) >= 2 {
		h.deferEmit(func() {
			snap, ok := h.store.Get(roomID)
			if !ok {
				return
			}
			h.groups.Broadcast(roomID, &Event{
				Kind:      EventPlayersConnected,
				Room:      roomID,
				Player1ID: snap.Player1ID,
				Player2ID: snap.Player2ID,
			})
		})
		h.log.Info().Str("room", roomID).Str("client_id", c.ID).Msg("room paired")
	}
}

func (h *Hub) handleSubmitChoice(ctx context.Context, c *Client, roomID, choice string) {
	if !ValidChoice(choice) {
		h.notify(c, &Event{
			Kind:  EventError,
			Room:  roomID,
			Error: coreError(ErrCodeInvalidChoice, "invalid choice"),
		})
		return
	}

	room, ok := h.store.Get(roomID)
	if !ok || !room.Occupies(c.ID) {
		h.notify(c, &Event{Kind: EventNotValidToken, Room: roomID})
		return
	}

	// The slot is derived from the sender's identity, never from the
	// claimed event name, so a choice can't land in a foreign slot.
	isPlayer1 := room.Player1ID == c.ID
	room, err := h.store.RecordChoice(roomID, isPlayer1, choice)
	if err != nil {
		h.notify(c, &Event{Kind: EventNotValidToken, Room: roomID})
		return
	}

	if room.Player1Choice == "" || room.Player2Choice == "" {
		return
	}

	outcome := Resolve(room.Player1Choice, room.Player2Choice)
	h.groups.Broadcast(roomID, &Event{
		Kind:          EventRoundResolved,
		Room:          roomID,
		Player1Choice: room.Player1Choice,
		Player2Choice: room.Player2Choice,
		Outcome:       outcome,
	})
	h.log.Info().Str("room", roomID).Str("outcome", string(outcome)).Msg("round resolved")

	if h.history != nil {
		if err := h.history.RecordMatch(ctx, roomID, room.Player1Choice, room.Player2Choice, outcome); err != nil {
			h.log.Warn().Err(err).Str("room", roomID).Msg("failed to record match")
		}
	}
}

func (h *Hub) handlePlayAgain(c *Client, roomID string) {
	room, ok := h.store.Get(roomID)
	if !ok || !room.Occupies(c.ID) {
		h.notify(c, &Event{Kind: EventNotValidToken, Room: roomID})
		return
	}
	if _, err := h.store.ClearChoices(roomID); err != nil {
		return
	}
	h.groups.Broadcast(roomID, &Event{Kind: EventChoicesReset, Room: roomID})
}

func (h *Hub) handleExitGame(c *Client, roomID string) {
	room, ok := h.store.Get(roomID)
	if !ok || !room.Occupies(c.ID) {
		h.notify(c, &Event{Kind: EventNotValidToken, Room: roomID})
		return
	}

	h.store.ResetOnPlayerLeave(roomID, room.Player1ID == c.ID)
	// Group membership is left to the transport's own disconnect
	// handling, matching the join-page flow.

	if room, ok := h.store.Get(roomID); ok && room.Player1ID == "" && room.Player2ID == "" {
		h.store.Delete(roomID)
		h.groups.Drop(roomID)
		h.log.Info().Str("room", roomID).Msg("room deleted")
	}
}

// handleDisconnect runs the implicit-exit protocol: find the single
// room the connection occupied, reset its slot, then either notify the
// remaining member or delete the room.
func (h *Hub) handleDisconnect(ctx context.Context, c *Client) {
	_ = ctx
	for _, room := range h.store.All() {
		if !room.Occupies(c.ID) {
			continue
		}

		h.store.ResetOnPlayerLeave(room.ID, room.Player1ID == c.ID)

		// Membership was already trimmed by LeaveAll, so this size is
		// what actually remains.
		if h.groups.Size(room.ID) > 0 {
			h.groups.Broadcast(room.ID, &Event{
				Kind:    EventOpponentLeft,
				Room:    room.ID,
				Message: OpponentLeftMessage,
			})
			h.log.Info().Str("room", room.ID).Str("client_id", c.ID).Msg("opponent left")
		} else {
			h.store.Delete(room.ID)
			h.groups.Drop(room.ID)
			h.log.Info().Str("room", room.ID).Msg("empty room deleted")
		}

		// A connection occupies at most one room.
		break
	}
}

// deferEmit schedules fn to run once the current dispatch cycle ends.
func (h *Hub) deferEmit(fn func()) {
	h.deferred = append(h.deferred, fn)
}

func (h *Hub) flushDeferred() {
	for len(h.deferred) > 0 {
		fn := h.deferred[0]
		h.deferred = h.deferred[1:]
		fn()
	}
}

// notify emits an event to a single connection without blocking.
func (h *Hub) notify(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
	}
}
