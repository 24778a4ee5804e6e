package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventPlayersConnected tells both members the room is paired up.
	EventPlayersConnected EventKind = iota
	// EventRoundResolved carries both choices and the round outcome.
	EventRoundResolved
	// EventChoicesReset tells the room a new round may begin.
	EventChoicesReset
	// EventOpponentLeft tells the remaining member their opponent is gone.
	EventOpponentLeft
	// EventNotValidToken rejects an operation against an unknown room.
	EventNotValidToken
	// EventRoomFull rejects a third connection joining a paired room.
	EventRoomFull
	// EventError notifies a client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind          EventKind
	Room          string
	Player1ID     string
	Player2ID     string
	Player1Choice string
	Player2Choice string
	Outcome       Outcome
	Message       string
	Error         *CoreError
}
