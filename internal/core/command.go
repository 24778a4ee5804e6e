package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateRoom creates a room owned by the sender.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom runs the two-party join protocol.
	CommandJoinRoom
	// CommandSubmitChoice records the sender's move for a round.
	CommandSubmitChoice
	// CommandPlayAgain clears both choices for a fresh round.
	CommandPlayAgain
	// CommandExitGame clears the sender's slot in the room.
	CommandExitGame
)

// Command represents an action requested by a client.
type Command struct {
	Kind   CommandKind
	Room   string
	Choice string
}
