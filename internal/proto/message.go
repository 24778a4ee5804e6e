package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateRoom = "createRoom"
	InboundTypeJoinRoom   = "joinRoom"
	InboundTypeP1Choice   = "p1Choice"
	InboundTypeP2Choice   = "p2Choice"
	InboundTypePlayAgain  = "playerClicked"
	InboundTypeExitGame   = "exitGame"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventNamePlayersConnected = "playersConnected"
	EventNameRoundResolved    = "roundResolved"
	EventNameChoicesReset     = "choicesReset"
	EventNameOpponentLeft     = "opponentLeft"
	EventNameNotValidToken    = "notValidToken"
	EventNameRoomFull         = "roomFull"
)

// RoomData names the room an inbound request targets.
type RoomData struct {
	Room string `json:"room"`
}

// ChoiceData is a move submission for a room.
type ChoiceData struct {
	Room   string `json:"room"`
	Choice string `json:"choice"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventPlayersConnected is broadcast once both participants are in the
// room's group.
type EventPlayersConnected struct {
	Room      string `json:"room"`
	Player1ID string `json:"player1Id"`
	Player2ID string `json:"player2Id"`
}

// EventRoundResolved carries both choices and the round outcome.
type EventRoundResolved struct {
	Room          string `json:"room"`
	Player1Choice string `json:"player1Choice"`
	Player2Choice string `json:"player2Choice"`
	Outcome       string `json:"outcome"`
}

// EventChoicesReset signals that a new round may begin.
type EventChoicesReset struct {
	Room string `json:"room"`
}

// EventOpponentLeft notifies the remaining participant.
type EventOpponentLeft struct {
	Message string `json:"message"`
	RoomID  string `json:"roomID"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
