package http

import (
	"encoding/json"
	"fmt"

	"github.com/duelhouse/rps-server/internal/core"
	"github.com/duelhouse/rps-server/internal/proto"
)

// inboundToCommand maps a wire message to a core command. A protocol
// error is returned to the sender without touching the hub.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		room, err := decodeRoom(inbound.Data)
		if err != nil {
			return nil, badRequest("room is required"), nil
		}
		return &core.Command{Kind: core.CommandCreateRoom, Room: room}, nil, nil

	case proto.InboundTypeJoinRoom:
		room, err := decodeRoom(inbound.Data)
		if err != nil {
			return nil, badRequest("room is required"), nil
		}
		return &core.Command{Kind: core.CommandJoinRoom, Room: room}, nil, nil

	case proto.InboundTypeP1Choice, proto.InboundTypeP2Choice:
		var data proto.ChoiceData
		if err := json.Unmarshal(inbound.Data, &data); err != nil || data.Room == "" {
			return nil, badRequest("room and choice are required"), nil
		}
		// The hub assigns the slot from the sender's identity; the two
		// inbound names exist for client compatibility only.
		return &core.Command{Kind: core.CommandSubmitChoice, Room: data.Room, Choice: data.Choice}, nil, nil

	case proto.InboundTypePlayAgain:
		room, err := decodeRoom(inbound.Data)
		if err != nil {
			return nil, badRequest("room is required"), nil
		}
		return &core.Command{Kind: core.CommandPlayAgain, Room: room}, nil, nil

	case proto.InboundTypeExitGame:
		room, err := decodeRoom(inbound.Data)
		if err != nil {
			return nil, badRequest("room is required"), nil
		}
		return &core.Command{Kind: core.CommandExitGame, Room: room}, nil, nil

	default:
		return nil, badRequest(fmt.Sprintf("unknown message type %q", inbound.Type)), nil
	}
}

func decodeRoom(raw json.RawMessage) (string, error) {
	var data proto.RoomData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", err
	}
	if data.Room == "" {
		return "", fmt.Errorf("empty room")
	}
	return data.Room, nil
}

func badRequest(msg string) *proto.Error {
	return &proto.Error{Code: "bad_request", Msg: msg}
}

// outboundFromEvent maps a core event to its wire representation.
func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventPlayersConnected:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNamePlayersConnected,
			Data: proto.EventPlayersConnected{
				Room:      event.Room,
				Player1ID: event.Player1ID,
				Player2ID: event.Player2ID,
			},
		}
	case core.EventRoundResolved:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameRoundResolved,
			Data: proto.EventRoundResolved{
				Room:          event.Room,
				Player1Choice: event.Player1Choice,
				Player2Choice: event.Player2Choice,
				Outcome:       string(event.Outcome),
			},
		}
	case core.EventChoicesReset:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameChoicesReset,
			Data:  proto.EventChoicesReset{Room: event.Room},
		}
	case core.EventOpponentLeft:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameOpponentLeft,
			Data: proto.EventOpponentLeft{
				Message: event.Message,
				RoomID:  event.Room,
			},
		}
	case core.EventNotValidToken:
		return proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventNameNotValidToken}
	case core.EventRoomFull:
		return proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventNameRoomFull}
	case core.EventError:
		out := proto.Outbound{Type: proto.OutboundTypeError}
		if event.Error != nil {
			out.Error = &proto.Error{Code: event.Error.Code, Msg: event.Error.Message}
		}
		return out
	default:
		return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "internal", Msg: "unknown event"}}
	}
}
