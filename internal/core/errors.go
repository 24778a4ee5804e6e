package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeDuplicateRoom = "duplicate_room"
	ErrCodeRoomNotFound  = "room_not_found"
	ErrCodeInvalidToken  = "invalid_token"
	ErrCodeRoomFull      = "room_full"
	ErrCodeInvalidChoice = "invalid_choice"
)

var (
	ErrDuplicateRoom = errors.New("room already exists")
	ErrRoomNotFound  = errors.New("room not found")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
