package core

// Room pairs at most two participant connections for one game session.
// Slot 1 always belongs to the creator's connection; slot 2 is assigned
// on join. A cleared slot holds the empty string.
type Room struct {
	ID            string
	Player1ID     string
	Player2ID     string
	Player1Choice string
	Player2Choice string
}

// Occupies reports whether connID holds either slot of the room.
func (r *Room) Occupies(connID string) bool {
	return connID != "" && (r.Player1ID == connID || r.Player2ID == connID)
}

// RoomStore is the authoritative in-memory map of active rooms.
// It is owned by the hub and only ever touched from the hub goroutine,
// so every mutation is atomic with respect to a coordination decision.
type RoomStore struct {
	rooms map[string]*Room
}

// NewRoomStore constructs an empty store.
func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[string]*Room)}
}

// Create registers a new room with the creator in slot 1.
// Returns ErrDuplicateRoom if the id is already active; the existing
// room is left untouched.
func (s *RoomStore) Create(id, creatorConnID string) (*Room, error) {
	if _, exists := s.rooms[id]; exists {
		return nil, ErrDuplicateRoom
	}
	room := &Room{ID: id, Player1ID: creatorConnID}
	s.rooms[id] = room
	return room, nil
}

// Get returns the room for id, if present.
func (s *RoomStore) Get(id string) (*Room, bool) {
	room, ok := s.rooms[id]
	return room, ok
}

// Join records connID in slot 2 if that slot is empty.
// observedGroupSize is the broadcast-group size the caller saw; it is
// advisory only and never drives slot assignment.
func (s *RoomStore) Join(id, connID string, observedGroupSize int) (*Room, error) {
	_ = observedGroupSize
	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.Player2ID == "" {
		room.Player2ID = connID
	}
	return room, nil
}

// RecordChoice stores a choice for the indicated slot.
func (s *RoomStore) RecordChoice(id string, isPlayer1 bool, choice string) (*Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if isPlayer1 {
		room.Player1Choice = choice
	} else {
		room.Player2Choice = choice
	}
	return room, nil
}

// ClearChoices wipes both choice fields, leaving membership intact.
func (s *RoomStore) ClearChoices(id string) (*Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	room.Player1Choice = ""
	room.Player2Choice = ""
	return room, nil
}

// ResetOnPlayerLeave clears the indicated slot and both choices.
// A partial session cannot resume mid-round after a departure.
func (s *RoomStore) ResetOnPlayerLeave(id string, isPlayer1 bool) {
	room, ok := s.rooms[id]
	if !ok {
		return
	}
	if isPlayer1 {
		room.Player1ID = ""
	} else {
		room.Player2ID = ""
	}
	room.Player1Choice = ""
	room.Player2Choice = ""
}

// Delete removes the room entirely.
func (s *RoomStore) Delete(id string) {
	delete(s.rooms, id)
}

// All returns a snapshot of every active room, for disconnect scanning.
func (s *RoomStore) All() []Room {
	out := make([]Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, *room)
	}
	return out
}

// Len returns the number of active rooms.
func (s *RoomStore) Len() int {
	return len(s.rooms)
}
