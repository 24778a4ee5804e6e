package core

// Client is a participant connection as seen by the core layer.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
	Rooms    map[string]struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 8),
		Rooms:    make(map[string]struct{}),
	}
}

// InGroup reports whether the client is a member of the broadcast
// group for room.
func (c *Client) InGroup(room string) bool {
	_, ok := c.Rooms[room]
	return ok
}
