package core

// BroadcastGroups is the multicast primitive keyed by room identifier.
// Membership is independent of the RoomStore; the hub keeps the two
// consistent. Only ever touched from the hub goroutine.
type BroadcastGroups struct {
	groups map[string]map[*Client]struct{}
}

// NewBroadcastGroups constructs an empty membership table.
func NewBroadcastGroups() *BroadcastGroups {
	return &BroadcastGroups{groups: make(map[string]map[*Client]struct{})}
}

// Join adds a client to the group for room. Idempotent.
func (g *BroadcastGroups) Join(room string, c *Client) {
	members, ok := g.groups[room]
	if !ok {
		members = make(map[*Client]struct{})
		g.groups[room] = members
	}
	members[c] = struct{}{}
	c.Rooms[room] = struct{}{}
}

// Leave removes a client from the group for room.
func (g *BroadcastGroups) Leave(room string, c *Client) {
	if members, ok := g.groups[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(g.groups, room)
		}
	}
	delete(c.Rooms, room)
}

// LeaveAll removes a client from every group it is a member of.
// This is the transport-level leave applied on disconnect.
func (g *BroadcastGroups) LeaveAll(c *Client) {
	for room := range c.Rooms {
		g.Leave(room, c)
	}
}

// Drop discards the whole group for room, clearing each member's
// membership mirror.
func (g *BroadcastGroups) Drop(room string) {
	for c := range g.groups[room] {
		delete(c.Rooms, room)
	}
	delete(g.groups, room)
}

// Size returns the current membership count for room.
func (g *BroadcastGroups) Size(room string) int {
	return len(g.groups[room])
}

// Broadcast sends an event to all members of the group for room.
func (g *BroadcastGroups) Broadcast(room string, event *Event) {
	for c := range g.groups[room] {
		select {
		case c.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}
