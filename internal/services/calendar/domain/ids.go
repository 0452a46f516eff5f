package domain

// PlayerID identifies one player character across the world server.
type PlayerID uint64

// GroupID identifies one persistent social group.
type GroupID uint64

// EventID identifies one calendar event held by the registry.
type EventID uint64

// InviteID identifies one calendar invite held by the registry.
type InviteID uint64

const (
	// NoGroupID marks an event that belongs to no group (a personal event).
	NoGroupID GroupID = 0
	// NoEventID marks an event that is detached: not yet added to the
	// registry, or already removed from it.
	NoEventID EventID = 0
	// NoInviteID marks an invite that is detached from the registry.
	NoInviteID InviteID = 0
)

// Assigned reports whether the group id names an actual group.
func (id GroupID) Assigned() bool { return id != NoGroupID }

// Assigned reports whether the event id is attached to the registry.
func (id EventID) Assigned() bool { return id != NoEventID }

// Assigned reports whether the invite id is attached to the registry.
func (id InviteID) Assigned() bool { return id != NoInviteID }
