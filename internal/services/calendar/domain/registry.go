package domain

// Registry owns the canonical in-memory event and invite collections: an
// ordered collection of events and, keyed by event id, an ordered sequence
// of invites per event.
//
// The registry is not safe for concurrent use. The enclosing server
// serializes every operation against one registry instance.
type Registry struct {
	events  []*Event
	invites map[EventID][]*Invite

	eventIDs  IDPool
	inviteIDs IDPool
}

// NewRegistry returns an empty registry with fresh id pools.
func NewRegistry() *Registry {
	return &Registry{invites: make(map[EventID][]*Invite)}
}

// AllocateEventID reserves the next event id.
func (r *Registry) AllocateEventID() EventID {
	return EventID(r.eventIDs.Allocate())
}

// AllocateInviteID reserves the next invite id.
func (r *Registry) AllocateInviteID() InviteID {
	return InviteID(r.inviteIDs.Allocate())
}

// AddEvent inserts ev into the ordered event collection.
func (r *Registry) AddEvent(ev *Event) {
	r.events = append(r.events, ev)
}

// AddInvite appends inv to its event's invite sequence.
func (r *Registry) AddInvite(inv *Invite) {
	r.invites[inv.EventID] = append(r.invites[inv.EventID], inv)
}

// Event returns the event with the given id. Lookup is a linear scan;
// event cardinality stays low enough that an index would not pay for
// itself.
func (r *Registry) Event(id EventID) (*Event, bool) {
	for _, ev := range r.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return nil, false
}

// Invite returns the invite with the given id, scanning every event's
// invite sequence.
func (r *Registry) Invite(id InviteID) (*Invite, bool) {
	for _, seq := range r.invites {
		for _, inv := range seq {
			if inv.ID == id {
				return inv, true
			}
		}
	}
	return nil, false
}

// Events returns a snapshot of the ordered event collection. The copy lets
// bulk operations remove events while iterating.
func (r *Registry) Events() []*Event {
	out := make([]*Event, len(r.events))
	copy(out, r.events)
	return out
}

// EventInvites returns the invite sequence for one event, in insertion
// order.
func (r *Registry) EventInvites(id EventID) []*Invite {
	seq := r.invites[id]
	out := make([]*Invite, len(seq))
	copy(out, seq)
	return out
}

// PlayerInvites returns every invite addressed to the player, across all
// events.
func (r *Registry) PlayerInvites(player PlayerID) []*Invite {
	var out []*Invite
	for _, seq := range r.invites {
		for _, inv := range seq {
			if inv.Invitee == player {
				out = append(out, inv)
			}
		}
	}
	return out
}

// VisibleEvents returns the union of events the player is invited to and
// events owned by the player's group, in event insertion order.
func (r *Registry) VisibleEvents(player PlayerID, group GroupID) []*Event {
	invited := make(map[EventID]bool)
	for _, seq := range r.invites {
		for _, inv := range seq {
			if inv.Invitee == player {
				invited[inv.EventID] = true
			}
		}
	}

	var out []*Event
	for _, ev := range r.events {
		if invited[ev.ID] || (group.Assigned() && ev.GroupID == group) {
			out = append(out, ev)
		}
	}
	return out
}

// RemoveEvent removes the event and all of its invites as one operation,
// detaching every identifier and releasing each to its pool exactly once.
// It reports whether the event was present.
func (r *Registry) RemoveEvent(id EventID) bool {
	idx := -1
	for i, ev := range r.events {
		if ev.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	for _, inv := range r.invites[id] {
		r.detachInvite(inv)
	}
	delete(r.invites, id)

	ev := r.events[idx]
	ev.ID = NoEventID
	r.eventIDs.Release(uint64(id))
	r.events = append(r.events[:idx], r.events[idx+1:]...)
	return true
}

// RemoveInvite removes one invite from its event's sequence, detaching and
// releasing its id. It reports whether the invite was present.
func (r *Registry) RemoveInvite(id InviteID) bool {
	for eventID, seq := range r.invites {
		for i, inv := range seq {
			if inv.ID != id {
				continue
			}
			r.detachInvite(inv)
			r.invites[eventID] = append(seq[:i], seq[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) detachInvite(inv *Invite) {
	id := inv.ID
	inv.ID = NoInviteID
	if id.Assigned() {
		r.inviteIDs.Release(uint64(id))
	}
}

// SeedPools rebuilds both id pools after a load: each running maximum
// becomes the largest loaded id and every gap below it becomes reusable.
func (r *Registry) SeedPools() {
	var maxEvent uint64
	for _, ev := range r.events {
		if uint64(ev.ID) > maxEvent {
			maxEvent = uint64(ev.ID)
		}
	}
	var maxInvite uint64
	for _, seq := range r.invites {
		for _, inv := range seq {
			if uint64(inv.ID) > maxInvite {
				maxInvite = uint64(inv.ID)
			}
		}
	}

	r.eventIDs.Reset(maxEvent, func(id uint64) bool {
		_, ok := r.Event(EventID(id))
		return ok
	})
	r.inviteIDs.Reset(maxInvite, func(id uint64) bool {
		_, ok := r.Invite(InviteID(id))
		return ok
	})
}

// EventCount returns the number of events in the registry.
func (r *Registry) EventCount() int { return len(r.events) }

// InviteCount returns the number of invites across all events.
func (r *Registry) InviteCount() int {
	n := 0
	for _, seq := range r.invites {
		n += len(seq)
	}
	return n
}
