package domain

// Delivery is the computed audience for one outbound message: at most one
// group broadcast plus a set of individual targets. The two parts never
// overlap, so every observer receives exactly one copy.
type Delivery struct {
	// GroupBroadcast requests a single broadcast to Group's membership.
	GroupBroadcast bool
	Group          GroupID
	// Except is excluded from the group broadcast, if assigned.
	Except PlayerID
	// Individuals receive one direct message each.
	Individuals []PlayerID
}

// EventAudience computes the audience for an event-wide notification
// (update, removal, status alert). For group events and announcements the
// group membership is the primary audience via one broadcast; invitees who
// are not current members get individual copies. isMember must reflect
// membership in the event's owning group at the time of the call.
func EventAudience(ev *Event, invitees []PlayerID, isMember func(PlayerID) bool) Delivery {
	var d Delivery
	groupWide := ev.IsGroupEvent() || ev.IsGroupAnnouncement()
	if groupWide {
		d.GroupBroadcast = true
		d.Group = ev.GroupID
	}
	for _, invitee := range invitees {
		if groupWide && isMember(invitee) {
			continue
		}
		d.Individuals = append(d.Individuals, invitee)
	}
	return d
}

// InviteAudience computes who learns that an invite exists. Group
// announcements, and group events whose invite has no id yet, reveal the
// invite to the whole group (optionally excluding one player); every other
// invite is disclosed to the invitee alone.
func InviteAudience(ev *Event, inv *Invite, except PlayerID) Delivery {
	if ev.IsGroupAnnouncement() || (ev.IsGroupEvent() && !inv.ID.Assigned()) {
		return Delivery{GroupBroadcast: true, Group: ev.GroupID, Except: except}
	}
	return Delivery{Individuals: []PlayerID{inv.Invitee}}
}
