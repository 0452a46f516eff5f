package domain

import "testing"

func memberSet(ids ...PlayerID) func(PlayerID) bool {
	members := make(map[PlayerID]bool, len(ids))
	for _, id := range ids {
		members[id] = true
	}
	return func(id PlayerID) bool { return members[id] }
}

func TestEventAudiencePersonalEventTargetsInviteesOnly(t *testing.T) {
	t.Parallel()

	ev := &Event{ID: 1, Creator: 10}
	d := EventAudience(ev, []PlayerID{20, 30}, memberSet())

	if d.GroupBroadcast {
		t.Fatal("personal event must not broadcast to a group")
	}
	if len(d.Individuals) != 2 {
		t.Fatalf("individuals = %v, want two", d.Individuals)
	}
}

func TestEventAudienceGroupMemberCountedOnce(t *testing.T) {
	t.Parallel()

	ev := &Event{ID: 1, Creator: 10, GroupID: 5, Flags: FlagGroupEvent}
	d := EventAudience(ev, []PlayerID{20, 30}, memberSet(20))

	if !d.GroupBroadcast || d.Group != 5 {
		t.Fatalf("expected group broadcast to group 5, got %+v", d)
	}
	// Invitee 20 is a current member: the broadcast already covers them,
	// so they must not also appear as an individual target.
	if len(d.Individuals) != 1 || d.Individuals[0] != 30 {
		t.Fatalf("individuals = %v, want [30]", d.Individuals)
	}
}

func TestEventAudienceAnnouncementBroadcasts(t *testing.T) {
	t.Parallel()

	ev := &Event{ID: 1, Creator: 10, GroupID: 5, Flags: FlagGroupAnnouncement}
	d := EventAudience(ev, nil, memberSet())

	if !d.GroupBroadcast || d.Group != 5 {
		t.Fatalf("expected group broadcast, got %+v", d)
	}
	if len(d.Individuals) != 0 {
		t.Fatalf("individuals = %v, want none", d.Individuals)
	}
}

func TestInviteAudienceDefaultsToInvitee(t *testing.T) {
	t.Parallel()

	ev := &Event{ID: 1, Creator: 10, GroupID: 5, Flags: FlagGroupEvent}
	inv := &Invite{ID: 7, EventID: 1, Invitee: 20, Sender: 10}
	d := InviteAudience(ev, inv, 0)

	if d.GroupBroadcast {
		t.Fatal("assigned group-event invite must target the invitee alone")
	}
	if len(d.Individuals) != 1 || d.Individuals[0] != 20 {
		t.Fatalf("individuals = %v, want [20]", d.Individuals)
	}
}

func TestInviteAudienceGroupReveal(t *testing.T) {
	t.Parallel()

	announcement := &Event{ID: 1, Creator: 10, GroupID: 5, Flags: FlagGroupAnnouncement}
	pending := &Invite{EventID: 1, Invitee: 20, Sender: 10}

	d := InviteAudience(announcement, pending, 10)
	if !d.GroupBroadcast || d.Group != 5 || d.Except != 10 {
		t.Fatalf("announcement audience = %+v", d)
	}

	groupEvent := &Event{ID: 2, Creator: 10, GroupID: 5, Flags: FlagGroupEvent}
	d = InviteAudience(groupEvent, &Invite{EventID: 2, Invitee: 20, Sender: 10}, 0)
	if !d.GroupBroadcast {
		t.Fatal("id-less group-event invite must broadcast to the group")
	}
}
