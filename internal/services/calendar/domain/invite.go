package domain

import "time"

// InviteStatus is the invitee's response state.
type InviteStatus uint8

const (
	// StatusInvited means the invitee has not responded yet.
	StatusInvited InviteStatus = iota
	// StatusAccepted means the invitee accepted.
	StatusAccepted
	// StatusDeclined means the invitee declined.
	StatusDeclined
	// StatusConfirmed means a moderator confirmed the invitee.
	StatusConfirmed
	// StatusOut means the invitee was benched.
	StatusOut
	// StatusStandby means the invitee is on standby.
	StatusStandby
	// StatusSignedUp means the invitee signed themselves up.
	StatusSignedUp
	// StatusNotSignedUp means the invitee withdrew a sign-up.
	StatusNotSignedUp
	// StatusTentative means the invitee responded tentatively.
	StatusTentative
	// StatusRemoved means the invite was revoked.
	StatusRemoved
)

// ModerationRank is the invitee's moderation rank on the event. The
// registry stores and transmits the rank; it never enforces it.
type ModerationRank uint8

const (
	// RankPlayer is a plain invitee.
	RankPlayer ModerationRank = iota
	// RankModerator may manage other invites.
	RankModerator
	// RankOwner is the event owner.
	RankOwner
)

// InviteType distinguishes how the invite came to exist.
type InviteType uint8

const (
	// InviteTypeNormal is an invite sent by another player.
	InviteTypeNormal InviteType = iota
	// InviteTypeSignup is a self sign-up.
	InviteTypeSignup
)

// Invite is one per-player association to an event.
//
// The registry owns every Invite through its event's invite sequence.
type Invite struct {
	// ID is NoInviteID while the invite is detached from the registry.
	ID      InviteID
	EventID EventID
	Invitee PlayerID
	Sender  PlayerID
	Status  InviteStatus
	// StatusTime is when the status last changed; the zero time means the
	// invitee has not responded.
	StatusTime time.Time
	Rank       ModerationRank
	Type       InviteType
	Note       string
}

// IsSignup reports whether the invite is a self sign-up.
func (i *Invite) IsSignup() bool { return i.Sender == i.Invitee }
