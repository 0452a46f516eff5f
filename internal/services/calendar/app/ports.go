// Package app orchestrates the calendar registry: the manager façade
// sequences id allocation, in-memory mutation, persistence and
// notification fan-out for every calendar operation.
package app

import "github.com/okarvel/duskhaven/internal/services/calendar/domain"

// Session is one connected player's message sink.
type Session interface {
	Send(msg domain.Message)
}

// PlayerRegistry resolves player state owned by the enclosing server.
type PlayerRegistry interface {
	// FindConnected returns the player's session if they are online.
	FindConnected(id domain.PlayerID) (Session, bool)
	// Level returns the player's level, falling back to a durable lookup
	// when the player is offline.
	Level(id domain.PlayerID) uint8
	// GroupOf returns the player's current group, NoGroupID if none.
	GroupOf(id domain.PlayerID) domain.GroupID
}

// Group is one resolved social group handle.
type Group interface {
	HasMember(id domain.PlayerID) bool
	// Broadcast delivers msg to every member, skipping except when it is
	// assigned.
	Broadcast(msg domain.Message, except domain.PlayerID)
}

// GroupService resolves group handles.
type GroupService interface {
	GroupByID(id domain.GroupID) (Group, bool)
}

// Mailer delivers the asynchronous mail-style notice sent to invitees when
// their event is removed.
type Mailer interface {
	SendRemovalNotice(to domain.PlayerID, subject, body string)
}

// Policy keeps deliberately configurable notification behavior. Both
// knobs cover cases the client protocol leaves ambiguous.
type Policy struct {
	// NotifyCreatorOfOwnInvite also runs the invite fan-out when the
	// invitee is the event creator.
	NotifyCreatorOfOwnInvite bool
	// MailDecliners includes invitees who already declined in the removal
	// mail notice.
	MailDecliners bool
}

// DefaultPolicy skips the creator fan-out and mails every invitee but the
// remover.
func DefaultPolicy() Policy {
	return Policy{MailDecliners: true}
}
