package domain

import (
	"time"

	calerrors "github.com/okarvel/duskhaven/internal/errors"
)

// SendReason tells the client why it is receiving a full event snapshot.
type SendReason uint8

const (
	// SendReasonGet answers an explicit event query.
	SendReasonGet SendReason = iota
	// SendReasonAdd follows event creation.
	SendReasonAdd
	// SendReasonCopy follows an event copy.
	SendReasonCopy
)

// Message is one logical outbound calendar message. The session layer owns
// the byte encoding; field order within each message is wire-significant.
type Message interface {
	calendarMessage()
}

// EventInviteMessage announces one invite to its audience.
type EventInviteMessage struct {
	Invitee       PlayerID
	EventID       EventID
	InviteID      InviteID
	Level         uint8
	Status        InviteStatus
	HasStatusTime bool
	StatusTime    time.Time
	IsSignup      bool
}

// EventUpdatedAlertMessage announces a change to an existing event.
type EventUpdatedAlertMessage struct {
	EventID      EventID
	PreviousTime time.Time
	Flags        EventFlags
	Time         time.Time
	Kind         EventKind
	ActivityID   int32
	Title        string
	Description  string
	Repeat       uint8
	InviteLimit  uint32
}

// EventStatusMessage announces one invitee's response state.
type EventStatusMessage struct {
	Invitee    PlayerID
	EventID    EventID
	Time       time.Time
	Flags      EventFlags
	Status     InviteStatus
	Rank       ModerationRank
	StatusTime time.Time
}

// EventRemovedAlertMessage announces event removal to its audience.
type EventRemovedAlertMessage struct {
	EventID EventID
	Time    time.Time
}

// InviteRemovedMessage announces invite removal to the event's audience.
type InviteRemovedMessage struct {
	Invitee PlayerID
	EventID EventID
	Flags   EventFlags
}

// ModeratorStatusAlertMessage announces a moderation rank change.
type ModeratorStatusAlertMessage struct {
	Invitee PlayerID
	EventID EventID
	Rank    ModerationRank
}

// InviteAlertMessage prompts the recipient to respond to a new invite.
type InviteAlertMessage struct {
	EventID    EventID
	Title      string
	Time       time.Time
	Flags      EventFlags
	Kind       EventKind
	ActivityID int32
	InviteID   InviteID
	Status     InviteStatus
	Rank       ModerationRank
	Creator    PlayerID
	Sender     PlayerID
}

// SendEventInvite is one per-invite row inside a full event snapshot.
type SendEventInvite struct {
	Invitee    PlayerID
	Level      uint8
	Status     InviteStatus
	Rank       ModerationRank
	Type       InviteType
	InviteID   InviteID
	StatusTime time.Time
	Note       string
}

// SendEventMessage is the full snapshot of one event and its invites.
type SendEventMessage struct {
	Reason      SendReason
	Creator     PlayerID
	EventID     EventID
	Title       string
	Description string
	Kind        EventKind
	Repeat      uint8
	InviteLimit uint32
	ActivityID  int32
	Flags       EventFlags
	Time        time.Time
	ZoneTime    time.Time
	GroupID     GroupID
	Invites     []SendEventInvite
}

// InviteRemovedAlertMessage tells one player their invite went away.
type InviteRemovedAlertMessage struct {
	EventID EventID
	Time    time.Time
	Flags   EventFlags
	Status  InviteStatus
}

// ClearPendingActionMessage clears the recipient's pending-action
// indicator. It carries no payload.
type ClearPendingActionMessage struct{}

// CommandResultMessage reports an operation outcome to the requester. The
// parameter is set only for the parameterized error codes.
type CommandResultMessage struct {
	Code  calerrors.Code
	Param string
}

func (EventInviteMessage) calendarMessage() {}
func (EventUpdatedAlertMessage) calendarMessage() {}
func (EventStatusMessage) calendarMessage() {}
func (EventRemovedAlertMessage) calendarMessage() {}
func (InviteRemovedMessage) calendarMessage() {}
func (ModeratorStatusAlertMessage) calendarMessage() {}
func (InviteAlertMessage) calendarMessage() {}
func (SendEventMessage) calendarMessage() {}
func (InviteRemovedAlertMessage) calendarMessage() {}
func (ClearPendingActionMessage) calendarMessage() {}
func (CommandResultMessage) calendarMessage() {}
