package domain

import (
	"fmt"
	"strconv"
	"time"
)

// EventKind classifies one calendar event.
type EventKind uint8

const (
	// KindRaid is a raid event.
	KindRaid EventKind = iota
	// KindDungeon is a dungeon run.
	KindDungeon
	// KindPvP is a player-versus-player event.
	KindPvP
	// KindMeeting is a plain meeting with no linked activity.
	KindMeeting
	// KindOther is any other scheduled activity.
	KindOther
)

// EventFlags is the event option bitmask carried on the wire.
type EventFlags uint32

const (
	// FlagAllAllowed lets any player sign up without an invite.
	FlagAllAllowed EventFlags = 0x001
	// FlagInvitesLocked disables further invites to the event.
	FlagInvitesLocked EventFlags = 0x010
	// FlagGroupAnnouncement marks a group-wide announcement that never
	// produces individual invite records.
	FlagGroupAnnouncement EventFlags = 0x040
	// FlagGroupEvent marks an event owned by the creator's group.
	FlagGroupEvent EventFlags = 0x400
)

const (
	// RepeatNever is the only repeat mode the registry supports.
	RepeatNever uint8 = 0
	// MaxInvites is the per-event invite limit advertised to clients.
	MaxInvites uint32 = 100
)

// Event is one scheduled group or personal activity entry.
//
// The registry owns every Event; callers hold references only for the
// duration of a single operation and must not retain them across mutations.
type Event struct {
	// ID is NoEventID while the event is detached from the registry.
	ID      EventID
	Creator PlayerID
	// GroupID is NoGroupID for personal events. Group-flagged events
	// always carry an assigned group id.
	GroupID GroupID
	Kind    EventKind
	// ActivityID links the event to a dungeon or raid activity, 0 if none.
	ActivityID int32
	Time       time.Time
	Flags      EventFlags
	// ZoneTime is the zone-adjusted timestamp, carried opaquely.
	ZoneTime    time.Time
	Title       string
	Description string
}

// IsGroupEvent reports whether the event is owned by a group.
func (e *Event) IsGroupEvent() bool { return e.Flags&FlagGroupEvent != 0 }

// IsGroupAnnouncement reports whether the event is a group-wide
// announcement without individual invites.
func (e *Event) IsGroupAnnouncement() bool { return e.Flags&FlagGroupAnnouncement != 0 }

// MailSubject builds the removal-notice subject line understood by the
// client mail frame: the remover id and the event title, colon separated.
func (e *Event) MailSubject(remover PlayerID) string {
	return fmt.Sprintf("%d:%s", remover, e.Title)
}

// MailBody builds the removal-notice body: the packed event time as a
// decimal string.
func (e *Event) MailBody() string {
	return strconv.FormatUint(uint64(PackTime(e.Time)), 10)
}
