// Package errors provides the calendar error taxonomy and its mapping to
// transport status codes.
package errors

import "fmt"

// Code is the enumerated calendar error carried by the command-result
// message. Values are wire-significant.
type Code uint32

const (
	// CodeOK reports success.
	CodeOK Code = 0
	// CodeGroupEventsExceeded means the group already has too many events.
	CodeGroupEventsExceeded Code = 1
	// CodeEventsExceeded means the creator already has too many events.
	CodeEventsExceeded Code = 2
	// CodeSelfInvitesExceeded means the player holds too many invites.
	CodeSelfInvitesExceeded Code = 3
	// CodeOtherInvitesExceeded means the target player holds too many
	// invites. Parameterized with the target player's name.
	CodeOtherInvitesExceeded Code = 4
	// CodePermissions means the requester lacks the required rank.
	CodePermissions Code = 5
	// CodeEventInvalid means the referenced event does not exist.
	CodeEventInvalid Code = 6
	// CodeNotInvited means the requester is not invited to the event.
	CodeNotInvited Code = 7
	// CodeInternal is an unspecified server-side failure.
	CodeInternal Code = 8
	// CodeNotInGroup means the player does not belong to the group.
	CodeNotInGroup Code = 9
	// CodeAlreadyInvited means the target already has an invite to the
	// event. Parameterized with the target player's name.
	CodeAlreadyInvited Code = 10
	// CodePlayerNotFound means the target player does not exist.
	CodePlayerNotFound Code = 11
	// CodeNotAllied means the target belongs to the opposing faction.
	CodeNotAllied Code = 12
	// CodeIgnoringYou means the target is ignoring the requester.
	// Parameterized with the target player's name.
	CodeIgnoringYou Code = 13
	// CodeInvitesExceeded means the event reached its invite limit.
	CodeInvitesExceeded Code = 14
	// CodeEventPassed means the event's scheduled time already elapsed.
	CodeEventPassed Code = 16
	// CodeEventLocked means the event no longer accepts invites.
	CodeEventLocked Code = 17
	// CodeDeleteCreatorFailed means the creator's invite cannot be removed.
	CodeDeleteCreatorFailed Code = 18
	// CodeSystemDisabled means the calendar is administratively disabled.
	CodeSystemDisabled Code = 19
	// CodeRestrictedAccount means the account may not use the calendar.
	CodeRestrictedAccount Code = 20
)

// HasParam reports whether the code travels with a formatted string
// parameter on the wire.
func (c Code) HasParam() bool {
	switch c {
	case CodeOtherInvitesExceeded, CodeAlreadyInvited, CodeIgnoringYou:
		return true
	}
	return false
}

// Error is a calendar failure carrying its wire code and, for the
// parameterized codes, the formatted string parameter.
type Error struct {
	Code  Code
	Param string
}

// New returns an Error for code with no parameter.
func New(code Code) *Error {
	return &Error{Code: code}
}

// Newf returns an Error for a parameterized code.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Param: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("calendar error %d (%s)", e.Code, e.Param)
	}
	return fmt.Sprintf("calendar error %d", e.Code)
}
