package app

import (
	"time"

	calerrors "github.com/okarvel/duskhaven/internal/errors"
	"github.com/okarvel/duskhaven/internal/services/calendar/domain"
)

// Router computes the audience for each calendar mutation and emits the
// corresponding outbound messages. It reads the registry but never
// mutates it.
type Router struct {
	reg     *domain.Registry
	players PlayerRegistry
	groups  GroupService
	policy  Policy
}

// NewRouter builds a router over the given registry and collaborators.
func NewRouter(reg *domain.Registry, players PlayerRegistry, groups GroupService, policy Policy) *Router {
	return &Router{reg: reg, players: players, groups: groups, policy: policy}
}

// EventInvite announces one invite. While the owning event is not in the
// registry yet (a pre-invite, sent before the event is committed), the
// message goes directly to the sender; the client expects it ahead of the
// event snapshot. Otherwise it fans out to all event relatives.
func (r *Router) EventInvite(inv *domain.Invite) {
	msg := domain.EventInviteMessage{
		Invitee:       inv.Invitee,
		EventID:       inv.EventID,
		InviteID:      inv.ID,
		Level:         r.players.Level(inv.Invitee),
		Status:        inv.Status,
		HasStatusTime: !inv.StatusTime.IsZero(),
		StatusTime:    inv.StatusTime,
		IsSignup:      inv.IsSignup(),
	}

	ev, ok := r.reg.Event(inv.EventID)
	if !ok {
		if sess, online := r.players.FindConnected(inv.Sender); online {
			sess.Send(msg)
		}
		return
	}
	if ev.Creator == inv.Invitee && !r.policy.NotifyCreatorOfOwnInvite {
		return
	}
	r.broadcastToRelatives(ev, msg)
}

// EventUpdatedAlert announces an event change to all relatives, carrying
// the previous scheduled time.
func (r *Router) EventUpdatedAlert(ev *domain.Event, previousTime time.Time) {
	r.broadcastToRelatives(ev, domain.EventUpdatedAlertMessage{
		EventID:      ev.ID,
		PreviousTime: previousTime,
		Flags:        ev.Flags,
		Time:         ev.Time,
		Kind:         ev.Kind,
		ActivityID:   ev.ActivityID,
		Title:        ev.Title,
		Description:  ev.Description,
		Repeat:       domain.RepeatNever,
		InviteLimit:  domain.MaxInvites,
	})
}

// EventStatus announces one invitee's response state to all relatives.
func (r *Router) EventStatus(ev *domain.Event, inv *domain.Invite) {
	r.broadcastToRelatives(ev, domain.EventStatusMessage{
		Invitee:    inv.Invitee,
		EventID:    ev.ID,
		Time:       ev.Time,
		Flags:      ev.Flags,
		Status:     inv.Status,
		Rank:       inv.Rank,
		StatusTime: inv.StatusTime,
	})
}

// EventRemovedAlert announces event removal to all relatives.
func (r *Router) EventRemovedAlert(ev *domain.Event) {
	r.broadcastToRelatives(ev, domain.EventRemovedAlertMessage{
		EventID: ev.ID,
		Time:    ev.Time,
	})
}

// InviteRemoved announces invite removal to all relatives.
func (r *Router) InviteRemoved(ev *domain.Event, inv *domain.Invite) {
	r.broadcastToRelatives(ev, domain.InviteRemovedMessage{
		Invitee: inv.Invitee,
		EventID: inv.EventID,
		Flags:   ev.Flags,
	})
}

// ModeratorStatusAlert announces a moderation rank change to all
// relatives.
func (r *Router) ModeratorStatusAlert(ev *domain.Event, inv *domain.Invite) {
	r.broadcastToRelatives(ev, domain.ModeratorStatusAlertMessage{
		Invitee: inv.Invitee,
		EventID: ev.ID,
		Rank:    inv.Rank,
	})
}

// InviteAlert prompts the invite's audience to respond: the whole group
// for announcements and id-less group-event invites, the invitee alone
// otherwise. except is excluded from a group broadcast when assigned.
func (r *Router) InviteAlert(ev *domain.Event, inv *domain.Invite, except domain.PlayerID) {
	msg := domain.InviteAlertMessage{
		EventID:    ev.ID,
		Title:      ev.Title,
		Time:       ev.Time,
		Flags:      ev.Flags,
		Kind:       ev.Kind,
		ActivityID: ev.ActivityID,
		InviteID:   inv.ID,
		Status:     inv.Status,
		Rank:       inv.Rank,
		Creator:    ev.Creator,
		Sender:     inv.Sender,
	}
	r.deliver(domain.InviteAudience(ev, inv, except), msg)
}

// SendEvent sends the full event snapshot to one player, if connected.
func (r *Router) SendEvent(to domain.PlayerID, ev *domain.Event, reason domain.SendReason) {
	sess, online := r.players.FindConnected(to)
	if !online {
		return
	}

	invites := r.reg.EventInvites(ev.ID)
	rows := make([]domain.SendEventInvite, 0, len(invites))
	for _, inv := range invites {
		rows = append(rows, domain.SendEventInvite{
			Invitee:    inv.Invitee,
			Level:      r.players.Level(inv.Invitee),
			Status:     inv.Status,
			Rank:       inv.Rank,
			Type:       inv.Type,
			InviteID:   inv.ID,
			StatusTime: inv.StatusTime,
			Note:       inv.Note,
		})
	}

	sess.Send(domain.SendEventMessage{
		Reason:      reason,
		Creator:     ev.Creator,
		EventID:     ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Kind:        ev.Kind,
		Repeat:      domain.RepeatNever,
		InviteLimit: domain.MaxInvites,
		ActivityID:  ev.ActivityID,
		Flags:       ev.Flags,
		Time:        ev.Time,
		ZoneTime:    ev.ZoneTime,
		GroupID:     ev.GroupID,
		Invites:     rows,
	})
}

// InviteRemovedAlert tells one player their invite went away, if
// connected.
func (r *Router) InviteRemovedAlert(to domain.PlayerID, ev *domain.Event, status domain.InviteStatus) {
	if sess, online := r.players.FindConnected(to); online {
		sess.Send(domain.InviteRemovedAlertMessage{
			EventID: ev.ID,
			Time:    ev.Time,
			Flags:   ev.Flags,
			Status:  status,
		})
	}
}

// ClearPendingAction clears one player's pending-action indicator, if
// connected.
func (r *Router) ClearPendingAction(to domain.PlayerID) {
	if sess, online := r.players.FindConnected(to); online {
		sess.Send(domain.ClearPendingActionMessage{})
	}
}

// CommandResult reports an operation outcome to the requester, if
// connected. The string parameter travels only for parameterized codes.
func (r *Router) CommandResult(to domain.PlayerID, code calerrors.Code, param string) {
	sess, online := r.players.FindConnected(to)
	if !online {
		return
	}
	msg := domain.CommandResultMessage{Code: code}
	if code.HasParam() {
		msg.Param = param
	}
	sess.Send(msg)
}

// broadcastToRelatives delivers msg to everyone affected by an event-wide
// mutation: one group broadcast for group events and announcements, plus
// individual copies for invitees outside the group. Membership is checked
// at call time, so a player who is both invitee and current member gets
// exactly one copy.
func (r *Router) broadcastToRelatives(ev *domain.Event, msg domain.Message) {
	invitees := make([]domain.PlayerID, 0)
	for _, inv := range r.reg.EventInvites(ev.ID) {
		invitees = append(invitees, inv.Invitee)
	}
	r.deliver(domain.EventAudience(ev, invitees, r.membership(ev)), msg)
}

func (r *Router) membership(ev *domain.Event) func(domain.PlayerID) bool {
	group, ok := r.groups.GroupByID(ev.GroupID)
	if !ok {
		return func(domain.PlayerID) bool { return false }
	}
	return group.HasMember
}

func (r *Router) deliver(d domain.Delivery, msg domain.Message) {
	if d.GroupBroadcast {
		if group, ok := r.groups.GroupByID(d.Group); ok {
			group.Broadcast(msg, d.Except)
		}
	}
	for _, target := range d.Individuals {
		if sess, online := r.players.FindConnected(target); online {
			sess.Send(msg)
		}
	}
}
