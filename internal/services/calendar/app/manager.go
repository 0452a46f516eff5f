package app

import (
	"context"
	"fmt"
	"time"

	calerrors "github.com/okarvel/duskhaven/internal/errors"
	"github.com/okarvel/duskhaven/internal/services/calendar/domain"
	"github.com/okarvel/duskhaven/internal/services/calendar/storage"
)

// Manager is the calendar mutation façade. It sequences id allocation,
// registry mutation, persistence and notification fan-out so that the
// in-memory and durable views of an operation never diverge past a single
// call.
//
// A Manager is not safe for concurrent use; the enclosing server
// serializes all calendar operations.
type Manager struct {
	reg     *domain.Registry
	store   storage.Store
	router  *Router
	players PlayerRegistry
	groups  GroupService
	mailer  Mailer
	policy  Policy
	clock   func() time.Time
}

// NewManager wires a manager over the durable store and its
// collaborators. A nil clock falls back to time.Now.
func NewManager(store storage.Store, players PlayerRegistry, groups GroupService, mailer Mailer, policy Policy, clock func() time.Time) *Manager {
	if clock == nil {
		clock = time.Now
	}
	reg := domain.NewRegistry()
	return &Manager{
		reg:     reg,
		store:   store,
		router:  NewRouter(reg, players, groups, policy),
		players: players,
		groups:  groups,
		mailer:  mailer,
		policy:  policy,
		clock:   clock,
	}
}

// Load rebuilds the registry from the durable store and seeds both id
// pools from the loaded id range. Events flagged as group events or
// announcements resolve their owning group from the creator's current
// group, since the group column is not persisted.
func (m *Manager) Load(ctx context.Context) error {
	events, err := m.store.LoadEvents(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	for i := range events {
		ev := events[i]
		if (ev.IsGroupEvent() || ev.IsGroupAnnouncement()) && !ev.GroupID.Assigned() {
			ev.GroupID = m.players.GroupOf(ev.Creator)
		}
		m.reg.AddEvent(&ev)
	}

	invites, err := m.store.LoadInvites(ctx)
	if err != nil {
		return fmt.Errorf("load invites: %w", err)
	}
	for i := range invites {
		inv := invites[i]
		m.reg.AddInvite(&inv)
	}

	m.reg.SeedPools()
	return nil
}

// AllocateEventID reserves the next event id for a caller-built event.
func (m *Manager) AllocateEventID() domain.EventID { return m.reg.AllocateEventID() }

// AllocateInviteID reserves the next invite id for a caller-built invite.
func (m *Manager) AllocateInviteID() domain.InviteID { return m.reg.AllocateInviteID() }

// AddEvent inserts the event, persists it and sends the creator the full
// snapshot. An unassigned event id is allocated first. If persistence
// fails the in-memory insert is rolled back and the id released, so the
// event is neither visible in memory nor present in storage.
func (m *Manager) AddEvent(ctx context.Context, ev *domain.Event, reason domain.SendReason) error {
	if !ev.ID.Assigned() {
		ev.ID = m.reg.AllocateEventID()
	}
	m.reg.AddEvent(ev)
	if err := m.store.UpsertEvent(ctx, *ev); err != nil {
		m.reg.RemoveEvent(ev.ID)
		return fmt.Errorf("persist event: %w", err)
	}
	m.router.SendEvent(ev.Creator, ev, reason)
	return nil
}

// UpdateEvent re-persists a mutated event and alerts all relatives,
// carrying the previous scheduled time.
func (m *Manager) UpdateEvent(ctx context.Context, ev *domain.Event, previousTime time.Time) error {
	if err := m.store.UpsertEvent(ctx, *ev); err != nil {
		return fmt.Errorf("persist event: %w", err)
	}
	m.router.EventUpdatedAlert(ev, previousTime)
	return nil
}

// AddInvite runs the invite sequence: the invite message goes out first
// (before the invite is committed, the ordering the client expects), then
// the audience alert, then insertion and persistence. Group announcements
// are audience-only: no invite record is stored for them. The individual
// alert is suppressed when the invitee is already covered by a group
// broadcast for this event, checked against current membership.
func (m *Manager) AddInvite(ctx context.Context, ev *domain.Event, inv *domain.Invite) error {
	if !ev.IsGroupAnnouncement() {
		if !inv.ID.Assigned() {
			inv.ID = m.reg.AllocateInviteID()
		}
		m.router.EventInvite(inv)
	}

	if !m.inviteCoveredByBroadcast(ev, inv.Invitee) {
		m.router.InviteAlert(ev, inv, domain.PlayerID(0))
	}

	if ev.IsGroupAnnouncement() {
		return nil
	}
	m.reg.AddInvite(inv)
	if err := m.store.UpsertInvite(ctx, *inv); err != nil {
		m.reg.RemoveInvite(inv.ID)
		return fmt.Errorf("persist invite: %w", err)
	}
	return nil
}

// UpdateInvite re-persists a mutated invite.
func (m *Manager) UpdateInvite(ctx context.Context, inv *domain.Invite) error {
	if err := m.store.UpsertInvite(ctx, *inv); err != nil {
		return fmt.Errorf("persist invite: %w", err)
	}
	return nil
}

// RemoveEvent removes the event and all of its invites. An unknown id is
// reported to the remover as an invalid-event command result with no
// partial effects. Otherwise the removal alert goes out, one durable
// transaction deletes the event and its invites, each non-removing
// invitee receives the mail notice, and finally the registry erases the
// entities and releases every id.
func (m *Manager) RemoveEvent(ctx context.Context, id domain.EventID, remover domain.PlayerID) error {
	ev, ok := m.reg.Event(id)
	if !ok {
		m.router.CommandResult(remover, calerrors.CodeEventInvalid, "")
		return calerrors.New(calerrors.CodeEventInvalid)
	}

	m.router.EventRemovedAlert(ev)

	invites := m.reg.EventInvites(id)
	if err := m.store.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	// remover 0 means a departing player's cleanup; no mail then.
	if m.mailer != nil && remover != 0 {
		subject := ev.MailSubject(remover)
		body := ev.MailBody()
		for _, inv := range invites {
			if inv.Invitee == remover {
				continue
			}
			if !m.policy.MailDecliners && inv.Status == domain.StatusDeclined {
				continue
			}
			m.mailer.SendRemovalNotice(inv.Invitee, subject, body)
		}
	}

	m.reg.RemoveEvent(id)
	return nil
}

// RemoveInvite removes one invite from its event. Missing event or invite
// ids make the call a no-op. The durable row is deleted first, then the
// per-player removal alert goes out unless the invitee is covered by a
// group broadcast, then the event-wide removal message, and finally the
// registry erases the invite and releases its id.
func (m *Manager) RemoveInvite(ctx context.Context, inviteID domain.InviteID, eventID domain.EventID, remover domain.PlayerID) error {
	ev, ok := m.reg.Event(eventID)
	if !ok {
		return nil
	}
	var inv *domain.Invite
	for _, candidate := range m.reg.EventInvites(eventID) {
		if candidate.ID == inviteID {
			inv = candidate
			break
		}
	}
	if inv == nil {
		return nil
	}

	if err := m.store.DeleteInvite(ctx, inviteID); err != nil {
		return fmt.Errorf("delete invite: %w", err)
	}

	if !m.inviteCoveredByBroadcast(ev, inv.Invitee) {
		m.router.InviteRemovedAlert(inv.Invitee, ev, domain.StatusRemoved)
	}
	m.router.InviteRemoved(ev, inv)

	m.reg.RemoveInvite(inviteID)
	return nil
}

// RemoveAllPlayerEventsAndInvites removes every event the departing
// player created and every invite addressed to them. No mail goes out for
// the removed events since the actor is leaving.
func (m *Manager) RemoveAllPlayerEventsAndInvites(ctx context.Context, player domain.PlayerID) error {
	for _, ev := range m.reg.Events() {
		if ev.Creator != player {
			continue
		}
		if err := m.RemoveEvent(ctx, ev.ID, 0); err != nil {
			return err
		}
	}
	for _, inv := range m.reg.PlayerInvites(player) {
		if err := m.RemoveInvite(ctx, inv.ID, inv.EventID, player); err != nil {
			return err
		}
	}
	return nil
}

// RemovePlayerGroupEventsAndSignups removes every group event and
// announcement the player created for the group, and every invite of
// theirs tied to events the group owns.
func (m *Manager) RemovePlayerGroupEventsAndSignups(ctx context.Context, player domain.PlayerID, group domain.GroupID) error {
	for _, ev := range m.reg.Events() {
		if ev.Creator != player || ev.GroupID != group {
			continue
		}
		if !ev.IsGroupEvent() && !ev.IsGroupAnnouncement() {
			continue
		}
		if err := m.RemoveEvent(ctx, ev.ID, player); err != nil {
			return err
		}
	}
	for _, inv := range m.reg.PlayerInvites(player) {
		ev, ok := m.reg.Event(inv.EventID)
		if !ok || !ev.IsGroupEvent() || ev.GroupID != group {
			continue
		}
		if err := m.RemoveInvite(ctx, inv.ID, inv.EventID, player); err != nil {
			return err
		}
	}
	return nil
}

// PendingInvites counts the player's invites still awaiting a response
// whose event time has not yet elapsed. Elapsed events are excluded even
// when the invite is formally still pending.
func (m *Manager) PendingInvites(player domain.PlayerID) int {
	now := m.clock()
	count := 0
	for _, inv := range m.reg.PlayerInvites(player) {
		if inv.Status != domain.StatusInvited {
			continue
		}
		if ev, ok := m.reg.Event(inv.EventID); ok && ev.Time.After(now) {
			count++
		}
	}
	return count
}

// Event looks up one event by id.
func (m *Manager) Event(id domain.EventID) (*domain.Event, bool) {
	return m.reg.Event(id)
}

// Invite looks up one invite by id.
func (m *Manager) Invite(id domain.InviteID) (*domain.Invite, bool) {
	return m.reg.Invite(id)
}

// EventInvites lists one event's invites in insertion order.
func (m *Manager) EventInvites(id domain.EventID) []*domain.Invite {
	return m.reg.EventInvites(id)
}

// PlayerInvites lists every invite addressed to the player.
func (m *Manager) PlayerInvites(player domain.PlayerID) []*domain.Invite {
	return m.reg.PlayerInvites(player)
}

// VisibleEvents lists the events the player can see: those they are
// invited to plus those owned by their current group.
func (m *Manager) VisibleEvents(player domain.PlayerID) []*domain.Event {
	return m.reg.VisibleEvents(player, m.players.GroupOf(player))
}

// SendEventInvite announces one invite, including pre-invites whose
// event is not committed to the registry yet.
func (m *Manager) SendEventInvite(inv *domain.Invite) {
	m.router.EventInvite(inv)
}

// SendEventStatus announces one invitee's response state to all
// relatives.
func (m *Manager) SendEventStatus(ev *domain.Event, inv *domain.Invite) {
	m.router.EventStatus(ev, inv)
}

// SendModeratorStatusAlert announces a moderation rank change to all
// relatives.
func (m *Manager) SendModeratorStatusAlert(ev *domain.Event, inv *domain.Invite) {
	m.router.ModeratorStatusAlert(ev, inv)
}

// SendEvent sends the full event snapshot to one player.
func (m *Manager) SendEvent(to domain.PlayerID, ev *domain.Event, reason domain.SendReason) {
	m.router.SendEvent(to, ev, reason)
}

// SendClearPendingAction clears one player's pending-action indicator.
func (m *Manager) SendClearPendingAction(to domain.PlayerID) {
	m.router.ClearPendingAction(to)
}

// SendCommandResult reports an operation outcome to one player.
func (m *Manager) SendCommandResult(to domain.PlayerID, code calerrors.Code, param string) {
	m.router.CommandResult(to, code, param)
}

// EventCount returns the number of loaded events.
func (m *Manager) EventCount() int { return m.reg.EventCount() }

// InviteCount returns the number of loaded invites.
func (m *Manager) InviteCount() int { return m.reg.InviteCount() }

// inviteCoveredByBroadcast reports whether the invitee already receives
// group-broadcast copies for this event, checked against membership at
// the time of the call rather than at invite creation.
func (m *Manager) inviteCoveredByBroadcast(ev *domain.Event, invitee domain.PlayerID) bool {
	if !ev.IsGroupEvent() {
		return false
	}
	group, ok := m.groups.GroupByID(ev.GroupID)
	return ok && group.HasMember(invitee)
}
