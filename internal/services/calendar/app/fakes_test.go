package app

import (
	"context"
	"errors"
	"time"

	"github.com/okarvel/duskhaven/internal/services/calendar/domain"
)

type fakeSession struct {
	msgs []domain.Message
}

func (s *fakeSession) Send(msg domain.Message) { s.msgs = append(s.msgs, msg) }

type fakePlayers struct {
	online map[domain.PlayerID]*fakeSession
	levels map[domain.PlayerID]uint8
	groups map[domain.PlayerID]domain.GroupID
}

func newFakePlayers() *fakePlayers {
	return &fakePlayers{
		online: make(map[domain.PlayerID]*fakeSession),
		levels: make(map[domain.PlayerID]uint8),
		groups: make(map[domain.PlayerID]domain.GroupID),
	}
}

func (p *fakePlayers) connect(id domain.PlayerID) *fakeSession {
	sess := &fakeSession{}
	p.online[id] = sess
	return sess
}

func (p *fakePlayers) FindConnected(id domain.PlayerID) (Session, bool) {
	sess, ok := p.online[id]
	return sess, ok
}

func (p *fakePlayers) Level(id domain.PlayerID) uint8 {
	if lvl, ok := p.levels[id]; ok {
		return lvl
	}
	return 1
}

func (p *fakePlayers) GroupOf(id domain.PlayerID) domain.GroupID { return p.groups[id] }

// fakeGroup broadcasts to the inboxes of its online members, mirroring
// how the server-side group channel behaves.
type fakeGroup struct {
	members    []domain.PlayerID
	players    *fakePlayers
	broadcasts int
}

func (g *fakeGroup) HasMember(id domain.PlayerID) bool {
	for _, m := range g.members {
		if m == id {
			return true
		}
	}
	return false
}

func (g *fakeGroup) Broadcast(msg domain.Message, except domain.PlayerID) {
	g.broadcasts++
	for _, m := range g.members {
		if m == except {
			continue
		}
		if sess, ok := g.players.online[m]; ok {
			sess.msgs = append(sess.msgs, msg)
		}
	}
}

type fakeGroups struct {
	byID map[domain.GroupID]*fakeGroup
}

func (s *fakeGroups) GroupByID(id domain.GroupID) (Group, bool) {
	g, ok := s.byID[id]
	return g, ok
}

var errStoreDown = errors.New("store down")

type fakeStore struct {
	events  map[domain.EventID]domain.Event
	invites map[domain.InviteID]domain.Invite

	failUpsertEvent  bool
	failUpsertInvite bool
	deleteEventCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:  make(map[domain.EventID]domain.Event),
		invites: make(map[domain.InviteID]domain.Invite),
	}
}

func (s *fakeStore) LoadEvents(context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev)
	}
	return out, nil
}

func (s *fakeStore) LoadInvites(context.Context) ([]domain.Invite, error) {
	out := make([]domain.Invite, 0, len(s.invites))
	for _, inv := range s.invites {
		out = append(out, inv)
	}
	return out, nil
}

func (s *fakeStore) UpsertEvent(_ context.Context, ev domain.Event) error {
	if s.failUpsertEvent {
		return errStoreDown
	}
	s.events[ev.ID] = ev
	return nil
}

func (s *fakeStore) UpsertInvite(_ context.Context, inv domain.Invite) error {
	if s.failUpsertInvite {
		return errStoreDown
	}
	s.invites[inv.ID] = inv
	return nil
}

func (s *fakeStore) DeleteEvent(_ context.Context, id domain.EventID) error {
	s.deleteEventCalls++
	delete(s.events, id)
	for invID, inv := range s.invites {
		if inv.EventID == id {
			delete(s.invites, invID)
		}
	}
	return nil
}

func (s *fakeStore) DeleteInvite(_ context.Context, id domain.InviteID) error {
	delete(s.invites, id)
	return nil
}

type mailNotice struct {
	to      domain.PlayerID
	subject string
	body    string
}

type fakeMailer struct {
	sent []mailNotice
}

func (m *fakeMailer) SendRemovalNotice(to domain.PlayerID, subject, body string) {
	m.sent = append(m.sent, mailNotice{to: to, subject: subject, body: body})
}

type fixture struct {
	players *fakePlayers
	groups  *fakeGroups
	store   *fakeStore
	mailer  *fakeMailer
	mgr     *Manager
}

func newFixture(policy Policy, clock func() time.Time) *fixture {
	players := newFakePlayers()
	groups := &fakeGroups{byID: make(map[domain.GroupID]*fakeGroup)}
	store := newFakeStore()
	mailer := &fakeMailer{}
	return &fixture{
		players: players,
		groups:  groups,
		store:   store,
		mailer:  mailer,
		mgr:     NewManager(store, players, groups, mailer, policy, clock),
	}
}

func (f *fixture) addGroup(id domain.GroupID, members ...domain.PlayerID) *fakeGroup {
	g := &fakeGroup{members: members, players: f.players}
	f.groups.byID[id] = g
	for _, m := range members {
		f.players.groups[m] = id
	}
	return g
}

func messagesOf[T domain.Message](msgs []domain.Message) []T {
	var out []T
	for _, m := range msgs {
		if typed, ok := m.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
