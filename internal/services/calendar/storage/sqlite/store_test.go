package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/okarvel/duskhaven/internal/services/calendar/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "calendar.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("   "); err == nil {
		t.Fatal("expected an error for a blank path")
	}
}

func TestOpenReappliesMigrationsSafely(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calendar.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestEventRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	want := domain.Event{
		ID:          3,
		Creator:     10,
		Kind:        domain.KindDungeon,
		ActivityID:  542,
		Time:        time.Date(2027, 3, 14, 19, 0, 0, 0, time.UTC),
		Flags:       domain.FlagGroupEvent,
		ZoneTime:    time.Date(2027, 3, 14, 21, 0, 0, 0, time.UTC),
		Title:       "weekly run",
		Description: "bring consumables",
	}
	if err := store.UpsertEvent(ctx, want); err != nil {
		t.Fatalf("upsert event: %v", err)
	}

	events, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("loaded %d events, want 1", len(events))
	}
	got := events[0]
	if got.ID != want.ID || got.Creator != want.Creator || got.Kind != want.Kind ||
		got.ActivityID != want.ActivityID || got.Flags != want.Flags ||
		got.Title != want.Title || got.Description != want.Description {
		t.Fatalf("event = %+v, want %+v", got, want)
	}
	if !got.Time.Equal(want.Time) || !got.ZoneTime.Equal(want.ZoneTime) {
		t.Fatalf("event times = %v / %v", got.Time, got.ZoneTime)
	}
}

func TestInviteRoundTripPreservesUnsetStatusTime(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	want := domain.Invite{
		ID:      7,
		EventID: 3,
		Invitee: 20,
		Sender:  10,
		Status:  domain.StatusInvited,
		Rank:    domain.RankModerator,
		Type:    domain.InviteTypeSignup,
		Note:    "healer",
	}
	if err := store.UpsertInvite(ctx, want); err != nil {
		t.Fatalf("upsert invite: %v", err)
	}

	invites, err := store.LoadInvites(ctx)
	if err != nil {
		t.Fatalf("load invites: %v", err)
	}
	if len(invites) != 1 {
		t.Fatalf("loaded %d invites, want 1", len(invites))
	}
	got := invites[0]
	if got.ID != want.ID || got.EventID != want.EventID || got.Invitee != want.Invitee ||
		got.Sender != want.Sender || got.Status != want.Status || got.Rank != want.Rank ||
		got.Type != want.Type || got.Note != want.Note {
		t.Fatalf("invite = %+v, want %+v", got, want)
	}
	// A never-responded invite keeps the zero status time across storage.
	if !got.StatusTime.IsZero() {
		t.Fatalf("status time = %v, want zero", got.StatusTime)
	}
}

func TestUpsertReplacesExistingRow(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	ev := domain.Event{ID: 1, Creator: 10, Title: "weekly run"}
	if err := store.UpsertEvent(ctx, ev); err != nil {
		t.Fatalf("upsert event: %v", err)
	}
	ev.Title = "rescheduled run"
	ev.Time = time.Date(2027, 3, 21, 19, 0, 0, 0, time.UTC)
	if err := store.UpsertEvent(ctx, ev); err != nil {
		t.Fatalf("re-upsert event: %v", err)
	}

	events, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("loaded %d events, want 1", len(events))
	}
	if events[0].Title != "rescheduled run" || !events[0].Time.Equal(ev.Time) {
		t.Fatalf("event = %+v", events[0])
	}
}

func TestUpsertRejectsUnassignedID(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertEvent(ctx, domain.Event{Creator: 10}); err == nil {
		t.Fatal("expected an error for an unassigned event id")
	}
	if err := store.UpsertInvite(ctx, domain.Invite{EventID: 1, Invitee: 20}); err == nil {
		t.Fatal("expected an error for an unassigned invite id")
	}
}

func TestDeleteEventScopesInvites(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	for _, ev := range []domain.Event{
		{ID: 1, Creator: 10, Title: "weekly run"},
		{ID: 2, Creator: 11, Title: "other run"},
	} {
		if err := store.UpsertEvent(ctx, ev); err != nil {
			t.Fatalf("upsert event %d: %v", ev.ID, err)
		}
	}
	for _, inv := range []domain.Invite{
		{ID: 1, EventID: 1, Invitee: 20, Sender: 10},
		{ID: 2, EventID: 1, Invitee: 30, Sender: 10},
		{ID: 3, EventID: 2, Invitee: 20, Sender: 11},
	} {
		if err := store.UpsertInvite(ctx, inv); err != nil {
			t.Fatalf("upsert invite %d: %v", inv.ID, err)
		}
	}

	if err := store.DeleteEvent(ctx, 1); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	events, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(events) != 1 || events[0].ID != 2 {
		t.Fatalf("remaining events = %+v", events)
	}
	invites, err := store.LoadInvites(ctx)
	if err != nil {
		t.Fatalf("load invites: %v", err)
	}
	if len(invites) != 1 || invites[0].EventID != 2 {
		t.Fatalf("remaining invites = %+v", invites)
	}
}

func TestDeleteInvite(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertEvent(ctx, domain.Event{ID: 1, Creator: 10}); err != nil {
		t.Fatalf("upsert event: %v", err)
	}
	for id := domain.InviteID(1); id <= 2; id++ {
		inv := domain.Invite{ID: id, EventID: 1, Invitee: domain.PlayerID(19 + id), Sender: 10}
		if err := store.UpsertInvite(ctx, inv); err != nil {
			t.Fatalf("upsert invite %d: %v", id, err)
		}
	}

	if err := store.DeleteInvite(ctx, 1); err != nil {
		t.Fatalf("delete invite: %v", err)
	}

	invites, err := store.LoadInvites(ctx)
	if err != nil {
		t.Fatalf("load invites: %v", err)
	}
	if len(invites) != 1 || invites[0].ID != 2 {
		t.Fatalf("remaining invites = %+v", invites)
	}
}
