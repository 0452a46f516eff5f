// Package sqlite provides SQLite-backed persistence for the calendar
// registry.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/okarvel/duskhaven/internal/platform/storage/sqlitemigrate"
	"github.com/okarvel/duskhaven/internal/services/calendar/domain"
	"github.com/okarvel/duskhaven/internal/services/calendar/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for calendar state.
type Store struct {
	sqlDB *sql.DB
}

func toUnix(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().Unix()
}

func fromUnix(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.Unix(value, 0).UTC()
}

// Open opens a calendar SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadEvents loads every persisted calendar event.
func (s *Store) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, creator, title, description, kind, activity_id, event_time, flags, zone_time
FROM calendar_events
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("load calendar events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var eventTime, zoneTime int64
		if err := rows.Scan(&ev.ID, &ev.Creator, &ev.Title, &ev.Description, &ev.Kind, &ev.ActivityID, &eventTime, &ev.Flags, &zoneTime); err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		ev.Time = fromUnix(eventTime)
		ev.ZoneTime = fromUnix(zoneTime)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar events: %w", err)
	}
	return events, nil
}

// LoadInvites loads every persisted calendar invite.
func (s *Store) LoadInvites(ctx context.Context) ([]domain.Invite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, event_id, invitee, sender, status, status_time, rank, invite_type, note
FROM calendar_invites
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("load calendar invites: %w", err)
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		var inv domain.Invite
		var statusTime int64
		if err := rows.Scan(&inv.ID, &inv.EventID, &inv.Invitee, &inv.Sender, &inv.Status, &statusTime, &inv.Rank, &inv.Type, &inv.Note); err != nil {
			return nil, fmt.Errorf("scan calendar invite: %w", err)
		}
		inv.StatusTime = fromUnix(statusTime)
		invites = append(invites, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar invites: %w", err)
	}
	return invites, nil
}

// UpsertEvent replaces or inserts one event row transactionally.
func (s *Store) UpsertEvent(ctx context.Context, ev domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if !ev.ID.Assigned() {
		return fmt.Errorf("event id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO calendar_events (id, creator, title, description, kind, activity_id, event_time, flags, zone_time)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    creator = excluded.creator,
    title = excluded.title,
    description = excluded.description,
    kind = excluded.kind,
    activity_id = excluded.activity_id,
    event_time = excluded.event_time,
    flags = excluded.flags,
    zone_time = excluded.zone_time
`, ev.ID, ev.Creator, ev.Title, ev.Description, ev.Kind, ev.ActivityID, toUnix(ev.Time), ev.Flags, toUnix(ev.ZoneTime))
	if err != nil {
		return fmt.Errorf("upsert calendar event %d: %w", ev.ID, err)
	}
	return nil
}

// UpsertInvite replaces or inserts one invite row transactionally.
func (s *Store) UpsertInvite(ctx context.Context, inv domain.Invite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if !inv.ID.Assigned() {
		return fmt.Errorf("invite id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO calendar_invites (id, event_id, invitee, sender, status, status_time, rank, invite_type, note)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    event_id = excluded.event_id,
    invitee = excluded.invitee,
    sender = excluded.sender,
    status = excluded.status,
    status_time = excluded.status_time,
    rank = excluded.rank,
    invite_type = excluded.invite_type,
    note = excluded.note
`, inv.ID, inv.EventID, inv.Invitee, inv.Sender, inv.Status, toUnix(inv.StatusTime), inv.Rank, inv.Type, inv.Note)
	if err != nil {
		return fmt.Errorf("upsert calendar invite %d: %w", inv.ID, err)
	}
	return nil
}

// DeleteEvent deletes the event row and every invite row scoped to it in
// one transaction.
func (s *Store) DeleteEvent(ctx context.Context, id domain.EventID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin calendar event delete: %w", err)
	}
	rollbackWith := func(cause error) error {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%w: rollback calendar event delete: %v", cause, rollbackErr)
		}
		return cause
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM calendar_invites WHERE event_id = ?`, id); err != nil {
		return rollbackWith(fmt.Errorf("delete invites for event %d: %w", id, err))
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id); err != nil {
		return rollbackWith(fmt.Errorf("delete calendar event %d: %w", id, err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit calendar event delete: %w", err)
	}
	return nil
}

// DeleteInvite deletes a single invite row transactionally.
func (s *Store) DeleteInvite(ctx context.Context, id domain.InviteID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM calendar_invites WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete calendar invite %d: %w", id, err)
	}
	return nil
}
