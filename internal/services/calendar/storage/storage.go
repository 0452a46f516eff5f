// Package storage defines the durable-store boundary for the calendar
// registry.
package storage

import (
	"context"
	"errors"

	"github.com/okarvel/duskhaven/internal/services/calendar/domain"
)

// ErrNotFound indicates a requested calendar row is missing.
var ErrNotFound = errors.New("calendar record not found")

// Store persists calendar state. Every method is synchronous and each
// logical operation runs inside one atomic transaction: in particular,
// DeleteEvent removes the event row and all invite rows scoped to it
// together, so durable and in-memory state never diverge across a crash
// boundary for longer than a single operation. A returned error means
// nothing was committed.
type Store interface {
	LoadEvents(ctx context.Context) ([]domain.Event, error)
	LoadInvites(ctx context.Context) ([]domain.Invite, error)
	UpsertEvent(ctx context.Context, ev domain.Event) error
	UpsertInvite(ctx context.Context, inv domain.Invite) error
	DeleteEvent(ctx context.Context, id domain.EventID) error
	DeleteInvite(ctx context.Context, id domain.InviteID) error
}
