// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"walletauth/internal/domain/entity"
	"walletauth/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrDuplicateSession is returned when creating a session whose id is taken.
	ErrDuplicateSession = errors.New("session already exists")
)

// UpdateFunc mutates a private copy of the latest snapshot. Returning an
// error discards the copy.
type UpdateFunc func(session *entity.AuthSession) error

// SessionRepository stores auth session snapshots. Every snapshot handed
// out is a private copy; callers may keep it without synchronization.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.AuthSession) error

	// Get returns the latest snapshot of a live session.
	Get(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)

	// Update applies fn to a copy of the latest snapshot, checks the
	// transition, bumps the version and publishes the result atomically.
	// Writers on the same session are serialized.
	Update(ctx context.Context, id uuid.UUID, fn UpdateFunc) (*entity.AuthSession, error)

	// Delete removes a session.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every session that expired at or before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
