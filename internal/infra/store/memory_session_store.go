// Package store holds the in-memory snapshot store and the backend selection
// for session persistence.
package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"walletauth/internal/domain/entity"
	"walletauth/internal/domain/repository"
	"walletauth/internal/errors"

	"github.com/google/uuid"
)

// sessionCell holds the published snapshot of one session. Readers load the
// pointer without locking; writers hold writeMu for the whole read-modify-write.
type sessionCell struct {
	writeMu  sync.Mutex
	snapshot atomic.Pointer[entity.AuthSession]
}

type memorySessionStore struct {
	mu    sync.RWMutex
	cells map[uuid.UUID]*sessionCell
	now   func() time.Time
}

// NewMemorySessionStore creates a process-local session store.
func NewMemorySessionStore(now func() time.Time) repository.SessionRepository {
	if now == nil {
		now = time.Now
	}

	return &memorySessionStore{
		cells: make(map[uuid.UUID]*sessionCell),
		now:   now,
	}
}

func (s *memorySessionStore) Create(ctx context.Context, session *entity.AuthSession) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if err := entity.CheckTransition(nil, session); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.cells[session.ID]; ok {
		if snap := existing.snapshot.Load(); snap != nil && !snap.Expired(s.now()) {
			return errors.Wrapf(repository.ErrDuplicateSession, "id %s", session.ID)
		}
	}

	cell := &sessionCell{}
	cell.snapshot.Store(session.Clone())
	s.cells[session.ID] = cell

	return nil
}

func (s *memorySessionStore) lookup(id uuid.UUID) (*sessionCell, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cell, ok := s.cells[id]

	return cell, ok
}

func (s *memorySessionStore) live(cell *sessionCell, id uuid.UUID) (*entity.AuthSession, error) {
	snap := cell.snapshot.Load()
	if snap == nil || snap.Expired(s.now()) {
		return nil, errors.Wrapf(repository.ErrSessionNotFound, "id %s", id)
	}

	return snap, nil
}

func (s *memorySessionStore) Get(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	cell, ok := s.lookup(id)
	if !ok {
		return nil, errors.Wrapf(repository.ErrSessionNotFound, "id %s", id)
	}

	snap, err := s.live(cell, id)
	if err != nil {
		return nil, err
	}

	return snap.Clone(), nil
}

func (s *memorySessionStore) Update(ctx context.Context, id uuid.UUID, fn repository.UpdateFunc) (*entity.AuthSession, error) {
	cell, ok := s.lookup(id)
	if !ok {
		return nil, errors.Wrapf(repository.ErrSessionNotFound, "id %s", id)
	}

	cell.writeMu.Lock()
	defer cell.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	prev, err := s.live(cell, id)
	if err != nil {
		return nil, err
	}

	next := prev.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if err := entity.CheckTransition(prev, next); err != nil {
		return nil, err
	}
	next.Version = prev.Version + 1
	next.UpdatedAt = s.now()

	cell.snapshot.Store(next)

	return next.Clone(), nil
}

func (s *memorySessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	cell, ok := s.cells[id]
	delete(s.cells, id)
	s.mu.Unlock()

	if !ok {
		return errors.Wrapf(repository.ErrSessionNotFound, "id %s", id)
	}
	retire(cell)

	return nil
}

func (s *memorySessionStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	s.mu.Lock()
	expired := make([]*sessionCell, 0)
	for id, cell := range s.cells {
		if snap := cell.snapshot.Load(); snap == nil || snap.Expired(now) {
			expired = append(expired, cell)
			delete(s.cells, id)
		}
	}
	s.mu.Unlock()

	for _, cell := range expired {
		retire(cell)
	}

	return len(expired), nil
}

// retire waits for an in-flight writer and then unpublishes the snapshot.
func retire(cell *sessionCell) {
	cell.writeMu.Lock()
	cell.snapshot.Store(nil)
	cell.writeMu.Unlock()
}
