package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"walletauth/internal/domain/entity"
	"walletauth/internal/domain/repository"
	"walletauth/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestSession(t *testing.T, now time.Time) *entity.AuthSession {
	t.Helper()

	s, err := entity.NewAuthSession(uuid.New(), true, entity.ProductAuthMetadata{
		Platform: entity.PlatformWeb,
		Product:  entity.ProductWallet,
	}, now, time.Hour)
	require.NoError(t, err)

	return s
}

func setupStore(t *testing.T) (repository.SessionRepository, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	return NewMemorySessionStore(clock.Now), clock
}

func TestMemorySessionStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)
	session := newTestSession(t, clock.Now())

	require.NoError(t, store.Create(ctx, session))

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// snapshots are private copies
	got.IsLoggingIn = true
	session.FirstLogin = false
	again, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, again.IsLoggingIn)
	assert.True(t, again.FirstLogin)

	err = store.Create(ctx, session)
	assert.True(t, errors.Is(err, repository.ErrDuplicateSession))
}

func TestMemorySessionStore_CreateRejectsInvalidSession(t *testing.T) {
	store, clock := setupStore(t)
	session := newTestSession(t, clock.Now())
	session.IsAuthenticated = true
	session.IsLoggingIn = true

	err := store.Create(context.Background(), session)
	assert.True(t, errors.Is(err, entity.ErrInvariantViolation))
}

func TestMemorySessionStore_Update(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)
	session := newTestSession(t, clock.Now())
	require.NoError(t, store.Create(ctx, session))

	clock.Advance(time.Minute)
	updated, err := store.Update(ctx, session.ID, func(s *entity.AuthSession) error {
		return s.BeginLogin()
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)
	assert.True(t, updated.IsLoggingIn)
	assert.Equal(t, clock.Now(), updated.UpdatedAt)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestMemorySessionStore_UpdateDiscardsFailedChanges(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)
	session := newTestSession(t, clock.Now())
	require.NoError(t, store.Create(ctx, session))

	tests := []struct {
		name    string
		fn      repository.UpdateFunc
		wantErr error
	}{
		{
			name: "callback error",
			fn: func(s *entity.AuthSession) error {
				s.IsLoggingIn = true

				return entity.ErrInvalidPayload
			},
			wantErr: entity.ErrInvalidPayload,
		},
		{
			name: "metadata change",
			fn: func(s *entity.AuthSession) error {
				s.ProductAuthMetadata.Product = entity.ProductExchange

				return nil
			},
			wantErr: entity.ErrMetadataImmutable,
		},
		{
			name: "authenticated while logging in",
			fn: func(s *entity.AuthSession) error {
				s.IsAuthenticated = true
				s.IsLoggingIn = true

				return nil
			},
			wantErr: entity.ErrInvariantViolation,
		},
		{
			name: "switching unification flows",
			fn: func(s *entity.AuthSession) error {
				flow := entity.FlowWalletMerge
				s.AccountUnificationFlow = &flow

				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := store.Get(ctx, session.ID)
			require.NoError(t, err)

			_, err = store.Update(ctx, session.ID, tt.fn)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			after, err := store.Get(ctx, session.ID)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}

	_, err := store.Update(ctx, session.ID, func(s *entity.AuthSession) error {
		flow := entity.FlowExchangeMerge
		s.AccountUnificationFlow = &flow

		return nil
	})
	assert.True(t, errors.Is(err, entity.ErrUnificationFlowActive))
}

func TestMemorySessionStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	id := uuid.New()

	_, err := store.Get(ctx, id)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	_, err = store.Update(ctx, id, func(*entity.AuthSession) error { return nil })
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	err = store.Delete(ctx, id)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)

	stale := newTestSession(t, clock.Now())
	require.NoError(t, store.Create(ctx, stale))

	clock.Advance(30 * time.Minute)
	fresh := newTestSession(t, clock.Now())
	require.NoError(t, store.Create(ctx, fresh))

	clock.Advance(31 * time.Minute)

	_, err := store.Get(ctx, stale.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound), "expired sessions are invisible before cleanup")
	_, err = store.Update(ctx, stale.ID, func(*entity.AuthSession) error { return nil })
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	removed, err := store.DeleteExpired(ctx, clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ctx, fresh.ID)
	require.NoError(t, err)

	// the id of an expired session may be reused
	require.NoError(t, store.Create(ctx, newTestSessionWithID(t, stale.ID, clock.Now())))
}

func newTestSessionWithID(t *testing.T, id uuid.UUID, now time.Time) *entity.AuthSession {
	t.Helper()

	s := newTestSession(t, now)
	s.ID = id

	return s
}

func TestMemorySessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)
	session := newTestSession(t, clock.Now())
	require.NoError(t, store.Create(ctx, session))

	require.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.Get(ctx, session.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestMemorySessionStore_ConcurrentWritersAreSerialized(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)
	session := newTestSession(t, clock.Now())
	require.NoError(t, store.Create(ctx, session))

	const writers = 50

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := store.Update(ctx, session.ID, func(s *entity.AuthSession) error {
				if err := s.BeginLogin(); err != nil {
					return err
				}

				return s.Reset(entity.OpLogin)
			})
			assert.NoError(t, err)
		}()
	}

	stop := make(chan struct{})
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			select {
			case <-stop:
				return
			default:
			}
			snap, err := store.Get(ctx, session.ID)
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, snap.Validate())
			assert.False(t, snap.IsLoggingIn, "readers never observe a half-applied update")
		}
	}()

	wg.Wait()
	close(stop)
	<-readerDone

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(writers), got.Version)
}
