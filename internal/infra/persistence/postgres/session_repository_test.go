package postgres

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"walletauth/internal/domain/entity"
	domainerrors "walletauth/internal/domain/errors"
	"walletauth/internal/domain/repository"
	"walletauth/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var sessionColumns = []string{"id", "state", "pairing_private_key", "version", "expires_at", "created_at", "updated_at"}

func setupSessionRepository(t *testing.T) (repository.SessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewSessionRepository(gormDB, func() time.Time { return testNow }), mock
}

func newRepoTestSession(t *testing.T) *entity.AuthSession {
	t.Helper()

	s, err := entity.NewAuthSession(uuid.New(), false, entity.ProductAuthMetadata{
		Platform: entity.PlatformWeb,
		Product:  entity.ProductExchange,
	}, testNow, time.Hour)
	require.NoError(t, err)

	return s
}

func sessionRow(t *testing.T, s *entity.AuthSession, privateKey []byte) *sqlmock.Rows {
	t.Helper()

	state, err := json.Marshal(s)
	require.NoError(t, err)

	return sqlmock.NewRows(sessionColumns).
		AddRow(s.ID.String(), state, privateKey, s.Version, s.ExpiresAt, s.CreatedAt, s.UpdatedAt)
}

func TestSessionRepository_Create(t *testing.T) {
	repo, mock := setupSessionRepository(t)
	session := newRepoTestSession(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "auth_sessions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), session))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CreateDuplicate(t *testing.T) {
	repo, mock := setupSessionRepository(t)
	session := newRepoTestSession(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "auth_sessions"`)).
		WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.Create(context.Background(), session)
	assert.True(t, errors.Is(err, repository.ErrDuplicateSession))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Get(t *testing.T) {
	repo, mock := setupSessionRepository(t)
	session := newRepoTestSession(t)
	session.Pairing = &entity.PairingChannel{
		ChannelID: uuid.New(),
		PublicKey: []byte("public"),
		CreatedAt: testNow,
	}
	session.Version = 3

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_sessions" WHERE id = $1 AND expires_at > $2`)).
		WillReturnRows(sessionRow(t, session, []byte("private")))

	got, err := repo.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, int64(3), got.Version)
	require.NotNil(t, got.Pairing)
	assert.Equal(t, []byte("public"), got.Pairing.PublicKey)
	assert.Equal(t, []byte("private"), got.Pairing.PrivateKey, "private key is restored from its own column")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetNotFound(t *testing.T) {
	repo, mock := setupSessionRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_sessions"`)).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.Get(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetDatabaseError(t *testing.T) {
	repo, mock := setupSessionRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_sessions"`)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Get(context.Background(), uuid.New())
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestSessionRepository_Update(t *testing.T) {
	repo, mock := setupSessionRepository(t)
	session := newRepoTestSession(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_sessions" WHERE id = $1 AND expires_at > $2`) + `.*FOR UPDATE`).
		WillReturnRows(sessionRow(t, session, nil))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "auth_sessions" SET`) + `.*` + regexp.QuoteMeta(`WHERE id = $5 AND version = $6`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), session.ID, func(s *entity.AuthSession) error {
		return s.SetLoginStep(entity.LoginStepEnterEmailGUID)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)
	step, ok := updated.Step.LoginStep()
	require.True(t, ok)
	assert.Equal(t, entity.LoginStepEnterEmailGUID, step)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_UpdateRollsBack(t *testing.T) {
	tests := []struct {
		name    string
		fn      repository.UpdateFunc
		wantErr error
	}{
		{
			name:    "callback error",
			fn:      func(*entity.AuthSession) error { return entity.ErrNoDeviceChallenge },
			wantErr: entity.ErrNoDeviceChallenge,
		},
		{
			name: "invalid transition",
			fn: func(s *entity.AuthSession) error {
				s.ProductAuthMetadata.Platform = entity.PlatformIOS

				return nil
			},
			wantErr: entity.ErrMetadataImmutable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupSessionRepository(t)
			session := newRepoTestSession(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_sessions"`)).
				WillReturnRows(sessionRow(t, session, nil))
			mock.ExpectRollback()

			_, err := repo.Update(context.Background(), session.ID, tt.fn)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_UpdateNotFound(t *testing.T) {
	repo, mock := setupSessionRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_sessions"`)).
		WillReturnRows(sqlmock.NewRows(sessionColumns))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), uuid.New(), func(*entity.AuthSession) error { return nil })
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, mock := setupSessionRepository(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "auth_sessions" WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "auth_sessions" WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Delete(context.Background(), id)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo, mock := setupSessionRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "auth_sessions" WHERE expires_at <= $1`)).
		WithArgs(testNow).
		WillReturnResult(sqlmock.NewResult(0, 4))

	removed, err := repo.DeleteExpired(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	require.NoError(t, mock.ExpectationsWereMet())
}
