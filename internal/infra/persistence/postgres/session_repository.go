// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"walletauth/internal/domain/entity"
	domainerrors "walletauth/internal/domain/errors"
	"walletauth/internal/domain/repository"
	"walletauth/internal/errors"
	"walletauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errConcurrentUpdate is returned when the row changed under a held lock,
// which only happens if another writer bypassed the repository.
var errConcurrentUpdate = errors.New("session row changed concurrently")

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB, now func() time.Time) repository.SessionRepository {
	if now == nil {
		now = time.Now
	}

	return &sessionRepository{
		db:  db,
		now: now,
	}
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.AuthSession) error {
	if err := entity.CheckTransition(nil, session); err != nil {
		return err
	}

	sessionM, err := fromSessionDomain(session)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateSession, "id %s", session.ID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// Get returns the latest snapshot of a live session.
func (repo *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	var sessionM model.AuthSessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, repo.now()).
		Take(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(repository.ErrSessionNotFound, "id %s", id)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	return toSessionDomain(&sessionM)
}

// Update locks the row, applies fn to the decoded snapshot and writes the
// result back within one transaction.
func (repo *sessionRepository) Update(ctx context.Context, id uuid.UUID, fn repository.UpdateFunc) (*entity.AuthSession, error) {
	var updated *entity.AuthSession

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionM model.AuthSessionModel
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("id = ? AND expires_at > ?", id, repo.now()).
			Take(&sessionM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(repository.ErrSessionNotFound, "id %s", id)
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to lock session")
		}

		prev, err := toSessionDomain(&sessionM)
		if err != nil {
			return err
		}

		next := prev.Clone()
		if err := fn(next); err != nil {
			return err
		}
		if err := entity.CheckTransition(prev, next); err != nil {
			return err
		}
		next.Version = prev.Version + 1
		next.UpdatedAt = repo.now()

		nextM, err := fromSessionDomain(next)
		if err != nil {
			return err
		}

		result := tx.Model(&model.AuthSessionModel{}).
			Where("id = ? AND version = ?", id, prev.Version).
			Updates(map[string]any{
				"state":               nextM.State,
				"pairing_private_key": nextM.PairingPrivateKey,
				"version":             nextM.Version,
				"updated_at":          nextM.UpdatedAt,
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update session")
		}
		if result.RowsAffected == 0 {
			return errors.WithStack(errConcurrentUpdate)
		}

		updated = next

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a session.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthSessionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrSessionNotFound, "id %s", id)
	}

	return nil
}

// DeleteExpired removes every session that expired at or before now.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.AuthSessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return int(result.RowsAffected), nil
}

// fromSessionDomain converts an entity.AuthSession to a model.AuthSessionModel.
func fromSessionDomain(session *entity.AuthSession) (*model.AuthSessionModel, error) {
	state, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session state")
	}

	var privateKey []byte
	if session.Pairing != nil {
		privateKey = session.Pairing.PrivateKey
	}

	return &model.AuthSessionModel{
		ID:                session.ID,
		State:             state,
		PairingPrivateKey: privateKey,
		Version:           session.Version,
		ExpiresAt:         session.ExpiresAt,
		CreatedAt:         session.CreatedAt,
		UpdatedAt:         session.UpdatedAt,
	}, nil
}

// toSessionDomain converts a model.AuthSessionModel to an entity.AuthSession.
func toSessionDomain(sessionM *model.AuthSessionModel) (*entity.AuthSession, error) {
	var session entity.AuthSession
	if err := json.Unmarshal(sessionM.State, &session); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode session state")
	}

	session.ID = sessionM.ID
	session.Version = sessionM.Version
	if session.Pairing != nil {
		session.Pairing.PrivateKey = append([]byte(nil), sessionM.PairingPrivateKey...)
	}

	return &session, nil
}
