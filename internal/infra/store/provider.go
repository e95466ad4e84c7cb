package store

import (
	"log/slog"
	"time"

	"walletauth/config"
	"walletauth/internal/domain/constants"
	"walletauth/internal/domain/repository"
	"walletauth/internal/errors"
	"walletauth/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the session repository, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository selects the session backend from configuration. The
// database is only opened for the postgres backend.
func NewSessionRepository(params Params) (repository.SessionRepository, error) {
	backend := params.Config.Session.Store

	switch backend {
	case "", constants.SessionStoreMemory:
		params.Logger.Info("Using in-memory session store")

		return NewMemorySessionStore(time.Now), nil

	case constants.SessionStorePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL session store")

		return postgres.NewSessionRepository(db, time.Now), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", backend)
	}
}
