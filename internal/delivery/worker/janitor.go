package worker

import (
	"context"
	"log/slog"
	"time"

	"walletauth/config"
	"walletauth/internal/delivery"
	"walletauth/internal/usecase"

	"go.uber.org/fx"
)

// JanitorParams holds dependencies for the expired session sweeper
type JanitorParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

type janitor struct {
	interval  time.Duration
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
	stopCtx   context.Context
	cancel    context.CancelFunc
}

// NewJanitor creates a delivery that removes expired sessions every
// session.cleanupInterval.
func NewJanitor(params JanitorParams) delivery.Delivery {
	stopCtx, cancel := context.WithCancel(context.Background())
	j := &janitor{
		interval:  params.Config.Session.CleanupInterval,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
		stopCtx:   stopCtx,
		cancel:    cancel,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			j.cancel()

			return nil
		},
	})

	return j
}

// Serve sweeps until the janitor stops
func (j *janitor) Serve(ctx context.Context) error {
	if j.interval <= 0 {
		j.logger.Info("Session cleanup disabled")

		return nil
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stopCtx.Done():
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *janitor) sweep(ctx context.Context) {
	removed, err := j.sessionUC.CleanupExpiredSessions(ctx)
	if err != nil {
		j.logger.Error("Failed to clean up expired sessions", slog.Any("error", err))

		return
	}
	if removed > 0 {
		j.logger.Info("Expired sessions removed", slog.Int("count", removed))
	}
}
