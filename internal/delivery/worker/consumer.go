package worker

import (
	"context"
	"log/slog"
	"time"

	"walletauth/internal/delivery"
	deliverycontext "walletauth/internal/delivery/context"
	"walletauth/internal/delivery/worker/handler"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	"go.uber.org/fx"
)

const receiveBackoff = time.Second

// ConsumerParams holds dependencies for the in-process event consumer
type ConsumerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Logger       *slog.Logger
	Subscriber   service.EventSubscriber `optional:"true"`
	EventHandler *handler.EventHandler
}

type consumer struct {
	subscriber service.EventSubscriber
	events     *handler.EventHandler
	logger     *slog.Logger
	stopCtx    context.Context
	cancel     context.CancelFunc
}

// NewConsumer creates a delivery that pulls events from the in-process bus.
// It idles when the configured provider has no subscriber.
func NewConsumer(params ConsumerParams) delivery.Delivery {
	stopCtx, cancel := context.WithCancel(context.Background())
	c := &consumer{
		subscriber: params.Subscriber,
		events:     params.EventHandler,
		logger:     params.Logger,
		stopCtx:    stopCtx,
		cancel:     cancel,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.cancel()

			return nil
		},
	})

	return c
}

// Serve receives events until the subscription closes or the consumer stops
func (c *consumer) Serve(ctx context.Context) error {
	if c.subscriber == nil {
		c.logger.Info("No in-process subscription, event consumer idle")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.stopCtx.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	c.logger.Info("Starting session event consumer")

	for {
		event, err := c.subscriber.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, service.ErrSubscriptionClosed) {
				c.logger.Info("Session event consumer stopped")

				return nil
			}

			c.logger.Error("[Worker] Failed to receive session event", slog.Any("error", err))
			if !sleep(ctx, receiveBackoff) {
				return nil
			}

			continue
		}

		c.handle(ctx, event)
	}
}

func (c *consumer) handle(ctx context.Context, event *service.SessionEvent) {
	logger := c.logger
	if event.RequestID != "" {
		logger = logger.With(slog.String("request_id", event.RequestID))
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	}
	ctx = deliverycontext.WithLogger(ctx, logger)

	// The in-process bus acks on receive, so failures are only reported.
	if err := c.events.Handle(ctx, event); err != nil {
		logger.Error("[Worker] Failed to process session event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", handler.IsRetryable(err)),
		)
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
