package pubsub

import (
	"context"
	"log/slog"

	"walletauth/config"
	deliverycontext "walletauth/internal/delivery/context"
	"walletauth/internal/domain/constants"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// PublisherResult exposes the publisher and, for the in-process provider,
// the matching subscriber. Subscriber is nil for every other provider.
type PublisherResult struct {
	fx.Out

	Publisher  service.EventPublisher
	Subscriber service.EventSubscriber
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (PublisherResult, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return PublisherResult{Publisher: &noopPublisher{logger: logger}}, nil
	}

	var result PublisherResult

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return result, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		result.Publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderMemory:
		logger.Info("Using in-process event bus")

		result.Publisher, result.Subscriber = NewMemoryBus(cfg.AckDeadline, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return result, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return result, errors.New("topic ID is required for google provider")
		}

		publisher, err := NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return result, err
		}
		result.Publisher = publisher

	default:
		return result, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher := result.Publisher
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return result, nil
}
