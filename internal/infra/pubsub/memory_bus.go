package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"walletauth/internal/domain/lifecycle"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	cdkpubsub "gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

const defaultAckDeadline = 30 * time.Second

// memoryBus is an in-process topic with a single subscription. It serves
// development setups and tests where the worker runs inside the API process.
type memoryBus struct {
	topic  *cdkpubsub.Topic
	sub    *cdkpubsub.Subscription
	logger *slog.Logger
	closed atomic.Bool
}

// NewMemoryBus creates a connected publisher and subscriber pair.
func NewMemoryBus(ackDeadline time.Duration, logger *slog.Logger) (service.EventPublisher, service.EventSubscriber) {
	if ackDeadline <= 0 {
		ackDeadline = defaultAckDeadline
	}

	topic := mempubsub.NewTopic()
	bus := &memoryBus{
		topic:  topic,
		sub:    mempubsub.NewSubscription(topic, ackDeadline),
		logger: logger,
	}

	return &memoryPublisher{bus: bus}, &memorySubscriber{bus: bus}
}

type memoryPublisher struct {
	bus *memoryBus
}

// PublishSessionEvent sends the event to the in-process topic
func (p *memoryPublisher) PublishSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	if p.bus.closed.Load() {
		return errors.WithStack(service.ErrSubscriptionClosed)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(p.bus.topic.Send(ctx, &cdkpubsub.Message{
		Body:     data,
		Metadata: eventAttributes(event),
	}))
}

// Close shuts the topic and the subscription down
func (p *memoryPublisher) Close() error {
	return p.bus.close()
}

type memorySubscriber struct {
	bus *memoryBus
}

// Receive returns the next event. Messages that cannot be decoded are acked
// and reported so they are not redelivered forever.
func (s *memorySubscriber) Receive(ctx context.Context) (*service.SessionEvent, error) {
	if s.bus.closed.Load() {
		return nil, errors.WithStack(service.ErrSubscriptionClosed)
	}

	msg, err := s.bus.sub.Receive(ctx)
	if err != nil {
		if s.bus.closed.Load() {
			return nil, errors.WithStack(service.ErrSubscriptionClosed)
		}

		return nil, errors.WithStack(err)
	}
	defer msg.Ack()

	event, err := decodeEvent(msg.Body)
	if err != nil {
		return nil, err
	}
	if event.RequestID == "" {
		event.RequestID = msg.Metadata["request_id"]
	}

	return event, nil
}

func (s *memorySubscriber) Close() error {
	return s.bus.close()
}

func (b *memoryBus) close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	subErr := b.sub.Shutdown(ctx)
	topicErr := b.topic.Shutdown(ctx)
	b.logger.Info("In-process event bus closed")

	return errors.WithStack(errors.Join(subErr, topicErr))
}
