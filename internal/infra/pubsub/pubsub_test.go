package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletauth/config"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.SessionEvent {
	return &service.SessionEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.EventDeviceChallengeIssued,
		SessionID:  "5b0f6a4e-8a8b-4a38-9c43-0d1b0b0b7d11",
		Version:    4,
		Action:     "issueDeviceChallenge",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),

		ApproverPushToken: "fcm-token",
	}
}

func TestMemoryBus_DeliversEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	publisher, subscriber := NewMemoryBus(time.Second, discardLogger())
	defer publisher.Close()

	event := testEvent()
	require.NoError(t, publisher.PublishSessionEvent(ctx, event))

	got, err := subscriber.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestMemoryBus_Close(t *testing.T) {
	publisher, subscriber := NewMemoryBus(0, discardLogger())

	require.NoError(t, subscriber.Close())
	require.NoError(t, publisher.Close(), "closing twice is a no-op")

	_, err := subscriber.Receive(context.Background())
	assert.True(t, errors.Is(err, service.ErrSubscriptionClosed))

	err = publisher.PublishSessionEvent(context.Background(), testEvent())
	assert.True(t, errors.Is(err, service.ErrSubscriptionClosed))
}

func TestPushEnvelope_RoundTrip(t *testing.T) {
	event := testEvent()

	envelope, err := NewPushEnvelope(event, "sub", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "req-1", envelope.Message.Attributes["request_id"])
	assert.Equal(t, string(service.EventDeviceChallengeIssued), envelope.Message.Attributes["event_type"])

	got, err := envelope.Event()
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestPushEnvelope_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not base64", "***"},
		{"not json", "aGVsbG8="},
		{"missing session id", "eyJ0eXBlIjoic2Vzc2lvbi5zdGFydGVkIn0="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var envelope PushEnvelope
			envelope.Message.Data = tt.data

			_, err := envelope.Event()
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishSessionEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	got, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, "evt-1", got.EventID)
}

func TestLocalHTTPPublisher_WorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishSessionEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name           string
		pubsub         *config.PubSubConfig
		wantErr        bool
		wantSubscriber bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "memory", pubsub: &config.PubSubConfig{Provider: "memory"}, wantSubscriber: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			result, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, result.Publisher)
			assert.Equal(t, tt.wantSubscriber, result.Subscriber != nil)

			lc.RequireStart()
			lc.RequireStop()
		})
	}
}
