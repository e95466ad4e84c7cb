package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"walletauth/config"
	"walletauth/internal/delivery/worker/handler"
	"walletauth/internal/domain/service"
	mockSvc "walletauth/internal/mocks/service"
	mockUsecase "walletauth/internal/mocks/usecase"
	"walletauth/internal/infra/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveAsync(ctx context.Context, serve func(context.Context) error) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx)
	}()

	return done
}

func TestConsumer_DeliversChallengeToNotifier(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, subscriber := pubsub.NewMemoryBus(time.Second, testLogger())

	sent := make(chan string, 1)
	notifier := mockSvc.NewMockNotificationService(t)
	notifier.EXPECT().
		SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, token, _, _ string, _ map[string]string) error {
			sent <- token

			return nil
		}).
		Once()

	c := NewConsumer(ConsumerParams{
		Lc:           lc,
		Logger:       testLogger(),
		Subscriber:   subscriber,
		EventHandler: handler.NewEventHandler(handler.EventHandlerParams{Logger: testLogger(), Notifier: notifier}),
	})
	lc.RequireStart()

	done := serveAsync(context.Background(), c.Serve)

	ctx := context.Background()
	require.NoError(t, publisher.PublishSessionEvent(ctx, &service.SessionEvent{
		Type: service.EventSessionUpdated, SessionID: "s-1",
	}))
	require.NoError(t, publisher.PublishSessionEvent(ctx, &service.SessionEvent{
		Type: service.EventDeviceChallengeIssued, SessionID: "s-1", ApproverPushToken: "fcm-approver",
	}))

	select {
	case token := <-sent:
		assert.Equal(t, "fcm-approver", token)
	case <-time.After(2 * time.Second):
		t.Fatal("device challenge was not delivered")
	}

	lc.RequireStop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
	_ = publisher.Close()
}

func TestConsumer_StopsWhenSubscriptionCloses(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, subscriber := pubsub.NewMemoryBus(time.Second, testLogger())

	c := NewConsumer(ConsumerParams{
		Lc:           lc,
		Logger:       testLogger(),
		Subscriber:   subscriber,
		EventHandler: handler.NewEventHandler(handler.EventHandlerParams{Logger: testLogger()}),
	})

	done := serveAsync(context.Background(), c.Serve)
	require.NoError(t, publisher.Close())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestConsumer_IdleWithoutSubscriber(t *testing.T) {
	c := NewConsumer(ConsumerParams{
		Lc:           fxtest.NewLifecycle(t),
		Logger:       testLogger(),
		EventHandler: handler.NewEventHandler(handler.EventHandlerParams{Logger: testLogger()}),
	})

	assert.NoError(t, c.Serve(context.Background()))
}

func TestJanitor_SweepsUntilStopped(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{}
	cfg.Session.CleanupInterval = 10 * time.Millisecond

	var sweeps atomic.Int32
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		CleanupExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int, error) {
			sweeps.Add(1)

			return 2, nil
		})

	j := NewJanitor(JanitorParams{Lc: lc, Config: cfg, Logger: testLogger(), SessionUC: sessionUC})
	lc.RequireStart()

	done := serveAsync(context.Background(), j.Serve)
	require.Eventually(t, func() bool { return sweeps.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	lc.RequireStop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestJanitor_DisabledInterval(t *testing.T) {
	j := NewJanitor(JanitorParams{
		Lc:        fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    testLogger(),
		SessionUC: mockUsecase.NewMockSessionUsecase(t),
	})

	assert.NoError(t, j.Serve(context.Background()))
}

func TestWorkerServer_Routes(t *testing.T) {
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:       &config.Config{},
		Logger:       testLogger(),
		EventHandler: handler.NewEventHandler(handler.EventHandlerParams{Logger: testLogger()}),
	})
	e := newEcho(&config.Config{}, testLogger(), pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/push", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
