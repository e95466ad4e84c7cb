package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"walletauth/config"
	"walletauth/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/p/messages/1", nil
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	err := svc.SendSingleNotification(context.Background(), "token-1", "New sign-in", "Approve?", map[string]string{"session_id": "s"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "token-1", msg.Token)
	assert.Equal(t, "New sign-in", msg.Notification.Title)
	assert.Equal(t, "Approve?", msg.Notification.Body)
	assert.Equal(t, "s", msg.Data["session_id"])
}

func TestFirebaseService_SendSingleNotification_Errors(t *testing.T) {
	client := &fakeMessagingClient{err: errors.New("unavailable")}
	svc := &firebaseService{client: client}

	err := svc.SendSingleNotification(context.Background(), "", "t", "b", nil)
	assert.ErrorContains(t, err, "device token is required")
	assert.Empty(t, client.sent)

	err = svc.SendSingleNotification(context.Background(), "token", "t", "b", nil)
	assert.ErrorContains(t, err, "failed to send notification")
}

func TestNewNotificationService_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for name, cfg := range map[string]*config.Config{
		"no firebase block":   {},
		"no credentials path": {Firebase: &config.FirebaseConfig{ProjectID: "p"}},
	} {
		t.Run(name, func(t *testing.T) {
			notifier, err := NewNotificationService(Params{Ctx: context.Background(), Config: cfg, Logger: logger})
			require.NoError(t, err)
			assert.Nil(t, notifier)
		})
	}
}
