package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletauth/config"
	"walletauth/internal/domain/entity"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"
	mockSvc "walletauth/internal/mocks/service"
	"walletauth/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func challengeEvent(token string) *service.SessionEvent {
	return &service.SessionEvent{
		EventID:           "evt-1",
		Type:              service.EventDeviceChallengeIssued,
		SessionID:         "3f0c2b1e-7a49-4c4e-9d59-1b7d6f0e2a11",
		Version:           4,
		Action:            "issue_device_challenge",
		OccurredAt:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		ApproverPushToken: token,
		Requester:         &entity.DeviceInfo{Browser: "Firefox", CountryCode: "US", IPAddress: "10.0.0.1"},
	}
}

func TestEventHandler_Handle(t *testing.T) {
	tests := []struct {
		name          string
		event         *service.SessionEvent
		setupMocks    func(n *mockSvc.MockNotificationService)
		wantErr       bool
		wantRetryable bool
	}{
		{
			name:  "device challenge notifies approver",
			event: challengeEvent("fcm-approver"),
			setupMocks: func(n *mockSvc.MockNotificationService) {
				n.EXPECT().
					SendSingleNotification(mock.Anything, "fcm-approver", deviceApprovalTitle, deviceApprovalBody,
						mock.MatchedBy(func(data map[string]string) bool {
							return data["session_id"] == "3f0c2b1e-7a49-4c4e-9d59-1b7d6f0e2a11" &&
								data["requester_country"] == "US" &&
								data["cross_country"] == "false"
						})).
					Return(nil).
					Once()
			},
		},
		{
			name: "cross country challenge is flagged in push data",
			event: func() *service.SessionEvent {
				event := challengeEvent("fcm-approver")
				event.CrossCountry = true

				return event
			}(),
			setupMocks: func(n *mockSvc.MockNotificationService) {
				n.EXPECT().
					SendSingleNotification(mock.Anything, "fcm-approver", deviceApprovalTitle, deviceApprovalBody,
						mock.MatchedBy(func(data map[string]string) bool {
							return data["cross_country"] == "true"
						})).
					Return(nil).
					Once()
			},
		},
		{
			name:       "device challenge without token is skipped",
			event:      challengeEvent(""),
			setupMocks: func(n *mockSvc.MockNotificationService) {},
		},
		{
			name:  "send failure is retryable",
			event: challengeEvent("fcm-approver"),
			setupMocks: func(n *mockSvc.MockNotificationService) {
				n.EXPECT().
					SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("unavailable")).
					Once()
			},
			wantErr:       true,
			wantRetryable: true,
		},
		{
			name:       "other events are observed only",
			event:      &service.SessionEvent{Type: service.EventSessionUpdated, SessionID: "s-1"},
			setupMocks: func(n *mockSvc.MockNotificationService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockSvc.NewMockNotificationService(t)
			tt.setupMocks(notifier)

			h := NewEventHandler(EventHandlerParams{Logger: testLogger(), Notifier: notifier})
			err := h.Handle(context.Background(), tt.event)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantRetryable, IsRetryable(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventHandler_NilNotifier(t *testing.T) {
	h := NewEventHandler(EventHandlerParams{Logger: testLogger()})

	assert.NoError(t, h.Handle(context.Background(), challengeEvent("fcm-approver")))
}

func pushBody(t *testing.T, event *service.SessionEvent) []byte {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, "projects/p/subscriptions/s", time.Now())
	require.NoError(t, err)
	b, err := json.Marshal(envelope)
	require.NoError(t, err)

	return b
}

func newPushHandler(t *testing.T, cfg *config.Config, notifier service.NotificationService) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       testLogger(),
		EventHandler: NewEventHandler(EventHandlerParams{Logger: testLogger(), Notifier: notifier}),
	})
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		body       func(t *testing.T) []byte
		setupMocks func(n *mockSvc.MockNotificationService)
		wantStatus int
	}{
		{
			name: "delivers device challenge",
			body: func(t *testing.T) []byte { return pushBody(t, challengeEvent("fcm-approver")) },
			setupMocks: func(n *mockSvc.MockNotificationService) {
				n.EXPECT().
					SendSingleNotification(mock.Anything, "fcm-approver", mock.Anything, mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "retryable failure asks for redelivery",
			body: func(t *testing.T) []byte { return pushBody(t, challengeEvent("fcm-approver")) },
			setupMocks: func(n *mockSvc.MockNotificationService) {
				n.EXPECT().
					SendSingleNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("unavailable")).
					Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed body",
			body:       func(t *testing.T) []byte { return []byte(`{"message":`) },
			setupMocks: func(n *mockSvc.MockNotificationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "undecodable data",
			body:       func(t *testing.T) []byte { return []byte(`{"message":{"data":"!!"}}`) },
			setupMocks: func(n *mockSvc.MockNotificationService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockSvc.NewMockNotificationService(t)
			tt.setupMocks(notifier)

			rec := servePush(newPushHandler(t, &config.Config{}, notifier), tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	tests := []struct {
		name       string
		header     http.Header
		validate   tokenValidator
		wantStatus int
	}{
		{
			name:       "missing header",
			validate:   func(context.Context, string, string) (*idtoken.Payload, error) { return nil, nil },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: http.Header{"Authorization": {"Bearer bad"}},
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return nil, errors.New("bad signature")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "wrong issuer",
			header: http.Header{"Authorization": {"Bearer tok"}},
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "evil.example.com"}, nil
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: http.Header{"Authorization": {"Bearer tok"}},
			validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				if token != "tok" || audience != "http://example.com/push" {
					return nil, errors.New("unexpected token or audience")
				}

				return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newPushHandler(t, cfg, nil)
			require.True(t, h.verifyPushAuth)
			h.validate = tt.validate

			body := pushBody(t, &service.SessionEvent{Type: service.EventSessionUpdated, SessionID: "s-1"})
			rec := servePush(h, body, tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	event := &service.SessionEvent{Type: service.EventSessionUpdated, SessionID: "s-1", RequestID: "from-event"}
	envelope, err := pubsub.NewPushEnvelope(event, "sub", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "from-event", extractRequestID(context.Background(), envelope, event))

	envelope.Message.Attributes["request_id"] = "from-attributes"
	assert.Equal(t, "from-attributes", extractRequestID(context.Background(), envelope, event))

	delete(envelope.Message.Attributes, "request_id")
	event.RequestID = ""
	assert.NotEmpty(t, extractRequestID(context.Background(), envelope, event))
}
