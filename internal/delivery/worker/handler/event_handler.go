package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "walletauth/internal/delivery/context"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"

	"go.uber.org/fx"
)

const (
	deviceApprovalTitle = "Approve new login"
	deviceApprovalBody  = "A login attempt needs your approval"
)

// retryableError wraps an error to indicate it should trigger a redelivery
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether the event should be delivered again
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	Notifier service.NotificationService `optional:"true"`
}

// EventHandler reacts to committed session changes. It is shared by the push
// endpoint and the in-process consumer.
type EventHandler struct {
	logger   *slog.Logger
	notifier service.NotificationService
}

// NewEventHandler creates a new EventHandler. A nil notifier disables pushes.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger:   params.Logger,
		notifier: params.Notifier,
	}
}

// Handle processes one session event
func (h *EventHandler) Handle(ctx context.Context, event *service.SessionEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("event_type", string(event.Type)),
		slog.String("session_id", event.SessionID),
		slog.Int64("version", event.Version),
	)

	switch event.Type {
	case service.EventDeviceChallengeIssued:
		return h.notifyApprover(ctx, logger, event)
	default:
		logger.Debug("[Worker] Session event observed", slog.String("action", event.Action))

		return nil
	}
}

func (h *EventHandler) notifyApprover(ctx context.Context, logger *slog.Logger, event *service.SessionEvent) error {
	if event.ApproverPushToken == "" {
		logger.Info("[Worker] Device challenge without approver token, nothing to notify")

		return nil
	}
	if h.notifier == nil {
		logger.Warn("[Worker] Push notifications disabled, device challenge not delivered")

		return nil
	}

	data := map[string]string{
		"type":          string(event.Type),
		"session_id":    event.SessionID,
		"event_id":      event.EventID,
		"cross_country": strconv.FormatBool(event.CrossCountry),
	}
	if event.Requester != nil {
		data["requester_country"] = event.Requester.CountryCode
		data["requester_browser"] = event.Requester.Browser
		data["requester_ip"] = event.Requester.IPAddress
	}

	if err := h.notifier.SendSingleNotification(ctx, event.ApproverPushToken, deviceApprovalTitle, deviceApprovalBody, data); err != nil {
		return newRetryableError(errors.Wrap(err, "notify approver"))
	}

	logger.Info("[Worker] Device approval request sent")

	return nil
}
