package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"walletauth/internal/domain/service"
	"walletauth/internal/errors"
)

// PushEnvelope is the body Google Pub/Sub sends to push endpoints. The local
// publisher produces the same shape so the worker handles both alike.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are attached to every message for filtering and tracing.
func eventAttributes(event *service.SessionEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"session_id": event.SessionID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushEnvelope wraps an event the way a push subscription delivers it.
func NewPushEnvelope(event *service.SessionEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

// Event decodes the session event carried by the envelope.
func (e *PushEnvelope) Event() (*service.SessionEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	return decodeEvent(data)
}

func decodeEvent(data []byte) (*service.SessionEvent, error) {
	var event service.SessionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode session event")
	}
	if event.SessionID == "" || event.Type == "" {
		return nil, errors.New("session event without session id or type")
	}

	return &event, nil
}
