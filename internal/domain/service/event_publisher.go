package service

import (
	"context"
	"time"

	"walletauth/internal/domain/entity"
	"walletauth/internal/errors"
)

// SessionEventType names what happened to a session.
type SessionEventType string

const (
	EventSessionStarted         SessionEventType = "session.started"
	EventSessionUpdated         SessionEventType = "session.updated"
	EventSessionAuthenticated   SessionEventType = "session.authenticated"
	EventDeviceChallengeIssued  SessionEventType = "session.device_challenge_issued"
	EventDeviceChallengeSettled SessionEventType = "session.device_challenge_settled"
	EventPairingStarted         SessionEventType = "session.pairing_started"
	EventSessionReset           SessionEventType = "session.reset"
	EventSessionEnded           SessionEventType = "session.ended"
)

// SessionEvent is emitted after every committed session change
type SessionEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       SessionEventType `json:"type"`
	SessionID  string           `json:"session_id"`
	Version    int64            `json:"version"`
	Action     string           `json:"action"`
	OccurredAt time.Time        `json:"occurred_at"`

	// Set for device challenge events only
	ApproverPushToken string             `json:"approver_push_token,omitempty"`
	Requester         *entity.DeviceInfo `json:"requester,omitempty"`
	CrossCountry      bool               `json:"cross_country,omitempty"`
	Approved          *bool              `json:"approved,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSessionEvent publishes a session event for async processing
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// EventSubscriber pulls session events from an in-process queue
type EventSubscriber interface {
	// Receive blocks until the next event arrives or ctx is done
	Receive(ctx context.Context) (*SessionEvent, error)

	// Close releases any resources held by the subscriber
	Close() error
}

// ErrSubscriptionClosed is returned by Receive once the subscriber is closed
var ErrSubscriptionClosed = errors.New("event subscription closed")
