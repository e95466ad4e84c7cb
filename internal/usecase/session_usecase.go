// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"encoding/json"

	"walletauth/internal/domain/entity"
	"walletauth/internal/domain/service"

	"github.com/google/uuid"
)

// StartSessionInput opens a new auth session
type StartSessionInput struct {
	FirstLogin bool
	Metadata   entity.ProductAuthMetadata
}

// ExchangeLoginResultInput resolves the exchange login. On failure Code is
// the wire code returned by the exchange, if any.
type ExchangeLoginResultInput struct {
	Success bool
	JWT     string
	Code    *int
	Message string
}

// DeviceChallengeInput describes a new-device verification. ApproverPushToken,
// when set, is used to notify the approving device.
type DeviceChallengeInput struct {
	Requester            *entity.DeviceInfo
	Approver             *entity.DeviceInfo
	ConfirmationRequired *bool
	ApproverPushToken    string
}

// BridgeMessageInput carries one message from the companion app, either as
// plain JSON or sealed to the session's pairing key.
type BridgeMessageInput struct {
	Raw    json.RawMessage
	Sealed []byte
}

// AccountFlagsInput updates registration and recovery flags. Nil fields are left unchanged.
type AccountFlagsInput struct {
	RegisterEmail *string
	KYCReset      *bool
	ResetAccount  *bool
}

// PairingResult is returned when a mobile pairing channel is opened
type PairingResult struct {
	Session *entity.AuthSession
	QRData  *service.PairingQRData
	QRCode  []byte
}

// SessionUsecase is the single writer of auth sessions. Every mutating call
// returns the snapshot it produced.
type SessionUsecase interface {
	StartSession(ctx context.Context, input *StartSessionInput) (*entity.AuthSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)
	EndSession(ctx context.Context, id uuid.UUID) error
	ResetSession(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)

	SetLoginStep(ctx context.Context, id uuid.UUID, step entity.LoginStep) (*entity.AuthSession, error)
	SetRecoverStep(ctx context.Context, id uuid.UUID, step entity.RecoverStep) (*entity.AuthSession, error)

	// Generic sub-result transitions
	BeginOperation(ctx context.Context, id uuid.UUID, op entity.Operation) (*entity.AuthSession, error)
	FailOperation(ctx context.Context, id uuid.UUID, op entity.Operation, reason string) (*entity.AuthSession, error)
	SucceedOperation(ctx context.Context, id uuid.UUID, op entity.Operation, payload json.RawMessage) (*entity.AuthSession, error)
	ResetOperation(ctx context.Context, id uuid.UUID, op entity.Operation) (*entity.AuthSession, error)

	BeginLogin(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)
	CompleteLogin(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)
	FailLogin(ctx context.Context, id uuid.UUID, loginErr entity.LoginError) (*entity.AuthSession, error)
	RecordExchangeLoginResult(ctx context.Context, id uuid.UUID, input *ExchangeLoginResultInput) (*entity.AuthSession, error)

	ApplyMagicLink(ctx context.Context, id uuid.UUID, encoded string) (*entity.AuthSession, error)
	IssueDeviceChallenge(ctx context.Context, id uuid.UUID, input *DeviceChallengeInput) (*entity.AuthSession, error)
	ResolveDeviceChallenge(ctx context.Context, id uuid.UUID, approved bool, reason string) (*entity.AuthSession, error)

	SetAccountUnificationFlow(ctx context.Context, id uuid.UUID, flow entity.AccountUnificationFlow) (*entity.AuthSession, error)
	ClearAccountUnificationFlow(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)

	// Mobile pairing
	StartMobilePairing(ctx context.Context, id uuid.UUID) (*PairingResult, error)
	HandleBridgeMessage(ctx context.Context, id uuid.UUID, input *BridgeMessageInput) (*entity.AuthSession, error)

	SetUserGeoData(ctx context.Context, id uuid.UUID, geo *entity.UserGeoData) (*entity.AuthSession, error)
	UpdateAccountFlags(ctx context.Context, id uuid.UUID, input *AccountFlagsInput) (*entity.AuthSession, error)

	// CleanupExpiredSessions removes expired sessions and returns how many were removed
	CleanupExpiredSessions(ctx context.Context) (int, error)
}
