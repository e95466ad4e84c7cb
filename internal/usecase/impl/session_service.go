// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"walletauth/config"
	deliverycontext "walletauth/internal/delivery/context"
	"walletauth/internal/domain/entity"
	domainerrors "walletauth/internal/domain/errors"
	"walletauth/internal/domain/repository"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"
	"walletauth/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for the session service, injected by Fx
type SessionServiceParams struct {
	fx.In

	Repo          repository.SessionRepository
	Publisher     service.EventPublisher
	QRCode        service.QRCodeService
	SecureChannel service.SecureChannel
	Verifier      service.ExchangeTokenVerifier `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	repo          repository.SessionRepository
	publisher     service.EventPublisher
	qrcode        service.QRCodeService
	secureChannel service.SecureChannel
	verifier      service.ExchangeTokenVerifier
	ttl           time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		repo:          params.Repo,
		publisher:     params.Publisher,
		qrcode:        params.QRCode,
		secureChannel: params.SecureChannel,
		verifier:      params.Verifier,
		ttl:           params.Config.Session.TTL,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// bindSession tags store queries, published events and logs with the session.
func bindSession(ctx context.Context, id uuid.UUID) context.Context {
	return deliverycontext.WithSessionID(ctx, id.String())
}

// update runs fn against the latest snapshot and publishes the outcome.
func (srv *sessionService) update(
	ctx context.Context,
	id uuid.UUID,
	action string,
	eventType service.SessionEventType,
	fn repository.UpdateFunc,
) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)
	session, err := srv.repo.Update(ctx, id, fn)
	if err != nil {
		srv.log(ctx).Debug("Session update rejected",
			slog.String("action", action),
			slog.Any("error", err),
		)

		return nil, toAppError(err)
	}

	srv.publish(ctx, srv.newEvent(ctx, session, eventType, action))

	return session, nil
}

func (srv *sessionService) newEvent(ctx context.Context, session *entity.AuthSession, eventType service.SessionEventType, action string) *service.SessionEvent {
	return &service.SessionEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		SessionID:  session.ID.String(),
		Version:    session.Version,
		Action:     action,
		OccurredAt: srv.now(),
	}
}

// publish never fails the caller; the snapshot is already committed.
func (srv *sessionService) publish(ctx context.Context, event *service.SessionEvent) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishSessionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish session event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// StartSession creates a fresh session for the given product
func (srv *sessionService) StartSession(ctx context.Context, input *usecase.StartSessionInput) (*entity.AuthSession, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("input is required"))
	}

	session, err := entity.NewAuthSession(uuid.New(), input.FirstLogin, input.Metadata, srv.now(), srv.ttl)
	if err != nil {
		return nil, toAppError(err)
	}

	ctx = bindSession(ctx, session.ID)
	if err := srv.repo.Create(ctx, session); err != nil {
		return nil, toAppError(errors.Wrap(err, "failed to create session"))
	}

	srv.log(ctx).Info("Auth session started",
		slog.String("product", session.ProductAuthMetadata.Product.String()),
		slog.String("platform", session.ProductAuthMetadata.Platform.String()),
	)
	srv.publish(ctx, srv.newEvent(ctx, session, service.EventSessionStarted, "startSession"))

	return session, nil
}

// GetSession returns the latest snapshot
func (srv *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)
	session, err := srv.repo.Get(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}

	return session, nil
}

// EndSession deletes the session
func (srv *sessionService) EndSession(ctx context.Context, id uuid.UUID) error {
	ctx = bindSession(ctx, id)
	if err := srv.repo.Delete(ctx, id); err != nil {
		return toAppError(err)
	}

	srv.log(ctx).Info("Auth session ended")
	srv.publish(ctx, &service.SessionEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       service.EventSessionEnded,
		SessionID:  id.String(),
		Action:     "endSession",
		OccurredAt: srv.now(),
	})

	return nil
}

// ResetSession clears everything but identity, firstLogin and product metadata
func (srv *sessionService) ResetSession(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "resetSession", service.EventSessionReset, func(s *entity.AuthSession) error {
		s.ResetState()

		return nil
	})
}

func (srv *sessionService) SetLoginStep(ctx context.Context, id uuid.UUID, step entity.LoginStep) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "setLoginStep", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.SetLoginStep(step)
	})
}

func (srv *sessionService) SetRecoverStep(ctx context.Context, id uuid.UUID, step entity.RecoverStep) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "setRecoverStep", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.SetRecoverStep(step)
	})
}

func (srv *sessionService) BeginOperation(ctx context.Context, id uuid.UUID, op entity.Operation) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "begin:"+string(op), service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.Begin(op)
	})
}

func (srv *sessionService) FailOperation(ctx context.Context, id uuid.UUID, op entity.Operation, reason string) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "fail:"+string(op), service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.Fail(op, reason)
	})
}

func (srv *sessionService) SucceedOperation(ctx context.Context, id uuid.UUID, op entity.Operation, payload json.RawMessage) (*entity.AuthSession, error) {
	eventType := service.EventSessionUpdated
	if op == entity.OpLogin {
		eventType = service.EventSessionAuthenticated
	}

	return srv.update(ctx, id, "succeed:"+string(op), eventType, func(s *entity.AuthSession) error {
		return s.Succeed(op, payload)
	})
}

func (srv *sessionService) ResetOperation(ctx context.Context, id uuid.UUID, op entity.Operation) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "reset:"+string(op), service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.Reset(op)
	})
}

func (srv *sessionService) BeginLogin(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "beginLogin", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.BeginLogin()
	})
}

// CompleteLogin authenticates the session
func (srv *sessionService) CompleteLogin(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)
	session, err := srv.update(ctx, id, "completeLogin", service.EventSessionAuthenticated, func(s *entity.AuthSession) error {
		return s.CompleteLogin()
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Auth session authenticated")

	return session, nil
}

func (srv *sessionService) FailLogin(ctx context.Context, id uuid.UUID, loginErr entity.LoginError) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "failLogin", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.FailLogin(loginErr)
	})
}

// RecordExchangeLoginResult resolves the in-flight exchange login
func (srv *sessionService) RecordExchangeLoginResult(ctx context.Context, id uuid.UUID, input *usecase.ExchangeLoginResultInput) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("input is required"))
	}

	return srv.update(ctx, id, "exchangeLoginResult", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		if input.Success {
			return s.RecordExchangeLoginSuccess(input.JWT)
		}

		failure, err := s.RecordExchangeLoginFailure(input.Code, input.Message)
		if err != nil {
			return err
		}
		if _, known := failure.Known(); !known && input.Code != nil {
			srv.log(ctx).Warn("Unrecognized exchange error code",
				slog.Int("code", *input.Code),
			)
		}

		return nil
	})
}

// ApplyMagicLink stores a decoded magic link. The link identifies the account
// by wallet GUID, email, or both; a link with neither still applies.
func (srv *sessionService) ApplyMagicLink(ctx context.Context, id uuid.UUID, encoded string) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)

	var data *entity.MagicLinkData
	session, err := srv.update(ctx, id, "applyMagicLink", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		var err error
		data, err = s.ApplyMagicLink(encoded)

		return err
	})
	if err != nil {
		return nil, err
	}

	_, hasGUID := data.GUID()
	_, hasEmail := data.Email()
	srv.log(ctx).Info("Magic link applied",
		slog.Bool("wallet_guid", hasGUID),
		slog.Bool("email", hasEmail),
	)

	return session, nil
}

// IssueDeviceChallenge records a pending device verification. The published
// event carries the approver push token so the worker can notify the device.
func (srv *sessionService) IssueDeviceChallenge(ctx context.Context, id uuid.UUID, input *usecase.DeviceChallengeInput) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("input is required"))
	}

	session, err := srv.repo.Update(ctx, id, func(s *entity.AuthSession) error {
		return s.IssueDeviceChallenge(entity.DeviceMismatchChallenge{
			Approver:             input.Approver,
			ConfirmationRequired: input.ConfirmationRequired,
			Requester:            input.Requester,
			IssuedAt:             srv.now(),
		})
	})
	if err != nil {
		return nil, toAppError(err)
	}

	event := srv.newEvent(ctx, session, service.EventDeviceChallengeIssued, "issueDeviceChallenge")
	event.ApproverPushToken = input.ApproverPushToken
	event.Requester = input.Requester
	event.CrossCountry = session.DeviceChallenge.CrossCountry()
	srv.publish(ctx, event)

	srv.log(ctx).Info("Device challenge issued",
		slog.Bool("push", input.ApproverPushToken != ""),
	)

	return session, nil
}

// ResolveDeviceChallenge settles the pending challenge
func (srv *sessionService) ResolveDeviceChallenge(ctx context.Context, id uuid.UUID, approved bool, reason string) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)
	session, err := srv.repo.Update(ctx, id, func(s *entity.AuthSession) error {
		return s.ResolveDeviceChallenge(approved, reason)
	})
	if err != nil {
		return nil, toAppError(err)
	}

	event := srv.newEvent(ctx, session, service.EventDeviceChallengeSettled, "resolveDeviceChallenge")
	event.Approved = &approved
	srv.publish(ctx, event)

	return session, nil
}

func (srv *sessionService) SetAccountUnificationFlow(ctx context.Context, id uuid.UUID, flow entity.AccountUnificationFlow) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "setAccountUnificationFlow", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.SetAccountUnificationFlow(flow)
	})
}

func (srv *sessionService) ClearAccountUnificationFlow(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "clearAccountUnificationFlow", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		s.ClearAccountUnificationFlow()

		return nil
	})
}

// StartMobilePairing opens a new secure channel and renders its QR code.
// A previous channel, if any, is replaced.
func (srv *sessionService) StartMobilePairing(ctx context.Context, id uuid.UUID) (*usecase.PairingResult, error) {
	ctx = bindSession(ctx, id)
	publicKey, privateKey, err := srv.secureChannel.NewKeyPair()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pairing key pair")
	}

	channel := &entity.PairingChannel{
		ChannelID:  uuid.New(),
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		CreatedAt:  srv.now(),
	}
	qrData := &service.PairingQRData{
		SessionID: id,
		ChannelID: channel.ChannelID,
		PublicKey: base64.StdEncoding.EncodeToString(publicKey),
	}

	png, err := srv.qrcode.GeneratePairingQR(qrData)
	if err != nil {
		srv.log(ctx).Error("Failed to generate pairing QR code",
			slog.Any("error", err),
		)

		return nil, errors.WithStack(domainerrors.ErrQRCodeGenerationFailed)
	}

	session, err := srv.update(ctx, id, "startMobilePairing", service.EventPairingStarted, func(s *entity.AuthSession) error {
		if s.IsAuthenticated {
			return entity.ErrAlreadyAuthenticated
		}
		s.AttachPairing(channel)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.PairingResult{
		Session: session,
		QRData:  qrData,
		QRCode:  png,
	}, nil
}

// HandleBridgeMessage folds a companion app message into the session. Sealed
// messages are opened with the session's pairing key; exchange tokens are
// verified before they are stored.
func (srv *sessionService) HandleBridgeMessage(ctx context.Context, id uuid.UUID, input *usecase.BridgeMessageInput) (*entity.AuthSession, error) {
	ctx = bindSession(ctx, id)
	if input == nil || (len(input.Raw) == 0 && len(input.Sealed) == 0) {
		return nil, errors.WithStack(domainerrors.ErrBridgeMessageInvalid.WithDetails("message is empty"))
	}

	return srv.update(ctx, id, "bridgeMessage", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		raw := []byte(input.Raw)
		if len(input.Sealed) > 0 {
			if s.Pairing == nil {
				return errors.WithStack(domainerrors.ErrPairingNotStarted)
			}

			opened, err := srv.secureChannel.Open(input.Sealed, s.Pairing.PublicKey, s.Pairing.PrivateKey)
			if err != nil {
				return errors.WithStack(domainerrors.ErrBridgeMessageInvalid.WithDetails("sealed message could not be opened"))
			}
			raw = opened
		}

		msg, err := entity.ClassifyBridgeMessage(raw, s.BridgeFlow())
		if err != nil {
			return err
		}

		if msg.Kind == entity.BridgeExchangeLinkResult && msg.Succeeded() && srv.verifier != nil {
			if _, err := srv.verifier.Verify(msg.ExchangeJWT); err != nil {
				srv.log(ctx).Warn("Rejected exchange token from bridge",
					slog.Any("error", err),
				)

				return errors.WithStack(domainerrors.ErrExchangeTokenInvalid)
			}
		}

		srv.log(ctx).Debug("Bridge message received",
			slog.String("message", msg.String()),
		)

		return s.ApplyBridgeMessage(msg)
	})
}

func (srv *sessionService) SetUserGeoData(ctx context.Context, id uuid.UUID, geo *entity.UserGeoData) (*entity.AuthSession, error) {
	return srv.update(ctx, id, "setUserGeoData", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		return s.SetUserGeoData(geo)
	})
}

func (srv *sessionService) UpdateAccountFlags(ctx context.Context, id uuid.UUID, input *usecase.AccountFlagsInput) (*entity.AuthSession, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("input is required"))
	}

	return srv.update(ctx, id, "updateAccountFlags", service.EventSessionUpdated, func(s *entity.AuthSession) error {
		if input.RegisterEmail != nil {
			s.SetRegisterEmail(*input.RegisterEmail)
		}
		if input.KYCReset != nil {
			s.SetKYCReset(*input.KYCReset)
		}
		if input.ResetAccount != nil {
			s.SetResetAccount(*input.ResetAccount)
		}

		return nil
	})
}

// CleanupExpiredSessions removes expired sessions and returns how many were removed
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int, error) {
	removed, err := srv.repo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired auth sessions removed", slog.Int("count", removed))
	}

	return removed, nil
}
