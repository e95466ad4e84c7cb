package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"walletauth/internal/delivery/api/response"
	"walletauth/internal/delivery/api/validator"
	deliverycontext "walletauth/internal/delivery/context"
	"walletauth/internal/domain/entity"
	domainerrors "walletauth/internal/domain/errors"
	"walletauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the auth session state machine over HTTP
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// StartSessionRequest represents the request body for opening a session
type StartSessionRequest struct {
	FirstLogin bool   `json:"firstLogin"`
	Platform   string `json:"platform" validate:"required"`
	Product    string `json:"product" validate:"required"`
	Redirect   string `json:"redirect" validate:"omitempty,uri"`
}

// StepRequest sets a wizard step
type StepRequest struct {
	Step string `json:"step" validate:"required"`
}

// FailOperationRequest records an operation failure
type FailOperationRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// SucceedOperationRequest records an operation success
type SucceedOperationRequest struct {
	Payload json.RawMessage `json:"payload"`
}

// FailLoginRequest carries the wallet login error: a message, a boolean or a structured object
type FailLoginRequest struct {
	Error entity.LoginError `json:"error"`
}

// ExchangeLoginResultRequest resolves the exchange login
type ExchangeLoginResultRequest struct {
	Success bool   `json:"success"`
	JWT     string `json:"jwt" validate:"required_if=Success true"`
	Code    *int   `json:"code"`
	Message string `json:"message"`
}

// MagicLinkRequest carries an encoded magic link payload
type MagicLinkRequest struct {
	Encoded string `json:"encoded" validate:"required"`
}

// DeviceChallengeRequest opens a new-device verification
type DeviceChallengeRequest struct {
	Requester            *entity.DeviceInfo `json:"requester" validate:"required"`
	Approver             *entity.DeviceInfo `json:"approver" validate:"required"`
	ConfirmationRequired *bool              `json:"confirmationRequired"`
	ApproverPushToken    string             `json:"approverPushToken"`
}

// ResolveDeviceChallengeRequest settles a pending device verification
type ResolveDeviceChallengeRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

// UnificationFlowRequest selects an account unification flow
type UnificationFlowRequest struct {
	Flow string `json:"flow" validate:"required"`
}

// BridgeMessageRequest carries one companion app message. Sealed is the
// base64 encoded ciphertext; Message is used when the channel is not sealed.
type BridgeMessageRequest struct {
	Message json.RawMessage `json:"message"`
	Sealed  []byte          `json:"sealed"`
}

// GeoDataRequest sets the caller location. Location is [lon, lat].
type GeoDataRequest struct {
	IP          string     `json:"ip" validate:"omitempty,ip"`
	CountryCode string     `json:"countryCode" validate:"omitempty,iso3166_1_alpha2"`
	State       string     `json:"state"`
	Location    *orb.Point `json:"location"`
}

// AccountFlagsRequest updates registration and recovery flags
type AccountFlagsRequest struct {
	RegisterEmail *string `json:"registerEmail" validate:"omitempty,email"`
	KYCReset      *bool   `json:"kycReset"`
	ResetAccount  *bool   `json:"resetAccount"`
}

// PairingResponse is returned when a pairing channel is opened. QRCode is a base64 PNG.
type PairingResponse struct {
	Session   *entity.AuthSession `json:"session"`
	ChannelID uuid.UUID           `json:"channelId"`
	PublicKey string              `json:"publicKey"`
	QRCode    []byte              `json:"qrCode"`
}

// StartSession handles opening a new auth session
func (h *SessionHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.StartSession(c.Request().Context(), &usecase.StartSessionInput{
		FirstLogin: req.FirstLogin,
		Metadata: entity.ProductAuthMetadata{
			Platform: entity.PlatformType(req.Platform),
			Product:  entity.ProductAuthOption(req.Product),
			Redirect: req.Redirect,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// GetSession returns the current snapshot
func (h *SessionHandler) GetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	session, err := h.sessionUC.GetSession(c.Request().Context(), id)

	return respond(c, session, err)
}

// EndSession discards a session
func (h *SessionHandler) EndSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	if err := h.sessionUC.EndSession(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ResetSession returns a session to its initial state
func (h *SessionHandler) ResetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	session, err := h.sessionUC.ResetSession(c.Request().Context(), id)

	return respond(c, session, err)
}

// SetLoginStep moves the login wizard
func (h *SessionHandler) SetLoginStep(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req StepRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	step, err := entity.ParseLoginStep(req.Step)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidStep.WithDetails(err.Error()))
	}

	session, err := h.sessionUC.SetLoginStep(c.Request().Context(), id, step)

	return respond(c, session, err)
}

// SetRecoverStep moves the recovery wizard
func (h *SessionHandler) SetRecoverStep(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req StepRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	step, err := entity.ParseRecoverStep(req.Step)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidStep.WithDetails(err.Error()))
	}

	session, err := h.sessionUC.SetRecoverStep(c.Request().Context(), id, step)

	return respond(c, session, err)
}

// BeginOperation moves an operation to Loading
func (h *SessionHandler) BeginOperation(c echo.Context) error {
	id, op, ok, err := sessionOperation(c)
	if !ok {
		return err
	}

	session, err := h.sessionUC.BeginOperation(c.Request().Context(), id, op)

	return respond(c, session, err)
}

// FailOperation moves an operation to Failure
func (h *SessionHandler) FailOperation(c echo.Context) error {
	id, op, ok, err := sessionOperation(c)
	if !ok {
		return err
	}

	var req FailOperationRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.FailOperation(c.Request().Context(), id, op, req.Reason)

	return respond(c, session, err)
}

// SucceedOperation moves an operation to Success
func (h *SessionHandler) SucceedOperation(c echo.Context) error {
	id, op, ok, err := sessionOperation(c)
	if !ok {
		return err
	}

	var req SucceedOperationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operation result")
	}

	session, err := h.sessionUC.SucceedOperation(c.Request().Context(), id, op, req.Payload)

	return respond(c, session, err)
}

// ResetOperation returns an operation to NotAsked
func (h *SessionHandler) ResetOperation(c echo.Context) error {
	id, op, ok, err := sessionOperation(c)
	if !ok {
		return err
	}

	session, err := h.sessionUC.ResetOperation(c.Request().Context(), id, op)

	return respond(c, session, err)
}

// BeginLogin starts the wallet login
func (h *SessionHandler) BeginLogin(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	session, err := h.sessionUC.BeginLogin(c.Request().Context(), id)

	return respond(c, session, err)
}

// CompleteLogin authenticates the session
func (h *SessionHandler) CompleteLogin(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	session, err := h.sessionUC.CompleteLogin(c.Request().Context(), id)

	return respond(c, session, err)
}

// FailLogin records a wallet login failure
func (h *SessionHandler) FailLogin(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req FailLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login error")
	}

	session, err := h.sessionUC.FailLogin(c.Request().Context(), id, req.Error)

	return respond(c, session, err)
}

// RecordExchangeLoginResult resolves the exchange login
func (h *SessionHandler) RecordExchangeLoginResult(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req ExchangeLoginResultRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.RecordExchangeLoginResult(c.Request().Context(), id, &usecase.ExchangeLoginResultInput{
		Success: req.Success,
		JWT:     req.JWT,
		Code:    req.Code,
		Message: req.Message,
	})

	return respond(c, session, err)
}

// ApplyMagicLink decodes and stores a magic link
func (h *SessionHandler) ApplyMagicLink(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req MagicLinkRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.ApplyMagicLink(c.Request().Context(), id, req.Encoded)

	return respond(c, session, err)
}

// IssueDeviceChallenge opens a new-device verification
func (h *SessionHandler) IssueDeviceChallenge(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req DeviceChallengeRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.IssueDeviceChallenge(c.Request().Context(), id, &usecase.DeviceChallengeInput{
		Requester:            req.Requester,
		Approver:             req.Approver,
		ConfirmationRequired: req.ConfirmationRequired,
		ApproverPushToken:    req.ApproverPushToken,
	})

	return respond(c, session, err)
}

// ResolveDeviceChallenge approves or rejects the pending verification
func (h *SessionHandler) ResolveDeviceChallenge(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req ResolveDeviceChallengeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device verification result")
	}

	session, err := h.sessionUC.ResolveDeviceChallenge(c.Request().Context(), id, req.Approved, req.Reason)

	return respond(c, session, err)
}

// SetAccountUnificationFlow selects an account unification flow
func (h *SessionHandler) SetAccountUnificationFlow(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req UnificationFlowRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	flow, err := entity.ParseAccountUnificationFlow(req.Flow)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	session, err := h.sessionUC.SetAccountUnificationFlow(c.Request().Context(), id, flow)

	return respond(c, session, err)
}

// ClearAccountUnificationFlow drops the active unification flow
func (h *SessionHandler) ClearAccountUnificationFlow(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	session, err := h.sessionUC.ClearAccountUnificationFlow(c.Request().Context(), id)

	return respond(c, session, err)
}

// StartMobilePairing opens a pairing channel. Clients sending Accept: image/png
// get the QR code image directly.
func (h *SessionHandler) StartMobilePairing(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	result, err := h.sessionUC.StartMobilePairing(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "image/png") {
		return c.Blob(http.StatusCreated, "image/png", result.QRCode)
	}

	return response.Success(c, http.StatusCreated, &PairingResponse{
		Session:   result.Session,
		ChannelID: result.QRData.ChannelID,
		PublicKey: result.QRData.PublicKey,
		QRCode:    result.QRCode,
	})
}

// HandleBridgeMessage applies a companion app message to the session
func (h *SessionHandler) HandleBridgeMessage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req BridgeMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bridge message")
	}

	session, err := h.sessionUC.HandleBridgeMessage(c.Request().Context(), id, &usecase.BridgeMessageInput{
		Raw:    req.Message,
		Sealed: req.Sealed,
	})

	return respond(c, session, err)
}

// SetUserGeoData records the caller location
func (h *SessionHandler) SetUserGeoData(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req GeoDataRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.SetUserGeoData(c.Request().Context(), id, &entity.UserGeoData{
		IP:          req.IP,
		CountryCode: req.CountryCode,
		State:       req.State,
		Location:    req.Location,
	})

	return respond(c, session, err)
}

// UpdateAccountFlags updates registration and recovery flags
func (h *SessionHandler) UpdateAccountFlags(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	var req AccountFlagsRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.UpdateAccountFlags(c.Request().Context(), id, &usecase.AccountFlagsInput{
		RegisterEmail: req.RegisterEmail,
		KYCReset:      req.KYCReset,
		ResetAccount:  req.ResetAccount,
	})

	return respond(c, session, err)
}

// bindAndValidate decodes and validates req. When ok is false the error
// response has already been written and err is its result.
func (h *SessionHandler) bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		fields := validator.FieldErrors(err)
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Request validation failed",
			slog.String("route", c.Path()),
			slog.Any("fields", fields),
		)

		return false, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", fields)
	}

	return true, nil
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// sessionOperation parses both path params. When ok is false the error
// response has already been written and err is its result.
func sessionOperation(c echo.Context) (uuid.UUID, entity.Operation, bool, error) {
	id, err := sessionID(c)
	if err != nil {
		return uuid.Nil, "", false, response.BadRequest(c, "INVALID_ID", "Invalid session ID format")
	}

	op, err := entity.ParseOperation(c.Param("op"))
	if err != nil {
		return uuid.Nil, "", false, response.HandleAppError(c, domainerrors.ErrInvalidOperation.WithDetails(err.Error()))
	}

	return id, op, true, nil
}

func respond(c echo.Context, session *entity.AuthSession, err error) error {
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}
