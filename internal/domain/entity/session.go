package entity

import (
	"encoding/json"
	"reflect"
	"slices"
	"time"

	"walletauth/internal/errors"

	"github.com/google/uuid"
)

// Aggregate errors.
var (
	ErrOperationInFlight     = errors.New("another operation of the same sub-flow is in flight")
	ErrMetadataImmutable     = errors.New("product auth metadata cannot change during a session")
	ErrInvariantViolation    = errors.New("session invariant violated")
	ErrInvalidPayload        = errors.New("invalid operation payload")
	ErrNoDeviceChallenge     = errors.New("no device challenge pending")
	ErrUnificationFlowActive = errors.New("an account unification flow is already active")
	ErrAlreadyAuthenticated  = errors.New("session is already authenticated")
)

// Operation names one asynchronous sub-result of the session.
type Operation string

const (
	OpLogin                 Operation = "login"
	OpExchangeLogin         Operation = "exchangeLogin"
	OpRegistering           Operation = "registering"
	OpRestoring             Operation = "restoring"
	OpMetadataRestore       Operation = "metadataRestore"
	OpSecureChannelLogin    Operation = "secureChannelLogin"
	OpAuthorizeVerifyDevice Operation = "authorizeVerifyDevice"
)

//nolint:gochecknoglobals
var operations = []Operation{
	OpLogin,
	OpExchangeLogin,
	OpRegistering,
	OpRestoring,
	OpMetadataRestore,
	OpSecureChannelLogin,
	OpAuthorizeVerifyDevice,
}

func ParseOperation(s string) (Operation, error) {
	return parseEnum("operation", s, operations)
}

func (o Operation) Valid() bool {
	return slices.Contains(operations, o)
}

func (o *Operation) UnmarshalText(text []byte) error {
	v, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = v

	return nil
}

// SubFlow groups operations of which at most one may be loading at a time.
type SubFlow string

const (
	SubFlowWalletLogin  SubFlow = "walletLogin"
	SubFlowExchange     SubFlow = "exchange"
	SubFlowRegistration SubFlow = "registration"
	SubFlowRecovery     SubFlow = "recovery"
)

func (o Operation) SubFlow() SubFlow {
	switch o {
	case OpExchangeLogin:
		return SubFlowExchange
	case OpRegistering:
		return SubFlowRegistration
	case OpRestoring, OpMetadataRestore:
		return SubFlowRecovery
	default:
		return SubFlowWalletLogin
	}
}

// ExchangeAuth groups the exchange login state.
type ExchangeAuth struct {
	ExchangeLogin      RemoteData[ExchangeLoginFailure, Ack] `json:"exchangeLogin"`
	ExchangeLoginError *ExchangeErrorCode                    `json:"exchangeLoginError,omitempty"`
	JWTToken           string                                `json:"jwtToken,omitempty"`
}

// NullManifest always serializes as null.
type NullManifest struct{}

func (NullManifest) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (*NullManifest) UnmarshalJSON([]byte) error { return nil }

// AuthSession is the state of one authentication attempt. It is owned by a
// single writer; readers get snapshots.
type AuthSession struct {
	ID                     uuid.UUID                                    `json:"id"`
	AccountUnificationFlow *AccountUnificationFlow                      `json:"accountUnificationFlow,omitempty"`
	AuthType               int                                          `json:"auth_type"`
	AuthorizeVerifyDevice  RemoteData[string, DeviceMismatchChallenge]  `json:"authorizeVerifyDevice"`
	ExchangeAuth           ExchangeAuth                                 `json:"exchangeAuth"`
	FirstLogin             bool                                         `json:"firstLogin"`
	IsAuthenticated        bool                                         `json:"isAuthenticated"`
	IsLoggingIn            bool                                         `json:"isLoggingIn"`
	KYCReset               *bool                                        `json:"kycReset,omitempty"`
	Login                  RemoteData[LoginError, Ack]                  `json:"login"`
	MagicLinkData          *MagicLinkData                               `json:"magicLinkData,omitempty"`
	MagicLinkDataEncoded   string                                       `json:"magicLinkDataEncoded,omitempty"`
	ManifestFile           NullManifest                                 `json:"manifestFile"`
	MetadataRestore        RemoteData[string, json.RawMessage]          `json:"metadataRestore"`
	MobileLoginStarted     bool                                         `json:"mobileLoginStarted"`
	ProductAuthMetadata    ProductAuthMetadata                          `json:"productAuthMetadata"`
	RegisterEmail          *string                                      `json:"registerEmail,omitempty"`
	Registering            RemoteData[string, Ack]                      `json:"registering"`
	ResetAccount           bool                                         `json:"resetAccount"`
	Restoring              RemoteData[string, Ack]                      `json:"restoring"`
	SecureChannelLogin     RemoteData[string, SecureChannelResult]      `json:"secureChannelLogin"`
	UserGeoData            *UserGeoData                                 `json:"userGeoData,omitempty"`

	Step            WizardStep               `json:"step"`
	DeviceChallenge *DeviceMismatchChallenge `json:"deviceChallenge,omitempty"`
	Pairing         *PairingChannel          `json:"pairing,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Version   int64     `json:"version"`
}

// NewAuthSession starts a session: not authenticated, not logging in, every
// sub-result NotAsked and no wizard step yet.
func NewAuthSession(id uuid.UUID, firstLogin bool, metadata ProductAuthMetadata, now time.Time, ttl time.Duration) (*AuthSession, error) {
	if err := metadata.Validate(); err != nil {
		return nil, err
	}

	return &AuthSession{
		ID:                  id,
		FirstLogin:          firstLogin,
		ProductAuthMetadata: metadata,
		CreatedAt:           now,
		UpdatedAt:           now,
		ExpiresAt:           now.Add(ttl),
	}, nil
}

// Clone returns a deep copy suitable for copy-on-write updates.
func (s *AuthSession) Clone() *AuthSession {
	if s == nil {
		return nil
	}

	out := *s
	if s.AccountUnificationFlow != nil {
		flow := *s.AccountUnificationFlow
		out.AccountUnificationFlow = &flow
	}
	if s.ExchangeAuth.ExchangeLoginError != nil {
		code := *s.ExchangeAuth.ExchangeLoginError
		out.ExchangeAuth.ExchangeLoginError = &code
	}
	if s.KYCReset != nil {
		kyc := *s.KYCReset
		out.KYCReset = &kyc
	}
	if s.RegisterEmail != nil {
		email := *s.RegisterEmail
		out.RegisterEmail = &email
	}
	out.MagicLinkData = s.MagicLinkData.Clone()
	out.UserGeoData = s.UserGeoData.Clone()
	out.DeviceChallenge = s.DeviceChallenge.Clone()
	out.Pairing = s.Pairing.Clone()

	return &out
}

// Expired reports whether the session outlived its TTL.
func (s *AuthSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SetLoginStep switches the session onto the login wizard.
func (s *AuthSession) SetLoginStep(step LoginStep) error {
	w, err := LoginWizard(step)
	if err != nil {
		return err
	}
	s.Step = w

	return nil
}

// SetRecoverStep switches the session onto the recovery wizard.
func (s *AuthSession) SetRecoverStep(step RecoverStep) error {
	w, err := RecoveryWizard(step)
	if err != nil {
		return err
	}
	s.Step = w

	return nil
}

// Status returns the tag of the operation's result.
func (s *AuthSession) Status(op Operation) RemoteStatus {
	switch op {
	case OpLogin:
		return s.Login.Status()
	case OpExchangeLogin:
		return s.ExchangeAuth.ExchangeLogin.Status()
	case OpRegistering:
		return s.Registering.Status()
	case OpRestoring:
		return s.Restoring.Status()
	case OpMetadataRestore:
		return s.MetadataRestore.Status()
	case OpSecureChannelLogin:
		return s.SecureChannelLogin.Status()
	case OpAuthorizeVerifyDevice:
		return s.AuthorizeVerifyDevice.Status()
	}

	return ""
}

func (s *AuthSession) checkSubFlowIdle(op Operation) error {
	for _, other := range operations {
		if other == op || other.SubFlow() != op.SubFlow() {
			continue
		}
		if s.Status(other) == StatusLoading {
			return errors.Wrapf(ErrOperationInFlight, "%s blocked by %s", op, other)
		}
	}

	return nil
}

// Begin moves an operation from NotAsked to Loading.
func (s *AuthSession) Begin(op Operation) error {
	if !op.Valid() {
		return errors.Wrapf(ErrInvalidEnumValue, "operation %q", op)
	}
	if op == OpLogin {
		return s.BeginLogin()
	}
	if err := s.checkSubFlowIdle(op); err != nil {
		return err
	}

	var err error
	switch op {
	case OpExchangeLogin:
		s.ExchangeAuth.ExchangeLogin, err = s.ExchangeAuth.ExchangeLogin.Start()
	case OpRegistering:
		s.Registering, err = s.Registering.Start()
	case OpRestoring:
		s.Restoring, err = s.Restoring.Start()
	case OpMetadataRestore:
		s.MetadataRestore, err = s.MetadataRestore.Start()
	case OpSecureChannelLogin:
		s.SecureChannelLogin, err = s.SecureChannelLogin.Start()
	case OpAuthorizeVerifyDevice:
		s.AuthorizeVerifyDevice, err = s.AuthorizeVerifyDevice.Start()
	case OpLogin:
	}

	return errors.WithMessage(err, string(op))
}

// Fail resolves a loading operation with a plain reason.
func (s *AuthSession) Fail(op Operation, reason string) error {
	var err error
	switch op {
	case OpLogin:
		return s.FailLogin(LoginErrorMessage(reason))
	case OpExchangeLogin:
		_, err = s.RecordExchangeLoginFailure(nil, reason)

		return err
	case OpRegistering:
		s.Registering, err = s.Registering.Fail(reason)
	case OpRestoring:
		s.Restoring, err = s.Restoring.Fail(reason)
	case OpMetadataRestore:
		s.MetadataRestore, err = s.MetadataRestore.Fail(reason)
	case OpSecureChannelLogin:
		s.SecureChannelLogin, err = s.SecureChannelLogin.Fail(reason)
	case OpAuthorizeVerifyDevice:
		s.AuthorizeVerifyDevice, err = s.AuthorizeVerifyDevice.Fail(reason)
		if err == nil {
			s.DeviceChallenge = nil
		}
	default:
		return errors.Wrapf(ErrInvalidEnumValue, "operation %q", op)
	}

	return errors.WithMessage(err, string(op))
}

func succeedWith[E, S any](r RemoteData[E, S], payload json.RawMessage) (RemoteData[E, S], error) {
	var value S
	if len(payload) > 0 && string(payload) != "null" {
		if err := json.Unmarshal(payload, &value); err != nil {
			return r, errors.Wrap(ErrInvalidPayload, err.Error())
		}
	}

	return r.Succeed(value)
}

// Succeed resolves a loading operation; payload is decoded into the
// operation's success type and may be empty.
func (s *AuthSession) Succeed(op Operation, payload json.RawMessage) error {
	var err error
	switch op {
	case OpLogin:
		return s.CompleteLogin()
	case OpExchangeLogin:
		var body struct {
			JWT string `json:"jwt"`
		}
		if len(payload) > 0 && string(payload) != "null" {
			if err := json.Unmarshal(payload, &body); err != nil {
				return errors.Wrap(ErrInvalidPayload, err.Error())
			}
		}

		return s.RecordExchangeLoginSuccess(body.JWT)
	case OpRegistering:
		s.Registering, err = succeedWith(s.Registering, payload)
	case OpRestoring:
		s.Restoring, err = succeedWith(s.Restoring, payload)
	case OpMetadataRestore:
		if len(payload) == 0 {
			payload = json.RawMessage("null")
		}
		s.MetadataRestore, err = s.MetadataRestore.Succeed(append(json.RawMessage(nil), payload...))
	case OpSecureChannelLogin:
		s.SecureChannelLogin, err = succeedWith(s.SecureChannelLogin, payload)
	case OpAuthorizeVerifyDevice:
		return s.ResolveDeviceChallenge(true, "")
	default:
		return errors.Wrapf(ErrInvalidEnumValue, "operation %q", op)
	}

	return errors.WithMessage(err, string(op))
}

// Reset returns an operation to NotAsked from any state.
func (s *AuthSession) Reset(op Operation) error {
	switch op {
	case OpLogin:
		s.Login = s.Login.Reset()
		s.IsLoggingIn = false
	case OpExchangeLogin:
		s.ExchangeAuth.ExchangeLogin = s.ExchangeAuth.ExchangeLogin.Reset()
		s.ExchangeAuth.ExchangeLoginError = nil
	case OpRegistering:
		s.Registering = s.Registering.Reset()
	case OpRestoring:
		s.Restoring = s.Restoring.Reset()
	case OpMetadataRestore:
		s.MetadataRestore = s.MetadataRestore.Reset()
	case OpSecureChannelLogin:
		s.SecureChannelLogin = s.SecureChannelLogin.Reset()
	case OpAuthorizeVerifyDevice:
		s.AuthorizeVerifyDevice = s.AuthorizeVerifyDevice.Reset()
	default:
		return errors.Wrapf(ErrInvalidEnumValue, "operation %q", op)
	}

	return nil
}

// BeginLogin starts the wallet login attempt.
func (s *AuthSession) BeginLogin() error {
	if s.IsAuthenticated {
		return ErrAlreadyAuthenticated
	}
	if err := s.checkSubFlowIdle(OpLogin); err != nil {
		return err
	}

	next, err := s.Login.Start()
	if err != nil {
		return errors.WithMessage(err, string(OpLogin))
	}
	s.Login = next
	s.IsLoggingIn = true

	return nil
}

// CompleteLogin marks the session authenticated and drops transient records:
// the device challenge, the pairing channel and the consumed magic link.
func (s *AuthSession) CompleteLogin() error {
	next, err := s.Login.Succeed(Ack{})
	if err != nil {
		return errors.WithMessage(err, string(OpLogin))
	}
	s.Login = next
	s.IsLoggingIn = false
	s.IsAuthenticated = true
	s.DeviceChallenge = nil
	s.Pairing = nil
	s.ClearMagicLink()

	return nil
}

// FailLogin records a login failure. A structured error updates auth_type.
func (s *AuthSession) FailLogin(loginErr LoginError) error {
	next, err := s.Login.Fail(loginErr)
	if err != nil {
		return errors.WithMessage(err, string(OpLogin))
	}
	s.Login = next
	s.IsLoggingIn = false
	if loginErr.Detail != nil {
		s.AuthType = loginErr.Detail.AuthType
	}

	return nil
}

// RecordExchangeLoginFailure resolves the exchange login with a wire code.
// exchangeLoginError is set only for recognized codes.
func (s *AuthSession) RecordExchangeLoginFailure(code *int, message string) (ExchangeLoginFailure, error) {
	failure := NewExchangeLoginFailure(code, message)

	next, err := s.ExchangeAuth.ExchangeLogin.Fail(failure)
	if err != nil {
		return failure, errors.WithMessage(err, string(OpExchangeLogin))
	}
	s.ExchangeAuth.ExchangeLogin = next
	s.ExchangeAuth.ExchangeLoginError = nil
	if known, ok := failure.Known(); ok {
		s.ExchangeAuth.ExchangeLoginError = &known
	}

	return failure, nil
}

// RecordExchangeLoginSuccess resolves the exchange login and keeps the token, if any.
func (s *AuthSession) RecordExchangeLoginSuccess(jwtToken string) error {
	next, err := s.ExchangeAuth.ExchangeLogin.Succeed(Ack{})
	if err != nil {
		return errors.WithMessage(err, string(OpExchangeLogin))
	}
	s.ExchangeAuth.ExchangeLogin = next
	s.ExchangeAuth.ExchangeLoginError = nil
	if jwtToken != "" {
		s.ExchangeAuth.JWTToken = jwtToken
	}

	return nil
}

// ApplyMagicLink stores the encoded link together with its decoded form.
func (s *AuthSession) ApplyMagicLink(encoded string) (*MagicLinkData, error) {
	data, err := DecodeMagicLink(encoded)
	if err != nil {
		return nil, err
	}

	s.MagicLinkData = data
	s.MagicLinkDataEncoded = encoded
	if data.Wallet != nil && data.Wallet.AuthType != nil {
		s.AuthType = *data.Wallet.AuthType
	}

	return data, nil
}

// ClearMagicLink drops both forms of the magic link.
func (s *AuthSession) ClearMagicLink() {
	s.MagicLinkData = nil
	s.MagicLinkDataEncoded = ""
}

// IssueDeviceChallenge records a pending device verification and puts
// authorizeVerifyDevice in flight. Re-issuing replaces a pending challenge.
func (s *AuthSession) IssueDeviceChallenge(challenge DeviceMismatchChallenge) error {
	if s.IsAuthenticated {
		return ErrAlreadyAuthenticated
	}

	if !s.AuthorizeVerifyDevice.IsLoading() {
		if err := s.checkSubFlowIdle(OpAuthorizeVerifyDevice); err != nil {
			return err
		}
		next, err := s.AuthorizeVerifyDevice.Reset().Start()
		if err != nil {
			return errors.WithMessage(err, string(OpAuthorizeVerifyDevice))
		}
		s.AuthorizeVerifyDevice = next
	}

	challenge.Success = false
	s.DeviceChallenge = challenge.Clone()

	return nil
}

// ResolveDeviceChallenge consumes the pending challenge.
func (s *AuthSession) ResolveDeviceChallenge(approved bool, reason string) error {
	if s.DeviceChallenge == nil {
		return ErrNoDeviceChallenge
	}

	var (
		next RemoteData[string, DeviceMismatchChallenge]
		err  error
	)
	if approved {
		resolved := *s.DeviceChallenge.Clone()
		resolved.Success = true
		next, err = s.AuthorizeVerifyDevice.Succeed(resolved)
	} else {
		if reason == "" {
			reason = "device verification rejected"
		}
		next, err = s.AuthorizeVerifyDevice.Fail(reason)
	}
	if err != nil {
		return errors.WithMessage(err, string(OpAuthorizeVerifyDevice))
	}
	s.AuthorizeVerifyDevice = next
	s.DeviceChallenge = nil

	return nil
}

// SetAccountUnificationFlow starts a unification flow. Only one may be active.
func (s *AuthSession) SetAccountUnificationFlow(flow AccountUnificationFlow) error {
	if !flow.Valid() {
		return errors.Wrapf(ErrInvalidEnumValue, "account unification flow %q", flow)
	}
	if s.AccountUnificationFlow != nil {
		if *s.AccountUnificationFlow == flow {
			return nil
		}

		return errors.Wrapf(ErrUnificationFlowActive, "%s", *s.AccountUnificationFlow)
	}
	s.AccountUnificationFlow = &flow

	return nil
}

func (s *AuthSession) ClearAccountUnificationFlow() {
	s.AccountUnificationFlow = nil
}

// BridgeFlow returns the bridge message family this session expects.
func (s *AuthSession) BridgeFlow() BridgeFlow {
	if s.AccountUnificationFlow == nil {
		return BridgeFlowExchangeLink
	}

	return s.AccountUnificationFlow.BridgeFlow()
}

// AttachPairing opens a new secure channel; any resolved channel login is cleared.
func (s *AuthSession) AttachPairing(channel *PairingChannel) {
	s.Pairing = channel.Clone()
	s.MobileLoginStarted = false
	if s.SecureChannelLogin.IsTerminal() {
		s.SecureChannelLogin = s.SecureChannelLogin.Reset()
	}
}

// ApplyBridgeMessage folds a classified bridge message into secureChannelLogin.
// Connected starts (or restarts) the attempt; results resolve it.
func (s *AuthSession) ApplyBridgeMessage(msg *BridgeMessage) error {
	if msg == nil {
		return ErrInvalidBridgeMessage
	}

	if msg.Kind == BridgeConnected {
		s.MobileLoginStarted = true
		if s.SecureChannelLogin.IsLoading() {
			return nil
		}
		if s.SecureChannelLogin.IsTerminal() {
			s.SecureChannelLogin = s.SecureChannelLogin.Reset()
		}

		return s.Begin(OpSecureChannelLogin)
	}

	if s.SecureChannelLogin.IsTerminal() {
		return errors.Wrapf(ErrInvalidTransition, "%s already %s", OpSecureChannelLogin, s.SecureChannelLogin.Status())
	}
	if s.SecureChannelLogin.IsNotAsked() {
		if err := s.Begin(OpSecureChannelLogin); err != nil {
			return err
		}
	}

	var (
		next RemoteData[string, SecureChannelResult]
		err  error
	)
	switch {
	case msg.Status == BridgeStatusError:
		reason := msg.Error
		if reason == "" {
			reason = "mobile bridge error"
		}
		next, err = s.SecureChannelLogin.Fail(reason)
	case msg.Kind == BridgeWalletMergeResult && msg.WalletMerge != nil:
		next, err = s.SecureChannelLogin.Succeed(SecureChannelResult{
			Kind:      msg.Kind,
			GUID:      msg.WalletMerge.GUID,
			SessionID: msg.WalletMerge.SessionID,
		})
	case msg.Kind == BridgeExchangeLinkResult:
		next, err = s.SecureChannelLogin.Succeed(SecureChannelResult{Kind: msg.Kind})
		if err == nil {
			s.ExchangeAuth.JWTToken = msg.ExchangeJWT
		}
	default:
		return errors.Wrap(ErrInvalidBridgeMessage, msg.String())
	}
	if err != nil {
		return errors.WithMessage(err, string(OpSecureChannelLogin))
	}
	s.SecureChannelLogin = next

	return nil
}

// SetUserGeoData stores the caller location.
func (s *AuthSession) SetUserGeoData(geo *UserGeoData) error {
	if !geo.Valid() {
		return errors.Wrap(ErrInvalidPayload, "location out of range")
	}
	s.UserGeoData = geo.Clone()

	return nil
}

func (s *AuthSession) SetRegisterEmail(email string) {
	if email == "" {
		s.RegisterEmail = nil

		return
	}
	s.RegisterEmail = &email
}

func (s *AuthSession) SetKYCReset(v bool) {
	s.KYCReset = &v
}

func (s *AuthSession) SetResetAccount(v bool) {
	s.ResetAccount = v
}

// ResetState returns the session to its initial state. Identity, firstLogin,
// product metadata and lifetime are kept.
func (s *AuthSession) ResetState() {
	*s = AuthSession{
		ID:                  s.ID,
		FirstLogin:          s.FirstLogin,
		ProductAuthMetadata: s.ProductAuthMetadata,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
		ExpiresAt:           s.ExpiresAt,
		Version:             s.Version,
	}
}

// Validate checks the invariants that hold for any single snapshot.
func (s *AuthSession) Validate() error {
	if s.IsAuthenticated && s.IsLoggingIn {
		return errors.Wrap(ErrInvariantViolation, "authenticated session cannot be logging in")
	}
	if err := s.ProductAuthMetadata.Validate(); err != nil {
		return err
	}
	if s.AccountUnificationFlow != nil && !s.AccountUnificationFlow.Valid() {
		return errors.Wrapf(ErrInvalidEnumValue, "account unification flow %q", *s.AccountUnificationFlow)
	}
	if !s.UserGeoData.Valid() {
		return errors.Wrap(ErrInvariantViolation, "location out of range")
	}

	if s.MagicLinkData != nil {
		if s.MagicLinkDataEncoded == "" {
			return errors.Wrap(ErrInvariantViolation, "magic link data without encoded form")
		}
		decoded, err := DecodeMagicLink(s.MagicLinkDataEncoded)
		if err != nil {
			return errors.Wrap(ErrInvariantViolation, "encoded magic link does not decode")
		}
		if !reflect.DeepEqual(decoded, s.MagicLinkData) {
			return errors.Wrap(ErrInvariantViolation, "magic link data differs from encoded form")
		}
	}

	loading := make(map[SubFlow]Operation)
	for _, op := range operations {
		if s.Status(op) != StatusLoading {
			continue
		}
		if other, ok := loading[op.SubFlow()]; ok {
			return errors.Wrapf(ErrInvariantViolation, "%s and %s both loading", other, op)
		}
		loading[op.SubFlow()] = op
	}

	return nil
}

// CheckTransition validates next as the successor of prev.
func CheckTransition(prev, next *AuthSession) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if prev == nil {
		return nil
	}
	if prev.ID != next.ID {
		return errors.Wrap(ErrInvariantViolation, "session id changed")
	}
	if prev.ProductAuthMetadata.Platform != next.ProductAuthMetadata.Platform ||
		prev.ProductAuthMetadata.Product != next.ProductAuthMetadata.Product {
		return ErrMetadataImmutable
	}
	if prev.AccountUnificationFlow != nil && next.AccountUnificationFlow != nil &&
		*prev.AccountUnificationFlow != *next.AccountUnificationFlow {
		return ErrUnificationFlowActive
	}

	return nil
}
