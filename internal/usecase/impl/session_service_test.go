package impl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"walletauth/config"
	deliverycontext "walletauth/internal/delivery/context"
	"walletauth/internal/domain/entity"
	domainerrors "walletauth/internal/domain/errors"
	"walletauth/internal/domain/service"
	"walletauth/internal/errors"
	mockSvc "walletauth/internal/mocks/service"
	"walletauth/internal/infra/securechannel"
	"walletauth/internal/infra/store"
	"walletauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTTL = 30 * time.Minute

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	clock     *testClock
	publisher *mockSvc.MockEventPublisher
	qrcode    *mockSvc.MockQRCodeService
	verifier  *mockSvc.MockExchangeTokenVerifier

	mu     sync.Mutex
	events []*service.SessionEvent
}

func (f *sessionServiceFixtures) published() []*service.SessionEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*service.SessionEvent(nil), f.events...)
}

func (f *sessionServiceFixtures) lastEvent(t *testing.T) *service.SessionEvent {
	t.Helper()

	events := f.published()
	require.NotEmpty(t, events)

	return events[len(events)-1]
}

func createTestSessionService(t *testing.T) *sessionServiceFixtures {
	t.Helper()

	clock := &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	fx := &sessionServiceFixtures{
		clock:     clock,
		publisher: mockSvc.NewMockEventPublisher(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
		verifier:  mockSvc.NewMockExchangeTokenVerifier(t),
	}

	fx.publisher.EXPECT().
		PublishSessionEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.SessionEvent) error {
			fx.mu.Lock()
			defer fx.mu.Unlock()
			fx.events = append(fx.events, event)

			return nil
		}).
		Maybe()

	cfg := &config.Config{}
	cfg.Session.TTL = testTTL

	svc := NewSessionService(SessionServiceParams{
		Repo:          store.NewMemorySessionStore(clock.Now),
		Publisher:     fx.publisher,
		QRCode:        fx.qrcode,
		SecureChannel: securechannel.NewSealedBoxChannel(),
		Verifier:      fx.verifier,
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	svc.(*sessionService).now = clock.Now
	fx.service = svc

	return fx
}

func webWallet() entity.ProductAuthMetadata {
	return entity.ProductAuthMetadata{Platform: entity.PlatformWeb, Product: entity.ProductWallet}
}

func startSession(t *testing.T, fx *sessionServiceFixtures) *entity.AuthSession {
	t.Helper()

	session, err := fx.service.StartSession(context.Background(), &usecase.StartSessionInput{
		FirstLogin: true,
		Metadata:   webWallet(),
	})
	require.NoError(t, err)

	return session
}

func assertAppError(t *testing.T, err error, target *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, target), "want %s, got %v", target.ErrorCode(), err)
}

func TestSessionService_StartSession(t *testing.T) {
	fx := createTestSessionService(t)

	session := startSession(t, fx)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.True(t, session.FirstLogin)
	assert.False(t, session.IsAuthenticated)
	assert.False(t, session.IsLoggingIn)
	assert.True(t, session.Login.IsNotAsked())
	assert.Equal(t, fx.clock.Now().Add(testTTL), session.ExpiresAt)

	event := fx.lastEvent(t)
	assert.Equal(t, service.EventSessionStarted, event.Type)
	assert.Equal(t, session.ID.String(), event.SessionID)

	got, err := fx.service.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestSessionService_StartSession_InvalidMetadata(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.StartSession(context.Background(), &usecase.StartSessionInput{
		Metadata: entity.ProductAuthMetadata{Platform: "DESKTOP", Product: entity.ProductWallet},
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.StartSession(context.Background(), nil)
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	assert.Empty(t, fx.published())
}

func TestSessionService_UnknownSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := fx.service.GetSession(ctx, id)
	assertAppError(t, err, domainerrors.ErrSessionNotFound)

	_, err = fx.service.BeginLogin(ctx, id)
	assertAppError(t, err, domainerrors.ErrSessionNotFound)

	err = fx.service.EndSession(ctx, id)
	assertAppError(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_LoginFlow(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	session, err := fx.service.SetLoginStep(ctx, session.ID, entity.LoginStepEnterPasswordWallet)
	require.NoError(t, err)
	step, ok := session.Step.LoginStep()
	require.True(t, ok)
	assert.Equal(t, entity.LoginStepEnterPasswordWallet, step)

	session, err = fx.service.BeginLogin(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, session.IsLoggingIn)
	assert.True(t, session.Login.IsLoading())

	session, err = fx.service.CompleteLogin(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated)
	assert.False(t, session.IsLoggingIn)
	assert.Equal(t, service.EventSessionAuthenticated, fx.lastEvent(t).Type)
	assert.Equal(t, session.Version, fx.lastEvent(t).Version)

	_, err = fx.service.BeginLogin(ctx, session.ID)
	assertAppError(t, err, domainerrors.ErrAlreadyAuthenticated)
}

func TestSessionService_FailLogin(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	_, err := fx.service.BeginLogin(ctx, session.ID)
	require.NoError(t, err)

	var loginErr entity.LoginError
	require.NoError(t, json.Unmarshal([]byte(`{"auth_type":5,"authorization_required":true,"initial_error":"unknown device"}`), &loginErr))

	session, err = fx.service.FailLogin(ctx, session.ID, loginErr)
	require.NoError(t, err)
	assert.False(t, session.IsLoggingIn)
	assert.Equal(t, 5, session.AuthType)

	failure, ok := session.Login.Failure()
	require.True(t, ok)
	assert.True(t, failure.RequiresAuthorization())

	_, err = fx.service.FailLogin(ctx, session.ID, loginErr)
	assertAppError(t, err, domainerrors.ErrInvalidTransition)
}

func TestSessionService_GenericOperations(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	_, err := fx.service.BeginOperation(ctx, session.ID, entity.OpRestoring)
	require.NoError(t, err)

	_, err = fx.service.BeginOperation(ctx, session.ID, entity.OpMetadataRestore)
	assertAppError(t, err, domainerrors.ErrOperationInFlight)

	_, err = fx.service.BeginOperation(ctx, session.ID, entity.OpRestoring)
	assertAppError(t, err, domainerrors.ErrInvalidTransition)

	session, err = fx.service.FailOperation(ctx, session.ID, entity.OpRestoring, "bad mnemonic")
	require.NoError(t, err)
	reason, ok := session.Restoring.Failure()
	require.True(t, ok)
	assert.Equal(t, "bad mnemonic", reason)

	_, err = fx.service.ResetOperation(ctx, session.ID, entity.OpRestoring)
	require.NoError(t, err)
	_, err = fx.service.BeginOperation(ctx, session.ID, entity.OpMetadataRestore)
	require.NoError(t, err)

	session, err = fx.service.SucceedOperation(ctx, session.ID, entity.OpMetadataRestore, json.RawMessage(`{"wallets":1}`))
	require.NoError(t, err)
	payload, ok := session.MetadataRestore.Success()
	require.True(t, ok)
	assert.JSONEq(t, `{"wallets":1}`, string(payload))

	_, err = fx.service.BeginOperation(ctx, session.ID, entity.Operation("teleport"))
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_RecordExchangeLoginResult(t *testing.T) {
	tests := []struct {
		name      string
		input     *usecase.ExchangeLoginResultInput
		wantTag   string
		wantKnown *entity.ExchangeErrorCode
	}{
		{
			name:      "known code",
			input:     &usecase.ExchangeLoginResultInput{Code: intPtr(11), Message: "2fa required"},
			wantTag:   "BAD_2FA",
			wantKnown: exchangeCodePtr(entity.ExchangeErrBad2FA),
		},
		{
			name:    "unknown code",
			input:   &usecase.ExchangeLoginResultInput{Code: intPtr(42), Message: "odd"},
			wantTag: entity.ExchangeErrorUnrecognized,
		},
		{
			name:    "no code",
			input:   &usecase.ExchangeLoginResultInput{Message: "timeout"},
			wantTag: entity.ExchangeErrorUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()
			session := startSession(t, fx)

			_, err := fx.service.BeginOperation(ctx, session.ID, entity.OpExchangeLogin)
			require.NoError(t, err)

			session, err = fx.service.RecordExchangeLoginResult(ctx, session.ID, tt.input)
			require.NoError(t, err)

			failure, ok := session.ExchangeAuth.ExchangeLogin.Failure()
			require.True(t, ok)
			assert.Equal(t, tt.wantTag, failure.Tag)
			assert.Equal(t, tt.wantKnown, session.ExchangeAuth.ExchangeLoginError)
		})
	}
}

func TestSessionService_RecordExchangeLoginResult_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	_, err := fx.service.BeginOperation(ctx, session.ID, entity.OpExchangeLogin)
	require.NoError(t, err)

	session, err = fx.service.RecordExchangeLoginResult(ctx, session.ID, &usecase.ExchangeLoginResultInput{Success: true, JWT: "jwt-1"})
	require.NoError(t, err)
	assert.True(t, session.ExchangeAuth.ExchangeLogin.IsSuccess())
	assert.Equal(t, "jwt-1", session.ExchangeAuth.JWTToken)
}

func TestSessionService_ApplyMagicLink(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	encoded := base64.StdEncoding.EncodeToString([]byte(`{"wallet":{"guid":"abc","auth_type":4}}`))
	session, err := fx.service.ApplyMagicLink(ctx, session.ID, encoded)
	require.NoError(t, err)
	require.NotNil(t, session.MagicLinkData)
	assert.Equal(t, encoded, session.MagicLinkDataEncoded)
	assert.Equal(t, 4, session.AuthType)

	_, err = fx.service.ApplyMagicLink(ctx, session.ID, "***")
	assertAppError(t, err, domainerrors.ErrMagicLinkInvalid)
}

func TestSessionService_DeviceChallenge(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	requester := &entity.DeviceInfo{Browser: "Firefox", CountryCode: "DE", IPAddress: "10.0.0.1"}
	session, err := fx.service.IssueDeviceChallenge(ctx, session.ID, &usecase.DeviceChallengeInput{
		Requester:         requester,
		Approver:          &entity.DeviceInfo{Browser: "Safari", CountryCode: "US"},
		ApproverPushToken: "fcm-1",
	})
	require.NoError(t, err)
	require.NotNil(t, session.DeviceChallenge)
	assert.True(t, session.AuthorizeVerifyDevice.IsLoading())

	issued := fx.lastEvent(t)
	assert.Equal(t, service.EventDeviceChallengeIssued, issued.Type)
	assert.Equal(t, "fcm-1", issued.ApproverPushToken)
	assert.Equal(t, requester, issued.Requester)
	assert.True(t, issued.CrossCountry, "DE requester, US approver")

	session, err = fx.service.ResolveDeviceChallenge(ctx, session.ID, true, "")
	require.NoError(t, err)
	assert.Nil(t, session.DeviceChallenge)
	challenge, ok := session.AuthorizeVerifyDevice.Success()
	require.True(t, ok)
	assert.True(t, challenge.Success)

	settled := fx.lastEvent(t)
	assert.Equal(t, service.EventDeviceChallengeSettled, settled.Type)
	require.NotNil(t, settled.Approved)
	assert.True(t, *settled.Approved)

	_, err = fx.service.ResolveDeviceChallenge(ctx, session.ID, false, "")
	assertAppError(t, err, domainerrors.ErrNoDeviceChallenge)
}

func TestSessionService_AccountUnificationFlow(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	session, err := fx.service.SetAccountUnificationFlow(ctx, session.ID, entity.FlowWalletMerge)
	require.NoError(t, err)
	require.NotNil(t, session.AccountUnificationFlow)

	_, err = fx.service.SetAccountUnificationFlow(ctx, session.ID, entity.FlowExchangeMerge)
	assertAppError(t, err, domainerrors.ErrUnificationFlowActive)

	session, err = fx.service.ClearAccountUnificationFlow(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, session.AccountUnificationFlow)

	_, err = fx.service.SetAccountUnificationFlow(ctx, session.ID, entity.FlowExchangeMerge)
	require.NoError(t, err)
}

func startPairing(t *testing.T, fx *sessionServiceFixtures, id uuid.UUID) *usecase.PairingResult {
	t.Helper()

	fx.qrcode.EXPECT().
		GeneratePairingQR(mock.AnythingOfType("*service.PairingQRData")).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil).
		Once()

	result, err := fx.service.StartMobilePairing(context.Background(), id)
	require.NoError(t, err)

	return result
}

func TestSessionService_StartMobilePairing(t *testing.T) {
	fx := createTestSessionService(t)
	session := startSession(t, fx)

	result := startPairing(t, fx, session.ID)
	require.NotNil(t, result.Session.Pairing)
	assert.Equal(t, session.ID, result.QRData.SessionID)
	assert.Equal(t, result.Session.Pairing.ChannelID, result.QRData.ChannelID)
	assert.Equal(t, base64.StdEncoding.EncodeToString(result.Session.Pairing.PublicKey), result.QRData.PublicKey)
	assert.Len(t, result.Session.Pairing.PrivateKey, securechannel.KeySize)
	assert.NotEmpty(t, result.QRCode)
	assert.Equal(t, service.EventPairingStarted, fx.lastEvent(t).Type)

	b, err := json.Marshal(result.Session)
	require.NoError(t, err)
	assert.NotContains(t, string(b), base64.StdEncoding.EncodeToString(result.Session.Pairing.PrivateKey))
}

func TestSessionService_StartMobilePairing_QRFailure(t *testing.T) {
	fx := createTestSessionService(t)
	session := startSession(t, fx)

	fx.qrcode.EXPECT().
		GeneratePairingQR(mock.Anything).
		Return(nil, errors.New("too much data"))

	_, err := fx.service.StartMobilePairing(context.Background(), session.ID)
	assertAppError(t, err, domainerrors.ErrQRCodeGenerationFailed)

	got, err := fx.service.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Pairing)
}

func TestSessionService_HandleBridgeMessage_Sealed(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	_, err := fx.service.SetAccountUnificationFlow(ctx, session.ID, entity.FlowMobileWalletMerge)
	require.NoError(t, err)

	pairing := startPairing(t, fx, session.ID)
	publicKey, err := base64.StdEncoding.DecodeString(pairing.QRData.PublicKey)
	require.NoError(t, err)

	seal := func(raw string) []byte {
		sealed, err := securechannel.Seal([]byte(raw), publicKey)
		require.NoError(t, err)

		return sealed
	}

	session, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Sealed: seal(`{"status":"connected"}`)})
	require.NoError(t, err)
	assert.True(t, session.MobileLoginStarted)
	assert.True(t, session.SecureChannelLogin.IsLoading())

	session, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{
		Sealed: seal(`{"status":"success","data":{"guid":"g-1","password":"hunter2","sessionId":"s-1"}}`),
	})
	require.NoError(t, err)

	result, ok := session.SecureChannelLogin.Success()
	require.True(t, ok)
	assert.Equal(t, entity.BridgeWalletMergeResult, result.Kind)
	assert.Equal(t, "g-1", result.GUID)

	b, err := json.Marshal(session)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hunter2")
}

func TestSessionService_HandleBridgeMessage_ErrorAttribution(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	_, err := fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Raw: json.RawMessage(`{"status":"connected"}`)})
	require.NoError(t, err)

	session, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Raw: json.RawMessage(`{"status":"error","error":"declined"}`)})
	require.NoError(t, err)

	reason, ok := session.SecureChannelLogin.Failure()
	require.True(t, ok)
	assert.Equal(t, "declined", reason)

	// connected again counts as a retry
	session, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Raw: json.RawMessage(`{"status":"connected"}`)})
	require.NoError(t, err)
	assert.True(t, session.SecureChannelLogin.IsLoading())
}

func TestSessionService_HandleBridgeMessage_VerifiesExchangeJWT(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	fx.verifier.EXPECT().Verify("bad.jwt").Return(nil, errors.New("signature is invalid")).Once()
	fx.verifier.EXPECT().Verify("good.jwt").Return(&service.ExchangeClaims{}, nil).Once()

	_, err := fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Raw: json.RawMessage(`{"status":"success","data":{"jwt":"bad.jwt"}}`)})
	assertAppError(t, err, domainerrors.ErrExchangeTokenInvalid)

	got, err := fx.service.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, got.SecureChannelLogin.IsNotAsked())
	assert.Empty(t, got.ExchangeAuth.JWTToken)

	got, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Raw: json.RawMessage(`{"status":"success","data":{"jwt":"good.jwt"}}`)})
	require.NoError(t, err)
	assert.True(t, got.SecureChannelLogin.IsSuccess())
	assert.Equal(t, "good.jwt", got.ExchangeAuth.JWTToken)
}

func TestSessionService_HandleBridgeMessage_Invalid(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	_, err := fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{})
	assertAppError(t, err, domainerrors.ErrBridgeMessageInvalid)

	_, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Sealed: []byte("sealed")})
	assertAppError(t, err, domainerrors.ErrPairingNotStarted)

	_, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Raw: json.RawMessage(`{"status":"pending"}`)})
	assertAppError(t, err, domainerrors.ErrBridgeMessageInvalid)

	startPairing(t, fx, session.ID)
	_, err = fx.service.HandleBridgeMessage(ctx, session.ID, &usecase.BridgeMessageInput{Sealed: []byte("not a sealed box")})
	assertAppError(t, err, domainerrors.ErrBridgeMessageInvalid)
}

func TestSessionService_ResetSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	_, err := fx.service.BeginLogin(ctx, session.ID)
	require.NoError(t, err)
	_, err = fx.service.SetAccountUnificationFlow(ctx, session.ID, entity.FlowWalletMerge)
	require.NoError(t, err)

	reset, err := fx.service.ResetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, reset.ID)
	assert.True(t, reset.FirstLogin)
	assert.Equal(t, webWallet(), reset.ProductAuthMetadata)
	assert.True(t, reset.Login.IsNotAsked())
	assert.False(t, reset.IsLoggingIn)
	assert.Nil(t, reset.AccountUnificationFlow)
	assert.Greater(t, reset.Version, session.Version)
	assert.Equal(t, service.EventSessionReset, fx.lastEvent(t).Type)
}

func TestSessionService_SetUserGeoDataAndFlags(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	session, err := fx.service.SetUserGeoData(ctx, session.ID, &entity.UserGeoData{IP: "10.0.0.1", CountryCode: "DE"})
	require.NoError(t, err)
	require.NotNil(t, session.UserGeoData)
	assert.Equal(t, "DE", session.UserGeoData.CountryCode)

	email := "a@b.com"
	yes := true
	session, err = fx.service.UpdateAccountFlags(ctx, session.ID, &usecase.AccountFlagsInput{RegisterEmail: &email, KYCReset: &yes})
	require.NoError(t, err)
	require.NotNil(t, session.RegisterEmail)
	assert.Equal(t, email, *session.RegisterEmail)
	require.NotNil(t, session.KYCReset)
	assert.True(t, *session.KYCReset)
	assert.False(t, session.ResetAccount)
}

func TestSessionService_EndSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	session := startSession(t, fx)

	require.NoError(t, fx.service.EndSession(ctx, session.ID))
	assert.Equal(t, service.EventSessionEnded, fx.lastEvent(t).Type)

	_, err := fx.service.GetSession(ctx, session.ID)
	assertAppError(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	startSession(t, fx)
	startSession(t, fx)

	removed, err := fx.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	fx.clock.Advance(testTTL)
	fresh := startSession(t, fx)

	removed, err = fx.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = fx.service.GetSession(ctx, fresh.ID)
	require.NoError(t, err)
}

func TestSessionService_PublishFailureDoesNotFailCommand(t *testing.T) {
	clock := &testClock{now: time.Now()}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishSessionEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	cfg := &config.Config{}
	cfg.Session.TTL = testTTL
	svc := NewSessionService(SessionServiceParams{
		Repo:          store.NewMemorySessionStore(clock.Now),
		Publisher:     publisher,
		QRCode:        mockSvc.NewMockQRCodeService(t),
		SecureChannel: mockSvc.NewMockSecureChannel(t),
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	session, err := svc.StartSession(context.Background(), &usecase.StartSessionInput{Metadata: webWallet()})
	require.NoError(t, err)

	session, err = svc.BeginLogin(context.Background(), session.ID)
	require.NoError(t, err)
	assert.True(t, session.IsLoggingIn)
}

func TestSessionService_BindsSessionToContext(t *testing.T) {
	clock := &testClock{now: time.Now()}
	publisher := mockSvc.NewMockEventPublisher(t)

	var (
		mu         sync.Mutex
		sessionIDs []string
		requestIDs []string
	)
	publisher.EXPECT().
		PublishSessionEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, event *service.SessionEvent) error {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, event.SessionID, deliverycontext.GetSessionIDFromContext(ctx))
			sessionIDs = append(sessionIDs, event.SessionID)
			requestIDs = append(requestIDs, event.RequestID)

			return nil
		})

	cfg := &config.Config{}
	cfg.Session.TTL = testTTL
	svc := NewSessionService(SessionServiceParams{
		Repo:          store.NewMemorySessionStore(clock.Now),
		Publisher:     publisher,
		QRCode:        mockSvc.NewMockQRCodeService(t),
		SecureChannel: mockSvc.NewMockSecureChannel(t),
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	session, err := svc.StartSession(ctx, &usecase.StartSessionInput{Metadata: webWallet()})
	require.NoError(t, err)
	_, err = svc.BeginLogin(ctx, session.ID)
	require.NoError(t, err)
	require.NoError(t, svc.EndSession(ctx, session.ID))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{session.ID.String(), session.ID.String(), session.ID.String()}, sessionIDs)
	assert.Equal(t, []string{"req-7", "req-7", "req-7"}, requestIDs)
}

func intPtr(v int) *int { return &v }

func exchangeCodePtr(c entity.ExchangeErrorCode) *entity.ExchangeErrorCode { return &c }
