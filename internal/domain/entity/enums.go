// Package entity contains the auth session model: its closed value sets,
// tri-state operation results and the aggregate session record.
package entity

import (
	"slices"

	"walletauth/internal/errors"
)

// ErrInvalidEnumValue is returned when a wire value is outside its closed set.
var ErrInvalidEnumValue = errors.New("invalid enum value")

func parseEnum[T ~string](kind, raw string, allowed []T) (T, error) {
	for _, v := range allowed {
		if string(v) == raw {
			return v, nil
		}
	}

	var zero T

	return zero, errors.Wrapf(ErrInvalidEnumValue, "%s %q", kind, raw)
}

// LoginStep is the current screen of the login wizard.
type LoginStep string

const (
	LoginStepCheckEmail                        LoginStep = "CHECK_EMAIL"
	LoginStepEnterEmailGUID                    LoginStep = "ENTER_EMAIL_GUID"
	LoginStepEnterPasswordExchange             LoginStep = "ENTER_PASSWORD_EXCHANGE"
	LoginStepEnterPasswordWallet               LoginStep = "ENTER_PASSWORD_WALLET"
	LoginStepLoading                           LoginStep = "LOADING"
	LoginStepProductPickerAfterAuthentication  LoginStep = "PRODUCT_PICKER_AFTER_AUTHENTICATION"
	LoginStepProductPickerBeforeAuthentication LoginStep = "PRODUCT_PICKER_BEFORE_AUTHENTICATION"
	LoginStepUpgradeConfirm                    LoginStep = "UPGRADE_CONFIRM"
	LoginStepUpgradePassword                   LoginStep = "UPGRADE_PASSWORD"
	LoginStepUpgradeSuccess                    LoginStep = "UPGRADE_SUCCESS"
	LoginStepVerificationMobile                LoginStep = "VERIFICATION_MOBILE"
	LoginStepVerifyMagicLink                   LoginStep = "VERIFY_MAGIC_LINK"
)

//nolint:gochecknoglobals
var loginSteps = []LoginStep{
	LoginStepCheckEmail,
	LoginStepEnterEmailGUID,
	LoginStepEnterPasswordExchange,
	LoginStepEnterPasswordWallet,
	LoginStepLoading,
	LoginStepProductPickerAfterAuthentication,
	LoginStepProductPickerBeforeAuthentication,
	LoginStepUpgradeConfirm,
	LoginStepUpgradePassword,
	LoginStepUpgradeSuccess,
	LoginStepVerificationMobile,
	LoginStepVerifyMagicLink,
}

// ParseLoginStep converts a wire value into a LoginStep.
func ParseLoginStep(s string) (LoginStep, error) {
	return parseEnum("login step", s, loginSteps)
}

// Valid reports whether s is a member of the closed set.
func (s LoginStep) Valid() bool {
	return slices.Contains(loginSteps, s)
}

func (s LoginStep) String() string {
	return string(s)
}

// UnmarshalText rejects values outside the closed set.
func (s *LoginStep) UnmarshalText(text []byte) error {
	v, err := ParseLoginStep(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// RecoverStep is the current screen of the account recovery wizard.
type RecoverStep string

const (
	RecoverStepCloudRecovery   RecoverStep = "CLOUD_RECOVERY"
	RecoverStepRecoveryOptions RecoverStep = "RECOVERY_OPTIONS"
	RecoverStepRecoveryPhrase  RecoverStep = "RECOVERY_PHRASE"
	RecoverStepResetAccount    RecoverStep = "RESET_ACCOUNT"
	RecoverStepResetPassword   RecoverStep = "RESET_PASSWORD"
)

//nolint:gochecknoglobals
var recoverSteps = []RecoverStep{
	RecoverStepCloudRecovery,
	RecoverStepRecoveryOptions,
	RecoverStepRecoveryPhrase,
	RecoverStepResetAccount,
	RecoverStepResetPassword,
}

// ParseRecoverStep converts a wire value into a RecoverStep.
func ParseRecoverStep(s string) (RecoverStep, error) {
	return parseEnum("recover step", s, recoverSteps)
}

func (s RecoverStep) Valid() bool {
	return slices.Contains(recoverSteps, s)
}

func (s RecoverStep) String() string {
	return string(s)
}

func (s *RecoverStep) UnmarshalText(text []byte) error {
	v, err := ParseRecoverStep(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// ProductAuthOption is the product a user authenticates into.
type ProductAuthOption string

const (
	ProductExchange ProductAuthOption = "EXCHANGE"
	ProductExplorer ProductAuthOption = "EXPLORER"
	ProductWallet   ProductAuthOption = "WALLET"
)

//nolint:gochecknoglobals
var productAuthOptions = []ProductAuthOption{ProductExchange, ProductExplorer, ProductWallet}

func ParseProductAuthOption(s string) (ProductAuthOption, error) {
	return parseEnum("product", s, productAuthOptions)
}

func (p ProductAuthOption) Valid() bool {
	return slices.Contains(productAuthOptions, p)
}

func (p ProductAuthOption) String() string {
	return string(p)
}

func (p *ProductAuthOption) UnmarshalText(text []byte) error {
	v, err := ParseProductAuthOption(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// PlatformType is the client platform that opened the session.
type PlatformType string

const (
	PlatformAndroid PlatformType = "ANDROID"
	PlatformIOS     PlatformType = "IOS"
	PlatformWeb     PlatformType = "WEB"
)

//nolint:gochecknoglobals
var platformTypes = []PlatformType{PlatformAndroid, PlatformIOS, PlatformWeb}

func ParsePlatformType(s string) (PlatformType, error) {
	return parseEnum("platform", s, platformTypes)
}

func (p PlatformType) Valid() bool {
	return slices.Contains(platformTypes, p)
}

func (p PlatformType) String() string {
	return string(p)
}

func (p *PlatformType) UnmarshalText(text []byte) error {
	v, err := ParsePlatformType(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// UserType classifies account linkage as reported by the server. Read-only to clients.
type UserType string

const (
	UserTypeExchange                UserType = "EXCHANGE"
	UserTypeWallet                  UserType = "WALLET"
	UserTypeWalletExchangeBoth      UserType = "WALLET_EXCHANGE_BOTH"
	UserTypeWalletExchangeLinked    UserType = "WALLET_EXCHANGE_LINKED"
	UserTypeWalletExchangeNotLinked UserType = "WALLET_EXCHANGE_NOT_LINKED"
)

//nolint:gochecknoglobals
var userTypes = []UserType{
	UserTypeExchange,
	UserTypeWallet,
	UserTypeWalletExchangeBoth,
	UserTypeWalletExchangeLinked,
	UserTypeWalletExchangeNotLinked,
}

func ParseUserType(s string) (UserType, error) {
	return parseEnum("user type", s, userTypes)
}

func (u UserType) Valid() bool {
	return slices.Contains(userTypes, u)
}

func (u UserType) String() string {
	return string(u)
}

func (u *UserType) UnmarshalText(text []byte) error {
	v, err := ParseUserType(string(text))
	if err != nil {
		return err
	}
	*u = v

	return nil
}

// AccountUnificationFlow names the merge or upgrade path in progress.
type AccountUnificationFlow string

const (
	FlowExchangeMerge         AccountUnificationFlow = "EXCHANGE_MERGE"
	FlowExchangeUpgrade       AccountUnificationFlow = "EXCHANGE_UPGRADE"
	FlowMobileExchangeMerge   AccountUnificationFlow = "MOBILE_EXCHANGE_MERGE"
	FlowMobileExchangeUpgrade AccountUnificationFlow = "MOBILE_EXCHANGE_UPGRADE"
	FlowMobileWalletMerge     AccountUnificationFlow = "MOBILE_WALLET_MERGE"
	FlowWalletMerge           AccountUnificationFlow = "WALLET_MERGE"
)

//nolint:gochecknoglobals
var accountUnificationFlows = []AccountUnificationFlow{
	FlowExchangeMerge,
	FlowExchangeUpgrade,
	FlowMobileExchangeMerge,
	FlowMobileExchangeUpgrade,
	FlowMobileWalletMerge,
	FlowWalletMerge,
}

func ParseAccountUnificationFlow(s string) (AccountUnificationFlow, error) {
	return parseEnum("account unification flow", s, accountUnificationFlows)
}

func (f AccountUnificationFlow) Valid() bool {
	return slices.Contains(accountUnificationFlows, f)
}

func (f AccountUnificationFlow) String() string {
	return string(f)
}

func (f *AccountUnificationFlow) UnmarshalText(text []byte) error {
	v, err := ParseAccountUnificationFlow(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// IsMobile reports whether the flow was started from the companion app.
func (f AccountUnificationFlow) IsMobile() bool {
	switch f {
	case FlowMobileExchangeMerge, FlowMobileExchangeUpgrade, FlowMobileWalletMerge:
		return true
	default:
		return false
	}
}

// BridgeFlow maps the unification flow to the bridge message family it expects.
func (f AccountUnificationFlow) BridgeFlow() BridgeFlow {
	switch f {
	case FlowMobileWalletMerge, FlowWalletMerge:
		return BridgeFlowWalletMerge
	default:
		return BridgeFlowExchangeLink
	}
}
