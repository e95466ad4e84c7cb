package entity

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"walletauth/internal/errors"
)

// ErrInvalidMagicLink is returned when an encoded magic link cannot be decoded.
var ErrInvalidMagicLink = errors.New("invalid magic link payload")

// MagicLinkData is the wallet context carried by a magic link. Every field is
// optional; a missing key decodes to nil and only narrows what the client can
// offer next.
type MagicLinkData struct {
	Exchange    *MagicLinkExchange `json:"exchange,omitempty"`
	Mergeable   *bool              `json:"mergeable,omitempty"`
	Product     *ProductAuthOption `json:"product,omitempty"`
	Unified     *bool              `json:"unified,omitempty"`
	Upgradeable *bool              `json:"upgradeable,omitempty"`
	UserType    *UserType          `json:"user_type,omitempty"`
	Wallet      *MagicLinkWallet   `json:"wallet,omitempty"`
}

// MagicLinkExchange describes the exchange account at the top level of the link.
type MagicLinkExchange struct {
	Email     *string `json:"email,omitempty"`
	TwoFAMode *bool   `json:"twoFaMode,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
}

// MagicLinkWalletExchange is the exchange account as seen from the wallet record.
type MagicLinkWalletExchange struct {
	Email     *string `json:"email,omitempty"`
	TwoFAMode *bool   `json:"two_fa_mode,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
}

type MagicLinkNabu struct {
	RecoveryEligible *bool   `json:"recovery_eligible,omitempty"`
	RecoveryToken    *string `json:"recovery_token,omitempty"`
	UserID           *string `json:"user_id,omitempty"`
}

type MagicLinkWallet struct {
	AuthType           *int                     `json:"auth_type,omitempty"`
	Email              *string                  `json:"email,omitempty"`
	EmailCode          *string                  `json:"email_code,omitempty"`
	Exchange           *MagicLinkWalletExchange `json:"exchange,omitempty"`
	GUID               *string                  `json:"guid,omitempty"`
	HasCloudBackup     *bool                    `json:"has_cloud_backup,omitempty"`
	IsMobileSetup      *LooseBool               `json:"is_mobile_setup,omitempty"`
	LastMnemonicBackup *int64                   `json:"last_mnemonic_backup,omitempty"`
	MobileDeviceType   *int                     `json:"mobile_device_type,omitempty"`
	Nabu               *MagicLinkNabu           `json:"nabu,omitempty"`
	SessionID          *string                  `json:"session_id,omitempty"`
}

// LooseBool accepts a JSON boolean or a string such as "true" or "0".
type LooseBool bool

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = LooseBool(asBool)

		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return errors.Wrap(err, "is_mobile_setup must be a boolean or string")
	}
	if strings.TrimSpace(asString) == "" {
		*b = false

		return nil
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(asString))
	if err != nil {
		return errors.Wrapf(err, "is_mobile_setup %q", asString)
	}
	*b = LooseBool(parsed)

	return nil
}

// DecodeMagicLinkJSON decodes the JSON form of a magic link payload.
func DecodeMagicLinkJSON(raw []byte) (*MagicLinkData, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.Wrap(ErrInvalidMagicLink, "empty payload")
	}

	var data MagicLinkData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(ErrInvalidMagicLink, err.Error())
	}

	return &data, nil
}

// DecodeMagicLink decodes base64-wrapped JSON as found in the link fragment.
// Standard and URL-safe alphabets are accepted, with or without padding, and
// the value may still be percent-encoded.
func DecodeMagicLink(encoded string) (*MagicLinkData, error) {
	s := strings.TrimSpace(encoded)
	if strings.Contains(s, "%") {
		unescaped, err := url.QueryUnescape(s)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidMagicLink, err.Error())
		}
		s = unescaped
	}

	s = strings.TrimRight(s, "=")
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)

	raw, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidMagicLink, err.Error())
	}

	return DecodeMagicLinkJSON(raw)
}

// EncodeMagicLink produces padded standard base64 over the JSON form.
func EncodeMagicLink(data *MagicLinkData) (string, error) {
	if data == nil {
		return "", errors.Wrap(ErrInvalidMagicLink, "nil payload")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// GUID returns the wallet identifier, if the link carries one.
func (d *MagicLinkData) GUID() (string, bool) {
	if d == nil || d.Wallet == nil || d.Wallet.GUID == nil {
		return "", false
	}

	return *d.Wallet.GUID, true
}

// Email prefers the wallet email and falls back to the exchange email.
func (d *MagicLinkData) Email() (string, bool) {
	if d == nil {
		return "", false
	}
	if d.Wallet != nil && d.Wallet.Email != nil {
		return *d.Wallet.Email, true
	}
	if d.Exchange != nil && d.Exchange.Email != nil {
		return *d.Exchange.Email, true
	}

	return "", false
}

// HasExchange reports whether any exchange account is referenced.
func (d *MagicLinkData) HasExchange() bool {
	if d == nil {
		return false
	}

	return d.Exchange != nil || (d.Wallet != nil && d.Wallet.Exchange != nil)
}

// Clone returns a deep copy.
func (d *MagicLinkData) Clone() *MagicLinkData {
	if d == nil {
		return nil
	}

	// Every field is a plain value behind a pointer, so a JSON round trip is exact.
	raw, err := json.Marshal(d)
	if err != nil {
		return nil
	}

	var out MagicLinkData
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}

	return &out
}
