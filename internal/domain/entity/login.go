package entity

import (
	"bytes"
	"encoding/json"

	"walletauth/internal/errors"
)

// LoginError is the failure payload of the wallet login operation. The wire
// carries one of a plain message, a bare boolean flag, or a structured error
// that may demand device authorization. At most one form is set.
type LoginError struct {
	Message string
	Flag    *bool
	Detail  *LoginErrorDetail
}

type LoginErrorDetail struct {
	AuthType              int    `json:"auth_type"`
	AuthorizationRequired bool   `json:"authorization_required"`
	InitialError          string `json:"initial_error,omitempty"`
	Message               string `json:"message,omitempty"`
}

// LoginErrorMessage builds the plain message form.
func LoginErrorMessage(msg string) LoginError {
	return LoginError{Message: msg}
}

// LoginErrorFlag builds the boolean form.
func LoginErrorFlag(flag bool) LoginError {
	return LoginError{Flag: &flag}
}

// Text returns a human readable description for any form.
func (e LoginError) Text() string {
	switch {
	case e.Detail != nil:
		if e.Detail.Message != "" {
			return e.Detail.Message
		}

		return e.Detail.InitialError
	case e.Flag != nil:
		return "login failed"
	default:
		return e.Message
	}
}

// RequiresAuthorization reports whether the server asked for device approval.
func (e LoginError) RequiresAuthorization() bool {
	return e.Detail != nil && e.Detail.AuthorizationRequired
}

func (e LoginError) MarshalJSON() ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch {
	case e.Detail != nil:
		b, err = json.Marshal(e.Detail)
	case e.Flag != nil:
		b, err = json.Marshal(*e.Flag)
	default:
		b, err = json.Marshal(e.Message)
	}

	return b, errors.WithStack(err)
}

func (e *LoginError) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var detail LoginErrorDetail
		if err := json.Unmarshal(b, &detail); err != nil {
			return errors.WithStack(err)
		}
		*e = LoginError{Detail: &detail}

		return nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return errors.WithStack(err)
	}
	switch t := v.(type) {
	case string:
		*e = LoginError{Message: t}
	case bool:
		*e = LoginError{Flag: &t}
	case nil:
		*e = LoginError{}
	default:
		// numbers and arrays are outside the union; keep the raw text
		*e = LoginError{Message: string(b)}
	}

	return nil
}

// Ack is an empty success payload.
type Ack struct{}

// ProductAuthMetadata identifies where the session was opened from. It is
// fixed when the session starts.
type ProductAuthMetadata struct {
	Platform PlatformType      `json:"platform" validate:"required"`
	Product  ProductAuthOption `json:"product" validate:"required"`
	Redirect string            `json:"redirect,omitempty"`
}

// Validate checks both enum members.
func (m ProductAuthMetadata) Validate() error {
	if !m.Platform.Valid() {
		return errors.Wrapf(ErrInvalidEnumValue, "platform %q", m.Platform)
	}
	if !m.Product.Valid() {
		return errors.Wrapf(ErrInvalidEnumValue, "product %q", m.Product)
	}

	return nil
}
