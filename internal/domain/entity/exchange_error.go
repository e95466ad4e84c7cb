package entity

// ExchangeErrorCode is a recognized numeric error from the exchange login path.
type ExchangeErrorCode int

const (
	ExchangeErrInvalidCredentials ExchangeErrorCode = 8
	// ExchangeErrWrong2FA is an incorrect second-factor code.
	ExchangeErrWrong2FA ExchangeErrorCode = 10
	// ExchangeErrBad2FA is a missing second-factor code.
	ExchangeErrBad2FA             ExchangeErrorCode = 11
	ExchangeErrNotLinked          ExchangeErrorCode = 12
	ExchangeErrEmailNotVerified   ExchangeErrorCode = 65
	ExchangeErrUnrecognizedDevice ExchangeErrorCode = 99
)

// ExchangeErrorUnrecognized tags a failure whose wire code is outside the closed set.
const ExchangeErrorUnrecognized = "UNRECOGNIZED"

//nolint:gochecknoglobals
var exchangeErrorNames = map[ExchangeErrorCode]string{
	ExchangeErrInvalidCredentials: "INVALID_CREDENTIALS",
	ExchangeErrWrong2FA:           "WRONG_2FA",
	ExchangeErrBad2FA:             "BAD_2FA",
	ExchangeErrNotLinked:          "NOT_LINKED",
	ExchangeErrEmailNotVerified:   "EMAIL_NOT_VERIFIED",
	ExchangeErrUnrecognizedDevice: "UNRECOGNIZED_DEVICE",
}

// DecodeExchangeError maps a wire code onto the closed set. Any other integer
// reports false; it is never folded into one of the known codes.
func DecodeExchangeError(code int) (ExchangeErrorCode, bool) {
	c := ExchangeErrorCode(code)
	if _, ok := exchangeErrorNames[c]; !ok {
		return 0, false
	}

	return c, true
}

func (c ExchangeErrorCode) String() string {
	if name, ok := exchangeErrorNames[c]; ok {
		return name
	}

	return ExchangeErrorUnrecognized
}

// ExchangeLoginFailure is the failure payload of the exchange login operation.
type ExchangeLoginFailure struct {
	Code    *int   `json:"code,omitempty"`
	Tag     string `json:"tag"`
	Message string `json:"message,omitempty"`
}

// NewExchangeLoginFailure tags a wire failure. A nil code means the server sent
// no numeric code at all.
func NewExchangeLoginFailure(code *int, message string) ExchangeLoginFailure {
	f := ExchangeLoginFailure{Tag: ExchangeErrorUnrecognized, Message: message}
	if code == nil {
		return f
	}

	raw := *code
	f.Code = &raw
	if known, ok := DecodeExchangeError(raw); ok {
		f.Tag = known.String()
	}

	return f
}

// Known returns the recognized code, if any.
func (f ExchangeLoginFailure) Known() (ExchangeErrorCode, bool) {
	if f.Code == nil {
		return 0, false
	}

	return DecodeExchangeError(*f.Code)
}
