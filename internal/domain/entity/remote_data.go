package entity

import (
	"encoding/json"

	"walletauth/internal/errors"
)

// ErrInvalidTransition is returned when a result is moved out of order.
var ErrInvalidTransition = errors.New("invalid transition")

// RemoteStatus is the tag of a RemoteData value.
type RemoteStatus string

const (
	StatusNotAsked RemoteStatus = "NOT_ASKED"
	StatusLoading  RemoteStatus = "LOADING"
	StatusFailure  RemoteStatus = "FAILURE"
	StatusSuccess  RemoteStatus = "SUCCESS"
)

// RemoteData is the outcome of an externally scheduled operation:
// NotAsked, Loading, Failure(E) or Success(S). The zero value is NotAsked.
// Values are immutable; transitions return a new value.
type RemoteData[E, S any] struct {
	status  RemoteStatus
	failure E
	success S
}

// NotAsked returns a result for an operation that has not been attempted.
func NotAsked[E, S any]() RemoteData[E, S] {
	return RemoteData[E, S]{}
}

// Status returns the current tag.
func (r RemoteData[E, S]) Status() RemoteStatus {
	if r.status == "" {
		return StatusNotAsked
	}

	return r.status
}

func (r RemoteData[E, S]) IsNotAsked() bool { return r.Status() == StatusNotAsked }
func (r RemoteData[E, S]) IsLoading() bool  { return r.Status() == StatusLoading }
func (r RemoteData[E, S]) IsFailure() bool  { return r.Status() == StatusFailure }
func (r RemoteData[E, S]) IsSuccess() bool  { return r.Status() == StatusSuccess }

// IsTerminal reports whether the attempt has resolved.
func (r RemoteData[E, S]) IsTerminal() bool {
	return r.IsFailure() || r.IsSuccess()
}

// Failure returns the failure payload when the result is a Failure.
func (r RemoteData[E, S]) Failure() (E, bool) {
	if !r.IsFailure() {
		var zero E

		return zero, false
	}

	return r.failure, true
}

// Success returns the success payload when the result is a Success.
func (r RemoteData[E, S]) Success() (S, bool) {
	if !r.IsSuccess() {
		var zero S

		return zero, false
	}

	return r.success, true
}

// Start moves NotAsked to Loading.
func (r RemoteData[E, S]) Start() (RemoteData[E, S], error) {
	if !r.IsNotAsked() {
		return r, errors.Wrapf(ErrInvalidTransition, "start from %s", r.Status())
	}

	return RemoteData[E, S]{status: StatusLoading}, nil
}

// Fail resolves a Loading result as a Failure.
func (r RemoteData[E, S]) Fail(reason E) (RemoteData[E, S], error) {
	if !r.IsLoading() {
		return r, errors.Wrapf(ErrInvalidTransition, "fail from %s", r.Status())
	}

	return RemoteData[E, S]{status: StatusFailure, failure: reason}, nil
}

// Succeed resolves a Loading result as a Success.
func (r RemoteData[E, S]) Succeed(value S) (RemoteData[E, S], error) {
	if !r.IsLoading() {
		return r, errors.Wrapf(ErrInvalidTransition, "succeed from %s", r.Status())
	}

	return RemoteData[E, S]{status: StatusSuccess, success: value}, nil
}

// Reset returns NotAsked from any state, dropping any previous payload.
func (r RemoteData[E, S]) Reset() RemoteData[E, S] {
	return RemoteData[E, S]{}
}

type remoteDataJSON struct {
	Status RemoteStatus    `json:"status"`
	Error  json.RawMessage `json:"error,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

func (r RemoteData[E, S]) MarshalJSON() ([]byte, error) {
	out := remoteDataJSON{Status: r.Status()}

	var err error
	switch out.Status {
	case StatusFailure:
		out.Error, err = json.Marshal(r.failure)
	case StatusSuccess:
		out.Data, err = json.Marshal(r.success)
	case StatusNotAsked, StatusLoading:
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	b, err := json.Marshal(out)

	return b, errors.WithStack(err)
}

func (r *RemoteData[E, S]) UnmarshalJSON(b []byte) error {
	var in remoteDataJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return errors.WithStack(err)
	}

	var next RemoteData[E, S]
	switch in.Status {
	case StatusNotAsked:
	case StatusLoading:
		next.status = StatusLoading
	case StatusFailure:
		next.status = StatusFailure
		if len(in.Error) > 0 {
			if err := json.Unmarshal(in.Error, &next.failure); err != nil {
				return errors.Wrap(err, "decode failure payload")
			}
		}
	case StatusSuccess:
		next.status = StatusSuccess
		if len(in.Data) > 0 {
			if err := json.Unmarshal(in.Data, &next.success); err != nil {
				return errors.Wrap(err, "decode success payload")
			}
		}
	default:
		return errors.Wrapf(ErrInvalidEnumValue, "remote status %q", in.Status)
	}
	*r = next

	return nil
}
