package impl

import (
	"walletauth/internal/domain/entity"
	domainerrors "walletauth/internal/domain/errors"
	"walletauth/internal/domain/repository"
	"walletauth/internal/errors"
)

//nolint:gochecknoglobals
var sessionErrorMap = []struct {
	cause  error
	appErr *domainerrors.BaseError
}{
	{repository.ErrSessionNotFound, domainerrors.ErrSessionNotFound},
	{repository.ErrDuplicateSession, domainerrors.ErrSessionAlreadyExists},
	{entity.ErrInvalidMagicLink, domainerrors.ErrMagicLinkInvalid},
	{entity.ErrInvalidBridgeMessage, domainerrors.ErrBridgeMessageInvalid},
	{entity.ErrOperationInFlight, domainerrors.ErrOperationInFlight},
	{entity.ErrAlreadyAuthenticated, domainerrors.ErrAlreadyAuthenticated},
	{entity.ErrMetadataImmutable, domainerrors.ErrProductMetadataImmutable},
	{entity.ErrUnificationFlowActive, domainerrors.ErrUnificationFlowActive},
	{entity.ErrNoDeviceChallenge, domainerrors.ErrNoDeviceChallenge},
	{entity.ErrInvalidTransition, domainerrors.ErrInvalidTransition},
	{entity.ErrInvariantViolation, domainerrors.ErrInvariantViolation},
	{entity.ErrInvalidEnumValue, domainerrors.ErrValidationFailed},
	{entity.ErrInvalidPayload, domainerrors.ErrValidationFailed},
}

// toAppError maps model and store sentinels to the AppError the delivery
// layer renders. Anything unrecognized stays an internal error.
func toAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	for _, m := range sessionErrorMap {
		if errors.Is(err, m.cause) {
			return errors.WithStack(m.appErr.WithDetails(err.Error()))
		}
	}

	return errors.WithStack(err)
}
