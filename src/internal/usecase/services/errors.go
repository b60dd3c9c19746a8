package services

import (
	"errors"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/commons"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
)

var ErrInvalidSession = errors.New("invalid session")
var ErrSessionActive = errors.New("another session is already active")
var ErrPinMismatch = errors.New("new pin and confirmation do not match")

// failureMessage maps a domain error to the response message the HTTP layer
// keys its status codes on. Wrapped sentinels are checked before their parents.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return commons.MsgInsufficientFunds
	case errors.Is(err, domain.ErrLimitExceeded):
		return commons.MsgLimitExceeded
	case errors.Is(err, domain.ErrInvalidAmount):
		return commons.MsgInvalidAmount
	case errors.Is(err, domain.ErrSameAccount):
		return commons.MsgSameAccount
	case errors.Is(err, domain.ErrNotFound):
		return commons.MsgAccountNotFound
	case errors.Is(err, domain.ErrInvalidFormat):
		return commons.MsgInvalidPinFormat
	case errors.Is(err, domain.ErrAccountLocked):
		return commons.MsgAccountLocked
	case errors.Is(err, domain.ErrUnauthorized):
		return commons.MsgInvalidPin
	case errors.Is(err, ErrInvalidSession):
		return commons.MsgInvalidSession
	case errors.Is(err, ErrSessionActive):
		return commons.MsgSessionActive
	case errors.Is(err, ErrPinMismatch):
		return commons.MsgPinMismatch
	default:
		return commons.MsgRequestFailed
	}
}
