package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("account not found")
var ErrDuplicateAccount = errors.New("duplicate account id")

var ErrUnauthorized = errors.New("unauthorized")
var ErrAccountLocked = fmt.Errorf("%w: account locked", ErrUnauthorized)

// ErrInsufficientFunds and ErrLimitExceeded both match ErrInvalidAmount
// under errors.Is.
var ErrInvalidAmount = errors.New("invalid amount")
var ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrInvalidAmount)
var ErrLimitExceeded = fmt.Errorf("%w: exceeds withdrawal limit", ErrInvalidAmount)

var ErrInvalidFormat = errors.New("pin must be exactly 4 digits")
var ErrSameAccount = errors.New("cannot transfer to the same account")
