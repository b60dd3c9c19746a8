package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor units (cents).
type Amount int64

const minorUnitExp = 2

var maxAmountDecimal = decimal.New(math.MaxInt64, -minorUnitExp)

// maxIntegerDigits is the integer-part width of math.MaxInt64 minor units.
const maxIntegerDigits = 17

// maxEchoLen caps how much of a rejected input is repeated in an error.
const maxEchoLen = 32

// ParseAmount converts a decimal string such as "200.50" into minor units.
// Exponent notation is refused.
func ParseAmount(raw string) (Amount, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.ContainsAny(trimmed, "eE") {
		return 0, fmt.Errorf("%w: %q is not a plain decimal", ErrInvalidAmount, clip(trimmed))
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, clip(trimmed))
	}
	return AmountFromDecimal(d)
}

// AmountFromDecimal rejects values with more than two fractional digits
// instead of rounding them. Magnitude is bounded from the coefficient width
// and exponent before any rescaling comparison runs.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsZero() {
		return 0, nil
	}
	integerDigits := int64(d.NumDigits()) + int64(d.Exponent())
	if integerDigits > maxIntegerDigits {
		return 0, fmt.Errorf("%w: value is out of range", ErrInvalidAmount)
	}
	if integerDigits < -maxIntegerDigits {
		return 0, fmt.Errorf("%w: value has more than %d decimal places", ErrInvalidAmount, minorUnitExp)
	}
	if !d.Equal(d.Truncate(minorUnitExp)) {
		return 0, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, clip(d.String()), minorUnitExp)
	}
	if d.Abs().GreaterThan(maxAmountDecimal) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, clip(d.String()))
	}
	return Amount(d.Shift(minorUnitExp).IntPart()), nil
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -minorUnitExp)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(minorUnitExp)
}

func clip(s string) string {
	if len(s) <= maxEchoLen {
		return s
	}
	return s[:maxEchoLen] + "..."
}

func canAdd(balance, amount Amount) bool {
	return balance <= Amount(math.MaxInt64)-amount
}
