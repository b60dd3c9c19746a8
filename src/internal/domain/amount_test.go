package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
		ok   bool
	}{
		{"200", 200_00, true},
		{"200.5", 200_50, true},
		{" 0.01 ", 1, true},
		{"1000.00", 1000_00, true},
		{"-3.25", -3_25, true},
		{"1.005", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
		{"92233720368547758.07", 9223372036854775807, true},
		{"92233720368547758.08", 0, false},
		{"0.01000", 1, true},
		{"0.001", 0, false},
		{"1e2", 0, false},
		{"1E2", 0, false},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.in)
		if !c.ok {
			require.ErrorIs(t, err, ErrInvalidAmount, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got, c.in)
	}
}

func TestAmountString(t *testing.T) {
	require.Equal(t, "4700.00", Amount(4700_00).String())
	require.Equal(t, "0.05", Amount(5).String())
	require.True(t, Amount(12_34).Decimal().Equal(decimal.RequireFromString("12.34")))
}

func TestParseAmount_HugeInputsFailFast(t *testing.T) {
	inputs := []string{
		"1e10000000",
		"-1E10000000",
		"1e-10000000",
		"0." + strings.Repeat("0", 60000) + "1",
		strings.Repeat("9", 60000),
	}
	for _, in := range inputs {
		start := time.Now()
		_, err := ParseAmount(in)
		require.ErrorIs(t, err, ErrInvalidAmount)
		require.Less(t, time.Since(start), time.Second)
		require.Less(t, len(err.Error()), 200)
	}
}

func TestAmountFromDecimal_BoundsExponent(t *testing.T) {
	for _, d := range []decimal.Decimal{
		decimal.New(1, 10000000),
		decimal.New(-7, 10000000),
		decimal.New(1, -10000000),
	} {
		start := time.Now()
		_, err := AmountFromDecimal(d)
		require.ErrorIs(t, err, ErrInvalidAmount)
		require.Less(t, time.Since(start), time.Second)
		require.Less(t, len(err.Error()), 200)
	}

	got, err := AmountFromDecimal(decimal.New(0, 10000000))
	require.NoError(t, err)
	require.Equal(t, Amount(0), got)
}
