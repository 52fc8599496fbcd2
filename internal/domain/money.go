package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxMoney is the largest amount accepted anywhere in the API
// (one trillion in major units).
const MaxMoney Money = 1_000_000_000_000_00

// ErrMoneyRange is returned when an amount falls outside ±MaxMoney.
var ErrMoneyRange = errors.New("money: amount out of range")

var maxMoneyDecimal = MaxMoney.Decimal()

// Money is a currency amount in minor units (cents). It marshals to JSON as
// a decimal number with two fraction digits. Arithmetic goes through
// decimal.Decimal so intermediate products never wrap.
type Money int64

// NewMoney builds a Money value from whole units and cents.
func NewMoney(units, cents int64) Money {
	return Money(units*100 + cents)
}

// MoneyFromDecimal rounds d to cents, half away from zero.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	d = d.Round(2)
	if d.Abs().GreaterThan(maxMoneyDecimal) {
		return 0, fmt.Errorf("%w: %s", ErrMoneyRange, d.StringFixed(2))
	}
	return Money(d.Shift(2).IntPart()), nil
}

// Cents returns the raw amount in minor units.
func (m Money) Cents() int64 { return int64(m) }

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal { return decimal.New(int64(m), -2) }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m < 0 }

// InRange reports whether the amount lies in [0, MaxMoney].
func (m Money) InRange() bool { return m >= 0 && m <= MaxMoney }

// MulRatio multiplies the amount by num/den, rounding half away from zero.
func (m Money) MulRatio(num, den int64) (Money, error) {
	if den == 0 {
		return 0, fmt.Errorf("money: zero denominator")
	}
	r := decimal.NewFromInt(num).Div(decimal.NewFromInt(den))
	return MoneyFromDecimal(m.Decimal().Mul(r))
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number, e.g. 700.00.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	v, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMoney parses a plain decimal string with at most two fraction digits.
// Exponent notation is rejected, as is anything beyond ±MaxMoney.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}

	neg := false
	digits := s
	if digits[0] == '-' || digits[0] == '+' {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	whole, frac, hasFrac := strings.Cut(digits, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (frac == "" || len(frac) > 2) {
		return 0, fmt.Errorf("money: %q must have one or two fraction digits", s)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}

	d, err := decimal.NewFromString(whole + "." + frac + "0")
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	if neg {
		d = d.Neg()
	}
	return MoneyFromDecimal(d)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
