package tracker

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value. Score files and both corpora carry USD
// amounts, so the currency defaults to USD.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M returns a USD Money for the given value.
func M(value float64) Money {
	return Money{value: decimal.NewFromFloat(value), cur: money.USD}
}

// ParseMoney parses a currency-formatted cell into a Money.
//
// Accepted forms: "22.63", "$21.99", "$3,208.46", "-$555.69", "-$45,749.70".
// The empty string is not a valid Money; callers treat empty cells as absent
// before calling.
func ParseMoney(s string) (Money, error) {
	t := strings.TrimSpace(s)
	neg := strings.HasPrefix(t, "-")
	t = strings.TrimPrefix(t, "-")
	t = strings.TrimPrefix(t, "$")
	t = strings.ReplaceAll(t, ",", "")
	v, err := decimal.NewFromString(t)
	if err != nil {
		return Money{}, fmt.Errorf("invalid currency value %q: %w", s, ErrParse)
	}
	if neg {
		v = v.Neg()
	}
	return Money{value: v, cur: money.USD}, nil
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = money.USD
	}
	// to get a never nil currency we need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the formatted representation of the money value, e.g. "$21.99".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: m.cur} }

// Decimal returns the exact decimal value in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

// AsFloat returns the value in major units for ratio arithmetic.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
