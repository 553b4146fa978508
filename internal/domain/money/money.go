package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrTooManyDecimal = errors.New("amount has more than two decimal places")
)

// Money is a naira amount held as integer kobo.
type Money struct {
	kobo int64
}

func FromKobo(kobo int64) Money {
	return Money{kobo: kobo}
}

func FromNaira(naira int64) Money {
	return Money{kobo: naira * 100}
}

// Parse reads a decimal naira string such as "200" or "4000.50".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if !d.Equal(d.Round(2)) {
		return Money{}, ErrTooManyDecimal
	}
	return Money{kobo: d.Shift(2).IntPart()}, nil
}

func (m Money) Kobo() int64 {
	return m.kobo
}

func (m Money) IsPositive() bool {
	return m.kobo > 0
}

func (m Money) IsZero() bool {
	return m.kobo == 0
}

func (m Money) Neg() Money {
	return Money{kobo: -m.kobo}
}

func (m Money) Add(other Money) Money {
	return Money{kobo: m.kobo + other.kobo}
}

func (m Money) String() string {
	return decimal.New(m.kobo, -2).StringFixed(2)
}

func (m Money) Equal(other Money) bool {
	return m.kobo == other.kobo
}
