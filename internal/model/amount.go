package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money value. Input that does not parse yields a NaN amount,
// which renders as "NaN", is stored as null and makes any sum NaN.
type Amount struct {
	d   decimal.Decimal
	nan bool
}

// NaN is the amount produced by unparsable input.
var NaN = Amount{nan: true}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount { return Amount{d: d} }

// AmountFromFloat is a convenience for tests and seed data.
func AmountFromFloat(f float64) Amount { return Amount{d: decimal.NewFromFloat(f)} }

// ParseAmount reads user input. A comma decimal separator is accepted.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return NaN
	}
	return Amount{d: d}
}

func (a Amount) IsNaN() bool              { return a.nan }
func (a Amount) Decimal() decimal.Decimal { return a.d }

// Add sums two amounts; NaN is contagious.
func (a Amount) Add(b Amount) Amount {
	if a.nan || b.nan {
		return NaN
	}
	return Amount{d: a.d.Add(b.d)}
}

// Fixed renders with two decimals.
func (a Amount) Fixed() string {
	if a.nan {
		return "NaN"
	}
	return a.d.StringFixed(2)
}

func (a Amount) String() string { return a.Fixed() }

func (a Amount) Equal(b Amount) bool {
	if a.nan || b.nan {
		return a.nan == b.nan
	}
	return a.d.Equal(b.d)
}

// MarshalJSON writes a plain JSON number, or null for NaN.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.nan {
		return []byte("null"), nil
	}
	return []byte(a.d.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = NaN
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	*a = Amount{d: d}
	return nil
}
