// Package money holds currency amounts as integer centavos so that
// billing arithmetic never accumulates floating-point drift. Amounts
// cross the API and snapshot boundary as whole-peso numbers, which is
// what the booking records historically contained.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// PesoSign is the Philippine peso currency symbol.
const PesoSign = "₱"

// Cents is a currency amount in centavos.
type Cents int64

// FromPesos converts a peso amount to centavos, rounding half away from zero.
func FromPesos(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Pesos returns the amount as a floating-point peso value.
func (c Cents) Pesos() float64 {
	return float64(c) / 100
}

// Mul scales the amount by a whole number (e.g. a day count).
func (c Cents) Mul(n int) Cents {
	return c * Cents(n)
}

// String formats the amount as a peso string with thousands separators,
// omitting centavos when the amount is whole: ₱1,500 or ₱1,500.50.
func (c Cents) String() string {
	neg := c < 0
	abs := int64(c)
	if neg {
		abs = -abs
	}

	whole := abs / 100
	frac := abs % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	s := PesoSign + b.String()
	if frac != 0 {
		s = fmt.Sprintf("%s.%02d", s, frac)
	}
	if neg {
		s = "-" + s
	}
	return s
}

// MarshalJSON renders the amount as a peso number.
func (c Cents) MarshalJSON() ([]byte, error) {
	if c%100 == 0 {
		return json.Marshal(int64(c) / 100)
	}
	return json.Marshal(c.Pesos())
}

// UnmarshalJSON parses a peso number into centavos.
func (c *Cents) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = FromPesos(v)
	return nil
}
