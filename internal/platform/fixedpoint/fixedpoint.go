// Package fixedpoint converts between decimal strings and the ledger's
// fixed-point integer representation (6 implied decimal digits).
package fixedpoint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Decimals is the number of implied decimal digits at the ledger boundary.
const Decimals = 6

var (
	ErrMalformed    = errors.New("malformed decimal amount")
	ErrNegative     = errors.New("amount must not be negative")
	ErrTooPrecise   = errors.New("amount has more fractional digits than the ledger supports")
	ErrOutOfRange   = errors.New("amount does not fit the ledger representation")
	ErrZeroDivision = errors.New("division by zero")
)

var (
	scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

	// MaxUint256 is the largest value the ledger can represent.
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// Scale returns 10^Decimals.
func Scale() *big.Int { return new(big.Int).Set(scale) }

// Parse converts a non-negative decimal string such as "5.50" into minor
// units (5500000). At most Decimals fractional digits are accepted.
func Parse(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrMalformed
	}
	if strings.HasPrefix(s, "-") {
		return nil, ErrNegative
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > Decimals {
		return nil, ErrTooPrecise
	}
	digits := whole + frac + strings.Repeat("0", Decimals-len(frac))
	units, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, ErrMalformed
	}
	if units.Cmp(MaxUint256) > 0 {
		return nil, ErrOutOfRange
	}
	return units, nil
}

// Format converts minor units back into a decimal string, trimming
// insignificant trailing zeros ("5500000" -> "5.5", "60000000" -> "60").
func Format(units *big.Int) string {
	if units == nil {
		return "0"
	}
	neg := units.Sign() < 0
	q, r := new(big.Int).QuoRem(new(big.Int).Abs(units), scale, new(big.Int))
	out := q.String()
	if r.Sign() != 0 {
		frac := fmt.Sprintf("%0*d", Decimals, r)
		frac = strings.TrimRight(frac, "0")
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Mul scales minor units by an integer quantity.
func Mul(units *big.Int, quantity uint64) *big.Int {
	return new(big.Int).Mul(units, new(big.Int).SetUint64(quantity))
}

// QuotientUnits rounds a rational decimal amount half-up at the given number
// of decimal places and returns it in minor units. places must not exceed
// Decimals.
func QuotientUnits(amount *big.Rat, places int) (*big.Int, error) {
	if amount == nil {
		return nil, ErrMalformed
	}
	if amount.Sign() < 0 {
		return nil, ErrNegative
	}
	if places < 0 || places > Decimals {
		return nil, ErrTooPrecise
	}

	// round half-up: floor(amount*10^places + 1/2)
	shift := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(amount, new(big.Rat).SetInt(shift))
	scaled.Add(scaled, big.NewRat(1, 2))
	rounded := new(big.Int).Quo(scaled.Num(), scaled.Denom())

	rest := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(Decimals-places)), nil)
	units := rounded.Mul(rounded, rest)
	if units.Cmp(MaxUint256) > 0 {
		return nil, ErrOutOfRange
	}
	return units, nil
}

// Ratio returns a/b as a rational, where both operands are integers in the
// same unit (the unit cancels out).
func Ratio(a *big.Int, b *big.Int) (*big.Rat, error) {
	if b == nil || b.Sign() == 0 {
		return nil, ErrZeroDivision
	}
	return new(big.Rat).SetFrac(new(big.Int).Set(a), new(big.Int).Set(b)), nil
}
