// SPDX-License-Identifier: MIT

// Package matrix: the Element scalar type.
//
// Purpose:
//   - Provide an arbitrary-precision decimal scalar for matrix cells, fully
//     interoperable with native float64 input.
//   - Pin down ONE conversion rule from binary floating point to decimal so
//     every arithmetic path is deterministic regardless of operand order.
//
// Conversion rule (documented once, applied everywhere):
//   - A float64 converts to its shortest decimal representation that
//     round-trips back to the same float64 (decimal.NewFromFloat). Integral
//     floats therefore convert exactly, and 0.1 becomes the literal decimal
//     0.1 rather than its binary expansion. This mirrors converting via the
//     value's shortest printed form and prevents binary representation error
//     from compounding through long eliminations.
//   - Division carries decimal.DivisionPrecision fractional digits (the
//     library default of 16); all other operations are exact.
//
// Zero policy:
//   - IsZero is the exact test. IsNegligible applies the round limit: any
//     magnitude below 10^-RoundLimit() counts as zero. Pivot selection, rank
//     counting and the property predicates use the negligible test.

package matrix

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Element is an arbitrary-precision decimal matrix scalar.
// The zero value is a usable decimal zero.
type Element struct {
	dec decimal.Decimal // backing decimal value
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Element{}                          // exact decimal 0
	One  = Element{dec: decimal.NewFromInt(1)} // exact decimal 1
)

// El converts a finite float64 to an Element using the package conversion
// rule (shortest round-trip decimal representation).
// Panics on NaN/±Inf – callers on user-input paths validate finiteness first
// via ValidateFinite, so a panic here is a programmer error.
// Complexity: O(1).
func El(v float64) Element {
	return Element{dec: decimal.NewFromFloat(v)}
}

// ElInt converts an int64 to an exact Element.
// Complexity: O(1).
func ElInt(v int64) Element {
	return Element{dec: decimal.NewFromInt(v)}
}

// ParseEl parses a decimal literal (e.g. "1.5", "-3", "2e10") into an Element.
// Returns the underlying parse error on malformed input.
func ParseEl(s string) (Element, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("ParseEl(%q): %w", s, err)
	}

	return Element{dec: d}, nil
}

// Add returns e + o (exact).
func (e Element) Add(o Element) Element { return Element{dec: e.dec.Add(o.dec)} }

// Sub returns e - o (exact).
func (e Element) Sub(o Element) Element { return Element{dec: e.dec.Sub(o.dec)} }

// Mul returns e * o (exact).
func (e Element) Mul(o Element) Element { return Element{dec: e.dec.Mul(o.dec)} }

// Div returns e / o carried to decimal.DivisionPrecision fractional digits.
// Returns ErrZeroDivision when o is exactly zero.
func (e Element) Div(o Element) (Element, error) {
	// Guard the only failure mode before delegating to the decimal kernel.
	if o.dec.IsZero() {
		return Zero, ErrZeroDivision
	}

	return Element{dec: e.dec.Div(o.dec)}, nil
}

// Neg returns -e.
func (e Element) Neg() Element { return Element{dec: e.dec.Neg()} }

// Abs returns |e|.
func (e Element) Abs() Element { return Element{dec: e.dec.Abs()} }

// Cmp compares e and o: -1 if e < o, 0 if equal, +1 if e > o.
func (e Element) Cmp(o Element) int { return e.dec.Cmp(o.dec) }

// Equal reports exact decimal equality (1.0 equals 1.00).
func (e Element) Equal(o Element) bool { return e.dec.Equal(o.dec) }

// IsZero reports whether e is exactly zero.
func (e Element) IsZero() bool { return e.dec.IsZero() }

// IsNegligible reports whether |e| < 10^-RoundLimit(), the policy under
// which a value is considered zero by the reduction engine.
// Complexity: O(1).
func (e Element) IsNegligible() bool {
	// decimal.New(1, exp) builds 1×10^exp without string parsing.
	return e.dec.Abs().Cmp(decimal.New(1, int32(-roundLimit))) < 0
}

// EqualApprox reports whether e and o differ by a negligible amount,
// i.e. |e-o| < 10^-RoundLimit().
func (e Element) EqualApprox(o Element) bool {
	return e.Sub(o).IsNegligible()
}

// roundToLimit rounds e to RoundLimit() decimal places, discarding the
// residue that finite division precision leaves behind. Anything below the
// round limit is already treated as zero by the rest of the engine.
func (e Element) roundToLimit() Element {
	return Element{dec: e.dec.Round(int32(roundLimit))}
}

// Float64 returns the nearest float64 to e (precision may be lost).
func (e Element) Float64() float64 {
	f, _ := e.dec.Float64() // exactness flag intentionally dropped

	return f
}

// String renders e in its shortest decimal form, implementing fmt.Stringer.
func (e Element) String() string { return e.dec.String() }
