// SPDX-License-Identifier: MIT

// Package matrix: functional configuration and numeric policy.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - the package-wide round limit (zero threshold) with its setter,
//   - Option / options (functional options for the construction surface).
//
// Design goals:
//   - Deterministic behavior: every knob has exactly one documented default.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRoundLimit is the number of decimal places after which figures
	// are considered insignificant. Any value with a magnitude below
	// 10^-DefaultRoundLimit is treated as zero by pivot selection, rank
	// counting, the property predicates and approximate equality. The
	// default subdues the residue left behind by divisions carried to
	// decimal.DivisionPrecision fractional digits.
	DefaultRoundLimit = 12

	// DefaultZeroFill controls whether jagged 2-D construction input is
	// right-padded with zeros. false ⇒ jagged input is rejected with
	// ErrDimensionMismatch.
	DefaultZeroFill = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicRoundLimitInvalid = "matrix: SetRoundLimit: ndigits must be non-negative"

// roundLimit is the live numeric policy; see DefaultRoundLimit.
// The engine is single-threaded by contract, so a plain package variable
// (not atomic) matches the concurrency model.
var roundLimit = DefaultRoundLimit

// SetRoundLimit sets the global rounding/tolerance limit, i.e. the number of
// decimal places below which any magnitude is considered zero.
// Panics with panicRoundLimitInvalid on a negative argument (programmer error).
// Complexity: O(1).
func SetRoundLimit(ndigits int) {
	// Guard nonsensical input: a negative digit count has no meaning.
	if ndigits < 0 {
		panic(panicRoundLimitInvalid)
	}
	roundLimit = ndigits
}

// RoundLimit reports the current rounding/tolerance limit.
// Complexity: O(1).
func RoundLimit() int { return roundLimit }

// ---------- Public option type (functional) ----------

// Option mutates construction options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options is the internal option state consumed by FromRows.
type options struct {
	zeroFill bool // right-pad short rows with zeros instead of rejecting
}

// defaultOptions returns the documented default option state.
func defaultOptions() options {
	return options{zeroFill: DefaultZeroFill}
}

// WithZeroFill makes FromRows right-pad short rows with zero elements so a
// jagged 2-D input becomes rectangular, instead of failing with
// ErrDimensionMismatch.
func WithZeroFill() Option {
	return func(o *options) { o.zeroFill = true }
}

// gatherOptions folds the provided options over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := defaultOptions() // start from the documented defaults
	for _, opt := range opts {
		opt(&o) // apply in declaration order (deterministic)
	}

	return o
}
