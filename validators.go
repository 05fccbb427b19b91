// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/finiteness checks here.
//   - Return plain sentinel errors (wrapped only with the validator tag) so
//     call sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.nrow != b.nrow {
		return validatorErrorf("ValidateSameShape: rows", ErrDimensionMismatch)
	}
	if a.ncol != b.ncol {
		return validatorErrorf("ValidateSameShape: columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Nrow == Ncol).
// Returns wrapped ErrNonSquare otherwise. Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.nrow != m.ncol {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Ncol == b.Nrow, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.ncol != b.nrow {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAugmentCompatible ensures a and b have the same number of rows so
// they can be concatenated horizontally.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateAugmentCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateAugmentCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateAugmentCompatible", err)
	}
	if a.nrow != b.nrow {
		return validatorErrorf("ValidateAugmentCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf scalar input with ErrNaNInf.
// Every float64 entering the package passes through this check before being
// converted to an Element. Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// ValidateFiniteSlice applies ValidateFinite to every value in vs.
// Complexity: O(len(vs)).
func ValidateFiniteSlice(vs []float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteSlice(%d)", i), ErrNaNInf)
		}
	}

	return nil
}

// validateIndex checks a one-indexed position against dimension n.
// Returns ErrIndexOutOfRange when i < 1 or i > n. Complexity: O(1).
func validateIndex(i, n int) error {
	if i < 1 || i > n {
		return validatorErrorf("validateIndex", ErrIndexOutOfRange)
	}

	return nil
}
