// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus the canonical operation-tag wrapper. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions; panics are reserved
// for programmer errors (nonsensical option values).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the call
// site – callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. A matrix always has at least one row and one column.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfRange indicates that a one-indexed row, column, span
	// bound or span step is below 1 or outside the valid range.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: jagged construction input without zero-fill, a block
	// replacement of the wrong shape, Add/Sub on different shapes, or
	// MatMul where a.Ncol() != b.Nrow().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// receiver wasn't (determinant, trace, inverse, triangular reductions).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when no usable pivot exists during inversion
	// or back substitution: the matrix is singular within the round limit.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoUniqueSolution is returned by SolveLinearSystem when the system
	// is inconsistent or underdetermined. It wraps ErrSingular at the call
	// site so both sentinels match via errors.Is.
	ErrNoUniqueSolution = errors.New("matrix: system has no unique solution")

	// ErrNotEliminated signals that BackSubstitute was called before
	// ForwardEliminate on the augmented matrix.
	ErrNotEliminated = errors.New("matrix: forward elimination has not been performed")

	// ErrInvalidOperation marks a structurally forbidden mutation, such as
	// deleting every row or column of a matrix.
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrUnsupportedOperation marks an intentionally unsupported operation
	// on a view (assignment or deletion through RowsSlice/ColumnsSlice).
	ErrUnsupportedOperation = errors.New("matrix: operation not supported on this view")

	// ErrConcurrentModification indicates that the underlying matrix was
	// structurally modified (resized, rows/columns inserted or deleted)
	// after the view or cursor was created. The view is permanently broken.
	ErrConcurrentModification = errors.New("matrix: view invalidated by structural modification")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// real values are required (construction, Set, scalar operands).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrZeroDivision is returned on division by an exactly zero element
	// or scalar.
	ErrZeroDivision = errors.New("matrix: division by zero")

	// ErrEmptyRange indicates that a random factory received an empty
	// value range (stop not greater than start).
	ErrEmptyRange = errors.New("matrix: empty value range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAt               = "At"
	opSet              = "Set"
	opBlock            = "Block"
	opSetBlock         = "SetBlock"
	opResize           = "Resize"
	opTrace            = "Trace"
	opAdd              = "Add"
	opSub              = "Sub"
	opScalarMul        = "ScalarMul"
	opScalarDiv        = "ScalarDiv"
	opMatMul           = "MatMul"
	opPow              = "Pow"
	opAugment          = "Augment"
	opRowEchelon       = "ToRowEchelon"
	opReducedEchelon   = "ToReducedRowEchelon"
	opUpperTriangular  = "ToUpperTriangular"
	opLowerTriangular  = "ToLowerTriangular"
	opForwardEliminate = "ForwardEliminate"
	opBackSubstitute   = "BackSubstitute"
	opDeterminant      = "Determinant"
	opInverse          = "Inverse"
	opSolve            = "SolveLinearSystem"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across the package. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
