// SPDX-License-Identifier: MIT

// Package matrix: ready-made matrix factories.
//
// These are thin generators over the core constructor, for tests, demos
// and seeding iterative algorithms.

package matrix

import "math/rand/v2"

// UnitMatrix returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n < 1. Complexity: O(n²).
func UnitMatrix(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = One
	}

	return m, nil
}

// RandintMatrix returns an nrow×ncol matrix of uniformly random integer
// elements drawn from the half-open interval [lo, hi).
// Errors: ErrInvalidDimensions; ErrEmptyRange when lo >= hi.
// Complexity: O(nrow*ncol).
func RandintMatrix(nrow, ncol, lo, hi int) (*Matrix, error) {
	if lo >= hi {
		return nil, matrixErrorf("RandintMatrix", ErrEmptyRange)
	}
	m, err := New(nrow, ncol)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = ElInt(int64(lo + rand.IntN(hi-lo)))
	}

	return m, nil
}

// RandomMatrix returns an nrow×ncol matrix of uniformly random float
// elements drawn from [start, stop).
// Errors: ErrInvalidDimensions; ErrEmptyRange when start >= stop.
// Complexity: O(nrow*ncol).
func RandomMatrix(nrow, ncol int, start, stop float64) (*Matrix, error) {
	if err := ValidateFinite(start); err != nil {
		return nil, matrixErrorf("RandomMatrix", err)
	}
	if err := ValidateFinite(stop); err != nil {
		return nil, matrixErrorf("RandomMatrix", err)
	}
	if start >= stop {
		return nil, matrixErrorf("RandomMatrix", ErrEmptyRange)
	}
	m, err := New(nrow, ncol)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = El(start + rand.Float64()*(stop-start))
	}

	return m, nil
}

// ZerosLike returns a zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New(m.nrow, m.ncol)
}

// IdentityLike returns the identity matrix sharing m's order.
// Errors: ErrNilMatrix; ErrNonSquare.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return UnitMatrix(m.nrow)
}
