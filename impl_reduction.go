// SPDX-License-Identifier: MIT

// Package matrix: Gaussian elimination and everything built on it.
//
// All pivot selection is partial pivoting: the candidate with the largest
// magnitude in the pivot column, at or below the pivot row. Entries below
// the negligibility threshold (see RoundLimit) count as zero pivots.
//
// In-place reductions mutate the receiver value-by-value and make NO
// rollback guarantee: after a mid-algorithm error the receiver holds an
// unspecified intermediate state. Determinant, Rank and Inverse work on
// scratch copies and never disturb the receiver.

package matrix

import "fmt"

// swapRows exchanges two zero-based rows in place.
func (m *Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	a, b := m.rowElements(i), m.rowElements(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// pivotRow picks the row in [from, nrow) whose entry in column col has the
// largest magnitude. Returns -1 when even the best candidate is negligible.
func (m *Matrix) pivotRow(col, from int) int {
	best, bestAbs := -1, Zero
	for r := from; r < m.nrow; r++ {
		if abs := m.data[r*m.ncol+col].Abs(); best < 0 || abs.Cmp(bestAbs) > 0 {
			best, bestAbs = r, abs
		}
	}
	if best < 0 || bestAbs.IsNegligible() {
		return -1
	}

	return best
}

// eliminateBelow zeroes column col below row p by subtracting multiples of
// row p. The pivot entry itself is left untouched.
func (m *Matrix) eliminateBelow(p, col int) {
	pivot := m.data[p*m.ncol+col]
	for r := p + 1; r < m.nrow; r++ {
		lead := m.data[r*m.ncol+col]
		if lead.IsZero() {
			continue
		}
		factor, _ := lead.Div(pivot)
		for c := col; c < m.ncol; c++ {
			m.data[r*m.ncol+c] = m.data[r*m.ncol+c].Sub(factor.Mul(m.data[p*m.ncol+c]))
		}
		m.data[r*m.ncol+col] = Zero // cancel residual rounding
	}
}

// eliminateAbove zeroes column col above row p by subtracting multiples of
// row p.
func (m *Matrix) eliminateAbove(p, col int) {
	pivot := m.data[p*m.ncol+col]
	for r := 0; r < p; r++ {
		lead := m.data[r*m.ncol+col]
		if lead.IsZero() {
			continue
		}
		factor, _ := lead.Div(pivot)
		for c := 0; c < m.ncol; c++ {
			m.data[r*m.ncol+c] = m.data[r*m.ncol+c].Sub(factor.Mul(m.data[p*m.ncol+c]))
		}
		m.data[r*m.ncol+col] = Zero
	}
}

// forwardPass runs pivoting forward elimination over the first cols columns.
// Returns the number of pivots placed and the row-swap count.
func (m *Matrix) forwardPass(cols int) (pivots, swaps int) {
	p := 0
	for col := 0; col < cols && p < m.nrow; col++ {
		best := m.pivotRow(col, p)
		if best < 0 {
			continue // column already clear below p
		}
		if best != p {
			m.swapRows(p, best)
			swaps++
		}
		m.eliminateBelow(p, col)
		p++
	}

	return p, swaps
}

// ToRowEchelon reduces the matrix to row echelon form in place, any shape.
// Implementation stages:
//  1. Walk pivot columns left to right.
//  2. Partial-pivot swap, then eliminate below.
//
// Never fails; rows of all-negligible entries sink to the bottom.
// Complexity: O(nrow² * ncol).
func (m *Matrix) ToRowEchelon() error {
	m.forwardPass(m.ncol)

	return nil
}

// ToReducedRowEchelon reduces the matrix to reduced row echelon form in
// place: echelon first, then each pivot is normalized to one and its column
// cleared above. Never fails. Complexity: O(nrow² * ncol).
func (m *Matrix) ToReducedRowEchelon() error {
	m.forwardPass(m.ncol)

	for r := m.nrow - 1; r >= 0; r-- {
		col := -1
		for c := 0; c < m.ncol; c++ {
			if !m.data[r*m.ncol+c].IsNegligible() {
				col = c
				break
			}
		}
		if col < 0 {
			continue // zero row
		}
		pivot := m.data[r*m.ncol+col]
		for c := col; c < m.ncol; c++ {
			q, _ := m.data[r*m.ncol+c].Div(pivot)
			m.data[r*m.ncol+c] = q
		}
		m.data[r*m.ncol+col] = One
		m.eliminateAbove(r, col)
	}

	return nil
}

// ToUpperTriangular reduces a square matrix to upper triangular form in
// place. Errors: ErrNonSquare. Complexity: O(nrow³).
func (m *Matrix) ToUpperTriangular() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opUpperTriangular, err)
	}
	m.forwardPass(m.ncol)

	return nil
}

// ToLowerTriangular reduces a square matrix to lower triangular form in
// place, mirroring the upper-triangular pass: columns are walked right to
// left and entries ABOVE each pivot are eliminated, with pivot candidates
// drawn from the rows at or above the pivot row.
// Errors: ErrNonSquare. Complexity: O(nrow³).
func (m *Matrix) ToLowerTriangular() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opLowerTriangular, err)
	}

	for col := m.ncol - 1; col >= 0; col-- {
		best, bestAbs := -1, Zero
		for r := col; r >= 0; r-- {
			if abs := m.data[r*m.ncol+col].Abs(); best < 0 || abs.Cmp(bestAbs) > 0 {
				best, bestAbs = r, abs
			}
		}
		if best < 0 || bestAbs.IsNegligible() {
			continue
		}
		m.swapRows(col, best)
		m.eliminateAbove(col, col)
	}

	return nil
}

// ForwardEliminate runs the forward half of Gaussian elimination on a
// horizontally augmented system [A | b]: the coefficient block (the first
// nrow columns) is pivoted and cleared below the diagonal, constants
// columns riding along. Sets the precondition latch for BackSubstitute.
// Errors: ErrDimensionMismatch when ncol <= nrow (nothing augmented).
// Complexity: O(nrow² * ncol).
func (m *Matrix) ForwardEliminate() error {
	if m.ncol <= m.nrow {
		return matrixErrorf(opForwardEliminate, ErrDimensionMismatch)
	}

	m.forwardPass(m.nrow)
	m.eliminated = true

	return nil
}

// BackSubstitute completes the elimination started by ForwardEliminate:
// pivot rows are normalized and cleared upward, leaving the coefficient
// block as the identity and the solutions in the constants column(s).
// The latch is consumed on success.
// Errors: ErrNotEliminated when ForwardEliminate has not run since the last
// mutation (any element write or structural change clears the latch);
// ErrSingular on a negligible diagonal pivot (the system
// has no unique solution). No rollback on failure.
// Complexity: O(nrow² * ncol).
func (m *Matrix) BackSubstitute() error {
	if !m.eliminated {
		return matrixErrorf(opBackSubstitute, ErrNotEliminated)
	}

	for r := m.nrow - 1; r >= 0; r-- {
		pivot := m.data[r*m.ncol+r]
		if pivot.IsNegligible() {
			return matrixErrorf(opBackSubstitute, ErrSingular)
		}
		for c := r; c < m.ncol; c++ {
			q, _ := m.data[r*m.ncol+c].Div(pivot)
			m.data[r*m.ncol+c] = q
		}
		m.data[r*m.ncol+r] = One
		m.eliminateAbove(r, r)
	}
	m.eliminated = false

	return nil
}

// Determinant computes the determinant of a square matrix by eliminating a
// scratch copy to upper triangular form with row-swap sign tracking. The
// signed diagonal product is rounded to RoundLimit() places, so division
// residue from pivoting cannot leak into an otherwise exact result.
// A 1×1 matrix yields its sole element; a rank-deficient matrix yields an
// exact zero. The receiver is never modified.
// Errors: ErrNonSquare. Complexity: O(nrow³).
func (m *Matrix) Determinant() (Element, error) {
	if err := ValidateSquare(m); err != nil {
		return Zero, matrixErrorf(opDeterminant, err)
	}
	if m.nrow == 1 {
		return m.data[0], nil
	}

	w := m.Copy()
	pivots, swaps := w.forwardPass(w.ncol)
	if pivots < w.nrow {
		return Zero, nil
	}

	det := One
	for i := 0; i < w.nrow; i++ {
		det = det.Mul(w.data[i*w.ncol+i])
	}
	if swaps%2 == 1 {
		det = det.Neg()
	}

	return det.roundToLimit(), nil
}

// Rank returns the rank of the matrix: the number of non-negligible rows
// after reducing a scratch copy to echelon form. Never fails.
// Complexity: O(nrow² * ncol).
func (m *Matrix) Rank() int {
	w := m.Copy()
	pivots, _ := w.forwardPass(w.ncol)

	return pivots
}

// Inverse returns the multiplicative inverse of a square matrix via
// Gauss–Jordan elimination on [m | I]. The receiver is never modified.
// Errors: ErrNonSquare; ErrSingular when some pivot column has no usable
// candidate. Complexity: O(nrow³).
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	unit, err := UnitMatrix(m.nrow)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := m.Augment(unit)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	for col := 0; col < m.nrow; col++ {
		best := aug.pivotRow(col, col)
		if best < 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		aug.swapRows(col, best)
		pivot := aug.data[col*aug.ncol+col]
		for c := col; c < aug.ncol; c++ {
			q, _ := aug.data[col*aug.ncol+c].Div(pivot)
			aug.data[col*aug.ncol+c] = q
		}
		aug.data[col*aug.ncol+col] = One
		aug.eliminateBelow(col, col)
		aug.eliminateAbove(col, col)
	}

	return aug.Block(NewSpan(1, m.nrow), NewSpan(m.nrow+1, aug.ncol))
}

// InverseInPlace replaces m with its inverse. The shape is unchanged, so
// live views stay valid and observe the new values. All-or-nothing: on
// failure the receiver is untouched (the elimination runs on the augmented
// scratch matrix).
// Errors: ErrNonSquare, ErrSingular. Complexity: O(nrow³).
func (m *Matrix) InverseInPlace() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	copy(m.data, inv.data)
	m.touchValues()

	return nil
}

// SolveLinearSystem solves coeff · x = consts for a square coefficient
// matrix and a single-column constants matrix, by augmenting, forward
// eliminating and back substituting. Returns the solution vector top to
// bottom. Neither argument is modified.
// Errors: ErrNilMatrix; ErrNonSquare; ErrDimensionMismatch on a row-count
// mismatch or a constants matrix wider than one column;
// ErrNoUniqueSolution (wrapping ErrSingular) for singular systems.
// Complexity: O(nrow³).
func SolveLinearSystem(coeff, consts *Matrix) ([]Element, error) {
	if err := ValidateNotNil(coeff); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(consts); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(coeff); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if consts.ncol != 1 || consts.nrow != coeff.nrow {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	aug, err := coeff.Augment(consts)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = aug.ForwardEliminate(); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = aug.BackSubstitute(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolve, ErrNoUniqueSolution, err)
	}

	out := make([]Element, aug.nrow)
	for r := 0; r < aug.nrow; r++ {
		out[r] = aug.data[r*aug.ncol+aug.ncol-1]
	}

	return out, nil
}
