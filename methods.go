// SPDX-License-Identifier: MIT

// Package matrix: structural methods on Matrix.
//
// Everything in this file either changes the matrix's shape (resize,
// in-place transpose/rotation, row/column deletion) or moves whole blocks of
// storage (block read/write, flips). Shape-changing methods bump the epoch
// exactly once per call; value-only methods (flips, SetBlock) do not, so
// live views observe the new values.

package matrix

// Resize reshapes m in place to rows×cols. Growth pads with zeros on the
// right/bottom; shrinking truncates. Existing elements keep their
// one-indexed coordinates where both shapes contain them.
// Bumps the epoch: every live view and cursor of m becomes unusable.
// Errors: ErrInvalidDimensions unless rows ≥ 1 and cols ≥ 1.
// Complexity: O(rows*cols).
func (m *Matrix) Resize(rows, cols int) error {
	// A matrix can never become empty.
	if rows < 1 || cols < 1 {
		return matrixErrorf(opResize, ErrInvalidDimensions)
	}
	// No dimension changed: by contract this is still a structural call,
	// but rebuilding storage is unnecessary.
	if rows == m.nrow && cols == m.ncol {
		m.bumpEpoch()
		return nil
	}

	// Rebuild row-major storage, copying the overlapping region.
	data := make([]Element, rows*cols)
	copyRows := min(rows, m.nrow)
	copyCols := min(cols, m.ncol)
	for i := 0; i < copyRows; i++ {
		copy(data[i*cols:i*cols+copyCols], m.data[i*m.ncol:i*m.ncol+copyCols])
	}
	m.nrow, m.ncol, m.data = rows, cols, data
	m.bumpEpoch()

	return nil
}

// Block returns a NEW independent matrix holding the Cartesian intersection
// of the row and column spans. Spans are one-indexed with inclusive, clamped
// closing bounds; a start or step below 1 fails with ErrIndexOutOfRange.
// Complexity: O(selected rows × selected cols).
func (m *Matrix) Block(rowSpan, colSpan Span) (*Matrix, error) {
	rs, err := adjustSpan(rowSpan, m.nrow)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	cs, err := adjustSpan(colSpan, m.ncol)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}

	// Gather the selection row-major into fresh storage.
	nr, nc := rs.length(), cs.length()
	data := make([]Element, 0, nr*nc)
	for i := 0; i < nr; i++ {
		src := m.rowElements(rs.index(i))
		for j := 0; j < nc; j++ {
			data = append(data, src[cs.index(j)])
		}
	}

	return fromElements(nr, nc, data), nil
}

// SetBlock replaces the selection addressed by the two spans with values.
// The replacement must have EXACTLY the shape the corresponding Block call
// would return, else ErrDimensionMismatch; non-finite values fail with
// ErrNaNInf before anything is written. Value-only: the epoch is unchanged.
// Complexity: O(selected rows × selected cols).
func (m *Matrix) SetBlock(rowSpan, colSpan Span, values [][]float64) error {
	rs, err := adjustSpan(rowSpan, m.nrow)
	if err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	cs, err := adjustSpan(colSpan, m.ncol)
	if err != nil {
		return matrixErrorf(opSetBlock, err)
	}

	// Shape check first: the write is all-or-nothing.
	nr, nc := rs.length(), cs.length()
	if len(values) != nr {
		return matrixErrorf(opSetBlock, ErrDimensionMismatch)
	}
	for _, row := range values {
		if len(row) != nc {
			return matrixErrorf(opSetBlock, ErrDimensionMismatch)
		}
		if err = ValidateFiniteSlice(row); err != nil {
			return matrixErrorf(opSetBlock, err)
		}
	}

	// Write through to storage.
	for i := 0; i < nr; i++ {
		dst := m.rowElements(rs.index(i))
		for j := 0; j < nc; j++ {
			dst[cs.index(j)] = El(values[i][j])
		}
	}
	m.touchValues()

	return nil
}

// Transpose returns a NEW matrix with rows and columns swapped (mᵀ).
// The receiver is never mutated. Complexity: O(nrow*ncol).
func (m *Matrix) Transpose() *Matrix {
	data := make([]Element, len(m.data))
	for i := 0; i < m.nrow; i++ {
		base := i * m.ncol
		for j := 0; j < m.ncol; j++ {
			// data[i*cols + j] → out[j*rows + i]
			data[j*m.nrow+i] = m.data[base+j]
		}
	}

	return fromElements(m.ncol, m.nrow, data)
}

// TransposeInPlace transposes m in place. Structural: bumps the epoch even
// for square matrices, since element coordinates move.
// Complexity: O(nrow*ncol).
func (m *Matrix) TransposeInPlace() {
	t := m.Transpose()
	m.nrow, m.ncol, m.data = t.nrow, t.ncol, t.data
	m.bumpEpoch()
}

// FlipHorizontalInPlace reverses the order of elements within every row
// (mirrors about the vertical axis). Value-only: shape and epoch unchanged.
// Complexity: O(nrow*ncol).
func (m *Matrix) FlipHorizontalInPlace() {
	for i := 0; i < m.nrow; i++ {
		row := m.rowElements(i)
		for l, r := 0, m.ncol-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}
	m.touchValues()
}

// FlipVerticalInPlace reverses the order of the rows (mirrors about the
// horizontal axis). Value-only: shape and epoch unchanged.
// Complexity: O(nrow*ncol).
func (m *Matrix) FlipVerticalInPlace() {
	for t, b := 0, m.nrow-1; t < b; t, b = t+1, b-1 {
		top, bottom := m.rowElements(t), m.rowElements(b)
		for j := 0; j < m.ncol; j++ {
			top[j], bottom[j] = bottom[j], top[j]
		}
	}
	m.touchValues()
}

// RotateRightInPlace rotates m by 90° clockwise: transpose then horizontal
// flip. Structural: the shape swaps, so the epoch is bumped (once).
// Complexity: O(nrow*ncol).
func (m *Matrix) RotateRightInPlace() {
	t := m.Transpose()
	t.FlipHorizontalInPlace()
	m.nrow, m.ncol, m.data = t.nrow, t.ncol, t.data
	m.bumpEpoch()
}

// RotateLeftInPlace rotates m by 90° counterclockwise: transpose then
// vertical flip. Structural: bumps the epoch once.
// Complexity: O(nrow*ncol).
func (m *Matrix) RotateLeftInPlace() {
	t := m.Transpose()
	t.FlipVerticalInPlace()
	m.nrow, m.ncol, m.data = t.nrow, t.ncol, t.data
	m.bumpEpoch()
}

// Trace returns the sum of the main-diagonal elements.
// Errors: ErrNonSquare. Complexity: O(n).
func (m *Matrix) Trace() (Element, error) {
	if err := ValidateSquare(m); err != nil {
		return Zero, matrixErrorf(opTrace, err)
	}

	sum := Zero
	for i := 0; i < m.nrow; i++ {
		sum = sum.Add(m.data[i*m.ncol+i])
	}

	return sum, nil
}

// deleteRows removes the rows selected by the adjusted span, decreasing nrow
// by the selection length. Refuses to empty the matrix (ErrInvalidOperation).
// Structural: bumps the epoch once. Complexity: O(nrow*ncol).
func (m *Matrix) deleteRows(sel adjustedSpan) error {
	count := sel.length()
	if count >= m.nrow {
		return ErrInvalidOperation
	}

	// Mark selected rows, then compact the survivors row-major.
	drop := make(map[int]bool, count)
	for i := 0; i < count; i++ {
		drop[sel.index(i)] = true
	}
	data := make([]Element, 0, (m.nrow-count)*m.ncol)
	for i := 0; i < m.nrow; i++ {
		if drop[i] {
			continue
		}
		data = append(data, m.rowElements(i)...)
	}
	m.nrow -= count
	m.data = data
	m.bumpEpoch()

	return nil
}

// deleteCols removes the columns selected by the adjusted span, decreasing
// ncol by the selection length. Refuses to empty the matrix
// (ErrInvalidOperation). Structural: bumps the epoch once.
// Complexity: O(nrow*ncol).
func (m *Matrix) deleteCols(sel adjustedSpan) error {
	count := sel.length()
	if count >= m.ncol {
		return ErrInvalidOperation
	}

	drop := make(map[int]bool, count)
	for j := 0; j < count; j++ {
		drop[sel.index(j)] = true
	}
	data := make([]Element, 0, m.nrow*(m.ncol-count))
	for i := 0; i < m.nrow; i++ {
		row := m.rowElements(i)
		for j := 0; j < m.ncol; j++ {
			if drop[j] {
				continue
			}
			data = append(data, row[j])
		}
	}
	m.ncol -= count
	m.data = data
	m.bumpEpoch()

	return nil
}
