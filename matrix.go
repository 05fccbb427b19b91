// SPDX-License-Identifier: MIT

// Package matrix: the Matrix storage type.
//
// Matrix owns a row-major flat slice of Elements plus its dimensions and a
// monotonically increasing epoch counter. Every structural change (resize,
// row/column insertion or deletion, in-place transpose/rotation, in-place
// augmentation) bumps the epoch exactly once; views and cursors record the
// epoch at creation and refuse to operate after a mismatch. Value-only
// mutation (element writes, in-place arithmetic that keeps the shape) leaves
// the epoch untouched, so aliases observe it live.
//
// All public addressing is ONE-indexed.

package matrix

// Matrix is a mutable, one-indexed, row-major matrix of decimal Elements.
// Invariants: len(data) == nrow*ncol and nrow ≥ 1, ncol ≥ 1.
type Matrix struct {
	nrow, ncol int       // dimensions, both ≥ 1
	data       []Element // flat backing storage, length nrow*ncol
	epoch      uint64    // bumped on every structural change
	eliminated bool      // latch: ForwardEliminate has run, data untouched since

	// Cached whole-dimension views; created lazily, observably unique.
	rowsView *Rows
	colsView *Columns
}

// New creates an rows×cols zero matrix.
// Returns ErrInvalidDimensions unless rows ≥ 1 and cols ≥ 1.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Matrix, error) {
	// Validate dimensions before allocation.
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	// The Element zero value is decimal zero, so the make suffices.
	return &Matrix{nrow: rows, ncol: cols, data: make([]Element, rows*cols)}, nil
}

// FromRows builds a matrix from a 2-D row-major float64 array.
// A rectangular input is taken as-is. A jagged input is rejected with
// ErrDimensionMismatch unless WithZeroFill() is given, in which case short
// rows are right-padded with zeros to the longest row's length.
// Empty input (no rows, or no columns in the longest row) fails with
// ErrDimensionMismatch; NaN/±Inf values fail with ErrNaNInf.
// Complexity: O(rows*cols).
func FromRows(array [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Establish the shape: the widest row decides the column count and the
	// shortest row decides whether the input is jagged.
	nrow := len(array)
	if nrow == 0 {
		return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
	}
	minLen, maxLen := len(array[0]), len(array[0])
	for _, row := range array[1:] {
		if len(row) < minLen {
			minLen = len(row)
		}
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}
	ncol := maxLen
	if ncol == 0 {
		return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
	}
	if minLen != maxLen && !o.zeroFill {
		return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
	}

	// Validate finiteness of the whole input before converting anything,
	// so a failed construction performs no partial work.
	for _, row := range array {
		if err := ValidateFiniteSlice(row); err != nil {
			return nil, matrixErrorf("FromRows", err)
		}
	}

	// Ingest row-major; missing tail cells remain the Element zero value.
	m := &Matrix{nrow: nrow, ncol: ncol, data: make([]Element, nrow*ncol)}
	for i, row := range array {
		base := i * ncol // flat offset of row i
		for j, v := range row {
			m.data[base+j] = El(v)
		}
	}

	return m, nil
}

// fromElements wraps an existing element slice without copying.
// Internal constructor; callers guarantee len(data) == nrow*ncol.
func fromElements(nrow, ncol int, data []Element) *Matrix {
	return &Matrix{nrow: nrow, ncol: ncol, data: data}
}

// Nrow returns the number of rows. Complexity: O(1).
func (m *Matrix) Nrow() int { return m.nrow }

// Ncol returns the number of columns. Complexity: O(1).
func (m *Matrix) Ncol() int { return m.ncol }

// Size returns (nrow, ncol). Complexity: O(1).
func (m *Matrix) Size() (int, int) { return m.nrow, m.ncol }

// bumpEpoch records a structural change: live views and cursors created
// before the bump become permanently unusable. The elimination latch is
// cleared since the augmented layout may no longer hold.
func (m *Matrix) bumpEpoch() {
	m.epoch++
	m.eliminated = false
}

// touchValues records a value-only mutation. Views and cursors stay valid,
// but the elimination latch is cleared: the storage no longer holds the
// output of ForwardEliminate.
func (m *Matrix) touchValues() {
	m.eliminated = false
}

// indexOf computes the flat index for one-indexed (row, col) or returns
// ErrIndexOutOfRange. Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.nrow {
		return 0, ErrIndexOutOfRange
	}
	if col < 1 || col > m.ncol {
		return 0, ErrIndexOutOfRange
	}

	return (row-1)*m.ncol + (col - 1), nil
}

// At retrieves the element at one-indexed (row, col).
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (m *Matrix) At(row, col int) (Element, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return Zero, matrixErrorf(opAt, err)
	}

	return m.data[idx], nil
}

// Set assigns a finite float64 at one-indexed (row, col), converting it via
// the package conversion rule.
// Errors: ErrIndexOutOfRange, ErrNaNInf. Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if err := ValidateFinite(v); err != nil {
		return matrixErrorf(opSet, err)
	}

	return m.SetElement(row, col, El(v))
}

// SetElement assigns an Element at one-indexed (row, col).
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (m *Matrix) SetElement(row, col int, e Element) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data[idx] = e
	m.touchValues()

	return nil
}

// Copy returns an independent deep duplicate of m with a fresh epoch
// lineage: views of the source never track the copy and vice versa.
// Complexity: O(nrow*ncol).
func (m *Matrix) Copy() *Matrix {
	data := make([]Element, len(m.data))
	copy(data, m.data) // Element is a value type; copy is a deep copy

	return &Matrix{nrow: m.nrow, ncol: m.ncol, data: data}
}

// Rows returns the unique whole-dimension row view of m, creating it on
// first use. As a whole-dimension view it re-derives its range from the
// live matrix and never invalidates. Complexity: O(1).
func (m *Matrix) Rows() *Rows {
	if m.rowsView == nil {
		m.rowsView = &Rows{m: m}
	}

	return m.rowsView
}

// Columns returns the unique whole-dimension column view of m, creating it
// on first use. Never invalidates. Complexity: O(1).
func (m *Matrix) Columns() *Columns {
	if m.colsView == nil {
		m.colsView = &Columns{m: m}
	}

	return m.colsView
}

// rowElements returns the live storage slice of zero-based row i.
// Internal: aliases m.data, callers must not let it escape as public API.
func (m *Matrix) rowElements(i int) []Element {
	base := i * m.ncol

	return m.data[base : base+m.ncol]
}
