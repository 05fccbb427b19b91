// SPDX-License-Identifier: MIT

// Package matrix: the row view family.
//
// Three kinds of non-owning handles over a matrix's rows:
//
//   - Rows       – the unique whole-dimension view; re-derives its range on
//     every call, so it survives structural changes. Supports
//     single-row replacement and deletion.
//   - RowsSlice  – a (start, stop, step) sub-selection; epoch-guarded,
//     composable (re-slicing resolves against absolute indices),
//     read-only: assignment and deletion are unsupported.
//   - Row        – a single line; epoch-guarded; exposes element access and
//     the pure/in-place arithmetic pairs from lines.go.
//
// None of these copy data: mutation through a view is mutation of the
// matrix's storage, visible through every other live alias.

package matrix

// Rows is the whole-dimension row view of a matrix.
// Obtain it via Matrix.Rows(); there is exactly one per matrix.
type Rows struct {
	m *Matrix // back-reference; never owned
}

// Len returns the current number of rows. Complexity: O(1).
func (rs *Rows) Len() int { return rs.m.nrow }

// At returns a view of the one-indexed i-th row.
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (rs *Rows) At(i int) (*Row, error) {
	if err := validateIndex(i, rs.m.nrow); err != nil {
		return nil, matrixErrorf("Rows.At", err)
	}

	return &Row{m: rs.m, index: i - 1, epoch: rs.m.epoch}, nil
}

// Slice returns an epoch-guarded view of the rows selected by s.
// Errors: ErrIndexOutOfRange (sub-1 start/stop/step, start out of range).
// Complexity: O(1).
func (rs *Rows) Slice(s Span) (*RowsSlice, error) {
	sel, err := adjustSpan(s, rs.m.nrow)
	if err != nil {
		return nil, matrixErrorf("Rows.Slice", err)
	}

	return &RowsSlice{m: rs.m, sel: sel, epoch: rs.m.epoch}, nil
}

// Set replaces the one-indexed i-th row with values, which must contain
// exactly Ncol finite numbers.
// Errors: ErrIndexOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Value-only: the epoch is unchanged. Complexity: O(ncol).
func (rs *Rows) Set(i int, values []float64) error {
	if err := validateIndex(i, rs.m.nrow); err != nil {
		return matrixErrorf("Rows.Set", err)
	}
	if len(values) != rs.m.ncol {
		return matrixErrorf("Rows.Set", ErrDimensionMismatch)
	}
	if err := ValidateFiniteSlice(values); err != nil {
		return matrixErrorf("Rows.Set", err)
	}

	dst := rs.m.rowElements(i - 1)
	for j, v := range values {
		dst[j] = El(v)
	}
	rs.m.touchValues()

	return nil
}

// Delete removes the one-indexed i-th row. Refuses to remove the last
// remaining row. Structural: bumps the epoch.
// Errors: ErrIndexOutOfRange, ErrInvalidOperation. Complexity: O(nrow*ncol).
func (rs *Rows) Delete(i int) error {
	if err := validateIndex(i, rs.m.nrow); err != nil {
		return matrixErrorf("Rows.Delete", err)
	}

	if err := rs.m.deleteRows(adjustedSpan{start: i - 1, stop: i, step: 1}); err != nil {
		return matrixErrorf("Rows.Delete", err)
	}

	return nil
}

// DeleteSlice removes the rows selected by s. Refuses an operation that
// would leave zero rows. Structural: bumps the epoch once.
// Errors: ErrIndexOutOfRange, ErrInvalidOperation. Complexity: O(nrow*ncol).
func (rs *Rows) DeleteSlice(s Span) error {
	sel, err := adjustSpan(s, rs.m.nrow)
	if err != nil {
		return matrixErrorf("Rows.DeleteSlice", err)
	}

	if err = rs.m.deleteRows(sel); err != nil {
		return matrixErrorf("Rows.DeleteSlice", err)
	}

	return nil
}

// RowsSlice is a step-respecting sub-selection of a matrix's rows.
// It aliases the matrix (no copying) and is invalidated by any structural
// change made after its creation.
type RowsSlice struct {
	m     *Matrix      // back-reference
	sel   adjustedSpan // absolute zero-based selection
	epoch uint64       // matrix epoch at creation
}

// guard fails once the matrix has structurally changed since creation.
func (sl *RowsSlice) guard() error {
	if sl.epoch != sl.m.epoch {
		return ErrConcurrentModification
	}

	return nil
}

// Len returns the number of rows selected. Complexity: O(1).
func (sl *RowsSlice) Len() int { return sl.sel.length() }

// At returns a view of the i-th selected row (one-indexed within the slice,
// resolved to the matrix's absolute row).
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(1).
func (sl *RowsSlice) At(i int) (*Row, error) {
	if err := sl.guard(); err != nil {
		return nil, matrixErrorf("RowsSlice.At", err)
	}
	if err := validateIndex(i, sl.sel.length()); err != nil {
		return nil, matrixErrorf("RowsSlice.At", err)
	}

	return &Row{m: sl.m, index: sl.sel.index(i - 1), epoch: sl.m.epoch}, nil
}

// Slice re-slices the selection. The given span addresses the slice's local
// one-indexed range; the result is composed against the matrix's ABSOLUTE
// row indices, exactly as if the combined selection had been made directly.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(1).
func (sl *RowsSlice) Slice(s Span) (*RowsSlice, error) {
	if err := sl.guard(); err != nil {
		return nil, matrixErrorf("RowsSlice.Slice", err)
	}
	inner, err := adjustSpan(s, sl.sel.length())
	if err != nil {
		return nil, matrixErrorf("RowsSlice.Slice", err)
	}

	return &RowsSlice{m: sl.m, sel: sl.sel.compose(inner), epoch: sl.m.epoch}, nil
}

// Set is intentionally unsupported on a slice view: always returns
// ErrUnsupportedOperation. Assign through Matrix.Rows() instead.
func (sl *RowsSlice) Set(int, []float64) error {
	return matrixErrorf("RowsSlice.Set", ErrUnsupportedOperation)
}

// Delete is intentionally unsupported on a slice view: always returns
// ErrUnsupportedOperation. Delete through Matrix.Rows() instead.
func (sl *RowsSlice) Delete(int) error {
	return matrixErrorf("RowsSlice.Delete", ErrUnsupportedOperation)
}

// Row is a view of a single matrix row. It aliases the matrix storage and is
// invalidated by any structural change made after its creation.
type Row struct {
	m     *Matrix // back-reference
	index int     // zero-based absolute row index
	epoch uint64  // matrix epoch at creation
}

// guard fails once the matrix has structurally changed since creation.
func (r *Row) guard() error {
	if r.epoch != r.m.epoch {
		return ErrConcurrentModification
	}

	return nil
}

// Index returns the one-indexed position of the referenced row.
func (r *Row) Index() int { return r.index + 1 }

// Len returns the row's length (the matrix's column count). Complexity: O(1).
func (r *Row) Len() int { return r.m.ncol }

func (r *Row) elemLocal(i int) Element { return r.m.rowElements(r.index)[i] }

func (r *Row) setLocal(i int, e Element) {
	r.m.rowElements(r.index)[i] = e
	r.m.touchValues()
}

// At returns the one-indexed i-th element of the row.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(1).
func (r *Row) At(i int) (Element, error) {
	if err := r.guard(); err != nil {
		return Zero, matrixErrorf("Row.At", err)
	}
	if err := validateIndex(i, r.m.ncol); err != nil {
		return Zero, matrixErrorf("Row.At", err)
	}

	return r.elemLocal(i - 1), nil
}

// Set writes a finite float64 through to the matrix at the row's i-th
// position. Errors: ErrConcurrentModification, ErrIndexOutOfRange, ErrNaNInf.
func (r *Row) Set(i int, v float64) error {
	if err := ValidateFinite(v); err != nil {
		return matrixErrorf("Row.Set", err)
	}

	return r.SetElement(i, El(v))
}

// SetElement writes an Element through to the matrix at position i.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange.
func (r *Row) SetElement(i int, e Element) error {
	if err := r.guard(); err != nil {
		return matrixErrorf("Row.Set", err)
	}
	if err := validateIndex(i, r.m.ncol); err != nil {
		return matrixErrorf("Row.Set", err)
	}
	r.setLocal(i-1, e)

	return nil
}

// Slice returns a DETACHED snapshot of the elements selected by s – a plain
// sequence, not a view; later matrix mutation does not affect it.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(k).
func (r *Row) Slice(s Span) ([]Element, error) {
	if err := r.guard(); err != nil {
		return nil, matrixErrorf("Row.Slice", err)
	}
	sel, err := adjustSpan(s, r.m.ncol)
	if err != nil {
		return nil, matrixErrorf("Row.Slice", err)
	}

	out := make([]Element, sel.length())
	for i := range out {
		out[i] = r.elemLocal(sel.index(i))
	}

	return out, nil
}

// Elements returns a detached snapshot of the whole row.
// Errors: ErrConcurrentModification. Complexity: O(ncol).
func (r *Row) Elements() ([]Element, error) {
	if err := r.guard(); err != nil {
		return nil, matrixErrorf("Row.Elements", err)
	}

	out := make([]Element, r.m.ncol)
	copy(out, r.m.rowElements(r.index))

	return out, nil
}

// Contains reports whether the row holds an element exactly equal to e.
// Errors: ErrConcurrentModification. Complexity: O(ncol).
func (r *Row) Contains(e Element) (bool, error) {
	if err := r.guard(); err != nil {
		return false, matrixErrorf("Row.Contains", err)
	}
	for _, v := range r.m.rowElements(r.index) {
		if v.Equal(e) {
			return true, nil
		}
	}

	return false, nil
}

// Equal reports exact element-wise equality with another row or column
// view. Differing lengths compare unequal without error.
// Errors: ErrConcurrentModification.
func (r *Row) Equal(o Line) (bool, error) { return lineEqual(r, o) }

// PivotIndex returns the one-indexed position of the row's first
// non-negligible element, or 0 for an all-zero row.
// Errors: ErrConcurrentModification. Complexity: O(ncol).
func (r *Row) PivotIndex() (int, error) {
	if err := r.guard(); err != nil {
		return 0, matrixErrorf("Row.PivotIndex", err)
	}
	for j, v := range r.m.rowElements(r.index) {
		if !v.IsNegligible() {
			return j + 1, nil
		}
	}

	return 0, nil
}

// Add returns the element-wise sum with another same-length line as a
// DETACHED sequence; the matrix is not touched.
func (r *Row) Add(o Line) ([]Element, error) { return lineCombine(r, o, +1, opLineAdd) }

// AddInPlace adds another same-length line into this row THROUGH the matrix
// storage; the view keeps referencing the updated row.
func (r *Row) AddInPlace(o Line) error { return lineCombineInPlace(r, o, +1, opLineAdd) }

// Sub returns the element-wise difference as a detached sequence.
func (r *Row) Sub(o Line) ([]Element, error) { return lineCombine(r, o, -1, opLineSub) }

// SubInPlace subtracts another line from this row through the matrix storage.
func (r *Row) SubInPlace(o Line) error { return lineCombineInPlace(r, o, -1, opLineSub) }

// Scale returns the row scaled by k as a detached sequence.
func (r *Row) Scale(k float64) ([]Element, error) { return lineScale(r, k, opLineScale) }

// ScaleInPlace multiplies the row by k through the matrix storage.
func (r *Row) ScaleInPlace(k float64) error { return lineScaleInPlace(r, k, opLineScale) }

// DivScalar returns the row divided by k as a detached sequence.
func (r *Row) DivScalar(k float64) ([]Element, error) { return lineDivScalar(r, k, opLineDiv) }

// DivScalarInPlace divides the row by k through the matrix storage.
func (r *Row) DivScalarInPlace(k float64) error { return lineDivScalarInPlace(r, k, opLineDiv) }

// MulElem returns the element-wise product with another same-length line as
// a detached sequence.
func (r *Row) MulElem(o Line) ([]Element, error) { return lineMulElem(r, o, opLineMulElem) }

// MulElemInPlace multiplies element-wise into this row through the storage.
func (r *Row) MulElemInPlace(o Line) error { return lineMulElemInPlace(r, o, opLineMulElem) }

// DivElem returns the element-wise quotient with another same-length line
// as a detached sequence.
func (r *Row) DivElem(o Line) ([]Element, error) { return lineDivElem(r, o, opLineDivElem) }

// DivElemInPlace divides element-wise into this row through the storage.
func (r *Row) DivElemInPlace(o Line) error { return lineDivElemInPlace(r, o, opLineDivElem) }
