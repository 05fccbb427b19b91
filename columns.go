// SPDX-License-Identifier: MIT

// Package matrix: the column view family.
//
// Mirror of rows.go across the main diagonal: Columns (whole-dimension,
// never invalidated), ColumnsSlice (epoch-guarded, composable, read-only)
// and Column (single line, epoch-guarded, arithmetic via lines.go).
// A Column's length is the matrix's ROW count and its elements stride the
// flat storage by ncol.

package matrix

// Columns is the whole-dimension column view of a matrix.
// Obtain it via Matrix.Columns(); there is exactly one per matrix.
type Columns struct {
	m *Matrix // back-reference; never owned
}

// Len returns the current number of columns. Complexity: O(1).
func (cs *Columns) Len() int { return cs.m.ncol }

// At returns a view of the one-indexed i-th column.
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (cs *Columns) At(i int) (*Column, error) {
	if err := validateIndex(i, cs.m.ncol); err != nil {
		return nil, matrixErrorf("Columns.At", err)
	}

	return &Column{m: cs.m, index: i - 1, epoch: cs.m.epoch}, nil
}

// Slice returns an epoch-guarded view of the columns selected by s.
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (cs *Columns) Slice(s Span) (*ColumnsSlice, error) {
	sel, err := adjustSpan(s, cs.m.ncol)
	if err != nil {
		return nil, matrixErrorf("Columns.Slice", err)
	}

	return &ColumnsSlice{m: cs.m, sel: sel, epoch: cs.m.epoch}, nil
}

// Set replaces the one-indexed i-th column with values, which must contain
// exactly Nrow finite numbers.
// Errors: ErrIndexOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Value-only: the epoch is unchanged. Complexity: O(nrow).
func (cs *Columns) Set(i int, values []float64) error {
	if err := validateIndex(i, cs.m.ncol); err != nil {
		return matrixErrorf("Columns.Set", err)
	}
	if len(values) != cs.m.nrow {
		return matrixErrorf("Columns.Set", ErrDimensionMismatch)
	}
	if err := ValidateFiniteSlice(values); err != nil {
		return matrixErrorf("Columns.Set", err)
	}

	for r, v := range values {
		cs.m.data[r*cs.m.ncol+(i-1)] = El(v)
	}
	cs.m.touchValues()

	return nil
}

// Delete removes the one-indexed i-th column. Refuses to remove the last
// remaining column. Structural: bumps the epoch.
// Errors: ErrIndexOutOfRange, ErrInvalidOperation. Complexity: O(nrow*ncol).
func (cs *Columns) Delete(i int) error {
	if err := validateIndex(i, cs.m.ncol); err != nil {
		return matrixErrorf("Columns.Delete", err)
	}

	if err := cs.m.deleteCols(adjustedSpan{start: i - 1, stop: i, step: 1}); err != nil {
		return matrixErrorf("Columns.Delete", err)
	}

	return nil
}

// DeleteSlice removes the columns selected by s. Refuses an operation that
// would leave zero columns. Structural: bumps the epoch once.
// Errors: ErrIndexOutOfRange, ErrInvalidOperation. Complexity: O(nrow*ncol).
func (cs *Columns) DeleteSlice(s Span) error {
	sel, err := adjustSpan(s, cs.m.ncol)
	if err != nil {
		return matrixErrorf("Columns.DeleteSlice", err)
	}

	if err = cs.m.deleteCols(sel); err != nil {
		return matrixErrorf("Columns.DeleteSlice", err)
	}

	return nil
}

// ColumnsSlice is a step-respecting sub-selection of a matrix's columns.
// It aliases the matrix (no copying) and is invalidated by any structural
// change made after its creation.
type ColumnsSlice struct {
	m     *Matrix      // back-reference
	sel   adjustedSpan // absolute zero-based selection
	epoch uint64       // matrix epoch at creation
}

// guard fails once the matrix has structurally changed since creation.
func (sl *ColumnsSlice) guard() error {
	if sl.epoch != sl.m.epoch {
		return ErrConcurrentModification
	}

	return nil
}

// Len returns the number of columns selected. Complexity: O(1).
func (sl *ColumnsSlice) Len() int { return sl.sel.length() }

// At returns a view of the i-th selected column (one-indexed within the
// slice, resolved to the matrix's absolute column).
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(1).
func (sl *ColumnsSlice) At(i int) (*Column, error) {
	if err := sl.guard(); err != nil {
		return nil, matrixErrorf("ColumnsSlice.At", err)
	}
	if err := validateIndex(i, sl.sel.length()); err != nil {
		return nil, matrixErrorf("ColumnsSlice.At", err)
	}

	return &Column{m: sl.m, index: sl.sel.index(i - 1), epoch: sl.m.epoch}, nil
}

// Slice re-slices the selection against the matrix's ABSOLUTE column
// indices, exactly as if the combined selection had been made directly.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(1).
func (sl *ColumnsSlice) Slice(s Span) (*ColumnsSlice, error) {
	if err := sl.guard(); err != nil {
		return nil, matrixErrorf("ColumnsSlice.Slice", err)
	}
	inner, err := adjustSpan(s, sl.sel.length())
	if err != nil {
		return nil, matrixErrorf("ColumnsSlice.Slice", err)
	}

	return &ColumnsSlice{m: sl.m, sel: sl.sel.compose(inner), epoch: sl.m.epoch}, nil
}

// Set is intentionally unsupported on a slice view: always returns
// ErrUnsupportedOperation. Assign through Matrix.Columns() instead.
func (sl *ColumnsSlice) Set(int, []float64) error {
	return matrixErrorf("ColumnsSlice.Set", ErrUnsupportedOperation)
}

// Delete is intentionally unsupported on a slice view: always returns
// ErrUnsupportedOperation. Delete through Matrix.Columns() instead.
func (sl *ColumnsSlice) Delete(int) error {
	return matrixErrorf("ColumnsSlice.Delete", ErrUnsupportedOperation)
}

// Column is a view of a single matrix column. It aliases the matrix storage
// and is invalidated by any structural change made after its creation.
type Column struct {
	m     *Matrix // back-reference
	index int     // zero-based absolute column index
	epoch uint64  // matrix epoch at creation
}

// guard fails once the matrix has structurally changed since creation.
func (c *Column) guard() error {
	if c.epoch != c.m.epoch {
		return ErrConcurrentModification
	}

	return nil
}

// Index returns the one-indexed position of the referenced column.
func (c *Column) Index() int { return c.index + 1 }

// Len returns the column's length (the matrix's row count). Complexity: O(1).
func (c *Column) Len() int { return c.m.nrow }

func (c *Column) elemLocal(i int) Element { return c.m.data[i*c.m.ncol+c.index] }

func (c *Column) setLocal(i int, e Element) {
	c.m.data[i*c.m.ncol+c.index] = e
	c.m.touchValues()
}

// At returns the one-indexed i-th element of the column.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(1).
func (c *Column) At(i int) (Element, error) {
	if err := c.guard(); err != nil {
		return Zero, matrixErrorf("Column.At", err)
	}
	if err := validateIndex(i, c.m.nrow); err != nil {
		return Zero, matrixErrorf("Column.At", err)
	}

	return c.elemLocal(i - 1), nil
}

// Set writes a finite float64 through to the matrix at the column's i-th
// position. Errors: ErrConcurrentModification, ErrIndexOutOfRange, ErrNaNInf.
func (c *Column) Set(i int, v float64) error {
	if err := ValidateFinite(v); err != nil {
		return matrixErrorf("Column.Set", err)
	}

	return c.SetElement(i, El(v))
}

// SetElement writes an Element through to the matrix at position i.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange.
func (c *Column) SetElement(i int, e Element) error {
	if err := c.guard(); err != nil {
		return matrixErrorf("Column.Set", err)
	}
	if err := validateIndex(i, c.m.nrow); err != nil {
		return matrixErrorf("Column.Set", err)
	}
	c.setLocal(i-1, e)

	return nil
}

// Slice returns a DETACHED snapshot of the elements selected by s – a plain
// sequence, not a view.
// Errors: ErrConcurrentModification, ErrIndexOutOfRange. Complexity: O(k).
func (c *Column) Slice(s Span) ([]Element, error) {
	if err := c.guard(); err != nil {
		return nil, matrixErrorf("Column.Slice", err)
	}
	sel, err := adjustSpan(s, c.m.nrow)
	if err != nil {
		return nil, matrixErrorf("Column.Slice", err)
	}

	out := make([]Element, sel.length())
	for i := range out {
		out[i] = c.elemLocal(sel.index(i))
	}

	return out, nil
}

// Elements returns a detached snapshot of the whole column.
// Errors: ErrConcurrentModification. Complexity: O(nrow).
func (c *Column) Elements() ([]Element, error) {
	if err := c.guard(); err != nil {
		return nil, matrixErrorf("Column.Elements", err)
	}

	out := make([]Element, c.m.nrow)
	for i := range out {
		out[i] = c.elemLocal(i)
	}

	return out, nil
}

// Contains reports whether the column holds an element exactly equal to e.
// Errors: ErrConcurrentModification. Complexity: O(nrow).
func (c *Column) Contains(e Element) (bool, error) {
	if err := c.guard(); err != nil {
		return false, matrixErrorf("Column.Contains", err)
	}
	for i, n := 0, c.m.nrow; i < n; i++ {
		if c.elemLocal(i).Equal(e) {
			return true, nil
		}
	}

	return false, nil
}

// Equal reports exact element-wise equality with another row or column
// view. Differing lengths compare unequal without error.
// Errors: ErrConcurrentModification.
func (c *Column) Equal(o Line) (bool, error) { return lineEqual(c, o) }

// Add returns the element-wise sum with another same-length line as a
// DETACHED sequence; the matrix is not touched.
func (c *Column) Add(o Line) ([]Element, error) { return lineCombine(c, o, +1, opLineAdd) }

// AddInPlace adds another same-length line into this column THROUGH the
// matrix storage; the view keeps referencing the updated column.
func (c *Column) AddInPlace(o Line) error { return lineCombineInPlace(c, o, +1, opLineAdd) }

// Sub returns the element-wise difference as a detached sequence.
func (c *Column) Sub(o Line) ([]Element, error) { return lineCombine(c, o, -1, opLineSub) }

// SubInPlace subtracts another line from this column through the storage.
func (c *Column) SubInPlace(o Line) error { return lineCombineInPlace(c, o, -1, opLineSub) }

// Scale returns the column scaled by k as a detached sequence.
func (c *Column) Scale(k float64) ([]Element, error) { return lineScale(c, k, opLineScale) }

// ScaleInPlace multiplies the column by k through the matrix storage.
func (c *Column) ScaleInPlace(k float64) error { return lineScaleInPlace(c, k, opLineScale) }

// DivScalar returns the column divided by k as a detached sequence.
func (c *Column) DivScalar(k float64) ([]Element, error) { return lineDivScalar(c, k, opLineDiv) }

// DivScalarInPlace divides the column by k through the matrix storage.
func (c *Column) DivScalarInPlace(k float64) error { return lineDivScalarInPlace(c, k, opLineDiv) }

// MulElem returns the element-wise product with another same-length line as
// a detached sequence.
func (c *Column) MulElem(o Line) ([]Element, error) { return lineMulElem(c, o, opLineMulElem) }

// MulElemInPlace multiplies element-wise into this column through the storage.
func (c *Column) MulElemInPlace(o Line) error { return lineMulElemInPlace(c, o, opLineMulElem) }

// DivElem returns the element-wise quotient with another same-length line
// as a detached sequence.
func (c *Column) DivElem(o Line) ([]Element, error) { return lineDivElem(c, o, opLineDivElem) }

// DivElemInPlace divides element-wise into this column through the storage.
func (c *Column) DivElemInPlace(o Line) error { return lineDivElemInPlace(c, o, opLineDivElem) }
