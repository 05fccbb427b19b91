// Package matrix_test contains unit tests for the row view family:
// Rows, RowsSlice and Row.
package matrix_test

import (
	"testing"

	"github.com/AnonymouX47/matrix"
	"github.com/stretchr/testify/require"
)

// rowVals reads a row view as float64s, failing the test on error.
func rowVals(t *testing.T, r *matrix.Row) []float64 {
	t.Helper()
	es, err := r.Elements()
	require.NoError(t, err)

	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = e.Float64()
	}

	return out
}

// TestRowsAtAndSet exercises one-indexed row access and replacement.
func TestRowsAtAndSet(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Rows().At(2)
	require.NoError(t, err)
	require.Equal(t, 2, row.Index())
	require.Equal(t, []float64{3, 4}, rowVals(t, row))

	_, err = m.Rows().At(3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	require.NoError(t, m.Rows().Set(1, []float64{9, 8}))
	require.Equal(t, 9.0, elAt(t, m, 1, 1))

	// replacement must match the column count exactly
	err = m.Rows().Set(1, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowSetWritesThrough confirms a Row aliases matrix storage.
func TestRowSetWritesThrough(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Rows().At(1)
	require.NoError(t, err)

	require.NoError(t, row.Set(2, 42))
	require.Equal(t, 42.0, elAt(t, m, 1, 2)) // write is visible in the matrix

	require.NoError(t, m.Set(1, 1, 7)) // and matrix writes are visible here
	e, err := row.At(1)
	require.NoError(t, err)
	require.Equal(t, 7.0, e.Float64())
}

// TestRowsSliceStepAndComposition verifies stepping and that re-slicing a
// slice resolves against the matrix's absolute row indices.
func TestRowsSliceStepAndComposition(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8},
	})

	// rows 1,3,5,7
	odd, err := m.Rows().Slice(matrix.NewSpan(1, 8).WithStep(2))
	require.NoError(t, err)
	require.Equal(t, 4, odd.Len())

	r, err := odd.At(3) // third selected row is absolute row 5
	require.NoError(t, err)
	require.Equal(t, 5, r.Index())

	// slicing the slice composes: every 2nd of the odd rows from the 2nd
	inner, err := odd.Slice(matrix.NewSpan(2, 4).WithStep(2))
	require.NoError(t, err)
	require.Equal(t, 2, inner.Len())

	r, err = inner.At(1) // absolute row 3
	require.NoError(t, err)
	require.Equal(t, 3, r.Index())

	r, err = inner.At(2) // absolute row 7
	require.NoError(t, err)
	require.Equal(t, 7, r.Index())
}

// TestRowsSliceRejectsMutation ensures slice views refuse assignment and
// deletion with ErrUnsupportedOperation.
func TestRowsSliceRejectsMutation(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1}, {2}, {3}})
	sl, err := m.Rows().Slice(matrix.NewSpan(1, 3))
	require.NoError(t, err)

	require.ErrorIs(t, sl.Set(1, []float64{9}), matrix.ErrUnsupportedOperation)
	require.ErrorIs(t, sl.Delete(1), matrix.ErrUnsupportedOperation)
}

// TestRowsDelete covers single and ranged deletion plus the floor of one
// remaining row.
func TestRowsDelete(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1}, {2}, {3}, {4}})

	require.NoError(t, m.Rows().Delete(2))
	require.Equal(t, 3, m.Nrow())
	require.Equal(t, 3.0, elAt(t, m, 2, 1)) // survivors compacted upward

	require.NoError(t, m.Rows().DeleteSlice(matrix.NewSpan(1, 2)))
	require.Equal(t, 1, m.Nrow())
	require.Equal(t, 4.0, elAt(t, m, 1, 1))

	// removing the last remaining row is refused
	err := m.Rows().Delete(1)
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)
	require.Equal(t, 1, m.Nrow())
}

// TestRowViewInvalidatedByDelete confirms deletion bumps the epoch.
func TestRowViewInvalidatedByDelete(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1}, {2}, {3}})
	row, err := m.Rows().At(1)
	require.NoError(t, err)
	sl, errSl := m.Rows().Slice(matrix.NewSpan(1, 2))
	require.NoError(t, errSl)

	require.NoError(t, m.Rows().Delete(3))

	_, err = row.At(1)
	require.ErrorIs(t, err, matrix.ErrConcurrentModification)
	_, err = sl.At(1)
	require.ErrorIs(t, err, matrix.ErrConcurrentModification)
}

// TestRowValueWritesDoNotInvalidate confirms value-only mutation keeps
// views alive.
func TestRowValueWritesDoNotInvalidate(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Rows().At(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(2, 1, 30))             // element write
	require.NoError(t, m.Rows().Set(1, []float64{10, 20})) // row replacement

	require.Equal(t, []float64{30, 4}, rowVals(t, row)) // still valid, sees updates
}

// TestRowSliceSnapshot ensures Row.Slice returns a detached sequence.
func TestRowSliceSnapshot(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3, 4, 5}})
	row, err := m.Rows().At(1)
	require.NoError(t, err)

	es, err := row.Slice(matrix.NewSpan(2, 9).WithStep(2)) // clamped, stepped
	require.NoError(t, err)
	require.Len(t, es, 2)
	require.Equal(t, 2.0, es[0].Float64())
	require.Equal(t, 4.0, es[1].Float64())

	require.NoError(t, m.Set(1, 2, 99))
	require.Equal(t, 2.0, es[0].Float64()) // snapshot unaffected
}

// TestRowPivotIndex covers the leading non-negligible scan.
func TestRowPivotIndex(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{0, 0, 7, 1},
		{0, 0, 0, 0},
		{5, 0, 0, 0},
	})

	for i, want := range []int{3, 0, 1} {
		row, err := m.Rows().At(i + 1)
		require.NoError(t, err)
		p, err := row.PivotIndex()
		require.NoError(t, err)
		require.Equal(t, want, p) // zero means no pivot in the row
	}
}

// TestRowArithmeticPureVsInPlace contrasts the detached and write-through
// forms of row combination.
func TestRowArithmeticPureVsInPlace(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {10, 20}})
	r1, err := m.Rows().At(1)
	require.NoError(t, err)
	r2, err := m.Rows().At(2)
	require.NoError(t, err)

	sum, err := r1.Add(r2) // pure: detached result
	require.NoError(t, err)
	require.Equal(t, 11.0, sum[0].Float64())
	require.Equal(t, 1.0, elAt(t, m, 1, 1)) // matrix untouched

	require.NoError(t, r1.AddInPlace(r2)) // in place: writes through
	require.Equal(t, 11.0, elAt(t, m, 1, 1))
	require.Equal(t, 22.0, elAt(t, m, 1, 2))

	require.NoError(t, r1.ScaleInPlace(0.5))
	require.Equal(t, 5.5, elAt(t, m, 1, 1))

	require.NoError(t, r1.SubInPlace(r1)) // self-aliasing is safe
	require.Equal(t, 0.0, elAt(t, m, 1, 1))
	require.Equal(t, 0.0, elAt(t, m, 1, 2))
}

// TestRowScalarDivision covers the zero-divisor guard.
func TestRowScalarDivision(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 4}})
	row, err := m.Rows().At(1)
	require.NoError(t, err)

	err = row.DivScalarInPlace(0)
	require.ErrorIs(t, err, matrix.ErrZeroDivision)
	require.Equal(t, 2.0, elAt(t, m, 1, 1)) // untouched on failure

	require.NoError(t, row.DivScalarInPlace(2))
	require.Equal(t, []float64{1, 2}, rowVals(t, row))
}

// TestRowCrossLineArithmetic verifies a Row and a Column combine through
// the shared line contract.
func TestRowCrossLineArithmetic(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Rows().At(1) // [1 2]
	require.NoError(t, err)
	col, err := m.Columns().At(1) // [1 3]ᵀ
	require.NoError(t, err)

	sum, err := row.Add(col) // same length, different orientation
	require.NoError(t, err)
	require.Equal(t, 2.0, sum[0].Float64())
	require.Equal(t, 5.0, sum[1].Float64())

	short := mustFromRows(t, [][]float64{{1, 2, 3}})
	longRow, err := short.Rows().At(1)
	require.NoError(t, err)
	_, err = row.Add(longRow)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowContainsAndEqual covers membership and line equality.
func TestRowContainsAndEqual(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {1, 2}, {3, 4}})
	r1, err := m.Rows().At(1)
	require.NoError(t, err)
	r2, err := m.Rows().At(2)
	require.NoError(t, err)
	r3, err := m.Rows().At(3)
	require.NoError(t, err)

	ok, err := r1.Contains(matrix.ElInt(2))
	require.NoError(t, err)
	require.True(t, ok)

	eq, err := r1.Equal(r2)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = r1.Equal(r3)
	require.NoError(t, err)
	require.False(t, eq)
}
