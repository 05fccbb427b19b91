// Package matrix_test contains unit tests for the element cursor.
package matrix_test

import (
	"testing"

	"github.com/AnonymouX47/matrix"
	"github.com/stretchr/testify/require"
)

// TestCursorRowMajorOrder walks a full matrix and checks order and the
// exhaustion latch.
func TestCursorRowMajorOrder(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	it := m.Iter()

	var got []float64
	for {
		e, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, e.Float64())
	}
	require.Equal(t, []float64{1, 2, 3, 4}, got) // row-major, from (1,1)

	// once exhausted, the cursor stays exhausted
	_, ok, err := it.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

// TestCursorSeekRow checks the single-index form: jump to a row start.
func TestCursorSeekRow(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	it := m.Iter()

	e, ok, err := it.Seek(3) // first element of row 3
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5.0, e.Float64())

	e, ok, err = it.Next() // its successor
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 6.0, e.Float64())
}

// TestCursorSeekElement checks the two-index form: jump to a cell.
func TestCursorSeekElement(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	it := m.Iter()

	e, ok, err := it.Seek(2, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3.0, e.Float64())

	e, ok, err = it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4.0, e.Float64())

	// seeking backwards rewinds an exhausted cursor
	_, ok, err = it.Next()
	require.NoError(t, err)
	require.False(t, ok)

	e, ok, err = it.Seek(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1.0, e.Float64())
}

// TestCursorSeekTermination verifies that a bad target or arity terminates
// the cursor without an error.
func TestCursorSeekTermination(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	for _, target := range [][]int{
		{3},       // row out of range
		{1, 5},    // column out of range
		{0, 1},    // sub-one index
		{},        // no index at all
		{1, 1, 1}, // too many indices
	} {
		it := m.Iter()
		_, ok, err := it.Seek(target...)
		require.NoError(t, err) // termination, not an error
		require.False(t, ok)

		_, ok, err = it.Next() // and the cursor stays terminated
		require.NoError(t, err)
		require.False(t, ok)
	}
}

// TestCursorConcurrentModification confirms structural changes invalidate
// an outstanding cursor while value writes do not.
func TestCursorConcurrentModification(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	it := m.Iter()

	require.NoError(t, m.Set(1, 1, 9)) // value-only write
	e, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 9.0, e.Float64()) // cursor observes the new value

	require.NoError(t, m.Resize(3, 2)) // structural change

	_, _, err = it.Next()
	require.ErrorIs(t, err, matrix.ErrConcurrentModification)
	_, _, err = it.Seek(1)
	require.ErrorIs(t, err, matrix.ErrConcurrentModification)
}
