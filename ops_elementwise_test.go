// Package matrix_test contains unit tests for whole-matrix arithmetic and
// comparison.
package matrix_test

import (
	"testing"

	"github.com/AnonymouX47/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSubPureAndInPlace contrasts the detached and mutating forms.
func TestAddSubPureAndInPlace(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 11.0, elAt(t, sum, 1, 1))
	require.Equal(t, 1.0, elAt(t, a, 1, 1)) // receiver untouched

	require.NoError(t, a.AddInPlace(b))
	require.Equal(t, 44.0, elAt(t, a, 2, 2))

	require.NoError(t, a.SubInPlace(b)) // undo
	require.Equal(t, 4.0, elAt(t, a, 2, 2))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, 9.0, elAt(t, diff, 1, 1))

	_, err = a.Add(mustFromRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScalarOps covers multiplication and the zero-divisor guard.
func TestScalarOps(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	twice, err := m.ScalarMul(2)
	require.NoError(t, err)
	require.Equal(t, 8.0, elAt(t, twice, 2, 2))

	require.NoError(t, m.ScalarDivInPlace(2))
	require.Equal(t, 0.5, elAt(t, m, 1, 1)) // exact decimal halves
	require.Equal(t, 1.5, elAt(t, m, 2, 1))

	_, err = m.ScalarDiv(0)
	require.ErrorIs(t, err, matrix.ErrZeroDivision)
	err = m.ScalarDivInPlace(0)
	require.ErrorIs(t, err, matrix.ErrZeroDivision)
	require.Equal(t, 0.5, elAt(t, m, 1, 1)) // untouched on failure
}

// TestMatMul checks the product values and the inner-dimension guard.
func TestMatMul(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3x2

	p, err := a.MatMul(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Nrow())
	require.Equal(t, 2, p.Ncol())
	require.Equal(t, 58.0, elAt(t, p, 1, 1))  // 1*7+2*9+3*11
	require.Equal(t, 154.0, elAt(t, p, 2, 2)) // 4*8+5*10+6*12

	_, err = a.MatMul(a) // 2x3 · 2x3 has no matching inner dimension
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatMulInPlaceEpoch confirms the in-place product bumps the epoch
// only when the shape actually changes.
func TestMatMulInPlaceEpoch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	square := mustFromRows(t, [][]float64{{1, 0}, {0, 1}})
	wide := mustFromRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}})

	row, err := a.Rows().At(1)
	require.NoError(t, err)

	require.NoError(t, a.MatMulInPlace(square)) // 2x2 stays 2x2
	_, err = row.At(1)
	require.NoError(t, err) // same shape: views stay valid

	require.NoError(t, a.MatMulInPlace(wide)) // 2x2 becomes 2x3
	require.Equal(t, 3, a.Ncol())
	_, err = row.At(1)
	require.ErrorIs(t, err, matrix.ErrConcurrentModification)
}

// TestPow covers positive, zero and negative exponents.
func TestPow(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 0}, {0, 3}})

	cube, err := m.Pow(3)
	require.NoError(t, err)
	require.Equal(t, 8.0, elAt(t, cube, 1, 1))
	require.Equal(t, 27.0, elAt(t, cube, 2, 2))

	unit, err := m.Pow(0)
	require.NoError(t, err)
	require.True(t, unit.IsUnit())

	invSq, err := m.Pow(-2) // (m⁻¹)², diagonal so exact
	require.NoError(t, err)
	require.Equal(t, 0.25, elAt(t, invSq, 1, 1))

	_, err = mustFromRows(t, [][]float64{{1, 2, 3}}).Pow(2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	singular := mustFromRows(t, [][]float64{{1, 1}, {1, 1}})
	_, err = singular.Pow(-1)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestPowInPlace confirms the mutating form keeps views valid and is
// all-or-nothing on failure.
func TestPowInPlace(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 0}, {0, 3}})
	row, err := m.Rows().At(1)
	require.NoError(t, err)

	require.NoError(t, m.PowInPlace(2))
	require.Equal(t, 4.0, elAt(t, m, 1, 1))
	require.Equal(t, 9.0, elAt(t, m, 2, 2))

	_, err = row.At(1) // shape unchanged: views stay alive
	require.NoError(t, err)

	singular := mustFromRows(t, [][]float64{{1, 1}, {1, 1}})
	require.ErrorIs(t, singular.PowInPlace(-1), matrix.ErrSingular)
	require.Equal(t, 1.0, elAt(t, singular, 1, 1)) // untouched on failure
}

// TestAugment covers horizontal concatenation pure and in place.
func TestAugment(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5}, {6}})

	wide, err := a.Augment(b)
	require.NoError(t, err)
	require.Equal(t, 3, wide.Ncol())
	require.Equal(t, 5.0, elAt(t, wide, 1, 3))
	require.Equal(t, 2, a.Ncol()) // receiver untouched

	row, err := a.Rows().At(1)
	require.NoError(t, err)

	require.NoError(t, a.AugmentInPlace(b)) // structural
	require.Equal(t, 3, a.Ncol())
	require.Equal(t, 6.0, elAt(t, a, 2, 3))
	_, err = row.At(1)
	require.ErrorIs(t, err, matrix.ErrConcurrentModification)

	_, err = a.Augment(mustFromRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNeg covers negation in both forms.
func TestNeg(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2}})

	n := m.Neg()
	require.Equal(t, -1.0, elAt(t, n, 1, 1))
	require.Equal(t, 2.0, elAt(t, n, 1, 2))
	require.Equal(t, 1.0, elAt(t, m, 1, 1))

	m.NegInPlace()
	require.True(t, m.Equal(n))
}

// TestEqualAndEqualApprox separates exact from tolerant comparison.
func TestEqualAndEqualApprox(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}})
	b := mustFromRows(t, [][]float64{{1, 2}})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(mustFromRows(t, [][]float64{{1}, {2}}))) // shape differs

	// nudge one element below the negligibility threshold
	tiny, err := matrix.ParseEl("2.0000000000000001")
	require.NoError(t, err)
	require.NoError(t, b.SetElement(1, 2, tiny))

	require.False(t, a.Equal(b))
	require.True(t, a.EqualApprox(b))
}
