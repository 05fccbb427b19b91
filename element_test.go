// Package matrix_test contains unit tests for the decimal Element type.
package matrix_test

import (
	"testing"

	"github.com/AnonymouX47/matrix"
	"github.com/stretchr/testify/require"
)

// TestElFloatConversion verifies that float64 values convert via their
// shortest round-trip decimal representation, not their binary expansion.
func TestElFloatConversion(t *testing.T) {
	require.Equal(t, "0.1", matrix.El(0.1).String())   // 0.1 stays exactly "0.1"
	require.Equal(t, "4", matrix.El(4.0).String())     // integral floats drop the fraction
	require.Equal(t, "-2.5", matrix.El(-2.5).String()) // sign preserved
}

// TestElementArithmeticIsExact confirms decimal arithmetic avoids binary
// float drift: 0.1 + 0.2 equals exactly 0.3.
func TestElementArithmeticIsExact(t *testing.T) {
	sum := matrix.El(0.1).Add(matrix.El(0.2)) // 0.1 + 0.2
	require.True(t, sum.Equal(matrix.El(0.3)))
	require.Equal(t, "0.3", sum.String())

	prod := matrix.El(0.1).Mul(matrix.El(3)) // 0.1 * 3
	require.Equal(t, "0.3", prod.String())
}

// TestElementDivZero ensures division by an exact zero fails.
func TestElementDivZero(t *testing.T) {
	_, err := matrix.One.Div(matrix.Zero)
	require.ErrorIs(t, err, matrix.ErrZeroDivision)

	q, err := matrix.ElInt(7).Div(matrix.ElInt(2)) // ordinary division still works
	require.NoError(t, err)
	require.Equal(t, "3.5", q.String())
}

// TestElementNegligibility checks the round-limit zero threshold.
func TestElementNegligibility(t *testing.T) {
	require.Equal(t, 12, matrix.RoundLimit()) // default threshold exponent

	tiny, err := matrix.ParseEl("1e-13") // below 10^-12
	require.NoError(t, err)
	require.True(t, tiny.IsNegligible())
	require.False(t, tiny.IsZero()) // negligible is not exact zero

	edge, err := matrix.ParseEl("1e-12") // exactly at the threshold
	require.NoError(t, err)
	require.False(t, edge.IsNegligible())
}

// TestElementEqualApprox exercises tolerance-aware comparison.
func TestElementEqualApprox(t *testing.T) {
	near, err := matrix.ParseEl("1.0000000000000004")
	require.NoError(t, err)

	require.True(t, near.EqualApprox(matrix.One)) // within 10^-12
	require.False(t, near.Equal(matrix.One))      // but not exactly equal
}

// TestParseElRejectsGarbage ensures ParseEl surfaces a parse failure.
func TestParseElRejectsGarbage(t *testing.T) {
	_, err := matrix.ParseEl("not-a-number")
	require.Error(t, err)
}

// TestElementOrdering covers Cmp, Neg and Abs round trips.
func TestElementOrdering(t *testing.T) {
	a, b := matrix.ElInt(-3), matrix.ElInt(2)

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(b.Neg().Sub(matrix.One))) // -3 == -(2)-1
	require.True(t, a.Abs().Equal(matrix.ElInt(3)))
}

// TestSetRoundLimitPanicsOnNegative checks the configuration guard.
func TestSetRoundLimitPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { matrix.SetRoundLimit(-1) })
}
