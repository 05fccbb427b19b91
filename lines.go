// SPDX-License-Identifier: MIT

// Package matrix: shared single-line (Row/Column) arithmetic kernels.
//
// Purpose:
//   - Let Row and Column combine in any pairing through one interface.
//   - Keep the pure/in-place distinction as two separate, explicitly named
//     entry points per operation: the pure kernel returns a DETACHED element
//     sequence and never touches matrix storage; the in-place kernel writes
//     through the destination view and leaves it referencing the same line.
//
// Every kernel guards view validity first (epoch check), then shape, then
// operand values, so failures are reported before any storage is written.

package matrix

// Line is a single row or column view of a matrix. Row and Column implement
// it, so element-wise arithmetic accepts them interchangeably.
type Line interface {
	// Len reports the live length of the referenced line.
	Len() int
	// At returns the one-indexed i-th element of the line.
	At(i int) (Element, error)
	// Elements returns a detached snapshot of the line.
	Elements() ([]Element, error)

	// guard fails with ErrConcurrentModification once the underlying
	// matrix has structurally changed since the view was created.
	guard() error
	// elemLocal reads the zero-based i-th element; caller has guarded.
	elemLocal(i int) Element
	// setLocal writes the zero-based i-th element through to the matrix
	// storage; caller has guarded.
	setLocal(i int, e Element)
}

// guardPair guards both views and checks that their lengths match.
func guardPair(a, b Line) error {
	if err := a.guard(); err != nil {
		return err
	}
	if err := b.guard(); err != nil {
		return err
	}
	if a.Len() != b.Len() {
		return ErrDimensionMismatch
	}

	return nil
}

// lineCombine computes out[i] = a[i] + sign*b[i] as a detached sequence.
// sign is +1 for addition, -1 for subtraction; callers enforce.
// Errors: ErrConcurrentModification, ErrDimensionMismatch.
// Complexity: O(n).
func lineCombine(a, b Line, sign int, opTag string) ([]Element, error) {
	if err := guardPair(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := a.Len()
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		bv := b.elemLocal(i)
		if sign < 0 {
			bv = bv.Neg()
		}
		out[i] = a.elemLocal(i).Add(bv)
	}

	return out, nil
}

// lineCombineInPlace performs dst[i] += sign*src[i] through dst's matrix
// storage. src is snapshotted first so dst and src may alias the same line.
// Complexity: O(n).
func lineCombineInPlace(dst, src Line, sign int, opTag string) error {
	if err := guardPair(dst, src); err != nil {
		return matrixErrorf(opTag, err)
	}

	// Snapshot the source before writing: dst may BE src.
	n := dst.Len()
	snap := make([]Element, n)
	for i := 0; i < n; i++ {
		snap[i] = src.elemLocal(i)
	}
	for i := 0; i < n; i++ {
		sv := snap[i]
		if sign < 0 {
			sv = sv.Neg()
		}
		dst.setLocal(i, dst.elemLocal(i).Add(sv))
	}

	return nil
}

// lineScale computes out[i] = l[i] * k as a detached sequence.
// Errors: ErrConcurrentModification, ErrNaNInf. Complexity: O(n).
func lineScale(l Line, k float64, opTag string) ([]Element, error) {
	if err := l.guard(); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateFinite(k); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	ke := El(k)
	n := l.Len()
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		out[i] = l.elemLocal(i).Mul(ke)
	}

	return out, nil
}

// lineScaleInPlace performs l[i] *= k through the matrix storage.
func lineScaleInPlace(l Line, k float64, opTag string) error {
	if err := l.guard(); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateFinite(k); err != nil {
		return matrixErrorf(opTag, err)
	}

	ke := El(k)
	for i, n := 0, l.Len(); i < n; i++ {
		l.setLocal(i, l.elemLocal(i).Mul(ke))
	}

	return nil
}

// lineDivScalar computes out[i] = l[i] / k as a detached sequence.
// Errors: ErrConcurrentModification, ErrNaNInf, ErrZeroDivision.
func lineDivScalar(l Line, k float64, opTag string) ([]Element, error) {
	if err := l.guard(); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateFinite(k); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	ke := El(k)
	if ke.IsZero() {
		return nil, matrixErrorf(opTag, ErrZeroDivision)
	}

	n := l.Len()
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		q, err := l.elemLocal(i).Div(ke)
		if err != nil {
			return nil, matrixErrorf(opTag, err)
		}
		out[i] = q
	}

	return out, nil
}

// lineDivScalarInPlace performs l[i] /= k through the matrix storage.
func lineDivScalarInPlace(l Line, k float64, opTag string) error {
	out, err := lineDivScalar(l, k, opTag)
	if err != nil {
		return err
	}
	for i, e := range out {
		l.setLocal(i, e)
	}

	return nil
}

// lineMulElem computes out[i] = a[i] * b[i] as a detached sequence.
func lineMulElem(a, b Line, opTag string) ([]Element, error) {
	if err := guardPair(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := a.Len()
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		out[i] = a.elemLocal(i).Mul(b.elemLocal(i))
	}

	return out, nil
}

// lineMulElemInPlace performs dst[i] *= src[i]; src is snapshotted so the
// two views may alias the same line.
func lineMulElemInPlace(dst, src Line, opTag string) error {
	out, err := lineMulElem(dst, src, opTag)
	if err != nil {
		return err
	}
	for i, e := range out {
		dst.setLocal(i, e)
	}

	return nil
}

// lineDivElem computes out[i] = a[i] / b[i] as a detached sequence.
// A zero b[i] fails with ErrZeroDivision before anything is produced.
func lineDivElem(a, b Line, opTag string) ([]Element, error) {
	if err := guardPair(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := a.Len()
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		q, err := a.elemLocal(i).Div(b.elemLocal(i))
		if err != nil {
			return nil, matrixErrorf(opTag, err)
		}
		out[i] = q
	}

	return out, nil
}

// lineDivElemInPlace performs dst[i] /= src[i]; all-or-nothing on error.
func lineDivElemInPlace(dst, src Line, opTag string) error {
	out, err := lineDivElem(dst, src, opTag)
	if err != nil {
		return err
	}
	for i, e := range out {
		dst.setLocal(i, e)
	}

	return nil
}

// lineEqual reports exact element-wise equality of two lines.
// Errors: ErrConcurrentModification only; differing lengths are simply
// unequal, not an error.
func lineEqual(a, b Line) (bool, error) {
	if err := a.guard(); err != nil {
		return false, err
	}
	if err := b.guard(); err != nil {
		return false, err
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	for i, n := 0, a.Len(); i < n; i++ {
		if !a.elemLocal(i).Equal(b.elemLocal(i)) {
			return false, nil
		}
	}

	return true, nil
}

// Line operation tags.
const (
	opLineAdd     = "Line.Add"
	opLineSub     = "Line.Sub"
	opLineScale   = "Line.Scale"
	opLineDiv     = "Line.DivScalar"
	opLineMulElem = "Line.MulElem"
	opLineDivElem = "Line.DivElem"
)
