// SPDX-License-Identifier: MIT

// Package matrix: whole-matrix arithmetic and comparison.
//
// Every operation comes in a pure form (fresh result, receiver untouched)
// and an in-place form (receiver mutated). In-place forms that can change
// the receiver's SHAPE (MatMulInPlace, AugmentInPlace) are structural and
// bump the epoch; value-only mutation does not.

package matrix

// combine is the shared kernel behind Add/Sub and their in-place twins.
// sign is +1 for addition, -1 for subtraction.
func (m *Matrix) combine(o *Matrix, sign int, tag string) ([]Element, error) {
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := make([]Element, len(m.data))
	for i, e := range m.data {
		if sign >= 0 {
			out[i] = e.Add(o.data[i])
		} else {
			out[i] = e.Sub(o.data[i])
		}
	}

	return out, nil
}

// Add returns m + o as a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(nrow*ncol).
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	data, err := m.combine(o, +1, opAdd)
	if err != nil {
		return nil, err
	}

	return fromElements(m.nrow, m.ncol, data), nil
}

// AddInPlace sets m = m + o. Value-only: views stay valid.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(nrow*ncol).
func (m *Matrix) AddInPlace(o *Matrix) error {
	data, err := m.combine(o, +1, opAdd)
	if err != nil {
		return err
	}
	copy(m.data, data)
	m.touchValues()

	return nil
}

// Sub returns m - o as a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(nrow*ncol).
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	data, err := m.combine(o, -1, opSub)
	if err != nil {
		return nil, err
	}

	return fromElements(m.nrow, m.ncol, data), nil
}

// SubInPlace sets m = m - o. Value-only: views stay valid.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(nrow*ncol).
func (m *Matrix) SubInPlace(o *Matrix) error {
	data, err := m.combine(o, -1, opSub)
	if err != nil {
		return err
	}
	copy(m.data, data)
	m.touchValues()

	return nil
}

// ScalarMul returns k·m as a fresh matrix. Scalar-matrix and matrix-scalar
// products are the same operation; there is only one method.
// Errors: ErrNaNInf. Complexity: O(nrow*ncol).
func (m *Matrix) ScalarMul(k float64) (*Matrix, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, matrixErrorf(opScalarMul, err)
	}

	f := El(k)
	out := make([]Element, len(m.data))
	for i, e := range m.data {
		out[i] = e.Mul(f)
	}

	return fromElements(m.nrow, m.ncol, out), nil
}

// ScalarMulInPlace sets m = k·m. Value-only.
// Errors: ErrNaNInf. Complexity: O(nrow*ncol).
func (m *Matrix) ScalarMulInPlace(k float64) error {
	if err := ValidateFinite(k); err != nil {
		return matrixErrorf(opScalarMul, err)
	}

	f := El(k)
	for i, e := range m.data {
		m.data[i] = e.Mul(f)
	}
	m.touchValues()

	return nil
}

// ScalarDiv returns m / k as a fresh matrix.
// Errors: ErrNaNInf, ErrZeroDivision. Complexity: O(nrow*ncol).
func (m *Matrix) ScalarDiv(k float64) (*Matrix, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, matrixErrorf(opScalarDiv, err)
	}
	f := El(k)
	if f.IsZero() {
		return nil, matrixErrorf(opScalarDiv, ErrZeroDivision)
	}

	out := make([]Element, len(m.data))
	for i, e := range m.data {
		q, _ := e.Div(f)
		out[i] = q
	}

	return fromElements(m.nrow, m.ncol, out), nil
}

// ScalarDivInPlace sets m = m / k. Value-only; all-or-nothing (the zero
// divisor is rejected before any element changes).
// Errors: ErrNaNInf, ErrZeroDivision. Complexity: O(nrow*ncol).
func (m *Matrix) ScalarDivInPlace(k float64) error {
	if err := ValidateFinite(k); err != nil {
		return matrixErrorf(opScalarDiv, err)
	}
	f := El(k)
	if f.IsZero() {
		return matrixErrorf(opScalarDiv, ErrZeroDivision)
	}

	for i, e := range m.data {
		q, _ := e.Div(f)
		m.data[i] = q
	}
	m.touchValues()

	return nil
}

// matMulData computes the product data for m·o (shapes already validated).
func (m *Matrix) matMulData(o *Matrix) []Element {
	out := make([]Element, m.nrow*o.ncol)
	for r := 0; r < m.nrow; r++ {
		for k := 0; k < m.ncol; k++ {
			f := m.data[r*m.ncol+k]
			if f.IsZero() {
				continue
			}
			for c := 0; c < o.ncol; c++ {
				out[r*o.ncol+c] = out[r*o.ncol+c].Add(f.Mul(o.data[k*o.ncol+c]))
			}
		}
	}

	return out
}

// MatMul returns the matrix product m·o as a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions must agree).
// Complexity: O(nrow*ncol*o.ncol).
func (m *Matrix) MatMul(o *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	return fromElements(m.nrow, o.ncol, m.matMulData(o)), nil
}

// MatMulInPlace sets m = m·o, replacing the receiver's storage. Structural
// when the column count changes: the epoch is bumped and outstanding views
// are invalidated.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(nrow*ncol*o.ncol).
func (m *Matrix) MatMulInPlace(o *Matrix) error {
	if err := ValidateNotNil(o); err != nil {
		return matrixErrorf(opMatMul, err)
	}
	if err := ValidateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMatMul, err)
	}

	data := m.matMulData(o)
	shapeChanged := o.ncol != m.ncol
	m.ncol = o.ncol
	m.data = data
	if shapeChanged {
		m.bumpEpoch()
	} else {
		m.touchValues()
	}

	return nil
}

// Pow returns m raised to the n-th power as a fresh matrix. n=0 yields the
// unit matrix; a negative n inverts first and raises the inverse.
// Errors: ErrNonSquare, ErrSingular (negative n on a singular matrix).
// Complexity: O(|n| * nrow³).
func (m *Matrix) Pow(n int) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	base := m
	if n < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		base, n = inv, -n
	}

	out, err := UnitMatrix(m.nrow)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for ; n > 0; n-- {
		out = fromElements(out.nrow, base.ncol, out.matMulData(base))
	}

	return out, nil
}

// PowInPlace replaces m with m raised to the n-th power. The shape is
// unchanged, so live views stay valid. All-or-nothing on failure.
// Errors: ErrNonSquare, ErrSingular. Complexity: O(|n| * nrow³).
func (m *Matrix) PowInPlace(n int) error {
	out, err := m.Pow(n)
	if err != nil {
		return err
	}
	copy(m.data, out.data)
	m.touchValues()

	return nil
}

// augmentData builds the row-major data of [m | o] (nrow already validated).
func (m *Matrix) augmentData(o *Matrix) []Element {
	width := m.ncol + o.ncol
	out := make([]Element, m.nrow*width)
	for r := 0; r < m.nrow; r++ {
		copy(out[r*width:], m.data[r*m.ncol:(r+1)*m.ncol])
		copy(out[r*width+m.ncol:], o.data[r*o.ncol:(r+1)*o.ncol])
	}

	return out
}

// Augment returns the horizontal concatenation [m | o] as a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts must agree).
// Complexity: O(nrow*(ncol+o.ncol)).
func (m *Matrix) Augment(o *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateAugmentCompatible(m, o); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	return fromElements(m.nrow, m.ncol+o.ncol, m.augmentData(o)), nil
}

// AugmentInPlace widens the receiver to [m | o]. Structural: bumps the
// epoch and invalidates outstanding views.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(nrow*(ncol+o.ncol)).
func (m *Matrix) AugmentInPlace(o *Matrix) error {
	if err := ValidateNotNil(o); err != nil {
		return matrixErrorf(opAugment, err)
	}
	if err := ValidateAugmentCompatible(m, o); err != nil {
		return matrixErrorf(opAugment, err)
	}

	m.data = m.augmentData(o)
	m.ncol += o.ncol
	m.bumpEpoch()

	return nil
}

// Neg returns -m as a fresh matrix. Complexity: O(nrow*ncol).
func (m *Matrix) Neg() *Matrix {
	out := make([]Element, len(m.data))
	for i, e := range m.data {
		out[i] = e.Neg()
	}

	return fromElements(m.nrow, m.ncol, out)
}

// NegInPlace sets m = -m. Value-only. Complexity: O(nrow*ncol).
func (m *Matrix) NegInPlace() {
	for i, e := range m.data {
		m.data[i] = e.Neg()
	}
	m.touchValues()
}

// Equal reports exact element-wise equality. Differing shapes (or a nil o)
// compare unequal without error.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.nrow != o.nrow || m.ncol != o.ncol {
		return false
	}
	for i, e := range m.data {
		if !e.Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// EqualApprox reports element-wise equality within the negligibility
// threshold set by the round limit.
func (m *Matrix) EqualApprox(o *Matrix) bool {
	if o == nil || m.nrow != o.nrow || m.ncol != o.ncol {
		return false
	}
	for i, e := range m.data {
		if !e.EqualApprox(o.data[i]) {
			return false
		}
	}

	return true
}
