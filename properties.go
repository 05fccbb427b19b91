// SPDX-License-Identifier: MIT

// Package matrix: shape and structure predicates.
//
// Every predicate is a pure scan that never fails: a shape that cannot
// satisfy the property simply reports false. Checks that compare computed
// values (unit diagonal, orthogonality, symmetry) use the negligibility
// policy set by the round limit, matching the elimination engine.

package matrix

// Conformability names the shape relations checked by IsConformable.
type Conformability int

const (
	// SameShape requires identical row and column counts (addition family).
	SameShape Conformability = iota
	// Product requires a's column count to equal b's row count.
	Product
	// Augmentation requires matching row counts.
	Augmentation
)

// IsConformable reports whether a and b have compatible shapes for the
// given operation. Nil operands are never conformable.
func IsConformable(a, b *Matrix, op Conformability) bool {
	if a == nil || b == nil {
		return false
	}
	switch op {
	case SameShape:
		return a.nrow == b.nrow && a.ncol == b.ncol
	case Product:
		return a.ncol == b.nrow
	case Augmentation:
		return a.nrow == b.nrow
	default:
		return false
	}
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool { return m.nrow == m.ncol }

// IsNull reports whether every element is negligible.
func (m *Matrix) IsNull() bool {
	for _, e := range m.data {
		if !e.IsNegligible() {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether the matrix is square with negligible entries
// everywhere off the main diagonal.
func (m *Matrix) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 0; r < m.nrow; r++ {
		for c := 0; c < m.ncol; c++ {
			if r != c && !m.data[r*m.ncol+c].IsNegligible() {
				return false
			}
		}
	}

	return true
}

// IsUnit reports whether the matrix is the identity: diagonal with every
// diagonal entry equal to one within tolerance.
func (m *Matrix) IsUnit() bool {
	if !m.IsDiagonal() {
		return false
	}
	for i := 0; i < m.nrow; i++ {
		if !m.data[i*m.ncol+i].EqualApprox(One) {
			return false
		}
	}

	return true
}

// IsUpperTriangular reports whether the matrix is square with negligible
// entries below the main diagonal.
func (m *Matrix) IsUpperTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 1; r < m.nrow; r++ {
		for c := 0; c < r; c++ {
			if !m.data[r*m.ncol+c].IsNegligible() {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether the matrix is square with negligible
// entries above the main diagonal.
func (m *Matrix) IsLowerTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 0; r < m.nrow; r++ {
		for c := r + 1; c < m.ncol; c++ {
			if !m.data[r*m.ncol+c].IsNegligible() {
				return false
			}
		}
	}

	return true
}

// IsTriangular reports whether the matrix is upper or lower triangular.
func (m *Matrix) IsTriangular() bool {
	return m.IsUpperTriangular() || m.IsLowerTriangular()
}

// IsSymmetric reports whether the matrix equals its transpose exactly.
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 0; r < m.nrow; r++ {
		for c := r + 1; c < m.ncol; c++ {
			if !m.data[r*m.ncol+c].Equal(m.data[c*m.ncol+r]) {
				return false
			}
		}
	}

	return true
}

// IsSkewSymmetric reports whether the matrix equals the negation of its
// transpose; the main diagonal must be all zeros.
func (m *Matrix) IsSkewSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for r := 0; r < m.nrow; r++ {
		for c := r; c < m.ncol; c++ {
			if !m.data[r*m.ncol+c].Equal(m.data[c*m.ncol+r].Neg()) {
				return false
			}
		}
	}

	return true
}

// IsOrthogonal reports whether m · mᵀ is the identity within tolerance.
func (m *Matrix) IsOrthogonal() bool {
	if !m.IsSquare() {
		return false
	}
	prod, err := m.MatMul(m.Transpose())
	if err != nil {
		return false
	}

	return prod.IsUnit()
}
