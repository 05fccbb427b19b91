package matrix_test

import (
	"fmt"

	"github.com/AnonymouX47/matrix"
)

// ExampleMatrix demonstrates one-indexed access and rendering.
func ExampleMatrix() {
	m, _ := matrix.FromRows([][]float64{
		{1, 25},
		{3, 4},
	})

	e, _ := m.At(1, 2)
	fmt.Println("m(1,2) =", e)
	fmt.Println(m)

	// Output:
	// m(1,2) = 25
	// +---+----+
	// | 1 | 25 |
	// +---+----+
	// | 3 | 4  |
	// +---+----+
}

// ExampleSolveLinearSystem solves a small system of equations.
func ExampleSolveLinearSystem() {
	coeff, _ := matrix.FromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	consts, _ := matrix.FromRows([][]float64{{5}, {10}})

	x, _ := matrix.SolveLinearSystem(coeff, consts)
	fmt.Println("x =", x[0], "y =", x[1])

	// Output:
	// x = 1 y = 3
}

// ExampleMatrix_Determinant shows the classic 2x2 determinant.
func ExampleMatrix_Determinant() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})

	det, _ := m.Determinant()
	fmt.Println("det =", det)

	// Output:
	// det = -2
}

// ExampleRows_Slice walks every second row of a matrix.
func ExampleRows_Slice() {
	m, _ := matrix.FromRows([][]float64{{1}, {2}, {3}, {4}, {5}})

	odd, _ := m.Rows().Slice(matrix.NewSpan(1, 5).WithStep(2))
	for i := 1; i <= odd.Len(); i++ {
		row, _ := odd.At(i)
		e, _ := row.At(1)
		fmt.Println("row", row.Index(), "=", e)
	}

	// Output:
	// row 1 = 1
	// row 3 = 3
	// row 5 = 5
}
