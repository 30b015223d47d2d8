package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/spaterr/sparse"
)

// ExampleLU factorizes a small matrix and reads off its determinant in
// log form.
func ExampleLU() {
	a, _ := sparse.FromTriplets(2, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 4},
		{Row: 0, Col: 1, Val: 3},
		{Row: 1, Col: 0, Val: 6},
		{Row: 1, Col: 1, Val: 3},
	})

	var lu sparse.LU
	if err := lu.Factorize(a); err != nil {
		fmt.Println("factorize:", err)

		return
	}

	logdet, sign := lu.LogDet()
	fmt.Printf("log|det| = %.4f\n", logdet)
	fmt.Printf("sign = %g\n", sign)
	// Output:
	// log|det| = 1.7918
	// sign = -1
}

// ExampleCSR_MulVec multiplies a sparse matrix by a vector.
func ExampleCSR_MulVec() {
	m, _ := sparse.FromTriplets(2, 3, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 2},
		{Row: 1, Col: 1, Val: 3},
	})

	y, _ := m.MulVec([]float64{1, 1, 1})
	fmt.Println(y)
	// Output:
	// [3 3]
}
