package mlerror_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spaterr/mlerror"
	"github.com/katalvlaran/spaterr/spatweights"
)

// ExampleEstimate fits a small spatial error model on a row-standardized
// path structure and reports the shape of the fitted result.
func ExampleEstimate() {
	y := []float64{3.2, 4.1, 6.3, 7.8, 9.1}
	x := mat.NewDense(5, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
		1, 5,
	})
	w, _ := spatweights.FromNeighbors(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	w.RowStandardize()

	res, err := mlerror.Estimate(y, x, w, nil)
	if err != nil {
		fmt.Println("estimate:", err)

		return
	}

	fmt.Println("observations:", res.N)
	fmt.Println("regressors:", res.K)
	fmt.Println("coefficients:", len(res.Betas))
	fmt.Println("lambda in (-1,1):", res.Lambda > -1 && res.Lambda < 1)
	// Output:
	// observations: 5
	// regressors: 2
	// coefficients: 3
	// lambda in (-1,1): true
}

// ExampleParseMethod maps user-facing selectors onto Jacobian methods.
func ExampleParseMethod() {
	m, err := mlerror.ParseMethod("LU")
	fmt.Println(m, err)

	_, err = mlerror.ParseMethod("cholesky")
	fmt.Println(err)
	// Output:
	// lu <nil>
	// mlerror: unknown jacobian method
}
