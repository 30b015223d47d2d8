package minimize_test

import (
	"fmt"

	"github.com/katalvlaran/spaterr/minimize"
)

// ExampleScalar finds the minimum of a shifted parabola on [0, 5].
func ExampleScalar() {
	f := func(x float64) float64 { return (x - 2) * (x - 2) }

	res, err := minimize.Scalar(f, 0, 5, nil)
	if err != nil {
		fmt.Println("minimize:", err)

		return
	}

	fmt.Printf("x = %.4f\n", res.X)
	fmt.Printf("f = %.4f\n", res.F)
	// Output:
	// x = 2.0000
	// f = 0.0000
}
