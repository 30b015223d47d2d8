// Package minimize provides bounded minimization of a univariate scalar
// function over a closed interval [lo, hi].
//
// The method is Brent's bounded search: golden-section steps guarantee
// progress, and successive parabolic interpolation accelerates convergence
// near the minimum whenever the fit is trustworthy. No derivatives are
// required, and the endpoints themselves are never evaluated — trial
// points always stay strictly inside the interval.
//
// This is deliberately NOT a general optimization library: one bounded
// scalar parameter, one tolerance, one iteration cap. Callers needing
// multivariate or gradient-based search should look elsewhere
// (e.g. gonum.org/v1/gonum/optimize, which conversely offers no bounded
// scalar method).
//
// ⚙️ Usage:
//
//	res, err := minimize.Scalar(f, -1, 1, nil) // nil → DefaultOptions()
//	if err != nil {
//	    // minimize.ErrNoConvergence: iteration budget exhausted — fatal
//	}
//	fmt.Println(res.X, res.F)
//
// Complexity: O(iterations) function evaluations; each iteration performs
// O(1) arithmetic. Convergence is superlinear on smooth unimodal
// functions, linear (golden ratio) in the worst case.
package minimize
