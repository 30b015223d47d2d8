// Package mlerror estimates the spatial error regression model by
// maximum likelihood:
//
//	y = x·b + u,  u = λ·W·u + ε,  ε ~ N(0, sig2·I)
//
// The estimator concentrates the likelihood into a scalar function of
// λ — an inner generalized least-squares solve on the spatially
// filtered variables plus the log-Jacobian log|det(I − λW)| — and
// minimizes it over (−1, 1) with a bounded scalar search. At the
// optimum it recovers coefficients, residuals, the variance estimate,
// the maximized log-likelihood and the asymptotic covariance blocks.
//
// Three interchangeable log-Jacobian strategies are provided, selected
// through Options.Method:
//
//   - MethodFull — dense determinant per trial λ; exact, O(n³) a call.
//   - MethodLU   — sparse LU of I − λW per trial λ; the choice for
//     large sparse weighting structures.
//   - MethodOrd  — eigenvalues of W computed once, Σ log(1 − λ·eᵢ)
//     per call; cheapest search, one up-front decomposition.
//
// All three locate the same optimum; cross-method disagreement beyond
// numerical noise indicates a defective weighting structure.
//
// ⚙️ Usage:
//
//	w, _ := spatweights.FromNeighbors(n, pairs)
//	w.RowStandardize()
//	res, err := mlerror.Estimate(y, x, w, nil) // nil → DefaultOptions()
//	if err != nil {
//	    // mlerror.ErrSingularMatrix, mlerror.ErrDimensionMismatch, ...
//	}
//	fmt.Println(res.Lambda, res.Betas, res.LogLik)
//
// Estimation is synchronous and single-threaded; the weighting
// structure and the precomputed lags are shared read-only across
// optimizer iterations.
package mlerror
