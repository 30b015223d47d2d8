// Package spaterr is the root of the spaterr module — maximum-likelihood
// estimation of the spatial error regression model in pure Go.
//
// 🚀 What is spaterr?
//
//	The spatial error model explains an outcome y through a linear design x
//	while letting the disturbance carry spatial autocorrelation:
//
//	    y = x·β + u,   u = λ·W·u + ε,   ε ~ N(0, σ²·I)
//
//	where W is an n×n spatial weighting structure and λ ∈ (−1, 1) is the
//	spatial autoregressive coefficient. Estimation concentrates β and σ²
//	out of the likelihood and runs a bounded scalar search over λ.
//
// ✨ What you get:
//   - Three interchangeable log-Jacobian strategies: dense determinant
//     ("full"), sparse LU factorization ("lu"), precomputed eigenvalues
//     ("ord") — same likelihood, different cost/accuracy trade-offs
//   - GLS inner solve at each trial λ, with pre-lagged variables cached
//   - Asymptotic covariance of (β, λ) from matrix traces
//   - Deterministic, single-threaded, no hidden global state
//
// Everything is organized under four subpackages:
//
//	spatweights/ — the weighting structure W: construction, row-standardization,
//	               dense/sparse materializations, symmetry checks, spatial lag
//	sparse/      — CSR matrices + sparse LU with partial pivoting
//	minimize/    — bounded univariate scalar minimization (Brent)
//	mlerror/     — the estimator: concentrated likelihood, strategy dispatch,
//	               parameter/residual recovery, covariance assembly
//
// Quick example:
//
//	w, _ := spatweights.FromNeighbors(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
//	w.RowStandardize()
//	res, err := mlerror.Estimate(y, x, w, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Lambda, res.Betas, res.LogLik)
//
// Dense linear algebra is delegated to gonum.org/v1/gonum/mat; the sparse
// and scalar-optimization kernels are self-contained.
//
//	go get github.com/katalvlaran/spaterr
package spaterr
