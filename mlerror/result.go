package mlerror

import "gonum.org/v1/gonum/mat"

// ZTest pairs a coefficient's z statistic with its two-sided p-value
// under the standard normal.
type ZTest struct {
	Z float64
	P float64
}

// Result carries the fitted spatial error model.
type Result struct {
	// Lambda is the spatial autoregressive coefficient of the error term.
	Lambda float64

	// Betas holds the k regression coefficients followed by Lambda (k+1).
	Betas []float64

	// U is the raw residual y − x·b (unfiltered design).
	U []float64

	// EFiltered is the spatially filtered residual u − λ·W·u.
	EFiltered []float64

	// PredY is the in-sample prediction y − u.
	PredY []float64

	// Sig2 is the ML variance estimate eᵗe/n over the filtered residuals.
	Sig2 float64

	// LogLik is the maximized log-likelihood.
	LogLik float64

	// VM is the (k+1)×(k+1) covariance of (betas, lambda). The top-left
	// block is sig2·(xsᵗxs)⁻¹ on the filtered design and the bottom-right
	// entry is Var(lambda) from the trace-based information matrix; the
	// beta/lambda cross-covariances are fixed at zero, a deliberate
	// approximation.
	VM *mat.Dense

	// VM1 is the 2×2 covariance of (lambda, sig2).
	VM1 *mat.Dense

	// N and K are the observation and regressor counts.
	N, K int

	// MeanY and StdY summarize the outcome (sample standard deviation).
	MeanY, StdY float64

	// UTU is the sum of squared raw residuals uᵗu.
	UTU float64

	// PR2 is the pseudo-R²: squared correlation between y and PredY.
	PR2 float64

	// StdErr is the square root of the VM diagonal (k+1).
	StdErr []float64

	// ZStat holds per-coefficient z statistics and p-values (k+1), the
	// last entry testing Lambda.
	ZStat []ZTest

	// Warnings carries non-fatal diagnostics, e.g. a discarded imaginary
	// Jacobian component on the ord path.
	Warnings []string
}
