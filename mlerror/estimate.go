package mlerror

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/spaterr/minimize"
	"github.com/katalvlaran/spaterr/spatweights"
)

// likelihood is the shared state of the concentrated log-likelihood: the
// outcome and design together with their spatial lags, precomputed once,
// plus the Jacobian strategy. The optimizer carries no error channel, so
// the first failure is recorded here and the objective returns +Inf to
// steer the search away; the error is surfaced after minimization.
type likelihood struct {
	n, k    int
	y, ylag *mat.VecDense
	x, xlag *mat.Dense
	jac     jacobianStrategy
	err     error
}

func (s *likelihood) fail(err error) float64 {
	if s.err == nil {
		s.err = err
	}

	return math.Inf(1)
}

// filter returns the spatially filtered variables ys = y − λ·Wy and
// xs = x − λ·Wx.
func (s *likelihood) filter(lam float64) (*mat.VecDense, *mat.Dense) {
	ys := mat.NewVecDense(s.n, nil)
	ys.AddScaledVec(s.y, -lam, s.ylag)
	xs := mat.NewDense(s.n, s.k, nil)
	xs.Scale(-lam, s.xlag)
	xs.Add(xs, s.x)

	return ys, xs
}

// negConcentrated is the objective handed to the scalar optimizer:
// (n/2)·log(sig2(λ)) − log|det(I − λW)|, with sig2 from the inner GLS
// solve on the filtered variables.
func (s *likelihood) negConcentrated(lam float64) float64 {
	if s.err != nil {
		return math.Inf(1)
	}

	ys, xs := s.filter(lam)
	_, _, ee, err := gls(ys, xs)
	if err != nil {
		return s.fail(fmt.Errorf("at lambda=%g: %w", lam, err))
	}
	sig2 := ee / float64(s.n)
	if sig2 <= 0 || math.IsNaN(sig2) {
		return math.Inf(1)
	}

	jacob, err := s.jac.logDet(lam)
	if err != nil {
		return s.fail(err)
	}

	return float64(s.n)/2.0*math.Log(sig2) - jacob
}

// gls solves the filtered least-squares system, returning the
// coefficients b, (xsᵗxs)⁻¹ and the residual sum of squares
// ysᵗys − (xsᵗys)ᵗ·b.
func gls(ys *mat.VecDense, xs *mat.Dense) (b *mat.VecDense, xsxsi *mat.Dense, ee float64, err error) {
	_, k := xs.Dims()

	var xsxs mat.Dense
	xsxs.Mul(xs.T(), xs)
	xsxsi = mat.NewDense(k, k, nil)
	if err = invert(xsxsi, &xsxs); err != nil {
		return nil, nil, 0, err
	}

	xsys := mat.NewVecDense(k, nil)
	xsys.MulVec(xs.T(), ys)
	b = mat.NewVecDense(k, nil)
	b.MulVec(xsxsi, xsys)
	ee = mat.Dot(ys, ys) - mat.Dot(xsys, b)

	return b, xsxsi, ee, nil
}

// invert computes dst = src⁻¹, mapping singularity to ErrSingularMatrix.
// An ill-conditioned but finite solve is accepted and used as-is.
func invert(dst *mat.Dense, src mat.Matrix) error {
	err := dst.Inverse(src)
	if err == nil {
		return nil
	}
	var cond mat.Condition
	if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrSingularMatrix, err)
}

// Estimate fits the spatial error model
//
//	y = x·b + u,  u = λ·W·u + ε,  ε ~ N(0, sig2·I)
//
// by maximum likelihood: the concentrated log-likelihood is maximized
// over λ ∈ (−1, 1) with a bounded scalar search, then coefficients,
// residuals, the variance estimate and the asymptotic covariance blocks
// are derived at the optimum.
//
// y is the outcome (length n), x the n×k design including the intercept
// column, w the n×n weighting structure (conventionally
// row-standardized). opts == nil means DefaultOptions().
//
// Errors: ErrDimensionMismatch on shape disagreement, ErrBadEpsilon and
// ErrUnknownMethod on bad options, ErrSingularMatrix on a singular
// design or spatial filter, and a wrapped minimize.ErrNoConvergence when
// the lambda search exhausts its iteration budget.
func Estimate(y []float64, x *mat.Dense, w *spatweights.W, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Epsilon <= 0 || math.IsNaN(o.Epsilon) {
		return nil, ErrBadEpsilon
	}
	if x == nil || w == nil {
		return nil, ErrDimensionMismatch
	}
	n, k := x.Dims()
	if n != len(y) || n != w.N() || k < 1 || n <= k {
		return nil, ErrDimensionMismatch
	}

	jac, err := newJacobian(o.Method, w)
	if err != nil {
		return nil, err
	}

	ylag, err := w.LagVec(y)
	if err != nil {
		return nil, err
	}
	xlag, err := w.Lag(x)
	if err != nil {
		return nil, err
	}

	s := &likelihood{
		n:    n,
		k:    k,
		y:    mat.NewVecDense(n, append([]float64(nil), y...)),
		ylag: mat.NewVecDense(n, ylag),
		x:    x,
		xlag: xlag,
		jac:  jac,
	}

	opt, optErr := minimize.Scalar(s.negConcentrated, -1.0, 1.0, &minimize.Options{
		Tol:     o.Epsilon,
		MaxIter: minimize.DefaultMaxIter,
	})
	if s.err != nil {
		return nil, s.err
	}
	if optErr != nil {
		return nil, fmt.Errorf("mlerror: lambda search failed: %w", optErr)
	}
	lam := opt.X

	// Final GLS pass at the optimum.
	ys, xs := s.filter(lam)
	b, xsxsi, _, err := gls(ys, xs)
	if err != nil {
		return nil, err
	}

	betas := make([]float64, k+1)
	for i := 0; i < k; i++ {
		betas[i] = b.AtVec(i)
	}
	betas[k] = lam

	// Residuals and predictions use the unfiltered design.
	xb := mat.NewVecDense(n, nil)
	xb.MulVec(x, b)
	u := make([]float64, n)
	predy := make([]float64, n)
	utu := 0.0
	for i := 0; i < n; i++ {
		u[i] = y[i] - xb.AtVec(i)
		predy[i] = y[i] - u[i]
		utu += u[i] * u[i]
	}

	ulag, err := w.LagVec(u)
	if err != nil {
		return nil, err
	}
	e := make([]float64, n)
	ete := 0.0
	for i := 0; i < n; i++ {
		e[i] = u[i] - lam*ulag[i]
		ete += e[i] * e[i]
	}
	sig2 := ete / float64(n)

	// The optimizer minimized the negative concentrated likelihood; undo
	// the concentration to recover the full log-likelihood.
	logLik := -opt.F - float64(n)/2.0*math.Log(2.0*math.Pi) - float64(n)/2.0

	vm, vm1, err := covariance(w, lam, sig2, n, k, xsxsi)
	if err != nil {
		return nil, err
	}

	meanY, stdY := stat.MeanStdDev(y, nil)
	pr2 := stat.Correlation(y, predy, nil)
	pr2 *= pr2

	stdErr := make([]float64, k+1)
	zstat := make([]ZTest, k+1)
	norm := distuv.UnitNormal
	for i := 0; i <= k; i++ {
		stdErr[i] = math.Sqrt(vm.At(i, i))
		z := betas[i] / stdErr[i]
		zstat[i] = ZTest{Z: z, P: 2.0 * (1.0 - norm.CDF(math.Abs(z)))}
	}

	return &Result{
		Lambda:    lam,
		Betas:     betas,
		U:         u,
		EFiltered: e,
		PredY:     predy,
		Sig2:      sig2,
		LogLik:    logLik,
		VM:        vm,
		VM1:       vm1,
		N:         n,
		K:         k,
		MeanY:     meanY,
		StdY:      stdY,
		UTU:       utu,
		PR2:       pr2,
		StdErr:    stdErr,
		ZStat:     zstat,
		Warnings:  jac.warnings(),
	}, nil
}
