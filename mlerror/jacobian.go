package mlerror

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spaterr/sparse"
	"github.com/katalvlaran/spaterr/spatweights"
)

// symEps is the value-symmetry tolerance used when choosing the ord
// eigenvalue path.
const symEps = 1e-12

// imagTol is the magnitude above which a discarded imaginary Jacobian
// component is reported as a warning.
const imagTol = 1e-8

// jacobianStrategy evaluates the log-Jacobian log|det(I − λW)| of the
// spatial filter at a trial lambda. Implementations precompute whatever
// they can at construction; logDet must be safe to call repeatedly with
// no side effects beyond warning bookkeeping.
type jacobianStrategy interface {
	logDet(lam float64) (float64, error)
	warnings() []string
}

// newJacobian builds the strategy for the requested method over W.
func newJacobian(method Method, w *spatweights.W) (jacobianStrategy, error) {
	switch method {
	case MethodFull:
		return &fullJacobian{w: w.Dense(), n: w.N()}, nil
	case MethodLU:
		return &luJacobian{w: w.Sparse()}, nil
	case MethodOrd:
		return newOrdJacobian(w)
	default:
		return nil, ErrUnknownMethod
	}
}

// fullJacobian evaluates the determinant on a dense copy of W: each call
// forms a = −λW with the diagonal forced to one and takes log|det(a)|.
type fullJacobian struct {
	w *mat.Dense
	n int
}

func (f *fullJacobian) logDet(lam float64) (float64, error) {
	a := mat.NewDense(f.n, f.n, nil)
	a.Scale(-lam, f.w)
	for i := 0; i < f.n; i++ {
		a.Set(i, i, 1.0)
	}
	ld, sign := mat.LogDet(a)
	if sign == 0 || math.IsInf(ld, -1) {
		return 0, fmt.Errorf("%w: det(I − λW) = 0 at lambda=%g", ErrSingularMatrix, lam)
	}

	return ld, nil
}

func (f *fullJacobian) warnings() []string { return nil }

// luJacobian keeps W in CSR form and, per call, assembles I − λW and
// factorizes it sparsely; the log-Jacobian is Σ log|U[i,i]|.
type luJacobian struct {
	w *sparse.CSR
}

func (f *luJacobian) logDet(lam float64) (float64, error) {
	a, err := sparse.IdentityMinus(f.w, lam)
	if err != nil {
		return 0, err
	}
	var lu sparse.LU
	if err = lu.Factorize(a); err != nil {
		return 0, fmt.Errorf("%w: lu factorization of I − λW at lambda=%g: %v", ErrSingularMatrix, lam, err)
	}
	ld := lu.SumLogAbsDiagU()
	if math.IsInf(ld, -1) {
		return 0, fmt.Errorf("%w: det(I − λW) = 0 at lambda=%g", ErrSingularMatrix, lam)
	}

	return ld, nil
}

func (f *luJacobian) warnings() []string { return nil }

// ordJacobian carries the spectrum of W, computed once, and evaluates
// Σ log(1 − λ·eᵢ) per call. Three construction paths, cheapest first:
// value-symmetric structures decompose directly with EigenSym;
// pattern-symmetric structures (typically row-standardized symmetric
// binary weights) are similarity-transformed with Symmetrize, which
// preserves the spectrum, then decomposed symmetrically; everything else
// takes the general complex decomposition.
//
// When the complex sum carries a non-negligible imaginary component the
// real part is used and the largest discarded magnitude is reported
// through warnings.
type ordJacobian struct {
	evals []complex128

	maxImag   float64
	imagAtLam float64
}

func newOrdJacobian(w *spatweights.W) (*ordJacobian, error) {
	if w.Symmetric(symEps) {
		vals, err := symEigenvalues(w)
		if err != nil {
			return nil, err
		}

		return &ordJacobian{evals: vals}, nil
	}

	if w.PatternSymmetric() {
		ws, err := w.Symmetrize()
		if err == nil {
			vals, symErr := symEigenvalues(ws)
			if symErr != nil {
				return nil, symErr
			}

			return &ordJacobian{evals: vals}, nil
		}
		// Negative products make the similarity transform unusable; fall
		// through to the general decomposition.
	}

	var eig mat.Eigen
	if !eig.Factorize(w.Dense(), mat.EigenNone) {
		return nil, ErrEigenFailed
	}

	return &ordJacobian{evals: eig.Values(nil)}, nil
}

// symEigenvalues decomposes a value-symmetric structure.
func symEigenvalues(w *spatweights.W) ([]complex128, error) {
	n := w.N()
	sym := mat.NewSymDense(n, nil)
	d := w.Dense()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, d.At(i, j))
		}
	}
	var es mat.EigenSym
	if !es.Factorize(sym, false) {
		return nil, ErrEigenFailed
	}
	rv := es.Values(nil)
	vals := make([]complex128, n)
	for i, v := range rv {
		vals[i] = complex(v, 0)
	}

	return vals, nil
}

func (f *ordJacobian) logDet(lam float64) (float64, error) {
	sum := complex(0, 0)
	for _, e := range f.evals {
		term := 1 - complex(lam, 0)*e
		if term == 0 {
			return 0, fmt.Errorf("%w: det(I − λW) = 0 at lambda=%g", ErrSingularMatrix, lam)
		}
		sum += cmplx.Log(term)
	}
	if im := math.Abs(imag(sum)); im > f.maxImag {
		f.maxImag = im
		f.imagAtLam = lam
	}

	return real(sum), nil
}

func (f *ordJacobian) warnings() []string {
	if f.maxImag <= imagTol {
		return nil
	}

	return []string{fmt.Sprintf(
		"ord jacobian: imaginary component %.3e discarded (largest at lambda=%g)",
		f.maxImag, f.imagAtLam)}
}
