package mlerror

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spaterr/spatweights"
)

// covariance assembles the asymptotic covariance blocks at the optimum.
//
// With a = I − λW and wai = W·a⁻¹, the information matrix of
// (lambda, sig2) is
//
//	[ tr(wai·wai) + tr(waiᵗ·wai)   tr(wai)/sig2 ]
//	[ tr(wai)/sig2                 n/(2·sig2²)  ]
//
// whose inverse is VM1. The full VM holds sig2·(xsᵗxs)⁻¹ for the betas
// and VM1[0,0] for lambda, with zero cross-terms.
func covariance(w *spatweights.W, lam, sig2 float64, n, k int, xsxsi *mat.Dense) (vm, vm1 *mat.Dense, err error) {
	wd := w.Dense()

	a := mat.NewDense(n, n, nil)
	a.Scale(-lam, wd)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1.0)
	}
	ai := mat.NewDense(n, n, nil)
	if err = invert(ai, a); err != nil {
		return nil, nil, err
	}
	wai := mat.NewDense(n, n, nil)
	wai.Mul(wd, ai)

	// tr1 = tr(wai), tr2 = tr(wai·wai), tr3 = tr(waiᵗ·wai) — the two
	// product traces reduce to elementwise sums, no matrix products needed.
	tr1, tr2, tr3 := 0.0, 0.0, 0.0
	for i := 0; i < n; i++ {
		tr1 += wai.At(i, i)
		for j := 0; j < n; j++ {
			v := wai.At(i, j)
			tr2 += v * wai.At(j, i)
			tr3 += v * v
		}
	}

	// Closed-form inverse of the symmetric 2×2 information matrix.
	i11 := tr2 + tr3
	i12 := tr1 / sig2
	i22 := float64(n) / (2.0 * sig2 * sig2)
	det := i11*i22 - i12*i12
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, nil, ErrSingularMatrix
	}
	vm1 = mat.NewDense(2, 2, []float64{
		i22 / det, -i12 / det,
		-i12 / det, i11 / det,
	})

	vm = mat.NewDense(k+1, k+1, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			vm.Set(i, j, sig2*xsxsi.At(i, j))
		}
	}
	vm.Set(k, k, vm1.At(0, 0))

	return vm, vm1, nil
}
