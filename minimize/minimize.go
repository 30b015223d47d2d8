package minimize

import (
	"errors"
	"math"
)

// Sentinel errors returned by Scalar.
var (
	// ErrNilFunc indicates a nil objective function.
	ErrNilFunc = errors.New("minimize: objective function is nil")

	// ErrBadInterval indicates lo >= hi or a non-finite bound.
	ErrBadInterval = errors.New("minimize: invalid search interval")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("minimize: tolerance must be positive")

	// ErrNoConvergence indicates the iteration budget was exhausted before
	// the bracketing interval shrank below tolerance.
	ErrNoConvergence = errors.New("minimize: no convergence within iteration budget")
)

// Defaults for Options.
const (
	// DefaultTol is the default absolute x-tolerance.
	DefaultTol = 1e-7

	// DefaultMaxIter caps the number of function evaluations.
	DefaultMaxIter = 500
)

// goldenMean is (3 − √5)/2, the golden-section step fraction.
var goldenMean = 0.5 * (3.0 - math.Sqrt(5.0))

// sqrtEps is √(machine epsilon), the relative floor on the x-tolerance.
var sqrtEps = math.Sqrt(2.220446049250313e-16)

// Options configures the bounded scalar search.
//
// Tol     – absolute tolerance on the argmin location. Must be > 0.
// MaxIter – cap on function evaluations; exceeding it is ErrNoConvergence.
type Options struct {
	Tol     float64
	MaxIter int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}

// Result reports the outcome of a bounded scalar minimization.
type Result struct {
	// X is the argmin found inside (lo, hi).
	X float64
	// F is the objective value at X.
	F float64
	// FuncEvals counts objective evaluations performed.
	FuncEvals int
}

// Scalar minimizes f over the closed interval [lo, hi] with Brent's
// bounded method. opts == nil means DefaultOptions().
//
// The returned Result holds the argmin and its objective value. Failure
// to converge within the iteration budget is fatal: ErrNoConvergence is
// returned together with the best point seen so far.
func Scalar(f func(float64) float64, lo, hi float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return Result{}, ErrBadInterval
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tol <= 0 || math.IsNaN(o.Tol) {
		return Result{}, ErrBadTolerance
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}

	a, b := lo, hi

	// First trial point: golden section into the interval.
	xf := a + goldenMean*(b-a)
	nfc, fulc := xf, xf // second- and third-best abscissae
	rat, e := 0.0, 0.0  // current and previous step sizes
	x := xf
	fx := f(x)
	evals := 1
	fnfc, ffulc := fx, fx

	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + o.Tol/3.0
	tol2 := 2.0 * tol1

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		golden := true

		// Attempt a parabolic fit through the three best points.
		if math.Abs(e) > tol1 {
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2.0 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			// Accept the parabola only if it lands inside the interval and
			// moves less than half the step before last.
			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x = xf + rat
				if x-a < tol2 || b-x < tol2 {
					rat = tol1 * sign(xm-xf)
				}
			} else {
				golden = true
			}
		}

		// Golden-section step into the larger sub-interval.
		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		// Never step by less than tol1.
		x = xf + sign(rat)*math.Max(math.Abs(rat), tol1)
		fu := f(x)
		evals++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			switch {
			case fu <= fnfc || nfc == xf:
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			case fu <= ffulc || fulc == xf || fulc == nfc:
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + o.Tol/3.0
		tol2 = 2.0 * tol1

		if evals >= o.MaxIter {
			return Result{X: xf, F: fx, FuncEvals: evals}, ErrNoConvergence
		}
	}

	return Result{X: xf, F: fx, FuncEvals: evals}, nil
}

// sign returns +1 for v >= 0, −1 otherwise.
func sign(v float64) float64 {
	if v < 0 {
		return -1.0
	}

	return 1.0
}
