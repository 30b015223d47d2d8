package minimize_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spaterr/minimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScalar_Quadratic verifies the argmin of a shifted parabola.
func TestScalar_Quadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 2) * (x - 2) }

	res, err := minimize.Scalar(f, 0, 5, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.X, 1e-6, "argmin of (x-2)^2")
	assert.InDelta(t, 0.0, res.F, 1e-10)
	assert.Greater(t, res.FuncEvals, 1)
}

// TestScalar_Cosine verifies a transcendental minimum: cos on [0, 2π] has
// its minimum at π.
func TestScalar_Cosine(t *testing.T) {
	res, err := minimize.Scalar(math.Cos, 0, 2*math.Pi, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, res.X, 1e-6)
	assert.InDelta(t, -1.0, res.F, 1e-12)
}

// TestScalar_MinimumAtBoundary verifies behavior for a monotone function:
// the search must settle just inside the favorable endpoint without ever
// evaluating the endpoint itself.
func TestScalar_MinimumAtBoundary(t *testing.T) {
	evaluatedEndpoint := false
	f := func(x float64) float64 {
		if x == 0 || x == 1 {
			evaluatedEndpoint = true
		}

		return x
	}

	res, err := minimize.Scalar(f, 0, 1, nil)
	require.NoError(t, err)
	assert.False(t, evaluatedEndpoint, "endpoints must never be evaluated")
	assert.InDelta(t, 0.0, res.X, 1e-4, "monotone increasing → argmin near lo")
}

// TestScalar_ToleranceBounds checks that both a loose and a tight
// tolerance localize the argmin of a flat quartic to within their scale.
func TestScalar_ToleranceBounds(t *testing.T) {
	f := func(x float64) float64 { return math.Pow(x-0.25, 4) }

	loose, err := minimize.Scalar(f, -1, 1, &minimize.Options{Tol: 1e-2, MaxIter: 500})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, loose.X, 5e-2)

	tight, err := minimize.Scalar(f, -1, 1, &minimize.Options{Tol: 1e-8, MaxIter: 500})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, tight.X, 1e-3)
}

// TestScalar_NoConvergence exhausts a tiny iteration budget.
func TestScalar_NoConvergence(t *testing.T) {
	res, err := minimize.Scalar(math.Cos, 0, 2*math.Pi, &minimize.Options{Tol: 1e-12, MaxIter: 3})
	assert.ErrorIs(t, err, minimize.ErrNoConvergence)
	assert.Equal(t, 3, res.FuncEvals, "budget must be respected exactly")
	assert.False(t, math.IsNaN(res.X), "best-so-far point is still reported")
}

// TestScalar_InputValidation covers the argument guards.
func TestScalar_InputValidation(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	_, err := minimize.Scalar(nil, 0, 1, nil)
	assert.ErrorIs(t, err, minimize.ErrNilFunc)

	_, err = minimize.Scalar(f, 1, 0, nil)
	assert.ErrorIs(t, err, minimize.ErrBadInterval)

	_, err = minimize.Scalar(f, 0, math.Inf(1), nil)
	assert.ErrorIs(t, err, minimize.ErrBadInterval)

	_, err = minimize.Scalar(f, 0, 1, &minimize.Options{Tol: 0})
	assert.ErrorIs(t, err, minimize.ErrBadTolerance)
}

// TestScalar_PlateauWithInf verifies robustness to +Inf plateaus, which the
// likelihood layer uses to steer the search away from failed evaluations.
func TestScalar_PlateauWithInf(t *testing.T) {
	f := func(x float64) float64 {
		if x > 0.8 {
			return math.Inf(1)
		}

		return (x - 0.5) * (x - 0.5)
	}

	res, err := minimize.Scalar(f, -1, 1, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.X, 1e-5)
}
