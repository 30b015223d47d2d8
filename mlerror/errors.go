package mlerror

import "errors"

// Sentinel errors returned by Estimate and ParseMethod. Match with
// errors.Is; wrapped variants carry additional context.
var (
	// ErrUnknownMethod indicates an unsupported Jacobian method selector.
	ErrUnknownMethod = errors.New("mlerror: unknown jacobian method")

	// ErrSingularMatrix indicates a singular system during estimation:
	// either xsᵗ·xs at some trial lambda, or I − λW in the covariance step.
	ErrSingularMatrix = errors.New("mlerror: singular matrix")

	// ErrBadEpsilon indicates a non-positive convergence tolerance.
	ErrBadEpsilon = errors.New("mlerror: epsilon must be positive")

	// ErrDimensionMismatch indicates disagreeing y/x/W shapes, or a design
	// with no columns or with as many columns as observations.
	ErrDimensionMismatch = errors.New("mlerror: dimension mismatch")

	// ErrEigenFailed indicates that the eigenvalue decomposition behind the
	// ord method did not converge.
	ErrEigenFailed = errors.New("mlerror: eigenvalue decomposition failed")
)
