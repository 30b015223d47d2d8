package mlerror

import "strings"

// Method selects the log-Jacobian strategy used inside the concentrated
// log-likelihood.
type Method int

const (
	// MethodFull evaluates log|det(I − λW)| on the dense matrix each call.
	// Exact and simple; O(n³) per trial lambda.
	MethodFull Method = iota

	// MethodLU factorizes I − λW sparsely each call and sums log|U[i,i]|.
	// Preferred for large, sparse weighting structures.
	MethodLU

	// MethodOrd precomputes the eigenvalues of W once and evaluates
	// Σ log(1 − λ·eᵢ) per call. Cheapest per trial, pays one up-front
	// decomposition.
	MethodOrd
)

// String returns the selector spelling accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodFull:
		return "full"
	case MethodLU:
		return "lu"
	case MethodOrd:
		return "ord"
	default:
		return "unknown"
	}
}

// ParseMethod maps a case-insensitive selector ("full", "lu", "ord") to
// its Method. Unknown selectors return ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return MethodFull, nil
	case "lu":
		return MethodLU, nil
	case "ord":
		return MethodOrd, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// DefaultEpsilon is the default tolerance on the lambda search.
const DefaultEpsilon = 1e-7

// Options configures Estimate.
//
// Method selects the log-Jacobian strategy; all three locate the same
// optimum and differ only in cost profile. Epsilon is the absolute
// tolerance on the lambda search and must be > 0.
type Options struct {
	Method  Method
	Epsilon float64
}

// DefaultOptions returns the documented defaults: MethodFull with
// DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Method: MethodFull, Epsilon: DefaultEpsilon}
}
