package spatweights

import "errors"

// Sentinel errors returned by the spatweights package.
var (
	// ErrBadShape indicates a non-positive dimension or ragged dense input.
	ErrBadShape = errors.New("spatweights: invalid shape")

	// ErrOutOfRange indicates an observation index outside [0, n).
	ErrOutOfRange = errors.New("spatweights: index out of range")

	// ErrDimensionMismatch indicates a lag operand whose length or row count
	// differs from n.
	ErrDimensionMismatch = errors.New("spatweights: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf weight at ingestion.
	ErrNaNInf = errors.New("spatweights: NaN or Inf weight")

	// ErrAsymmetricPattern is returned by Symmetrize when the nonzero pattern
	// itself is asymmetric (w[i][j] ≠ 0 but w[j][i] = 0): no similarity
	// transform can make such a structure symmetric.
	ErrAsymmetricPattern = errors.New("spatweights: nonzero pattern is asymmetric")

	// ErrNegativeProduct is returned by Symmetrize when w[i][j]·w[j][i] < 0;
	// the square-root transform is undefined for opposite-signed pairs.
	ErrNegativeProduct = errors.New("spatweights: opposite-signed weight pair")
)
