package sparse

import "errors"

// Sentinel errors returned by the sparse package. All are matched with
// errors.Is; wrapping adds context only, never a new identity.
var (
	// ErrBadShape indicates a requested shape with non-positive rows or columns.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. MulVec with len(x) != Cols.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrSingular is returned by Factorize when no usable pivot exists in a
	// column (the matrix is numerically singular).
	ErrSingular = errors.New("sparse: singular matrix")

	// ErrNotFactorized is returned by LU queries before a successful Factorize.
	ErrNotFactorized = errors.New("sparse: LU not factorized")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
