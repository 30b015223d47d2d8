package sparse

import (
	"math"
	"sort"
)

// LU holds a sparse LU factorization with partial pivoting: P·A = L·U,
// where L is unit lower triangular, U is upper triangular and P is a row
// permutation. The zero value is ready for Factorize.
//
// The factorization is row-based Gaussian elimination: at step k the row
// with the largest |a[r][k]| among the remaining rows is promoted to the
// pivot position (first maximum wins, keeping the process deterministic),
// then eliminated from the rows below. Fill-in is carried in per-row maps
// during elimination and frozen into sorted slices afterwards.
type LU struct {
	n     int
	perm  []int // perm[k] = original row index now in position k
	swaps int   // number of row exchanges (determinant sign parity)

	lCols [][]int // strictly lower triangular factors, per row, cols ascending
	lVals [][]float64
	uCols [][]int // upper triangular rows including the diagonal, cols ascending
	uVals [][]float64
	uDiag []float64

	ok bool
}

// Factorize computes the pivoted factorization of a square CSR matrix.
// Returns ErrNonSquare for rectangular input and ErrSingular when a column
// has no usable pivot (all remaining entries zero).
func (f *LU) Factorize(a *CSR) error {
	n, c := a.Dims()
	if n != c {
		return ErrNonSquare
	}

	// Scatter CSR rows into working maps; fill-in lands here too.
	work := make([]map[int]float64, n)
	for i := 0; i < n; i++ {
		row := make(map[int]float64, a.indptr[i+1]-a.indptr[i])
		for k := a.indptr[i]; k < a.indptr[i+1]; k++ {
			row[a.colIdx[k]] = a.vals[k]
		}
		work[i] = row
	}
	low := make([]map[int]float64, n)
	for i := range low {
		low[i] = make(map[int]float64)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	f.n = n
	f.swaps = 0
	f.uDiag = make([]float64, n)

	for k := 0; k < n; k++ {
		// Partial pivoting: largest |work[r][k]| for r ≥ k, first maximum wins.
		pivotRow, best := -1, 0.0
		for r := k; r < n; r++ {
			if v, has := work[r][k]; has && math.Abs(v) > best {
				pivotRow, best = r, math.Abs(v)
			}
		}
		if pivotRow < 0 {
			f.ok = false

			return ErrSingular
		}
		if pivotRow != k {
			work[k], work[pivotRow] = work[pivotRow], work[k]
			low[k], low[pivotRow] = low[pivotRow], low[k]
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
			f.swaps++
		}

		pivot := work[k][k]
		f.uDiag[k] = pivot

		for r := k + 1; r < n; r++ {
			v, has := work[r][k]
			if !has || v == 0 {
				delete(work[r], k)

				continue
			}
			factor := v / pivot
			low[r][k] = factor
			delete(work[r], k)
			for c, uv := range work[k] {
				if c <= k {
					continue
				}
				work[r][c] -= factor * uv
			}
		}
	}

	// Freeze the factors into sorted slices for deterministic traversal.
	f.perm = perm
	f.lCols = make([][]int, n)
	f.lVals = make([][]float64, n)
	f.uCols = make([][]int, n)
	f.uVals = make([][]float64, n)
	for i := 0; i < n; i++ {
		f.lCols[i], f.lVals[i] = frozenRow(low[i])
		f.uCols[i], f.uVals[i] = frozenRow(work[i])
	}
	f.ok = true

	return nil
}

// frozenRow converts a working map row into column-sorted parallel slices.
func frozenRow(row map[int]float64) ([]int, []float64) {
	cols := make([]int, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	vals := make([]float64, len(cols))
	for i, c := range cols {
		vals[i] = row[c]
	}

	return cols, vals
}

// SumLogAbsDiagU returns Σ log|U[i,i]| — the log-magnitude of det(A),
// since |det(A)| = Π |U[i,i]| under a unit-diagonal L and a permutation.
// Returns −Inf if any pivot is exactly zero.
func (f *LU) SumLogAbsDiagU() float64 {
	sum := 0.0
	for _, d := range f.uDiag {
		sum += math.Log(math.Abs(d))
	}

	return sum
}

// LogDet returns log|det(A)| together with the sign of det(A) (−1, 0 or +1),
// mirroring the gonum mat.LogDet contract.
func (f *LU) LogDet() (logdet, sign float64) {
	sign = 1.0
	if f.swaps%2 == 1 {
		sign = -1.0
	}
	for _, d := range f.uDiag {
		switch {
		case d < 0:
			sign = -sign
		case d == 0:
			sign = 0
		}
	}

	return f.SumLogAbsDiagU(), sign
}

// UDiag returns a copy of the diagonal of U in elimination order.
func (f *LU) UDiag() []float64 {
	out := make([]float64, len(f.uDiag))
	copy(out, f.uDiag)

	return out
}

// Solve solves A·x = b through the factorization (permute, forward
// substitution on L, back substitution on U).
//
// Errors: ErrNotFactorized before a successful Factorize,
// ErrDimensionMismatch when len(b) != n.
func (f *LU) Solve(b []float64) ([]float64, error) {
	if !f.ok {
		return nil, ErrNotFactorized
	}
	if len(b) != f.n {
		return nil, ErrDimensionMismatch
	}

	// y = L⁻¹·P·b
	y := make([]float64, f.n)
	for i := 0; i < f.n; i++ {
		acc := b[f.perm[i]]
		for k, c := range f.lCols[i] {
			acc -= f.lVals[i][k] * y[c]
		}
		y[i] = acc
	}

	// x = U⁻¹·y
	x := make([]float64, f.n)
	for i := f.n - 1; i >= 0; i-- {
		acc := y[i]
		for k, c := range f.uCols[i] {
			if c == i {
				continue
			}
			acc -= f.uVals[i][k] * x[c]
		}
		x[i] = acc / f.uDiag[i]
	}

	return x, nil
}
