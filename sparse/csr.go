package sparse

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Triplet is a single (row, col, value) entry in coordinate form.
// Duplicate coordinates are summed during CSR assembly.
type Triplet struct {
	Row, Col int
	Val      float64
}

// CSR is an immutable compressed sparse row matrix.
//
// Storage is the classic three-array layout: indptr has length rows+1 and
// brackets each row's slice of cols/vals; cols within a row are strictly
// ascending. Explicit zeros are never stored.
type CSR struct {
	rows, cols int
	indptr     []int
	colIdx     []int
	vals       []float64
}

// FromTriplets assembles a rows×cols CSR matrix from coordinate entries.
// Duplicates are summed; entries that cancel to exactly zero are dropped.
//
// Errors: ErrBadShape (non-positive dims), ErrOutOfRange (entry outside
// the shape), ErrNaNInf (non-finite value).
func FromTriplets(rows, cols int, ts []Triplet) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	for _, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, ErrOutOfRange
		}
		if math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			return nil, ErrNaNInf
		}
	}

	// Stable row-major / column-ascending order before merging duplicates.
	sorted := make([]Triplet, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}

		return sorted[i].Col < sorted[j].Col
	})

	m := &CSR{
		rows:   rows,
		cols:   cols,
		indptr: make([]int, rows+1),
	}
	for i := 0; i < len(sorted); {
		r, c := sorted[i].Row, sorted[i].Col
		sum := 0.0
		for ; i < len(sorted) && sorted[i].Row == r && sorted[i].Col == c; i++ {
			sum += sorted[i].Val
		}
		if sum == 0 {
			continue
		}
		m.colIdx = append(m.colIdx, c)
		m.vals = append(m.vals, sum)
		m.indptr[r+1]++
	}
	for r := 0; r < rows; r++ {
		m.indptr[r+1] += m.indptr[r]
	}

	return m, nil
}

// FromDense converts a dense row-major [][]float64 into CSR form,
// skipping zero entries.
func FromDense(data [][]float64) (*CSR, error) {
	rows := len(data)
	if rows == 0 {
		return nil, ErrBadShape
	}
	cols := len(data[0])
	var ts []Triplet
	for i, row := range data {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		for j, v := range row {
			if v != 0 {
				ts = append(ts, Triplet{Row: i, Col: j, Val: v})
			}
		}
	}

	return FromTriplets(rows, cols, ts)
}

// Dims returns the matrix shape (rows, cols).
func (m *CSR) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries.
func (m *CSR) NNZ() int { return len(m.vals) }

// At returns the entry at (i, j), zero when no entry is stored.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.vals[k], nil
	}

	return 0, nil
}

// MulVec computes y = m·x in O(nnz).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		acc := 0.0
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.vals[k] * x[m.colIdx[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// ToDense materializes the matrix as a gonum *mat.Dense.
func (m *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.Set(i, m.colIdx[k], m.vals[k])
		}
	}

	return d
}

// IdentityMinus returns A = I − lam·W for a square W, in CSR form.
// The diagonal entry of each row is 1 − lam·w[i][i]; a diagonal entry is
// created even where W stores none, so A always has a full diagonal.
func IdentityMinus(w *CSR, lam float64) (*CSR, error) {
	if w.rows != w.cols {
		return nil, ErrNonSquare
	}
	a := &CSR{
		rows:   w.rows,
		cols:   w.cols,
		indptr: make([]int, w.rows+1),
	}
	for i := 0; i < w.rows; i++ {
		lo, hi := w.indptr[i], w.indptr[i+1]
		diagDone := false
		for k := lo; k < hi; k++ {
			c := w.colIdx[k]
			switch {
			case c < i:
				a.colIdx = append(a.colIdx, c)
				a.vals = append(a.vals, -lam*w.vals[k])
			case c == i:
				a.colIdx = append(a.colIdx, c)
				a.vals = append(a.vals, 1-lam*w.vals[k])
				diagDone = true
			default: // c > i: emit the implicit diagonal first
				if !diagDone {
					a.colIdx = append(a.colIdx, i)
					a.vals = append(a.vals, 1)
					diagDone = true
				}
				a.colIdx = append(a.colIdx, c)
				a.vals = append(a.vals, -lam*w.vals[k])
			}
		}
		if !diagDone {
			a.colIdx = append(a.colIdx, i)
			a.vals = append(a.vals, 1)
		}
		a.indptr[i+1] = len(a.colIdx)
	}

	return a, nil
}
