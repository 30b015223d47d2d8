package spatweights

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spaterr/sparse"
)

// W is an n×n spatial weighting structure stored as sorted adjacency rows.
// Entry (i, j) is the weight observation j carries in the neighborhood of
// observation i; zero entries are not stored.
type W struct {
	n    int
	cols [][]int // per row, strictly ascending
	vals [][]float64
}

// New returns an empty n×n weighting structure.
func New(n int) (*W, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &W{
		n:    n,
		cols: make([][]int, n),
		vals: make([][]float64, n),
	}, nil
}

// FromDense builds a weighting structure from a dense n×n slice,
// skipping zero entries.
func FromDense(data [][]float64) (*W, error) {
	n := len(data)
	w, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != n {
			return nil, ErrBadShape
		}
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err = w.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

// FromNeighbors builds a binary weighting structure from undirected
// neighbor pairs: each {i, j} pair sets both w[i][j] = 1 and w[j][i] = 1.
func FromNeighbors(n int, pairs [][2]int) (*W, error) {
	w, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err = w.Set(p[0], p[1], 1); err != nil {
			return nil, err
		}
		if err = w.Set(p[1], p[0], 1); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// N returns the number of observations.
func (w *W) N() int { return w.n }

// NNZ returns the number of stored (non-zero) weights.
func (w *W) NNZ() int {
	total := 0
	for i := range w.vals {
		total += len(w.vals[i])
	}

	return total
}

// Set assigns weight v to the (i, j) entry; v = 0 removes the entry.
func (w *W) Set(i, j int, v float64) error {
	if i < 0 || i >= w.n || j < 0 || j >= w.n {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	k := sort.SearchInts(w.cols[i], j)
	found := k < len(w.cols[i]) && w.cols[i][k] == j
	switch {
	case found && v == 0:
		w.cols[i] = append(w.cols[i][:k], w.cols[i][k+1:]...)
		w.vals[i] = append(w.vals[i][:k], w.vals[i][k+1:]...)
	case found:
		w.vals[i][k] = v
	case v != 0:
		w.cols[i] = append(w.cols[i], 0)
		copy(w.cols[i][k+1:], w.cols[i][k:])
		w.cols[i][k] = j
		w.vals[i] = append(w.vals[i], 0)
		copy(w.vals[i][k+1:], w.vals[i][k:])
		w.vals[i][k] = v
	}

	return nil
}

// At returns the (i, j) weight, zero when no entry is stored.
func (w *W) At(i, j int) (float64, error) {
	if i < 0 || i >= w.n || j < 0 || j >= w.n {
		return 0, ErrOutOfRange
	}
	k := sort.SearchInts(w.cols[i], j)
	if k < len(w.cols[i]) && w.cols[i][k] == j {
		return w.vals[i][k], nil
	}

	return 0, nil
}

// RowStandardize rescales every row to sum one (the "r" transform of
// spatial econometrics). Rows with no neighbors are left untouched.
func (w *W) RowStandardize() {
	for i := range w.vals {
		sum := 0.0
		for _, v := range w.vals[i] {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for k := range w.vals[i] {
			w.vals[i][k] /= sum
		}
	}
}

// Dense materializes W as a freshly allocated gonum *mat.Dense.
// The result does not alias internal storage.
func (w *W) Dense() *mat.Dense {
	d := mat.NewDense(w.n, w.n, nil)
	for i := range w.cols {
		for k, j := range w.cols[i] {
			d.Set(i, j, w.vals[i][k])
		}
	}

	return d
}

// Sparse materializes W as a CSR matrix.
func (w *W) Sparse() *sparse.CSR {
	ts := make([]sparse.Triplet, 0, w.NNZ())
	for i := range w.cols {
		for k, j := range w.cols[i] {
			ts = append(ts, sparse.Triplet{Row: i, Col: j, Val: w.vals[i][k]})
		}
	}
	m, err := sparse.FromTriplets(w.n, w.n, ts)
	if err != nil {
		// The receiver's own invariants guarantee valid triplets.
		panic("spatweights: internal CSR assembly failed: " + err.Error())
	}

	return m
}

// PatternSymmetric reports whether the nonzero pattern is symmetric:
// w[i][j] ≠ 0 ⇔ w[j][i] ≠ 0, ignoring the stored values.
func (w *W) PatternSymmetric() bool {
	for i := range w.cols {
		for _, j := range w.cols[i] {
			if j <= i {
				continue
			}
			if v, _ := w.At(j, i); v == 0 {
				return false
			}
		}
	}
	// Mirror direction: every (j>i) entry was checked above; entries with
	// j < i need their transposed partner checked too.
	for i := range w.cols {
		for _, j := range w.cols[i] {
			if j >= i {
				continue
			}
			if v, _ := w.At(j, i); v == 0 {
				return false
			}
		}
	}

	return true
}

// Symmetric reports whether |w[i][j] − w[j][i]| ≤ eps for all pairs.
func (w *W) Symmetric(eps float64) bool {
	for i := range w.cols {
		for k, j := range w.cols[i] {
			v, _ := w.At(j, i)
			if math.Abs(w.vals[i][k]-v) > eps {
				return false
			}
		}
	}

	return true
}

// Symmetrize returns the similarity-transformed structure
// ws[i][j] = √(w[i][j]·w[j][i]), which is value-symmetric and shares W's
// eigenvalues whenever the asymmetry is intrinsic (pattern-symmetric, as
// after row-standardizing a symmetric binary structure). The receiver is
// not modified.
//
// Errors: ErrAsymmetricPattern when the pattern itself is asymmetric,
// ErrNegativeProduct when a pair has opposite signs.
func (w *W) Symmetrize() (*W, error) {
	if !w.PatternSymmetric() {
		return nil, ErrAsymmetricPattern
	}
	ws, err := New(w.n)
	if err != nil {
		return nil, err
	}
	for i := range w.cols {
		for k, j := range w.cols[i] {
			vji, _ := w.At(j, i)
			prod := w.vals[i][k] * vji
			if prod < 0 {
				return nil, ErrNegativeProduct
			}
			if err = ws.Set(i, j, math.Sqrt(prod)); err != nil {
				return nil, err
			}
		}
	}

	return ws, nil
}

// LagVec applies the spatial lag operator to a vector: (W·v)[i] is the
// weighted combination of v over the neighbors of i. O(nnz), no side
// effects.
func (w *W) LagVec(v []float64) ([]float64, error) {
	if len(v) != w.n {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, w.n)
	for i := range w.cols {
		acc := 0.0
		for k, j := range w.cols[i] {
			acc += w.vals[i][k] * v[j]
		}
		out[i] = acc
	}

	return out, nil
}

// Lag applies the spatial lag operator to every column of a matrix,
// returning W·M as a fresh *mat.Dense.
func (w *W) Lag(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r != w.n {
		return nil, ErrDimensionMismatch
	}
	out := mat.NewDense(w.n, c, nil)
	for i := range w.cols {
		for k, j := range w.cols[i] {
			wij := w.vals[i][k]
			for col := 0; col < c; col++ {
				out.Set(i, col, out.At(i, col)+wij*m.At(j, col))
			}
		}
	}

	return out, nil
}
