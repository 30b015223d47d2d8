package spatweights_test

import (
	"testing"

	"github.com/katalvlaran/spaterr/spatweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// pathW returns the 4-observation path structure 0–1–2–3 (binary weights).
func pathW(t *testing.T) *spatweights.W {
	t.Helper()
	w, err := spatweights.FromNeighbors(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	return w
}

// TestNew_BadShape verifies that non-positive n is rejected.
func TestNew_BadShape(t *testing.T) {
	_, err := spatweights.New(0)
	assert.ErrorIs(t, err, spatweights.ErrBadShape)
}

// TestSetAt covers insert, overwrite, delete-by-zero and bounds checks.
func TestSetAt(t *testing.T) {
	w, err := spatweights.New(3)
	require.NoError(t, err)

	require.NoError(t, w.Set(0, 1, 2.5))
	require.NoError(t, w.Set(0, 2, 1.0))
	require.NoError(t, w.Set(0, 1, 3.0)) // overwrite

	v, err := w.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 2, w.NNZ())

	require.NoError(t, w.Set(0, 1, 0)) // delete
	v, err = w.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 1, w.NNZ())

	assert.ErrorIs(t, w.Set(3, 0, 1), spatweights.ErrOutOfRange)
	_, err = w.At(0, -1)
	assert.ErrorIs(t, err, spatweights.ErrOutOfRange)
}

// TestRowStandardize verifies that every non-empty row sums to one and
// that value symmetry is broken while the pattern survives.
func TestRowStandardize(t *testing.T) {
	w := pathW(t)
	require.True(t, w.Symmetric(0), "binary path structure starts symmetric")

	w.RowStandardize()

	for i := 0; i < 4; i++ {
		sum := 0.0
		for j := 0; j < 4; j++ {
			v, err := w.At(i, j)
			require.NoError(t, err)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-15, "row %d must sum to 1", i)
	}

	assert.False(t, w.Symmetric(1e-12), "row-standardization breaks value symmetry")
	assert.True(t, w.PatternSymmetric(), "pattern symmetry must survive")
}

// TestLagVec compares the lag operator against the dense product W·v.
func TestLagVec(t *testing.T) {
	w := pathW(t)
	w.RowStandardize()

	v := []float64{1, 2, 3, 4}
	got, err := w.LagVec(v)
	require.NoError(t, err)

	var want mat.VecDense
	want.MulVec(w.Dense(), mat.NewVecDense(4, v))
	for i := 0; i < 4; i++ {
		assert.InDelta(t, want.AtVec(i), got[i], 1e-15, "entry %d", i)
	}

	_, err = w.LagVec([]float64{1, 2})
	assert.ErrorIs(t, err, spatweights.ErrDimensionMismatch)
}

// TestLag applies the operator to a matrix and checks it column by column.
func TestLag(t *testing.T) {
	w := pathW(t)
	w.RowStandardize()

	x := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	got, err := w.Lag(x)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(w.Dense(), x)
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-15, "(%d,%d)", i, j)
		}
	}
}

// TestSymmetrize verifies the √(w[i][j]·w[j][i]) transform on a
// row-standardized path: the result must be value-symmetric and keep the
// sparsity pattern.
func TestSymmetrize(t *testing.T) {
	w := pathW(t)
	w.RowStandardize()

	ws, err := w.Symmetrize()
	require.NoError(t, err)
	assert.True(t, ws.Symmetric(1e-15), "symmetrized structure must be value-symmetric")
	assert.Equal(t, w.NNZ(), ws.NNZ(), "pattern must be preserved")

	// Interior pair: w[1][2] = 0.5, w[2][1] = 0.5 → √0.25 = 0.5.
	v, err := ws.At(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-15)

	// Boundary pair: w[0][1] = 1, w[1][0] = 0.5 → √0.5.
	v, err = ws.At(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.7071067811865476, v, 1e-15)
}

// TestSymmetrize_AsymmetricPattern verifies the pattern guard.
func TestSymmetrize_AsymmetricPattern(t *testing.T) {
	w, err := spatweights.New(2)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 1, 1))

	assert.False(t, w.PatternSymmetric())
	_, err = w.Symmetrize()
	assert.ErrorIs(t, err, spatweights.ErrAsymmetricPattern)
}

// TestSymmetrize_EigenvaluesPreserved checks the defining property: the
// similarity transform leaves the spectrum of a row-standardized
// intrinsically-symmetric structure unchanged.
func TestSymmetrize_EigenvaluesPreserved(t *testing.T) {
	w := pathW(t)
	w.RowStandardize()

	ws, err := w.Symmetrize()
	require.NoError(t, err)

	var eig mat.Eigen
	require.True(t, eig.Factorize(w.Dense(), mat.EigenNone))
	general := eig.Values(nil)

	n := ws.N()
	sym := mat.NewSymDense(n, nil)
	wd := ws.Dense()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, wd.At(i, j))
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false))
	symVals := es.Values(nil)

	// Compare as multisets: both sorted ascending by real part; the
	// general spectrum must be purely real here.
	reals := make([]float64, 0, n)
	for _, c := range general {
		assert.InDelta(t, 0, imag(c), 1e-12, "spectrum must be real")
		reals = append(reals, real(c))
	}
	sortFloats(reals)
	sortFloats(symVals)
	for i := range reals {
		assert.InDelta(t, symVals[i], reals[i], 1e-10, "eigenvalue %d", i)
	}
}

func sortFloats(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

// TestSparseDenseAgree verifies the two materializations describe the
// same matrix.
func TestSparseDenseAgree(t *testing.T) {
	w := pathW(t)
	w.RowStandardize()

	s := w.Sparse()
	d := w.Dense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := s.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, d.At(i, j), v, "(%d,%d)", i, j)
		}
	}
}
