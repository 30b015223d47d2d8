// Package spatweights implements the spatial weighting structure W used by
// spatial regression models: an n×n proximity matrix whose row i holds the
// influence of every other observation on observation i.
//
// The structure is consumed by estimators through four capabilities:
//
//   - a dense materialization (Dense → gonum *mat.Dense)
//   - a sparse materialization (Sparse → *sparse.CSR)
//   - symmetry inspection (Symmetric, PatternSymmetric, Symmetrize)
//   - the spatial lag operator (LagVec, Lag), computing W·v and W·M
//
// Construction starts from dense data, explicit entries, or neighbor
// pairs (binary weights); RowStandardize rescales each row to sum one,
// the usual normalization for spatial econometrics. Row-standardizing a
// symmetric binary structure breaks value symmetry while preserving the
// pattern — such "intrinsically asymmetric" structures can be restored
// to a value-symmetric form with identical eigenvalues via Symmetrize
// (the similarity transform ws[i][j] = √(w[i][j]·w[j][i])).
//
// ⚙️ Usage:
//
//	w, err := spatweights.FromNeighbors(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
//	w.RowStandardize()
//	ylag, err := w.LagVec(y)          // neighborhood average of y
//	wd := w.Dense()                   // for dense determinant work
//	ws, err := w.Symmetrize()         // for symmetric eigenvalue work
//
// Complexity: LagVec is O(nnz); Dense is O(n²); Symmetrize is O(nnz).
// A W is mutable during construction and treated as read-only once handed
// to an estimator; no method mutates it except Set and RowStandardize.
package spatweights
