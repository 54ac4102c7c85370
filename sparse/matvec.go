// SPDX-License-Identifier: MIT

// Package sparse: sparse matrix × dense vector (SpMV).
//
// MulVec dispatches on the active representation: the COO walk, the
// slice-wise CSR sum, the scatter-style CSC distribution, or the
// split diagonal/off-diagonal MSR/MSC pass. Views get their own kernels:
// the transpose view runs the underlying storage with swapped axes (no
// materialization), the diagonal view degenerates to an elementwise
// multiply.
//
// All kernels touch stored entries only; accumulation order inside a
// result slot follows the deterministic storage order.
package sparse

// MulVec computes r = A·x with r[i] = Σ_j A[i,j]·x[j].
// Returns ErrShapeMismatch when len(x) != Cols.
// Complexity: O(nnz + rows).
func (m *Matrix[T]) MulVec(x []T) ([]T, error) {
	if err := validateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf("MulVec", err)
	}
	r := make([]T, m.rows)
	switch m.state {
	case stateCompressed:
		m.compressedMulVec(x, r)
	case stateModified:
		m.modifiedMulVec(x, r)
	default:
		// COO: one pass over the stored triples.
		for _, e := range m.coo.items {
			r[e.idx.Row] += e.val * x[e.idx.Col]
		}
	}
	return r, nil
}

// compressedMulVec runs the CSR gather (RowMajor) or the CSC scatter
// (ColumnMajor) over the three parallel arrays.
func (m *Matrix[T]) compressedMulVec(x, r []T) {
	if m.order == RowMajor {
		// CSR: each row is an independent dot product with x.
		for i := 0; i < m.rows; i++ {
			start, end := m.csr.sliceBounds(i)
			var sum T
			for k := start; k < end; k++ {
				sum += m.csr.values[k] * x[m.csr.outer[k]]
			}
			r[i] = sum
		}
		return
	}
	// CSC: column j distributes values[k]·x[j] into the owning rows.
	for j := 0; j < m.cols; j++ {
		start, end := m.csr.sliceBounds(j)
		for k := start; k < end; k++ {
			r[m.csr.outer[k]] += m.csr.values[k] * x[j]
		}
	}
}

// modifiedMulVec accumulates the off-diagonal region slice by slice, then
// adds the diagonal contribution in one dense pass over the prefix.
func (m *Matrix[T]) modifiedMulVec(x, r []T) {
	n := m.rows
	for i := 0; i < n; i++ {
		start, end := m.msr.sliceBounds(i, n)
		if m.order == RowMajor {
			// MSR: slice i holds row i's off-diagonal entries.
			for k := start; k < end; k++ {
				r[i] += m.msr.values[k] * x[m.msr.bind[k]]
			}
		} else {
			// MSC: slice i holds column i's off-diagonal entries.
			for k := start; k < end; k++ {
				r[m.msr.bind[k]] += m.msr.values[k] * x[i]
			}
		}
	}
	for i := 0; i < n; i++ {
		r[i] += m.msr.values[i] * x[i]
	}
}

// MulVec computes r = Aᵀ·x through the view: r[c] = Σ_r A[r,c]·x[r].
// The underlying storage is iterated with the roles of the axes swapped —
// CSC-style traversal of a CSR matrix and vice versa — and the matrix is
// never materialized.
// Returns ErrShapeMismatch when len(x) != view Cols (= target Rows).
// Complexity: O(nnz + cols).
func (v TransposeView[T]) MulVec(x []T) ([]T, error) {
	if err := validateVecLen(x, v.m.rows); err != nil {
		return nil, viewErrorf("TransposeView", "MulVec", err)
	}
	r := make([]T, v.m.cols)
	v.m.forEach(func(idx Index, a T) {
		r[idx.Col] += a * x[idx.Row]
	})
	return r, nil
}

// MulVec computes r = D·x for the diagonal surface: a size-n elementwise
// multiply of the diagonal by x. Off-diagonal entries of the target do
// not participate.
// Returns ErrShapeMismatch when len(x) != n.
// Complexity: O(n).
func (v DiagonalView[T]) MulVec(x []T) ([]T, error) {
	if err := validateVecLen(x, v.m.rows); err != nil {
		return nil, viewErrorf("DiagonalView", "MulVec", err)
	}
	diag := v.m.Diag()
	r := make([]T, len(diag))
	for i, d := range diag {
		r[i] = d * x[i]
	}
	return r, nil
}
