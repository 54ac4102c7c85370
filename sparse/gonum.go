// SPDX-License-Identifier: MIT

// Package sparse: bridge to gonum's dense linear algebra.
//
// The bridge is float64-only by design: gonum's mat package is not
// generic, and float64 is the interchange type its solvers consume.
// Other element types go through ToDense and an explicit conversion by
// the caller.
package sparse

import "gonum.org/v1/gonum/mat"

// ToGonum materializes the sparse matrix into a gonum *mat.Dense so it
// can feed gonum decompositions and solvers directly. The receiver is
// not mutated and keeps its representation state.
// Returns ErrInvalidDimensions for an empty shape — gonum has no empty
// Dense.
// Complexity: O(rows*cols + nnz).
func ToGonum(m *Matrix[float64]) (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, matrixErrorf("ToGonum", ErrInvalidDimensions)
	}
	out := mat.NewDense(m.rows, m.cols, nil)
	m.forEach(func(idx Index, v float64) {
		out.Set(idx.Row, idx.Col, v)
	})
	return out, nil
}

// FromGonum builds a sparse matrix from any gonum mat.Matrix, storing
// only the non-zero elements. The result is in Uncompressed state with
// the requested options (order, workers).
// Complexity: O(rows*cols).
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix[float64], error) {
	rows, cols := src.Dims()
	out, err := New[float64](rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := src.At(i, j); v != 0 {
				// The scan is row-then-col; route through Set so the
				// ColumnMajor comparator still lands entries in order.
				_ = out.Set(i, j, v)
			}
		}
	}
	return out, nil
}
