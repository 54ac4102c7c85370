// SPDX-License-Identifier: MIT

// Package sparse_test: shared helpers for the package test suite.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/sparse"
)

// mustNew constructs a general matrix or fails the test.
func mustNew(t *testing.T, rows, cols int, opts ...sparse.Option) *sparse.Matrix[float64] {
	t.Helper()
	m, err := sparse.New[float64](rows, cols, opts...)
	require.NoError(t, err)
	return m
}

// mustNewSquare constructs a square matrix or fails the test.
func mustNewSquare(t *testing.T, n int, opts ...sparse.Option) *sparse.SquareMatrix[float64] {
	t.Helper()
	m, err := sparse.NewSquare[float64](n, opts...)
	require.NoError(t, err)
	return m
}

// setAll applies a dense [][]float64 seed to the matrix, skipping zeros
// to keep the construction sequence realistic.
func setAll(t *testing.T, m interface {
	Set(r, c int, v float64) error
}, data [][]float64) {
	t.Helper()
	for i, row := range data {
		for j, v := range row {
			if v != 0 {
				require.NoError(t, m.Set(i, j, v))
			}
		}
	}
}

// denseOf reconstructs the logical contents through At for comparison
// against a dense reference.
func denseOf(t *testing.T, m interface {
	Rows() int
	Cols() int
	At(r, c int) (float64, error)
}) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}
	return out
}

// scenario1 builds the 3×3 matrix from the reference scenario:
//
//	[[1,2,3],
//	 [0,0,0],
//	 [3,3,0]]
//
// including the final zero overwrite of (2,2).
func scenario1(t *testing.T, opts ...sparse.Option) *sparse.Matrix[float64] {
	t.Helper()
	m := mustNew(t, 3, 3, opts...)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(0, 2, 3))
	require.NoError(t, m.Set(2, 0, 3))
	require.NoError(t, m.Set(2, 1, 3))
	require.NoError(t, m.Set(2, 2, 3))
	require.NoError(t, m.Set(2, 2, 0)) // zero write erases the entry
	return m
}

// scenario1Dense is the dense reference for scenario1.
func scenario1Dense() [][]float64 {
	return [][]float64{
		{1, 2, 3},
		{0, 0, 0},
		{3, 3, 0},
	}
}

// scenario5Square builds the 4×4 square matrix with diagonal
// [2, -1, 0, 5] and one off-diagonal entry A[1,3]=7.
func scenario5Square(t *testing.T, opts ...sparse.Option) *sparse.SquareMatrix[float64] {
	t.Helper()
	m := mustNewSquare(t, 4, opts...)
	require.NoError(t, m.Set(0, 0, 2))
	require.NoError(t, m.Set(1, 1, -1))
	require.NoError(t, m.Set(3, 3, 5))
	require.NoError(t, m.Set(1, 3, 7))
	return m
}
