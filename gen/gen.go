// SPDX-License-Identifier: MIT
// Package: gen
//
// gen.go — structured generators.
//
// Contract (shared by every generator here):
//   - Sizes are validated first; only sentinel errors are returned.
//   - Population runs in ascending (row, col) order, so construction hits
//     the COO store's append-friendly path for RowMajor matrices.
//   - Zero values passed by the caller are simply not stored (the sparse
//     engine suppresses them); the generators do not special-case them.
//
// Determinism:
//   - Fixed loop orders; no randomness outside RandomSparse (seeded).

package gen

import (
	"fmt"

	"github.com/katalvlaran/sparsix/sparse"
)

// genErrorf wraps an underlying error with generator context.
func genErrorf(generator string, err error) error {
	return fmt.Errorf("gen.%s: %w", generator, err)
}

// Identity returns the n×n identity matrix I_n in Uncompressed state.
// Returns ErrBadSize when n < 0.
// Complexity: O(n).
func Identity[T sparse.Scalar](n int, opts ...sparse.Option) (*sparse.SquareMatrix[T], error) {
	if n < 0 {
		return nil, genErrorf("Identity", ErrBadSize)
	}
	m, err := sparse.NewSquare[T](n, opts...)
	if err != nil {
		return nil, genErrorf("Identity", err)
	}
	var one T = 1
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, one) // bounds are valid by construction
	}
	return m, nil
}

// Diagonal returns the square matrix with the given main diagonal. Zero
// slots in diag stay structurally absent.
// Complexity: O(len(diag)).
func Diagonal[T sparse.Scalar](diag []T, opts ...sparse.Option) (*sparse.SquareMatrix[T], error) {
	m, err := sparse.NewSquare[T](len(diag), opts...)
	if err != nil {
		return nil, genErrorf("Diagonal", err)
	}
	for i, v := range diag {
		_ = m.Set(i, i, v)
	}
	return m, nil
}

// Tridiagonal returns the n×n matrix with constant sub-, main- and
// super-diagonals (lower, main, upper). The classic 1-D Laplacian is
// Tridiagonal(n, -1, 2, -1).
// Returns ErrBadSize when n < 0.
// Complexity: O(n).
func Tridiagonal[T sparse.Scalar](n int, lower, main, upper T, opts ...sparse.Option) (*sparse.SquareMatrix[T], error) {
	if n < 0 {
		return nil, genErrorf("Tridiagonal", ErrBadSize)
	}
	m, err := sparse.NewSquare[T](n, opts...)
	if err != nil {
		return nil, genErrorf("Tridiagonal", err)
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			_ = m.Set(i, i-1, lower)
		}
		_ = m.Set(i, i, main)
		if i < n-1 {
			_ = m.Set(i, i+1, upper)
		}
	}
	return m, nil
}

// Banded returns the n×n matrix whose band |i-j| <= halfBand is filled by
// fill(i, j). Entries outside the band stay absent; fill returning zero
// leaves (i, j) absent too.
// Returns ErrBadSize when n < 0 or halfBand < 0.
// Complexity: O(n·halfBand).
func Banded[T sparse.Scalar](n, halfBand int, fill func(i, j int) T, opts ...sparse.Option) (*sparse.SquareMatrix[T], error) {
	if n < 0 || halfBand < 0 {
		return nil, genErrorf("Banded", ErrBadSize)
	}
	m, err := sparse.NewSquare[T](n, opts...)
	if err != nil {
		return nil, genErrorf("Banded", err)
	}
	for i := 0; i < n; i++ {
		lo := i - halfBand
		if lo < 0 {
			lo = 0
		}
		hi := i + halfBand
		if hi > n-1 {
			hi = n - 1
		}
		for j := lo; j <= hi; j++ {
			_ = m.Set(i, j, fill(i, j))
		}
	}
	return m, nil
}
