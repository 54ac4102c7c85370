// SPDX-License-Identifier: MIT

// Package sparse: the square-matrix refinement.
//
// SquareMatrix embeds the general Matrix and unlocks the modified
// representation (MSR/MSC). All tag dispatch lives on Matrix, so the
// embedded methods remain correct in every state; this type only adds
// the square-only surface and keeps non-square shapes unconstructible.
//
// The closed transition set:
//
//	Uncompressed  <──Compress──>  Compressed
//	      │                           │
//	      └──CompressMod──>  ModifiedCompressed  <──Compress──
//	                                 │
//	                                 └──Uncompress──> Uncompressed
package sparse

import "fmt"

// squareErrorf wraps an underlying error with method context.
func squareErrorf(method string, err error) error {
	return fmt.Errorf("SquareMatrix.%s: %w", method, err)
}

// SquareMatrix is an n×n sparse matrix. In addition to the two general
// representations it supports the modified compressed format, which
// splits the main diagonal into a dedicated prefix for O(1) diagonal
// access.
type SquareMatrix[T Scalar] struct {
	Matrix[T]
}

// NewSquare constructs an empty n×n square matrix in Uncompressed state.
// Returns ErrInvalidDimensions when n is negative.
// Complexity: O(1).
func NewSquare[T Scalar](n int, opts ...Option) (*SquareMatrix[T], error) {
	m, err := New[T](n, n, opts...)
	if err != nil {
		return nil, squareErrorf("NewSquare", err)
	}
	return &SquareMatrix[T]{Matrix: *m}, nil
}

// IsModified reports whether the matrix is in ModifiedCompressed
// (MSR/MSC) state. Complexity: O(1).
func (m *SquareMatrix[T]) IsModified() bool { return m.state == stateModified }

// CompressMod converts the matrix to the modified representation from
// either Uncompressed or Compressed state. The diagonal prefix is
// reserved in full even where the diagonal is zero; only off-diagonal
// entries consume per-entry storage. Idempotent.
// Complexity: O(nnz + n).
func (m *SquareMatrix[T]) CompressMod() {
	m.compressMod()
}

// ResizeAndClear replaces the side length, drops all stored data and
// resets the state to Uncompressed.
// Returns ErrInvalidDimensions when n is negative.
// Complexity: O(1) beyond releasing the old buffers.
func (m *SquareMatrix[T]) ResizeAndClear(n int) error {
	if err := m.Matrix.ResizeAndClear(n, n); err != nil {
		return squareErrorf("ResizeAndClear", err)
	}
	return nil
}

// Clone returns a deep copy of the square matrix, independent storage
// included. Complexity: O(nnz).
func (m *SquareMatrix[T]) Clone() *SquareMatrix[T] {
	return &SquareMatrix[T]{Matrix: *m.Matrix.Clone()}
}

// Diag returns a copy of the main diagonal as a dense slice of length n.
// In ModifiedCompressed state this is a straight copy of the diagonal
// prefix; otherwise each slot is read through At.
// Complexity: O(n) modified, O(n log nnz) otherwise.
func (m *SquareMatrix[T]) Diag() []T {
	n := m.rows
	out := make([]T, n)
	if m.state == stateModified {
		copy(out, m.msr.values[:n])
		return out
	}
	for i := 0; i < n; i++ {
		out[i], _ = m.At(i, i)
	}
	return out
}
