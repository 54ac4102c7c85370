// SPDX-License-Identifier: MIT

// Package sparse: non-owning logical views.
//
// A view is a lightweight handle carrying a reference to a matrix; it
// never copies storage and never outlives its target usefully — the
// caller keeps the matrix alive for as long as the view is in use.
// Mutating through a view mutates the underlying matrix and vice versa.
//
//   - TransposeView re-maps (r, c) to (c, r); the matrix is NOT
//     physically transposed.
//   - DiagonalView exposes only the main diagonal of a square matrix;
//     everything off the diagonal reads as zero and rejects writes.
package sparse

import (
	"fmt"
	"math"
)

// viewErrorf wraps an underlying error with view method context.
func viewErrorf(view, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", view, method, err)
}

// ---------- TransposeView ----------

// TransposeView presents m with swapped axes. The view shares all state
// with the underlying matrix: conversions, nnz and the reader delegate
// straight through.
type TransposeView[T Scalar] struct {
	m *Matrix[T]
}

// Transpose returns a transpose view over m. Returns ErrNilMatrix for a
// nil target. Complexity: O(1), no copying.
func Transpose[T Scalar](m *Matrix[T]) (TransposeView[T], error) {
	if m == nil {
		return TransposeView[T]{}, viewErrorf("TransposeView", "Transpose", ErrNilMatrix)
	}
	return TransposeView[T]{m: m}, nil
}

// Target returns the underlying matrix.
func (v TransposeView[T]) Target() *Matrix[T] { return v.m }

// Rows returns the view's row count (= target's column count).
func (v TransposeView[T]) Rows() int { return v.m.cols }

// Cols returns the view's column count (= target's row count).
func (v TransposeView[T]) Cols() int { return v.m.rows }

// NNZ delegates to the underlying matrix (transposition preserves the
// stored-entry count).
func (v TransposeView[T]) NNZ() int { return v.m.NNZ() }

// IsCompressed delegates to the underlying matrix.
func (v TransposeView[T]) IsCompressed() bool { return v.m.IsCompressed() }

// Compress delegates to the underlying matrix.
func (v TransposeView[T]) Compress() { v.m.Compress() }

// Uncompress delegates to the underlying matrix.
func (v TransposeView[T]) Uncompress() { v.m.Uncompress() }

// ReadMatrixMarket delegates to the underlying matrix: the file is loaded
// into the target in the target's own coordinates. Errors follow
// Matrix.ReadMatrixMarket.
func (v TransposeView[T]) ReadMatrixMarket(path string) error {
	return v.m.ReadMatrixMarket(path)
}

// At returns the element at (row, col) of the transposed surface, i.e.
// the target's (col, row). Errors and complexity follow Matrix.At.
func (v TransposeView[T]) At(row, col int) (T, error) {
	return v.m.At(col, row)
}

// Set writes through the view: Set(r, c, x) stores x at the target's
// (c, r). Errors and complexity follow Matrix.Set.
func (v TransposeView[T]) Set(row, col int, value T) error {
	return v.m.Set(col, row, value)
}

// Entry returns a write proxy bound to the target's (col, row).
func (v TransposeView[T]) Entry(row, col int) (Entry[T], error) {
	return v.m.Entry(col, row)
}

// Norm computes the requested norm of the transposed surface using the
// transpose identities — no iteration over the view:
//
//	‖Aᵀ‖₁ = ‖A‖∞,  ‖Aᵀ‖∞ = ‖A‖₁,  ‖Aᵀ‖F = ‖A‖F.
//
// Complexity: that of the underlying Norm.
func (v TransposeView[T]) Norm(kind NormKind) (float64, error) {
	if err := validateNormKind(kind); err != nil {
		return 0, viewErrorf("TransposeView", "Norm", err)
	}
	switch kind {
	case NormOne:
		return v.m.Norm(NormInfinity)
	case NormInfinity:
		return v.m.Norm(NormOne)
	default:
		return v.m.Norm(NormFrobenius)
	}
}

// FromTranspose materializes the view into a new Matrix with swapped
// coordinates. The result is always in Uncompressed state regardless of
// the target's representation (materialization is a logical copy, not a
// storage copy).
// Complexity: O(nnz log nnz) searches plus O(nnz²) element shifts worst
// case — swapped indices arrive out of order, so inserts land mid-store.
func FromTranspose[T Scalar](v TransposeView[T]) *Matrix[T] {
	out := &Matrix[T]{
		rows:    v.m.cols,
		cols:    v.m.rows,
		order:   v.m.order,
		state:   stateUncompressed,
		workers: v.m.workers,
		coo:     cooStore[T]{order: v.m.order},
	}
	v.m.forEach(func(idx Index, val T) {
		out.coo.put(Index{Row: idx.Col, Col: idx.Row}, val)
	})
	return out
}

// ---------- DiagonalView ----------

// DiagonalView presents only the main diagonal of a square matrix: reads
// off the diagonal yield zero, writes off the diagonal are rejected with
// ErrIllegalStructure.
type DiagonalView[T Scalar] struct {
	m *SquareMatrix[T]
}

// Diagonal returns a diagonal view over m. Returns ErrNilMatrix for a
// nil target. Complexity: O(1), no copying.
func Diagonal[T Scalar](m *SquareMatrix[T]) (DiagonalView[T], error) {
	if m == nil {
		return DiagonalView[T]{}, viewErrorf("DiagonalView", "Diagonal", ErrNilMatrix)
	}
	return DiagonalView[T]{m: m}, nil
}

// Target returns the underlying square matrix.
func (v DiagonalView[T]) Target() *SquareMatrix[T] { return v.m }

// Rows returns the side length of the underlying square matrix.
func (v DiagonalView[T]) Rows() int { return v.m.rows }

// Cols returns the side length of the underlying square matrix.
func (v DiagonalView[T]) Cols() int { return v.m.rows }

// Size returns the side length (rows == cols).
func (v DiagonalView[T]) Size() int { return v.m.rows }

// NNZ returns the count of non-zero diagonal slots — slots, not a value
// sum, so a diagonal of {2, -1, 0, 5} reports 3.
// Complexity: O(n) (O(n log nnz) outside the modified format).
func (v DiagonalView[T]) NNZ() int {
	count := 0
	for _, d := range v.m.Diag() {
		if !IsZero(d) {
			count++
		}
	}
	return count
}

// IsCompressed delegates to the underlying matrix.
func (v DiagonalView[T]) IsCompressed() bool { return v.m.IsCompressed() }

// IsModified delegates to the underlying matrix.
func (v DiagonalView[T]) IsModified() bool { return v.m.IsModified() }

// Compress delegates to the underlying matrix.
func (v DiagonalView[T]) Compress() { v.m.Compress() }

// Uncompress delegates to the underlying matrix.
func (v DiagonalView[T]) Uncompress() { v.m.Uncompress() }

// At returns the target's (i, i) on the diagonal and the zero of T
// everywhere else. Returns ErrOutOfRange on bad indices.
func (v DiagonalView[T]) At(row, col int) (T, error) {
	var zero T
	if err := validateIndex(row, col, v.m.rows, v.m.rows); err != nil {
		return zero, viewErrorf("DiagonalView", "At", err)
	}
	if row != col {
		return zero, nil // structurally zero by definition of the view
	}
	return v.m.At(row, row)
}

// Set writes the target's diagonal. Off-diagonal writes are rejected
// with ErrIllegalStructure; bad indices with ErrOutOfRange.
func (v DiagonalView[T]) Set(row, col int, value T) error {
	if err := validateIndex(row, col, v.m.rows, v.m.rows); err != nil {
		return viewErrorf("DiagonalView", "Set", err)
	}
	if row != col {
		return viewErrorf("DiagonalView", "Set", ErrIllegalStructure)
	}
	return v.m.Set(row, row, value)
}

// Norm computes the requested norm of the diagonal surface. For a
// diagonal matrix the one- and infinity-norms coincide at max|dᵢ|; the
// Frobenius norm is √Σ|dᵢ|².
// Complexity: O(n).
func (v DiagonalView[T]) Norm(kind NormKind) (float64, error) {
	if err := validateNormKind(kind); err != nil {
		return 0, viewErrorf("DiagonalView", "Norm", err)
	}
	diag := v.m.Diag()
	if kind == NormFrobenius {
		sum := 0.0
		for _, d := range diag {
			a := Abs(d)
			sum += a * a
		}
		return math.Sqrt(sum), nil
	}
	max := 0.0
	for _, d := range diag {
		if a := Abs(d); a > max {
			max = a
		}
	}
	return max, nil
}

// FromDiagonal materializes the view into a new SquareMatrix holding
// only the non-zero diagonal entries, always in Uncompressed state.
// Complexity: O(n).
func FromDiagonal[T Scalar](v DiagonalView[T]) *SquareMatrix[T] {
	out := &SquareMatrix[T]{Matrix: Matrix[T]{
		rows:    v.m.rows,
		cols:    v.m.rows,
		order:   v.m.order,
		state:   stateUncompressed,
		workers: v.m.workers,
		coo:     cooStore[T]{order: v.m.order},
	}}
	for i, d := range v.m.Diag() {
		if !IsZero(d) {
			// Diagonal indices ascend on both axes: append-only insert.
			out.coo.items = append(out.coo.items, cooEntry[T]{idx: Index{Row: i, Col: i}, val: d})
		}
	}
	return out
}
