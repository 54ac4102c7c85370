// Package sparse: Dense is a concrete, row-major reference matrix,
// storing elements in a flat slice. It is the oracle the sparse formats
// are tested against and a convenient hand-off point for callers that
// need every element materialized.
package sparse

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major rows×cols matrix of Scalar values.
// data holds rows*cols elements in row-major order.
type Dense[T Scalar] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when a dimension is negative.
// Complexity: O(r*c) time and memory.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col). Zeros are stored like any other
// value — Dense has no structural sparsity. Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of the Dense matrix. Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)
	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// ToDense materializes the sparse matrix into a freshly allocated Dense
// reference. The sparse matrix is not mutated and keeps its state.
// Complexity: O(rows*cols + nnz).
func (m *Matrix[T]) ToDense() *Dense[T] {
	out := &Dense[T]{r: m.rows, c: m.cols, data: make([]T, m.rows*m.cols)}
	m.forEach(func(idx Index, v T) {
		out.data[idx.Row*m.cols+idx.Col] = v
	})
	return out
}
