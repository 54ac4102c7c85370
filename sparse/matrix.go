// SPDX-License-Identifier: MIT

// Package sparse: the general sparse matrix.
//
// A Matrix owns exactly one active representation at a time — the ordered
// COO store, the compressed CSR/CSC arrays, or (for square matrices, via
// SquareMatrix) the modified MSR/MSC arrays — discriminated by a single
// state tag. All accessors and kernels dispatch on that tag; there is no
// runtime type introspection anywhere in the package.
package sparse

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps an underlying error with method context. Sentinels
// stay matchable through errors.Is.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// Matrix is a two-dimensional sparse array of Scalar values with a fixed
// shape and storage order. The zero value is not usable; construct with
// New. A Matrix is not safe for concurrent mutation — callers serialize
// access per instance (there are no internal locks).
type Matrix[T Scalar] struct {
	rows, cols int          // fixed shape; mutated only by ResizeAndClear
	order      StorageOrder // major axis, fixed at construction
	state      repState     // which representation is active
	workers    int          // parallel width for CompressParallel (0 = GOMAXPROCS)

	coo cooStore[T]          // active in stateUncompressed
	csr compressedStorage[T] // active in stateCompressed (CSR or CSC)
	msr modifiedStorage[T]   // active in stateModified (square only)
}

// New constructs an empty rows×cols matrix in Uncompressed state.
// Options select the storage order and the parallel worker bound.
// Returns ErrInvalidDimensions when a dimension is negative.
// Complexity: O(1).
func New[T Scalar](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}
	o := gatherOptions(opts...)
	return &Matrix[T]{
		rows:    rows,
		cols:    cols,
		order:   o.order,
		state:   stateUncompressed,
		workers: o.workers,
		coo:     cooStore[T]{order: o.order},
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Order returns the storage order fixed at construction. Complexity: O(1).
func (m *Matrix[T]) Order() StorageOrder { return m.order }

// IsCompressed reports whether the matrix is in Compressed (CSR/CSC)
// state. Modified-compressed square matrices report false here and true
// from SquareMatrix.IsModified. Complexity: O(1).
func (m *Matrix[T]) IsCompressed() bool { return m.state == stateCompressed }

// NNZ returns the number of logically non-zero entries of the active
// representation. For the modified format the reserved diagonal slots
// count only when their value is non-zero.
// Complexity: O(1) for COO and CSR/CSC, O(n) for MSR/MSC (diagonal scan).
func (m *Matrix[T]) NNZ() int {
	switch m.state {
	case stateCompressed:
		return len(m.csr.values)
	case stateModified:
		// Off-diagonal entries are all non-zero by construction; diagonal
		// slots exist regardless of value and must be filtered.
		n := m.rows
		nnz := len(m.msr.values) - n
		for i := 0; i < n; i++ {
			if !IsZero(m.msr.values[i]) {
				nnz++
			}
		}
		return nnz
	default:
		return m.coo.length()
	}
}

// At returns the element at (row, col), or the zero of T for a
// structurally absent entry. At never mutates the store and never changes
// the representation state.
// Returns ErrOutOfRange on bad indices.
// Complexity: O(log n) in COO, O(s) in a compressed slice of size s,
// O(s) in the modified off-diagonal region.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := validateIndex(row, col, m.rows, m.cols); err != nil {
		return zero, matrixErrorf("At", err)
	}
	switch m.state {
	case stateCompressed:
		return m.compressedAt(row, col), nil
	case stateModified:
		return m.modifiedAt(row, col), nil
	default:
		return m.coo.get(Index{Row: row, Col: col}), nil
	}
}

// compressedAt scans the slice owning (row, col) with a linear walk over
// its strictly increasing minor indices.
func (m *Matrix[T]) compressedAt(row, col int) T {
	idx := Index{Row: row, Col: col}
	start, end := m.csr.sliceBounds(idx.major(m.order))
	minor := idx.minor(m.order)
	for k := start; k < end; k++ {
		if m.csr.outer[k] == minor {
			return m.csr.values[k]
		}
		if m.csr.outer[k] > minor { // sorted slice: passed the spot
			break
		}
	}
	var zero T
	return zero
}

// modifiedAt reads the diagonal slot directly or scans the slice's
// off-diagonal region.
func (m *Matrix[T]) modifiedAt(row, col int) T {
	if row == col {
		return m.msr.values[row]
	}
	idx := Index{Row: row, Col: col}
	start, end := m.msr.sliceBounds(idx.major(m.order), m.rows)
	minor := idx.minor(m.order)
	for k := start; k < end; k++ {
		if m.msr.bind[k] == minor {
			return m.msr.values[k]
		}
		if m.msr.bind[k] > minor {
			break
		}
	}
	var zero T
	return zero
}

// Set assigns value at (row, col). A matrix not in Uncompressed state is
// transparently uncompressed first — convenient but O(nnz); callers
// building matrices should populate in COO and compress once.
// Setting the zero of T erases the entry; setting the same value twice is
// idempotent.
// Returns ErrOutOfRange on bad indices.
// Complexity: O(log n) search + O(n) shift worst case, plus a one-time
// uncompress when leaving a compressed state.
func (m *Matrix[T]) Set(row, col int, value T) error {
	if err := validateIndex(row, col, m.rows, m.cols); err != nil {
		return matrixErrorf("Set", err)
	}
	if m.state != stateUncompressed {
		m.Uncompress() // transparent transition; cannot fail
	}
	idx := Index{Row: row, Col: col}
	if IsZero(value) {
		m.coo.del(idx) // zeros are never stored
		return nil
	}
	m.coo.put(idx, value)
	return nil
}

// ResizeAndClear replaces the dimensions, drops all stored data and
// resets the state to Uncompressed.
// Returns ErrInvalidDimensions when a dimension is negative.
// Complexity: O(1) beyond releasing the old buffers.
func (m *Matrix[T]) ResizeAndClear(rows, cols int) error {
	if err := validateDims(rows, cols); err != nil {
		return matrixErrorf("ResizeAndClear", err)
	}
	m.rows, m.cols = rows, cols
	m.state = stateUncompressed
	m.coo.clear()
	m.csr.clear()
	m.msr.clear()
	return nil
}

// Clone returns a deep copy of the matrix: same shape, order, state and
// contents, fully independent storage.
// Complexity: O(nnz).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{
		rows:    m.rows,
		cols:    m.cols,
		order:   m.order,
		state:   m.state,
		workers: m.workers,
		coo:     cooStore[T]{order: m.order},
	}
	switch m.state {
	case stateCompressed:
		out.csr.inner = append([]int(nil), m.csr.inner...)
		out.csr.outer = append([]int(nil), m.csr.outer...)
		out.csr.values = append([]T(nil), m.csr.values...)
	case stateModified:
		out.msr.values = append([]T(nil), m.msr.values...)
		out.msr.bind = append([]int(nil), m.msr.bind...)
	default:
		out.coo.items = append([]cooEntry[T](nil), m.coo.items...)
	}
	return out
}

// forEach walks every stored entry of the active representation in
// comparator order, invoking fn(idx, value). Diagonal slots holding zero
// in the modified format are skipped so the callback only ever sees
// logical non-zeros.
// Complexity: O(nnz) (plus O(outer dim) slice bookkeeping).
func (m *Matrix[T]) forEach(fn func(idx Index, v T)) {
	switch m.state {
	case stateCompressed:
		outerDim := m.outerDim()
		for i := 0; i < outerDim; i++ {
			start, end := m.csr.sliceBounds(i)
			for k := start; k < end; k++ {
				fn(indexFrom(i, m.csr.outer[k], m.order), m.csr.values[k])
			}
		}
	case stateModified:
		// The merge walk interleaves the diagonal slot at its sorted
		// minor position, so the callback sees comparator order here too.
		for i := 0; i < m.rows; i++ {
			m.mergeModifiedSlice(i, func(minor int, v T) {
				fn(indexFrom(i, minor, m.order), v)
			})
		}
	default:
		for _, e := range m.coo.items {
			fn(e.idx, e.val)
		}
	}
}

// outerDim returns the size of the major axis (rows in RowMajor, cols in
// ColumnMajor).
func (m *Matrix[T]) outerDim() int {
	if m.order == ColumnMajor {
		return m.cols
	}
	return m.rows
}

// String implements fmt.Stringer for easy debugging: one bracketed line
// per row, dense rendering. Intended for small matrices in tests and
// examples, not for bulk output.
// Complexity: O(rows*cols*log nnz).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			v, _ := m.At(i, j)
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteString("]\n")
	}
	return b.String()
}
