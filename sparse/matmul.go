// SPDX-License-Identifier: MIT

// Package sparse: sparse matrix × sparse matrix (SpGEMM).
//
// Mul requires both operands to share storage order and representation
// family; the kernel per family:
//
//   - Uncompressed: nested COO join on a.col == b.row.
//   - Compressed: the classic Gustavson row walk (CSR×CSR) or its
//     column-wise mirror (CSC×CSC).
//   - ModifiedCompressed (square×square): four separately accumulated
//     contributions — off×off, off×diag, diag×off, diag×diag.
//
// Every kernel writes into a freshly constructed Uncompressed result
// through the zero-suppressing accumulator, so exact cancellations are
// never stored and aliasing (Mul(a, a)) is safe.
package sparse

import "fmt"

// mulErrorf wraps an underlying error with kernel context.
func mulErrorf(kernel string, err error) error {
	return fmt.Errorf("%s: %w", kernel, err)
}

// accumulate adds d into the COO store at idx with proxy semantics: a
// sum that cancels to exactly zero erases the entry. Receiver must be in
// Uncompressed state (all result matrices are).
func (m *Matrix[T]) accumulate(idx Index, d T) {
	if IsZero(d) {
		return // nothing to add; avoids touching absent entries
	}
	pos, ok := m.coo.search(idx)
	if !ok {
		m.coo.put(idx, d)
		return
	}
	sum := m.coo.items[pos].val + d
	if IsZero(sum) {
		m.coo.items = append(m.coo.items[:pos], m.coo.items[pos+1:]...)
		return
	}
	m.coo.items[pos].val = sum
}

// Mul computes C = A·B. Preconditions: a.Cols == b.Rows
// (ErrShapeMismatch), both operands share storage order and
// representation family (ErrFormatMismatch). The result has shape
// (a.Rows, b.Cols), inherits a's order and is always in Uncompressed
// state — callers compress it when they are done accumulating.
// Aliasing is allowed: a may be b.
// Complexity: Gustavson O(Σ flops) for compressed inputs,
// O(nnz(A)·nnz(B)) for the COO join.
func Mul[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, mulErrorf("Mul", err)
	}
	if err := validateSameFormat(a, b); err != nil {
		return nil, mulErrorf("Mul", err)
	}
	out := &Matrix[T]{
		rows:    a.rows,
		cols:    b.cols,
		order:   a.order,
		state:   stateUncompressed,
		workers: a.workers,
		coo:     cooStore[T]{order: a.order},
	}
	switch a.state {
	case stateCompressed:
		mulCompressed(a, b, out)
	case stateModified:
		mulModified(a, b, out)
	default:
		mulCOO(a, b, out)
	}
	return out, nil
}

// mulCOO joins the two coordinate stores on a.col == b.row. Quadratic in
// the stored entries, but representation-faithful: no side conversions.
func mulCOO[T Scalar](a, b, out *Matrix[T]) {
	for _, ea := range a.coo.items {
		for _, eb := range b.coo.items {
			if ea.idx.Col == eb.idx.Row {
				out.accumulate(Index{Row: ea.idx.Row, Col: eb.idx.Col}, ea.val*eb.val)
			}
		}
	}
}

// mulCompressed runs Gustavson's algorithm on the compressed arrays.
// RowMajor: per row i of A, expand row k of B for each stored a_ik.
// ColumnMajor: per column j of B, expand column k of A for each b_kj.
func mulCompressed[T Scalar](a, b, out *Matrix[T]) {
	if a.order == RowMajor {
		for i := 0; i < a.rows; i++ {
			aStart, aEnd := a.csr.sliceBounds(i)
			for ka := aStart; ka < aEnd; ka++ {
				k, av := a.csr.outer[ka], a.csr.values[ka]
				bStart, bEnd := b.csr.sliceBounds(k)
				for kb := bStart; kb < bEnd; kb++ {
					out.accumulate(Index{Row: i, Col: b.csr.outer[kb]}, av*b.csr.values[kb])
				}
			}
		}
		return
	}
	for j := 0; j < b.cols; j++ {
		bStart, bEnd := b.csr.sliceBounds(j)
		for kb := bStart; kb < bEnd; kb++ {
			k, bv := b.csr.outer[kb], b.csr.values[kb]
			aStart, aEnd := a.csr.sliceBounds(k)
			for ka := aStart; ka < aEnd; ka++ {
				out.accumulate(Index{Row: a.csr.outer[ka], Col: j}, a.csr.values[ka]*bv)
			}
		}
	}
}

// mulModified multiplies two same-order MSR/MSC matrices by accumulating
// the four diagonal/off-diagonal contributions separately:
//
//	1. off(A) × off(B)   2. off(A) × diag(B)
//	3. diag(A) × off(B)  4. diag(A) × diag(B)
//
// Both operands are square with the same side (guaranteed by the shape
// precondition: a.cols == b.rows with both square).
func mulModified[T Scalar](a, b, out *Matrix[T]) {
	n := a.rows
	if a.order == RowMajor {
		for i := 0; i < n; i++ {
			aStart, aEnd := a.msr.sliceBounds(i, n)
			for ka := aStart; ka < aEnd; ka++ {
				k, av := a.msr.bind[ka], a.msr.values[ka]
				// 1. off(A)[i,k] against row k of off(B).
				bStart, bEnd := b.msr.sliceBounds(k, n)
				for kb := bStart; kb < bEnd; kb++ {
					out.accumulate(Index{Row: i, Col: b.msr.bind[kb]}, av*b.msr.values[kb])
				}
				// 2. off(A)[i,k] against diag(B)[k].
				out.accumulate(Index{Row: i, Col: k}, av*b.msr.values[k])
			}
			// 3. diag(A)[i] against row i of off(B).
			bStart, bEnd := b.msr.sliceBounds(i, n)
			for kb := bStart; kb < bEnd; kb++ {
				out.accumulate(Index{Row: i, Col: b.msr.bind[kb]}, a.msr.values[i]*b.msr.values[kb])
			}
			// 4. diag(A)[i] against diag(B)[i].
			out.accumulate(Index{Row: i, Col: i}, a.msr.values[i]*b.msr.values[i])
		}
		return
	}
	// MSC mirror: outer loop over columns j of B.
	for j := 0; j < n; j++ {
		bStart, bEnd := b.msr.sliceBounds(j, n)
		for kb := bStart; kb < bEnd; kb++ {
			k, bv := b.msr.bind[kb], b.msr.values[kb]
			// 1. column k of off(A) against off(B)[k,j].
			aStart, aEnd := a.msr.sliceBounds(k, n)
			for ka := aStart; ka < aEnd; ka++ {
				out.accumulate(Index{Row: a.msr.bind[ka], Col: j}, a.msr.values[ka]*bv)
			}
			// 3. diag(A)[k] against off(B)[k,j].
			out.accumulate(Index{Row: k, Col: j}, a.msr.values[k]*bv)
		}
		// 2. column j of off(A) against diag(B)[j].
		aStart, aEnd := a.msr.sliceBounds(j, n)
		for ka := aStart; ka < aEnd; ka++ {
			out.accumulate(Index{Row: a.msr.bind[ka], Col: j}, a.msr.values[ka]*b.msr.values[j])
		}
		// 4. diag(A)[j] against diag(B)[j].
		out.accumulate(Index{Row: j, Col: j}, a.msr.values[j]*b.msr.values[j])
	}
}

// MulSquare computes C = A·B for two square matrices, preserving the
// square refinement in the result type. Preconditions and semantics
// follow Mul; both operands in ModifiedCompressed state take the
// four-way MSR/MSC decomposition.
// The result is Uncompressed; the caller may Compress or CompressMod it.
func MulSquare[T Scalar](a, b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if a == nil || b == nil {
		return nil, mulErrorf("MulSquare", ErrNilMatrix)
	}
	out, err := Mul(&a.Matrix, &b.Matrix)
	if err != nil {
		return nil, mulErrorf("MulSquare", err)
	}
	return &SquareMatrix[T]{Matrix: *out}, nil
}

// MulTransposed computes Aᵀ·Bᵀ through the identity Aᵀ·Bᵀ = (B·A)ᵀ:
// the product B·A runs on the underlying matrices and the result is
// materialized through the transpose identity, always Uncompressed.
// Preconditions follow Mul applied to (B, A).
// Complexity: that of Mul plus the FromTranspose materialization.
func MulTransposed[T Scalar](a, b TransposeView[T]) (*Matrix[T], error) {
	p, err := Mul(b.m, a.m)
	if err != nil {
		return nil, mulErrorf("MulTransposed", err)
	}
	pt, _ := Transpose(p) // p is freshly built, never nil
	return FromTranspose(pt), nil
}

// MulTransposeMatrix computes Aᵀ·B by materializing the view and running
// the ordinary kernel. The materialized operand is Uncompressed, so a
// compressed b is cloned and uncompressed to satisfy the same-family
// precondition — the caller's operand is never mutated.
// Complexity: materialization + Mul on uncompressed operands.
func MulTransposeMatrix[T Scalar](a TransposeView[T], b *Matrix[T]) (*Matrix[T], error) {
	if b == nil {
		return nil, mulErrorf("MulTransposeMatrix", ErrNilMatrix)
	}
	at := FromTranspose(a)
	bb := b
	if b.state != stateUncompressed {
		bb = b.Clone()
		bb.Uncompress()
	}
	out, err := Mul(at, bb)
	if err != nil {
		return nil, mulErrorf("MulTransposeMatrix", err)
	}
	return out, nil
}

// MulMatrixTranspose computes A·Bᵀ, the mirror of MulTransposeMatrix.
func MulMatrixTranspose[T Scalar](a *Matrix[T], b TransposeView[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, mulErrorf("MulMatrixTranspose", ErrNilMatrix)
	}
	bt := FromTranspose(b)
	aa := a
	if a.state != stateUncompressed {
		aa = a.Clone()
		aa.Uncompress()
	}
	out, err := Mul(aa, bt)
	if err != nil {
		return nil, mulErrorf("MulMatrixTranspose", err)
	}
	return out, nil
}

// MulDiagonals computes D₁·D₂ for two diagonal surfaces of equal size: a
// diagonal square matrix of elementwise products, Uncompressed.
// Returns ErrShapeMismatch when the sizes differ.
// Complexity: O(n).
func MulDiagonals[T Scalar](a, b DiagonalView[T]) (*SquareMatrix[T], error) {
	if a.Size() != b.Size() {
		return nil, mulErrorf("MulDiagonals", ErrShapeMismatch)
	}
	out, err := NewSquare[T](a.Size(), WithOrder(a.m.order))
	if err != nil {
		return nil, mulErrorf("MulDiagonals", err)
	}
	da, db := a.m.Diag(), b.m.Diag()
	for i := range da {
		if p := da[i] * db[i]; !IsZero(p) {
			// Diagonal coordinates ascend on both axes: append-only.
			out.coo.items = append(out.coo.items, cooEntry[T]{idx: Index{Row: i, Col: i}, val: p})
		}
	}
	return out, nil
}

// MulMatrixDiagonal computes A·D — scaling column c of A by diag[c].
// Only stored entries of A are touched; products that cancel to zero are
// dropped.
// Returns ErrShapeMismatch when a.Cols != d.Size.
// Complexity: O(nnz + n).
func MulMatrixDiagonal[T Scalar](a *Matrix[T], d DiagonalView[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, mulErrorf("MulMatrixDiagonal", ErrNilMatrix)
	}
	if a.cols != d.Size() {
		return nil, mulErrorf("MulMatrixDiagonal", ErrShapeMismatch)
	}
	out := &Matrix[T]{
		rows:    a.rows,
		cols:    a.cols,
		order:   a.order,
		state:   stateUncompressed,
		workers: a.workers,
		coo:     cooStore[T]{order: a.order},
	}
	diag := d.m.Diag()
	// Column scaling preserves the comparator order of the surviving
	// entries, so the result store is rebuilt append-only.
	a.forEach(func(idx Index, v T) {
		if p := v * diag[idx.Col]; !IsZero(p) {
			out.coo.items = append(out.coo.items, cooEntry[T]{idx: idx, val: p})
		}
	})
	return out, nil
}

// MulDiagonalMatrix computes D·A — scaling row r of A by diag[r], the
// mirror of MulMatrixDiagonal.
// Returns ErrShapeMismatch when d.Size != a.Rows.
// Complexity: O(nnz + n).
func MulDiagonalMatrix[T Scalar](d DiagonalView[T], a *Matrix[T]) (*Matrix[T], error) {
	if a == nil {
		return nil, mulErrorf("MulDiagonalMatrix", ErrNilMatrix)
	}
	if d.Size() != a.rows {
		return nil, mulErrorf("MulDiagonalMatrix", ErrShapeMismatch)
	}
	out := &Matrix[T]{
		rows:    a.rows,
		cols:    a.cols,
		order:   a.order,
		state:   stateUncompressed,
		workers: a.workers,
		coo:     cooStore[T]{order: a.order},
	}
	diag := d.m.Diag()
	a.forEach(func(idx Index, v T) {
		if p := diag[idx.Row] * v; !IsZero(p) {
			out.coo.items = append(out.coo.items, cooEntry[T]{idx: idx, val: p})
		}
	})
	return out, nil
}
