// SPDX-License-Identifier: MIT

// Package sparse: representation conversions.
//
// Three conversions are defined — Compress, Uncompress, CompressParallel —
// plus the modified-format transitions reachable through SquareMatrix.
// All of them are idempotent and round-trip exact: any conversion chain
// starting and ending in the same state preserves every logical element.
//
// The COO store is kept in comparator order, so compression is a single
// ordered walk and decompression can rebuild the store append-only; no
// sorting happens in either direction.
package sparse

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// Compress converts the matrix to the compressed representation
// (CSR when RowMajor, CSC when ColumnMajor).
//
//   - From Uncompressed: one ordered walk over the COO entries, coalescing
//     empty slices into repeated inner offsets.
//   - From ModifiedCompressed: merges the diagonal back into slice order
//     (zero diagonal slots are dropped — they were never logical entries).
//   - From Compressed: no-op.
//
// Complexity: O(nnz + outer dim). Space: the compressed arrays; the
// previous representation is released.
func (m *Matrix[T]) Compress() {
	switch m.state {
	case stateCompressed:
		return // idempotent
	case stateModified:
		m.compressFromModified()
		return
	}

	outerDim := m.outerDim()
	nnz := m.coo.length()
	inner := make([]int, outerDim+1)
	outer := make([]int, 0, nnz)
	values := make([]T, 0, nnz)

	// Ordered walk: entries arrive sorted by (major, minor). Whenever the
	// major coordinate advances past the next unfilled slice boundary,
	// record the current fill level into the intervening inner slots —
	// this is what coalesces empty slices.
	next := 0 // next unfilled inner slot
	for _, e := range m.coo.items {
		maj := e.idx.major(m.order)
		for next <= maj {
			inner[next] = len(outer)
			next++
		}
		outer = append(outer, e.idx.minor(m.order))
		values = append(values, e.val)
	}
	// Trailing empty slices (and the final cap) all point at the end.
	for ; next <= outerDim; next++ {
		inner[next] = len(outer)
	}

	m.csr = compressedStorage[T]{inner: inner, outer: outer, values: values}
	m.coo.clear()
	m.state = stateCompressed
}

// CompressParallel has the same postcondition as Compress but builds the
// compressed arrays with data-parallel workers. Because the COO store is
// already in comparator order, the classic count-then-prefix-sum plan
// collapses to two embarrassingly parallel phases over disjoint outer
// ranges:
//
//   - phase 1: inner[i] = position of the first entry with major >= i
//     (a binary search; exactly the exclusive prefix sum of the counts);
//   - phase 2: scatter of outer/values, identity on sorted input.
//
// No shared counters, no atomics; workers write disjoint ranges only.
// The caller must hold exclusive access for the duration of the call.
// Complexity: O(nnz + outer dim · log nnz / workers) wall-clock.
func (m *Matrix[T]) CompressParallel() {
	if m.state != stateUncompressed {
		m.Compress() // idempotent / modified-merge path is sequential
		return
	}

	outerDim := m.outerDim()
	nnz := m.coo.length()
	workers := Options{workers: m.workers}.resolveWorkers()
	if outerDim == 0 || nnz == 0 || workers < 2 {
		m.Compress() // nothing to parallelize
		return
	}

	inner := make([]int, outerDim+1)
	outer := make([]int, nnz)
	values := make([]T, nnz)
	items := m.coo.items

	// searchMajor locates the first stored entry whose major coordinate
	// is >= i. Monotone in i, so per-range results are disjoint.
	searchMajor := func(i int) int {
		return sort.Search(len(items), func(k int) bool {
			return items[k].idx.major(m.order) >= i
		})
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	chunk := (outerDim + workers - 1) / workers
	for lo := 0; lo < outerDim; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > outerDim {
			hi = outerDim
		}
		g.Go(func() error {
			// Phase 1: slice pointers for this outer range.
			for i := lo; i < hi; i++ {
				inner[i] = searchMajor(i)
			}
			// Phase 2: scatter this range's entries. The item range
			// [searchMajor(lo), searchMajor(hi)) belongs to exactly the
			// outer slices [lo, hi), so writes are disjoint across workers.
			end := searchMajor(hi)
			for k := inner[lo]; k < end; k++ {
				outer[k] = items[k].idx.minor(m.order)
				values[k] = items[k].val
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail; errgroup is used for its limit + join
	inner[outerDim] = nnz

	m.csr = compressedStorage[T]{inner: inner, outer: outer, values: values}
	m.coo.clear()
	m.state = stateCompressed
}

// Uncompress converts the matrix back to the COO representation.
//
//   - From Compressed: replays each slice in order, appending entries to
//     the store (already sorted, so the rebuild is append-only).
//   - From ModifiedCompressed: merges each slice's diagonal slot into its
//     sorted position while replaying, skipping zero diagonal slots.
//   - From Uncompressed: no-op.
//
// Complexity: O(nnz + outer dim).
func (m *Matrix[T]) Uncompress() {
	switch m.state {
	case stateUncompressed:
		return // idempotent
	case stateModified:
		m.uncompressFromModified()
		return
	}

	outerDim := m.outerDim()
	m.coo.clear()
	for i := 0; i < outerDim; i++ {
		start, end := m.csr.sliceBounds(i)
		for k := start; k < end; k++ {
			m.coo.items = append(m.coo.items, cooEntry[T]{
				idx: indexFrom(i, m.csr.outer[k], m.order),
				val: m.csr.values[k],
			})
		}
	}
	m.csr.clear()
	m.state = stateUncompressed
}

// mergeModifiedSlice walks slice i of the modified storage in minor order,
// emitting off-diagonal entries and the diagonal slot at its sorted
// position. Zero diagonal slots are skipped (reserved storage, not a
// logical entry). The shared walk backs both modified exits.
func (m *Matrix[T]) mergeModifiedSlice(i int, emit func(minor int, v T)) {
	n := m.rows
	start, end := m.msr.sliceBounds(i, n)
	diagDone := false
	for k := start; k < end; k++ {
		// The diagonal's minor index equals the slice index; emit it just
		// before the first off-diagonal entry that would pass it.
		if !diagDone && m.msr.bind[k] > i {
			if !IsZero(m.msr.values[i]) {
				emit(i, m.msr.values[i])
			}
			diagDone = true
		}
		emit(m.msr.bind[k], m.msr.values[k])
	}
	// Trailing case: every off-diagonal minor was below the slice index.
	if !diagDone && !IsZero(m.msr.values[i]) {
		emit(i, m.msr.values[i])
	}
}

// compressFromModified rebuilds the CSR/CSC arrays from the modified
// format by merging the diagonal into each slice.
func (m *Matrix[T]) compressFromModified() {
	n := m.rows
	inner := make([]int, n+1)
	outer := make([]int, 0, len(m.msr.values))
	values := make([]T, 0, len(m.msr.values))
	for i := 0; i < n; i++ {
		inner[i] = len(outer)
		m.mergeModifiedSlice(i, func(minor int, v T) {
			outer = append(outer, minor)
			values = append(values, v)
		})
	}
	inner[n] = len(outer)

	m.csr = compressedStorage[T]{inner: inner, outer: outer, values: values}
	m.msr.clear()
	m.state = stateCompressed
}

// uncompressFromModified rebuilds the COO store from the modified format.
// The merged walk yields entries already in comparator order, so the
// store is rebuilt append-only.
func (m *Matrix[T]) uncompressFromModified() {
	n := m.rows
	m.coo.clear()
	for i := 0; i < n; i++ {
		m.mergeModifiedSlice(i, func(minor int, v T) {
			m.coo.items = append(m.coo.items, cooEntry[T]{
				idx: indexFrom(i, minor, m.order),
				val: v,
			})
		})
	}
	m.msr.clear()
	m.state = stateUncompressed
}

// compressMod converts a square matrix to the modified representation
// (MSR when RowMajor, MSC when ColumnMajor) from either remaining state.
// Exposed through SquareMatrix.CompressMod; the receiver is guaranteed
// square by that wrapper.
//
// Layout construction follows the storage contract: the diagonal prefix
// is reserved unconditionally, off-diagonal entries are grouped by outer
// slice and sorted by minor index within each, and bind carries the slice
// start offsets followed by the minor indices.
// Complexity: O(nnz + n).
func (m *Matrix[T]) compressMod() {
	if m.state == stateModified {
		return // idempotent
	}
	n := m.rows

	// Count structurally present off-diagonal entries to size the arrays.
	off := 0
	m.forEach(func(idx Index, _ T) {
		if idx.Row != idx.Col {
			off++
		}
	})

	values := make([]T, n, n+off)
	bind := make([]int, n, n+off)

	// Populate the diagonal prefix and the grouped off-diagonal region in
	// one ordered pass. forEach walks slice by slice, and within a slice
	// the off-diagonal entries arrive in increasing minor order from the
	// compressed walk; from COO they arrive in full comparator order —
	// either way the relative off-diagonal order per slice is sorted.
	cur := 0 // current outer slice of the off-diagonal walk
	m.forEach(func(idx Index, v T) {
		if idx.Row == idx.Col {
			values[idx.Row] = v
			return
		}
		maj := idx.major(m.order)
		for cur <= maj { // open intervening slices (coalescing empties)
			bind[cur] = len(values)
			cur++
		}
		values = append(values, v)
		bind = append(bind, idx.minor(m.order))
	})
	for ; cur < n; cur++ {
		bind[cur] = len(values)
	}

	m.msr = modifiedStorage[T]{values: values, bind: bind}
	m.coo.clear()
	m.csr.clear()
	m.state = stateModified
}
