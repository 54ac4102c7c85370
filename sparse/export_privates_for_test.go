// SPDX-License-Identifier: MIT

package sparse

// Test-Bridge (White-Box) for the storage internals.
//
// Purpose:
//   - Expose the UNEXPORTED representation arrays to sparse_test, so the
//     layout invariants of §storage (inner monotone, diagonal prefix,
//     bind slice pointers) can be asserted from black-box tests.
//   - This file does not end in _test.go, so its exports are compiled into
//     the package; the _TestOnly suffix marks them as test bridges.
//
// Risks & Maintenance:
//   - Keep the snapshots in sync with the storage structs. If a field
//     changes, update the bridge once here (tests will catch drift).

// CompressedSnapshot is a read-only copy of the CSR/CSC arrays.
type CompressedSnapshot[T Scalar] struct {
	Inner  []int
	Outer  []int
	Values []T
}

// ModifiedSnapshot is a read-only copy of the MSR/MSC arrays.
type ModifiedSnapshot[T Scalar] struct {
	Values []T
	Bind   []int
}

// CompressedSnapshot_TestOnly returns copies of the compressed arrays.
func CompressedSnapshot_TestOnly[T Scalar](m *Matrix[T]) CompressedSnapshot[T] {
	return CompressedSnapshot[T]{
		Inner:  append([]int(nil), m.csr.inner...),
		Outer:  append([]int(nil), m.csr.outer...),
		Values: append([]T(nil), m.csr.values...),
	}
}

// ModifiedSnapshot_TestOnly returns copies of the modified arrays.
func ModifiedSnapshot_TestOnly[T Scalar](m *SquareMatrix[T]) ModifiedSnapshot[T] {
	return ModifiedSnapshot[T]{
		Values: append([]T(nil), m.msr.values...),
		Bind:   append([]int(nil), m.msr.bind...),
	}
}

// COOKeys_TestOnly returns the COO keys in store order, so tests can
// assert the comparator-order invariant directly.
func COOKeys_TestOnly[T Scalar](m *Matrix[T]) []Index {
	out := make([]Index, 0, len(m.coo.items))
	for _, e := range m.coo.items {
		out = append(out, e.idx)
	}
	return out
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicOrderInvalid_TestOnly   = panicOrderInvalid
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
)
