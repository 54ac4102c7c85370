// Package sparse implements storage-efficient sparse matrices and the
// operations most commonly needed on them.
//
// The sparse package provides:
//
//   - Matrix — a scalar-polymorphic, order-polymorphic sparse matrix with
//     three representations: ordered COO for construction, CSR/CSC for
//     fast kernels, and (through SquareMatrix) the diagonal-split MSR/MSC.
//   - Zero-suppressing writes: Set and the Entry proxy never store the
//     zero of the element type; cancellations erase.
//   - Views — TransposeView and DiagonalView re-interpret an existing
//     matrix's coordinates without copying storage.
//   - Kernels — MulVec (SpMV) and Mul/MulSquare (SpGEMM) dispatched over
//     shape × representation × order, plus the view specializations.
//   - The one-, infinity- and Frobenius norms, computed on the active
//     representation.
//   - Matrix-Market ingestion and dense bridges (Dense, gonum mat.Dense).
//
// Build in COO with Set, call Compress once, then multiply: Set on a
// compressed matrix transparently uncompresses and costs O(nnz).
//
// A Matrix is single-threaded by contract — callers serialize mutation
// per instance. CompressParallel and the large-input norm reductions use
// bounded internal workers but are observationally identical to their
// sequential counterparts.
//
// See the examples in this package for usage patterns.
package sparse
