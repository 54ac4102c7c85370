// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package sparse

// ---------- Constructors (thin aliases; O(1)) ----------

// NewCSR constructs an empty RowMajor matrix — the name says which
// compressed format Compress will later produce.
// Thin alias of New with the default order, for API discoverability.
func NewCSR[T Scalar](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return New[T](rows, cols, append([]Option{WithOrder(RowMajor)}, opts...)...)
}

// NewCSC constructs an empty ColumnMajor matrix, the CSC counterpart of
// NewCSR.
func NewCSC[T Scalar](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return New[T](rows, cols, append([]Option{WithOrder(ColumnMajor)}, opts...)...)
}

// ---------- Kernels (facades map 1:1; complexity of the kernel) ----------

// Product is an alias for Mul: the sparse matrix product A×B.
func Product[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// MatVec is an alias for Matrix.MulVec: y = A·x.
func MatVec[T Scalar](m *Matrix[T], x []T) ([]T, error) { return m.MulVec(x) }

// ---------- Norm shorthands (one call per kind) ----------

// NormOneOf returns ‖A‖₁. Thin alias of Norm(NormOne).
func NormOneOf[T Scalar](m *Matrix[T]) (float64, error) { return m.Norm(NormOne) }

// NormInfOf returns ‖A‖∞. Thin alias of Norm(NormInfinity).
func NormInfOf[T Scalar](m *Matrix[T]) (float64, error) { return m.Norm(NormInfinity) }

// NormFrobeniusOf returns ‖A‖F. Thin alias of Norm(NormFrobenius).
func NormFrobeniusOf[T Scalar](m *Matrix[T]) (float64, error) { return m.Norm(NormFrobenius) }
