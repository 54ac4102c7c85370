// Package sparsix is your in-memory toolkit for building, transforming,
// and multiplying sparse matrices — from coordinate construction to
// compressed kernels and diagonal-split square formats.
//
// 🚀 What is sparsix?
//
//	A small, focused library that brings together:
//		• Three storage formats: ordered COO, CSR/CSC, MSR/MSC (square)
//		• Total round-trips: compress / uncompress / compress_mod, exact
//		• Zero-suppressing writes: zeros are erased, never stored
//		• Views: transpose & diagonal surfaces without copying
//		• Kernels: SpMV and SpGEMM specialized per format and view
//		• Norms: one, infinity, Frobenius — straight off the active format
//		• Matrix-Market ingestion and gonum interop
//
// ✨ Why choose sparsix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – ordered stores, fixed loop orders, sentinel errors
//   - Pure Go generics – float32/float64/complex64/complex128 elements
//   - Honest costs – every operation documents its complexity
//
// Everything is organized under two subpackages:
//
//	sparse/ — the matrix engine: formats, conversions, views, kernels
//	gen/    — deterministic generators (identity, banded, random sparse)
//
// Quick example:
//
//	m, _ := sparse.New[float64](3, 3)
//	_ = m.Set(0, 0, 1)
//	_ = m.Set(0, 2, 3)
//	m.Compress()
//	r, _ := m.MulVec([]float64{1, 2, 3})
//
// See the sparse package examples for complete, runnable walk-throughs.
package sparsix
