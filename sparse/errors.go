// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> index/shape -> format family -> structural violations
// -> I/O and parsing at the ingestion boundary.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside
	// [0, Rows) × [0, Cols). Public accessors (At/Set/Entry) MUST return
	// this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands:
	// MulVec with a wrong-length vector, Mul where a.Cols != b.Rows, or a
	// non-square Matrix-Market header fed into a square matrix.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrFormatMismatch signals that kernel inputs are not in the same
	// representation family (e.g. compressed × uncompressed) or do not
	// share a storage order.
	ErrFormatMismatch = errors.New("sparse: representation mismatch")

	// ErrIllegalStructure signals a write that would violate the structure
	// of a view, e.g. DiagonalView.Set with row != col.
	ErrIllegalStructure = errors.New("sparse: illegal structure")

	// ErrIO indicates that a Matrix-Market file could not be opened or
	// read. The OS detail is attached via %w wrapping at the call site.
	ErrIO = errors.New("sparse: i/o failure")

	// ErrParse indicates a malformed Matrix-Market line: a non-numeric
	// field, a short entry line, or a broken dimensions header.
	ErrParse = errors.New("sparse: parse failure")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was
	// passed where a constructed one is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative. Zero-sized matrices are legal (empty iteration domains).
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")
)
