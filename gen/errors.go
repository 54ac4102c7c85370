// SPDX-License-Identifier: MIT
// Package: gen
//
// errors.go — sentinel errors for the gen package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using %w wrapping.
//   - Generators never panic at runtime.

package gen

import "errors"

// ErrBadSize indicates that a size parameter (n, rows, cols, bandwidth)
// is outside the generator's admissible range.
var ErrBadSize = errors.New("gen: size parameter out of range")

// ErrInvalidDensity indicates that a fill density is outside the closed
// interval [0,1].
var ErrInvalidDensity = errors.New("gen: density out of range")
