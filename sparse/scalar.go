// SPDX-License-Identifier: MIT

// Package sparse: scalar helpers over the Scalar constraint.
// The kernels need exactly three facts about an element: its additive
// identity, whether a value equals it, and its magnitude. Everything else
// (+, -, *) the language provides directly on the constraint.
package sparse

import (
	"math"
	"math/cmplx"
)

// Abs returns the magnitude of v as a float64: |v| for reals, the complex
// modulus for complex scalars. The return type is always the real
// magnitude type, matching the norm contracts.
// Complexity: O(1).
func Abs[T Scalar](v T) float64 {
	// Dispatch on the exact dynamic type; Scalar is a closed set so the
	// switch is exhaustive.
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	default:
		return cmplx.Abs(any(v).(complex128))
	}
}

// IsZero reports whether v equals the additive identity of T. The
// comparison is exact: the engine stores anything that is not bit-for-bit
// zero, and never applies an epsilon on its own.
// Complexity: O(1).
func IsZero[T Scalar](v T) bool {
	var zero T
	return v == zero
}
