// SPDX-License-Identifier: MIT
// Package: gen
//
// random_sparse.go — RandomSparse(rows, cols, density, seed) generator.
//
// Canonical model:
//   - Independent-Bernoulli fill: each cell is stored with probability
//     density, drawing its value uniformly from [-1, 1) (per component
//     for complex element types).
//
// Contract:
//   - rows, cols ≥ 0 (else ErrBadSize).
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   - The seed is mandatory: identical inputs yield identical matrices.
//
// Determinism:
//   - Stable trial order: for each row asc, col asc. Fixed seed ⇒ fixed
//     outcome regardless of platform.
//
// Complexity:
//   - Time O(rows·cols) Bernoulli trials; Space O(nnz).

package gen

import (
	"math/rand"

	"github.com/katalvlaran/sparsix/sparse"
)

// Density domain bounds (no magic literals).
const (
	densityMin = 0.0
	densityMax = 1.0
)

// RandomSparse returns a rows×cols matrix whose cells are independently
// present with the given density, in Uncompressed state.
func RandomSparse[T sparse.Scalar](rows, cols int, density float64, seed int64, opts ...sparse.Option) (*sparse.Matrix[T], error) {
	// 1) Validate parameters early (fail fast, zero side-effects).
	if rows < 0 || cols < 0 {
		return nil, genErrorf("RandomSparse", ErrBadSize)
	}
	if density < densityMin || density > densityMax {
		return nil, genErrorf("RandomSparse", ErrInvalidDensity)
	}
	m, err := sparse.New[T](rows, cols, opts...)
	if err != nil {
		return nil, genErrorf("RandomSparse", err)
	}

	// 2) Deterministic fill: fixed trial order, local RNG (no globals).
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			_ = m.Set(i, j, randomScalar[T](rng))
		}
	}
	return m, nil
}

// randomScalar draws a uniform value from [-1, 1); complex element types
// get independent real and imaginary components. A draw of exactly zero
// is kept as-is — the sparse engine simply does not store it.
func randomScalar[T sparse.Scalar](rng *rand.Rand) T {
	unit := func() float64 { return 2*rng.Float64() - 1 }
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(unit())).(T)
	case float64:
		return any(unit()).(T)
	case complex64:
		return any(complex64(complex(unit(), unit()))).(T)
	default:
		return any(complex(unit(), unit())).(T)
	}
}
