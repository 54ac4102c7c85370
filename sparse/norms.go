// SPDX-License-Identifier: MIT

// Package sparse: the three matrix norms.
//
// Each norm is computed directly from the active representation — no
// intermediate conversion, no densification. Zero-free storage means the
// accumulation passes touch stored entries only; absent coordinates
// contribute nothing by construction.
package sparse

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// parallelNormThreshold is the stored-entry count below which the
// Frobenius accumulation stays sequential; chunking overhead dominates
// under it.
const parallelNormThreshold = 1 << 14

// validateNormKind rejects values outside the closed NormKind set.
func validateNormKind(kind NormKind) error {
	if kind > NormFrobenius {
		return validatorErrorf("validateNormKind", ErrOutOfRange)
	}
	return nil
}

// Norm computes the requested norm of the matrix:
//
//	NormOne:       max over columns c of Σ_r |A[r,c]|
//	NormInfinity:  max over rows r of Σ_c |A[r,c]|
//	NormFrobenius: √( Σ over stored entries |a|² )
//
// The result is always a real scalar, also for complex element types.
// Returns ErrNilMatrix on a nil receiver and ErrOutOfRange for a kind
// outside the defined set.
// Complexity: O(nnz + rows + cols). Space: O(rows) or O(cols) for the
// max-norms, O(1) for Frobenius.
func (m *Matrix[T]) Norm(kind NormKind) (float64, error) {
	if m == nil {
		return 0, matrixErrorf("Norm", ErrNilMatrix)
	}
	if err := validateNormKind(kind); err != nil {
		return 0, matrixErrorf("Norm", err)
	}

	switch kind {
	case NormOne:
		return m.axisMaxNorm(m.cols, func(idx Index) int { return idx.Col }), nil
	case NormInfinity:
		return m.axisMaxNorm(m.rows, func(idx Index) int { return idx.Row }), nil
	default:
		return m.frobeniusNorm(), nil
	}
}

// axisMaxNorm accumulates |a| into per-axis buckets and reduces with a
// max. The bucket axis is the reduced one: columns for the one-norm,
// rows for the infinity-norm.
func (m *Matrix[T]) axisMaxNorm(buckets int, axis func(Index) int) float64 {
	if buckets == 0 {
		return 0 // empty iteration domain: the max over nothing is zero
	}
	sums := make([]float64, buckets)
	m.forEach(func(idx Index, v T) {
		sums[axis(idx)] += Abs(v)
	})
	return floats.Max(sums)
}

// frobeniusNorm sums |a|² over the stored entries. The compressed and
// modified formats expose a flat value slice, so large matrices take a
// chunked data-parallel path with disjoint partial sums; everything else
// (and small inputs) runs the plain sequential walk.
func (m *Matrix[T]) frobeniusNorm() float64 {
	if m.state != stateUncompressed && len(m.flatValues()) >= parallelNormThreshold {
		return math.Sqrt(m.parallelSquaredSum())
	}
	sum := 0.0
	m.forEach(func(_ Index, v T) {
		a := Abs(v)
		sum += a * a
	})
	return math.Sqrt(sum)
}

// flatValues returns the value array of the active compressed or
// modified representation. For the modified format the diagonal prefix
// is included; its zero slots contribute nothing to a squared sum.
func (m *Matrix[T]) flatValues() []T {
	if m.state == stateModified {
		return m.msr.values
	}
	return m.csr.values
}

// parallelSquaredSum reduces Σ|a|² over the flat value array with one
// partial accumulator per chunk. Workers write disjoint slots; the final
// combine is a sequential sum over at most `workers` partials, so the
// result is independent of scheduling.
func (m *Matrix[T]) parallelSquaredSum() float64 {
	values := m.flatValues()
	workers := Options{workers: m.workers}.resolveWorkers()
	if workers > len(values) {
		workers = len(values)
	}
	partials := make([]float64, workers)
	chunk := (len(values) + workers - 1) / workers

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(values) {
			hi = len(values)
		}
		g.Go(func() error {
			sum := 0.0
			for _, v := range values[lo:hi] {
				a := Abs(v)
				sum += a * a
			}
			partials[w] = sum
			return nil
		})
	}
	_ = g.Wait() // workers never fail; the group provides the limit + join
	return floats.Sum(partials)
}
