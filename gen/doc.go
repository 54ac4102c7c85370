// Package gen provides deterministic sparse-matrix generators for tests,
// benchmarks and quick experiments.
//
// The gen package provides:
//
//   - Structured shapes: Identity, Diagonal, Tridiagonal, Banded.
//   - RandomSparse — an independent-Bernoulli fill with a mandatory seed,
//     so fixtures are reproducible across runs and platforms.
//
// All generators return matrices in Uncompressed state; callers compress
// when construction is done. Storage order and worker options pass
// through to the sparse constructors untouched.
package gen
