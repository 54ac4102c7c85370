// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/sparse"
)

func TestCompress_CSRLayout_Scenario1(t *testing.T) {
	m := scenario1(t)
	m.Compress()
	require.True(t, m.IsCompressed())

	snap := sparse.CompressedSnapshot_TestOnly(m)
	// The empty middle row is coalesced: inner = [0, 3, 3, 5].
	require.Equal(t, []int{0, 3, 3, 5}, snap.Inner)
	require.Equal(t, []int{0, 1, 2, 0, 1}, snap.Outer)
	require.Equal(t, []float64{1, 2, 3, 3, 3}, snap.Values)

	// Logical contents are unchanged by the transition.
	require.Equal(t, scenario1Dense(), denseOf(t, m))
	require.Equal(t, 5, m.NNZ())
}

func TestCompress_CSCLayout(t *testing.T) {
	m := mustNew(t, 3, 3, sparse.WithColumnMajor())
	setAll(t, m, scenario1Dense())
	m.Compress()

	snap := sparse.CompressedSnapshot_TestOnly(m)
	// Columns of [[1,2,3],[0,0,0],[3,3,0]]: col0 = {1,3}, col1 = {2,3},
	// col2 = {3}. Outer holds row indices per column slice.
	require.Equal(t, []int{0, 2, 4, 5}, snap.Inner)
	require.Equal(t, []int{0, 2, 0, 2, 0}, snap.Outer)
	require.Equal(t, []float64{1, 3, 2, 3, 3}, snap.Values)
	require.Equal(t, scenario1Dense(), denseOf(t, m))
}

func TestCompressUncompress_RoundTrip(t *testing.T) {
	for _, opts := range [][]sparse.Option{nil, {sparse.WithColumnMajor()}} {
		m := scenario1(t, opts...)

		m.Compress()
		m.Uncompress()
		require.Equal(t, scenario1Dense(), denseOf(t, m))
		require.Equal(t, 5, m.NNZ())

		// The rebuilt COO store is back in comparator order.
		keys := sparse.COOKeys_TestOnly(m)
		require.Len(t, keys, 5)
		for k := 1; k < len(keys); k++ {
			require.True(t, keys[k-1].Less(keys[k], m.Order()))
		}
	}
}

func TestConversions_Idempotent(t *testing.T) {
	m := scenario1(t)

	m.Uncompress() // no-op in Uncompressed state
	require.Equal(t, 5, m.NNZ())

	m.Compress()
	m.Compress() // no-op in Compressed state
	require.True(t, m.IsCompressed())
	require.Equal(t, scenario1Dense(), denseOf(t, m))
}

func TestCompress_EmptyAndTrailingSlices(t *testing.T) {
	// Only entry sits in the first row: every following slice is empty
	// and inner must repeat the fill level up to the cap.
	m := mustNew(t, 4, 4)
	require.NoError(t, m.Set(0, 3, 2))
	m.Compress()

	snap := sparse.CompressedSnapshot_TestOnly(m)
	require.Equal(t, []int{0, 1, 1, 1, 1}, snap.Inner)

	// Fully empty matrix: all-zero inner of length rows+1.
	e := mustNew(t, 3, 2)
	e.Compress()
	require.Equal(t, []int{0, 0, 0, 0}, sparse.CompressedSnapshot_TestOnly(e).Inner)
	e.Uncompress()
	require.Equal(t, 0, e.NNZ())
}

func TestCompressParallel_MatchesSequential(t *testing.T) {
	build := func(opts ...sparse.Option) *sparse.Matrix[float64] {
		m := mustNew(t, 64, 48, opts...)
		// Deterministic scatter with empty slices sprinkled in.
		for i := 0; i < 64; i += 3 {
			for j := 0; j < 48; j += 5 {
				require.NoError(t, m.Set(i, j, float64(i*48+j+1)))
			}
		}
		return m
	}

	for _, opts := range [][]sparse.Option{
		{sparse.WithWorkers(4)},
		{sparse.WithColumnMajor(), sparse.WithWorkers(3)},
	} {
		seq := build(opts...)
		par := build(opts...)
		seq.Compress()
		par.CompressParallel()

		require.True(t, par.IsCompressed())
		require.Equal(t,
			sparse.CompressedSnapshot_TestOnly(seq),
			sparse.CompressedSnapshot_TestOnly(par),
		)
	}
}

func TestCompressParallel_Idempotent(t *testing.T) {
	m := scenario1(t)
	m.Compress()
	m.CompressParallel() // already compressed: no-op
	require.Equal(t, scenario1Dense(), denseOf(t, m))
}
