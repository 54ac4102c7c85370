// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/sparse"
)

func TestIndex_Less_RowMajor(t *testing.T) {
	// Lexicographic with the row compared first.
	cases := []struct {
		a, b sparse.Index
		want bool
	}{
		{sparse.Index{Row: 0, Col: 5}, sparse.Index{Row: 1, Col: 0}, true},
		{sparse.Index{Row: 1, Col: 0}, sparse.Index{Row: 0, Col: 5}, false},
		{sparse.Index{Row: 2, Col: 1}, sparse.Index{Row: 2, Col: 3}, true},
		{sparse.Index{Row: 2, Col: 3}, sparse.Index{Row: 2, Col: 3}, false}, // irreflexive
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.a.Less(tc.b, sparse.RowMajor))
	}
}

func TestIndex_Less_ColumnMajor(t *testing.T) {
	// Lexicographic with the column compared first.
	cases := []struct {
		a, b sparse.Index
		want bool
	}{
		{sparse.Index{Row: 5, Col: 0}, sparse.Index{Row: 0, Col: 1}, true},
		{sparse.Index{Row: 0, Col: 1}, sparse.Index{Row: 5, Col: 0}, false},
		{sparse.Index{Row: 1, Col: 2}, sparse.Index{Row: 3, Col: 2}, true},
		{sparse.Index{Row: 3, Col: 2}, sparse.Index{Row: 1, Col: 2}, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.a.Less(tc.b, sparse.ColumnMajor))
	}
}

func TestStringers(t *testing.T) {
	require.Equal(t, "RowMajor", sparse.RowMajor.String())
	require.Equal(t, "ColumnMajor", sparse.ColumnMajor.String())
	require.Equal(t, "One", sparse.NormOne.String())
	require.Equal(t, "Infinity", sparse.NormInfinity.String())
	require.Equal(t, "Frobenius", sparse.NormFrobenius.String())
}

func TestAbs(t *testing.T) {
	require.Equal(t, 2.5, sparse.Abs(float64(-2.5)))
	require.Equal(t, 1.5, sparse.Abs(float32(1.5)))
	require.Equal(t, 5.0, sparse.Abs(complex128(3+4i)))
	require.Equal(t, 5.0, sparse.Abs(complex64(3-4i)))
}

func TestIsZero(t *testing.T) {
	require.True(t, sparse.IsZero(float64(0)))
	require.False(t, sparse.IsZero(float64(-0.0000001)))
	require.True(t, sparse.IsZero(complex128(0)))
	require.False(t, sparse.IsZero(complex128(0+1i)))
	require.True(t, sparse.IsZero(float32(0)))
}
