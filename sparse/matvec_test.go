// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsix/sparse"
)

func TestMulVec_Scenario2_AllRepresentations(t *testing.T) {
	x := []float64{1, 2, 3}
	want := []float64{14, 0, 9}

	// COO path.
	coo := scenario1(t)
	r, err := coo.MulVec(x)
	require.NoError(t, err)
	require.Equal(t, want, r)

	// CSR path.
	csr := scenario1(t)
	csr.Compress()
	r, err = csr.MulVec(x)
	require.NoError(t, err)
	require.Equal(t, want, r)

	// CSC path.
	csc := scenario1(t, sparse.WithColumnMajor())
	csc.Compress()
	r, err = csc.MulVec(x)
	require.NoError(t, err)
	require.Equal(t, want, r)
}

func TestMulVec_ModifiedFormats(t *testing.T) {
	x := []float64{1, 2, 3}
	// squareFixture dense × x = [1+12, 0, 5+12+9] = [13, 0, 26].
	want := []float64{13, 0, 26}

	msr := squareFixture(t)
	msr.CompressMod()
	r, err := msr.MulVec(x)
	require.NoError(t, err)
	require.Equal(t, want, r)

	msc := squareFixture(t, sparse.WithColumnMajor())
	msc.CompressMod()
	r, err = msc.MulVec(x)
	require.NoError(t, err)
	require.Equal(t, want, r)
}

func TestMulVec_ShapeMismatch(t *testing.T) {
	m := scenario1(t)
	_, err := m.MulVec([]float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	_, err = m.MulVec(nil)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestTransposeView_MulVec(t *testing.T) {
	// Aᵀ·x computed without materializing: r[c] = Σ_r A[r,c]·x[r].
	x := []float64{1, 2, 3}
	// Scenario1ᵀ dense = [[1,0,3],[2,0,3],[3,0,0]]; ·x = [10, 11, 3].
	want := []float64{10, 11, 3}

	for _, compress := range []bool{false, true} {
		m := scenario1(t)
		if compress {
			m.Compress()
		}
		tv, err := sparse.Transpose(m)
		require.NoError(t, err)
		r, err := tv.MulVec(x)
		require.NoError(t, err)
		require.Equal(t, want, r)
	}

	// The view's Cols is the target's Rows: a vector sized for the
	// target no longer fits a non-square transpose.
	rect := mustNew(t, 2, 3)
	tv, err := sparse.Transpose(rect)
	require.NoError(t, err)
	_, err = tv.MulVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestDiagonalView_MulVec_Scenario5(t *testing.T) {
	a := scenario5Square(t)
	d, err := sparse.Diagonal(a)
	require.NoError(t, err)

	// D·[1,1,1,1] is the diagonal itself; the off-diagonal 7 is ignored.
	r, err := d.MulVec([]float64{1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, -1, 0, 5}, r)

	// The modified format serves the diagonal straight off the prefix.
	a.CompressMod()
	r, err = d.MulVec([]float64{2, 2, 2, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{4, -2, 0, 10}, r)

	_, err = d.MulVec([]float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestMulVec_Linearity(t *testing.T) {
	// Property 6: A(αv + βw) = α(Av) + β(Aw) up to float tolerance.
	m := scenario1(t)
	m.Compress()
	v := []float64{1, -2, 0.5}
	w := []float64{3, 0.25, -1}
	alpha, beta := 2.0, -3.0

	mixed := make([]float64, 3)
	for i := range mixed {
		mixed[i] = alpha*v[i] + beta*w[i]
	}
	left, err := m.MulVec(mixed)
	require.NoError(t, err)

	av, err := m.MulVec(v)
	require.NoError(t, err)
	aw, err := m.MulVec(w)
	require.NoError(t, err)
	for i := range left {
		require.InDelta(t, alpha*av[i]+beta*aw[i], left[i], 1e-12)
	}
}

func TestMulVec_Complex(t *testing.T) {
	m, err := sparse.New[complex128](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1i))
	require.NoError(t, m.Set(1, 0, 2))
	m.Compress()

	r, err := m.MulVec([]complex128{1 + 1i, 3})
	require.NoError(t, err)
	require.Equal(t, []complex128{3i, 2 + 2i}, r)
}
