// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsix/sparse"
)

// ExampleMatrix demonstrates the build-then-compress workflow: populate
// in COO, compress once, multiply.
func ExampleMatrix() {
	m, _ := sparse.New[float64](3, 3)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(0, 2, 3)
	_ = m.Set(2, 0, 3)
	_ = m.Set(2, 1, 3)

	m.Compress() // COO -> CSR

	r, _ := m.MulVec([]float64{1, 2, 3})
	fmt.Println(r)
	fmt.Println(m.NNZ(), m.IsCompressed())
	// Output:
	// [14 0 9]
	// 5 true
}

// ExampleMatrix_Entry shows the zero-suppressing proxy: accumulating to
// exactly zero erases the entry instead of storing it.
func ExampleMatrix_Entry() {
	m, _ := sparse.New[float64](2, 2)
	e, _ := m.Entry(0, 0)
	e.Assign(5)
	e.AddAssign(-5) // cancels to zero: entry erased
	fmt.Println(m.NNZ())
	// Output:
	// 0
}

// ExampleSquareMatrix_CompressMod converts a square matrix into the
// diagonal-split modified format and back without losing contents.
func ExampleSquareMatrix_CompressMod() {
	m, _ := sparse.NewSquare[float64](3)
	_ = m.Set(0, 0, 2)
	_ = m.Set(1, 2, 4)
	_ = m.Set(2, 2, 6)

	m.CompressMod() // diagonal prefix + grouped off-diagonal entries
	fmt.Println(m.IsModified(), m.NNZ())

	v, _ := m.At(1, 2)
	fmt.Println(v)
	// Output:
	// true 3
	// 4
}

// ExampleTranspose multiplies through a transpose view without copying
// the underlying storage.
func ExampleTranspose() {
	m, _ := sparse.New[float64](2, 3)
	_ = m.Set(0, 2, 5)
	_ = m.Set(1, 0, 1)

	tv, _ := sparse.Transpose(m)
	fmt.Println(tv.Rows(), tv.Cols())

	r, _ := tv.MulVec([]float64{1, 2}) // Aᵀ·x
	fmt.Println(r)
	// Output:
	// 3 2
	// [2 0 5]
}

// ExampleDiagonal scales a vector by the diagonal of a square matrix.
func ExampleDiagonal() {
	m, _ := sparse.NewSquare[float64](3)
	_ = m.Set(0, 0, 2)
	_ = m.Set(1, 1, -1)
	_ = m.Set(0, 2, 9) // ignored by the diagonal surface

	d, _ := sparse.Diagonal(m)
	r, _ := d.MulVec([]float64{1, 1, 1})
	fmt.Println(r, d.NNZ())
	// Output:
	// [2 -1 0] 2
}
