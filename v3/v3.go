/*
 * v3.go, part of gocage.
 *
 * Copyright 2019 The gocage authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of row vectors in 3D space. It wraps a gonum mat.Dense
//restricted to 3 columns. All the *Vec methods operate on 1x3 row vectors.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense backing A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense into a Matrix. It panics if A
//does not have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrShape)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data. It
//panics if the length of data is not divisible by 3, as that is always a
//programming error rather than a runtime condition.
func NewMatrix(data []float64) *Matrix {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		panic(ErrShape)
	}
	return &Matrix{mat.NewDense(rows, cols, data)}
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//Len returns the number of vectors in the matrix. Equivalent to NVecs,
//it exists to fulfill interfaces expecting a Len method.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Very little allocation happens, only a few ints and pointers.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//SomeVecs puts in the receiver the vectors of A with the indexes in clist.
//The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar {
			panic(ErrShape)
		}
		for j := 0; j < 3; j++ {
			F.Dense.Set(key, j, A.Dense.At(val, j))
		}
	}
}

//SetVecs sets the vectors of the receiver with the indexes in clist to the
//vectors of A. A must have len(clist) vectors.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	fr, _ := F.Dims()
	for key, val := range clist {
		if val >= fr {
			panic(ErrShape)
		}
		for j := 0; j < 3; j++ {
			F.Dense.Set(val, j, A.Dense.At(key, j))
		}
	}
}

//Copy copies A into the receiver. Both matrices must have the same
//number of vectors.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

//Add puts in the receiver the element-wise sum of A and B.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in the receiver the element-wise difference of A and B.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale scales all elements of A by v, putting the result in the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//AddVec adds the 1x3 row vector vec to each vector of A, putting the
//result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	vr, vc := vec.Dims()
	if vr != 1 || vc != 3 {
		panic(ErrShape)
	}
	ar, _ := A.Dims()
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.Dense.At(i, j)+vec.Dense.At(0, j))
		}
	}
}

//SubVec subtracts the 1x3 row vector vec from each vector of A, putting
//the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	vr, vc := vec.Dims()
	if vr != 1 || vc != 3 {
		panic(ErrShape)
	}
	ar, _ := A.Dims()
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.Dense.At(i, j)-vec.Dense.At(0, j))
		}
	}
}

//Mul puts in the receiver the matrix product of A and B. It handles the
//case of either A or B being also the receiver.
func (F *Matrix) Mul(A, B *Matrix) {
	if F == A || F == B {
		tmp := new(mat.Dense)
		tmp.Mul(A.Dense, B.Dense)
		F.Dense.Copy(tmp)
		return
	}
	F.Dense.Mul(A.Dense, B.Dense)
}

//Dot returns the dot product of the receiver and B, both of which must be
//1x3 row vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrShape)
	}
	var d float64
	for j := 0; j < 3; j++ {
		d += F.Dense.At(0, j) * B.Dense.At(0, j)
	}
	return d
}

//Cross puts in the receiver the cross product of the 1x3 row vectors a
//and b.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrShape)
	}
	ax, ay, az := a.At(0, 0), a.At(0, 1), a.At(0, 2)
	bx, by, bz := b.At(0, 0), b.At(0, 1), b.At(0, 2)
	F.Dense.Set(0, 0, ay*bz-az*by)
	F.Dense.Set(0, 1, az*bx-ax*bz)
	F.Dense.Set(0, 2, ax*by-ay*bx)
}

//Norm returns the Frobenius norm of the receiver for i=2. Only the
//Euclidean/Frobenius norm is supported; the argument is kept for
//compatibility with gonum's Norm signature.
func (F *Matrix) Norm(i float64) float64 {
	if i != 2 {
		panic("v3: only the 2-norm is supported")
	}
	return mat.Norm(F.Dense, 2)
}

//Unit puts in the receiver the unit vector in the direction of the 1x3
//row vector A.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm(2)
	if n == 0 {
		panic("v3: attempted to normalize a zero vector")
	}
	F.Scale(1.0/n, A)
}

//T puts in the receiver the transpose of the 3x3 matrix A. Only square
//3x3 matrices are supported, as those are the rotation operators used
//in gocage.
func (F *Matrix) T(A *Matrix) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar != 3 || fr != 3 {
		panic(ErrShape)
	}
	if F == A {
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				aij, aji := A.At(i, j), A.At(j, i)
				F.Dense.Set(i, j, aji)
				F.Dense.Set(j, i, aij)
			}
		}
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.At(j, i))
		}
	}
}

//Stack puts A on top of B in the receiver, which must have
//A.NVecs()+B.NVecs() vectors.
func (F *Matrix) Stack(A, B *Matrix) {
	ar, _ := A.Dims()
	br, _ := B.Dims()
	fr, _ := F.Dims()
	if fr != ar+br {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.At(i, j))
		}
	}
	for i := 0; i < br; i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i+ar, j, B.At(i, j))
		}
	}
}

//Dist returns the Euclidean distance between the 1x3 row vectors a and b.
func Dist(a, b *Matrix) float64 {
	var d float64
	for j := 0; j < 3; j++ {
		t := a.At(0, j) - b.At(0, j)
		d += t * t
	}
	return math.Sqrt(d)
}

//Error is the v3 implementation of the gocage Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("gocage/v3 error: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of the error, unless
//dec is empty, and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical.
func (err Error) Critical() bool { return err.critical }

//ErrShape is panicked on dimension mismatches, mirroring gonum's behavior.
var ErrShape = mat.ErrShape
