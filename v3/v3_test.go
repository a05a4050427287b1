/*
 * v3_test.go, part of gocage.
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
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("wrong element at (1,2): %f", A.At(1, 2))
	}
}

func TestVecOps(Te *testing.T) {
	A := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	shift := NewMatrix([]float64{1, 1, 1})
	A.AddVec(A, shift)
	if A.At(0, 0) != 2 || A.At(1, 1) != 2 || A.At(0, 2) != 1 {
		Te.Error("AddVec broadcast failed")
	}
	A.SubVec(A, shift)
	if A.At(0, 0) != 1 || A.At(1, 0) != 0 {
		Te.Error("SubVec broadcast failed")
	}
}

func TestDist(Te *testing.T) {
	a := NewMatrix([]float64{0, 0, 0})
	b := NewMatrix([]float64{3, 4, 0})
	if d := Dist(a, b); math.Abs(d-5) > 1e-12 {
		Te.Errorf("Dist: expected 5, got %f", d)
	}
}

func TestCross(Te *testing.T) {
	x := NewMatrix([]float64{1, 0, 0})
	y := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Errorf("Cross: expected z axis, got %v", []float64{z.At(0, 0), z.At(0, 1), z.At(0, 2)})
	}
}

func TestUnit(Te *testing.T) {
	v := NewMatrix([]float64{3, 0, 4})
	v.Unit(v)
	if math.Abs(v.Norm(2)-1) > 1e-12 {
		Te.Errorf("Unit: norm %f", v.Norm(2))
	}
}

func TestVecView(Te *testing.T) {
	A := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	row := A.VecView(1)
	if row.At(0, 0) != 4 || row.At(0, 2) != 6 {
		Te.Error("VecView returned wrong row")
	}
	//views alias the original
	row.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("VecView does not alias the source matrix")
	}
}

func TestSetVecs(Te *testing.T) {
	A := Zeros(3)
	B := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	A.SetVecs(B, []int{2, 0})
	if A.At(2, 0) != 1 || A.At(0, 0) != 4 || A.At(1, 1) != 0 {
		Te.Error("SetVecs placed rows incorrectly")
	}
}

func TestMulRotation(Te *testing.T) {
	//right-multiplying row vectors by a 3x3 operator
	rot := NewMatrix([]float64{0, 1, 0, -1, 0, 0, 0, 0, 1})
	v := NewMatrix([]float64{1, 0, 0})
	v.Mul(v, rot)
	if math.Abs(v.At(0, 0)) > 1e-12 || math.Abs(v.At(0, 1)-1) > 1e-12 {
		Te.Errorf("Mul rotation: got (%f, %f, %f)", v.At(0, 0), v.At(0, 1), v.At(0, 2))
	}
}
