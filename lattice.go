/*
 * lattice.go, part of gocage.
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

package cage

import (
	"math"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/mmarkowski/gocage/v3"
)

//A Lattice is a 3x3 row-vector matrix whose rows are the unit cell edge
//vectors a, b and c. Its vectors must be linearly independent; a
//degenerate (zero-volume) lattice is rejected at construction.
type Lattice struct {
	m *v3.Matrix
	//the reciprocal basis rows, premultiplied by 1/V. Cached at
	//construction since every fractional conversion needs them.
	sigma *v3.Matrix
	vol   float64
}

//NewLattice builds a Lattice from a 3x3 row-vector matrix.
func NewLattice(matrix *v3.Matrix) (*Lattice, error) {
	r, c := matrix.Dims()
	if r != 3 || c != 3 {
		return nil, errMalformed("lattice matrix must be 3x3, got %dx%d", r, c)
	}
	vol := mat.Det(v3.Matrix2Dense(matrix))
	if math.Abs(vol) <= appzero {
		return nil, errMalformed("degenerate lattice: cell volume is zero")
	}
	a := matrix.VecView(0)
	b := matrix.VecView(1)
	cvec := matrix.VecView(2)
	sigma := v3.Zeros(3)
	sigma.VecView(0).Cross(b, cvec)
	sigma.VecView(1).Cross(cvec, a)
	sigma.VecView(2).Cross(a, b)
	sigma.Scale(1.0/vol, sigma)
	m := v3.Zeros(3)
	m.Copy(matrix)
	return &Lattice{m: m, sigma: sigma, vol: vol}, nil
}

//LatticeFromUnitCell builds a Lattice from crystallographic parameters
//(a, b, c in Angstroms, alpha, beta, gamma in degrees), with a along the
//x axis and b in the xy plane.
func LatticeFromUnitCell(cell [6]float64) (*Lattice, error) {
	a, b, c := cell[0], cell[1], cell[2]
	alpha := Deg2Rad * cell[3]
	beta := Deg2Rad * cell[4]
	gamma := Deg2Rad * cell[5]
	cosa, cosb, cosg := math.Cos(alpha), math.Cos(beta), math.Cos(gamma)
	sing := math.Sin(gamma)
	cz2 := 1 - cosa*cosa - cosb*cosb - cosg*cosg + 2*cosa*cosb*cosg
	if cz2 < 0 {
		return nil, errMalformed("unit cell angles do not define a valid lattice")
	}
	matrix := v3.NewMatrix([]float64{
		a, 0, 0,
		b * cosg, b * sing, 0,
		c * cosb, c * (cosa - cosg*cosb) / sing, c * math.Sqrt(cz2) / sing,
	})
	ret, err := NewLattice(matrix)
	if err != nil {
		return nil, errDecorate(err, "LatticeFromUnitCell")
	}
	return ret, nil
}

//Matrix returns a copy of the lattice matrix.
func (L *Lattice) Matrix() *v3.Matrix {
	m := v3.Zeros(3)
	m.Copy(L.m)
	return m
}

//Volume returns the unit cell volume, the determinant of the lattice
//matrix.
func (L *Lattice) Volume() float64 {
	return L.vol
}

//UnitCell returns the crystallographic parameters (a, b, c, alpha, beta,
//gamma) of the lattice, with angles in degrees.
func (L *Lattice) UnitCell() [6]float64 {
	a := L.m.VecView(0)
	b := L.m.VecView(1)
	c := L.m.VecView(2)
	la, lb, lc := a.Norm(2), b.Norm(2), c.Norm(2)
	alpha := math.Acos(b.Dot(c)/(lb*lc)) / Deg2Rad
	beta := math.Acos(c.Dot(a)/(lc*la)) / Deg2Rad
	gamma := math.Acos(a.Dot(b)/(la*lb)) / Deg2Rad
	return [6]float64{la, lb, lc, alpha, beta, gamma}
}

//FractionalFromCartesian converts a single cartesian point, given as a 1x3
//row vector, into fractional coordinates under the lattice.
func (L *Lattice) FractionalFromCartesian(coord *v3.Matrix) *v3.Matrix {
	frac := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		frac.Set(0, j, L.sigma.VecView(j).Dot(coord))
	}
	return frac
}

//CartesianFromFractional converts a single fractional point, given as a
//1x3 row vector, back into cartesian coordinates.
func (L *Lattice) CartesianFromFractional(coord *v3.Matrix) *v3.Matrix {
	cart := v3.Zeros(1)
	tmp := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		tmp.Scale(coord.At(0, j), L.m.VecView(j))
		cart.Add(cart, tmp)
	}
	return cart
}

//CartToFracAll converts every row of coords to fractional coordinates.
func (L *Lattice) CartToFracAll(coords *v3.Matrix) *v3.Matrix {
	n := coords.NVecs()
	frac := v3.Zeros(n)
	for i := 0; i < n; i++ {
		frac.VecView(i).Copy(L.FractionalFromCartesian(coords.VecView(i)))
	}
	return frac
}

//FracToCartAll converts every row of coords from fractional to cartesian
//coordinates.
func (L *Lattice) FracToCartAll(coords *v3.Matrix) *v3.Matrix {
	n := coords.NVecs()
	cart := v3.Zeros(n)
	for i := 0; i < n; i++ {
		cart.VecView(i).Copy(L.CartesianFromFractional(coords.VecView(i)))
	}
	return cart
}

//A Supercell is an AtomSet expanded by integer lattice translations over
//an inclusive range along each axis, carrying the originating lattice.
type Supercell struct {
	*AtomSet
	Lattice *Lattice
}

//DefaultSupercellRange is the inclusive translation range used along each
//axis when none is given: one periodic image on each side.
var DefaultSupercellRange = [3][2]int{{-1, 1}, {-1, 1}, {-1, 1}}

//NewSupercell expands system by the integer lattice translations in
//ranges (inclusive on both ends, DefaultSupercellRange if absent) and
//returns the expanded set.
func NewSupercell(system *AtomSet, lattice *Lattice, ranges ...[3][2]int) (*Supercell, error) {
	span := DefaultSupercellRange
	if len(ranges) > 0 {
		span = ranges[0]
	}
	cells := 1
	for axis := 0; axis < 3; axis++ {
		if span[axis][1] < span[axis][0] {
			return nil, errMalformed("supercell range along axis %d is inverted", axis)
		}
		cells *= span[axis][1] - span[axis][0] + 1
	}
	n := system.Len()
	frac := lattice.CartToFracAll(system.Coords)
	elements := make([]string, 0, cells*n)
	var ids []string
	if system.AtomIDs != nil {
		ids = make([]string, 0, cells*n)
	}
	coords := v3.Zeros(cells * n)
	shift := v3.Zeros(1)
	shifted := v3.Zeros(n)
	cell := 0
	for ta := span[0][0]; ta <= span[0][1]; ta++ {
		for tb := span[1][0]; tb <= span[1][1]; tb++ {
			for tc := span[2][0]; tc <= span[2][1]; tc++ {
				shift.Set(0, 0, float64(ta))
				shift.Set(0, 1, float64(tb))
				shift.Set(0, 2, float64(tc))
				shifted.AddVec(frac, shift)
				coords.View(cell*n, 0, n, 3).Copy(lattice.FracToCartAll(shifted))
				elements = append(elements, system.Elements...)
				if ids != nil {
					ids = append(ids, system.AtomIDs...)
				}
				cell++
			}
		}
	}
	set, err := NewAtomSet(elements, coords, ids)
	if err != nil {
		return nil, errDecorate(err, "NewSupercell")
	}
	return &Supercell{AtomSet: set, Lattice: lattice}, nil
}
