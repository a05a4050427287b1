/*
 * geometry.go, part of gocage.
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

	v3 "github.com/mmarkowski/gocage/v3"
)

//appzero is used to correct floating point errors. Everything with an
//absolute value equal or less than this is considered zero.
const appzero float64 = 0.0000001

//Deg2Rad converts degrees to radians when multiplied by an angle.
const Deg2Rad float64 = math.Pi / 180.0

//Distance returns the Euclidean distance between the points a and b,
//given as 1x3 row vectors.
func Distance(a, b *v3.Matrix) float64 {
	return v3.Dist(a, b)
}

//AngleBetweenVectors returns the acute angle, in radians, between the
//directions of x and y. The sign of the dot product is discarded, so the
//result is always in [0, pi/2]; the octant disambiguation needed for
//rotations is done by the caller.
func AngleBetweenVectors(x, y *v3.Matrix) float64 {
	normproduct := x.Norm(2) * y.Norm(2)
	argument := math.Abs(x.Dot(y)) / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	}
	return math.Acos(argument)
}

//RotatorAroundZ returns an operator that, right-multiplied to a set of
//coordinates, rotates it by gamma radians around the Z axis.
func RotatorAroundZ(gamma float64) *v3.Matrix {
	singamma := math.Sin(gamma)
	cosgamma := math.Cos(gamma)
	operator := []float64{cosgamma, singamma, 0,
		-singamma, cosgamma, 0,
		0, 0, 1}
	return v3.NewMatrix(operator)
}

//RotatorAroundY returns an operator that, right-multiplied to a set of
//coordinates, rotates it by beta radians around the Y axis.
func RotatorAroundY(beta float64) *v3.Matrix {
	sinbeta := math.Sin(beta)
	cosbeta := math.Cos(beta)
	operator := []float64{cosbeta, 0, -sinbeta,
		0, 1, 0,
		sinbeta, 0, cosbeta}
	return v3.NewMatrix(operator)
}

//VoidVolume returns the volume of a spherical void of the given radius.
func VoidVolume(radius float64) float64 {
	return 4.0 / 3.0 * math.Pi * math.Pow(radius, 3)
}
