/*
 * void.go, part of gocage.
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
	v3 "github.com/mmarkowski/gocage/v3"
)

//VoidDiameter returns the diameter of the largest sphere centered at
//center that does not intersect any atom's van der Waals surface: twice
//the smallest (distance to atom - vdW radius) over all atoms. It also
//returns the index of the limiting atom. A nil center means the center of
//mass of the set. The diameter is negative if center lies inside an
//atom's surface.
func VoidDiameter(set *AtomSet, center *v3.Matrix) (float64, int, error) {
	if center == nil {
		com, err := set.CenterOfMass()
		if err != nil {
			return 0, 0, errDecorate(err, "VoidDiameter")
		}
		center = com
	}
	radii, err := set.VdwRadii()
	if err != nil {
		return 0, 0, errDecorate(err, "VoidDiameter")
	}
	return voidDiameterRadii(set.Coords, radii, center), argminClearance(set.Coords, radii, center), nil
}

//voidDiameterRadii is the allocation-light core of VoidDiameter, for the
//optimizers' inner loops: radii must be index-aligned with coords.
func voidDiameterRadii(coords *v3.Matrix, radii []float64, center *v3.Matrix) float64 {
	min := clearanceAt(coords, radii, center, 0)
	for i := 1; i < coords.NVecs(); i++ {
		if c := clearanceAt(coords, radii, center, i); c < min {
			min = c
		}
	}
	return min * 2
}

func argminClearance(coords *v3.Matrix, radii []float64, center *v3.Matrix) int {
	index := 0
	min := clearanceAt(coords, radii, center, 0)
	for i := 1; i < coords.NVecs(); i++ {
		if c := clearanceAt(coords, radii, center, i); c < min {
			min = c
			index = i
		}
	}
	return index
}

func clearanceAt(coords *v3.Matrix, radii []float64, center *v3.Matrix, i int) float64 {
	return v3.Dist(coords.VecView(i), center) - radii[i]
}

//OptVoidDiameter maximizes the void diameter over the sphere center using
//a derivative-free bounded local search seeded at the center of mass.
//The default search box extends half the unoptimized void diameter away
//from the seed along each axis; a caller-supplied box (absolute
//coordinates, [axis][lo hi]) overrides it. Returns the optimized
//diameter, the index of the limiting atom, and the optimized center.
func OptVoidDiameter(set *AtomSet, bounds ...[3][2]float64) (float64, int, *v3.Matrix, error) {
	com, err := set.CenterOfMass()
	if err != nil {
		return 0, 0, nil, errDecorate(err, "OptVoidDiameter")
	}
	radii, err := set.VdwRadii()
	if err != nil {
		return 0, 0, nil, errDecorate(err, "OptVoidDiameter")
	}
	lo := make([]float64, 3)
	hi := make([]float64, 3)
	if len(bounds) > 0 {
		for j := 0; j < 3; j++ {
			lo[j] = bounds[0][j][0]
			hi[j] = bounds[0][j][1]
		}
	} else {
		voidR := voidDiameterRadii(set.Coords, radii, com) / 2
		for j := 0; j < 3; j++ {
			lo[j] = com.At(0, j) - voidR
			hi[j] = com.At(0, j) + voidR
		}
	}
	center := v3.Zeros(1)
	objective := func(x []float64) float64 {
		center.Set(0, 0, x[0])
		center.Set(0, 1, x[1])
		center.Set(0, 2, x[2])
		return -voidDiameterRadii(set.Coords, radii, center)
	}
	x := minimizeBounded(objective, []float64{com.At(0, 0), com.At(0, 1), com.At(0, 2)}, lo, hi)
	opt := v3.NewMatrix(x)
	diameter := voidDiameterRadii(set.Coords, radii, opt)
	return diameter, argminClearance(set.Coords, radii, opt), opt, nil
}
