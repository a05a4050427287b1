/*
 * window_analysis.go, part of gocage.
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

//windowAnalysis refines one clustered window: it picks the cluster ray
//with the widest neck, rescans it at the fine increment, rotates the
//whole structure so the ray becomes the negative z-axis with the neck at
//the origin, and then optimizes the window center in that frame, z
//first, then xy by grid search in the window plane, then z again.
//Returns the refined window diameter and the window center in the frame
//of the coordinates passed in. The caller's coordinates are not touched.
func windowAnalysis(cluster []*rayResult, coords *v3.Matrix, radii []float64, fineIncrement float64, zBounds [2]float64, lbZ bool) (float64, *v3.Matrix, error) {
	if len(cluster) == 0 {
		return 0, nil, CError{msg: "empty window cluster", deco: []string{"windowAnalysis"}}
	}
	rep := cluster[0]
	for _, r := range cluster[1:] {
		if r.diameter > rep.diameter {
			rep = r
		}
	}
	refined := analyzeRay(rep.dir, coords, radii, fineIncrement)
	if refined == nil {
		refined = rep //the fine rescan can only lose the channel by roundoff
	}
	vector := refined.dir
	//Angles taking the ray onto the z-axis: angle1 between the xy
	//projection and x, angle2 between the full vector and z. The signs
	//and offsets depend on the octant the vector points into.
	projection := v3.NewMatrix([]float64{vector[0], vector[1], 0})
	full := v3.NewMatrix([]float64{vector[0], vector[1], vector[2]})
	angle1 := 0.0
	if projection.Norm(2) > appzero { //rays along z need no azimuthal alignment
		angle1 = AngleBetweenVectors(projection, v3.NewMatrix([]float64{1, 0, 0}))
	}
	angle2 := AngleBetweenVectors(full, v3.NewMatrix([]float64{0, 0, 1}))
	switch {
	case vector[0] >= 0 && vector[1] >= 0 && vector[2] >= 0:
		angle1 = -angle1
		angle2 = -angle2
	case vector[0] < 0 && vector[1] >= 0 && vector[2] >= 0:
		angle1 = 2*math.Pi + angle1
	case vector[0] >= 0 && vector[1] < 0 && vector[2] >= 0:
		angle2 = -angle2
	case vector[0] < 0 && vector[1] < 0 && vector[2] >= 0:
		angle1 = 2*math.Pi - angle1
	case vector[0] >= 0 && vector[1] >= 0 && vector[2] < 0:
		angle1 = -angle1
		angle2 = math.Pi + angle2
	case vector[0] < 0 && vector[1] >= 0 && vector[2] < 0:
		angle2 = math.Pi - angle2
	case vector[0] >= 0 && vector[1] < 0 && vector[2] < 0:
		angle2 = angle2 + math.Pi
	case vector[0] < 0 && vector[1] < 0 && vector[2] < 0:
		angle1 = -angle1
		angle2 = math.Pi - angle2
	}
	work := v3.Zeros(coords.NVecs())
	work.Copy(coords)
	work.Mul(work, RotatorAroundZ(angle1))
	work.Mul(work, RotatorAroundY(angle2))
	//The neck now sits at (0, 0, newZ); shift it to the origin.
	newZ := refined.distance
	shift := v3.NewMatrix([]float64{0, 0, newZ})
	work.SubVec(work, shift)
	if lbZ {
		//Some cages are limited by the central void instead of the
		//window; bounding z below at -newZ keeps the optimizer from
		//walking back into the void.
		zBounds[0] = -newZ
	}
	com := v3.Zeros(1)
	diameter0 := voidDiameterRadii(work, radii, com)
	//Stage one: slide along z to the channel's narrowest cross-section.
	zOpt := func(x []float64) float64 {
		c := v3.NewMatrix([]float64{com.At(0, 0), com.At(0, 1), x[0]})
		return voidDiameterRadii(work, radii, c)
	}
	z := minimizeBounded(zOpt, []float64{com.At(0, 2)}, []float64{zBounds[0]}, []float64{zBounds[1]})
	com.Set(0, 2, z[0])
	//Stage two: center in the window plane, maximizing the diameter over
	//xy within half the unoptimized window diameter of the axis.
	xyOpt := func(x []float64) float64 {
		c := v3.NewMatrix([]float64{x[0], x[1], com.At(0, 2)})
		return -voidDiameterRadii(work, radii, c)
	}
	half := diameter0 / 2
	xy := bruteMinimize(xyOpt, []float64{-half, -half}, []float64{half, half})
	com.Set(0, 0, xy[0])
	com.Set(0, 1, xy[1])
	//Stage three: redo z at the recentered xy.
	z = minimizeBounded(zOpt, []float64{com.At(0, 2)}, []float64{zBounds[0]}, []float64{zBounds[1]})
	com.Set(0, 2, z[0])
	diameter := voidDiameterRadii(work, radii, com)
	//Map the center back into the caller's frame: undo the translation,
	//then the two rotations in reverse order.
	com.Set(0, 2, com.At(0, 2)+newZ)
	com.Mul(com, RotatorAroundY(-angle2))
	com.Mul(com, RotatorAroundZ(-angle1))
	return diameter, com, nil
}
