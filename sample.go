/*
 * sample.go, part of gocage.
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
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/stat"

	v3 "github.com/mmarkowski/gocage/v3"
)

//goldenAngle spaces consecutive spiral points so that no two ever share
//an azimuth, giving a quasi-uniform coverage of the sphere.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

//spherePoints distributes n points quasi-uniformly on a sphere of the
//given radius centered at the origin, via a golden-angle spiral: azimuth
//advances by the golden angle per point while z runs linearly through
//(-1, 1).
func spherePoints(n int, radius float64) *v3.Matrix {
	points := v3.Zeros(n)
	for i := 0; i < n; i++ {
		theta := goldenAngle * float64(i)
		z := 1 - 1.0/float64(n) - float64(i)*(2-2.0/float64(n))/float64(n-1)
		r := math.Sqrt(1 - z*z)
		points.Set(i, 0, r*math.Cos(theta)*radius)
		points.Set(i, 1, r*math.Sin(theta)*radius)
		points.Set(i, 2, z*radius)
	}
	return points
}

//A rayResult describes a sampling ray that threads a channel from the
//structure's interior to the exterior: the distance from the origin to
//the channel's narrowest point, the channel diameter there (twice the
//minimal clearance), the narrowest point itself and the full sampling
//vector.
type rayResult struct {
	distance float64
	diameter float64
	point    [3]float64
	dir      [3]float64
}

//analyzeRay marches from the origin towards vector in fixed-length
//increments, computing at every step the clearance to the nearest van der
//Waals surface. The ray survives only if the clearance stays strictly
//positive along the whole path; the narrowest step then locates the
//channel. Blocked rays yield nil.
func analyzeRay(vector [3]float64, coords *v3.Matrix, radii []float64, increment float64) *rayResult {
	norm := math.Sqrt(vector[0]*vector[0] + vector[1]*vector[1] + vector[2]*vector[2])
	chunks := int(norm / increment)
	if chunks < 1 {
		return nil
	}
	chunk := [3]float64{vector[0] / float64(chunks), vector[1] / float64(chunks), vector[2] / float64(chunks)}
	chunkLen := norm / float64(chunks)
	point := v3.Zeros(1)
	minClearance := math.Inf(1)
	neck := 0
	for step := 0; step <= chunks; step++ {
		point.Set(0, 0, chunk[0]*float64(step))
		point.Set(0, 1, chunk[1]*float64(step))
		point.Set(0, 2, chunk[2]*float64(step))
		clearance := voidDiameterRadii(coords, radii, point) / 2
		if clearance <= 0 {
			return nil
		}
		if clearance < minClearance {
			minClearance = clearance
			neck = step
		}
	}
	return &rayResult{
		distance: chunkLen * float64(neck),
		diameter: minClearance * 2,
		point:    [3]float64{chunk[0] * float64(neck), chunk[1] * float64(neck), chunk[2] * float64(neck)},
		dir:      vector,
	}
}

//meanNeighborEps derives the DBSCAN neighborhood radius from the sampling
//density: the mean distance to the 3 nearest neighbours over all sphere
//sample points, plus its square root. This self-calibrates eps to the
//sampling density, so it scales correctly across molecule sizes.
func meanNeighborEps(points *v3.Matrix) float64 {
	n := points.NVecs()
	data := make(kdtree.Points, n)
	for i := 0; i < n; i++ {
		data[i] = kdtree.Point{points.At(i, 0), points.At(i, 1), points.At(i, 2)}
	}
	tree := kdtree.New(data, false)
	values := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		keep := kdtree.NewNKeeper(4) //self plus 3 neighbours
		tree.NearestSet(keep, data[i])
		dists := make([]float64, 0, 4)
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			dists = append(dists, math.Sqrt(c.Dist))
		}
		sort.Float64s(dists)
		//dists[0] is the query point itself
		for k := 1; k < len(dists) && k <= 3; k++ {
			values = append(values, dists[k])
		}
	}
	mean := stat.Mean(values, nil)
	return mean + math.Sqrt(mean)
}
