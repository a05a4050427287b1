/*
 * window.go, part of gocage.
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

	v3 "github.com/mmarkowski/gocage/v3"
)

//clusterMinPts is the minimum neighbourhood size for a sampling ray to
//count as a cluster core during window detection.
const clusterMinPts = 5

//Options holds the tunable settings for window detection. Don't build
//it directly, get one from DefaultOptions and adjust it through the
//accessors, which read with no argument and write with one.
type Options struct {
	cpus          int
	adjust        float64
	increment     float64
	fineIncrement float64
	voidOpt       bool
	zBounds       [2]float64
	lbZ           bool
	centers       bool
}

//DefaultOptions returns an Options with the regular settings: serial
//execution, unit sampling density, a 1 A coarse and 0.1 A fine ray
//increment, void-center pre-optimization, unbounded z refinement and
//window centers included in the results.
func DefaultOptions() *Options {
	return &Options{
		cpus:          1,
		adjust:        1,
		increment:     1.0,
		fineIncrement: 0.1,
		voidOpt:       true,
		zBounds:       [2]float64{math.Inf(-1), math.Inf(1)},
		lbZ:           false,
		centers:       true,
	}
}

//Cpus sets/returns the number of goroutines used for the ray and
//window analyses.
func (O *Options) Cpus(i ...int) int {
	if len(i) > 0 {
		O.cpus = i[0]
	}
	return O.cpus
}

//Adjust sets/returns the sampling density multiplier. Values above 1
//put more rays on the sampling sphere.
func (O *Options) Adjust(a ...float64) float64 {
	if len(a) > 0 {
		O.adjust = a[0]
	}
	return O.adjust
}

//Increment sets/returns the coarse ray-marching step, in A.
func (O *Options) Increment(inc ...float64) float64 {
	if len(inc) > 0 {
		O.increment = inc[0]
	}
	return O.increment
}

//FineIncrement sets/returns the ray-marching step used to rescan each
//cluster's representative ray, in A.
func (O *Options) FineIncrement(inc ...float64) float64 {
	if len(inc) > 0 {
		O.fineIncrement = inc[0]
	}
	return O.fineIncrement
}

//VoidOpt sets/returns whether the structure is centered on the
//optimized void center rather than the plain center of mass before
//sampling.
func (O *Options) VoidOpt(b ...bool) bool {
	if len(b) > 0 {
		O.voidOpt = b[0]
	}
	return O.voidOpt
}

//ZBounds sets/returns the bounds for the z-coordinate refinement of
//each window center, in the window's own frame.
func (O *Options) ZBounds(b ...[2]float64) [2]float64 {
	if len(b) > 0 {
		O.zBounds = b[0]
	}
	return O.zBounds
}

//LowerBoundZ sets/returns whether the z refinement is bounded below at
//the window's sampled position, which keeps the optimizer out of the
//central void in cages where the void is narrower than the window.
func (O *Options) LowerBoundZ(b ...bool) bool {
	if len(b) > 0 {
		O.lbZ = b[0]
	}
	return O.lbZ
}

//Centers sets/returns whether window centers are computed into the
//results, or only the diameters.
func (O *Options) Centers(b ...bool) bool {
	if len(b) > 0 {
		O.centers = b[0]
	}
	return O.centers
}

//A Result holds the detected windows: one diameter per window, in A,
//and the corresponding window centers as rows, in the input frame.
//Centers is nil when only diameters were requested.
type Result struct {
	Diameters []float64
	Centers   *v3.Matrix
}

//Len returns the number of windows found.
func (R *Result) Len() int {
	return len(R.Diameters)
}

//FindWindows locates the windows of a cage molecule: the structure is
//centered on its (optionally optimized) void center, rays are cast from
//the origin to a golden-spiral set of points on a sphere enclosing the
//whole structure, the surviving rays are clustered by the position of
//their narrowest passage, and each cluster is refined into one window.
//A nil opts means DefaultOptions. Returns nil and no error when the
//molecule has no windows at all, whether because no ray escapes the
//structure or because the escaping rays are too scattered to group into
//any cluster.
func FindWindows(set *AtomSet, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	work := set.Copy()
	radii, err := work.VdwRadii()
	if err != nil {
		return nil, errDecorate(err, "FindWindows")
	}
	//Center the working copy so rays can be cast from the origin. The
	//shift is added back to every window center at the end.
	var shift *v3.Matrix
	if opts.voidOpt {
		_, _, center, err := OptVoidDiameter(work)
		if err != nil {
			return nil, errDecorate(err, "FindWindows")
		}
		shift = center
	} else {
		com, err := work.CenterOfMass()
		if err != nil {
			return nil, errDecorate(err, "FindWindows")
		}
		shift = com
	}
	work.Coords.SubVec(work.Coords, shift)
	_, _, maxdim, err := work.MaxDimension()
	if err != nil {
		return nil, errDecorate(err, "FindWindows")
	}
	sphereRadius := maxdim / 2
	surface := 4 * math.Pi * sphereRadius * sphereRadius
	//Roughly one point per squared A for a 24 A sphere; the logarithm
	//keeps huge structures from blowing up the sampling time.
	nPoints := int(math.Log10(surface) * 250 * opts.adjust)
	if nPoints < 2 {
		return nil, errMalformed("FindWindows: structure too small to sample")
	}
	points := spherePoints(nPoints, sphereRadius)
	eps := meanNeighborEps(points)
	rays, err := parallelMap(nPoints, opts.cpus, func(i int) (*rayResult, error) {
		target := [3]float64{points.At(i, 0), points.At(i, 1), points.At(i, 2)}
		return analyzeRay(target, work.Coords, radii, opts.increment), nil
	})
	if err != nil {
		return nil, errDecorate(err, "FindWindows")
	}
	survivors := make([]*rayResult, 0, len(rays))
	for _, r := range rays {
		if r != nil {
			survivors = append(survivors, r)
		}
	}
	//No ray from the interior reaches the outside: a closed shell.
	if len(survivors) == 0 {
		return nil, nil
	}
	necks := v3.Zeros(len(survivors))
	for i, r := range survivors {
		necks.Set(i, 0, r.point[0])
		necks.Set(i, 1, r.point[1])
		necks.Set(i, 2, r.point[2])
	}
	labels, nclusters := newDBSCAN(necks, eps, clusterMinPts).cluster()
	//every survivor was noise: stray rays, but nothing window-sized
	if nclusters == 0 {
		return nil, nil
	}
	clusters := make(map[int][]*rayResult, nclusters)
	for i, label := range labels {
		if label == labelNoise {
			continue
		}
		clusters[label] = append(clusters[label], survivors[i])
	}
	ids := make([]int, 0, len(clusters))
	for id := range clusters {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	type window struct {
		diameter float64
		center   *v3.Matrix
	}
	windows, err := parallelMap(len(ids), opts.cpus, func(i int) (window, error) {
		d, center, err := windowAnalysis(clusters[ids[i]], work.Coords, radii,
			opts.fineIncrement, opts.zBounds, opts.lbZ)
		return window{d, center}, err
	})
	if err != nil {
		return nil, errDecorate(err, "FindWindows")
	}
	result := &Result{Diameters: make([]float64, len(windows))}
	if opts.centers {
		result.Centers = v3.Zeros(len(windows))
	}
	for i, w := range windows {
		result.Diameters[i] = w.diameter
		if result.Centers != nil {
			w.center.AddVec(w.center, shift)
			result.Centers.SetVecs(w.center, []int{i})
		}
	}
	return result, nil
}
