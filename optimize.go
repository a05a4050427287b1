/*
 * optimize.go, part of gocage.
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

	"gonum.org/v1/gonum/optimize"
)

//The minimizations in this library are all low-dimensional (1 to 3
//coordinates), derivative-free and cheap to evaluate, so a Nelder-Mead
//simplex with box projection is entirely adequate. Non-convergence is
//deliberately non-fatal: the optimizer's last iterate is still a usable,
//if approximate, answer, and one difficult molecule should not fail a
//whole analysis.

//clampToBox projects x into the box [lo, hi], component-wise. It returns
//a fresh slice and leaves x untouched.
func clampToBox(x, lo, hi []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Min(math.Max(v, lo[i]), hi[i])
	}
	return out
}

//minimizeBounded minimizes f over the box [lo, hi] starting from x0,
//using a derivative-free local method. The returned point always lies
//inside the box.
func minimizeBounded(f func([]float64) float64, x0, lo, hi []float64) []float64 {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return f(clampToBox(x, lo, hi))
		},
	}
	start := clampToBox(x0, lo, hi)
	result, err := optimize.Minimize(problem, start, nil, &optimize.NelderMead{})
	if err != nil || result == nil {
		//best effort: fall back to the (clamped) starting point
		if result == nil {
			return start
		}
	}
	return clampToBox(result.X, lo, hi)
}

//minimizeLocal is the unbounded variant, used to polish a grid-search
//result the way scipy's fmin finishes a brute scan.
func minimizeLocal(f func([]float64) float64, x0 []float64) []float64 {
	problem := optimize.Problem{Func: f}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil || result == nil {
		if result == nil {
			out := make([]float64, len(x0))
			copy(out, x0)
			return out
		}
	}
	return result.X
}

//bruteGridPoints is the number of samples per axis of the exhaustive
//grid search.
const bruteGridPoints = 20

//bruteMinimize runs an exhaustive grid search of f over the box [lo, hi],
//bruteGridPoints per axis, and polishes the best grid point with a local
//derivative-free minimization.
func bruteMinimize(f func([]float64) float64, lo, hi []float64) []float64 {
	dim := len(lo)
	steps := make([]float64, dim)
	for i := range steps {
		steps[i] = (hi[i] - lo[i]) / float64(bruteGridPoints-1)
	}
	best := make([]float64, dim)
	copy(best, lo)
	bestVal := math.Inf(1)
	x := make([]float64, dim)
	idx := make([]int, dim)
	for {
		for i := range x {
			x[i] = lo[i] + float64(idx[i])*steps[i]
		}
		if v := f(x); v < bestVal {
			bestVal = v
			copy(best, x)
		}
		//advance the multi-index odometer
		k := 0
		for ; k < dim; k++ {
			idx[k]++
			if idx[k] < bruteGridPoints {
				break
			}
			idx[k] = 0
		}
		if k == dim {
			break
		}
	}
	return minimizeLocal(f, best)
}
