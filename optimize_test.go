/*
 * optimize_test.go, part of gocage.
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
	"testing"
)

func TestMinimizeBounded(Te *testing.T) {
	//quadratic with its minimum inside the box
	f := func(x []float64) float64 {
		return (x[0]-1)*(x[0]-1) + (x[1]+2)*(x[1]+2)
	}
	x := minimizeBounded(f, []float64{0, 0}, []float64{-5, -5}, []float64{5, 5})
	if math.Abs(x[0]-1) > 1e-4 || math.Abs(x[1]+2) > 1e-4 {
		Te.Errorf("interior minimum: got (%f, %f)", x[0], x[1])
	}
	//minimum outside the box lands on the boundary
	x = minimizeBounded(f, []float64{0, 0}, []float64{-5, -1}, []float64{5, 1})
	if math.Abs(x[1]+1) > 1e-4 {
		Te.Errorf("boundary minimum: got y = %f", x[1])
	}
}

func TestMinimizeBoundedUnbounded(Te *testing.T) {
	//infinite bounds degrade to a plain local search
	f := func(x []float64) float64 { return x[0] * x[0] }
	x := minimizeBounded(f, []float64{3}, []float64{math.Inf(-1)}, []float64{math.Inf(1)})
	if math.Abs(x[0]) > 1e-4 {
		Te.Errorf("got %f", x[0])
	}
}

func TestBruteMinimize(Te *testing.T) {
	//two basins; the grid must find the deeper one and the polish
	//must land on its bottom
	f := func(x []float64) float64 {
		left := (x[0]+3)*(x[0]+3) + (x[1]+3)*(x[1]+3) + 1
		right := (x[0]-2)*(x[0]-2) + (x[1]-2)*(x[1]-2)
		return math.Min(left, right)
	}
	x := bruteMinimize(f, []float64{-5, -5}, []float64{5, 5})
	if math.Abs(x[0]-2) > 1e-3 || math.Abs(x[1]-2) > 1e-3 {
		Te.Errorf("expected the (2,2) basin, got (%f, %f)", x[0], x[1])
	}
}

func TestClampToBox(Te *testing.T) {
	x := clampToBox([]float64{-10, 0.5, 10}, []float64{-1, -1, -1}, []float64{1, 1, 1})
	if x[0] != -1 || x[1] != 0.5 || x[2] != 1 {
		Te.Errorf("got %v", x)
	}
}
