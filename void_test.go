/*
 * void_test.go, part of gocage.
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

	v3 "github.com/mmarkowski/gocage/v3"
)

//octahedron returns six identical atoms at +-r on each axis.
func octahedron(element string, r float64) (*AtomSet, error) {
	coords := v3.NewMatrix([]float64{
		r, 0, 0, -r, 0, 0,
		0, r, 0, 0, -r, 0,
		0, 0, r, 0, 0, -r,
	})
	elements := []string{element, element, element, element, element, element}
	return NewAtomSet(elements, coords)
}

func TestVoidDiameter(Te *testing.T) {
	set, err := octahedron("H", 4)
	if err != nil {
		Te.Fatal(err)
	}
	hRad, _ := VdwRadius("H")
	want := 2 * (4 - hRad)
	d, _, err := VoidDiameter(set, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-want) > 1e-10 {
		Te.Errorf("expected %f, got %f", want, d)
	}
	//off-center probes see a smaller void
	off := v3.NewMatrix([]float64{1, 0, 0})
	dOff, limiting, err := VoidDiameter(set, off)
	if err != nil {
		Te.Fatal(err)
	}
	if dOff >= d {
		Te.Errorf("off-center diameter %f not smaller than centered %f", dOff, d)
	}
	if limiting != 0 {
		Te.Errorf("limiting atom should be the +x one, got %d", limiting)
	}
}

func TestOptVoidDiameter(Te *testing.T) {
	set, err := octahedron("H", 4)
	if err != nil {
		Te.Fatal(err)
	}
	hRad, _ := VdwRadius("H")
	want := 2 * (4 - hRad)
	d, _, center, err := OptVoidDiameter(set)
	if err != nil {
		Te.Fatal(err)
	}
	//the center of a symmetric octahedron is already optimal
	if d < want-1e-3 || d > want+1e-9 {
		Te.Errorf("expected about %f, got %f", want, d)
	}
	if center.Norm(2) > 0.1 {
		Te.Errorf("optimized center drifted to (%f, %f, %f)",
			center.At(0, 0), center.At(0, 1), center.At(0, 2))
	}
}

//Widening the search box can only help: the void diameter is
//non-negative here and non-decreasing as the box grows, and once the box
//reaches the widest spot it stops improving.
func TestOptVoidDiameterWideningBounds(Te *testing.T) {
	//the asymmetric cage below is widest at (2, 0, 0), while the center
	//of mass sits at x = 1.5
	coords := v3.NewMatrix([]float64{
		6, 0, 0, -2, 0, 0,
		2, 4, 0, 2, -4, 0,
		2, 0, 4, 2, 0, -4,
		0, 4, 0, 0, -4, 0,
	})
	set, err := NewAtomSet([]string{"H", "H", "H", "H", "H", "H", "H", "H"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	com, err := set.CenterOfMass()
	if err != nil {
		Te.Fatal(err)
	}
	hRad, _ := VdwRadius("H")
	widest := 2 * (4 - hRad)
	prev := 0.0
	for _, half := range []float64{0.1, 0.25, 0.5, 1, 4} {
		var box [3][2]float64
		for j := 0; j < 3; j++ {
			box[j][0] = com.At(0, j) - half
			box[j][1] = com.At(0, j) + half
		}
		d, _, _, err := OptVoidDiameter(set, box)
		if err != nil {
			Te.Fatal(err)
		}
		if d < 0 {
			Te.Errorf("box half-width %f: negative diameter %f", half, d)
		}
		if d < prev-1e-6 {
			Te.Errorf("box half-width %f: diameter %f below the tighter box's %f", half, d, prev)
		}
		prev = d
	}
	//the last box contains the widest spot
	if math.Abs(prev-widest) > 1e-2 {
		Te.Errorf("widest box: expected about %f, got %f", widest, prev)
	}
}

//The optimizer must climb towards a wider spot when seeded off the
//optimum, and must respect the search box.
func TestOptVoidDiameterClimbs(Te *testing.T) {
	//a cage centered at x = 2 plus two extra atoms at x = 0, which pull
	//the center of mass off the widest spot
	coords := v3.NewMatrix([]float64{
		6, 0, 0, -2, 0, 0,
		2, 4, 0, 2, -4, 0,
		2, 0, 4, 2, 0, -4,
		0, 4, 0, 0, -4, 0,
	})
	set, err := NewAtomSet([]string{"H", "H", "H", "H", "H", "H", "H", "H"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	atCom, _, err := VoidDiameter(set, nil)
	if err != nil {
		Te.Fatal(err)
	}
	opt, _, center, err := OptVoidDiameter(set)
	if err != nil {
		Te.Fatal(err)
	}
	if opt <= atCom {
		Te.Errorf("optimized diameter %f did not improve on the seed value %f", opt, atCom)
	}
	//x = 2 is the widest spot of this arrangement
	if math.Abs(center.At(0, 0)-2) > 0.2 {
		Te.Errorf("optimized center x: expected about 2, got %f", center.At(0, 0))
	}
}
