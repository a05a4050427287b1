/*
 * atoms.go, part of gocage.
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

//AtomSet holds a molecular structure as parallel sequences: one element
//symbol and one cartesian coordinate row per atom, plus, optionally, one
//forcefield atom key per atom. The invariant, enforced by NewAtomSet, is
//that all present sequences share length and index alignment.
type AtomSet struct {
	Elements []string
	//AtomIDs are forcefield-specific atom labels. They are optional;
	//a nil slice means the structure carries no atom keys.
	AtomIDs []string
	Coords  *v3.Matrix
}

//NewAtomSet builds an AtomSet after validating that the parallel slices
//align. An empty structure, or any length mismatch, is a fatal input error.
func NewAtomSet(elements []string, coords *v3.Matrix, atomIDs ...[]string) (*AtomSet, error) {
	if len(elements) == 0 || coords == nil {
		return nil, errMalformed("empty atom set")
	}
	if coords.NVecs() != len(elements) {
		return nil, errMalformed("%d elements but %d coordinate rows", len(elements), coords.NVecs())
	}
	ret := &AtomSet{Elements: elements, Coords: coords}
	if len(atomIDs) > 0 && atomIDs[0] != nil {
		if len(atomIDs[0]) != len(elements) {
			return nil, errMalformed("%d elements but %d atom ids", len(elements), len(atomIDs[0]))
		}
		ret.AtomIDs = atomIDs[0]
	}
	return ret, nil
}

//Len returns the number of atoms in the set.
func (A *AtomSet) Len() int {
	return len(A.Elements)
}

//Copy returns a deep copy of the set.
func (A *AtomSet) Copy() *AtomSet {
	elements := make([]string, len(A.Elements))
	copy(elements, A.Elements)
	coords := v3.Zeros(A.Coords.NVecs())
	coords.Copy(A.Coords)
	ret := &AtomSet{Elements: elements, Coords: coords}
	if A.AtomIDs != nil {
		ids := make([]string, len(A.AtomIDs))
		copy(ids, A.AtomIDs)
		ret.AtomIDs = ids
	}
	return ret
}

//MolecularWeight returns the sum of the atomic masses of the set.
func (A *AtomSet) MolecularWeight() (float64, error) {
	var total float64
	for _, symbol := range A.Elements {
		m, err := AtomicMass(symbol)
		if err != nil {
			return 0, errDecorate(err, "MolecularWeight")
		}
		total += m
	}
	return total, nil
}

//CenterOfCoords returns the geometric center of the set, ignoring masses.
func (A *AtomSet) CenterOfCoords() *v3.Matrix {
	center := v3.Zeros(1)
	n := A.Coords.NVecs()
	for i := 0; i < n; i++ {
		center.Add(center, A.Coords.VecView(i))
	}
	center.Scale(1.0/float64(n), center)
	return center
}

//CenterOfMass returns the mass-weighted center of the set.
func (A *AtomSet) CenterOfMass() (*v3.Matrix, error) {
	com := v3.Zeros(1)
	tmp := v3.Zeros(1)
	var total float64
	for i, symbol := range A.Elements {
		m, err := AtomicMass(symbol)
		if err != nil {
			return nil, errDecorate(err, "CenterOfMass")
		}
		tmp.Scale(m, A.Coords.VecView(i))
		com.Add(com, tmp)
		total += m
	}
	com.Scale(1.0/total, com)
	return com, nil
}

//VdwRadii returns the per-atom van der Waals radii of the set, index
//aligned with Elements.
func (A *AtomSet) VdwRadii() ([]float64, error) {
	radii := make([]float64, len(A.Elements))
	for i, symbol := range A.Elements {
		r, err := VdwRadius(symbol)
		if err != nil {
			return nil, errDecorate(err, "VdwRadii")
		}
		radii[i] = r
	}
	return radii, nil
}

//MaxDimension returns the maximum van-der-Waals-inflated pairwise distance
//in the set, together with the indexes of the two atoms that realize it.
//This is the largest span of the molecule, used to size the sampling
//sphere for window detection. Self-pairs count, so a single atom spans
//its own van der Waals diameter.
func (A *AtomSet) MaxDimension() (int, int, float64, error) {
	radii, err := A.VdwRadii()
	if err != nil {
		return 0, 0, 0, errDecorate(err, "MaxDimension")
	}
	var i1, i2 int
	var maxdim float64
	n := A.Len()
	for i := 0; i < n; i++ {
		vi := A.Coords.VecView(i)
		for j := i; j < n; j++ {
			d := v3.Dist(vi, A.Coords.VecView(j)) + radii[i] + radii[j]
			if d > maxdim {
				maxdim = d
				i1, i2 = i, j
			}
		}
	}
	return i1, i2, maxdim, nil
}

//Shifted returns a copy of the set translated so that its center of mass,
//minus the given adjustment, sits at the origin. A nil adjust translates
//the plain center of mass to the origin.
func (A *AtomSet) Shifted(adjust *v3.Matrix) (*AtomSet, error) {
	com, err := A.CenterOfMass()
	if err != nil {
		return nil, errDecorate(err, "Shifted")
	}
	if adjust != nil {
		com.Sub(com, adjust)
	}
	ret := A.Copy()
	ret.Coords.SubVec(ret.Coords, com)
	return ret, nil
}
