/*
 * rebuild_test.go, part of gocage.
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
	"testing"

	v3 "github.com/mmarkowski/gocage/v3"
)

func TestDiscreteMoleculesNonPeriodic(Te *testing.T) {
	//two separate two-carbon fragments
	coords := v3.NewMatrix([]float64{
		0, 0, 0,
		1.5, 0, 0,
		10, 0, 0,
		11.5, 0, 0,
	})
	set, err := NewAtomSet([]string{"C", "C", "C", "C"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	mols, err := DiscreteMolecules(set, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 {
		Te.Fatalf("expected 2 molecules, got %d", len(mols))
	}
	for _, m := range mols {
		if m.Len() != 2 {
			Te.Errorf("expected 2 atoms per molecule, got %d", m.Len())
		}
	}
}

//Terminal atoms join a molecule but never bridge to further atoms.
func TestDiscreteMoleculesTerminalNoExtend(Te *testing.T) {
	coords := v3.NewMatrix([]float64{
		0, 0, 0, //C, seed
		1.05, 0, 0, //H, bonded to the C
		2.6, 0, 0, //C, within bonding distance of the H only
	})
	set, err := NewAtomSet([]string{"C", "H", "C"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	mols, err := DiscreteMolecules(set, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 {
		Te.Fatalf("expected 2 molecules, got %d", len(mols))
	}
	if mols[0].Len() != 2 || mols[1].Len() != 1 {
		Te.Errorf("expected sizes 2 and 1, got %d and %d", mols[0].Len(), mols[1].Len())
	}
}

//An isolated halide with no heavy partner comes out as a singleton
//instead of being dropped.
func TestDiscreteMoleculesIsolatedTerminal(Te *testing.T) {
	coords := v3.NewMatrix([]float64{
		0, 0, 0,
		1.5, 0, 0,
		8, 8, 8, //lone F
	})
	set, err := NewAtomSet([]string{"C", "C", "F"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	mols, err := DiscreteMolecules(set, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 {
		Te.Fatalf("expected 2 molecules, got %d", len(mols))
	}
	single := mols[1]
	if single.Len() != 1 || single.Elements[0] != "F" {
		Te.Errorf("expected a fluorine singleton, got %d atoms of %v", single.Len(), single.Elements)
	}
}

//A molecule split across a periodic face reconnects through the
//supercell, and its image in the neighbouring cell is screened out.
func TestDiscreteMoleculesPeriodic(Te *testing.T) {
	basis := v3.NewMatrix([]float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	lat, err := NewLattice(basis)
	if err != nil {
		Te.Fatal(err)
	}
	coords := v3.NewMatrix([]float64{
		0.5, 5, 5,
		9.7, 5, 5, //continues across the x face, 0.8 A from the seed's image
	})
	set, err := NewAtomSet([]string{"C", "C"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	sc, err := NewSupercell(set, lat)
	if err != nil {
		Te.Fatal(err)
	}
	mols, err := DiscreteMolecules(set, nil, sc)
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 1 {
		Te.Fatalf("expected 1 rebuilt molecule, got %d", len(mols))
	}
	mol := mols[0]
	if mol.Len() != 2 {
		Te.Fatalf("expected 2 atoms, got %d", mol.Len())
	}
	if d := v3.Dist(mol.Coords.VecView(0), mol.Coords.VecView(1)); d > 2.2 {
		Te.Errorf("molecule was not stitched together, atom distance %f", d)
	}
}

func TestDiscreteMoleculesEmpty(Te *testing.T) {
	if _, err := DiscreteMolecules(nil, nil, nil); err == nil {
		Te.Error("expected an error for a nil system")
	}
}
