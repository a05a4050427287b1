/*
 * rebuild.go, part of gocage.
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
	"fmt"
	"math"

	v3 "github.com/mmarkowski/gocage/v3"
)

//Bonding distance windows, in Angstroms. Two atoms closer than bondMin are
//the same atom seen twice (periodic image rounding); the in-cell window
//tops out at bondMax, while the supercell window is slightly larger to
//tolerate the rounding of periodic-image coordinates.
const (
	bondMin       = 0.1
	bondMax       = 2.1
	bondMaxPeriod = 2.2
)

//rebuildArena holds the immutable backing arrays for a reconstruction run.
//Atoms are only ever referred to by index: the primary cell occupies
//[0, nPrimary) and the supercell atoms, if any, [nPrimary, len(elements)).
//Mutable state is confined to the visited bookkeeping slices, so the atom
//data itself can be read concurrently.
type rebuildArena struct {
	elements []string
	ids      []string //empty strings throughout when the input has no atom ids
	coords   *v3.Matrix
	nPrimary int
	//value-equality index: canonical atom key to primary indexes with
	//that key. Used to recognize supercell atoms that duplicate a
	//primary-cell atom.
	byKey map[string][]int

	assigned []bool //true once an atom joined any molecule
	molecule []int  //id of the molecule each assigned atom joined
}

//atomKey builds the value-identity key of an atom: element, atom id and
//coordinates rounded to 8 decimals, enough to absorb the floating-point
//noise of periodic images.
func (a *rebuildArena) atomKey(i int) string {
	return fmt.Sprintf("%s|%s|%.8f|%.8f|%.8f", canonicalSymbol(a.elements[i]), a.ids[i],
		round8(a.coords.At(i, 0)), round8(a.coords.At(i, 1)), round8(a.coords.At(i, 2)))
}

func round8(x float64) float64 {
	return math.Round(x*1e8) / 1e8
}

func newRebuildArena(system *AtomSet, supercell *Supercell) *rebuildArena {
	n := system.Len()
	total := n
	if supercell != nil {
		total += supercell.Len()
	}
	a := &rebuildArena{
		elements: make([]string, 0, total),
		ids:      make([]string, 0, total),
		coords:   v3.Zeros(total),
		nPrimary: n,
		byKey:    make(map[string][]int, n),
		assigned: make([]bool, total),
		molecule: make([]int, total),
	}
	appendSet := func(s *AtomSet, offset int) {
		a.elements = append(a.elements, s.Elements...)
		for i := 0; i < s.Len(); i++ {
			if s.AtomIDs != nil {
				a.ids = append(a.ids, s.AtomIDs[i])
			} else {
				a.ids = append(a.ids, "")
			}
			a.coords.VecView(offset + i).Copy(s.Coords.VecView(i))
		}
	}
	appendSet(system, 0)
	if supercell != nil {
		appendSet(supercell.AtomSet, n)
	}
	for i := 0; i < n; i++ {
		k := a.atomKey(i)
		a.byKey[k] = append(a.byKey[k], i)
	}
	return a
}

//duplicatesPrimary reports whether the supercell atom with arena index sc
//is value-equal to a primary atom that is either still unassigned or a
//member of the molecule currently being grown. Such duplicates must not be
//admitted: the in-cell search already covers them.
func (a *rebuildArena) duplicatesPrimary(sc, currentMol int) bool {
	for _, i := range a.byKey[a.atomKey(sc)] {
		if !a.assigned[i] || a.molecule[i] == currentMol {
			return true
		}
	}
	return false
}

//seedIndex returns the unassigned primary atom nearest the origin whose
//element can act as a connectivity hub, or -1 if only terminal-element
//atoms remain in the pool.
func (a *rebuildArena) seedIndex() int {
	best := -1
	bestDist := math.Inf(1)
	origin := v3.Zeros(1)
	for i := 0; i < a.nPrimary; i++ {
		if a.assigned[i] || isTerminal(a.elements[i]) {
			continue
		}
		if d := v3.Dist(a.coords.VecView(i), origin); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

//DiscreteMolecules decomposes a molecular system into individual discrete
//molecules, stitching together fragments that continue across periodic
//boundaries when a supercell enclosing the system is supplied.
//
//Molecules are grown breadth-first from a heavy-atom seed nearest the
//origin, admitting pool atoms within the bonding window and, when a
//supercell is present, supercell atoms within a slightly larger window
//(this is how a fragment that exits one face of the cell reconnects with
//its periodic continuation). With a non-nil lattice, each rebuilt molecule
//is kept only if its center of mass, in fractional coordinates, falls
//inside the canonical cell boundary; molecules belonging to neighbouring
//images are discarded. Atoms of terminal elements with no heavy-atom
//partner become singleton molecules.
func DiscreteMolecules(system *AtomSet, lattice *Lattice, supercell *Supercell) ([]*AtomSet, error) {
	if system == nil || system.Len() == 0 {
		return nil, errMalformed("empty atom set")
	}
	if supercell != nil && lattice == nil {
		lattice = supercell.Lattice
	}
	var boundary [2]float64
	if lattice != nil {
		//Usually the cell spans [0,1) in fractional coordinates, but
		//trajectory conventions often center the cell at the origin,
		//which calls for [-0.5,0.5). We pick between the two by
		//checking whether the center of mass of the whole system is
		//near the origin. This is a heuristic, not a rigorous
		//periodic-image rule; it is preserved as documented behavior.
		com, err := system.CenterOfMass()
		if err != nil {
			return nil, errDecorate(err, "DiscreteMolecules")
		}
		boundary = [2]float64{0, 1}
		if math.Abs(com.At(0, 0)) <= 1.0 && math.Abs(com.At(0, 1)) <= 1.0 && math.Abs(com.At(0, 2)) <= 1.0 {
			boundary = [2]float64{-0.5, 0.5}
		}
	}
	arena := newRebuildArena(system, supercell)
	var molecules []*AtomSet
	molID := 0
	for {
		seed := arena.seedIndex()
		if seed < 0 {
			break
		}
		molID++
		members := arena.grow(seed, molID, supercell != nil)
		mol, keep, err := arena.emit(members, lattice, boundary)
		if err != nil {
			return nil, errDecorate(err, "DiscreteMolecules")
		}
		if keep {
			molecules = append(molecules, mol)
		}
	}
	//Whatever remains in the pool is terminal-element atoms with no heavy
	//partner (isolated halides and the like); each becomes a singleton.
	//The pool strictly shrinks every iteration, so this always terminates.
	for i := 0; i < arena.nPrimary; i++ {
		if arena.assigned[i] {
			continue
		}
		molID++
		arena.assigned[i] = true
		arena.molecule[i] = molID
		mol, keep, err := arena.emit([]int{i}, lattice, boundary)
		if err != nil {
			return nil, errDecorate(err, "DiscreteMolecules")
		}
		if keep {
			molecules = append(molecules, mol)
		}
	}
	return molecules, nil
}

//grow runs the breadth-first expansion from seed and returns the arena
//indexes of the molecule's members, in discovery order.
func (a *rebuildArena) grow(seed, molID int, periodic bool) []int {
	members := make([]int, 0, 32)
	frontier := []int{seed}
	a.assigned[seed] = true
	a.molecule[seed] = molID
	for len(frontier) > 0 {
		var next []int
		admit := func(j int) {
			a.assigned[j] = true
			a.molecule[j] = molID
			next = append(next, j)
		}
		for _, i := range frontier {
			members = append(members, i)
			if isTerminal(a.elements[i]) {
				//terminal atoms join molecules but never extend them
				continue
			}
			vi := a.coords.VecView(i)
			for j := 0; j < a.nPrimary; j++ {
				if a.assigned[j] {
					continue
				}
				d := v3.Dist(vi, a.coords.VecView(j))
				if d > bondMin && d < bondMax {
					admit(j)
				}
			}
			if !periodic {
				continue
			}
			for j := a.nPrimary; j < len(a.elements); j++ {
				if a.assigned[j] {
					continue
				}
				d := v3.Dist(vi, a.coords.VecView(j))
				if d > bondMin && d <= bondMaxPeriod && !a.duplicatesPrimary(j, molID) {
					admit(j)
				}
			}
		}
		frontier = next
	}
	return members
}

//emit builds an AtomSet from the member indexes and, when a lattice is
//present, screens its center of mass against the canonical fractional
//boundary. Returns the molecule and whether it belongs to the reference
//cell.
func (a *rebuildArena) emit(members []int, lattice *Lattice, boundary [2]float64) (*AtomSet, bool, error) {
	elements := make([]string, len(members))
	coords := v3.Zeros(len(members))
	var ids []string
	hasIDs := false
	for _, m := range members {
		if a.ids[m] != "" {
			hasIDs = true
			break
		}
	}
	if hasIDs {
		ids = make([]string, len(members))
	}
	for k, m := range members {
		elements[k] = a.elements[m]
		coords.VecView(k).Copy(a.coords.VecView(m))
		if hasIDs {
			ids[k] = a.ids[m]
		}
	}
	mol, err := NewAtomSet(elements, coords, ids)
	if err != nil {
		return nil, false, errDecorate(err, "emit")
	}
	if lattice == nil {
		return mol, true, nil
	}
	com, err := mol.CenterOfMass()
	if err != nil {
		return nil, false, errDecorate(err, "emit")
	}
	frac := lattice.FractionalFromCartesian(com)
	for j := 0; j < 3; j++ {
		//Without the rounding, numerical noise puts borderline
		//molecules on the wrong side of the cell.
		f := round8(frac.At(0, j))
		if f < boundary[0] || f >= boundary[1] {
			return mol, false, nil
		}
	}
	return mol, true, nil
}
