/*
 * atomicdata.go, part of gocage.
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

import "strings"

//The tables in this file are process-wide immutable static data. They are
//initialized once and never written after that; all access goes through the
//lookup functions below, which normalize the case of the symbol.

//A map for assigning mass to elements. Standard atomic weights.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.002,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.098,
	"Ca": 40.078,
	"Sc": 44.956,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.63,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Kr": 83.798,
	"Rb": 85.468,
	"Sr": 87.62,
	"Zr": 91.224,
	"Mo": 95.95,
	"Ru": 101.07,
	"Rh": 102.906,
	"Pd": 106.42,
	"Ag": 107.868,
	"Cd": 112.414,
	"In": 114.818,
	"Sn": 118.710,
	"Sb": 121.760,
	"Te": 127.60,
	"I":  126.904,
	"Xe": 131.293,
	"Cs": 132.905,
	"Ba": 137.327,
	"W":  183.84,
	"Ir": 192.217,
	"Pt": 195.084,
	"Au": 196.967,
	"Hg": 200.592,
	"Pb": 207.2,
	"Rn": 222.018,
}

//A map for assigning van der Waals radii to elements, in Angstroms.
//Values from Bondi (10.1021/j100785a001) with the extensions of
//10.1021/jp8111556; metal radii from 10.1023/A:1011625728803.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"He": 1.40,
	"Li": 1.82,
	"Be": 1.53,
	"B":  1.92,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"Ne": 1.54,
	"Na": 2.27,
	"Mg": 1.73,
	"Al": 1.84,
	"Si": 2.10,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"Ar": 1.88,
	"K":  2.75,
	"Ca": 2.31,
	"Sc": 2.15,
	"Ti": 2.11,
	"V":  2.07,
	"Cr": 1.97,
	"Mn": 1.96,
	"Fe": 1.96,
	"Co": 1.95,
	"Ni": 1.63,
	"Cu": 2.00,
	"Zn": 2.02,
	"Ga": 1.87,
	"Ge": 2.11,
	"As": 1.85,
	"Se": 1.90,
	"Br": 1.85,
	"Kr": 2.02,
	"Rb": 3.03,
	"Sr": 2.49,
	"Zr": 2.23,
	"Mo": 2.17,
	"Ru": 2.13,
	"Rh": 2.10,
	"Pd": 1.63,
	"Ag": 1.72,
	"Cd": 1.58,
	"In": 1.93,
	"Sn": 2.17,
	"Sb": 2.06,
	"Te": 2.06,
	"I":  1.98,
	"Xe": 2.16,
	"Cs": 3.43,
	"Ba": 2.68,
	"W":  2.10,
	"Ir": 2.03,
	"Pt": 1.75,
	"Au": 1.66,
	"Hg": 1.55,
	"Pb": 2.02,
	"Rn": 2.20,
}

//Elements that never act as connectivity hubs when rebuilding molecules:
//they make at most one bond (none, for the noble gases), so they are never
//used to seed a new molecule.
var terminalElements = map[string]bool{
	"H":  true,
	"Cl": true,
	"Br": true,
	"F":  true,
	"He": true,
	"Ar": true,
	"Ne": true,
	"Kr": true,
	"Xe": true,
	"Rn": true,
}

//canonicalSymbol normalizes an element symbol to the capitalization used
//as map key ("cl", "CL" -> "Cl").
func canonicalSymbol(symbol string) string {
	if symbol == "" {
		return symbol
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

//AtomicMass returns the atomic mass of the element with the given symbol.
//The lookup is case-insensitive. An unknown symbol is a fatal lookup error.
func AtomicMass(symbol string) (float64, error) {
	m, ok := symbolMass[canonicalSymbol(symbol)]
	if !ok {
		return 0, errUnknownElement(symbol, "AtomicMass")
	}
	return m, nil
}

//VdwRadius returns the van der Waals radius, in Angstroms, of the element
//with the given symbol. The lookup is case-insensitive. An unknown symbol
//is a fatal lookup error.
func VdwRadius(symbol string) (float64, error) {
	r, ok := symbolVdwrad[canonicalSymbol(symbol)]
	if !ok {
		return 0, errUnknownElement(symbol, "VdwRadius")
	}
	return r, nil
}

//isTerminal reports whether the element never acts as a connectivity hub.
func isTerminal(symbol string) bool {
	return terminalElements[canonicalSymbol(symbol)]
}
