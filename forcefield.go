/*
 * forcefield.go, part of gocage.
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
	"strings"
	"unicode"
)

//Structures produced by forcefield-based tools often carry atom keys
//instead of element symbols. This file deciphers such keys back into
//elements, for the forcefield notations the library understands.

//oplsAtomKeys maps an element symbol to the OPLS atom keys that denote it.
//The table is immutable static data.
var oplsAtomKeys = map[string][]string{
	"C":  {"ct", "ca", "cm", "cz", "c!", "c:", "c", "c2", "c3", "cb"},
	"H":  {"hc", "ha", "ho", "hn", "hs", "h1", "h4", "h5"},
	"N":  {"nt", "nc", "nb", "n", "n2", "n3", "nz"},
	"O":  {"oh", "os", "o", "on", "o2"},
	"S":  {"sh", "s", "sz"},
	"P":  {"p"},
	"F":  {"f"},
	"Cl": {"cl"},
	"Br": {"br"},
	"I":  {"i"},
	"Si": {"si"},
	"B":  {"b"},
	"Zn": {"zn"},
	"Pd": {"pd"},
}

//Some OPLS keys overlap with element symbols of different elements; these
//cannot be deciphered without user intervention (e.g. "na" is an OPLS
//aromatic nitrogen but also sodium).
var oplsConflicts = []string{"ne", "he", "na"}

//dlfNotation returns the element for an atom key in DL_F notation, where
//the key is the element symbol followed by a numeric type tag.
func dlfNotation(atomKey string) (string, error) {
	var element strings.Builder
	for _, r := range atomKey {
		if unicode.IsDigit(r) {
			break
		}
		element.WriteRune(r)
	}
	if element.Len() == 0 {
		return "", CError{msg: fmt.Sprintf("DL_F atom key %q carries no element", atomKey), deco: []string{"dlfNotation"}}
	}
	return element.String(), nil
}

//oplsNotation returns the element for an OPLS forcefield atom key.
func oplsNotation(atomKey string) (string, error) {
	for _, conflict := range oplsConflicts {
		if atomKey == conflict {
			return "", CError{msg: fmt.Sprintf("OPLS atom key %q conflicts with an element symbol and cannot be deciphered", atomKey), deco: []string{"oplsNotation"}}
		}
	}
	for element, keys := range oplsAtomKeys {
		for _, k := range keys {
			if atomKey == k {
				return element, nil
			}
		}
	}
	return "", CError{msg: fmt.Sprintf("OPLS atom key %q not found in the OPLS keys dictionary", atomKey), deco: []string{"oplsNotation"}}
}

//DecipherAtomKey returns the element corresponding to a forcefield atom
//key. Supported forcefields are DLF/DL_F and the OPLS family (OPLS,
//OPLSAA, OPLS2005, OPLS3). An unsupported forcefield, or a key missing
//from the forcefield's dictionary, is a fatal error for the record.
func DecipherAtomKey(atomKey, forcefield string) (string, error) {
	switch strings.ToUpper(forcefield) {
	case "DLF", "DL_F":
		return dlfNotation(atomKey)
	case "OPLS", "OPLSAA", "OPLS2005", "OPLS3":
		return oplsNotation(atomKey)
	}
	return "", CError{msg: fmt.Sprintf("forcefield %q is not supported", forcefield), deco: []string{"DecipherAtomKey"}}
}
