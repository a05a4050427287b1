/*
 * json_test.go, part of gocage.
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

package cagejson

import (
	"bytes"
	"testing"

	cage "github.com/mmarkowski/gocage"
	v3 "github.com/mmarkowski/gocage/v3"
)

func testSet(Te *testing.T) *cage.AtomSet {
	Te.Helper()
	coords := v3.NewMatrix([]float64{0, 0, 0, 1.5, 0, 0, 0, 1.5, 0})
	set, err := cage.NewAtomSet([]string{"C", "O", "N"}, coords, []string{"C1", "O1", "N1"})
	if err != nil {
		Te.Fatal(err)
	}
	return set
}

func TestMoleculeRoundTrip(Te *testing.T) {
	set := testSet(Te)
	back, err := FromAtomSet(set).AtomSet()
	if err != nil {
		Te.Fatal(err)
	}
	if back.Len() != set.Len() {
		Te.Fatalf("lost atoms: %d vs %d", back.Len(), set.Len())
	}
	for i := range set.Elements {
		if back.Elements[i] != set.Elements[i] || back.AtomIDs[i] != set.AtomIDs[i] {
			Te.Errorf("atom %d changed identity", i)
		}
		if v3.Dist(back.Coords.VecView(i), set.Coords.VecView(i)) > 1e-12 {
			Te.Errorf("atom %d moved", i)
		}
	}
}

func TestMoleculeMisaligned(Te *testing.T) {
	mol := &Molecule{Elements: []string{"C", "O"}, Coords: []float64{0, 0, 0}}
	if _, err := mol.AtomSet(); err == nil {
		Te.Error("expected an error for misaligned coordinates")
	}
}

func TestReportRoundTrip(Te *testing.T) {
	set := testSet(Te)
	analysis := &Analysis{VoidDiameter: 3.2, OptVoidDiameter: 3.5, VoidCenter: []float64{0.1, 0, 0}}
	analysis.Windows(&cage.Result{
		Diameters: []float64{4.1, 3.9},
		Centers:   v3.NewMatrix([]float64{0, 0, 5, 0, 0, -5}),
	})
	report := &Report{Molecule: FromAtomSet(set), Analysis: analysis}
	var buf bytes.Buffer
	if jerr := report.Send(&buf); jerr != nil {
		Te.Fatal(jerr)
	}
	back, jerr := RecoverReport(&buf)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if back.Analysis == nil || len(back.Analysis.WindowDiameters) != 2 {
		Te.Fatalf("analysis did not survive: %+v", back.Analysis)
	}
	if back.Analysis.WindowDiameters[0] != 4.1 || back.Analysis.WindowCenters[1][2] != -5 {
		Te.Error("window data changed in transit")
	}
	if back.Analysis.OptVoidDiameter != 3.5 {
		Te.Errorf("void data changed in transit: %f", back.Analysis.OptVoidDiameter)
	}
}

func TestCompressedRoundTrip(Te *testing.T) {
	set := testSet(Te)
	report := &Report{Molecule: FromAtomSet(set)}
	var buf bytes.Buffer
	w, err := NewWriter(&buf, true)
	if err != nil {
		Te.Fatal(err)
	}
	if jerr := report.Send(w); jerr != nil {
		Te.Fatal(jerr)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	r, err := NewReader(&buf, true)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	back, jerr := RecoverReport(r)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if len(back.Molecule.Elements) != 3 {
		Te.Errorf("molecule did not survive compression: %+v", back.Molecule)
	}
}

func TestWindowsNilResult(Te *testing.T) {
	a := new(Analysis)
	a.Windows(nil)
	if a.WindowDiameters != nil || a.WindowCenters != nil {
		Te.Error("a nil result must leave the analysis empty")
	}
}
