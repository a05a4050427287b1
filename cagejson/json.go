/*
 * json.go, part of gocage.
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

//Package cagejson serializes structures and analysis results so an
//external program, or a later run, can pick them up. Reports can be
//written plain or zstd-compressed.
package cagejson

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"

	cage "github.com/mmarkowski/gocage"
	v3 "github.com/mmarkowski/gocage/v3"
)

//An easily JSON-serializable error type.
type Error struct {
	deco     []string
	IsError  bool //false means all other fields are zero-valued
	Function string
	Message  string
}

//Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

//Decorate adds dec to the error's decoration slice and returns the
//resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

func jsonError(function string, err error) *Error {
	return &Error{IsError: true, Function: function, Message: err.Error()}
}

//A ready-to-serialize container for one structure.
type Molecule struct {
	Elements []string
	AtomIDs  []string  `json:",omitempty"`
	Coords   []float64 //flat, xyz per atom
}

//FromAtomSet packs a structure for serialization.
func FromAtomSet(set *cage.AtomSet) *Molecule {
	n := set.Len()
	mol := &Molecule{
		Elements: make([]string, n),
		Coords:   make([]float64, 0, 3*n),
	}
	copy(mol.Elements, set.Elements)
	if set.AtomIDs != nil {
		mol.AtomIDs = make([]string, n)
		copy(mol.AtomIDs, set.AtomIDs)
	}
	for i := 0; i < n; i++ {
		mol.Coords = append(mol.Coords, set.Coords.At(i, 0), set.Coords.At(i, 1), set.Coords.At(i, 2))
	}
	return mol
}

//AtomSet unpacks a serialized structure.
func (M *Molecule) AtomSet() (*cage.AtomSet, error) {
	if len(M.Coords) != 3*len(M.Elements) {
		return nil, &Error{IsError: true, Function: "Molecule.AtomSet",
			Message: "coordinates not aligned with elements"}
	}
	coords := v3.NewMatrix(M.Coords)
	if M.AtomIDs != nil {
		return cage.NewAtomSet(M.Elements, coords, M.AtomIDs)
	}
	return cage.NewAtomSet(M.Elements, coords)
}

//An Analysis holds the numbers from a void/window run on one structure.
type Analysis struct {
	VoidDiameter    float64     `json:",omitempty"`
	OptVoidDiameter float64     `json:",omitempty"`
	VoidCenter      []float64   `json:",omitempty"`
	WindowDiameters []float64   `json:",omitempty"`
	WindowCenters   [][]float64 `json:",omitempty"`
}

//Windows fills the window fields from a detection result. A nil result
//(no windows) leaves them empty.
func (A *Analysis) Windows(result *cage.Result) {
	if result == nil {
		return
	}
	A.WindowDiameters = append([]float64{}, result.Diameters...)
	if result.Centers == nil {
		return
	}
	for i := 0; i < result.Centers.NVecs(); i++ {
		A.WindowCenters = append(A.WindowCenters, []float64{
			result.Centers.At(i, 0), result.Centers.At(i, 1), result.Centers.At(i, 2)})
	}
}

//A Report ties a structure to its analysis. Several reports in sequence
//form a valid JSON stream.
type Report struct {
	Molecule *Molecule
	Analysis *Analysis `json:",omitempty"`
}

//Send encodes the report into out.
func (R *Report) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return jsonError("Report.Send", err)
	}
	return nil
}

//RecoverReport decodes one report from in.
func RecoverReport(in io.Reader) (*Report, *Error) {
	rep := new(Report)
	dec := json.NewDecoder(in)
	if err := dec.Decode(rep); err != nil {
		return nil, jsonError("RecoverReport", err)
	}
	return rep, nil
}

//NewWriter wraps w for report writing, zstd-compressing when compress
//is true. The returned writer must be closed to flush.
func NewWriter(w io.Writer, compress bool) (io.WriteCloser, error) {
	if compress {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopCloser{w}, nil
}

//NewReader wraps r for report reading, decompressing when compressed is
//true.
func NewReader(r io.Reader, compressed bool) (io.ReadCloser, error) {
	if compressed {
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return &decoderCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//zstd.Decoder.Close returns nothing, so it misses io.ReadCloser.
type decoderCloser struct {
	*zstd.Decoder
}

func (d *decoderCloser) Close() error {
	d.Decoder.Close()
	return nil
}
