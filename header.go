/*
 * header.go, part of gofeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * gofeff is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package feff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//The first line of every header this library generates. Headers from
//other tools are still readable as raw text, but cannot be parsed back
//into a Structure.
const headerComment = "* This FEFF.inp file generated by gofeff"

//Header builds the HEADER section of a feff.inp file: a TITLE block
//with the comment, source, formula, space group, lattice parameters
//and one commented line per site with its fractional coordinates.
type Header struct {
	struc   *Structure
	source  string
	comment string
}

//NewHeader prepares the header for a structure. source identifies where
//the structure came from (a database id, a file name); comment is free
//text for the first TITLE line, "None Given" if empty. Structures with
//partially occupied sites are rejected.
func NewHeader(struc *Structure, source, comment string) (*Header, error) {
	if struc == nil {
		return nil, newError(ErrGeneral, true, "Supplied a nil Structure")
	}
	if !struc.IsOrdered() {
		return nil, newError(ErrGeneral, true, "Structure with partial occupancies cannot be converted into atomic coordinates!")
	}
	H := new(Header)
	H.struc = struc
	H.source = source
	if comment == "" {
		comment = "None Given"
	}
	H.comment = comment
	return H, nil
}

//Struct returns the structure the header describes.
func (H *Header) Struct() *Structure {
	return H.struc
}

//Source returns the source identifier of the header.
func (H *Header) Source() string {
	return H.source
}

//Comment returns the comment of the header.
func (H *Header) Comment() string {
	return H.comment
}

func join6(width int, vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%*.6f", width, v)
	}
	return strings.Join(parts, " ")
}

//String renders the TITLE block.
func (H *Header) String() string {
	sg, num := H.struc.SpaceGroup()
	a, b, c := H.struc.Lattice().ABC()
	al, be, ga := H.struc.Lattice().Angles()
	lines := []string{
		headerComment,
		"TITLE comment: " + H.comment,
		"TITLE Source:  " + H.source,
		"TITLE Structure Summary:  " + H.struc.Formula(),
		"TITLE Reduced formula:  " + H.struc.ReducedFormula(),
		fmt.Sprintf("TITLE space group: (%s), space number:  (%d)", sg, num),
		"TITLE abc:" + join6(10, a, b, c),
		"TITLE angles:" + join6(10, al, be, ga),
		fmt.Sprintf("TITLE sites: %d", H.struc.Len()),
	}
	for i := 0; i < H.struc.Len(); i++ {
		f := H.struc.Frac(i)
		lines = append(lines, fmt.Sprintf("* %d %s %s", i+1, H.struc.Symbol(i), join6(12, f[0], f[1], f[2])))
	}
	return strings.Join(lines, "\n")
}

//WriteFile writes the header to a HEADER-style file.
func (H *Header) WriteFile(path string) error {
	return writeString(path, H.String())
}

//HeaderStringFromFile extracts the header block from a HEADER or
//feff.inp file (possibly gzip-compressed). Headers generated by this
//library are cut after their site list, using the site count they
//declare; foreign headers are taken as the leading run of comment (*)
//and TITLE lines.
func HeaderStringFromFile(path string) (string, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", newError(ErrParser, true, "Empty file %s", path)
	}
	if strings.Contains(lines[0], "gofeff") {
		if len(lines) < 9 {
			return "", newError(ErrParser, true, "Truncated header in %s", path)
		}
		fields := strings.Fields(lines[8])
		if len(fields) < 3 {
			return "", newError(ErrParser, true, "Malformed sites line in %s", path)
		}
		nsites, err := strconv.Atoi(fields[2])
		if err != nil {
			return "", newError(ErrParser, true, "Malformed site count in %s: %s", path, fields[2])
		}
		end := nsites + 9
		if end > len(lines) {
			end = len(lines)
		}
		return strings.Join(lines[:end], "\n"), nil
	}
	var out []string
	for _, line := range lines {
		if line != "" && (line[0] == '*' || line[0] == 'T') {
			out = append(out, line)
			continue
		}
		break
	}
	if len(out) == 0 {
		return "", newError(ErrParser, true, "No header in %s", path)
	}
	return strings.Join(out, "\n"), nil
}

var parenthesized = regexp.MustCompile(`\(([^)]*)\)`)

func floatsAt(line string, from, n int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < from+n {
		return nil, newError(ErrParser, true, "Short header line: %s", line)
	}
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[from+i], 64)
		if err != nil {
			return nil, newError(ErrParser, true, "Malformed number %q in header line: %s", fields[from+i], line)
		}
		ret[i] = f
	}
	return ret, nil
}

//ParseHeader rebuilds a Header, including its Structure, from the text
//of a header generated by this library. Headers from other tools carry
//too little information to rebuild a structure from and are rejected
//with a parser error.
func ParseHeader(s string) (*Header, error) {
	lines := cleanLines(strings.Split(s, "\n"), true)
	if len(lines) < 9 || !strings.Contains(lines[0], "gofeff") {
		return nil, newError(ErrParser, true, "Header not generated by gofeff, cannot rebuild the structure")
	}
	tail := func(line string) string {
		fields := strings.Fields(line)
		if len(fields) <= 2 {
			return ""
		}
		return strings.Join(fields[2:], " ")
	}
	comment := tail(lines[1])
	source := tail(lines[2])
	var sgSymbol string
	sgNumber := 1
	if m := parenthesized.FindAllStringSubmatch(lines[5], 2); len(m) == 2 {
		sgSymbol = m[0][1]
		if n, err := strconv.Atoi(m[1][1]); err == nil {
			sgNumber = n
		}
	}
	abc, err := floatsAt(lines[6], 2, 3)
	if err != nil {
		return nil, errDecorate(err, "ParseHeader")
	}
	angles, err := floatsAt(lines[7], 2, 3)
	if err != nil {
		return nil, errDecorate(err, "ParseHeader")
	}
	sitesFields := strings.Fields(lines[8])
	if len(sitesFields) < 3 {
		return nil, newError(ErrParser, true, "Malformed sites line: %s", lines[8])
	}
	natoms, err2 := strconv.Atoi(sitesFields[2])
	if err2 != nil {
		return nil, newError(ErrParser, true, "Malformed site count: %s", sitesFields[2])
	}
	if len(lines) < 9+natoms {
		return nil, newError(ErrParser, true, "Header declares %d sites but carries %d", natoms, len(lines)-9)
	}
	symbols := make([]string, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		fields := strings.Fields(lines[9+i])
		if len(fields) < 6 {
			return nil, newError(ErrParser, true, "Short site line: %s", lines[9+i])
		}
		symbols[i] = fields[2]
		c, err := floatsAt(lines[9+i], 3, 3)
		if err != nil {
			return nil, errDecorate(err, "ParseHeader")
		}
		coords = append(coords, c...)
	}
	latt := LatticeFromParameters(abc[0], abc[1], abc[2], angles[0], angles[1], angles[2])
	struc, err2 := NewStructure(latt, symbols, mat.NewDense(natoms, 3, coords), nil)
	if err2 != nil {
		return nil, errDecorate(err2, "ParseHeader")
	}
	if sgSymbol != "" {
		struc.SetSpaceGroup(sgSymbol, sgNumber)
	}
	return NewHeader(struc, source, comment)
}

//HeaderFromFile reads and parses a header generated by this library
//from a HEADER or feff.inp file.
func HeaderFromFile(path string) (*Header, error) {
	s, err := HeaderStringFromFile(path)
	if err != nil {
		return nil, errDecorate(err, "HeaderFromFile")
	}
	return ParseHeader(s)
}
