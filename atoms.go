/*
 * atoms.go, part of gofeff.
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
	"sort"
	"strconv"
	"strings"
)

//DefaultShellRadius is the cutoff used when no radius is given, in
//Angstrom.
const DefaultShellRadius = 10.0

//shellRow is one line of the ATOMS table: a site recentered on the
//absorber, with its potential index, distance and final sequence
//number. Rows are rebuilt from the structure on every render, never
//mutated in place.
type shellRow struct {
	x, y, z  float64
	ipot     int
	symbol   string
	distance float64
	number   int
}

//Atoms builds the ATOMS section of a feff.inp file: the atomic shells
//around the absorbing atom, as expanding spheres.
type Atoms struct {
	struc    *Structure
	central  string
	center   int
	potIndex map[string]int
}

//NewAtoms prepares the ATOMS section for the given structure and
//absorbing species. The absorber is the first site of that species. It
//fails if the species is absent, or if the structure has partially
//occupied sites.
func NewAtoms(struc *Structure, centralAtom string) (*Atoms, error) {
	if struc == nil {
		return nil, newError(ErrGeneral, true, "Supplied a nil Structure")
	}
	if !struc.IsOrdered() {
		return nil, newError(ErrGeneral, true, "Structure with partial occupancies cannot be converted into atomic coordinates!")
	}
	A := new(Atoms)
	A.struc = struc
	A.central = strings.TrimSpace(centralAtom)
	A.center = -1
	for i := 0; i < struc.Len(); i++ {
		if cleanSymbol(struc.Symbol(i)) == A.central {
			A.center = i
			break
		}
	}
	if A.center < 0 {
		return nil, newError(ErrCenterNotFound, true, "Central atom %s not found in the structure", A.central)
	}
	A.potIndex = PotIndex(struc.Species())
	return A, nil
}

//Central returns the absorbing species symbol.
func (A *Atoms) Central() string {
	return A.central
}

//CenterIndex returns the index, in the structure, of the site used as
//the absorber.
func (A *Atoms) CenterIndex() int {
	return A.center
}

//PotIndex returns a copy of the species-to-potential-index mapping the
//section uses. Note that in the rendered table the absorber row always
//carries index 0 instead of its species' index here.
func (A *Atoms) PotIndex() map[string]int {
	ret := make(map[string]int, len(A.potIndex))
	for k, v := range A.potIndex {
		ret[k] = v
	}
	return ret
}

//shells computes the shell rows within radius of the absorber: every
//selected site recentered on it, ordered by distance (sites at the same
//distance keep the structure's order), renumbered 0..N-1, absorber
//first with potential index forced to 0.
func (A *Atoms) shells(radius float64) []shellRow {
	pt := A.struc.Cart(A.center)
	sphere := A.struc.SitesInSphere(pt, radius)
	rows := make([]shellRow, 0, len(sphere))
	for _, n := range sphere {
		c := A.struc.Cart(n.Index)
		sym := cleanSymbol(A.struc.Symbol(n.Index))
		rows = append(rows, shellRow{
			x:        c[0] - pt[0],
			y:        c[1] - pt[1],
			z:        c[2] - pt[2],
			ipot:     A.potIndex[sym],
			symbol:   sym,
			distance: n.Distance,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].distance < rows[j].distance })
	//Row 0 is the absorber itself (distance 0); it always takes
	//potential index 0 whatever its species' index is.
	if len(rows) > 0 {
		rows[0].ipot = 0
	}
	for i := range rows {
		rows[i].number = i
	}
	return rows
}

//TableString renders the ATOMS section with every site within radius of
//the absorber, bracketed by the ATOMS and END marker lines. Columns are
//x y z ipot Atom Distance Number, coordinates and distances with six
//decimals.
func (A *Atoms) TableString(radius float64) string {
	rows := A.shells(radius)
	srows := make([][]string, len(rows))
	for i, r := range rows {
		srows[i] = []string{
			fmt.Sprintf("%f", r.x),
			fmt.Sprintf("%f", r.y),
			fmt.Sprintf("%f", r.z),
			strconv.Itoa(r.ipot),
			r.symbol,
			fmt.Sprintf("%f", r.distance),
			strconv.Itoa(r.number),
		}
	}
	tbl := tabulate([]string{"*       x", "y", "z", "ipot", "Atom", "Distance", "Number"}, srows)
	tbl = strings.ReplaceAll(tbl, "--", "**")
	return "ATOMS\n" + tbl + "\nEND\n"
}

//String renders the section with the default shell radius.
func (A *Atoms) String() string {
	return A.TableString(DefaultShellRadius)
}

//WriteFile writes the section to an ATOMS-style file.
func (A *Atoms) WriteFile(path string) error {
	return writeString(path, A.String())
}

//AtomsStringFromFile extracts the ATOMS section from a feff.inp or
//ATOMS file (possibly gzip-compressed): everything from the ATOMS
//marker line through the END marker, or through the end of the file if
//no END is found.
func AtomsStringFromFile(path string) (string, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	var out []string
	in := false
	for _, line := range lines {
		if !in {
			if strings.Contains(line, "ATOMS") {
				in = true
				out = append(out, line)
			}
			continue
		}
		out = append(out, line)
		if strings.HasPrefix(strings.TrimSpace(line), "END") {
			break
		}
	}
	if !in {
		return "", newError(ErrParser, true, "No ATOMS section in %s", path)
	}
	return strings.Join(out, "\n"), nil
}
