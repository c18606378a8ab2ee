/*
 * potential.go, part of gofeff.
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
	"sort"
	"strconv"
	"strings"
)

//PotIndex assigns a potential index to each distinct species in
//symbols, in first-encounter order, starting from 1. Index 0 is
//reserved for the absorbing atom. Oxidation decorations are stripped
//before indexing, so the mapping is shared consistently between the
//ATOMS and POTENTIALS sections.
func PotIndex(symbols []string) map[string]int {
	ret := make(map[string]int)
	next := 1
	for _, s := range symbols {
		el := cleanSymbol(s)
		if _, ok := ret[el]; !ok {
			ret[el] = next
			next++
		}
	}
	return ret
}

//Potential builds the POTENTIALS section of a feff.inp file: one row
//per distinct scattering potential, with atomic number and
//stoichiometry. The lmax and spin columns are reserved by FEFF and
//always written as -1 and 0.
type Potential struct {
	struc    *Structure
	central  string
	potIndex map[string]int
}

//NewPotential prepares the POTENTIALS section for the given structure
//and absorbing species. Same preconditions as NewAtoms.
func NewPotential(struc *Structure, centralAtom string) (*Potential, error) {
	if struc == nil {
		return nil, newError(ErrGeneral, true, "Supplied a nil Structure")
	}
	if !struc.IsOrdered() {
		return nil, newError(ErrGeneral, true, "Structure with partial occupancies cannot be converted into atomic coordinates!")
	}
	P := new(Potential)
	P.struc = struc
	P.central = strings.TrimSpace(centralAtom)
	found := false
	for i := 0; i < struc.Len(); i++ {
		if cleanSymbol(struc.Symbol(i)) == P.central {
			found = true
			break
		}
	}
	if !found {
		return nil, newError(ErrCenterNotFound, true, "Central atom %s not found in the structure", P.central)
	}
	P.potIndex = PotIndex(struc.Species())
	return P, nil
}

//Central returns the absorbing species symbol.
func (P *Potential) Central() string {
	return P.central
}

//PotIndex returns a copy of the species-to-potential-index mapping.
func (P *Potential) PotIndex() map[string]int {
	ret := make(map[string]int, len(P.potIndex))
	for k, v := range P.potIndex {
		ret[k] = v
	}
	return ret
}

//String renders the POTENTIALS section. The absorber always comes
//first with index 0 and a token stoichiometry; then every element of
//the composition with its shared index, sorted by index.
func (P *Potential) String() string {
	order, amounts := P.struc.Composition()
	type potRow struct {
		ipot  int
		z     int
		sym   string
		stoic string
	}
	rows := make([]potRow, 0, len(order)+1)
	rows = append(rows, potRow{ipot: 0, z: AtomicNumber(P.central), sym: P.central, stoic: "0.0001"})
	for _, el := range order {
		rows = append(rows, potRow{
			ipot:  P.potIndex[el],
			z:     AtomicNumber(el),
			sym:   el,
			stoic: strconv.FormatFloat(amounts[el], 'g', -1, 64),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ipot < rows[j].ipot })
	srows := make([][]string, len(rows))
	for i, r := range rows {
		srows[i] = []string{
			strconv.Itoa(r.ipot),
			strconv.Itoa(r.z),
			r.sym,
			"-1",
			"-1",
			r.stoic,
			"0",
		}
	}
	tbl := tabulate([]string{"*ipot", "Z", "tag", "lmax1", "lmax2", "xnatph(stoichiometry)", "spinph"}, srows)
	tbl = strings.ReplaceAll(tbl, "--", "**")
	return "POTENTIALS\n" + tbl
}

//WriteFile writes the section to a POTENTIALS-style file.
func (P *Potential) WriteFile(path string) error {
	return writeString(path, P.String())
}

//PotStringFromFile extracts the POTENTIALS section from a feff.inp or
//POTENTIALS file (possibly gzip-compressed). Data rows are recognized
//by their leading potential index, which must count up from 0; the
//section ends at the first line that breaks the count.
func PotStringFromFile(path string) (string, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	out := []string{"POTENTIALS"}
	in := false
	want := 0
	for _, line := range lines {
		if !in {
			if strings.Contains(line, "POTENTIALS") {
				in = true
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil && n == want {
				out = append(out, line)
				want++
				continue
			}
		}
		if want > 0 {
			break
		}
	}
	if !in {
		return "", newError(ErrParser, true, "No POTENTIALS section in %s", path)
	}
	return strings.Join(out, "\n"), nil
}

//PotDictFromString parses a POTENTIALS section and returns the
//species-to-index and index-to-species mappings. Lines that do not look
//like data rows are skipped; data starts at the row with index 0.
func PotDictFromString(data string) (map[string]int, map[int]string) {
	forward := make(map[string]int)
	reverse := make(map[int]string)
	begun := false
	for _, line := range strings.Split(data, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if !begun {
			if fields[0] == "0" {
				begun = true
			} else {
				continue
			}
		}
		index, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		forward[fields[2]] = index
		reverse[index] = fields[2]
	}
	return forward, reverse
}
