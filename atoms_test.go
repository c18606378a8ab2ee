/*
 * atoms_test.go, part of gofeff.
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
 */

package feff

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//dataRows picks, out of a rendered table, the lines whose first field
//parses as a float: the shell rows, leaving out markers, the header and
//the separator.
func dataRows(s string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 7 {
			continue
		}
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			continue
		}
		rows = append(rows, fields)
	}
	return rows
}

func TestAtomsTable(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co2+", "O2-", "O2-"})
	A, err := NewAtoms(s, "Co")
	require.NoError(Te, err)
	assert.Equal(Te, "Co", A.Central())
	assert.Equal(Te, 0, A.CenterIndex())

	out := A.TableString(2.5)
	lines := strings.Split(out, "\n")
	assert.Equal(Te, "ATOMS", lines[0])
	assert.Contains(Te, out, "END")
	rows := dataRows(out)
	require.Len(Te, rows, 3)
	//columns are x y z ipot Atom Distance Number
	assert.Equal(Te, "0", rows[0][3]) //the absorber row always gets index 0
	assert.Equal(Te, "Co", rows[0][4])
	assert.Equal(Te, "0.000000", rows[0][5])
	assert.Equal(Te, "1.000000", rows[1][5])
	assert.Equal(Te, "2.000000", rows[2][5])
	oPot := strconv.Itoa(A.PotIndex()["O"])
	assert.Equal(Te, oPot, rows[1][3])
	assert.Equal(Te, oPot, rows[2][3])
	for i, r := range rows {
		assert.Equal(Te, strconv.Itoa(i), r[6])
	}
}

func TestAtomsRadius(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	A, err := NewAtoms(s, "Co")
	require.NoError(Te, err)
	assert.Len(Te, dataRows(A.TableString(1.5)), 2)
	//the cutoff is inclusive
	assert.Len(Te, dataRows(A.TableString(2.0)), 3)
	assert.Len(Te, dataRows(A.String()), 3)
}

func TestAtomsCenterNotFound(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	_, err := NewAtoms(s, "Ni")
	require.Error(Te, err)
	assert.True(Te, IsCenterNotFound(err))
}

func TestAtomsDisordered(Te *testing.T) {
	latt := LatticeFromParameters(10, 10, 10, 90, 90, 90)
	frac := mat.NewDense(2, 3, []float64{0, 0, 0, 0.5, 0.5, 0.5})
	s, err := NewStructure(latt, []string{"Co", "O"}, frac, []float64{1.0, 0.5})
	require.NoError(Te, err)
	_, err = NewAtoms(s, "Co")
	assert.Error(Te, err)
}

func TestAtomsStringFromFile(Te *testing.T) {
	dir := Te.TempDir()
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	A, err := NewAtoms(s, "Co")
	require.NoError(Te, err)
	path := filepath.Join(dir, "ATOMS")
	require.NoError(Te, A.WriteFile(path))

	section, err := AtomsStringFromFile(path)
	require.NoError(Te, err)
	lines := strings.Split(section, "\n")
	assert.Equal(Te, "ATOMS", strings.TrimSpace(lines[0]))
	assert.Equal(Te, "END", strings.TrimSpace(lines[len(lines)-1]))
	assert.Len(Te, dataRows(section), 3)

	//a file with no ATOMS marker is a parse error
	other := filepath.Join(dir, "PARAMETERS")
	require.NoError(Te, writeString(other, "SCF  7.0 0"))
	_, err = AtomsStringFromFile(other)
	require.Error(Te, err)
	assert.True(Te, IsParser(err))
}
