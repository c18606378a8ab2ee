/*
 * potential_test.go, part of gofeff.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPotIndex(Te *testing.T) {
	idx := PotIndex([]string{"Co2+", "O2-", "O2-"})
	assert.Equal(Te, map[string]int{"Co": 1, "O": 2}, idx)
	//indices follow first encounter, not alphabet
	idx = PotIndex([]string{"O", "Co", "O"})
	assert.Equal(Te, map[string]int{"O": 1, "Co": 2}, idx)
}

func TestPotentialString(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co2+", "O2-", "O2-"})
	P, err := NewPotential(s, "Co")
	require.NoError(Te, err)
	out := P.String()
	lines := strings.Split(out, "\n")
	assert.Equal(Te, "POTENTIALS", lines[0])

	forward, reverse := PotDictFromString(out)
	assert.Equal(Te, "Co", reverse[0]) //absorber row
	assert.Equal(Te, "Co", reverse[1])
	assert.Equal(Te, "O", reverse[2])
	assert.Equal(Te, 2, forward["O"])

	//spot-check the absorber and oxygen rows field by field
	var row0, rowO []string
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 7 {
			continue
		}
		switch fields[0] {
		case "0":
			row0 = fields
		case "2":
			rowO = fields
		}
	}
	require.NotNil(Te, row0)
	assert.Equal(Te, []string{"0", "27", "Co", "-1", "-1", "0.0001", "0"}, row0)
	require.NotNil(Te, rowO)
	assert.Equal(Te, []string{"2", "8", "O", "-1", "-1", "2", "0"}, rowO)
}

func TestPotentialCenterNotFound(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	_, err := NewPotential(s, "Fe")
	require.Error(Te, err)
	assert.True(Te, IsCenterNotFound(err))
}

func TestPotStringFromFile(Te *testing.T) {
	dir := Te.TempDir()
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	P, err := NewPotential(s, "Co")
	require.NoError(Te, err)
	path := filepath.Join(dir, "POTENTIALS")
	require.NoError(Te, P.WriteFile(path))

	section, err := PotStringFromFile(path)
	require.NoError(Te, err)
	lines := strings.Split(section, "\n")
	require.Len(Te, lines, 4) //marker plus one row per potential
	assert.Equal(Te, "POTENTIALS", lines[0])
	forward, reverse := PotDictFromString(section)
	assert.Equal(Te, 1, forward["Co"])
	assert.Equal(Te, 2, forward["O"])
	assert.Equal(Te, "Co", reverse[0])

	other := filepath.Join(dir, "PARAMETERS")
	require.NoError(Te, writeString(other, "SCF  7.0 0"))
	_, err = PotStringFromFile(other)
	require.Error(Te, err)
	assert.True(Te, IsParser(err))
}
