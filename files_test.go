/*
 * files_test.go, part of gofeff.
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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGz(Te *testing.T, path, content string) {
	Te.Helper()
	f, err := os.Create(path)
	require.NoError(Te, err)
	defer f.Close()
	gz := gzip.NewWriter(f)
	_, err = io.WriteString(gz, content)
	require.NoError(Te, err)
	require.NoError(Te, gz.Close())
}

func TestReadLinesPlainAndGzip(Te *testing.T) {
	dir := Te.TempDir()
	content := "SCF  7.0 0\r\nCONTROL  1 1 1 1 1 1\n"

	plain := filepath.Join(dir, "feff.inp")
	require.NoError(Te, os.WriteFile(plain, []byte(content), 0644))
	lines, err := readLines(plain)
	require.NoError(Te, err)
	require.Len(Te, lines, 2)
	assert.Equal(Te, "SCF  7.0 0", lines[0]) //the \r is stripped

	zipped := filepath.Join(dir, "feff.inp.gz")
	writeGz(Te, zipped, content)
	zlines, err := readLines(zipped)
	require.NoError(Te, err)
	assert.Equal(Te, lines, zlines)
}

func TestTagsFromGzipFile(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "PARAMETERS.gz")
	writeGz(Te, path, sampleInput)
	fromFile, err := TagsFromFile(path)
	require.NoError(Te, err)
	fromString, err := TagsFromString(sampleInput)
	require.NoError(Te, err)
	d := fromString.Diff(fromFile)
	assert.Empty(Te, d.Different)
	assert.Len(Te, d.Same, fromString.Len())
}

func TestSectionsFromGzipFile(Te *testing.T) {
	dir := Te.TempDir()
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	A, err := NewAtoms(s, "Co")
	require.NoError(Te, err)
	P, err := NewPotential(s, "Co")
	require.NoError(Te, err)
	path := filepath.Join(dir, "feff.inp.gz")
	writeGz(Te, path, A.String()+"\n"+P.String()+"\n")

	atoms, err := AtomsStringFromFile(path)
	require.NoError(Te, err)
	assert.Len(Te, dataRows(atoms), 3)

	pot, err := PotStringFromFile(path)
	require.NoError(Te, err)
	forward, _ := PotDictFromString(pot)
	assert.Equal(Te, 2, forward["O"])
}

func TestCleanLines(Te *testing.T) {
	in := []string{"  SCF 7.0  ", "", "   ", "END"}
	assert.Equal(Te, []string{"SCF 7.0", "END"}, cleanLines(in, true))
	assert.Equal(Te, []string{"SCF 7.0", "", "", "END"}, cleanLines(in, false))
}
