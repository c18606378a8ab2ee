/*
 * structure_test.go, part of gofeff.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//cubicStructure returns a 3-site structure in a cubic a=10 cell: Co at
//the origin, O at 0.1 and 0.2 along x. The fractional steps of 0.1 keep
//the cartesian distances exactly 1.0 and 2.0.
func cubicStructure(Te *testing.T, symbols []string) *Structure {
	Te.Helper()
	latt := LatticeFromParameters(10, 10, 10, 90, 90, 90)
	frac := mat.NewDense(3, 3, []float64{
		0.0, 0.0, 0.0,
		0.1, 0.0, 0.0,
		0.2, 0.0, 0.0,
	})
	s, err := NewStructure(latt, symbols, frac, nil)
	require.NoError(Te, err)
	return s
}

func TestLatticeFromParameters(Te *testing.T) {
	latt := LatticeFromParameters(4.5, 5.5, 6.5, 75.0, 85.0, 95.0)
	a, b, c := latt.ABC()
	assert.InDelta(Te, 4.5, a, 1e-9)
	assert.InDelta(Te, 5.5, b, 1e-9)
	assert.InDelta(Te, 6.5, c, 1e-9)
	al, be, ga := latt.Angles()
	assert.InDelta(Te, 75.0, al, 1e-9)
	assert.InDelta(Te, 85.0, be, 1e-9)
	assert.InDelta(Te, 95.0, ga, 1e-9)
}

func TestNewLatticeShape(Te *testing.T) {
	_, err := NewLattice(mat.NewDense(2, 3, nil))
	assert.Error(Te, err)
	_, err = NewLattice(nil)
	assert.Error(Te, err)
	l, err := NewLattice(mat.NewDense(3, 3, []float64{3, 0, 0, 0, 3, 0, 0, 0, 3}))
	require.NoError(Te, err)
	a, b, c := l.ABC()
	assert.Equal(Te, 3.0, a)
	assert.Equal(Te, 3.0, b)
	assert.Equal(Te, 3.0, c)
}

func TestStructureBasics(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	assert.Equal(Te, 3, s.Len())
	assert.Equal(Te, "Co", s.Symbol(0))
	assert.Equal(Te, []float64{1.0, 0.0, 0.0}, s.Cart(1))
	assert.Equal(Te, []float64{0.1, 0.0, 0.0}, s.Frac(1))
	sym, num := s.SpaceGroup()
	assert.Equal(Te, "P1", sym)
	assert.Equal(Te, 1, num)
	s.SetSpaceGroup("Fm-3m", 225)
	sym, num = s.SpaceGroup()
	assert.Equal(Te, "Fm-3m", sym)
	assert.Equal(Te, 225, num)
	assert.Panics(Te, func() { s.Symbol(3) })
}

func TestStructureMismatchedSites(Te *testing.T) {
	latt := LatticeFromParameters(10, 10, 10, 90, 90, 90)
	frac := mat.NewDense(2, 3, []float64{0, 0, 0, 0.5, 0.5, 0.5})
	_, err := NewStructure(latt, []string{"Co"}, frac, nil)
	assert.Error(Te, err)
	_, err = NewStructure(latt, []string{"Co", "O"}, frac, []float64{1.0})
	assert.Error(Te, err)
}

func TestIsOrdered(Te *testing.T) {
	latt := LatticeFromParameters(10, 10, 10, 90, 90, 90)
	frac := mat.NewDense(2, 3, []float64{0, 0, 0, 0.5, 0.5, 0.5})
	s, err := NewStructure(latt, []string{"Co", "O"}, frac, []float64{1.0, 0.5})
	require.NoError(Te, err)
	assert.False(Te, s.IsOrdered())
	s, err = NewStructure(latt, []string{"Co", "O"}, frac, nil)
	require.NoError(Te, err)
	assert.True(Te, s.IsOrdered())
}

func TestSitesInSphere(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co", "O", "O"})
	origin := []float64{0, 0, 0}
	//the cutoff is inclusive: the site at exactly 1.0 is in
	n := s.SitesInSphere(origin, 1.0)
	require.Len(Te, n, 2)
	assert.Equal(Te, 0, n[0].Index)
	assert.Equal(Te, 1, n[1].Index)
	assert.Equal(Te, 1.0, n[1].Distance)
	n = s.SitesInSphere(origin, 0.99)
	assert.Len(Te, n, 1)
	n = s.SitesInSphere(origin, 5.0)
	require.Len(Te, n, 3)
	assert.Equal(Te, 2.0, n[2].Distance)
}

func TestComposition(Te *testing.T) {
	s := cubicStructure(Te, []string{"Co2+", "O2-", "O2-"})
	order, amounts := s.Composition()
	assert.Equal(Te, []string{"Co", "O"}, order)
	assert.Equal(Te, 1.0, amounts["Co"])
	assert.Equal(Te, 2.0, amounts["O"])
	assert.Equal(Te, "Co1 O2", s.Formula())
	assert.Equal(Te, "CoO2", s.ReducedFormula())
}

func TestReducedFormulaGCD(Te *testing.T) {
	latt := LatticeFromParameters(10, 10, 10, 90, 90, 90)
	frac := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		0.5, 0, 0,
		0, 0.5, 0,
		0.5, 0.5, 0,
	})
	s, err := NewStructure(latt, []string{"Co", "O", "Co", "O"}, frac, nil)
	require.NoError(Te, err)
	assert.Equal(Te, "Co2 O2", s.Formula())
	assert.Equal(Te, "CoO", s.ReducedFormula())
}
