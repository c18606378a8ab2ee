/*
 * structure.go, part of gofeff.
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
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Lattice holds the three lattice vectors of a periodic structure,
//one vector per row of a 3x3 matrix, in Angstrom.
type Lattice struct {
	vecs *mat.Dense
}

//NewLattice builds a Lattice from a 3x3 matrix with one lattice vector
//per row.
func NewLattice(vecs *mat.Dense) (*Lattice, error) {
	if vecs == nil {
		return nil, newError(ErrGeneral, true, "Supplied a nil lattice matrix")
	}
	r, c := vecs.Dims()
	if r != 3 || c != 3 {
		return nil, newError(ErrGeneral, true, "Lattice matrix must be 3x3, got %dx%d", r, c)
	}
	l := new(Lattice)
	l.vecs = mat.DenseCopyOf(vecs)
	return l, nil
}

//LatticeFromParameters builds a Lattice from the cell lengths (Angstrom)
//and angles (degrees), using the standard crystallographic convention:
//a along x, b in the xy plane.
func LatticeFromParameters(a, b, c, alpha, beta, gamma float64) *Lattice {
	ar := deg2Rad(alpha)
	br := deg2Rad(beta)
	gr := deg2Rad(gamma)
	cx := c * math.Cos(br)
	cy := c * (math.Cos(ar) - math.Cos(br)*math.Cos(gr)) / math.Sin(gr)
	cz := math.Sqrt(c*c - cx*cx - cy*cy)
	data := []float64{
		a, 0, 0,
		b * math.Cos(gr), b * math.Sin(gr), 0,
		cx, cy, cz,
	}
	return &Lattice{vecs: mat.NewDense(3, 3, data)}
}

//Vectors returns a copy of the lattice vectors, one per row.
func (L *Lattice) Vectors() *mat.Dense {
	return mat.DenseCopyOf(L.vecs)
}

//ABC returns the lengths of the three lattice vectors.
func (L *Lattice) ABC() (float64, float64, float64) {
	n := func(i int) float64 { return floats.Norm(L.vecs.RawRowView(i), 2) }
	return n(0), n(1), n(2)
}

//Angles returns the cell angles alpha, beta and gamma, in degrees.
//Alpha is the angle between the b and c vectors, beta between a and c,
//gamma between a and b.
func (L *Lattice) Angles() (float64, float64, float64) {
	ang := func(i, j int) float64 {
		vi := L.vecs.RawRowView(i)
		vj := L.vecs.RawRowView(j)
		cos := floats.Dot(vi, vj) / (floats.Norm(vi, 2) * floats.Norm(vj, 2))
		return rad2Deg(math.Acos(cos))
	}
	return ang(1, 2), ang(0, 2), ang(0, 1)
}

func deg2Rad(f float64) float64 { return f * math.Pi / 180 }

func rad2Deg(f float64) float64 { return f * 180 / math.Pi }

//Neighbor is a site found within some radius of a point, as returned by
//Structure.SitesInSphere.
type Neighbor struct {
	Index    int
	Distance float64
}

//Structure is the fixed-shape structural input this library consumes.
//It carries a lattice, an ordered list of sites (species string plus
//fractional and cartesian coordinates), per-site occupancies, and the
//space group metadata computed by an external symmetry engine. A
//Structure is read-only once built.
type Structure struct {
	latt        *Lattice
	symbols     []string
	frac        *mat.Dense
	cart        *mat.Dense
	occup       []float64
	spaceGroup  string
	spaceNumber int
}

//NewStructure builds a Structure from a lattice, one species string per
//site and the fractional coordinates of the sites (one row each).
//occupancies may be nil, meaning every site is fully occupied. The
//space group defaults to P1/1 until SetSpaceGroup is called.
func NewStructure(latt *Lattice, symbols []string, frac *mat.Dense, occupancies []float64) (*Structure, error) {
	if latt == nil {
		return nil, newError(ErrGeneral, true, "Supplied a nil Lattice")
	}
	if frac == nil {
		return nil, newError(ErrGeneral, true, "Supplied nil coordinates")
	}
	r, c := frac.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	if len(symbols) != r {
		return nil, newError(ErrGeneral, true, "Mismatched sites: %d symbols, %d coordinate rows", len(symbols), r)
	}
	if occupancies != nil && len(occupancies) != r {
		return nil, newError(ErrGeneral, true, "Mismatched sites: %d symbols, %d occupancies", len(symbols), len(occupancies))
	}
	s := new(Structure)
	s.latt = latt
	s.symbols = make([]string, r)
	for i, sym := range symbols {
		s.symbols[i] = strings.TrimSpace(sym)
	}
	s.frac = mat.DenseCopyOf(frac)
	s.cart = mat.NewDense(r, 3, nil)
	s.cart.Mul(s.frac, latt.vecs)
	if occupancies != nil {
		s.occup = make([]float64, r)
		copy(s.occup, occupancies)
	}
	s.spaceGroup = "P1"
	s.spaceNumber = 1
	return s, nil
}

//SetSpaceGroup records the space group symbol and number for the
//structure. Symmetry detection itself is up to the caller.
func (S *Structure) SetSpaceGroup(symbol string, number int) {
	S.spaceGroup = symbol
	S.spaceNumber = number
}

//SpaceGroup returns the space group symbol and number of the structure.
func (S *Structure) SpaceGroup() (string, int) {
	return S.spaceGroup, S.spaceNumber
}

//Lattice returns the lattice of the structure.
func (S *Structure) Lattice() *Lattice {
	return S.latt
}

//Len returns the number of sites in the structure.
func (S *Structure) Len() int {
	return len(S.symbols)
}

//Symbol returns the species string of site i, as supplied. It may carry
//an oxidation decoration (e.g. "O2-"). Panics if out of range.
func (S *Structure) Symbol(i int) string {
	if i < 0 || i >= S.Len() {
		panic(ErrIndexOutOfRange)
	}
	return S.symbols[i]
}

//Species returns a copy of the species strings of all sites, in order.
func (S *Structure) Species() []string {
	ret := make([]string, len(S.symbols))
	copy(ret, S.symbols)
	return ret
}

//Cart returns the cartesian coordinates of site i. Panics if out of range.
func (S *Structure) Cart(i int) []float64 {
	if i < 0 || i >= S.Len() {
		panic(ErrIndexOutOfRange)
	}
	ret := make([]float64, 3)
	copy(ret, S.cart.RawRowView(i))
	return ret
}

//Frac returns the fractional coordinates of site i. Panics if out of range.
func (S *Structure) Frac(i int) []float64 {
	if i < 0 || i >= S.Len() {
		panic(ErrIndexOutOfRange)
	}
	ret := make([]float64, 3)
	copy(ret, S.frac.RawRowView(i))
	return ret
}

//IsOrdered returns whether every site of the structure is fully
//occupied. Sections of a FEFF input can only be generated from ordered
//structures.
func (S *Structure) IsOrdered() bool {
	for _, o := range S.occup {
		if o != 1 {
			return false
		}
	}
	return true
}

//SitesInSphere returns every site whose distance from the point p is
//smaller than or equal to r (the cutoff is inclusive), together with
//that distance. Sites at equal distances keep their original relative
//order, so the returned order is reproducible.
func (S *Structure) SitesInSphere(p []float64, r float64) []Neighbor {
	if len(p) != 3 {
		panic(ErrNotXx3Matrix)
	}
	ret := make([]Neighbor, 0, S.Len())
	for i := 0; i < S.Len(); i++ {
		d := floats.Distance(S.cart.RawRowView(i), p, 2)
		if d <= r {
			ret = append(ret, Neighbor{Index: i, Distance: d})
		}
	}
	return ret
}

//nonAlpha matches everything that is not a letter. Species strings can
//carry oxidation decorations ("Fe3+", "O2-") that must not reach the
//FEFF tables.
var nonAlpha = regexp.MustCompile("[^a-zA-Z]+")

//cleanSymbol strips any non-alphabetic decoration from a species string.
func cleanSymbol(symbol string) string {
	return nonAlpha.ReplaceAllString(symbol, "")
}

//Composition returns the distinct elements of the structure in
//first-encounter order, and the (occupancy-weighted) amount of each.
//Oxidation decorations are stripped, so "Fe2+" and "Fe3+" sites count
//as the same element.
func (S *Structure) Composition() ([]string, map[string]float64) {
	order := make([]string, 0, 4)
	amounts := make(map[string]float64)
	for i, sym := range S.symbols {
		el := cleanSymbol(sym)
		if _, ok := amounts[el]; !ok {
			order = append(order, el)
		}
		occ := 1.0
		if S.occup != nil {
			occ = S.occup[i]
		}
		amounts[el] += occ
	}
	return order, amounts
}

//Formula returns the composition as a space-delimited formula in
//first-encounter order, e.g. "Co2 O2".
func (S *Structure) Formula() string {
	order, amounts := S.Composition()
	parts := make([]string, 0, len(order))
	for _, el := range order {
		parts = append(parts, fmt.Sprintf("%s%s", el, formatAmount(amounts[el])))
	}
	return strings.Join(parts, " ")
}

//ReducedFormula returns the formula with integer amounts divided by
//their greatest common divisor and unit amounts omitted, e.g. "CoO".
//If any amount is not integral the plain amounts are used.
func (S *Structure) ReducedFormula() string {
	order, amounts := S.Composition()
	ints := make([]int, len(order))
	integral := true
	for i, el := range order {
		a := amounts[el]
		if a != math.Trunc(a) {
			integral = false
			break
		}
		ints[i] = int(a)
	}
	var b strings.Builder
	if !integral {
		for _, el := range order {
			fmt.Fprintf(&b, "%s%s", el, formatAmount(amounts[el]))
		}
		return b.String()
	}
	div := 0
	for _, n := range ints {
		div = gcd(div, n)
	}
	if div == 0 {
		div = 1
	}
	for i, el := range order {
		n := ints[i] / div
		if n == 1 {
			b.WriteString(el)
		} else {
			fmt.Fprintf(&b, "%s%d", el, n)
		}
	}
	return b.String()
}

func formatAmount(a float64) string {
	if a == math.Trunc(a) {
		return fmt.Sprintf("%d", int(a))
	}
	return fmt.Sprintf("%g", a)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
