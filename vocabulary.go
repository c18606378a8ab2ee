/*
 * vocabulary.go, part of gofeff.
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

//Non-exhaustive set of valid feff.inp tags. The vocabulary is advisory:
//tags outside it are stored with a warning, not rejected, since FEFF
//versions keep adding keywords.
var validFeffTags = map[string]bool{
	"CONTROL": true, "PRINT": true, "ATOMS": true, "POTENTIALS": true,
	"RECIPROCAL": true, "REAL": true, "MARKER": true, "LATTICE": true,
	"TITLE": true, "RMULTIPLIER": true, "SGROUP": true, "COORDINATES": true,
	"EQUIVALENCE": true, "CIF": true, "CGRID": true, "CFAVERAGE": true,
	"OVERLAP": true, "EXAFS": true, "XANES": true, "ELNES": true,
	"EXELFS": true, "LDOS": true, "ELLIPTICITY": true, "MULTIPOLE": true,
	"POLARIZATION": true, "RHOZZP": true, "DANES": true, "FPRIME": true,
	"NRIXS": true, "XES": true, "XNCD": true, "XMCD": true,
	"XNCDCONTROL": true, "END": true, "KMESH": true, "EGRID": true,
	"DIMS": true, "AFOLP": true, "EDGE": true, "COMPTON": true,
	"MDFF": true, "HOLE": true, "COREHOLE": true, "S02": true,
	"CHBROAD": true, "EXCHANGE": true, "FOLP": true, "NOHOLE": true,
	"RGRID": true, "SCF": true, "UNFREEZEF": true, "CHSHIFT": true,
	"DEBYE": true, "INTERSTITIAL": true, "CHWIDTH": true, "EGAP": true,
	"EPS0": true, "EXTPOT": true, "ION": true, "JUMPRM": true,
	"EXPOT": true, "SPIN": true, "LJMAX": true, "LDEC": true,
	"MPSE": true, "PLASMON": true, "RPHASES": true, "RSIGMA": true,
	"PMBSE": true, "TDLDA": true, "FMS": true, "DEBYA": true,
	"OPCONS": true, "PREP": true, "RESTART": true, "SCREEN": true,
	"SETE": true, "STRFACTORS": true, "BANDSTRUCTURE": true, "RPATH": true,
	"NLEG": true, "PCRITERIA": true, "SYMMETRY": true, "SS": true,
	"CRITERIA": true, "IORDER": true, "NSTAR": true, "ABSOLUTE": true,
	"CORRECTIONS": true, "SIG2": true, "SIG3": true, "MBCONV": true,
	"SFCONV": true, "RCONV": true, "SELF": true, "SFSE": true,
	"MAGIC": true,
}

//Tag classes for value conversion. Every recognized tag is list-capable,
//so in practice the list class takes precedence; the remaining classes
//only matter for tags a caller classifies outside the vocabulary. The
//evaluation order in Coerce (list, boolean, float, integer) must not be
//changed, so that documents written by other FEFF tooling survive a
//read/write cycle unchanged.

//Reserved. FEFF has no boolean tags at the moment.
var booleanTypeTags = map[string]bool{}

var floatTypeTags = map[string]bool{
	"SCF": true, "EXCHANGE": true, "S02": true, "FMS": true,
	"XANES": true, "EXAFS": true, "RPATH": true, "LDOS": true,
}

var intTypeTags = map[string]bool{
	"PRINT": true, "CONTROL": true,
}

//ValidTag returns whether name (trimmed, upper-cased) belongs to the
//recognized FEFF tag vocabulary.
func ValidTag(name string) bool {
	return validFeffTags[normalizeTag(name)]
}
