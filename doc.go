/*
 * doc.go, part of gofeff.
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
 * gofeff is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package feff generates and parses the main sections of a FEFF input file
(feff.inp): the HEADER block, the ATOMS list of atomic shell coordinates,
the POTENTIALS table and the program control tags.


	**gofeff Capabilities**

    Builds the HEADER section from a crystal structure, with lattice
	parameters, space group information and per-site fractional
	coordinates, and reads it back from a feff.inp or HEADER file.

    Builds the ATOMS section: every site within a cutoff radius of the
	absorbing atom, recentered on the absorber, ordered by distance,
	with a potential index assigned per chemical species. The absorber
	always gets potential index 0 and the first row.

    Builds the POTENTIALS section with atomic number and stoichiometry
	per distinct species, consistent with the indexes used in ATOMS.

    Reads and writes the control tag block (SCF, EXCHANGE, XANES and
	friends), converting values to integers, floats or lists, with
	support for the count*value repetition shorthand. Tag sets can be
	compared (diff) and combined (merge, with conflict detection).

    Reads sections transparently from gzip-compressed files.

    Plots the radial growth of the coordination shells around the
	absorber (uses the gonum plot library).

Coordinates are kept in gonum Dense matrices with one row per site, the
same convention the goChem library uses for its coordinate sets.

The tag block is deliberately forgiving: values that fail numeric parsing
are kept as plain text instead of producing an error, so that legacy,
loosely formatted input files can still be read and written back.*/
package feff
