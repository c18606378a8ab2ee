/*
 * plot.go, part of gofeff.
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
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//RadialPlot draws the growth of the coordination around the absorber:
//for every shell row within radius, the number of atoms enclosed as a
//function of distance. The plot is saved as a PNG with the given file
//name. Useful to eyeball whether a cutoff radius closes a shell or
//cuts through one.
func RadialPlot(A *Atoms, radius float64, filename string) error {
	if A == nil {
		panic(ErrNilData)
	}
	rows := A.shells(radius)
	pts := make(plotter.XYs, len(rows))
	for i, r := range rows {
		pts[i].X = r.distance
		pts[i].Y = float64(r.number + 1)
	}
	p := plot.New()
	p.Title.Text = "Coordination around " + A.central
	p.X.Label.Text = "Distance (Angstrom)"
	p.Y.Label.Text = "Atoms within distance"
	p.X.Min = 0
	p.X.Max = radius
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(s)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
