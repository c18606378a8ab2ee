/*
 * tabulate.go, part of gofeff.
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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

//The style mirrors the plain, borderless tables FEFF documents use:
//columns joined by two spaces, a dashed rule under the header, nothing
//else. Section renderers then turn the dashes into the "*" comment
//markers FEFF expects.
var feffTableStyle = table.Style{
	Name: "feff",
	Box: table.BoxStyle{
		MiddleHorizontal: "-",
		MiddleSeparator:  "--",
		MiddleVertical:   "  ",
		PaddingLeft:      "",
		PaddingRight:     "",
	},
	Format: table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: true,
		SeparateFooter:  false,
		SeparateHeader:  true,
		SeparateRows:    false,
	},
}

//tabulate renders rows as a column-aligned text table. headers may be
//nil, in which case only the aligned rows are emitted (the tag block
//uses that form).
func tabulate(headers []string, rows [][]string) string {
	t := table.NewWriter()
	t.SetStyle(feffTableStyle)
	if len(headers) > 0 {
		h := make(table.Row, len(headers))
		for i, v := range headers {
			h[i] = v
		}
		t.AppendHeader(h)
	}
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = v
		}
		t.AppendRow(r)
	}
	return t.Render()
}
