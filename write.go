/*
 * write.go, part of gocube.
 *
 *
 * Copyright 2026 The gocube Authors
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
 */

package cube

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Comment lines used when a grid has none of its own.
const (
	DefaultComment1 = "CUBE file"
	DefaultComment2 = "written by gocube"
)

// ValuesPerLine is the number of voxel values written per line within a z-run.
const ValuesPerLine = 6

// FileWrite writes g to the file name, which is created or truncated. A .gz or .zst
// suffix compresses the output. The file is closed on every path.
func FileWrite(name string, g *Grid) (err error) {
	if g == nil {
		return domainError(NilGrid, "FileWrite")
	}
	w, err := CreateCompressed(name)
	if err != nil {
		return errDecorate(err, "FileWrite")
	}
	defer func() {
		//If the write went fine, a failure to close (i.e. to flush) is still a failure.
		if cerr := w.Close(); cerr != nil && err == nil {
			err = ioError(cerr, name, "FileWrite")
		}
	}()
	if err = g.write(w, name); err != nil {
		return errDecorate(err, "FileWrite")
	}
	return nil
}

// Write writes the grid to w in cube format. Header numbers get 6 decimals,
// values 5 significant digits in exponential notation, 6 per line, and each
// z-run (fixed x and y) ends its own line.
func (g *Grid) Write(w io.Writer) error {
	return g.write(w, "")
}

func (g *Grid) write(w io.Writer, filename string) error {
	if g.N[0] <= 0 || g.N[1] <= 0 || g.N[2] <= 0 || len(g.values) != g.N[0]*g.N[1]*g.N[2] {
		return domainError(fmt.Sprintf("%s: %d values for a %v grid", ShapeMismatch, len(g.values), g.N), "Write")
	}
	out := bufio.NewWriter(w)
	c1, c2 := g.Comments[0], g.Comments[1]
	if strings.TrimSpace(c1) == "" && strings.TrimSpace(c2) == "" {
		c1, c2 = DefaultComment1, DefaultComment2
	}
	//a newline in a comment would shift the whole header.
	c1 = strings.ReplaceAll(c1, "\n", " ")
	c2 = strings.ReplaceAll(c2, "\n", " ")
	fmt.Fprintf(out, "%s\n%s\n", c1, c2)
	fmt.Fprintf(out, "%4d %.6f %.6f %.6f\n", len(g.Atoms), g.Origin.X, g.Origin.Y, g.Origin.Z)
	for d, a := range g.Axes {
		fmt.Fprintf(out, "%4d %.6f %.6f %.6f\n", g.N[d], a.X, a.Y, a.Z)
	}
	for _, a := range g.Atoms {
		fmt.Fprintf(out, "%s %d %.6f %.6f %.6f\n", a.ID, 0, a.Pos.X, a.Pos.Y, a.Pos.Z)
	}
	p := 0
	for ix := 0; ix < g.N[0]; ix++ {
		for iy := 0; iy < g.N[1]; iy++ {
			for iz := 0; iz < g.N[2]; iz++ {
				fmt.Fprintf(out, "%.5e ", g.values[p])
				p++
				if iz%ValuesPerLine == ValuesPerLine-1 {
					out.WriteByte('\n')
				}
			}
			out.WriteByte('\n')
		}
	}
	//bufio.Writer keeps the first error, so it's enough to check here.
	if err := out.Flush(); err != nil {
		return ioError(err, filename, "Write")
	}
	return nil
}
