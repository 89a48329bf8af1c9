/*
 * surface.go, part of gocube.
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

package msms

import (
	"fmt"
	"log"
	"math"

	cube "github.com/mddavis/gocube"
)

// SurfacePotential returns the value of the grid g, interpolated at the position of each
// vertex. The grid is placed in Angstrom (see cube.ToAngstrom), as MSMS coordinates are.
// Vertices outside the grid get NaN. It is an error if no vertex falls inside.
func SurfacePotential(g *cube.Grid, verts []Vertex) ([]float64, error) {
	if g == nil {
		return nil, newError(ErrNilGrid, "", "", nil, "SurfacePotential")
	}
	if len(verts) == 0 {
		return nil, newError(ErrEmptySurface, "", "", nil, "SurfacePotential")
	}
	S, err := cube.NewSampler(g, g.Frame())
	if err != nil {
		return nil, errDecorate(err, "SurfacePotential")
	}
	ret := make([]float64, len(verts))
	outside := 0
	for i, v := range verts {
		ret[i], err = S.Trilinear(v.Pos)
		if err != nil {
			ret[i] = math.NaN()
			outside++
		}
	}
	if outside == len(verts) {
		return nil, newError(ErrNoneInside, "", fmt.Sprintf("%d vertices", len(verts)), nil, "SurfacePotential")
	}
	if outside > 0 {
		log.Printf("msms: %d of %d vertices outside the grid", outside, len(verts))
	}
	return ret, nil
}
