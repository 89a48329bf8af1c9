/*
 * conversion.go, part of gocube.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions
const (
	BohrToAngstrom = 0.529177
	AngstromToBohr = 1 / BohrToAngstrom
)

// Frame is the coordinate frame of a grid (origin and axis vectors) in Angstrom,
// plus the length of each axis vector, which is the physical voxel spacing.
type Frame struct {
	Origin    r3.Vec
	Axes      [3]r3.Vec
	Steps     [3]float64
	Converted bool //true if the grid was taken to be in Bohr and was converted.
}

// Start returns the origin of the frame.
func (f Frame) Start() r3.Vec { return f.Origin }

// Step returns the axis vector along axis.
func (f Frame) Step(axis int) r3.Vec { return f.Axes[axis] }

// ToAngstrom returns the frame of g in Angstrom. A grid whose x-axis vector
// has a positive x component is taken to be in Bohr: the origin and the three axis vectors are scaled by
// BohrToAngstrom and every component rounded to 6 decimals. Otherwise the frame
// is returned as it is. The voxel values are never touched.
// Note that the sign test is only a heuristic.
func ToAngstrom(g Framer) Frame {
	f := Frame{Origin: g.Start()}
	for d := range f.Axes {
		f.Axes[d] = g.Step(d)
	}
	if f.Axes[0].X > 0 {
		f.Converted = true
		f.Origin = bohr2Angstrom(f.Origin)
		for d, v := range f.Axes {
			f.Axes[d] = bohr2Angstrom(v)
		}
	}
	for d, v := range f.Axes {
		f.Steps[d] = r3.Norm(v)
	}
	return f
}

// Frame returns ToAngstrom(g).
func (g *Grid) Frame() Frame {
	return ToAngstrom(g)
}

func bohr2Angstrom(v r3.Vec) r3.Vec {
	return r3.Vec{X: round6(BohrToAngstrom * v.X), Y: round6(BohrToAngstrom * v.Y), Z: round6(BohrToAngstrom * v.Z)}
}

// round6 rounds to 6 decimals, halves to even.
func round6(x float64) float64 {
	return math.RoundToEven(x*1e6) / 1e6
}
