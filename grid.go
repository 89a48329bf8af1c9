/*
 * grid.go, part of gocube.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Atom is one atom record of a cube header. ID is kept as found in the file,
// as some programs write atomic numbers there and others element symbols.
type Atom struct {
	ID  string
	Pos r3.Vec
}

// Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	return &Atom{ID: A.ID, Pos: A.Pos}
}

// Grid is a Gaussian cube: a header placing an Nx x Ny x Nz lattice in space, plus one
// scalar per lattice point. Values are stored flat, z index fastest, then y, then x,
// which is the order of the file.
type Grid struct {
	Comments [2]string
	Origin   r3.Vec
	//Axes[d] is the displacement for a unit increment of the index along d.
	//Only Axes[0].X, Axes[1].Y and Axes[2].Z are used for geometry (masks, sampling).
	Axes   [3]r3.Vec
	N      [3]int
	Atoms  []*Atom
	values []float64
}

// NewGrid returns a zero-valued grid with the given header. atoms can be nil.
func NewGrid(origin r3.Vec, axes [3]r3.Vec, n [3]int, atoms []*Atom) (*Grid, error) {
	for d, v := range n {
		if v <= 0 {
			return nil, domainError(fmt.Sprintf("%s: axis %d has %d voxels", BadAxisCount, d, v), "NewGrid")
		}
	}
	g := &Grid{Origin: origin, Axes: axes, N: n, Atoms: atoms}
	if g.Atoms == nil {
		g.Atoms = make([]*Atom, 0)
	}
	g.values = make([]float64, n[0]*n[1]*n[2])
	return g, nil
}

// NAtoms returns the number of atom records in the header.
func (g *Grid) NAtoms() int {
	return len(g.Atoms)
}

// Dims returns the number of voxels along x, y and z.
func (g *Grid) Dims() (int, int, int) {
	return g.N[0], g.N[1], g.N[2]
}

// Len returns the total number of voxels.
func (g *Grid) Len() int {
	return len(g.values)
}

// Start returns the origin. Together with Step, it makes Grid a Framer.
func (g *Grid) Start() r3.Vec {
	return g.Origin
}

// Step returns the axis vector along axis.
func (g *Grid) Step(axis int) r3.Vec {
	return g.Axes[axis]
}

// index returns the position in the flat array for the voxel i,j,k.
// Panics if out of range.
func (g *Grid) index(i, j, k int) int {
	if i < 0 || j < 0 || k < 0 || i >= g.N[0] || j >= g.N[1] || k >= g.N[2] {
		panic(fmt.Sprintf("cube: voxel (%d,%d,%d) out of range for shape %v", i, j, k, g.N))
	}
	return (i*g.N[1]+j)*g.N[2] + k
}

// At returns the value at voxel i,j,k. Panics if out of range.
func (g *Grid) At(i, j, k int) float64 {
	return g.values[g.index(i, j, k)]
}

// Set sets the value at voxel i,j,k to v. Panics if out of range.
func (g *Grid) Set(i, j, k int, v float64) {
	g.values[g.index(i, j, k)] = v
}

// View returns the flat value array, z fastest. It is not a copy.
func (g *Grid) View() []float64 {
	return g.values
}

// Point returns the position of the voxel i,j,k using the full axis vectors.
func (g *Grid) Point(i, j, k int) r3.Vec {
	p := r3.Add(g.Origin, r3.Scale(float64(i), g.Axes[0]))
	p = r3.Add(p, r3.Scale(float64(j), g.Axes[1]))
	return r3.Add(p, r3.Scale(float64(k), g.Axes[2]))
}

// VoxelVolume returns the volume of one voxel, |ax . (ay x az)|, in the grid's units cubed.
func (g *Grid) VoxelVolume() float64 {
	return math.Abs(r3.Dot(g.Axes[0], r3.Cross(g.Axes[1], g.Axes[2])))
}

// Stats returns the smallest, largest and mean voxel value.
func (g *Grid) Stats() (min, max, mean float64) {
	return floats.Min(g.values), floats.Max(g.values), stat.Mean(g.values, nil)
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	r := &Grid{Comments: g.Comments, Origin: g.Origin, Axes: g.Axes, N: g.N}
	r.Atoms = make([]*Atom, len(g.Atoms))
	for i, v := range g.Atoms {
		r.Atoms[i] = v.Copy()
	}
	r.values = make([]float64, len(g.values))
	copy(r.values, g.values)
	return r
}

// diagonal returns the step along each axis as used by the geometric
// routines: the diagonal element of each axis vector.
func diagonal(f Framer) [3]float64 {
	return [3]float64{f.Step(0).X, f.Step(1).Y, f.Step(2).Z}
}
