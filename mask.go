/*
 * mask.go, part of gocube.
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
)

// Mask flags a subset of the voxels of a grid. Same layout as Grid.
type Mask struct {
	n [3]int
	m []bool
}

// NewMask returns an empty (all false) mask with n[0] x n[1] x n[2] voxels.
func NewMask(n [3]int) *Mask {
	return &Mask{n: n, m: make([]bool, n[0]*n[1]*n[2])}
}

// Dims returns the shape of the mask.
func (M *Mask) Dims() (int, int, int) {
	return M.n[0], M.n[1], M.n[2]
}

func (M *Mask) index(i, j, k int) int {
	if i < 0 || j < 0 || k < 0 || i >= M.n[0] || j >= M.n[1] || k >= M.n[2] {
		panic(fmt.Sprintf("cube: mask voxel (%d,%d,%d) out of range for shape %v", i, j, k, M.n))
	}
	return (i*M.n[1]+j)*M.n[2] + k
}

// At returns true if the voxel i,j,k is in the mask. Panics if out of range.
func (M *Mask) At(i, j, k int) bool {
	return M.m[M.index(i, j, k)]
}

// Set puts the voxel i,j,k in the mask (or takes it out).
func (M *Mask) Set(i, j, k int, in bool) {
	M.m[M.index(i, j, k)] = in
}

// Count returns the number of voxels in the mask.
func (M *Mask) Count() int {
	c := 0
	for _, v := range M.m {
		if v {
			c++
		}
	}
	return c
}

// Values returns the mask as 1s and 0s, in the flat layout of Grid.View.
func (M *Mask) Values() []float64 {
	r := make([]float64, len(M.m))
	for i, v := range M.m {
		if v {
			r[i] = 1
		}
	}
	return r
}

// MaskSphere returns a new mask with the voxels whose centers lie within radius
// R of c. The voxel i,j,k is taken to sit at (i*sx, j*sy, k*sz), where sx, sy and sz
// are the diagonal elements of the three axis vectors: the grid is assumed to be
// axis-aligned, and c is relative to the origin of the grid, in the grid's units.
// Along each axis, the candidate indexes are [ceil((c-r)/s), floor((c+r)/s)), with
// the upper end excluded, clipped to the grid. The grid is not modified.
func (g *Grid) MaskSphere(R float64, c r3.Vec) (*Mask, error) {
	s := diagonal(g)
	if math.IsNaN(R) || math.IsInf(R, 0) || R < 0 {
		return nil, domainError(fmt.Sprintf("invalid radius %g", R), "MaskSphere")
	}
	for _, v := range []float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, domainError(fmt.Sprintf("invalid center %v", c), "MaskSphere")
		}
	}
	for d, v := range s {
		if !(v > 0) {
			return nil, domainError(fmt.Sprintf("%s: axis %d, step %g", NonPositiveStep, d, v), "MaskSphere")
		}
	}
	m := NewMask(g.N)
	ixlo, ixhi := span(c.X, R, s[0], g.N[0])
	for ix := ixlo; ix < ixhi; ix++ {
		dx := float64(ix)*s[0] - c.X
		ryz2 := R*R - dx*dx
		if ryz2 < 0 {
			continue
		}
		ryz := math.Sqrt(ryz2)
		iylo, iyhi := span(c.Y, ryz, s[1], g.N[1])
		for iy := iylo; iy < iyhi; iy++ {
			dy := float64(iy)*s[1] - c.Y
			rz2 := ryz2 - dy*dy
			if rz2 < 0 {
				continue
			}
			izlo, izhi := span(c.Z, math.Sqrt(rz2), s[2], g.N[2])
			for iz := izlo; iz < izhi; iz++ {
				m.m[(ix*g.N[1]+iy)*g.N[2]+iz] = true
			}
		}
	}
	return m, nil
}

// span returns the index range [ceil((c-r)/s), floor((c+r)/s)) clipped to [0,n).
// The clipping is done in floating point, so huge radii can't overflow an int.
func span(c, r, s float64, n int) (int, int) {
	lo := math.Ceil((c - r) / s)
	hi := math.Floor((c + r) / s)
	lo = math.Max(lo, 0)
	hi = math.Min(hi, float64(n))
	if !(lo < hi) {
		return 0, 0
	}
	return int(lo), int(hi)
}

// Integrate returns the sum of the values in the voxels flagged by m, times the
// volume of one voxel. With a charge density grid, that's the charge inside the mask.
func (g *Grid) Integrate(m *Mask) (float64, error) {
	if m == nil {
		return 0, domainError("given nil mask", "Integrate")
	}
	if m.n != g.N {
		return 0, domainError(fmt.Sprintf("%s: grid %v, mask %v", ShapeMismatch, g.N, m.n), "Integrate")
	}
	return floats.Dot(g.values, m.Values()) * g.VoxelVolume(), nil
}
