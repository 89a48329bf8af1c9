/*
 * mask_test.go, part of gocube.
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
 */

package cube

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func unitGrid(Te *testing.T, n int, step float64) *Grid {
	g, err := NewGrid(r3.Vec{X: -7, Y: 3, Z: 100}, [3]r3.Vec{{X: step}, {Y: step}, {Z: step}}, [3]int{n, n, n}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

// TestMaskContainment: a sphere at the first voxel contains it, and no voxel
// outside the sphere is ever flagged.
func TestMaskContainment(Te *testing.T) {
	g := unitGrid(Te, 10, 0.5)
	for _, c := range []struct {
		R      float64
		center r3.Vec
	}{
		{1.25, r3.Vec{}},
		{2, r3.Vec{X: 2.1, Y: 1.7, Z: 2.4}},
		{0.9, r3.Vec{X: 4.5, Y: 4.5, Z: 4.5}},
	} {
		m, err := g.MaskSphere(c.R, c.center)
		if err != nil {
			Te.Fatal(err)
		}
		if c.center == (r3.Vec{}) && !m.At(0, 0, 0) {
			Te.Errorf("R=%g: the voxel at the center is not in the mask", c.R)
		}
		if m.Count() == 0 {
			Te.Errorf("R=%g %v: empty mask", c.R, c.center)
		}
		for i := 0; i < 10; i++ {
			for j := 0; j < 10; j++ {
				for k := 0; k < 10; k++ {
					if !m.At(i, j, k) {
						continue
					}
					p := r3.Vec{X: float64(i) * 0.5, Y: float64(j) * 0.5, Z: float64(k) * 0.5}
					if d := r3.Norm(r3.Sub(p, c.center)); d > c.R+1e-12 {
						Te.Errorf("voxel %d,%d,%d is %g from the center, radius %g", i, j, k, d, c.R)
					}
				}
			}
		}
	}
}

// TestMaskHalfOpen: the upper end of each range is excluded, so a sphere of radius
// one step around a voxel only takes that voxel and its lower neighbour along z.
func TestMaskHalfOpen(Te *testing.T) {
	g := unitGrid(Te, 10, 1)
	m, err := g.MaskSphere(1, r3.Vec{X: 5, Y: 5, Z: 5})
	if err != nil {
		Te.Fatal(err)
	}
	if m.Count() != 2 || !m.At(5, 5, 4) || !m.At(5, 5, 5) {
		Te.Errorf("expected exactly voxels 5,5,4 and 5,5,5, got %d voxels", m.Count())
	}
	m, err = g.MaskSphere(0.5, r3.Vec{X: 5, Y: 5, Z: 5})
	if err != nil {
		Te.Fatal(err)
	}
	if m.Count() != 0 {
		Te.Errorf("a sphere smaller than a voxel around a voxel center should be empty, got %d", m.Count())
	}
}

func TestMaskBounds(Te *testing.T) {
	g := unitGrid(Te, 4, 1)
	m, err := g.MaskSphere(10, r3.Vec{X: 2, Y: 2, Z: 2})
	if err != nil {
		Te.Fatal(err)
	}
	if nx, ny, nz := m.Dims(); nx != 4 || ny != 4 || nz != 4 {
		Te.Errorf("mask shape %d,%d,%d", nx, ny, nz)
	}
	if m.Count() != 64 {
		Te.Errorf("the whole grid should be in the mask, got %d voxels", m.Count())
	}
	for _, c := range []r3.Vec{{X: -3, Y: -3, Z: -3}, {X: 9, Y: 2, Z: 2}, {X: 2, Y: -1e300, Z: 2}} {
		if _, err := g.MaskSphere(4, c); err != nil {
			Te.Errorf("center %v: %v", c, err)
		}
	}
	if _, err := g.MaskSphere(1e300, r3.Vec{}); err != nil {
		Te.Errorf("huge radius: %v", err)
	}
}

func TestMaskDomain(Te *testing.T) {
	g := unitGrid(Te, 4, 1)
	for _, R := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := g.MaskSphere(R, r3.Vec{}); !errors.Is(err, ErrDomain) {
			Te.Errorf("radius %g: expected a domain error, got %v", R, err)
		}
	}
	if _, err := g.MaskSphere(1, r3.Vec{X: math.NaN()}); !errors.Is(err, ErrDomain) {
		Te.Errorf("NaN center: expected a domain error, got %v", err)
	}
	g.Axes[1].Y = 0
	if _, err := g.MaskSphere(1, r3.Vec{}); !errors.Is(err, ErrDomain) {
		Te.Errorf("zero step: expected a domain error, got %v", err)
	}
}

func TestIntegrate(Te *testing.T) {
	g := unitGrid(Te, 6, 0.5)
	for i := range g.View() {
		g.View()[i] = 2
	}
	before := g.Copy()
	m, err := g.MaskSphere(1.2, r3.Vec{X: 1.5, Y: 1.5, Z: 1.5})
	if err != nil {
		Te.Fatal(err)
	}
	q, err := g.Integrate(m)
	if err != nil {
		Te.Fatal(err)
	}
	expected := 2 * 0.125 * float64(m.Count())
	if math.Abs(q-expected) > 1e-12 {
		Te.Errorf("integral %g, expected %g", q, expected)
	}
	for i, v := range before.View() {
		if g.View()[i] != v {
			Te.Fatal("masking or integrating modified the grid values")
		}
	}
	if _, err := g.Integrate(NewMask([3]int{6, 6, 5})); !errors.Is(err, ErrDomain) {
		Te.Errorf("expected a domain error for a mask of the wrong shape, got %v", err)
	}
}
