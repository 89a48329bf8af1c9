/*
 * sample_test.go, part of gocube.
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

// linearGrid has v = 2x + 3y - z at every voxel, which trilinear interpolation
// must reproduce exactly anywhere inside.
func linearGrid(Te *testing.T) *Grid {
	origin := r3.Vec{X: 1, Y: -1, Z: 0.5}
	g, err := NewGrid(origin, [3]r3.Vec{{X: 0.5}, {Y: 0.25}, {Z: 1}}, [3]int{5, 6, 3}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 6; j++ {
			for k := 0; k < 3; k++ {
				p := g.Point(i, j, k)
				g.Set(i, j, k, 2*p.X+3*p.Y-p.Z)
			}
		}
	}
	return g
}

func TestTrilinear(Te *testing.T) {
	g := linearGrid(Te)
	S, err := NewSampler(g, g)
	if err != nil {
		Te.Fatal(err)
	}
	for _, p := range []r3.Vec{
		{X: 1, Y: -1, Z: 0.5},
		{X: 1.3, Y: -0.6, Z: 1.7},
		{X: 3, Y: 0.25, Z: 2.5}, //the far corner
		{X: 2.75, Y: 0.1, Z: 2.5},
	} {
		v, err := S.Trilinear(p)
		if err != nil {
			Te.Errorf("%v: %v", p, err)
			continue
		}
		if expected := 2*p.X + 3*p.Y - p.Z; math.Abs(v-expected) > 1e-9 {
			Te.Errorf("%v: interpolated %g, expected %g", p, v, expected)
		}
	}
	for _, p := range []r3.Vec{{X: 0.9, Y: 0, Z: 1}, {X: 2, Y: 0.3, Z: 1}, {X: 2, Y: 0, Z: math.NaN()}} {
		if _, err := S.Trilinear(p); !errors.Is(err, ErrDomain) {
			Te.Errorf("%v is outside, expected a domain error, got %v", p, err)
		}
	}
}

func TestNearest(Te *testing.T) {
	g := linearGrid(Te)
	S, err := NewSampler(g, g)
	if err != nil {
		Te.Fatal(err)
	}
	i, j, k, ok := S.Nearest(r3.Vec{X: 1.74, Y: -0.4, Z: 1.6})
	if !ok || i != 1 || j != 2 || k != 1 {
		Te.Errorf("nearest voxel: %d,%d,%d (%v), expected 1,2,1", i, j, k, ok)
	}
	if _, _, _, ok := S.Nearest(r3.Vec{X: 10}); ok {
		Te.Error("a far away point should have no nearest voxel")
	}
}

// TestSamplerFrame places a grid given in Bohr with its Angstrom frame.
func TestSamplerFrame(Te *testing.T) {
	g, err := NewGrid(r3.Vec{}, [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}, [3]int{2, 2, 2}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	g.Set(1, 0, 0, 1)
	S, err := NewSampler(g, g.Frame())
	if err != nil {
		Te.Fatal(err)
	}
	v, err := S.Trilinear(r3.Vec{X: BohrToAngstrom / 2})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(v-0.5) > 1e-6 {
		Te.Errorf("interpolated %g, expected 0.5", v)
	}
}
