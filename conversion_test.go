/*
 * conversion_test.go, part of gocube.
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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestAngstromUnchanged checks that a frame with a non-positive x step is left alone.
func TestAngstromUnchanged(Te *testing.T) {
	for _, xx := range []float64{0, -0.25} {
		axes := [3]r3.Vec{{X: xx, Y: 0.1}, {Y: 0.3}, {X: 0.2, Z: 0.4}}
		g, err := NewGrid(r3.Vec{X: 12.5, Y: -3, Z: 0.123456789}, axes, [3]int{2, 2, 2}, nil)
		if err != nil {
			Te.Fatal(err)
		}
		f := g.Frame()
		if f.Converted {
			Te.Errorf("x step %g: frame should not have been converted", xx)
		}
		if f.Origin != g.Origin || f.Axes != g.Axes {
			Te.Errorf("x step %g: frame changed: %v", xx, f)
		}
		steps := [3]float64{math.Hypot(xx, 0.1), 0.3, math.Hypot(0.2, 0.4)}
		if diff := cmp.Diff(steps, f.Steps, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			Te.Errorf("steps mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestBohrToAngstrom(Te *testing.T) {
	g, err := NewGrid(r3.Vec{X: 1, Y: 2, Z: -3}, [3]r3.Vec{{X: 0.2}, {X: 0.1, Y: 0.2}, {Z: 10}}, [3]int{1, 1, 1}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	g.View()[0] = 42
	f := ToAngstrom(g)
	if !f.Converted {
		Te.Fatal("frame should have been converted")
	}
	want := Frame{
		Origin:    r3.Vec{X: 0.529177, Y: 1.058354, Z: -1.587531},
		Axes:      [3]r3.Vec{{X: 0.105835}, {X: 0.052918, Y: 0.105835}, {Z: 5.29177}},
		Steps:     [3]float64{0.105835, math.Hypot(0.052918, 0.105835), 5.29177},
		Converted: true,
	}
	if diff := cmp.Diff(want, f, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		Te.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
	if g.View()[0] != 42 || g.Origin.X != 1 {
		Te.Error("ToAngstrom modified the grid")
	}
}

func TestRound6(Te *testing.T) {
	cases := map[float64]float64{
		0.1058354:  0.105835,
		-1.5875316: -1.587532,
		2:          2,
	}
	for in, out := range cases {
		if r := round6(in); math.Abs(r-out) > 1e-15 {
			Te.Errorf("round6(%g) = %g, expected %g", in, r, out)
		}
	}
}
