/*
 * colors.go, part of gocube.
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

package chemplot

import (
	"fmt"
	"image/color"
	"math"
)

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	conversion := 255.0
	if s == 0.0 {
		return uint8(conversion * v), uint8(conversion * v), uint8(conversion * v)
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(math.Round(r * conversion)), uint8(math.Round(g * conversion)), uint8(math.Round(b * conversion))
}

// ramp returns steps colors going from blue, for the lowest values,
// to red, for the highest.
func ramp(steps int) []color.RGBA {
	ret := make([]color.RGBA, steps)
	for key := range ret {
		h := 240.0
		if steps > 1 {
			h -= 240 * float64(key) / float64(steps-1)
		}
		r, g, b := iHVS2RGB(h, 1, 0.85)
		ret[key] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return ret
}

// hueRamp is a palette.Palette with the colors of ramp.
type hueRamp int

func (h hueRamp) Colors() []color.Color {
	c := ramp(int(h))
	ret := make([]color.Color, len(c))
	for i, v := range c {
		ret[i] = v
	}
	return ret
}

// hexRamp returns the colors of ramp in the #rrggbb form.
func hexRamp(steps int) []string {
	c := ramp(steps)
	ret := make([]string, len(c))
	for i, v := range c {
		ret[i] = fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
	}
	return ret
}
