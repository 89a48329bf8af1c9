/*
 * sample.go, part of gocube.
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

	"gonum.org/v1/gonum/spatial/r3"
)

// Sampler evaluates the values of a grid at arbitrary points, placing the grid
// with a given frame. Like MaskSphere, it only uses the diagonal of the axis vectors.
type Sampler struct {
	v      Volume
	n      [3]int
	origin r3.Vec
	s      [3]float64
}

// NewSampler returns a Sampler for the values in v placed in space by f.
// f would normally be the grid itself, or its Frame() to work in Angstrom.
func NewSampler(v Volume, f Framer) (*Sampler, error) {
	S := &Sampler{v: v, origin: f.Start(), s: diagonal(f)}
	S.n[0], S.n[1], S.n[2] = v.Dims()
	for d, st := range S.s {
		if !(st > 0) {
			return nil, domainError(fmt.Sprintf("%s: axis %d, step %g", NonPositiveStep, d, st), "NewSampler")
		}
	}
	return S, nil
}

// fractional returns the (real-valued) index of p along each axis.
func (S *Sampler) fractional(p r3.Vec) [3]float64 {
	d := r3.Sub(p, S.origin)
	return [3]float64{d.X / S.s[0], d.Y / S.s[1], d.Z / S.s[2]}
}

// Nearest returns the indexes of the voxel closest to p, and false if p is outside
// the grid by more than half a voxel.
func (S *Sampler) Nearest(p r3.Vec) (i, j, k int, ok bool) {
	var idx [3]int
	for d, u := range S.fractional(p) {
		r := math.Round(u)
		if math.IsNaN(r) || r < 0 || r >= float64(S.n[d]) {
			return 0, 0, 0, false
		}
		idx[d] = int(r)
	}
	return idx[0], idx[1], idx[2], true
}

// cell returns the lower index of the cell containing the fractional
// index u along an axis with n points, and the weight of the upper point.
func cell(u float64, n int) (int, float64, bool) {
	if math.IsNaN(u) || u < 0 || u > float64(n-1) {
		return 0, 0, false
	}
	if n == 1 {
		return 0, 0, true
	}
	i := int(math.Floor(u))
	if i >= n-1 {
		i = n - 2
	}
	return i, u - float64(i), true
}

// Trilinear returns the value at p, interpolated from the 8 voxels around it.
// Points outside the grid return an error matching ErrDomain.
func (S *Sampler) Trilinear(p r3.Vec) (float64, error) {
	u := S.fractional(p)
	var lo [3]int
	var w [3]float64
	for d := range u {
		var ok bool
		lo[d], w[d], ok = cell(u[d], S.n[d])
		if !ok {
			return math.NaN(), domainError(fmt.Sprintf("%s: %v", OutsideGrid, p), "Trilinear")
		}
	}
	var ret float64
	for c := 0; c < 8; c++ {
		weight := 1.0
		var idx [3]int
		for d := 0; d < 3; d++ {
			up := (c >> d) & 1
			if up == 1 {
				weight *= w[d]
			} else {
				weight *= 1 - w[d]
			}
			idx[d] = lo[d] + up
		}
		if weight == 0 {
			continue //also keeps us from reading past the end along 1-point axes.
		}
		ret += weight * S.v.At(idx[0], idx[1], idx[2])
	}
	return ret, nil
}
