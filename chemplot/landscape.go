/*
 * landscape.go, part of gocube.
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
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/mddavis/gocube/histo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Landscape is the 2D distribution of a pair of properties along a trajectory,
// for instance, RMSD and radius of gyration.
type Landscape struct {
	Name  string        `json:"name"`
	Label string        `json:"label"`
	Time  []float64     `json:"time"`
	H     *histo.Data2D `json:"histogram"`
}

// LandscapeInput is the data for one landscape.
type LandscapeInput struct {
	Name, Label string
	Time, X, Y  []float64
}

// NewLandscape returns the landscape of the x,y points, with shape[0] x bins and shape[1] y bins.
// If lim is nil, the histogram covers exactly the range of the data.
func NewLandscape(name, label string, time, x, y []float64, shape [2]int, lim *histo.Limits) (*Landscape, error) {
	if len(x) == 0 || len(x) != len(y) || len(time) != len(x) {
		return nil, fmt.Errorf("chemplot: landscape %s: %d times, %d x and %d y values", name, len(time), len(x), len(y))
	}
	if shape[0] < 1 || shape[1] < 1 {
		return nil, fmt.Errorf("chemplot: landscape %s: invalid shape %v", name, shape)
	}
	if lim == nil {
		l := histo.LimitsOf(x, y)
		lim = &l
	}
	if !(lim.XMax >= lim.XMin && lim.YMax >= lim.YMin) {
		return nil, fmt.Errorf("chemplot: landscape %s: invalid limits %+v", name, *lim)
	}
	xdiv, ydiv := lim.Dividers(shape)
	L := &Landscape{
		Name:  name,
		Label: label,
		Time:  append([]float64(nil), time...),
		H:     histo.NewData2D(xdiv, ydiv, x, y),
	}
	if L.H.Total() == 0 {
		return nil, fmt.Errorf("chemplot: landscape %s: no point within the limits %+v", name, *lim)
	}
	return L, nil
}

// CommonLandscapes returns one landscape per input, all with the same bins. If lim
// is nil, the bins cover the data of all the inputs.
func CommonLandscapes(in []LandscapeInput, shape [2]int, lim *histo.Limits) ([]*Landscape, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("chemplot: no input for landscapes")
	}
	if lim == nil {
		lims := make([]histo.Limits, 0, len(in))
		for _, v := range in {
			if len(v.X) == 0 || len(v.Y) == 0 {
				return nil, fmt.Errorf("chemplot: landscape %s: no data", v.Name)
			}
			lims = append(lims, histo.LimitsOf(v.X, v.Y))
		}
		l := histo.Common(lims...)
		lim = &l
	}
	ret := make([]*Landscape, 0, len(in))
	for _, v := range in {
		L, err := NewLandscape(v.Name, v.Label, v.Time, v.X, v.Y, shape, lim)
		if err != nil {
			return nil, err
		}
		ret = append(ret, L)
	}
	return ret, nil
}

// Counts returns the number of points in each bin, whether or not the histogram
// is normalized.
func (L *Landscape) Counts() *mat.Dense {
	m := L.H.Dense()
	if L.H.Normalized() {
		m.Scale(float64(L.H.Total()), m)
	}
	return m
}

// finiteRange returns the smallest and largest non-NaN values in m.
func finiteRange(m *mat.Dense) (float64, float64) {
	v := make([]float64, 0, len(m.RawMatrix().Data))
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x := m.At(i, j); !math.IsNaN(x) {
				v = append(v, x)
			}
		}
	}
	if len(v) == 0 {
		return 0, 0
	}
	return floats.Min(v), floats.Max(v)
}

// SaveJSON writes the landscapes in JSON format to w.
func SaveJSON(w io.Writer, ls []*Landscape) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(ls)
}

// ReadJSON reads landscapes written by SaveJSON.
func ReadJSON(r io.Reader) ([]*Landscape, error) {
	var ls []*Landscape
	if err := json.NewDecoder(r).Decode(&ls); err != nil {
		return nil, fmt.Errorf("chemplot: can't read landscapes: %w", err)
	}
	for i, v := range ls {
		if v == nil || v.H == nil {
			return nil, fmt.Errorf("chemplot: landscape %d has no histogram", i)
		}
	}
	return ls, nil
}
