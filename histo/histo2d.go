/*
 * histo2d.go, part of gocube.
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

package histo

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dividers returns the n+1 dividers for n equal bins from min to max.
// If min and max are equal, the range is widened by 0.5 on each side.
// It panics if n < 1 or if max < min.
func Dividers(min, max float64, n int) []float64 {
	if n < 1 {
		panic(fmt.Sprintf("histo: %d bins requested", n))
	}
	if max < min {
		panic(fmt.Sprintf("histo: range %g to %g", min, max))
	}
	if min == max {
		min -= 0.5
		max += 0.5
	}
	return floats.Span(make([]float64, n+1), min, max)
}

// Limits is the range of a 2D histogram.
type Limits struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// LimitsOf returns the smallest Limits containing all the x,y points.
// It panics if x or y are empty.
func LimitsOf(x, y []float64) Limits {
	return Limits{XMin: floats.Min(x), XMax: floats.Max(x), YMin: floats.Min(y), YMax: floats.Max(y)}
}

// Common returns the smallest Limits containing all the given ones.
// It panics if none is given.
func Common(lims ...Limits) Limits {
	if len(lims) == 0 {
		panic("histo: no limits given")
	}
	ret := lims[0]
	for _, l := range lims[1:] {
		ret.XMin = min(ret.XMin, l.XMin)
		ret.YMin = min(ret.YMin, l.YMin)
		ret.XMax = max(ret.XMax, l.XMax)
		ret.YMax = max(ret.YMax, l.YMax)
	}
	return ret
}

// Dividers returns the x and y dividers for a shape[0] x shape[1] histogram
// covering L.
func (L Limits) Dividers(shape [2]int) (xdiv, ydiv []float64) {
	return Dividers(L.XMin, L.XMax, shape[0]), Dividers(L.YMin, L.YMax, shape[1])
}

// Data2D is a 2D histogram. Bin i,j counts the points with x in the x bin i and y
// in the y bin j.
type Data2D struct {
	normalized bool
	total      int
	xdiv, ydiv []float64
	histo      []float64 //row-major, one row per x bin
}

// NewData2D returns a histogram of the points x[i],y[i] with the given dividers.
// x and y can be nil, for an empty histogram. It panics if x and y have different lengths,
// or if the dividers are not sorted or have less than 2 elements.
func NewData2D(xdiv, ydiv []float64, x, y []float64) *Data2D {
	checkDividers(xdiv)
	checkDividers(ydiv)
	D := &Data2D{
		xdiv: append([]float64(nil), xdiv...),
		ydiv: append([]float64(nil), ydiv...),
	}
	D.histo = make([]float64, (len(xdiv)-1)*(len(ydiv)-1))
	D.AddData(x, y)
	return D
}

// Dims returns the number of bins along x and y.
func (D *Data2D) Dims() (int, int) {
	return len(D.xdiv) - 1, len(D.ydiv) - 1
}

// At returns the value of the bin i,j.
func (D *Data2D) At(i, j int) float64 {
	nx, ny := D.Dims()
	if i < 0 || j < 0 || i >= nx || j >= ny {
		panic(fmt.Sprintf("histo: bin %d,%d out of range for %dx%d histogram", i, j, nx, ny))
	}
	return D.histo[i*ny+j]
}

// AddData adds the points x[i],y[i] to the histogram. Points outside the dividers
// are omitted, and don't count for the total.
func (D *Data2D) AddData(x, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("histo: %d x values and %d y values", len(x), len(y)))
	}
	norma := D.normalized
	D.UnNormalize()
	_, ny := D.Dims()
	for k, v := range x {
		i, j := bin(D.xdiv, v), bin(D.ydiv, y[k])
		if i < 0 || j < 0 {
			continue
		}
		D.histo[i*ny+j]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// Total returns the number of points in the histogram.
func (D *Data2D) Total() int {
	return D.total
}

// Normalized returns true if the histogram is normalized.
func (D *Data2D) Normalized() bool {
	return D.normalized
}

// Normalize divides each bin by the total number of points, so the bins
// are probabilities.
func (D *Data2D) Normalize() {
	D.normalized = scale(D.histo, D.total, D.normalized, true)
}

// UnNormalize reverts Normalize.
func (D *Data2D) UnNormalize() {
	D.normalized = scale(D.histo, D.total, D.normalized, false)
}

// Max returns the largest bin value.
func (D *Data2D) Max() float64 {
	return floats.Max(D.histo)
}

// XDividers returns a copy of the x dividers.
func (D *Data2D) XDividers() []float64 {
	return append([]float64(nil), D.xdiv...)
}

// YDividers returns a copy of the y dividers.
func (D *Data2D) YDividers() []float64 {
	return append([]float64(nil), D.ydiv...)
}

// Centers returns the middle points of the x and y bins.
func (D *Data2D) Centers() (x, y []float64) {
	return centers(D.xdiv), centers(D.ydiv)
}

// Limits returns the range covered by the histogram.
func (D *Data2D) Limits() Limits {
	return Limits{XMin: D.xdiv[0], XMax: D.xdiv[len(D.xdiv)-1], YMin: D.ydiv[0], YMax: D.ydiv[len(D.ydiv)-1]}
}

// Dense returns a copy of the bins as a matrix with one row per x bin.
func (D *Data2D) Dense() *mat.Dense {
	nx, ny := D.Dims()
	return mat.NewDense(nx, ny, append([]float64(nil), D.histo...))
}

// Marginals returns the 1D histograms of the x and the y values, with the
// same normalization state as D.
func (D *Data2D) Marginals() (*Data, *Data) {
	nx, ny := D.Dims()
	hx := NewData(D.xdiv, nil, 0)
	hy := NewData(D.ydiv, nil, 1)
	m := D.Dense()
	for i := 0; i < nx; i++ {
		hx.histo[i] = floats.Sum(m.RawRowView(i))
	}
	for j := 0; j < ny; j++ {
		hy.histo[j] = mat.Sum(m.ColView(j))
	}
	for _, h := range []*Data{hx, hy} {
		h.total = D.total
		h.normalized = D.normalized
	}
	return hx, hy
}

type jsonData2D struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	XDividers  []float64 `json:"xdividers"`
	YDividers  []float64 `json:"ydividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData2D{
		Normalized: D.normalized,
		Total:      D.total,
		XDividers:  D.xdiv,
		YDividers:  D.ydiv,
		Histo:      D.histo,
	})
}

func (D *Data2D) UnmarshalJSON(b []byte) error {
	var a jsonData2D
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.XDividers) < 2 || len(a.YDividers) < 2 || len(a.Histo) != (len(a.XDividers)-1)*(len(a.YDividers)-1) {
		return fmt.Errorf("histo: %d values for %d x and %d y dividers", len(a.Histo), len(a.XDividers), len(a.YDividers))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.xdiv = a.XDividers
	D.ydiv = a.YDividers
	D.histo = a.Histo
	return nil
}
