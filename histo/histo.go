/*
 * histo.go, part of gocube.
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

// Package histo implements 1D and 2D histograms with explicit bin edges ("dividers").
// A value v falls in bin i if dividers[i] <= v < dividers[i+1]. The last bin also
// takes values equal to the last divider. Values outside the dividers are omitted.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a 1D histogram.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

// ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

// String prints a -hopefully- pretty string representation of
// the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created.
// if an ID for the histogram is given, it will be set. If not, the ID will
// be set to -1. It panics if there are less than 2 dividers, or if they are not sorted.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	checkDividers(dividers)
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

// AddData adds the given data point(s) to the histogram. Only the points
// within the dividers count for the total.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		if j := bin(D.dividers, v); j >= 0 {
			D.histo[j]++
			D.total++
		}
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

// Total returns the number of data points in the histogram.
func (D *Data) Total() int {
	return D.total
}

// Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides each bin by the total number of points.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize reverts Normalize
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	D.normalized = scale(D.histo, D.total, D.normalized, normalize)
}

// CopyDividers copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

// Copy returns a copy of the bin values.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

// View returns the bin values. It is not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

// Centers returns the middle point of each bin.
func (D *Data) Centers() []float64 {
	return centers(D.dividers)
}

// Add adds the histograms a and b putting the result in the receiver.
func (D *Data) Add(a, b *Data) {
	D.combine(a, b, func(x, y float64) float64 { return x + y })
}

// Sub substract the histograms a and b puting the results in the receiver
// if abs is given and true (only the first element is considered), the
// absolute value of each difference is used.
func (D *Data) Sub(a, b *Data, abs ...bool) {
	f := func(x, y float64) float64 { return x - y }
	if len(abs) > 0 && abs[0] {
		f = func(x, y float64) float64 { return math.Abs(x - y) }
	}
	D.combine(a, b, f)
}

func (D *Data) combine(a, b *Data, f func(x, y float64) float64) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("histo: Dividers must match in combined histograms")
	}
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = getCopySlice(len(a.histo), D.histo)
	for i, v := range a.histo {
		D.histo[i] = f(v, b.histo[i])
	}
}

// Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// ReHisto replaces the content of the histogram with a histogram of rawdata
// using the given dividers. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	checkDividers(dividers)
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	last := dividers[len(dividers)-1]
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	mini := sort.SearchFloat64s(data, dividers[0])
	maxi := sort.SearchFloat64s(data, last)
	atlast := sort.Search(len(data), func(i int) bool { return data[i] > last }) - maxi
	data = data[mini:maxi]
	D.dividers = append([]float64(nil), dividers...)
	D.histo = stat.Histogram(nil, dividers, data, nil)
	D.histo[len(D.histo)-1] += float64(atlast)
	D.total = len(data) + atlast
	D.normalized = false
}

// bin returns the bin of the value v, or -1 if it falls outside the dividers.
func bin(dividers []float64, v float64) int {
	n := len(dividers)
	if !(v >= dividers[0] && v <= dividers[n-1]) {
		return -1
	}
	if v == dividers[n-1] {
		return n - 2
	}
	return sort.Search(n, func(i int) bool { return dividers[i] > v }) - 1
}

// scale normalizes or un-normalizes the values in h, which have total points,
// returning the new normalization state.
func scale(h []float64, total int, current, normalize bool) bool {
	if total <= 0 || current == normalize {
		return current
	}
	n := float64(total)
	if normalize {
		n = 1 / n
	}
	floats.Scale(n, h)
	return normalize
}

func checkDividers(dividers []float64) {
	if len(dividers) < 2 {
		panic(fmt.Sprintf("histo: %d dividers, need at least 2", len(dividers)))
	}
	if !sort.Float64sAreSorted(dividers) {
		panic("histo: dividers not sorted")
	}
}

func centers(dividers []float64) []float64 {
	ret := make([]float64, len(dividers)-1)
	for i := range ret {
		ret[i] = (dividers[i] + dividers[i+1]) / 2
	}
	return ret
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d
}
