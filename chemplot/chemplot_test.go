/*
 * chemplot_test.go, part of gocube.
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

package chemplot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mddavis/gocube/histo"
)

func twoLandscapes() []LandscapeInput {
	return []LandscapeInput{
		{Name: "wt", Label: "Wild type", Time: []float64{0, 1, 2, 3}, X: []float64{0.1, 0.2, 0.2, 0.4}, Y: []float64{1.4, 1.5, 1.5, 1.6}},
		{Name: "mut", Label: "Mutant", Time: []float64{0, 1, 2}, X: []float64{0.3, 0.5, 0.6}, Y: []float64{1.3, 1.3, 1.7}},
	}
}

func TestNewLandscape(Te *testing.T) {
	in := twoLandscapes()[0]
	L, err := NewLandscape(in.Name, in.Label, in.Time, in.X, in.Y, [2]int{3, 2}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if L.H.Total() != 4 {
		Te.Errorf("%d points, expected 4", L.H.Total())
	}
	if l := L.H.Limits(); l != (histo.Limits{XMin: 0.1, XMax: 0.4, YMin: 1.4, YMax: 1.6}) {
		Te.Errorf("limits %+v", l)
	}
	lim := &histo.Limits{XMin: 5, XMax: 6, YMin: 5, YMax: 6}
	if _, err := NewLandscape("far", "", in.Time, in.X, in.Y, [2]int{3, 2}, lim); err == nil {
		Te.Error("a landscape with all the points outside the limits was accepted")
	}
	if _, err := NewLandscape("short", "", in.Time[:2], in.X, in.Y, [2]int{3, 2}, nil); err == nil {
		Te.Error("a landscape with missing times was accepted")
	}
}

func TestCommonLandscapes(Te *testing.T) {
	ls, err := CommonLandscapes(twoLandscapes(), [2]int{4, 4}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	expected := histo.Limits{XMin: 0.1, XMax: 0.6, YMin: 1.3, YMax: 1.7}
	for _, L := range ls {
		if diff := cmp.Diff(expected, L.H.Limits(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			Te.Errorf("%s limits (-want +got):\n%s", L.Name, diff)
		}
	}
	if ls[0].H.Total() != 4 || ls[1].H.Total() != 3 {
		Te.Errorf("totals %d and %d", ls[0].H.Total(), ls[1].H.Total())
	}
}

func TestCounts(Te *testing.T) {
	L, err := NewLandscape("c", "", []float64{0, 1, 2}, []float64{0, 0, 1}, []float64{0, 0, 1}, [2]int{2, 2}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	L.H.Normalize()
	c := L.Counts()
	if diff := cmp.Diff([]float64{2, 0, 0, 1}, c.RawMatrix().Data, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		Te.Errorf("counts (-want +got):\n%s", diff)
	}
}

func TestLandscapeHTML(Te *testing.T) {
	ls, err := CommonLandscapes(twoLandscapes(), [2]int{5, 5}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	o := NewLandscapeOptions()
	o.Title = "Test landscapes"
	var buf bytes.Buffer
	if err := LandscapeHTML(&buf, ls, o); err != nil {
		Te.Fatal(err)
	}
	html := buf.String()
	for _, s := range []string{"echarts", "Test landscapes", "Wild type", "Mutant"} {
		if !strings.Contains(html, s) {
			Te.Errorf("%q not in the page", s)
		}
	}
	if err := LandscapeHTML(&buf, nil, nil); err == nil {
		Te.Error("no error plotting no landscapes")
	}
}

func TestLandscapePNG(Te *testing.T) {
	ls, err := CommonLandscapes(twoLandscapes(), [2]int{5, 5}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, L := range ls {
		name := filepath.Join(dir, L.Name+".png")
		if err := LandscapePNG(name, L, nil); err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
			Te.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestSaveJSON(Te *testing.T) {
	ls, err := CommonLandscapes(twoLandscapes(), [2]int{3, 3}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := SaveJSON(&buf, ls); err != nil {
		Te.Fatal(err)
	}
	read, err := ReadJSON(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if len(read) != 2 || read[1].Label != "Mutant" || !cmp.Equal(read[1].Time, ls[1].Time) {
		Te.Fatalf("read back %d landscapes", len(read))
	}
	if !cmp.Equal(read[0].H.Dense().RawMatrix().Data, ls[0].H.Dense().RawMatrix().Data) {
		Te.Error("histogram changed after saving")
	}
	if _, err := ReadJSON(strings.NewReader(`[{"name":"x"}]`)); err == nil {
		Te.Error("a landscape without histogram was accepted")
	}
}

func TestRamp(Te *testing.T) {
	c := hexRamp(3)
	if c[0] != "#2626ff" || c[2] != "#ff2626" {
		Te.Errorf("ramp %v, expected to go from blue to red", c)
	}
	if len(hueRamp(7).Colors()) != 7 {
		Te.Error("wrong palette size")
	}
}
