/*
 * plot.go, part of gocube.
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
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LandscapeOptions controls how landscapes are drawn. The default values are
// NOT considered part of the API.
type LandscapeOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  int //in pixels for HTML, in points for static images
	Height int //same as Width
	Colors int //number of colors in the scale
}

// NewLandscapeOptions returns options with the default values.
func NewLandscapeOptions() *LandscapeOptions {
	o := new(LandscapeOptions)
	o.SetDefaults()
	return o
}

// SetDefaults sets the default values: RMSD and radius of gyration as labels,
// 600x500 plots, 10 colors.
func (o *LandscapeOptions) SetDefaults() {
	o.Title = "Landscapes"
	o.XLabel = "RMSD (nm)"
	o.YLabel = "Rg (nm)"
	o.Width = 600
	o.Height = 500
	o.Colors = 10
}

// zLabel is the name of the plotted quantity.
const zLabel = "Counts"

// colors returns the number of colors in the scale, at least 2.
func (o *LandscapeOptions) colors() int {
	return max(o.Colors, 2)
}

func label(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// heatMap returns the go-echarts heat map of L.
func heatMap(L *Landscape, o *LandscapeOptions) *charts.HeatMap {
	z := L.Counts()
	xc, yc := L.H.Centers()
	xcat := make([]string, len(xc))
	for i, v := range xc {
		xcat[i] = label(v)
	}
	ycat := make([]string, len(yc))
	for i, v := range yc {
		ycat[i] = label(v)
	}
	data := make([]opts.HeatMapData, 0, len(xc)*len(yc))
	for i := range xc {
		for j := range yc {
			v := z.At(i, j)
			if math.IsNaN(v) || v == 0 {
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, v}})
		}
	}
	min, max := finiteRange(z)
	title := L.Name
	if L.Label != "" {
		title = L.Label
	}
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: fmt.Sprintf("%dpx", o.Width), Height: fmt.Sprintf("%dpx", o.Height)}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d frames", L.H.Total())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: o.XLabel, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ycat, Name: o.YLabel, NameLocation: "middle", NameGap: 45}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			Text:       []string{zLabel},
			InRange:    &opts.VisualMapInRange{Color: hexRamp(o.colors())},
		}),
	)
	hm.SetXAxis(xcat).AddSeries(L.Name, data)
	return hm
}

// LandscapeHTML writes to w an HTML page with one interactive heat map per landscape.
// o can be nil, for the default options.
func LandscapeHTML(w io.Writer, ls []*Landscape, o *LandscapeOptions) error {
	if len(ls) == 0 {
		return fmt.Errorf("chemplot: no landscapes to plot")
	}
	if o == nil {
		o = NewLandscapeOptions()
	}
	page := components.NewPage()
	page.PageTitle = o.Title
	for _, L := range ls {
		page.AddCharts(heatMap(L, o))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("chemplot: can't render landscapes: %w", err)
	}
	return nil
}

// grid adapts a matrix of values and the bin centers to plotter.GridXYZ.
type grid struct {
	z    *mat.Dense
	x, y []float64
}

func (g grid) Dims() (c, r int)   { return len(g.x), len(g.y) }
func (g grid) Z(c, r int) float64 { return g.z.At(c, r) }
func (g grid) X(c int) float64    { return g.x[c] }
func (g grid) Y(r int) float64    { return g.y[r] }

// LandscapePNG saves a static heat map of L to the file name. The format is taken
// from the extension of name (png, svg, pdf, etc). o can be nil, for the default options.
func LandscapePNG(name string, L *Landscape, o *LandscapeOptions) error {
	if L == nil || L.H == nil {
		return fmt.Errorf("chemplot: given nil landscape")
	}
	if o == nil {
		o = NewLandscapeOptions()
	}
	z := L.Counts()
	x, y := L.H.Centers()
	h := plotter.NewHeatMap(grid{z: z, x: x, y: y}, hueRamp(o.colors()))
	h.Min, h.Max = finiteRange(z)
	if h.Max <= h.Min {
		h.Max = h.Min + 1
	}
	h.NaN = color.Transparent
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s", L.Name, zLabel)
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Add(h)
	if err := p.Save(vg.Length(o.Width), vg.Length(o.Height), name); err != nil {
		return fmt.Errorf("chemplot: can't save %s: %w", name, err)
	}
	return nil
}
