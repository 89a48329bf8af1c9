/*
 * main.go, part of gocube.
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

// landscapexvg plots the 2D landscapes of pairs of GROMACS time series, for
// instance RMSD against radius of gyration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mddavis/gocube/chemplot"
	"github.com/mddavis/gocube/histo"
	"github.com/mddavis/gocube/xvg"
)

var verb int

// If level is larger or equal, prints the d arguments to stderr
// otherwise, does nothing.
func LogV(level int, d ...interface{}) {
	if level <= verb {
		fmt.Fprintln(os.Stderr, d...)
	}
}

// list is a repeatable string flag.
type list []string

func (l *list) String() string { return strings.Join(*l, ",") }

func (l *list) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// floatList parses n comma-separated numbers.
func floatList(s string, n int) ([]float64, error) {
	f := strings.Split(s, ",")
	if len(f) != n {
		return nil, fmt.Errorf("%q: expected %d comma-separated numbers", s, n)
	}
	ret := make([]float64, n)
	for i, v := range f {
		var err error
		ret[i], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
	}
	return ret, nil
}

// parseShape parses the number of bins along x and y, "nx,ny".
func parseShape(s string) ([2]int, error) {
	var sh [2]int
	f := strings.Split(s, ",")
	if len(f) != 2 {
		return sh, fmt.Errorf("%q: expected 2 comma-separated integers", s)
	}
	for i, v := range f {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return sh, fmt.Errorf("%q: %w", s, err)
		}
		if n < 1 {
			return sh, fmt.Errorf("%q: the number of bins must be positive", s)
		}
		sh[i] = n
	}
	return sh, nil
}

// series reads the x and y files and returns the time and the data
// in the rows begin to end, from the column col.
func series(xname, yname string, col, begin, end int) (t, x, y []float64, err error) {
	var data [2]*xvg.Data
	for i, name := range []string{xname, yname} {
		d, err := xvg.FileRead(name)
		if err != nil {
			return nil, nil, nil, err
		}
		if col < 0 || col >= d.NCols() {
			return nil, nil, nil, fmt.Errorf("%s has %d columns, column %d requested", name, d.NCols(), col)
		}
		data[i], err = d.Slice(begin, end)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	t, x, y = data[0].Column(0), data[0].Column(col), data[1].Column(col)
	if len(y) != len(x) {
		LogV(1, "Warning:", xname, "and", yname, "have different lengths. The longer will be truncated")
		n := min(len(x), len(y))
		t, x, y = t[:n], x[:n], y[:n]
	}
	return t, x, y, nil
}

func main() {
	var xs, ys, names, labels list
	flag.Var(&xs, "x", "xvg file with the data for the x axis. Repeat for several landscapes")
	flag.Var(&ys, "y", "xvg file with the data for the y axis. Repeat for several landscapes")
	flag.Var(&names, "n", "Name of each landscape")
	flag.Var(&labels, "l", "Label of each landscape, to show in the plots")
	common := flag.Bool("c", false, "Use common ranges for all the landscapes")
	output := flag.String("o", "landscapes.html", "Name for the output HTML file containing the plots")
	shape := flag.String("shape", "100,100", "Number of bins in the x and y direction")
	begin := flag.Int("b", 0, "Starting index for the data to include")
	end := flag.String("e", "", "Last index (not included) for the data to include. Empty for all")
	limits := flag.String("limits", "", "xmin,xmax,ymin,ymax for the landscapes. If not given, the range of the data is used")
	save := flag.String("s", "", "Name for a JSON file to save the landscapes")
	title := flag.String("title", "Landscapes", "Title for the figure")
	xlabel := flag.String("xlabel", "RMSD (nm)", "Label for the x axis")
	ylabel := flag.String("ylabel", "Rg (nm)", "Label for the y axis")
	width := flag.Int("width", 600, "Width of each plot")
	height := flag.Int("height", 500, "Height of each plot")
	png := flag.String("png", "", "If given, also save a static image of each landscape as prefix_name.png")
	column := flag.Int("column", 1, "Column of the xvg files to use (the first column, time, is 0)")
	verbose := flag.Int("v", 1, "Level of verbosity")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n  %s: -x rmsd.xvg -y rg.xvg -n name -l label [-x ... ] [flags]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	verb = *verbose
	if len(xs) == 0 || len(xs) != len(ys) || len(xs) != len(names) || len(xs) != len(labels) {
		log.Fatalf("Give the same number of -x, -y, -n and -l options (got %d, %d, %d and %d)", len(xs), len(ys), len(names), len(labels))
	}
	bins, err := parseShape(*shape)
	if err != nil {
		log.Fatal(err)
	}
	last := xvg.NoEnd
	if *end != "" {
		last, err = strconv.Atoi(*end)
		if err != nil {
			log.Fatal(err)
		}
	}
	var lim *histo.Limits
	if *limits != "" {
		l, err := floatList(*limits, 4)
		if err != nil {
			log.Fatal(err)
		}
		lim = &histo.Limits{XMin: l[0], XMax: l[1], YMin: l[2], YMax: l[3]}
	}
	in := make([]chemplot.LandscapeInput, len(xs))
	for i := range xs {
		t, x, y, err := series(xs[i], ys[i], *column, *begin, last)
		if err != nil {
			log.Fatal(err)
		}
		in[i] = chemplot.LandscapeInput{Name: names[i], Label: labels[i], Time: t, X: x, Y: y}
	}
	var ls []*chemplot.Landscape
	if *common {
		ls, err = chemplot.CommonLandscapes(in, bins, lim)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		for _, v := range in {
			LogV(1, "Generating landscape for", v.Name)
			L, err := chemplot.NewLandscape(v.Name, v.Label, v.Time, v.X, v.Y, bins, lim)
			if err != nil {
				log.Fatal(err)
			}
			ls = append(ls, L)
		}
	}
	if *save != "" {
		f, err := os.Create(*save)
		if err != nil {
			log.Fatal(err)
		}
		if err := chemplot.SaveJSON(f, ls); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		LogV(1, "Landscapes saved to", *save)
	}
	o := chemplot.NewLandscapeOptions()
	o.Title = *title
	o.XLabel = *xlabel
	o.YLabel = *ylabel
	o.Width = *width
	o.Height = *height
	f, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	if err := chemplot.LandscapeHTML(f, ls, o); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	LogV(1, "Plots written to", *output)
	if *png == "" {
		return
	}
	for _, L := range ls {
		name := fmt.Sprintf("%s_%s.png", *png, L.Name)
		if err := chemplot.LandscapePNG(name, L, o); err != nil {
			log.Fatal(err)
		}
		LogV(2, "Written", name)
	}
}
