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

// cubetool inspects, converts and masks Gaussian cube files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	cube "github.com/mddavis/gocube"
	"gonum.org/v1/gonum/spatial/r3"
)

var verb int

// If level is larger or equal, prints the d arguments to stderr
// otherwise, does nothing.
func LogV(level int, d ...interface{}) {
	if level <= verb {
		fmt.Fprintln(os.Stderr, d...)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  %s [-v level] info|frame|convert|xyzr|mask [flags] file.cube [output]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  info     prints the header and value statistics")
	fmt.Fprintln(os.Stderr, "  frame    prints the origin and axes in Angstrom")
	fmt.Fprintln(os.Stderr, "  convert  rewrites the file (.gz and .zst outputs are compressed)")
	fmt.Fprintln(os.Stderr, "  xyzr     writes the atoms with their radii as MSMS input")
	fmt.Fprintln(os.Stderr, "  mask     counts the voxels in a sphere and integrates the values in it")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

// parseVec reads a "x,y,z" string.
func parseVec(s string) (r3.Vec, error) {
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return r3.Vec{}, fmt.Errorf("%q is not a x,y,z vector", s)
	}
	var c [3]float64
	for i, v := range f {
		var err error
		c[i], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("%q is not a x,y,z vector: %w", s, err)
		}
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

func printVec(name string, v r3.Vec) {
	fmt.Printf("%-8s %12.6f %12.6f %12.6f\n", name, v.X, v.Y, v.Z)
}

func info(g *cube.Grid) {
	fmt.Println(g.Comments[0])
	fmt.Println(g.Comments[1])
	nx, ny, nz := g.Dims()
	fmt.Printf("atoms    %d\nshape    %d x %d x %d (%d voxels)\n", g.NAtoms(), nx, ny, nz, g.Len())
	printVec("origin", g.Origin)
	for d, a := range g.Axes {
		printVec(fmt.Sprintf("axis %d", d), a)
	}
	min, max, mean := g.Stats()
	fmt.Printf("values   min %.5e max %.5e mean %.5e\n", min, max, mean)
	for _, at := range g.Atoms {
		LogV(2, "atom", at.ID, at.Pos.X, at.Pos.Y, at.Pos.Z)
	}
}

func frame(g *cube.Grid) {
	f := g.Frame()
	if !f.Converted {
		LogV(1, "The grid seems to be in Angstrom already, the frame is the header's")
	}
	printVec("origin", f.Origin)
	for d, a := range f.Axes {
		printVec(fmt.Sprintf("axis %d", d), a)
	}
	fmt.Printf("steps    %12.6f %12.6f %12.6f\n", f.Steps[0], f.Steps[1], f.Steps[2])
}

func mask(g *cube.Grid, args []string) {
	fs := flag.NewFlagSet("mask", flag.ExitOnError)
	radius := fs.Float64("r", 1, "Radius of the sphere, in the units of the grid")
	center := fs.String("c", "0,0,0", "Center of the sphere, x,y,z, relative to the grid origin")
	out := fs.String("o", "", "If given, write the grid with the values outside the sphere set to 0 to this file")
	fs.Parse(args)
	c, err := parseVec(*center)
	if err != nil {
		log.Fatal(err)
	}
	m, err := g.MaskSphere(*radius, c)
	if err != nil {
		log.Fatal(err)
	}
	q, err := g.Integrate(m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("voxels   %d of %d\nintegral %.6e\n", m.Count(), g.Len(), q)
	if *out == "" {
		return
	}
	masked := g.Copy()
	for i, v := range m.Values() {
		masked.View()[i] *= v
	}
	masked.Comments[1] = fmt.Sprintf("masked: sphere R=%g at %g,%g,%g", *radius, c.X, c.Y, c.Z)
	if err := cube.FileWrite(*out, masked); err != nil {
		log.Fatal(err)
	}
	LogV(1, "Masked grid written to", *out)
}

func main() {
	verbose := flag.Int("v", 1, "Level of verbosity")
	flag.Usage = usage
	flag.Parse()
	verb = *verbose
	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	command := args[0]
	args = args[1:]
	//the mask flags go before the file name
	if command == "mask" {
		mask(readGrid(args[len(args)-1]), args[:len(args)-1])
		return
	}
	g := readGrid(args[0])
	switch command {
	case "info":
		info(g)
	case "frame":
		frame(g)
	case "convert":
		if len(args) < 2 {
			log.Fatal("convert needs an input and an output file")
		}
		if err := cube.FileWrite(args[1], g); err != nil {
			log.Fatal(err)
		}
		LogV(1, "Written", args[1])
	case "xyzr":
		if len(args) < 2 {
			log.Fatal("xyzr needs an input and an output file")
		}
		f, err := os.Create(args[1])
		if err != nil {
			log.Fatal(err)
		}
		if err := g.WriteXYZR(f); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		LogV(1, "Written", args[1])
	default:
		usage()
		os.Exit(1)
	}
}

func readGrid(name string) *cube.Grid {
	g, err := cube.FileRead(name)
	if err != nil {
		log.Fatal("Failed to read cube file: " + err.Error())
	}
	LogV(2, "Read", name)
	return g
}
