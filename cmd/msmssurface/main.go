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

// msmssurface computes the molecular surface of a structure with MSMS and,
// optionally, the electrostatic potential from a cube file at each surface vertex.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	cube "github.com/mddavis/gocube"
	"github.com/mddavis/gocube/msms"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var verb int

// If level is larger or equal, prints the d arguments to stderr
// otherwise, does nothing.
func LogV(level int, d ...interface{}) {
	if level <= verb {
		fmt.Fprintln(os.Stderr, d...)
	}
}

func main() {
	outdir := flag.String("o", "msms_output", "Directory for the output files")
	bindir := flag.String("msms", os.ExpandEnv("$MSMS_HOME"), "Directory containing the pdb_to_xyzrn and msms programs. Empty to use the PATH")
	exe := flag.String("exe", "", "Name of the msms executable, if not the default one")
	probe := flag.Float64("probe", 1.4, "Radius of the solvent probe, in A")
	density := flag.Float64("density", 0, "Vertex density, in vertices per A^2. 0 for the msms default")
	cubename := flag.String("cube", "", "Cube file with the electrostatic potential to sample at the surface")
	timeout := flag.Duration("timeout", 10*time.Minute, "Maximum time for the surface calculation")
	verbose := flag.Int("v", 1, "Level of verbosity")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n  %s: [flags] structure.pdb\n  %s: -cube potential.cube [flags]\n\nWithout a PDB file, the atoms in the cube file are used.\n\nFlags:\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	verb = *verbose
	args := flag.Args()
	if len(args) < 1 && *cubename == "" {
		log.Fatal("msmssurface requires a PDB file or a cube file with atoms")
	}
	H := msms.NewHandle()
	H.SetBinDir(*bindir)
	H.SetExecutables("", *exe)
	H.SetOutputDir(*outdir)
	H.SetProbeRadius(*probe)
	H.SetDensity(*density)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	var g *cube.Grid
	if *cubename != "" {
		var err error
		g, err = cube.FileRead(*cubename)
		if err != nil {
			log.Fatal(err)
		}
	}
	var vertname, input string
	var err error
	if len(args) > 0 {
		input = args[0]
		vertname, err = H.Run(ctx, input)
	} else {
		input = *cubename
		vertname, err = runFromCube(ctx, H, g, *cubename)
	}
	if err != nil {
		log.Fatal(err)
	}
	verts, h, err := msms.VertFileRead(vertname)
	if err != nil {
		log.Fatal(err)
	}
	LogV(1, "Surface in", vertname, "with", len(verts), "vertices,", h.NSpheres, "spheres")
	if g == nil {
		return
	}
	pot, err := msms.SurfacePotential(g, verts)
	if err != nil {
		log.Fatal(err)
	}
	inside := make([]float64, 0, len(pot))
	for _, v := range pot {
		if !math.IsNaN(v) {
			inside = append(inside, v)
		}
	}
	fmt.Printf("vertices %d (%d inside the grid)\n", len(pot), len(inside))
	fmt.Printf("potential min %.5e max %.5e mean %.5e std %.5e\n", floats.Min(inside), floats.Max(inside), stat.Mean(inside, nil), stat.StdDev(inside, nil))
	potname := filepath.Join(H.OutputDir(), msms.Basename(input)+".pot")
	if err := writePotential(potname, verts, pot); err != nil {
		log.Fatal(err)
	}
	LogV(1, "Potential at each vertex written to", potname)
}

// runFromCube writes the atoms of g as MSMS input and runs MSMS on them.
func runFromCube(ctx context.Context, H *msms.Handle, g *cube.Grid, name string) (string, error) {
	if err := os.MkdirAll(H.OutputDir(), 0o755); err != nil {
		return "", err
	}
	xyzr := filepath.Join(H.OutputDir(), msms.Basename(name)+".xyzr")
	f, err := os.Create(xyzr)
	if err != nil {
		return "", err
	}
	if err := g.WriteXYZR(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	LogV(2, "Atoms from", name, "written to", xyzr)
	return H.RunXYZR(ctx, xyzr)
}

// writePotential writes one line per vertex: x, y, z and the potential (nan if outside the grid).
func writePotential(name string, verts []msms.Vertex, pot []float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for i, v := range verts {
		fmt.Fprintf(w, "%10.3f %10.3f %10.3f %14.6e\n", v.Pos.X, v.Pos.Y, v.Pos.Z, pot[i])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
