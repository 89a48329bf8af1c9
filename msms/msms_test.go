/*
 * msms_test.go, part of gocube.
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

package msms

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	cube "github.com/mddavis/gocube"
	"gonum.org/v1/gonum/spatial/r3"
)

// fakePrograms writes shell scripts standing for pdb_to_xyzrn and msms in a temporary
// directory. The fake msms copies the sample vertex file to the requested output,
// and records its arguments. If slow is true, it never finishes on its own.
func fakePrograms(Te *testing.T, slow bool) string {
	if runtime.GOOS == "windows" {
		Te.Skip("needs a POSIX shell")
	}
	vert, err := filepath.Abs("../test/sample.vert")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	xyzrn := "#!/bin/sh\necho \"0.0 0.0 0.0 1.52 1 O_1 from $1\"\n"
	msms := "#!/bin/sh\necho \"$@\" > \"$4.args\"\ncp \"" + vert + "\" \"$4.vert\"\n"
	if slow {
		msms = "#!/bin/sh\nexec sleep 30\n"
	}
	for name, script := range map[string]string{DefaultXYZRN: xyzrn, DefaultMSMS: msms} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
			Te.Fatal(err)
		}
	}
	return dir
}

func TestRun(Te *testing.T) {
	bin := fakePrograms(Te, false)
	out := filepath.Join(Te.TempDir(), "surf")
	H := NewHandle()
	H.SetBinDir(bin)
	H.SetOutputDir(out)
	H.SetProbeRadius(1.5)
	H.SetDensity(3)
	vert, err := H.Run(context.Background(), "/some/where/protein.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if vert != filepath.Join(out, "protein.vert") {
		Te.Errorf("vertex file %s", vert)
	}
	xyz, err := os.ReadFile(filepath.Join(out, "protein.xyz"))
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(xyz), "from /some/where/protein.pdb") {
		Te.Errorf("unexpected xyzrn output %q", xyz)
	}
	args, err := os.ReadFile(filepath.Join(out, "protein.args"))
	if err != nil {
		Te.Fatal(err)
	}
	base := filepath.Join(out, "protein")
	expected := "-if " + base + ".xyz -of " + base + " -probe_radius 1.5 -density 3"
	if strings.TrimSpace(string(args)) != expected {
		Te.Errorf("msms called with %q, expected %q", strings.TrimSpace(string(args)), expected)
	}
	verts, h, err := VertFileRead(vert)
	if err != nil {
		Te.Fatal(err)
	}
	if len(verts) != h.NVertices || len(verts) != 4 {
		Te.Errorf("read %d vertices, header says %d", len(verts), h.NVertices)
	}
}

// TestRunXYZR builds the MSMS input from the atoms of a cube file.
func TestRunXYZR(Te *testing.T) {
	bin := fakePrograms(Te, false)
	g, err := cube.FileRead("../test/example.cube")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	xyzr := filepath.Join(dir, "example.xyzr")
	f, err := os.Create(xyzr)
	if err != nil {
		Te.Fatal(err)
	}
	if err := g.WriteXYZR(f); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	H := NewHandle()
	H.SetBinDir(bin)
	H.SetOutputDir(dir)
	vert, err := H.RunXYZR(context.Background(), xyzr)
	if err != nil {
		Te.Fatal(err)
	}
	if vert != filepath.Join(dir, "example.vert") {
		Te.Errorf("vertex file %s", vert)
	}
	args, err := os.ReadFile(filepath.Join(dir, "example.args"))
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(string(args), "-if "+xyzr+" ") {
		Te.Errorf("msms called with %q", args)
	}
}

func TestRunErrors(Te *testing.T) {
	bin := fakePrograms(Te, true)
	H := NewHandle()
	H.SetBinDir(bin)
	H.SetOutputDir(Te.TempDir())
	var e *Error
	if _, err := H.Run(context.Background(), ""); !errors.As(err, &e) || e.Message() != ErrNoPDB {
		Te.Errorf("expected %q, got %v", ErrNoPDB, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := H.Run(ctx, "protein.pdb")
	if !errors.As(err, &e) || e.Message() != ErrNotRunning {
		Te.Errorf("expected %q, got %v", ErrNotRunning, err)
	}
	if time.Since(start) > 20*time.Second {
		Te.Error("the program was not killed when the context expired")
	}
	H.SetBinDir(Te.TempDir()) //no programs there
	if _, err := H.Run(context.Background(), "protein.pdb"); !errors.As(err, &e) || e.Message() != ErrNotRunning {
		Te.Errorf("expected %q, got %v", ErrNotRunning, err)
	}
	if e.FileName() != "protein.pdb" || !e.Critical() {
		Te.Errorf("error for %q, critical: %v", e.FileName(), e.Critical())
	}
}

func TestReadVert(Te *testing.T) {
	verts, h, err := VertFileRead("../test/sample.vert")
	if err != nil {
		Te.Fatal(err)
	}
	if h.NVertices != 4 || h.NSpheres != 2 || h.Density != 1 || h.Probe != 1.4 {
		Te.Errorf("header %+v", *h)
	}
	v := verts[2]
	if v.Pos != (r3.Vec{X: -5}) || v.Normal != (r3.Vec{X: -1}) || v.Face != 12 || v.Sphere != 1 || v.Type != 2 || v.Name != "O_1" {
		Te.Errorf("third vertex %+v", v)
	}
	for _, c := range []struct {
		name, text string
	}{
		{"missing vertex", "# c\n2 1 1.0 1.4\n0 0 0 0 0 1 0 1 1\n"},
		{"extra vertex", "1 1 1.0 1.4\n0 0 0 0 0 1 0 1 1\n0 0 0 0 0 1 0 1 1\n"},
		{"short line", "1 1 1.0 1.4\n0 0 0 0 0 1 0 1\n"},
		{"bad number", "1 1 1.0 1.4\n0 0 x 0 0 1 0 1 1\n"},
		{"bad count", "one 1 1.0 1.4\n"},
		{"empty", "# nothing\n"},
		{"negative count", "# MSMS\n-3 10 1.0 1.4\n"},
		{"negative spheres", "1 -1 1.0 1.4\n0 0 0 0 0 1 0 1 1\n"},
		{"huge count", "2000000000 1 1.0 1.4\n0 0 0 0 0 1 0 1 1\n"},
	} {
		_, _, err := ReadVert(strings.NewReader(c.text))
		var e *Error
		if !errors.As(err, &e) || e.Message() != ErrMalformed {
			Te.Errorf("%s: expected %q, got %v", c.name, ErrMalformed, err)
		}
	}
	if _, _, err := VertFileRead("../test/nonexistent.vert"); err == nil {
		Te.Error("no error reading a missing file")
	}
}

func TestSurfacePotential(Te *testing.T) {
	g, err := cube.NewGrid(r3.Vec{}, [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}, [3]int{4, 4, 4}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				g.Set(i, j, k, float64(i))
			}
		}
	}
	verts, _, err := VertFileRead("../test/sample.vert")
	if err != nil {
		Te.Fatal(err)
	}
	pot, err := SurfacePotential(g, verts)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range verts {
		if i == 2 {
			if !math.IsNaN(pot[i]) {
				Te.Errorf("vertex outside the grid got %g", pot[i])
			}
			continue
		}
		//the grid is in Bohr, the vertices in Angstrom
		if expected := v.Pos.X / cube.BohrToAngstrom; math.Abs(pot[i]-expected) > 1e-9 {
			Te.Errorf("vertex %d: %g, expected %g", i, pot[i], expected)
		}
	}
	var e *Error
	if _, err := SurfacePotential(g, []Vertex{{Pos: r3.Vec{X: 100}}}); !errors.As(err, &e) || e.Message() != ErrNoneInside {
		Te.Errorf("expected %q, got %v", ErrNoneInside, err)
	}
	if _, err := SurfacePotential(nil, verts); !errors.As(err, &e) || e.Message() != ErrNilGrid {
		Te.Errorf("expected %q, got %v", ErrNilGrid, err)
	}
	if _, err := SurfacePotential(g, nil); !errors.As(err, &e) || e.Message() != ErrEmptySurface {
		Te.Errorf("expected %q, got %v", ErrEmptySurface, err)
	}
}
