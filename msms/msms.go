/*
 * msms.go, part of gocube.
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
//In order to use this part of the library you need the MSMS program, which must be obtained from its distributors.

package msms

import (
	"bytes"
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Default names of the programs, as distributed.
const (
	DefaultXYZRN = "pdb_to_xyzrn"
	DefaultMSMS  = "msms.x86_64Linux2.2.6.1"
)

// Handle runs MSMS on structure files. The default values are NOT considered
// part of the API, so they can always change.
type Handle struct {
	binDir      string
	xyzrn       string
	msms        string
	outDir      string
	probeRadius float64
	density     float64
}

// NewHandle returns a Handle with the default settings.
func NewHandle() *Handle {
	run := new(Handle)
	run.SetDefaults()
	return run
}

//Handle methods

// SetDefaults sets the default values: programs in $MSMS_HOME (or in the PATH, if that
// variable is not defined), results in the current directory, a 1.4 A probe
// and MSMS's own default vertex density.
func (H *Handle) SetDefaults() {
	H.binDir = os.ExpandEnv("$MSMS_HOME")
	H.xyzrn = DefaultXYZRN
	H.msms = DefaultMSMS
	H.outDir = "."
	H.probeRadius = 1.4
	H.density = 0
}

// SetBinDir sets the directory containing both programs. The empty string means the PATH will be searched.
func (H *Handle) SetBinDir(dir string) {
	H.binDir = dir
}

// SetExecutables sets the names of the pdb_to_xyzrn and msms programs.
// Empty strings leave the current value.
func (H *Handle) SetExecutables(xyzrn, msms string) {
	if xyzrn != "" {
		H.xyzrn = xyzrn
	}
	if msms != "" {
		H.msms = msms
	}
}

// SetOutputDir sets the directory where the .xyz input and the surface files go.
// It is created when needed.
func (H *Handle) SetOutputDir(dir string) {
	if dir == "" {
		dir = "."
	}
	H.outDir = dir
}

// OutputDir returns the directory where the results go.
func (H *Handle) OutputDir() string {
	return H.outDir
}

// SetProbeRadius sets the radius of the solvent probe, in A.
func (H *Handle) SetProbeRadius(r float64) {
	H.probeRadius = r
}

// SetDensity sets the vertex density (vertices per A^2). 0 leaves MSMS's default.
func (H *Handle) SetDensity(d float64) {
	H.density = d
}

// command returns the full path to the program name, or just the name if no
// directory is set.
func (H *Handle) command(name string) string {
	if H.binDir == "" {
		return name
	}
	return filepath.Join(H.binDir, name)
}

// Basename returns the name of the structure file pdb without directory and extension,
// which is the name used for all the files produced.
func Basename(pdb string) string {
	b := filepath.Base(pdb)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

// Run converts the structure file pdb to the MSMS input format with pdb_to_xyzrn
// and runs MSMS on it. It waits for both programs, and returns the name of the
// vertex file produced. The programs are killed if ctx is done first.
func (H *Handle) Run(ctx context.Context, pdb string) (string, error) {
	if pdb == "" {
		return "", newError(ErrNoPDB, "", "", nil, "Run")
	}
	if err := os.MkdirAll(H.outDir, 0o755); err != nil {
		return "", newError(ErrCantInput, H.outDir, "", err, "os.MkdirAll", "Run")
	}
	base := filepath.Join(H.outDir, Basename(pdb))
	xyzname := base + ".xyz"
	xyz, err := os.Create(xyzname)
	if err != nil {
		return "", newError(ErrCantInput, xyzname, "", err, "os.Create", "Run")
	}
	var stderr bytes.Buffer
	conv := exec.CommandContext(ctx, H.command(H.xyzrn), pdb)
	conv.Stdout = xyz
	conv.Stderr = &stderr
	log.Printf("msms: %s", strings.Join(conv.Args, " "))
	err = conv.Run()
	if cerr := xyz.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return "", newError(ErrNotRunning, pdb, strings.TrimSpace(stderr.String()), err, "exec.Run", "Run")
	}
	vert, err := H.msmsRun(ctx, xyzname, base)
	if err != nil {
		return "", errDecorate(err, "Run")
	}
	return vert, nil
}

// RunXYZR runs MSMS on a file already in the xyzr format (x, y, z and radius per line),
// such as the one written by cube.Grid.WriteXYZR. It returns the name of the vertex file.
func (H *Handle) RunXYZR(ctx context.Context, xyzr string) (string, error) {
	if xyzr == "" {
		return "", newError(ErrNoPDB, "", "", nil, "RunXYZR")
	}
	if err := os.MkdirAll(H.outDir, 0o755); err != nil {
		return "", newError(ErrCantInput, H.outDir, "", err, "os.MkdirAll", "RunXYZR")
	}
	vert, err := H.msmsRun(ctx, xyzr, filepath.Join(H.outDir, Basename(xyzr)))
	if err != nil {
		return "", errDecorate(err, "RunXYZR")
	}
	return vert, nil
}

// msmsRun runs msms on the input file xyz, producing base.vert and base.face.
func (H *Handle) msmsRun(ctx context.Context, xyz, base string) (string, error) {
	args := []string{"-if", xyz, "-of", base, "-probe_radius", strconv.FormatFloat(H.probeRadius, 'f', -1, 64)}
	if H.density > 0 {
		args = append(args, "-density", strconv.FormatFloat(H.density, 'f', -1, 64))
	}
	var stderr bytes.Buffer
	surf := exec.CommandContext(ctx, H.command(H.msms), args...)
	surf.Stderr = &stderr
	log.Printf("msms: %s", strings.Join(surf.Args, " "))
	if err := surf.Run(); err != nil {
		return "", newError(ErrNotRunning, xyz, strings.TrimSpace(stderr.String()), err, "exec.Run", "msmsRun")
	}
	vert := base + ".vert"
	if _, err := os.Stat(vert); err != nil {
		return "", newError(ErrNoSurface, vert, "", err, "os.Stat", "msmsRun")
	}
	return vert, nil
}
