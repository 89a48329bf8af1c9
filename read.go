/*
 * read.go, part of gocube.
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

package cube

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// FileRead reads the cube file name. Files ending in .gz or .zst are
// decompressed on the fly.
func FileRead(name string) (*Grid, error) {
	f, err := OpenCompressed(name)
	if err != nil {
		return nil, errDecorate(err, "FileRead")
	}
	defer f.Close()
	g, err := read(f, name)
	if err != nil {
		return nil, errDecorate(err, "FileRead")
	}
	return g, nil
}

// Read reads a cube from r. The whole header and exactly Nx*Ny*Nz values
// must be present; otherwise an error (*Error, matching ErrFormat or ErrIO) is returned
// and no grid.
func Read(r io.Reader) (*Grid, error) {
	return read(r, "")
}

// lineReader keeps count of the lines read, for error reports.
type lineReader struct {
	r        *bufio.Reader
	line     int
	filename string
}

// next returns the next line without the newline. io.EOF is only returned
// when there is nothing left at all.
func (L *lineReader) next() (string, error) {
	s, err := L.r.ReadString('\n')
	if err != nil && !(err == io.EOF && s != "") {
		if err == io.EOF {
			return "", err
		}
		return "", ioError(err, L.filename, "lineReader.next")
	}
	L.line++
	return strings.TrimRight(s, "\r\n"), nil
}

// header returns the next line, with EOF turned into a format error.
func (L *lineReader) header(caller string) (string, error) {
	s, err := L.next()
	if err == io.EOF {
		return "", formatError(UnexpectedEOF, L.filename, L.line+1, caller)
	}
	return s, err
}

// record parses a "count x y z" header line.
func (L *lineReader) record(caller string) (int, r3.Vec, error) {
	var v r3.Vec
	s, err := L.header(caller)
	if err != nil {
		return 0, v, err
	}
	f := strings.Fields(s)
	if len(f) != 4 {
		return 0, v, formatError(fmt.Sprintf("%s: %d, expected 4 in %q", BadTokenCount, len(f), s), L.filename, L.line, caller)
	}
	n, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, v, formatError(fmt.Sprintf("%s: %q is not an integer", BadNumber, f[0]), L.filename, L.line, caller)
	}
	v, err = L.vec(f[1:], caller)
	return n, v, err
}

func (L *lineReader) vec(f []string, caller string) (r3.Vec, error) {
	var c [3]float64
	for i, s := range f[:3] {
		var err error
		c[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return r3.Vec{}, formatError(fmt.Sprintf("%s: %q", BadNumber, s), L.filename, L.line, caller)
		}
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

func read(r io.Reader, filename string) (*Grid, error) {
	L := &lineReader{r: bufio.NewReader(r), filename: filename}
	g := new(Grid)
	var err error
	for i := range g.Comments {
		g.Comments[i], err = L.header("Read")
		if err != nil {
			return nil, err
		}
	}
	var natoms int
	natoms, g.Origin, err = L.record("Read")
	if err != nil {
		return nil, err
	}
	if natoms < 0 {
		return nil, formatError(fmt.Sprintf("%s: %d", BadAtomCount, natoms), filename, L.line, "Read")
	}
	for d := 0; d < 3; d++ {
		g.N[d], g.Axes[d], err = L.record("Read")
		if err != nil {
			return nil, err
		}
		if g.N[d] <= 0 {
			return nil, formatError(fmt.Sprintf("%s: axis %d has %d", BadAxisCount, d, g.N[d]), filename, L.line, "Read")
		}
	}
	g.Atoms = make([]*Atom, natoms)
	for i := range g.Atoms {
		s, err := L.header("Read")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(s)
		if len(f) != 5 {
			return nil, formatError(fmt.Sprintf("%s: %d, expected 5 in atom line %q", BadTokenCount, len(f), s), filename, L.line, "Read")
		}
		//The second field (a charge, in Gaussian's output) is not kept.
		pos, err := L.vec(f[2:], "Read")
		if err != nil {
			return nil, err
		}
		g.Atoms[i] = &Atom{ID: f[0], Pos: pos}
	}
	if err = g.readValues(L); err != nil {
		return nil, errDecorate(err, "Read")
	}
	return g, nil
}

// readValues reads the volumetric data, whatever the line wrapping.
// The linear position p of a value goes to (p/(Ny*Nz), (p/Nz)%Ny, p%Nz),
// which is just p in the flat array.
func (g *Grid) readValues(L *lineReader) error {
	total := g.N[0] * g.N[1] * g.N[2]
	g.values = make([]float64, total)
	p := 0
	for {
		s, err := L.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		for _, tok := range strings.Fields(s) {
			if p >= total {
				e := formatError(fmt.Sprintf("%s (%d)", TooManyValues, total), L.filename, L.line, "readValues")
				e.Voxel = p
				return e
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				e := formatError(fmt.Sprintf("%s: %q", BadNumber, tok), L.filename, L.line, "readValues")
				e.Voxel = p
				return e
			}
			g.values[p] = v
			p++
		}
	}
	if p != total {
		e := formatError(fmt.Sprintf("%s: %d read, %d expected", TooFewValues, p, total), L.filename, L.line, "readValues")
		e.Voxel = p
		return e
	}
	return nil
}
