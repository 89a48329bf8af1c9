/*
 * vert.go, part of gocube.
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

package msms

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cube "github.com/mddavis/gocube"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is one point of a triangulated surface, as written by MSMS.
type Vertex struct {
	Pos    r3.Vec
	Normal r3.Vec
	Face   int    //0 if the vertex is not on an analytical face
	Sphere int    //1-based index of the closest atom
	Type   int    //1 for vertices on a single sphere (contact), 2 and 3 for reentrant.
	Name   string //only present if the input had atom names
}

// Header is the information in the count line of a .vert file.
type Header struct {
	NVertices int
	NSpheres  int
	Density   float64
	Probe     float64
}

// VertFileRead reads the MSMS vertex file name. Compressed files are accepted, as in cube.FileRead.
func VertFileRead(name string) ([]Vertex, *Header, error) {
	f, err := cube.OpenCompressed(name)
	if err != nil {
		return nil, nil, newError(ErrCantRead, name, "", err, "VertFileRead")
	}
	defer f.Close()
	v, h, err := readVert(f, name)
	if err != nil {
		return nil, nil, errDecorate(err, "VertFileRead")
	}
	return v, h, nil
}

// ReadVert reads MSMS vertices from r.
func ReadVert(r io.Reader) ([]Vertex, *Header, error) {
	return readVert(r, "")
}

func readVert(r io.Reader, filename string) ([]Vertex, *Header, error) {
	sc := bufio.NewScanner(r)
	line := 0
	malformed := func(format string, a ...interface{}) error {
		return newError(ErrMalformed, filename, fmt.Sprintf("line %d: ", line)+fmt.Sprintf(format, a...), nil, "ReadVert")
	}
	var h *Header
	var verts []Vertex
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		f := strings.Fields(s)
		if h == nil {
			if len(f) < 4 {
				return nil, nil, malformed("count line has %d fields, expected 4", len(f))
			}
			h = new(Header)
			var errs [4]error
			h.NVertices, errs[0] = strconv.Atoi(f[0])
			h.NSpheres, errs[1] = strconv.Atoi(f[1])
			h.Density, errs[2] = strconv.ParseFloat(f[2], 64)
			h.Probe, errs[3] = strconv.ParseFloat(f[3], 64)
			for _, e := range errs {
				if e != nil {
					return nil, nil, malformed("can't read count line: %v", e)
				}
			}
			if h.NVertices < 0 || h.NSpheres < 0 {
				return nil, nil, malformed("negative count in %q", s)
			}
			//the count is only a claim until the vertices are read.
			verts = make([]Vertex, 0, min(h.NVertices, 1<<16))
			continue
		}
		if len(f) < 9 {
			return nil, nil, malformed("vertex line has %d fields, expected at least 9", len(f))
		}
		var c [6]float64
		for i := range c {
			var err error
			c[i], err = strconv.ParseFloat(f[i], 64)
			if err != nil {
				return nil, nil, malformed("can't parse %q", f[i])
			}
		}
		var n [3]int
		for i := range n {
			var err error
			n[i], err = strconv.Atoi(f[6+i])
			if err != nil {
				return nil, nil, malformed("can't parse %q", f[6+i])
			}
		}
		v := Vertex{
			Pos:    r3.Vec{X: c[0], Y: c[1], Z: c[2]},
			Normal: r3.Vec{X: c[3], Y: c[4], Z: c[5]},
			Face:   n[0],
			Sphere: n[1],
			Type:   n[2],
		}
		if len(f) > 9 {
			v.Name = f[9]
		}
		verts = append(verts, v)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, newError(ErrMalformed, filename, "", err, "bufio.Scanner", "ReadVert")
	}
	if h == nil {
		return nil, nil, malformed("no count line")
	}
	if len(verts) != h.NVertices {
		return nil, nil, malformed("%d vertices read, %d declared", len(verts), h.NVertices)
	}
	return verts, h, nil
}
