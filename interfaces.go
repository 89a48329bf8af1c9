/*
 * interfaces.go, part of gocube.
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

import "gonum.org/v1/gonum/spatial/r3"

// Decorator is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Decorator interface {
	Error() string
	//Decorate adds the name of a caller (plus, optionally, ": extra info") to the error's trail
	//and returns the trail. An empty string just returns the current trail.
	Decorate(string) []string
}

// FileError is a Decorator that knows which file, and which format, it came from.
type FileError interface {
	Decorator
	FileName() string
	Format() string
	Critical() bool
}

// Framer is anything that places a regular grid in space, i.e. an origin plus
// one step vector per axis. Grid and Frame implement it.
type Framer interface {
	Start() r3.Vec
	Step(axis int) r3.Vec
}

// Volume is a read-only view of a dense 3D scalar field.
type Volume interface {
	Dims() (nx, ny, nz int)
	At(i, j, k int) float64
}

// errDecorate adds caller to the trail of err if err implements Decorator.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Decorator); ok {
		e.Decorate(caller)
	}
	return err
}
