/*
 * errors.go, part of gocube.
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
	"errors"
	"fmt"
	"strings"
)

// Sentinels for the three classes of failure. Every *Error unwraps to exactly one of them,
// so errors.Is(err, cube.ErrFormat) and friends work across decoration.
var (
	ErrFormat = errors.New("malformed cube data")
	ErrDomain = errors.New("argument out of domain")
	ErrIO     = errors.New("cube i/o failure")
)

// Messages
const (
	UnexpectedEOF   = "unexpected end of file in header"
	TooFewValues    = "fewer voxel values than declared in the header"
	TooManyValues   = "more voxel values than declared in the header"
	BadTokenCount   = "wrong number of fields"
	BadNumber       = "can't parse number"
	BadAxisCount    = "voxel count must be positive"
	BadAtomCount    = "atom count must not be negative"
	NilGrid         = "given nil grid"
	ShapeMismatch   = "shapes don't match"
	NonPositiveStep = "grid step along the diagonal must be positive"
	OutsideGrid     = "point outside the grid"
)

// Error is the error type returned by the cube package. It fulfills Decorator and FileError.
// Line is 1-based and Voxel is the linear (z-fastest) voxel index; either is -1 when
// it doesn't apply.
type Error struct {
	kind     error
	message  string
	filename string
	Line     int
	Voxel    int
	deco     []string
	cause    error
}

func newError(kind error, message, filename string, caller string) *Error {
	return &Error{kind: kind, message: message, filename: filename, Line: -1, Voxel: -1, deco: []string{caller}}
}

func formatError(message, filename string, line int, caller string) *Error {
	e := newError(ErrFormat, message, filename, caller)
	e.Line = line
	return e
}

func ioError(cause error, filename, caller string) *Error {
	e := newError(ErrIO, cause.Error(), filename, caller)
	e.cause = cause
	return e
}

func domainError(message, caller string) *Error {
	return newError(ErrDomain, message, "", caller)
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("cube")
	if err.filename != "" {
		fmt.Fprintf(&b, " file %s", err.filename)
	}
	if err.Line > 0 {
		fmt.Fprintf(&b, " line %d", err.Line)
	}
	if err.Voxel >= 0 {
		fmt.Fprintf(&b, " voxel %d", err.Voxel)
	}
	fmt.Fprintf(&b, ": %s: %s", err.kind, err.message)
	return b.String()
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the error class and, for I/O failures, the underlying error.
func (err *Error) Unwrap() []error {
	if err.cause != nil {
		return []error{err.kind, err.cause}
	}
	return []error{err.kind}
}

// FileName returns the file associated with the error, or an empty string.
func (err *Error) FileName() string { return err.filename }

// Format always returns "cube"
func (err *Error) Format() string { return "cube" }

// Critical is true for everything but domain errors, which only concern the arguments of one call.
func (err *Error) Critical() bool { return err.kind != ErrDomain }
