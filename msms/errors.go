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

package msms

import (
	"fmt"

	cube "github.com/mddavis/gocube"
)

// Error messages
const (
	ErrNotRunning   = "Couldn't run program"
	ErrCantInput    = "Can't prepare input"
	ErrNoSurface    = "Program didn't produce a surface"
	ErrMalformed    = "Malformed vertex file"
	ErrCantRead     = "Can't read vertex file"
	ErrNoneInside   = "No vertex inside the grid"
	ErrNoPDB        = "Given no structure file"
	ErrNilGrid      = "Given nil grid"
	ErrEmptySurface = "Given no vertices"
)

// Error is the error type of the msms package. It fulfills cube.FileError.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	detail   string
	deco     []string
	critical bool
	cause    error
}

func newError(message, filename, detail string, cause error, deco ...string) *Error {
	return &Error{message: message, filename: filename, detail: detail, cause: cause, deco: deco, critical: true}
}

func (err *Error) Error() string {
	s := "msms"
	if err.filename != "" {
		s += " file " + err.filename
	}
	s += ": " + err.message
	if err.detail != "" {
		s += ": " + err.detail
	}
	if err.cause != nil {
		s = fmt.Sprintf("%s: %v", s, err.cause)
	}
	return s
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the underlying error, if any.
func (err *Error) Unwrap() error { return err.cause }

// FileName returns the file associated with the error
func (err *Error) FileName() string { return err.filename }

// Format returns the name of the program
func (err *Error) Format() string { return "msms" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

// Message returns the general kind of error, one of the Err* constants.
func (err *Error) Message() string { return err.message }

var _ cube.FileError = (*Error)(nil)

func errDecorate(err error, caller string) error {
	if e, ok := err.(cube.Decorator); ok {
		e.Decorate(caller)
	}
	return err
}
