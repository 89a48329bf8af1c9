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

package xvg

import (
	"fmt"

	cube "github.com/mddavis/gocube"
)

// Error messages
const (
	ErrOpen       = "Couldn't read file"
	ErrColumns    = "Inconsistent number of columns"
	ErrNumber     = "Couldn't parse number"
	ErrEmptySlice = "Invalid value for begin or end"
)

// Error is the error type for the xvg package. It fulfills cube.FileError.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	line     int
	detail   string
	deco     []string
}

func newError(message, filename string, line int, detail string, deco ...string) *Error {
	return &Error{message: message, filename: filename, line: line, detail: detail, deco: deco}
}

func (err *Error) Error() string {
	s := "xvg"
	if err.filename != "" {
		s += " file " + err.filename
	}
	if err.line > 0 {
		s = fmt.Sprintf("%s line %d", s, err.line)
	}
	s += ": " + err.message
	if err.detail != "" {
		s += ": " + err.detail
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

// Line returns the line of the file where the problem was found, 0 if none.
func (err *Error) Line() int { return err.line }

// Message returns the general kind of error, one of the Err* constants.
func (err *Error) Message() string { return err.message }

// FileName returns the file associated with the error
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file
func (err *Error) Format() string { return "xvg" }

// Critical always returns true.
func (err *Error) Critical() bool { return true }

var _ cube.FileError = (*Error)(nil)

func errDecorate(err error, caller string) error {
	if e, ok := err.(cube.Decorator); ok {
		e.Decorate(caller)
	}
	return err
}
