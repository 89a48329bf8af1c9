/*
 * xvg.go, part of gocube.
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

// Package xvg reads the .xvg time series written by the GROMACS analysis tools.
package xvg

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	cube "github.com/mddavis/gocube"
)

// NoEnd can be given as the end of a Slice to take all the rows after begin.
const NoEnd = math.MaxInt

// Data is the content of a .xvg file: the plot metadata plus a table of
// numbers with one row per line (normally, time in the first column).
type Data struct {
	Title   string
	XLabel  string
	YLabel  string
	Legends []string //Legends[i] is the legend of column i+1, if given.
	rows    [][]float64
}

// Len returns the number of rows.
func (D *Data) Len() int {
	return len(D.rows)
}

// NCols returns the number of columns, 0 if there are no rows.
func (D *Data) NCols() int {
	if len(D.rows) == 0 {
		return 0
	}
	return len(D.rows[0])
}

// Row returns the row i. It is not a copy.
func (D *Data) Row(i int) []float64 {
	return D.rows[i]
}

// Column returns a copy of the column i. It panics if i is out of range.
func (D *Data) Column(i int) []float64 {
	if i < 0 || i >= D.NCols() {
		panic(fmt.Sprintf("xvg: column %d out of range, %d columns", i, D.NCols()))
	}
	ret := make([]float64, len(D.rows))
	for j, r := range D.rows {
		ret[j] = r[i]
	}
	return ret
}

// Slice returns the rows from begin to end, not including end. Negative values count
// from the last row, and values past the ends are clipped, so Slice(0, NoEnd) returns
// all the rows and Slice(-10, NoEnd) the last 10. The returned Data shares the rows
// with D. It is an error if no row is left.
func (D *Data) Slice(begin, end int) (*Data, error) {
	b, e := clip(begin, len(D.rows)), clip(end, len(D.rows))
	if b >= e {
		return nil, newError(ErrEmptySlice, "", 0, fmt.Sprintf("begin %d, end %d, %d rows", begin, end, len(D.rows)), "Slice")
	}
	r := *D
	r.rows = D.rows[b:e]
	return &r, nil
}

func clip(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// FileRead reads the xvg file name. Files ending in .gz or .zst are decompressed.
func FileRead(name string) (*Data, error) {
	f, err := cube.OpenCompressed(name)
	if err != nil {
		return nil, newError(ErrOpen, name, 0, err.Error(), "FileRead")
	}
	defer f.Close()
	D, err := read(f, name)
	if err != nil {
		return nil, errDecorate(err, "FileRead")
	}
	return D, nil
}

// Read reads xvg data from r. Only the first data set is read, if there are several.
func Read(r io.Reader) (*Data, error) {
	return read(r, "")
}

func read(r io.Reader, filename string) (*Data, error) {
	D := new(Data)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		switch {
		case s == "" || s[0] == '#':
			continue
		case s[0] == '&':
			//end of the first set
			return D, nil
		case s[0] == '@':
			D.directive(s[1:])
			continue
		}
		f := strings.Fields(s)
		if n := D.NCols(); n != 0 && len(f) != n {
			return nil, newError(ErrColumns, filename, line, fmt.Sprintf("%d values, expected %d", len(f), n), "Read")
		}
		row := make([]float64, len(f))
		for i, v := range f {
			var err error
			row[i], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, newError(ErrNumber, filename, line, strconv.Quote(v), "Read")
			}
		}
		D.rows = append(D.rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, newError(ErrOpen, filename, line, err.Error(), "Read")
	}
	return D, nil
}

// maxLegends bounds the set numbers taken from legend directives.
const maxLegends = 1024

// directive takes the metadata we care about from a line starting with @.
func (D *Data) directive(s string) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "title"):
		D.Title = quoted(s)
	case strings.HasPrefix(s, "xaxis") && strings.Contains(s, "label"):
		D.XLabel = quoted(s)
	case strings.HasPrefix(s, "yaxis") && strings.Contains(s, "label"):
		D.YLabel = quoted(s)
	case strings.HasPrefix(s, "s") && strings.Contains(s, "legend"):
		f := strings.Fields(s)
		n, err := strconv.Atoi(strings.TrimPrefix(f[0], "s"))
		if err != nil || n < 0 || n >= maxLegends {
			return
		}
		for len(D.Legends) <= n {
			D.Legends = append(D.Legends, "")
		}
		D.Legends[n] = quoted(s)
	}
}

// quoted returns the text between the first and last double quotes in s.
func quoted(s string) string {
	b := strings.Index(s, `"`)
	e := strings.LastIndex(s, `"`)
	if b < 0 || e <= b {
		return ""
	}
	return s[b+1 : e]
}
