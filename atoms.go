/*
 * atoms.go, part of gocube.
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
	"log"
	"strconv"
	"strings"
)

// DefaultVdwRadius is used for elements without a tabulated radius.
const DefaultVdwRadius = 1.8

// Note that just common "bio-elements" are present
var numberSymbol = map[int]string{
	1:  "H",
	4:  "Be",
	6:  "C",
	7:  "N",
	8:  "O",
	9:  "F",
	11: "Na",
	12: "Mg",
	14: "Si",
	15: "P",
	16: "S",
	17: "Cl",
	19: "K",
	20: "Ca",
	24: "Cr",
	25: "Mn",
	26: "Fe",
	27: "Co",
	29: "Cu",
	30: "Zn",
	34: "Se",
	35: "Br",
	53: "I",
}

// A map for assigning van der Waals radii (A) to elements
// Values from 10.1021/j100785a001 and 10.1021/jp8111556
// metal radii from 10.1023/A:1011625728803
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

// Symbol returns the element symbol of the atom, from its ID, which can be an atomic
// number or a symbol. It returns an empty string if the element is not known.
func (A *Atom) Symbol() string {
	if n, err := strconv.Atoi(A.ID); err == nil {
		return numberSymbol[n]
	}
	s := strings.TrimSpace(A.ID)
	if s != "" {
		s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	}
	if _, ok := symbolVdwrad[s]; ok {
		return s
	}
	return ""
}

// VdwRadius returns the van der Waals radius of the atom in A, and false if
// the element is unknown, in which case DefaultVdwRadius is returned.
func (A *Atom) VdwRadius() (float64, bool) {
	r, ok := symbolVdwrad[A.Symbol()]
	if !ok {
		return DefaultVdwRadius, false
	}
	return r, true
}

// WriteXYZR writes the atoms of g in the xyzr format read by MSMS: one line per atom with
// the coordinates in Angstrom and the van der Waals radius. The atoms are placed in the
// same frame as the grid (see ToAngstrom).
func (g *Grid) WriteXYZR(w io.Writer) error {
	if g.NAtoms() == 0 {
		return domainError("no atoms in the grid", "WriteXYZR")
	}
	scale := 1.0
	if g.Frame().Converted {
		scale = BohrToAngstrom
	}
	unknown := 0
	b := bufio.NewWriter(w)
	for _, at := range g.Atoms {
		r, ok := at.VdwRadius()
		if !ok {
			unknown++
		}
		fmt.Fprintf(b, "%.6f %.6f %.6f %.2f\n", round6(scale*at.Pos.X), round6(scale*at.Pos.Y), round6(scale*at.Pos.Z), r)
	}
	if unknown > 0 {
		log.Printf("cube: %d atoms of unknown element got a radius of %.2f A", unknown, DefaultVdwRadius)
	}
	if err := b.Flush(); err != nil {
		return ioError(err, "", "WriteXYZR")
	}
	return nil
}
