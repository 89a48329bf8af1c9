/*
 * doc.go, part of gocube.
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

/*
Package cube is the main package of the gocube library. It reads and writes
Gaussian cube files, the volumetric format used, among other things, to store
electrostatic potential maps, and provides a few operations on them.

gocube capabilities:

  - Reads/writes cube files, plain or compressed with gzip or zstd.
  - Converts the coordinate frame of a grid from Bohr to Angstrom.
  - Builds spherical masks over a grid, and integrates the grid over a mask
    (e.g. to get the charge inside a sphere from a density).
  - Samples a grid at arbitrary points by trilinear interpolation.
  - Writes the atoms of a cube as MSMS input, runs MSMS to triangulate a
    molecular surface, and samples a potential map on that surface (package msms).
  - Reads GROMACS xvg files (package xvg), builds 2D histograms from pairs of
    series (package histo) and plots them as interactive HTML or PNG
    (package chemplot).

The geometric routines (masks, sampling) assume an axis-aligned grid: only the
diagonal element of each axis vector is used. Cube files from the usual
programs are axis-aligned, but the format doesn't require it.
*/
package cube
