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
 *
 * */

// Package msms runs Michel Sanner's MSMS program to triangulate the
// solvent-excluded surface of a molecule, reads the vertices it
// produces, and samples electrostatic potential maps on them.
// MSMS, and its pdb_to_xyzrn script, must be obtained from its
// distributors. Please cite the MSMS reference if you use it.
package msms
