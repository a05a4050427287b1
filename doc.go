/*
 * doc.go, part of gocage.
 *
 * Copyright 2019 The gocage authors
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

//Package cage analyzes porous molecular structures: it measures the
//internal void of a cage molecule, finds the windows connecting that
//void to the outside and measures their diameters, and rebuilds
//molecules that periodic boundary conditions left split across unit
//cell faces. Geometry is handled through the v3 subpackage, which wraps
//gonum matrices as collections of 3-D row vectors.
package cage
