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

/*Package v3 implements a Matrix type representing a set of points in 3D
cartesian space, i.e. an Nx3 row-major matrix. It is used throughout gocage
to hold the coordinates of sets of atoms. The type is backed by gonum's
mat.Dense, with restrictions coming from the fixed number of columns and a
few additions that turned out to be useful for cage analysis. Within the
package a "vector" is a 1x3 row of such a matrix, the cartesian coordinates
of one point.
*/
package v3
