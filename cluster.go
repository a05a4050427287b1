/*
 * cluster.go, part of gocage.
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

package cage

import (
	v3 "github.com/mmarkowski/gocage/v3"
)

//DBSCAN labels. Points start unvisited; noise keeps labelNoise, cluster
//members get ids counting from 1.
const (
	labelUnvisited = 0
	labelNoise     = -1
)

//dbscan clusters 3-D points by density. Points are neighbours when
//within eps of each other; a point with at least minPts neighbours
//(itself included) is a core point and seeds or extends a cluster.
//A uniform grid with eps-sized cells bounds the neighbour search to the
//27 surrounding cells.
type dbscan struct {
	points *v3.Matrix
	eps    float64
	minPts int
	grid   map[[3]int][]int
	labels []int
}

func newDBSCAN(points *v3.Matrix, eps float64, minPts int) *dbscan {
	d := &dbscan{
		points: points,
		eps:    eps,
		minPts: minPts,
		grid:   make(map[[3]int][]int),
		labels: make([]int, points.NVecs()),
	}
	for i := 0; i < points.NVecs(); i++ {
		c := d.cellOf(i)
		d.grid[c] = append(d.grid[c], i)
	}
	return d
}

func (d *dbscan) cellOf(i int) [3]int {
	var c [3]int
	for k := 0; k < 3; k++ {
		v := d.points.At(i, k) / d.eps
		c[k] = int(v)
		if v < 0 && v != float64(c[k]) {
			c[k]--
		}
	}
	return c
}

//neighbors returns the indices within eps of point i, i itself included.
func (d *dbscan) neighbors(i int) []int {
	cell := d.cellOf(i)
	eps2 := d.eps * d.eps
	var found []int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := [3]int{cell[0] + dx, cell[1] + dy, cell[2] + dz}
				for _, j := range d.grid[key] {
					if d.sqDist(i, j) <= eps2 {
						found = append(found, j)
					}
				}
			}
		}
	}
	return found
}

func (d *dbscan) sqDist(i, j int) float64 {
	var s float64
	for k := 0; k < 3; k++ {
		diff := d.points.At(i, k) - d.points.At(j, k)
		s += diff * diff
	}
	return s
}

//cluster runs the scan and returns per-point labels (labelNoise for
//noise, cluster ids from 1) and the number of clusters found.
func (d *dbscan) cluster() ([]int, int) {
	nextID := 0
	for i := range d.labels {
		if d.labels[i] != labelUnvisited {
			continue
		}
		seed := d.neighbors(i)
		if len(seed) < d.minPts {
			d.labels[i] = labelNoise
			continue
		}
		nextID++
		d.labels[i] = nextID
		d.expand(seed, nextID)
	}
	return d.labels, nextID
}

//expand grows cluster id from the seed neighbourhood, breadth-first.
//Noise points reachable from a core point are border points and join the
//cluster, but never extend the frontier themselves.
func (d *dbscan) expand(queue []int, id int) {
	for head := 0; head < len(queue); head++ {
		j := queue[head]
		if d.labels[j] == labelNoise {
			d.labels[j] = id
			continue
		}
		if d.labels[j] != labelUnvisited {
			continue
		}
		d.labels[j] = id
		reach := d.neighbors(j)
		if len(reach) >= d.minPts {
			queue = append(queue, reach...)
		}
	}
}
