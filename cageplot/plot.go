/*
 * plot.go, part of gocage.
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

//Package cageplot draws quick diagnostic plots from cage analyses.
package cageplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//WindowHistogram plots a histogram of window diameters into plotname
//(the extension selects the format, say .png or .svg). nbins <= 0 lets
//the plotter choose.
func WindowHistogram(diameters []float64, nbins int, title, plotname string) error {
	if len(diameters) == 0 {
		return fmt.Errorf("WindowHistogram: no diameters to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Window diameter (A)"
	p.Y.Label.Text = "Count"
	values := make(plotter.Values, len(diameters))
	copy(values, diameters)
	h, err := plotter.NewHist(values, nbins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}

//DiameterSeries plots one diameter value per structure, in order, say
//the void or largest-window diameter along a series of snapshots.
func DiameterSeries(diameters []float64, title, label, plotname string) error {
	if len(diameters) == 0 {
		return fmt.Errorf("DiameterSeries: no diameters to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Structure"
	p.Y.Label.Text = label
	pts := make(plotter.XYs, len(diameters))
	for i, d := range diameters {
		pts[i].X = float64(i)
		pts[i].Y = d
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points, plotter.NewGrid())
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}
