/*
 * plot.go, part of goDock.
 *
 * Copyright 2026 The goDock authors
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

package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/godock/pipeline"
)

//ErrNothingToPlot is returned by PlotScores when no outcome has a score.
var ErrNothingToPlot = errors.New("no scored pairs to plot")

//PlotScores saves a bar chart with the best score of each scored pair. The
//format is deduced from the extension of path (png, svg, pdf...).
func PlotScores(path string, outcomes []pipeline.Outcome) error {
	sc := scored(outcomes)
	if len(sc) == 0 {
		return ErrNothingToPlot
	}
	vals := make(plotter.Values, len(sc))
	labels := make([]string, len(sc))
	for i, o := range sc {
		vals[i] = o.Score
		labels[i] = o.Ligand.Name + "/" + o.Target.Name
	}
	p := plot.New()
	p.Title.Text = "Best docking scores"
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Affinity (kcal/mol)"
	p.Add(plotter.NewGrid())
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return fmt.Errorf("plot scores: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = text.XRight
	width := vg.Length(len(sc))*vg.Points(30) + 2*vg.Inch
	if err = p.Save(width, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot scores: %w", err)
	}
	return nil
}
