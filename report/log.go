/*
 * log.go, part of goDock.
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

//Package report renders the progress and the results of a docking run: a
//pipeline.Observer that writes the run log, and renderers for the outcomes
//(YAML summary, score plot, Prometheus metrics file and console table).
package report

import (
	"fmt"
	"log/slog"
	"strings"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/pipeline"
)

//LogObserver writes the progress of a run to a slog.Logger.
//It implements pipeline.Observer.
type LogObserver struct {
	Logger *slog.Logger
}

//NewLogObserver returns an observer on logger, or on slog.Default if logger is nil.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{Logger: logger}
}

//Discovered reports the number of inputs found.
func (L *LogObserver) Discovered(ligands, targets int) {
	L.Logger.Info(fmt.Sprintf("Found %d ligands and %d targets.", ligands, targets))
}

func (L *LogObserver) FilterVerdict(v pipeline.Verdict) {
	switch {
	case v.Err != nil:
		L.Logger.Info(fmt.Sprintf("Skipped %s (descriptors unavailable)", v.Ligand.Name), "error", v.Err)
	case !v.Accepted:
		L.Logger.Info(fmt.Sprintf("Skipped %s (fails Lipinski filter)", v.Ligand.Name),
			"violations", strings.Join(v.Violations, "; "))
	default:
		L.Logger.Debug(fmt.Sprintf("%s passed Lipinski filter", v.Ligand.Name), "descriptors", v.Descriptors.String())
	}
}

//Filtered reports the filter totals.
func (L *LogObserver) Filtered(passed, total int) {
	L.Logger.Info(fmt.Sprintf("%d ligands passed Lipinski filter out of %d total.", passed, total))
}

//Chose reports the set of ligands that will be docked.
func (L *LogObserver) Chose(c pipeline.Choice) {
	if c == pipeline.ChooseFiltered {
		L.Logger.Info("Proceeding with filtered ligands only.")
		return
	}
	L.Logger.Info("Proceeding with all ligands (Lipinski filter ignored).")
}

//Grid reports where the grid box came from.
func (L *LogObserver) Grid(load dock.GridLoad) {
	if load.FileErr != nil {
		L.Logger.Warn("Grid box config missing or invalid.", "error", load.FileErr)
	}
	if load.AutoErr != nil {
		L.Logger.Warn("Could not compute the grid box from the reference ligand.", "error", load.AutoErr)
	}
	switch load.Origin {
	case dock.FromFile:
		L.Logger.Info("Grid parameters loaded.", "box", load.Box.String())
	default:
		L.Logger.Info("Grid parameters set from "+load.Origin.String()+".", "box", load.Box.String())
	}
}

//Starting reports the beginning of the docking loop.
func (L *LogObserver) Starting(pairs int) {
	L.Logger.Info("Starting sequential docking and complex creation...", "pairs", pairs)
}

func (L *LogObserver) PairStarted(lig dock.Ligand, tgt dock.Target) {
	L.Logger.Info(fmt.Sprintf("Docking %s with %s...", lig.Name, tgt.Name))
}

func (L *LogObserver) PairFinished(o pipeline.Outcome) {
	switch o.Status {
	case pipeline.StatusComplete:
		L.Logger.Info(fmt.Sprintf("Best pose and complex for %s with %s saved (score: %.2f)", o.Ligand.Name, o.Target.Name, o.Score),
			"duration", o.Duration)
	case pipeline.StatusDockingFailed:
		L.Logger.Error(fmt.Sprintf("Docking failed for %s with %s", o.Ligand.Name, o.Target.Name),
			"exit_code", o.Dock.ExitCode, "stderr", strings.TrimSpace(o.Dock.Stderr), "error", o.Err)
	case pipeline.StatusNoValidPose:
		L.Logger.Warn("No valid poses found in "+o.Paths.Docked, "error", o.Err)
	case pipeline.StatusReceptorMissing:
		L.Logger.Error("Receptor PDB file not found: " + o.Target.PDB)
	case pipeline.StatusConversionFailed:
		L.Logger.Error("Ligand PDB file not found: " + o.Paths.BestPDB)
	default:
		L.Logger.Error(fmt.Sprintf("Processing %s with %s failed", o.Ligand.Name, o.Target.Name),
			"status", o.Status.String(), "error", o.Err)
	}
}

func (L *LogObserver) Warn(msg string, args ...any) {
	L.Logger.Warn(msg, args...)
}

//Done reports the end of the run.
func (L *LogObserver) Done(outcomes []pipeline.Outcome) {
	complete := 0
	for _, o := range outcomes {
		if o.Complete() {
			complete++
		}
	}
	L.Logger.Info("Docking and complex generation completed for all ligand-target pairs.",
		"pairs", len(outcomes), "complete", complete)
}
