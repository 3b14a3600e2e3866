/*
 * pipeline.go, part of goDock.
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

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/engine"
)

//Docker docks one ligand into one receptor. *engine.VinaHandle implements it.
type Docker interface {
	Dock(ctx context.Context, job engine.DockJob) engine.Result
}

//Converter converts a molecule file between formats. *engine.OBabelHandle implements it.
type Converter interface {
	Convert(ctx context.Context, inFormat, in, out string) engine.Result
}

//Pipeline docks every ligand into every target, one pair at a time.
type Pipeline struct {
	Plan      Plan
	Docker    Docker
	Converter Converter
	Observer  Observer //can be nil
}

//Run processes all the ligand-target pairs, ligands in the outer loop, and
//returns one Outcome per processed pair. A failed pair never stops the run.
//If ctx is cancelled, Run returns before starting the next pair. ctx is also
//passed to the Docker and the Converter, and the engine handles kill the
//program they are running when it is cancelled, so the pair in progress
//usually ends as StatusDockingFailed and is still returned.
func (P Pipeline) Run(ctx context.Context, ligands []dock.Ligand, targets []dock.Target) []Outcome {
	if P.Observer == nil {
		P.Observer = NopObserver{}
	}
	outcomes := make([]Outcome, 0, len(ligands)*len(targets))
	for _, lig := range ligands {
		for _, tgt := range targets {
			if ctx.Err() != nil {
				return outcomes
			}
			P.Observer.PairStarted(lig, tgt)
			ini := time.Now()
			o := P.pair(ctx, lig, tgt)
			o.Duration = time.Since(ini)
			P.Observer.PairFinished(o)
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}

//pair runs all the steps for one ligand and one target.
func (P Pipeline) pair(ctx context.Context, lig dock.Ligand, tgt dock.Target) Outcome {
	paths := P.Plan.Paths(lig, tgt)
	o := Outcome{Ligand: lig, Target: tgt, Paths: paths}
	job := engine.DockJob{
		Receptor: tgt.PDBQT,
		Ligand:   lig.PDBQT,
		Box:      P.Plan.Box,
		Out:      paths.Docked,
		Log:      paths.Log,
	}
	o.Dock = P.Docker.Dock(ctx, job)
	if !o.Dock.OutputPresent {
		o.Status = StatusDockingFailed
		o.Err = o.Dock.Check()
		if o.Err == nil {
			o.Err = fmt.Errorf("docking output %s not found", paths.Docked)
		}
		return o
	}
	if !o.Dock.Succeeded {
		P.Observer.Warn("Docking exited with an error but produced output",
			"ligand", lig.Name, "target", tgt.Name, "exit_code", o.Dock.ExitCode, "stderr", strings.TrimSpace(o.Dock.Stderr))
	}

	pose, err := dock.ReadBestPose(paths.Docked)
	if err != nil {
		o.Status = StatusNoValidPose
		o.Err = err
		return o
	}
	o.Score, o.HasScore, o.Model = pose.Score, true, pose.Model
	if err = pose.WriteFile(paths.BestPDBQT); err != nil {
		o.Status = StatusPoseWriteFailed
		o.Err = err
		return o
	}
	if P.Plan.Archive {
		if o.Archived, err = dock.CompressFile(paths.Docked); err != nil {
			P.Observer.Warn("Could not archive docking output", "file", paths.Docked, "error", err)
		}
	}

	o.Convert = P.Converter.Convert(ctx, "pdbqt", paths.BestPDBQT, paths.BestPDB)
	switch {
	case !o.Convert.Succeeded:
		P.Observer.Warn("Open Babel failed converting "+paths.BestPDBQT, "stderr", convertDetail(o.Convert))
	case !o.Convert.OutputPresent:
		P.Observer.Warn("PDB file not created for " + paths.BestPDBQT)
	}

	if !dock.Exists(tgt.PDB) {
		o.Status = StatusReceptorMissing
		o.Err = fmt.Errorf("receptor PDB file not found: %s", tgt.PDB)
		return o
	}
	if !dock.Exists(paths.BestPDB) {
		o.Status = StatusConversionFailed
		o.Err = fmt.Errorf("ligand PDB file not found: %s", paths.BestPDB)
		if cerr := o.Convert.Check(); cerr != nil {
			o.Err = errors.Join(o.Err, cerr)
		}
		return o
	}
	if err = dock.BuildComplex(tgt.PDB, paths.BestPDB, paths.Complex); err != nil {
		o.Status = StatusComplexFailed
		o.Err = err
		return o
	}
	o.Status = StatusComplete
	return o
}

func convertDetail(r engine.Result) string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return fmt.Sprintf("exit code %d", r.ExitCode)
}
