/*
 * common.go, part of goDock.
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

package cli

import (
	"context"
	"fmt"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/engine"
	"github.com/rmera/godock/internal/config"
	"github.com/rmera/godock/report"
)

//vina returns a Vina handle set up from the configuration.
func vina(cfg *config.Config) *engine.VinaHandle {
	v := engine.NewVinaHandle()
	v.SetCommand(cfg.Vina.Command)
	v.SetNumModes(cfg.Vina.NumModes)
	v.SetExhaustiveness(cfg.Vina.Exhaustiveness)
	v.SetnCPU(cfg.Vina.CPU)
	v.SetSeed(cfg.Vina.Seed)
	v.SetRunner(engine.ExecRunner{Timeout: cfg.Vina.Timeout})
	return v
}

func obabel(cfg *config.Config) *engine.OBabelHandle {
	o := engine.NewOBabelHandle()
	o.SetCommand(cfg.OBabel.Command)
	o.SetRunner(engine.ExecRunner{Timeout: cfg.OBabel.Timeout})
	return o
}

//unavailable is the descriptor source used when none can run. It rejects
//every ligand, so they are all logged as skipped.
type unavailable struct {
	reason string
}

func (U unavailable) Descriptors(ctx context.Context, sdf string) (dock.Descriptors, error) {
	return dock.Descriptors{}, fmt.Errorf("%w: %s", dock.ErrDescriptorUnavailable, U.reason)
}

//calculator returns the configured descriptor source. If Open Babel is needed
//and can't be found, it warns and returns a source that always fails.
func (a *app) calculator() dock.DescriptorCalculator {
	cfg := a.cfg
	if cfg.Filter.Descriptors == config.DescriptorsSDF {
		return dock.SDFDescriptors{}
	}
	if !engine.Available(cfg.OBabel.Command) {
		a.logger.Warn(fmt.Sprintf("%s not found, no ligand will pass the filter (set filter.descriptors to %q to read the descriptors from the SDF files)",
			cfg.OBabel.Command, config.DescriptorsSDF))
		return unavailable{reason: cfg.OBabel.Command + " not found"}
	}
	return obabel(cfg)
}

//gridBox loads the grid box from the file, the autobox reference or the prompts, and logs where it came from.
func (a *app) gridBox(obs *report.LogObserver) (dock.GridBox, error) {
	var auto dock.GridSource
	if a.cfg.Autobox.Ligand != "" {
		auto = dock.AutoboxSource{Reference: a.cfg.Autobox.Ligand, Padding: a.cfg.Autobox.Padding}
	}
	load, err := dock.LoadGridBox(a.cfg.GridFile, auto, a.prompter)
	obs.Grid(load)
	if err != nil {
		return load.Box, fmt.Errorf("grid box: %w", err)
	}
	return load.Box, nil
}

//discover lists the ligands and targets and logs how many were found.
func (a *app) discover(obs *report.LogObserver) ([]dock.Ligand, []dock.Target, error) {
	ligs, err := dock.DiscoverLigands(a.cfg.Dirs.Ligands)
	if err != nil {
		return nil, nil, err
	}
	tgts, err := dock.DiscoverTargets(a.cfg.Dirs.Targets)
	if err != nil {
		return nil, nil, err
	}
	obs.Discovered(len(ligs), len(tgts))
	return ligs, tgts, nil
}
