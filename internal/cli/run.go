/*
 * run.go, part of goDock.
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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/godock/engine"
	"github.com/rmera/godock/internal/config"
	"github.com/rmera/godock/pipeline"
	"github.com/rmera/godock/report"
)

const choiceQuestion = "Dock only filtered ligands (Y) or all ligands (N)? [Y/N]: "

func newRunCmd(a *app) *cobra.Command {
	var filtered, all bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Filter, dock and build complexes for every ligand-target pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case filtered:
				a.cfg.Filter.Mode = config.FilterFiltered
			case all:
				a.cfg.Filter.Mode = config.FilterAll
			}
			return a.run(cmd)
		},
	}
	cmd.Flags().BoolVar(&filtered, "filtered", false, "dock only the ligands that pass the filter, without asking")
	cmd.Flags().BoolVar(&all, "all", false, "dock all the ligands, without asking")
	cmd.MarkFlagsMutuallyExclusive("filtered", "all")
	cmd.Flags().String("descriptors", config.DescriptorsOBabel, "descriptor source: obabel or sdf")
	cmd.Flags().Bool("archive", false, "compress the docking outputs with zstd after extracting the best pose")
	cmd.Flags().String("summary", "", "write a YAML run summary to this file")
	cmd.Flags().String("plot", "", "write a bar chart of the best scores to this file (png, svg, pdf)")
	cmd.Flags().String("metrics", "", "write Prometheus metrics to this file")
	cmd.Flags().String("vina", engine.VinaCommand, "Vina executable")
	cmd.Flags().String("obabel", engine.OBabelCommand, "Open Babel executable")
	cmd.Flags().Int("cpu", 0, "CPUs for each Vina run (0: all)")
	cmd.Flags().Int("seed", 0, "Vina random seed (0: random)")
	return cmd
}

//choose asks the user, if configured so, whether only the filtered ligands are docked.
func (a *app) choose() pipeline.Choice {
	switch a.cfg.Filter.Mode {
	case config.FilterFiltered:
		return pipeline.ChooseFiltered
	case config.FilterAll:
		return pipeline.ChooseAll
	}
	ans, err := a.prompter.Ask(choiceQuestion)
	if err != nil {
		a.logger.Warn("could not read the answer, docking all ligands", "error", err)
	}
	return pipeline.ParseChoice(ans)
}

func (a *app) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := a.cfg
	obs := report.NewLogObserver(a.logger)
	if !engine.Available(cfg.Vina.Command) {
		return fmt.Errorf("docking engine %s not found", cfg.Vina.Command)
	}
	if !engine.Available(cfg.OBabel.Command) {
		a.logger.Warn(cfg.OBabel.Command + " not found, best poses won't be converted to PDB and no complexes will be built")
	}
	dirs := cfg.Dirs.Pipeline()
	if err := dirs.Ensure(); err != nil {
		return err
	}
	ligs, tgts, err := a.discover(obs)
	if err != nil {
		return err
	}
	verdicts := pipeline.Filter(ctx, ligs, a.calculator(), cfg.Filter.Rule, obs)
	obs.Filtered(len(pipeline.Accepted(verdicts)), len(ligs))
	choice := a.choose()
	obs.Chose(choice)
	selected := choice.Ligands(ligs, verdicts)

	box, err := a.gridBox(obs)
	if err != nil {
		return err
	}
	p := pipeline.Pipeline{
		Plan: pipeline.Plan{
			Dirs:    dirs,
			Box:     box,
			Rule:    cfg.Filter.Rule,
			Archive: cfg.Archive,
		},
		Docker:    vina(cfg),
		Converter: obabel(cfg),
		Observer:  obs,
	}
	obs.Starting(len(selected) * len(tgts))
	outcomes := p.Run(ctx, selected, tgts)
	obs.Done(outcomes)
	if err := ctx.Err(); err != nil {
		a.logger.Warn("run interrupted", "error", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Table(outcomes))
	return a.writeReports(outcomes)
}

//writeReports writes the optional outputs. A failed report doesn't stop the others.
func (a *app) writeReports(outcomes []pipeline.Outcome) error {
	var errs []error
	rep := a.cfg.Report
	if rep.Summary != "" {
		if err := report.WriteSummary(rep.Summary, a.runID, report.Summarize(outcomes), outcomes); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("Summary written", "file", rep.Summary)
		}
	}
	if rep.Plot != "" {
		err := report.PlotScores(rep.Plot, outcomes)
		switch {
		case errors.Is(err, report.ErrNothingToPlot):
			a.logger.Warn("No scores to plot")
		case err != nil:
			errs = append(errs, err)
		default:
			a.logger.Info("Score plot written", "file", rep.Plot)
		}
	}
	if rep.Metrics != "" {
		if err := report.WriteMetrics(rep.Metrics, outcomes); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("Metrics written", "file", rep.Metrics)
		}
	}
	return errors.Join(errs...)
}
