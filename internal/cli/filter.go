/*
 * filter.go, part of goDock.
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
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rmera/godock/internal/config"
	"github.com/rmera/godock/pipeline"
	"github.com/rmera/godock/report"
)

func newFilterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Apply the drug-likeness filter to the ligands and print the verdicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obs := report.NewLogObserver(a.logger)
			ligs, _, err := a.discover(obs)
			if err != nil {
				return err
			}
			verdicts := pipeline.Filter(cmd.Context(), ligs, a.calculator(), a.cfg.Filter.Rule, obs)
			obs.Filtered(len(pipeline.Accepted(verdicts)), len(ligs))
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LIGAND\tVERDICT\tDESCRIPTORS\tREASON")
			for _, v := range verdicts {
				verdict, desc, reason := "pass", v.Descriptors.String(), ""
				switch {
				case v.Err != nil:
					verdict, desc, reason = "skip", "-", v.Err.Error()
				case !v.Accepted:
					verdict, reason = "fail", strings.Join(v.Violations, "; ")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Ligand.Name, verdict, desc, reason)
			}
			return w.Flush()
		},
	}
	cmd.Flags().String("descriptors", config.DescriptorsOBabel, "descriptor source: obabel or sdf")
	return cmd
}
