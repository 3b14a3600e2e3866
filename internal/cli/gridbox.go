/*
 * gridbox.go, part of goDock.
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

	"github.com/spf13/cobra"

	"github.com/rmera/godock/report"
)

func newGridboxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gridbox",
		Short: "Print the grid box that run would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := a.gridBox(report.NewLogObserver(a.logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "center_x = %s\ncenter_y = %s\ncenter_z = %s\nsize_x = %s\nsize_y = %s\nsize_z = %s\n",
				box.CenterX, box.CenterY, box.CenterZ, box.SizeX, box.SizeY, box.SizeZ)
			return nil
		},
	}
}
