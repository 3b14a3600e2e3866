/*
 * complex.go, part of goDock.
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
	"github.com/spf13/cobra"

	dock "github.com/rmera/godock"
)

func newComplexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complex <receptor.pdb> <ligand.pdb> <out.pdb>",
		Short: "Write a complex PDB: the receptor followed by the ligand",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dock.BuildComplex(args[0], args[1], args[2]); err != nil {
				return err
			}
			a.logger.Info("Complex written", "file", args[2])
			return nil
		},
	}
}
