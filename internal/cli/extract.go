/*
 * extract.go, part of goDock.
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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	dock "github.com/rmera/godock"
)

func newExtractCmd(a *app) *cobra.Command {
	var out, pdb string
	cmd := &cobra.Command{
		Use:   "extract <docked.pdbqt>",
		Short: "Print or save the best pose of a docking output",
		Long: `Extract reads a Vina output, which can be zstd-compressed, and prints
the MODEL block with the lowest score. With --out the block is saved
instead, and with --pdb it is also converted to PDB with Open Babel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pose, err := dock.ReadBestPose(args[0])
			if err != nil {
				return err
			}
			a.logger.Info(fmt.Sprintf("Best pose in %s: model %d (score: %.2f)", args[0], pose.Model, pose.Score))
			if out == "" && pdb == "" {
				_, err = pose.WriteTo(cmd.OutOrStdout())
				return err
			}
			if out == "" {
				dir, err := os.MkdirTemp("", "godock")
				if err != nil {
					return err
				}
				defer os.RemoveAll(dir)
				out = filepath.Join(dir, "best"+dock.ExtPDBQT)
			}
			if err = pose.WriteFile(out); err != nil {
				return err
			}
			if pdb == "" {
				return nil
			}
			if err = obabel(a.cfg).Convert(cmd.Context(), "pdbqt", out, pdb).Check(); err != nil {
				return err
			}
			a.logger.Info("Best pose converted", "file", pdb)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the best pose to this PDBQT file")
	cmd.Flags().StringVar(&pdb, "pdb", "", "convert the best pose to this PDB file")
	return cmd
}
