/*
 * root.go, part of goDock.
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

//Package cli is the goDock command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/internal/config"
)

//Version is set at build time.
var Version = "0.1.0"

//app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	closeLog   func() error
	runID      string
	prompter   dock.Prompter
}

//NewRootCmd returns the godock command with all its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "godock",
		Short: "Batch molecular docking with AutoDock Vina",
		Long: `goDock docks every ligand in a directory into every receptor in another
one with AutoDock Vina, optionally keeping only the drug-like ligands. For
each pair it saves the best pose as PDBQT and PDB (via Open Babel) and a
receptor-ligand complex PDB.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || (cmd.HasParent() && cmd.Parent().Name() == "completion") {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (default "+config.DefaultFile+" if present)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().String("run-log", "run_log.txt", "append-only run log")
	root.PersistentFlags().String("grid", "gdf.txt", "grid box file")
	root.PersistentFlags().String("autobox", "", "reference ligand to compute the grid box if the grid file is missing or invalid")
	root.PersistentFlags().Float64("padding", dock.DefaultPadding, "autobox padding around the reference ligand, in Å")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newFilterCmd(a))
	root.AddCommand(newExtractCmd(a))
	root.AddCommand(newGridboxCmd(a))
	root.AddCommand(newComplexCmd(a))
	return root
}

//setup loads the configuration and opens the run log.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	level, _ := cfg.Level() //already validated
	logger, closer := config.SetupLogger(cfg.RunLog, level, cmd.ErrOrStderr())
	a.runID = uuid.NewString()
	a.logger = logger.With("run_id", a.runID)
	a.closeLog = closer
	a.prompter = dock.NewLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	if !interactive(cmd.InOrStdin()) {
		a.logger.Debug("stdin is not a terminal, prompts will read piped input")
	}
	return nil
}

//interactive returns true if r is a terminal.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

//Execute runs the godock command. SIGINT and SIGTERM stop a batch before the next pair.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("godock: %w", err)
	}
	return nil
}
