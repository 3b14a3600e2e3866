/*
 * config.go, part of goDock.
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

//Package config loads the goDock run configuration from a YAML file,
//GODOCK_* environment variables and command line flags, and sets up logging.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/pipeline"
)

//DirsConfig are the input and output directories.
type DirsConfig struct {
	Ligands   string `mapstructure:"ligands"`
	Targets   string `mapstructure:"targets"`
	Out       string `mapstructure:"out"`
	Log       string `mapstructure:"log"`
	BestPoses string `mapstructure:"best_poses"`
	Complexes string `mapstructure:"complexes"`
}

//Pipeline returns the directories as used by the pipeline package.
func (D DirsConfig) Pipeline() pipeline.Dirs {
	return pipeline.Dirs{
		Ligands:   D.Ligands,
		Targets:   D.Targets,
		Out:       D.Out,
		Log:       D.Log,
		BestPoses: D.BestPoses,
		Complexes: D.Complexes,
	}
}

//VinaConfig are the docking engine settings. Zero exhaustiveness, cpu or
//seed leave the choice to Vina. A zero timeout means no limit.
type VinaConfig struct {
	Command        string        `mapstructure:"command"`
	NumModes       int           `mapstructure:"num_modes"`
	Exhaustiveness int           `mapstructure:"exhaustiveness"`
	CPU            int           `mapstructure:"cpu"`
	Seed           int           `mapstructure:"seed"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

type OBabelConfig struct {
	Command string        `mapstructure:"command"`
	Timeout time.Duration `mapstructure:"timeout"`
}

//Filter modes
const (
	FilterAsk      = "ask"      //ask on the terminal
	FilterFiltered = "filtered" //dock only the accepted ligands
	FilterAll      = "all"      //dock every ligand
)

//Descriptor sources
const (
	DescriptorsOBabel = "obabel"
	DescriptorsSDF    = "sdf"
)

//FilterConfig is the drug-likeness filter setup.
type FilterConfig struct {
	Mode        string    `mapstructure:"mode"`
	Descriptors string    `mapstructure:"descriptors"`
	Rule        dock.Rule `mapstructure:",squash"`
}

//AutoboxConfig enables the grid box computed around a reference ligand,
//used when the grid file is missing or invalid.
type AutoboxConfig struct {
	Ligand  string  `mapstructure:"ligand"`
	Padding float64 `mapstructure:"padding"`
}

//ReportConfig are the optional outputs written after a run. Empty means not written.
type ReportConfig struct {
	Summary string `mapstructure:"summary"`
	Plot    string `mapstructure:"plot"`
	Metrics string `mapstructure:"metrics"`
}

//Config is the whole goDock configuration.
type Config struct {
	Dirs     DirsConfig    `mapstructure:"dirs"`
	GridFile string        `mapstructure:"grid_file"`
	RunLog   string        `mapstructure:"run_log"`
	LogLevel string        `mapstructure:"log_level"`
	Vina     VinaConfig    `mapstructure:"vina"`
	OBabel   OBabelConfig  `mapstructure:"obabel"`
	Filter   FilterConfig  `mapstructure:"filter"`
	Autobox  AutoboxConfig `mapstructure:"autobox"`
	Archive  bool          `mapstructure:"archive"`
	Report   ReportConfig  `mapstructure:"report"`
}

//Level returns the slog level named by LogLevel.
func (C *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(C.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

//Validate returns an error listing every invalid setting, or nil.
func (C *Config) Validate() error {
	var errs []error
	required := map[string]string{
		"dirs.ligands":    C.Dirs.Ligands,
		"dirs.targets":    C.Dirs.Targets,
		"dirs.out":        C.Dirs.Out,
		"dirs.log":        C.Dirs.Log,
		"dirs.best_poses": C.Dirs.BestPoses,
		"dirs.complexes":  C.Dirs.Complexes,
		"run_log":         C.RunLog,
		"vina.command":    C.Vina.Command,
		"obabel.command":  C.OBabel.Command,
	}
	for _, k := range sortedKeys(required) {
		if strings.TrimSpace(required[k]) == "" {
			errs = append(errs, fmt.Errorf("%s is required", k))
		}
	}
	if _, err := C.Level(); err != nil {
		errs = append(errs, err)
	}
	if C.Vina.NumModes < 1 {
		errs = append(errs, fmt.Errorf("vina.num_modes must be positive, got %d", C.Vina.NumModes))
	}
	if C.Vina.Exhaustiveness < 0 || C.Vina.CPU < 0 {
		errs = append(errs, errors.New("vina.exhaustiveness and vina.cpu can't be negative"))
	}
	if C.Vina.Timeout < 0 || C.OBabel.Timeout < 0 {
		errs = append(errs, errors.New("timeouts can't be negative"))
	}
	switch C.Filter.Mode {
	case FilterAsk, FilterFiltered, FilterAll:
	default:
		errs = append(errs, fmt.Errorf("filter.mode must be %q, %q or %q, got %q", FilterAsk, FilterFiltered, FilterAll, C.Filter.Mode))
	}
	switch C.Filter.Descriptors {
	case DescriptorsOBabel, DescriptorsSDF:
	default:
		errs = append(errs, fmt.Errorf("filter.descriptors must be %q or %q, got %q", DescriptorsOBabel, DescriptorsSDF, C.Filter.Descriptors))
	}
	if C.Autobox.Padding < 0 {
		errs = append(errs, fmt.Errorf("autobox.padding can't be negative, got %g", C.Autobox.Padding))
	}
	return errors.Join(errs...)
}
