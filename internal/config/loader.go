/*
 * loader.go, part of goDock.
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

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/engine"
)

//envPrefix is the prefix of the environment variables read, e.g.
//GODOCK_VINA_EXHAUSTIVENESS for vina.exhaustiveness.
const envPrefix = "GODOCK"

//DefaultFile is read if present when no configuration file is given.
const DefaultFile = "godock.yaml"

var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigParse        = errors.New("config file can't be parsed")
	ErrConfigValidation   = errors.New("invalid configuration")
)

//flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"grid":        "grid_file",
	"run-log":     "run_log",
	"log-level":   "log_level",
	"autobox":     "autobox.ligand",
	"padding":     "autobox.padding",
	"archive":     "archive",
	"summary":     "report.summary",
	"plot":        "report.plot",
	"metrics":     "report.metrics",
	"descriptors": "filter.descriptors",
	"vina":        "vina.command",
	"obabel":      "obabel.command",
	"cpu":         "vina.cpu",
	"seed":        "vina.seed",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	rule := dock.LipinskiRule()
	defaults := map[string]any{
		"dirs.ligands":           "ligands",
		"dirs.targets":           "target",
		"dirs.out":               "out",
		"dirs.log":               "Log",
		"dirs.best_poses":        "best_poses",
		"dirs.complexes":         "complexes",
		"grid_file":              "gdf.txt",
		"run_log":                "run_log.txt",
		"log_level":              "info",
		"vina.command":           engine.VinaCommand,
		"vina.num_modes":         engine.DefaultNumModes,
		"vina.exhaustiveness":    0,
		"vina.cpu":               0,
		"vina.seed":              0,
		"vina.timeout":           "0s",
		"obabel.command":         engine.OBabelCommand,
		"obabel.timeout":         "5m",
		"filter.mode":            FilterAsk,
		"filter.descriptors":     DescriptorsOBabel,
		"filter.max_mol_wt":      rule.MaxMolWt,
		"filter.max_logp":        rule.MaxLogP,
		"filter.max_h_donors":    rule.MaxHDonors,
		"filter.max_h_acceptors": rule.MaxHAcceptors,
		"autobox.ligand":         "",
		"autobox.padding":        dock.DefaultPadding,
		"archive":                false,
		"report.summary":         "",
		"report.plot":            "",
		"report.metrics":         "",
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

//Load builds the configuration from, in increasing priority, the defaults, the
//YAML file at path, GODOCK_* environment variables and the flags in flags that
//were set. An empty path means DefaultFile, which may not exist. flags can be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	switch {
	case dock.Exists(path):
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
		}
	case explicit:
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
	}
	if flags != nil {
		for _, name := range sortedKeys(flagKeys) {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(flagKeys[name], f); err != nil {
				return nil, fmt.Errorf("config: binding flag %s: %w", name, err)
			}
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
