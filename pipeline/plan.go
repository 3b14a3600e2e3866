/*
 * plan.go, part of goDock.
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

//Package pipeline runs a docking batch: the drug-likeness filter over the
//ligands and then, for every ligand and target, docking, best pose
//extraction, conversion to PDB and complex building. It reports through an
//Observer and returns one Verdict per ligand and one Outcome per pair, and
//it does no logging of its own.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	dock "github.com/rmera/godock"
)

//Dirs are the input and output directories of a run.
type Dirs struct {
	Ligands   string
	Targets   string
	Out       string
	Log       string
	BestPoses string
	Complexes string
}

//DefaultDirs returns the directory names relative to the working directory.
func DefaultDirs() Dirs {
	return Dirs{
		Ligands:   "ligands",
		Targets:   "target",
		Out:       "out",
		Log:       "Log",
		BestPoses: "best_poses",
		Complexes: "complexes",
	}
}

//Ensure creates the output directories if they don't exist.
func (D Dirs) Ensure() error {
	for _, d := range []string{D.Out, D.Log, D.BestPoses, D.Complexes} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return nil
}

//PairPaths are the files produced for one ligand-target pair.
type PairPaths struct {
	Docked    string `yaml:"docked"`
	Log       string `yaml:"log"`
	BestPDBQT string `yaml:"best_pdbqt"`
	BestPDB   string `yaml:"best_pdb"`
	Complex   string `yaml:"complex"`
}

//Plan is the immutable configuration of a run. It is passed by value.
type Plan struct {
	Dirs    Dirs
	Box     dock.GridBox
	Rule    dock.Rule
	Archive bool //compress the raw docking output once the best pose is extracted
}

//Paths returns the files for the pair lig, tgt.
func (P Plan) Paths(lig dock.Ligand, tgt dock.Target) PairPaths {
	pair := lig.Name + "_" + tgt.Name
	return PairPaths{
		Docked:    filepath.Join(P.Dirs.Out, pair+"_docked"+dock.ExtPDBQT),
		Log:       filepath.Join(P.Dirs.Log, pair+"_log.txt"),
		BestPDBQT: filepath.Join(P.Dirs.BestPoses, pair+"_best"+dock.ExtPDBQT),
		BestPDB:   filepath.Join(P.Dirs.BestPoses, pair+"_best"+dock.ExtPDB),
		Complex:   filepath.Join(P.Dirs.Complexes, pair+"_complex"+dock.ExtPDB),
	}
}
