/*
 * ligand.go, part of goDock.
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

package dock

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//File extensions used by goDock.
const (
	ExtPDBQT = ".pdbqt"
	ExtSDF   = ".sdf"
	ExtPDB   = ".pdb"
)

//Ligand is a small molecule to be docked. It is identified by the base
//name of its PDBQT file. SDF is the structure-exchange file used only to
//compute descriptors, and it may not exist.
type Ligand struct {
	Name  string
	PDBQT string
	SDF   string
}

//Target is a receptor. PDBQT is used for docking, PDB to build complexes.
type Target struct {
	Name  string
	PDBQT string
	PDB   string
}

//BaseName returns the file name in path without the directory and without
//the extension ext.
func BaseName(path, ext string) string {
	return strings.TrimSuffix(filepath.Base(path), ext)
}

//listByExt returns, sorted, the names of the regular files in dir ending with ext.
func listByExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError("can't list directory", dir, "listByExt", true, err)
	}
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		ret = append(ret, e.Name())
	}
	sort.Strings(ret)
	return ret, nil
}

//DiscoverLigands lists the PDBQT files in dir. Each ligand gets the path of its
//SDF counterpart, whether that file exists or not.
func DiscoverLigands(dir string) ([]Ligand, error) {
	names, err := listByExt(dir, ExtPDBQT)
	if err != nil {
		return nil, err
	}
	ligs := make([]Ligand, 0, len(names))
	for _, n := range names {
		base := BaseName(n, ExtPDBQT)
		ligs = append(ligs, Ligand{
			Name:  base,
			PDBQT: filepath.Join(dir, n),
			SDF:   filepath.Join(dir, base+ExtSDF),
		})
	}
	return ligs, nil
}

//DiscoverTargets lists the PDBQT files in dir. Each target gets the path of its
//PDB counterpart, whether that file exists or not.
func DiscoverTargets(dir string) ([]Target, error) {
	names, err := listByExt(dir, ExtPDBQT)
	if err != nil {
		return nil, err
	}
	tgts := make([]Target, 0, len(names))
	for _, n := range names {
		base := BaseName(n, ExtPDBQT)
		tgts = append(tgts, Target{
			Name:  base,
			PDBQT: filepath.Join(dir, n),
			PDB:   filepath.Join(dir, base+ExtPDB),
		})
	}
	return tgts, nil
}

//Exists returns true if path exists and is not a directory.
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
