/*
 * autobox.go, part of goDock.
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
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//DefaultPadding is the space, in A, left on each side of the reference ligand by Autobox.
const DefaultPadding = 4.0

//Autobox returns a grid box centered on the geometric center of atoms,
//whose size along each axis is the extent of the atoms plus padding on both sides.
func Autobox(atoms []*Atom, padding float64) (GridBox, error) {
	if len(atoms) == 0 {
		return GridBox{}, fmt.Errorf("%w: no atoms to build the box around", ErrGridBox)
	}
	if padding < 0 {
		return GridBox{}, fmt.Errorf("%w: negative padding %g", ErrGridBox, padding)
	}
	coords := mat.NewDense(len(atoms), 3, nil)
	for i, a := range atoms {
		coords.SetRow(i, []float64{a.X, a.Y, a.Z})
	}
	var center, size [3]float64
	col := make([]float64, len(atoms))
	for j := 0; j < 3; j++ {
		mat.Col(col, j, coords)
		center[j] = stat.Mean(col, nil)
		size[j] = floats.Max(col) - floats.Min(col) + 2*padding
	}
	f := func(v float64) string { return fmt.Sprintf("%.3f", v) }
	return GridBox{
		CenterX: f(center[0]), CenterY: f(center[1]), CenterZ: f(center[2]),
		SizeX: f(size[0]), SizeY: f(size[1]), SizeZ: f(size[2]),
	}, nil
}

//AutoboxFile builds the box around the atoms (first model only) of a PDB or PDBQT file.
func AutoboxFile(name string, padding float64) (GridBox, error) {
	f, err := OpenFile(name)
	if err != nil {
		return GridBox{}, newError("can't open reference ligand", name, "AutoboxFile", true, err)
	}
	defer f.Close()
	atoms, err := ReadAtoms(f)
	if err != nil {
		return GridBox{}, newError("can't read reference ligand", name, "AutoboxFile", true, err)
	}
	return Autobox(atoms, padding)
}

//AutoboxSource is a GridSource that builds the box around a reference ligand.
type AutoboxSource struct {
	Reference string
	Padding   float64
}

//GridBox implements GridSource.
func (A AutoboxSource) GridBox() (GridBox, error) {
	return AutoboxFile(A.Reference, A.Padding)
}
