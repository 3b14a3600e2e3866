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

package dock

import (
	"os"
)

//BuildComplex writes to out the contents of receptorPDB, a newline and the
//contents of ligandPDB. Both inputs are read completely before out is created.
func BuildComplex(receptorPDB, ligandPDB, out string) error {
	rec, err := os.ReadFile(receptorPDB)
	if err != nil {
		return newError("can't read receptor", receptorPDB, "BuildComplex", true, err)
	}
	lig, err := os.ReadFile(ligandPDB)
	if err != nil {
		return newError("can't read ligand", ligandPDB, "BuildComplex", true, err)
	}
	data := make([]byte, 0, len(rec)+len(lig)+1)
	data = append(data, rec...)
	data = append(data, '\n')
	data = append(data, lig...)
	if err = os.WriteFile(out, data, 0644); err != nil {
		return newError("can't write complex", out, "BuildComplex", true, err)
	}
	return nil
}
