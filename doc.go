/*
 * doc.go, part of goDock.
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package dock is the main package of goDock. It provides the data model of a
batch docking run (ligands, targets, grid boxes, poses) and the file
handling around it.


	**goDock Capabilities**

	Discovers ligands and receptors by extension, pairing each docking-ready
	PDBQT file with its SDF (ligands) or PDB (receptors) counterpart.

	Computes the four Lipinski descriptors for a ligand, either natively from
	the SDF file or through an external program (see the engine package),
	and applies the rule of five.

	Reads the docking grid box from a gdf.txt file, builds it around a
	reference ligand (autobox) or asks for it interactively.

	Extracts the best scoring pose from an AutoDock Vina PDBQT output file.

	Builds receptor-ligand complex PDB files.

	Compresses raw docking output with zstd and reads it back transparently.

The external programs (AutoDock Vina, Open Babel) are driven by the engine
package, and the batch itself lives in the pipeline package.
*/
package dock
