/*
 * ligand_test.go, part of goDock.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(Te *testing.T) {
	dir := Te.TempDir()
	for _, n := range []string{"zinc2.pdbqt", "aspirin.pdbqt", "aspirin.sdf", "notes.txt", "rec.pdb"} {
		require.NoError(Te, os.WriteFile(filepath.Join(dir, n), nil, 0644))
	}
	require.NoError(Te, os.Mkdir(filepath.Join(dir, "sub.pdbqt"), 0755))

	ligs, err := DiscoverLigands(dir)
	require.NoError(Te, err)
	require.Len(Te, ligs, 2)
	assert.Equal(Te, Ligand{Name: "aspirin", PDBQT: filepath.Join(dir, "aspirin.pdbqt"), SDF: filepath.Join(dir, "aspirin.sdf")}, ligs[0])
	assert.Equal(Te, "zinc2", ligs[1].Name)
	assert.True(Te, Exists(ligs[0].SDF))
	assert.False(Te, Exists(ligs[1].SDF))

	tgts, err := DiscoverTargets(dir)
	require.NoError(Te, err)
	require.Len(Te, tgts, 2)
	assert.Equal(Te, filepath.Join(dir, "aspirin.pdb"), tgts[0].PDB)

	_, err = DiscoverLigands(filepath.Join(dir, "absent"))
	assert.Error(Te, err)
	assert.False(Te, Exists(filepath.Join(dir, "sub.pdbqt")))
	assert.Equal(Te, "lig", BaseName("/a/b/lig.pdbqt", ExtPDBQT))
}
