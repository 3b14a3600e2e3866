/*
 * complex_test.go, part of goDock.
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

func TestBuildComplex(Te *testing.T) {
	dir := Te.TempDir()
	rec := filepath.Join(dir, "rec.pdb")
	lig := filepath.Join(dir, "lig.pdb")
	out := filepath.Join(dir, "complex.pdb")
	recData := []byte("ATOM      1  N   MET A   1      27.340  24.430   2.614  1.00  9.67           N\nEND")
	ligData := []byte("HETATM    1  C1  UNL     1      11.000  -2.000   8.000  1.00  0.00           C\nEND\n")
	require.NoError(Te, os.WriteFile(rec, recData, 0644))
	require.NoError(Te, os.WriteFile(lig, ligData, 0644))

	require.NoError(Te, BuildComplex(rec, lig, out))
	got, err := os.ReadFile(out)
	require.NoError(Te, err)
	want := append(append(append([]byte{}, recData...), '\n'), ligData...)
	assert.Equal(Te, want, got)

	//a missing input leaves no output behind
	absent := filepath.Join(dir, "absent.pdb")
	out2 := filepath.Join(dir, "complex2.pdb")
	assert.Error(Te, BuildComplex(rec, absent, out2))
	assert.False(Te, Exists(out2))
	var e Error
	err = BuildComplex(absent, lig, out2)
	require.ErrorAs(Te, err, &e)
	assert.Equal(Te, absent, e.FileName())
	assert.True(Te, e.Critical())
}
