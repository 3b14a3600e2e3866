/*
 * pdbqt_test.go, part of goDock.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vinaOut = `MODEL 1
REMARK VINA RESULT:    -7.100      0.000      0.000
REMARK INTER + INTRA:          -9.512
ROOT
HETATM    1  C1  UNL     1      10.000  -3.000   7.000  1.00  0.00     0.042 C 
ENDROOT
TORSDOF 1
ENDMDL
MODEL 2
REMARK VINA RESULT:    -8.400      1.211      2.004
ROOT
HETATM    1  C1  UNL     1      11.000  -2.000   8.000  1.00  0.00     0.042 C 
ENDROOT
TORSDOF 1
ENDMDL
MODEL 3
REMARK VINA RESULT:    -6.000      2.000      3.000
ENDMDL
`

//TestBestPose checks that the lowest scoring block is returned whole.
func TestBestPose(Te *testing.T) {
	p, err := ExtractBestPose(strings.NewReader(vinaOut))
	require.NoError(Te, err)
	assert.Equal(Te, 2, p.Model)
	assert.InDelta(Te, -8.4, p.Score, 1e-9)
	require.Len(Te, p.Lines, 7)
	assert.Equal(Te, "MODEL 2\n", p.Lines[0])
	assert.Equal(Te, "ENDMDL\n", p.Lines[6])
	var b strings.Builder
	_, err = p.WriteTo(&b)
	require.NoError(Te, err)
	assert.Equal(Te, strings.Join(strings.SplitAfter(vinaOut, "\n")[8:15], ""), b.String())

	atoms, err := p.Atoms()
	require.NoError(Te, err)
	require.Len(Te, atoms, 1)
	assert.Equal(Te, "C", atoms[0].Symbol)
	assert.InDelta(Te, 11.0, atoms[0].X, 1e-9)
}

func TestBestPoseTie(Te *testing.T) {
	in := "MODEL 1\nREMARK VINA RESULT: -5.5 0 0\nA\nENDMDL\nMODEL 2\nREMARK VINA RESULT: -5.5 0 0\nB\nENDMDL\n"
	p, err := ExtractBestPose(strings.NewReader(in))
	require.NoError(Te, err)
	assert.Equal(Te, 1, p.Model)
	assert.Equal(Te, "A\n", p.Lines[2])
}

func TestParsePosesEdgeCases(Te *testing.T) {
	cases := []struct {
		name  string
		in    string
		poses int
	}{
		{"empty", "", 0},
		{"no score", "MODEL 1\nATOM\nENDMDL\n", 0},
		{"bad score", "MODEL 1\nREMARK VINA RESULT: abc 0 0\nENDMDL\n", 0},
		{"short remark", "MODEL 1\nREMARK VINA RESULT:\nENDMDL\n", 0},
		{"unclosed", "MODEL 1\nREMARK VINA RESULT: -3.0 0 0\n", 0},
		{"outside model", "REMARK VINA RESULT: -3.0 0 0\nENDMDL\n", 0},
		{"no final newline", "MODEL 1\nREMARK VINA RESULT: -3.0 0 0\nENDMDL", 1},
		{"second remark breaks", "MODEL 1\nREMARK VINA RESULT: -3.0 0 0\nREMARK VINA RESULT: x\nENDMDL\n", 0},
		{"reset per model", "MODEL 1\nREMARK VINA RESULT: -3.0 0 0\nMODEL 2\nENDMDL\n", 0},
	}
	for _, c := range cases {
		poses, err := ParsePoses(strings.NewReader(c.in))
		require.NoError(Te, err, c.name)
		assert.Len(Te, poses, c.poses, c.name)
	}
	_, err := ExtractBestPose(strings.NewReader("MODEL 1\nENDMDL\n"))
	assert.ErrorIs(Te, err, ErrNoValidPose)
}

func TestPoseFiles(Te *testing.T) {
	dir := Te.TempDir()
	docked := filepath.Join(dir, "lig_rec_docked.pdbqt")
	require.NoError(Te, os.WriteFile(docked, []byte(vinaOut), 0644))
	p, err := ReadBestPose(docked)
	require.NoError(Te, err)

	best := filepath.Join(dir, "lig_rec_best.pdbqt")
	require.NoError(Te, p.WriteFile(best))
	data, err := os.ReadFile(best)
	require.NoError(Te, err)
	assert.True(Te, strings.HasPrefix(string(data), "MODEL 2\nREMARK VINA RESULT:    -8.400"))

	//compressed outputs are read transparently
	zst, err := CompressFile(docked)
	require.NoError(Te, err)
	assert.False(Te, Exists(docked))
	pz, err := ReadBestPose(zst)
	require.NoError(Te, err)
	assert.Equal(Te, p, pz)

	_, err = ReadBestPose(filepath.Join(dir, "absent.pdbqt"))
	assert.Error(Te, err)
	assert.NotErrorIs(Te, err, ErrNoValidPose)
}
