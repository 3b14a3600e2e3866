/*
 * obabel_test.go, part of goDock.
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

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dock "github.com/rmera/godock"
)

func TestOBabelConvert(Te *testing.T) {
	fake := &fakeRunner{res: Result{Succeeded: true}}
	o := NewOBabelHandle()
	o.SetRunner(fake)
	o.Convert(context.Background(), "pdbqt", "best_poses/a_b_best.pdbqt", "best_poses/a_b_best.pdb")
	require.Len(Te, fake.cmds, 1)
	assert.Equal(Te, "obabel", fake.cmds[0].Program)
	assert.Equal(Te, []string{"-ipdbqt", "best_poses/a_b_best.pdbqt", "-O", "best_poses/a_b_best.pdb"}, fake.cmds[0].Args)
	assert.Equal(Te, "best_poses/a_b_best.pdb", fake.cmds[0].Output)
}

func TestParseOBabelDescriptors(Te *testing.T) {
	d, err := ParseOBabelDescriptors("\naspirin 180.157 1.3101 1 4\n")
	require.NoError(Te, err)
	assert.Equal(Te, dock.Descriptors{MolWt: 180.157, LogP: 1.3101, HDonors: 1, HAcceptors: 4}, d)

	d, err = ParseOBabelDescriptors("46.0684 -0.0014 1 1")
	require.NoError(Te, err)
	assert.InDelta(Te, 46.0684, d.MolWt, 1e-9)

	for _, bad := range []string{"", "1 2 3", "x 180 1 1 4 nan?"} {
		_, err = ParseOBabelDescriptors(bad)
		assert.ErrorIs(Te, err, dock.ErrDescriptorUnavailable, bad)
	}
}

func TestOBabelDescriptors(Te *testing.T) {
	fake := &fakeRunner{res: Result{Succeeded: true, Stdout: "aspirin 180.157 1.3101 1 4\n"}}
	o := NewOBabelHandle()
	o.SetCommand("obabel3")
	o.SetRunner(fake)
	var calc dock.DescriptorCalculator = o
	d, err := calc.Descriptors(context.Background(), "ligands/aspirin.sdf")
	require.NoError(Te, err)
	assert.Equal(Te, 4, d.HAcceptors)
	assert.Equal(Te, []string{"ligands/aspirin.sdf", "-l", "1", "-otxt", "--append", "MW logP HBD HBA1"}, fake.cmds[0].Args)

	fake.res = Result{Succeeded: false, ExitCode: 1, Stderr: "0 molecules converted"}
	_, err = o.Descriptors(context.Background(), "ligands/broken.sdf")
	var e Error
	require.ErrorAs(Te, err, &e)
	assert.Equal(Te, "obabel3", e.Program)

	fake.res = Result{Succeeded: true, Stdout: "garbage"}
	_, err = o.Descriptors(context.Background(), "ligands/odd.sdf")
	require.ErrorAs(Te, err, &e)
	assert.Equal(Te, ErrCantParse, e.Message)
}
