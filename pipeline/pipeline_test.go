/*
 * pipeline_test.go, part of goDock.
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

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPoses = `MODEL 1
REMARK VINA RESULT:    -6.100      0.000      0.000
HETATM    1  C1  UNL     1       1.000   2.000   3.000  1.00  0.00     0.000 C 
ENDMDL
MODEL 2
REMARK VINA RESULT:    -7.200      1.500      2.100
HETATM    1  C1  UNL     1       4.000   5.000   6.000  1.00  0.00     0.000 C 
ENDMDL
`

//fakeDocker writes a fixed docking output, unless output is empty.
type fakeDocker struct {
	output string
	jobs   []engine.DockJob
}

func (F *fakeDocker) Dock(ctx context.Context, job engine.DockJob) engine.Result {
	F.jobs = append(F.jobs, job)
	res := engine.Result{Program: "vina", Output: job.Out, Succeeded: true}
	if F.output == "" {
		res.Succeeded = false
		res.ExitCode = 1
		res.Stderr = "vina: error"
		return res
	}
	if err := os.WriteFile(job.Out, []byte(F.output), 0644); err != nil {
		panic(err)
	}
	res.OutputPresent = true
	return res
}

//fakeConverter copies its input to its output, or fails if broken is set.
type fakeConverter struct {
	broken bool
	calls  int
}

func (F *fakeConverter) Convert(ctx context.Context, inFormat, in, out string) engine.Result {
	F.calls++
	res := engine.Result{Program: "obabel", Args: []string{"-i" + inFormat, in, "-O", out}, Output: out}
	if F.broken {
		res.ExitCode = 1
		res.Stderr = "0 molecules converted"
		return res
	}
	data, err := os.ReadFile(in)
	if err != nil {
		panic(err)
	}
	if err = os.WriteFile(out, data, 0644); err != nil {
		panic(err)
	}
	res.Succeeded, res.ExitCode, res.OutputPresent = true, 0, true
	return res
}

//fakeCalc returns fixed descriptors per SDF base name.
type fakeCalc map[string]dock.Descriptors

func (F fakeCalc) Descriptors(ctx context.Context, sdf string) (dock.Descriptors, error) {
	d, ok := F[dock.BaseName(sdf, dock.ExtSDF)]
	if !ok {
		return d, fmt.Errorf("%w: %s", dock.ErrDescriptorUnavailable, sdf)
	}
	return d, nil
}

//recorder keeps every event it observes.
type recorder struct {
	verdicts []Verdict
	started  []string
	finished []Outcome
	warnings []string
}

func (R *recorder) FilterVerdict(v Verdict) { R.verdicts = append(R.verdicts, v) }
func (R *recorder) PairStarted(lig dock.Ligand, tgt dock.Target) {
	R.started = append(R.started, lig.Name+"_"+tgt.Name)
}
func (R *recorder) PairFinished(o Outcome)       { R.finished = append(R.finished, o) }
func (R *recorder) Warn(msg string, args ...any) { R.warnings = append(R.warnings, msg) }

//setup creates a working tree with the given ligands (all with SDF) and
//one target, "rec", with its PDB.
func setup(t *testing.T, ligands ...string) (Plan, []dock.Ligand, []dock.Target) {
	t.Helper()
	root := t.TempDir()
	dirs := DefaultDirs()
	dirs.Ligands = filepath.Join(root, dirs.Ligands)
	dirs.Targets = filepath.Join(root, dirs.Targets)
	dirs.Out = filepath.Join(root, dirs.Out)
	dirs.Log = filepath.Join(root, dirs.Log)
	dirs.BestPoses = filepath.Join(root, dirs.BestPoses)
	dirs.Complexes = filepath.Join(root, dirs.Complexes)
	require.NoError(t, os.MkdirAll(dirs.Ligands, 0755))
	require.NoError(t, os.MkdirAll(dirs.Targets, 0755))
	require.NoError(t, dirs.Ensure())
	for _, l := range ligands {
		require.NoError(t, os.WriteFile(filepath.Join(dirs.Ligands, l+dock.ExtPDBQT), []byte("ROOT\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dirs.Ligands, l+dock.ExtSDF), []byte(l+"\n"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Targets, "rec"+dock.ExtPDBQT), []byte("ATOM\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Targets, "rec"+dock.ExtPDB), []byte("ATOM  receptor\nEND"), 0644))
	ligs, err := dock.DiscoverLigands(dirs.Ligands)
	require.NoError(t, err)
	tgts, err := dock.DiscoverTargets(dirs.Targets)
	require.NoError(t, err)
	plan := Plan{
		Dirs: dirs,
		Box:  dock.GridBox{CenterX: "1", CenterY: "2", CenterZ: "3", SizeX: "20", SizeY: "20", SizeZ: "20"},
		Rule: dock.LipinskiRule(),
	}
	return plan, ligs, tgts
}

func TestEndToEndFiltered(t *testing.T) {
	plan, ligs, tgts := setup(t, "aspirin", "bulky")
	require.Len(t, ligs, 2)
	require.Len(t, tgts, 1)
	calc := fakeCalc{
		"aspirin": {MolWt: 180.16, LogP: 1.2, HDonors: 1, HAcceptors: 4},
		"bulky":   {MolWt: 812.3, LogP: 6.4, HDonors: 2, HAcceptors: 7},
	}
	rec := new(recorder)
	verdicts := Filter(context.Background(), ligs, calc, plan.Rule, rec)
	require.Len(t, verdicts, 2)
	selected := ParseChoice("Y").Ligands(ligs, verdicts)
	require.Len(t, selected, 1)
	assert.Equal(t, "aspirin", selected[0].Name)

	docker := new(fakeDocker)
	docker.output = twoPoses
	conv := new(fakeConverter)
	p := Pipeline{Plan: plan, Docker: docker, Converter: conv, Observer: rec}
	outcomes := p.Run(context.Background(), selected, tgts)

	require.Len(t, outcomes, 1)
	assert.Len(t, docker.jobs, 1)
	assert.Equal(t, 1, conv.calls)
	o := outcomes[0]
	assert.Equal(t, StatusComplete, o.Status, "%v", o.Err)
	assert.NoError(t, o.Err)
	assert.True(t, o.HasScore)
	assert.InDelta(t, -7.2, o.Score, 1e-9)
	assert.Equal(t, 2, o.Model)
	assert.Equal(t, []string{"aspirin_rec"}, rec.started)

	complexes, err := os.ReadDir(plan.Dirs.Complexes)
	require.NoError(t, err)
	require.Len(t, complexes, 1)
	assert.Equal(t, "aspirin_rec_complex.pdb", complexes[0].Name())
	data, err := os.ReadFile(o.Paths.Complex)
	require.NoError(t, err)
	pose, err := os.ReadFile(o.Paths.BestPDB)
	require.NoError(t, err)
	assert.Equal(t, "ATOM  receptor\nEND\n"+string(pose), string(data))
	assert.Contains(t, string(pose), "-7.200")

	for _, dir := range []string{plan.Dirs.Out, plan.Dirs.BestPoses, plan.Dirs.Complexes} {
		matches, err := filepath.Glob(filepath.Join(dir, "bulky*"))
		require.NoError(t, err)
		assert.Empty(t, matches, dir)
	}
}

func TestRunAll(t *testing.T) {
	plan, ligs, tgts := setup(t, "a", "b")
	docker := &fakeDocker{output: twoPoses}
	p := Pipeline{Plan: plan, Docker: docker, Converter: new(fakeConverter)}
	outcomes := p.Run(context.Background(), ParseChoice("n").Ligands(ligs, nil), tgts)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "a", outcomes[0].Ligand.Name)
	assert.Equal(t, "b", outcomes[1].Ligand.Name)
	for _, o := range outcomes {
		assert.True(t, o.Complete())
	}
}

func TestRunFailures(t *testing.T) {
	t.Run("docking", func(t *testing.T) {
		plan, ligs, tgts := setup(t, "a")
		conv := new(fakeConverter)
		p := Pipeline{Plan: plan, Docker: new(fakeDocker), Converter: conv}
		outcomes := p.Run(context.Background(), ligs, tgts)
		require.Len(t, outcomes, 1)
		assert.Equal(t, StatusDockingFailed, outcomes[0].Status)
		assert.Error(t, outcomes[0].Err)
		assert.Equal(t, 0, conv.calls)
	})
	t.Run("no pose", func(t *testing.T) {
		plan, ligs, tgts := setup(t, "a")
		docker := &fakeDocker{output: "MODEL 1\nENDMDL\n"}
		p := Pipeline{Plan: plan, Docker: docker, Converter: new(fakeConverter)}
		outcomes := p.Run(context.Background(), ligs, tgts)
		require.Len(t, outcomes, 1)
		assert.Equal(t, StatusNoValidPose, outcomes[0].Status)
		assert.ErrorIs(t, outcomes[0].Err, dock.ErrNoValidPose)
		assert.False(t, dock.Exists(outcomes[0].Paths.BestPDBQT))
	})
	t.Run("conversion", func(t *testing.T) {
		plan, ligs, tgts := setup(t, "a")
		rec := new(recorder)
		p := Pipeline{Plan: plan, Docker: &fakeDocker{output: twoPoses}, Converter: &fakeConverter{broken: true}, Observer: rec}
		outcomes := p.Run(context.Background(), ligs, tgts)
		require.Len(t, outcomes, 1)
		assert.Equal(t, StatusConversionFailed, outcomes[0].Status)
		assert.True(t, dock.Exists(outcomes[0].Paths.BestPDBQT))
		assert.False(t, dock.Exists(outcomes[0].Paths.Complex))
		require.Len(t, rec.warnings, 1)
		assert.Contains(t, rec.warnings[0], "Open Babel failed")
	})
	t.Run("receptor", func(t *testing.T) {
		plan, ligs, tgts := setup(t, "a")
		require.NoError(t, os.Remove(tgts[0].PDB))
		p := Pipeline{Plan: plan, Docker: &fakeDocker{output: twoPoses}, Converter: new(fakeConverter)}
		outcomes := p.Run(context.Background(), ligs, tgts)
		require.Len(t, outcomes, 1)
		assert.Equal(t, StatusReceptorMissing, outcomes[0].Status)
		assert.False(t, dock.Exists(outcomes[0].Paths.Complex))
	})
}

func TestRunArchive(t *testing.T) {
	plan, ligs, tgts := setup(t, "a")
	plan.Archive = true
	p := Pipeline{Plan: plan, Docker: &fakeDocker{output: twoPoses}, Converter: new(fakeConverter)}
	outcomes := p.Run(context.Background(), ligs, tgts)
	require.Len(t, outcomes, 1)
	o := outcomes[0]
	assert.True(t, o.Complete())
	assert.Equal(t, o.Paths.Docked+dock.ExtZstd, o.Archived)
	assert.False(t, dock.Exists(o.Paths.Docked))
	pose, err := dock.ReadBestPose(o.Archived)
	require.NoError(t, err)
	assert.InDelta(t, o.Score, pose.Score, 1e-9)
}

func TestRunCancelled(t *testing.T) {
	plan, ligs, tgts := setup(t, "a", "b")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	docker := &fakeDocker{output: twoPoses}
	p := Pipeline{Plan: plan, Docker: docker, Converter: new(fakeConverter)}
	assert.Empty(t, p.Run(ctx, ligs, tgts))
	assert.Empty(t, docker.jobs)
}

//cancelDocker cancels the run while docking, like a SIGINT would, and
//returns what the engine returns for a killed program.
type cancelDocker struct {
	cancel context.CancelFunc
	jobs   int
}

func (C *cancelDocker) Dock(ctx context.Context, job engine.DockJob) engine.Result {
	C.jobs++
	C.cancel()
	return engine.Result{Program: "vina", Output: job.Out, ExitCode: -1, Err: ctx.Err()}
}

func TestRunCancelledWhileDocking(t *testing.T) {
	plan, ligs, tgts := setup(t, "a", "b")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	docker := &cancelDocker{cancel: cancel}
	conv := new(fakeConverter)
	outcomes := Pipeline{Plan: plan, Docker: docker, Converter: conv}.Run(ctx, ligs, tgts)
	require.Len(t, outcomes, 1)
	assert.Equal(t, 1, docker.jobs)
	assert.Equal(t, 0, conv.calls)
	assert.Equal(t, StatusDockingFailed, outcomes[0].Status)
	assert.Equal(t, "a", outcomes[0].Ligand.Name)
	assert.ErrorIs(t, outcomes[0].Dock.Err, context.Canceled)
	assert.Error(t, outcomes[0].Err)
}
