/*
 * vina.go, part of goDock.
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
	"os"
	"strconv"

	dock "github.com/rmera/godock"
)

//Vina defaults
const (
	VinaCommand     = "vina"
	DefaultNumModes = 9
)

//DockJob is one ligand-receptor docking.
type DockJob struct {
	Receptor string
	Ligand   string
	Box      dock.GridBox
	Out      string //multi-pose PDBQT output
	Log      string //Vina log file. Can be empty.
}

//VinaHandle runs AutoDock Vina. The zero value is not usable, use NewVinaHandle.
//Note that the defaults are NOT considered part of the API, so they can change.
type VinaHandle struct {
	command        string
	numModes       int
	exhaustiveness int //0 means Vina's default
	nCPU           int //0 means Vina's default (all CPUs)
	seed           int //0 means random
	runner         Runner
}

//NewVinaHandle returns a handle with default settings that runs Vina as a subprocess.
func NewVinaHandle() *VinaHandle {
	run := new(VinaHandle)
	run.SetDefaults()
	return run
}

//SetDefaults sets the command to "vina" and the number of modes to 9.
func (V *VinaHandle) SetDefaults() {
	V.command = VinaCommand
	V.numModes = DefaultNumModes
	V.exhaustiveness = 0
	V.nCPU = 0
	V.seed = 0
	V.runner = ExecRunner{}
}

//SetCommand sets the name or path of the Vina executable.
func (V *VinaHandle) SetCommand(name string) {
	V.command = name
}

func (V *VinaHandle) Command() string {
	return V.command
}

//SetNumModes sets the maximum number of poses Vina writes.
func (V *VinaHandle) SetNumModes(n int) {
	V.numModes = n
}

func (V *VinaHandle) SetExhaustiveness(e int) {
	V.exhaustiveness = e
}

//Sets the number of CPU to be used
func (V *VinaHandle) SetnCPU(cpu int) {
	V.nCPU = cpu
}

func (V *VinaHandle) SetSeed(seed int) {
	V.seed = seed
}

//SetRunner replaces the Runner used to start Vina.
func (V *VinaHandle) SetRunner(r Runner) {
	V.runner = r
}

//BuildArgs returns the Vina command line (without the executable) for job.
//The grid box values are passed exactly as given.
func (V *VinaHandle) BuildArgs(job DockJob) []string {
	args := make([]string, 0, 24)
	args = append(args,
		"--receptor", job.Receptor,
		"--ligand", job.Ligand,
		"--center_x", job.Box.CenterX,
		"--center_y", job.Box.CenterY,
		"--center_z", job.Box.CenterZ,
		"--size_x", job.Box.SizeX,
		"--size_y", job.Box.SizeY,
		"--size_z", job.Box.SizeZ,
		"--num_modes", strconv.Itoa(V.numModes),
	)
	if V.exhaustiveness > 0 {
		args = append(args, "--exhaustiveness", strconv.Itoa(V.exhaustiveness))
	}
	if V.nCPU > 0 {
		args = append(args, "--cpu", strconv.Itoa(V.nCPU))
	}
	if V.seed != 0 {
		args = append(args, "--seed", strconv.Itoa(V.seed))
	}
	args = append(args, "--out", job.Out)
	if job.Log != "" {
		args = append(args, "--log", job.Log)
	}
	return args
}

//Dock runs Vina for job and waits for it to finish. Vina versions that don't
//write the log file themselves print it to stdout, in which case Dock saves it there.
func (V *VinaHandle) Dock(ctx context.Context, job DockJob) Result {
	res := V.runner.Run(ctx, Command{Program: V.command, Args: V.BuildArgs(job), Output: job.Out})
	if job.Log != "" && res.Stdout != "" && !dock.Exists(job.Log) {
		//not being able to save the log is not a docking failure.
		_ = os.WriteFile(job.Log, []byte(res.Stdout), 0644)
	}
	return res
}
