/*
 * obabel.go, part of goDock.
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
	"fmt"
	"strconv"
	"strings"

	dock "github.com/rmera/godock"
)

//OBabelCommand is the default Open Babel executable.
const OBabelCommand = "obabel"

//Open Babel descriptor names for the rule of five, in the order they are printed.
var obDescriptors = []string{"MW", "logP", "HBD", "HBA1"}

//OBabelHandle runs Open Babel conversions and descriptor calculations.
type OBabelHandle struct {
	command string
	runner  Runner
}

//NewOBabelHandle returns a handle with default settings that runs obabel as a subprocess.
func NewOBabelHandle() *OBabelHandle {
	run := new(OBabelHandle)
	run.SetDefaults()
	return run
}

func (O *OBabelHandle) SetDefaults() {
	O.command = OBabelCommand
	O.runner = ExecRunner{}
}

//SetCommand sets the name or path of the obabel executable.
func (O *OBabelHandle) SetCommand(name string) {
	O.command = name
}

func (O *OBabelHandle) Command() string {
	return O.command
}

//SetRunner replaces the Runner used to start obabel.
func (O *OBabelHandle) SetRunner(r Runner) {
	O.runner = r
}

//Convert converts in, read in the inFormat format (e.g. "pdbqt"), to out.
//The output format is deduced by Open Babel from the extension of out.
func (O *OBabelHandle) Convert(ctx context.Context, inFormat, in, out string) Result {
	args := []string{"-i" + inFormat, in, "-O", out}
	return O.runner.Run(ctx, Command{Program: O.command, Args: args, Output: out})
}

//Descriptors computes the rule of five descriptors of the first molecule in sdf.
//It implements dock.DescriptorCalculator.
func (O *OBabelHandle) Descriptors(ctx context.Context, sdf string) (dock.Descriptors, error) {
	var d dock.Descriptors
	args := []string{sdf, "-l", "1", "-otxt", "--append", strings.Join(obDescriptors, " ")}
	res := O.runner.Run(ctx, Command{Program: O.command, Args: args})
	if err := res.Check(); err != nil {
		return d, err
	}
	d, err := ParseOBabelDescriptors(res.Stdout)
	if err != nil {
		return d, Error{Message: ErrCantParse, Program: O.command, Input: sdf, Detail: err.Error(), deco: []string{"Descriptors"}, critical: false}
	}
	return d, nil
}

//ParseOBabelDescriptors reads the output of obabel -otxt --append "MW logP HBD HBA1".
//The molecule title, if any, precedes the values, so the last four fields of
//the first non-empty line are used.
func ParseOBabelDescriptors(out string) (dock.Descriptors, error) {
	var d dock.Descriptors
	var line string
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}
	fields := strings.Fields(line)
	if len(fields) < len(obDescriptors) {
		return d, fmt.Errorf("%w: expected %d values, got %q", dock.ErrDescriptorUnavailable, len(obDescriptors), line)
	}
	vals := fields[len(fields)-len(obDescriptors):]
	errs := make([]error, 4)
	var hbd, hba float64
	d.MolWt, errs[0] = strconv.ParseFloat(vals[0], 64)
	d.LogP, errs[1] = strconv.ParseFloat(vals[1], 64)
	hbd, errs[2] = strconv.ParseFloat(vals[2], 64)
	hba, errs[3] = strconv.ParseFloat(vals[3], 64)
	for i, e := range errs {
		if e != nil {
			return d, fmt.Errorf("%w: bad %s value %q", dock.ErrDescriptorUnavailable, obDescriptors[i], vals[i])
		}
	}
	d.HDonors, d.HAcceptors = int(hbd), int(hba)
	return d, nil
}
