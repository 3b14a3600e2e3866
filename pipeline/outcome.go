/*
 * outcome.go, part of goDock.
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
	"time"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/engine"
)

//Status is how far a pair got.
type Status int

const (
	StatusComplete         Status = iota //complex written
	StatusDockingFailed                  //no docking output
	StatusNoValidPose                    //docking output without usable poses
	StatusPoseWriteFailed                //best pose couldn't be saved
	StatusReceptorMissing                //no receptor PDB to build the complex
	StatusConversionFailed               //no best pose PDB to build the complex
	StatusComplexFailed                  //complex couldn't be written
)

var statusNames = map[Status]string{
	StatusComplete:         "complete",
	StatusDockingFailed:    "docking_failed",
	StatusNoValidPose:      "no_valid_pose",
	StatusPoseWriteFailed:  "pose_write_failed",
	StatusReceptorMissing:  "receptor_missing",
	StatusConversionFailed: "conversion_failed",
	StatusComplexFailed:    "complex_failed",
}

func (S Status) String() string {
	if n, ok := statusNames[S]; ok {
		return n
	}
	return "unknown"
}

//MarshalText makes statuses readable in YAML and metrics labels.
func (S Status) MarshalText() ([]byte, error) {
	return []byte(S.String()), nil
}

//Statuses returns all the statuses, in order.
func Statuses() []Status {
	return []Status{StatusComplete, StatusDockingFailed, StatusNoValidPose, StatusPoseWriteFailed,
		StatusReceptorMissing, StatusConversionFailed, StatusComplexFailed}
}

//Outcome is the result of processing one ligand-target pair.
type Outcome struct {
	Ligand   dock.Ligand
	Target   dock.Target
	Status   Status
	Score    float64 //best affinity, only meaningful if HasScore
	HasScore bool
	Model    int //model number of the best pose
	Paths    PairPaths
	Dock     engine.Result
	Convert  engine.Result
	Archived string //compressed docking output, if any
	Err      error
	Duration time.Duration
}

//Complete returns true if the complex was written.
func (O Outcome) Complete() bool { return O.Status == StatusComplete }

//Verdict is the drug-likeness filter decision for one ligand.
type Verdict struct {
	Ligand      dock.Ligand
	Descriptors dock.Descriptors
	Accepted    bool
	Violations  []string
	Err         error //the descriptors could not be obtained. Accepted is false.
}
