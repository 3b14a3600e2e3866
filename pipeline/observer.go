/*
 * observer.go, part of goDock.
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
	dock "github.com/rmera/godock"
)

//Observer receives the progress of a run. Calls are made from the goroutine
//running the pipeline, in order.
type Observer interface {
	FilterVerdict(v Verdict)
	PairStarted(lig dock.Ligand, tgt dock.Target)
	PairFinished(o Outcome)
	//Warn reports a problem that doesn't stop the current pair. args are key-value pairs.
	Warn(msg string, args ...any)
}

//NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) FilterVerdict(Verdict)                {}
func (NopObserver) PairStarted(dock.Ligand, dock.Target) {}
func (NopObserver) PairFinished(Outcome)                 {}
func (NopObserver) Warn(string, ...any)                  {}

//Observers sends every event to each of its members, in order.
type Observers []Observer

func (O Observers) FilterVerdict(v Verdict) {
	for _, o := range O {
		o.FilterVerdict(v)
	}
}

func (O Observers) PairStarted(lig dock.Ligand, tgt dock.Target) {
	for _, o := range O {
		o.PairStarted(lig, tgt)
	}
}

func (O Observers) PairFinished(out Outcome) {
	for _, o := range O {
		o.PairFinished(out)
	}
}

func (O Observers) Warn(msg string, args ...any) {
	for _, o := range O {
		o.Warn(msg, args...)
	}
}
