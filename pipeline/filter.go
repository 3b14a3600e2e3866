/*
 * filter.go, part of goDock.
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
	"strings"

	dock "github.com/rmera/godock"
)

//Filter decides for each ligand whether it satisfies rule, using calc on the
//ligand's SDF file. A ligand whose SDF is missing, or whose descriptors can't
//be obtained, is rejected with Err set. Filter stops early, returning the
//verdicts so far, if ctx is cancelled.
func Filter(ctx context.Context, ligands []dock.Ligand, calc dock.DescriptorCalculator, rule dock.Rule, obs Observer) []Verdict {
	if obs == nil {
		obs = NopObserver{}
	}
	verdicts := make([]Verdict, 0, len(ligands))
	for _, lig := range ligands {
		if ctx.Err() != nil {
			break
		}
		v := Verdict{Ligand: lig}
		switch {
		case lig.SDF == "" || !dock.Exists(lig.SDF):
			v.Err = fmt.Errorf("%w: no SDF file for %s", dock.ErrDescriptorUnavailable, lig.Name)
		default:
			d, err := calc.Descriptors(ctx, lig.SDF)
			if err != nil {
				v.Err = err
				break
			}
			v.Descriptors = d
			v.Violations = rule.Violations(d)
			v.Accepted = len(v.Violations) == 0
		}
		obs.FilterVerdict(v)
		verdicts = append(verdicts, v)
	}
	return verdicts
}

//Accepted returns the ligands with a positive verdict, in order.
func Accepted(verdicts []Verdict) []dock.Ligand {
	ret := make([]dock.Ligand, 0, len(verdicts))
	for _, v := range verdicts {
		if v.Accepted {
			ret = append(ret, v.Ligand)
		}
	}
	return ret
}

//Choice is the set of ligands to dock.
type Choice int

const (
	ChooseFiltered Choice = iota //only the ligands accepted by the filter
	ChooseAll                    //every ligand found
)

func (C Choice) String() string {
	if C == ChooseFiltered {
		return "filtered"
	}
	return "all"
}

//ParseChoice interprets the answer to "use the filtered ligands?". Only "y"
//or "Y", ignoring surrounding spaces, means yes.
func ParseChoice(answer string) Choice {
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		return ChooseFiltered
	}
	return ChooseAll
}

//Ligands returns the ligands to dock for the choice.
func (C Choice) Ligands(all []dock.Ligand, verdicts []Verdict) []dock.Ligand {
	if C == ChooseFiltered {
		return Accepted(verdicts)
	}
	return all
}
