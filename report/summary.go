/*
 * summary.go, part of goDock.
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

package report

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/rmera/godock/pipeline"
)

//Summary are the totals of a run.
type Summary struct {
	Pairs       int            `yaml:"pairs"`
	Complete    int            `yaml:"complete"`
	ByStatus    map[string]int `yaml:"by_status"`
	Scored      int            `yaml:"scored"`
	BestScore   float64        `yaml:"best_score,omitempty"`
	MeanScore   float64        `yaml:"mean_score,omitempty"`
	StdDevScore float64        `yaml:"stddev_score,omitempty"`
	BestLigand  string         `yaml:"best_ligand,omitempty"`
	BestTarget  string         `yaml:"best_target,omitempty"`
}

//scored returns the outcomes that have a best pose score, in order.
func scored(outcomes []pipeline.Outcome) []pipeline.Outcome {
	ret := make([]pipeline.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.HasScore {
			ret = append(ret, o)
		}
	}
	return ret
}

//Summarize computes the totals for outcomes. The score statistics consider
//every pair with a best pose, complete or not. The standard deviation is
//zero with fewer than two scores.
func Summarize(outcomes []pipeline.Outcome) Summary {
	s := Summary{Pairs: len(outcomes), ByStatus: make(map[string]int)}
	for _, o := range outcomes {
		s.ByStatus[o.Status.String()]++
		if o.Complete() {
			s.Complete++
		}
	}
	sc := scored(outcomes)
	s.Scored = len(sc)
	if len(sc) == 0 {
		return s
	}
	scores := make([]float64, len(sc))
	for i, o := range sc {
		scores[i] = o.Score
	}
	best := floats.MinIdx(scores)
	s.BestScore = scores[best]
	s.BestLigand = sc[best].Ligand.Name
	s.BestTarget = sc[best].Target.Name
	s.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.StdDevScore = stat.StdDev(scores, nil)
	}
	return s
}

//pairRecord is one outcome in the YAML summary.
type pairRecord struct {
	Ligand   string             `yaml:"ligand"`
	Target   string             `yaml:"target"`
	Status   pipeline.Status    `yaml:"status"`
	Score    *float64           `yaml:"score,omitempty"`
	Model    int                `yaml:"model,omitempty"`
	Seconds  float64            `yaml:"seconds"`
	Paths    pipeline.PairPaths `yaml:"files"`
	Archived string             `yaml:"archived,omitempty"`
	Error    string             `yaml:"error,omitempty"`
}

type summaryDoc struct {
	RunID   string       `yaml:"run_id,omitempty"`
	Summary Summary      `yaml:"summary"`
	Pairs   []pairRecord `yaml:"pairs"`
}

//WriteSummary writes s and every outcome as YAML to the file path.
//runID can be empty.
func WriteSummary(path, runID string, s Summary, outcomes []pipeline.Outcome) error {
	doc := summaryDoc{RunID: runID, Summary: s, Pairs: make([]pairRecord, 0, len(outcomes))}
	for _, o := range outcomes {
		r := pairRecord{
			Ligand:   o.Ligand.Name,
			Target:   o.Target.Name,
			Status:   o.Status,
			Model:    o.Model,
			Seconds:  o.Duration.Seconds(),
			Paths:    o.Paths,
			Archived: o.Archived,
		}
		if o.HasScore {
			score := o.Score
			r.Score = &score
		}
		if o.Err != nil {
			r.Error = o.Err.Error()
		}
		doc.Pairs = append(doc.Pairs, r)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
