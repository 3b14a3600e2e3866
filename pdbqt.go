/*
 * pdbqt.go, part of goDock.
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
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

//Markers of the AutoDock Vina PDBQT output.
const (
	modelBegin  = "MODEL"
	modelEnd    = "ENDMDL"
	vinaResult  = "REMARK VINA RESULT:"
	scoreColumn = 3 //0-based index of the affinity in the VINA RESULT remark
)

//Pose is one conformation from a docking output. Lines contain the whole
//MODEL ... ENDMDL block, each line with its original line ending.
type Pose struct {
	Model int //model number as given in the MODEL line, or the ordinal if missing
	Score float64
	Lines []string
}

//WriteTo writes the pose block to w. It implements io.WriterTo.
func (P Pose) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, l := range P.Lines {
		i, err := io.WriteString(w, l)
		n += int64(i)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

//WriteFile writes the pose block to a new file called name.
func (P Pose) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return newError("can't create pose file", name, "Pose.WriteFile", true, err)
	}
	if _, err = P.WriteTo(f); err != nil {
		f.Close()
		return newError("can't write pose file", name, "Pose.WriteFile", true, err)
	}
	return f.Close()
}

//Atoms parses the ATOM/HETATM records of the pose.
func (P Pose) Atoms() ([]*Atom, error) {
	return ReadAtoms(strings.NewReader(strings.Join(P.Lines, "")))
}

//parseScore returns the affinity in a VINA RESULT remark.
func parseScore(line string) (float64, bool) {
	fields := strings.Fields(line)
	if len(fields) <= scoreColumn {
		return 0, false
	}
	score, err := strconv.ParseFloat(fields[scoreColumn], 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

//ParsePoses reads a Vina output and returns, in file order, every MODEL block
//that was closed by ENDMDL and had a VINA RESULT remark with a readable score.
//Blocks without a score are dropped. Lines outside blocks are ignored.
func ParsePoses(r io.Reader) ([]Pose, error) {
	var (
		poses   []Pose
		current []string
		score   float64
		scored  bool
		inPose  bool
		ordinal int
		model   int
	)
	rd := bufio.NewReader(r)
	for {
		line, err := rd.ReadString('\n')
		if line != "" {
			switch {
			case strings.HasPrefix(line, modelBegin):
				ordinal++
				inPose = true
				scored = false
				current = []string{line}
				model = ordinal
				if f := strings.Fields(line); len(f) > 1 {
					if m, err := strconv.Atoi(f[1]); err == nil {
						model = m
					}
				}
			case !inPose:
				//outside a model, nothing to do.
			case strings.Contains(line, vinaResult):
				//a second remark in the same block overrides the first, a broken one unsets it.
				score, scored = parseScore(line)
				current = append(current, line)
			case strings.HasPrefix(line, modelEnd):
				current = append(current, line)
				if scored {
					poses = append(poses, Pose{Model: model, Score: score, Lines: current})
				}
				inPose = false
				current = nil
			default:
				current = append(current, line)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return poses, err
		}
	}
	return poses, nil
}

//BestPose returns the pose with the lowest score. On ties, the first one wins.
//It returns ErrNoValidPose if poses is empty.
func BestPose(poses []Pose) (Pose, error) {
	if len(poses) == 0 {
		return Pose{}, ErrNoValidPose
	}
	best := poses[0]
	for _, p := range poses[1:] {
		if p.Score < best.Score {
			best = p
		}
	}
	return best, nil
}

//ExtractBestPose parses a Vina output from r and returns its best pose.
func ExtractBestPose(r io.Reader) (Pose, error) {
	poses, err := ParsePoses(r)
	if err != nil {
		return Pose{}, err
	}
	return BestPose(poses)
}

//ReadBestPose is ExtractBestPose on the file called name, which may be zstd-compressed.
func ReadBestPose(name string) (Pose, error) {
	f, err := OpenFile(name)
	if err != nil {
		return Pose{}, newError("can't open docking output", name, "ReadBestPose", true, err)
	}
	defer f.Close()
	p, err := ExtractBestPose(f)
	if err != nil && !errors.Is(err, ErrNoValidPose) {
		return p, newError("can't read docking output", name, "ReadBestPose", true, err)
	}
	return p, err
}
