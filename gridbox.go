/*
 * gridbox.go, part of goDock.
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
	"fmt"
	"os"
	"strconv"
	"strings"
)

//GridBox is the docking search volume. The values are kept as given by the
//user (file or prompt) and passed as such to the docking engine.
type GridBox struct {
	CenterX, CenterY, CenterZ string
	SizeX, SizeY, SizeZ       string
}

//Floats returns the box as center x, y, z, size x, y, z.
//It returns an error if any value is not a number.
func (G GridBox) Floats() ([6]float64, error) {
	var ret [6]float64
	var err error
	for i, v := range []string{G.CenterX, G.CenterY, G.CenterZ, G.SizeX, G.SizeY, G.SizeZ} {
		ret[i], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return ret, fmt.Errorf("%w: value %d (%q) is not a number", ErrGridBox, i, v)
		}
	}
	return ret, nil
}

func (G GridBox) String() string {
	return fmt.Sprintf("center (%s, %s, %s) size (%s, %s, %s)", G.CenterX, G.CenterY, G.CenterZ, G.SizeX, G.SizeY, G.SizeZ)
}

//ReadGridBox reads a gdf.txt-style file. The third line must have a label
//followed by the x, y and z sizes, and the fourth line a label followed by
//the x, y and z coordinates of the center. Extra fields are ignored.
func ReadGridBox(path string) (GridBox, error) {
	var G GridBox
	data, err := os.ReadFile(path)
	if err != nil {
		return G, newError("can't read grid box", path, "ReadGridBox", true, err)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) < 4 {
		return G, newError(fmt.Sprintf("expected at least 4 lines, found %d", len(lines)), path, "ReadGridBox", true, ErrGridBox)
	}
	size := strings.Fields(lines[2])
	center := strings.Fields(lines[3])
	if len(size) < 4 {
		return G, newError("line 3 needs a label and 3 sizes", path, "ReadGridBox", true, ErrGridBox)
	}
	if len(center) < 4 {
		return G, newError("line 4 needs a label and 3 center coordinates", path, "ReadGridBox", true, ErrGridBox)
	}
	G.SizeX, G.SizeY, G.SizeZ = size[1], size[2], size[3]
	G.CenterX, G.CenterY, G.CenterZ = center[1], center[2], center[3]
	return G, nil
}

//PromptGridBox asks for the six values, center first. Answers are not validated.
func PromptGridBox(p Prompter) (GridBox, error) {
	var G GridBox
	targets := []struct {
		q string
		v *string
	}{
		{"Center X: ", &G.CenterX},
		{"Center Y: ", &G.CenterY},
		{"Center Z: ", &G.CenterZ},
		{"Size X: ", &G.SizeX},
		{"Size Y: ", &G.SizeY},
		{"Size Z: ", &G.SizeZ},
	}
	for _, t := range targets {
		ans, err := p.Ask(t.q)
		if err != nil {
			return G, fmt.Errorf("reading %q: %w", strings.TrimSuffix(t.q, ": "), err)
		}
		*t.v = ans
	}
	return G, nil
}

//GridSource produces a grid box without user interaction.
type GridSource interface {
	GridBox() (GridBox, error)
}

//GridOrigin tells where a grid box came from.
type GridOrigin int

const (
	FromFile GridOrigin = iota
	FromAutobox
	FromPrompt
)

func (O GridOrigin) String() string {
	switch O {
	case FromFile:
		return "file"
	case FromAutobox:
		return "autobox"
	case FromPrompt:
		return "prompt"
	}
	return "unknown"
}

//GridLoad is the result of LoadGridBox. FileErr and AutoErr keep the reasons
//why the file and the automatic source (if any) were not used.
type GridLoad struct {
	Box     GridBox
	Origin  GridOrigin
	FileErr error
	AutoErr error
}

//LoadGridBox reads the grid box from path. If that fails, it tries auto
//(which can be nil) and then asks the six values through p.
//The only error returned is a failure to read the prompted answers.
func LoadGridBox(path string, auto GridSource, p Prompter) (GridLoad, error) {
	var ret GridLoad
	ret.Box, ret.FileErr = ReadGridBox(path)
	if ret.FileErr == nil {
		ret.Origin = FromFile
		return ret, nil
	}
	if auto != nil {
		ret.Box, ret.AutoErr = auto.GridBox()
		if ret.AutoErr == nil {
			ret.Origin = FromAutobox
			return ret, nil
		}
	}
	var err error
	ret.Origin = FromPrompt
	ret.Box, err = PromptGridBox(p)
	return ret, err
}
