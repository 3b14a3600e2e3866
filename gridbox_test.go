/*
 * gridbox_test.go, part of goDock.
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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//countingPrompter answers from a list and records the questions.
type countingPrompter struct {
	answers   []string
	questions []string
}

func (C *countingPrompter) Ask(q string) (string, error) {
	C.questions = append(C.questions, q)
	if len(C.answers) == 0 {
		return "", io.EOF
	}
	a := C.answers[0]
	C.answers = C.answers[1:]
	return a, nil
}

type fixedSource struct {
	box GridBox
	err error
}

func (F fixedSource) GridBox() (GridBox, error) { return F.box, F.err }

func writeGrid(Te *testing.T, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), "gdf.txt")
	require.NoError(Te, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadGridBox(Te *testing.T) {
	path := writeGrid(Te, "header\nspacing 0.375\nnpts 20 22.5 24 extra\ncenter -1.5 2 3.25\n")
	box, err := ReadGridBox(path)
	require.NoError(Te, err)
	assert.Equal(Te, GridBox{CenterX: "-1.5", CenterY: "2", CenterZ: "3.25", SizeX: "20", SizeY: "22.5", SizeZ: "24"}, box)
	f, err := box.Floats()
	require.NoError(Te, err)
	assert.Equal(Te, [6]float64{-1.5, 2, 3.25, 20, 22.5, 24}, f)

	for name, content := range map[string]string{
		"short file":  "a\nb\n",
		"short sizes": "a\nb\nnpts 20 20\ncenter 1 2 3\n",
		"no center":   "a\nb\nnpts 20 20 20\n\n",
	} {
		_, err := ReadGridBox(writeGrid(Te, content))
		assert.ErrorIs(Te, err, ErrGridBox, name)
	}
	_, err = ReadGridBox(filepath.Join(Te.TempDir(), "absent.txt"))
	assert.Error(Te, err)

	_, err = GridBox{CenterX: "x"}.Floats()
	assert.ErrorIs(Te, err, ErrGridBox)
}

func TestLoadGridBox(Te *testing.T) {
	good := writeGrid(Te, "header\nspacing 0.375\nnpts 20 20 20\ncenter 1 2 3\n")
	bad := writeGrid(Te, "garbage")
	answers := []string{"1", "2", "3", "20", "21", "x"}

	p := &countingPrompter{answers: answers}
	load, err := LoadGridBox(good, nil, p)
	require.NoError(Te, err)
	assert.Equal(Te, FromFile, load.Origin)
	assert.Empty(Te, p.questions)

	p = &countingPrompter{answers: answers}
	load, err = LoadGridBox(bad, nil, p)
	require.NoError(Te, err)
	assert.Equal(Te, FromPrompt, load.Origin)
	assert.Error(Te, load.FileErr)
	assert.Equal(Te, []string{"Center X: ", "Center Y: ", "Center Z: ", "Size X: ", "Size Y: ", "Size Z: "}, p.questions)
	//answers are not validated
	assert.Equal(Te, GridBox{CenterX: "1", CenterY: "2", CenterZ: "3", SizeX: "20", SizeY: "21", SizeZ: "x"}, load.Box)

	auto := GridBox{CenterX: "0", CenterY: "0", CenterZ: "0", SizeX: "10", SizeY: "10", SizeZ: "10"}
	p = &countingPrompter{}
	load, err = LoadGridBox(bad, fixedSource{box: auto}, p)
	require.NoError(Te, err)
	assert.Equal(Te, FromAutobox, load.Origin)
	assert.Equal(Te, auto, load.Box)
	assert.Empty(Te, p.questions)

	p = &countingPrompter{answers: answers}
	load, err = LoadGridBox(bad, fixedSource{err: errors.New("no reference")}, p)
	require.NoError(Te, err)
	assert.Equal(Te, FromPrompt, load.Origin)
	assert.Error(Te, load.AutoErr)
	assert.Len(Te, p.questions, 6)

	p = &countingPrompter{answers: answers[:2]}
	_, err = LoadGridBox(bad, nil, p)
	assert.ErrorIs(Te, err, io.EOF)
}

func TestLinePrompter(Te *testing.T) {
	var out strings.Builder
	p := NewLinePrompter(strings.NewReader(" y \nlast"), &out)
	a, err := p.Ask("Q1? ")
	require.NoError(Te, err)
	assert.Equal(Te, "y", a)
	a, err = p.Ask("Q2? ")
	require.NoError(Te, err)
	assert.Equal(Te, "last", a)
	_, err = p.Ask("Q3? ")
	assert.ErrorIs(Te, err, io.EOF)
	assert.Equal(Te, "Q1? Q2? Q3? ", out.String())
}

func TestAutobox(Te *testing.T) {
	atoms := []*Atom{{X: -1, Y: 0, Z: 2}, {X: 3, Y: 4, Z: 2}, {X: 1, Y: 2, Z: 2}}
	box, err := Autobox(atoms, 2)
	require.NoError(Te, err)
	assert.Equal(Te, GridBox{CenterX: "1.000", CenterY: "2.000", CenterZ: "2.000", SizeX: "8.000", SizeY: "8.000", SizeZ: "4.000"}, box)
	_, err = Autobox(nil, 2)
	assert.ErrorIs(Te, err, ErrGridBox)
	_, err = Autobox(atoms, -1)
	assert.ErrorIs(Te, err, ErrGridBox)
}
