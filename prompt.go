/*
 * prompt.go, part of goDock.
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
	"fmt"
	"io"
	"strings"
)

//Prompter asks the user a question and returns the answer.
type Prompter interface {
	Ask(question string) (string, error)
}

//LinePrompter writes the question to Out and reads one line from In.
//The answer is returned with surrounding blanks removed.
type LinePrompter struct {
	Out io.Writer
	in  *bufio.Reader
}

//NewLinePrompter returns a LinePrompter reading from in and writing questions to out.
//out can be nil.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{Out: out, in: bufio.NewReader(in)}
}

//Ask prints the question and reads the answer. A last line without
//a newline is accepted; io.EOF is only returned if nothing was read.
func (L *LinePrompter) Ask(question string) (string, error) {
	if L.Out != nil {
		fmt.Fprint(L.Out, question)
	}
	line, err := L.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
