/*
 * errors.go, part of goDock.
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

import "fmt"

//Error messages
const (
	ErrNotRunning = "program failed to run"
	ErrNoOutput   = "expected output not produced"
	ErrCantParse  = "can't parse program output"
)

//Error is the error type for the engine package. It fullfills the
//Decorate convention of the dock package errors.
type Error struct {
	Message  string
	Program  string
	Input    string
	Detail   string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	s := fmt.Sprintf("%s (input: %s): %s", err.Program, err.Input, err.Message)
	if err.Detail != "" {
		s = s + ": " + err.Detail
	}
	return s
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
