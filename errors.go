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

package dock

import (
	"errors"
	"fmt"
)

//Sentinel errors. Callers should use errors.Is, as they usually come wrapped.
var (
	//ErrNoValidPose means that a docking output contained no closed MODEL block with a parsed score.
	ErrNoValidPose = errors.New("no valid pose")
	//ErrDescriptorUnavailable means that a molecular descriptor could not be obtained for a ligand.
	ErrDescriptorUnavailable = errors.New("descriptor unavailable")
	//ErrGridBox means that the grid box file is missing or malformed.
	ErrGridBox = errors.New("invalid grid box")
)

//Error is the general structure for goDock file errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

func newError(message, filename, caller string, critical bool, err error) Error {
	return Error{message: message, filename: filename, deco: []string{caller}, critical: critical, err: err}
}

func (E Error) Error() string {
	s := fmt.Sprintf("goDock file %s error: %s", E.filename, E.message)
	if E.err != nil {
		s = s + ": " + E.err.Error()
	}
	return s
}

//Unwrap returns the underlying error, if any.
func (E Error) Unwrap() error { return E.err }

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error
func (E Error) FileName() string { return E.filename }

//Critical returns true if the error is critical, false otherwise
func (E Error) Critical() bool { return E.critical }
