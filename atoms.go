/*
 * atoms.go, part of goDock.
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
	"strconv"
	"strings"
)

//Atom is an atom read from an ATOM or HETATM record of a PDB or PDBQT file.
type Atom struct {
	ID      int
	Name    string
	Symbol  string
	Molname string
	Chain   byte
	Molid   int
	Het     bool
	X, Y, Z float64
}

//AutoDock atom types that don't map directly into an element symbol.
var adType2Symbol = map[string]string{
	"A":  "C",
	"OA": "O",
	"NA": "N",
	"NS": "N",
	"SA": "S",
	"HD": "H",
	"HS": "H",
	"CL": "Cl",
	"BR": "Br",
}

//This tries to guess a chemical element symbol from a PDB atom name. Mostly based on AMBER names.
//It only deals with some common bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if name == "" {
		return "", fmt.Errorf("empty atom name")
	}
	switch {
	case len(name) == 4 || name[0] == 'H': //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	case name == "CL":
		symbol = "Cl"
	case name == "BR":
		symbol = "Br"
	case name[0] == 'C':
		symbol = "C"
	case name[0] == 'N':
		symbol = "N"
	case name[0] == 'O':
		symbol = "O"
	case name[0] == 'P':
		symbol = "P"
	case name[0] == 'S':
		symbol = "S"
	case name[0] == 'F':
		symbol = "F"
	case name[0] == 'I':
		symbol = "I"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("couldn't guess symbol from PDB name %s", name)
	}
	return symbol, nil
}

func symbolFromType(t string) string {
	t = strings.TrimSpace(t)
	//formal charges ("N1+") can follow the element
	if i := strings.IndexAny(t, "0123456789+- "); i >= 0 {
		t = t[:i]
	}
	if s, ok := adType2Symbol[strings.ToUpper(t)]; ok {
		return s
	}
	if t == "" {
		return ""
	}
	//element columns in PDB files are uppercase ("CL", "ZN")
	return strings.ToUpper(t[:1]) + strings.ToLower(t[1:])
}

//IsAtomRecord returns true for ATOM and HETATM lines.
func IsAtomRecord(line string) bool {
	return strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM")
}

//ParseAtomLine parses a valid ATOM or HETATM line of a PDB or PDBQT file.
//The element is read from columns 77-78 for PDB files or from the AutoDock
//type (columns 78-79) for PDBQT files, and guessed from the atom name if both are missing.
func ParseAtomLine(line string) (*Atom, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 54 {
		return nil, fmt.Errorf("ATOM line too short (%d characters)", len(line))
	}
	err := make([]error, 5)
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.Molname = strings.TrimSpace(line[17:20])
	atom.Chain = line[21]
	atom.Molid, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	atom.X, err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	atom.Y, err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	atom.Z, err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for i := range err {
		if err[i] != nil {
			return nil, fmt.Errorf("bad ATOM line %q: %w", line, err[i])
		}
	}
	//PDBQT: charge in 71-76, type in 78-79. PDB: element in 77-78.
	if len(line) >= 78 {
		atom.Symbol = symbolFromType(line[76:])
		if len(line) > 78 && line[70] != ' ' {
			atom.Symbol = symbolFromType(line[77:])
		}
	}
	//No error checking here, just fills symbol with the empty string the function returns
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	return atom, nil
}

//ReadAtoms reads all the ATOM/HETATM records in r. Only the first model
//is read if the file has several.
func ReadAtoms(r io.Reader) ([]*Atom, error) {
	atoms := make([]*Atom, 0, 32)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	contlines := 0
	for sc.Scan() {
		contlines++
		line := sc.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		if !IsAtomRecord(line) {
			continue
		}
		at, err := ParseAtomLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", contlines, err)
		}
		atoms = append(atoms, at)
	}
	return atoms, sc.Err()
}
