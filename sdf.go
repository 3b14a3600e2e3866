/*
 * sdf.go, part of goDock.
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
	"math"
	"strconv"
	"strings"
)

//SDFAtom is an atom from the atom block of a V2000 molfile.
type SDFAtom struct {
	Symbol  string
	X, Y, Z float64
	Charge  int
}

//SDFBond joins two atoms, given by their 0-based indexes. Order 4 is aromatic.
type SDFBond struct {
	From, To, Order int
}

//SDFRecord is the first molecule of an SD file.
type SDFRecord struct {
	Title string
	Atoms []SDFAtom
	Bonds []SDFBond
	Data  map[string]string //data items, keyed by their upper-cased field name
}

//molfile atom block charge codes
var chargeCode = map[int]int{1: 3, 2: 2, 3: 1, 5: -1, 6: -2, 7: -3}

func fixedInt(line string, ini, end int) (int, error) {
	if len(line) < end {
		if len(line) <= ini {
			return 0, fmt.Errorf("line %q too short", line)
		}
		end = len(line)
	}
	s := strings.TrimSpace(line[ini:end])
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

//ParseSDF reads the first record of an SD file. Only the V2000 format is supported.
func ParseSDF(r io.Reader) (*SDFRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	next := func(what string) (string, error) {
		if !sc.Scan() {
			if sc.Err() != nil {
				return "", sc.Err()
			}
			return "", fmt.Errorf("unexpected end of file reading %s", what)
		}
		return strings.TrimRight(sc.Text(), "\r"), nil
	}
	rec := &SDFRecord{Data: make(map[string]string)}
	var err error
	if rec.Title, err = next("header"); err != nil {
		return nil, err
	}
	for i := 0; i < 2; i++ {
		if _, err = next("header"); err != nil {
			return nil, err
		}
	}
	counts, err := next("counts line")
	if err != nil {
		return nil, err
	}
	if strings.Contains(counts, "V3000") {
		return nil, fmt.Errorf("V3000 molfiles are not supported")
	}
	natoms, err := fixedInt(counts, 0, 3)
	if err != nil {
		return nil, fmt.Errorf("bad counts line %q: %w", counts, err)
	}
	nbonds, err := fixedInt(counts, 3, 6)
	if err != nil {
		return nil, fmt.Errorf("bad counts line %q: %w", counts, err)
	}
	if natoms <= 0 {
		return nil, fmt.Errorf("molecule has no atoms (counts line %q)", counts)
	}
	if nbonds < 0 {
		return nil, fmt.Errorf("negative bond count in counts line %q", counts)
	}
	rec.Atoms = make([]SDFAtom, natoms)
	for i := 0; i < natoms; i++ {
		line, err := next("atom block")
		if err != nil {
			return nil, err
		}
		if len(line) < 34 {
			return nil, fmt.Errorf("atom line %d too short: %q", i+1, line)
		}
		errs := make([]error, 4)
		a := &rec.Atoms[i]
		a.X, errs[0] = strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
		a.Y, errs[1] = strconv.ParseFloat(strings.TrimSpace(line[10:20]), 64)
		a.Z, errs[2] = strconv.ParseFloat(strings.TrimSpace(line[20:30]), 64)
		a.Symbol = strings.TrimSpace(line[31:34])
		if len(line) >= 39 {
			var code int
			code, errs[3] = fixedInt(line, 36, 39)
			a.Charge = chargeCode[code]
		}
		for _, e := range errs {
			if e != nil {
				return nil, fmt.Errorf("bad atom line %d: %w", i+1, e)
			}
		}
	}
	rec.Bonds = make([]SDFBond, nbonds)
	for i := 0; i < nbonds; i++ {
		line, err := next("bond block")
		if err != nil {
			return nil, err
		}
		errs := make([]error, 3)
		b := &rec.Bonds[i]
		b.From, errs[0] = fixedInt(line, 0, 3)
		b.To, errs[1] = fixedInt(line, 3, 6)
		b.Order, errs[2] = fixedInt(line, 6, 9)
		for _, e := range errs {
			if e != nil {
				return nil, fmt.Errorf("bad bond line %d: %w", i+1, e)
			}
		}
		b.From--
		b.To--
		if b.From < 0 || b.From >= natoms || b.To < 0 || b.To >= natoms {
			return nil, fmt.Errorf("bond %d refers to a non-existent atom", i+1)
		}
	}
	//properties block, then data items until the end of the record.
	var field string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.HasPrefix(line, "$$$$"):
			return rec, nil
		case strings.HasPrefix(line, "M  CHG"):
			//"M  CHGnn8 aaa vvv ..." overrides the atom block charges
			f := strings.Fields(line[6:])
			for j := 1; j+1 < len(f); j += 2 {
				idx, err1 := strconv.Atoi(f[j])
				chg, err2 := strconv.Atoi(f[j+1])
				if err1 == nil && err2 == nil && idx >= 1 && idx <= natoms {
					rec.Atoms[idx-1].Charge = chg
				}
			}
		case strings.HasPrefix(line, ">"):
			ini := strings.Index(line, "<")
			end := strings.LastIndex(line, ">")
			field = ""
			if ini >= 0 && end > ini {
				field = strings.ToUpper(line[ini+1 : end])
			}
		case line == "":
			field = ""
		case field != "":
			if v, ok := rec.Data[field]; ok {
				rec.Data[field] = v + "\n" + line
			} else {
				rec.Data[field] = line
			}
		}
	}
	return rec, sc.Err()
}

//default valences, lowest first.
var valences = map[string][]int{
	"B":  {3},
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"P":  {3, 5},
	"S":  {2, 4, 6},
	"F":  {1},
	"Cl": {1},
	"Br": {1},
	"I":  {1},
}

//bondOrderSum returns, for atom i, the sum of its bond orders (aromatic bonds count 1.5)
//and the number of explicit hydrogens bonded to it.
func (R *SDFRecord) bondOrderSum(i int) (float64, int) {
	sum := 0.0
	nH := 0
	for _, b := range R.Bonds {
		var other int
		switch i {
		case b.From:
			other = b.To
		case b.To:
			other = b.From
		default:
			continue
		}
		if b.Order == 4 {
			sum += 1.5
		} else {
			sum += float64(b.Order)
		}
		if R.Atoms[other].Symbol == "H" {
			nH++
		}
	}
	return sum, nH
}

//ImplicitHydrogens estimates the hydrogens not written for atom i, from the
//lowest default valence that can hold its bonds. Elements without default
//valences get none.
func (R *SDFRecord) ImplicitHydrogens(i int) int {
	a := R.Atoms[i]
	vals, ok := valences[a.Symbol]
	if !ok {
		return 0
	}
	sum, _ := R.bondOrderSum(i)
	used := int(math.Ceil(sum - 1e-6))
	for _, v := range vals {
		//N+ and O+ take one more bond, anions one less. Carbon loses one either way.
		switch a.Symbol {
		case "C", "B":
			v -= abs(a.Charge)
		default:
			v += a.Charge
		}
		if v >= used {
			return v - used
		}
	}
	return 0
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

//Hydrogens returns the number of explicit plus implicit hydrogens on atom i.
func (R *SDFRecord) Hydrogens(i int) int {
	_, nH := R.bondOrderSum(i)
	return nH + R.ImplicitHydrogens(i)
}
