/*
 * druglike.go, part of goDock.
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
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//Descriptors are the four molecular properties used by the rule of five.
type Descriptors struct {
	MolWt      float64 `yaml:"mol_wt"`
	LogP       float64 `yaml:"logp"`
	HDonors    int     `yaml:"h_donors"`
	HAcceptors int     `yaml:"h_acceptors"`
}

func (D Descriptors) String() string {
	return fmt.Sprintf("MW %.2f logP %.2f HBD %d HBA %d", D.MolWt, D.LogP, D.HDonors, D.HAcceptors)
}

//Rule holds the upper bounds (inclusive) of a drug-likeness filter.
type Rule struct {
	MaxMolWt      float64 `mapstructure:"max_mol_wt" yaml:"max_mol_wt"`
	MaxLogP       float64 `mapstructure:"max_logp" yaml:"max_logp"`
	MaxHDonors    int     `mapstructure:"max_h_donors" yaml:"max_h_donors"`
	MaxHAcceptors int     `mapstructure:"max_h_acceptors" yaml:"max_h_acceptors"`
}

//LipinskiRule returns Lipinski's rule of five: MW <= 500, logP <= 5,
//at most 5 H-bond donors and at most 10 H-bond acceptors.
func LipinskiRule() Rule {
	return Rule{MaxMolWt: 500, MaxLogP: 5, MaxHDonors: 5, MaxHAcceptors: 10}
}

//Violations returns a description of each bound that d exceeds.
func (R Rule) Violations(d Descriptors) []string {
	var v []string
	if d.MolWt > R.MaxMolWt {
		v = append(v, fmt.Sprintf("MW %.2f > %g", d.MolWt, R.MaxMolWt))
	}
	if d.LogP > R.MaxLogP {
		v = append(v, fmt.Sprintf("logP %.2f > %g", d.LogP, R.MaxLogP))
	}
	if d.HDonors > R.MaxHDonors {
		v = append(v, fmt.Sprintf("HBD %d > %d", d.HDonors, R.MaxHDonors))
	}
	if d.HAcceptors > R.MaxHAcceptors {
		v = append(v, fmt.Sprintf("HBA %d > %d", d.HAcceptors, R.MaxHAcceptors))
	}
	return v
}

//Accepts returns true if d satisfies all the bounds at once.
func (R Rule) Accepts(d Descriptors) bool {
	return len(R.Violations(d)) == 0
}

//DescriptorCalculator obtains the descriptors of the first molecule in an SDF file.
type DescriptorCalculator interface {
	Descriptors(ctx context.Context, sdf string) (Descriptors, error)
}

//Data item names, upper-cased, searched for each descriptor, in order.
var (
	mwFields   = []string{"PUBCHEM_MOLECULAR_WEIGHT", "MOLECULAR_WEIGHT", "MOLWT", "MW"}
	logpFields = []string{"PUBCHEM_XLOGP3", "PUBCHEM_XLOGP3_AA", "XLOGP3", "ALOGP", "CLOGP", "LOGP"}
	hbdFields  = []string{"PUBCHEM_CACTVS_HBOND_DONOR", "HBD", "NUMHDONORS"}
	hbaFields  = []string{"PUBCHEM_CACTVS_HBOND_ACCEPTOR", "HBA", "NUMHACCEPTORS"}
)

func dataFloat(rec *SDFRecord, fields []string) (float64, bool) {
	for _, f := range fields {
		v, ok := rec.Data[f]
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return x, true
		}
	}
	return 0, false
}

//SDFDescriptors computes descriptors without external programs. Values present
//as SDF data items (as in PubChem downloads) are used as given. Otherwise the
//molecular weight is computed from the atoms plus implicit hydrogens, donors are
//the N and O atoms carrying hydrogens, and acceptors are all N and O atoms
//(Lipinski's original definition). There is no fallback for logP: a file
//without a logP data item gives ErrDescriptorUnavailable.
type SDFDescriptors struct{}

//Descriptors implements DescriptorCalculator.
func (SDFDescriptors) Descriptors(ctx context.Context, sdf string) (Descriptors, error) {
	var d Descriptors
	f, err := os.Open(sdf)
	if err != nil {
		return d, newError("can't open SDF", sdf, "SDFDescriptors", false, err)
	}
	defer f.Close()
	rec, err := ParseSDF(f)
	if err != nil {
		return d, newError("can't parse SDF", sdf, "SDFDescriptors", false, err)
	}
	return rec.Descriptors()
}

//Descriptors computes the rule of five descriptors for the record. See SDFDescriptors.
func (R *SDFRecord) Descriptors() (Descriptors, error) {
	var d Descriptors
	var ok bool
	if d.LogP, ok = dataFloat(R, logpFields); !ok {
		return d, fmt.Errorf("%w: no logP data item in %q", ErrDescriptorUnavailable, R.Title)
	}
	if d.MolWt, ok = dataFloat(R, mwFields); !ok {
		symbols := make([]string, 0, len(R.Atoms))
		nH := 0
		for i, a := range R.Atoms {
			symbols = append(symbols, a.Symbol)
			nH += R.ImplicitHydrogens(i)
		}
		mw, err := MolecularWeight(symbols, nH)
		if err != nil {
			return d, err
		}
		d.MolWt = mw
	}
	hbd, okd := dataFloat(R, hbdFields)
	hba, oka := dataFloat(R, hbaFields)
	d.HDonors, d.HAcceptors = int(hbd), int(hba)
	if okd && oka {
		return d, nil
	}
	donors, acceptors := 0, 0
	for i, a := range R.Atoms {
		if a.Symbol != "N" && a.Symbol != "O" {
			continue
		}
		acceptors++
		if R.Hydrogens(i) > 0 {
			donors++
		}
	}
	if !okd {
		d.HDonors = donors
	}
	if !oka {
		d.HAcceptors = acceptors
	}
	return d, nil
}
