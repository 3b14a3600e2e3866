/*
 * atomicdata.go, part of goDock.
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

//Standard atomic weights (IUPAC, abridged) for the elements found in
//drug-like molecules and common receptor cofactors.
var symbolMass = map[string]float64{
	"H":  1.008,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Cu": 63.546,
	"Zn": 65.38,
	"Se": 78.971,
	"Br": 79.904,
	"I":  126.904,
}

//Mass returns the standard atomic weight for the element symbol, and
//false if the element is not in the table.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

//MolecularWeight adds the masses of the given symbols plus nH hydrogens.
//It fails on the first unknown element.
func MolecularWeight(symbols []string, nH int) (float64, error) {
	mw := float64(nH) * symbolMass["H"]
	for _, s := range symbols {
		m, ok := symbolMass[s]
		if !ok {
			return 0, newError("unknown element "+s, "", "MolecularWeight", false, ErrDescriptorUnavailable)
		}
		mw += m
	}
	return mw, nil
}
