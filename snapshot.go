/*
 * snapshot.go, part of dynq.
 *
 * Copyright 2016 The dynq authors.
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

package dynq

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Feature is a set of flags telling which fields a snapshot carries.
type Feature uint

const (
	Coordinates Feature = 1 << iota
	Momenta
	ElectronicCoordinates
	ElectronicMomenta
	Monodromy
	TopologyRef
)

//Classical is the feature set of a plain nuclear snapshot.
const Classical = Coordinates | Momenta | TopologyRef

//Electronic are the features needed by MMST dynamics, on top of Classical.
const Electronic = ElectronicCoordinates | ElectronicMomenta

var featureNames = []string{"coordinates", "momenta", "electronic_coordinates", "electronic_momenta", "monodromy", "topology"}

//Has returns true if all the features in f2 are present in f.
func (f Feature) Has(f2 Feature) bool {
	return f&f2 == f2
}

func (f Feature) String() string {
	names := make([]string, 0, len(featureNames))
	for i, v := range featureNames {
		if f&(1<<uint(i)) != 0 {
			names = append(names, v)
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

//Topology contains the masses of each degree of freedom and a reference potential.
//It should not be modified after creation.
type Topology struct {
	Masses    []float64
	Potential Potential
}

//NewTopology returns a topology with a copy of masses.
func NewTopology(masses []float64, pot Potential) *Topology {
	m := make([]float64, len(masses))
	copy(m, masses)
	return &Topology{Masses: m, Potential: pot}
}

//NDoF returns the number of nuclear degrees of freedom.
func (T *Topology) NDoF() int {
	return len(T.Masses)
}

//Snapshot is the state of a trajectory at one time.
//The monodromy matrices are nil until a monodromy helper resets them.
type Snapshot struct {
	Coordinates           []float64
	Momenta               []float64
	ElectronicCoordinates []float64
	ElectronicMomenta     []float64
	Topology              *Topology
	Mqq, Mqp, Mpq, Mpp    *mat.Dense
	Features              Feature
}

func copySlice(a []float64) []float64 {
	if a == nil {
		return nil
	}
	r := make([]float64, len(a))
	copy(r, a)
	return r
}

func copyDense(A *mat.Dense) *mat.Dense {
	if A == nil {
		return nil
	}
	return mat.DenseCopyOf(A)
}

//NewSnapshot returns a nuclear-only snapshot with copies of coords and momenta.
//The monodromy feature is declared, but the matrices are not set.
func NewSnapshot(coords, momenta []float64, top *Topology) *Snapshot {
	if len(coords) != len(momenta) {
		panic(ErrShape)
	}
	s := &Snapshot{
		Coordinates: copySlice(coords),
		Momenta:     copySlice(momenta),
		Topology:    top,
		Features:    Classical | Monodromy,
	}
	return s
}

//NewMMSTSnapshot returns a snapshot carrying nuclear and electronic (mapping) variables.
func NewMMSTSnapshot(coords, momenta, ecoords, emomenta []float64, top *Topology) *Snapshot {
	if len(ecoords) != len(emomenta) {
		panic(ErrShape)
	}
	s := NewSnapshot(coords, momenta, top)
	s.ElectronicCoordinates = copySlice(ecoords)
	s.ElectronicMomenta = copySlice(emomenta)
	s.Features |= Electronic
	return s
}

//Copy returns a deep copy of the snapshot. The topology is shared.
func (s *Snapshot) Copy() *Snapshot {
	return &Snapshot{
		Coordinates:           copySlice(s.Coordinates),
		Momenta:               copySlice(s.Momenta),
		ElectronicCoordinates: copySlice(s.ElectronicCoordinates),
		ElectronicMomenta:     copySlice(s.ElectronicMomenta),
		Topology:              s.Topology,
		Mqq:                   copyDense(s.Mqq),
		Mqp:                   copyDense(s.Mqp),
		Mpq:                   copyDense(s.Mpq),
		Mpp:                   copyDense(s.Mpp),
		Features:              s.Features,
	}
}

//NDoF returns the number of nuclear degrees of freedom.
func (s *Snapshot) NDoF() int {
	return len(s.Coordinates)
}

//NSurfaces returns the number of electronic surfaces, 0 for a nuclear-only snapshot.
func (s *Snapshot) NSurfaces() int {
	return len(s.ElectronicCoordinates)
}

//Masses returns the masses in the snapshot's topology. It panics if there is no topology.
func (s *Snapshot) Masses() []float64 {
	if s.Topology == nil {
		panic(ErrNoTopology)
	}
	if len(s.Topology.Masses) != len(s.Momenta) {
		panic(ErrShape)
	}
	return s.Topology.Masses
}

//HasMonodromy returns true if all four monodromy matrices are set.
func (s *Snapshot) HasMonodromy() bool {
	return s.Mqq != nil && s.Mqp != nil && s.Mpq != nil && s.Mpp != nil
}

//SetMonodromy puts the given matrices in the snapshot, without copying them.
func (s *Snapshot) SetMonodromy(Mqq, Mqp, Mpq, Mpp *mat.Dense) {
	s.Mqq, s.Mqp, s.Mpq, s.Mpp = Mqq, Mqp, Mpq, Mpp
}

func (s *Snapshot) String() string {
	ret := fmt.Sprintf("q: %v p: %v", s.Coordinates, s.Momenta)
	if s.Features.Has(Electronic) {
		ret += fmt.Sprintf(" x: %v px: %v", s.ElectronicCoordinates, s.ElectronicMomenta)
	}
	return ret
}
