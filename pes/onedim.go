/*
 * onedim.go, part of dynq.
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

package pes

import (
	dynq "github.com/dynamiq/dynq"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//OneDimensionalInteractionModel is a single-surface Hamiltonian with one
//nuclear degree of freedom, whose potential is given by an Interaction.
//It has no coordinate-momentum cross terms.
type OneDimensionalInteractionModel struct {
	Interaction Interaction
}

//NewOneDimensionalInteractionModel returns a model for the interaction I.
func NewOneDimensionalInteractionModel(I Interaction) *OneDimensionalInteractionModel {
	return &OneDimensionalInteractionModel{Interaction: I}
}

func checkOneDim(s *dynq.Snapshot) {
	if len(s.Coordinates) != 1 {
		panic(dynq.ErrShape)
	}
}

//NDoF returns the number of nuclear degrees of freedom, always 1.
func (M *OneDimensionalInteractionModel) NDoF() int {
	return 1
}

//Dim returns the size of the second derivative blocks, always 1.
func (M *OneDimensionalInteractionModel) Dim() int {
	return 1
}

func (M *OneDimensionalInteractionModel) V(s *dynq.Snapshot) float64 {
	checkOneDim(s)
	return M.Interaction.F(s.Coordinates[0])
}

func (M *OneDimensionalInteractionModel) DHDq(s *dynq.Snapshot) []float64 {
	checkOneDim(s)
	return []float64{M.Interaction.DfDx(s.Coordinates[0])}
}

//DHDp returns p/m
func (M *OneDimensionalInteractionModel) DHDp(s *dynq.Snapshot) []float64 {
	return kineticDHDp(s)
}

//H returns the total energy
func (M *OneDimensionalInteractionModel) H(s *dynq.Snapshot) float64 {
	return kinetic(s) + M.V(s)
}

func (M *OneDimensionalInteractionModel) D2HDq2(s *dynq.Snapshot) *mat.Dense {
	checkOneDim(s)
	return mat.NewDense(1, 1, []float64{M.Interaction.D2fDx2(s.Coordinates[0])})
}

func (M *OneDimensionalInteractionModel) D2HDp2(s *dynq.Snapshot) *mat.Dense {
	m := s.Masses()
	return mat.NewDense(1, 1, []float64{1.0 / m[0]})
}

//D2HDqDp returns nil, there are no cross terms.
func (M *OneDimensionalInteractionModel) D2HDqDp(s *dynq.Snapshot) *mat.Dense { return nil }

//D2HDpDq returns nil, there are no cross terms.
func (M *OneDimensionalInteractionModel) D2HDpDq(s *dynq.Snapshot) *mat.Dense { return nil }

func (M *OneDimensionalInteractionModel) CrossTerms() bool { return false }

//kinetic returns sum(p^2/2m)
func kinetic(s *dynq.Snapshot) float64 {
	m := s.Masses()
	k := 0.0
	for i, p := range s.Momenta {
		k += 0.5 * p * p / m[i]
	}
	return k
}

//kineticDHDp returns p/m, elementwise.
func kineticDHDp(s *dynq.Snapshot) []float64 {
	ret := make([]float64, len(s.Momenta))
	return floats.DivTo(ret, s.Momenta, s.Masses())
}
