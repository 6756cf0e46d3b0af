/*
 * interfaces.go, part of dynq.
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

import "gonum.org/v1/gonum/mat"

//Potential is anything that can give the value of a Hamiltonian's potential
//and its first derivatives on a snapshot.
type Potential interface {
	//V returns the potential energy at the snapshot.
	V(s *Snapshot) float64

	//DHDq returns the derivative of the Hamiltonian with respect to the nuclear coordinates.
	DHDq(s *Snapshot) []float64

	//DHDp returns the derivative of the Hamiltonian with respect to the nuclear momenta.
	DHDp(s *Snapshot) []float64
}

//ElectronicPotential is a Potential which also depends on the electronic
//(mapping) coordinates and momenta of the snapshot.
type ElectronicPotential interface {
	Potential
	ElectronicDHDq(s *Snapshot) []float64
	ElectronicDHDp(s *Snapshot) []float64
}

//SecondDerivatives provides the Hessian-like blocks of a Hamiltonian, all of them
//square matrices spanning Dim() degrees of freedom.
//If CrossTerms is false, D2HDqDp and D2HDpDq return nil, and they are to be
//taken as exact zeros.
type SecondDerivatives interface {
	D2HDq2(s *Snapshot) *mat.Dense
	D2HDp2(s *Snapshot) *mat.Dense
	D2HDqDp(s *Snapshot) *mat.Dense
	D2HDpDq(s *Snapshot) *mat.Dense
	CrossTerms() bool
	Dim() int
}

//FeatureRequirer is implemented by potentials that can only work on snapshots
//carrying some features (for instance, the electronic variables).
type FeatureRequirer interface {
	RequiredFeatures() Feature
}

//Helper is something that is propagated by an Integrator together with the
//physical trajectory. The helper's state is carried in the integrator's state vector,
//in Len() elements after the physical ones.
type Helper interface {
	//Prepare is called once per integration run, after the integrator has been prepared.
	Prepare(integ *Integrator) error

	//Reset initializes the helper's fields on the snapshot
	Reset(s *Snapshot)

	//Len is the number of elements the helper adds to the state vector.
	Len() int

	//Pack copies the helper's state from s into dst, which has Len() elements.
	Pack(s *Snapshot, dst []float64)

	//Unpack sets the helper's state in s from src.
	Unpack(src []float64, s *Snapshot)

	//Derivative puts the time derivative of the helper's state at s in dst.
	Derivative(pot Potential, s *Snapshot, dst []float64)
}
