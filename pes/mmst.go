/*
 * mmst.go, part of dynq.
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

//MMSTHamiltonian is the Meyer-Miller-Stock-Thoss vibronic Hamiltonian
//
//	H = sum p^2/2m + sum_{i<=j} e_ij V_ij(q)
//
//where e_ii = (x_i^2 + p_i^2 - 1)/2 and e_ij = x_i x_j + p_i p_j for i<j,
//and x, p are the electronic mapping variables.
//
//The second derivatives span the combined space of the electronic and nuclear
//variables, the S electronic degrees of freedom first and the N nuclear ones after.
//An MMSTHamiltonian is not modified after creation, and can be shared among
//trajectories.
type MMSTHamiltonian struct {
	Matrix *NonadiabaticMatrix
}

//NewMMSTHamiltonian returns the MMST Hamiltonian for the matrix M.
func NewMMSTHamiltonian(M *NonadiabaticMatrix) *MMSTHamiltonian {
	return &MMSTHamiltonian{Matrix: M}
}

func (H *MMSTHamiltonian) checkElectronic(s *dynq.Snapshot) {
	if s.ElectronicCoordinates == nil || s.ElectronicMomenta == nil {
		panic(dynq.ErrNoElectronic)
	}
	n := H.Matrix.NSurfaces()
	if len(s.ElectronicCoordinates) != n || len(s.ElectronicMomenta) != n {
		panic(dynq.ErrShape)
	}
}

//ElectCache returns the electronic weights of each (i,j) pair of surfaces, i<=j.
func (H *MMSTHamiltonian) ElectCache(s *dynq.Snapshot) map[Pair]float64 {
	H.checkElectronic(s)
	x := s.ElectronicCoordinates
	p := s.ElectronicMomenta
	ret := make(map[Pair]float64, len(H.Matrix.upper))
	for _, v := range H.Matrix.Pairs() {
		i, j := v.I, v.J
		if i == j {
			ret[v] = 0.5 * (x[i]*x[i] + p[i]*p[i] - 1.0)
		} else {
			ret[v] = x[i]*x[j] + p[i]*p[j]
		}
	}
	return ret
}

//NDoF returns the number of nuclear degrees of freedom.
func (H *MMSTHamiltonian) NDoF() int {
	return H.Matrix.NDoF()
}

//Dim returns the size of the second derivative blocks, the number of
//surfaces plus the number of nuclear degrees of freedom.
func (H *MMSTHamiltonian) Dim() int {
	return H.Matrix.NSurfaces() + H.Matrix.NDoF()
}

//CrossTerms is always true for the MMST Hamiltonian.
func (H *MMSTHamiltonian) CrossTerms() bool { return true }

//RequiredFeatures returns the electronic features, which snapshots need to carry.
func (H *MMSTHamiltonian) RequiredFeatures() dynq.Feature {
	return dynq.Classical | dynq.Electronic
}

//V returns the potential part of the Hamiltonian.
func (H *MMSTHamiltonian) V(s *dynq.Snapshot) float64 {
	elect := H.ElectCache(s)
	v := 0.0
	for _, pair := range H.Matrix.Pairs() {
		v += elect[pair] * H.Matrix.At(pair.I, pair.J).V(s)
	}
	return v
}

//H returns the total energy.
func (H *MMSTHamiltonian) H(s *dynq.Snapshot) float64 {
	return kinetic(s) + H.V(s)
}

//DHDq returns the derivative with respect to the nuclear coordinates.
func (H *MMSTHamiltonian) DHDq(s *dynq.Snapshot) []float64 {
	elect := H.ElectCache(s)
	ret := make([]float64, len(s.Coordinates))
	for _, pair := range H.Matrix.Pairs() {
		floats.AddScaled(ret, elect[pair], H.Matrix.At(pair.I, pair.J).DHDq(s))
	}
	return ret
}

//DHDp returns the derivative with respect to the nuclear momenta, p/m.
func (H *MMSTHamiltonian) DHDp(s *dynq.Snapshot) []float64 {
	return kineticDHDp(s)
}

//ElectronicDHDq returns the derivatives with respect to the electronic coordinates:
//dH/dx_k = sum_j V_kj x_j
func (H *MMSTHamiltonian) ElectronicDHDq(s *dynq.Snapshot) []float64 {
	H.checkElectronic(s)
	return H.electronicGrad(s, s.ElectronicCoordinates)
}

//ElectronicDHDp returns the derivatives with respect to the electronic momenta:
//dH/dp_k = sum_j V_kj p_j
func (H *MMSTHamiltonian) ElectronicDHDp(s *dynq.Snapshot) []float64 {
	H.checkElectronic(s)
	return H.electronicGrad(s, s.ElectronicMomenta)
}

func (H *MMSTHamiltonian) electronicGrad(s *dynq.Snapshot, v []float64) []float64 {
	ret := mat.NewVecDense(len(v), nil)
	ret.MulVec(H.Matrix.Values(s), mat.NewVecDense(len(v), v))
	return ret.RawVector().Data
}

//dVdq returns, for each surface pair, the gradient of the surface.
func (H *MMSTHamiltonian) dVdq(s *dynq.Snapshot) map[Pair][]float64 {
	ret := make(map[Pair][]float64, len(H.Matrix.upper))
	for _, p := range H.Matrix.Pairs() {
		ret[p] = H.Matrix.At(p.I, p.J).DHDq(s)
	}
	return ret
}

//mixed returns the S x N matrix sum_j dV_kj/dq_a v_j
func (H *MMSTHamiltonian) mixed(grads map[Pair][]float64, v []float64, ndof int) *mat.Dense {
	ns := H.Matrix.NSurfaces()
	ret := mat.NewDense(ns, ndof, nil)
	for k := 0; k < ns; k++ {
		row := ret.RawRowView(k)
		for j := 0; j < ns; j++ {
			floats.AddScaled(row, v[j], grads[NewPair(k, j)])
		}
	}
	return ret
}

//D2HDq2 returns the Hessian with respect to the (electronic, nuclear) coordinates.
func (H *MMSTHamiltonian) D2HDq2(s *dynq.Snapshot) *mat.Dense {
	H.checkElectronic(s)
	ns := H.Matrix.NSurfaces()
	n := len(s.Coordinates)
	ret := mat.NewDense(ns+n, ns+n, nil)
	ret.Slice(0, ns, 0, ns).(*mat.Dense).Copy(H.Matrix.Values(s))
	mix := H.mixed(H.dVdq(s), s.ElectronicCoordinates, n)
	ret.Slice(0, ns, ns, ns+n).(*mat.Dense).Copy(mix)
	ret.Slice(ns, ns+n, 0, ns).(*mat.Dense).Copy(mix.T())
	nuc := ret.Slice(ns, ns+n, ns, ns+n).(*mat.Dense)
	elect := H.ElectCache(s)
	for _, pair := range H.Matrix.Pairs() {
		hess := H.Matrix.At(pair.I, pair.J).D2HDq2(s)
		dynq.CheckSquare(hess, n)
		var scaled mat.Dense
		scaled.Scale(elect[pair], hess)
		nuc.Add(nuc, &scaled)
	}
	return ret
}

//D2HDp2 returns the Hessian with respect to the (electronic, nuclear) momenta.
func (H *MMSTHamiltonian) D2HDp2(s *dynq.Snapshot) *mat.Dense {
	H.checkElectronic(s)
	ns := H.Matrix.NSurfaces()
	m := s.Masses()
	n := len(m)
	ret := mat.NewDense(ns+n, ns+n, nil)
	ret.Slice(0, ns, 0, ns).(*mat.Dense).Copy(H.Matrix.Values(s))
	for a := 0; a < n; a++ {
		ret.Set(ns+a, ns+a, 1.0/m[a])
	}
	return ret
}

//D2HDqDp returns the mixed second derivatives, with the coordinate index on the rows
//and the momentum index on the columns. Only the derivatives with respect to a nuclear
//coordinate and an electronic momentum are non-zero.
func (H *MMSTHamiltonian) D2HDqDp(s *dynq.Snapshot) *mat.Dense {
	H.checkElectronic(s)
	ns := H.Matrix.NSurfaces()
	n := len(s.Coordinates)
	ret := mat.NewDense(ns+n, ns+n, nil)
	mix := H.mixed(H.dVdq(s), s.ElectronicMomenta, n)
	ret.Slice(ns, ns+n, 0, ns).(*mat.Dense).Copy(mix.T())
	return ret
}

//D2HDpDq returns the transpose of D2HDqDp.
func (H *MMSTHamiltonian) D2HDpDq(s *dynq.Snapshot) *mat.Dense {
	return mat.DenseCopyOf(H.D2HDqDp(s).T())
}
