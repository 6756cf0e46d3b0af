/*
 * mmst_test.go, part of dynq.
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
	"testing"

	dynq "github.com/dynamiq/dynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-8

//tully returns the MMST Hamiltonian for Tully's single avoided crossing, and
//a snapshot on it, where
//	V11 = 0.1*tanh(1.6*0.1) = 0.0158648504297499
//	V12 = 0.05*exp(-1.0*0.1^2) = 0.0495024916874584
//	V22 = -0.0158648504297499
func tully(t *testing.T) (*MMSTHamiltonian, *dynq.Snapshot) {
	v11 := NewOneDimensionalInteractionModel(TanhInteraction{A: 1.6, V0: 0.1})
	v22 := NewOneDimensionalInteractionModel(TanhInteraction{A: 1.6, V0: -0.1})
	v12 := NewOneDimensionalInteractionModel(GaussianInteraction{A: 0.05, Alpha: 1.0})
	M, err := NewNonadiabaticMatrix([][]Surface{{v11, v12}, {v12, v22}})
	require.NoError(t, err)
	H := NewMMSTHamiltonian(M)
	top := dynq.NewTopology([]float64{1980.0}, v11)
	snap := dynq.NewMMSTSnapshot([]float64{0.1}, []float64{19.0}, []float64{0.7, 0.6}, []float64{0.2, 0.1}, top)
	return H, snap
}

func TestElectCache(t *testing.T) {
	H, snap := tully(t)
	elect := H.ElectCache(snap)
	// 0.5*(0.7*0.7 + 0.2*0.2 - 1.0)
	assert.InDelta(t, -0.235, elect[Pair{0, 0}], tol)
	// 0.5*(0.6*0.6 + 0.1*0.1 - 1.0)
	assert.InDelta(t, -0.315, elect[Pair{1, 1}], tol)
	// 0.7*0.6 + 0.2*0.1
	assert.InDelta(t, 0.44, elect[Pair{0, 1}], tol)
	assert.Len(t, elect, 3)
	_, ok := elect[Pair{1, 0}]
	assert.False(t, ok, "Unexpected key (1,0) in the electronic cache")
}

func TestV(t *testing.T) {
	H, snap := tully(t)
	// -0.235*V11 - 0.315*V22 + 0.44*V12
	assert.InDelta(t, 0.0230502843768617, H.V(snap), tol)
}

func TestDHDq(t *testing.T) {
	H, snap := tully(t)
	// dV11dx*e11 + dV22dx*e22 + dV12dx*e12
	//   = 0.155972904333467*-0.235 - 0.155972904333467*-0.315 - 0.00990049833749168*0.44
	assert.InDeltaSlice(t, []float64{0.00812161307818102}, H.DHDq(snap), tol)
}

func TestDHDp(t *testing.T) {
	H, snap := tully(t)
	assert.InDeltaSlice(t, []float64{19.0 / 1980.0}, H.DHDp(snap), tol)
}

func TestElectronicDHDq(t *testing.T) {
	H, snap := tully(t)
	// V11*x1 + V12*x2, V22*x2 + V12*x1
	assert.InDeltaSlice(t, []float64{0.0408068903133000, 0.0251328339233709}, H.ElectronicDHDq(snap), tol)
}

func TestElectronicDHDp(t *testing.T) {
	H, snap := tully(t)
	// V11*p1 + V12*p2, V22*p2 + V12*p1
	assert.InDeltaSlice(t, []float64{0.00812321925469582, 0.00831401329451669}, H.ElectronicDHDp(snap), tol)
}

func TestHTotal(t *testing.T) {
	H, snap := tully(t)
	assert.InDelta(t, 19.0*19.0/(2*1980.0)+0.0230502843768617, H.H(snap), tol)
}

func TestMMSTSecondDerivatives(t *testing.T) {
	H, snap := tully(t)
	assert.True(t, H.CrossTerms())
	assert.Equal(t, 3, H.Dim())
	Hqq := mat.NewDense(3, 3, []float64{
		0.01586485, 0.04950249, 0.10324073,
		0.04950249, -0.01586485, -0.10051409,
		0.10324073, -0.10051409, -0.04902564,
	})
	Hqp := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 0, 0,
		0.03020453, -0.01757739, 0,
	})
	Hpp := mat.NewDense(3, 3, []float64{
		0.01586485, 0.04950249, 0,
		0.04950249, -0.01586485, 0,
		0, 0, 0.00050505,
	})
	assert.True(t, mat.EqualApprox(Hqq, H.D2HDq2(snap), 1e-7), "Hqq:\n%v", mat.Formatted(H.D2HDq2(snap)))
	assert.True(t, mat.EqualApprox(Hqp, H.D2HDqDp(snap), 1e-7), "Hqp:\n%v", mat.Formatted(H.D2HDqDp(snap)))
	assert.True(t, mat.EqualApprox(Hqp.T(), H.D2HDpDq(snap), 1e-7), "Hpq:\n%v", mat.Formatted(H.D2HDpDq(snap)))
	assert.True(t, mat.EqualApprox(Hpp, H.D2HDp2(snap), 1e-7), "Hpp:\n%v", mat.Formatted(H.D2HDp2(snap)))
}

//gradient returns a function of the combined (electronic, nuclear) coordinates (vary=="q")
//or momenta, giving the combined gradient of H with respect to the coordinates (of=="q")
//or the momenta.
func gradient(H *MMSTHamiltonian, snap *dynq.Snapshot, vary, of string) func(y, x []float64) {
	return func(y, x []float64) {
		s := snap.Copy()
		if vary == "q" {
			copy(s.ElectronicCoordinates, x[:2])
			copy(s.Coordinates, x[2:])
		} else {
			copy(s.ElectronicMomenta, x[:2])
			copy(s.Momenta, x[2:])
		}
		if of == "q" {
			copy(y[:2], H.ElectronicDHDq(s))
			copy(y[2:], H.DHDq(s))
		} else {
			copy(y[:2], H.ElectronicDHDp(s))
			copy(y[2:], H.DHDp(s))
		}
	}
}

func TestMMSTSecondDerivativesFiniteDifferences(t *testing.T) {
	H, snap := tully(t)
	q := []float64{0.7, 0.6, 0.1}
	p := []float64{0.2, 0.1, 19.0}
	settings := &fd.JacobianSettings{Formula: fd.Central}
	cases := []struct {
		name     string
		vary, of string
		x        []float64
		analytic *mat.Dense
	}{
		//J[i][j] = d(dH/dq_i)/dq_j
		{"Hqq", "q", "q", q, H.D2HDq2(snap)},
		//J[i][j] = d(dH/dq_i)/dp_j
		{"Hqp", "p", "q", p, H.D2HDqDp(snap)},
		//J[i][j] = d(dH/dp_i)/dq_j
		{"Hpq", "q", "p", q, H.D2HDpDq(snap)},
		{"Hpp", "p", "p", p, H.D2HDp2(snap)},
	}
	for _, c := range cases {
		num := mat.NewDense(3, 3, nil)
		fd.Jacobian(num, gradient(H, snap, c.vary, c.of), c.x, settings)
		assert.True(t, mat.EqualApprox(num, c.analytic, 1e-6), "%s numerical:\n%v\nanalytic:\n%v", c.name, mat.Formatted(num), mat.Formatted(c.analytic))
	}
}

func TestMMSTRequiresElectronic(t *testing.T) {
	H, snap := tully(t)
	assert.True(t, H.RequiredFeatures().Has(dynq.Electronic))
	nuclear := dynq.NewSnapshot(snap.Coordinates, snap.Momenta, snap.Topology)
	assert.PanicsWithValue(t, dynq.ErrNoElectronic, func() { H.V(nuclear) })
	wrong := dynq.NewMMSTSnapshot([]float64{0.1}, []float64{19.0}, []float64{0.7}, []float64{0.2}, snap.Topology)
	assert.PanicsWithValue(t, dynq.ErrShape, func() { H.ElectronicDHDq(wrong) })
}
