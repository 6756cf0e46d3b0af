/*
 * interactions.go, part of dynq.
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

//Package pes contains potential energy surfaces: one-dimensional interaction
//models, nonadiabatic coupling matrices built from them, and the
//Meyer-Miller-Stock-Thoss (MMST) Hamiltonian.
package pes

import "math"

//Interaction is a scalar function of one variable, with its first and
//second derivatives.
type Interaction interface {
	F(x float64) float64
	DfDx(x float64) float64
	D2fDx2(x float64) float64
}

//TanhInteraction is V0*tanh(A*x)
type TanhInteraction struct {
	V0, A float64
}

func (I TanhInteraction) F(x float64) float64 {
	return I.V0 * math.Tanh(I.A*x)
}

func (I TanhInteraction) DfDx(x float64) float64 {
	sech := 1.0 / math.Cosh(I.A*x)
	return I.V0 * I.A * sech * sech
}

func (I TanhInteraction) D2fDx2(x float64) float64 {
	sech := 1.0 / math.Cosh(I.A*x)
	return -2.0 * I.V0 * I.A * I.A * math.Tanh(I.A*x) * sech * sech
}

//GaussianInteraction is A*exp(-Alpha*(x-X0)^2)
type GaussianInteraction struct {
	A, Alpha, X0 float64
}

func (I GaussianInteraction) F(x float64) float64 {
	dx := x - I.X0
	return I.A * math.Exp(-I.Alpha*dx*dx)
}

func (I GaussianInteraction) DfDx(x float64) float64 {
	dx := x - I.X0
	return -2.0 * I.Alpha * dx * I.F(x)
}

func (I GaussianInteraction) D2fDx2(x float64) float64 {
	dx := x - I.X0
	return (4.0*I.Alpha*I.Alpha*dx*dx - 2.0*I.Alpha) * I.F(x)
}

//MorseInteraction is D*(1-exp(-Beta*(x-X0)))^2
type MorseInteraction struct {
	D, Beta, X0 float64
}

func (I MorseInteraction) F(x float64) float64 {
	t := 1.0 - math.Exp(-I.Beta*(x-I.X0))
	return I.D * t * t
}

func (I MorseInteraction) DfDx(x float64) float64 {
	e := math.Exp(-I.Beta * (x - I.X0))
	return 2.0 * I.D * I.Beta * e * (1.0 - e)
}

func (I MorseInteraction) D2fDx2(x float64) float64 {
	e := math.Exp(-I.Beta * (x - I.X0))
	return 2.0 * I.D * I.Beta * I.Beta * e * (2.0*e - 1.0)
}

//HarmonicInteraction is 0.5*K*(x-X0)^2
type HarmonicInteraction struct {
	K, X0 float64
}

func (I HarmonicInteraction) F(x float64) float64 {
	dx := x - I.X0
	return 0.5 * I.K * dx * dx
}

func (I HarmonicInteraction) DfDx(x float64) float64 {
	return I.K * (x - I.X0)
}

func (I HarmonicInteraction) D2fDx2(x float64) float64 {
	return I.K
}
