/*
 * systems.go, part of dynq.
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

//Package systems contains ready-made model systems, mostly
//to be used in tests and examples.
package systems

import (
	dynq "github.com/dynamiq/dynq"
	"github.com/dynamiq/dynq/pes"
)

//System groups a potential with a topology and an integrator for it.
//If options are given to the constructors, their time step is used instead of the system's default one.
type System struct {
	Potential  dynq.Potential
	Topology   *dynq.Topology
	Integrator *dynq.Integrator
}

func newSystem(pot dynq.Potential, masses []float64, dt float64, opts *dynq.Options) *System {
	if opts == nil {
		opts = dynq.DefaultOptions()
		opts.Dt(dt)
	}
	return &System{
		Potential:  pot,
		Topology:   dynq.NewTopology(masses, pot),
		Integrator: dynq.NewIntegrator(pot, opts),
	}
}

//AnharmonicMorse is a Morse oscillator with D=30, beta=0.08 and x0=0.5, and mass 0.2.
func AnharmonicMorse(opts ...*dynq.Options) *System {
	pot := pes.NewOneDimensionalInteractionModel(pes.MorseInteraction{D: 30.0, Beta: 0.08, X0: 0.5})
	return newSystem(pot, []float64{0.2}, 0.01, first(opts))
}

//Harmonic is a harmonic oscillator with force constant k and mass m, centered at 0.
func Harmonic(k, m float64, opts ...*dynq.Options) *System {
	pot := pes.NewOneDimensionalInteractionModel(pes.HarmonicInteraction{K: k})
	return newSystem(pot, []float64{m}, 0.01, first(opts))
}

//TullyMatrix returns the nonadiabatic matrix of Tully's single avoided crossing:
//V11 = 0.1 tanh(1.6 x), V22 = -V11, V12 = 0.05 exp(-x^2).
func TullyMatrix() *pes.NonadiabaticMatrix {
	v11 := pes.NewOneDimensionalInteractionModel(pes.TanhInteraction{A: 1.6, V0: 0.1})
	v22 := pes.NewOneDimensionalInteractionModel(pes.TanhInteraction{A: 1.6, V0: -0.1})
	v12 := pes.NewOneDimensionalInteractionModel(pes.GaussianInteraction{A: 0.05, Alpha: 1.0})
	M, err := pes.NewNonadiabaticMatrix([][]pes.Surface{
		{v11, v12},
		{v12, v22},
	})
	if err != nil {
		panic(err.Error()) //the matrix above is hardcoded, this can't happen.
	}
	return M
}

//Tully is the MMST Hamiltonian for Tully's single avoided crossing, with a nuclear mass of 1980.
func Tully(opts ...*dynq.Options) *System {
	pot := pes.NewMMSTHamiltonian(TullyMatrix())
	return newSystem(pot, []float64{1980.0}, 0.1, first(opts))
}

func first(opts []*dynq.Options) *dynq.Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return nil
}
