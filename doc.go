/*
 * doc.go, part of dynq.
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

/*Package dynq is the main package of the dynq library. It provides the snapshot and
topology structures that hold the state of a classical trajectory, the interfaces that
potentials implement, and a fourth order Runge-Kutta integrator that propagates
snapshots together with any number of helpers.


	**dynq Capabilities**

    Snapshots carrying nuclear coordinates and momenta and, optionally, the electronic
	(mapping) variables of the Meyer-Miller-Stock-Thoss Hamiltonian.

    One-dimensional model potentials and their nonadiabatic coupling matrices
	(package pes), including the MMST Hamiltonian with its full second derivatives.

    Propagation of the monodromy (stability) matrices along a trajectory
	(package monodromy), for single surfaces and coupled ones.

    Ready-made model systems: Morse and harmonic oscillators, Tully's single
	avoided crossing (package systems).

    Integrator options can be set in code or read from TOML, YAML or JSON
	files. Progress is logged with go-kit leveled loggers.

dynq uses gonum (gonum.org/v1/gonum) for all matrix work. Errors
that the caller can deal with are returned as Error values, which can be
decorated as they go up the stack. Programming errors, such as shape
mismatches, cause panics with PanicMsg values.

*/
package dynq
