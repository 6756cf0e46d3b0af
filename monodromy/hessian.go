/*
 * hessian.go, part of dynq.
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

package monodromy

import (
	dynq "github.com/dynamiq/dynq"
	"gonum.org/v1/gonum/mat"
)

//Hessian is the set of second derivative blocks of a Hamiltonian at one point.
//It is either a SingleSurface or a Coupled value.
type Hessian interface {
	//Dim returns the size of the (square) blocks.
	Dim() int
	blocks() (hqq, hqp, hpq, hpp *mat.Dense)
}

//SingleSurface are the blocks of a Hamiltonian without coordinate-momentum
//cross terms. Hqp and Hpq are exactly zero.
type SingleSurface struct {
	Hqq, Hpp *mat.Dense
}

func (h SingleSurface) Dim() int {
	r, _ := h.Hqq.Dims()
	return r
}

func (h SingleSurface) blocks() (hqq, hqp, hpq, hpp *mat.Dense) {
	return h.Hqq, nil, nil, h.Hpp
}

//Coupled are the four blocks of a Hamiltonian with cross terms, such as the MMST one.
type Coupled struct {
	Hqq, Hqp, Hpq, Hpp *mat.Dense
}

func (h Coupled) Dim() int {
	r, _ := h.Hqq.Dims()
	return r
}

func (h Coupled) blocks() (hqq, hqp, hpq, hpp *mat.Dense) {
	return h.Hqq, h.Hqp, h.Hpq, h.Hpp
}

//Blocks evaluates the second derivatives of pot at s. The cross blocks are only
//requested from pot if it declares cross terms. It panics with dynq.ErrShape if the
//blocks are not square matrices of pot.Dim() rows.
func Blocks(pot dynq.SecondDerivatives, s *dynq.Snapshot) Hessian {
	n := pot.Dim()
	hqq := pot.D2HDq2(s)
	hpp := pot.D2HDp2(s)
	dynq.CheckSquare(hqq, n)
	dynq.CheckSquare(hpp, n)
	if !pot.CrossTerms() {
		return SingleSurface{Hqq: hqq, Hpp: hpp}
	}
	hqp := pot.D2HDqDp(s)
	hpq := pot.D2HDpDq(s)
	dynq.CheckSquare(hqp, n)
	dynq.CheckSquare(hpq, n)
	return Coupled{Hqq: hqq, Hqp: hqp, Hpq: hpq, Hpp: hpp}
}
