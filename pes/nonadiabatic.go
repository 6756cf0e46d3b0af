/*
 * nonadiabatic.go, part of dynq.
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
	"fmt"

	dynq "github.com/dynamiq/dynq"
	"gonum.org/v1/gonum/mat"
)

//Surface is a potential energy function of the nuclear coordinates, as used
//for the elements of a NonadiabaticMatrix. DHDq and D2HDq2 are the gradient and Hessian
//of the potential with respect to the nuclear coordinates.
type Surface interface {
	V(s *dynq.Snapshot) float64
	DHDq(s *dynq.Snapshot) []float64
	D2HDq2(s *dynq.Snapshot) *mat.Dense
	NDoF() int
}

//Pair is an (I, J) pair of surface indexes, with I<=J.
type Pair struct {
	I, J int
}

//NewPair returns the pair for the surfaces i and j, ordered so that I<=J.
func NewPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{i, j}
}

//NonadiabaticMatrix is a symmetric matrix of surfaces, indexed by electronic states.
//Only the upper triangle (diagonal included) is stored, so the (j,i) element is
//the very same surface as the (i,j) one.
type NonadiabaticMatrix struct {
	n     int
	upper []Surface //packed upper triangle, row-major
}

//NewNonadiabaticMatrix returns a matrix built from the upper triangle of rows, which
//has to be square. Elements below the diagonal are ignored, and can be nil.
func NewNonadiabaticMatrix(rows [][]Surface) (*NonadiabaticMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, dynq.NewError("empty matrix", true, "NewNonadiabaticMatrix")
	}
	M := &NonadiabaticMatrix{n: n, upper: make([]Surface, 0, n*(n+1)/2)}
	ndof := -1
	for i, row := range rows {
		if len(row) != n {
			return nil, dynq.NewError(fmt.Sprintf("row %d has %d elements, expected %d", i, len(row), n), true, "NewNonadiabaticMatrix")
		}
		for j := i; j < n; j++ {
			if row[j] == nil {
				return nil, dynq.NewError(fmt.Sprintf("nil surface at (%d,%d)", i, j), true, "NewNonadiabaticMatrix")
			}
			if ndof < 0 {
				ndof = row[j].NDoF()
			} else if row[j].NDoF() != ndof {
				return nil, dynq.NewError(fmt.Sprintf("surface (%d,%d) has %d degrees of freedom, expected %d", i, j, row[j].NDoF(), ndof), true, "NewNonadiabaticMatrix")
			}
			M.upper = append(M.upper, row[j])
		}
	}
	return M, nil
}

//index returns the position of the (i,j) element in the packed storage.
func (M *NonadiabaticMatrix) index(i, j int) int {
	if i < 0 || j < 0 || i >= M.n || j >= M.n {
		panic(dynq.ErrIndexOutOfRange)
	}
	if i > j {
		i, j = j, i
	}
	//rows before i hold n + (n-1) + ... + (n-i+1) elements
	return i*M.n - i*(i-1)/2 + (j - i)
}

//At returns the surface for the electronic states i and j. At(i,j) and At(j,i)
//return the same surface.
func (M *NonadiabaticMatrix) At(i, j int) Surface {
	return M.upper[M.index(i, j)]
}

//NSurfaces returns the number of electronic states.
func (M *NonadiabaticMatrix) NSurfaces() int {
	return M.n
}

//NDoF returns the number of nuclear degrees of freedom of the surfaces.
func (M *NonadiabaticMatrix) NDoF() int {
	return M.upper[0].NDoF()
}

//Pairs returns all the (i,j) pairs with i<=j, in storage order.
func (M *NonadiabaticMatrix) Pairs() []Pair {
	ret := make([]Pair, 0, len(M.upper))
	for i := 0; i < M.n; i++ {
		for j := i; j < M.n; j++ {
			ret = append(ret, Pair{i, j})
		}
	}
	return ret
}

//Values returns the full, symmetric, n x n matrix of the surface values at s.
func (M *NonadiabaticMatrix) Values(s *dynq.Snapshot) *mat.SymDense {
	ret := mat.NewSymDense(M.n, nil)
	for _, p := range M.Pairs() {
		ret.SetSym(p.I, p.J, M.At(p.I, p.J).V(s))
	}
	return ret
}
