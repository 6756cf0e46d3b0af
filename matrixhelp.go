/*
 * matrixhelp.go, part of dynq.
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

//Zeros returns a zero-filled r x c Dense.
func Zeros(r, c int) *mat.Dense {
	return mat.NewDense(r, c, nil)
}

//Eye returns an identity matrix spanning span cols and rows
func Eye(span int) *mat.Dense {
	A := Zeros(span, span)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

//IsZero returns true if every element of A is exactly zero.
func IsZero(A mat.Matrix) bool {
	r, c := A.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if A.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

//CheckSquare panics with ErrShape if A is not an n x n matrix.
func CheckSquare(A mat.Matrix, n int) {
	r, c := A.Dims()
	if r != n || c != n {
		panic(ErrShape)
	}
}

//Flatten copies the elements of A, row-major, to dst, which must have r*c elements.
func Flatten(dst []float64, A *mat.Dense) {
	r, c := A.Dims()
	if len(dst) != r*c {
		panic(ErrShape)
	}
	for i := 0; i < r; i++ {
		copy(dst[i*c:(i+1)*c], A.RawRowView(i))
	}
}

//Unflatten sets the elements of A from the row-major src.
func Unflatten(A *mat.Dense, src []float64) {
	r, c := A.Dims()
	if len(src) != r*c {
		panic(ErrShape)
	}
	for i := 0; i < r; i++ {
		copy(A.RawRowView(i), src[i*c:(i+1)*c])
	}
}
