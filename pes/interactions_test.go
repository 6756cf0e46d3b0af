/*
 * interactions_test.go, part of dynq.
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
	"gonum.org/v1/gonum/diff/fd"
)

func TestInteractionDerivatives(t *testing.T) {
	interactions := map[string]Interaction{
		"tanh":     TanhInteraction{V0: 0.1, A: 1.6},
		"gaussian": GaussianInteraction{A: 0.05, Alpha: 1.0, X0: 0.3},
		"morse":    MorseInteraction{D: 30.0, Beta: 0.08, X0: 0.5},
		"harmonic": HarmonicInteraction{K: 2.5, X0: -1.0},
	}
	settings := &fd.Settings{Formula: fd.Central}
	for name, I := range interactions {
		for _, x := range []float64{-1.3, -0.2, 0.0, 0.1, 0.9, 2.4} {
			num := fd.Derivative(I.F, x, settings)
			assert.InDelta(t, num, I.DfDx(x), 1e-6, "%s dfdx at %g", name, x)
			num2 := fd.Derivative(I.DfDx, x, settings)
			assert.InDelta(t, num2, I.D2fDx2(x), 1e-6, "%s d2fdx2 at %g", name, x)
		}
	}
}

func TestTullyValues(t *testing.T) {
	v11 := TanhInteraction{A: 1.6, V0: 0.1}
	v12 := GaussianInteraction{A: 0.05, Alpha: 1.0}
	assert.InDelta(t, 0.0158648504297499, v11.F(0.1), tol)
	assert.InDelta(t, 0.155972904333467, v11.DfDx(0.1), tol)
	assert.InDelta(t, 0.0495024916874584, v12.F(0.1), tol)
	assert.InDelta(t, -0.00990049833749168, v12.DfDx(0.1), tol)
}

func TestOneDimensionalInteractionModel(t *testing.T) {
	model := NewOneDimensionalInteractionModel(MorseInteraction{D: 30.0, Beta: 0.08, X0: 0.5})
	top := dynq.NewTopology([]float64{0.2}, model)
	snap := dynq.NewSnapshot([]float64{0.0}, []float64{1.0}, top)
	assert.False(t, model.CrossTerms())
	assert.Equal(t, 1, model.Dim())
	assert.Nil(t, model.D2HDqDp(snap))
	assert.Nil(t, model.D2HDpDq(snap))
	assert.InDelta(t, 0.432293130684491, model.D2HDq2(snap).At(0, 0), 1e-12)
	assert.Equal(t, 5.0, model.D2HDp2(snap).At(0, 0))
	assert.Equal(t, []float64{5.0}, model.DHDp(snap))
	assert.InDelta(t, 2.5+model.V(snap), model.H(snap), 1e-12)
	bad := dynq.NewSnapshot([]float64{0.0, 1.0}, []float64{1.0, 1.0}, top)
	assert.PanicsWithValue(t, dynq.ErrShape, func() { model.V(bad) })
}
