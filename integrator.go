/*
 * integrator.go, part of dynq.
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

import (
	"context"
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/floats"
)

//Hamiltonian is a Potential that can also give the total energy of a snapshot.
type Hamiltonian interface {
	Potential
	H(s *Snapshot) float64
}

//Integrator propagates a snapshot with the classical fourth order Runge-Kutta method.
//The nuclear variables, the electronic ones (if the potential is an ElectronicPotential
//and the snapshots carry them) and the state of every helper are advanced together.
//An Integrator belongs to one trajectory at a time.
type Integrator struct {
	Potential Potential
	Helpers   []Helper
	opts      *Options
	logger    log.Logger
	features  Feature
	prepared  bool
	dim       int
	steps     int
	t         float64

	//scratch
	work                   *Snapshot
	y, tmp, k1, k2, k3, k4 []float64
}

//NewIntegrator returns an integrator for pot. If opts is nil, DefaultOptions are used.
func NewIntegrator(pot Potential, opts *Options) *Integrator {
	if opts == nil {
		opts = DefaultOptions()
	}
	integ := &Integrator{Potential: pot, opts: opts}
	integ.logger = log.With(opts.Logger(), "component", "integrator")
	return integ
}

//Options returns the options of the integrator.
func (integ *Integrator) Options() *Options {
	return integ.opts
}

//Dt returns the time step.
func (integ *Integrator) Dt() float64 {
	return integ.opts.Dt()
}

//Time returns the time elapsed since the last Reset.
func (integ *Integrator) Time() float64 {
	return integ.t
}

//Steps returns the number of steps taken since the last Reset.
func (integ *Integrator) Steps() int {
	return integ.steps
}

//Features returns the features declared in the last call to Prepare.
func (integ *Integrator) Features() Feature {
	return integ.features
}

//Dim returns the dimension of the tangent space of the potential, i.e. the
//size of the second-derivative blocks. It is 0 if the potential doesn't
//provide second derivatives.
func (integ *Integrator) Dim() int {
	if sd, ok := integ.Potential.(SecondDerivatives); ok {
		return sd.Dim()
	}
	return 0
}

//Prepare declares the features that the snapshots given to the integrator
//must carry, and prepares all the helpers. It fails if the potential, or any
//helper, requires features that are not declared.
func (integ *Integrator) Prepare(features Feature) error {
	if req, ok := integ.Potential.(FeatureRequirer); ok {
		if !features.Has(req.RequiredFeatures()) {
			return NewError(fmt.Sprintf("potential requires features %s, got %s", req.RequiredFeatures(), features), true, "Integrator.Prepare")
		}
	}
	for i, h := range integ.Helpers {
		if req, ok := h.(FeatureRequirer); ok && !features.Has(req.RequiredFeatures()) {
			return NewError(fmt.Sprintf("helper %d requires features %s, got %s", i, req.RequiredFeatures(), features), true, "Integrator.Prepare")
		}
	}
	integ.features = features
	integ.dim = integ.Dim()
	integ.prepared = true
	for i, h := range integ.Helpers {
		if err := h.Prepare(integ); err != nil {
			integ.prepared = false
			return errDecorate(err, fmt.Sprintf("Integrator.Prepare: helper %d", i))
		}
	}
	level.Debug(integ.logger).Log("msg", "prepared", "features", features.String(), "dim", integ.dim, "helpers", len(integ.Helpers))
	return nil
}

//Reset checks that s carries the declared features and resets every helper on it.
//The step counter and the time are set to zero.
func (integ *Integrator) Reset(s *Snapshot) error {
	if !integ.prepared {
		return NewError("integrator not prepared", true, "Integrator.Reset")
	}
	if !s.Features.Has(integ.features) {
		return NewError(fmt.Sprintf("snapshot features %s lack some of %s", s.Features, integ.features), true, "Integrator.Reset")
	}
	for _, h := range integ.Helpers {
		h.Reset(s)
	}
	integ.steps = 0
	integ.t = 0
	integ.work = nil
	return nil
}

func (integ *Integrator) electronic(s *Snapshot) (ElectronicPotential, bool) {
	ep, ok := integ.Potential.(ElectronicPotential)
	return ep, ok && s.Features.Has(Electronic)
}

//stateLen returns the length of the state vector for s.
func (integ *Integrator) stateLen(s *Snapshot) int {
	l := 2 * s.NDoF()
	if _, ok := integ.electronic(s); ok {
		l += 2 * s.NSurfaces()
	}
	for _, h := range integ.Helpers {
		l += h.Len()
	}
	return l
}

func (integ *Integrator) pack(s *Snapshot, dst []float64) {
	n := s.NDoF()
	copy(dst[:n], s.Coordinates)
	copy(dst[n:2*n], s.Momenta)
	off := 2 * n
	if _, ok := integ.electronic(s); ok {
		ns := s.NSurfaces()
		copy(dst[off:off+ns], s.ElectronicCoordinates)
		copy(dst[off+ns:off+2*ns], s.ElectronicMomenta)
		off += 2 * ns
	}
	for _, h := range integ.Helpers {
		h.Pack(s, dst[off:off+h.Len()])
		off += h.Len()
	}
}

func (integ *Integrator) unpack(src []float64, s *Snapshot) {
	n := s.NDoF()
	copy(s.Coordinates, src[:n])
	copy(s.Momenta, src[n:2*n])
	off := 2 * n
	if _, ok := integ.electronic(s); ok {
		ns := s.NSurfaces()
		copy(s.ElectronicCoordinates, src[off:off+ns])
		copy(s.ElectronicMomenta, src[off+ns:off+2*ns])
		off += 2 * ns
	}
	for _, h := range integ.Helpers {
		h.Unpack(src[off:off+h.Len()], s)
		off += h.Len()
	}
}

//derivative puts in dydt the time derivative of the state y. The work snapshot
//is used to evaluate the potential.
func (integ *Integrator) derivative(y, dydt []float64) {
	s := integ.work
	integ.unpack(y, s)
	n := s.NDoF()
	copy(dydt[:n], integ.Potential.DHDp(s))
	floats.ScaleTo(dydt[n:2*n], -1, integ.Potential.DHDq(s))
	off := 2 * n
	if ep, ok := integ.electronic(s); ok {
		ns := s.NSurfaces()
		copy(dydt[off:off+ns], ep.ElectronicDHDp(s))
		floats.ScaleTo(dydt[off+ns:off+2*ns], -1, ep.ElectronicDHDq(s))
		off += 2 * ns
	}
	for _, h := range integ.Helpers {
		h.Derivative(integ.Potential, s, dydt[off:off+h.Len()])
		off += h.Len()
	}
}

func (integ *Integrator) alloc(s *Snapshot) {
	l := integ.stateLen(s)
	if integ.work != nil && len(integ.y) == l {
		integ.work.Topology = s.Topology
		return
	}
	integ.work = s.Copy()
	integ.y = make([]float64, l)
	integ.tmp = make([]float64, l)
	integ.k1 = make([]float64, l)
	integ.k2 = make([]float64, l)
	integ.k3 = make([]float64, l)
	integ.k4 = make([]float64, l)
}

//Step advances s by one time step, in place.
func (integ *Integrator) Step(s *Snapshot) error {
	if !integ.prepared {
		return NewError("integrator not prepared", true, "Integrator.Step")
	}
	integ.alloc(s)
	dt := integ.opts.Dt()
	y, tmp := integ.y, integ.tmp
	integ.pack(s, y)
	integ.derivative(y, integ.k1)
	floats.AddScaledTo(tmp, y, dt/2, integ.k1)
	integ.derivative(tmp, integ.k2)
	floats.AddScaledTo(tmp, y, dt/2, integ.k2)
	integ.derivative(tmp, integ.k3)
	floats.AddScaledTo(tmp, y, dt, integ.k3)
	integ.derivative(tmp, integ.k4)
	floats.AddScaled(y, dt/6, integ.k1)
	floats.AddScaled(y, dt/3, integ.k2)
	floats.AddScaled(y, dt/3, integ.k3)
	floats.AddScaled(y, dt/6, integ.k4)
	integ.steps++
	integ.t += dt
	if integ.opts.CheckFinite() && !finite(y) {
		return NewError(fmt.Sprintf("non-finite state at step %d (t=%g)", integ.steps, integ.t), true, "Integrator.Step")
	}
	integ.unpack(y, s)
	return nil
}

//Run takes nsteps steps on s. It stops early, returning the context's error,
//if ctx is canceled.
func (integ *Integrator) Run(ctx context.Context, s *Snapshot, nsteps int) error {
	every := integ.opts.LogEvery()
	for i := 0; i < nsteps; i++ {
		if err := ctx.Err(); err != nil {
			level.Warn(integ.logger).Log("msg", "run canceled", "step", integ.steps, "err", err)
			return err
		}
		if err := integ.Step(s); err != nil {
			level.Error(integ.logger).Log("msg", "step failed", "err", err)
			return errDecorate(err, "Integrator.Run")
		}
		if every > 0 && integ.steps%every == 0 {
			kv := []interface{}{"msg", "progress", "step", integ.steps, "t", integ.t}
			if h, ok := integ.Potential.(Hamiltonian); ok {
				kv = append(kv, "energy", h.H(s))
			}
			level.Info(integ.logger).Log(kv...)
		}
	}
	return nil
}

func finite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
