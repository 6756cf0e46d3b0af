/*
 * monodromy.go, part of dynq.
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

//Package monodromy propagates the monodromy matrices of a trajectory,
//as a helper of a dynq.Integrator.
package monodromy

import (
	"fmt"

	dynq "github.com/dynamiq/dynq"
	"gonum.org/v1/gonum/mat"
)

//ErrNotPrepared is the panic message for a StandardMonodromy used before Prepare.
const ErrNotPrepared = dynq.PanicMsg("monodromy: StandardMonodromy used before Prepare")

//ErrNoSecondDerivatives is the panic message for a potential that can't give the Hessian blocks.
const ErrNoSecondDerivatives = dynq.PanicMsg("monodromy: potential does not provide second derivatives")

//StandardMonodromy propagates the monodromy matrices Mqq, Mqp, Mpq and Mpp of a
//snapshot, following
//
//	dMqq/dt =  Hpq Mqq + Hpp Mpq
//	dMqp/dt =  Hpq Mqp + Hpp Mpp
//	dMpq/dt = -Hqq Mqq - Hqp Mpq
//	dMpp/dt = -Hqq Mqp - Hqp Mpp
//
//A StandardMonodromy owns scratch matrices, so each trajectory needs its own.
//It implements dynq.Helper.
type StandardMonodromy struct {
	secondDerivatives dynq.SecondDerivatives
	crossTerms        bool
	dim               int

	localHqq, localHqp, localHpq, localHpp             *mat.Dense
	localDMqqDt, localDMqpDt, localDMpqDt, localDMppDt *mat.Dense
	tmp                                                *mat.Dense
}

//New returns an unprepared StandardMonodromy.
func New() *StandardMonodromy {
	return new(StandardMonodromy)
}

//Prepare takes the second derivative provider from the integrator's potential and
//allocates zeroed scratch matrices of the right size. The cross-term scratch
//is left nil if the potential has no cross terms.
func (M *StandardMonodromy) Prepare(integ *dynq.Integrator) error {
	sd, ok := integ.Potential.(dynq.SecondDerivatives)
	if !ok {
		return dynq.NewError(fmt.Sprintf("potential %T does not provide second derivatives", integ.Potential), true, "StandardMonodromy.Prepare")
	}
	n := sd.Dim()
	if n <= 0 {
		return dynq.NewError(fmt.Sprintf("invalid dimension %d", n), true, "StandardMonodromy.Prepare")
	}
	M.secondDerivatives = sd
	M.crossTerms = sd.CrossTerms()
	M.dim = n
	M.localHqq = dynq.Zeros(n, n)
	M.localHpp = dynq.Zeros(n, n)
	M.localHqp, M.localHpq = nil, nil
	if M.crossTerms {
		M.localHqp = dynq.Zeros(n, n)
		M.localHpq = dynq.Zeros(n, n)
	}
	M.localDMqqDt = dynq.Zeros(n, n)
	M.localDMqpDt = dynq.Zeros(n, n)
	M.localDMpqDt = dynq.Zeros(n, n)
	M.localDMppDt = dynq.Zeros(n, n)
	M.tmp = dynq.Zeros(n, n)
	return nil
}

//RequiredFeatures returns the monodromy feature, the snapshots
//propagated with a StandardMonodromy must declare it.
func (M *StandardMonodromy) RequiredFeatures() dynq.Feature {
	return dynq.Monodromy
}

//SecondDerivatives returns the second derivative provider found by Prepare.
func (M *StandardMonodromy) SecondDerivatives() dynq.SecondDerivatives {
	return M.secondDerivatives
}

//CrossTerms returns whether the prepared potential has cross terms.
func (M *StandardMonodromy) CrossTerms() bool {
	return M.crossTerms
}

//Dim returns the size of the monodromy matrices, 0 before Prepare.
func (M *StandardMonodromy) Dim() int {
	return M.dim
}

//Reset sets Mqq and Mpp to the identity, and Mqp and Mpq to zero, on s.
//Whatever monodromy s had is discarded.
func (M *StandardMonodromy) Reset(s *dynq.Snapshot) {
	if M.dim == 0 {
		panic(ErrNotPrepared)
	}
	n := M.dim
	s.SetMonodromy(dynq.Eye(n), dynq.Zeros(n, n), dynq.Zeros(n, n), dynq.Eye(n))
}

func (M *StandardMonodromy) checkSnapshot(s *dynq.Snapshot) {
	if M.dim == 0 {
		panic(ErrNotPrepared)
	}
	if !s.HasMonodromy() {
		panic(dynq.ErrNoMonodromy)
	}
	for _, m := range []*mat.Dense{s.Mqq, s.Mqp, s.Mpq, s.Mpp} {
		dynq.CheckSquare(m, M.dim)
	}
}

//load evaluates the second derivatives of pot at s and copies them to the scratch
//matrices. The returned Hessian refers to the scratch.
func (M *StandardMonodromy) load(pot dynq.SecondDerivatives, s *dynq.Snapshot) Hessian {
	M.checkSnapshot(s)
	if pot.Dim() != M.dim {
		panic(dynq.ErrShape)
	}
	switch h := Blocks(pot, s).(type) {
	case SingleSurface:
		M.localHqq.Copy(h.Hqq)
		M.localHpp.Copy(h.Hpp)
		return SingleSurface{Hqq: M.localHqq, Hpp: M.localHpp}
	case Coupled:
		if M.localHqp == nil {
			M.localHqp = dynq.Zeros(M.dim, M.dim)
			M.localHpq = dynq.Zeros(M.dim, M.dim)
		}
		M.localHqq.Copy(h.Hqq)
		M.localHqp.Copy(h.Hqp)
		M.localHpq.Copy(h.Hpq)
		M.localHpp.Copy(h.Hpp)
		return Coupled{Hqq: M.localHqq, Hqp: M.localHqp, Hpq: M.localHpq, Hpp: M.localHpp}
	}
	panic("monodromy: unknown Hessian type")
}

//combine puts sign*(A X + B Y) in dst. A nil A counts as a zero matrix.
func (M *StandardMonodromy) combine(dst, A, X, B, Y *mat.Dense, sign float64) *mat.Dense {
	dst.Mul(B, Y)
	if A != nil {
		M.tmp.Mul(A, X)
		dst.Add(dst, M.tmp)
	}
	if sign != 1 {
		dst.Scale(sign, dst)
	}
	return dst
}

func (M *StandardMonodromy) dMqqDt(h Hessian, s *dynq.Snapshot) *mat.Dense {
	_, _, hpq, hpp := h.blocks()
	return M.combine(M.localDMqqDt, hpq, s.Mqq, hpp, s.Mpq, 1)
}

func (M *StandardMonodromy) dMqpDt(h Hessian, s *dynq.Snapshot) *mat.Dense {
	_, _, hpq, hpp := h.blocks()
	return M.combine(M.localDMqpDt, hpq, s.Mqp, hpp, s.Mpp, 1)
}

func (M *StandardMonodromy) dMpqDt(h Hessian, s *dynq.Snapshot) *mat.Dense {
	hqq, hqp, _, _ := h.blocks()
	return M.combine(M.localDMpqDt, hqp, s.Mpq, hqq, s.Mqq, -1)
}

func (M *StandardMonodromy) dMppDt(h Hessian, s *dynq.Snapshot) *mat.Dense {
	hqq, hqp, _, _ := h.blocks()
	return M.combine(M.localDMppDt, hqp, s.Mpp, hqq, s.Mqp, -1)
}

//DMqqDt returns Hpq Mqq + Hpp Mpq at s. The returned matrix belongs to M, and
//is overwritten by the next call to DMqqDt.
func (M *StandardMonodromy) DMqqDt(pot dynq.SecondDerivatives, s *dynq.Snapshot) *mat.Dense {
	return M.dMqqDt(M.load(pot, s), s)
}

//DMqpDt returns Hpq Mqp + Hpp Mpp at s. The returned matrix belongs to M, and
//is overwritten by the next call to DMqpDt.
func (M *StandardMonodromy) DMqpDt(pot dynq.SecondDerivatives, s *dynq.Snapshot) *mat.Dense {
	return M.dMqpDt(M.load(pot, s), s)
}

//DMpqDt returns -Hqq Mqq - Hqp Mpq at s. The returned matrix belongs to M, and
//is overwritten by the next call to DMpqDt.
func (M *StandardMonodromy) DMpqDt(pot dynq.SecondDerivatives, s *dynq.Snapshot) *mat.Dense {
	return M.dMpqDt(M.load(pot, s), s)
}

//DMppDt returns -Hqq Mqp - Hqp Mpp at s. The returned matrix belongs to M, and
//is overwritten by the next call to DMppDt.
func (M *StandardMonodromy) DMppDt(pot dynq.SecondDerivatives, s *dynq.Snapshot) *mat.Dense {
	return M.dMppDt(M.load(pot, s), s)
}

//Derivative contains the time derivatives of the four monodromy matrices.
type Derivative struct {
	DMqqDt, DMqpDt, DMpqDt, DMppDt *mat.Dense
}

//Derivatives returns the four derivatives at s, evaluating the second derivatives
//only once. Unlike DMqqDt and friends, the returned matrices are new and belong to the caller.
func (M *StandardMonodromy) Derivatives(pot dynq.SecondDerivatives, s *dynq.Snapshot) Derivative {
	h := M.load(pot, s)
	return Derivative{
		DMqqDt: mat.DenseCopyOf(M.dMqqDt(h, s)),
		DMqpDt: mat.DenseCopyOf(M.dMqpDt(h, s)),
		DMpqDt: mat.DenseCopyOf(M.dMpqDt(h, s)),
		DMppDt: mat.DenseCopyOf(M.dMppDt(h, s)),
	}
}

//Len returns the number of elements the monodromy matrices take in an
//integrator's state vector.
func (M *StandardMonodromy) Len() int {
	return 4 * M.dim * M.dim
}

//Pack copies Mqq, Mqp, Mpq and Mpp, in that order and row-major, to dst.
func (M *StandardMonodromy) Pack(s *dynq.Snapshot, dst []float64) {
	M.checkSnapshot(s)
	nn := M.dim * M.dim
	if len(dst) != 4*nn {
		panic(dynq.ErrShape)
	}
	for i, m := range []*mat.Dense{s.Mqq, s.Mqp, s.Mpq, s.Mpp} {
		dynq.Flatten(dst[i*nn:(i+1)*nn], m)
	}
}

//Unpack sets the monodromy matrices of s from src. Matrices missing from s,
//or of the wrong size, are allocated.
func (M *StandardMonodromy) Unpack(src []float64, s *dynq.Snapshot) {
	if M.dim == 0 {
		panic(ErrNotPrepared)
	}
	n := M.dim
	nn := n * n
	if len(src) != 4*nn {
		panic(dynq.ErrShape)
	}
	ms := []**mat.Dense{&s.Mqq, &s.Mqp, &s.Mpq, &s.Mpp}
	for i, m := range ms {
		if *m == nil {
			*m = dynq.Zeros(n, n)
		} else if r, c := (*m).Dims(); r != n || c != n {
			*m = dynq.Zeros(n, n)
		}
		dynq.Unflatten(*m, src[i*nn:(i+1)*nn])
	}
}

//Derivative puts the time derivatives of Mqq, Mqp, Mpq and Mpp at s in dst,
//in the same layout as Pack.
func (M *StandardMonodromy) Derivative(pot dynq.Potential, s *dynq.Snapshot, dst []float64) {
	sd, ok := pot.(dynq.SecondDerivatives)
	if !ok {
		panic(ErrNoSecondDerivatives)
	}
	h := M.load(sd, s)
	nn := M.dim * M.dim
	if len(dst) != 4*nn {
		panic(dynq.ErrShape)
	}
	dynq.Flatten(dst[:nn], M.dMqqDt(h, s))
	dynq.Flatten(dst[nn:2*nn], M.dMqpDt(h, s))
	dynq.Flatten(dst[2*nn:3*nn], M.dMpqDt(h, s))
	dynq.Flatten(dst[3*nn:], M.dMppDt(h, s))
}

//Matrix returns the full 2n x 2n monodromy matrix of s,
//[[Mqq, Mqp], [Mpq, Mpp]].
func Matrix(s *dynq.Snapshot) *mat.Dense {
	if !s.HasMonodromy() {
		panic(dynq.ErrNoMonodromy)
	}
	n, _ := s.Mqq.Dims()
	ret := dynq.Zeros(2*n, 2*n)
	ret.Slice(0, n, 0, n).(*mat.Dense).Copy(s.Mqq)
	ret.Slice(0, n, n, 2*n).(*mat.Dense).Copy(s.Mqp)
	ret.Slice(n, 2*n, 0, n).(*mat.Dense).Copy(s.Mpq)
	ret.Slice(n, 2*n, n, 2*n).(*mat.Dense).Copy(s.Mpp)
	return ret
}

//SymplecticError returns the Frobenius norm of M^T J M - J, where M is the full
//monodromy matrix of s and J the symplectic unit [[0, I], [-I, 0]]. It is zero
//for the tangent map of a Hamiltonian flow.
func SymplecticError(s *dynq.Snapshot) float64 {
	Mf := Matrix(s)
	r, _ := Mf.Dims()
	n := r / 2
	J := dynq.Zeros(r, r)
	for i := 0; i < n; i++ {
		J.Set(i, n+i, 1)
		J.Set(n+i, i, -1)
	}
	var JM, MtJM mat.Dense
	JM.Mul(J, Mf)
	MtJM.Mul(Mf.T(), &JM)
	MtJM.Sub(&MtJM, J)
	return mat.Norm(&MtJM, 2)
}
