// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isolve

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/nurbscast/brep"
)

// newtonResult is the outcome of one seed's Newton iteration.
type newtonResult struct {
	u, v float64
	ok   bool
}

// newtonSolve runs the Newton iteration of spec.md §4.D from seed (u0,v0),
// clamping to the surface's global domain [uMin,uMax]x[vMin,vMax] at every
// step. The 2x2 Jacobian inverse is computed with la.MatInv, exactly the
// pattern shp.Shape.CalcAtIp uses for dRdx = inv(dxdR).
func newtonSolve(surf brep.SurfaceEval, n1, n2 brep.Vec3, p1, p2 float64,
	u0, v0, uMin, uMax, vMin, vMax float64, cfg Config, sc *Scratch) newtonResult {

	u, v := u0, v0
	centerU, centerV := 0.5*(uMin+uMax), 0.5*(vMin+vMax)
	prevNorm := math.Inf(1)

	for iter := 0; iter < cfg.IterMax; iter++ {
		s, su, sv := surf.Ev1Der(u, v)
		f0, f1 := residual(s, n1, n2, p1, p2)

		j := sc.j
		j[0][0], j[0][1] = brep.Dot3(n1, su), brep.Dot3(n1, sv)
		j[1][0], j[1][1] = brep.Dot3(n2, su), brep.Dot3(n2, sv)

		det, err := la.MatInv(sc.ji, j, 1e-300)
		if err != nil || math.Abs(det) < cfg.EpsSingular {
			// singular Jacobian: jitter the seed toward the center of the
			// surface domain [uMin,uMax]x[vMin,vMax] (not the leaf patch's
			// center) by a random fraction and retry, up to the shared iteration cap
			// (spec.md §4.D step 4; §7's "Jitter seed; on persistent
			// singularity, abandon this seed" policy).
			frac := 0.1 + 0.4*sc.rng.Float64()
			u += frac * (centerU - u)
			v += frac * (centerV - v)
			continue
		}

		du := sc.ji[0][0]*f0 + sc.ji[0][1]*f1
		dv := sc.ji[1][0]*f0 + sc.ji[1][1]*f1
		u -= du
		v -= dv
		u = clampParam(u, uMin, uMax, cfg.EpsClamp)
		v = clampParam(v, vMin, vMax, cfg.EpsClamp)

		s2 := surf.PointAt(u, v)
		g0, g1 := residual(s2, n1, n2, p1, p2)
		norm := math.Hypot(g0, g1)

		if norm < cfg.EpsRoot {
			return newtonResult{u: u, v: v, ok: true}
		}
		if norm > prevNorm {
			return newtonResult{u: u, v: v, ok: false} // divergence: abandon this seed
		}
		prevNorm = norm
	}
	return newtonResult{u: u, v: v, ok: false} // iteration cap reached: abandon this seed
}

// clampParam clamps x into [lo,hi], edge-inclusive on the lower bound and
// strictly less than the upper bound by epsClamp (spec.md §4.D step 6).
func clampParam(x, lo, hi, epsClamp float64) float64 {
	if x < lo {
		return lo
	}
	upper := hi - epsClamp
	if x > upper {
		return upper
	}
	return x
}
