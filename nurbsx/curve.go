// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbsx

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/nurbscast/brep"
)

// Curve adapts a 1D (curve) *gm.Nurbs plus its 2D control net into a
// brep.CurveEval, used by the Trim Curve Tree (package ttree).
type Curve struct {
	nurbs *gm.Nurbs
	ctrl  [][]float64 // [nbasis][2]
	nb    int
}

// NewCurve builds a Curve from a basis evaluator and its 2D control net.
func NewCurve(nurbs *gm.Nurbs, ctrl [][]float64) *Curve {
	if nurbs.Gnd() != 1 {
		chk.Panic("nurbsx.NewCurve requires a 1D (curve) NURBS object, got gnd=%d", nurbs.Gnd())
	}
	return &Curve{nurbs: nurbs, ctrl: ctrl, nb: nurbs.NumBasis(0)}
}

func (c *Curve) eval(t float64, order int) (p, d1, d2 brep.Vec2) {
	u := []float64{t}
	if order >= 1 {
		c.nurbs.CalcBasisAndDerivs(u)
	} else {
		c.nurbs.CalcBasis(u)
	}
	p = brep.Vec2{0, 0}
	d1 = brep.Vec2{0, 0}
	dS := make([]float64, 1)
	for l := 0; l < c.nb; l++ {
		Sl := c.nurbs.GetBasisL(l)
		if Sl == 0 {
			continue
		}
		q := c.ctrl[l]
		p[0] += Sl * q[0]
		p[1] += Sl * q[1]
		if order >= 1 {
			c.nurbs.GetDerivL(dS, l)
			d1[0] += dS[0] * q[0]
			d1[1] += dS[0] * q[1]
		}
	}
	if order >= 2 {
		// second derivative by central differencing of the first derivative;
		// gm.Nurbs exposes only first derivatives through GetDerivL, so the
		// curvature vector needed by the point-in-trim side test (spec.md
		// §4.B) is obtained this way, the same finite-difference trick
		// used elsewhere in this codebase to cross-check derivatives.
		const h = 1e-4
		t0, t1 := c.Domain()
		tm, tp := t-h, t+h
		if tm < t0 {
			tm = t0
		}
		if tp > t1 {
			tp = t1
		}
		_, dm, _ := c.eval(tm, 1)
		_, dp, _ := c.eval(tp, 1)
		denom := tp - tm
		if denom > 1e-300 {
			d2 = brep.Vec2{(dp[0] - dm[0]) / denom, (dp[1] - dm[1]) / denom}
		}
	}
	return
}

// PointAt implements brep.CurveEval
func (c *Curve) PointAt(t float64) brep.Vec2 {
	p, _, _ := c.eval(t, 0)
	return p
}

// TangentAt implements brep.CurveEval
func (c *Curve) TangentAt(t float64) brep.Vec2 {
	_, d, _ := c.eval(t, 1)
	return d
}

// CurvatureAt implements brep.CurveEval
func (c *Curve) CurvatureAt(t float64) brep.Vec2 {
	_, _, k := c.eval(t, 2)
	return k
}

// Domain implements brep.CurveEval
func (c *Curve) Domain() (t0, t1 float64) {
	return c.nurbs.U(0, 0), c.nurbs.U(0, c.nb-1)
}

// NearestPoint implements brep.CurveEval using a coarse sampling bootstrap
// followed by Newton iteration on d/dt |C(t)-q|^2 = (C(t)-q)·C'(t) = 0.
// gosl/gm does not expose a curve closest-point primitive usable standalone
// from a bare basis/control-net pair (see DESIGN.md), so this module
// implements the search directly, in the same Newton idiom used by the
// solver (isolve) for ray/surface roots.
func (c *Curve) NearestPoint(q brep.Vec2) (best float64, ok bool) {
	t0, t1 := c.Domain()
	const nSamples = 32
	bestDist := -1.0
	for i := 0; i <= nSamples; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(nSamples)
		p := c.PointAt(t)
		d := brep.Norm2(brep.Sub2(p, q))
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = t
		}
	}
	const iterMax = 20
	const tol = 1e-9
	for it := 0; it < iterMax; it++ {
		p := c.PointAt(best)
		d1 := c.TangentAt(best)
		d2 := c.CurvatureAt(best)
		diff := brep.Sub2(p, q)
		g := brep.Dot2(diff, d1)
		if absf(g) < tol {
			return best, true
		}
		gp := brep.Dot2(d1, d1) + brep.Dot2(diff, d2)
		if absf(gp) < 1e-14 {
			return best, bestDist >= 0
		}
		step := g / gp
		next := best - step
		if next < t0 {
			next = t0
		}
		if next > t1 {
			next = t1
		}
		if absf(next-best) < 1e-12 {
			best = next
			return best, true
		}
		best = next
	}
	return best, bestDist >= 0
}

// Clone implements brep.CurveEval
func (c *Curve) Clone() brep.CurveEval {
	clone := *c.nurbs
	return &Curve{nurbs: &clone, ctrl: c.ctrl, nb: c.nb}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
