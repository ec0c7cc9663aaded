// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttree

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/nurbscast/brep"
)

// squareCurve traces the unit square [0,1]x[0,1] counter-clockwise,
// t in [0,4), with zero curvature (straight edges).
type squareCurve struct{}

func (squareCurve) Domain() (float64, float64) { return 0, 4 }

func (squareCurve) PointAt(t float64) brep.Vec2 {
	seg, f := int(t)%4, t-float64(int(t))
	switch seg {
	case 0:
		return brep.Vec2{f, 0}
	case 1:
		return brep.Vec2{1, f}
	case 2:
		return brep.Vec2{1 - f, 1}
	default:
		return brep.Vec2{0, 1 - f}
	}
}

func (squareCurve) TangentAt(t float64) brep.Vec2 {
	switch int(t) % 4 {
	case 0:
		return brep.Vec2{1, 0}
	case 1:
		return brep.Vec2{0, 1}
	case 2:
		return brep.Vec2{-1, 0}
	default:
		return brep.Vec2{0, -1}
	}
}

func (squareCurve) CurvatureAt(t float64) brep.Vec2 { return brep.Vec2{0, 0} }

func (squareCurve) NearestPoint(q brep.Vec2) (float64, bool) {
	best, bestD := 0.0, -1.0
	for i := 0; i <= 400; i++ {
		t := 4 * float64(i) / 400
		sc := squareCurve{}
		p := sc.PointAt(t)
		d := brep.Norm2(brep.Sub2(p, q))
		if bestD < 0 || d < bestD {
			bestD, best = d, t
		}
	}
	return best, true
}

func (squareCurve) Clone() brep.CurveEval { return squareCurve{} }

func squareFace() (*brep.Face, []brep.Curve2D) {
	curves := []brep.Curve2D{{Eval: squareCurve{}}}
	face := &brep.Face{
		Loops: []brep.Loop{{Trims: []brep.Trim{{Curve: 0, T0: 0, T1: 4}}}},
	}
	return face, curves
}

func Test_ttree01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ttree01")

	face, curves := squareFace()
	tr := Build(face, curves, DefaultLimits(), 1e-6)

	cases := []struct {
		u, v float64
		want Classification
	}{
		{0.5, 0.5, Inside},
		{-0.1, 0.5, Outside},
		{1.1, 0.5, Outside},
		{0.5, -0.1, Outside},
	}
	for _, c := range cases {
		got := tr.IsTrimmed(c.u, c.v)
		if got != c.want {
			tst.Errorf("IsTrimmed(%v,%v) = %v, want %v", c.u, c.v, got, c.want)
		}
	}

	// points near the boundary, but not exactly on it, classify consistently
	// with being just inside vs just outside
	if tr.IsTrimmed(0.5, 0.01) != Inside {
		tst.Errorf("a point just inside the bottom edge must classify Inside")
	}
	if tr.IsTrimmed(0.5, -0.01) != Outside {
		tst.Errorf("a point just outside the bottom edge must classify Outside")
	}
}

func Test_ttree02_onEdge(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ttree02")

	face, curves := squareFace()
	const edgeTol = 1e-3
	tr := Build(face, curves, DefaultLimits(), edgeTol)

	if got := tr.IsTrimmed(0.5, 0); got != OnEdge {
		tst.Errorf("a point exactly on the boundary must classify OnEdge, got %v", got)
	}
	if got := tr.IsTrimmed(0.5, 0.5*edgeTol); got != OnEdge {
		tst.Errorf("a point within edgeTol of the boundary must classify OnEdge, got %v", got)
	}
	if got := tr.IsTrimmed(0.5, 10*edgeTol); got != Inside {
		tst.Errorf("a point well clear of the boundary must not classify OnEdge, got %v", got)
	}
}
