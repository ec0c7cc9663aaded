// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/cpmech/nurbscast/brep"

// squareBoundary traces the perimeter of the unit square [0,1]x[0,1]
// counter-clockwise starting at the origin, parameterized by arc length
// t in [0,4). It stands in for a real trimming curve (normally a
// nurbsx.Curve) when the face isn't trimmed at all: one loop covering
// the whole parametric rectangle.
type squareBoundary struct{}

func (squareBoundary) Domain() (t0, t1 float64) { return 0, 4 }

func (squareBoundary) PointAt(t float64) brep.Vec2 {
	switch seg, f := segment(t); seg {
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

func (squareBoundary) TangentAt(t float64) brep.Vec2 {
	switch seg, _ := segment(t); seg {
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

// CurvatureAt is zero everywhere: every edge is straight. ttree's edge-side
// classification falls back to its default (counter-clockwise) rotation of
// the tangent in that case, which is already inward for this loop.
func (squareBoundary) CurvatureAt(t float64) brep.Vec2 { return brep.Vec2{0, 0} }

func (squareBoundary) NearestPoint(q brep.Vec2) (float64, bool) {
	best, bestDist := 0.0, -1.0
	for seg := 0; seg < 4; seg++ {
		t, d := nearestOnSegment(seg, q)
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, true
}

func (squareBoundary) Clone() brep.CurveEval { return squareBoundary{} }

func segment(t float64) (seg int, frac float64) {
	for t < 0 {
		t += 4
	}
	for t >= 4 {
		t -= 4
	}
	seg = int(t)
	if seg > 3 {
		seg = 3
	}
	return seg, t - float64(seg)
}

// nearestOnSegment projects q onto one of the four unit edges and returns
// the edge-local parameter (mapped into the curve's global [0,4) range)
// together with the squared distance.
func nearestOnSegment(seg int, q brep.Vec2) (t, distSq float64) {
	var a, b brep.Vec2
	switch seg {
	case 0:
		a, b = brep.Vec2{0, 0}, brep.Vec2{1, 0}
	case 1:
		a, b = brep.Vec2{1, 0}, brep.Vec2{1, 1}
	case 2:
		a, b = brep.Vec2{1, 1}, brep.Vec2{0, 1}
	default:
		a, b = brep.Vec2{0, 1}, brep.Vec2{0, 0}
	}
	ab := brep.Vec2{b[0] - a[0], b[1] - a[1]}
	aq := brep.Vec2{q[0] - a[0], q[1] - a[1]}
	f := brep.Dot2(aq, ab)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	p := brep.Vec2{a[0] + f*ab[0], a[1] + f*ab[1]}
	d := brep.Vec2{q[0] - p[0], q[1] - p[1]}
	return float64(seg) + f, d[0]*d[0] + d[1]*d[1]
}
