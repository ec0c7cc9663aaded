// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

// SurfaceEval is the capability set required, of an external NURBS library,
// by the ray-shot core. It is implemented for gosl/gm.Nurbs by package
// nurbsx; any spline evaluator (rational or not, any order) that can
// satisfy this interface may be used instead.
//
//  Note: callers must not share a single SurfaceEval across goroutines
//  unless the concrete type documents that its internal span cache is
//  safe for concurrent use; see Clone.
type SurfaceEval interface {

	// PointAt evaluates the surface position at (u,v)
	PointAt(u, v float64) (p Vec3)

	// Ev1Der evaluates position and first partial derivatives at (u,v)
	Ev1Der(u, v float64) (p, su, sv Vec3)

	// EvNormal evaluates the (non-reversed) unit surface normal at (u,v)
	EvNormal(u, v float64) (n Vec3)

	// IsLinear reports whether the surface is exactly planar/ruled in a way
	// that lets callers skip subdivision refinement
	IsLinear() bool

	// Domain returns the rectangular parameter domain [u0,u1] x [v0,v1]
	Domain() (u0, u1, v0, v1 float64)

	// Clone returns an independent evaluator instance suitable for use by
	// a different goroutine (own span cache, no shared mutable state)
	Clone() SurfaceEval
}

// CurveEval is the capability set required of a 2D trim-curve evaluator.
type CurveEval interface {

	// PointAt evaluates the curve position at parameter t
	PointAt(t float64) (p Vec2)

	// TangentAt evaluates the (unnormalized) first derivative at t
	TangentAt(t float64) (d Vec2)

	// CurvatureAt evaluates the second derivative at t, used to determine
	// the inward-facing side during point-in-trim classification
	CurvatureAt(t float64) (k Vec2)

	// Domain returns the curve's parameter interval [t0,t1]
	Domain() (t0, t1 float64)

	// NearestPoint returns the parameter minimizing distance to q, and
	// whether the search converged; on failure the caller falls back to a
	// fixed-resolution sampling (see ttree.Tree.nearestFallback)
	NearestPoint(q Vec2) (t float64, ok bool)

	// Clone returns an independent evaluator instance for another goroutine
	Clone() CurveEval
}
