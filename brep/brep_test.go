// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vec01")

	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	chk.Scalar(tst, "dot(a,b)", 1e-17, Dot3(a, b), 0)
	chk.Vector(tst, "cross(a,b)", 1e-17, Cross3(a, b), []float64{0, 0, 1})
	chk.Scalar(tst, "norm(a)", 1e-17, Norm3(a), 1)

	c := Vec3{3, 4, 0}
	chk.Scalar(tst, "norm(c)", 1e-17, Norm3(c), 5)
	u := Normalize3(c)
	chk.Scalar(tst, "norm(unit c)", 1e-15, Norm3(u), 1)

	zero := Normalize3(Vec3{0, 0, 0})
	chk.Vector(tst, "normalize(0)", 1e-17, zero, []float64{0, 0, 0})
}

func Test_box01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("box01")

	b := EmptyBox3()
	if !b.Empty() {
		tst.Errorf("a fresh EmptyBox3 must report Empty()")
		return
	}
	b.Extend(Vec3{1, 2, 3})
	b.Extend(Vec3{-1, 0, 5})
	chk.Vector(tst, "lo", 1e-17, b.Lo, []float64{-1, 0, 3})
	chk.Vector(tst, "hi", 1e-17, b.Hi, []float64{1, 2, 5})

	// ray straight through the box along z
	tNear, tFar, hit := b.SlabHit(Vec3{0, 1, -10}, Vec3{0, 0, 1})
	if !hit {
		tst.Errorf("ray should hit the box")
		return
	}
	chk.Scalar(tst, "tNear", 1e-13, tNear, 13)
	chk.Scalar(tst, "tFar", 1e-13, tFar, 15)

	// a ray that misses entirely
	_, _, hit = b.SlabHit(Vec3{10, 10, -10}, Vec3{0, 0, 1})
	if hit {
		tst.Errorf("ray should miss the box")
		return
	}
}

func Test_ray01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ray01")

	r := NewRay(Vec3{0, 0, 0}, Vec3{0, 0, 5})
	chk.Scalar(tst, "|dir|", 1e-15, Norm3(r.Dir), 1)
	chk.Vector(tst, "at(2)", 1e-15, r.At(2), []float64{0, 0, 2})

	rev := r.Reversed(3)
	chk.Vector(tst, "reversed origin", 1e-15, rev.Origin, []float64{0, 0, 3})
	chk.Vector(tst, "reversed dir", 1e-15, rev.Dir, []float64{0, 0, -1})

	// round trip: the point at t on the ray is the point at T-t on the ray
	// reversed at T (here T=3, t=2)
	p := r.At(2)
	back := rev.At(1)
	chk.Vector(tst, "round trip", 1e-14, back, p)
}

func Test_brep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brep01")

	b := NewBrep()
	if err := b.Validate(); err == nil {
		tst.Errorf("an empty Brep must fail Validate")
		return
	}

	curve := b.AddCurve2D(nil)
	chk.IntAssert(curve, 0)

	f := &Face{
		Loops: []Loop{{Trims: []Trim{{Curve: 0, T0: 0, T1: 1}}}},
	}
	b.AddFace(f)
	if err := b.Validate(); err == nil {
		tst.Errorf("a face with a nil surface must fail Validate")
		return
	}

	f.Surface = stubSurface{}
	if err := b.Validate(); err != nil {
		tst.Errorf("a well-formed Brep must pass Validate: %v", err)
		return
	}
}

// stubSurface is a minimal SurfaceEval used only to satisfy Brep.Validate
// in tests that don't need real geometry.
type stubSurface struct{}

func (stubSurface) PointAt(u, v float64) Vec3              { return Vec3{u, v, 0} }
func (stubSurface) Ev1Der(u, v float64) (p, su, sv Vec3)    { return Vec3{u, v, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0} }
func (stubSurface) EvNormal(u, v float64) Vec3              { return Vec3{0, 0, 1} }
func (stubSurface) IsLinear() bool                          { return true }
func (stubSurface) Domain() (u0, u1, v0, v1 float64)        { return 0, 1, 0, 1 }
func (stubSurface) Clone() SurfaceEval                      { return stubSurface{} }
