// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nurbsx adapts github.com/cpmech/gosl/gm.Nurbs to the
// brep.SurfaceEval / brep.CurveEval capability interfaces. It is the only
// core package that evaluates gm.Nurbs (ttree imports gosl/gm for gm.Bins
// only); the other core packages depend on the interfaces in package brep, per the
// "Polymorphism" guidance of the design notes: avoid inheritance chains,
// expose a capability set instead.
//
// The split mirrors shp.GetShapeNurbs: gm.Nurbs supplies basis functions
// and their derivatives over a knot vector; the control net (weighted
// control points) is owned by the caller and combined with the basis
// values here exactly as shp.Shape.IpRealCoords combines o.S with the
// mesh's coordinates matrix.
package nurbsx

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/nurbscast/brep"
)

// Surface adapts a *gm.Nurbs basis evaluator plus a dehomogenized control
// net into a brep.SurfaceEval.
type Surface struct {
	nurbs *gm.Nurbs   // basis functions and knot vectors
	ctrl  [][]float64 // [nbasis][3] control point coordinates, already divided by weight
	nb    [2]int      // number of basis functions along (u,v)
}

// NewSurface builds a Surface from a basis evaluator and its control net.
// ctrl must have nurbs.NumBasis(0)*nurbs.NumBasis(1) rows ordered the same
// way gm.Nurbs.IndBasis enumerates global basis indices.
func NewSurface(nurbs *gm.Nurbs, ctrl [][]float64) *Surface {
	if nurbs.Gnd() != 2 {
		chk.Panic("nurbsx.NewSurface requires a 2D (surface) NURBS object, got gnd=%d", nurbs.Gnd())
	}
	return &Surface{
		nurbs: nurbs,
		ctrl:  ctrl,
		nb:    [2]int{nurbs.NumBasis(0), nurbs.NumBasis(1)},
	}
}

// fullSpan returns the first and last basis indices in both directions,
// {0, nbU-1, 0, nbV-1}; Domain reads the parameter bounds at these indices.
func (s *Surface) fullSpan() []int {
	return []int{0, s.nb[0] - 1, 0, s.nb[1] - 1}
}

func (s *Surface) eval(u, v float64, derivs bool) (p, su, sv brep.Vec3) {
	uv := []float64{u, v}
	if derivs {
		s.nurbs.CalcBasisAndDerivs(uv)
	} else {
		s.nurbs.CalcBasis(uv)
	}
	p = brep.Vec3{0, 0, 0}
	if derivs {
		su = brep.Vec3{0, 0, 0}
		sv = brep.Vec3{0, 0, 0}
	}
	dSdU := make([]float64, 2)
	nctrl := s.nb[0] * s.nb[1]
	for l := 0; l < nctrl; l++ {
		Sl := s.nurbs.GetBasisL(l)
		if Sl == 0 {
			continue
		}
		q := s.ctrl[l]
		for i := 0; i < 3; i++ {
			p[i] += Sl * q[i]
		}
		if derivs {
			s.nurbs.GetDerivL(dSdU, l)
			for i := 0; i < 3; i++ {
				su[i] += dSdU[0] * q[i]
				sv[i] += dSdU[1] * q[i]
			}
		}
	}
	return
}

// PointAt implements brep.SurfaceEval
func (s *Surface) PointAt(u, v float64) brep.Vec3 {
	p, _, _ := s.eval(u, v, false)
	return p
}

// Ev1Der implements brep.SurfaceEval
func (s *Surface) Ev1Der(u, v float64) (p, su, sv brep.Vec3) {
	return s.eval(u, v, true)
}

// EvNormal implements brep.SurfaceEval
func (s *Surface) EvNormal(u, v float64) brep.Vec3 {
	_, su, sv := s.eval(u, v, true)
	return brep.Normalize3(brep.Cross3(su, sv))
}

// IsLinear implements brep.SurfaceEval. gm.Nurbs degree-1 in both
// directions with exactly 2x2 control points is a bilinear (planar or
// ruled) patch; the Surface Patch Tree may skip further subdivision.
func (s *Surface) IsLinear() bool {
	return s.nb[0] == 2 && s.nb[1] == 2
}

// Domain implements brep.SurfaceEval
func (s *Surface) Domain() (u0, u1, v0, v1 float64) {
	span := s.fullSpan()
	return s.nurbs.U(0, span[0]), s.nurbs.U(0, span[1]), s.nurbs.U(1, span[2]), s.nurbs.U(1, span[3])
}

// Clone implements brep.SurfaceEval. gm.Nurbs caches the active span on
// CalcBasis(AndDerivs); concurrent shots must not share one instance.
func (s *Surface) Clone() brep.SurfaceEval {
	clone := *s.nurbs
	return &Surface{nurbs: &clone, ctrl: s.ctrl, nb: s.nb}
}
