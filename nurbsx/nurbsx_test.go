// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbsx

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// flatSquare builds a bilinear unit-square patch in the z=0 plane, the same
// construction used by cmd/shotdemo.
func flatSquare() *Surface {
	verts := [][]float64{
		{0, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{1, 1, 0, 1},
	}
	knots := [][]float64{{0, 0, 1, 1}, {0, 0, 1, 1}}
	var nurbs gm.Nurbs
	nurbs.Init(2, []int{1, 1}, knots)
	nurbs.SetControl(verts, []int{0, 1, 2, 3})
	ctrl := make([][]float64, len(verts))
	for i, v := range verts {
		ctrl[i] = []float64{v[0], v[1], v[2]}
	}
	return NewSurface(&nurbs, ctrl)
}

// diagonalLine builds a 1D (curve) NURBS from (0,0) to (1,1) in the
// parameter plane, using the get_nurbs_A-style construction of
// shp/t_nurbs_test.go generalized to gnd=1.
func diagonalLine() *Curve {
	verts := [][]float64{
		{0, 0, 0, 1},
		{1, 1, 0, 1},
	}
	knots := [][]float64{{0, 0, 1, 1}}
	var nurbs gm.Nurbs
	nurbs.Init(1, []int{1}, knots)
	nurbs.SetControl(verts, []int{0, 1})
	ctrl := [][]float64{{0, 0}, {1, 1}}
	return NewCurve(&nurbs, ctrl)
}

func Test_surface01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface01")

	s := flatSquare()
	u0, u1, v0, v1 := s.Domain()
	chk.Scalar(tst, "u0", 1e-17, u0, 0)
	chk.Scalar(tst, "u1", 1e-17, u1, 1)
	chk.Scalar(tst, "v0", 1e-17, v0, 0)
	chk.Scalar(tst, "v1", 1e-17, v1, 1)

	if !s.IsLinear() {
		tst.Errorf("a 2x2-control bilinear patch must report IsLinear")
		return
	}

	p := s.PointAt(0.5, 0.5)
	chk.Vector(tst, "midpoint", 1e-14, p, []float64{0.5, 0.5, 0})

	_, su, sv := s.Ev1Der(0.3, 0.7)
	chk.Vector(tst, "Su", 1e-14, su, []float64{1, 0, 0})
	chk.Vector(tst, "Sv", 1e-14, sv, []float64{0, 1, 0})

	n := s.EvNormal(0.3, 0.7)
	chk.Vector(tst, "normal", 1e-14, n, []float64{0, 0, 1})

	clone := s.Clone()
	pc := clone.PointAt(0.5, 0.5)
	chk.Vector(tst, "clone midpoint", 1e-14, pc, p)
}

func Test_curve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve01")

	c := diagonalLine()
	t0, t1 := c.Domain()
	chk.Scalar(tst, "t0", 1e-17, t0, 0)
	chk.Scalar(tst, "t1", 1e-17, t1, 1)

	p := c.PointAt(0.5)
	chk.Vector(tst, "midpoint", 1e-14, p, []float64{0.5, 0.5})

	tang := c.TangentAt(0.2)
	chk.Scalar(tst, "tangent x", 1e-13, tang[0], 1)
	chk.Scalar(tst, "tangent y", 1e-13, tang[1], 1)

	// nearest point to (1,0) on the segment from (0,0) to (1,1) lies at the
	// projection onto the line, t=0.5
	best, ok := c.NearestPoint([]float64{1, 0})
	if !ok {
		tst.Errorf("NearestPoint should converge on a straight segment")
		return
	}
	chk.Scalar(tst, "nearest t", 1e-6, best, 0.5)
}
