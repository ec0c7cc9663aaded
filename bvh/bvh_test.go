// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/nurbscast/brep"
	"github.com/cpmech/nurbscast/ptree"
)

type flatStub struct{ ox, oy, oz float64 }

func (s flatStub) PointAt(u, v float64) brep.Vec3 { return brep.Vec3{s.ox + u, s.oy + v, s.oz} }
func (s flatStub) Ev1Der(u, v float64) (p, su, sv brep.Vec3) {
	return s.PointAt(u, v), brep.Vec3{1, 0, 0}, brep.Vec3{0, 1, 0}
}
func (s flatStub) EvNormal(u, v float64) brep.Vec3  { return brep.Vec3{0, 0, 1} }
func (flatStub) IsLinear() bool                     { return true }
func (flatStub) Domain() (u0, u1, v0, v1 float64)   { return 0, 1, 0, 1 }
func (s flatStub) Clone() brep.SurfaceEval          { return s }

func Test_bvh01_twoFaces(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bvh01")

	// two disjoint unit-square faces over the same xy footprint, stacked at
	// z=0 and z=5
	faceA := &brep.Face{Surface: flatStub{0, 0, 0}}
	faceB := &brep.Face{Surface: flatStub{0, 0, 5}}
	treeA := ptree.Build(faceA, nil, ptree.DefaultLimits())
	treeB := ptree.Build(faceB, nil, ptree.DefaultLimits())

	tree := Build([]FaceLeaves{{Face: 0, Tree: treeA}, {Face: 1, Tree: treeB}}, nil)

	box := tree.BoundingBox()
	chk.Scalar(tst, "box lo z", 1e-14, box.Lo[2], 0)
	chk.Scalar(tst, "box hi z", 1e-14, box.Hi[2], 5)

	// a ray straight up through (0.5,0.5) must pierce both faces' leaves
	ray := brep.NewRay(brep.Vec3{0.5, 0.5, -10}, brep.Vec3{0, 0, 1})
	refs := tree.Intersect(ray, -1e9)
	sawFace := map[int]bool{}
	for _, r := range refs {
		sawFace[r.Face] = true
	}
	if !sawFace[0] || !sawFace[1] {
		tst.Errorf("ray through both faces should yield candidates from both, got %v", refs)
	}

	// a ray that misses the unit squares entirely yields nothing
	missRay := brep.NewRay(brep.Vec3{10, 10, -10}, brep.Vec3{0, 0, 1})
	if got := tree.Intersect(missRay, -1e9); len(got) != 0 {
		tst.Errorf("a ray missing every face box must return no candidates, got %v", got)
	}
}
