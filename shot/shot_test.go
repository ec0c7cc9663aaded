// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/nurbscast/brep"
	"github.com/cpmech/nurbscast/nurbsx"
)

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
		p := (squareCurve{}).PointAt(t)
		d := brep.Norm2(brep.Sub2(p, q))
		if bestD < 0 || d < bestD {
			bestD, best = d, t
		}
	}
	return best, true
}
func (squareCurve) Clone() brep.CurveEval { return squareCurve{} }

func unitSquareBrep() *brep.Brep {
	verts := [][]float64{
		{0, 0, 0, 1}, {1, 0, 0, 1}, {0, 1, 0, 1}, {1, 1, 0, 1},
	}
	knots := [][]float64{{0, 0, 1, 1}, {0, 0, 1, 1}}
	var nurbs gm.Nurbs
	nurbs.Init(2, []int{1, 1}, knots)
	nurbs.SetControl(verts, []int{0, 1, 2, 3})
	ctrl := make([][]float64, len(verts))
	for i, v := range verts {
		ctrl[i] = []float64{v[0], v[1], v[2]}
	}
	surf := nurbsx.NewSurface(&nurbs, ctrl)

	b := brep.NewBrep()
	curveIdx := b.AddCurve2D(squareCurve{})
	b.AddFace(&brep.Face{
		Surface: surf,
		Loops:   []brep.Loop{{Trims: []brep.Trim{{Curve: curveIdx, T0: 0, T1: 4}}}},
	})
	return b
}

func Test_shot01_prepAndShoot(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shot01")

	b := unitSquareBrep()
	prep, err := Prep(b, DefaultConfig(), nil)
	if err != nil {
		tst.Errorf("Prep failed: %v", err)
		return
	}

	ray := brep.NewRay(brep.Vec3{0.5, 0.5, -1}, brep.Vec3{0, 0, 1})
	segs := prep.Shoot(ray, 1e-2)
	if len(segs) != 0 {
		tst.Errorf("a single-sided face produces an odd hit count, discarded to zero segments, got %d", len(segs))
	}

	missRay := brep.NewRay(brep.Vec3{5, 5, -1}, brep.Vec3{0, 0, 1})
	if got := prep.Shoot(missRay, 1e-2); len(got) != 0 {
		tst.Errorf("a ray missing the face entirely should yield no segments, got %v", got)
	}
}

func Test_shot02_prepRejectsInvalidBrep(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shot02")

	_, err := Prep(brep.NewBrep(), DefaultConfig(), nil)
	if err == nil {
		tst.Errorf("Prep must reject an empty Brep")
	}
}

func Test_shot03_concurrentShoots(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shot03")

	b := unitSquareBrep()
	prep, err := Prep(b, DefaultConfig(), nil)
	if err != nil {
		tst.Errorf("Prep failed: %v", err)
		return
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ray := brep.NewRay(brep.Vec3{0.1 * float64(i%9), 0.5, -1}, brep.Vec3{0, 0, 1})
			prep.Shoot(ray, 1e-2)
		}(i)
	}
	wg.Wait()
}
