// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// shotdemo builds a single flat square face and fires one ray through it,
// printing the resulting segments. It is a smoke test for the prep/shoot
// pipeline (package shot), not a solid modeller: the face it builds is
// fixed, only the ray is configurable from the command line.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/nurbscast/brep"
	"github.com/cpmech/nurbscast/nurbsx"
	"github.com/cpmech/nurbscast/shot"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	ox := io.ArgToFloat(0, 0.5)
	oy := io.ArgToFloat(1, 0.5)
	oz := io.ArgToFloat(2, -1.0)
	dx := io.ArgToFloat(3, 0.0)
	dy := io.ArgToFloat(4, 0.0)
	dz := io.ArgToFloat(5, 1.0)

	io.Pf("\n%s\n", io.ArgsTable(
		"ray origin x", "ox", ox,
		"ray origin y", "oy", oy,
		"ray origin z", "oz", oz,
		"ray direction x", "dx", dx,
		"ray direction y", "dy", dy,
		"ray direction z", "dz", dz,
	))

	b := unitSquareBrep()

	prep, err := shot.Prep(b, shot.DefaultConfig(), nil)
	if err != nil {
		chk.Panic("prep failed: %v", err)
	}

	ray := brep.NewRay(brep.Vec3{ox, oy, oz}, brep.Vec3{dx, dy, dz})
	segs := prep.Shoot(ray, 1e-2)

	io.Pf("\nbounding box: lo=%v hi=%v\n", prep.BoundingBox().Lo, prep.BoundingBox().Hi)
	io.Pf("segments: %d\n", len(segs))
	for i, s := range segs {
		io.Pf("  [%d] t=(%.6f,%.6f) pIn=%v pOut=%v\n", i, s.TIn, s.TOut, s.PIn, s.POut)
	}
}

// unitSquareBrep builds a one-face solid skin: a flat, untrimmed bilinear
// patch spanning the unit square in the z=0 plane.
func unitSquareBrep() *brep.Brep {
	verts := [][]float64{
		{0, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{1, 1, 0, 1},
	}
	knots := [][]float64{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}
	var nurbs gm.Nurbs
	nurbs.Init(2, []int{1, 1}, knots)
	nurbs.SetControl(verts, []int{0, 1, 2, 3})

	ctrl := make([][]float64, len(verts))
	for i, v := range verts {
		ctrl[i] = []float64{v[0], v[1], v[2]}
	}
	surf := nurbsx.NewSurface(&nurbs, ctrl)

	b := brep.NewBrep()
	curveIdx := b.AddCurve2D(squareBoundary{})
	face := &brep.Face{
		Surface: surf,
		Loops:   []brep.Loop{{Trims: []brep.Trim{{Curve: curveIdx, T0: 0, T1: 4}}}},
	}
	b.AddFace(face)
	return b
}
