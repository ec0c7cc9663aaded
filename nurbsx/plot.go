// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbsx

import (
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/nurbscast/brep"
)

// DebugPlotter implements shot.PlotSink by dumping each gm.Nurbs-backed
// face to disk with gm.PlotNurbs, the same debug call left commented out
// in shp/t_nurbs_test.go. Faces whose Surface isn't a *Surface (e.g. a
// test stub) are skipped silently.
type DebugPlotter struct {
	Dir string // output directory, passed straight to gm.PlotNurbs
}

// PlotFace implements shot.PlotSink.
func (p DebugPlotter) PlotFace(faceIndex int, face *brep.Face) {
	s, ok := face.Surface.(*Surface)
	if !ok {
		return
	}
	gm.PlotNurbs(p.Dir, io.Sf("face_%02d", faceIndex), s.nurbs)
}
