// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brep holds the BREP data model: faces, loops, trims, curves and
// the arena that owns them, plus the small vector/box utilities and the
// SurfaceEval/CurveEval capability interfaces consumed by the rest of the
// ray-shot core (ptree, ttree, bvh, isolve, assemble, shot).
package brep

import "github.com/cpmech/gosl/chk"

// Curve2D is a 2D parameter-space curve, stored once in the Brep arena and
// referenced by index from one or more Trims.
type Curve2D struct {
	Eval CurveEval
}

// Trim is one edge of a Loop: a reference to a sub-interval of a Curve2D.
type Trim struct {
	Curve    int     // index into Brep.Curves2D
	T0, T1   float64 // sub-interval of the curve's parameter domain used by this trim
	Reversed bool    // whether the trim traverses the curve from T1 to T0
}

// Loop is an ordered, closed cycle of Trims. Loop index 0 within a Face is
// the outer boundary; indices >= 1 are interior holes.
type Loop struct {
	Trims []Trim
}

// Face is a reference to a parametric surface plus its trimming loops.
type Face struct {
	Surface  SurfaceEval
	Loops    []Loop
	Reversed bool // whether the geometric outward normal is the reverse of the parametric normal
}

// Domain returns the face's rectangular parameter domain
func (f *Face) Domain() (u0, u1, v0, v1 float64) { return f.Surface.Domain() }

// Brep is the arena owning every face, loop, trim and curve of one solid.
// The BVH and per-face trees built over a Brep only borrow its faces/curves
// by index; they never outlive the Brep that produced them.
type Brep struct {
	Curves2D []Curve2D
	Faces    []*Face
}

// NewBrep returns an empty arena
func NewBrep() *Brep {
	return &Brep{}
}

// AddCurve2D appends a 2D curve to the arena and returns its index
func (b *Brep) AddCurve2D(eval CurveEval) int {
	b.Curves2D = append(b.Curves2D, Curve2D{Eval: eval})
	return len(b.Curves2D) - 1
}

// AddFace appends a face to the arena and returns its index
func (b *Brep) AddFace(f *Face) int {
	b.Faces = append(b.Faces, f)
	return len(b.Faces) - 1
}

// Validate checks the structural invariants required before Prep may run:
// every loop is non-empty, every trim references a curve that exists, and
// every face has at least an outer loop (loop 0). Validate does not check
// geometric closure (consecutive trim endpoints coinciding in 3-space) to
// the tolerance that only the evaluator can assess; that check, when
// needed, belongs to the caller that owns NURBS construction.
func (b *Brep) Validate() error {
	if len(b.Faces) == 0 {
		return chk.Err("brep has no faces")
	}
	for fi, f := range b.Faces {
		if f.Surface == nil {
			return chk.Err("face %d has no surface evaluator", fi)
		}
		if len(f.Loops) == 0 {
			return chk.Err("face %d has no loops (missing outer boundary)", fi)
		}
		for li, loop := range f.Loops {
			if len(loop.Trims) == 0 {
				return chk.Err("face %d loop %d is empty", fi, li)
			}
			for ti, tr := range loop.Trims {
				if tr.Curve < 0 || tr.Curve >= len(b.Curves2D) {
					return chk.Err("face %d loop %d trim %d references missing curve %d", fi, li, ti, tr.Curve)
				}
				if tr.T0 == tr.T1 {
					return chk.Err("face %d loop %d trim %d has a degenerate parameter interval", fi, li, ti)
				}
			}
		}
	}
	return nil
}
