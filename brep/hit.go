// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

// RawHit is a single candidate ray/surface intersection, as produced by the
// solver (isolve) before the assembler (assemble) sorts, filters and pairs
// them into Segments.
type RawHit struct {
	Face   int     // index into Brep.Faces
	Point  Vec3    // 3D position
	Normal Vec3    // outward-oriented unit normal (honors Face.Reversed)
	U, V   float64 // surface parameters
	T      float64 // ray parameter

	Trimmed     bool // (u,v) classified strictly inside the trimmed-away region
	CloseToEdge bool // (u,v) classified on (within epsilon of) a trim edge
	OutOfBounds bool // (u,v) fell outside the reporting leaf's sub-rectangle

	Leaf int // opaque id of the leaf patch that produced this hit, for provenance
}

// Segment is a paired in/out crossing of the solid along a ray.
type Segment struct {
	Face    int // index into Brep.Faces hit at entry, per spec.md's segment contract
	FaceOut int // index into Brep.Faces hit at exit (may differ from Face, e.g. a torus tube)

	TIn, TOut      float64
	PIn, POut      Vec3
	NIn, NOut      Vec3
	UIn, VIn       float64
	UOut, VOut     float64
	InCloseToEdge  bool
	OutCloseToEdge bool
}
