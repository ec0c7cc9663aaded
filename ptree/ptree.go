// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ptree implements the Surface Patch Tree of spec.md §4.A: a
// recursive (u,v) subdivision of a NURBS face into sub-rectangles, each
// carrying a conservative 3D bounding box, terminated once a flatness
// criterion is met or a depth/size limit is reached.
package ptree

import (
	"github.com/cpmech/nurbscast/brep"
	"github.com/cpmech/nurbscast/ttree"
)

// Limits bounds the recursive subdivision, passed explicitly from the
// top-level prep Config (never hardcoded), mirroring ttree.Limits.
type Limits struct {
	MaxDepth   int     // hard cap on recursion depth
	FlatTol    float64 // max allowed deviation between patch center and bilinear interpolant of corners
	MinUVSpan  float64 // stop subdividing once either parameter extent drops below this
}

// DefaultLimits mirrors the design defaults discussed in spec.md §4.A/§9.
func DefaultLimits() Limits {
	return Limits{MaxDepth: 10, FlatTol: 1e-4, MinUVSpan: 1e-6}
}

// Leaf is a terminal sub-rectangle of the face's (u,v) domain.
type Leaf struct {
	ULo, UHi, VLo, VHi float64
	Box                brep.Box3
	FullyTrimmed       bool
	MayContainTrim     bool
	id                 int // index into Tree.leaves, used as the BVH's opaque leaf id
}

// ID returns this leaf's position in Tree.Leaves(), the opaque identifier
// the BVH (package bvh) stores instead of a raw pointer.
func (l *Leaf) ID() int { return l.id }

// Contains reports whether (u,v) lies in this leaf's sub-rectangle, up to tol.
func (l *Leaf) Contains(u, v, tol float64) bool {
	return u >= l.ULo-tol && u <= l.UHi+tol && v >= l.VLo-tol && v <= l.VHi+tol
}

// node is an interior or leaf node.
type node struct {
	box      brep.Box3
	children []*node
	leaf     *Leaf
}

// Tree is the immutable Surface Patch Tree for one face.
type Tree struct {
	root   *node
	leaves []*Leaf
}

// Build constructs the Surface Patch Tree for face, using trimTree to
// classify leaves as fullyTrimmed/mayContainTrim (spec.md §4.A, "Leaf
// classification").
func Build(face *brep.Face, trimTree *ttree.Tree, lim Limits) *Tree {
	u0, u1, v0, v1 := face.Domain()
	tr := &Tree{}
	tr.root = tr.subdivide(face, trimTree, u0, u1, v0, v1, lim, 0)
	return tr
}

// subdivide recursively splits [uLo,uHi]x[vLo,vHi]; see spec.md §4.A
// "Construction": split when the 3D box is large relative to the flatness
// criterion, quadrisecting at the midpoint; stop on flatness, depth, or
// minimum-span limits, or (per "Failure semantics") when the evaluator
// cannot be sampled, in which case the node is not split further and its
// box is conservatively enlarged.
func (tr *Tree) subdivide(face *brep.Face, trimTree *ttree.Tree, uLo, uHi, vLo, vHi float64, lim Limits, depth int) *node {
	box, flat, failed := boxAndFlatness(face.Surface, uLo, uHi, vLo, vHi, lim.FlatTol)
	smallSpan := (uHi-uLo) <= lim.MinUVSpan || (vHi-vLo) <= lim.MinUVSpan
	if failed {
		box.Inflate(lim.FlatTol * 10)
	}
	if flat || failed || smallSpan || depth >= lim.MaxDepth {
		return tr.makeLeaf(uLo, uHi, vLo, vHi, box, trimTree)
	}
	um, vm := 0.5*(uLo+uHi), 0.5*(vLo+vHi)
	children := []*node{
		tr.subdivide(face, trimTree, uLo, um, vLo, vm, lim, depth+1),
		tr.subdivide(face, trimTree, um, uHi, vLo, vm, lim, depth+1),
		tr.subdivide(face, trimTree, uLo, um, vm, vHi, lim, depth+1),
		tr.subdivide(face, trimTree, um, uHi, vm, vHi, lim, depth+1),
	}
	b := children[0].box
	for _, c := range children[1:] {
		b = brep.Union3(b, c.box)
	}
	return &node{box: b, children: children}
}

func (tr *Tree) makeLeaf(uLo, uHi, vLo, vHi float64, box brep.Box3, trimTree *ttree.Tree) *node {
	l := &Leaf{ULo: uLo, UHi: uHi, VLo: vLo, VHi: vHi, Box: box, id: len(tr.leaves)}
	classifyLeaf(l, trimTree)
	tr.leaves = append(tr.leaves, l)
	return &node{box: box, leaf: l}
}

// classifyLeaf labels a leaf fullyTrimmed, mayContainTrim, or neither, by
// sampling the boundary and a handful of interior points of the
// sub-rectangle against the trim tree (spec.md §4.A).
func classifyLeaf(l *Leaf, trimTree *ttree.Tree) {
	if trimTree == nil {
		return
	}
	const n = 3
	var anyInside, anyOutside bool
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			u := l.ULo + (l.UHi-l.ULo)*float64(i)/float64(n)
			v := l.VLo + (l.VHi-l.VLo)*float64(j)/float64(n)
			switch trimTree.IsTrimmed(u, v) {
			case ttree.Inside:
				anyInside = true
			case ttree.Outside:
				anyOutside = true
			case ttree.OnEdge:
				anyInside = true
				anyOutside = true
			}
		}
	}
	l.FullyTrimmed = anyOutside && !anyInside
	l.MayContainTrim = anyInside && anyOutside
}

// boxAndFlatness evaluates the surface at the sub-rectangle's four corners
// and center, builds a conservative 3D box from the samples, and measures
// the deviation between the sampled center and the bilinear interpolant of
// the four corners (spec.md §4.A's named flatness criterion).
func boxAndFlatness(surf brep.SurfaceEval, uLo, uHi, vLo, vHi, tol float64) (box brep.Box3, flat, failed bool) {
	box = brep.EmptyBox3()
	defer func() {
		if r := recover(); r != nil {
			failed = true
			flat = false
		}
	}()
	c00 := surf.PointAt(uLo, vLo)
	c10 := surf.PointAt(uHi, vLo)
	c01 := surf.PointAt(uLo, vHi)
	c11 := surf.PointAt(uHi, vHi)
	cm := surf.PointAt(0.5*(uLo+uHi), 0.5*(vLo+vHi))
	box.Extend(c00)
	box.Extend(c10)
	box.Extend(c01)
	box.Extend(c11)
	box.Extend(cm)
	bilinear := brep.Scale3(0.25, brep.Add3(brep.Add3(c00, c10), brep.Add3(c01, c11)))
	dev := brep.Dist3(cm, bilinear)
	if surf.IsLinear() {
		return box, true, false
	}
	return box, dev <= tol, false
}

// Leaves returns every leaf of the tree, in no guaranteed order (spec.md
// §4.A contract).
func (t *Tree) Leaves() []*Leaf { return t.leaves }

// Leaf returns the leaf with the given opaque id, as stored by the BVH.
func (t *Tree) Leaf(id int) *Leaf { return t.leaves[id] }

// BoundingBox returns the 3D box of the whole tree.
func (t *Tree) BoundingBox() brep.Box3 { return t.root.box }
