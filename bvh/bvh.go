// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bvh implements the Global BVH of spec.md §4.C: a tree of 3D
// bounding boxes rooted at the whole solid, with inner nodes grouping
// faces and leaves borrowed from each face's Surface Patch Tree.
package bvh

import (
	"github.com/cpmech/nurbscast/brep"
	"github.com/cpmech/nurbscast/ptree"
)

// LeafRef is an opaque reference to one Surface Patch Tree leaf, stored by
// the BVH instead of a raw pointer (Design Notes §9).
type LeafRef struct {
	Face int
	Leaf int
}

// node is an interior or leaf BVH node.
type node struct {
	box      brep.Box3
	children []*node
	ref      *LeafRef
}

// Tree is the immutable global BVH over one BREP's faces.
type Tree struct {
	root *node
}

// FaceLeaves pairs a face index with its already-built Surface Patch Tree,
// the input to Build.
type FaceLeaves struct {
	Face int
	Tree *ptree.Tree
}

// Builder constructs the inner-node grouping policy over a set of per-face
// trees, returning the root of the resulting BVH. Correctness of traversal
// does not depend on which Builder is used (spec.md §4.C); SimpleBuilder is
// the shipped default. Implementations may later replace it with a
// median/SAH partitioning Builder without touching Tree.Intersect.
type Builder func(faces []FaceLeaves) *Tree

// Build assembles the BVH using the given construction policy, dropping
// fullyTrimmed leaves as required by spec.md §4.A. A nil builder uses
// SimpleBuilder.
func Build(faces []FaceLeaves, builder Builder) *Tree {
	if builder == nil {
		builder = SimpleBuilder
	}
	return builder(faces)
}

// SimpleBuilder attaches each face's root as a child of the solid root, and
// subdivides each face's subtree by the Surface Patch Tree structure
// itself — the "simple and acceptable policy" named in spec.md §4.C.
func SimpleBuilder(faces []FaceLeaves) *Tree {
	return &Tree{root: simpleBuild(faces)}
}

func simpleBuild(faces []FaceLeaves) *node {
	var faceRoots []*node
	for _, fl := range faces {
		leaves := fl.Tree.Leaves()
		var kept []*node
		for _, lf := range leaves {
			if lf.FullyTrimmed {
				continue
			}
			kept = append(kept, &node{box: lf.Box, ref: &LeafRef{Face: fl.Face, Leaf: lf.ID()}})
		}
		if len(kept) == 0 {
			continue
		}
		faceRoots = append(faceRoots, groupByMedian(kept))
	}
	if len(faceRoots) == 0 {
		return &node{box: brep.EmptyBox3()}
	}
	if len(faceRoots) == 1 {
		return faceRoots[0]
	}
	box := faceRoots[0].box
	for _, r := range faceRoots[1:] {
		box = brep.Union3(box, r.box)
	}
	return &node{box: box, children: faceRoots}
}

// groupByMedian recursively groups leaf nodes by splitting on the axis of
// largest extent and partitioning at the median, a simple median-partition
// policy implementations may later replace with SAH (spec.md §4.C).
func groupByMedian(ns []*node) *node {
	if len(ns) == 1 {
		return ns[0]
	}
	box := ns[0].box
	for _, n := range ns[1:] {
		box = brep.Union3(box, n.box)
	}
	diag := box.Diagonal()
	axis := 0
	if diag[1] > diag[axis] {
		axis = 1
	}
	if diag[2] > diag[axis] {
		axis = 2
	}
	sortByCenter(ns, axis)
	mid := len(ns) / 2
	left := groupByMedian(append([]*node{}, ns[:mid]...))
	right := groupByMedian(append([]*node{}, ns[mid:]...))
	return &node{box: box, children: []*node{left, right}}
}

func sortByCenter(ns []*node, axis int) {
	// simple insertion sort: leaf counts per face are small (patch-tree
	// leaf counts), and this keeps the construction path allocation-free
	for i := 1; i < len(ns); i++ {
		j := i
		for j > 0 && center(ns[j-1], axis) > center(ns[j], axis) {
			ns[j-1], ns[j] = ns[j], ns[j-1]
			j--
		}
	}
}

func center(n *node, axis int) float64 {
	return 0.5 * (n.box.Lo[axis] + n.box.Hi[axis])
}

// BoundingBox returns the root 3D box of the BVH.
func (t *Tree) BoundingBox() brep.Box3 { return t.root.box }

// Intersect descends the tree via the slab test and returns every leaf
// whose box the ray pierces, in no guaranteed order — the assembler sorts
// (spec.md §4.C contract: intersectHierarchy(ray) -> candidate leaves).
func (t *Tree) Intersect(ray brep.Ray, tMin float64) []LeafRef {
	var out []LeafRef
	collect(t.root, ray, tMin, &out)
	return out
}

func collect(n *node, ray brep.Ray, tMin float64, out *[]LeafRef) {
	if n == nil || n.box.Empty() {
		return
	}
	tNear, tFar, hit := n.box.SlabHit(ray.Origin, ray.Dir)
	if !hit || tFar < tMin {
		return
	}
	_ = tNear
	if n.ref != nil {
		*out = append(*out, *n.ref)
		return
	}
	for _, c := range n.children {
		collect(c, ray, tMin, out)
	}
}
