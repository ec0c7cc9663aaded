// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ttree implements the Trim Curve Tree and the point-in-trim
// classification test of spec.md §4.B: a per-face hierarchy of monotone 2D
// trim-curve segments used to decide, in logarithmic time, whether a
// candidate (u,v) lies inside a face's trimmed region.
package ttree

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/nurbscast/brep"
)

// Classification is the outcome of a point-in-trim query.
type Classification int

const (
	Outside Classification = iota
	Inside
	OnEdge
)

// Limits bounds the recursive subdivision of trim curves, passed in
// explicitly from the top-level prep Config, never hardcoded.
type Limits struct {
	MaxDepth   int     // hard cap on recursion depth
	MaxBoxDiag float64 // stop subdividing once a leaf's 2D box diagonal is this small
}

// DefaultLimits mirrors the design defaults of spec.md §4.D/§9 tuning constants.
func DefaultLimits() Limits {
	return Limits{MaxDepth: 24, MaxBoxDiag: 1e-3}
}

// leaf is one monotone sub-interval of one trim curve.
type leaf struct {
	box                  brep.Box2
	loop, trim           int
	curve                brep.CurveEval
	t0, t1               float64
	xIncreasing, yIncreasing bool
}

// node is an interior or leaf node of the tree.
type node struct {
	box      brep.Box2
	children []*node
	leaf     *leaf // non-nil only at leaves
}

// Tree is the per-face Trim Curve Tree.
type Tree struct {
	root   *node
	leaves []*leaf
	edgeTol float64 // ε_edge: tolerance to declare OnEdge
	bins    gm.Bins // fixed-resolution fallback bucket index (spec.md §4.B tie-break)
	hasBins bool
	samples []sample
}

type sample struct {
	p           brep.Vec2
	loop, trim  int
	t           float64
}

// Build constructs the Trim Curve Tree for one face.
func Build(face *brep.Face, curves []brep.Curve2D, lim Limits, edgeTol float64) *Tree {
	tr := &Tree{edgeTol: edgeTol}
	for li, loop := range face.Loops {
		for ti, trim := range loop.Trims {
			curve := curves[trim.Curve].Eval
			t0, t1 := trim.T0, trim.T1
			tr.subdivide(li, ti, curve, t0, t1, lim, 0)
		}
	}
	if len(tr.leaves) == 0 {
		chk.Panic("ttree.Build: face has no trim leaves; every loop must contain at least one trim")
	}
	tr.root = buildHierarchy(tr.leaves)
	tr.buildFallbackBins()
	return tr
}

// subdivide recursively splits [t0,t1] of one trim's curve until each piece
// is monotone in u and v and its box is small, isolating tangent-sign
// changes by bisection on the derivative component (spec.md §4.B).
func (tr *Tree) subdivide(loopIdx, trimIdx int, curve brep.CurveEval, t0, t1 float64, lim Limits, depth int) {
	box, xInc, yInc, monotone := sampleInterval(curve, t0, t1)
	small := math.Hypot(box.Hi[0]-box.Lo[0], box.Hi[1]-box.Lo[1]) <= lim.MaxBoxDiag
	if (monotone && small) || depth >= lim.MaxDepth {
		tr.leaves = append(tr.leaves, &leaf{
			box: box, loop: loopIdx, trim: trimIdx, curve: curve,
			t0: t0, t1: t1, xIncreasing: xInc, yIncreasing: yInc,
		})
		return
	}
	tm := 0.5 * (t0 + t1)
	tr.subdivide(loopIdx, trimIdx, curve, t0, tm, lim, depth+1)
	tr.subdivide(loopIdx, trimIdx, curve, tm, t1, lim, depth+1)
}

// sampleInterval estimates the 2D box and axis monotonicity of a curve
// sub-interval by sampling tangent sign at six evenly spaced parameters,
// both ends included, to catch interior sign flips that the endpoints miss.
func sampleInterval(curve brep.CurveEval, t0, t1 float64) (box brep.Box2, xInc, yInc, monotone bool) {
	box = brep.EmptyBox2()
	const nChecks = 5
	var prevDu, prevDv float64
	monotone = true
	for i := 0; i <= nChecks; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(nChecks)
		box.Extend(curve.PointAt(t))
		d := curve.TangentAt(t)
		if i == 0 {
			prevDu, prevDv = d[0], d[1]
			xInc = d[0] >= 0
			yInc = d[1] >= 0
			continue
		}
		if sign(d[0]) != sign(prevDu) || sign(d[1]) != sign(prevDv) {
			monotone = false
		}
		prevDu, prevDv = d[0], d[1]
	}
	return
}

func sign(x float64) int {
	switch {
	case x > 1e-12:
		return 1
	case x < -1e-12:
		return -1
	default:
		return 0
	}
}

// buildHierarchy groups leaves into a balanced binary tree by recursively
// splitting on the axis of largest extent among their boxes (same split
// rule used by the global BVH's groupByMedian, package bvh).
func buildHierarchy(leaves []*leaf) *node {
	nodes := make([]*node, len(leaves))
	for i, lf := range leaves {
		nodes[i] = &node{box: lf.box, leaf: lf}
	}
	return mergeNodes(nodes)
}

func mergeNodes(ns []*node) *node {
	if len(ns) == 1 {
		return ns[0]
	}
	box := ns[0].box
	for _, n := range ns[1:] {
		box = brep.Union2(box, n.box)
	}
	axis := 0
	if (box.Hi[1] - box.Lo[1]) > (box.Hi[0] - box.Lo[0]) {
		axis = 1
	}
	sort.Slice(ns, func(i, j int) bool {
		ci := 0.5 * (ns[i].box.Lo[axis] + ns[i].box.Hi[axis])
		cj := 0.5 * (ns[j].box.Lo[axis] + ns[j].box.Hi[axis])
		return ci < cj
	})
	mid := len(ns) / 2
	left := mergeNodes(append([]*node{}, ns[:mid]...))
	right := mergeNodes(append([]*node{}, ns[mid:]...))
	return &node{box: box, children: []*node{left, right}}
}

// buildFallbackBins samples every leaf's curve at a fixed resolution into a
// gm.Bins bucket index, used when the nearest-point descent below fails on
// a degenerate curve (spec.md §4.B tie-break: "fall back to evaluating a
// fixed-resolution piecewise-linear approximation (1000 samples)"),
// grounded on out.PlaneData.Ubins's use of gm.Bins for parametric-grid
// nearest search.
func (tr *Tree) buildFallbackBins() {
	const totalSamples = 1000
	n := len(tr.leaves)
	if n == 0 {
		return
	}
	perLeaf := totalSamples / n
	if perLeaf < 2 {
		perLeaf = 2
	}
	box := tr.root.box
	margin := 1e-9
	xi := []float64{box.Lo[0] - margin, box.Lo[1] - margin}
	xf := []float64{box.Hi[0] + margin, box.Hi[1] + margin}
	err := tr.bins.Init(xi, xf, 32)
	if err != nil {
		chk.Panic("ttree: cannot initialise fallback bins: %v", err)
	}
	tr.hasBins = true
	for _, lf := range tr.leaves {
		for i := 0; i <= perLeaf; i++ {
			t := lf.t0 + (lf.t1-lf.t0)*float64(i)/float64(perLeaf)
			p := lf.curve.PointAt(t)
			id := len(tr.samples)
			tr.samples = append(tr.samples, sample{p: p, loop: lf.loop, trim: lf.trim, t: t})
			err := tr.bins.Append([]float64{p[0], p[1]}, id)
			if err != nil {
				chk.Panic("ttree: cannot append sample to fallback bins: %v", err)
			}
		}
	}
}

// IsTrimmed classifies (u,v) against the active trimmed region of the face
// this tree was built for (spec.md §4.B contract: isTrimmed(u,v) -> {outside, inside, onEdge}).
func (tr *Tree) IsTrimmed(u, v float64) Classification {
	q := brep.Vec2{u, v}
	loop, t, curve, ok := tr.nearest(q)
	if !ok {
		return Outside
	}
	p := curve.PointAt(t)
	tangent := curve.TangentAt(t)
	curvature := curve.CurvatureAt(t)
	// inward normal: rotate tangent by +90deg, oriented by curvature sign
	inward := brep.Vec2{-tangent[1], tangent[0]}
	if brep.Dot2(inward, curvature) < 0 {
		inward = brep.Vec2{tangent[1], -tangent[0]}
	}
	toQuery := brep.Sub2(q, p)
	dist := brep.Norm2(toQuery)
	side := brep.Dot2(toQuery, inward)

	positive := side > 0
	inside := positive
	if loop != 0 {
		inside = !positive // inversion rule: inner loops, positive side => hole => outside
	}
	if dist <= tr.edgeTol {
		return OnEdge
	}
	if inside {
		return Inside
	}
	return Outside
}

// nearest descends the tree, preferring children whose box is closer to q,
// and falls back to the fixed-resolution sample bins on failure.
func (tr *Tree) nearest(q brep.Vec2) (loop int, t float64, curve brep.CurveEval, ok bool) {
	lf := tr.descend(tr.root, q)
	if lf != nil {
		bt, converged := lf.curve.NearestPoint(q)
		if converged {
			return lf.loop, bt, lf.curve, true
		}
	}
	return tr.nearestFallback(q)
}

func (tr *Tree) descend(n *node, q brep.Vec2) *leaf {
	if n.leaf != nil {
		return n.leaf
	}
	if len(n.children) == 0 {
		return nil
	}
	a, b := n.children[0], n.children[1]
	da, db := a.box.DistanceToPoint(q), b.box.DistanceToPoint(q)
	if da <= db {
		if lf := tr.descend(a, q); lf != nil {
			return lf
		}
		return tr.descend(b, q)
	}
	if lf := tr.descend(b, q); lf != nil {
		return lf
	}
	return tr.descend(a, q)
}

// nearestFallback implements the degenerate-curve tie-break of spec.md §4.B
// using the fixed-resolution gm.Bins sample index built at construction time.
func (tr *Tree) nearestFallback(q brep.Vec2) (loop int, t float64, curve brep.CurveEval, ok bool) {
	if !tr.hasBins || len(tr.samples) == 0 {
		return 0, 0, nil, false
	}
	id := tr.bins.Find([]float64{q[0], q[1]})
	if id < 0 {
		// last resort: exhaustive scan of the sample set
		best := -1
		bestD := math.Inf(1)
		for i, s := range tr.samples {
			d := brep.Norm2(brep.Sub2(s.p, q))
			if d < bestD {
				bestD = d
				best = i
			}
		}
		if best < 0 {
			return 0, 0, nil, false
		}
		id = best
	}
	s := tr.samples[id]
	return s.loop, s.t, tr.leafCurve(s.loop, s.trim), true
}

func (tr *Tree) leafCurve(loop, trim int) brep.CurveEval {
	for _, lf := range tr.leaves {
		if lf.loop == loop && lf.trim == trim {
			return lf.curve
		}
	}
	return nil
}

// BoundingBox returns the 2D box enclosing every trim curve of the face.
func (tr *Tree) BoundingBox() brep.Box2 { return tr.root.box }
