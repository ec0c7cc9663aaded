// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shot

import (
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/nurbscast/assemble"
	"github.com/cpmech/nurbscast/brep"
	"github.com/cpmech/nurbscast/bvh"
	"github.com/cpmech/nurbscast/isolve"
	"github.com/cpmech/nurbscast/ptree"
	"github.com/cpmech/nurbscast/ttree"
)

// PlotSink receives one callback per face during Prep, mirroring the
// teacher's conditional gm.PlotNurbs debug calls (shp/t_nurbs_test.go) but
// as an explicit, optional collaborator instead of a commented-out branch.
// A nil PlotSink disables plotting entirely.
type PlotSink interface {
	PlotFace(faceIndex int, face *brep.Face)
}

// Prepared is the immutable result of Prep: one Surface Patch Tree and one
// Trim Curve Tree per face, plus the global BVH over every kept leaf. It
// holds no mutable state of its own; concurrent Shoot calls only read it
// and allocate a private isolve.Scratch each (spec.md §5).
type Prepared struct {
	b          *brep.Brep
	cfg        Config
	patchTrees []*ptree.Tree
	trimTrees  []*ttree.Tree
	tree       *bvh.Tree
}

// Prep builds every face's Trim Curve Tree and Surface Patch Tree, then the
// global BVH over the surviving (non-fully-trimmed) leaves, following the
// same "read input -> build auxiliary structures -> ready" shape as
// fem.NewFEM. It returns an error if b fails brep.Brep.Validate.
func Prep(b *brep.Brep, cfg Config, plot PlotSink) (*Prepared, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	nf := len(b.Faces)
	patchTrees := make([]*ptree.Tree, nf)
	trimTrees := make([]*ttree.Tree, nf)
	faceLeaves := make([]bvh.FaceLeaves, nf)

	for i, f := range b.Faces {
		if cfg.Verbose {
			io.Pf("shot: building face %d (%d loops)\n", i, len(f.Loops))
		}
		trimTrees[i] = ttree.Build(f, b.Curves2D, cfg.Trim, cfg.EdgeTol)
		patchTrees[i] = ptree.Build(f, trimTrees[i], cfg.Patch)
		faceLeaves[i] = bvh.FaceLeaves{Face: i, Tree: patchTrees[i]}
		if plot != nil {
			plot.PlotFace(i, f)
		}
	}

	return &Prepared{
		b:          b,
		cfg:        cfg,
		patchTrees: patchTrees,
		trimTrees:  trimTrees,
		tree:       bvh.Build(faceLeaves, cfg.BVHBuild),
	}, nil
}

// BoundingBox returns the solid's 3D bounding box.
func (p *Prepared) BoundingBox() brep.Box3 { return p.tree.BoundingBox() }

// Shoot answers one ray query (spec.md §6: shoot(ray, t_min) -> segments).
// It is safe to call concurrently from many goroutines against the same
// Prepared, each call allocating its own isolve.Scratch so no mutable state
// is shared across shots (spec.md §5; grounded on shp.Shape.GetCopy()'s
// per-goroutine scratchpad pattern).
func (p *Prepared) Shoot(ray brep.Ray, tMin float64) []brep.Segment {
	sc := isolve.NewScratch(scratchSeed(ray))

	candidates := p.tree.Intersect(ray, tMin)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Face != candidates[j].Face {
			return candidates[i].Face < candidates[j].Face
		}
		return candidates[i].Leaf < candidates[j].Leaf
	})

	var raw []brep.RawHit
	for _, c := range candidates {
		face := p.b.Faces[c.Face]
		leaf := p.patchTrees[c.Face].Leaf(c.Leaf)
		hits := isolve.IntersectLeaf(c.Face, face, leaf, p.trimTrees[c.Face], ray, tMin, p.cfg.Solve, sc)
		raw = append(raw, hits...)
	}

	segs, _ := assemble.Assemble(raw, ray, p.cfg.Assemble)
	return segs
}

// ShootDiag is Shoot plus the assembler's drop diagnostics, for callers
// that want visibility into why a ray produced fewer segments than
// expected (debugging tool, not part of the core contract).
func (p *Prepared) ShootDiag(ray brep.Ray, tMin float64) ([]brep.Segment, assemble.Diagnostics) {
	sc := isolve.NewScratch(scratchSeed(ray))
	candidates := p.tree.Intersect(ray, tMin)

	var raw []brep.RawHit
	for _, c := range candidates {
		face := p.b.Faces[c.Face]
		leaf := p.patchTrees[c.Face].Leaf(c.Leaf)
		raw = append(raw, isolve.IntersectLeaf(c.Face, face, leaf, p.trimTrees[c.Face], ray, tMin, p.cfg.Solve, sc)...)
	}
	return assemble.Assemble(raw, ray, p.cfg.Assemble)
}

// scratchSeed derives a reproducible per-ray jitter seed from the ray's own
// components, so repeated Shoot calls against the same ray are
// deterministic (spec.md §4.D design note on reproducibility) while
// distinct rays fired concurrently do not share a PRNG.
func scratchSeed(ray brep.Ray) int64 {
	mix := func(x float64) int64 {
		bits := int64(x * 1e6)
		return bits*2654435761 + 1
	}
	return mix(ray.Origin[0]) ^ mix(ray.Origin[1]) ^ mix(ray.Origin[2]) ^
		mix(ray.Dir[0]) ^ mix(ray.Dir[1]) ^ mix(ray.Dir[2])
}
