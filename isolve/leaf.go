// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isolve

import (
	"math"

	"github.com/cpmech/nurbscast/brep"
	"github.com/cpmech/nurbscast/ptree"
	"github.com/cpmech/nurbscast/ttree"
)

// seed is a starting (u,v) guess for one Newton run.
type seed struct{ u, v float64 }

// seedsFor returns the seed set for one leaf: always the patch center, plus
// the four corners when the ray grazes the patch (spec.md §4.D, "Seed
// selection"): |center_normal·d| < cfg.GrazeDispatchCos.
func seedsFor(surf brep.SurfaceEval, lf *ptree.Leaf, d brep.Vec3, cfg Config) []seed {
	cu, cv := 0.5*(lf.ULo+lf.UHi), 0.5*(lf.VLo+lf.VHi)
	seeds := []seed{{cu, cv}}
	n := surf.EvNormal(cu, cv)
	if math.Abs(brep.Dot3(n, d)) < cfg.GrazeDispatchCos {
		seeds = append(seeds,
			seed{lf.ULo, lf.VLo}, seed{lf.UHi, lf.VLo},
			seed{lf.ULo, lf.VHi}, seed{lf.UHi, lf.VHi},
		)
	}
	return seeds
}

// IntersectLeaf is the component D contract of spec.md §4.D: given a leaf
// patch and a ray, produce zero or more accepted raw hits (at most one per
// seed, i.e. at most five per leaf: the center plus four corners).
func IntersectLeaf(faceIdx int, face *brep.Face, lf *ptree.Leaf, trimTree *ttree.Tree,
	ray brep.Ray, tMin float64, cfg Config, sc *Scratch) []brep.RawHit {

	if lf.FullyTrimmed {
		return nil
	}

	n1, n2, p1, p2 := planePair(ray)
	uMin, uMax, vMin, vMax := face.Domain()

	var accepted []seed
	var hits []brep.RawHit

	for _, sd := range seedsFor(face.Surface, lf, ray.Dir, cfg) {
		res := newtonSolve(face.Surface, n1, n2, p1, p2, sd.u, sd.v, uMin, uMax, vMin, vMax, cfg, sc)
		if !res.ok {
			continue
		}

		// root uniqueness: skip if within epsDedup of an already-accepted
		// root in this leaf (spec.md §4.D, "Root uniqueness")
		dup := false
		for _, a := range accepted {
			if math.Abs(res.u-a.u) < cfg.EpsDedup && math.Abs(res.v-a.v) < cfg.EpsDedup {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		accepted = append(accepted, seed{res.u, res.v})

		hit, ok := acceptRoot(faceIdx, face, lf, trimTree, ray, res.u, res.v, tMin)
		if ok {
			hits = append(hits, hit)
		}
		// a false ok means the root was at/behind t_min: no data-carrying
		// RawHit exists for it (the self-hit guard isn't one of the Raw
		// Hit classification flags in spec.md §3), so nothing is appended.
	}
	return hits
}

// acceptRoot applies spec.md §4.D's "Per-hit acceptance" rules to one
// converged root. Out-of-bounds and trimmed roots still produce a RawHit,
// flagged accordingly, so the assembler (package assemble) can apply its
// own defensive filtering rules over the flags carried by spec.md §3's
// Raw Hit data model; only the t_min self-hit guard discards a root
// outright, since it has no corresponding flag.
func acceptRoot(faceIdx int, face *brep.Face, lf *ptree.Leaf, trimTree *ttree.Tree,
	ray brep.Ray, u, v, tMin float64) (brep.RawHit, bool) {

	s, su, sv := face.Surface.Ev1Der(u, v)
	t := brep.Dot3(ray.Dir, brep.Sub3(s, ray.Origin)) / brep.Dot3(ray.Dir, ray.Dir)

	if t <= tMin {
		return brep.RawHit{}, false
	}
	if !lf.Contains(u, v, 0) {
		return brep.RawHit{Face: faceIdx, U: u, V: v, T: t, OutOfBounds: true, Leaf: lf.ID()}, true
	}

	class := trimTree.IsTrimmed(u, v)
	closeToEdge := class == ttree.OnEdge
	if class == ttree.Outside {
		return brep.RawHit{Face: faceIdx, U: u, V: v, T: t, Trimmed: true, Leaf: lf.ID()}, true
	}

	normal := brep.Normalize3(brep.Cross3(su, sv))
	if face.Reversed {
		normal = brep.Scale3(-1, normal)
	}

	hit := brep.RawHit{
		Face:        faceIdx,
		Point:       s,
		Normal:      normal,
		U:           u,
		V:           v,
		T:           t,
		CloseToEdge: closeToEdge,
		Leaf:        lf.ID(),
	}
	return hit, true
}
