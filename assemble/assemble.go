// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assemble implements the Hit Assembler of spec.md §4.E: it sorts,
// filters, deduplicates and pairs the raw hits produced by the solver
// (package isolve) into an ordered segment list.
package assemble

import (
	"math"
	"sort"

	"github.com/cpmech/nurbscast/brep"
)

// Config collects the assembler's tuning constants.
type Config struct {
	EpsSamePoint float64 // ε_same_point: hits within this 3D distance are the same physical event
	EpsGraze     float64 // ε_graze: |normal·d| below this is a tangential graze, dropped
}

// DefaultConfig returns the design defaults named in spec.md §4.E.
func DefaultConfig() Config {
	return Config{EpsSamePoint: 1e-6, EpsGraze: 1e-6}
}

// Diagnostics counts why hits were dropped along the way, in the spirit of
// BRLCAD's nirt per-ray reporting and rt/viewray.c's partition bookkeeping
// (see SPEC_FULL.md §9), without adopting their text report format.
type Diagnostics struct {
	DroppedTrimmed   int
	DroppedGrazing   int
	DroppedDuplicate int
	OddHitDiscarded  bool
}

// Assemble sorts, filters, deduplicates and pairs raw hits into segments
// (spec.md §4.E). It never returns an error: an odd final hit count is a
// diagnostic, not a failure, and yields an empty segment list (spec.md §7,
// §9: "the intended production policy (discard) is adopted here").
func Assemble(hits []brep.RawHit, ray brep.Ray, cfg Config) ([]brep.Segment, Diagnostics) {
	var diag Diagnostics

	sorted := make([]brep.RawHit, 0, len(hits))
	for _, h := range hits {
		if h.OutOfBounds || h.Trimmed {
			diag.DroppedTrimmed++
			continue
		}
		if math.Abs(brep.Dot3(h.Normal, ray.Dir)) < cfg.EpsGraze {
			diag.DroppedGrazing++
			continue
		}
		sorted = append(sorted, h)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	coalesced := coalesce(sorted, ray, cfg, &diag)

	if len(coalesced)%2 != 0 {
		diag.OddHitDiscarded = true
		return nil, diag
	}

	segs := make([]brep.Segment, 0, len(coalesced)/2)
	for i := 0; i+1 < len(coalesced); i += 2 {
		in, out := coalesced[i], coalesced[i+1]
		segs = append(segs, brep.Segment{
			Face:           in.Face,
			FaceOut:        out.Face,
			TIn:            in.T,
			TOut:           out.T,
			PIn:            in.Point,
			POut:           out.Point,
			NIn:            in.Normal,
			NOut:           out.Normal,
			UIn:            in.U,
			VIn:            in.V,
			UOut:           out.U,
			VOut:           out.V,
			InCloseToEdge:  in.CloseToEdge,
			OutCloseToEdge: out.CloseToEdge,
		})
	}
	return segs, diag
}

// coalesce walks the sorted hit list and merges adjacent hits that coincide
// in position (spec.md §4.E, "Duplicate coalescing"): hits agreeing in
// sign(normal·d) are redundant re-evaluations of the same event (keep one);
// hits disagreeing are an in/out pair collapsed to zero thickness (discard
// both).
func coalesce(sorted []brep.RawHit, ray brep.Ray, cfg Config, diag *Diagnostics) []brep.RawHit {
	var out []brep.RawHit
	i := 0
	for i < len(sorted) {
		h := sorted[i]
		j := i + 1
		for j < len(sorted) && brep.Dist3(sorted[j].Point, h.Point) <= cfg.EpsSamePoint {
			j++
		}
		group := sorted[i:j]
		out = append(out, reduceGroup(group, ray, diag)...)
		i = j
	}
	return out
}

// reduceGroup reduces a cluster of same-point hits to one survivor when
// sign(normal·d) agrees across the cluster, or to none when it disagrees.
func reduceGroup(group []brep.RawHit, ray brep.Ray, diag *Diagnostics) []brep.RawHit {
	if len(group) == 1 {
		return group
	}
	var firstPos, firstNeg *brep.RawHit
	for k := range group {
		if brep.Dot3(group[k].Normal, ray.Dir) >= 0 {
			if firstPos == nil {
				firstPos = &group[k]
			}
		} else {
			if firstNeg == nil {
				firstNeg = &group[k]
			}
		}
	}
	redundant := len(group) - 1
	if firstPos != nil && firstNeg != nil {
		// disagreement: an in immediately followed by an out at the same
		// point (or vice versa) -- discard both
		diag.DroppedDuplicate += len(group)
		return nil
	}
	diag.DroppedDuplicate += redundant
	if firstPos != nil {
		return []brep.RawHit{*firstPos}
	}
	return []brep.RawHit{*firstNeg}
}
