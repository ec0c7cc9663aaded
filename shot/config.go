// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shot wires the five core components (ptree, ttree, bvh, isolve,
// assemble) into the public prep/shoot interface of spec.md §6: Prep
// builds the immutable acceleration structures for a Brep; the returned
// Prepared's Shoot answers ray queries against them.
package shot

import (
	"github.com/cpmech/nurbscast/assemble"
	"github.com/cpmech/nurbscast/bvh"
	"github.com/cpmech/nurbscast/isolve"
	"github.com/cpmech/nurbscast/ptree"
	"github.com/cpmech/nurbscast/ttree"
)

// Config collects every tuning constant of prep and shoot, passed in
// explicitly by the caller instead of package-level globals: one value
// object threaded through construction, the same role inp.Simulation
// plays elsewhere in this codebase.
type Config struct {
	Patch     ptree.Limits
	Trim      ttree.Limits
	EdgeTol   float64 // ε_edge, used by the trim tree's onEdge classification
	Solve     isolve.Config
	Assemble  assemble.Config
	BVHBuild  bvh.Builder // nil selects bvh.SimpleBuilder
	Verbose   bool        // gate io.Pf diagnostics during Prep, as fem.FEM.Verbose does
}

// DefaultConfig returns every design default named across spec.md §4 and §9.
func DefaultConfig() Config {
	return Config{
		Patch:    ptree.DefaultLimits(),
		Trim:     ttree.DefaultLimits(),
		EdgeTol:  1e-3,
		Solve:    isolve.DefaultConfig(),
		Assemble: assemble.DefaultConfig(),
	}
}
