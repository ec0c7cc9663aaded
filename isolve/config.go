// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isolve implements the Intersection Solver of spec.md §4.D: the
// plane-pair Newton root-finder that, given a leaf patch and a ray,
// produces zero or more (u,v,t) roots.
package isolve

// Config collects every tuning constant of the solver, passed in
// explicitly by the caller (never package-level globals), mirroring
// inp.Simulation's explicit, struct-carried parameters.
type Config struct {
	EpsRoot          float64 // ε_root: residual norm below which Newton has converged
	EpsSingular      float64 // ε_singular: |det J| below which the Jacobian is treated as singular
	EpsClamp         float64 // ε_clamp: keeps (u,v) strictly inside the upper domain edge after clamping
	EpsDedup         float64 // ε_dedup: (Δu,Δv) below which two roots in one leaf are the same root
	TMin             float64 // t_min default; IntersectLeaf does not read it and takes the self-hit guard t_min as an argument
	IterMax          int     // ITER_MAX: iteration cap per seed (also bounds singular-Jacobian jitter retries)
	GrazeDispatchCos float64 // |center_normal·d| below which corner seeding is added to the center seed
}

// DefaultConfig returns the design defaults named throughout spec.md §4.D.
func DefaultConfig() Config {
	return Config{
		EpsRoot:          1e-7,
		EpsSingular:      1e-12,
		EpsClamp:         1e-10,
		EpsDedup:         1e-4,
		TMin:             1e-2,
		IterMax:          20,
		GrazeDispatchCos: 0.1,
	}
}
