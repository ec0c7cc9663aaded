// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isolve

import "github.com/cpmech/nurbscast/brep"

// planePair constructs two planes whose intersection is the ray line
// (spec.md §4.D, "Plane pair"): choose v1 by copying the ray direction and
// perturbing its smallest-magnitude component (add 1); n1 = normalize(v1 x d);
// n2 = normalize(n1 x d). The offsets are p1 = n1·o, p2 = n2·o.
func planePair(ray brep.Ray) (n1, n2 brep.Vec3, p1, p2 float64) {
	d := ray.Dir
	v1 := brep.Clone3(d)
	idx := brep.SmallestComponentIndex(d)
	v1[idx] += 1
	n1 = brep.Normalize3(brep.Cross3(v1, d))
	n2 = brep.Normalize3(brep.Cross3(n1, d))
	p1 = brep.Dot3(n1, ray.Origin)
	p2 = brep.Dot3(n2, ray.Origin)
	return
}

// residual evaluates F(u,v) = (n1·S - p1, n2·S - p2); a surface point lies
// on the ray line iff F is zero.
func residual(s brep.Vec3, n1, n2 brep.Vec3, p1, p2 float64) (f0, f1 float64) {
	return brep.Dot3(n1, s) - p1, brep.Dot3(n2, s) - p2
}
