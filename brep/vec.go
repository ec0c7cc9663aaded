// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Vec3 is a point or vector in 3-space; always len==3
type Vec3 []float64

// Vec2 is a point or vector in the 2D parameter plane; always len==2
type Vec2 []float64

// NewVec3 allocates a 3-vector from components
func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// NewVec2 allocates a 2-vector from components
func NewVec2(u, v float64) Vec2 { return Vec2{u, v} }

// Dot3 returns the dot product of two 3-vectors
func Dot3(a, b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Cross3 returns a × b
func Cross3(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Sub3 returns a - b
func Sub3(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Add3 returns a + b
func Add3(a, b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Scale3 returns s*a
func Scale3(s float64, a Vec3) Vec3 { return Vec3{s * a[0], s * a[1], s * a[2]} }

// AddScaled3 returns a + s*b
func AddScaled3(a Vec3, s float64, b Vec3) Vec3 {
	return Vec3{a[0] + s*b[0], a[1] + s*b[1], a[2] + s*b[2]}
}

// Norm3 returns the Euclidean length of a, via la.VecNorm
func Norm3(a Vec3) float64 { return la.VecNorm([]float64(a)) }

// Normalize3 returns a unit vector parallel to a; returns the zero vector if a is (numerically) zero
func Normalize3(a Vec3) Vec3 {
	n := Norm3(a)
	if n < 1e-300 {
		return Vec3{0, 0, 0}
	}
	return Scale3(1.0/n, a)
}

// Clone3 returns a copy of a
func Clone3(a Vec3) Vec3 { return Vec3{a[0], a[1], a[2]} }

// Dist3 returns the Euclidean distance between two points
func Dist3(a, b Vec3) float64 { return Norm3(Sub3(a, b)) }

// SmallestComponentIndex returns the index (0,1,2) of the smallest-magnitude component of a
func SmallestComponentIndex(a Vec3) int {
	idx := 0
	best := math.Abs(a[0])
	for i := 1; i < 3; i++ {
		if math.Abs(a[i]) < best {
			best = math.Abs(a[i])
			idx = i
		}
	}
	return idx
}

// Dot2 returns the dot product of two 2-vectors
func Dot2(a, b Vec2) float64 { return a[0]*b[0] + a[1]*b[1] }

// Sub2 returns a - b
func Sub2(a, b Vec2) Vec2 { return Vec2{a[0] - b[0], a[1] - b[1]} }

// Norm2 returns the Euclidean length of a
func Norm2(a Vec2) float64 { return math.Sqrt(a[0]*a[0] + a[1]*a[1]) }
