// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

import "math"

// Box3 is an axis-aligned bounding box in 3-space
type Box3 struct {
	Lo, Hi Vec3
}

// EmptyBox3 returns a box with inverted bounds, ready to be grown with Extend
func EmptyBox3() Box3 {
	return Box3{
		Lo: Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Hi: Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// Extend grows the box, if needed, to contain p
func (b *Box3) Extend(p Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Lo[i] {
			b.Lo[i] = p[i]
		}
		if p[i] > b.Hi[i] {
			b.Hi[i] = p[i]
		}
	}
}

// Inflate grows the box on every side by margin (used when a surface evaluation fails
// during construction and the box must conservatively cover the unsampled region)
func (b *Box3) Inflate(margin float64) {
	for i := 0; i < 3; i++ {
		b.Lo[i] -= margin
		b.Hi[i] += margin
	}
}

// Union3 returns the smallest box containing both a and b
func Union3(a, b Box3) Box3 {
	o := a
	o.Extend(b.Lo)
	o.Extend(b.Hi)
	return o
}

// Diagonal returns the box's diagonal vector (Hi - Lo)
func (b Box3) Diagonal() Vec3 { return Sub3(b.Hi, b.Lo) }

// Empty reports whether the box was never extended
func (b Box3) Empty() bool {
	return b.Lo[0] > b.Hi[0] || b.Lo[1] > b.Hi[1] || b.Lo[2] > b.Hi[2]
}

// SlabHit intersects a ray against the box using the standard slab test.
// Returns (tNear, tFar, hit); hit is false if the ray misses or the box lies
// entirely behind the ray origin (tFar < 0).
func (b Box3) SlabHit(origin, dir Vec3) (tNear, tFar float64, hit bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-300 {
			if origin[i] < b.Lo[i] || origin[i] > b.Hi[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t0 := (b.Lo[i] - origin[i]) * inv
		t1 := (b.Hi[i] - origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear = t0
		}
		if t1 < tFar {
			tFar = t1
		}
		if tNear > tFar {
			return tNear, tFar, false
		}
	}
	if tFar < 0 {
		return tNear, tFar, false
	}
	return tNear, tFar, true
}

// Box2 is an axis-aligned bounding box in the 2D parameter plane
type Box2 struct {
	Lo, Hi Vec2
}

// EmptyBox2 returns an invertly-bounded box ready to be grown with Extend
func EmptyBox2() Box2 {
	return Box2{
		Lo: Vec2{math.Inf(1), math.Inf(1)},
		Hi: Vec2{math.Inf(-1), math.Inf(-1)},
	}
}

// Extend grows the box, if needed, to contain p
func (b *Box2) Extend(p Vec2) {
	for i := 0; i < 2; i++ {
		if p[i] < b.Lo[i] {
			b.Lo[i] = p[i]
		}
		if p[i] > b.Hi[i] {
			b.Hi[i] = p[i]
		}
	}
}

// Union2 returns the smallest box containing both a and b
func Union2(a, b Box2) Box2 {
	o := a
	o.Extend(b.Lo)
	o.Extend(b.Hi)
	return o
}

// Contains reports whether p lies within the box, inclusive, up to tol
func (b Box2) Contains(p Vec2, tol float64) bool {
	return p[0] >= b.Lo[0]-tol && p[0] <= b.Hi[0]+tol &&
		p[1] >= b.Lo[1]-tol && p[1] <= b.Hi[1]+tol
}

// DistanceToPoint returns the (possibly zero) distance from p to the closest point of the box
func (b Box2) DistanceToPoint(p Vec2) float64 {
	dx := 0.0
	if p[0] < b.Lo[0] {
		dx = b.Lo[0] - p[0]
	} else if p[0] > b.Hi[0] {
		dx = p[0] - b.Hi[0]
	}
	dy := 0.0
	if p[1] < b.Lo[1] {
		dy = b.Lo[1] - p[1]
	} else if p[1] > b.Hi[1] {
		dy = p[1] - b.Hi[1]
	}
	return math.Sqrt(dx*dx + dy*dy)
}
