// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

// Ray is an origin point and a direction. NewRay normalizes the direction;
// a Ray built as a struct literal keeps its direction as given.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay returns a ray with a normalized direction
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: Clone3(origin), Dir: Normalize3(dir)}
}

// At returns the point origin + t*dir
func (r Ray) At(t float64) Vec3 {
	return AddScaled3(r.Origin, t, r.Dir)
}

// Reversed returns the ray (origin+T*dir, -dir), used by the reverse-ray
// round-trip property (spec.md §8)
func (r Ray) Reversed(T float64) Ray {
	return Ray{Origin: r.At(T), Dir: Scale3(-1, r.Dir)}
}

// Translated returns the ray with its origin shifted by delta
func (r Ray) Translated(delta Vec3) Ray {
	return Ray{Origin: Add3(r.Origin, delta), Dir: r.Dir}
}
