// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isolve

import (
	"math/rand"

	"github.com/cpmech/gosl/la"
)

// Scratch preallocates every Newton work vector/matrix used by one shot,
// following shp.Shape's "scratchpad" fields (o.S, o.G, o.DSdR, ...): never
// share one Scratch across goroutines concurrently — call Clone to hand
// each worker its own, exactly as shp.Shape.GetCopy() does for Shape.
type Scratch struct {
	j   [][]float64 // [2][2] Jacobian, rebuilt every iteration
	ji  [][]float64 // [2][2] inverse Jacobian
	rng *rand.Rand  // jitter source, independent per Scratch (spec.md §5)
}

// NewScratch returns a freshly allocated Scratch seeded from seed.
func NewScratch(seed int64) *Scratch {
	return &Scratch{
		j:   la.MatAlloc(2, 2),
		ji:  la.MatAlloc(2, 2),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Clone returns an independent Scratch for another goroutine, with its own
// work matrices and jitter source (different seed so concurrent shots do
// not draw identical jitter sequences).
func (s *Scratch) Clone(seed int64) *Scratch {
	return NewScratch(seed)
}
