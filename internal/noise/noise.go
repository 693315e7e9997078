// Package noise wraps OpenSimplex noise behind a reseedable 2D sampler.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Field is a deterministic coherent-noise sampler. The zero value samples
// with seed 0.
type Field struct {
	seed float64
	gen  opensimplex.Noise
}

// New returns a Field seeded with value.
func New(value float64) *Field {
	f := &Field{}
	f.Seed(value)
	return f
}

// Seed re-derives the permutation state from value. Values are expected in
// [0, 1) but any finite float is accepted.
func (f *Field) Seed(value float64) {
	f.seed = value
	f.gen = opensimplex.New(seedBits(value))
}

// Value returns the seed last passed to Seed.
func (f *Field) Value() float64 { return f.seed }

// Sample returns noise in [-1, 1] at (x, y).
func (f *Field) Sample(x, y float64) float64 {
	if f.gen == nil {
		f.Seed(f.seed)
	}
	v := f.gen.Eval2(x, y)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// DomainSeeds splits one session seed into the elevation and precipitation
// noise seeds.
func DomainSeeds(seed float64) (elevation, precipitation float64) {
	frac := seed - math.Floor(seed)
	return frac, math.Mod(frac+0.5, 1)
}

func seedBits(value float64) int64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return int64(math.Float64bits(value))
}
