// Package shape generates the randomized polygon outline used as the
// horizontal cross-section of a crystal prism.
package shape

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinSides and MaxSides bound the side count of a random outline: [MinSides, MaxSides).
	MinSides = 3
	MaxSides = 6
)

// Outline returns between MinSides and MaxSides-1 unit directions ordered
// by strictly increasing angle around the circle.
func Outline(rng *rand.Rand) []mgl64.Vec2 {
	return OutlineN(rng, MinSides+rng.IntN(MaxSides-MinSides))
}

// OutlineN returns n unit directions, the i-th placed at 2π·i/n plus a
// jitter drawn uniformly in [-π/(2n), π/(2n)].
// The jitter stays below half the spacing, so the angles keep their order.
func OutlineN(rng *rand.Rand, n int) []mgl64.Vec2 {
	n = max(MinSides, n)
	maxJitter := math.Pi / float64(n)

	outline := make([]mgl64.Vec2, 0, n)
	for i := 0; i < n; i++ {
		jitter := (rng.Float64() - 0.5) * maxJitter
		a := 2*math.Pi*float64(i)/float64(n) + jitter

		outline = append(outline, mgl64.Vec2{math.Cos(a), math.Sin(a)})
	}

	return outline
}
