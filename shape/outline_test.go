package shape

import (
	"math"
	"math/rand/v2"
	"testing"
)

// angleOf returns the angle in [0, 2π) of a 2D direction.
func angleOf(x, y float64) float64 {
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func TestOutlineSideCount(t *testing.T) {
	seen := make(map[int]bool)

	for seed := uint64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31+7))
		outline := Outline(rng)

		if len(outline) < MinSides || len(outline) >= MaxSides {
			t.Fatalf("seed %d: got %d sides, want [%d, %d)", seed, len(outline), MinSides, MaxSides)
		}
		seen[len(outline)] = true
	}

	for n := MinSides; n < MaxSides; n++ {
		if !seen[n] {
			t.Errorf("side count %d never produced over 200 seeds", n)
		}
	}
}

func TestOutlineN(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{"triangle", 3, 3},
		{"square", 4, 4},
		{"pentagon", 5, 5},
		{"clamped below", 1, 3},
		{"large", 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 50; seed++ {
				rng := rand.New(rand.NewPCG(seed, 1))
				outline := OutlineN(rng, tt.n)

				if len(outline) != tt.expected {
					t.Fatalf("OutlineN(%d) returned %d points, want %d", tt.n, len(outline), tt.expected)
				}

				for i, p := range outline {
					if math.Abs(p.Len()-1) > 1e-12 {
						t.Errorf("point %d = %v is not a unit vector", i, p)
					}
				}
			}
		})
	}
}

func TestOutlineAnglesIncrease(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		outline := Outline(rng)
		n := float64(len(outline))

		// The first point may jitter below zero, so shift by half a spacing
		// before unwrapping.
		shift := math.Pi / n
		prev := -1.0
		for i, p := range outline {
			a := math.Mod(angleOf(p.X(), p.Y())+shift, 2*math.Pi)
			if a <= prev {
				t.Fatalf("seed %d: angle %d (%v) not greater than previous (%v)", seed, i, a, prev)
			}

			nominal := 2*math.Pi*float64(i)/n + shift
			if math.Abs(a-nominal) > math.Pi/(2*n)+1e-9 {
				t.Fatalf("seed %d: angle %d jitter %v exceeds π/(2n)", seed, i, a-nominal)
			}
			prev = a
		}
	}
}

func TestOutlineDeterministic(t *testing.T) {
	a := Outline(rand.New(rand.NewPCG(42, 42)))
	b := Outline(rand.New(rand.NewPCG(42, 42)))

	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d points", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
