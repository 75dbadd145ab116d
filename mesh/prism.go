package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Half-edge slots of one side block. Side i owns edges 6i..6i+5.
const (
	risingEdge = iota
	topEdge
	fallingEdge
	bottomEdge
	bottomRingEdge
	topRingEdge
	edgesPerSide
)

// BuildPrism extrudes an outline into a closed prism of height 2·HalfHeight.
//
// Outline point (x, y) becomes the bottom vertex 2i at (x·r, -HalfHeight, y·r)
// and the top vertex 2i+1 at (x·r, +HalfHeight, y·r). Side i is the quad
// between outline points i and i+1 and has face id i; the bottom cap is face
// N and the top cap face N+1. Twins are found by index arithmetic on the
// neighbouring sides. Faces wind counter-clockwise seen from outside when the
// outline angles increase.
func BuildPrism(outline []mgl64.Vec2, radius float64) (*Mesh, error) {
	numSides := len(outline)
	if numSides < 3 {
		return nil, fmt.Errorf("prism needs at least 3 outline points, got %d: %w", numSides, ErrInvalidParameter)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("prism radius %v: %w", radius, ErrInvalidParameter)
	}

	m := &Mesh{
		vertices: make([]Vertex, 0, numSides*2),
		edges:    make([]HalfEdge, 0, numSides*edgesPerSide),
		faces:    make([]Face, 0, numSides+2),
	}

	for i, p := range outline {
		base := mgl64.Vec3{p.X() * radius, 0, p.Y() * radius}

		m.vertices = append(m.vertices,
			Vertex{Position: base.Sub(mgl64.Vec3{0, HalfHeight, 0}), Edge: i*edgesPerSide + risingEdge},
			Vertex{Position: base.Add(mgl64.Vec3{0, HalfHeight, 0}), Edge: i*edgesPerSide + topEdge},
		)
	}

	bottomFace := numSides
	topFace := numSides + 1

	for i := 0; i < numSides; i++ {
		j := (i + 1) % numSides
		k := (i + numSides - 1) % numSides

		side := func(s, slot int) int { return s*edgesPerSide + slot }

		m.edges = append(m.edges,
			// bottom i -> top i
			HalfEdge{
				Origin: i * 2,
				Next:   side(i, topEdge),
				Prev:   side(i, bottomEdge),
				Twin:   side(k, fallingEdge),
				Face:   i,
			},
			// top i -> top j
			HalfEdge{
				Origin: i*2 + 1,
				Next:   side(i, fallingEdge),
				Prev:   side(i, risingEdge),
				Twin:   side(i, topRingEdge),
				Face:   i,
			},
			// top j -> bottom j
			HalfEdge{
				Origin: j*2 + 1,
				Next:   side(i, bottomEdge),
				Prev:   side(i, topEdge),
				Twin:   side(j, risingEdge),
				Face:   i,
			},
			// bottom j -> bottom i
			HalfEdge{
				Origin: j * 2,
				Next:   side(i, risingEdge),
				Prev:   side(i, fallingEdge),
				Twin:   side(i, bottomRingEdge),
				Face:   i,
			},
			// bottom i -> bottom j, on the bottom cap
			HalfEdge{
				Origin: i * 2,
				Next:   side(j, bottomRingEdge),
				Prev:   side(k, bottomRingEdge),
				Twin:   side(i, bottomEdge),
				Face:   bottomFace,
			},
			// top j -> top i, on the top cap
			HalfEdge{
				Origin: j*2 + 1,
				Next:   side(k, topRingEdge),
				Prev:   side(j, topRingEdge),
				Twin:   side(i, topEdge),
				Face:   topFace,
			},
		)

		m.faces = append(m.faces, Face{Edge: side(i, risingEdge)})
	}

	m.faces = append(m.faces,
		Face{Edge: bottomRingEdge},
		Face{Edge: topRingEdge},
	)

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("build prism: %w", err)
	}

	return m, nil
}
