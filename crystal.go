package crystal

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/akmonengine/crystal/emit"
	"github.com/akmonengine/crystal/mesh"
	"github.com/akmonengine/crystal/shape"
	"github.com/akmonengine/crystal/stl"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_RADIUS  = 0.5
	DEFAULT_GAP     = emit.DEFAULT_GAP
	DEFAULT_WORKERS = mesh.DEFAULT_WORKERS
)

// DefaultPlanes are the cuts applied when Clip is called without planes.
var DefaultPlanes = []mesh.Plane{
	mesh.NewPlane(mgl64.Vec3{0.8, 1.0, 0.0}, 0.4),
}

var ErrNotGenerated = errors.New("crystal not generated")

type Crystal struct {
	// Horizontal scale of the outline
	Radius float64
	// Gap left between neighbouring faces when emitting
	Gap     float64
	Workers int

	Outline []mgl64.Vec2
	Mesh    *mesh.Mesh
}

func (c *Crystal) normalize() {
	if c.Radius == 0 {
		c.Radius = DEFAULT_RADIUS
	}
	if c.Gap == 0 {
		c.Gap = DEFAULT_GAP
	}
	c.Workers = max(DEFAULT_WORKERS, c.Workers)
}

func (c *Crystal) inset() emit.Inset {
	return emit.Inset{Gap: c.Gap, Radius: c.Radius}
}

// Generate draws a new outline from rng and extrudes it into a prism,
// replacing any previous mesh.
func (c *Crystal) Generate(rng *rand.Rand) error {
	c.normalize()

	outline := shape.Outline(rng)
	m, err := mesh.BuildPrism(outline, c.Radius)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	m.Workers = c.Workers

	c.Outline = outline
	c.Mesh = m
	return nil
}

// Clip applies the planes in order, or DefaultPlanes when none are given.
// It stops at the first failing plane; the results of the planes already
// applied are returned along with the error.
func (c *Crystal) Clip(planes ...mesh.Plane) ([]mesh.ClipResult, error) {
	if c.Mesh == nil {
		return nil, ErrNotGenerated
	}
	c.normalize()
	c.Mesh.Workers = c.Workers

	if len(planes) == 0 {
		planes = DefaultPlanes
	}

	results := make([]mesh.ClipResult, 0, len(planes))
	for i, p := range planes {
		res, err := c.Mesh.ClipWithPlane(p)
		if err != nil {
			return results, fmt.Errorf("clip plane %d: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (c *Crystal) Faces() iter.Seq[emit.Triangle] {
	if c.Mesh == nil {
		return func(func(emit.Triangle) bool) {}
	}
	return emit.Faces(c.Mesh, c.inset())
}

func (c *Crystal) Edges() iter.Seq[emit.Segment] {
	if c.Mesh == nil {
		return func(func(emit.Segment) bool) {}
	}
	return emit.Edges(c.Mesh, c.inset())
}

func (c *Crystal) Points() iter.Seq[mgl64.Vec3] {
	if c.Mesh == nil {
		return func(func(mgl64.Vec3) bool) {}
	}
	return emit.Points(c.Mesh)
}

// Bounds returns the axis aligned box of the current mesh.
func (c *Crystal) Bounds() mesh.AABB {
	if c.Mesh == nil {
		return mesh.AABB{}
	}
	return c.Mesh.Bounds()
}

// SaveSTL writes the emitted face triangles to path.
func (c *Crystal) SaveSTL(path string) error {
	if c.Mesh == nil {
		return ErrNotGenerated
	}
	return stl.Save(path, c.Mesh, c.inset())
}
