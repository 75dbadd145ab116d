package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB, widened by tolerance on every axis
func (a AABB) ContainsPoint(point mgl64.Vec3, tolerance float64) bool {
	return point.X() >= a.Min.X()-tolerance && point.X() <= a.Max.X()+tolerance &&
		point.Y() >= a.Min.Y()-tolerance && point.Y() <= a.Max.Y()+tolerance &&
		point.Z() >= a.Min.Z()-tolerance && point.Z() <= a.Max.Z()+tolerance
}

// Size returns the extent of the box on every axis
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Bounds returns the bounding box of every vertex position.
// An empty mesh returns the zero box.
func (m *Mesh) Bounds() AABB {
	if len(m.vertices) == 0 {
		return AABB{}
	}

	min := m.vertices[0].Position
	max := min
	for _, v := range m.vertices[1:] {
		p := v.Position

		min[0] = math.Min(min[0], p[0])
		min[1] = math.Min(min[1], p[1])
		min[2] = math.Min(min[2], p[2])

		max[0] = math.Max(max[0], p[0])
		max[1] = math.Max(max[1], p[1])
		max[2] = math.Max(max[2], p[2])
	}

	return AABB{Min: min, Max: max}
}
