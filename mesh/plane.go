package mesh

import "github.com/go-gl/mathgl/mgl64"

// Plane is the set of points p with Normal·p == Offset.
// Points with a positive distance lie on the discarded side of a clip.
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// NewPlane returns a plane with the given normal, normalized, and offset.
func NewPlane(normal mgl64.Vec3, offset float64) Plane {
	return Plane{Normal: normal.Normalize(), Offset: offset}
}

// Distance returns the signed distance from the plane to p.
func (p Plane) Distance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Offset
}
