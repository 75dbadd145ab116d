package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Centroid returns the average of a ring of positions.
func Centroid(ring []mgl64.Vec3) mgl64.Vec3 {
	if len(ring) == 0 {
		return mgl64.Vec3{0, 0, 0}
	}

	sum := mgl64.Vec3{0, 0, 0}
	for _, p := range ring {
		sum = sum.Add(p)
	}

	return sum.Mul(1.0 / float64(len(ring)))
}

// Normal returns the unit normal of a planar ring, pointing toward the side
// from which the ring turns counter-clockwise.
// Degenerate rings (zero area) return {0, 1, 0}.
func Normal(ring []mgl64.Vec3) mgl64.Vec3 {
	center := Centroid(ring)

	// Sum of the fan triangle normals around the centroid
	normal := mgl64.Vec3{0, 0, 0}
	for i := range ring {
		d0 := ring[i].Sub(center)
		d1 := ring[(i+1)%len(ring)].Sub(center)
		normal = normal.Add(d0.Cross(d1))
	}

	length := math.Sqrt(normal.Dot(normal))
	if length < 1e-12 {
		return mgl64.Vec3{0, 1, 0}
	}

	return normal.Mul(1.0 / length)
}

// FaceCentroid returns the average corner position of face f.
func (m *Mesh) FaceCentroid(f int) (mgl64.Vec3, error) {
	ring, err := m.FaceRing(f)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return Centroid(ring), nil
}

// FaceNormal returns the outward unit normal of face f.
func (m *Mesh) FaceNormal(f int) (mgl64.Vec3, error) {
	ring, err := m.FaceRing(f)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return Normal(ring), nil
}
