package mesh

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/akmonengine/crystal/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// regularOutline returns n unit directions at exactly 2π·i/n.
func regularOutline(n int) []mgl64.Vec2 {
	outline := make([]mgl64.Vec2, n)
	for i := range outline {
		a := 2 * math.Pi * float64(i) / float64(n)
		outline[i] = mgl64.Vec2{math.Cos(a), math.Sin(a)}
	}
	return outline
}

func newPrism(t *testing.T, outline []mgl64.Vec2, radius float64) *Mesh {
	t.Helper()

	m, err := BuildPrism(outline, radius)
	if err != nil {
		t.Fatalf("BuildPrism(%d points, %v) failed: %v", len(outline), radius, err)
	}
	return m
}

func newRandomPrism(t *testing.T, seed uint64, n int, radius float64) *Mesh {
	t.Helper()
	return newPrism(t, shape.OutlineN(rand.New(rand.NewPCG(seed, seed^0x9e37)), n), radius)
}

func mustValidate(t *testing.T, m *Mesh) {
	t.Helper()

	if err := m.Validate(); err != nil {
		t.Fatalf("mesh invalid: %v", err)
	}
}

func vec3ApproxEqual(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

// destination returns the vertex e points to.
func destination(m *Mesh, e int) int {
	return m.Edge(m.Edge(e).Next).Origin
}

// sameMesh reports whether two meshes hold identical records.
func sameMesh(a, b *Mesh) bool {
	if a.NumVertices() != b.NumVertices() || a.NumEdges() != b.NumEdges() || a.NumFaces() != b.NumFaces() {
		return false
	}
	for i := 0; i < a.NumVertices(); i++ {
		if a.Vertex(i) != b.Vertex(i) {
			return false
		}
	}
	for i := 0; i < a.NumEdges(); i++ {
		if a.Edge(i) != b.Edge(i) {
			return false
		}
	}
	for i := 0; i < a.NumFaces(); i++ {
		if a.Face(i) != b.Face(i) {
			return false
		}
	}
	return true
}

// eulerCharacteristic returns V - E + F, counting each twin pair once.
func eulerCharacteristic(m *Mesh) int {
	return m.NumVertices() - m.NumEdges()/2 + m.NumFaces()
}
