package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Loop returns the half-edges of the face loop starting at e, following Next.
// The walk is capped at NumEdges steps.
func (m *Mesh) Loop(e int) ([]int, error) {
	if !m.validEdge(e) {
		return nil, fmt.Errorf("loop from edge %d: %w", e, ErrInvalidIndex)
	}

	loop := []int{e}
	for it := m.next(e); it != e; it = m.next(it) {
		if !m.validEdge(it) {
			return nil, &InvariantError{Invariant: 4, Entity: "edge", Index: e, Reason: fmt.Sprintf("loop reaches invalid edge %d", it)}
		}
		if len(loop) >= len(m.edges) {
			return nil, &InvariantError{Invariant: 4, Entity: "edge", Index: e, Reason: "face loop does not close"}
		}
		loop = append(loop, it)
	}

	return loop, nil
}

// Fan returns the outgoing half-edges around the origin of e, following
// twin(·).Next. The walk is capped at NumEdges steps.
func (m *Mesh) Fan(e int) ([]int, error) {
	if !m.validEdge(e) {
		return nil, fmt.Errorf("fan from edge %d: %w", e, ErrInvalidIndex)
	}

	fan := []int{e}
	it := e
	for {
		twin := m.twin(it)
		if !m.validEdge(twin) || !m.validEdge(m.next(twin)) {
			return nil, &InvariantError{Invariant: 5, Entity: "edge", Index: e, Reason: fmt.Sprintf("fan leaves the mesh at edge %d", it)}
		}
		it = m.next(twin)
		if it == e {
			return fan, nil
		}
		if len(fan) >= len(m.edges) {
			return nil, &InvariantError{Invariant: 5, Entity: "edge", Index: e, Reason: "vertex fan does not close"}
		}
		fan = append(fan, it)
	}
}

// FaceEdges returns the boundary loop of face f, starting at its representative.
func (m *Mesh) FaceEdges(f int) ([]int, error) {
	if !m.validFace(f) {
		return nil, fmt.Errorf("face %d: %w", f, ErrInvalidIndex)
	}
	return m.Loop(m.faces[f].Edge)
}

// VertexEdges returns every outgoing half-edge of vertex v.
func (m *Mesh) VertexEdges(v int) ([]int, error) {
	if !m.validVertex(v) {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrInvalidIndex)
	}
	return m.Fan(m.vertices[v].Edge)
}

// FaceRing returns the ordered corner positions of face f.
func (m *Mesh) FaceRing(f int) ([]mgl64.Vec3, error) {
	loop, err := m.FaceEdges(f)
	if err != nil {
		return nil, err
	}

	return m.ring(loop), nil
}

// LoopRing returns the ordered corner positions of the loop through edge e.
func (m *Mesh) LoopRing(e int) ([]mgl64.Vec3, error) {
	loop, err := m.Loop(e)
	if err != nil {
		return nil, err
	}

	return m.ring(loop), nil
}

func (m *Mesh) ring(loop []int) []mgl64.Vec3 {
	ring := make([]mgl64.Vec3, len(loop))
	for i, e := range loop {
		ring[i] = m.origin(e)
	}
	return ring
}
