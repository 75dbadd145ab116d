package mesh

import "fmt"

// SplitEdge inserts a new vertex on half-edge e at parameter t in (0, 1),
// measured from the origin of e toward its destination.
//
// The pair (e, twin) becomes two pairs: e keeps its origin and now ends at
// the new vertex, and a new half-edge continues from the new vertex to the
// old destination. On the twin side the old twin now starts at the new
// vertex and a new half-edge runs from the old destination to it. Face ids
// are untouched on both sides.
//
// Returns the new half-edge leaving the new vertex toward the original
// destination, on the face of e.
func (m *Mesh) SplitEdge(e int, t float64) (int, error) {
	if !m.validEdge(e) {
		return NoIndex, fmt.Errorf("split edge %d: %w", e, ErrInvalidIndex)
	}
	if !(t > 0 && t < 1) {
		return NoIndex, fmt.Errorf("split edge %d at t=%v: %w", e, t, ErrInvalidParameter)
	}

	next := m.next(e)
	twin := m.twin(e)
	if !m.validEdge(next) || !m.validEdge(twin) {
		return NoIndex, fmt.Errorf("split edge %d: %w", e, ErrInvalidIndex)
	}
	twinPrev := m.edges[twin].Prev
	dest := m.edges[twin].Origin

	origin := m.origin(e)
	position := origin.Add(m.origin(next).Sub(origin).Mul(t))

	newVertex := len(m.vertices)
	newEdge := len(m.edges)
	newTwin := newEdge + 1

	m.vertices = append(m.vertices, Vertex{Position: position, Edge: newEdge})
	m.edges = append(m.edges,
		HalfEdge{
			Origin: newVertex,
			Next:   next,
			Prev:   e,
			Twin:   newTwin,
			Face:   m.edges[e].Face,
		},
		HalfEdge{
			Origin: dest,
			Next:   twin,
			Prev:   twinPrev,
			Twin:   newEdge,
			Face:   m.edges[twin].Face,
		},
	)

	m.edges[e].Next = newEdge
	m.edges[next].Prev = newEdge

	m.edges[twinPrev].Next = newTwin
	m.edges[twin].Prev = newTwin
	m.edges[twin].Origin = newVertex

	// The old twin no longer leaves the destination vertex
	if m.vertices[dest].Edge == twin {
		m.vertices[dest].Edge = newTwin
	}

	return newEdge, nil
}
