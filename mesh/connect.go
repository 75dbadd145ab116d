package mesh

import "fmt"

// ConnectVertices splits a face by inserting a half-edge pair between v0 and v1.
//
// The face is found by walking the fan of v0 in twin(·).Next order and, for
// each outgoing half-edge, its face loop in Next order; the first loop that
// reaches v1 is cut. The new face receives the sub-loop from v1 back to v0
// closed by the new half-edge v0 -> v1; the original face id keeps the other
// sub-loop, closed by the twin v1 -> v0, and its representative is moved onto
// that twin.
//
// Returns the new half-edge, which bounds the new face.
func (m *Mesh) ConnectVertices(v0, v1 int) (int, error) {
	if !m.validVertex(v0) || !m.validVertex(v1) {
		return NoIndex, fmt.Errorf("connect vertices %d -> %d: %w", v0, v1, ErrInvalidIndex)
	}

	fan, err := m.VertexEdges(v0)
	if err != nil {
		return NoIndex, fmt.Errorf("connect vertices %d -> %d: %w", v0, v1, err)
	}

	v0Outgoing, v1Incoming := NoIndex, NoIndex
search:
	for _, start := range fan {
		if m.edges[start].Origin != v0 {
			return NoIndex, &InvariantError{Invariant: 5, Entity: "vertex", Index: v0, Reason: fmt.Sprintf("fan edge %d leaves vertex %d", start, m.edges[start].Origin)}
		}

		loop, err := m.Loop(start)
		if err != nil {
			return NoIndex, fmt.Errorf("connect vertices %d -> %d: %w", v0, v1, err)
		}
		for _, it := range loop[1:] {
			if m.edges[it].Origin == v1 {
				v0Outgoing, v1Incoming = start, m.edges[it].Prev
				break search
			}
		}
	}

	if v0Outgoing == NoIndex {
		return NoIndex, fmt.Errorf("connect vertices %d -> %d: %w", v0, v1, ErrNoSharedLoop)
	}

	v0Incoming := m.edges[v0Outgoing].Prev
	v1Outgoing := m.edges[v1Incoming].Next

	newEdge := len(m.edges)
	newTwin := newEdge + 1

	newFace := len(m.faces)
	oldFace := m.edges[v1Incoming].Face

	m.edges = append(m.edges,
		HalfEdge{
			Origin: v0,
			Next:   v1Outgoing,
			Prev:   v0Incoming,
			Twin:   newTwin,
			Face:   newFace,
		},
		HalfEdge{
			Origin: v1,
			Next:   v0Outgoing,
			Prev:   v1Incoming,
			Twin:   newEdge,
			Face:   oldFace,
		},
	)
	m.faces = append(m.faces, Face{Edge: newEdge})

	m.edges[v0Incoming].Next = newEdge
	m.edges[v1Outgoing].Prev = newEdge

	m.edges[v1Incoming].Next = newTwin
	m.edges[v0Outgoing].Prev = newTwin

	// The old representative may now sit on the new face's side
	m.faces[oldFace].Edge = newTwin

	// The new loop was part of a valid loop, so it closes within the edge count
	for it, steps := m.next(newEdge), 0; it != newEdge && steps < len(m.edges); it, steps = m.next(it), steps+1 {
		m.edges[it].Face = newFace
	}

	return newEdge, nil
}
