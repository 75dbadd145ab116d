package mesh

import "fmt"

// InvariantError reports the first record found breaking a mesh invariant.
// Invariant 0 stands for a reference out of range.
type InvariantError struct {
	Invariant int
	Entity    string // "edge", "face" or "vertex"
	Index     int
	Reason    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %d: %s %d: %s", e.Invariant, e.Entity, e.Index, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Validate runs every invariant check and returns the first violation.
func (m *Mesh) Validate() error {
	checks := []func() error{
		m.CheckBounds,
		m.CheckOrigins,
		m.CheckLinks,
		m.CheckTwins,
		m.CheckFaceLoops,
		m.CheckVertexFans,
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

// CheckBounds verifies that every stored reference is in range.
func (m *Mesh) CheckBounds() error {
	for it, edge := range m.edges {
		switch {
		case !m.validEdge(edge.Next):
			return &InvariantError{Invariant: 0, Entity: "edge", Index: it, Reason: fmt.Sprintf("invalid next %d", edge.Next)}
		case !m.validEdge(edge.Prev):
			return &InvariantError{Invariant: 0, Entity: "edge", Index: it, Reason: fmt.Sprintf("invalid prev %d", edge.Prev)}
		case !m.validEdge(edge.Twin):
			return &InvariantError{Invariant: 0, Entity: "edge", Index: it, Reason: fmt.Sprintf("invalid twin %d", edge.Twin)}
		case !m.validFace(edge.Face):
			return &InvariantError{Invariant: 0, Entity: "edge", Index: it, Reason: fmt.Sprintf("invalid face %d", edge.Face)}
		case !m.validVertex(edge.Origin):
			return &InvariantError{Invariant: 0, Entity: "edge", Index: it, Reason: fmt.Sprintf("invalid origin %d", edge.Origin)}
		}
	}

	for f, face := range m.faces {
		if !m.validEdge(face.Edge) {
			return &InvariantError{Invariant: 0, Entity: "face", Index: f, Reason: fmt.Sprintf("invalid edge %d", face.Edge)}
		}
	}

	for v, vertex := range m.vertices {
		if !m.validEdge(vertex.Edge) {
			return &InvariantError{Invariant: 0, Entity: "vertex", Index: v, Reason: fmt.Sprintf("invalid outgoing edge %d", vertex.Edge)}
		}
	}

	return nil
}

// CheckOrigins verifies that next(e) and twin(e) leave the same vertex.
func (m *Mesh) CheckOrigins() error {
	if err := m.CheckBounds(); err != nil {
		return err
	}

	for it, edge := range m.edges {
		next := m.edges[edge.Next]
		twin := m.edges[edge.Twin]
		if next.Origin != twin.Origin {
			return &InvariantError{Invariant: 1, Entity: "edge", Index: it, Reason: fmt.Sprintf("next leaves vertex %d, twin leaves vertex %d", next.Origin, twin.Origin)}
		}
	}

	return nil
}

// CheckLinks verifies that next and prev are inverse of each other.
func (m *Mesh) CheckLinks() error {
	if err := m.CheckBounds(); err != nil {
		return err
	}

	for it, edge := range m.edges {
		if m.edges[edge.Prev].Next != it {
			return &InvariantError{Invariant: 2, Entity: "edge", Index: it, Reason: fmt.Sprintf("prev %d points to next %d", edge.Prev, m.edges[edge.Prev].Next)}
		}
		if m.edges[edge.Next].Prev != it {
			return &InvariantError{Invariant: 2, Entity: "edge", Index: it, Reason: fmt.Sprintf("next %d points to prev %d", edge.Next, m.edges[edge.Next].Prev)}
		}
	}

	return nil
}

// CheckTwins verifies that twins are paired and no link points back to its edge.
func (m *Mesh) CheckTwins() error {
	if err := m.CheckBounds(); err != nil {
		return err
	}

	for it, edge := range m.edges {
		switch {
		case edge.Next == it:
			return &InvariantError{Invariant: 3, Entity: "edge", Index: it, Reason: "next points to itself"}
		case edge.Prev == it:
			return &InvariantError{Invariant: 3, Entity: "edge", Index: it, Reason: "prev points to itself"}
		case edge.Twin == it:
			return &InvariantError{Invariant: 3, Entity: "edge", Index: it, Reason: "twin points to itself"}
		case m.edges[edge.Twin].Twin != it:
			return &InvariantError{Invariant: 3, Entity: "edge", Index: it, Reason: fmt.Sprintf("twin %d points to twin %d", edge.Twin, m.edges[edge.Twin].Twin)}
		}
	}

	return nil
}

// CheckFaceLoops verifies that every face loop closes and reports its face.
func (m *Mesh) CheckFaceLoops() error {
	if err := m.CheckBounds(); err != nil {
		return err
	}

	for f := range m.faces {
		loop, err := m.FaceEdges(f)
		if err != nil {
			return &InvariantError{Invariant: 4, Entity: "face", Index: f, Reason: err.Error()}
		}

		for _, e := range loop {
			if m.edges[e].Face != f {
				return &InvariantError{Invariant: 4, Entity: "face", Index: f, Reason: fmt.Sprintf("loop edge %d reports face %d", e, m.edges[e].Face)}
			}
		}
	}

	return nil
}

// CheckVertexFans verifies that every vertex fan closes and leaves its vertex.
func (m *Mesh) CheckVertexFans() error {
	if err := m.CheckBounds(); err != nil {
		return err
	}

	for v := range m.vertices {
		fan, err := m.VertexEdges(v)
		if err != nil {
			return &InvariantError{Invariant: 5, Entity: "vertex", Index: v, Reason: err.Error()}
		}

		for _, e := range fan {
			if m.edges[e].Origin != v {
				return &InvariantError{Invariant: 5, Entity: "vertex", Index: v, Reason: fmt.Sprintf("fan edge %d leaves vertex %d", e, m.edges[e].Origin)}
			}
		}
	}

	return nil
}
