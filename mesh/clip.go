package mesh

import (
	"fmt"
	"math"
)

// ClipResult summarizes one ClipWithPlane call.
type ClipResult struct {
	// Clipped is false when the plane crosses no edge and the mesh was left as is.
	Clipped bool

	SplitEdges int // edges cut by the plane
	SplitFaces int // faces divided along the plane

	DeletedFaces    int
	DeletedVertices int
	DeletedEdges    int

	// CutFace is the id of the new cross-section face, or NoIndex.
	CutFace int
}

type edgeClass uint8

const (
	edgeUnseen edgeClass = iota
	edgeNoIntersection
	edgeIntersects
	edgeTwinIntersects
)

type edgeData struct {
	class edgeClass
	t     float64
}

// crossing is a half-edge cut by the plane at parameter t.
type crossing struct {
	edge int
	t    float64
}

// ClipWithPlane cuts the solid with p, keeps the part on the negative side
// and closes it with a new cross-section face, which becomes the last face.
//
// A plane crossing no edge leaves the mesh unchanged and returns a result
// with Clipped == false. A plane passing exactly through a vertex while
// crossing the solid is rejected with ErrDegeneratePlane.
//
// The cut runs on a copy that replaces the mesh only once it validates, so
// on error the mesh is unchanged.
func (m *Mesh) ClipWithPlane(p Plane) (ClipResult, error) {
	result := ClipResult{CutFace: NoIndex}

	if err := m.Validate(); err != nil {
		return result, fmt.Errorf("clip: %w", err)
	}

	dist := m.classifyVertices(p)
	crossings := m.classifyEdges(dist)
	if len(crossings) == 0 {
		return result, nil
	}

	for v, d := range dist {
		if d == 0 {
			return result, fmt.Errorf("clip: vertex %d: %w", v, ErrDegeneratePlane)
		}
	}

	work := m.Clone()
	result, err := work.clip(dist, crossings)
	if err != nil {
		return ClipResult{CutFace: NoIndex}, fmt.Errorf("clip: %w", err)
	}

	*m = *work
	return result, nil
}

// classifyVertices returns the signed distance of every vertex to p.
func (m *Mesh) classifyVertices(p Plane) []float64 {
	dist := make([]float64, len(m.vertices))
	task(m.Workers, len(m.vertices), func(i int) {
		dist[i] = p.Distance(m.vertices[i].Position)
	})
	return dist
}

// classifyEdges visits every twin pair once and returns, in index order, the
// half-edges whose endpoints lie on opposite sides, with the crossing
// parameter measured from their origin. Zero counts as the positive side.
func (m *Mesh) classifyEdges(dist []float64) []crossing {
	data := make([]edgeData, len(m.edges))
	var crossings []crossing

	for it, edge := range m.edges {
		if data[it].class != edgeUnseen {
			continue
		}

		clipOrigin := dist[edge.Origin]
		clipDest := dist[m.edges[edge.Next].Origin]

		if math.Signbit(clipOrigin) == math.Signbit(clipDest) {
			data[it].class = edgeNoIntersection
			data[edge.Twin].class = edgeNoIntersection
			continue
		}

		t := math.Abs(clipOrigin) / (math.Abs(clipOrigin) + math.Abs(clipDest))

		data[it] = edgeData{class: edgeIntersects, t: t}
		data[edge.Twin].class = edgeTwinIntersects
		crossings = append(crossings, crossing{edge: it, t: t})
	}

	return crossings
}

// clip performs the mutation phases of ClipWithPlane on m.
// dist holds the distances of the vertices that existed before the cut;
// vertices created by the cut lie on the plane.
func (m *Mesh) clip(dist []float64, crossings []crossing) (ClipResult, error) {
	result := ClipResult{CutFace: NoIndex, SplitEdges: len(crossings)}

	// Split crossing edges, keeping both outgoing edges of every new vertex
	newEdges := make([]int, 0, len(crossings)*2)
	for _, c := range crossings {
		newEdge, err := m.SplitEdge(c.edge, c.t)
		if err != nil {
			return result, err
		}
		newEdges = append(newEdges, newEdge, m.next(m.twin(newEdge)))
	}

	isNewEdge := make(map[int]bool, len(newEdges))
	for _, e := range newEdges {
		isNewEdge[e] = true
	}

	// Connect the two new vertices of every crossed face
	seenFaces := make(map[int]bool)
	var newFaceEdges []int
	for _, edge := range newEdges {
		face := m.edges[edge].Face

		// A face is split at most once per plane
		if seenFaces[face] {
			continue
		}
		seenFaces[face] = true

		loop, err := m.Loop(edge)
		if err != nil {
			return result, err
		}
		for _, it := range loop[1:] {
			if isNewEdge[it] {
				faceEdge, err := m.ConnectVertices(m.edges[edge].Origin, m.edges[it].Origin)
				if err != nil {
					return result, err
				}
				newFaceEdges = append(newFaceEdges, faceEdge)
				break
			}
		}
	}

	if err := m.Validate(); err != nil {
		return result, err
	}
	if len(newFaceEdges) == 0 {
		return result, fmt.Errorf("no face split by %d crossing edges: %w", len(crossings), ErrInvariant)
	}
	result.SplitFaces = len(newFaceEdges)

	deletedFaces, err := m.facesToDelete(dist)
	if err != nil {
		return result, err
	}

	// Move every face split edge onto the deleted side and give it to the cut face
	cutFace := len(m.faces)
	isCutEdge := make(map[int]bool, len(newFaceEdges))
	for i, e := range newFaceEdges {
		if !deletedFaces[m.edges[e].Face] {
			e = m.twin(e)
			if !deletedFaces[m.edges[e].Face] {
				return result, &InvariantError{Invariant: 4, Entity: "edge", Index: e, Reason: "face split leaves both sides on the kept side"}
			}
			newFaceEdges[i] = e
		}
		m.edges[e].Face = cutFace
		isCutEdge[e] = true
	}

	// Chain the cut face loop: the successor of a cut edge is the cut edge
	// leaving its destination, found by turning around that vertex
	for _, edge := range newFaceEdges {
		end := m.twin(edge)
		found := false

		it := m.next(edge)
		for steps := 0; it != end && steps < len(m.edges); steps++ {
			if isCutEdge[it] {
				m.edges[edge].Next = it
				m.edges[it].Prev = edge
				found = true
				break
			}
			it = m.next(m.twin(it))
		}

		if !found {
			return result, &InvariantError{Invariant: 4, Entity: "edge", Index: edge, Reason: "cut face loop does not continue"}
		}
	}

	m.faces = append(m.faces, Face{Edge: newFaceEdges[0]})
	deletedFaces = append(deletedFaces, false)

	removed := m.compact(dist, deletedFaces)
	result.DeletedFaces = removed.faces
	result.DeletedVertices = removed.vertices
	result.DeletedEdges = removed.edges
	result.CutFace = len(m.faces) - 1
	result.Clipped = true

	if err := m.Validate(); err != nil {
		return result, err
	}

	return result, nil
}

// facesToDelete marks every face with a corner strictly on the positive side.
// Vertices without a distance were created on the plane and never count.
func (m *Mesh) facesToDelete(dist []float64) ([]bool, error) {
	deleted := make([]bool, len(m.faces))

	for face := range m.faces {
		loop, err := m.FaceEdges(face)
		if err != nil {
			return nil, err
		}

		for _, e := range loop {
			v := m.edges[e].Origin
			if v < len(dist) && dist[v] > 0 {
				deleted[face] = true
				break
			}
		}
	}

	return deleted, nil
}
