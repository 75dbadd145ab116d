package mesh

// removedCounts reports how many records a compaction dropped.
type removedCounts struct {
	faces, vertices, edges int
}

// remap builds the old -> new index table for n records, with NoIndex for
// dropped ones, and returns it with the number of kept records.
func remap(n int, drop func(i int) bool) ([]int, int) {
	table := make([]int, n)
	kept := 0
	for i := range table {
		if drop(i) {
			table[i] = NoIndex
			continue
		}
		table[i] = kept
		kept++
	}
	return table, kept
}

// through maps an index through a remap table, keeping NoIndex and out of
// range indices as NoIndex.
func through(table []int, i int) int {
	if i < 0 || i >= len(table) {
		return NoIndex
	}
	return table[i]
}

// compact drops the faces marked in deletedFaces, the vertices with a
// strictly positive distance and every half-edge bounding a dropped face or
// leaving a dropped vertex, then renumbers the survivors contiguously and
// rewrites every reference.
//
// A surviving vertex whose representative was dropped takes its first
// surviving outgoing half-edge.
func (m *Mesh) compact(dist []float64, deletedFaces []bool) removedCounts {
	faceMap, numFaces := remap(len(m.faces), func(f int) bool {
		return deletedFaces[f]
	})
	vertexMap, numVertices := remap(len(m.vertices), func(v int) bool {
		return v < len(dist) && dist[v] > 0
	})
	edgeMap, numEdges := remap(len(m.edges), func(e int) bool {
		edge := m.edges[e]
		return through(faceMap, edge.Face) == NoIndex || through(vertexMap, edge.Origin) == NoIndex
	})

	removed := removedCounts{
		faces:    len(m.faces) - numFaces,
		vertices: len(m.vertices) - numVertices,
		edges:    len(m.edges) - numEdges,
	}

	edges := make([]HalfEdge, 0, numEdges)
	for e, edge := range m.edges {
		if edgeMap[e] == NoIndex {
			continue
		}
		edges = append(edges, HalfEdge{
			Origin: vertexMap[edge.Origin],
			Next:   through(edgeMap, edge.Next),
			Prev:   through(edgeMap, edge.Prev),
			Twin:   through(edgeMap, edge.Twin),
			Face:   faceMap[edge.Face],
		})
	}

	faces := make([]Face, 0, numFaces)
	for f, face := range m.faces {
		if faceMap[f] == NoIndex {
			continue
		}
		faces = append(faces, Face{Edge: through(edgeMap, face.Edge)})
	}

	vertices := make([]Vertex, 0, numVertices)
	for v, vertex := range m.vertices {
		if vertexMap[v] == NoIndex {
			continue
		}
		vertices = append(vertices, Vertex{Position: vertex.Position, Edge: through(edgeMap, vertex.Edge)})
	}

	for e, edge := range edges {
		if vertices[edge.Origin].Edge == NoIndex {
			vertices[edge.Origin].Edge = e
		}
	}

	m.edges = edges
	m.faces = faces
	m.vertices = vertices

	return removed
}
