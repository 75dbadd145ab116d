// Package mesh implements a doubly-connected edge list (half-edge mesh)
// stored as three flat, index-addressed slices.
//
// Every half-edge knows its origin vertex, the next and previous half-edges
// of its face loop, its twin on the neighbouring face and the face it bounds.
// Vertices and faces each keep one representative half-edge. No record holds
// a pointer to another: all references are indices, and -1 means "none".
//
// The mesh is built by BuildPrism and mutated by SplitEdge, ConnectVertices
// and ClipWithPlane. Validate checks the five structural invariants:
//
//  1. origin(next(e)) == origin(twin(e))
//  2. next(prev(e)) == e and prev(next(e)) == e
//  3. twin(twin(e)) == e, and next, prev, twin never point back to e
//  4. every face loop closes within NumEdges steps and reports its face
//  5. every vertex fan (twin(e).Next) closes within NumEdges steps and
//     originates at its vertex
//
// A Mesh is not safe for concurrent mutation. It can be shared read-only
// between completed operations.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// NoIndex marks a dropped or missing reference.
	NoIndex = -1

	// HalfHeight is the distance of the prism caps from the y=0 plane.
	HalfHeight = 1.0
)

var (
	ErrInvalidIndex     = errors.New("index out of range")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNoSharedLoop     = errors.New("vertices do not share a face loop")
	ErrDegeneratePlane  = errors.New("plane passes exactly through a vertex")
	ErrInvariant        = errors.New("mesh invariant violated")
)

// Vertex is a position with one of its outgoing half-edges.
type Vertex struct {
	Position mgl64.Vec3
	Edge     int
}

// HalfEdge is one oriented side of an edge, bounding exactly one face.
type HalfEdge struct {
	Origin int
	Next   int
	Prev   int
	Twin   int
	Face   int
}

// Face references one half-edge of its boundary loop.
type Face struct {
	Edge int
}

type Mesh struct {
	vertices []Vertex
	edges    []HalfEdge
	faces    []Face

	// Workers is the number of goroutines used to classify vertices during a clip.
	Workers int
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumEdges() int    { return len(m.edges) }
func (m *Mesh) NumFaces() int    { return len(m.faces) }

// Vertex returns a copy of vertex v. It panics if v is out of range.
func (m *Mesh) Vertex(v int) Vertex { return m.vertices[v] }

// Edge returns a copy of half-edge e. It panics if e is out of range.
func (m *Mesh) Edge(e int) HalfEdge { return m.edges[e] }

// Face returns a copy of face f. It panics if f is out of range.
func (m *Mesh) Face(f int) Face { return m.faces[f] }

// Position returns the position of vertex v.
func (m *Mesh) Position(v int) mgl64.Vec3 { return m.vertices[v].Position }

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices: append([]Vertex(nil), m.vertices...),
		edges:    append([]HalfEdge(nil), m.edges...),
		faces:    append([]Face(nil), m.faces...),
		Workers:  m.Workers,
	}
}

func (m *Mesh) validVertex(v int) bool { return v >= 0 && v < len(m.vertices) }
func (m *Mesh) validEdge(e int) bool   { return e >= 0 && e < len(m.edges) }
func (m *Mesh) validFace(f int) bool   { return f >= 0 && f < len(m.faces) }

func (m *Mesh) next(e int) int { return m.edges[e].Next }
func (m *Mesh) twin(e int) int { return m.edges[e].Twin }

// origin returns the position of the origin vertex of e.
func (m *Mesh) origin(e int) mgl64.Vec3 {
	return m.vertices[m.edges[e].Origin].Position
}
