// Package emit turns a finished mesh into vertex streams for a renderer:
// fan triangles per face, inset line segments per half-edge, and raw points.
//
// Every stream is a lazy iter.Seq that can be ranged over any number of
// times and stops as soon as the consumer breaks. The mesh is only read.
package emit

import (
	"iter"

	"github.com/akmonengine/crystal/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_GAP = 0.05

type Triangle [3]mgl64.Vec3

type Segment [2]mgl64.Vec3

// Inset pulls ring points toward their face centroid to leave visible gaps
// between neighbouring faces.
type Inset struct {
	Gap    float64
	Radius float64
}

// DefaultInset returns the standard gap for a crystal of the given radius.
func DefaultInset(radius float64) Inset {
	return Inset{Gap: DEFAULT_GAP, Radius: radius}
}

// Pull moves p toward center. Horizontal offsets shrink by 2·Gap/Radius and
// the vertical offset by Gap, so wide and tall faces show similar gaps.
func (in Inset) Pull(center, p mgl64.Vec3) mgl64.Vec3 {
	margin := 1.0
	if in.Radius > 0 {
		margin = 1 - in.Gap/in.Radius*2
	}
	marginY := 1 - in.Gap

	d := p.Sub(center)
	return center.Add(mgl64.Vec3{d.X() * margin, d.Y() * marginY, d.Z() * margin})
}

// pulledRing returns the corners of the loop through e pulled toward their centroid.
func pulledRing(m *mesh.Mesh, e int, inset Inset) (mgl64.Vec3, []mgl64.Vec3, bool) {
	ring, err := m.LoopRing(e)
	if err != nil || len(ring) == 0 {
		return mgl64.Vec3{}, nil, false
	}

	center := mesh.Centroid(ring)
	for i, p := range ring {
		ring[i] = inset.Pull(center, p)
	}
	return center, ring, true
}

// Faces yields, for every face, the fan (centroid, p[i], p[i+1]) over its
// pulled ring. A face whose loop cannot be walked ends the sequence.
func Faces(m *mesh.Mesh, inset Inset) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for f := 0; f < m.NumFaces(); f++ {
			center, ring, ok := pulledRing(m, m.Face(f).Edge, inset)
			if !ok {
				return
			}

			for i := range ring {
				if !yield(Triangle{center, ring[i], ring[(i+1)%len(ring)]}) {
					return
				}
			}
		}
	}
}

// Edges yields one pulled segment per half-edge. Loops are discovered from
// a stack seeded with the twins of every emitted loop, and a visited set
// keyed by edge index ensures each half-edge is emitted once.
func Edges(m *mesh.Mesh, inset Inset) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		visited := make([]bool, m.NumEdges())
		var stack []int

		for seed := 0; seed < m.NumEdges(); seed++ {
			stack = append(stack[:0], seed)

			for len(stack) > 0 {
				start := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if visited[start] {
					continue
				}

				loop, err := m.Loop(start)
				if err != nil {
					return
				}
				_, ring, ok := pulledRing(m, start, inset)
				if !ok {
					return
				}

				for _, e := range loop {
					visited[e] = true
					if twin := m.Edge(e).Twin; !visited[twin] {
						stack = append(stack, twin)
					}
				}
				for i := range ring {
					if !yield(Segment{ring[i], ring[(i+1)%len(ring)]}) {
						return
					}
				}
			}
		}
	}
}

// Points yields the raw position of every vertex.
func Points(m *mesh.Mesh) iter.Seq[mgl64.Vec3] {
	return func(yield func(mgl64.Vec3) bool) {
		for v := 0; v < m.NumVertices(); v++ {
			if !yield(m.Position(v)) {
				return
			}
		}
	}
}
