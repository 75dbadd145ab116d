// Package stl writes the emitted face triangles of a mesh as a binary STL file.
package stl

import (
	"fmt"

	"github.com/akmonengine/crystal/emit"
	"github.com/akmonengine/crystal/mesh"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
)

func toVec(p mgl64.Vec3) v3.Vec {
	return v3.Vec{X: p.X(), Y: p.Y(), Z: p.Z()}
}

// Triangles converts the fan triangles of every face into sdfx triangles.
func Triangles(m *mesh.Mesh, inset emit.Inset) []*sdf.Triangle3 {
	triangles := make([]*sdf.Triangle3, 0, m.NumEdges())
	for tri := range emit.Faces(m, inset) {
		triangles = append(triangles, &sdf.Triangle3{toVec(tri[0]), toVec(tri[1]), toVec(tri[2])})
	}
	return triangles
}

// Save writes the mesh to path.
func Save(path string, m *mesh.Mesh, inset emit.Inset) error {
	triangles := Triangles(m, inset)
	if len(triangles) == 0 {
		return fmt.Errorf("save %s: mesh has no faces", path)
	}

	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
