package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/akmonengine/crystal"
	"github.com/akmonengine/crystal/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// parsePlanes reads "nx,ny,nz,offset" groups separated by ';'.
func parsePlanes(s string) ([]mesh.Plane, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var planes []mesh.Plane
	for _, group := range strings.Split(s, ";") {
		fields := strings.Split(group, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("plane %q: want nx,ny,nz,offset", group)
		}

		var values [4]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("plane %q: %w", group, err)
			}
			values[i] = v
		}

		normal := mgl64.Vec3{values[0], values[1], values[2]}
		if normal.Len() == 0 {
			return nil, fmt.Errorf("plane %q: zero normal", group)
		}
		planes = append(planes, mesh.NewPlane(normal, values[3]))
	}
	return planes, nil
}

func printMesh(label string, m *mesh.Mesh) {
	fmt.Printf("%s: %d vertices, %d half-edges, %d faces\n", label, m.NumVertices(), m.NumEdges(), m.NumFaces())
}

func run() error {
	seed := flag.Uint64("seed", 1, "random seed of the outline")
	radius := flag.Float64("radius", crystal.DEFAULT_RADIUS, "horizontal radius")
	gap := flag.Float64("gap", crystal.DEFAULT_GAP, "gap between emitted faces")
	workers := flag.Int("workers", crystal.DEFAULT_WORKERS, "goroutines classifying vertices")
	out := flag.String("out", "", "write the emitted faces to this STL file")
	planesFlag := flag.String("planes", "", "clip planes as nx,ny,nz,offset;... (default plane when empty)")
	flag.Parse()

	planes, err := parsePlanes(*planesFlag)
	if err != nil {
		return err
	}

	c := &crystal.Crystal{Radius: *radius, Gap: *gap, Workers: *workers}
	if err := c.Generate(rand.New(rand.NewPCG(*seed, *seed))); err != nil {
		return err
	}

	fmt.Printf("Outline (%d sides):\n", len(c.Outline))
	for i, p := range c.Outline {
		fmt.Printf("  %d: %v\n", i, p)
	}
	printMesh("Prism", c.Mesh)

	results, err := c.Clip(planes...)
	for i, res := range results {
		if !res.Clipped {
			fmt.Printf("Clip %d: plane misses the mesh\n", i)
			continue
		}
		fmt.Printf("Clip %d: split %d edges and %d faces, deleted %d faces, %d vertices, %d half-edges, cut face %d\n",
			i, res.SplitEdges, res.SplitFaces, res.DeletedFaces, res.DeletedVertices, res.DeletedEdges, res.CutFace)
	}
	if err != nil {
		return err
	}
	printMesh("Crystal", c.Mesh)

	bounds := c.Bounds()
	fmt.Printf("Bounds: min %v, max %v\n", bounds.Min, bounds.Max)

	triangles, segments := 0, 0
	for range c.Faces() {
		triangles++
	}
	for range c.Edges() {
		segments++
	}
	fmt.Printf("Emitted %d triangles and %d segments\n", triangles, segments)

	if *out != "" {
		if err := c.SaveSTL(*out); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *out)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
