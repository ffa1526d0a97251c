package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTriangleMesh creates a list of triangles from vertices and face indices.
// Each group of 3 indices forms a triangle; the list is intersected linearly.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material) (*ShapeList, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	mesh := NewShapeList()
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i/3, idx, len(vertices))
			}
		}
		mesh.Add(NewTriangle(vertices[i0], vertices[i1], vertices[i2], mat))
	}

	return mesh, nil
}
