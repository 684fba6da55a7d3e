// Package loaders brings external mesh assets into the tracer's geometry.
package loaders

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/geometry"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// LoadOBJ loads a Wavefront OBJ file into a triangle mesh, applying the
// given transform to every vertex position and its rotation part to every
// vertex normal. Vertices are not deduplicated; each face indexes its own
// three vertices. Faces without vn records come back from fauxgl with the
// face normal already filled in per vertex.
//
// Normals are rotated with MulDirection, which preserves them only for
// rotation, translation and uniform scale; a non-uniform scale would need
// the inverse transpose.
func LoadOBJ(path string, transform core.Mat4, mat *material.Material) (*geometry.TriangleMesh, error) {
	loaded, err := fauxgl.LoadOBJ(path)
	if err != nil {
		return nil, fmt.Errorf("loading obj %q: %w", path, err)
	}
	if len(loaded.Triangles) == 0 {
		return nil, fmt.Errorf("obj %q contains no triangles", path)
	}

	vertices := make([]core.Vec3, 0, len(loaded.Triangles)*3)
	normals := make([]core.Vec3, 0, len(loaded.Triangles)*3)
	texCoords := make([]core.Vec2, 0, len(loaded.Triangles)*3)
	faces := make([][3]int, 0, len(loaded.Triangles))

	for _, tri := range loaded.Triangles {
		base := len(vertices)
		for _, v := range []fauxgl.Vertex{tri.V1, tri.V2, tri.V3} {
			vertices = append(vertices, transform.MulPoint(
				core.NewVec3(v.Position.X, v.Position.Y, v.Position.Z)))

			n := core.NewVec3(v.Normal.X, v.Normal.Y, v.Normal.Z)
			normals = append(normals, transform.MulDirection(n).Normalize())

			texCoords = append(texCoords, core.NewVec2(v.Texture.X, v.Texture.Y))
		}
		faces = append(faces, [3]int{base, base + 1, base + 2})
	}

	mesh := geometry.NewTriangleMesh(vertices, faces, mat)
	mesh.Normals = normals
	mesh.TexCoords = texCoords
	return mesh, nil
}
