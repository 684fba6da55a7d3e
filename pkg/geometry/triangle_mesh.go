package geometry

import (
	"math"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// TriangleMesh is an indexed triangle mesh with optional per-vertex normals,
// texture coordinates and colors. Faces index into the vertex arrays three
// at a time. The intersection index identifies the face, and the UV pair
// holds the barycentric coordinates within that face, which SurfaceAt uses
// to interpolate the shading data.
type TriangleMesh struct {
	Vertices  []core.Vec3
	Normals   []core.Vec3 // Optional; face normals are used when empty
	TexCoords []core.Vec2 // Optional
	Colors    []core.Vec3 // Optional; white when empty
	Faces     [][3]int
	Material  *material.Material

	bounds AABB
}

// NewTriangleMesh creates a mesh and precomputes its bounds
func NewTriangleMesh(vertices []core.Vec3, faces [][3]int, mat *material.Material) *TriangleMesh {
	m := &TriangleMesh{
		Vertices: vertices,
		Faces:    faces,
		Material: mat,
	}
	m.bounds = NewAABBFromPoints(vertices...)
	return m
}

// Intersect finds the nearest face hit within (tMin, tMax) using the
// Möller-Trumbore test per face
func (m *TriangleMesh) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	nearest := Intersection{T: tMax}
	found := false

	for i, face := range m.Faces {
		t, u, v, ok := intersectTriangle(ray,
			m.Vertices[face[0]], m.Vertices[face[1]], m.Vertices[face[2]])
		if !ok || t < tMin || t > nearest.T {
			continue
		}
		nearest = Intersection{T: t, Index: i, UV: core.NewVec2(u, v)}
		found = true
	}

	return nearest, found
}

// SurfaceAt interpolates the shading data across the hit face using the
// barycentric coordinates from the intersection
func (m *TriangleMesh) SurfaceAt(point, direction core.Vec3, index int, uv core.Vec2) SurfaceHit {
	face := m.Faces[index]
	w0 := 1 - uv.X - uv.Y

	var normal core.Vec3
	if len(m.Normals) > 0 {
		normal = m.Normals[face[0]].Multiply(w0).
			Add(m.Normals[face[1]].Multiply(uv.X)).
			Add(m.Normals[face[2]].Multiply(uv.Y)).
			Normalize()
	} else {
		edge1 := m.Vertices[face[1]].Subtract(m.Vertices[face[0]])
		edge2 := m.Vertices[face[2]].Subtract(m.Vertices[face[0]])
		normal = edge1.Cross(edge2).Normalize()
	}
	if direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	texCoords := uv
	if len(m.TexCoords) > 0 {
		t0, t1, t2 := m.TexCoords[face[0]], m.TexCoords[face[1]], m.TexCoords[face[2]]
		texCoords = core.NewVec2(
			w0*t0.X+uv.X*t1.X+uv.Y*t2.X,
			w0*t0.Y+uv.X*t1.Y+uv.Y*t2.Y,
		)
	}

	color := core.NewVec3(1, 1, 1)
	if len(m.Colors) > 0 {
		color = m.Colors[face[0]].Multiply(w0).
			Add(m.Colors[face[1]].Multiply(uv.X)).
			Add(m.Colors[face[2]].Multiply(uv.Y))
	}

	return SurfaceHit{
		Point:     point,
		Normal:    normal,
		TexCoords: texCoords,
		Color:     color,
		Material:  m.Material,
	}
}

// BoundingBox returns the precomputed bounds of all vertices
func (m *TriangleMesh) BoundingBox() AABB {
	return m.bounds
}

// intersectTriangle runs the Möller-Trumbore ray/triangle test and returns
// the ray parameter and the barycentric coordinates of the hit
func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3) (t, u, v float64, ok bool) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < 1e-12 {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(v0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	v = ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = edge2.Dot(qvec) * invDet
	if t <= 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
