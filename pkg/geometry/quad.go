package geometry

import (
	"math"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Normal vector (computed from U × V)
	Color    core.Vec3
	Material *material.Material

	d float64   // Plane equation constant: normal · corner
	w core.Vec3 // Cached cross product for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, color core.Vec3, mat *material.Material) *Quad {
	normal := u.Cross(v).Normalize()
	cross := u.Cross(v)

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Color:    color,
		Material: mat,
		d:        normal.Dot(corner),
		w:        normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Intersect tests if a ray intersects the quad within (tMin, tMax)
func (q *Quad) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the quad's plane
	if math.Abs(denominator) < 1e-8 {
		return Intersection{}, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return Intersection{}, false
	}

	// Barycentric coordinates of the hit within the quad
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return Intersection{}, false
	}

	return Intersection{T: t, UV: core.NewVec2(alpha, beta)}, true
}

// SurfaceAt resolves the shading data at a known hit point. The normal is
// flipped to face against the incident direction.
func (q *Quad) SurfaceAt(point, direction core.Vec3, index int, uv core.Vec2) SurfaceHit {
	normal := q.Normal
	if direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}
	return SurfaceHit{
		Point:     point,
		Normal:    normal,
		TexCoords: uv,
		Color:     q.Color,
		Material:  q.Material,
	}
}

// BoundingBox returns the axis-aligned bounding box for this quad, padded a
// little along the thin axis so the slab test never degenerates
func (q *Quad) BoundingBox() AABB {
	box := NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
	pad := core.NewVec3(1e-4, 1e-4, 1e-4)
	return NewAABB(box.Min.Subtract(pad), box.Max.Add(pad))
}
