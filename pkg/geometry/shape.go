package geometry

import (
	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// Intersection records where a ray meets a shape. Index identifies the
// sub-primitive that was hit (the face for meshes, 0 otherwise) and UV holds
// the local surface coordinates at the hit.
type Intersection struct {
	T     float64
	Index int
	UV    core.Vec2
}

// SurfaceHit is the transient shading record resolved at a known hit point.
// The material reference is non-owning and shared across hits of the same
// shape. A SurfaceHit lives for one shading evaluation; it is never kept.
type SurfaceHit struct {
	Point     core.Vec3
	Normal    core.Vec3
	TexCoords core.Vec2
	Color     core.Vec3
	Material  *material.Material
}

// Shape is an intersectable object. Intersection is two-phase: Intersect
// finds the nearest hit in (tMin, tMax), SurfaceAt resolves the interpolated
// shading data for a hit the caller already found. Both must be safe for
// concurrent read-only use.
type Shape interface {
	Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool)
	SurfaceAt(point, direction core.Vec3, index int, uv core.Vec2) SurfaceHit
	BoundingBox() AABB
}
