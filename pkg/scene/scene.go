// Package scene assembles intersectable shapes into renderable scenes and
// exposes the nearest-intersection query the integrator consumes.
package scene

import (
	"math"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/geometry"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// tMinIntersect rejects hits at effectively zero distance. Secondary rays are
// additionally offset by the bias epsilon at their origins.
const tMinIntersect = 1e-9

// Scene is a collection of shapes with a nearest-intersection query. After
// Preprocess the query goes through a BVH; the scene must not be mutated
// once rendering starts, which keeps Intersect safe for concurrent workers.
type Scene struct {
	Shapes []geometry.Shape

	bvh *geometry.BVH
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess builds the acceleration structure. Call it once after the last
// Add and before rendering.
func (s *Scene) Preprocess() {
	s.bvh = geometry.NewBVH(s.Shapes)
}

// Intersect returns the nearest intersection along the ray in the forward
// direction, the shape that was hit, and whether anything was hit at all
func (s *Scene) Intersect(ray core.Ray) (geometry.Intersection, geometry.Shape, bool) {
	if s.bvh != nil {
		return s.bvh.Intersect(ray, tMinIntersect, math.MaxFloat64)
	}

	// Linear fallback for scenes rendered without Preprocess
	var nearest geometry.Intersection
	var nearestShape geometry.Shape
	found := false
	closestSoFar := math.MaxFloat64

	for _, shape := range s.Shapes {
		if isect, ok := shape.Intersect(ray, tMinIntersect, closestSoFar); ok {
			nearest, nearestShape, found = isect, shape, true
			closestSoFar = isect.T
		}
	}

	return nearest, nearestShape, found
}

// NewGroundQuad creates a large horizontal quad centered at the given point
// with its normal pointing up, standing in for an infinite ground plane
func NewGroundQuad(center core.Vec3, size float64, color core.Vec3, mat *material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, color, mat)
}
