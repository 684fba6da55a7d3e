package geometry

import (
	"math"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Color    core.Vec3
	Material *material.Material
}

// NewSphere creates a new white sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Color:    core.NewVec3(1, 1, 1),
		Material: mat,
	}
}

// NewColoredSphere creates a sphere with an explicit surface color
func NewColoredSphere(center core.Vec3, radius float64, color core.Vec3, mat *material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Color: color, Material: mat}
}

// Intersect tests if a ray intersects the sphere within (tMin, tMax)
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Intersection{}, false
		}
	}

	return Intersection{T: root, UV: s.uvAt(ray.At(root))}, true
}

// SurfaceAt resolves the shading data at a known hit point
func (s *Sphere) SurfaceAt(point, direction core.Vec3, index int, uv core.Vec2) SurfaceHit {
	return SurfaceHit{
		Point:     point,
		Normal:    point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		TexCoords: uv,
		Color:     s.Color,
		Material:  s.Material,
	}
}

// uvAt maps a surface point to spherical coordinates in [0,1]²
func (s *Sphere) uvAt(point core.Vec3) core.Vec2 {
	n := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u := (math.Atan2(n.Z, n.X) + math.Pi) / (2 * math.Pi)
	v := math.Acos(max(-1.0, min(1.0, n.Y))) / math.Pi
	return core.NewVec2(u, v)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
