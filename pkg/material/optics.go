package material

import (
	"math"

	"github.com/atkvist/go-path-tracer/pkg/core"
)

// Reflect computes the mirror reflection of incident about normal:
// I - 2(I·N)N
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract computes the refraction direction through a surface with the given
// index of refraction using vector Snell's law. The sign of I·N decides
// whether the ray is entering or exiting; exiting swaps the index ratio and
// flips the normal. Returns the zero vector on total internal reflection,
// which callers must treat as "no valid refraction".
func Refract(incident, normal core.Vec3, ior float64) core.Vec3 {
	cosi := max(-1.0, min(1.0, incident.Dot(normal)))
	etai, etat := 1.0, ior
	n := normal
	if cosi < 0 {
		cosi = -cosi
	} else {
		etai, etat = etat, etai
		n = normal.Negate()
	}
	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}
	}
	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
}
