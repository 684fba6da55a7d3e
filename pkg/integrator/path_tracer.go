// Package integrator implements the recursive Monte Carlo ray-color
// estimator: diffuse hemisphere sampling, Phong specular reflection and a
// fixed-ratio reflection/refraction mix.
package integrator

import (
	"math"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/geometry"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// Scene is the nearest-intersection query the integrator consumes. The
// implementation must be read-only during rendering so concurrent workers
// can share it.
type Scene interface {
	Intersect(ray core.Ray) (geometry.Intersection, geometry.Shape, bool)
}

// PathTracer estimates radiance along camera rays by recursively tracing
// light-transport paths. It is stateless apart from its configuration; the
// random source is threaded through every call so each render worker can own
// an independent generator.
type PathTracer struct {
	scene Scene
	opts  core.Options
}

// NewPathTracer creates a path tracer for a scene and render options
func NewPathTracer(scene Scene, opts core.Options) *PathTracer {
	return &PathTracer{scene: scene, opts: opts}
}

// CastRay returns the estimated radiance arriving along the ray. Recursion
// is bounded by the options' MaxDepth; both the depth cutoff and a scene
// miss return the background color. Apart from advancing the sampler, the
// result depends only on the ray, the scene and the depth.
func (pt *PathTracer) CastRay(ray core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	if depth > pt.opts.MaxDepth {
		return pt.opts.BackgroundColor
	}

	isect, shape, ok := pt.scene.Intersect(ray)
	if !ok {
		return pt.opts.BackgroundColor
	}

	hit := shape.SurfaceAt(ray.At(isect.T), ray.Direction, isect.Index, isect.UV)
	return pt.shade(ray, hit, sampler, depth)
}

// shade combines the enabled material contributions at a surface hit. A
// self-luminous surface terminates the path immediately; otherwise the
// contributions accumulate additively on top of the background color, and
// every recursive evaluation below runs at depth+1.
func (pt *PathTracer) shade(ray core.Ray, hit geometry.SurfaceHit, sampler core.Sampler, depth int) core.Vec3 {
	m := hit.Material

	if m.Emission != nil {
		return hit.Color.Multiply(m.Emission.Scale)
	}

	color := pt.opts.BackgroundColor
	if m.Diffuse != nil {
		color = color.Add(pt.diffuseContribution(hit, m.Diffuse, sampler, depth))
	}
	if m.Specular != nil {
		color = color.Add(pt.specularContribution(ray, hit, m.Specular, sampler, depth))
	}
	if m.Transmission != nil {
		color = color.Add(pt.transmissionContribution(ray, hit, m.Transmission, sampler, depth))
	}
	return color
}

// diffuseContribution estimates indirect lighting by averaging hemisphere
// samples around the shading normal
func (pt *PathTracer) diffuseContribution(hit geometry.SurfaceHit, diffuse *material.Diffuse, sampler core.Sampler, depth int) core.Vec3 {
	tangent, bitangent := core.BuildOrthonormalBasis(hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(pt.opts.Bias))

	var indirect core.Vec3
	for n := 0; n < pt.opts.DiffuseSamples; n++ {
		r1 := sampler.Get1D()
		r2 := sampler.Get1D()
		local := core.SampleHemisphereUniform(r1, r2)
		direction := core.LocalToWorld(local, hit.Normal, tangent, bitangent)

		incoming := pt.CastRay(core.NewRay(origin, direction), sampler, depth+1)

		// r1 is the cosine of the sampled direction by construction of
		// SampleHemisphereUniform; a different sampling scheme must replace
		// it with direction·normal.
		indirect = indirect.Add(incoming.Multiply(r1 / core.UniformHemispherePDF))
	}

	return indirect.
		Multiply(1.0 / float64(pt.opts.DiffuseSamples)).
		MultiplyVec(diffuse.Albedo)
}

// specularContribution traces the mirror direction and shapes the returned
// radiance with a Phong lobe around the perfect reflection
func (pt *PathTracer) specularContribution(ray core.Ray, hit geometry.SurfaceHit, specular *material.Specular, sampler core.Sampler, depth int) core.Vec3 {
	reflected := material.Reflect(ray.Direction, hit.Normal).Normalize()
	origin := hit.Point.Add(hit.Normal.Multiply(pt.opts.Bias))

	incoming := pt.CastRay(core.NewRay(origin, reflected), sampler, depth+1)

	cosAlpha := math.Max(0, reflected.Dot(ray.Direction.Negate()))
	return incoming.Multiply(specular.Scale * math.Pow(cosAlpha, specular.Shininess))
}

// transmissionContribution blends reflected and refracted radiance with the
// material's fixed reflection ratio. On total internal reflection the
// refracted term vanishes and the reflection carries full weight.
func (pt *PathTracer) transmissionContribution(ray core.Ray, hit geometry.SurfaceHit, transmission *material.Transmission, sampler core.Sampler, depth int) core.Vec3 {
	outside := ray.Direction.Dot(hit.Normal) < 0
	biasVec := hit.Normal.Multiply(pt.opts.Bias)

	reflectOrigin := hit.Point.Add(biasVec)
	refractOrigin := hit.Point.Subtract(biasVec)
	if !outside {
		reflectOrigin, refractOrigin = refractOrigin, reflectOrigin
	}

	reflected := material.Reflect(ray.Direction, hit.Normal).Normalize()
	reflectionColor := pt.CastRay(core.NewRay(reflectOrigin, reflected), sampler, depth+1)

	refracted := material.Refract(ray.Direction, hit.Normal, transmission.RefractiveIndex)
	if refracted.LengthSquared() == 0 {
		return reflectionColor
	}
	refractionColor := pt.CastRay(core.NewRay(refractOrigin, refracted.Normalize()), sampler, depth+1)

	kr := transmission.Ratio
	return reflectionColor.Multiply(kr).Add(refractionColor.Multiply(1 - kr))
}
