// Package material defines surface materials as a set of optional shading
// capabilities. A surface may combine several; their contributions are
// additive, not mutually exclusive.
package material

import "github.com/atkvist/go-path-tracer/pkg/core"

// Emission makes a surface self-luminous. An emissive hit terminates the
// light path: the shader returns Scale times the surface color and never
// recurses.
type Emission struct {
	Scale float64 // Emission scale (ka)
}

// Diffuse adds an indirect, stochastically sampled contribution
type Diffuse struct {
	Albedo core.Vec3 // Diffuse albedo (kd)
}

// Specular adds a mirror-reflection contribution shaped by a Phong lobe
type Specular struct {
	Scale     float64 // Specular scale (ks)
	Shininess float64 // Phong lobe exponent (Ns)
}

// Transmission adds a reflection/refraction mix. Ratio is the fixed blend
// weight for the reflected term; the refracted term gets 1-Ratio. It is a
// per-material constant, not an angle-dependent Fresnel coefficient.
type Transmission struct {
	RefractiveIndex float64 // Index of refraction (Ni), e.g. 1.5 for glass
	Ratio           float64 // Reflection weight in the blend (Tr)
}

// Material bundles the optional shading capabilities of a surface. A nil
// component means that contribution is absent. Materials are immutable once
// built and shared across all hits of the objects that reference them.
type Material struct {
	Name         string
	Emission     *Emission
	Diffuse      *Diffuse
	Specular     *Specular
	Transmission *Transmission
}

// NewEmissive creates a self-luminous material
func NewEmissive(scale float64) *Material {
	return &Material{Emission: &Emission{Scale: scale}}
}

// NewDiffuse creates a purely diffuse material
func NewDiffuse(albedo core.Vec3) *Material {
	return &Material{Diffuse: &Diffuse{Albedo: albedo}}
}

// NewSpecular creates a purely specular (mirror) material
func NewSpecular(scale, shininess float64) *Material {
	return &Material{Specular: &Specular{Scale: scale, Shininess: shininess}}
}

// NewTransparent creates a reflective/refractive material with a fixed
// reflection ratio
func NewTransparent(refractiveIndex, ratio float64) *Material {
	return &Material{Transmission: &Transmission{
		RefractiveIndex: refractiveIndex,
		Ratio:           ratio,
	}}
}
