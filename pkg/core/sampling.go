package core

import (
	"math"
	"math/rand"
)

// UniformHemispherePDF is the solid-angle density of directions drawn by
// SampleHemisphereUniform, used as the Monte Carlo divisor in the diffuse
// estimator.
const UniformHemispherePDF = 1.0 / (2.0 * math.Pi)

// Sampler provides uniform [0,1) random numbers for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// BuildOrthonormalBasis constructs two unit vectors orthogonal to a unit
// normal and to each other. The construction branch is chosen by comparing
// |normal.X| and |normal.Y| so the divisor never degenerates when the normal
// is near-parallel to a coordinate axis. The caller must guarantee the
// normal is non-zero.
func BuildOrthonormalBasis(normal Vec3) (tangent, bitangent Vec3) {
	if math.Abs(normal.X) > math.Abs(normal.Y) {
		invLen := 1.0 / math.Sqrt(normal.X*normal.X+normal.Z*normal.Z)
		tangent = NewVec3(normal.Z*invLen, 0, -normal.X*invLen)
	} else {
		invLen := 1.0 / math.Sqrt(normal.Y*normal.Y+normal.Z*normal.Z)
		tangent = NewVec3(0, -normal.Z*invLen, normal.Y*invLen)
	}
	bitangent = normal.Cross(tangent)
	return tangent, bitangent
}

// SampleHemisphereUniform maps two uniform samples in [0,1) to a direction
// uniformly distributed over the local hemisphere around the +Y axis. The Y
// component of the result is r1 itself, so r1 doubles as cos(θ) of the
// sampled direction; the diffuse estimator relies on that identity for its
// cosine weight.
func SampleHemisphereUniform(r1, r2 float64) Vec3 {
	sinTheta := math.Sqrt(1 - r1*r1)
	phi := 2 * math.Pi * r2
	return NewVec3(sinTheta*math.Cos(phi), r1, sinTheta*math.Sin(phi))
}

// LocalToWorld maps a local hemisphere sample into world space using the
// basis (bitangent, normal, tangent) for the local (X, Y, Z) axes
func LocalToWorld(local, normal, tangent, bitangent Vec3) Vec3 {
	return bitangent.Multiply(local.X).
		Add(normal.Multiply(local.Y)).
		Add(tangent.Multiply(local.Z))
}
