package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrthonormalBasis(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, 1),
		NewVec3(0, -1, 0),
		NewVec3(1, 1, 1).Normalize(),
		NewVec3(-0.3, 0.9, 0.2).Normalize(),
		NewVec3(0.999, 0.001, 0.04).Normalize(), // near-parallel to X
		NewVec3(0.001, 0.999, 0.04).Normalize(), // near-parallel to Y
		NewVec3(0.001, 0.002, 0.999).Normalize(),
	}

	const tolerance = 1e-5
	for _, normal := range normals {
		tangent, bitangent := BuildOrthonormalBasis(normal)

		assert.InDelta(t, 1, tangent.Length(), tolerance, "tangent length for %v", normal)
		assert.InDelta(t, 1, bitangent.Length(), tolerance, "bitangent length for %v", normal)
		assert.InDelta(t, 0, tangent.Dot(normal), tolerance, "tangent·normal for %v", normal)
		assert.InDelta(t, 0, bitangent.Dot(normal), tolerance, "bitangent·normal for %v", normal)
		assert.InDelta(t, 0, tangent.Dot(bitangent), tolerance, "tangent·bitangent for %v", normal)
	}
}

func TestSampleHemisphereUniform(t *testing.T) {
	// Sweep a grid of (r1, r2) pairs over [0,1)²
	for r1 := 0.0; r1 < 1.0; r1 += 0.099 {
		for r2 := 0.0; r2 < 1.0; r2 += 0.099 {
			sample := SampleHemisphereUniform(r1, r2)

			assert.InDelta(t, 1, sample.Length(), 1e-9, "length for r1=%f r2=%f", r1, r2)
			assert.GreaterOrEqual(t, sample.Y, 0.0, "up component for r1=%f r2=%f", r1, r2)

			// The up component is the raw cosine sample itself; the diffuse
			// estimator's weight depends on this identity.
			assert.Equal(t, r1, sample.Y, "cosine identity for r1=%f", r1)
		}
	}
}

func TestSampleHemisphereUniform_Pole(t *testing.T) {
	sample := SampleHemisphereUniform(1, 0.37)
	assert.InDelta(t, 0, sample.Subtract(NewVec3(0, 1, 0)).Length(), 1e-7)
}

func TestLocalToWorld_RecoversBasis(t *testing.T) {
	normal := NewVec3(0.3, -0.8, 0.52).Normalize()
	tangent, bitangent := BuildOrthonormalBasis(normal)

	// Local +Y maps to the normal, local X/Z map to the basis vectors
	assert.InDelta(t, 0, LocalToWorld(NewVec3(0, 1, 0), normal, tangent, bitangent).Subtract(normal).Length(), 1e-12)
	assert.InDelta(t, 0, LocalToWorld(NewVec3(1, 0, 0), normal, tangent, bitangent).Subtract(bitangent).Length(), 1e-12)
	assert.InDelta(t, 0, LocalToWorld(NewVec3(0, 0, 1), normal, tangent, bitangent).Subtract(tangent).Length(), 1e-12)

	// Unit local samples stay unit length in world space
	sample := SampleHemisphereUniform(0.42, 0.77)
	world := LocalToWorld(sample, normal, tangent, bitangent)
	assert.InDelta(t, 1, world.Length(), 1e-9)
	assert.InDelta(t, sample.Y, world.Dot(normal), 1e-9)
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		va, vb := a.Get1D(), b.Get1D()
		if va != vb {
			t.Fatalf("Samplers diverged at draw %d: %f != %f", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Sample %f outside [0,1)", va)
		}
	}
}
