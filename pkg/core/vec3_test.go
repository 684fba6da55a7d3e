package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	const tolerance = 1e-9
	checks := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Clamp", b.Clamp(0, 1), NewVec3(1, 0, 1)},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); math.Abs(got-12) > 1e-9 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := NewVec3(3, 4, 0).Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := a.LengthSquared(); math.Abs(got-14) > 1e-9 {
		t.Errorf("Expected length squared 14, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, -4, 12).Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// Zero vector normalizes to zero rather than NaN
	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	got := ray.At(1.5)
	expected := NewVec3(1, 3, 0)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
