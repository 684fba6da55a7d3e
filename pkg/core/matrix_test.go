package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat4_PointVsDirection(t *testing.T) {
	m := NewTranslation(10, 20, 30)

	// Points pick up the translation, directions do not
	assert.Equal(t, NewVec3(11, 22, 33), m.MulPoint(NewVec3(1, 2, 3)))
	assert.Equal(t, NewVec3(1, 2, 3), m.MulDirection(NewVec3(1, 2, 3)))
}

func TestMat4_Identity(t *testing.T) {
	p := NewVec3(1.5, -2.25, 3.75)
	assert.Equal(t, p, IdentityMat4().MulPoint(p))
	assert.Equal(t, p, IdentityMat4().MulDirection(p))
}

func TestMat4_Mul(t *testing.T) {
	scaleThenTranslate := NewScale(2, 2, 2).Mul(NewTranslation(1, 0, 0))
	got := scaleThenTranslate.MulPoint(NewVec3(1, 1, 1))
	assert.InDelta(t, 3, got.X, 1e-12)
	assert.InDelta(t, 2, got.Y, 1e-12)
	assert.InDelta(t, 2, got.Z, 1e-12)
}

func TestNewLookAt(t *testing.T) {
	eye := NewVec3(278, 278, -800)
	target := NewVec3(278, 278, 0)
	m := NewLookAt(eye, target, NewVec3(0, 1, 0))

	// The camera origin maps to the eye position
	assert.InDelta(t, 0, m.MulPoint(NewVec3(0, 0, 0)).Subtract(eye).Length(), 1e-9)

	// The local -Z axis points from the eye toward the target
	forward := m.MulDirection(NewVec3(0, 0, -1)).Normalize()
	toTarget := target.Subtract(eye).Normalize()
	assert.InDelta(t, 0, forward.Subtract(toTarget).Length(), 1e-9)

	// Basis rows stay orthonormal
	right := m.MulDirection(NewVec3(1, 0, 0))
	up := m.MulDirection(NewVec3(0, 1, 0))
	assert.InDelta(t, 1, right.Length(), 1e-9)
	assert.InDelta(t, 1, up.Length(), 1e-9)
	assert.InDelta(t, 0, right.Dot(up), 1e-9)
	assert.InDelta(t, 0, right.Dot(forward), 1e-9)
}

func TestNewLookAt_ObliqueView(t *testing.T) {
	eye := NewVec3(3, 4, 5)
	target := NewVec3(-1, 0, 2)
	m := NewLookAt(eye, target, NewVec3(0, 1, 0))

	forward := m.MulDirection(NewVec3(0, 0, -1)).Normalize()
	toTarget := target.Subtract(eye).Normalize()
	if forward.Subtract(toTarget).Length() > 1e-9 {
		t.Errorf("Expected view direction %v, got %v", toTarget, forward)
	}

	// Up stays in the plane spanned by world up and the view direction
	up := m.MulDirection(NewVec3(0, 1, 0))
	if math.Abs(up.Dot(forward)) > 1e-9 {
		t.Errorf("Up not orthogonal to view direction: dot=%g", up.Dot(forward))
	}
}
