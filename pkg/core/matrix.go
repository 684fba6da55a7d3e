package core

// Mat4 is a 4x4 affine transform, row-major, applied to row vectors
// (p' = p * M, translation in the fourth row). Points and directions
// transform differently: directions ignore the translation row.
type Mat4 struct {
	M [4][4]float64
}

// IdentityMat4 returns the identity transform
func IdentityMat4() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// NewTranslation returns a transform that translates by (x, y, z)
func NewTranslation(x, y, z float64) Mat4 {
	m := IdentityMat4()
	m.M[3][0] = x
	m.M[3][1] = y
	m.M[3][2] = z
	return m
}

// NewScale returns a transform that scales by (x, y, z)
func NewScale(x, y, z float64) Mat4 {
	m := IdentityMat4()
	m.M[0][0] = x
	m.M[1][1] = y
	m.M[2][2] = z
	return m
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[r][k] * other.M[k][c]
			}
			result.M[r][c] = sum
		}
	}
	return result
}

// MulPoint transforms a point, applying rotation, scale and translation.
// The result is divided by w to support projective transforms.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	x := p.X*m.M[0][0] + p.Y*m.M[1][0] + p.Z*m.M[2][0] + m.M[3][0]
	y := p.X*m.M[0][1] + p.Y*m.M[1][1] + p.Z*m.M[2][1] + m.M[3][1]
	z := p.X*m.M[0][2] + p.Y*m.M[1][2] + p.Z*m.M[2][2] + m.M[3][2]
	w := p.X*m.M[0][3] + p.Y*m.M[1][3] + p.Z*m.M[2][3] + m.M[3][3]
	if w != 1 && w != 0 {
		return Vec3{X: x / w, Y: y / w, Z: z / w}
	}
	return Vec3{X: x, Y: y, Z: z}
}

// MulDirection transforms a direction, ignoring the translation row
func (m Mat4) MulDirection(d Vec3) Vec3 {
	return Vec3{
		X: d.X*m.M[0][0] + d.Y*m.M[1][0] + d.Z*m.M[2][0],
		Y: d.X*m.M[0][1] + d.Y*m.M[1][1] + d.Z*m.M[2][1],
		Z: d.X*m.M[0][2] + d.Y*m.M[1][2] + d.Z*m.M[2][2],
	}
}

// NewLookAt builds a camera-to-world transform for a camera at eye looking
// toward target. The camera looks down its local -Z axis, so the transform's
// forward row points from target back to eye.
func NewLookAt(eye, target, up Vec3) Mat4 {
	forward := eye.Subtract(target).Normalize()
	right := up.Normalize().Cross(forward).Normalize()
	newUp := forward.Cross(right)

	return Mat4{M: [4][4]float64{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{eye.X, eye.Y, eye.Z, 1},
	}}
}
