package sphere

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Mat3 is a 3x3 matrix in row-major order.
// Layout: [m0 m1 m2]
//
//	[m3 m4 m5]
//	[m6 m7 m8]
type Mat3 [9]float64

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotX returns a rotation matrix around the X axis. angle is in radians.
func RotX(angle float64) Mat3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a rotation matrix around the Y axis. angle is in radians.
func RotY(angle float64) Mat3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a rotation matrix around the Z axis. angle is in radians.
func RotZ(angle float64) Mat3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = m[row*3]*other[col] +
				m[row*3+1]*other[3+col] +
				m[row*3+2]*other[6+col]
		}
	}
	return out
}

// Transpose returns the transposed matrix. For a rotation matrix this is
// the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Apply transforms a vector by this matrix.
func (m Mat3) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// EulerZYX builds the rotation matrix Rx(gamma)*Ry(beta)*Rz(alpha): the
// vector is rotated around Z by alpha first, then around Y by beta, then
// around X by gamma. Angles are in radians.
func EulerZYX(alpha, beta, gamma float64) Mat3 {
	return RotX(gamma).Mul(RotY(beta)).Mul(RotZ(alpha))
}

// Rotation is a rigid rotation of the sphere built from three Euler angles.
// The zero value is not meaningful; use NewRotation.
type Rotation struct {
	m Mat3
}

// NewRotation builds a Rotation from Euler angles applied around Z, Y and X
// in that order.
func NewRotation(alpha, beta, gamma s1.Angle) Rotation {
	return Rotation{m: EulerZYX(alpha.Radians(), beta.Radians(), gamma.Radians())}
}

// Inverse returns the reverse rotation. Rotation matrices are orthogonal,
// so the inverse is the transpose; equivalently the matrix rebuilt with all
// three angles negated and the multiplication order reversed.
func (r Rotation) Inverse() Rotation {
	return Rotation{m: r.m.Transpose()}
}

// Matrix returns the underlying 3x3 matrix.
func (r Rotation) Matrix() Mat3 {
	return r.m
}

// Apply rotates a single vector.
func (r Rotation) Apply(v r3.Vector) r3.Vector {
	return r.m.Apply(v)
}

// RotateAngles rotates a (latitude, longitude) pair in radians through the
// vector representation and back.
func (r Rotation) RotateAngles(lat, lon float64) (float64, float64) {
	return ToAngles(r.Apply(FromAngles(lat, lon)))
}

// RotateAnglesDegrees is RotateAngles with the degree convention applied at
// the angle boundary.
func (r Rotation) RotateAnglesDegrees(lat, lon float64) (float64, float64) {
	rlat, rlon := r.RotateAngles(DegToRad(lat), DegToRad(lon))
	return RadToDeg(rlat), RadToDeg(rlon)
}

// RotateAllDegrees rotates parallel latitude/longitude slices in place,
// in degrees. Elements are independent; no ordering is implied.
func (r Rotation) RotateAllDegrees(lat, lon []float64) {
	n := len(lat)
	if len(lon) < n {
		n = len(lon)
	}
	for i := 0; i < n; i++ {
		lat[i], lon[i] = r.RotateAnglesDegrees(lat[i], lon[i])
	}
}
