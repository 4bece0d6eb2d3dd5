// SPDX-License-Identifier: EPL-2.0

// Package vec3 provides the 3D vector arithmetic used by the spatialization
// code: positions, orientations and the listener's coordinate frame.
//
// All arithmetic methods use value receivers and return a new Vec. Normalize
// is the only method that mutates its receiver.
package vec3

import "math"

// Vec is a point or direction in 3D space.
type Vec struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns v scaled by s.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the scalar product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the vector product v × o.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// IsZero reports whether all components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Normalize scales v in place to unit length. A zero vector is left as is.
func (v *Vec) Normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}

	v.X /= n
	v.Y /= n
	v.Z /= n
}

// Normalized returns a unit-length copy of v.
func (v Vec) Normalized() Vec {
	v.Normalize()
	return v
}

// AngleBetween returns the angle between a and b in radians, in [0, π].
// It returns 0 when either vector has zero length.
func AngleBetween(a, b Vec) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}

	// rounding can push the cosine slightly outside [-1, 1]
	c := a.Dot(b) / (na * nb)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return math.Acos(c)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
