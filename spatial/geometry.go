// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"math"

	"github.com/ik5/audgraph/vec3"
)

// AzimuthElevation returns the direction of sourcePos as heard by a listener
// at listenerPos with the given front and up vectors, in degrees.
//
// Azimuth is 0 straight ahead, positive to the right, negative to the left
// and ±180 behind. Elevation is in [-90, 90], positive above. A source at the
// listener's position is at (0, 0).
func AzimuthElevation(sourcePos, listenerPos, front, up vec3.Vec) (azimuth, elevation float64) {
	s := sourcePos.Sub(listenerPos)
	if s.IsZero() {
		return 0, 0
	}
	s.Normalize()

	f := front.Normalized()
	right := front.Cross(up).Normalized()
	upP := right.Cross(f)

	// projection onto the listener's horizontal plane
	p := s.Sub(upP.Mul(s.Dot(upP)))

	azimuth = degrees(vec3.AngleBetween(p, right))
	if p.Dot(f) < 0 {
		azimuth = 360 - azimuth
	}

	// measured from the right so far; rotate to measure from the front
	if azimuth >= 0 && azimuth <= 270 {
		azimuth = 90 - azimuth
	} else {
		azimuth = 450 - azimuth
	}

	elevation = 90 - degrees(vec3.AngleBetween(s, upP))
	if elevation > 90 {
		elevation = 180 - elevation
	} else if elevation < -90 {
		elevation = -180 - elevation
	}

	return azimuth, elevation
}

func degrees(rad float64) float64 {
	d := rad * 180 / math.Pi
	if math.IsNaN(d) {
		return 0
	}

	return d
}
