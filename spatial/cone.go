// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"math"

	"github.com/ik5/audgraph/vec3"
)

// ConeParams describes a directional source. Angles are full cone widths in
// degrees; a source is attenuated by OuterGain outside the outer cone.
type ConeParams struct {
	InnerAngle float64
	OuterAngle float64
	OuterGain  float64
}

// DefaultConeParams returns an omnidirectional cone.
func DefaultConeParams() ConeParams {
	return ConeParams{InnerAngle: 360, OuterAngle: 360, OuterGain: 0}
}

// Gain returns the attenuation for a listener at listenerPos hearing a source
// at sourcePos facing orientation.
func (c ConeParams) Gain(sourcePos, orientation, listenerPos vec3.Vec) float64 {
	if orientation.IsZero() || (c.InnerAngle == 360 && c.OuterAngle == 360) {
		return 1
	}

	toListener := listenerPos.Sub(sourcePos)
	angle := math.Abs(vec3.AngleBetween(toListener, orientation) * 180 / math.Pi)

	halfInner := c.InnerAngle / 2
	halfOuter := c.OuterAngle / 2

	switch {
	case angle <= halfInner:
		return 1
	case angle >= halfOuter:
		return c.OuterGain
	}

	x := (angle - halfInner) / (halfOuter - halfInner)

	return (1 - x) + c.OuterGain*x
}
