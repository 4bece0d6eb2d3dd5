// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"fmt"
	"math"

	"github.com/ik5/audgraph/errs"
)

// DistanceModel selects the attenuation curve applied as a source moves away
// from the listener.
type DistanceModel int

const (
	Linear DistanceModel = iota
	Inverse
	Exponential
)

func (m DistanceModel) String() string {
	switch m {
	case Linear:
		return "linear"
	case Inverse:
		return "inverse"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("DistanceModel(%d)", int(m))
	}
}

// ParseDistanceModel maps "linear", "inverse" or "exponential" to its value.
func ParseDistanceModel(s string) (DistanceModel, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "inverse":
		return Inverse, nil
	case "exponential":
		return Exponential, nil
	default:
		return 0, fmt.Errorf("%w: unknown distance model %q", errs.ErrValidation, s)
	}
}

// DistanceParams configures distance attenuation.
type DistanceParams struct {
	Model       DistanceModel
	RefDistance float64
	MaxDistance float64
	Rolloff     float64
	// Clamp keeps the distance from dropping below RefDistance.
	Clamp bool
}

// DefaultDistanceParams returns the inverse model with reference distance
// 1, maximum distance 10000, rolloff 1 and clamping on.
func DefaultDistanceParams() DistanceParams {
	return DistanceParams{
		Model:       Inverse,
		RefDistance: 1,
		MaxDistance: 10000,
		Rolloff:     1,
		Clamp:       true,
	}
}

// Gain returns the attenuation for a source at distance d. A model whose
// formula would divide by zero for these parameters yields unity gain.
func (p DistanceParams) Gain(d float64) (float64, error) {
	d = min(d, p.MaxDistance)
	if p.Clamp {
		d = max(d, p.RefDistance)
	}

	ref, rolloff := p.RefDistance, p.Rolloff

	switch p.Model {
	case Linear:
		span := p.MaxDistance - ref
		if span == 0 {
			return 1, nil
		}

		return 1 - rolloff*(d-ref)/span, nil

	case Inverse:
		den := ref + rolloff*(d-ref)
		if den == 0 {
			return 1, nil
		}

		return ref / den, nil

	case Exponential:
		if ref == 0 {
			return 1, nil
		}

		return math.Pow(d/ref, -rolloff), nil

	default:
		return 0, fmt.Errorf("%w: unknown distance model %d", errs.ErrValidation, int(p.Model))
	}
}
