// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"fmt"
	"math"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/errs"
)

// smoothingTime is the time constant of the gain de-zippering, in seconds.
const smoothingTime = 0.05

// SmoothingCoefficient returns the per-sample one-pole coefficient for a
// 50 ms time constant at sampleRate.
func SmoothingCoefficient(sampleRate float64) float64 {
	return 1 - math.Exp(-1/(sampleRate*smoothingTime))
}

// EqualPowerPanner places a mono or stereo signal in a stereo field with the
// equal-power law. It keeps the current left and right gains between calls
// and glides them toward each new position.
type EqualPowerPanner struct {
	coeff        float64
	gainL, gainR float64
	primed       bool
}

// NewEqualPowerPanner returns a panner in the reset state.
func NewEqualPowerPanner(sampleRate float64) *EqualPowerPanner {
	return &EqualPowerPanner{coeff: SmoothingCoefficient(sampleRate)}
}

// Reset makes the next Pan jump straight to its target gains.
func (p *EqualPowerPanner) Reset() {
	p.primed = false
	p.gainL, p.gainR = 0, 0
}

// Gains returns the current left and right gains.
func (p *EqualPowerPanner) Gains() (float64, float64) {
	return p.gainL, p.gainR
}

// Pan writes in, panned to azimuth degrees, into the stereo block out.
// Elevation is accepted for symmetry with AzimuthElevation but not used.
func (p *EqualPowerPanner) Pan(azimuth, elevation float64, in, out *audio.Block) error {
	_ = elevation

	if in.Channels() > 2 || out.Channels() != 2 {
		return fmt.Errorf("%w: equal-power pan of %d channels into %d", errs.ErrNotSupported, in.Channels(), out.Channels())
	}

	if in.Frames() != out.Frames() {
		return fmt.Errorf("%w: frame count mismatch %d != %d", errs.ErrValidation, in.Frames(), out.Frames())
	}

	azimuth = max(-180, min(azimuth, 180))

	// fold the rear hemisphere onto the front
	if azimuth < -90 {
		azimuth = -180 - azimuth
	} else if azimuth > 90 {
		azimuth = 180 - azimuth
	}

	mono := in.Channels() == 1

	var pos float64
	switch {
	case mono:
		pos = (azimuth + 90) / 180
	case azimuth <= 0:
		pos = (azimuth + 90) / 90
	default:
		pos = azimuth / 90
	}

	wantL := math.Cos(pos * math.Pi / 2)
	wantR := math.Sin(pos * math.Pi / 2)

	if !p.primed {
		p.gainL, p.gainR = wantL, wantR
		p.primed = true
	}

	outL, outR := out.Channel(0), out.Channel(1)
	inL := in.Channel(0)
	inR := inL
	if !mono {
		inR = in.Channel(1)
	}

	for i := range outL {
		p.gainL += (wantL - p.gainL) * p.coeff
		p.gainR += (wantR - p.gainR) * p.coeff

		switch {
		case mono:
			outL[i] = inL[i] * p.gainL
			outR[i] = inL[i] * p.gainR
		case azimuth <= 0:
			outL[i] = inL[i] + inR[i]*p.gainL
			outR[i] = inR[i] * p.gainR
		default:
			outL[i] = inL[i] * p.gainL
			outR[i] = inR[i] + inL[i]*p.gainR
		}
	}

	return nil
}
