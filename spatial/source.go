// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"fmt"
	"math"

	"github.com/ik5/audgraph/errs"
	"github.com/ik5/audgraph/vec3"
)

// PanningModel selects the panning algorithm. Only EqualPower is rendered;
// HRTF is recognized so that asking for it fails with errs.ErrNotSupported.
type PanningModel int

const (
	EqualPower PanningModel = iota
	HRTF
)

func (m PanningModel) String() string {
	switch m {
	case EqualPower:
		return "equalpower"
	case HRTF:
		return "HRTF"
	default:
		return fmt.Sprintf("PanningModel(%d)", int(m))
	}
}

// ParsePanningModel maps "equalpower" or "HRTF" to its value.
func ParsePanningModel(s string) (PanningModel, error) {
	switch s {
	case "equalpower":
		return EqualPower, nil
	case "HRTF":
		return HRTF, nil
	default:
		return 0, fmt.Errorf("%w: unknown panning model %q", errs.ErrValidation, s)
	}
}

// Source is the spatial state of one panned sound: where it is, where it
// faces and how it is attenuated. Every setter validates all of its
// arguments before changing anything.
type Source struct {
	position    vec3.Vec
	orientation vec3.Vec
	velocity    vec3.Vec
	distance    DistanceParams
	cone        ConeParams
	panning     PanningModel
}

// NewSource returns a source at the origin facing +X with the default
// distance and cone parameters.
func NewSource() *Source {
	return &Source{
		orientation: vec3.New(1, 0, 0),
		distance:    DefaultDistanceParams(),
		cone:        DefaultConeParams(),
		panning:     EqualPower,
	}
}

func (s *Source) Position() vec3.Vec           { return s.position }
func (s *Source) Orientation() vec3.Vec        { return s.orientation }
func (s *Source) Velocity() vec3.Vec           { return s.velocity }
func (s *Source) Distance() DistanceParams     { return s.distance }
func (s *Source) Cone() ConeParams             { return s.cone }
func (s *Source) PanningModel() PanningModel   { return s.panning }
func (s *Source) DistanceModel() DistanceModel { return s.distance.Model }
func (s *Source) RefDistance() float64         { return s.distance.RefDistance }
func (s *Source) MaxDistance() float64         { return s.distance.MaxDistance }
func (s *Source) RolloffFactor() float64       { return s.distance.Rolloff }
func (s *Source) ConeInnerAngle() float64      { return s.cone.InnerAngle }
func (s *Source) ConeOuterAngle() float64      { return s.cone.OuterAngle }
func (s *Source) ConeOuterGain() float64       { return s.cone.OuterGain }

func (s *Source) SetPosition(x, y, z float64) error {
	v, err := finiteVec("source position", x, y, z)
	if err != nil {
		return err
	}

	s.position = v
	return nil
}

func (s *Source) SetOrientation(x, y, z float64) error {
	v, err := finiteVec("source orientation", x, y, z)
	if err != nil {
		return err
	}

	s.orientation = v
	return nil
}

func (s *Source) SetVelocity(x, y, z float64) error {
	v, err := finiteVec("source velocity", x, y, z)
	if err != nil {
		return err
	}

	s.velocity = v
	return nil
}

func (s *Source) SetDistanceModel(m DistanceModel) error {
	if m != Linear && m != Inverse && m != Exponential {
		return fmt.Errorf("%w: unknown distance model %d", errs.ErrValidation, int(m))
	}

	s.distance.Model = m
	return nil
}

// SetPanningModel accepts EqualPower. HRTF fails with errs.ErrNotSupported.
func (s *Source) SetPanningModel(m PanningModel) error {
	switch m {
	case EqualPower:
		s.panning = m
		return nil
	case HRTF:
		return fmt.Errorf("%w: panning model %s", errs.ErrNotSupported, m)
	default:
		return fmt.Errorf("%w: unknown panning model %d", errs.ErrValidation, int(m))
	}
}

// SetRefDistance requires a finite, non-negative distance.
func (s *Source) SetRefDistance(d float64) error {
	if err := finite("ref distance", d); err != nil {
		return err
	}

	if d < 0 {
		return fmt.Errorf("%w: negative ref distance %v", errs.ErrState, d)
	}

	s.distance.RefDistance = d
	return nil
}

// SetMaxDistance requires a finite, positive distance.
func (s *Source) SetMaxDistance(d float64) error {
	if err := finite("max distance", d); err != nil {
		return err
	}

	if d <= 0 {
		return fmt.Errorf("%w: non-positive max distance %v", errs.ErrState, d)
	}

	s.distance.MaxDistance = d
	return nil
}

// SetRolloffFactor requires a finite, non-negative factor.
func (s *Source) SetRolloffFactor(f float64) error {
	if err := finite("rolloff factor", f); err != nil {
		return err
	}

	if f < 0 {
		return fmt.Errorf("%w: negative rolloff factor %v", errs.ErrState, f)
	}

	s.distance.Rolloff = f
	return nil
}

// SetDistanceClamp turns clamping of the distance to RefDistance on or off.
func (s *Source) SetDistanceClamp(on bool) {
	s.distance.Clamp = on
}

// SetConeInnerAngle stores a in degrees, normalized into [0, 360].
func (s *Source) SetConeInnerAngle(a float64) error {
	if err := finite("cone inner angle", a); err != nil {
		return err
	}

	s.cone.InnerAngle = normalizeAngle(a)
	return nil
}

// SetConeOuterAngle stores a in degrees, normalized into [0, 360].
func (s *Source) SetConeOuterAngle(a float64) error {
	if err := finite("cone outer angle", a); err != nil {
		return err
	}

	s.cone.OuterAngle = normalizeAngle(a)
	return nil
}

// SetConeOuterGain requires g in [0, 1]; other finite values fail with
// errs.ErrState.
func (s *Source) SetConeOuterGain(g float64) error {
	if err := finite("cone outer gain", g); err != nil {
		return err
	}

	if g < 0 || g > 1 {
		return fmt.Errorf("%w: cone outer gain %v outside [0, 1]", errs.ErrState, g)
	}

	s.cone.OuterGain = g
	return nil
}

// AzimuthElevation locates the source relative to l.
func (s *Source) AzimuthElevation(l ListenerView) (float64, float64) {
	return AzimuthElevation(s.position, l.Position(), l.Front(), l.Up())
}

// Gains returns the distance and cone attenuation for the source as heard by
// l.
func (s *Source) Gains(l ListenerView) (distanceGain, coneGain float64, err error) {
	d := s.position.Sub(l.Position()).Norm()

	distanceGain, err = s.distance.Gain(d)
	if err != nil {
		return 0, 0, err
	}

	coneGain = s.cone.Gain(s.position, s.orientation, l.Position())

	return distanceGain, coneGain, nil
}

// normalizeAngle maps a into [0, 360]; nonzero multiples of 360 map to 360.
func normalizeAngle(a float64) float64 {
	m := math.Mod(a, 360)
	if m < 0 {
		m += 360
	}

	if m == 0 && a != 0 {
		return 360
	}

	return m
}

func finite(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: non-finite %s %v", errs.ErrValidation, what, v)
	}

	return nil
}
