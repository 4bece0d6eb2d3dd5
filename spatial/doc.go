// SPDX-License-Identifier: EPL-2.0

// Package spatial computes how a positioned source sounds to a listener.
//
// The package is pure math plus two small state records:
//   - DistanceParams.Gain: linear, inverse and exponential attenuation
//   - ConeParams.Gain: directional attenuation of a source facing away
//   - AzimuthElevation: the source direction in the listener's frame
//   - EqualPowerPanner: stereo placement with 50 ms gain de-zippering
//   - Listener and Source: validated position and orientation state
//
// Coordinates follow the usual right-handed convention: the default listener
// sits at the origin facing -Z with +Y up, so +X is to its right.
//
//	l := spatial.NewListener()
//	src := spatial.NewSource()
//	_ = src.SetPosition(3, 0, 0)
//	az, el := src.AzimuthElevation(l) // 90, 0
//	dist, cone, _ := src.Gains(l)     // 1/3, 1
//
// Setters return errs.ErrValidation for non-finite input, errs.ErrState for
// finite values outside a property's range and errs.ErrNotSupported for the
// HRTF panning model.
package spatial
