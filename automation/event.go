// SPDX-License-Identifier: EPL-2.0

package automation

import (
	"fmt"
	"math"
)

// EventKind tags the formula an automation event applies.
type EventKind int

const (
	SetValue EventKind = iota
	LinearRamp
	ExponentialRamp
	SetTarget
	SetValueCurve
)

func (k EventKind) String() string {
	switch k {
	case SetValue:
		return "setValue"
	case LinearRamp:
		return "linearRamp"
	case ExponentialRamp:
		return "exponentialRamp"
	case SetTarget:
		return "setTarget"
	case SetValueCurve:
		return "setValueCurve"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one scheduled change of a parameter.
//
// Time is when the event takes effect. For the two ramps it is the time the
// ramp reaches Value; the ramp itself starts at the end of the preceding
// event. For SetValueCurve it is the curve's start time.
type Event struct {
	Kind         EventKind
	Time         float64
	Value        float64
	TimeConstant float64   // SetTarget only
	Curve        []float64 // SetValueCurve only
	Duration     float64   // SetValueCurve only

	// clock time and intrinsic value when the event was scheduled; the start
	// point for an event that ends up with no predecessor
	startTime  float64
	startValue float64
}

// At implements schedule.Timed.
func (e Event) At() float64 { return e.Time }

// end returns the time the event stops changing the value.
func (e Event) end() float64 {
	if e.Kind == SetValueCurve {
		return e.Time + e.Duration
	}

	return e.Time
}

// endValue returns the value held once the event has finished. Not
// meaningful for SetTarget, which never finishes.
func (e Event) endValue() float64 {
	if e.Kind == SetValueCurve {
		return e.Curve[len(e.Curve)-1]
	}

	return e.Value
}

func (e Event) isRamp() bool {
	return e.Kind == LinearRamp || e.Kind == ExponentialRamp
}

// rampValue evaluates a ramp from (t0, v0) to (e.Time, e.Value) at t.
func rampValue(e Event, t0, v0, t float64) float64 {
	t1, v1 := e.Time, e.Value
	if t >= t1 || t1 <= t0 {
		return v1
	}

	x := (t - t0) / (t1 - t0)
	if x < 0 {
		x = 0
	}

	if e.Kind == ExponentialRamp {
		// undefined across or from zero: hold the start value until t1
		if v0*v1 <= 0 {
			return v0
		}

		return v0 * math.Pow(v1/v0, x)
	}

	return v0 + (v1-v0)*x
}

// targetValue evaluates an exponential approach to e.Value starting from v0
// at e.Time.
func targetValue(e Event, v0, t float64) float64 {
	if e.TimeConstant == 0 {
		return e.Value
	}

	return e.Value + (v0-e.Value)*math.Exp(-(t-e.Time)/e.TimeConstant)
}

// curveValue picks the curve point whose nominal time is nearest to t.
func curveValue(e Event, t float64) float64 {
	n := len(e.Curve)
	if t >= e.Time+e.Duration {
		return e.Curve[n-1]
	}

	pos := (t - e.Time) / e.Duration * float64(n-1)
	k := int(math.Floor(pos + 0.5))
	k = max(0, min(k, n-1))

	return e.Curve[k]
}
