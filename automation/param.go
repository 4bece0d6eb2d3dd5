// SPDX-License-Identifier: EPL-2.0

package automation

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/errs"
	"github.com/ik5/audgraph/schedule"
)

// Clock is the render context as seen by a parameter.
type Clock interface {
	CurrentTime() float64
	SampleRate() float64
	BlockSize() int
}

// Renderer produces one block per render call. Node outputs connected to a
// parameter implement it.
type Renderer interface {
	Render() (*audio.Block, error)
}

// Rate selects how often a parameter is evaluated within a block.
type Rate int

const (
	// SampleAccurate evaluates the automation at every sample (a-rate).
	SampleAccurate Rate = iota
	// BlockAccurate evaluates once at the block start (k-rate).
	BlockAccurate
)

func (r Rate) String() string {
	switch r {
	case SampleAccurate:
		return "a-rate"
	case BlockAccurate:
		return "k-rate"
	default:
		return fmt.Sprintf("Rate(%d)", int(r))
	}
}

// Param is a scalar control signal with a time-ordered automation list.
type Param struct {
	name         string
	clock        Clock
	defaultValue float64
	value        float64
	rate         Rate
	events       schedule.Timeline[Event]
	inputs       []Renderer
}

// New returns a parameter holding defaultValue with no automation.
func New(clock Clock, name string, defaultValue float64, rate Rate) *Param {
	return &Param{
		name:         name,
		clock:        clock,
		defaultValue: defaultValue,
		value:        defaultValue,
		rate:         rate,
	}
}

func (p *Param) Name() string          { return p.name }
func (p *Param) DefaultValue() float64 { return p.defaultValue }
func (p *Param) Rate() Rate            { return p.rate }

// Value returns the intrinsic value: the last value the parameter held.
func (p *Param) Value() float64 { return p.value }

// PendingEvents returns the number of events in the automation list.
func (p *Param) PendingEvents() int { return p.events.Len() }

// Events returns a copy of the automation list in time order.
func (p *Param) Events() []Event { return p.events.Events() }

// SetRate switches between sample- and block-accurate evaluation.
func (p *Param) SetRate(r Rate) error {
	if r != SampleAccurate && r != BlockAccurate {
		return fmt.Errorf("%w: %s: unknown rate %d", errs.ErrValidation, p.name, int(r))
	}

	p.rate = r
	return nil
}

// SetValue cancels every pending event and holds v from now on.
func (p *Param) SetValue(v float64) error {
	if err := p.checkFinite("value", v); err != nil {
		return err
	}

	p.events.Clear()
	p.value = v

	return nil
}

func (p *Param) SetValueAtTime(v, t float64) error {
	if err := p.checkFinite("value", v); err != nil {
		return err
	}

	if err := p.checkTime(t); err != nil {
		return err
	}

	return p.insert(Event{Kind: SetValue, Time: t, Value: v})
}

func (p *Param) LinearRampToValueAtTime(v, endTime float64) error {
	if err := p.checkFinite("value", v); err != nil {
		return err
	}

	if err := p.checkTime(endTime); err != nil {
		return err
	}

	return p.insert(Event{Kind: LinearRamp, Time: endTime, Value: v})
}

// ExponentialRampToValueAtTime fails with errs.ErrMathDomain when the
// intrinsic value or v is not positive.
func (p *Param) ExponentialRampToValueAtTime(v, endTime float64) error {
	if err := p.checkFinite("value", v); err != nil {
		return err
	}

	if err := p.checkTime(endTime); err != nil {
		return err
	}

	if v <= 0 || p.value <= 0 {
		return fmt.Errorf("%w: %s: exponential ramp from %v to %v", errs.ErrMathDomain, p.name, p.value, v)
	}

	return p.insert(Event{Kind: ExponentialRamp, Time: endTime, Value: v})
}

// SetTargetAtTime approaches target exponentially from startTime on. A time
// constant of zero jumps straight to target.
func (p *Param) SetTargetAtTime(target, startTime, timeConstant float64) error {
	if err := p.checkFinite("target", target); err != nil {
		return err
	}

	if err := p.checkTime(startTime); err != nil {
		return err
	}

	if err := p.checkFinite("time constant", timeConstant); err != nil {
		return err
	}

	if timeConstant < 0 {
		return fmt.Errorf("%w: %s: negative time constant %v", errs.ErrValidation, p.name, timeConstant)
	}

	return p.insert(Event{Kind: SetTarget, Time: startTime, Value: target, TimeConstant: timeConstant})
}

// SetValueCurveAtTime spreads points evenly over [startTime,
// startTime+duration]. The points are copied.
func (p *Param) SetValueCurveAtTime(points []float64, startTime, duration float64) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: %s: value curve needs at least 2 points, got %d", errs.ErrValidation, p.name, len(points))
	}

	for i, v := range points {
		if err := p.checkFinite(fmt.Sprintf("curve point %d", i), v); err != nil {
			return err
		}
	}

	if err := p.checkTime(startTime); err != nil {
		return err
	}

	if err := p.checkFinite("duration", duration); err != nil {
		return err
	}

	if duration <= 0 {
		return fmt.Errorf("%w: %s: non-positive curve duration %v", errs.ErrValidation, p.name, duration)
	}

	return p.insert(Event{
		Kind:     SetValueCurve,
		Time:     startTime,
		Value:    points[len(points)-1],
		Curve:    slices.Clone(points),
		Duration: duration,
	})
}

// CancelScheduledValues removes every event scheduled at or after t.
func (p *Param) CancelScheduledValues(t float64) error {
	if err := p.checkTime(t); err != nil {
		return err
	}

	p.events.CancelFrom(t)
	return nil
}

// AddInput sums r's output into the parameter on every render. Adding the
// same input twice has no effect.
func (p *Param) AddInput(r Renderer) {
	if slices.Contains(p.inputs, r) {
		return
	}

	p.inputs = append(p.inputs, r)
}

// RemoveInput disconnects r. It reports whether r was connected.
func (p *Param) RemoveInput(r Renderer) bool {
	i := slices.Index(p.inputs, r)
	if i < 0 {
		return false
	}

	p.inputs = slices.Delete(p.inputs, i, i+1)
	return true
}

// Inputs returns the number of connected modulation inputs.
func (p *Param) Inputs() int { return len(p.inputs) }

// Discard drops all automation and inputs. Used when the owning node is
// torn down.
func (p *Param) Discard() {
	p.events.Clear()
	p.inputs = nil
}

// ValueAt evaluates the automation at context time t, ignoring inputs.
func (p *Param) ValueAt(t float64) float64 {
	return p.eval(p.events.Len(), t)
}

// Render produces a mono block of the parameter's value for the current
// block and updates the intrinsic value to its last automation sample.
func (p *Param) Render() (*audio.Block, error) {
	frames := p.clock.BlockSize()
	sampleRate := p.clock.SampleRate()
	now := p.clock.CurrentTime()

	p.prune(now)

	blk := audio.NewBlock(1, frames, sampleRate)
	out := blk.Channel(0)

	switch p.rate {
	case BlockAccurate:
		blk.Fill(p.ValueAt(now))
	default:
		for i := range out {
			out[i] = p.ValueAt(now + float64(i)/sampleRate)
		}
	}

	p.value = out[frames-1]

	if err := p.addInputs(blk); err != nil {
		return nil, err
	}

	return blk, nil
}

func (p *Param) addInputs(blk *audio.Block) error {
	if len(p.inputs) == 0 {
		return nil
	}

	mono := audio.NewBlock(1, blk.Frames(), blk.SampleRate())
	for _, in := range p.inputs {
		b, err := in.Render()
		if err != nil {
			return fmt.Errorf("%s: input: %w", p.name, err)
		}
		audio.MixInto(mono, b, audio.Speakers)
	}

	if p.rate == BlockAccurate {
		offset := mono.Channel(0)[0]
		mono.Fill(offset)
	}
	vecmath.AddBlockInPlace(blk.Channel(0), mono.Channel(0))

	return nil
}

// eval evaluates the automation at t as if only the first n events were
// scheduled.
func (p *Param) eval(n int, t float64) float64 {
	idx := min(p.events.LastAtOrBefore(t), n-1)

	// a ramp is in progress while it is the next event
	if idx+1 < n {
		if next := p.events.Get(idx + 1); next.isRamp() {
			t0, v0 := p.rampStart(idx, next)
			return rampValue(next, t0, v0, t)
		}
	}

	if idx < 0 {
		return p.value
	}

	e := p.events.Get(idx)
	switch e.Kind {
	case SetTarget:
		return targetValue(e, p.targetStart(idx), t)
	case SetValueCurve:
		return curveValue(e, t)
	default:
		return e.Value
	}
}

// rampStart returns the point a ramp starts from: the end of the event at
// prev, or the clock and intrinsic value captured when the ramp was
// scheduled if nothing precedes it.
func (p *Param) rampStart(prev int, ramp Event) (float64, float64) {
	if prev < 0 {
		return ramp.startTime, ramp.startValue
	}

	e := p.events.Get(prev)
	if e.Kind == SetTarget {
		if e.Time < ramp.startTime {
			// the approach was already under way when the ramp was scheduled
			return ramp.startTime, p.eval(prev+1, ramp.startTime)
		}
		// the ramp replaces the target approach from its start
		return e.Time, p.targetStart(prev)
	}

	return e.end(), e.endValue()
}

// targetStart returns the value in effect just before the SetTarget event at
// index i begins.
func (p *Param) targetStart(i int) float64 {
	if i == 0 {
		return p.events.Get(0).startValue
	}

	return p.eval(i, p.events.Get(i).Time)
}

// prune drops the events that can no longer shape a value at or after t:
// everything before the last event due at or before t. A kept SetTarget
// remembers the value it started from.
func (p *Param) prune(t float64) {
	idx := p.events.LastAtOrBefore(t)
	if idx < 1 {
		return
	}

	if e := p.events.Get(idx); e.Kind == SetTarget {
		e.startValue = p.targetStart(idx)
		p.events.Set(idx, e)
	}

	p.events.DropBefore(idx)
}

func (p *Param) insert(e Event) error {
	e.startTime = p.clock.CurrentTime()
	e.startValue = p.value

	if err := p.checkCurveOverlap(e); err != nil {
		return err
	}

	p.events.Insert(e)
	return nil
}

// checkCurveOverlap rejects events that would land inside a value curve, and
// curves that would cover existing events.
func (p *Param) checkCurveOverlap(e Event) error {
	for i := range p.events.Len() {
		other := p.events.Get(i)

		if other.Kind == SetValueCurve && e.Time > other.Time && e.Time < other.end() {
			return fmt.Errorf("%w: %s: %s at %v overlaps value curve [%v, %v]",
				errs.ErrNotSupported, p.name, e.Kind, e.Time, other.Time, other.end())
		}

		if e.Kind == SetValueCurve && other.Time >= e.Time && other.Time < e.end() {
			return fmt.Errorf("%w: %s: value curve [%v, %v] overlaps %s at %v",
				errs.ErrNotSupported, p.name, e.Time, e.end(), other.Kind, other.Time)
		}
	}

	return nil
}

func (p *Param) checkFinite(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s: non-finite %s %v", errs.ErrValidation, p.name, what, v)
	}

	return nil
}

func (p *Param) checkTime(t float64) error {
	if err := p.checkFinite("time", t); err != nil {
		return err
	}

	if t < 0 {
		return fmt.Errorf("%w: %s: negative time %v", errs.ErrValidation, p.name, t)
	}

	return nil
}
