// SPDX-License-Identifier: EPL-2.0

// Package automation implements scheduled control parameters.
//
// A Param holds a scalar value plus a time-ordered list of events that change
// it: instant sets, linear and exponential ramps, exponential approaches to a
// target and value curves. Times are seconds of the owning context's clock.
//
//	gain := automation.New(ctx, "gain", 1, automation.SampleAccurate)
//	_ = gain.SetValueAtTime(0, 0)
//	_ = gain.LinearRampToValueAtTime(1, 0.5) // fade in over 500 ms
//	_ = gain.SetTargetAtTime(0, 2, 0.3)      // release from 2 s on
//
// # Evaluation
//
// At time t the latest event due at or before t is active. A ramp is keyed by
// its end time, so it is in progress while it is the next event and starts
// from wherever the previous event left the value. A ramp scheduled with
// nothing before it starts from the clock time and value current when it was
// scheduled.
//
// Render produces one block per call. SampleAccurate parameters evaluate at
// every sample; BlockAccurate parameters evaluate once at the block start.
// After rendering, Value reports the block's last sample.
//
// # Modulation
//
// Node outputs added with AddInput are down-mixed to mono and summed into the
// rendered values. They do not affect Value.
package automation
