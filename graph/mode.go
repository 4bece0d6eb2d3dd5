// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"

	"github.com/ik5/audgraph/errs"
)

// ChannelCountMode decides how many channels a node's inputs are mixed to.
type ChannelCountMode int

const (
	// Max uses the larger of the widest connected input and the node's
	// channel count.
	Max ChannelCountMode = iota
	// ClampedMax uses the widest connected input, capped at the node's
	// channel count.
	ClampedMax
	// Explicit always uses the node's channel count.
	Explicit
)

func (m ChannelCountMode) String() string {
	switch m {
	case Max:
		return "max"
	case ClampedMax:
		return "clamped-max"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("ChannelCountMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the named modes.
func (m ChannelCountMode) Valid() bool {
	return m == Max || m == ClampedMax || m == Explicit
}

// ParseChannelCountMode maps "max", "clamped-max" or "explicit" to its value.
func ParseChannelCountMode(s string) (ChannelCountMode, error) {
	switch s {
	case "max":
		return Max, nil
	case "clamped-max":
		return ClampedMax, nil
	case "explicit":
		return Explicit, nil
	default:
		return 0, fmt.Errorf("%w: unknown channel count mode %q", errs.ErrValidation, s)
	}
}

// computedChannels returns the channel count an input is mixed to, given the
// channel counts of the blocks connected to it.
func computedChannels(mode ChannelCountMode, declared int, connected []int) int {
	if mode == Explicit {
		return declared
	}

	if len(connected) == 0 {
		if mode == ClampedMax {
			return 1
		}
		return declared
	}

	widest := 0
	for _, c := range connected {
		widest = max(widest, c)
	}

	if mode == ClampedMax {
		return min(widest, declared)
	}

	return max(widest, declared)
}
