// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ik5/audgraph/errs"
)

// ChannelInterpretation selects how MixInto maps channels when the source
// and destination channel counts differ.
type ChannelInterpretation int

const (
	// Speakers applies the standard up/down-mix for mono, stereo, quad and
	// 5.1 layouts, falling back to Discrete for anything else.
	Speakers ChannelInterpretation = iota
	// Discrete copies channel n to channel n, zero padding or dropping the
	// rest.
	Discrete
)

func (ci ChannelInterpretation) String() string {
	switch ci {
	case Speakers:
		return "speakers"
	case Discrete:
		return "discrete"
	default:
		return fmt.Sprintf("ChannelInterpretation(%d)", int(ci))
	}
}

// Valid reports whether ci is one of the named interpretations.
func (ci ChannelInterpretation) Valid() bool {
	return ci == Speakers || ci == Discrete
}

// ParseChannelInterpretation maps "speakers" or "discrete" to its value.
func ParseChannelInterpretation(s string) (ChannelInterpretation, error) {
	switch s {
	case "speakers":
		return Speakers, nil
	case "discrete":
		return Discrete, nil
	default:
		return 0, fmt.Errorf("%w: unknown channel interpretation %q", errs.ErrValidation, s)
	}
}

// speaker channel indexes
const (
	quadSL = 2
	quadSR = 3

	surroundC  = 2
	surroundSL = 4
	surroundSR = 5
)

// MixInto adds src into dst, converting between channel counts according to
// interp. Both blocks must have the same frame count.
func MixInto(dst, src *Block, interp ChannelInterpretation) {
	m := mixer{dst: dst.data, src: src.data}

	if len(m.dst) == len(m.src) {
		for c := range m.dst {
			m.add(c, c)
		}
		return
	}

	if interp == Speakers && m.speakers() {
		return
	}

	m.discrete()
}

type mixer struct {
	dst, src [][]float64
	tmp      []float64
}

func (m *mixer) add(out, in int) {
	vecmath.AddBlockInPlace(m.dst[out], m.src[in])
}

func (m *mixer) addScaled(out, in int, g float64) {
	if m.tmp == nil {
		m.tmp = make([]float64, len(m.src[in]))
	}
	vecmath.ScaleBlock(m.tmp, m.src[in], g)
	vecmath.AddBlockInPlace(m.dst[out], m.tmp)
}

func (m *mixer) discrete() {
	n := min(len(m.dst), len(m.src))
	for c := range n {
		m.add(c, c)
	}
}

// speakers reports false when the layout pair has no speaker rule.
func (m *mixer) speakers() bool {
	sqrtHalf := math.Sqrt(0.5)

	switch [2]int{len(m.src), len(m.dst)} {
	// up-mix
	case [2]int{1, 2}, [2]int{1, 4}:
		m.add(0, 0)
		m.add(1, 0)
	case [2]int{1, 6}:
		m.add(surroundC, 0)
	case [2]int{2, 4}, [2]int{2, 6}:
		m.add(0, 0)
		m.add(1, 1)
	case [2]int{4, 6}:
		m.add(0, 0)
		m.add(1, 1)
		m.add(surroundSL, quadSL)
		m.add(surroundSR, quadSR)

	// down-mix
	case [2]int{2, 1}:
		m.addScaled(0, 0, 0.5)
		m.addScaled(0, 1, 0.5)
	case [2]int{4, 1}:
		for c := range 4 {
			m.addScaled(0, c, 0.25)
		}
	case [2]int{4, 2}:
		m.addScaled(0, 0, 0.5)
		m.addScaled(0, quadSL, 0.5)
		m.addScaled(1, 1, 0.5)
		m.addScaled(1, quadSR, 0.5)
	case [2]int{6, 1}:
		m.addScaled(0, 0, sqrtHalf)
		m.addScaled(0, 1, sqrtHalf)
		m.add(0, surroundC)
		m.addScaled(0, surroundSL, 0.5)
		m.addScaled(0, surroundSR, 0.5)
	case [2]int{6, 2}:
		m.add(0, 0)
		m.addScaled(0, surroundC, sqrtHalf)
		m.addScaled(0, surroundSL, sqrtHalf)
		m.add(1, 1)
		m.addScaled(1, surroundC, sqrtHalf)
		m.addScaled(1, surroundSR, sqrtHalf)
	case [2]int{6, 4}:
		m.add(0, 0)
		m.addScaled(0, surroundC, sqrtHalf)
		m.add(1, 1)
		m.addScaled(1, surroundC, sqrtHalf)
		m.add(quadSL, surroundSL)
		m.add(quadSR, surroundSR)
	default:
		return false
	}

	return true
}
