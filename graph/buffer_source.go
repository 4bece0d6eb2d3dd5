// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"math"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/errs"
	"github.com/ik5/audgraph/schedule"
)

// playEvent switches a buffer source on or off at a context time.
type playEvent struct {
	at   float64
	play bool
}

func (e playEvent) At() float64 { return e.at }

// BufferSourceNode plays an audio.Buffer between a scheduled start and stop.
// The buffer must already be at the context's sample rate.
type BufferSourceNode struct {
	AudioNode

	buffer  *audio.Buffer
	loop    bool
	events  schedule.Timeline[playEvent]
	started bool
	startAt float64
	pos     int
	ended   bool

	// playback state at the start of the quantum last rendered, so a
	// second render in the same quantum reproduces the same block
	markFrame int64
	markPos   int
	markEnded bool
	marked    bool
}

// NewBufferSource returns a source with no buffer that has not been started.
func (ctx *Context) NewBufferSource() *BufferSourceNode {
	s := &BufferSourceNode{}
	s.init(ctx, nodeSpec{
		kind:        "buffer-source",
		inputs:      0,
		outputs:     1,
		channels:    2,
		minChannels: 1,
		maxChannels: MaxDestinationChannels,
		mode:        Max,
	}, s)

	return s
}

func (s *BufferSourceNode) Buffer() *audio.Buffer { return s.buffer }
func (s *BufferSourceNode) Loop() bool            { return s.loop }
func (s *BufferSourceNode) SetLoop(on bool)       { s.loop = on }

// Ended reports whether a non-looping source has played to the end of its
// buffer or past its stop time.
func (s *BufferSourceNode) Ended() bool { return s.ended }

// SetBuffer selects the clip to play. A buffer at another sample rate fails
// with errs.ErrNotSupported; nil plays silence.
func (s *BufferSourceNode) SetBuffer(b *audio.Buffer) error {
	if b != nil && b.SampleRate() != s.ctx.sampleRate {
		return fmt.Errorf("%w: buffer at %v Hz in a %v Hz context", errs.ErrNotSupported, b.SampleRate(), s.ctx.sampleRate)
	}

	s.buffer = b
	s.pos = 0
	s.marked = false

	return nil
}

// Start schedules playback from the beginning of the buffer at context time
// when. A source starts at most once; a second call fails with
// errs.ErrState.
func (s *BufferSourceNode) Start(when float64) error {
	if err := checkWhen(when); err != nil {
		return err
	}

	if s.started {
		return fmt.Errorf("%w: buffer source already started", errs.ErrState)
	}

	s.started = true
	s.startAt = when
	s.events.Insert(playEvent{at: when, play: true})

	return nil
}

// Stop schedules the end of playback at context time when. A stop time
// before the start time means the source never plays.
func (s *BufferSourceNode) Stop(when float64) error {
	if err := checkWhen(when); err != nil {
		return err
	}

	if !s.started {
		return fmt.Errorf("%w: buffer source stopped before it was started", errs.ErrState)
	}

	// a later Stop replaces an earlier one
	s.events.Clear()
	s.events.Insert(playEvent{at: s.startAt, play: true})
	s.events.Insert(playEvent{at: max(when, s.startAt), play: false})

	return nil
}

func (s *BufferSourceNode) process([]*audio.Block) (*audio.Block, error) {
	channels := 1
	if s.buffer != nil {
		channels = s.buffer.Channels()
	}

	if s.marked && s.markFrame == s.ctx.frame {
		s.pos, s.ended = s.markPos, s.markEnded
	} else {
		s.markFrame, s.markPos, s.markEnded, s.marked = s.ctx.frame, s.pos, s.ended, true
	}

	out := s.ctx.newBlock(channels)
	if s.buffer == nil || s.buffer.Length() == 0 || s.ended {
		return out, nil
	}

	now := s.ctx.CurrentTime()
	length := s.buffer.Length()

	for i := range out.Frames() {
		idx := s.events.LastAtOrBefore(now + float64(i)/s.ctx.sampleRate)
		if idx < 0 {
			continue
		}

		if !s.events.Get(idx).play {
			s.ended = true
			break
		}

		if s.pos >= length {
			if !s.loop {
				s.ended = true
				break
			}
			s.pos = 0
		}

		for c := range channels {
			out.Channel(c)[i] = s.buffer.Channel(c)[s.pos]
		}
		s.pos++
	}

	return out, nil
}

func checkWhen(when float64) error {
	if math.IsNaN(when) || math.IsInf(when, 0) || when < 0 {
		return fmt.Errorf("%w: invalid schedule time %v", errs.ErrValidation, when)
	}

	return nil
}
