// SPDX-License-Identifier: EPL-2.0

package audgraph

import (
	"fmt"
	"math"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/formats/aiff"
	"github.com/ik5/audgraph/formats/mp3"
	"github.com/ik5/audgraph/formats/vorbis"
	"github.com/ik5/audgraph/formats/wav"
	"github.com/ik5/audgraph/graph"
	"github.com/ik5/audgraph/utils"
)

// NewRegistry returns a registry with every bundled decoder keyed by its
// usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// Quanta is the number of render quanta needed to cover seconds of audio at
// the context's rate, rounded up.
func Quanta(ctx *graph.Context, seconds float64) int {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}

	return int(math.Ceil(seconds * ctx.SampleRate() / float64(ctx.BlockSize())))
}

// QuantumFunc runs before each quantum is rendered, with the clock at the
// quantum's first frame. It is where a driver moves sources or listeners.
type QuantumFunc func(ctx *graph.Context) error

// Render drives ctx for the given number of quanta, handing each rendered
// destination block to sink. The sink is not closed. Rendering stops at the
// first error, leaving the clock on the failed quantum.
func Render(ctx *graph.Context, quanta int, sink audio.Sink) error {
	return RenderEach(ctx, quanta, sink, nil)
}

// RenderEach is Render with a hook called before every quantum. A nil hook
// is skipped.
func RenderEach(ctx *graph.Context, quanta int, sink audio.Sink, before QuantumFunc) error {
	for q := range quanta {
		if before != nil {
			if err := before(ctx); err != nil {
				return fmt.Errorf("preparing quantum %d: %w", q, err)
			}
		}

		blk, err := ctx.RenderQuantum()
		if err != nil {
			return fmt.Errorf("rendering quantum %d: %w", q, err)
		}

		if err := sink.WriteBlock(blk); err != nil {
			return fmt.Errorf("writing quantum %d: %w", q, err)
		}
	}

	return nil
}

// RenderToPCM16 renders quanta blocks and returns them as interleaved 16-bit
// PCM with the destination's channel count.
func RenderToPCM16(ctx *graph.Context, quanta int) ([]int16, error) {
	sink := &PCM16Sink{}
	if quanta > 0 {
		sink.samples = make([]int16, 0, quanta*ctx.BlockSize()*ctx.Destination().ChannelCount())
	}

	if err := Render(ctx, quanta, sink); err != nil {
		return nil, err
	}

	return sink.Samples(), nil
}

// PCM16Sink collects rendered blocks in memory as interleaved 16-bit PCM.
type PCM16Sink struct {
	samples []int16
	tmp     []float64
}

var _ audio.Sink = (*PCM16Sink)(nil)

// Samples returns everything written so far.
func (s *PCM16Sink) Samples() []int16 { return s.samples }

func (s *PCM16Sink) WriteBlock(b *audio.Block) error {
	n := b.Channels() * b.Frames()
	if cap(s.tmp) < n {
		s.tmp = make([]float64, n)
	}
	s.tmp = s.tmp[:n]

	if _, err := b.Interleave(s.tmp); err != nil {
		return fmt.Errorf("%w", err)
	}

	for _, v := range s.tmp {
		s.samples = append(s.samples, utils.FloatToInt16(v))
	}

	return nil
}

func (s *PCM16Sink) Close() error { return nil }
