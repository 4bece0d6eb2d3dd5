//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audgraph/audio"
)

// queuedBlocks bounds how far rendering may run ahead of the device.
const queuedBlocks = 8

// deviceSink plays blocks on the default output device. WriteBlock blocks
// once queuedBlocks are waiting, which paces rendering to real time.
type deviceSink struct {
	ctx    *oto.Context
	player *oto.Player

	chunks  chan []byte
	pending []byte
	tmp     []float64
}

func newDeviceSink(sampleRate, channels int) (*deviceSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	s := &deviceSink{
		ctx:    ctx,
		chunks: make(chan []byte, queuedBlocks),
	}
	s.player = ctx.NewPlayer(s)
	s.player.Play()

	return s, nil
}

func (s *deviceSink) WriteBlock(b *audio.Block) error {
	n := b.Channels() * b.Frames()
	if cap(s.tmp) < n {
		s.tmp = make([]float64, n)
	}
	s.tmp = s.tmp[:n]

	if _, err := b.Interleave(s.tmp); err != nil {
		return fmt.Errorf("%w", err)
	}

	chunk := make([]byte, 4*n)
	for i, v := range s.tmp {
		binary.LittleEndian.PutUint32(chunk[4*i:], math.Float32bits(float32(v)))
	}
	s.chunks <- chunk

	return nil
}

// Read feeds the oto player. It waits for the first chunk, then returns
// whatever is queued, and reports io.EOF once the sink is closed and drained.
func (s *deviceSink) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			var (
				chunk []byte
				ok    bool
			)

			if n == 0 {
				chunk, ok = <-s.chunks
			} else {
				select {
				case chunk, ok = <-s.chunks:
				default:
					return n, nil
				}
			}

			if !ok {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			s.pending = chunk
		}

		c := copy(p[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	return n, nil
}

// Close waits for queued audio to finish playing.
func (s *deviceSink) Close() error {
	close(s.chunks)

	for s.player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := s.player.Close(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}

	return nil
}
