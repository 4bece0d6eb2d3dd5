// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"
)

func TestBlockReader_Stereo(t *testing.T) {
	t.Parallel()

	r := NewBlockReader(newRampSource(8000, 2, 20), 8)

	var blocks []*Block
	for {
		b, err := r.ReadBlock()
		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("ReadBlock() error = %v", err)
		}

		blocks = append(blocks, b)
	}

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	for bi, b := range blocks {
		if b.Channels() != 2 || b.Frames() != 8 {
			t.Fatalf("block %d shape = %dx%d, want 2x8", bi, b.Channels(), b.Frames())
		}
	}

	if got := blocks[1].Channel(1)[0]; got != 8.1 {
		t.Errorf("block 1 right[0] = %v, want 8.1", got)
	}

	// 20 frames: the last block holds frames 16..19 then padding
	last := blocks[2]
	if got := last.Channel(0)[3]; got != 19 {
		t.Errorf("last left[3] = %v, want 19", got)
	}

	for f := 4; f < 8; f++ {
		if last.Channel(0)[f] != 0 || last.Channel(1)[f] != 0 {
			t.Errorf("padding frame %d not silent", f)
		}
	}

	if _, err := r.ReadBlock(); err != io.EOF {
		t.Errorf("ReadBlock() after end error = %v, want io.EOF", err)
	}
}

func TestBlockReader_ShortReads(t *testing.T) {
	t.Parallel()

	src := newRampSource(8000, 3, 16)
	src.maxRead = 5 // not frame aligned, forces several reads per block

	r := NewBlockReader(src, 16)

	b, err := r.ReadBlock()
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	for f := range 16 {
		for c := range 3 {
			want := float64(f) + float64(c)/10
			if got := b.Channel(c)[f]; got != want {
				t.Fatalf("channel %d frame %d = %v, want %v", c, f, got, want)
			}
		}
	}
}

func TestBlockReader_Mono(t *testing.T) {
	t.Parallel()

	r := NewBlockReader(newConstantSource(16000, 1, 100, 0.5), 128)

	if r.Channels() != 1 || r.SampleRate() != 16000 {
		t.Errorf("Channels/SampleRate = %d/%d", r.Channels(), r.SampleRate())
	}

	b, err := r.ReadBlock()
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	if b.Channel(0)[99] != 0.5 || b.Channel(0)[100] != 0 {
		t.Errorf("boundary samples = %v, %v; want 0.5, 0", b.Channel(0)[99], b.Channel(0)[100])
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
