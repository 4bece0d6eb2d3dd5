// SPDX-License-Identifier: EPL-2.0

// Command audgraph renders an audio file through a spatial panner, optionally
// orbiting the listener, and writes the result to a WAV/AIFF file or plays
// it on the default audio device.
//
//	audgraph -in voice.ogg -out orbit.wav -orbit 3 -period 4
//	audgraph -in loop.wav -loop -duration 10 -orbit 2 -play
//	audgraph -in stereo.mp3 -mono -orbit 2 -cone 60
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audgraph"
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/formats/aiff"
	"github.com/ik5/audgraph/formats/wav"
	"github.com/ik5/audgraph/graph"
	"github.com/ik5/audgraph/spatial"
	"github.com/ik5/audgraph/vec3"
)

const (
	outputChannels = 2
	outputBitDepth = 16
	fadeTime       = 0.02
)

type options struct {
	in       string
	out      string
	duration float64
	block    int
	orbit    float64
	period   float64
	cone     float64
	model    string
	loop     bool
	mono     bool
	play     bool
	cache    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("audgraph: ")

	opts := parseFlags(os.Args[1:])
	if opts.in == "" {
		log.Fatal("missing -in")
	}

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) options {
	var o options

	fs := flag.NewFlagSet("audgraph", flag.ExitOnError)
	fs.StringVar(&o.in, "in", "", "input audio file (wav, aiff, mp3, ogg)")
	fs.StringVar(&o.out, "out", "out.wav", "output file (.wav or .aiff), - for WAV on stdout")
	fs.Float64Var(&o.duration, "duration", 0, "seconds to render, 0 for the input length")
	fs.IntVar(&o.block, "block", graph.DefaultBlockSize, "render quantum in frames")
	fs.Float64Var(&o.orbit, "orbit", 0, "orbit radius around the listener, 0 keeps the source ahead")
	fs.Float64Var(&o.period, "period", 4, "seconds per orbit")
	fs.Float64Var(&o.cone, "cone", 0, "inner cone angle in degrees, 0 for an omnidirectional source")
	fs.StringVar(&o.model, "distance", "inverse", "distance model: linear, inverse or exponential")
	fs.BoolVar(&o.loop, "loop", false, "loop the input")
	fs.BoolVar(&o.mono, "mono", false, "downmix the input so it is panned as a single point")
	fs.BoolVar(&o.play, "play", false, "play on the default audio device instead of writing -out")
	fs.BoolVar(&o.cache, "cache", false, "render each node once per quantum")
	_ = fs.Parse(args)

	return o
}

// scene is the rendered graph: player -> panner -> fader -> destination.
type scene struct {
	ctx    *graph.Context
	player *graph.BufferSourceNode
	panner *graph.PannerNode
	fader  *graph.GainNode
}

func buildScene(clip *audio.Buffer, o options, seconds float64) (*scene, error) {
	ctx := graph.NewContext(
		graph.WithSampleRate(clip.SampleRate()),
		graph.WithBlockSize(o.block),
		graph.WithRenderCache(o.cache),
	)

	s := &scene{
		ctx:    ctx,
		player: ctx.NewBufferSource(),
		panner: ctx.NewPanner(),
		fader:  ctx.NewGain(),
	}

	if err := s.player.SetBuffer(clip); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.player.SetLoop(o.loop)

	if err := configurePanner(s.panner, o); err != nil {
		return nil, err
	}

	// short fades keep the cut at either end click free
	g := s.fader.Gain()
	fadeOut := max(seconds-fadeTime, fadeTime)
	for _, step := range []error{
		g.SetValueAtTime(0, 0),
		g.LinearRampToValueAtTime(1, fadeTime),
		g.SetValueAtTime(1, fadeOut),
		g.LinearRampToValueAtTime(0, fadeOut+fadeTime),
	} {
		if step != nil {
			return nil, fmt.Errorf("fader: %w", step)
		}
	}

	if err := s.player.Connect(s.panner, 0, 0); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := s.panner.Connect(s.fader, 0, 0); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := s.fader.Connect(ctx.Destination(), 0, 0); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.player.Start(0); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return s, nil
}

func configurePanner(p *graph.PannerNode, o options) error {
	model, err := spatial.ParseDistanceModel(o.model)
	if err != nil {
		return fmt.Errorf("-distance: %w", err)
	}

	if err := p.SetDistanceModel(model); err != nil {
		return fmt.Errorf("-distance: %w", err)
	}

	pos := orbitPosition(o.orbit, o.period, 0)
	if err := p.SetPosition(pos.X, pos.Y, pos.Z); err != nil {
		return fmt.Errorf("%w", err)
	}

	if o.cone <= 0 {
		return nil
	}

	// the source keeps facing its starting direction, so an orbit sweeps the
	// listener through the cone
	facing := pos.Mul(-1)
	if facing.IsZero() {
		facing = vec3.New(0, 0, 1)
	}

	for _, err := range []error{
		p.SetOrientation(facing.X, facing.Y, facing.Z),
		p.SetConeInnerAngle(o.cone),
		p.SetConeOuterAngle(math.Min(2*o.cone, 360)),
		p.SetConeOuterGain(0.25),
	} {
		if err != nil {
			return fmt.Errorf("-cone: %w", err)
		}
	}

	return nil
}

// orbitPosition places the source on a horizontal circle around the origin,
// starting straight ahead and moving clockwise seen from above. A zero
// radius keeps the source one unit ahead.
func orbitPosition(radius, period, t float64) vec3.Vec {
	if radius <= 0 {
		return vec3.New(0, 0, -1)
	}

	angle := 0.0
	if period > 0 {
		angle = 2 * math.Pi * t / period
	}

	return vec3.New(radius*math.Sin(angle), 0, -radius*math.Cos(angle))
}

// loadClip decodes the whole input, downmixing it on the way if asked to.
func loadClip(o options) (*audio.Buffer, error) {
	src, err := audgraph.NewRegistry().Open(o.in)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if o.mono {
		src = audio.NewMonoMixer(src)
	}
	defer src.Close()

	clip, err := audio.ReadBuffer(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", o.in, err)
	}

	return clip, nil
}

func run(o options) error {
	clip, err := loadClip(o)
	if err != nil {
		return err
	}

	seconds := o.duration
	if seconds <= 0 {
		seconds = clip.Duration()
	}

	sc, err := buildScene(clip, o, seconds)
	if err != nil {
		return err
	}

	sampleRate := int(sc.ctx.SampleRate())
	sink, finish, err := openSink(o, sampleRate)
	if err != nil {
		return err
	}

	quanta := audgraph.Quanta(sc.ctx, seconds)
	err = audgraph.RenderEach(sc.ctx, quanta, sink, func(ctx *graph.Context) error {
		if o.orbit <= 0 {
			return nil
		}
		pos := orbitPosition(o.orbit, o.period, ctx.CurrentTime())
		return sc.panner.SetPosition(pos.X, pos.Y, pos.Z)
	})

	if cerr := finish(); err == nil {
		err = cerr
	}

	if err != nil {
		return err
	}

	log.Printf("rendered %.2fs of %s (%d quanta of %d frames at %d Hz)",
		float64(quanta*o.block)/sc.ctx.SampleRate(), o.in, quanta, o.block, sampleRate)

	return nil
}

// openSink returns the sink for o and a function that flushes and closes it.
func openSink(o options, sampleRate int) (audio.Sink, func() error, error) {
	if o.play {
		sink, err := newDeviceSink(sampleRate, outputChannels)
		if err != nil {
			return nil, nil, err
		}
		return sink, sink.Close, nil
	}

	if o.out == "-" {
		sink := &audgraph.PCM16Sink{}
		return sink, func() error {
			return wav.WriteWAV16(os.Stdout, sampleRate, outputChannels, sink.Samples())
		}, nil
	}

	f, err := os.Create(o.out)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	var sink audio.Sink
	switch strings.ToLower(filepath.Ext(o.out)) {
	case ".aif", ".aiff":
		sink, err = aiff.NewWriter(f, sampleRate, outputChannels, outputBitDepth)
	default:
		sink, err = wav.NewWriter(f, sampleRate, outputChannels, outputBitDepth)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w", err)
	}

	return sink, func() error {
		return errors.Join(sink.Close(), f.Close())
	}, nil
}
