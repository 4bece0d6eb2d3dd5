// SPDX-License-Identifier: EPL-2.0

package graph

const (
	DefaultSampleRate = 44100
	DefaultBlockSize  = 128
)

type config struct {
	sampleRate float64
	blockSize  int
	cache      bool
}

// Option configures a Context.
type Option func(*config)

func defaultConfig() config {
	return config{
		sampleRate: DefaultSampleRate,
		blockSize:  DefaultBlockSize,
	}
}

// WithSampleRate sets the context sample rate. Non-positive rates are
// ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) {
		if sampleRate > 0 {
			cfg.sampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the number of frames rendered per quantum. Non-positive
// sizes are ignored.
func WithBlockSize(frames int) Option {
	return func(cfg *config) {
		if frames > 0 {
			cfg.blockSize = frames
		}
	}
}

// WithRenderCache makes every node remember its output for the current
// quantum, so a node feeding several consumers renders once per quantum
// instead of once per consumer.
func WithRenderCache(on bool) Option {
	return func(cfg *config) {
		cfg.cache = on
	}
}
