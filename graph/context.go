// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/automation"
	"github.com/ik5/audgraph/errs"
	"github.com/ik5/audgraph/spatial"
)

// Context owns the render clock, the listener and the destination node of
// one graph. It implements automation.Clock.
//
// A Context is not safe for concurrent use; the graph is rendered from a
// single goroutine.
type Context struct {
	sampleRate float64
	blockSize  int
	cache      bool

	frame    int64
	listener *spatial.Listener
	dest     *DestinationNode

	// parameters created by this context's nodes, for ConnectParam
	params map[*automation.Param]*paramPort
}

var _ automation.Clock = (*Context)(nil)

// NewContext returns a context at time zero with a stereo destination.
func NewContext(opts ...Option) *Context {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	ctx := &Context{
		sampleRate: cfg.sampleRate,
		blockSize:  cfg.blockSize,
		cache:      cfg.cache,
		listener:   spatial.NewListener(),
		params:     make(map[*automation.Param]*paramPort),
	}
	ctx.dest = newDestination(ctx)

	return ctx
}

func (ctx *Context) SampleRate() float64 { return ctx.sampleRate }
func (ctx *Context) BlockSize() int      { return ctx.blockSize }

// Frame returns the index of the first frame of the current quantum.
func (ctx *Context) Frame() int64 { return ctx.frame }

// CurrentTime returns the start of the current quantum in seconds.
func (ctx *Context) CurrentTime() float64 {
	return float64(ctx.frame) / ctx.sampleRate
}

// Advance moves the clock forward by one quantum.
func (ctx *Context) Advance() {
	ctx.frame += int64(ctx.blockSize)
}

// Listener returns the listener shared by every panner of this context.
func (ctx *Context) Listener() *spatial.Listener { return ctx.listener }

// Destination returns the terminal node the driver pulls from.
func (ctx *Context) Destination() *DestinationNode { return ctx.dest }

// RenderQuantum renders one block from the destination and advances the
// clock. The clock does not move when rendering fails.
func (ctx *Context) RenderQuantum() (*audio.Block, error) {
	blk, err := ctx.dest.Render()
	if err != nil {
		return nil, err
	}

	ctx.Advance()

	return blk, nil
}

func (ctx *Context) newBlock(channels int) *audio.Block {
	return audio.NewBlock(channels, ctx.blockSize, ctx.sampleRate)
}

// newParam creates a parameter owned by n that other nodes may modulate.
func (ctx *Context) newParam(n *AudioNode, name string, defaultValue float64, rate automation.Rate) *automation.Param {
	p := automation.New(ctx, name, defaultValue, rate)

	pp := &paramPort{owner: n, param: p}
	ctx.params[p] = pp
	n.params = append(n.params, pp)

	return p
}

func (ctx *Context) paramPort(p *automation.Param) (*paramPort, error) {
	pp, ok := ctx.params[p]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q does not belong to this context", errs.ErrValidation, p.Name())
	}

	return pp, nil
}
