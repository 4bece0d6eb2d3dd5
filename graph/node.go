// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"slices"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/automation"
	"github.com/ik5/audgraph/errs"
)

// Node is any element of a render graph. Every node type embeds AudioNode.
type Node interface {
	Render() (*audio.Block, error)
	node() *AudioNode
}

// processor is the part of a node type that turns mixed inputs into output.
// inputs has one block per input port, already mixed to the computed
// channel count; the processor may write into them.
type processor interface {
	process(inputs []*audio.Block) (*audio.Block, error)
}

// nodeSpec is the fixed shape of a node type.
type nodeSpec struct {
	kind          string
	inputs        int
	outputs       int
	channels      int
	minChannels   int
	maxChannels   int
	mode          ChannelCountMode
	forbiddenMode []ChannelCountMode
}

// AudioNode holds the ports, channel configuration and lifecycle shared by
// every node type.
type AudioNode struct {
	ctx  *Context
	spec nodeSpec
	proc processor

	inputs  []*inputPort
	outputs []*outputPort
	params  []*paramPort

	channelCount int
	mode         ChannelCountMode
	interp       audio.ChannelInterpretation

	destroyed bool

	cached      *audio.Block
	cachedFrame int64
}

// init wires n in place; ports keep pointers back to n.
func (n *AudioNode) init(ctx *Context, spec nodeSpec, proc processor) {
	n.ctx = ctx
	n.spec = spec
	n.proc = proc
	n.channelCount = spec.channels
	n.mode = spec.mode
	n.interp = audio.Speakers

	n.inputs = make([]*inputPort, spec.inputs)
	for i := range n.inputs {
		n.inputs[i] = &inputPort{owner: n, index: i}
	}

	n.outputs = make([]*outputPort, spec.outputs)
	for i := range n.outputs {
		n.outputs[i] = &outputPort{owner: n, index: i}
	}
}

func (n *AudioNode) node() *AudioNode { return n }

func (n *AudioNode) Context() *Context    { return n.ctx }
func (n *AudioNode) Kind() string         { return n.spec.kind }
func (n *AudioNode) NumberOfInputs() int  { return len(n.inputs) }
func (n *AudioNode) NumberOfOutputs() int { return len(n.outputs) }
func (n *AudioNode) Destroyed() bool      { return n.destroyed }

func (n *AudioNode) ChannelCount() int                                  { return n.channelCount }
func (n *AudioNode) ChannelCountMode() ChannelCountMode                 { return n.mode }
func (n *AudioNode) ChannelInterpretation() audio.ChannelInterpretation { return n.interp }

// SetChannelCount fails with errs.ErrNotSupported outside the node type's
// legal range.
func (n *AudioNode) SetChannelCount(c int) error {
	if c < n.spec.minChannels || c > n.spec.maxChannels {
		return fmt.Errorf("%w: %s channel count %d outside [%d, %d]",
			errs.ErrNotSupported, n.spec.kind, c, n.spec.minChannels, n.spec.maxChannels)
	}

	n.channelCount = c
	return nil
}

// SetChannelCountMode fails with errs.ErrValidation for an unknown mode and
// errs.ErrNotSupported for a mode the node type forbids.
func (n *AudioNode) SetChannelCountMode(m ChannelCountMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: unknown channel count mode %d", errs.ErrValidation, int(m))
	}

	if slices.Contains(n.spec.forbiddenMode, m) {
		return fmt.Errorf("%w: %s does not allow channel count mode %s", errs.ErrNotSupported, n.spec.kind, m)
	}

	n.mode = m
	return nil
}

func (n *AudioNode) SetChannelInterpretation(ci audio.ChannelInterpretation) error {
	if !ci.Valid() {
		return fmt.Errorf("%w: unknown channel interpretation %d", errs.ErrValidation, int(ci))
	}

	n.interp = ci
	return nil
}

// Connect feeds output of n into input of dst. Connecting the same ports
// twice has no further effect.
func (n *AudioNode) Connect(dst Node, output, input int) error {
	d := dst.node()

	if err := n.checkPeer(d); err != nil {
		return err
	}

	if output < 0 || output >= len(n.outputs) {
		return fmt.Errorf("%w: %s has no output %d", errs.ErrIndexSize, n.spec.kind, output)
	}

	if input < 0 || input >= len(d.inputs) {
		return fmt.Errorf("%w: %s has no input %d", errs.ErrIndexSize, d.spec.kind, input)
	}

	if d.reaches(n) {
		return fmt.Errorf("%w: connecting %s to %s would create a cycle", errs.ErrNotSupported, n.spec.kind, d.spec.kind)
	}

	n.outputs[output].link(d.inputs[input])

	return nil
}

// ConnectParam adds output of n to the values of p. p must belong to a node
// of the same context.
func (n *AudioNode) ConnectParam(p *automation.Param, output int) error {
	if p == nil {
		return fmt.Errorf("%w: nil parameter", errs.ErrValidation)
	}

	if n.destroyed {
		return fmt.Errorf("%w: %s", errs.ErrDestroyed, n.spec.kind)
	}

	pp, err := n.ctx.paramPort(p)
	if err != nil {
		return err
	}

	if pp.owner.destroyed {
		return fmt.Errorf("%w: %s", errs.ErrDestroyed, pp.owner.spec.kind)
	}

	if output < 0 || output >= len(n.outputs) {
		return fmt.Errorf("%w: %s has no output %d", errs.ErrIndexSize, n.spec.kind, output)
	}

	if pp.owner.reaches(n) {
		return fmt.Errorf("%w: connecting %s to %s.%s would create a cycle",
			errs.ErrNotSupported, n.spec.kind, pp.owner.spec.kind, p.Name())
	}

	n.outputs[output].linkParam(pp)

	return nil
}

// Disconnect removes every connection leaving output, to nodes and to
// parameters alike.
func (n *AudioNode) Disconnect(output int) error {
	if output < 0 || output >= len(n.outputs) {
		return fmt.Errorf("%w: %s has no output %d", errs.ErrIndexSize, n.spec.kind, output)
	}

	n.outputs[output].unlinkAll()

	return nil
}

// DisconnectFrom removes the single connection from output of n to input of
// dst. It reports whether the connection existed.
func (n *AudioNode) DisconnectFrom(dst Node, output, input int) (bool, error) {
	d := dst.node()

	if output < 0 || output >= len(n.outputs) {
		return false, fmt.Errorf("%w: %s has no output %d", errs.ErrIndexSize, n.spec.kind, output)
	}

	if input < 0 || input >= len(d.inputs) {
		return false, fmt.Errorf("%w: %s has no input %d", errs.ErrIndexSize, d.spec.kind, input)
	}

	return n.outputs[output].unlink(d.inputs[input]), nil
}

// Teardown severs every connection of n, drops the automation of its
// parameters and makes every later Render fail with errs.ErrDestroyed.
// Tearing down twice is a no-op.
func (n *AudioNode) Teardown() {
	if n.destroyed {
		return
	}

	for _, out := range n.outputs {
		out.unlinkAll()
	}

	for _, in := range n.inputs {
		for _, src := range slices.Clone(in.sources) {
			src.unlink(in)
		}
	}

	for _, pp := range n.params {
		for _, src := range slices.Clone(pp.sources) {
			src.unlinkParam(pp)
		}
		pp.param.Discard()
	}

	n.destroyed = true
	n.cached = nil
}

// Render pulls every input, mixes each to its computed channel count and
// returns the node's output for the current quantum. The caller owns the
// returned block.
func (n *AudioNode) Render() (*audio.Block, error) {
	if n.destroyed {
		return nil, fmt.Errorf("%w: render of %s", errs.ErrDestroyed, n.spec.kind)
	}

	if n.ctx.cache && n.cached != nil && n.cachedFrame == n.ctx.frame {
		return n.cached.Clone(), nil
	}

	inputs := make([]*audio.Block, len(n.inputs))
	for i, in := range n.inputs {
		blk, err := n.pull(in)
		if err != nil {
			return nil, err
		}
		inputs[i] = blk
	}

	out, err := n.proc.process(inputs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.spec.kind, err)
	}

	if n.ctx.cache {
		n.cached = out.Clone()
		n.cachedFrame = n.ctx.frame
	}

	return out, nil
}

// pull renders every source of in and mixes them into one block.
func (n *AudioNode) pull(in *inputPort) (*audio.Block, error) {
	blocks := make([]*audio.Block, 0, len(in.sources))
	counts := make([]int, 0, len(in.sources))

	for _, src := range in.sources {
		blk, err := src.owner.Render()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
		counts = append(counts, blk.Channels())
	}

	mixed := n.ctx.newBlock(computedChannels(n.mode, n.channelCount, counts))
	for _, blk := range blocks {
		audio.MixInto(mixed, blk, n.interp)
	}

	return mixed, nil
}

func (n *AudioNode) checkPeer(d *AudioNode) error {
	if n.ctx != d.ctx {
		return fmt.Errorf("%w: %s and %s belong to different contexts", errs.ErrValidation, n.spec.kind, d.spec.kind)
	}

	if n.destroyed {
		return fmt.Errorf("%w: %s", errs.ErrDestroyed, n.spec.kind)
	}

	if d.destroyed {
		return fmt.Errorf("%w: %s", errs.ErrDestroyed, d.spec.kind)
	}

	return nil
}

// reaches reports whether target is downstream of n, through node inputs or
// parameters.
func (n *AudioNode) reaches(target *AudioNode) bool {
	seen := map[*AudioNode]bool{}

	var walk func(*AudioNode) bool
	walk = func(cur *AudioNode) bool {
		if cur == target {
			return true
		}

		if seen[cur] {
			return false
		}
		seen[cur] = true

		for _, out := range cur.outputs {
			for _, in := range out.dests {
				if walk(in.owner) {
					return true
				}
			}

			for _, pp := range out.params {
				if walk(pp.owner) {
					return true
				}
			}
		}

		return false
	}

	return walk(n)
}
