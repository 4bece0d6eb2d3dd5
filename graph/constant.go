// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/automation"
)

// ConstantSourceNode outputs its offset parameter as a mono signal. Connected
// to another node's parameter it works as an automatable control voltage.
type ConstantSourceNode struct {
	AudioNode
	offset *automation.Param
}

// NewConstantSource returns a source holding offset 1.
func (ctx *Context) NewConstantSource() *ConstantSourceNode {
	s := &ConstantSourceNode{}
	s.init(ctx, nodeSpec{
		kind:        "constant-source",
		inputs:      0,
		outputs:     1,
		channels:    1,
		minChannels: 1,
		maxChannels: 1,
		mode:        Max,
	}, s)
	s.offset = ctx.newParam(&s.AudioNode, "offset", 1, automation.SampleAccurate)

	return s
}

// Offset returns the offset parameter.
func (s *ConstantSourceNode) Offset() *automation.Param { return s.offset }

func (s *ConstantSourceNode) process([]*audio.Block) (*audio.Block, error) {
	return s.offset.Render()
}
