// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"slices"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/automation"
)

// inputPort receives from any number of output ports and mixes them.
type inputPort struct {
	owner   *AudioNode
	index   int
	sources []*outputPort
}

// outputPort feeds any number of input ports and parameters.
type outputPort struct {
	owner  *AudioNode
	index  int
	dests  []*inputPort
	params []*paramPort
}

// paramPort is a parameter as the target of connections.
type paramPort struct {
	owner   *AudioNode
	param   *automation.Param
	sources []*outputPort
}

// Render makes an output port usable as a parameter input.
func (o *outputPort) Render() (*audio.Block, error) {
	return o.owner.Render()
}

func (o *outputPort) link(in *inputPort) bool {
	if slices.Contains(o.dests, in) {
		return false
	}

	o.dests = append(o.dests, in)
	in.sources = append(in.sources, o)

	return true
}

func (o *outputPort) unlink(in *inputPort) bool {
	i := slices.Index(o.dests, in)
	if i < 0 {
		return false
	}

	o.dests = slices.Delete(o.dests, i, i+1)
	in.sources = slices.DeleteFunc(in.sources, func(s *outputPort) bool { return s == o })

	return true
}

func (o *outputPort) linkParam(pp *paramPort) bool {
	if slices.Contains(o.params, pp) {
		return false
	}

	o.params = append(o.params, pp)
	pp.sources = append(pp.sources, o)
	pp.param.AddInput(o)

	return true
}

func (o *outputPort) unlinkParam(pp *paramPort) {
	o.params = slices.DeleteFunc(o.params, func(p *paramPort) bool { return p == pp })
	pp.sources = slices.DeleteFunc(pp.sources, func(s *outputPort) bool { return s == o })
	pp.param.RemoveInput(o)
}

// unlinkAll severs every edge leaving o.
func (o *outputPort) unlinkAll() {
	for _, in := range slices.Clone(o.dests) {
		o.unlink(in)
	}

	for _, pp := range slices.Clone(o.params) {
		o.unlinkParam(pp)
	}
}
