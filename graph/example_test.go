// SPDX-License-Identifier: EPL-2.0

package graph_test

import (
	"fmt"

	"github.com/ik5/audgraph/graph"
)

func ExampleContext_RenderQuantum() {
	ctx := graph.NewContext(graph.WithSampleRate(4), graph.WithBlockSize(4))

	tone := ctx.NewConstantSource()
	gain := ctx.NewGain()
	_ = tone.Connect(gain, 0, 0)
	_ = gain.Connect(ctx.Destination(), 0, 0)

	// fade in over the first second
	_ = gain.Gain().SetValueAtTime(0, 0)
	_ = gain.Gain().LinearRampToValueAtTime(1, 1)

	for range 2 {
		blk, err := ctx.RenderQuantum()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(blk.Channel(0))
	}

	// Output:
	// [0 0.25 0.5 0.75]
	// [1 1 1 1]
}

func ExamplePannerNode() {
	ctx := graph.NewContext(graph.WithBlockSize(4))

	tone := ctx.NewConstantSource()
	panner := ctx.NewPanner()
	_ = tone.Connect(panner, 0, 0)

	// two units to the listener's left
	_ = panner.SetPosition(-2, 0, 0)

	blk, _ := panner.Render()
	fmt.Printf("L=%.2f R=%.2f\n", blk.Channel(0)[0], blk.Channel(1)[0])

	// Output:
	// L=0.50 R=0.00
}
