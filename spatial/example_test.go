// SPDX-License-Identifier: EPL-2.0

package spatial_test

import (
	"fmt"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/spatial"
	"github.com/ik5/audgraph/vec3"
)

func ExampleAzimuthElevation() {
	listener := vec3.Vec{}
	front, up := vec3.New(0, 0, -1), vec3.New(0, 1, 0)

	for _, pos := range []vec3.Vec{
		vec3.New(2, 0, -2),
		vec3.New(2, 0, 0),
		vec3.New(-2, 0, -2),
	} {
		az, _ := spatial.AzimuthElevation(pos, listener, front, up)
		fmt.Printf("%v: azimuth %.0f\n", pos, az)
	}

	// Output:
	// {2 0 -2}: azimuth 45
	// {2 0 0}: azimuth 90
	// {-2 0 -2}: azimuth -45
}

func ExampleEqualPowerPanner_Pan() {
	in := audio.NewBlock(1, 4, 48000)
	in.Fill(1)
	out := audio.NewBlock(2, 4, 48000)

	p := spatial.NewEqualPowerPanner(48000)
	_ = p.Pan(-90, 0, in, out)

	fmt.Printf("L=%.2f R=%.2f\n", out.Channel(0)[0], out.Channel(1)[0])

	// Output:
	// L=1.00 R=0.00
}

func ExampleSource_Gains() {
	src := spatial.NewSource()
	_ = src.SetPosition(0, 0, -4)

	dist, cone, _ := src.Gains(spatial.NewListener())
	fmt.Printf("distance %.2f cone %.2f\n", dist, cone)

	// Output:
	// distance 0.25 cone 1.00
}
