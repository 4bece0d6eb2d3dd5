// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/errs"
)

const testRate = 44100

func unitBlock(channels int) *audio.Block {
	b := audio.NewBlock(channels, 128, testRate)
	b.Fill(1)

	return b
}

func TestEqualPowerPanner_StereoPositions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		azimuth      float64
		wantL, wantR float64
	}{
		{0, 1, 1},
		{-90, 2, 0},
		{90, 0, 2},
		{180, 1, 1},
		{-180, 1, 1},
		{270, 1, 1},
	}

	for _, tt := range tests {
		p := NewEqualPowerPanner(testRate)
		out := audio.NewBlock(2, 128, testRate)

		if err := p.Pan(tt.azimuth, 0, unitBlock(2), out); err != nil {
			t.Fatalf("Pan(%v) error = %v", tt.azimuth, err)
		}

		for i := range out.Frames() {
			l, r := out.Channel(0)[i], out.Channel(1)[i]
			if math.Abs(l-tt.wantL) > 1e-12 || math.Abs(r-tt.wantR) > 1e-12 {
				t.Fatalf("Pan(%v) frame %d = (%v, %v), want (%v, %v)", tt.azimuth, i, l, r, tt.wantL, tt.wantR)
			}
		}
	}
}

func TestEqualPowerPanner_MonoIsEqualPower(t *testing.T) {
	t.Parallel()

	for az := -180.0; az <= 180; az += 15 {
		p := NewEqualPowerPanner(testRate)
		out := audio.NewBlock(2, 128, testRate)

		if err := p.Pan(az, 0, unitBlock(1), out); err != nil {
			t.Fatal(err)
		}

		l, r := out.Channel(0)[0], out.Channel(1)[0]
		if power := l*l + r*r; math.Abs(power-1) > 1e-12 {
			t.Errorf("azimuth %v: L²+R² = %v, want 1", az, power)
		}
	}

	p := NewEqualPowerPanner(testRate)
	out := audio.NewBlock(2, 128, testRate)
	_ = p.Pan(0, 0, unitBlock(1), out)

	if l, r := out.Channel(0)[5], out.Channel(1)[5]; math.Abs(l-math.Sqrt2/2) > 1e-12 || math.Abs(r-math.Sqrt2/2) > 1e-12 {
		t.Errorf("centered mono = (%v, %v), want (√½, √½)", l, r)
	}
}

func TestEqualPowerPanner_Smoothing(t *testing.T) {
	t.Parallel()

	p := NewEqualPowerPanner(testRate)
	out := audio.NewBlock(2, 128, testRate)

	// hard left, snapped
	if err := p.Pan(-90, 0, unitBlock(1), out); err != nil {
		t.Fatal(err)
	}

	if l, r := p.Gains(); math.Abs(l-1) > 1e-12 || math.Abs(r) > 1e-12 {
		t.Fatalf("Gains() after first pan = (%v, %v), want (1, 0)", l, r)
	}

	// hard right, glided
	if err := p.Pan(90, 0, unitBlock(1), out); err != nil {
		t.Fatal(err)
	}

	k := SmoothingCoefficient(testRate)
	if got, want := out.Channel(0)[0], 1-k; math.Abs(got-want) > 1e-12 {
		t.Errorf("first smoothed left sample = %v, want %v", got, want)
	}

	left := out.Channel(0)
	for i := 1; i < len(left); i++ {
		if left[i] >= left[i-1] {
			t.Fatalf("left gain not decreasing at %d: %v >= %v", i, left[i], left[i-1])
		}
	}

	if left[127] < 0.9 {
		t.Errorf("left gain fell to %v within one block; 50 ms glide expected", left[127])
	}

	p.Reset()
	_ = p.Pan(90, 0, unitBlock(1), out)

	if l := out.Channel(0)[0]; math.Abs(l) > 1e-12 {
		t.Errorf("left after Reset = %v, want 0", l)
	}
}

func TestSmoothingCoefficient(t *testing.T) {
	t.Parallel()

	want := 1 - math.Exp(-1/(testRate*0.05))
	if got := SmoothingCoefficient(testRate); got != want {
		t.Errorf("SmoothingCoefficient() = %v, want %v", got, want)
	}
}

func TestEqualPowerPanner_Shapes(t *testing.T) {
	t.Parallel()

	p := NewEqualPowerPanner(testRate)

	if err := p.Pan(0, 0, unitBlock(4), audio.NewBlock(2, 128, testRate)); !errors.Is(err, errs.ErrNotSupported) {
		t.Errorf("quad input error = %v, want ErrNotSupported", err)
	}

	if err := p.Pan(0, 0, unitBlock(1), audio.NewBlock(1, 128, testRate)); !errors.Is(err, errs.ErrNotSupported) {
		t.Errorf("mono output error = %v, want ErrNotSupported", err)
	}

	if err := p.Pan(0, 0, unitBlock(1), audio.NewBlock(2, 64, testRate)); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("frame mismatch error = %v, want ErrValidation", err)
	}
}

func BenchmarkEqualPowerPanner_Stereo(b *testing.B) {
	p := NewEqualPowerPanner(testRate)
	in := unitBlock(2)
	out := audio.NewBlock(2, 128, testRate)

	b.ReportAllocs()

	for i := range b.N {
		_ = p.Pan(float64(i%180)-90, 0, in, out)
	}
}
