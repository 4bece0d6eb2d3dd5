// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"math"
	"testing"

	"github.com/ik5/audgraph/vec3"
)

func TestAzimuthElevation(t *testing.T) {
	t.Parallel()

	front := vec3.New(0, 0, -1)
	up := vec3.New(0, 1, 0)

	tests := []struct {
		name     string
		source   vec3.Vec
		listener vec3.Vec
		front    vec3.Vec
		wantAz   float64
		wantEl   float64
	}{
		{"ahead", vec3.New(0, 0, -1), vec3.Vec{}, front, 0, 0},
		{"right", vec3.New(1, 0, 0), vec3.Vec{}, front, 90, 0},
		{"left", vec3.New(-1, 0, 0), vec3.Vec{}, front, -90, 0},
		{"front right", vec3.New(1, 0, -1), vec3.Vec{}, front, 45, 0},
		{"rear left", vec3.New(-1, 0, 1), vec3.Vec{}, front, -135, 0},
		{"up right", vec3.New(1, 1, 0), vec3.Vec{}, front, 90, 45},
		{"down ahead", vec3.New(0, -1, -1), vec3.Vec{}, front, 0, -45},
		{"listener moved", vec3.New(10, 0, -3), vec3.New(10, 0, 0), front, 0, 0},
		{"listener turned", vec3.New(0, 0, 5), vec3.Vec{}, vec3.New(1, 0, 0), 90, 0},
		{"same position", vec3.New(2, 2, 2), vec3.New(2, 2, 2), front, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			az, el := AzimuthElevation(tt.source, tt.listener, tt.front, up)
			if math.Abs(az-tt.wantAz) > 1e-9 || math.Abs(el-tt.wantEl) > 1e-9 {
				t.Errorf("AzimuthElevation() = (%v, %v), want (%v, %v)", az, el, tt.wantAz, tt.wantEl)
			}
		})
	}
}

func TestAzimuthElevation_Behind(t *testing.T) {
	t.Parallel()

	// directly behind lands on the ±180 seam
	az, el := AzimuthElevation(vec3.New(0, 0, 1), vec3.Vec{}, vec3.New(0, 0, -1), vec3.New(0, 1, 0))
	if math.Abs(math.Abs(az)-180) > 1e-9 || math.Abs(el) > 1e-9 {
		t.Errorf("AzimuthElevation() = (%v, %v), want (±180, 0)", az, el)
	}
}

func TestAzimuthElevation_Zenith(t *testing.T) {
	t.Parallel()

	front, up := vec3.New(0, 0, -1), vec3.New(0, 1, 0)

	_, el := AzimuthElevation(vec3.New(0, 3, 0), vec3.Vec{}, front, up)
	if math.Abs(el-90) > 1e-9 {
		t.Errorf("elevation above = %v, want 90", el)
	}

	_, el = AzimuthElevation(vec3.New(0, -3, 0), vec3.Vec{}, front, up)
	if math.Abs(el+90) > 1e-9 {
		t.Errorf("elevation below = %v, want -90", el)
	}
}
