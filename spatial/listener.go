// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"fmt"

	"github.com/ik5/audgraph/errs"
	"github.com/ik5/audgraph/vec3"
)

// ListenerView is the read-only side of a Listener that panners consume.
type ListenerView interface {
	Position() vec3.Vec
	Front() vec3.Vec
	Up() vec3.Vec
}

// Listener is the point of view every panner in a context renders for.
// Velocity is stored but not used for rendering.
type Listener struct {
	position vec3.Vec
	front    vec3.Vec
	up       vec3.Vec
	velocity vec3.Vec
}

// NewListener returns a listener at the origin facing -Z with +Y up.
func NewListener() *Listener {
	return &Listener{
		front: vec3.New(0, 0, -1),
		up:    vec3.New(0, 1, 0),
	}
}

func (l *Listener) Position() vec3.Vec { return l.position }
func (l *Listener) Front() vec3.Vec    { return l.front }
func (l *Listener) Up() vec3.Vec       { return l.up }
func (l *Listener) Velocity() vec3.Vec { return l.velocity }

func (l *Listener) SetPosition(x, y, z float64) error {
	v, err := finiteVec("listener position", x, y, z)
	if err != nil {
		return err
	}

	l.position = v
	return nil
}

// SetOrientation sets the front vector and the up vector together.
func (l *Listener) SetOrientation(x, y, z, xUp, yUp, zUp float64) error {
	front, err := finiteVec("listener front", x, y, z)
	if err != nil {
		return err
	}

	up, err := finiteVec("listener up", xUp, yUp, zUp)
	if err != nil {
		return err
	}

	l.front, l.up = front, up
	return nil
}

func (l *Listener) SetVelocity(x, y, z float64) error {
	v, err := finiteVec("listener velocity", x, y, z)
	if err != nil {
		return err
	}

	l.velocity = v
	return nil
}

func finiteVec(what string, x, y, z float64) (vec3.Vec, error) {
	v := vec3.New(x, y, z)
	if !v.IsFinite() {
		return vec3.Vec{}, fmt.Errorf("%w: non-finite %s (%v, %v, %v)", errs.ErrValidation, what, x, y, z)
	}

	return v, nil
}
