//go:build headless

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"

	"github.com/ik5/audgraph/audio"
)

var errNoDevice = errors.New("built without audio device support (headless)")

type deviceSink struct{}

func newDeviceSink(int, int) (*deviceSink, error) { return nil, errNoDevice }

func (*deviceSink) WriteBlock(*audio.Block) error { return errNoDevice }
func (*deviceSink) Close() error                  { return errNoDevice }
