// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/maruel/ut"
)

func TestPNG(t *testing.T) {
	t.Parallel()
	j := NewJob(mustTrace(t, "+--+\n|Hi|\n+--+"), DefaultStyle())
	out, err := j.PNG()
	ut.AssertEqual(t, nil, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, 40, cfg.Width)
	ut.AssertEqual(t, 45, cfg.Height)
}

func TestPNGTransparentBackground(t *testing.T) {
	t.Parallel()
	s := DefaultStyle()
	s.Background = "none"
	j := NewJob(mustTrace(t, "<---+--->"), s)
	out, err := j.PNG()
	ut.AssertEqual(t, nil, err)
	_, err = png.DecodeConfig(bytes.NewReader(out))
	ut.AssertEqual(t, nil, err)
}

func TestPNGEmptyInput(t *testing.T) {
	t.Parallel()
	j := NewJob(mustTrace(t, ""), DefaultStyle())
	out, err := j.PNG()
	ut.AssertEqual(t, nil, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, 10, cfg.Width)
	ut.AssertEqual(t, 15, cfg.Height)
}
