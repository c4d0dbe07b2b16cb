// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// PNG rasterizes the job. The same stroke ops that feed the SVG emitter are
// replayed onto a raster context, so both outputs show the same jitter for
// the same input.
func (j *Job) PNG() ([]byte, error) {
	w := max2(int(math.Ceil(j.width)), 1)
	h := max2(int(math.Ceil(j.height)), 1)
	dc := gg.NewContext(w, h)

	if j.style.Background != "none" {
		if r, g, b, err := parseColor(j.style.Background); err == nil {
			dc.SetRGB255(r, g, b)
			dc.Clear()
		}
	}

	sr, sg, sb, err := parseColor(j.style.StrokeColor)
	if err != nil {
		sr, sg, sb = 128, 128, 128
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    j.fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	dc.SetRGB255(sr, sg, sb)
	dc.SetLineWidth(1)
	pen := j.pen()
	for _, sp := range j.paths {
		for _, o := range pen.trace(sp) {
			switch o.kind {
			case opMove:
				dc.MoveTo(o.pts[0].X, o.pts[0].Y)
			case opLine:
				dc.LineTo(o.pts[0].X, o.pts[0].Y)
			case opCurve:
				dc.CubicTo(o.pts[0].X, o.pts[0].Y, o.pts[1].X, o.pts[1].Y, o.pts[2].X, o.pts[2].Y)
			case opClose:
				dc.ClosePath()
			}
		}
		dc.Stroke()
	}

	for _, g := range j.glyphs {
		dc.DrawStringAnchored(string(g.ch), g.at.X, g.at.Y, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
