// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"hash/fnv"
	"math"
)

// vec is a point in final pixel space.
type vec struct {
	X float64
	Y float64
}

// strokePath is one stroked path in pixel space: an open or closed chain of
// points plus the jitter seed derived from its geometry.
type strokePath struct {
	pts    []vec
	closed bool
	seed   uint64
}

// glyph is one label character positioned at its cell center.
type glyph struct {
	at vec
	ch rune
}

// Job binds a traced Model to a normalized Style. Construction eagerly maps
// every primitive from grid coordinates into pixel space, so emitters work in
// final coordinates only. A Job is immutable; build a new one per request.
type Job struct {
	style    Style
	width    float64
	height   float64
	dx       float64
	dy       float64
	fontSize float64
	paths    []strokePath
	glyphs   []glyph
}

// NewJob prepares a render of m under s. It cannot fail: scales and canvas
// dimensions are clamped rather than rejected.
func NewJob(m *Model, s Style) *Job {
	s = s.normalized()
	cols := max2(m.Cols, 1)
	rows := max2(m.Rows, 1)
	j := &Job{style: s}
	j.width = clampCanvas(s.Width, float64(cols)*s.ScaleX)
	j.height = clampCanvas(s.Height, float64(rows)*s.ScaleY)
	j.dx = j.width / float64(cols)
	j.dy = j.height / float64(rows)
	j.fontSize = 1.6 * math.Min(j.dx, j.dy)

	for _, prim := range m.Prims {
		switch p := prim.(type) {
		case *Segment:
			j.addPath([]vec{j.posMap(p.Start), j.posMap(p.End)}, false)
			j.addCap(p.StartCap, p.Start)
			j.addCap(p.EndCap, p.End)
		case *Polyline:
			pts := make([]vec, len(p.Points))
			for i, gp := range p.Points {
				pts[i] = j.posMap(gp)
			}
			j.addPath(pts, p.Closed)
			if !p.Closed {
				j.addCap(p.StartCap, p.Points[0])
				j.addCap(p.EndCap, p.Points[len(p.Points)-1])
			}
		case *Box:
			corners := p.Corners()
			pts := make([]vec, len(corners))
			for i, gp := range corners {
				pts[i] = j.posMap(gp)
			}
			j.addPath(pts, true)
		case *Marker:
			if p.Cap == CapNone {
				j.addDot(p.At)
			} else {
				j.addCap(p.Cap, p.At)
			}
		}
	}
	for _, l := range m.Labels {
		j.glyphs = append(j.glyphs, glyph{at: j.posMap(l.At), ch: l.Ch})
	}
	return j
}

// Render is the one-call form: trace output plus style in, SVG text out. It
// is total for any model; style irregularities are clamped.
func Render(m *Model, s Style) string {
	return string(NewJob(m, s).SVG())
}

// Width returns the canvas width in pixels.
func (j *Job) Width() float64 { return j.width }

// Height returns the canvas height in pixels.
func (j *Job) Height() float64 { return j.height }

// posMap maps a grid cell to the pixel position of its center.
func (j *Job) posMap(p Point) vec {
	return vec{
		X: (float64(p.X) + 0.5) * j.dx,
		Y: (float64(p.Y) + 0.5) * j.dy,
	}
}

func (j *Job) addPath(pts []vec, closed bool) {
	j.paths = append(j.paths, strokePath{pts: pts, closed: closed, seed: pathSeed(pts)})
}

// addCap appends the arrowhead triangle for a cap at the given cell. The
// glyph spans one cell beyond the cell center along the arrow direction.
func (j *Job) addCap(c Cap, at Point) {
	if c == CapNone {
		return
	}
	p0 := j.posMap(at)
	var pts []vec
	switch c {
	case CapArrowRight:
		pts = []vec{{p0.X, p0.Y - 0.3*j.dy}, {p0.X + j.dx, p0.Y}, {p0.X, p0.Y + 0.3*j.dy}}
	case CapArrowLeft:
		pts = []vec{{p0.X, p0.Y - 0.3*j.dy}, {p0.X - j.dx, p0.Y}, {p0.X, p0.Y + 0.3*j.dy}}
	case CapArrowDown:
		pts = []vec{{p0.X - 0.5*j.dx, p0.Y}, {p0.X, p0.Y + j.dy}, {p0.X + 0.5*j.dx, p0.Y}}
	case CapArrowUp:
		pts = []vec{{p0.X - 0.5*j.dx, p0.Y}, {p0.X, p0.Y - j.dy}, {p0.X + 0.5*j.dx, p0.Y}}
	}
	j.addPath(pts, true)
}

// addDot draws an isolated endpoint as a small diamond around the cell
// center.
func (j *Job) addDot(at Point) {
	p0 := j.posMap(at)
	r := 0.15 * math.Min(j.dx, j.dy)
	pts := []vec{
		{p0.X, p0.Y - r},
		{p0.X + r, p0.Y},
		{p0.X, p0.Y + r},
		{p0.X - r, p0.Y},
	}
	j.addPath(pts, true)
}

// pen returns the stroke generator for the job's mode.
func (j *Job) pen() pen {
	if j.style.Mode == Formal {
		return formalPen()
	}
	return roughPen()
}

// pathSeed derives the jitter seed from the path geometry, quantized to
// sixteenths of a pixel. Identical geometry always jitters identically.
func pathSeed(pts []vec) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	put := func(v float64) {
		q := int64(math.Round(v * 16))
		for i := 0; i < 8; i++ {
			buf[i] = byte(q >> (8 * i))
		}
		_, _ = h.Write(buf)
	}
	for _, p := range pts {
		put(p.X)
		put(p.Y)
	}
	return h.Sum64()
}

// clampCanvas picks the override when set, the computed size otherwise, and
// keeps the result in [1, maxCanvas] so pathological scales cannot overflow
// the emitters.
func clampCanvas(override, computed float64) float64 {
	v := computed
	if override > 0 {
		v = override
	}
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	if v > maxCanvas {
		return maxCanvas
	}
	return v
}
