// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"fmt"
	"strings"
)

// Cap is an arrowhead marker at the end of a segment or polyline.
type Cap int

const (
	// CapNone is a plain line end.
	CapNone Cap = iota
	// CapArrowLeft points left, '<'.
	CapArrowLeft
	// CapArrowRight points right, '>'.
	CapArrowRight
	// CapArrowUp points up, '^'.
	CapArrowUp
	// CapArrowDown points down, 'v'.
	CapArrowDown
)

func (c Cap) String() string {
	switch c {
	case CapArrowLeft:
		return "<"
	case CapArrowRight:
		return ">"
	case CapArrowUp:
		return "^"
	case CapArrowDown:
		return "v"
	}
	return ""
}

// A Primitive is a drawable geometric unit produced by tracing, independent
// of visual style. Coordinates are grid cells, not pixels.
type Primitive interface {
	fmt.Stringer
	// Corners returns the points at which the primitive changes direction,
	// including both extremities.
	Corners() []Point
}

// Segment is a straight line between two grid coordinates, optionally capped
// with arrowheads. Start and End always differ.
type Segment struct {
	Start    Point
	End      Point
	StartCap Cap
	EndCap   Cap
}

// Orientation derives the segment's axis from its endpoints.
func (s *Segment) Orientation() Orientation {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	switch {
	case dy == 0:
		return Horizontal
	case dx == 0:
		return Vertical
	case dx >= 0 && dy >= 0:
		return DiagDown
	}
	return DiagUp
}

// Corners implements Primitive.
func (s *Segment) Corners() []Point {
	return []Point{s.Start, s.End}
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment{%s%s-%s%s}", s.StartCap, s.Start, s.End, s.EndCap)
}

// length is the number of cells the segment spans past its start.
func (s *Segment) length() int {
	dx := abs(s.End.X - s.Start.X)
	dy := abs(s.End.Y - s.Start.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// id packs the segment coordinates into a sortable identity. It doubles as
// the seed material for rough-mode jitter, which keeps rendering a pure
// function of geometry.
func (s *Segment) id() uint32 {
	return uint32(s.End.Y&0xFF)<<24 | uint32(s.End.X&0xFF)<<16 |
		uint32(s.Start.Y&0xFF)<<8 | uint32(s.Start.X&0xFF)
}

// cells yields every grid cell the segment covers, endpoints included.
func (s *Segment) cells() []Point {
	n := s.length()
	out := make([]Point, 0, n+1)
	sx, sy := sign(s.End.X-s.Start.X), sign(s.End.Y-s.Start.Y)
	for i := 0; i <= n; i++ {
		out = append(out, Point{X: s.Start.X + i*sx, Y: s.Start.Y + i*sy})
	}
	return out
}

// Polyline is an ordered chain of corner points built from segments merged at
// degree-two '+' cells. Consecutive points always differ along exactly one
// axis or one diagonal. A Closed polyline returns to its first point.
type Polyline struct {
	Points   []Point
	StartCap Cap
	EndCap   Cap
	Closed   bool
}

// Corners implements Primitive.
func (p *Polyline) Corners() []Point {
	return p.Points
}

func (p *Polyline) String() string {
	pts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.String()
	}
	suffix := ""
	if p.Closed {
		suffix = " closed"
	}
	return fmt.Sprintf("Polyline{%s%s%s%s}", p.StartCap, strings.Join(pts, " "), p.EndCap, suffix)
}

// Box is a closed four-corner axis-aligned loop, kept as its own primitive so
// renderers may treat rectangles specially.
type Box struct {
	Min Point
	Max Point
}

// Corners implements Primitive, clockwise from the top-left.
func (b *Box) Corners() []Point {
	return []Point{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
}

func (b *Box) String() string {
	return fmt.Sprintf("Box{%s-%s}", b.Min, b.Max)
}

// Marker is a degenerate zero-length primitive: an isolated '+' or arrow cell
// with no inked neighbors. It renders as a dot or a lone arrow glyph so stray
// marks stay visible.
type Marker struct {
	At  Point
	Cap Cap
}

// Corners implements Primitive.
func (m *Marker) Corners() []Point {
	return []Point{m.At}
}

func (m *Marker) String() string {
	return fmt.Sprintf("Marker{%s%s}", m.At, m.Cap)
}

// Glyph is a single leftover character cell rendered as text.
type Glyph struct {
	At Point
	Ch rune
}

// Model is the tracer output: primitives in deterministic order, leftover
// text glyphs, and the source grid dimensions used to size the canvas.
type Model struct {
	Prims  []Primitive
	Labels []Glyph
	Cols   int
	Rows   int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
