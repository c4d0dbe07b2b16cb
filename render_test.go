// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"testing"

	"github.com/maruel/ut"
)

func mustTrace(t *testing.T, input string) *Model {
	g, err := NewGrid(input)
	ut.AssertEqual(t, nil, err)
	return Trace(g)
}

func TestNewJobDefaults(t *testing.T) {
	t.Parallel()
	m := mustTrace(t, "+--+\n|  |\n+--+")
	j := NewJob(m, DefaultStyle())
	ut.AssertEqual(t, 40.0, j.Width())
	ut.AssertEqual(t, 45.0, j.Height())
	ut.AssertEqual(t, 10.0, j.dx)
	ut.AssertEqual(t, 15.0, j.dy)
	ut.AssertEqual(t, 16.0, j.fontSize)
}

func TestNewJobCanvasOverride(t *testing.T) {
	t.Parallel()
	m := mustTrace(t, "+--+\n|  |\n+--+")
	s := DefaultStyle()
	s.Width = 300
	s.Height = 200
	j := NewJob(m, s)
	ut.AssertEqual(t, 300.0, j.Width())
	ut.AssertEqual(t, 200.0, j.Height())
	ut.AssertEqual(t, 75.0, j.dx)
}

func TestNewJobClamping(t *testing.T) {
	t.Parallel()
	m := mustTrace(t, "+--+\n|  |\n+--+")
	data := []struct {
		style  Style
		width  float64
		height float64
	}{
		// 0 Tiny scales floor at the minimum canvas size.
		{Style{ScaleX: -5, ScaleY: -5}, 1, 1},
		// 1 Huge scales cap at the maximum canvas size.
		{Style{ScaleX: 1e18}, float64(maxCanvas), 45},
		// 2 Negative overrides are ignored.
		{Style{Width: -10, Height: -10}, 40, 45},
		// 3 Oversized overrides cap too.
		{Style{Width: 1e18}, float64(maxCanvas), 45},
	}
	for i, line := range data {
		j := NewJob(m, line.style)
		ut.AssertEqualIndex(t, i, line.width, j.Width())
		ut.AssertEqualIndex(t, i, line.height, j.Height())
	}
}

func TestNewJobEmptyModel(t *testing.T) {
	t.Parallel()
	m := mustTrace(t, "")
	j := NewJob(m, DefaultStyle())
	// An empty grid still yields a one-cell canvas.
	ut.AssertEqual(t, 10.0, j.Width())
	ut.AssertEqual(t, 15.0, j.Height())
	ut.AssertEqual(t, 0, len(j.paths))
	ut.AssertEqual(t, 0, len(j.glyphs))
}

func TestJobPosMap(t *testing.T) {
	t.Parallel()
	m := mustTrace(t, "+--+\n|  |\n+--+")
	j := NewJob(m, DefaultStyle())
	ut.AssertEqual(t, vec{X: 5, Y: 7.5}, j.posMap(Point{X: 0, Y: 0}))
	ut.AssertEqual(t, vec{X: 35, Y: 37.5}, j.posMap(Point{X: 3, Y: 2}))
}

func TestJobPaths(t *testing.T) {
	t.Parallel()
	data := []struct {
		input  string
		paths  int
		glyphs int
	}{
		// 0 A double-capped segment is a line plus two arrowhead triangles.
		{"<---+--->", 3, 0},
		// 1 A box is a single closed path.
		{"+--+\n|  |\n+--+", 1, 0},
		// 2 An isolated '+' is a dot, an isolated arrow its triangle.
		{">  +", 2, 0},
		// 3 Text is glyphs, not paths.
		{"hello", 0, 5},
	}
	for i, line := range data {
		j := NewJob(mustTrace(t, line.input), DefaultStyle())
		ut.AssertEqualIndex(t, i, line.paths, len(j.paths))
		ut.AssertEqualIndex(t, i, line.glyphs, len(j.glyphs))
	}
}

func TestJobCapGeometry(t *testing.T) {
	t.Parallel()
	j := NewJob(mustTrace(t, "+--->"), DefaultStyle())
	ut.AssertEqual(t, 2, len(j.paths))
	// The arrowhead is a closed triangle spanning one cell past the tip
	// center.
	tri := j.paths[1]
	ut.AssertEqual(t, true, tri.closed)
	ut.AssertEqual(t, []vec{{45, 3}, {55, 7.5}, {45, 12}}, tri.pts)
}

func TestPathSeedStable(t *testing.T) {
	t.Parallel()
	a := []vec{{X: 5, Y: 7.5}, {X: 35, Y: 7.5}}
	b := []vec{{X: 5, Y: 7.5}, {X: 35, Y: 7.5}}
	ut.AssertEqual(t, pathSeed(a), pathSeed(b))
	c := []vec{{X: 5, Y: 7.5}, {X: 35, Y: 22.5}}
	if pathSeed(a) == pathSeed(c) {
		t.Fatal("distinct geometry should seed differently")
	}
}
