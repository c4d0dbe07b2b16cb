// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestTrace(t *testing.T) {
	t.Parallel()
	data := []struct {
		input  []string
		prims  []string
		labels string
	}{
		// 0 Horizontal segment capped on both ends.
		{
			[]string{"<---+--->"},
			[]string{"Segment{<(0,0)-(8,0)>}"},
			"",
		},
		// 1 Arrow on one end only.
		{
			[]string{"+--->"},
			[]string{"Segment{(0,0)-(4,0)>}"},
			"",
		},
		// 2 Plain segment between two corners.
		{
			[]string{"+----+"},
			[]string{"Segment{(0,0)-(5,0)}"},
			"",
		},
		// 3 Vertical segment with an up arrow.
		{
			[]string{
				"^",
				"|",
				"+",
			},
			[]string{"Segment{^(0,0)-(0,2)}"},
			"",
		},
		// 4 Elbow: two runs joined at a degree-two corner.
		{
			[]string{
				"+-->",
				"|",
				"v",
			},
			[]string{"Polyline{v(0,2) (0,0) (3,0)>}"},
			"",
		},
		// 5 Rectangle closes into a box.
		{
			[]string{
				"+--+",
				"|  |",
				"+--+",
			},
			[]string{"Box{(0,0)-(3,2)}"},
			"",
		},
		// 6 Adjacent corners also match the diagonal scans, so every corner
		// of a tight box is a junction and nothing closes.
		{
			[]string{
				"++",
				"++",
			},
			[]string{
				"Segment{(0,0)-(1,0)}",
				"Segment{(0,1)-(1,0)}",
				"Segment{(0,0)-(0,1)}",
				"Segment{(0,0)-(1,1)}",
				"Segment{(1,0)-(1,1)}",
				"Segment{(0,1)-(1,1)}",
			},
			"",
		},
		// 7 Box interior text survives as labels.
		{
			[]string{
				"+--+",
				"|Hi|",
				"+--+",
			},
			[]string{"Box{(0,0)-(3,2)}"},
			"Hi",
		},
		// 8 Shared wall: the outer loop closes, the divider stays a segment.
		{
			[]string{
				"+-+-+",
				"| | |",
				"+-+-+",
			},
			[]string{"Box{(0,0)-(4,2)}", "Segment{(2,0)-(2,2)}"},
			"",
		},
		// 9 Crossing runs merge colinearly and stay two segments.
		{
			[]string{
				"    +",
				"    |",
				"+---+---+",
				"    |",
				"    +",
			},
			[]string{"Segment{(0,2)-(8,2)}", "Segment{(4,0)-(4,4)}"},
			"",
		},
		// 10 Tee: the stem meets the bar mid-run, nothing merges.
		{
			[]string{
				"+--+--+",
				"   |",
				"   +",
			},
			[]string{"Segment{(0,0)-(6,0)}", "Segment{(3,0)-(3,2)}"},
			"",
		},
		// 11 Three segment ends on one '+' is a junction, not a corner.
		{
			[]string{
				"+--+",
				"   |\\",
				"   | \\",
				"   +  +",
			},
			[]string{
				"Segment{(0,0)-(3,0)}",
				"Segment{(3,0)-(3,3)}",
				"Segment{(3,0)-(6,3)}",
			},
			"",
		},
		// 12 Down-right diagonal.
		{
			[]string{
				"+",
				" \\",
				"  +",
			},
			[]string{"Segment{(0,0)-(2,2)}"},
			"",
		},
		// 13 Up-right diagonal runs bottom-left to top-right.
		{
			[]string{
				"  +",
				" /",
				"+",
			},
			[]string{"Segment{(0,2)-(2,0)}"},
			"",
		},
		// 14 A run without a closing terminator is not a run.
		{
			[]string{"+---"},
			nil,
			"+---",
		},
		// 15 Isolated marks become markers.
		{
			[]string{">  +"},
			[]string{"Marker{(0,0)>}", "Marker{(3,0)}"},
			"",
		},
		// 16 Marks touching other ink stay text.
		{
			[]string{"C++"},
			nil,
			"C++",
		},
		// 17 Empty input, empty model.
		{
			[]string{""},
			nil,
			"",
		},
		// 18 Two boxes and a connecting arrow.
		{
			[]string{
				"+------+      +------+",
				"| Tx   +----->| Rx   |",
				"+------+      +------+",
			},
			[]string{
				"Box{(0,0)-(7,2)}",
				"Box{(14,0)-(21,2)}",
				"Segment{(7,1)-(13,1)>}",
			},
			"TxRx",
		},
	}
	for i, line := range data {
		g, err := NewGrid(strings.Join(line.input, "\n"))
		ut.AssertEqualIndex(t, i, nil, err)
		m := Trace(g)
		prims := make([]string, 0, len(m.Prims))
		for _, p := range m.Prims {
			prims = append(prims, p.String())
		}
		if len(prims) == 0 {
			prims = nil
		}
		ut.AssertEqualIndex(t, i, line.prims, prims)
		var labels strings.Builder
		for _, gl := range m.Labels {
			labels.WriteRune(gl.Ch)
		}
		ut.AssertEqualIndex(t, i, line.labels, labels.String())
	}
}

func TestTraceDimensions(t *testing.T) {
	t.Parallel()
	g, err := NewGrid("+--+\n|  |\n+--+")
	ut.AssertEqual(t, nil, err)
	m := Trace(g)
	ut.AssertEqual(t, 4, m.Cols)
	ut.AssertEqual(t, 3, m.Rows)
}

func TestTraceIdempotent(t *testing.T) {
	t.Parallel()
	g, err := NewGrid("+--+   +->\n|  |   |\n+--+   ^")
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, Trace(g), Trace(g))
}

func TestSegmentOrientation(t *testing.T) {
	t.Parallel()
	data := []struct {
		seg      Segment
		expected Orientation
	}{
		{Segment{Start: Point{0, 0}, End: Point{5, 0}}, Horizontal},
		{Segment{Start: Point{0, 0}, End: Point{0, 5}}, Vertical},
		{Segment{Start: Point{0, 0}, End: Point{5, 5}}, DiagDown},
		{Segment{Start: Point{0, 5}, End: Point{5, 0}}, DiagUp},
	}
	for i, line := range data {
		s := line.seg
		ut.AssertEqualIndex(t, i, line.expected, s.Orientation())
	}
}
