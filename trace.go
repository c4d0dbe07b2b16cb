// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import "sort"

// Trace converts a grid into a Model. It is total: any input, however
// geometrically nonsensical, produces some valid collection of primitives.
// The grid is only read, so tracing the same grid twice yields equal models.
//
// The pass structure is: directional run scans, colinear merge, deterministic
// ordering, arrowhead caps, corner joining at '+' cells, then markers and
// leftover label glyphs.
func Trace(g *Grid) *Model {
	t := &tracer{g: g, consumed: map[Point]bool{}}

	segs := t.scan(Horizontal, nextHorizontal)
	segs = append(segs, t.scan(Vertical, nextVertical)...)
	segs = append(segs, t.scan(DiagDown, nextDiagDown)...)
	segs = append(segs, t.scan(DiagUp, nextDiagUp)...)
	segs = mergeColinear(segs)
	sortSegments(segs)

	for i := range segs {
		segs[i].StartCap = Classify(g.at(segs[i].Start)).cap()
		segs[i].EndCap = Classify(g.at(segs[i].End)).cap()
		for _, p := range segs[i].cells() {
			t.consumed[p] = true
		}
	}

	m := &Model{Cols: g.Width(), Rows: g.Height()}
	m.Prims = t.join(segs)
	m.Prims = append(m.Prims, t.markers()...)
	m.Labels = t.labels()
	return m
}

// tracer carries the scratch state of one Trace call.
type tracer struct {
	g        *Grid
	consumed map[Point]bool
}

// scan finds all runs along one orientation. A run starts and ends on a
// terminator ('+' or an arrow of matching axis), is bodied by edge cells, and
// breaks on anything else. Runs without a closing terminator are discarded;
// their cells stay available for labels.
func (t *tracer) scan(o Orientation, adjacent func(a, b Point) bool) []Segment {
	var out []Segment
	tracking := false
	var track Segment
	for _, pos := range t.order(o) {
		role := Classify(t.g.at(pos)).roleFor(o)
		if role == roleNone {
			continue
		}
		if !tracking {
			if role == roleTerm {
				tracking = true
				track = Segment{Start: pos, End: pos}
			}
			continue
		}
		switch {
		case adjacent(track.End, pos):
			if role == roleTerm {
				if s := (Segment{Start: track.Start, End: pos}); s.length() >= 1 {
					out = append(out, s)
				}
				track = Segment{Start: pos, End: pos}
			} else {
				track.End = pos
			}
		case role == roleTerm:
			// A terminator off the current track restarts tracking there.
			track = Segment{Start: pos, End: pos}
		default:
			tracking = false
		}
	}
	return out
}

// order yields every grid position in the traversal order of the given
// orientation: row-major, column-major, or diagonal slices anchored on the
// left and top (or left and bottom) grid edges.
func (t *tracer) order(o Orientation) []Point {
	cols, rows := t.g.Width(), t.g.Height()
	out := make([]Point, 0, cols*rows)
	switch o {
	case Horizontal:
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out = append(out, Point{X: x, Y: y})
			}
		}
	case Vertical:
		for x := 0; x < cols; x++ {
			for y := 0; y < rows; y++ {
				out = append(out, Point{X: x, Y: y})
			}
		}
	case DiagDown:
		for y := 0; y < rows; y++ {
			for p := (Point{X: 0, Y: y}); p.X < cols && p.Y < rows; p.X, p.Y = p.X+1, p.Y+1 {
				out = append(out, p)
			}
		}
		for x := 1; x < cols; x++ {
			for p := (Point{X: x, Y: 0}); p.X < cols && p.Y < rows; p.X, p.Y = p.X+1, p.Y+1 {
				out = append(out, p)
			}
		}
	case DiagUp:
		for y := 0; y < rows; y++ {
			for p := (Point{X: 0, Y: y}); p.X < cols && p.Y >= 0; p.X, p.Y = p.X+1, p.Y-1 {
				out = append(out, p)
			}
		}
		for x := 1; x < cols; x++ {
			for p := (Point{X: x, Y: rows - 1}); p.X < cols && p.Y >= 0; p.X, p.Y = p.X+1, p.Y-1 {
				out = append(out, p)
			}
		}
	}
	return out
}

// colinear returns true when the two segments lie on the same axis and share
// an endpoint, which happens when one run terminated on a '+' another run
// continued through.
func colinear(a, b *Segment) bool {
	return a.Orientation() == b.Orientation() &&
		(a.Start == b.Start || a.End == b.Start || a.End == b.End || a.Start == b.End)
}

// extend grows a in place to the degenerate bounding box of both segments.
func extend(a, b *Segment) {
	minX := min4(a.Start.X, a.End.X, b.Start.X, b.End.X)
	maxX := max4(a.Start.X, a.End.X, b.Start.X, b.End.X)
	minY := min4(a.Start.Y, a.End.Y, b.Start.Y, b.End.Y)
	maxY := max4(a.Start.Y, a.End.Y, b.Start.Y, b.End.Y)
	if a.Orientation() == DiagUp {
		a.Start = Point{X: minX, Y: maxY}
		a.End = Point{X: maxX, Y: minY}
		return
	}
	a.Start = Point{X: minX, Y: minY}
	a.End = Point{X: maxX, Y: maxY}
}

func mergeColinear(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		merged := false
		for i := range out {
			if colinear(&out[i], &s) {
				extend(&out[i], &s)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, s)
		}
	}
	return out
}

func sortSegments(segs []Segment) {
	sort.Slice(segs, func(i, j int) bool {
		a, b := &segs[i], &segs[j]
		if a.id() != b.id() {
			return a.id() < b.id()
		}
		if a.Start != b.Start {
			if a.Start.Y != b.Start.Y {
				return a.Start.Y < b.Start.Y
			}
			return a.Start.X < b.Start.X
		}
		if a.End.Y != b.End.Y {
			return a.End.Y < b.End.Y
		}
		return a.End.X < b.End.X
	})
}

// endRef identifies one end of one segment.
type endRef struct {
	seg   int
	start bool
}

// join chains segments that meet at degree-two '+' joints into polylines.
// Joints where three or more segments meet are junctions: every segment keeps
// the shared coordinate and none merge or drop. Chains that return to their
// first point close; closed four-corner rectangles become boxes.
func (t *tracer) join(segs []Segment) []Primitive {
	joints := map[Point][]endRef{}
	for i := range segs {
		if Classify(t.g.at(segs[i].Start)) == ClassCorner {
			joints[segs[i].Start] = append(joints[segs[i].Start], endRef{seg: i, start: true})
		}
		if Classify(t.g.at(segs[i].End)) == ClassCorner {
			joints[segs[i].End] = append(joints[segs[i].End], endRef{seg: i, start: false})
		}
	}

	// next returns the unvisited segment reachable from cur through a
	// degree-two joint, arriving via curSeg.
	next := func(cur Point, curSeg int, used []bool) (int, bool) {
		refs := joints[cur]
		if len(refs) != 2 {
			return 0, false
		}
		for _, r := range refs {
			if r.seg != curSeg && !used[r.seg] {
				return r.seg, true
			}
		}
		return 0, false
	}
	far := func(i int, from Point) Point {
		if segs[i].Start == from {
			return segs[i].End
		}
		return segs[i].Start
	}
	capAt := func(i int, p Point) Cap {
		if segs[i].Start == p {
			return segs[i].StartCap
		}
		return segs[i].EndCap
	}

	used := make([]bool, len(segs))
	var out []Primitive
	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		seq := []Point{segs[i].Start, segs[i].End}
		startCap, endCap := segs[i].StartCap, segs[i].EndCap
		closed := false
		single := true

		// Forward from the tail.
		cur, curSeg := segs[i].End, i
		for {
			j, ok := next(cur, curSeg, used)
			if !ok {
				// A used neighbor at a degree-two joint means the walk came
				// back around to the head segment.
				if refs := joints[cur]; len(refs) == 2 && cur == seq[0] && !single {
					closed = true
					seq = seq[:len(seq)-1]
				}
				break
			}
			used[j] = true
			single = false
			p := far(j, cur)
			seq = append(seq, p)
			endCap = capAt(j, p)
			cur, curSeg = p, j
		}

		// Backward from the head. The segment touching the head is still i;
		// the forward walk only ever grows the tail.
		if !closed {
			cur, curSeg = seq[0], i
			for {
				j, ok := next(cur, curSeg, used)
				if !ok {
					break
				}
				used[j] = true
				single = false
				p := far(j, cur)
				seq = append([]Point{p}, seq...)
				startCap = capAt(j, p)
				cur, curSeg = p, j
			}
		}

		if single {
			s := segs[i]
			out = append(out, &s)
			continue
		}
		if b, ok := asBox(seq, closed); ok {
			out = append(out, b)
			continue
		}
		out = append(out, &Polyline{Points: seq, StartCap: startCap, EndCap: endCap, Closed: closed})
	}
	return out
}

// asBox recognizes a closed four-corner axis-aligned loop.
func asBox(seq []Point, closed bool) (*Box, bool) {
	if !closed || len(seq) != 4 {
		return nil, false
	}
	minX, maxX := seq[0].X, seq[0].X
	minY, maxY := seq[0].Y, seq[0].Y
	for _, p := range seq[1:] {
		minX, maxX = min2(minX, p.X), max2(maxX, p.X)
		minY, maxY = min2(minY, p.Y), max2(maxY, p.Y)
	}
	want := map[Point]bool{
		{X: minX, Y: minY}: true,
		{X: maxX, Y: minY}: true,
		{X: maxX, Y: maxY}: true,
		{X: minX, Y: maxY}: true,
	}
	if len(want) != 4 {
		// Degenerate rectangle (zero width or height).
		return nil, false
	}
	for _, p := range seq {
		if !want[p] {
			return nil, false
		}
		delete(want, p)
	}
	return &Box{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}, true
}

// markers finds isolated '+'/arrow cells: classified but consumed by no run,
// with all eight neighbors blank. They become zero-length marker primitives
// instead of silently vanishing.
func (t *tracer) markers() []Primitive {
	var out []Primitive
	for y := 0; y < t.g.Height(); y++ {
		for x := 0; x < t.g.Width(); x++ {
			p := Point{X: x, Y: y}
			c := Classify(t.g.at(p))
			if t.consumed[p] || (c != ClassCorner && !c.isArrow()) {
				continue
			}
			isolated := true
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if t.g.Get(x+dx, y+dy) != blank {
						isolated = false
					}
				}
			}
			if isolated {
				t.consumed[p] = true
				out = append(out, &Marker{At: p, Cap: c.cap()})
			}
		}
	}
	return out
}

// labels collects every inked cell no run or marker claimed.
func (t *tracer) labels() []Glyph {
	var out []Glyph
	for y := 0; y < t.g.Height(); y++ {
		for x := 0; x < t.g.Width(); x++ {
			p := Point{X: x, Y: y}
			if ch := t.g.at(p); ch != blank && !t.consumed[p] {
				out = append(out, Glyph{At: p, Ch: ch})
			}
		}
	}
	return out
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min4(a, b, c, d int) int {
	return min2(min2(a, b), min2(c, d))
}

func max4(a, b, c, d int) int {
	return max2(max2(a, b), max2(c, d))
}
