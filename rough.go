// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"math"
	"math/rand"
)

// pen turns stroke paths into drawing ops. The zero pen draws exact straight
// lines; the rough pen perturbs them with bounded jitter and a second
// overlay stroke to fake a hand-drawn look.
//
// Jitter is a pure function of the path: every path carries a seed computed
// from its own geometry, so repeated renders of identical input are
// byte-identical. No global randomness is involved.
type pen struct {
	roughness   float64
	bowing      float64
	maxOffset   float64
	multiStroke bool
}

func formalPen() pen {
	return pen{}
}

func roughPen() pen {
	return pen{roughness: 1, bowing: 1, maxOffset: 2, multiStroke: true}
}

func (p pen) formal() bool {
	return p.roughness == 0 && p.maxOffset == 0
}

type opKind int

const (
	opMove opKind = iota
	opLine
	opCurve
	opClose
)

// op is one drawing command in pixel space. opCurve is a cubic bezier: two
// control points then the end point.
type op struct {
	kind opKind
	pts  [3]vec
}

// trace renders one stroke path to ops.
func (p pen) trace(sp strokePath) []op {
	if len(sp.pts) == 0 {
		return nil
	}
	if p.formal() {
		out := []op{{kind: opMove, pts: [3]vec{sp.pts[0]}}}
		for _, pt := range sp.pts[1:] {
			out = append(out, op{kind: opLine, pts: [3]vec{pt}})
		}
		if sp.closed {
			out = append(out, op{kind: opClose})
		}
		return out
	}
	r := rand.New(rand.NewSource(int64(sp.seed)))
	pts := sp.pts
	if sp.closed {
		pts = append(append([]vec{}, pts...), pts[0])
	}
	var out []op
	for i := 0; i+1 < len(pts); i++ {
		out = p.line(out, pts[i], pts[i+1], r)
	}
	return out
}

// line draws one rough line: a primary stroke, plus a tighter overlay stroke
// when multi-stroking is on.
func (p pen) line(out []op, a, b vec, r *rand.Rand) []op {
	out = p.stroke(out, a, b, r, false)
	if p.multiStroke {
		out = p.stroke(out, a, b, r, true)
	}
	return out
}

// stroke emits a single bowed bezier between a and b. The arithmetic follows
// the rough.js line generator: the endpoint offset shrinks with line length,
// the bow displaces the control points perpendicular to the line, and the
// overlay pass halves every offset.
func (p pen) stroke(out []op, a, b vec, r *rand.Rand, overlay bool) []op {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	offset := p.maxOffset
	if offset*offset*100 > length*length {
		offset = length / 10
	}
	if overlay {
		offset /= 2
	}
	jitter := func() float64 {
		return p.roughness * (r.Float64()*2*offset - offset)
	}
	diverge := 0.2 + r.Float64()*0.2
	bowX := p.bowing * p.maxOffset * (b.Y - a.Y) / 200
	bowY := p.bowing * p.maxOffset * (a.X - b.X) / 200

	out = append(out, op{kind: opMove, pts: [3]vec{{a.X + jitter(), a.Y + jitter()}}})
	c1 := vec{
		X: bowX + a.X + (b.X-a.X)*diverge + jitter(),
		Y: bowY + a.Y + (b.Y-a.Y)*diverge + jitter(),
	}
	c2 := vec{
		X: bowX + a.X + 2*(b.X-a.X)*diverge + jitter(),
		Y: bowY + a.Y + 2*(b.Y-a.Y)*diverge + jitter(),
	}
	end := vec{X: b.X + jitter(), Y: b.Y + jitter()}
	return append(out, op{kind: opCurve, pts: [3]vec{c1, c2, end}})
}
