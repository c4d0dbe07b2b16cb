// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// SVG serializes the job as an SVG document. Emission cannot fail: the
// document is assembled in memory and every numeric input was clamped at job
// construction.
func (j *Job) SVG() []byte {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("width", fmtNum(j.width)+"px")
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", fmtNum(j.width), fmtNum(j.height)))

	if j.style.Background != "none" {
		rect := root.CreateElement("rect")
		rect.CreateAttr("fill", j.style.Background)
		rect.CreateAttr("stroke", "none")
		rect.CreateAttr("x", "0")
		rect.CreateAttr("y", "0")
		rect.CreateAttr("width", fmtNum(j.width)+"px")
		rect.CreateAttr("height", fmtNum(j.height)+"px")
	}

	pen := j.pen()
	for _, sp := range j.paths {
		ops := pen.trace(sp)
		if len(ops) == 0 {
			continue
		}
		path := root.CreateElement("path")
		path.CreateAttr("fill", "none")
		path.CreateAttr("stroke", j.style.StrokeColor)
		path.CreateAttr("stroke-width", "1")
		path.CreateAttr("d", pathData(ops))
	}

	for _, g := range j.glyphs {
		text := root.CreateElement("text")
		text.CreateAttr("x", fmtNum(g.at.X))
		text.CreateAttr("y", fmtNum(g.at.Y))
		text.CreateAttr("font-family", "monospace")
		text.CreateAttr("font-size", fmtNum(j.fontSize))
		text.CreateAttr("text-anchor", "middle")
		text.CreateAttr("dominant-baseline", "middle")
		text.CreateAttr("fill", j.style.StrokeColor)
		text.SetText(string(g.ch))
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		// An in-memory buffer write cannot fail.
		panic(err)
	}
	return out
}

// pathData flattens ops into an SVG path "d" attribute.
func pathData(ops []op) string {
	var b strings.Builder
	for i, o := range ops {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch o.kind {
		case opMove:
			b.WriteString("M " + fmtNum(o.pts[0].X) + " " + fmtNum(o.pts[0].Y))
		case opLine:
			b.WriteString("L " + fmtNum(o.pts[0].X) + " " + fmtNum(o.pts[0].Y))
		case opCurve:
			b.WriteString("C " + fmtNum(o.pts[0].X) + " " + fmtNum(o.pts[0].Y) +
				", " + fmtNum(o.pts[1].X) + " " + fmtNum(o.pts[1].Y) +
				", " + fmtNum(o.pts[2].X) + " " + fmtNum(o.pts[2].Y))
		case opClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// fmtNum formats a pixel coordinate with two decimals, trimming trailing
// zeros so common integral values stay short.
func fmtNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
