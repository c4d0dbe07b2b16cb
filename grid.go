// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"fmt"
	"strings"
)

const (
	// MaxGridWidth is the widest diagram NewGrid accepts, in cells.
	MaxGridWidth = 4096
	// MaxGridHeight is the tallest diagram NewGrid accepts, in rows.
	MaxGridHeight = 4096
)

// blank is the rune stored for an empty cell.
const blank = ' '

// SizeError is returned by NewGrid when the input exceeds the maximum grid
// dimensions. It is the only error the pipeline produces.
type SizeError struct {
	Width  int
	Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("grid %dx%d exceeds maximum %dx%d", e.Width, e.Height, MaxGridWidth, MaxGridHeight)
}

// Grid is the diagram source as a rectangular rune buffer. Every row has the
// same width; short input lines are padded with blanks. A Grid is immutable
// once built.
type Grid struct {
	// (0,0) is top left.
	cells []rune
	cols  int
	rows  int
}

// NewGrid builds a Grid from newline-delimited text. It fails only when the
// input is wider than MaxGridWidth or taller than MaxGridHeight.
func NewGrid(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	g := &Grid{rows: len(lines)}
	for _, line := range lines {
		if n := len([]rune(line)); n > g.cols {
			g.cols = n
		}
	}
	if g.cols > MaxGridWidth || g.rows > MaxGridHeight {
		return nil, &SizeError{Width: g.cols, Height: g.rows}
	}
	g.cells = make([]rune, g.cols*g.rows)
	for y, line := range lines {
		x := 0
		for _, r := range line {
			g.cells[y*g.cols+x] = r
			x++
		}
		for ; x < g.cols; x++ {
			g.cells[y*g.cols+x] = blank
		}
	}
	return g, nil
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.cols
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.rows
}

// Get returns the rune at (x, y), or a blank when the coordinates fall
// outside the grid. It never fails.
func (g *Grid) Get(x, y int) rune {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return blank
	}
	return g.cells[y*g.cols+x]
}

func (g *Grid) at(p Point) rune {
	return g.Get(p.X, p.Y)
}

// String renders the grid back to text with trailing blanks trimmed from
// each row.
func (g *Grid) String() string {
	rows := make([]string, g.rows)
	for y := 0; y < g.rows; y++ {
		row := string(g.cells[y*g.cols : (y+1)*g.cols])
		rows[y] = strings.TrimRight(row, " ")
	}
	return strings.Join(rows, "\n")
}
