// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import "fmt"

// A Point is an X,Y coordinate in the diagram's grid. (0,0) is the top-left
// cell of the diagram.
type Point struct {
	X int
	Y int
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Orientation is the axis a run of cells extends along.
type Orientation int

const (
	// Horizontal runs extend left to right along a row.
	Horizontal Orientation = iota
	// Vertical runs extend top to bottom along a column.
	Vertical
	// DiagDown runs extend towards the bottom-right, drawn with '\'.
	DiagDown
	// DiagUp runs extend towards the top-right, drawn with '/'.
	DiagUp
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagDown:
		return "diag-down"
	case DiagUp:
		return "diag-up"
	}
	return "unknown"
}

// nextHorizontal returns true if b is the cell immediately right of a.
func nextHorizontal(a, b Point) bool {
	return a.Y == b.Y && a.X+1 == b.X
}

// nextVertical returns true if b is the cell immediately below a.
func nextVertical(a, b Point) bool {
	return a.X == b.X && a.Y+1 == b.Y
}

// nextDiagDown returns true if b is the cell diagonally down-right of a.
func nextDiagDown(a, b Point) bool {
	return a.X+1 == b.X && a.Y+1 == b.Y
}

// nextDiagUp returns true if b is the cell diagonally up-right of a.
func nextDiagUp(a, b Point) bool {
	return a.X+1 == b.X && a.Y-1 == b.Y
}
