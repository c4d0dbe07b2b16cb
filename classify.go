// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

// Class is the semantic kind of a single grid cell, derived purely from its
// rune. Classification is total: every rune maps to exactly one Class, and
// anything outside the drawing alphabet maps to ClassBlank.
type Class int

const (
	// ClassBlank marks a cell the tracer ignores.
	ClassBlank Class = iota
	// ClassHorizontal is the body of a horizontal run, '-'.
	ClassHorizontal
	// ClassVertical is the body of a vertical run, '|'.
	ClassVertical
	// ClassDiagUp is the body of an up-right diagonal run, '/'.
	ClassDiagUp
	// ClassDiagDown is the body of a down-right diagonal run, '\'.
	ClassDiagDown
	// ClassArrowLeft is '<'.
	ClassArrowLeft
	// ClassArrowRight is '>'.
	ClassArrowRight
	// ClassArrowUp is '^'.
	ClassArrowUp
	// ClassArrowDown is 'v'.
	ClassArrowDown
	// ClassCorner is '+', an endpoint that terminates runs and joins them
	// into corners and junctions.
	ClassCorner
)

func (c Class) String() string {
	switch c {
	case ClassBlank:
		return "blank"
	case ClassHorizontal:
		return "horizontal"
	case ClassVertical:
		return "vertical"
	case ClassDiagUp:
		return "diag-up"
	case ClassDiagDown:
		return "diag-down"
	case ClassArrowLeft:
		return "arrow-left"
	case ClassArrowRight:
		return "arrow-right"
	case ClassArrowUp:
		return "arrow-up"
	case ClassArrowDown:
		return "arrow-down"
	case ClassCorner:
		return "corner"
	}
	return "unknown"
}

// Classify maps a rune to its Class. It cannot fail; unrecognized runes are
// ClassBlank.
func Classify(ch rune) Class {
	switch ch {
	case '-':
		return ClassHorizontal
	case '|':
		return ClassVertical
	case '/':
		return ClassDiagUp
	case '\\':
		return ClassDiagDown
	case '<':
		return ClassArrowLeft
	case '>':
		return ClassArrowRight
	case '^':
		return ClassArrowUp
	case 'v':
		return ClassArrowDown
	case '+':
		return ClassCorner
	}
	return ClassBlank
}

// isArrow returns true for the four arrow classes.
func (c Class) isArrow() bool {
	switch c {
	case ClassArrowLeft, ClassArrowRight, ClassArrowUp, ClassArrowDown:
		return true
	}
	return false
}

// cap returns the arrowhead cap an arrow class contributes to the end of a
// run, or CapNone for every other class.
func (c Class) cap() Cap {
	switch c {
	case ClassArrowLeft:
		return CapArrowLeft
	case ClassArrowRight:
		return CapArrowRight
	case ClassArrowUp:
		return CapArrowUp
	case ClassArrowDown:
		return CapArrowDown
	}
	return CapNone
}

// Per-orientation run roles. A run starts and ends on a terminator and is
// bodied by edge cells; any other class breaks the run.

type runRole int

const (
	roleNone runRole = iota
	roleEdge
	roleTerm
)

func (c Class) roleFor(o Orientation) runRole {
	switch o {
	case Horizontal:
		switch c {
		case ClassCorner, ClassArrowLeft, ClassArrowRight:
			return roleTerm
		case ClassHorizontal:
			return roleEdge
		}
	case Vertical:
		switch c {
		case ClassCorner, ClassArrowUp, ClassArrowDown:
			return roleTerm
		case ClassVertical:
			return roleEdge
		}
	case DiagDown:
		switch c {
		case ClassCorner:
			return roleTerm
		case ClassDiagDown:
			return roleEdge
		}
	case DiagUp:
		switch c {
		case ClassCorner:
			return roleTerm
		case ClassDiagUp:
			return roleEdge
		}
	}
	return roleNone
}
