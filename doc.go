// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

// Package badascii converts hand-drawn ASCII block diagrams into vector
// images. Lines are drawn with '-', '|', '/' and '\', joined at '+' corners,
// and capped with '<', '>', '^' and 'v' arrowheads; every other character is
// left alone and rendered as a label.
//
// The pipeline is three pure steps:
//
//	grid, err := badascii.NewGrid(text)
//	if err != nil {
//		// input larger than the grid size limit
//	}
//	model := badascii.Trace(grid)
//	svg := badascii.Render(model, badascii.DefaultStyle())
//
// Tracing and rendering are total: malformed art produces odd-looking but
// valid output, never an error. Rendering defaults to a rough hand-sketched
// look; Formal mode draws exact lines. Both are deterministic, so identical
// input and style yield byte-identical output.
package badascii
