// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/samitbasu/badascii"
)

const logo = `+--------------------------------------+
|  badascii                            |
|                                      |
|  +-------+              +-------+    |
|  | ascii +------------->|  svg  |    |
|  +-------+              +-------+    |
+--------------------------------------+
`

func mainImpl() error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", logo)
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}

	in := flag.String("i", "-", "Path to input text file. If set to \"-\" (hyphen), stdin is used.")
	out := flag.String("o", "-", "Path to output file. If set to \"-\" (hyphen), stdout is used.")
	formal := flag.Bool("formal", false, "Formal mode: clean straight lines instead of the rough look.")
	scaleX := flag.Float64("x", 10.0, "X grid scale in pixels per cell.")
	scaleY := flag.Float64("y", 15.0, "Y grid scale in pixels per cell.")
	width := flag.Float64("w", 0, "Override the computed canvas width in pixels.")
	height := flag.Float64("h", 0, "Override the computed canvas height in pixels.")
	color := flag.String("color", "", "Stroke color (#RGB/#RRGGBB), or \"auto\" to contrast the background.")
	background := flag.String("background", "", "Background color, or \"none\" for a transparent canvas.")
	stylePath := flag.String("style", "", "Path to a YAML style preset; flags override its fields.")
	asPNG := flag.Bool("png", false, "Emit a PNG raster instead of SVG.")
	flag.Parse()

	style := badascii.DefaultStyle()
	if *stylePath != "" {
		var err error
		if style, err = badascii.LoadStyle(*stylePath); err != nil {
			return err
		}
	}
	if *formal {
		style.Mode = badascii.Formal
	}
	// Flags beat the preset, but only when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			style.ScaleX = *scaleX
		case "y":
			style.ScaleY = *scaleY
		case "w":
			style.Width = *width
		case "h":
			style.Height = *height
		case "color":
			style.StrokeColor = *color
		case "background":
			style.Background = *background
		}
	})

	var input []byte
	var err error
	if *in == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(*in)
	}
	if err != nil {
		return err
	}

	grid, err := badascii.NewGrid(string(input))
	if err != nil {
		return err
	}
	job := badascii.NewJob(badascii.Trace(grid), style)

	var output []byte
	if *asPNG {
		if output, err = job.PNG(); err != nil {
			return err
		}
	} else {
		output = job.SVG()
	}
	if *out == "-" {
		_, err := os.Stdout.Write(output)
		return err
	}
	return os.WriteFile(*out, output, 0666)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "badascii: %s\n", err)
		os.Exit(1)
	}
}
