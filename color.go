// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"fmt"
	"strconv"
)

// parseColor parses a #RGB or #RRGGBB color string into its components.
func parseColor(c string) (r, g, b int, err error) {
	if len(c) == 0 || c[0] != '#' {
		return 0, 0, 0, fmt.Errorf("color %q can't be parsed", c)
	}
	nibble := func(s string) (int64, error) {
		return strconv.ParseInt(s, 16, 0)
	}
	switch len(c) {
	case 4:
		var pr, pg, pb int64
		if pr, err = nibble(c[1:2]); err != nil {
			return 0, 0, 0, err
		}
		if pg, err = nibble(c[2:3]); err != nil {
			return 0, 0, 0, err
		}
		if pb, err = nibble(c[3:4]); err != nil {
			return 0, 0, 0, err
		}
		return int(pr * 17), int(pg * 17), int(pb * 17), nil
	case 7:
		var pr, pg, pb int64
		if pr, err = nibble(c[1:3]); err != nil {
			return 0, 0, 0, err
		}
		if pg, err = nibble(c[3:5]); err != nil {
			return 0, 0, 0, err
		}
		if pb, err = nibble(c[5:7]); err != nil {
			return 0, 0, 0, err
		}
		return int(pr), int(pg), int(pb), nil
	}
	return 0, 0, 0, fmt.Errorf("color %q not of valid length", c)
}

// contrastColor returns a stroke color readable on top of the supplied
// background. The thresholds come from the W3 accessibility working group
// paper at http://www.w3.org/TR/AERT: a brightness difference of at least 125
// and a color difference of at least 500 against black.
func contrastColor(background string) string {
	r, g, b, err := parseColor(background)
	if err != nil {
		// Unknown background, pick the neutral default.
		return defaultStroke
	}
	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 && difference < 500 {
		return "#fff"
	}
	return "#000"
}
