// Copyright 2025 - 2026 The badascii Contributors
// All rights reserved.

package badascii

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects the rendering style.
type Mode int

const (
	// Rough is the default hand-drawn look: bowed double strokes with
	// deterministic jitter.
	Rough Mode = iota
	// Formal draws clean straight lines and sharp joins.
	Formal
)

func (m Mode) String() string {
	if m == Formal {
		return "formal"
	}
	return "rough"
}

// UnmarshalYAML accepts "rough" and "formal" (case-insensitive).
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "", "rough":
		*m = Rough
	case "formal":
		*m = Formal
	default:
		return fmt.Errorf("unknown mode %q", s)
	}
	return nil
}

// MarshalYAML emits the mode name.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

const (
	// defaultStroke is a bland gray that shows up against both light and
	// dark backgrounds.
	defaultStroke = "#808080"
	// defaultBackground renders in dark mode.
	defaultBackground = "#0A0A0A"
	// Default pixel extents of one grid cell.
	defaultScaleX = 10.0
	defaultScaleY = 15.0

	// minScale is the floor pathological scale values clamp to.
	minScale = 0.01
	// maxCanvas bounds the pixel dimensions of the output.
	maxCanvas = 1 << 20
)

// Style configures a render. The zero value is not useful; start from
// DefaultStyle or rely on normalization, which fills every unset field.
type Style struct {
	Mode Mode `yaml:"mode"`
	// StrokeColor is a #RGB/#RRGGBB color, or "auto" to pick black or
	// white against the background.
	StrokeColor string `yaml:"stroke"`
	// Background fills the canvas; "none" leaves it transparent.
	Background string  `yaml:"background"`
	ScaleX     float64 `yaml:"scale_x"`
	ScaleY     float64 `yaml:"scale_y"`
	// Width and Height, when positive, override the computed canvas size.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultStyle is the rough dark-mode look of the CLI.
func DefaultStyle() Style {
	return Style{
		Mode:        Rough,
		StrokeColor: defaultStroke,
		Background:  defaultBackground,
		ScaleX:      defaultScaleX,
		ScaleY:      defaultScaleY,
	}
}

// LoadStyle reads a YAML style preset. Unset fields keep their defaults.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("style %s: %w", path, err)
	}
	return s, nil
}

// normalized fills defaults and clamps pathological values. Rendering never
// rejects a style; bad numbers are pulled back into range instead.
func (s Style) normalized() Style {
	if s.ScaleX <= 0 {
		if s.ScaleX == 0 {
			s.ScaleX = defaultScaleX
		} else {
			s.ScaleX = minScale
		}
	}
	if s.ScaleY <= 0 {
		if s.ScaleY == 0 {
			s.ScaleY = defaultScaleY
		} else {
			s.ScaleY = minScale
		}
	}
	if s.ScaleX < minScale {
		s.ScaleX = minScale
	}
	if s.ScaleY < minScale {
		s.ScaleY = minScale
	}
	if s.Background == "" {
		s.Background = defaultBackground
	}
	switch s.StrokeColor {
	case "":
		s.StrokeColor = defaultStroke
	case "auto":
		s.StrokeColor = contrastColor(s.Background)
	}
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}
