package plotlib

import (
	"fmt"
	"strings"
)

const FontSize = 12.0

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDotted
	StyleDashed
)

func ParseLineStyle(str string) (LineStyle, error) {
	switch strings.ToLower(str) {
	case "", "straight", "solid":
		return StyleStraight, nil
	case "dotted":
		return StyleDotted, nil
	case "dashed":
		return StyleDashed, nil
	default:
		return StyleStraight, fmt.Errorf("%s: unknown line style", str)
	}
}

// Style describes how a representation looks. It is opaque to the mapping
// logic and only consumed when primitives are emitted.
type Style struct {
	Color   string
	Fill    string
	Width   float64
	Line    LineStyle
	Marker  Shape
	Size    float64
	Opacity float64
	Glyph   rune
}

// Merge returns s with its zero fields replaced by the ones of base.
func (s Style) Merge(base Style) Style {
	if s.Color == "" {
		s.Color = base.Color
	}
	if s.Fill == "" {
		s.Fill = base.Fill
	}
	if s.Width == 0 {
		s.Width = base.Width
	}
	if s.Line == StyleStraight {
		s.Line = base.Line
	}
	if s.Marker == ShapeNone {
		s.Marker = base.Marker
	}
	if s.Size == 0 {
		s.Size = base.Size
	}
	if s.Opacity == 0 {
		s.Opacity = base.Opacity
	}
	if s.Glyph == 0 {
		s.Glyph = base.Glyph
	}
	return s
}

func (s Style) glyph(def rune) rune {
	if s.Glyph != 0 {
		return s.Glyph
	}
	return def
}

func (s Style) fillOr(def string) string {
	if s.Fill != "" {
		return s.Fill
	}
	return def
}

// Theme is the explicit default styling of a plot. Representations receive
// their style from it at construction time.
type Theme struct {
	Palette  Palette
	Base     Style
	Axis     Style
	FontSize float64
}

func DefaultTheme() Theme {
	return Theme{
		Palette: Category10,
		Base: Style{
			Width: 1,
			Size:  DefaultSize,
		},
		Axis: Style{
			Color: "black",
			Width: 1,
		},
		FontSize: FontSize,
	}
}

// StyleAt returns the default style of the i-th representation of a view.
func (t Theme) StyleAt(i int) Style {
	s := t.Base
	if c := t.Palette.At(i); c != "" {
		s.Color = c
	}
	return s
}

func (t Theme) font() float64 {
	if t.FontSize <= 0 {
		return FontSize
	}
	return t.FontSize
}
