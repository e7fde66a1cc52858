package plotlib

import (
	"fmt"
	"strings"
)

// DefaultSize is the size of a marker whose style does not set one.
const DefaultSize = 4.0

type Shape int

const (
	ShapeNone Shape = iota
	ShapeCircle
	ShapeSquare
	ShapeDiamond
	ShapeCross
)

func ParseShape(str string) (Shape, error) {
	switch strings.ToLower(str) {
	case "", "none":
		return ShapeNone, nil
	case "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	case "diamond":
		return ShapeDiamond, nil
	case "cross":
		return ShapeCross, nil
	default:
		return ShapeNone, fmt.Errorf("%s: unknown marker shape", str)
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeDiamond:
		return "diamond"
	case ShapeCross:
		return "cross"
	default:
		return "none"
	}
}

// Glyph is the character used for the shape on a text grid.
func (s Shape) Glyph() rune {
	switch s {
	case ShapeSquare:
		return '#'
	case ShapeDiamond:
		return '+'
	case ShapeCross:
		return 'x'
	default:
		return 'o'
	}
}

// Outline returns the polygon of the shape centered on pos. Circles have no
// polygon and return nil. A cross is returned as two segments: the first
// two points and the last two points.
func (s Shape) Outline(pos Point, size float64) []Point {
	if size <= 0 {
		size = DefaultSize
	}
	half := size / 2
	switch s {
	case ShapeSquare:
		return []Point{
			NewPoint(pos.X-half, pos.Y-half),
			NewPoint(pos.X+half, pos.Y-half),
			NewPoint(pos.X+half, pos.Y+half),
			NewPoint(pos.X-half, pos.Y+half),
		}
	case ShapeDiamond:
		return []Point{
			NewPoint(pos.X, pos.Y-half),
			NewPoint(pos.X+half, pos.Y),
			NewPoint(pos.X, pos.Y+half),
			NewPoint(pos.X-half, pos.Y),
		}
	case ShapeCross:
		return []Point{
			NewPoint(pos.X-half, pos.Y-half),
			NewPoint(pos.X+half, pos.Y+half),
			NewPoint(pos.X-half, pos.Y+half),
			NewPoint(pos.X+half, pos.Y-half),
		}
	default:
		return nil
	}
}
