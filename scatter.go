package plotlib

import (
	"fmt"
)

type Scatter struct {
	Style Style
	Title string

	points    []Point
	overrides map[int]Style
}

func NewScatter(points []Point, style Style) (*Scatter, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	s := Scatter{
		Style:     style,
		points:    make([]Point, len(points)),
		overrides: make(map[int]Style),
	}
	copy(s.points, points)
	return &s, nil
}

// SetPointStyle overrides the style of the i-th point. Fields left empty
// are taken from the style of the scatter.
func (s *Scatter) SetPointStyle(i int, style Style) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	s.overrides[i] = style
	return nil
}

func (s *Scatter) Points() []Point {
	list := make([]Point, len(s.points))
	copy(list, s.points)
	return list
}

func (s *Scatter) Range(dim Dim) Range {
	values := make([]float64, len(s.points))
	for i, p := range s.points {
		if dim == DimX {
			values[i] = p.X
		} else {
			values[i] = p.Y
		}
	}
	return rangeOf(values)
}

func (s *Scatter) Geometry(x, y *ContinuousAxis) Group {
	grp := NewGroup("scatter")
	for i, pt := range s.points {
		if !x.Domain().Contains(pt.X) || !y.Domain().Contains(pt.Y) {
			continue
		}
		pos := NewPoint(x.Map(pt.X), y.Map(pt.Y))
		grp.Add(NewMarker(pos, s.styleAt(i)))
	}
	return grp
}

func (s *Scatter) Cells(x, y *ContinuousAxis) Layer {
	layer := continuousLayer("scatter", s.Style.Color, x, y)
	for i, pt := range s.points {
		if !x.Domain().Contains(pt.X) || !y.Domain().Contains(pt.Y) {
			continue
		}
		var (
			st  = s.styleAt(i)
			col = cellOf(x.Map(pt.X))
			row = cellOf(y.Map(pt.Y))
		)
		layer.Set(col, row, st.glyph(st.Marker.Glyph()))
	}
	return layer
}

func (s *Scatter) Legend() (Group, bool) {
	if s.Title == "" {
		return Group{}, false
	}
	grp := NewGroup("scatter")
	grp.Add(NewMarker(NewPoint(legendSwatch/2, 0), s.markerStyle(s.Style)))
	grp.Add(legendText(s.Title))
	return grp, true
}

func (s *Scatter) styleAt(i int) Style {
	st := s.Style
	if o, ok := s.overrides[i]; ok {
		st = o.Merge(st)
	}
	return s.markerStyle(st)
}

func (s *Scatter) markerStyle(st Style) Style {
	if st.Marker == ShapeNone {
		st.Marker = ShapeCircle
	}
	if st.Size == 0 {
		st.Size = DefaultSize
	}
	return st
}
