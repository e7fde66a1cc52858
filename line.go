package plotlib

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/midbel/slices"
)

const defaultSamples = 200

type Line struct {
	Style Style
	Title string

	points []Point
}

// NewLine creates a line through points. The x values have to be strictly
// increasing.
func NewLine(points []Point, style Style) (*Line, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	for i, p := range slices.Rest(points) {
		if p.X <= points[i].X {
			return nil, fmt.Errorf("%w: %g after %g", ErrNotIncreasing, p.X, points[i].X)
		}
	}
	n := Line{
		Style:  style,
		points: make([]Point, len(points)),
	}
	copy(n.points, points)
	return &n, nil
}

func (n *Line) Points() []Point {
	list := make([]Point, len(n.points))
	copy(list, n.points)
	return list
}

func (n *Line) Range(dim Dim) Range {
	if dim == DimX {
		return NewRange(slices.Fst(n.points).X, slices.Lst(n.points).X)
	}
	values := make([]float64, len(n.points))
	for i, p := range n.points {
		values[i] = p.Y
	}
	return rangeOf(values)
}

func (n *Line) Geometry(x, y *ContinuousAxis) Group {
	grp := NewGroup("line")
	if !n.Range(DimX).Overlaps(x.Domain()) || !n.Range(DimY).Overlaps(y.Domain()) {
		return grp
	}
	var (
		path  = make([]Point, len(n.points))
		style = n.Style
	)
	for i, p := range n.points {
		path[i] = NewPoint(x.Map(p.X), y.Map(p.Y))
	}
	style.Fill = ""
	if len(path) == 1 {
		grp.Add(NewMarker(path[0], style))
		return grp
	}
	grp.Add(NewPath(path, false, style))
	if style.Marker != ShapeNone {
		for _, p := range path {
			grp.Add(NewMarker(p, style))
		}
	}
	return grp
}

func (n *Line) Cells(x, y *ContinuousAxis) Layer {
	var (
		layer = continuousLayer("line", n.Style.Color, x, y)
		glyph = n.Style.glyph('*')
		fst   = slices.Fst(n.points)
		prev  = NewPoint(x.Map(fst.X), y.Map(fst.Y))
	)
	if !n.Range(DimX).Overlaps(x.Domain()) || !n.Range(DimY).Overlaps(y.Domain()) {
		return layer
	}
	layer.Set(cellOf(prev.X), cellOf(prev.Y), glyph)
	for _, p := range slices.Rest(n.points) {
		next := NewPoint(x.Map(p.X), y.Map(p.Y))
		layer.line(prev, next, glyph)
		prev = next
	}
	return layer
}

func (n *Line) Legend() (Group, bool) {
	if n.Title == "" {
		return Group{}, false
	}
	style := n.Style
	style.Fill = ""
	grp := NewGroup("line")
	grp.Add(NewSegment(NewPoint(0, 0), NewPoint(legendSwatch, 0), style))
	grp.Add(legendText(n.Title))
	return grp, true
}

// Function is a line whose samples are computed by evaluating fn at a fixed
// step over [lo, hi].
type Function struct {
	*Line

	fn      func(float64) float64
	samples int
}

func NewFunction(fn func(float64) float64, lo, hi float64, samples int, style Style) (*Function, error) {
	if fn == nil {
		return nil, ErrNoData
	}
	if err := checkFloats(lo, hi); err != nil {
		return nil, err
	}
	if lo >= hi {
		return nil, fmt.Errorf("%w: sampling interval [%g, %g]", ErrDegenerate, lo, hi)
	}
	if samples <= 0 {
		samples = defaultSamples
	}
	var points []Point
	for _, x := range vec.Linspace(lo, hi, samples+1) {
		y := fn(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		points = append(points, NewPoint(x, y))
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: function has no finite value over [%g, %g]", ErrNoData, lo, hi)
	}
	line, err := NewLine(points, style)
	if err != nil {
		return nil, err
	}
	f := Function{
		Line:    line,
		fn:      fn,
		samples: samples,
	}
	return &f, nil
}

// Eval evaluates the sampled function at x.
func (f *Function) Eval(x float64) float64 {
	return f.fn(x)
}

func (f *Function) Samples() int {
	return f.samples
}
