package plotlib

import (
	"math"
)

type Dim int

const (
	DimX Dim = iota
	DimY
)

func (d Dim) String() string {
	if d == DimX {
		return "x"
	}
	return "y"
}

// Representation is the part of the protocol shared by all the kinds of
// representation. Legend returns false when no legend entry has been
// configured, which is not the same as an empty legend.
type Representation interface {
	Legend() (Group, bool)
}

// ContinuousRepresentation is a representation plotted against two
// continuous axes.
type ContinuousRepresentation interface {
	Representation

	// Range reports the extent of the data in the given dimension. It
	// never consults the axes.
	Range(Dim) Range

	Geometry(x, y *ContinuousAxis) Group
	Cells(x, y *ContinuousAxis) Layer
}

// CategoricalRepresentation is a representation plotted against a
// categorical x axis and a continuous y axis.
type CategoricalRepresentation interface {
	Representation

	Range() Range
	Categories() []string

	Geometry(x *CategoricalAxis, y *ContinuousAxis) Group
	Cells(x *CategoricalAxis, y *ContinuousAxis) Layer
}

const (
	legendSwatch = 14.0
	legendOffset = 20.0
)

func legendText(label string) Primitive {
	return NewText(NewPoint(legendOffset, 0), label, AnchorStart, Style{})
}

func legendRect(label, class string, style Style) (Group, bool) {
	if label == "" {
		return Group{}, false
	}
	var (
		grp  = NewGroup(class)
		half = legendSwatch / 2
	)
	style.Fill = style.fillOr(style.Color)
	grp.Add(NewRect(NewPoint(0, -half), NewPoint(legendSwatch, half), style))
	grp.Add(legendText(label))
	return grp, true
}

// baseline returns the output position of zero clamped to the domain of
// the axis. Bars and bins grow from it.
func baseline(y *ContinuousAxis) float64 {
	dom := y.Domain()
	v := math.Min(math.Max(0, dom.Min()), dom.Max())
	return y.Map(v)
}

func continuousLayer(class, color string, x, y *ContinuousAxis) Layer {
	return newFaceLayer(class, color, x.Output(), y.Output())
}

// categoricalLayer restricts the layer to the cells of the bands of x: the
// last band ends one cell before the upper bound of the output.
func categoricalLayer(class, color string, x *CategoricalAxis, y *ContinuousAxis) Layer {
	out := x.Output()
	return newFaceLayer(class, color, NewRange(out.Min(), out.Max()-1), y.Output())
}

func rangeOf(values []float64) Range {
	var (
		r   Range
		set bool
	)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		if !set {
			r, set = NewRange(v, v), true
			continue
		}
		r = r.Union(NewRange(v, v))
	}
	if !set {
		return NewRange(math.NaN(), math.NaN())
	}
	return r
}

func checkPoints(points []Point) error {
	if len(points) == 0 {
		return ErrNoData
	}
	for _, p := range points {
		if err := checkFloats(p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func copyStrings(list []string) []string {
	res := make([]string, len(list))
	copy(res, list)
	return res
}
