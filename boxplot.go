package plotlib

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

func (s Summary) check() error {
	if err := checkFloats(s.Min, s.Q1, s.Median, s.Q3, s.Max); err != nil {
		return err
	}
	if s.Min > s.Q1 || s.Q1 > s.Median || s.Median > s.Q3 || s.Q3 > s.Max {
		return fmt.Errorf("%w: %g, %g, %g, %g, %g", ErrInvalidSummary, s.Min, s.Q1, s.Median, s.Q3, s.Max)
	}
	return nil
}

func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

type Box struct {
	Category string
	Summary
	Outliers []float64
}

// BoxFromData computes the summary of values. Whiskers extend to the most
// extreme values lying within 1.5 IQR of the quartiles, the values beyond
// are reported as outliers.
func BoxFromData(category string, values []float64) (Box, error) {
	box := Box{
		Category: category,
	}
	if len(values) == 0 {
		return box, ErrNoData
	}
	if err := checkFloats(values...); err != nil {
		return box, err
	}
	sample := stats.Sample{Xs: append([]float64(nil), values...)}
	sample.Sort()

	box.Q1 = sample.Quantile(0.25)
	box.Median = sample.Quantile(0.5)
	box.Q3 = sample.Quantile(0.75)

	var (
		fence = 1.5 * box.IQR()
		lo    = box.Q1 - fence
		hi    = box.Q3 + fence
	)
	box.Min, box.Max = box.Q1, box.Q3
	for _, v := range sample.Xs {
		if v < lo || v > hi {
			box.Outliers = append(box.Outliers, v)
			continue
		}
		if v < box.Min {
			box.Min = v
		}
		if v > box.Max {
			box.Max = v
		}
	}
	return box, nil
}

type BoxPlot struct {
	Style Style
	Title string
	Width float64

	boxes []Box
}

func NewBoxPlot(boxes []Box, style Style) (*BoxPlot, error) {
	if len(boxes) == 0 {
		return nil, ErrNoData
	}
	seen := make(map[string]struct{})
	for _, b := range boxes {
		if err := b.check(); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Category, err)
		}
		if err := checkFloats(b.Outliers...); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Category, err)
		}
		if _, ok := seen[b.Category]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, b.Category)
		}
		seen[b.Category] = struct{}{}
	}
	p := BoxPlot{
		Style: style,
		Width: defaultBarWidth,
		boxes: make([]Box, len(boxes)),
	}
	for i, b := range boxes {
		b.Outliers = append([]float64(nil), b.Outliers...)
		p.boxes[i] = b
	}
	return &p, nil
}

func (p *BoxPlot) Boxes() []Box {
	list := make([]Box, len(p.boxes))
	copy(list, p.boxes)
	return list
}

func (p *BoxPlot) Range() Range {
	var values []float64
	for _, b := range p.boxes {
		values = append(values, b.Min, b.Max)
		values = append(values, b.Outliers...)
	}
	return rangeOf(values)
}

func (p *BoxPlot) Categories() []string {
	list := make([]string, len(p.boxes))
	for i, b := range p.boxes {
		list[i] = b.Category
	}
	return list
}

func (p *BoxPlot) Geometry(x *CategoricalAxis, y *ContinuousAxis) Group {
	var (
		grp   = NewGroup("box")
		half  = x.Band() * p.width() / 2
		style = p.Style
		mark  = p.Style
	)
	if mark.Marker == ShapeNone {
		mark.Marker = ShapeCircle
	}
	for _, b := range p.boxes {
		pos, err := x.Map(b.Category)
		if err != nil {
			continue
		}
		var (
			q1  = y.Map(b.Q1)
			q3  = y.Map(b.Q3)
			med = y.Map(b.Median)
			lo  = y.Map(b.Min)
			hi  = y.Map(b.Max)
		)
		box := []Point{
			NewPoint(pos-half, q1),
			NewPoint(pos+half, q1),
			NewPoint(pos+half, q3),
			NewPoint(pos-half, q3),
		}
		grp.Add(NewPath(box, true, style))
		grp.Add(NewSegment(NewPoint(pos-half, med), NewPoint(pos+half, med), style))
		grp.Add(NewSegment(NewPoint(pos, lo), NewPoint(pos, q1), style))
		grp.Add(NewSegment(NewPoint(pos, q3), NewPoint(pos, hi), style))
		grp.Add(NewSegment(NewPoint(pos-half/2, lo), NewPoint(pos+half/2, lo), style))
		grp.Add(NewSegment(NewPoint(pos-half/2, hi), NewPoint(pos+half/2, hi), style))
		for _, o := range b.Outliers {
			grp.Add(NewMarker(NewPoint(pos, y.Map(o)), mark))
		}
	}
	return grp
}

func (p *BoxPlot) Cells(x *CategoricalAxis, y *ContinuousAxis) Layer {
	var (
		layer = categoricalLayer("box", p.Style.Color, x, y)
		half  = x.Band() * p.width() / 2
	)
	for _, b := range p.boxes {
		pos, err := x.Map(b.Category)
		if err != nil {
			continue
		}
		var (
			col = cellOf(pos)
			c1  = cellOf(pos - half)
			c2  = cellOf(pos + half)
			q1  = cellOf(y.Map(b.Q1))
			q3  = cellOf(y.Map(b.Q3))
			med = cellOf(y.Map(b.Median))
			lo  = cellOf(y.Map(b.Min))
			hi  = cellOf(y.Map(b.Max))
		)
		if c2 > c1 {
			c2--
		}
		layer.column(col, lo, q1, '|')
		layer.column(col, q3, hi, '|')
		layer.row(lo, col-1, col+1, '-')
		layer.row(hi, col-1, col+1, '-')
		layer.column(c1, q3, q1, '|')
		layer.column(c2, q3, q1, '|')
		layer.row(q1, c1, c2, '-')
		layer.row(q3, c1, c2, '-')
		layer.row(med, c1, c2, '=')
		for _, o := range b.Outliers {
			layer.Set(col, cellOf(y.Map(o)), p.Style.glyph('o'))
		}
	}
	return layer
}

func (p *BoxPlot) Legend() (Group, bool) {
	return legendRect(p.Title, "box", p.Style)
}

func (p *BoxPlot) width() float64 {
	if p.Width <= 0 || p.Width > 1 {
		return defaultBarWidth
	}
	return p.Width
}
