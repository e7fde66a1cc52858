package plotlib

import (
	"fmt"
	"strconv"
)

const defaultBarWidth = 0.8

type Bar struct {
	Category string
	Value    float64
}

type BarChart struct {
	Style Style
	Title string

	// Width is the fraction of the band of a category covered by its bar.
	Width     float64
	WithValue bool

	bars []Bar
}

func NewBarChart(bars []Bar, style Style) (*BarChart, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	seen := make(map[string]struct{})
	for _, b := range bars {
		if err := checkFloats(b.Value); err != nil {
			return nil, err
		}
		if _, ok := seen[b.Category]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, b.Category)
		}
		seen[b.Category] = struct{}{}
	}
	c := BarChart{
		Style: style,
		Width: defaultBarWidth,
		bars:  make([]Bar, len(bars)),
	}
	copy(c.bars, bars)
	return &c, nil
}

func (c *BarChart) Bars() []Bar {
	list := make([]Bar, len(c.bars))
	copy(list, c.bars)
	return list
}

func (c *BarChart) Range() Range {
	r := NewRange(0, 0)
	for _, b := range c.bars {
		r = r.Union(NewRange(b.Value, b.Value))
	}
	return r
}

func (c *BarChart) Categories() []string {
	list := make([]string, len(c.bars))
	for i, b := range c.bars {
		list[i] = b.Category
	}
	return list
}

func (c *BarChart) Geometry(x *CategoricalAxis, y *ContinuousAxis) Group {
	var (
		grp   = NewGroup("bar")
		base  = baseline(y)
		half  = x.Band() * c.width() / 2
		style = c.Style
	)
	style.Fill = style.fillOr(style.Color)
	for _, b := range c.bars {
		pos, err := x.Map(b.Category)
		if err != nil {
			continue
		}
		var (
			top = y.Map(b.Value)
			p1  = NewPoint(pos-half, base)
			p2  = NewPoint(pos+half, top)
		)
		grp.Add(NewRect(p1, p2, style))
		if c.WithValue {
			var (
				str = strconv.FormatFloat(b.Value, 'f', -1, 64)
				off = -FontSize * 0.4
			)
			if top > base {
				off = FontSize
			}
			grp.Add(NewText(NewPoint(pos, top+off), str, AnchorMiddle, Style{Color: style.Color}))
		}
	}
	return grp
}

func (c *BarChart) Cells(x *CategoricalAxis, y *ContinuousAxis) Layer {
	var (
		layer = categoricalLayer("bar", c.Style.Color, x, y)
		base  = cellOf(baseline(y))
		half  = x.Band() * c.width() / 2
		glyph = c.Style.glyph('#')
	)
	for _, b := range c.bars {
		pos, err := x.Map(b.Category)
		if err != nil {
			continue
		}
		var (
			c1  = cellOf(pos - half)
			c2  = cellOf(pos + half)
			top = cellOf(y.Map(b.Value))
		)
		if c2 > c1 {
			c2--
		}
		for col := c1; col <= c2; col++ {
			layer.column(col, top, base, glyph)
		}
	}
	return layer
}

func (c *BarChart) Legend() (Group, bool) {
	return legendRect(c.Title, "bar", c.Style)
}

func (c *BarChart) width() float64 {
	if c.Width <= 0 || c.Width > 1 {
		return defaultBarWidth
	}
	return c.Width
}
