package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/midbel/plotlib"
)

var (
	ErrLayer    = errors.New("invalid layer")
	ErrView     = errors.New("invalid view")
	ErrFunction = errors.New("unknown function")
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultBins   = 10
)

var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
	"square": func(x float64) float64 {
		return x * x
	},
}

// Build turns the description into a plot ready to be rendered.
func Build(p *Plot) (*plotlib.Plot, error) {
	theme, err := p.theme()
	if err != nil {
		return nil, err
	}
	res := plotlib.Plot{
		Title:   p.Title,
		Width:   p.Width,
		Height:  p.Height,
		Columns: p.Columns,
		Padding: plotlib.DefaultPadding,
	}
	if res.Width <= 0 {
		res.Width = DefaultWidth
	}
	if res.Height <= 0 {
		res.Height = DefaultHeight
	}
	if p.Padding != nil {
		res.Padding = plotlib.Padding{
			Top:    p.Padding.Top,
			Right:  p.Padding.Right,
			Bottom: p.Padding.Bottom,
			Left:   p.Padding.Left,
		}
	}
	if len(p.Views) == 0 {
		return nil, fmt.Errorf("%w: no view defined", ErrView)
	}
	cache := make(tableCache)
	for i, v := range p.Views {
		view, err := v.build(theme, p.Dir, cache)
		if err != nil {
			return nil, fmt.Errorf("view %d: %w", i+1, err)
		}
		res.Views = append(res.Views, view)
	}
	return &res, nil
}

func (p *Plot) theme() (plotlib.Theme, error) {
	theme := plotlib.DefaultTheme()
	pal, ok := plotlib.PaletteByName(strings.ToLower(p.Theme.Palette))
	if !ok {
		return theme, fmt.Errorf("%s: unknown palette", p.Theme.Palette)
	}
	theme.Palette = pal
	if p.Theme.FontSize > 0 {
		theme.FontSize = p.Theme.FontSize
	}
	if p.Theme.Axis != "" {
		theme.Axis.Color = p.Theme.Axis
	}
	return theme, nil
}

type tableCache map[string]*Table

func (c tableCache) get(dir, file string) (*Table, error) {
	if file == "" {
		return nil, fmt.Errorf("%w: missing data file", ErrLayer)
	}
	if !filepath.IsAbs(file) && dir != "" {
		file = filepath.Join(dir, file)
	}
	if t, ok := c[file]; ok {
		return t, nil
	}
	t, err := ReadTable(file)
	if err != nil {
		return nil, err
	}
	c[file] = t
	return t, nil
}

func (v View) build(theme plotlib.Theme, dir string, cache tableCache) (plotlib.View, error) {
	var view plotlib.View
	switch strings.ToLower(v.Kind) {
	case "", KindContinuous:
		x, err := v.X.continuous()
		if err != nil {
			return nil, fmt.Errorf("x axis: %w", err)
		}
		y, err := v.Y.continuous()
		if err != nil {
			return nil, fmt.Errorf("y axis: %w", err)
		}
		cv := plotlib.NewContinuousView()
		cv.Title = v.Title
		cv.Theme = theme
		cv.X = x
		cv.Y = y
		view = cv
	case KindCategorical:
		y, err := v.Y.continuous()
		if err != nil {
			return nil, fmt.Errorf("y axis: %w", err)
		}
		cv := plotlib.NewCategoricalView()
		cv.Title = v.Title
		cv.Theme = theme
		cv.X = plotlib.CategoryConfig{
			Label:      v.X.Label,
			Categories: v.X.Categories,
			Grid:       v.X.Grid,
		}
		cv.Y = y
		view = cv
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrView, v.Kind)
	}
	for i, y := range v.Layers {
		r, err := y.build(theme.StyleAt(i), dir, cache)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		if err := plotlib.Compose(view, r); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
	}
	return view, nil
}

func (a Axis) continuous() (plotlib.AxisConfig, error) {
	cfg := plotlib.AxisConfig{
		Label: a.Label,
		Ticks: a.Ticks,
		Nice:  a.Nice,
		Grid:  a.Grid,
	}
	switch len(a.Domain) {
	case 0:
	case 2:
		dom := plotlib.NewRange(a.Domain[0], a.Domain[1])
		cfg.Domain = &dom
	default:
		return cfg, fmt.Errorf("%w: domain expects 2 values, got %d", plotlib.ErrDegenerate, len(a.Domain))
	}
	return cfg, nil
}

func (y Layer) style(base plotlib.Style) (plotlib.Style, error) {
	marker, err := plotlib.ParseShape(y.Marker)
	if err != nil {
		return base, err
	}
	line, err := plotlib.ParseLineStyle(y.Line)
	if err != nil {
		return base, err
	}
	s := plotlib.Style{
		Color:   y.Color,
		Fill:    y.Fill,
		Width:   y.Width,
		Line:    line,
		Marker:  marker,
		Size:    y.Size,
		Opacity: y.Opacity,
	}
	if g := []rune(y.Glyph); len(g) > 0 {
		s.Glyph = g[0]
	}
	return s.Merge(base), nil
}

func (y Layer) build(base plotlib.Style, dir string, cache tableCache) (plotlib.Representation, error) {
	style, err := y.style(base)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(y.Type) {
	case LayerScatter:
		points, err := y.points(dir, cache)
		if err != nil {
			return nil, err
		}
		s, err := plotlib.NewScatter(points, style)
		if err != nil {
			return nil, err
		}
		s.Title = y.Legend
		return s, nil
	case LayerLine:
		points, err := y.points(dir, cache)
		if err != nil {
			return nil, err
		}
		n, err := plotlib.NewLine(points, style)
		if err != nil {
			return nil, err
		}
		n.Title = y.Legend
		return n, nil
	case LayerFunction:
		fn, ok := functions[strings.ToLower(y.Func)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrFunction, y.Func)
		}
		f, err := plotlib.NewFunction(fn, y.From, y.To, y.Samples, style)
		if err != nil {
			return nil, err
		}
		f.Title = y.Legend
		return f, nil
	case LayerHistogram:
		t, err := cache.get(dir, y.File)
		if err != nil {
			return nil, err
		}
		values, err := t.Floats(y.X)
		if err != nil {
			return nil, err
		}
		bins := y.Bins
		if bins <= 0 {
			bins = DefaultBins
		}
		h, err := plotlib.HistogramFromData(values, bins, style)
		if err != nil {
			return nil, err
		}
		h.Title = y.Legend
		return h, nil
	case LayerBar:
		cats, values, err := y.categories(dir, cache)
		if err != nil {
			return nil, err
		}
		bars := make([]plotlib.Bar, len(cats))
		for i := range cats {
			bars[i] = plotlib.Bar{
				Category: cats[i],
				Value:    values[i],
			}
		}
		c, err := plotlib.NewBarChart(bars, style)
		if err != nil {
			return nil, err
		}
		c.Title = y.Legend
		c.WithValue = y.WithValue
		if y.BarWidth > 0 {
			c.Width = y.BarWidth
		}
		return c, nil
	case LayerBox:
		cats, values, err := y.categories(dir, cache)
		if err != nil {
			return nil, err
		}
		var (
			order  []string
			groups = make(map[string][]float64)
		)
		for i, c := range cats {
			if _, ok := groups[c]; !ok {
				order = append(order, c)
			}
			groups[c] = append(groups[c], values[i])
		}
		var boxes []plotlib.Box
		for _, c := range order {
			b, err := plotlib.BoxFromData(c, groups[c])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c, err)
			}
			boxes = append(boxes, b)
		}
		p, err := plotlib.NewBoxPlot(boxes, style)
		if err != nil {
			return nil, err
		}
		p.Title = y.Legend
		if y.BarWidth > 0 {
			p.Width = y.BarWidth
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrLayer, y.Type)
	}
}

func (y Layer) points(dir string, cache tableCache) ([]plotlib.Point, error) {
	t, err := cache.get(dir, y.File)
	if err != nil {
		return nil, err
	}
	xs, err := t.Floats(y.X)
	if err != nil {
		return nil, err
	}
	ys, err := t.Floats(y.Y)
	if err != nil {
		return nil, err
	}
	points := make([]plotlib.Point, len(xs))
	for i := range xs {
		points[i] = plotlib.NewPoint(xs[i], ys[i])
	}
	return points, nil
}

func (y Layer) categories(dir string, cache tableCache) ([]string, []float64, error) {
	t, err := cache.get(dir, y.File)
	if err != nil {
		return nil, nil, err
	}
	cats, err := t.Strings(y.X)
	if err != nil {
		return nil, nil, err
	}
	values, err := t.Floats(y.Y)
	if err != nil {
		return nil, nil, err
	}
	return cats, values, nil
}
