package plotlib

import (
	"fmt"
)

// AxisConfig configures a continuous axis of a view. A nil Domain lets the
// view compute it from the representations.
type AxisConfig struct {
	Label  string
	Ticks  int
	Domain *Range
	Nice   bool
	Grid   bool
}

func (c AxisConfig) domain(ranges []Range) (Range, error) {
	if c.Domain == nil {
		return UnionRange(ranges...), nil
	}
	if c.Domain.degenerate() {
		return Range{}, fmt.Errorf("%w: domain override %s", ErrDegenerate, *c.Domain)
	}
	return *c.Domain, nil
}

func (c AxisConfig) axis(dom, out Range) (*ContinuousAxis, error) {
	a, err := NewContinuousAxis(dom, out, c.Ticks, c.Label)
	if err != nil {
		return nil, err
	}
	if c.Nice && c.Domain == nil {
		return a.Nice()
	}
	return a, nil
}

// CategoryConfig configures the categorical axis of a view. When
// Categories is empty, the categories are collected from the
// representations.
type CategoryConfig struct {
	Label      string
	Categories []string
	Grid       bool
}

// View is a pair of axes with the representations drawn against them.
type View interface {
	Render(width, height float64) (*Frame, error)
	RenderText(cols, rows int) (*TextFrame, error)
}

// Frame holds the geometry of a view rendered on a face of the given size.
// All positions are relative to the top left corner of the face.
type Frame struct {
	Title  string
	Width  float64
	Height float64
	Axes   []Group
	Layers []Group
	Legend []Group
}

type TextTick struct {
	Pos   int
	Label string
}

// TextFrame is the text mode counterpart of Frame. Columns go from 0 to
// Cols-1 left to right and rows from 0 to Rows-1 top to bottom.
type TextFrame struct {
	Title  string
	Cols   int
	Rows   int
	XLabel string
	YLabel string
	XTicks []TextTick
	YTicks []TextTick
	Layers []Layer
}

// Compose adds r to v after checking that r can be drawn against the axes
// of v.
func Compose(v View, r Representation) error {
	switch v := v.(type) {
	case *ContinuousView:
		c, ok := r.(ContinuousRepresentation)
		if !ok {
			return fmt.Errorf("%w: %T on continuous axes", ErrKindMismatch, r)
		}
		v.Add(c)
	case *CategoricalView:
		c, ok := r.(CategoricalRepresentation)
		if !ok {
			return fmt.Errorf("%w: %T on categorical axes", ErrKindMismatch, r)
		}
		v.Add(c)
	default:
		return fmt.Errorf("%w: unsupported view %T", ErrKindMismatch, v)
	}
	return nil
}

type ContinuousView struct {
	Title string
	X     AxisConfig
	Y     AxisConfig
	Theme Theme

	reprs []ContinuousRepresentation
}

func NewContinuousView() *ContinuousView {
	return &ContinuousView{
		Theme: DefaultTheme(),
	}
}

func (v *ContinuousView) Add(r ContinuousRepresentation) *ContinuousView {
	v.reprs = append(v.reprs, r)
	return v
}

func (v *ContinuousView) Representations() []ContinuousRepresentation {
	list := make([]ContinuousRepresentation, len(v.reprs))
	copy(list, v.reprs)
	return list
}

// Domains returns the domains of the x and y axes: the overrides when set,
// the union of the ranges of the representations otherwise.
func (v *ContinuousView) Domains() (Range, Range, error) {
	var xs, ys []Range
	for _, r := range v.reprs {
		xs = append(xs, r.Range(DimX))
		ys = append(ys, r.Range(DimY))
	}
	x, err := v.X.domain(xs)
	if err != nil {
		return x, x, fmt.Errorf("x axis: %w", err)
	}
	y, err := v.Y.domain(ys)
	if err != nil {
		return x, y, fmt.Errorf("y axis: %w", err)
	}
	return x, y, nil
}

// Axes resolves the axes of the view for the given output ranges.
func (v *ContinuousView) Axes(xout, yout Range) (*ContinuousAxis, *ContinuousAxis, error) {
	xdom, ydom, err := v.Domains()
	if err != nil {
		return nil, nil, err
	}
	x, err := v.X.axis(xdom, xout)
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	y, err := v.Y.axis(ydom, yout)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}
	return x, y, nil
}

func (v *ContinuousView) Render(width, height float64) (*Frame, error) {
	x, y, err := v.Axes(NewRange(0, width), NewRange(height, 0))
	if err != nil {
		return nil, err
	}
	var (
		style = axisStyle(v.Theme)
		frame = Frame{
			Title:  v.Title,
			Width:  width,
			Height: height,
		}
	)
	frame.Axes = append(frame.Axes, x.Geometry(OrientBottom, height, style, v.X.Grid))
	frame.Axes = append(frame.Axes, y.Geometry(OrientLeft, width, style, v.Y.Grid))
	for _, r := range v.reprs {
		if !v.visible(r, x, y) {
			frame.Layers = append(frame.Layers, Group{})
			continue
		}
		frame.Layers = append(frame.Layers, r.Geometry(x, y))
	}
	frame.Legend = placeLegend(v.Theme, width, legendsOf(v.reprs))
	return &frame, nil
}

func (v *ContinuousView) RenderText(cols, rows int) (*TextFrame, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("%w: text face %dx%d", ErrDegenerate, cols, rows)
	}
	x, y, err := v.Axes(NewRange(0, float64(cols-1)), NewRange(float64(rows-1), 0))
	if err != nil {
		return nil, err
	}
	frame := TextFrame{
		Title:  v.Title,
		Cols:   cols,
		Rows:   rows,
		XLabel: x.Label(),
		YLabel: y.Label(),
		XTicks: textTicks(x),
		YTicks: textTicks(y),
	}
	for _, r := range v.reprs {
		if !v.visible(r, x, y) {
			frame.Layers = append(frame.Layers, Layer{})
			continue
		}
		frame.Layers = append(frame.Layers, r.Cells(x, y))
	}
	return &frame, nil
}

func (v *ContinuousView) visible(r ContinuousRepresentation, x, y *ContinuousAxis) bool {
	return r.Range(DimX).Overlaps(x.Domain()) && r.Range(DimY).Overlaps(y.Domain())
}

type CategoricalView struct {
	Title string
	X     CategoryConfig
	Y     AxisConfig
	Theme Theme

	reprs []CategoricalRepresentation
}

func NewCategoricalView() *CategoricalView {
	return &CategoricalView{
		Theme: DefaultTheme(),
	}
}

func (v *CategoricalView) Add(r CategoricalRepresentation) *CategoricalView {
	v.reprs = append(v.reprs, r)
	return v
}

func (v *CategoricalView) Representations() []CategoricalRepresentation {
	list := make([]CategoricalRepresentation, len(v.reprs))
	copy(list, v.reprs)
	return list
}

// Categories returns the categories of the x axis. Without explicit
// categories, they are collected from the representations in first seen
// order, a category used by several representations getting a single
// slot. With explicit categories, every category of every representation
// has to be part of them.
func (v *CategoricalView) Categories() ([]string, error) {
	if len(v.X.Categories) > 0 {
		known := make(map[string]struct{})
		for _, c := range v.X.Categories {
			known[c] = struct{}{}
		}
		for _, r := range v.reprs {
			for _, c := range r.Categories() {
				if _, ok := known[c]; !ok {
					return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
				}
			}
		}
		return copyStrings(v.X.Categories), nil
	}
	var (
		list []string
		seen = make(map[string]struct{})
	)
	for _, r := range v.reprs {
		for _, c := range r.Categories() {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			list = append(list, c)
		}
	}
	if len(list) == 0 {
		return nil, ErrNoCategories
	}
	return list, nil
}

func (v *CategoricalView) Domain() (Range, error) {
	var ys []Range
	for _, r := range v.reprs {
		ys = append(ys, r.Range())
	}
	y, err := v.Y.domain(ys)
	if err != nil {
		return y, fmt.Errorf("y axis: %w", err)
	}
	return y, nil
}

func (v *CategoricalView) Axes(xout, yout Range) (*CategoricalAxis, *ContinuousAxis, error) {
	cats, err := v.Categories()
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	x, err := NewCategoricalAxis(cats, xout, v.X.Label)
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	dom, err := v.Domain()
	if err != nil {
		return nil, nil, err
	}
	y, err := v.Y.axis(dom, yout)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}
	return x, y, nil
}

func (v *CategoricalView) Render(width, height float64) (*Frame, error) {
	x, y, err := v.Axes(NewRange(0, width), NewRange(height, 0))
	if err != nil {
		return nil, err
	}
	var (
		style = axisStyle(v.Theme)
		frame = Frame{
			Title:  v.Title,
			Width:  width,
			Height: height,
		}
	)
	frame.Axes = append(frame.Axes, x.Geometry(OrientBottom, height, style, v.X.Grid))
	frame.Axes = append(frame.Axes, y.Geometry(OrientLeft, width, style, v.Y.Grid))
	for _, r := range v.reprs {
		if !r.Range().Overlaps(y.Domain()) {
			frame.Layers = append(frame.Layers, Group{})
			continue
		}
		frame.Layers = append(frame.Layers, r.Geometry(x, y))
	}
	frame.Legend = placeLegend(v.Theme, width, legendsOf(v.reprs))
	return &frame, nil
}

func (v *CategoricalView) RenderText(cols, rows int) (*TextFrame, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("%w: text face %dx%d", ErrDegenerate, cols, rows)
	}
	x, y, err := v.Axes(NewRange(0, float64(cols)), NewRange(float64(rows-1), 0))
	if err != nil {
		return nil, err
	}
	frame := TextFrame{
		Title:  v.Title,
		Cols:   cols,
		Rows:   rows,
		XLabel: x.Label(),
		YLabel: y.Label(),
		YTicks: textTicks(y),
	}
	for _, c := range x.Ticks() {
		pos, _ := x.Map(c)
		frame.XTicks = append(frame.XTicks, TextTick{
			Pos:   cellOf(pos),
			Label: c,
		})
	}
	for _, r := range v.reprs {
		if !r.Range().Overlaps(y.Domain()) {
			frame.Layers = append(frame.Layers, Layer{})
			continue
		}
		frame.Layers = append(frame.Layers, r.Cells(x, y))
	}
	return &frame, nil
}

func textTicks(a *ContinuousAxis) []TextTick {
	var list []TextTick
	for _, t := range a.Ticks() {
		list = append(list, TextTick{
			Pos:   cellOf(a.Map(t)),
			Label: a.Format(t),
		})
	}
	return list
}

func axisStyle(t Theme) Style {
	s := t.Axis
	if s.Color == "" {
		s.Color = "black"
	}
	s.Size = t.font()
	return s
}

func legendsOf[R Representation](reprs []R) []Group {
	var list []Group
	for _, r := range reprs {
		if g, ok := r.Legend(); ok {
			list = append(list, g)
		}
	}
	return list
}

// placeLegend stacks the legend entries in the top right corner of a face.
func placeLegend(t Theme, width float64, list []Group) []Group {
	var (
		font   = t.font()
		offset = font * 1.4
		chars  int
	)
	for _, g := range list {
		for _, it := range g.Items {
			if it.Kind == KindText && len(it.Text) > chars {
				chars = len(it.Text)
			}
		}
	}
	left := width - legendOffset - float64(chars)*font*0.6
	for i := range list {
		list[i] = list[i].Translate(left, font+float64(i)*offset)
	}
	return list
}
