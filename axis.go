package plotlib

import (
	"fmt"
	"math"
	"strconv"
)

const defaultTicks = 6

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// UnionRange computes the smallest range covering all the given ranges.
// Ranges with a non-finite bound are ignored. Without any usable range the
// unit range is returned, and a zero width union is padded on both sides so
// that a Scale can always be built from the result.
func UnionRange(ranges ...Range) Range {
	var (
		res Range
		set bool
	)
	for _, r := range ranges {
		if !r.finite() {
			continue
		}
		if !set {
			res, set = NewRange(r.Min(), r.Max()), true
			continue
		}
		res = res.Union(r)
	}
	if !set {
		return NewRange(0, 1)
	}
	if res.Len() == 0 {
		pad := math.Max(math.Abs(res.F)*0.1, 0.5)
		res = NewRange(res.F-pad, res.T+pad)
	}
	return res
}

type ContinuousAxis struct {
	label string
	ticks int
	scale Scale
}

func NewContinuousAxis(domain, output Range, ticks int, label string) (*ContinuousAxis, error) {
	s, err := NewScale(domain, output)
	if err != nil {
		return nil, err
	}
	a := ContinuousAxis{
		label: label,
		ticks: ticks,
		scale: s,
	}
	return &a, nil
}

func (a *ContinuousAxis) Map(v float64) float64 {
	return a.scale.Map(v)
}

func (a *ContinuousAxis) Unmap(p float64) float64 {
	return a.scale.Unmap(p)
}

func (a *ContinuousAxis) Domain() Range {
	return a.scale.Domain()
}

func (a *ContinuousAxis) Output() Range {
	return a.scale.Output()
}

func (a *ContinuousAxis) Label() string {
	return a.label
}

// Step returns the distance between two consecutive ticks: a value of the
// form {1,2,5}×10^k chosen so that the domain holds about the requested
// number of ticks.
func (a *ContinuousAxis) Step() float64 {
	return niceStep(a.Domain().Max()-a.Domain().Min(), a.ticks)
}

// Ticks returns at most a few times the requested number of ticks. When the
// step is too small to be told apart from the magnitude of the domain, the
// ticks that cannot be represented are skipped.
func (a *ContinuousAxis) Ticks() []float64 {
	var (
		dom   = a.Domain()
		lo    = dom.Min()
		hi    = dom.Max()
		step  = a.Step()
		eps   = step * 1e-9
		k0    = math.Ceil(lo/step - 1e-9)
		k1    = math.Floor(hi/step + 1e-9)
		limit = a.want()*4 + 2
		list  []float64
	)
	for i := 0; i < limit && k0+float64(i) <= k1; i++ {
		v := (k0 + float64(i)) * step
		if v > hi+eps {
			break
		}
		v = math.Min(math.Max(v, lo), hi)
		if v == 0 {
			v = 0
		}
		if n := len(list); n > 0 && v <= list[n-1] {
			continue
		}
		list = append(list, v)
	}
	if len(list) == 0 {
		list = append(list, lo)
	}
	return list
}

func (a *ContinuousAxis) want() int {
	if a.ticks <= 0 {
		return defaultTicks
	}
	return a.ticks
}

// Nice returns a copy of the axis whose domain is widened to the enclosing
// multiples of its tick step.
func (a *ContinuousAxis) Nice() (*ContinuousAxis, error) {
	var (
		dom  = a.Domain()
		step = a.Step()
		lo   = math.Floor(dom.Min()/step+1e-9) * step
		hi   = math.Ceil(dom.Max()/step-1e-9) * step
	)
	if dom.F > dom.T {
		lo, hi = hi, lo
	}
	return NewContinuousAxis(NewRange(lo, hi), a.Output(), a.ticks, a.label)
}

// WithOutput returns a copy of the axis mapping the same domain onto
// another output range.
func (a *ContinuousAxis) WithOutput(output Range) (*ContinuousAxis, error) {
	return NewContinuousAxis(a.Domain(), output, a.ticks, a.label)
}

// Format returns the label of a tick with just enough decimals for the
// step of the axis.
func (a *ContinuousAxis) Format(v float64) string {
	return formatTick(v, a.Step())
}

func (a *ContinuousAxis) Geometry(orient Orientation, size float64, style Style, grid bool) Group {
	var (
		grp = NewGroup("axis")
		fr  = axisFrame{
			Orientation: orient,
			size:        size,
			style:       style,
		}
	)
	grp.Add(fr.domainLine(a.Output()))
	for _, t := range a.Ticks() {
		pos := a.Map(t)
		grp.Add(fr.tick(pos))
		grp.Add(fr.text(pos, a.Format(t)))
		if grid {
			grp.Add(fr.grid(pos))
		}
	}
	if a.label != "" {
		grp.Add(fr.label(a.Output(), a.label))
	}
	return grp
}

func niceStep(width float64, want int) float64 {
	if want <= 0 {
		want = defaultTicks
	}
	var (
		raw  = math.Abs(width) / float64(want)
		mag  = math.Pow(10, math.Floor(math.Log10(raw)))
		nice float64
	)
	switch norm := raw / mag; {
	case norm < 1.5:
		nice = 1
	case norm < 3:
		nice = 2
	case norm < 7:
		nice = 5
	default:
		nice = 10
	}
	return nice * mag
}

func formatTick(v, step float64) string {
	prec := 0
	if step > 0 {
		if p := -int(math.Floor(math.Log10(step))); p > 0 {
			prec = p
		}
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

type CategoricalAxis struct {
	label      string
	categories []string
	index      map[string]int
	output     Range
}

func NewCategoricalAxis(categories []string, output Range, label string) (*CategoricalAxis, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	if output.degenerate() {
		return nil, fmt.Errorf("%w: output %s", ErrDegenerate, output)
	}
	a := CategoricalAxis{
		label:      label,
		categories: make([]string, 0, len(categories)),
		index:      make(map[string]int),
		output:     output,
	}
	for _, c := range categories {
		if _, ok := a.index[c]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c)
		}
		a.index[c] = len(a.categories)
		a.categories = append(a.categories, c)
	}
	return &a, nil
}

func (a *CategoricalAxis) Ticks() []string {
	list := make([]string, len(a.categories))
	copy(list, a.categories)
	return list
}

func (a *CategoricalAxis) Len() int {
	return len(a.categories)
}

func (a *CategoricalAxis) Index(category string) (int, bool) {
	i, ok := a.index[category]
	return i, ok
}

func (a *CategoricalAxis) Contains(category string) bool {
	_, ok := a.index[category]
	return ok
}

// Map returns the center of the subdivision of the output range given to
// the category.
func (a *CategoricalAxis) Map(category string) (float64, error) {
	i, ok := a.index[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return a.output.F + (float64(i)+0.5)*a.space(), nil
}

// Band returns the width of the subdivision of one category.
func (a *CategoricalAxis) Band() float64 {
	return math.Abs(a.space())
}

func (a *CategoricalAxis) Output() Range {
	return a.output
}

func (a *CategoricalAxis) Label() string {
	return a.label
}

func (a *CategoricalAxis) WithOutput(output Range) (*CategoricalAxis, error) {
	return NewCategoricalAxis(a.categories, output, a.label)
}

func (a *CategoricalAxis) space() float64 {
	return a.output.Len() / float64(len(a.categories))
}

func (a *CategoricalAxis) Geometry(orient Orientation, size float64, style Style, grid bool) Group {
	var (
		grp = NewGroup("axis")
		fr  = axisFrame{
			Orientation: orient,
			size:        size,
			style:       style,
		}
	)
	grp.Add(fr.domainLine(a.output))
	for _, c := range a.categories {
		pos, _ := a.Map(c)
		grp.Add(fr.tick(pos))
		grp.Add(fr.text(pos, c))
		if grid {
			g := fr.grid(pos)
			g.Style.Line = StyleDashed
			grp.Add(g)
		}
	}
	if a.label != "" {
		grp.Add(fr.label(a.output, a.label))
	}
	return grp
}

// axisFrame places the primitives of an axis along one side of a face.
// size is the extent of the face perpendicular to the axis.
type axisFrame struct {
	Orientation
	size  float64
	style Style
}

func (f axisFrame) base() float64 {
	if f.Orientation == OrientBottom || f.Orientation == OrientRight {
		return f.size
	}
	return 0
}

func (f axisFrame) at(pos, off float64) Point {
	if f.Vertical() {
		return NewPoint(f.base()+off, pos)
	}
	return NewPoint(pos, f.base()+off)
}

func (f axisFrame) outward() float64 {
	if f.Orientation == OrientBottom || f.Orientation == OrientRight {
		return 1
	}
	return -1
}

func (f axisFrame) font() float64 {
	if f.style.Size > 0 {
		return f.style.Size
	}
	return FontSize
}

func (f axisFrame) domainLine(out Range) Primitive {
	return NewSegment(f.at(out.F, 0), f.at(out.T, 0), f.style)
}

func (f axisFrame) tick(pos float64) Primitive {
	return NewSegment(f.at(pos, 0), f.at(pos, f.outward()*f.font()*0.5), f.style)
}

func (f axisFrame) grid(pos float64) Primitive {
	sk := f.style
	sk.Opacity = 0.1
	return NewSegment(f.at(pos, 0), f.at(pos, -f.outward()*f.size), sk)
}

func (f axisFrame) text(pos float64, str string) Primitive {
	var (
		anchor = AnchorMiddle
		off    = f.outward() * f.font() * 1.2
	)
	if f.Vertical() {
		off = f.outward() * f.font() * 0.8
		anchor = AnchorEnd
		if f.Reverse() {
			anchor = AnchorStart
		}
	}
	return NewText(f.at(pos, off), str, anchor, f.style)
}

func (f axisFrame) label(out Range, str string) Primitive {
	var (
		mid = out.F + out.Len()/2
		off = f.outward() * f.font() * 2.8
	)
	if f.Vertical() {
		off = f.outward() * f.font() * 4
	}
	return NewText(f.at(mid, off), str, AnchorMiddle, f.style)
}
