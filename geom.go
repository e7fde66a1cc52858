package plotlib

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Reverse() Point {
	return Point{
		X: p.Y,
		Y: p.X,
	}
}

type Kind int

const (
	KindMarker Kind = iota
	KindRect
	KindLine
	KindPath
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindPath:
		return "path"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

// Primitive is a single drawing instruction in output space. The number of
// points depends on the kind: one for markers and texts, two opposite
// corners for rectangles, two end points for lines and at least two for
// paths.
type Primitive struct {
	Kind   Kind
	Points []Point
	Closed bool
	Text   string
	Anchor Anchor
	Style  Style
}

func NewMarker(pos Point, style Style) Primitive {
	return Primitive{
		Kind:   KindMarker,
		Points: []Point{pos},
		Style:  style,
	}
}

func NewRect(p1, p2 Point, style Style) Primitive {
	return Primitive{
		Kind:   KindRect,
		Points: []Point{p1, p2},
		Style:  style,
	}
}

func NewSegment(p1, p2 Point, style Style) Primitive {
	return Primitive{
		Kind:   KindLine,
		Points: []Point{p1, p2},
		Style:  style,
	}
}

func NewPath(points []Point, closed bool, style Style) Primitive {
	return Primitive{
		Kind:   KindPath,
		Points: points,
		Closed: closed,
		Style:  style,
	}
}

func NewText(pos Point, str string, anchor Anchor, style Style) Primitive {
	return Primitive{
		Kind:   KindText,
		Points: []Point{pos},
		Text:   str,
		Anchor: anchor,
		Style:  style,
	}
}

// Normalize returns the top left corner and the dimension of a rectangle
// primitive whatever the order of its corners.
func (p Primitive) Normalize() (Point, float64, float64) {
	if p.Kind != KindRect || len(p.Points) != 2 {
		return Point{}, 0, 0
	}
	var (
		p1 = p.Points[0]
		p2 = p.Points[1]
		x  = math.Min(p1.X, p2.X)
		y  = math.Min(p1.Y, p2.Y)
	)
	return NewPoint(x, y), math.Abs(p2.X - p1.X), math.Abs(p2.Y - p1.Y)
}

// Group is the renderer neutral set of primitives produced by one
// representation, one axis or one legend entry.
type Group struct {
	Class string
	Items []Primitive
}

func NewGroup(class string) Group {
	return Group{
		Class: class,
	}
}

func (g *Group) Add(items ...Primitive) {
	g.Items = append(g.Items, items...)
}

func (g Group) Len() int {
	return len(g.Items)
}

func (g Group) Empty() bool {
	return len(g.Items) == 0
}

// Translate returns a copy of the group with all its points moved by dx and
// dy.
func (g Group) Translate(dx, dy float64) Group {
	res := Group{
		Class: g.Class,
		Items: make([]Primitive, len(g.Items)),
	}
	for i, it := range g.Items {
		pts := make([]Point, len(it.Points))
		for j, p := range it.Points {
			pts[j] = NewPoint(p.X+dx, p.Y+dy)
		}
		it.Points = pts
		res.Items[i] = it
	}
	return res
}

// Bounds returns the smallest rectangle enclosing all the points of the
// group. ok is false for an empty group.
func (g Group) Bounds() (min, max Point, ok bool) {
	for _, it := range g.Items {
		for _, p := range it.Points {
			if !ok {
				min, max, ok = p, p, true
				continue
			}
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return
}

// Cell is a character placed on a text grid. Row 0 is the top of the grid.
type Cell struct {
	Col   int
	Row   int
	Glyph rune
}

// Layer is the text mode counterpart of Group.
type Layer struct {
	Class string
	Color string
	Cells []Cell

	face *face
}

// face is the rectangle of cells a layer is drawn on, bounds included.
type face struct {
	c0, c1 int
	r0, r1 int
}

func (f *face) contains(col, row int) bool {
	return f == nil || (col >= f.c0 && col <= f.c1 && row >= f.r0 && row <= f.r1)
}

func NewLayer(class, color string) Layer {
	return Layer{
		Class: class,
		Color: color,
	}
}

// newFaceLayer creates a layer whose cells are restricted to the output
// ranges of the axes.
func newFaceLayer(class, color string, cols, rows Range) Layer {
	y := NewLayer(class, color)
	y.face = &face{
		c0: cellOf(cols.Min()),
		c1: cellOf(cols.Max()),
		r0: cellOf(rows.Min()),
		r1: cellOf(rows.Max()),
	}
	return y
}

// Set records glyph at the given position. Positions outside of the face
// of the layer are dropped.
func (y *Layer) Set(col, row int, glyph rune) {
	if !y.face.contains(col, row) {
		return
	}
	y.Cells = append(y.Cells, Cell{
		Col:   col,
		Row:   row,
		Glyph: glyph,
	})
}

func (y Layer) Len() int {
	return len(y.Cells)
}

func (y Layer) Empty() bool {
	return len(y.Cells) == 0
}

// Get returns the last glyph set at the given position.
func (y Layer) Get(col, row int) (rune, bool) {
	for i := len(y.Cells) - 1; i >= 0; i-- {
		c := y.Cells[i]
		if c.Col == col && c.Row == row {
			return c.Glyph, true
		}
	}
	return 0, false
}

const maxCell = 1 << 30

func cellOf(v float64) int {
	if math.IsNaN(v) {
		return -maxCell
	}
	return int(math.Round(math.Max(math.Min(v, maxCell), -maxCell)))
}

// line sets glyph on the cells of the segment between p1 and p2, given in
// output space. The segment is first clipped to the face of the layer.
func (y *Layer) line(p1, p2 Point, glyph rune) {
	if f := y.face; f != nil {
		var ok bool
		p1, p2, ok = clipSegment(p1, p2, float64(f.c0), float64(f.c1), float64(f.r0), float64(f.r1))
		if !ok {
			return
		}
	}
	y.segment(cellOf(p1.X), cellOf(p1.Y), cellOf(p2.X), cellOf(p2.Y), glyph)
}

// clipSegment clips a segment to a rectangle with the Liang-Barsky
// algorithm. ok is false when the segment lies outside of the rectangle.
func clipSegment(p1, p2 Point, xmin, xmax, ymin, ymax float64) (Point, Point, bool) {
	var (
		dx = p2.X - p1.X
		dy = p2.Y - p1.Y
		t0 = 0.0
		t1 = 1.0
	)
	edges := []struct {
		p float64
		q float64
	}{
		{p: -dx, q: p1.X - xmin},
		{p: dx, q: xmax - p1.X},
		{p: -dy, q: p1.Y - ymin},
		{p: dy, q: ymax - p1.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return p1, p2, false
			}
			continue
		}
		r := e.q / e.p
		if e.p < 0 {
			if r > t1 {
				return p1, p2, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return p1, p2, false
			}
			t1 = math.Min(t1, r)
		}
	}
	var (
		a = NewPoint(p1.X+t0*dx, p1.Y+t0*dy)
		b = NewPoint(p1.X+t1*dx, p1.Y+t1*dy)
	)
	return a, b, true
}

// segment sets glyph on every cell of the discrete line between two
// cells.
func (y *Layer) segment(c1, r1, c2, r2 int, glyph rune) {
	var (
		dc = abs(c2 - c1)
		dr = -abs(r2 - r1)
		sc = 1
		sr = 1
	)
	if c1 > c2 {
		sc = -1
	}
	if r1 > r2 {
		sr = -1
	}
	err := dc + dr
	for {
		y.Set(c1, r1, glyph)
		if c1 == c2 && r1 == r2 {
			break
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c1 += sc
		}
		if e2 <= dc {
			err += dc
			r1 += sr
		}
	}
}

// column sets glyph on every cell of col between rows r1 and r2 included.
// The span is limited to the face of the layer.
func (y *Layer) column(col, r1, r2 int, glyph rune) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if f := y.face; f != nil {
		if col < f.c0 || col > f.c1 {
			return
		}
		r1, r2 = max(r1, f.r0), min(r2, f.r1)
	}
	for r := r1; r <= r2; r++ {
		y.Set(col, r, glyph)
	}
}

// row sets glyph on every cell of row between cols c1 and c2 included.
// The span is limited to the face of the layer.
func (y *Layer) row(row, c1, c2 int, glyph rune) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	if f := y.face; f != nil {
		if row < f.r0 || row > f.r1 {
			return
		}
		c1, c2 = max(c1, f.c0), min(c2, f.c1)
	}
	for c := c1; c <= c2; c++ {
		y.Set(c, row, glyph)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
