// Package svgplot writes rendered plots as SVG documents.
package svgplot

import (
	"bufio"
	"io"

	"github.com/midbel/plotlib"
	"github.com/midbel/svg"
)

const currentColour = "currentColor"

func Render(w io.Writer, page *plotlib.Page) error {
	el := svg.NewSVG(svg.WithDimension(page.Width, page.Height))
	el.OmitProlog = true

	if page.Title != "" {
		tx := svg.NewText(page.Title)
		tx.Pos = svg.NewPos(page.Width/2, plotlib.FontSize*1.4)
		tx.Font = svg.NewFont(plotlib.FontSize * 1.2)
		tx.Anchor = "middle"
		tx.Baseline = "middle"
		el.Append(tx.AsElement())
	}
	for _, f := range page.Frames {
		if f.Frame == nil {
			continue
		}
		el.Append(renderFrame(f))
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func renderFrame(f plotlib.Placement) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(f.Left, f.Top))
	g.Class = append(g.Class, "view")
	if f.Title != "" {
		tx := svg.NewText(f.Title)
		tx.Pos = svg.NewPos(f.Width/2, -plotlib.FontSize)
		tx.Font = svg.NewFont(plotlib.FontSize)
		tx.Anchor = "middle"
		g.Append(tx.AsElement())
	}
	for _, a := range f.Axes {
		g.Append(renderGroup(a, "axis"))
	}
	for _, y := range f.Layers {
		if y.Empty() {
			continue
		}
		g.Append(renderGroup(y, "area"))
	}
	for _, y := range f.Legend {
		g.Append(renderGroup(y, "legend"))
	}
	return g.AsElement()
}

func renderGroup(grp plotlib.Group, class ...string) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, class...)
	if grp.Class != "" {
		g.Class = append(g.Class, grp.Class)
	}
	for _, it := range grp.Items {
		if el := renderPrimitive(it); el != nil {
			g.Append(el)
		}
	}
	return g.AsElement()
}

func renderPrimitive(it plotlib.Primitive) svg.Element {
	if len(it.Points) == 0 {
		return nil
	}
	switch it.Kind {
	case plotlib.KindMarker:
		return renderMarker(it)
	case plotlib.KindRect:
		var (
			pos, w, h = it.Normalize()
			el        svg.Rect
		)
		el.Pos = svg.NewPos(pos.X, pos.Y)
		el.Dim = svg.NewDim(w, h)
		el.Fill = getFill(it.Style, true)
		return el.AsElement()
	case plotlib.KindLine:
		if len(it.Points) < 2 {
			return nil
		}
		li := svg.NewLine(getPos(it.Points[0]), getPos(it.Points[1]))
		li.Stroke = getStroke(it.Style)
		return li.AsElement()
	case plotlib.KindPath:
		pat := getBasePath(it.Style, it.Closed)
		pat.AbsMoveTo(getPos(it.Points[0]))
		for _, p := range it.Points[1:] {
			pat.AbsLineTo(getPos(p))
		}
		if it.Closed {
			pat.ClosePath()
		}
		return pat.AsElement()
	case plotlib.KindText:
		tx := svg.NewText(it.Text)
		tx.Pos = getPos(it.Points[0])
		tx.Font = svg.NewFont(getFontSize(it.Style))
		tx.Anchor = getAnchor(it.Anchor)
		tx.Baseline = "middle"
		return tx.AsElement()
	default:
		return nil
	}
}

func renderMarker(it plotlib.Primitive) svg.Element {
	var (
		pos  = it.Points[0]
		size = it.Style.Size
	)
	if size <= 0 {
		size = plotlib.DefaultSize
	}
	switch it.Style.Marker {
	case plotlib.ShapeSquare, plotlib.ShapeDiamond:
		pat := getBasePath(it.Style, true)
		pat.Fill = getFill(it.Style, true)
		outline := it.Style.Marker.Outline(pos, size)
		pat.AbsMoveTo(getPos(outline[0]))
		for _, p := range outline[1:] {
			pat.AbsLineTo(getPos(p))
		}
		pat.ClosePath()
		return pat.AsElement()
	case plotlib.ShapeCross:
		var (
			pat     = getBasePath(it.Style, false)
			outline = it.Style.Marker.Outline(pos, size)
		)
		pat.AbsMoveTo(getPos(outline[0]))
		pat.AbsLineTo(getPos(outline[1]))
		pat.AbsMoveTo(getPos(outline[2]))
		pat.AbsLineTo(getPos(outline[3]))
		return pat.AsElement()
	default:
		var el svg.Circle
		el.Pos = getPos(pos)
		el.Radius = size / 2
		el.Fill = getFill(it.Style, true)
		return el.AsElement()
	}
}

func getPos(p plotlib.Point) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func getColor(style plotlib.Style) string {
	if style.Color == "" {
		return currentColour
	}
	return style.Color
}

func getFill(style plotlib.Style, solid bool) svg.Fill {
	color := style.Fill
	if color == "" && solid {
		color = getColor(style)
	}
	if color == "" {
		return svg.NewFill("none")
	}
	fill := svg.NewFill(color)
	if style.Opacity > 0 {
		fill.Opacity = style.Opacity
	}
	return fill
}

func getStroke(style plotlib.Style) svg.Stroke {
	width := style.Width
	if width <= 0 {
		width = 1
	}
	sk := svg.NewStroke(getColor(style), width)
	if style.Opacity > 0 {
		sk.Opacity = style.Opacity
	}
	switch style.Line {
	case plotlib.StyleDashed:
		sk.DashArray(5)
	case plotlib.StyleDotted:
		sk.DashArray(1)
	default:
	}
	return sk
}

func getBasePath(style plotlib.Style, closed bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = getStroke(style)
	if closed && style.Fill != "" {
		pat.Fill = getFill(style, false)
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getAnchor(a plotlib.Anchor) string {
	switch a {
	case plotlib.AnchorStart:
		return "start"
	case plotlib.AnchorEnd:
		return "end"
	default:
		return "middle"
	}
}

func getFontSize(style plotlib.Style) float64 {
	if style.Size > 0 {
		return style.Size
	}
	return plotlib.FontSize
}
