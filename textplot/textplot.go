// Package textplot writes rendered plots as fixed-width character grids.
package textplot

import (
	"bufio"
	"io"
	"strings"

	"github.com/midbel/plotlib"
	"github.com/muesli/termenv"
)

type Options struct {
	// Color paints the glyphs of each layer with the color of its
	// representation when the output supports it.
	Color bool
	// Force disables terminal detection and always emits true colors.
	Force bool
}

func Render(w io.Writer, page *plotlib.TextPage, opts Options) error {
	var (
		bw  = bufio.NewWriter(w)
		out *termenv.Output
	)
	if opts.Color {
		var options []termenv.OutputOption
		if opts.Force {
			options = append(options, termenv.WithProfile(termenv.TrueColor))
		}
		out = termenv.NewOutput(w, options...)
	}
	if page.Title != "" {
		bw.WriteString(page.Title)
		bw.WriteString("\n\n")
	}
	for i, f := range page.Frames {
		if f == nil {
			continue
		}
		if i > 0 {
			bw.WriteString("\n")
		}
		for _, line := range Lines(f, out) {
			bw.WriteString(line)
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

// Lines returns the lines of text drawing f. Glyphs are colored through out
// when it is not nil.
func Lines(f *plotlib.TextFrame, out *termenv.Output) []string {
	var (
		grid   = newGrid(f.Cols, f.Rows)
		margin = yMargin(f)
		lines  []string
	)
	for i, y := range f.Layers {
		grid.draw(i, y)
	}
	if f.Title != "" {
		lines = append(lines, center(f.Title, margin+1+f.Cols))
	}
	if f.YLabel != "" {
		lines = append(lines, f.YLabel)
	}
	yticks := make(map[int]string)
	for _, t := range f.YTicks {
		yticks[t.Pos] = t.Label
	}
	for r := 0; r < f.Rows; r++ {
		var (
			buf  strings.Builder
			axis = '|'
		)
		label, ok := yticks[r]
		if ok {
			axis = '+'
		}
		buf.WriteString(strings.Repeat(" ", margin-len(label)))
		buf.WriteString(label)
		buf.WriteRune(axis)
		buf.WriteString(grid.line(r, f.Layers, out))
		lines = append(lines, buf.String())
	}
	lines = append(lines, xAxis(f, margin))
	lines = append(lines, xLabels(f, margin))
	if f.XLabel != "" {
		lines = append(lines, strings.Repeat(" ", margin+1)+center(f.XLabel, f.Cols))
	}
	return lines
}

func yMargin(f *plotlib.TextFrame) int {
	var n int
	for _, t := range f.YTicks {
		if len(t.Label) > n {
			n = len(t.Label)
		}
	}
	return n + 1
}

func xAxis(f *plotlib.TextFrame, margin int) string {
	axis := []rune(strings.Repeat("-", f.Cols))
	for _, t := range f.XTicks {
		if t.Pos >= 0 && t.Pos < f.Cols {
			axis[t.Pos] = '+'
		}
	}
	return strings.Repeat(" ", margin) + "+" + string(axis)
}

func xLabels(f *plotlib.TextFrame, margin int) string {
	var (
		line = []rune(strings.Repeat(" ", f.Cols+margin+1))
		last = -1
	)
	for _, t := range f.XTicks {
		var (
			str   = []rune(t.Label)
			start = margin + 1 + t.Pos - len(str)/2
		)
		if start <= last || start < 0 {
			continue
		}
		for i, c := range str {
			if start+i >= len(line) {
				line = append(line, ' ')
			}
			line[start+i] = c
		}
		last = start + len(str)
	}
	return strings.TrimRight(string(line), " ")
}

func center(str string, width int) string {
	if n := len(str); n < width {
		return strings.Repeat(" ", (width-n)/2) + str
	}
	return str
}

type grid struct {
	cols   int
	rows   int
	glyphs [][]rune
	owner  [][]int
}

func newGrid(cols, rows int) *grid {
	g := grid{
		cols:   cols,
		rows:   rows,
		glyphs: make([][]rune, rows),
		owner:  make([][]int, rows),
	}
	for r := range g.glyphs {
		g.glyphs[r] = []rune(strings.Repeat(" ", cols))
		g.owner[r] = make([]int, cols)
		for c := range g.owner[r] {
			g.owner[r][c] = -1
		}
	}
	return &g
}

func (g *grid) draw(index int, layer plotlib.Layer) {
	for _, c := range layer.Cells {
		if c.Col < 0 || c.Col >= g.cols || c.Row < 0 || c.Row >= g.rows {
			continue
		}
		g.glyphs[c.Row][c.Col] = c.Glyph
		g.owner[c.Row][c.Col] = index
	}
}

func (g *grid) line(row int, layers []plotlib.Layer, out *termenv.Output) string {
	if out == nil {
		return string(g.glyphs[row])
	}
	var buf strings.Builder
	for c, r := range g.glyphs[row] {
		i := g.owner[row][c]
		if i < 0 || layers[i].Color == "" {
			buf.WriteRune(r)
			continue
		}
		str := out.String(string(r)).Foreground(out.Color(layers[i].Color))
		buf.WriteString(str.String())
	}
	return buf.String()
}
