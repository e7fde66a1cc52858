package plotlib

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

var DefaultPadding = Padding{
	Top:    40,
	Right:  40,
	Bottom: 60,
	Left:   70,
}

// Plot is a page holding one or more views laid out on a grid of Columns
// columns. Each view receives an equal cell of the page; its face is the
// cell minus the padding kept for the axes.
type Plot struct {
	Title   string
	Width   float64
	Height  float64
	Columns int

	Padding
	Views []View
}

type Placement struct {
	*Frame
	Left float64
	Top  float64
}

type Page struct {
	Title  string
	Width  float64
	Height float64
	Frames []Placement
}

type TextPage struct {
	Title  string
	Frames []*TextFrame
}

func (p Plot) columns() int {
	if p.Columns <= 0 || p.Columns > len(p.Views) {
		return max(len(p.Views), 1)
	}
	return p.Columns
}

func (p Plot) header() float64 {
	if p.Title == "" {
		return 0
	}
	return FontSize * 2
}

func (p Plot) cell(i int) (left, top, width, height float64) {
	var (
		cols = p.columns()
		rows = int(math.Ceil(float64(len(p.Views)) / float64(cols)))
	)
	width = p.Width / float64(cols)
	height = (p.Height - p.header()) / float64(max(rows, 1))
	left = float64(i%cols) * width
	top = p.header() + float64(i/cols)*height
	return
}

// Render renders all the views of the plot. Views are independent and
// read-only while rendered so they are processed concurrently.
func (p Plot) Render(ctx context.Context) (*Page, error) {
	page := Page{
		Title:  p.Title,
		Width:  p.Width,
		Height: p.Height,
		Frames: make([]Placement, len(p.Views)),
	}
	grp, ctx := errgroup.WithContext(ctx)
	for i := range p.Views {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				left, top, width, height = p.cell(i)
				face                     = width - p.Padding.Horizontal()
				size                     = height - p.Padding.Vertical()
			)
			if face <= 0 || size <= 0 {
				return fmt.Errorf("view %d: %w: face %gx%g", i, ErrDegenerate, face, size)
			}
			frame, err := p.Views[i].Render(face, size)
			if err != nil {
				return fmt.Errorf("view %d: %w", i, err)
			}
			page.Frames[i] = Placement{
				Frame: frame,
				Left:  left + p.Padding.Left,
				Top:   top + p.Padding.Top,
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// RenderText renders all the views of the plot on text faces of cols by
// rows characters.
func (p Plot) RenderText(ctx context.Context, cols, rows int) (*TextPage, error) {
	page := TextPage{
		Title:  p.Title,
		Frames: make([]*TextFrame, len(p.Views)),
	}
	grp, ctx := errgroup.WithContext(ctx)
	for i := range p.Views {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame, err := p.Views[i].RenderText(cols, rows)
			if err != nil {
				return fmt.Errorf("view %d: %w", i, err)
			}
			page.Frames[i] = frame
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}
