package plotlib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotRender(t *testing.T) {
	p := Plot{
		Width:   800,
		Height:  600,
		Columns: 2,
		Padding: DefaultPadding,
		Views: []View{
			NewContinuousView().Add(testScatter(t, NewPoint(1, 1), NewPoint(2, 2))),
			NewCategoricalView().Add(testBars(t, "a", "b")),
		},
	}
	page, err := p.Render(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Frames, 2)

	assert.Equal(t, DefaultPadding.Left, page.Frames[0].Left)
	assert.Equal(t, 400+DefaultPadding.Left, page.Frames[1].Left)
	assert.Equal(t, DefaultPadding.Top, page.Frames[1].Top)
	assert.Equal(t, 400-DefaultPadding.Horizontal(), page.Frames[0].Width)
	assert.Equal(t, 600-DefaultPadding.Vertical(), page.Frames[0].Height)
}

func TestPlotRenderRows(t *testing.T) {
	p := Plot{
		Title:   "title",
		Width:   400,
		Height:  624,
		Columns: 1,
		Views: []View{
			NewContinuousView().Add(testScatter(t, NewPoint(1, 1), NewPoint(2, 2))),
			NewContinuousView().Add(testScatter(t, NewPoint(1, 1), NewPoint(2, 2))),
		},
	}
	page, err := p.Render(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Frames, 2)
	assert.Equal(t, FontSize*2, page.Frames[0].Top)
	assert.Equal(t, FontSize*2+300, page.Frames[1].Top)
}

func TestPlotRenderError(t *testing.T) {
	p := Plot{
		Width:   80,
		Height:  60,
		Padding: DefaultPadding,
		Views: []View{
			NewContinuousView().Add(testScatter(t, NewPoint(1, 1))),
		},
	}
	_, err := p.Render(context.Background())
	assert.ErrorIs(t, err, ErrDegenerate)

	p.Width, p.Height = 800, 600
	p.Views = append(p.Views, NewCategoricalView())
	_, err = p.Render(context.Background())
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestPlotRenderText(t *testing.T) {
	p := Plot{
		Title: "text",
		Views: []View{
			NewContinuousView().Add(testScatter(t, NewPoint(1, 1), NewPoint(2, 2))),
			NewCategoricalView().Add(testBars(t, "a", "b")),
		},
	}
	page, err := p.RenderText(context.Background(), 40, 10)
	require.NoError(t, err)
	require.Len(t, page.Frames, 2)
	assert.Equal(t, "text", page.Title)
	for _, f := range page.Frames {
		assert.Equal(t, 40, f.Cols)
		assert.Equal(t, 10, f.Rows)
	}

	_, err = p.RenderText(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestPlotRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Plot{
		Width:  800,
		Height: 600,
		Views: []View{
			NewContinuousView().Add(testScatter(t, NewPoint(1, 1))),
		},
	}
	_, err := p.Render(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
