package plotlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScatter(t *testing.T, points ...Point) *Scatter {
	t.Helper()
	s, err := NewScatter(points, Style{})
	require.NoError(t, err)
	return s
}

func testBars(t *testing.T, cats ...string) *BarChart {
	t.Helper()
	var bars []Bar
	for i, c := range cats {
		bars = append(bars, Bar{Category: c, Value: float64(i + 1)})
	}
	c, err := NewBarChart(bars, Style{})
	require.NoError(t, err)
	return c
}

func TestContinuousViewDomains(t *testing.T) {
	v := NewContinuousView()
	v.Add(testScatter(t, NewPoint(1, 1), NewPoint(5, 4)))
	v.Add(testScatter(t, NewPoint(-2, 3), NewPoint(2, 8)))

	x, y, err := v.Domains()
	require.NoError(t, err)
	assert.Equal(t, NewRange(-2, 5), x)
	assert.Equal(t, NewRange(1, 8), y)

	dom := NewRange(0, 100)
	v.Y.Domain = &dom
	_, y, err = v.Domains()
	require.NoError(t, err)
	assert.Equal(t, dom, y)
}

func TestContinuousViewHistogramDomain(t *testing.T) {
	h, err := NewHistogram([]Bin{
		{Lower: 0, Upper: 5, Count: 3},
		{Lower: 5, Upper: 10, Count: 7},
		{Lower: 10, Upper: 15, Count: 2},
	}, Style{})
	require.NoError(t, err)

	v := NewContinuousView().Add(h)
	_, y, err := v.Domains()
	require.NoError(t, err)
	assert.LessOrEqual(t, y.Min(), 0.0)
	assert.GreaterOrEqual(t, y.Max(), 7.0)
}

func TestContinuousViewOutOfDomain(t *testing.T) {
	v := NewContinuousView()
	v.Add(testScatter(t, NewPoint(1, 1), NewPoint(5, 4)))
	dom := NewRange(10, 20)
	v.X.Domain = &dom

	frame, err := v.Render(200, 100)
	require.NoError(t, err)
	require.Len(t, frame.Layers, 1)
	assert.True(t, frame.Layers[0].Empty())

	text, err := v.RenderText(40, 10)
	require.NoError(t, err)
	require.Len(t, text.Layers, 1)
	assert.True(t, text.Layers[0].Empty())
}

func TestContinuousViewDegenerateOverride(t *testing.T) {
	v := NewContinuousView()
	v.Add(testScatter(t, NewPoint(1, 1)))
	dom := NewRange(3, 3)
	v.X.Domain = &dom

	_, err := v.Render(200, 100)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestContinuousViewSinglePoint(t *testing.T) {
	v := NewContinuousView()
	v.Add(testScatter(t, NewPoint(2, 2)))

	frame, err := v.Render(200, 100)
	require.NoError(t, err)
	require.Equal(t, 1, frame.Layers[0].Len())
}

func TestViewOrderingTextAndVector(t *testing.T) {
	points := []Point{
		NewPoint(1, 1),
		NewPoint(2, 3),
		NewPoint(3, 2),
		NewPoint(4, 5),
		NewPoint(4.5, 0.5),
	}
	v := NewContinuousView().Add(testScatter(t, points...))

	frame, err := v.Render(400, 300)
	require.NoError(t, err)
	text, err := v.RenderText(60, 15)
	require.NoError(t, err)

	var (
		items = frame.Layers[0].Items
		cells = text.Layers[0].Cells
	)
	require.Len(t, items, len(points))
	require.Len(t, cells, len(points))
	for i := range points {
		for j := range points {
			var (
				pi = items[i].Points[0]
				pj = items[j].Points[0]
			)
			if pi.X < pj.X {
				assert.LessOrEqual(t, cells[i].Col, cells[j].Col)
			}
			if pi.Y < pj.Y {
				assert.LessOrEqual(t, cells[i].Row, cells[j].Row)
			}
		}
	}
}

func TestCompose(t *testing.T) {
	cv := NewContinuousView()
	assert.NoError(t, Compose(cv, testScatter(t, NewPoint(1, 1))))
	assert.ErrorIs(t, Compose(cv, testBars(t, "a")), ErrKindMismatch)
	assert.Len(t, cv.Representations(), 1)

	kv := NewCategoricalView()
	assert.NoError(t, Compose(kv, testBars(t, "a")))
	assert.ErrorIs(t, Compose(kv, testScatter(t, NewPoint(1, 1))), ErrKindMismatch)
	assert.Len(t, kv.Representations(), 1)
}

func TestCategoricalViewMerge(t *testing.T) {
	v := NewCategoricalView()
	v.Add(testBars(t, "a", "b"))
	v.Add(testBars(t, "b", "c"))

	cats, err := v.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, cats)

	frame, err := v.Render(300, 200)
	require.NoError(t, err)
	assert.Len(t, frame.Layers, 2)
	assert.Equal(t, 2, frame.Layers[1].Len())
}

func TestCategoricalViewExplicit(t *testing.T) {
	v := NewCategoricalView()
	v.Add(testBars(t, "a", "b"))

	v.X.Categories = []string{"b", "a", "z"}
	cats, err := v.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "z"}, cats)

	v.X.Categories = []string{"a"}
	_, err = v.Categories()
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoricalViewEmpty(t *testing.T) {
	_, err := NewCategoricalView().Render(100, 100)
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestCategoricalViewText(t *testing.T) {
	v := NewCategoricalView().Add(testBars(t, "a", "b", "c"))
	frame, err := v.RenderText(30, 10)
	require.NoError(t, err)

	require.Len(t, frame.XTicks, 3)
	assert.Equal(t, "a", frame.XTicks[0].Label)
	assert.Equal(t, 5, frame.XTicks[0].Pos)
	assert.Equal(t, 15, frame.XTicks[1].Pos)
	assert.Equal(t, 25, frame.XTicks[2].Pos)
	assert.False(t, frame.Layers[0].Empty())
}

func TestViewLegend(t *testing.T) {
	s := testScatter(t, NewPoint(1, 1), NewPoint(2, 2))
	s.Title = "first"
	v := NewContinuousView().Add(s).Add(testScatter(t, NewPoint(0, 0)))

	frame, err := v.Render(300, 200)
	require.NoError(t, err)
	require.Len(t, frame.Legend, 1)
	min, _, ok := frame.Legend[0].Bounds()
	require.True(t, ok)
	assert.Greater(t, min.X, 0.0)
}

func TestContinuousViewScatterDomain(t *testing.T) {
	v := NewContinuousView().Add(testScatter(t, NewPoint(1, 2), NewPoint(3, 4), NewPoint(5, 1)))

	x, y, err := v.Domains()
	require.NoError(t, err)
	assert.LessOrEqual(t, x.Min(), 1.0)
	assert.GreaterOrEqual(t, x.Max(), 5.0)
	assert.LessOrEqual(t, y.Min(), 1.0)
	assert.GreaterOrEqual(t, y.Max(), 4.0)

	again, _, err := v.Domains()
	require.NoError(t, err)
	assert.Equal(t, x, again)
}

func TestTextLayersClippedToFace(t *testing.T) {
	const (
		cols = 40
		rows = 10
	)
	unit := NewRange(0, 1)

	line, err := NewLine([]Point{NewPoint(0, 0), NewPoint(0.5, 1), NewPoint(1e5, 2)}, Style{})
	require.NoError(t, err)
	lv := NewContinuousView().Add(line)
	lv.X.Domain = &unit

	hist, err := NewHistogram([]Bin{{Lower: 0, Upper: 1, Count: 1e6}}, Style{})
	require.NoError(t, err)
	hv := NewContinuousView().Add(hist)
	hv.Y.Domain = &unit

	bars, err := NewBarChart([]Bar{{Category: "a", Value: 1e9}, {Category: "b", Value: -1e9}}, Style{})
	require.NoError(t, err)
	bv := NewCategoricalView().Add(bars)
	bv.Y.Domain = &unit

	boxes, err := NewBoxPlot([]Box{{
		Category: "a",
		Summary:  Summary{Min: -1e9, Q1: 0, Median: 0.5, Q3: 1e6, Max: 1e9},
		Outliers: []float64{2e9},
	}}, Style{})
	require.NoError(t, err)
	xv := NewCategoricalView().Add(boxes)
	xv.Y.Domain = &unit

	views := map[string]View{
		"line":      lv,
		"histogram": hv,
		"bar":       bv,
		"box":       xv,
	}
	for name, v := range views {
		t.Run(name, func(t *testing.T) {
			frame, err := v.RenderText(cols, rows)
			require.NoError(t, err)
			require.Len(t, frame.Layers, 1)

			layer := frame.Layers[0]
			assert.False(t, layer.Empty())
			assert.LessOrEqual(t, layer.Len(), cols*rows)
			for _, c := range layer.Cells {
				assert.True(t, c.Col >= 0 && c.Col < cols, "column %d outside of the face", c.Col)
				assert.True(t, c.Row >= 0 && c.Row < rows, "row %d outside of the face", c.Row)
			}
		})
	}
}

func TestCategoricalViewTextTicksRounded(t *testing.T) {
	v := NewCategoricalView().Add(testBars(t, "a", "b", "c"))
	frame, err := v.RenderText(40, 10)
	require.NoError(t, err)

	require.Len(t, frame.XTicks, 3)
	assert.Equal(t, 7, frame.XTicks[0].Pos)
	assert.Equal(t, 20, frame.XTicks[1].Pos)
	assert.Equal(t, 33, frame.XTicks[2].Pos)
}
