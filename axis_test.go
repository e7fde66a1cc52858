package plotlib

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuousAxisTicks(t *testing.T) {
	tests := []struct {
		Domain Range
		Ticks  int
	}{
		{Domain: NewRange(0, 10), Ticks: 5},
		{Domain: NewRange(0, 1), Ticks: 0},
		{Domain: NewRange(-17, 243), Ticks: 6},
		{Domain: NewRange(0.001, 0.0042), Ticks: 4},
		{Domain: NewRange(1e6, 3.3e6), Ticks: 10},
		{Domain: NewRange(12, -8), Ticks: 5},
	}
	for _, tt := range tests {
		t.Run(tt.Domain.String(), func(t *testing.T) {
			a, err := NewContinuousAxis(tt.Domain, NewRange(0, 500), tt.Ticks, "")
			require.NoError(t, err)

			ticks := a.Ticks()
			require.NotEmpty(t, ticks)
			for i, v := range ticks {
				assert.True(t, tt.Domain.Contains(v), "tick %g outside of %s", v, tt.Domain)
				if i > 0 {
					assert.Greater(t, v, ticks[i-1])
				}
			}
			step := a.Step()
			mant := step / math.Pow(10, math.Floor(math.Log10(step)))
			assert.Contains(t, []float64{1, 2, 5}, math.Round(mant*1e6)/1e6)
		})
	}
}

func TestContinuousAxisTickValues(t *testing.T) {
	a, err := NewContinuousAxis(NewRange(0, 10), NewRange(0, 100), 5, "x")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, a.Ticks())
	assert.Equal(t, "x", a.Label())
	assert.Equal(t, "4", a.Format(4))
}

func TestContinuousAxisNice(t *testing.T) {
	a, err := NewContinuousAxis(NewRange(0.3, 9.7), NewRange(0, 100), 5, "")
	require.NoError(t, err)
	n, err := a.Nice()
	require.NoError(t, err)

	assert.InDelta(t, 0, n.Domain().Min(), 1e-9)
	assert.InDelta(t, 10, n.Domain().Max(), 1e-9)
	assert.Equal(t, a.Output(), n.Output())
}

func TestUnionRange(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, NewRange(0, 1), UnionRange())
	})
	t.Run("cover", func(t *testing.T) {
		r := UnionRange(NewRange(1, 5), NewRange(-2, 3), NewRange(4, 8))
		assert.Equal(t, NewRange(-2, 8), r)
	})
	t.Run("idempotent", func(t *testing.T) {
		r := NewRange(-2, 8)
		assert.Equal(t, r, UnionRange(r, r, r))
	})
	t.Run("ignore non finite", func(t *testing.T) {
		r := UnionRange(NewRange(math.NaN(), math.NaN()), NewRange(1, 2))
		assert.Equal(t, NewRange(1, 2), r)
	})
	t.Run("zero width", func(t *testing.T) {
		r := UnionRange(NewRange(3, 3))
		assert.Less(t, r.Min(), 3.0)
		assert.Greater(t, r.Max(), 3.0)
		_, err := NewScale(r, NewRange(0, 1))
		assert.NoError(t, err)
	})
}

func TestCategoricalAxis(t *testing.T) {
	a, err := NewCategoricalAxis([]string{"a", "b", "c"}, NewRange(0, 90), "cat")
	require.NoError(t, err)

	var positions []float64
	for _, c := range a.Ticks() {
		pos, err := a.Map(c)
		require.NoError(t, err)
		positions = append(positions, pos)
	}
	assert.Equal(t, []float64{15, 45, 75}, positions)
	assert.Equal(t, 30.0, a.Band())
	assert.Equal(t, 3, a.Len())

	_, err = a.Map("d")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoricalAxisInvalid(t *testing.T) {
	_, err := NewCategoricalAxis(nil, NewRange(0, 90), "")
	assert.ErrorIs(t, err, ErrNoCategories)

	_, err = NewCategoricalAxis([]string{"a", "b", "a"}, NewRange(0, 90), "")
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	_, err = NewCategoricalAxis([]string{"a"}, NewRange(4, 4), "")
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestAxisGeometry(t *testing.T) {
	a, err := NewContinuousAxis(NewRange(0, 10), NewRange(0, 100), 5, "label")
	require.NoError(t, err)

	grp := a.Geometry(OrientBottom, 50, Style{Color: "black"}, false)
	var texts []string
	for _, it := range grp.Items {
		if it.Kind == KindText {
			texts = append(texts, it.Text)
		}
	}
	assert.Contains(t, texts, "label")
	assert.Contains(t, texts, "0")
	assert.Contains(t, texts, "10")
}

func TestContinuousAxisTicksPrecision(t *testing.T) {
	tests := []struct {
		Name   string
		Domain Range
	}{
		{Name: "large offset", Domain: NewRange(1e18, math.Nextafter(1e18, math.Inf(1)))},
		{Name: "huge values", Domain: NewRange(1e300, 1.0000001e300)},
		{Name: "tiny width", Domain: NewRange(1, 1+1e-12)},
		{Name: "negative offset", Domain: NewRange(-1e17-64, -1e17)},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a, err := NewContinuousAxis(tt.Domain, NewRange(0, 100), 0, "")
			require.NoError(t, err)

			done := make(chan []float64, 1)
			go func() {
				done <- a.Ticks()
			}()
			var ticks []float64
			select {
			case ticks = <-done:
			case <-time.After(5 * time.Second):
				t.Fatalf("ticks not computed for %s", tt.Domain)
			}
			require.NotEmpty(t, ticks)
			assert.LessOrEqual(t, len(ticks), defaultTicks*4+2)
			for i, v := range ticks {
				assert.True(t, tt.Domain.Contains(v), "tick %g outside of %s", v, tt.Domain)
				if i > 0 {
					assert.Greater(t, v, ticks[i-1])
				}
			}
		})
	}
}
