package plotlib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleMap(t *testing.T) {
	s, err := NewScale(NewRange(0, 10), NewRange(0, 100))
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Map(0))
	assert.Equal(t, 50.0, s.Map(5))
	assert.Equal(t, 100.0, s.Map(10))
	assert.Equal(t, 150.0, s.Map(15), "values outside the domain are extrapolated")
	assert.Equal(t, 10.0, s.Space())
}

func TestScaleReversed(t *testing.T) {
	s, err := NewScale(NewRange(0, 10), NewRange(200, 0))
	require.NoError(t, err)

	assert.Equal(t, 200.0, s.Map(0))
	assert.Equal(t, 0.0, s.Map(10))
	assert.Less(t, s.Map(7), s.Map(3))
}

func TestScaleRoundTrip(t *testing.T) {
	s, err := NewScale(NewRange(-3.5, 12.25), NewRange(480, 20))
	require.NoError(t, err)
	for _, v := range []float64{-3.5, -1, 0, 0.1, 4.2, 12.25, 100} {
		assert.InDelta(t, v, s.Unmap(s.Map(v)), 1e-9)
	}
}

func TestScaleDegenerate(t *testing.T) {
	tests := []struct {
		Name   string
		Domain Range
		Output Range
	}{
		{Name: "empty domain", Domain: NewRange(1, 1), Output: NewRange(0, 10)},
		{Name: "empty output", Domain: NewRange(0, 1), Output: NewRange(5, 5)},
		{Name: "nan domain", Domain: NewRange(math.NaN(), 1), Output: NewRange(0, 10)},
		{Name: "infinite output", Domain: NewRange(0, 1), Output: NewRange(0, math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := NewScale(tt.Domain, tt.Output)
			assert.ErrorIs(t, err, ErrDegenerate)
		})
	}
}

func TestRange(t *testing.T) {
	r := NewRange(10, 2)
	assert.Equal(t, 2.0, r.Min())
	assert.Equal(t, 10.0, r.Max())
	assert.Equal(t, NewRange(2, 10), r.Reverse())
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(11))
	assert.True(t, r.Overlaps(NewRange(9, 20)))
	assert.False(t, r.Overlaps(NewRange(11, 20)))
	assert.Equal(t, NewRange(-1, 10), r.Union(NewRange(-1, 3)))
}

func TestCheckFloats(t *testing.T) {
	assert.NoError(t, checkFloats(1, 2, 3))
	assert.ErrorIs(t, checkFloats(1, math.NaN()), ErrNonFinite)
	assert.ErrorIs(t, checkFloats(math.Inf(-1)), ErrNonFinite)
}
