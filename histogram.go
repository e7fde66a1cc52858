package plotlib

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/midbel/slices"
)

type Bin struct {
	Lower float64
	Upper float64
	Count uint64
}

func (b Bin) Range() Range {
	return NewRange(b.Lower, b.Upper)
}

type Histogram struct {
	Style Style
	Title string

	bins []Bin
}

// NewHistogram creates a histogram from already counted bins. The bins
// have to be sorted, contiguous and non overlapping.
func NewHistogram(bins []Bin, style Style) (*Histogram, error) {
	if len(bins) == 0 {
		return nil, ErrNoData
	}
	for i, b := range bins {
		if err := checkFloats(b.Lower, b.Upper); err != nil {
			return nil, err
		}
		if b.Lower >= b.Upper {
			return nil, fmt.Errorf("%w: bin %d has lower bound %g >= upper bound %g", ErrInvalidBins, i, b.Lower, b.Upper)
		}
		if i > 0 && bins[i-1].Upper != b.Lower {
			return nil, fmt.Errorf("%w: bin %d does not start where bin %d ends", ErrInvalidBins, i, i-1)
		}
	}
	h := Histogram{
		Style: style,
		bins:  make([]Bin, len(bins)),
	}
	copy(h.bins, bins)
	return &h, nil
}

// HistogramFromData counts values into n bins of equal width spanning the
// bounds of the values. The last bin includes its upper bound.
func HistogramFromData(values []float64, n int, style Style) (*Histogram, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d bins requested", ErrInvalidBins, n)
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if err := checkFloats(values...); err != nil {
		return nil, err
	}
	lo, hi := stats.Bounds(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	var (
		width  = (hi - lo) / float64(n)
		bounds = make([]float64, n+1)
	)
	for i := range bounds {
		bounds[i] = lo + float64(i)*width
	}
	bounds[n] = hi
	return HistogramFromBounds(values, bounds, style)
}

// HistogramFromBounds counts values into the bins delimited by bounds.
// Values outside of the bounds are ignored.
func HistogramFromBounds(values, bounds []float64, style Style) (*Histogram, error) {
	if len(bounds) < 2 {
		return nil, fmt.Errorf("%w: at least two bounds required", ErrInvalidBins)
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if err := checkFloats(values...); err != nil {
		return nil, err
	}
	bins := make([]Bin, len(bounds)-1)
	for i := range bins {
		bins[i].Lower = bounds[i]
		bins[i].Upper = bounds[i+1]
	}
	var (
		fst = slices.Fst(bounds)
		lst = slices.Lst(bounds)
	)
	for _, v := range values {
		if v < fst || v > lst {
			continue
		}
		i := sort.Search(len(bins), func(i int) bool {
			return bins[i].Upper > v
		})
		if i == len(bins) {
			i--
		}
		bins[i].Count++
	}
	return NewHistogram(bins, style)
}

func (h *Histogram) Bins() []Bin {
	list := make([]Bin, len(h.bins))
	copy(list, h.bins)
	return list
}

func (h *Histogram) Range(dim Dim) Range {
	if dim == DimX {
		return NewRange(slices.Fst(h.bins).Lower, slices.Lst(h.bins).Upper)
	}
	var top uint64
	for _, b := range h.bins {
		if b.Count > top {
			top = b.Count
		}
	}
	return NewRange(0, float64(top))
}

func (h *Histogram) Geometry(x, y *ContinuousAxis) Group {
	var (
		grp   = NewGroup("histogram")
		base  = baseline(y)
		style = h.Style
	)
	style.Fill = style.fillOr(style.Color)
	for _, b := range h.bins {
		if !b.Range().Overlaps(x.Domain()) {
			continue
		}
		var (
			p1 = NewPoint(x.Map(b.Lower), base)
			p2 = NewPoint(x.Map(b.Upper), y.Map(float64(b.Count)))
		)
		grp.Add(NewRect(p1, p2, style))
	}
	return grp
}

func (h *Histogram) Cells(x, y *ContinuousAxis) Layer {
	var (
		layer = continuousLayer("histogram", h.Style.Color, x, y)
		base  = cellOf(baseline(y))
	)
	for _, b := range h.bins {
		if b.Count == 0 || !b.Range().Overlaps(x.Domain()) {
			continue
		}
		var (
			c1  = cellOf(x.Map(b.Lower))
			c2  = cellOf(x.Map(b.Upper))
			top = cellOf(y.Map(float64(b.Count)))
		)
		layer.column(c1, top, base, '|')
		layer.column(c2, top, base, '|')
		if c2-c1 > 1 {
			layer.row(top, c1+1, c2-1, h.Style.glyph('-'))
		}
	}
	return layer
}

func (h *Histogram) Legend() (Group, bool) {
	return legendRect(h.Title, "histogram", h.Style)
}
