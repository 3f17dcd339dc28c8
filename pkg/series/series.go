// Package series holds model-space sample series and the host-side plumbing
// around them: CSV loading, auto-scaling bounds and decimation.
package series

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when a series has different numbers of x and y values.
var ErrLengthMismatch = errors.New("series x and y lengths differ")

// Series is an ordered set of model-space samples stored as parallel slices.
// X is usually, but not necessarily, monotonic.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.X)
}

// Validate checks that X and Y line up.
func (s Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %q: %w: %d != %d", s.Name, ErrLengthMismatch, len(s.X), len(s.Y))
	}
	return nil
}

// Range is a closed interval on one axis.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Pad widens the range by fraction of its span on both sides.
// A zero span is first widened to 1 so flat data still gets a usable axis.
func (r Range) Pad(fraction float64) Range {
	span := r.Span()
	if span == 0 {
		r.Min -= 0.5
		r.Max += 0.5
		span = 1
	}
	margin := span * fraction
	return Range{Min: r.Min - margin, Max: r.Max + margin}
}

// Bounds returns the x and y ranges covering all finite samples.
// ok is false when there is no finite sample.
func Bounds(series ...Series) (x, y Range, ok bool) {
	x = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	y = x
	for _, s := range series {
		for i := 0; i < min(len(s.X), len(s.Y)); i++ {
			xi, yi := s.X[i], s.Y[i]
			if !finite(xi) || !finite(yi) {
				continue
			}
			x.Min, x.Max = min(x.Min, xi), max(x.Max, xi)
			y.Min, y.Max = min(y.Min, yi), max(y.Max, yi)
			ok = true
		}
	}
	if !ok {
		return Range{}, Range{}, false
	}
	return x, y, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
