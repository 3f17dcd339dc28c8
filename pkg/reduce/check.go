package reduce

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("x and y lengths differ")
	// ErrShortBuffer is returned when an output buffer cannot hold every sample.
	ErrShortBuffer = errors.New("output buffer too short")
	// ErrReversedRange is returned for a viewport with XMin > XMax or YMin > YMax.
	ErrReversedRange = errors.New("viewport range is reversed")
	// ErrInvalidScale is returned for a viewport scale that is not finite.
	ErrInvalidScale = errors.New("viewport scale is not finite")
)

// Check verifies the buffer preconditions of Reduce.
// Callers run it once before handing data to the render loop.
func Check(x, y, outX, outY []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(outX) < len(x) {
		return fmt.Errorf("%w: x holds %d, need %d", ErrShortBuffer, len(outX), len(x))
	}
	if len(outY) < len(x) {
		return fmt.Errorf("%w: y holds %d, need %d", ErrShortBuffer, len(outY), len(x))
	}
	return nil
}

// Validate reports whether the viewport can be passed to Reduce as is.
func (v Viewport) Validate() error {
	if v.XMin > v.XMax {
		return fmt.Errorf("%w: x [%g, %g]", ErrReversedRange, v.XMin, v.XMax)
	}
	if v.YMin > v.YMax {
		return fmt.Errorf("%w: y [%g, %g]", ErrReversedRange, v.YMin, v.YMax)
	}
	if math.IsNaN(v.XScale) || math.IsInf(v.XScale, 0) || math.IsNaN(v.YScale) || math.IsInf(v.YScale, 0) {
		return fmt.Errorf("%w: %g x %g", ErrInvalidScale, v.XScale, v.YScale)
	}
	return nil
}

// Normalize returns v with reversed bounds swapped.
func (v Viewport) Normalize() Viewport {
	if v.XMin > v.XMax {
		v.XMin, v.XMax = v.XMax, v.XMin
	}
	if v.YMin > v.YMax {
		v.YMin, v.YMax = v.YMax, v.YMin
	}
	return v
}
