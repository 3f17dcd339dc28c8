// Package reduce transforms model-space samples into a reduced device-space
// polyline.
//
// The reducer clips to an x-window, maps each sample through an affine
// model-to-device transform and drops interior points whose device y is within
// a tolerance of the last retained point. The first and last visible samples
// are never dropped.
package reduce

// Viewport maps model coordinates onto device coordinates.
// Device y grows downwards, so OriginY is the bottom edge of the plot (lower-right y).
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64 // YMax is used by hosts deriving YScale, not by Reduce

	XScale, YScale   float64
	OriginX, OriginY float64
}

// DeviceX maps a model x value to device space.
func (v Viewport) DeviceX(x float64) float64 {
	return v.OriginX + (x-v.XMin)*v.XScale
}

// DeviceY maps a model y value to device space.
func (v Viewport) DeviceY(y float64) float64 {
	return v.OriginY - (y-v.YMin)*v.YScale
}

// Options controls point elision.
type Options struct {
	Enabled   bool    // false emits every in-range sample
	Tolerance float64 // device units; ignored when Enabled is false
}

type state int

const (
	beforeRange state = iota
	scanning
	invariantRun
	done
)

// reducer carries the scan state of a single Reduce call.
type reducer struct {
	x, y       []float64
	vp         Viewport
	opt        Options
	outX, outY []float64

	state state
	n     int     // points written
	last  int     // sample index of the last written point
	prevY float64 // device y of the last written point
}

// Reduce writes the reduced device-space polyline for x, y into outX, outY and
// returns the number of points written.
//
// x and y must have equal length and outX, outY must hold at least len(x)
// values. These are not checked here; see Check.
//
// The output starts at the first sample with x >= vp.XMin and stops at the
// last sample with x <= vp.XMax. When opt.Enabled is set, a sample whose
// device y lies within opt.Tolerance of the last written point is held back.
// When a held-back run ends, its final sample is written before the next
// point so the flat stretch is drawn flat. A sample is written at most once.
func Reduce(x, y []float64, vp Viewport, opt Options, outX, outY []float64) int {
	r := reducer{
		x:    x,
		y:    y,
		vp:   vp,
		opt:  opt,
		outX: outX,
		outY: outY,
		last: -1,
	}
	for i := range x {
		r.step(i)
		if r.state == done {
			break
		}
	}
	return r.n
}

// Append reduces x, y and appends the result to dstX, dstY.
// The capacity of dst is reused when it suffices, otherwise new slices are
// allocated.
func Append(dstX, dstY, x, y []float64, vp Viewport, opt Options) ([]float64, []float64) {
	dstX = grow(dstX, len(x))
	dstY = grow(dstY, len(x))
	start := len(dstX)

	n := Reduce(x, y, vp, opt, dstX[start:start+len(x)], dstY[start:start+len(x)])
	return dstX[:start+n], dstY[:start+n]
}

func grow(s []float64, extra int) []float64 {
	if cap(s)-len(s) >= extra {
		return s[:len(s)+extra]
	}
	out := make([]float64, len(s)+extra)
	copy(out, s)
	return out
}

func (r *reducer) step(i int) {
	xi := r.x[i]

	switch r.state {
	case beforeRange:
		if !(xi >= r.vp.XMin) {
			return
		}
		r.emit(i, r.vp.DeviceX(xi), r.vp.DeviceY(r.y[i]))
		if xi > r.vp.XMax {
			// Nothing earlier is in range, so there is no second point to add.
			r.state = done
			return
		}
		r.state = scanning

	case scanning, invariantRun:
		if xi > r.vp.XMax {
			// Close the trace on the last in-range sample. This also gives a
			// lone anchor a partner when a run was held back behind it.
			r.flush(i - 1)
			r.state = done
			return
		}

		dx := r.vp.DeviceX(xi)
		dy := r.vp.DeviceY(r.y[i])
		redundant := r.opt.Enabled &&
			dy >= r.prevY-r.opt.Tolerance &&
			dy <= r.prevY+r.opt.Tolerance

		if i == len(r.x)-1 {
			if !redundant {
				r.flush(i - 1)
			}
			r.emit(i, dx, dy)
			r.state = done
			return
		}

		if redundant {
			r.state = invariantRun
			return
		}
		r.flush(i - 1)
		r.emit(i, dx, dy)
		r.state = scanning
	}
}

// flush writes sample j if it was held back by the current invariant run.
func (r *reducer) flush(j int) {
	if r.state != invariantRun || j <= r.last {
		return
	}
	r.emit(j, r.vp.DeviceX(r.x[j]), r.vp.DeviceY(r.y[j]))
}

func (r *reducer) emit(i int, dx, dy float64) {
	r.outX[r.n] = dx
	r.outY[r.n] = dy
	r.n++
	r.last = i
	r.prevY = dy
}
