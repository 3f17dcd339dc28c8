// Package scope is the host side of trace reduction: it derives the viewport
// from the plot layout and the data, and reduces every trace of a frame.
package scope

import (
	"fmt"
	"log"
	"runtime"
	"slices"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/chewxy/math32"
	"github.com/itohio/tracereduce/pkg/config"
	"github.com/itohio/tracereduce/pkg/reduce"
	"github.com/itohio/tracereduce/pkg/series"
)

// Trace is a reduced device-space polyline.
type Trace struct {
	Name      string
	X, Y      []float64
	Input     int // Samples in the series as given to Update
	Decimated int // Samples left for reduction after decimation
}

// Points writes the trace into dst as canvas positions, reusing its capacity.
// With snap set, every coordinate is moved to the centre of its pixel so
// one pixel wide strokes stay crisp.
func (t Trace) Points(dst []fyne.Position, snap bool) []fyne.Position {
	dst = slices.Grow(dst[:0], len(t.X))
	for i := range t.X {
		p := fyne.NewPos(float32(t.X[i]), float32(t.Y[i]))
		if snap {
			p = fyne.NewPos(math32.Floor(p.X)+0.5, math32.Floor(p.Y)+0.5)
		}
		dst = append(dst, p)
	}
	return dst
}

// Scope reduces frames of series for display.
type Scope struct {
	cfg    *config.Config
	layout Layout

	// Data (protected by mu)
	mu       sync.RWMutex
	viewport reduce.Viewport

	// Display buffers (reused between updates)
	decimated []series.Series
	traces    []Trace
}

// New creates a new Scope instance.
func New(cfg *config.Config) *Scope {
	return &Scope{
		cfg:    cfg,
		layout: NewLayout(cfg.Plot),
	}
}

// Update reduces data into device-space traces.
// Each trace is reduced on its own worker with its own output buffers.
func (s *Scope) Update(data []series.Series) error {
	for _, d := range data {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Decimate for display (reuse buffers)
	s.decimated = resize(s.decimated, len(data))
	for i, d := range data {
		s.decimated[i] = series.Decimate(s.decimated[i], d, s.cfg.Decimation.MaxPoints)
	}

	vp, err := s.window()
	if err != nil {
		return err
	}
	s.viewport = vp

	s.traces = resize(s.traces, len(data))
	for i, d := range data {
		s.traces[i].Input = d.Len()
	}
	s.reduceAll()

	return nil
}

// window calculates the visible model window from configuration or data.
func (s *Scope) window() (reduce.Viewport, error) {
	vp := s.layout.Viewport(s.bounds())
	if err := vp.Validate(); err != nil {
		return reduce.Viewport{}, fmt.Errorf("invalid window: %w", err)
	}
	return vp, nil
}

func (s *Scope) bounds() (x, y series.Range) {
	w := s.cfg.Window
	if !w.Auto {
		return series.Range{Min: w.XMin, Max: w.XMax}, series.Range{Min: w.YMin, Max: w.YMax}
	}

	x, y, ok := series.Bounds(s.decimated...)
	if !ok {
		x = series.Range{Min: 0, Max: 1}
		y = series.Range{Min: 0, Max: 1}
	}
	if x.Span() == 0 {
		x = x.Pad(0)
	}
	return x, y.Pad(w.Margin)
}

func (s *Scope) reduceAll() {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(s.decimated))

	opt := reduce.Options{
		Enabled:   s.cfg.Reduction.Enabled,
		Tolerance: s.cfg.Reduction.Tolerance,
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for _i := 0; _i < workers; _i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s.reduceTrace(i, opt)
			}
		}()
	}
	for i := range s.decimated {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func (s *Scope) reduceTrace(i int, opt reduce.Options) {
	d := s.decimated[i]
	t := &s.traces[i]

	t.Name = d.Name
	t.Decimated = d.Len()
	t.X, t.Y = reduce.Append(t.X[:0], t.Y[:0], d.X, d.Y, s.viewport, opt)

	if len(t.X) == 0 && t.Decimated > 0 {
		log.Printf("Trace %q has no samples in x range [%g, %g]", d.Name, s.viewport.XMin, s.viewport.XMax)
	}
}

// Traces returns a copy of the traces reduced by the last Update.
func (s *Scope) Traces() []Trace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Trace, len(s.traces))
	for i, t := range s.traces {
		out[i] = Trace{
			Name:      t.Name,
			X:         slices.Clone(t.X),
			Y:         slices.Clone(t.Y),
			Input:     t.Input,
			Decimated: t.Decimated,
		}
	}
	return out
}

// Viewport returns the viewport used by the last Update.
func (s *Scope) Viewport() reduce.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// resize returns s with length n, keeping existing elements and their buffers.
func resize[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:n]
	}
	return append(s[:cap(s)], make([]T, n-cap(s))...)
}
