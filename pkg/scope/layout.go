package scope

import (
	"fyne.io/fyne/v2"
	"github.com/itohio/tracereduce/pkg/config"
	"github.com/itohio/tracereduce/pkg/reduce"
	"github.com/itohio/tracereduce/pkg/series"
)

// Layout is the device-space drawing area and its margins.
type Layout struct {
	Size fyne.Size

	MarginLeft   float32
	MarginRight  float32
	MarginTop    float32
	MarginBottom float32
}

// NewLayout creates a layout from the plot configuration.
func NewLayout(cfg config.PlotConfig) Layout {
	return Layout{
		Size:         fyne.NewSize(float32(cfg.Width), float32(cfg.Height)),
		MarginLeft:   float32(cfg.MarginLeft),
		MarginRight:  float32(cfg.MarginRight),
		MarginTop:    float32(cfg.MarginTop),
		MarginBottom: float32(cfg.MarginBottom),
	}
}

// Plot returns the top-left corner and size of the area inside the margins.
// Margins larger than the drawing area collapse the plot to zero width or height.
func (l Layout) Plot() (fyne.Position, fyne.Size) {
	pos := fyne.NewPos(l.MarginLeft, l.MarginTop)
	size := fyne.NewSize(
		max(0, l.Size.Width-l.MarginLeft-l.MarginRight),
		max(0, l.Size.Height-l.MarginTop-l.MarginBottom),
	)
	return pos, size
}

// Viewport maps the model window x, y onto the plot area.
// The lower-left model corner lands on the bottom-left plot corner.
// A zero-span axis gets a zero scale.
func (l Layout) Viewport(x, y series.Range) reduce.Viewport {
	pos, size := l.Plot()
	vp := reduce.Viewport{
		XMin:    x.Min,
		XMax:    x.Max,
		YMin:    y.Min,
		YMax:    y.Max,
		OriginX: float64(pos.X),
		OriginY: float64(pos.Y + size.Height),
	}
	if span := x.Span(); span != 0 {
		vp.XScale = float64(size.Width) / span
	}
	if span := y.Span(); span != 0 {
		vp.YScale = float64(size.Height) / span
	}
	return vp
}
