// Package charts renders the dashboard figures as PNG images using
// go-chart. Regression fitting for the correlation view is delegated to the
// library's linear regression series.
package charts

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

type Config struct {
	Width  int
	Height int
}

type Renderer struct {
	width  int
	height int
}

func NewRenderer(cfg Config) *Renderer {
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}
