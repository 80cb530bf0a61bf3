package charts

import (
	"math"
)

const (
	emptyMessage = "no data available"

	emptyTextSize  = 14.0
	labelTextSize  = 11.0
	legendTextSize = 12.0
	textColor      = "#475569"

	lineWidth  = 2.0
	donutRatio = 0.55
	pieMargin  = 10.0

	tickOffset = 16.0
	axisOffset = 8.0
)

type state int

const (
	stateIdle state = iota
	stateAcquiring
	stateEmpty
	stateComputing
	stateDrawing
)

// frame holds one pass worth of geometry, recomputed from scratch on every
// render and never cached across frames.
type frame struct {
	pie    []ArcSlice
	center Pos
	outer  float64
	inner  float64

	cart   CartesianLayout
	legend []LegendSlot
}

// Renderer dispatches one full repaint per call: acquire the surface, compute
// geometry, draw primitives. It holds nothing mutable besides the palette
// given at construction.
type Renderer struct {
	palette Palette
	acquire AcquireFunc
}

func NewRenderer(palette Palette, acquire AcquireFunc) *Renderer {
	if len(palette) == 0 {
		palette = Dashboard8
	}
	if acquire == nil {
		acquire = func(w, h, ratio float64) Surface {
			return NewSVGSurface(w, h, ratio)
		}
	}
	return &Renderer{
		palette: palette,
		acquire: acquire,
	}
}

// Render runs the full pass to completion and returns the painted surface.
// Identical inputs paint identical geometry; the caller re-invokes it on any
// dataset, config or container change.
func (r *Renderer) Render(d Dataset, cfg Config) (Surface, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	pal := cfg.Palette
	if len(pal) == 0 {
		pal = r.palette
	}

	var (
		surf Surface
		fr   frame
	)
	for st := stateAcquiring; st != stateIdle; {
		switch st {
		case stateAcquiring:
			surf = r.acquire(cfg.Width, cfg.Height, cfg.PixelRatio)
			switch {
			case cfg.Width == 0 || cfg.Height == 0:
				// unusable context, terminate the pass
				st = stateIdle
			case d.Empty():
				st = stateEmpty
			default:
				st = stateComputing
			}
		case stateEmpty:
			surf.Clear(cfg.Width, cfg.Height)
			surf.Text(emptyMessage, NewPos(cfg.Width/2, cfg.Height/2), emptyTextSize, textColor, AnchorMiddle)
			st = stateIdle
		case stateComputing:
			fr = r.compute(d, cfg, pal)
			st = stateDrawing
		case stateDrawing:
			surf.Clear(cfg.Width, cfg.Height)
			r.draw(surf, cfg, fr)
			st = stateIdle
		}
	}
	return surf, nil
}

func (r *Renderer) compute(d Dataset, cfg Config, pal Palette) frame {
	var fr frame
	switch cfg.Kind {
	case KindPie, KindDonut:
		fr.pie = PieLayout(d.Categories, pal)
		fr.center = NewPos(cfg.Left+cfg.DrawingWidth()/2, cfg.Top+cfg.DrawingHeight()/2)
		fr.outer = math.Min(cfg.DrawingWidth(), cfg.DrawingHeight())/2 - pieMargin
		if fr.outer < 0 {
			fr.outer = 0
		}
		if cfg.Kind == KindDonut {
			fr.inner = fr.outer * donutRatio
		}
	case KindArea, KindDualAxis:
		fr.cart = LayoutCartesian(d.Series, cfg, pal)
	}
	fr.legend = LegendLayout(LegendFor(d, pal))
	return fr
}

func (r *Renderer) draw(surf Surface, cfg Config, fr frame) {
	for _, gl := range fr.cart.Grid {
		surf.Line(gl.From, gl.To, gridColor, gridStroke)
	}
	for _, bar := range fr.cart.Bars {
		surf.Rect(bar.Pos, bar.Dim, bar.Color)
	}
	for _, ln := range fr.cart.Lines {
		if ln.Fill {
			surf.Area(ln.Points, ln.Baseline, ln.Color)
		}
		surf.Polyline(ln.Points, ln.Color, lineWidth)
	}
	for _, tick := range fr.cart.XTicks {
		pos := NewPos(tick.X, cfg.Height-cfg.Bottom+tickOffset)
		surf.Text(tick.Text, pos, labelTextSize, textColor, AnchorMiddle)
	}
	for _, lb := range fr.cart.Left {
		surf.Text(lb.Text, NewPos(cfg.Left-axisOffset, lb.Y), labelTextSize, textColor, AnchorEnd)
	}
	for _, lb := range fr.cart.Right {
		surf.Text(lb.Text, NewPos(cfg.Width-cfg.Right+axisOffset, lb.Y), labelTextSize, textColor, AnchorStart)
	}

	for _, slice := range fr.pie {
		surf.Wedge(fr.center, fr.outer, fr.inner, slice)
	}

	origin := NewPos(cfg.Width-cfg.Right-LegendWidth, cfg.Top)
	for _, slot := range fr.legend {
		var (
			y      = origin.Y + slot.Y
			middle = y + LegendSlotHeight/2
		)
		surf.Rect(NewPos(origin.X, middle-legendSwatch/2), NewDim(legendSwatch, legendSwatch), slot.Color)
		surf.Text(slot.Label, NewPos(origin.X+legendSwatch+axisOffset, middle), legendTextSize, textColor, AnchorStart)
		if slot.Stat != "" {
			surf.Text(slot.Stat, NewPos(origin.X+LegendWidth, middle), legendTextSize, textColor, AnchorEnd)
		}
	}
}
