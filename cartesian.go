package charts

import (
	"github.com/midbel/slices"
)

const (
	// GridLines horizontal lines give GridLines-1 bands.
	GridLines = 6

	// logical pixels reserved per x axis label
	labelSlotWidth = 80.0

	barWidthRatio = 0.6

	gridColor  = "#e2e8f0"
	gridStroke = 1.0

	dateFormat = "Jan 02"
)

type GridLine struct {
	From Pos
	To   Pos
}

type TickLabel struct {
	Index int
	X     float64
	Text  string
}

type AxisLabel struct {
	Y    float64
	Text string
}

type LineShape struct {
	Points   []Pos
	Color    string
	Fill     bool
	Baseline float64
}

type BarShape struct {
	Pos   Pos
	Dim   Dim
	Color string
}

type CartesianLayout struct {
	Grid   []GridLine
	XTicks []TickLabel
	Left   []AxisLabel
	Right  []AxisLabel
	Lines  []LineShape
	Bars   []BarShape
}

// LabelStride returns the step between emitted x axis labels so that labels
// never get closer than one slot width. It never shrinks as the series grows.
func LabelStride(n int, width float64) int {
	maxSlots := int(width / labelSlotWidth)
	if maxSlots < 1 {
		maxSlots = 1
	}
	step := n / maxSlots
	if step < 1 {
		step = 1
	}
	return step
}

// TickLabels emits one label every stride, plus the last label whatever the
// stride, so the most recent point stays anchored.
func TickLabels(labels []string, xs SlotScale, width float64) []TickLabel {
	var (
		step  = LabelStride(len(labels), width)
		ticks []TickLabel
	)
	for i, label := range labels {
		last := i == len(labels)-1
		if i%step != 0 && !last {
			continue
		}
		ticks = append(ticks, TickLabel{
			Index: i,
			X:     xs.Center(i),
			Text:  label,
		})
	}
	return ticks
}

// GridLayout spaces count horizontal lines evenly over the drawing area.
func GridLayout(left, top, width, height float64, count int) []GridLine {
	if count < 2 {
		count = 2
	}
	var (
		lines = make([]GridLine, 0, count)
		step  = height / float64(count-1)
	)
	for i := 0; i < count; i++ {
		y := top + float64(i)*step
		lines = append(lines, GridLine{
			From: NewPos(left, y),
			To:   NewPos(left+width, y),
		})
	}
	return lines
}

// AxisColumn lines one label up with each grid line, top value first.
func AxisColumn(dom Domain, top, height float64, count int, format func(float64) string) []AxisLabel {
	if count < 2 {
		count = 2
	}
	var (
		values = dom.Values(count - 1)
		step   = height / float64(count-1)
		column = make([]AxisLabel, 0, count)
	)
	for i, v := range values {
		column = append(column, AxisLabel{
			Y:    top + float64(i)*step,
			Text: format(v),
		})
	}
	return column
}

func LinePoints(points []TimePoint, xs SlotScale, ys LinearScale) []Pos {
	all := make([]Pos, 0, len(points))
	for i, pt := range points {
		all = append(all, NewPos(xs.Center(i), ys.Normalize(pt.Value)))
	}
	return all
}

// BarRects centers one bar per point on its slot, barWidthRatio of the slot
// wide, reaching down to the baseline.
func BarRects(points []TimePoint, xs SlotScale, ys LinearScale, color string) []BarShape {
	var (
		baseline = ys.Range.Max()
		w        = xs.Space() * barWidthRatio
		bars     = make([]BarShape, 0, len(points))
	)
	for i, pt := range points {
		y := ys.Normalize(pt.Value)
		bars = append(bars, BarShape{
			Pos:   NewPos(xs.Center(i)-w/2, y),
			Dim:   NewDim(w, baseline-y),
			Color: color,
		})
	}
	return bars
}

func seriesDomain(s Series) Domain {
	var max float64
	for _, pt := range s.Points {
		if pt.Value > max {
			max = pt.Value
		}
	}
	return NewDomain(0, max)
}

// LayoutCartesian computes the full geometry for an area or dual-axis chart:
// grid, strided x labels, one or two y label columns and the line and bar
// primitives. It touches no drawing surface.
func LayoutCartesian(series []Series, cfg Config, palette Palette) CartesianLayout {
	var layout CartesianLayout
	if len(series) == 0 {
		return layout
	}
	var (
		width   = cfg.DrawingWidth()
		height  = cfg.DrawingHeight()
		primary = slices.Fst(series)
		xs      = NewSlotScale(primary.Len(), NewRange(cfg.Left, cfg.Left+width))
		ys      = NewLinearScale(seriesDomain(primary), NewRange(cfg.Top, cfg.Top+height))
	)
	layout.Grid = GridLayout(cfg.Left, cfg.Top, width, height, GridLines)
	layout.Left = AxisColumn(ys.Domain, cfg.Top, height, GridLines, FormatNumber)

	labels := make([]string, 0, primary.Len())
	for _, pt := range primary.Points {
		labels = append(labels, pt.Date.Format(dateFormat))
	}
	layout.XTicks = TickLabels(labels, xs, cfg.Width)

	layout.Lines = append(layout.Lines, LineShape{
		Points:   LinePoints(primary.Points, xs, ys),
		Color:    palette.Color(0),
		Fill:     cfg.Kind == KindArea,
		Baseline: ys.Range.Max(),
	})

	if cfg.Kind == KindDualAxis && len(series) > 1 {
		second := series[1]
		if second.Len() > 0 {
			right := NewLinearScale(seriesDomain(second), NewRange(cfg.Top, cfg.Top+height))
			layout.Right = AxisColumn(right.Domain, cfg.Top, height, GridLines, FormatNumber)
			layout.Bars = BarRects(second.Points, xs, right, palette.Color(1))
		}
	}
	return layout
}
