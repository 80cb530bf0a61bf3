package charts

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/svg"
)

// SVGSurface builds an svg element tree for the frame. SVG output is
// resolution independent, so the pixel ratio is recorded but does not change
// the emitted geometry.
type SVGSurface struct {
	el     svg.SVG
	width  float64
	height float64
	ratio  float64
}

func NewSVGSurface(width, height, ratio float64) *SVGSurface {
	if ratio <= 0 {
		ratio = 1
	}
	s := SVGSurface{
		width:  width,
		height: height,
		ratio:  ratio,
	}
	s.reset()
	return &s
}

func (s *SVGSurface) reset() {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(s.width, s.height)
	el.OmitProlog = true
	s.el = el
}

func (s *SVGSurface) unusable() bool {
	return s.width == 0 || s.height == 0
}

func (s *SVGSurface) Clear(width, height float64) {
	s.width = width
	s.height = height
	s.reset()
}

func (s *SVGSurface) Wedge(center Pos, outer, inner float64, slice ArcSlice) {
	if s.unusable() || slice.Span() <= 0 {
		return
	}
	var grp svg.Group
	grp.Transform = svg.Translate(center.X, center.Y)

	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(slice.Color)
	pat.Stroke = svg.NewStroke(sliceStrokeColor, sliceStrokeWidth)

	large := slice.Span() > math.Pi
	pat.AbsMoveTo(svgPos(arcPoint(slice.Start, outer)))
	pat.AbsArcTo(svgPos(arcPoint(slice.End, outer)), outer, outer, 0, large, true)
	pat.AbsLineTo(svgPos(arcPoint(slice.End, inner)))
	if inner > 0 {
		pat.AbsArcTo(svgPos(arcPoint(slice.Start, inner)), inner, inner, 0, large, false)
	}
	pat.ClosePath()

	grp.Append(pat.AsElement())
	s.el.Append(grp.AsElement())
}

func (s *SVGSurface) Polyline(points []Pos, color string, width float64) {
	if s.unusable() || len(points) == 0 {
		return
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(color, width)
	pat.Fill = svg.NewFill("none")
	for i, pt := range points {
		if i == 0 {
			pat.AbsMoveTo(svgPos(pt))
		} else {
			pat.AbsLineTo(svgPos(pt))
		}
	}
	s.el.Append(pat.AsElement())
}

func (s *SVGSurface) Area(points []Pos, baseline float64, color string) {
	if s.unusable() || len(points) == 0 {
		return
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(color)
	pat.Fill.Opacity = areaOpacity
	pat.Stroke = svg.NewStroke("none", 0)
	for i, pt := range points {
		if i == 0 {
			pat.AbsMoveTo(svgPos(pt))
		} else {
			pat.AbsLineTo(svgPos(pt))
		}
	}
	pat.AbsLineTo(svg.NewPos(points[len(points)-1].X, baseline))
	pat.AbsLineTo(svg.NewPos(points[0].X, baseline))
	pat.ClosePath()
	s.el.Append(pat.AsElement())
}

func (s *SVGSurface) Rect(pos Pos, dim Dim, color string) {
	if s.unusable() {
		return
	}
	var el svg.Rect
	el.Pos = svgPos(pos)
	el.Dim = svg.NewDim(dim.W, dim.H)
	el.Fill = svg.NewFill(color)
	s.el.Append(el.AsElement())
}

func (s *SVGSurface) Line(from, to Pos, color string, width float64) {
	if s.unusable() {
		return
	}
	li := svg.NewLine(svgPos(from), svgPos(to))
	li.Stroke = svg.NewStroke(color, width)
	s.el.Append(li.AsElement())
}

func (s *SVGSurface) Text(str string, pos Pos, size float64, color string, anchor TextAnchor) {
	if s.unusable() {
		return
	}
	tx := svg.NewText(str)
	tx.Pos = svgPos(pos)
	tx.Font = svg.NewFont(size)
	tx.Anchor = string(anchor)
	tx.Baseline = "middle"
	s.el.Append(tx.AsElement())
}

// Flush writes the accumulated markup.
func (s *SVGSurface) Flush(w io.Writer) error {
	bw := bufio.NewWriter(w)
	s.el.Render(bw)
	return bw.Flush()
}

func svgPos(p Pos) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}
