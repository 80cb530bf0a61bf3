package charts

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var rasterBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// RasterSurface paints into an RGBA image whose backing store is upscaled by
// the pixel ratio: one logical unit covers ratio physical pixels.
type RasterSurface struct {
	img    *image.RGBA
	face   font.Face
	ratio  float64
	width  float64
	height float64
}

func NewRasterSurface(width, height, ratio float64) *RasterSurface {
	if ratio <= 0 {
		ratio = 1
	}
	s := RasterSurface{
		face:   basicfont.Face7x13,
		ratio:  ratio,
		width:  width,
		height: height,
	}
	s.img = image.NewRGBA(image.Rect(0, 0, s.px(width), s.px(height)))
	return &s
}

func (s *RasterSurface) Image() image.Image {
	return s.img
}

func (s *RasterSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *RasterSurface) px(v float64) int {
	return int(math.Round(v * s.ratio))
}

func (s *RasterSurface) unusable() bool {
	return s.width == 0 || s.height == 0
}

func (s *RasterSurface) Clear(width, height float64) {
	s.width = width
	s.height = height
	s.img = image.NewRGBA(image.Rect(0, 0, s.px(width), s.px(height)))
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{rasterBackground}, image.Point{}, draw.Src)
}

func (s *RasterSurface) Wedge(center Pos, outer, inner float64, slice ArcSlice) {
	if s.unusable() || slice.Span() <= 0 {
		return
	}
	var (
		fill   = parseHexColor(slice.Color)
		cx     = center.X * s.ratio
		cy     = center.Y * s.ratio
		ro     = outer * s.ratio
		ri     = inner * s.ratio
		minX   = int(cx - ro)
		maxX   = int(cx + ro)
		minY   = int(cy - ro)
		maxY   = int(cy + ro)
	)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			var (
				dx = float64(px) + 0.5 - cx
				dy = float64(py) + 0.5 - cy
				d  = math.Hypot(dx, dy)
			)
			if d > ro || d < ri {
				continue
			}
			a := math.Atan2(dy, dx)
			if a < StartAngle {
				a += fullTurn
			}
			if a >= slice.Start && a < slice.End {
				s.setPixel(px, py, fill)
			}
		}
	}
	// separator strokes along both radial edges
	sep := parseHexColor(sliceStrokeColor)
	for _, angle := range []float64{slice.Start, slice.End} {
		var (
			p1 = arcPoint(angle, inner)
			p2 = arcPoint(angle, outer)
		)
		s.stroke(cx+p1.X*s.ratio, cy+p1.Y*s.ratio, cx+p2.X*s.ratio, cy+p2.Y*s.ratio, sep, s.px(sliceStrokeWidth))
	}
}

func (s *RasterSurface) Polyline(points []Pos, color string, width float64) {
	if s.unusable() || len(points) < 2 {
		return
	}
	c := parseHexColor(color)
	for i := 1; i < len(points); i++ {
		var (
			p1 = points[i-1]
			p2 = points[i]
		)
		s.stroke(p1.X*s.ratio, p1.Y*s.ratio, p2.X*s.ratio, p2.Y*s.ratio, c, s.px(width))
	}
}

func (s *RasterSurface) Area(points []Pos, baseline float64, colorName string) {
	if s.unusable() || len(points) < 2 {
		return
	}
	var (
		fill = fade(parseHexColor(colorName), areaOpacity)
		base = s.px(baseline)
	)
	for i := 1; i < len(points); i++ {
		var (
			x1 = points[i-1].X * s.ratio
			y1 = points[i-1].Y * s.ratio
			x2 = points[i].X * s.ratio
			y2 = points[i].Y * s.ratio
		)
		if x2 == x1 {
			continue
		}
		for px := int(x1); px < int(x2); px++ {
			var (
				t  = (float64(px) - x1) / (x2 - x1)
				py = int(y1 + t*(y2-y1))
			)
			col := image.Rect(px, py, px+1, base)
			draw.Draw(s.img, col, &image.Uniform{fill}, image.Point{}, draw.Over)
		}
	}
}

func (s *RasterSurface) Rect(pos Pos, dim Dim, color string) {
	if s.unusable() {
		return
	}
	rect := image.Rect(s.px(pos.X), s.px(pos.Y), s.px(pos.X+dim.W), s.px(pos.Y+dim.H))
	draw.Draw(s.img, rect, &image.Uniform{parseHexColor(color)}, image.Point{}, draw.Over)
}

func (s *RasterSurface) Line(from, to Pos, color string, width float64) {
	if s.unusable() {
		return
	}
	s.stroke(from.X*s.ratio, from.Y*s.ratio, to.X*s.ratio, to.Y*s.ratio, parseHexColor(color), s.px(width))
}

func (s *RasterSurface) Text(str string, pos Pos, size float64, colorName string, anchor TextAnchor) {
	if s.unusable() || str == "" {
		return
	}
	var (
		w = font.MeasureString(s.face, str).Ceil()
		m = s.face.Metrics()
		x = s.px(pos.X)
		y = s.px(pos.Y) + (m.Ascent - m.Descent).Ceil()/2
	)
	switch anchor {
	case AnchorMiddle:
		x -= w / 2
	case AnchorEnd:
		x -= w
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  &image.Uniform{parseHexColor(colorName)},
		Face: s.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(str)
}

// stroke draws a segment with Bresenham, repeated on y offsets for thickness.
func (s *RasterSurface) stroke(x1f, y1f, x2f, y2f float64, c color.RGBA, width int) {
	if width < 1 {
		width = 1
	}
	for off := 0; off < width; off++ {
		var (
			x1 = int(math.Round(x1f))
			y1 = int(math.Round(y1f)) + off - width/2
			x2 = int(math.Round(x2f))
			y2 = int(math.Round(y2f)) + off - width/2
		)
		var (
			dx = intAbs(x2 - x1)
			dy = intAbs(y2 - y1)
			sx = 1
			sy = 1
		)
		if x1 > x2 {
			sx = -1
		}
		if y1 > y2 {
			sy = -1
		}
		err := dx - dy
		for {
			s.setPixel(x1, y1, c)
			if x1 == x2 && y1 == y2 {
				break
			}
			e2 := 2 * err
			if e2 > -dy {
				err -= dy
				x1 += sx
			}
			if e2 < dx {
				err += dx
				y1 += sy
			}
		}
	}
}

func (s *RasterSurface) setPixel(x, y int, c color.RGBA) {
	bounds := s.img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		s.img.SetRGBA(x, y, c)
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func fade(c color.RGBA, opacity float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(255 * opacity),
	}
}

func parseHexColor(str string) color.RGBA {
	if len(str) != 7 || str[0] != '#' {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	v, err := strconv.ParseUint(str[1:], 16, 32)
	if err != nil {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
