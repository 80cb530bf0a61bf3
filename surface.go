package charts

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

type Dim struct {
	W float64
	H float64
}

func NewDim(w, h float64) Dim {
	return Dim{
		W: w,
		H: h,
	}
}

type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

const (
	// slices are separated by a fixed-width stroke
	sliceStrokeWidth = 2.0
	sliceStrokeColor = "#ffffff"

	areaOpacity = 0.35
)

// Surface is the drawing side of the split: layout engines return plain
// descriptors, a Surface turns them into pixels or markup. Coordinates are
// logical units; one logical unit covers the surface pixel ratio in physical
// pixels. A zero-sized surface accepts every call as a no-op.
type Surface interface {
	Clear(width, height float64)
	Wedge(center Pos, outer, inner float64, slice ArcSlice)
	Polyline(points []Pos, color string, width float64)
	Area(points []Pos, baseline float64, color string)
	Rect(pos Pos, dim Dim, color string)
	Line(from, to Pos, color string, width float64)
	Text(str string, pos Pos, size float64, color string, anchor TextAnchor)
}

// AcquireFunc hands the dispatcher a surface sized to the hosting container.
type AcquireFunc func(width, height, ratio float64) Surface
