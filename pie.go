package charts

import (
	"math"
)

const (
	// StartAngle is the 12 o'clock position slices start from.
	StartAngle = -math.Pi / 2

	fullTurn = 2 * math.Pi
)

type ArcSlice struct {
	Start float64
	End   float64
	Color string
	Label string
}

func (a ArcSlice) Span() float64 {
	return a.End - a.Start
}

// PieLayout walks the cumulative percentage around the circle, clockwise from
// StartAngle, one slice per point in input order. Percentages are not
// re-normalized: a list summing to 70 covers 70% of the circle and leaves the
// remaining arc undrawn.
func PieLayout(points []CategoryPoint, palette Palette) []ArcSlice {
	var (
		angle  = StartAngle
		slices = make([]ArcSlice, 0, len(points))
	)
	for i, pt := range points {
		span := pt.Percent / 100 * fullTurn
		slices = append(slices, ArcSlice{
			Start: angle,
			End:   angle + span,
			Color: palette.Color(i),
			Label: pt.Label,
		})
		angle += span
	}
	return slices
}

func arcPoint(angle, radius float64) Pos {
	return Pos{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle),
	}
}
