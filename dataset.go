package charts

import (
	"time"
)

// CategoryPoint is one labelled share of a categorical dataset. Percent is
// taken as given: values that do not sum to 100 are rendered as-is.
type CategoryPoint struct {
	Label   string
	Value   float64
	Percent float64
}

type TimePoint struct {
	Date  time.Time
	Value float64
}

// Series keeps its points in insertion order; order is meaningful and
// preserved all the way to the drawn primitives.
type Series struct {
	Title  string
	Points []TimePoint
}

func (s Series) Len() int {
	return len(s.Points)
}

type Dataset struct {
	Categories []CategoryPoint
	Series     []Series
}

func CategoryDataset(points ...CategoryPoint) Dataset {
	return Dataset{
		Categories: points,
	}
}

func SeriesDataset(series ...Series) Dataset {
	return Dataset{
		Series: series,
	}
}

func (d Dataset) Empty() bool {
	if len(d.Categories) > 0 {
		return false
	}
	for _, s := range d.Series {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// IsEmpty reports whether rendering ds would take the empty-state path.
func IsEmpty(d Dataset) bool {
	return d.Empty()
}
