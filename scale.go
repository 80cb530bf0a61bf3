package charts

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Mid() float64 {
	return r.F + r.Len()/2
}

type Domain struct {
	Min float64
	Max float64
}

func NewDomain(min, max float64) Domain {
	return Domain{
		Min: min,
		Max: max,
	}
}

func (d Domain) Extend() float64 {
	return d.Max - d.Min
}

func (d Domain) Degenerate() bool {
	return d.Max == d.Min
}

// Fraction returns where v sits in the domain. A degenerate domain pins the
// fraction at 0.5 instead of dividing by zero.
func (d Domain) Fraction(v float64) float64 {
	if d.Degenerate() {
		return 0.5
	}
	return (v - d.Min) / d.Extend()
}

// Values returns c+1 evenly spaced domain values from Max down to Min,
// matching top-to-bottom label order on a vertical axis.
func (d Domain) Values(c int) []float64 {
	if c < 1 {
		c = 1
	}
	all := make([]float64, 0, c+1)
	step := d.Extend() / float64(c)
	for i := 0; i <= c; i++ {
		all = append(all, d.Max-float64(i)*step)
	}
	return all
}

// LinearScale maps a numeric domain onto a pixel range. Increasing values
// map upward, toward smaller pixel y.
type LinearScale struct {
	Domain
	Range
}

func NewLinearScale(dom Domain, rg Range) LinearScale {
	return LinearScale{
		Domain: dom,
		Range:  rg,
	}
}

func (s LinearScale) Normalize(v float64) float64 {
	return s.Range.F + s.Range.Len() - s.Fraction(v)*s.Range.Len()
}

// SlotScale positions n ordered entries in equal-width slots across a pixel
// range, the way categorical and time ticks share one x axis.
type SlotScale struct {
	Range
	Count int
}

func NewSlotScale(count int, rg Range) SlotScale {
	return SlotScale{
		Range: rg,
		Count: count,
	}
}

func (s SlotScale) Space() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Len() / float64(s.Count)
}

func (s SlotScale) Center(i int) float64 {
	return s.F + (float64(i)+0.5)*s.Space()
}
