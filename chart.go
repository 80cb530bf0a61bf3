package charts

import (
	"fmt"
)

type Kind int

const (
	KindPie Kind = iota
	KindDonut
	KindArea
	KindDualAxis
)

func (k Kind) String() string {
	switch k {
	case KindPie:
		return "pie"
	case KindDonut:
		return "donut"
	case KindArea:
		return "area"
	case KindDualAxis:
		return "dual-axis"
	default:
		return "unknown"
	}
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func PadAll(v float64) Padding {
	return Padding{
		Top:    v,
		Right:  v,
		Bottom: v,
		Left:   v,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Config is fixed for the duration of one render call.
type Config struct {
	Kind       Kind
	Width      float64
	Height     float64
	PixelRatio float64

	Padding

	// Palette overrides the renderer palette when set.
	Palette Palette
}

func (c Config) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Config) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Config) validate() error {
	if c.Width < 0 {
		return ConfigurationError{Reason: fmt.Sprintf("negative width %g", c.Width)}
	}
	if c.Height < 0 {
		return ConfigurationError{Reason: fmt.Sprintf("negative height %g", c.Height)}
	}
	if c.PixelRatio < 0 {
		return ConfigurationError{Reason: fmt.Sprintf("negative pixel ratio %g", c.PixelRatio)}
	}
	switch c.Kind {
	case KindPie, KindDonut, KindArea, KindDualAxis:
	default:
		return ConfigurationError{Reason: fmt.Sprintf("unknown chart kind %d", c.Kind)}
	}
	return nil
}

type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}
