package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color used by the compositor before conversion to tcell styles
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Lerp mixes c toward other by t in [0,1]
func (c RGB) Lerp(other RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return RGB{
		R: clamp(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: clamp(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: clamp(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}

// Scale multiplies every channel by f
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}

// Color converts to a tcell true-color value
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
