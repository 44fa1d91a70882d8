package colour

import (
	"fmt"
	"math"
)

// HSL holds hue in degrees [0,360), saturation and lightness in percent [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the HSL color as a string in the format "hsl(h, s%, l%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGBToHSL converts rgb to hue, saturation and lightness rounded to whole
// degrees and percent. Halves round to even. A hue that rounds up to 360 is
// reported as 0.
func RGBToHSL(rgb RGB) HSL {
	h, s, l := rgbToHSLFloat(rgb)
	hue := int(math.RoundToEven(h))
	if hue == 360 {
		hue = 0
	}
	return HSL{
		H: hue,
		S: int(math.RoundToEven(s * 100)),
		L: int(math.RoundToEven(l * 100)),
	}
}

// rgbToHSLFloat returns hue (0-360), saturation (0-1) and lightness (0-1) unrounded.
// The maximal channel is matched red first, then green, then blue.
func rgbToHSLFloat(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h = math.Mod(h, 6) * 60

	return h, s, l
}

// HSLToRGB converts hue (0-360), saturation (0-1) and lightness (0-1) back to
// 8-bit RGB, rounding each channel to nearest.
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := clampChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: clampChannel(hueToRGB(p, q, h+120) * 255),
		G: clampChannel(hueToRGB(p, q, h) * 255),
		B: clampChannel(hueToRGB(p, q, h-120) * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// Inverse converts the rounded HSL back to RGB.
func (c HSL) Inverse() RGB {
	return HSLToRGB(float64(c.H), float64(c.S)/100, float64(c.L)/100)
}
