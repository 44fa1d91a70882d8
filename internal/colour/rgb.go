// Package colour implements hex colour parsing, RGB to HSL conversion and
// human-readable colour classification.
package colour

import (
	"fmt"
	"math"
)

// RGB represents a colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Scale states how the channels of a Triple are expressed.
type Scale uint8

const (
	// ScaleUnknown marks channels of unknown scale, as received from a host
	// that passes bare tuples. The scale is guessed per channel.
	ScaleUnknown Scale = iota
	// Scale8Bit marks whole-number channels in [0,255].
	Scale8Bit
	// ScaleUnit marks normalised channels in [0,1].
	ScaleUnit
)

// String returns the scale name used in JSON and CLI output.
func (s Scale) String() string {
	switch s {
	case Scale8Bit:
		return "8bit"
	case ScaleUnit:
		return "unit"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Scale) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scale) UnmarshalText(b []byte) error {
	switch string(b) {
	case "":
		*s = ScaleUnknown
	case "8bit":
		*s = Scale8Bit
	case "unit":
		*s = ScaleUnit
	default:
		return fmt.Errorf("unknown channel scale %q", b)
	}
	return nil
}

// Triple is an RGB triple tagged with the scale of its channels.
// The tag applies to all three channels.
type Triple struct {
	R     float64 `json:"r"`
	G     float64 `json:"g"`
	B     float64 `json:"b"`
	Scale Scale   `json:"scale,omitempty"`
}

// IntTriple returns an 8-bit scale triple for rgb.
func IntTriple(rgb RGB) Triple {
	return Triple{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B), Scale: Scale8Bit}
}

// NormalizedTriple returns a unit scale triple for rgb.
func NormalizedTriple(rgb RGB) Triple {
	return Triple{
		R:     float64(rgb.R) / 255.0,
		G:     float64(rgb.G) / 255.0,
		B:     float64(rgb.B) / 255.0,
		Scale: ScaleUnit,
	}
}

// Untagged returns a triple of unknown scale.
func Untagged(r, g, b float64) Triple {
	return Triple{R: r, G: g, B: b}
}

// Normalized reports whether the channels are in [0,1].
func (t Triple) Normalized() bool {
	return t.Scale == ScaleUnit
}

// RGB converts the triple to 8-bit channels.
//
// Tagged triples round to nearest and clamp to [0,255]. Untagged channels are
// guessed the way node hosts historically did: a value <= 1 is read as
// normalised and scaled by 255 with truncation, anything else is truncated.
// The guess is ambiguous for integer value 1, which is read as full intensity.
func (t Triple) RGB() RGB {
	switch t.Scale {
	case ScaleUnit:
		return RGB{R: clampChannel(t.R * 255), G: clampChannel(t.G * 255), B: clampChannel(t.B * 255)}
	case Scale8Bit:
		return RGB{R: clampChannel(t.R), G: clampChannel(t.G), B: clampChannel(t.B)}
	default:
		return RGB{R: guessChannel(t.R), G: guessChannel(t.G), B: guessChannel(t.B)}
	}
}

// HSL converts the triple to rounded hue, saturation and lightness.
func (t Triple) HSL() HSL {
	return RGBToHSL(t.RGB())
}

// String formats the triple in its own scale.
func (t Triple) String() string {
	switch t.Scale {
	case ScaleUnit:
		return fmt.Sprintf("(%.4f, %.4f, %.4f)", t.R, t.G, t.B)
	case Scale8Bit:
		return fmt.Sprintf("(%d, %d, %d)", int(t.R), int(t.G), int(t.B))
	default:
		return fmt.Sprintf("(%g, %g, %g)", t.R, t.G, t.B)
	}
}

func guessChannel(v float64) uint8 {
	if v <= 1 {
		return clampChannel(math.Trunc(v * 255))
	}
	return clampChannel(math.Trunc(v))
}

func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
