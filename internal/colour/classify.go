package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognised mode names.
var ErrUnknownMode = errors.New("unknown classification mode")

// Mode selects how much detail Classify includes in a label.
type Mode string

const (
	// ModeBasic yields the base hue name only (e.g. "red").
	ModeBasic Mode = "basic"
	// ModeExtended prefixes the hue name with a tone qualifier (e.g. "vivid red").
	ModeExtended Mode = "extended"
)

// Modes returns the supported modes.
func Modes() []Mode {
	return []Mode{ModeBasic, ModeExtended}
}

// ParseMode parses a mode name, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeBasic, ModeExtended:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: basic, extended)", ErrUnknownMode, s)
	}
}

// hueBand is a half-open hue interval [from, to) mapped to a name.
type hueBand struct {
	to   int
	name string
}

// hueBands covers [0,360) in ascending order. Red wraps around 0.
var hueBands = []hueBand{
	{15, "red"},
	{45, "orange"},
	{75, "yellow"},
	{150, "green"},
	{210, "cyan"},
	{270, "blue"},
	{330, "purple"},
	{345, "magenta"},
	{360, "red"},
}

// HueName returns the base colour name for a hue in degrees.
// Hues outside [0,360) are wrapped onto the circle first.
func HueName(h int) string {
	h %= 360
	if h < 0 {
		h += 360
	}
	for _, b := range hueBands {
		if h < b.to {
			return b.name
		}
	}
	return "red"
}

// Qualifier returns the tone word for a saturation and lightness in percent.
// Rules are checked in order and the first match wins.
func Qualifier(s, l int) string {
	switch {
	case s < 20:
		return "neutral"
	case l < 30:
		return "dark"
	case l > 80:
		return "light"
	case s > 70:
		return "vivid"
	case s < 40:
		return "muted"
	case l > 50:
		return "warm"
	default:
		return "cool"
	}
}

// Classify labels an HSL colour. Achromatic colours have hue 0 and are
// therefore named red ("neutral red" in extended mode).
func Classify(c HSL, mode Mode) string {
	base := HueName(c.H)
	if mode != ModeExtended {
		return base
	}
	return Qualifier(c.S, c.L) + " " + base
}

// Describe labels an RGB triple.
func Describe(t Triple, mode Mode) string {
	return Classify(t.HSL(), mode)
}
