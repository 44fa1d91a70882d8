package colour

import "testing"

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "orange red", rgb: RGB{R: 255, G: 87, B: 51}, want: HSL{H: 11, S: 100, L: 60}},
		{name: "red", rgb: RGB{R: 255}, want: HSL{H: 0, S: 100, L: 50}},
		{name: "green", rgb: RGB{G: 255}, want: HSL{H: 120, S: 100, L: 50}},
		{name: "blue", rgb: RGB{B: 255}, want: HSL{H: 240, S: 100, L: 50}},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: HSL{H: 0, S: 0, L: 50}},
		{name: "black", rgb: RGB{}, want: HSL{}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: HSL{H: 0, S: 0, L: 100}},
		{name: "sky", rgb: RGB{R: 51, G: 161, B: 255}, want: HSL{H: 208, S: 100, L: 60}},
		{name: "magenta", rgb: RGB{R: 255, B: 255}, want: HSL{H: 300, S: 100, L: 50}},
		{name: "rose boundary", rgb: RGB{R: 255, B: 64}, want: HSL{H: 345, S: 100, L: 50}},
		{name: "orange boundary", rgb: RGB{R: 255, G: 64}, want: HSL{H: 15, S: 100, L: 50}},
		{name: "saddle brown", rgb: RGB{R: 139, G: 69, B: 19}, want: HSL{H: 25, S: 76, L: 31}},
		{name: "steel blue", rgb: RGB{R: 70, G: 130, B: 180}, want: HSL{H: 207, S: 44, L: 49}},
		{name: "khaki", rgb: RGB{R: 240, G: 230, B: 140}, want: HSL{H: 54, S: 77, L: 75}},
		{name: "midnight", rgb: RGB{R: 25, G: 25, B: 112}, want: HSL{H: 240, S: 64, L: 27}},
		{name: "cornflower", rgb: RGB{R: 100, G: 149, B: 237}, want: HSL{H: 219, S: 79, L: 66}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHSL(tt.rgb); got != tt.want {
				t.Errorf("RGBToHSL(%v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestTripleHSLAcceptsBothScales(t *testing.T) {
	rgb := RGB{R: 255, G: 87, B: 51}
	want := HSL{H: 11, S: 100, L: 60}

	if got := IntTriple(rgb).HSL(); got != want {
		t.Errorf("IntTriple().HSL() = %v, want %v", got, want)
	}
	if got := NormalizedTriple(rgb).HSL(); got != want {
		t.Errorf("NormalizedTriple().HSL() = %v, want %v", got, want)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 5 {
				in := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				h, s, l := rgbToHSLFloat(in)
				out := HSLToRGB(h, s, l)
				if !within(in.R, out.R, 1) || !within(in.G, out.G, 1) || !within(in.B, out.B, 1) {
					t.Fatalf("round trip %v -> (%.3f, %.3f, %.3f) -> %v", in, h, s, l, out)
				}
			}
		}
	}
}

func TestHSLInverse(t *testing.T) {
	tests := []RGB{
		{R: 255},
		{G: 255},
		{B: 255},
		{R: 255, G: 255},
		{R: 128, G: 128, B: 128},
		{},
		{R: 255, G: 255, B: 255},
	}
	for _, rgb := range tests {
		if got := RGBToHSL(rgb).Inverse(); got != rgb {
			t.Errorf("RGBToHSL(%v).Inverse() = %v", rgb, got)
		}
	}
}

func TestRGBToHSLRanges(t *testing.T) {
	for r := 0; r <= 255; r += 3 {
		for g := 0; g <= 255; g += 7 {
			for b := 0; b <= 255; b += 11 {
				c := RGBToHSL(RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
				if c.H < 0 || c.H >= 360 || c.S < 0 || c.S > 100 || c.L < 0 || c.L > 100 {
					t.Fatalf("RGBToHSL(%d, %d, %d) = %v out of range", r, g, b, c)
				}
			}
		}
	}
}

func TestRGBToHSLHueWrapsBelow360(t *testing.T) {
	// Hue 359.76 before rounding.
	if got := RGBToHSL(RGB{R: 255, B: 1}); got.H != 0 {
		t.Errorf("RGBToHSL() hue = %d, want 0", got.H)
	}
}

func within(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}
