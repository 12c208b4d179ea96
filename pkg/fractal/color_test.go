package fractal

import "testing"

func TestColorizeInteriorIsBlack(t *testing.T) {
	r, g, b := Colorize(DefaultMaxIterations, DefaultMaxIterations)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("interior color = (%d,%d,%d), want black", r, g, b)
	}
}

func TestColorizeKnownHues(t *testing.T) {
	cases := []struct {
		iteration, max int
		r, g, b        uint8
	}{
		{0, 500, 255, 0, 0},     // hue 0 is pure red
		{100, 600, 255, 255, 0}, // hue 60 is pure yellow
		{125, 500, 128, 255, 0}, // hue 90
		{250, 500, 0, 255, 255}, // hue 180 is pure cyan
		{375, 500, 127, 0, 255}, // hue 270
	}
	for _, c := range cases {
		r, g, b := Colorize(c.iteration, c.max)
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("Colorize(%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
				c.iteration, c.max, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestColorizeEscapedNeverBlack(t *testing.T) {
	// Full saturation at half lightness never collapses to black, so any
	// escaped pixel is visually distinct from the set interior.
	for i := 0; i < DefaultMaxIterations; i++ {
		r, g, b := Colorize(i, DefaultMaxIterations)
		if r == 0 && g == 0 && b == 0 {
			t.Fatalf("Colorize(%d) is black, which should mark interior only", i)
		}
	}
}

func TestHSLAchromatic(t *testing.T) {
	r, g, b := hslToRGB(0.42, 0, 0.5)
	if r != g || g != b {
		t.Fatalf("zero saturation gave (%d,%d,%d), want a gray", r, g, b)
	}
	if r != 128 {
		t.Fatalf("half lightness gray = %d, want 128", r)
	}
}
