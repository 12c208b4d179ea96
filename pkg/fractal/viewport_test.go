package fractal

import (
	"math"
	"testing"
)

func TestPixelToComplexDeterministic(t *testing.T) {
	v := Viewport{CenterX: -0.5, CenterY: 0.25, Zoom: 3}
	x1, y1 := v.PixelToComplex(17, 43, 320, 240)
	x2, y2 := v.PixelToComplex(17, 43, 320, 240)
	if x1 != x2 || y1 != y2 {
		t.Fatalf("same inputs gave (%v,%v) then (%v,%v)", x1, y1, x2, y2)
	}
}

func TestPixelToComplexCentering(t *testing.T) {
	cases := []struct {
		w, h int
		v    Viewport
	}{
		{200, 100, Viewport{CenterX: -0.75, CenterY: 0, Zoom: 1}},
		{640, 480, Viewport{CenterX: 0.3, CenterY: -1.2, Zoom: 42}},
		{2, 2, Viewport{CenterX: 1, CenterY: 1, Zoom: 0.5}},
	}
	for _, c := range cases {
		x0, y0 := c.v.PixelToComplex(float64(c.w)/2, float64(c.h)/2, c.w, c.h)
		if x0 != c.v.CenterX || y0 != c.v.CenterY {
			t.Fatalf("center pixel of %dx%d mapped to (%v,%v), want (%v,%v)",
				c.w, c.h, x0, y0, c.v.CenterX, c.v.CenterY)
		}
	}
}

func TestZoomHalvesPixelSpacing(t *testing.T) {
	v := Viewport{CenterX: -0.75, CenterY: 0, Zoom: 1}
	v2 := v.ZoomBy(2)

	// The per-pixel scale halves exactly: dividing by a doubled zoom only
	// shifts the float exponent.
	if got, want := v2.Scale(100), v.Scale(100)/2; got != want {
		t.Fatalf("doubling zoom gave scale %v, want %v", got, want)
	}

	// Mapped coordinates round through the center offset, so the spacing
	// between adjacent pixels halves only up to rounding noise.
	x0, _ := v.PixelToComplex(10, 5, 100, 80)
	x1, _ := v.PixelToComplex(11, 5, 100, 80)
	spacing := x1 - x0

	x0, _ = v2.PixelToComplex(10, 5, 100, 80)
	x1, _ = v2.PixelToComplex(11, 5, 100, 80)
	got := x1 - x0
	if diff := math.Abs(got - spacing/2); diff > 1e-12 {
		t.Fatalf("doubling zoom gave spacing %v, want %v within 1e-12", got, spacing/2)
	}
}

func TestScaleUsesWidthForBothAxes(t *testing.T) {
	// A tall canvas and a wide canvas with the same width must map pixels
	// identically: zoom is defined against horizontal extent only.
	v := DefaultViewport()
	xa, ya := v.PixelToComplex(30, 30, 100, 400)
	xb, yb := v.PixelToComplex(30, 230, 100, 800)
	if xa != xb || ya != yb {
		t.Fatalf("same offset from center mapped differently: (%v,%v) vs (%v,%v)", xa, ya, xb, yb)
	}
}

func TestPanMovesCenterAgainstDrag(t *testing.T) {
	v := Viewport{CenterX: 0, CenterY: 0, Zoom: 1}
	moved := v.Pan(50, -20, 100)
	scale := v.Scale(100)
	if moved.CenterX != -50*scale {
		t.Fatalf("CenterX = %v, want %v", moved.CenterX, -50*scale)
	}
	if moved.CenterY != 20*scale {
		t.Fatalf("CenterY = %v, want %v", moved.CenterY, 20*scale)
	}
	if moved.Zoom != v.Zoom {
		t.Fatalf("pan changed zoom: %v", moved.Zoom)
	}
}

func TestRegionFallback(t *testing.T) {
	if got := Region("no-such-place"); got != DefaultViewport() {
		t.Fatalf("unknown region gave %+v, want default view", got)
	}
	if got := Region("seahorse-valley"); got == DefaultViewport() {
		t.Fatalf("named region fell through to the default view")
	}
}
