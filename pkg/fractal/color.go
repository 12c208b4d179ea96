package fractal

import "math"

// Colorize maps an escape-time result to an RGB triple. Points that never
// escaped (iteration == maxIterations) are black; everything else gets a
// fully saturated, half-lightness HSL hue proportional to how fast it
// escaped, which produces the familiar banded rainbow.
func Colorize(iteration, maxIterations int) (r, g, b uint8) {
	if iteration == maxIterations {
		return 0, 0, 0
	}
	hue := math.Mod(float64(iteration)*360/float64(maxIterations), 360)
	return hslToRGB(hue/360, 1, 0.5)
}

// hslToRGB converts h, s, l in [0,1] to 8-bit RGB using the standard
// six-segment hue interpolation.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return v, v, v
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)
	return uint8(math.Round(r * 255)), uint8(math.Round(g * 255)), uint8(math.Round(b * 255))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
