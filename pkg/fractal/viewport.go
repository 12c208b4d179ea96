package fractal

// Viewport describes the visible window into the complex plane: a center
// point and a zoom level. Zoom must be strictly positive; zoom 1 shows a
// horizontal extent of 2 complex units. Callers are expected to validate
// this before rendering: a zero or negative zoom produces garbage pixels,
// not an error.
type Viewport struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// DefaultViewport frames the classic full-set view.
func DefaultViewport() Viewport {
	return Viewport{CenterX: -0.75, CenterY: 0, Zoom: 1}
}

// Scale returns the complex-plane distance between adjacent pixels. The
// divisor is the canvas width, not height: zoom is defined against the
// horizontal extent, and using the same scale for both axes is what keeps
// the aspect ratio square. Deriving a second scale from the height would
// make vertical and horizontal zoom diverge.
func (v Viewport) Scale(width int) float64 {
	return 2 / (float64(width) * v.Zoom)
}

// PixelToComplex maps a pixel coordinate to its point in the complex plane.
// Pure function of its inputs; the center pixel (width/2, height/2) maps
// exactly to (CenterX, CenterY).
func (v Viewport) PixelToComplex(px, py float64, width, height int) (x0, y0 float64) {
	scale := v.Scale(width)
	x0 = (px-float64(width)/2)*scale + v.CenterX
	y0 = (py-float64(height)/2)*scale + v.CenterY
	return x0, y0
}

// Pan returns a viewport shifted by a pixel-space delta. Dragging the view
// right moves the center left, hence the subtraction.
func (v Viewport) Pan(dxPixels, dyPixels float64, width int) Viewport {
	scale := v.Scale(width)
	v.CenterX -= dxPixels * scale
	v.CenterY -= dyPixels * scale
	return v
}

// ZoomBy multiplies the zoom level, anchored at the view center. Factors
// above 1 zoom in, below 1 zoom out.
func (v Viewport) ZoomBy(factor float64) Viewport {
	v.Zoom *= factor
	return v
}
