package fractal

// DefaultMaxIterations is the iteration cap used when a caller has no
// reason to pick another one.
const DefaultMaxIterations = 500

// EscapeTime iterates z ← z² + c for c = (x0, y0) and reports how many
// iterations ran before |z|² exceeded 4, capped at maxIterations. A return
// value equal to maxIterations means the point never escaped and is treated
// as inside the set. The |z|² ≤ 4 test uses the escape radius 2 squared, so
// no square root is needed. Everything is float64; single precision visibly
// degrades deep zooms.
func EscapeTime(x0, y0 float64, maxIterations int) int {
	x, y := 0.0, 0.0
	iteration := 0
	for x*x+y*y <= 4 && iteration < maxIterations {
		xtemp := x*x - y*y + x0
		y = 2*x*y + y0
		x = xtemp
		iteration++
	}
	return iteration
}
