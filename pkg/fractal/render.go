package fractal

import "sync"

// Render computes a full RGBA frame for the viewport: every pixel is mapped
// to the complex plane, iterated, colored, and written as 4 bytes (R, G, B,
// 255) in row-major order with the origin at the top left. The buffer is
// always freshly computed; there is no caching or partial update between
// calls. Returned length is width*height*4.
func Render(v Viewport, width, height, maxIterations int) []byte {
	buf := make([]byte, width*height*4)
	RenderInto(buf, v, width, height, maxIterations)
	return buf
}

// RenderInto is Render writing into a caller-owned buffer, which must hold
// at least width*height*4 bytes. It lets a render loop reuse one frame
// buffer instead of allocating per frame.
func RenderInto(buf []byte, v Viewport, width, height, maxIterations int) {
	for py := 0; py < height; py++ {
		renderRow(buf, v, py, width, height, maxIterations)
	}
}

// RenderParallel computes the same frame as Render with one goroutine per
// row batch. The output is byte-identical to the sequential version: rows
// never share pixels, so only the scheduling differs.
func RenderParallel(v Viewport, width, height, maxIterations, workers int) []byte {
	buf := make([]byte, width*height*4)
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for py := start; py < height; py += workers {
				renderRow(buf, v, py, width, height, maxIterations)
			}
		}(w)
	}
	wg.Wait()
	return buf
}

func renderRow(buf []byte, v Viewport, py, width, height, maxIterations int) {
	for px := 0; px < width; px++ {
		x0, y0 := v.PixelToComplex(float64(px), float64(py), width, height)
		iteration := EscapeTime(x0, y0, maxIterations)
		r, g, b := Colorize(iteration, maxIterations)
		base := (py*width + px) * 4
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 255
	}
}
