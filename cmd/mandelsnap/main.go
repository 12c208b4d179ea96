package main

import (
	"flag"
	"image"
	"image/png"
	"os"
	"runtime"
	"time"

	"mandelview/pkg/fractal"

	"github.com/BrugadaSyndrome/bslogger"
)

func main() {
	var (
		region     = flag.String("region", "", "start from a named landmark (overrides center/zoom)")
		centerX    = flag.Float64("centerX", -0.75, "center on the real axis")
		centerY    = flag.Float64("centerY", 0, "center on the imaginary axis")
		zoom       = flag.Float64("zoom", 1, "zoom level, must be positive")
		width      = flag.Int("width", 1920, "image width in pixels")
		height     = flag.Int("height", 1080, "image height in pixels")
		iterations = flag.Int("iterations", fractal.DefaultMaxIterations, "escape-time iteration cap")
		workers    = flag.Int("workers", runtime.NumCPU(), "row-render goroutines")
		out        = flag.String("out", "mandelbrot.png", "output file")
	)
	flag.Parse()

	logger := bslogger.NewLogger("mandelsnap", bslogger.Normal, nil)

	view := fractal.Viewport{CenterX: *centerX, CenterY: *centerY, Zoom: *zoom}
	if *region != "" {
		view = fractal.Region(*region)
	}
	if view.Zoom <= 0 {
		logger.Errorf("zoom must be positive, got %g", view.Zoom)
		os.Exit(1)
	}
	if *width <= 0 || *height <= 0 {
		logger.Errorf("dimensions must be positive, got %dx%d", *width, *height)
		os.Exit(1)
	}
	if *iterations <= 0 {
		logger.Errorf("iteration cap must be positive, got %d", *iterations)
		os.Exit(1)
	}

	logger.Infof("rendering %dx%d at (%g, %g) zoom %g, %d iterations",
		*width, *height, view.CenterX, view.CenterY, view.Zoom, *iterations)

	start := time.Now()
	buf := fractal.RenderParallel(view, *width, *height, *iterations, *workers)
	logger.Infof("rendered in %s", time.Since(start))

	img := &image.RGBA{
		Pix:    buf,
		Stride: *width * 4,
		Rect:   image.Rect(0, 0, *width, *height),
	}
	f, err := os.Create(*out)
	if err != nil {
		logger.Errorf("creating %s: %s", *out, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		logger.Errorf("encoding %s: %s", *out, err)
		os.Exit(1)
	}
	logger.Infof("wrote %s", *out)
}
