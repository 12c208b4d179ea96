//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"mandelview/internal/render"
	"mandelview/pkg/fractal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	zoomStep   = 1.1
	panPerTick = 8 // pixels per frame while an arrow key is held
)

// Game adapts the fractal renderer to the ebiten.Game interface: it owns
// the viewport, turns input events into viewport updates, and re-renders
// the frame whenever the view or the window size changed.
type Game struct {
	view    fractal.Viewport
	home    fractal.Viewport
	maxIter int

	painter *render.FramePainter
	buf     []byte
	w, h    int

	drag  Interaction
	dirty bool

	renderTime time.Duration
}

// New constructs a Game starting at the configured region.
func New(cfg *Config) *Game {
	start := fractal.Region(cfg.Region)
	return &Game{
		view:    start,
		home:    start,
		maxIter: cfg.MaxIterations,
		painter: render.NewFramePainter(cfg.Width, cfg.Height),
		w:       cfg.Width,
		h:       cfg.Height,
		dirty:   true,
	}
}

// Update handles per-frame input and marks the frame dirty on any view
// change. The actual render happens in Draw.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.setView(g.home)
	}
	for i, name := range fractal.RegionNames {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.setView(fractal.Region(name))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := g.saveSnapshot(); err != nil {
			log.Printf("snapshot: %v", err)
		}
	}

	g.handleKeyboardPan()
	g.handleWheelZoom()
	g.handleDrag()
	return nil
}

func (g *Game) handleKeyboardPan() {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		dx += panPerTick
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		dx -= panPerTick
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		dy += panPerTick
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		dy -= panPerTick
	}
	if dx != 0 || dy != 0 {
		g.setView(g.view.Pan(float64(dx), float64(dy), g.w))
	}

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd) {
		g.setView(g.view.ZoomBy(zoomStep))
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract) {
		g.setView(g.view.ZoomBy(1 / zoomStep))
	}
}

func (g *Game) handleWheelZoom() {
	_, wy := ebiten.Wheel()
	if wy > 0 {
		g.setView(g.view.ZoomBy(zoomStep))
	} else if wy < 0 {
		g.setView(g.view.ZoomBy(1 / zoomStep))
	}
}

func (g *Game) handleDrag() {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.w || my >= g.h {
		// Cursor left the window mid-drag.
		g.drag.PointerUp()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drag.PointerDown(mx, my)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drag.PointerUp()
	}
	if dx, dy, dragging := g.drag.PointerMove(mx, my); dragging && (dx != 0 || dy != 0) {
		g.setView(g.view.Pan(float64(dx), float64(dy), g.w))
	}
}

func (g *Game) setView(v fractal.Viewport) {
	if v == g.view {
		return
	}
	g.view = v
	g.dirty = true
}

// Draw re-renders the frame if anything changed and blits it.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty && g.w > 0 && g.h > 0 {
		if len(g.buf) != g.w*g.h*4 {
			g.buf = make([]byte, g.w*g.h*4)
		}
		start := time.Now()
		fractal.RenderInto(g.buf, g.view, g.w, g.h, g.maxIter)
		g.renderTime = time.Since(start)
		g.painter.Resize(g.w, g.h)
		g.dirty = false
	}
	g.painter.Blit(screen, g.buf)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"center (%.6f, %.6f)\nzoom %.2f  iter cap %d\nrender %s",
		g.view.CenterX, g.view.CenterY, g.view.Zoom, g.maxIter, g.renderTime))
}

// Layout reports the drawable size and picks up window resizes, which
// invalidate the frame buffer.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.w || outsideHeight != g.h) {
		g.w, g.h = outsideWidth, outsideHeight
		g.dirty = true
	}
	return g.w, g.h
}

func (g *Game) saveSnapshot() error {
	if len(g.buf) != g.w*g.h*4 {
		return fmt.Errorf("no frame rendered yet")
	}
	img := &image.RGBA{
		Pix:    g.buf,
		Stride: g.w * 4,
		Rect:   image.Rect(0, 0, g.w, g.h),
	}
	name := "mandelview_" + time.Now().Format("20060102-150405") + ".png"
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	log.Printf("saved %s", name)
	return nil
}
