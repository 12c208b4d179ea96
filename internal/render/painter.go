//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a raw RGBA frame into a single reused ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for a w*h frame.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads buf (row-major RGBA, len w*h*4) and draws it at the origin.
// Mismatched buffers are dropped rather than partially drawn.
func (fp *FramePainter) Blit(dst *ebiten.Image, buf []byte) {
	if len(buf) != fp.w*fp.h*4 {
		return
	}
	fp.img.WritePixels(buf)
	dst.DrawImage(fp.img, nil)
}

// Resize reallocates the backing image when the frame dimensions change.
// No-op when the size is unchanged.
func (fp *FramePainter) Resize(w, h int) {
	if w == fp.w && h == fp.h {
		return
	}
	fp.w, fp.h = w, h
	fp.img = ebiten.NewImage(w, h)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
