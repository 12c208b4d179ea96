//go:build !ebiten

package render

// FramePainter is a placeholder so the package compiles without the ebiten
// build tag. The GUI build provides the real implementation.
type FramePainter struct {
	w, h int
}

// NewFramePainter records the requested size and nothing else.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h}
}

// Blit is a no-op placeholder.
func (fp *FramePainter) Blit(any, []byte) {}

// Resize updates the recorded size.
func (fp *FramePainter) Resize(w, h int) { fp.w, fp.h = w, h }

// Size returns the recorded dimensions.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
