package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"runtime"
	"time"

	"mandelview/pkg/fractal"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/coder/websocket"
)

const (
	maxDimension     = 4096
	maxIterationsCap = 50000
)

// Request is one render order: a viewport plus canvas dimensions. A zero
// MaxIterations falls back to the renderer default.
type Request struct {
	CenterX       float64 `json:"centerX"`
	CenterY       float64 `json:"centerY"`
	Zoom          float64 `json:"zoom"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	MaxIterations int     `json:"maxIterations"`
}

// Validate normalizes defaults and rejects requests outside the service
// limits. The renderer itself never validates (its inputs are a caller
// contract), so the service front door has to.
func (r *Request) Validate() error {
	if r.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %v", r.Zoom)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.Width > maxDimension || r.Height > maxDimension {
		return fmt.Errorf("dimensions %dx%d exceed the %d px limit", r.Width, r.Height, maxDimension)
	}
	if r.MaxIterations < 0 {
		return fmt.Errorf("maxIterations must not be negative, got %d", r.MaxIterations)
	}
	if r.MaxIterations == 0 {
		r.MaxIterations = fractal.DefaultMaxIterations
	}
	if r.MaxIterations > maxIterationsCap {
		return fmt.Errorf("maxIterations %d exceeds the %d limit", r.MaxIterations, maxIterationsCap)
	}
	return nil
}

// Viewport converts the request into a renderer viewport.
func (r *Request) Viewport() fractal.Viewport {
	return fractal.Viewport{CenterX: r.CenterX, CenterY: r.CenterY, Zoom: r.Zoom}
}

// Server renders Mandelbrot frames on demand over HTTP and websocket.
type Server struct {
	logger  bslogger.Logger
	workers int
}

// New constructs a Server that fans renders out over all CPUs.
func New() *Server {
	return &Server{
		logger:  bslogger.NewLogger("RenderServer", bslogger.Normal, nil),
		workers: runtime.NumCPU(),
	}
}

// Handler returns the route table: POST /render answers with a PNG body,
// GET /ws upgrades to a websocket taking JSON requests and answering with
// binary PNG frames.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", s.handleRender)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Infof("listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// RenderPNG renders the requested frame and encodes it as PNG bytes.
func (s *Server) RenderPNG(req Request) ([]byte, error) {
	buf := fractal.RenderParallel(req.Viewport(), req.Width, req.Height, req.MaxIterations, s.workers)
	img := &image.RGBA{
		Pix:    buf,
		Stride: req.Width * 4,
		Rect:   image.Rect(0, 0, req.Width, req.Height),
	}
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("encoding frame: %w", err)
	}
	return out.Bytes(), nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return
	}
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	data, err := s.RenderPNG(req)
	if err != nil {
		s.logger.Errorf("render %dx%d: %s", req.Width, req.Height, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.logger.Infof("rendered %dx%d at zoom %g in %s", req.Width, req.Height, req.Zoom, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		s.logger.Warningf("writing response: %s", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.logger.Warningf("websocket accept: %s", err)
		return
	}
	defer c.CloseNow()
	s.logger.Infof("websocket client connected from %s", r.RemoteAddr)

	ctx := r.Context()
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				s.logger.Infof("websocket client left")
				return
			}
			s.logger.Warningf("websocket read: %s", err)
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			c.Close(websocket.StatusInvalidFramePayloadData, err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			c.Close(websocket.StatusInvalidFramePayloadData, err.Error())
			return
		}

		frame, err := s.RenderPNG(req)
		if err != nil {
			s.logger.Errorf("render %dx%d: %s", req.Width, req.Height, err)
			c.Close(websocket.StatusInternalError, "render failed")
			return
		}
		if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
			s.logger.Warningf("websocket write: %s", err)
			return
		}
	}
}
