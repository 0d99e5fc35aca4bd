// Package editor runs the per-tick update of the pixel art editor: input
// dispatch, painting, persistence commands and frame description.
package editor

import (
	"fmt"
	"image"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/example/pixelart/internal/canvas"
	"github.com/example/pixelart/internal/gui"
	"github.com/example/pixelart/internal/input"
	"github.com/example/pixelart/internal/pen"
	"github.com/example/pixelart/internal/render"
	"github.com/example/pixelart/internal/theme"
)

const (
	instructions = "Left mouse to draw, right mouse to erase.\n" +
		"Scroll with mouse to zoom in/out, arrow keys to move around when zoomed."
)

// Editor owns the canvas, pen and overlay for one window. All methods must
// be called from the driver's tick goroutine.
type Editor struct {
	Canvas *canvas.Canvas
	Pen    *pen.Pen
	Theme  *theme.Theme

	cfg     settings
	overlay *gui.Overlay
	history input.History
	focused bool
	quit    bool

	winW, winH int
	density    float64

	fps      float64
	frames   int
	fpsStart time.Time

	message      string
	messageUntil time.Time
}

// New creates an editor with a blank canvas, or a copy of WithImage's image.
func New(opts ...Option) (*Editor, error) {
	cfg := defaults()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.theme == nil {
		cfg.theme = theme.Default()
	}
	if cfg.density <= 0 {
		cfg.density = 1
	}

	w, h := cfg.width, cfg.height
	if cfg.initial != nil {
		w, h = cfg.initial.Bounds().Dx(), cfg.initial.Bounds().Dy()
	}
	c, err := canvas.New(w, h, cfg.surfaces)
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	if cfg.initial != nil {
		if err := c.Load(cfg.initial); err != nil {
			return nil, fmt.Errorf("load initial image: %w", err)
		}
		c.RepaintAll()
	}

	e := &Editor{
		Canvas:  c,
		Pen:     pen.New(cfg.penSize, cfg.penColor),
		Theme:   cfg.theme,
		cfg:     cfg,
		overlay: gui.NewOverlay(gui.DefaultButtons()...),
		focused: true,
		winW:    cfg.winW,
		winH:    cfg.winH,
		density: cfg.density,
	}
	e.fpsStart = e.clock()
	e.refit()
	return e, nil
}

// Close releases the canvas surface.
func (e *Editor) Close() { e.Canvas.Release() }

// Focused reports whether the window currently has focus.
func (e *Editor) Focused() bool { return e.focused }

// FPS is the frame rate measured over the last full second.
func (e *Editor) FPS() float64 { return e.fps }

// Message returns the toast text while it is visible.
func (e *Editor) Message() string {
	if e.message == "" || !e.clock().Before(e.messageUntil) {
		return ""
	}
	return e.message
}

// Overlay exposes the button strip.
func (e *Editor) Overlay() *gui.Overlay { return e.overlay }

// Tick advances the editor by one frame and reports whether the window asked
// to quit. Events are handled in arrival order. While unfocused the tick only
// waits unless idle skipping is disabled; otherwise the pen strokes from the
// previous sample to this one, the frame is presented and the sample becomes
// the previous one.
func (e *Editor) Tick(st input.State) bool {
	e.updateMetaData()
	if st.Density > 0 && st.Density != e.density {
		e.density = st.Density
		e.refit()
	}
	cur := st.Sample()
	px, py := int(cur.X), int(cur.Y)
	e.overlay.Hover(px, py)

	for _, ev := range st.Events {
		if cmd := e.overlay.HandleEvent(ev, px, py); cmd != gui.CommandNone {
			e.Exec(cmd)
		}
		e.handle(ev)
	}
	if e.quit {
		return true
	}

	if !e.focused && !e.cfg.noIdleSkip {
		e.cfg.sleep(e.cfg.idleDelay)
		return false
	}

	if n := e.Pen.Stroke(e.Canvas, e.history.Previous(), cur); n > 0 {
		log.Debugf("stroke wrote %d cells", n)
	}
	if e.cfg.presenter != nil {
		e.cfg.presenter.Present(e.Frame())
	}
	e.history.Push(cur)
	return false
}

func (e *Editor) handle(ev input.Event) {
	switch ev.Kind {
	case input.KindQuit:
		e.quit = true
	case input.KindResize:
		if ev.Width > 0 && ev.Height > 0 {
			e.winW, e.winH = ev.Width, ev.Height
		}
		e.refit()
	case input.KindFocus:
		e.focused = ev.Focused
	case input.KindWheel:
		e.Canvas.ZoomBy(ev.WheelY)
	case input.KindButton:
		if ev.Pressed && e.Message() != "" {
			e.messageUntil = time.Time{}
		}
	case input.KindKey:
		e.handleKey(ev)
	}
}

func (e *Editor) handleKey(ev input.Event) {
	switch ev.Key {
	case input.KeyLeft:
		e.Canvas.Translate(-PanStep, 0)
		return
	case input.KeyRight:
		e.Canvas.Translate(PanStep, 0)
		return
	case input.KeyUp:
		e.Canvas.Translate(0, -PanStep)
		return
	case input.KeyDown:
		e.Canvas.Translate(0, PanStep)
		return
	case input.KeyEscape:
		e.messageUntil = time.Time{}
		return
	}
	if cmd, ok := shortcuts[ev.Shortcut()]; ok {
		e.Exec(cmd)
	}
}

func (e *Editor) clock() time.Time { return e.cfg.now() }

// refit recomputes the canvas placement and the button layout for the
// current window size and density.
func (e *Editor) refit() {
	e.Canvas.Fit(e.winW, e.winH, e.density)
	e.overlay.Layout(e.winW, e.density)
}

// updateMetaData counts frames and refreshes the FPS figure once a second.
func (e *Editor) updateMetaData() {
	e.frames++
	now := e.clock()
	elapsed := now.Sub(e.fpsStart)
	if elapsed.Seconds() >= 1 {
		e.fps = float64(e.frames) / elapsed.Seconds()
		e.frames = 0
		e.fpsStart = now
	}
}

// Frame describes what the window should show right now.
func (e *Editor) Frame() *render.Frame {
	d := e.density
	w := int(float64(e.winW) * d)
	h := int(float64(e.winH) * d)
	f := &render.Frame{
		Width:   w,
		Height:  h,
		Density: d,
		Canvas:  e.Canvas.Surface(),
		Source:  e.Canvas.SourceRect(),
		Dest:    e.Canvas.DestRect(),
		Buttons: e.overlay.Faces(e.Theme),
		Message: e.Message(),
	}
	fg := e.Theme.Foreground
	f.Labels = []render.Label{
		{Text: fmt.Sprintf("FPS: %.2f", e.fps), Pos: scalePt(5, 5, d), Size: 24 * d, Color: fg},
		{Text: e.penStatus(), Pos: scalePt(5, 35, d), Size: 14 * d, Color: fg},
		{Text: e.cfg.title, Pos: image.Pt(w/2, int(17*d)), Size: 36 * d, Anchor: render.AnchorTopCenter, Color: e.Theme.Title},
		{Text: instructions, Pos: image.Pt(int(5*d), h-int(5*d)), Size: 12 * d, Anchor: render.AnchorBottomLeft, Color: fg},
	}
	return f
}

func (e *Editor) penStatus() string {
	return fmt.Sprintf("Pen %dpx %s  Zoom %.1fx", e.Pen.Size, pen.FormatColor(e.Pen.Color), e.Canvas.Zoom)
}

func scalePt(x, y int, d float64) image.Point {
	return image.Pt(int(float64(x)*d), int(float64(y)*d))
}
