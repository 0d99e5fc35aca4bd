//go:build !js

// Package shinydriver hosts the editor in a shiny window. Ticks are driven by
// a timer that posts into the window's event queue, so every tick runs on the
// event loop goroutine.
package shinydriver

import (
	"fmt"
	"image"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixelart/internal/display"
	pdriver "github.com/example/pixelart/internal/driver"
	"github.com/example/pixelart/internal/editor"
	"github.com/example/pixelart/internal/input"
	"github.com/example/pixelart/internal/render"
)

// TickRate is how often the editor runs.
const TickRate = 60

type tickEvent struct{}

// Run opens the window and blocks until it closes.
func Run(cfg pdriver.Config) error {
	var err error
	driver.Main(func(s screen.Screen) {
		err = run(s, cfg)
	})
	return err
}

type window struct {
	s       screen.Screen
	w       screen.Window
	sw      *render.Software
	buf     screen.Buffer
	last    *render.Frame
	density float64
}

func run(s screen.Screen, cfg pdriver.Config) error {
	density := cfg.ResolveDensity(display.Density(cfg.Monitor))
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  int(float64(cfg.Width) * density),
		Height: int(float64(cfg.Height) * density),
		Title:  cfg.Title,
	})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer w.Release()

	win := &window{s: s, w: w, sw: render.NewSoftware(cfg.Theme, &render.Faces{}, cfg.Shadow), density: density}
	defer win.release()

	opts := []editor.Option{
		editor.WithWindow(cfg.Width, cfg.Height, density),
		editor.WithTitle(cfg.Title),
		editor.WithPresenter(win),
	}
	if cfg.Theme != nil {
		opts = append(opts, editor.WithTheme(cfg.Theme))
	}
	ed, err := editor.New(append(opts, cfg.Editor...)...)
	if err != nil {
		return err
	}
	defer ed.Close()

	// Deferred after w.Release, so the ticker is gone before the window.
	stop := startTicker(time.Second/TickRate, func() { w.Send(tickEvent{}) })
	defer stop()

	var (
		queue input.Queue
		ptr   pointer
	)
	for {
		switch e := w.NextEvent().(type) {
		case tickEvent:
			st := input.State{X: ptr.x, Y: ptr.y, Buttons: ptr.held, Events: queue.Drain(), Density: density}
			if ed.Tick(st) {
				return nil
			}
		case lifecycle.Event:
			for _, ev := range lifecycleEvents(e) {
				queue.Push(ev)
			}
			if e.To == lifecycle.StageDead {
				ed.Tick(input.State{Events: queue.Drain(), Density: density})
				return nil
			}
		case size.Event:
			queue.Push(input.Event{
				Kind:   input.KindResize,
				Width:  pdriver.Logical(e.WidthPx, density),
				Height: pdriver.Logical(e.HeightPx, density),
			})
		case mouse.Event:
			if ev, ok := ptr.mouseEvent(e, density); ok {
				queue.Push(ev)
			}
		case key.Event:
			if ev, ok := keyEvent(e); ok {
				queue.Push(ev)
			}
		case paint.Event:
			win.publish()
		case error:
			log.WithError(e).Error("window event")
		}
	}
}

// Present draws f into the window's buffer and shows it.
func (win *window) Present(f *render.Frame) {
	size := f.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if win.buf == nil || win.buf.Size() != size {
		if win.buf != nil {
			win.buf.Release()
		}
		b, err := win.s.NewBuffer(size)
		if err != nil {
			log.WithError(err).Error("new buffer")
			win.buf = nil
			return
		}
		win.buf = b
	}
	win.sw.Draw(win.buf.RGBA(), f)
	win.last = f
	win.publish()
}

func (win *window) publish() {
	if win.buf == nil || win.last == nil {
		return
	}
	win.w.Upload(image.Point{}, win.buf, win.buf.Bounds())
	win.w.Publish()
}

func (win *window) release() {
	if win.buf != nil {
		win.buf.Release()
		win.buf = nil
	}
}
