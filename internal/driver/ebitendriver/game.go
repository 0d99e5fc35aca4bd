// Package ebitendriver hosts the editor in an Ebitengine window. It is the
// driver used in browsers, where focus events cannot be trusted and the
// editor keeps painting while unfocused.
package ebitendriver

import (
	"fmt"
	"image"
	"runtime"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/example/pixelart/assets"
	"github.com/example/pixelart/internal/driver"
	"github.com/example/pixelart/internal/editor"
	"github.com/example/pixelart/internal/input"
	"github.com/example/pixelart/internal/render"
)

// Game adapts the editor to ebiten's Update/Draw/Layout cycle.
type Game struct {
	cfg driver.Config
	ed  *editor.Editor
	sw  *render.Software
	err error

	queue   input.Queue
	keys    []ebiten.Key
	chars   []rune
	focused bool
	outW    int
	outH    int
	lastW   int
	lastH   int

	frame   *render.Frame
	under   layer
	overlay layer
}

// NewGame prepares a game; the editor is created on the first Update, once
// GPU images can be allocated.
func NewGame(cfg driver.Config) *Game {
	return &Game{
		cfg:     cfg,
		sw:      render.NewSoftware(cfg.Theme, &render.Faces{}, cfg.Shadow),
		focused: true,
		outW:    cfg.Width,
		outH:    cfg.Height,
	}
}

// Run opens the window and blocks until it closes.
func Run(cfg driver.Config) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	setIcon()

	g := NewGame(cfg)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	if g.ed != nil {
		g.ed.Close()
	}
	return g.err
}

func setIcon() {
	var icons []image.Image
	for _, size := range assets.IconSizes() {
		img, err := assets.IconImage(size)
		if err != nil {
			log.WithError(err).Warn("window icon")
			continue
		}
		icons = append(icons, img)
	}
	if len(icons) == 0 {
		log.Warn("no window icon embedded")
		return
	}
	ebiten.SetWindowIcon(icons)
}

func (g *Game) init() error {
	opts := []editor.Option{
		editor.WithSurfaces(NewSurface),
		editor.WithPresenter(editor.PresenterFunc(g.present)),
		editor.WithWindow(g.outW, g.outH, g.deviceScale()),
		editor.WithTitle(g.cfg.Title),
	}
	if g.cfg.Theme != nil {
		opts = append(opts, editor.WithTheme(g.cfg.Theme))
	}
	if runtime.GOOS == "js" {
		opts = append(opts, editor.WithoutIdleSkip())
	}
	ed, err := editor.New(append(opts, g.cfg.Editor...)...)
	if err != nil {
		return err
	}
	g.ed = ed
	g.lastW, g.lastH = g.outW, g.outH
	return nil
}

func (g *Game) deviceScale() float64 {
	var detected float64
	if m := ebiten.Monitor(); m != nil {
		detected = m.DeviceScaleFactor()
	}
	return g.cfg.ResolveDensity(detected)
}

func (g *Game) Update() error {
	if g.ed == nil {
		if err := g.init(); err != nil {
			g.err = err
			return ebiten.Termination
		}
	}
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(input.Event{Kind: input.KindQuit})
	}
	if g.outW != g.lastW || g.outH != g.lastH {
		g.lastW, g.lastH = g.outW, g.outH
		g.queue.Push(input.Event{Kind: input.KindResize, Width: g.outW, Height: g.outH})
	}
	if f := ebiten.IsFocused(); f != g.focused {
		g.focused = f
		g.queue.Push(input.Event{Kind: input.KindFocus, Focused: f})
	}
	held := g.pollPointer()
	g.pollKeys()

	d := g.deviceScale()
	cx, cy := ebiten.CursorPosition()
	st := input.State{
		X:       float64(cx) / d,
		Y:       float64(cy) / d,
		Buttons: held,
		Events:  g.queue.Drain(),
		Density: d,
	}
	if g.ed.Tick(st) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) present(f *render.Frame) { g.frame = f }

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.frame
	if f == nil {
		return
	}
	size := screen.Bounds().Size()

	under := g.under.update(size, fmt.Sprint(f.Dest, g.sw.Shadow), func(dst *image.RGBA) {
		g.sw.DrawUnderlay(dst, f)
	})
	screen.DrawImage(under, nil)

	if s, ok := f.Canvas.(*Surface); ok && s.Image() != nil && !f.Source.Empty() {
		src := s.Image().SubImage(f.Source).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
		op.GeoM.Scale(float64(f.Dest.Dx())/float64(f.Source.Dx()), float64(f.Dest.Dy())/float64(f.Source.Dy()))
		op.GeoM.Translate(float64(f.Dest.Min.X), float64(f.Dest.Min.Y))
		screen.DrawImage(src, op)
	}

	over := g.overlay.update(size, overlayKey(f), func(dst *image.RGBA) {
		g.sw.DrawOverlay(dst, f)
	})
	screen.DrawImage(over, nil)
}

// overlayKey changes whenever anything DrawOverlay paints would.
func overlayKey(f *render.Frame) string {
	var b strings.Builder
	fmt.Fprint(&b, f.Dest, f.Message)
	for _, btn := range f.Buttons {
		fmt.Fprint(&b, btn.Rect, btn.State)
	}
	for _, l := range f.Labels {
		fmt.Fprint(&b, l.Text, l.Pos, l.Size)
	}
	return b.String()
}

// Layout renders at device resolution; the cursor is scaled back to logical
// units in Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	d := g.deviceScale()
	return int(float64(outsideWidth) * d), int(float64(outsideHeight) * d)
}
