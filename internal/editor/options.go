package editor

import (
	"image"
	"image/color"
	"time"

	"github.com/example/pixelart/internal/canvas"
	"github.com/example/pixelart/internal/notify"
	"github.com/example/pixelart/internal/pen"
	"github.com/example/pixelart/internal/render"
	"github.com/example/pixelart/internal/theme"
)

const (
	DefaultWidth     = 256
	DefaultHeight    = 256
	DefaultSavePath  = "art.png"
	DefaultTitle     = "Pixel Art Maker"
	DefaultIdleDelay = 10 * time.Millisecond
	// PanStep is how far an arrow key moves the view, in cells.
	PanStep = 5
	// MessageDuration is how long a toast stays up.
	MessageDuration = 2 * time.Second
)

// Clipboard moves images to and from the system clipboard.
type Clipboard interface {
	WriteImage(img image.Image) error
	ReadImage() (*image.NRGBA, error)
}

// Presenter shows a finished frame. Drivers implement it.
type Presenter interface {
	Present(f *render.Frame)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(f *render.Frame)

func (p PresenterFunc) Present(f *render.Frame) { p(f) }

type settings struct {
	width, height int
	initial       image.Image
	penSize       int
	penColor      color.NRGBA
	theme         *theme.Theme
	savePath      string
	title         string
	winW, winH    int
	density       float64
	noIdleSkip    bool
	idleDelay     time.Duration
	sleep         func(time.Duration)
	now           func() time.Time
	notifier      *notify.Notifier
	clipboard     Clipboard
	surfaces      canvas.SurfaceFactory
	presenter     Presenter
}

// Option configures an Editor during creation.
type Option func(*settings)

// WithCanvasSize sets the size of a new blank canvas.
func WithCanvasSize(w, h int) Option { return func(s *settings) { s.width, s.height = w, h } }

// WithImage starts from a copy of img instead of a blank canvas.
func WithImage(img image.Image) Option { return func(s *settings) { s.initial = img } }

// WithPen sets the initial pen size and color.
func WithPen(size int, c color.NRGBA) Option {
	return func(s *settings) { s.penSize, s.penColor = size, c }
}

// WithTheme sets the UI colors.
func WithTheme(th *theme.Theme) Option { return func(s *settings) { s.theme = th } }

// WithSavePath sets the file used by save and load.
func WithSavePath(path string) Option { return func(s *settings) { s.savePath = path } }

// WithTitle sets the heading drawn above the canvas.
func WithTitle(title string) Option { return func(s *settings) { s.title = title } }

// WithWindow sets the initial window size in logical units and the density.
func WithWindow(w, h int, density float64) Option {
	return func(s *settings) { s.winW, s.winH, s.density = w, h, density }
}

// WithoutIdleSkip keeps painting while unfocused. Used where focus events
// cannot be trusted.
func WithoutIdleSkip() Option { return func(s *settings) { s.noIdleSkip = true } }

// WithIdle replaces the unfocused wait.
func WithIdle(delay time.Duration, sleep func(time.Duration)) Option {
	return func(s *settings) { s.idleDelay, s.sleep = delay, sleep }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *settings) { s.now = now } }

// WithNotifier reports saves, loads and copies to the desktop.
func WithNotifier(n *notify.Notifier) Option { return func(s *settings) { s.notifier = n } }

// WithClipboard sets the clipboard used by copy and paste.
func WithClipboard(c Clipboard) Option { return func(s *settings) { s.clipboard = c } }

// WithSurfaces sets how canvas surfaces are allocated.
func WithSurfaces(f canvas.SurfaceFactory) Option { return func(s *settings) { s.surfaces = f } }

// WithPresenter sets where frames go.
func WithPresenter(p Presenter) Option { return func(s *settings) { s.presenter = p } }

func defaults() settings {
	return settings{
		width:     DefaultWidth,
		height:    DefaultHeight,
		penSize:   pen.DefaultSize,
		penColor:  pen.DefaultColor,
		savePath:  DefaultSavePath,
		title:     DefaultTitle,
		winW:      800,
		winH:      600,
		density:   1,
		idleDelay: DefaultIdleDelay,
		sleep:     time.Sleep,
		now:       time.Now,
	}
}
