package editor

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/example/pixelart/internal/canvas"
	"github.com/example/pixelart/internal/gui"
	"github.com/example/pixelart/internal/input"
	"github.com/example/pixelart/internal/pen"
	"github.com/example/pixelart/internal/store"
)

// ErrNoClipboard is returned by Copy and Paste when no clipboard is set.
var ErrNoClipboard = errors.New("no clipboard configured")

var shortcuts = map[input.Shortcut]gui.Command{
	{Rune: 's', Modifiers: input.ModControl}: gui.CommandSave,
	{Rune: 'o', Modifiers: input.ModControl}: gui.CommandLoad,
	{Rune: 'c', Modifiers: input.ModControl}: gui.CommandCopy,
	{Rune: 'v', Modifiers: input.ModControl}: gui.CommandPaste,
	{Rune: '['}: gui.CommandPenSmaller,
	{Rune: ']'}: gui.CommandPenLarger,
	{Rune: '-'}: gui.CommandPenSmaller,
	{Rune: '='}: gui.CommandPenLarger,
	{Rune: 'c'}: gui.CommandNextColor,
}

// Exec runs a command. Failures are logged and shown as a toast; they never
// stop the editor.
func (e *Editor) Exec(cmd gui.Command) {
	log.Debugf("command %s", cmd)
	switch cmd {
	case gui.CommandPenSmaller:
		e.Pen.Resize(-1)
	case gui.CommandPenLarger:
		e.Pen.Resize(1)
	case gui.CommandNextColor:
		e.Pen.Color = pen.NextColor(e.Pen.Color)
	case gui.CommandSave:
		_ = e.Save()
	case gui.CommandLoad:
		_ = e.Load()
	case gui.CommandCopy:
		_ = e.Copy()
	case gui.CommandPaste:
		_ = e.Paste()
	}
}

// SavePath is the file used by Save and Load.
func (e *Editor) SavePath() string { return e.cfg.savePath }

// Save writes the canvas to the save path, overwriting it.
func (e *Editor) Save() error {
	path := e.cfg.savePath
	if err := store.Save(path, e.Canvas.Buffer()); err != nil {
		log.WithError(err).Error("save canvas")
		e.toast("Save failed")
		return err
	}
	log.Infof("saved %s", path)
	e.toast("Saved " + filepath.Base(path))
	e.cfg.notifier.Save(path)
	return nil
}

// Load replaces the canvas with the image at the save path. The file is fully
// decoded before the canvas changes, so a bad file leaves it untouched.
func (e *Editor) Load() error {
	path := e.cfg.savePath
	img, err := store.Load(path)
	if err != nil {
		log.WithError(err).Error("load canvas")
		e.toast("Load failed")
		return err
	}
	if err := e.Replace(img); err != nil {
		e.toast("Load failed")
		return err
	}
	log.Infof("loaded %s (%dx%d)", path, e.Canvas.Width(), e.Canvas.Height())
	e.toast("Loaded " + filepath.Base(path))
	e.cfg.notifier.Load(path)
	return nil
}

// Copy puts the canvas on the clipboard.
func (e *Editor) Copy() error {
	if e.cfg.clipboard == nil {
		return e.noClipboard("copy")
	}
	buf := e.Canvas.Buffer()
	if err := e.cfg.clipboard.WriteImage(buf); err != nil {
		log.WithError(err).Error("copy canvas")
		e.toast("Copy failed")
		return err
	}
	e.toast("Copied to clipboard")
	e.cfg.notifier.Copy(fmt.Sprintf("%dx%d canvas", buf.Rect.Dx(), buf.Rect.Dy()), buf)
	return nil
}

func (e *Editor) noClipboard(op string) error {
	log.WithError(ErrNoClipboard).Warn(op + " canvas")
	e.toast("Clipboard unavailable")
	return ErrNoClipboard
}

// Paste replaces the canvas with the clipboard image.
func (e *Editor) Paste() error {
	if e.cfg.clipboard == nil {
		return e.noClipboard("paste")
	}
	img, err := e.cfg.clipboard.ReadImage()
	if err != nil {
		log.WithError(err).Error("paste canvas")
		e.toast("Paste failed")
		return err
	}
	if err := e.Replace(img); err != nil {
		e.toast("Paste failed")
		return err
	}
	e.toast("Pasted from clipboard")
	return nil
}

// Replace resizes the canvas to img, copies its pixels, repaints the surface
// and fits the new canvas to the window. Failing to allocate the new surface
// is fatal.
func (e *Editor) Replace(img image.Image) error {
	if err := e.Canvas.Load(img); err != nil {
		if errors.Is(err, canvas.ErrInvalidSize) {
			log.WithError(err).Error("replace canvas")
			return err
		}
		log.Fatalf("reload canvas: %v", err)
		return err
	}
	e.Canvas.RepaintAll()
	e.refit()
	e.Canvas.Translate(0, 0)
	return nil
}

func (e *Editor) toast(msg string) {
	e.message = msg
	e.messageUntil = e.clock().Add(MessageDuration)
}
